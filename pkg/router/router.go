package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/standup-lab/backend/config"
	"github.com/standup-lab/backend/pkg/logger"
	"gorm.io/gorm"
)

// HandlerFunc is the signature shared by every domain operation.
type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before or after the handler. A non-nil error stops the
// chain and becomes the response.
type MiddlewareFunc func(ctx context.Context) error

// CloserFunc runs after the response has been written. It receives the final
// context, including the response or error via xcontext.
type CloserFunc func(ctx context.Context)

type Router struct {
	Inner gin.IRouter

	engine  *gin.Engine
	base    context.Context
	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, l logger.Logger) *Router {
	base := context.Background()
	base = xcontextWithDeps(base, db, cfg, l)

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Router{
		Inner:  engine,
		engine: engine,
		base:   base,
	}
}

// Branch returns a router sharing the same engine and base context but with
// independent middleware chains.
func (r *Router) Branch() *Router {
	clone := &Router{
		Inner:  r.Inner,
		engine: r.engine,
		base:   r.base,
	}

	clone.befores = append(clone.befores, r.befores...)
	clone.afters = append(clone.afters, r.afters...)
	clone.closers = append(clone.closers, r.closers...)

	return clone
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func (r *Router) Static(relativePath, root string) {
	r.Inner.Static(relativePath, root)
}

func (r *Router) Handler() http.Handler {
	return r.engine
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}
