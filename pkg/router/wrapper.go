package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/standup-lab/backend/config"
	"github.com/standup-lab/backend/pkg/errorx"
	"github.com/standup-lab/backend/pkg/logger"
	"github.com/standup-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

func xcontextWithDeps(ctx context.Context, db *gorm.DB, cfg config.Configs, l logger.Logger) context.Context {
	ctx = xcontext.WithDB(ctx, db)
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, l)
	return ctx
}

func wrapHandler[Request, Response any](
	r *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	// Snapshot the chains at registration time so a later Branch cannot
	// change an already registered route.
	befores := append([]MiddlewareFunc{}, r.befores...)
	afters := append([]MiddlewareFunc{}, r.afters...)
	closers := append([]CloserFunc{}, r.closers...)

	return func(gctx *gin.Context) {
		ctx := r.base
		ctx = xcontext.WithHTTPRequest(ctx, gctx.Request)
		ctx = xcontext.WithHTTPWriter(ctx, gctx.Writer)

		resp, err := func() (*Response, error) {
			var req Request
			var bindErr error
			switch method {
			case http.MethodGet:
				bindErr = gctx.ShouldBindQuery(&req)
			case http.MethodPost:
				bindErr = gctx.ShouldBindJSON(&req)
			}

			if bindErr != nil {
				xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", bindErr)
				return nil, errorx.New(errorx.BadRequest, "Cannot bind the request")
			}

			for _, m := range befores {
				if err := m(ctx); err != nil {
					return nil, err
				}
			}

			resp, err := handler(ctx, &req)
			if err != nil {
				return nil, err
			}

			for _, m := range afters {
				if err := m(ctx); err != nil {
					return nil, err
				}
			}

			return resp, nil
		}()

		if err != nil {
			ctx = xcontext.WithError(ctx, err)
			gctx.JSON(http.StatusOK, newErrorResponse(err))
		} else {
			ctx = xcontext.WithResponse(ctx, resp)
			gctx.JSON(http.StatusOK, newResponse(resp))
		}

		for _, closer := range closers {
			closer(ctx)
		}
	}
}
