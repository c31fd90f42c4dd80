package main

import (
	"context"
	"net/http"

	"github.com/standup-lab/backend/config"
	"github.com/standup-lab/backend/internal/domain"
	"github.com/standup-lab/backend/internal/repository"
	"github.com/standup-lab/backend/pkg/logger"
	"github.com/standup-lab/backend/pkg/router"
	"github.com/standup-lab/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	ctx context.Context

	configs config.Configs
	logger  logger.Logger
	db      *gorm.DB

	participantRepo repository.ParticipantRepository
	roundRepo       repository.RoundRepository
	selectionRepo   repository.SelectionRepository

	participantDomain domain.ParticipantDomain
	roundDomain       domain.RoundDomain
	selectionDomain   domain.SelectionDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(ct *cli.Context) error {
	configs, err := config.Load(ct.String("config"))
	if err != nil {
		return err
	}

	s.configs = configs
	return nil
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
	s.ctx = xcontext.WithLogger(context.Background(), s.logger)
	s.ctx = xcontext.WithConfigs(s.ctx, s.configs)
}

func (s *srv) loadDatabase() {
	s.db = s.newDatabase()
	s.ctx = xcontext.WithDB(s.ctx, s.db)
}

func (s *srv) newDatabase() *gorm.DB {
	db, err := gorm.Open(
		mysql.Open(s.configs.Database.ConnectionString()),
		&gorm.Config{TranslateError: true},
	)
	if err != nil {
		panic(err)
	}

	return db
}

func (s *srv) loadRepos() {
	s.participantRepo = repository.NewParticipantRepository()
	s.roundRepo = repository.NewRoundRepository()
	s.selectionRepo = repository.NewSelectionRepository()
}

func (s *srv) loadDomains() {
	s.participantDomain = domain.NewParticipantDomain(s.participantRepo)
	s.roundDomain = domain.NewRoundDomain(s.roundRepo, s.participantRepo, s.selectionRepo)
	s.selectionDomain = domain.NewSelectionDomain(s.roundRepo, s.participantRepo, s.selectionRepo)
}
