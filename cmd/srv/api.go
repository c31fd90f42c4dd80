package main

import (
	"fmt"
	"net/http"

	"github.com/standup-lab/backend/internal/middleware"
	"github.com/standup-lab/backend/pkg/router"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(ct *cli.Context) error {
	if err := s.loadConfig(ct); err != nil {
		return err
	}
	s.loadLogger()
	s.loadDatabase()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", s.configs.ApiServer.Host, s.configs.ApiServer.Port),
		Handler: s.router.Handler(),
	}

	s.logger.Infof("Starting server on port: %s", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		return err
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, s.configs, s.logger)
	s.router.Before(middleware.AllowCors)
	s.router.AddCloser(middleware.Logger())

	// Participant API
	router.POST(s.router, "/createParticipant", s.participantDomain.Create)
	router.GET(s.router, "/getParticipant", s.participantDomain.Get)
	router.GET(s.router, "/getListParticipant", s.participantDomain.GetList)
	router.POST(s.router, "/setParticipantArchived", s.participantDomain.SetArchived)
	router.POST(s.router, "/setAllParticipantsArchived", s.participantDomain.SetAllArchived)

	// Round API
	router.POST(s.router, "/createRound", s.roundDomain.Create)
	router.GET(s.router, "/getRound", s.roundDomain.Get)
	router.GET(s.router, "/getListRound", s.roundDomain.GetList)
	router.GET(s.router, "/getAvailableParticipants", s.roundDomain.GetAvailable)

	// Selection API
	router.POST(s.router, "/createSelection", s.selectionDomain.Create)
	router.GET(s.router, "/getListSelection", s.selectionDomain.GetList)
	router.POST(s.router, "/deleteSelection", s.selectionDomain.Delete)
}
