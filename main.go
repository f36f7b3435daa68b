package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/vowlink/wedding-invites-api/api/handlers"
	"github.com/vowlink/wedding-invites-api/api/scheduler"
	"github.com/vowlink/wedding-invites-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil {
		log.Fatal(err)
	}

	s := scheduler.New(a.Sessions, a.Users, a.Invitations)
	if err := s.Start(); err != nil {
		log.Fatal(err)
	}
	defer s.Stop()

	zap.S().Infow("wedding-invites-api is up and running",
		"port", a.Config.Port,
		"url", a.Config.BaseURL,
		"degraded", a.DegradedMode,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.Port), a.Router))
}
