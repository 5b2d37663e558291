package main

import (
	"github.com/sirupsen/logrus"

	"idea-eval/backend/internal/api"
	"idea-eval/backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	cfg.ConfigureLogging()

	server, err := api.NewServer(api.Config{
		AllowedOrigins: cfg.AllowedOrigins,
		AIConfig:       cfg.AI,
		DisableAI:      cfg.DisableAI,
	})
	if err != nil {
		logrus.Fatalf("create server: %v", err)
	}

	router, err := server.Router()
	if err != nil {
		logrus.Fatalf("configure router: %v", err)
	}

	logrus.Infof("starting idea-eval backend on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
