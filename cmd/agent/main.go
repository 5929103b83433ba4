package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/borncamp/marketing-dashboard-sync/infrastructure/integrator/dashboard/dashclient"
	"github.com/borncamp/marketing-dashboard-sync/infrastructure/integrator/googleads/adsclient"
	"github.com/borncamp/marketing-dashboard-sync/internal/api"
	"github.com/borncamp/marketing-dashboard-sync/internal/config"
	"github.com/borncamp/marketing-dashboard-sync/internal/scheduler"
	"github.com/borncamp/marketing-dashboard-sync/internal/usecases/syncing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	adsClient := adsclient.NewClient(cfg)
	dashboardClient := dashclient.NewClient(cfg)

	syncService := syncing.NewService(cfg, adsClient, dashboardClient)

	syncJobService := scheduler.NewSyncJobService(syncService, cfg)
	if err := syncJobService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização")
	} else {
		logrus.Info("Agendador de sincronização iniciado com sucesso")
	}

	server, err := api.New(cfg, syncJobService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
