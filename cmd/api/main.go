package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/provider"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/querying"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/querycache"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, os.Stdout)
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A variante do provider é escolhida uma única vez, na inicialização
	dataProvider, backend, err := provider.New(ctx, cfg)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao inicializar o provider de dados")
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.L.WithError(err).Warn("Erro ao liberar recursos do provider")
		}
	}()

	queryService := querying.NewService(cfg, dataProvider, querycache.New())

	cacheReportService := scheduler.NewCacheReportService(queryService, cfg)
	if err := cacheReportService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador do relatório de cache")
	} else {
		log.L.Info("Agendador do relatório de cache iniciado com sucesso")
	}

	server, err := api.New(cfg, dataProvider, backend, queryService, cacheReportService)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}
