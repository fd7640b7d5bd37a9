// Comando seed cria as tabelas do modo PROVIDER_MODE=postgres e as popula com a fixture padrão.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/provider"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

func main() {
	schemaOnly := flag.Bool("schema-only", false, "cria as tabelas sem inserir dados")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, os.Stdout)
	logger := log.L.WithField("run_id", utils.GenerateID())
	logger.Info("Iniciando script de seed...")

	// Fatal só depois de run retornar, para que os defers (conexão, contexto) rodem
	if err := run(cfg, *schemaOnly, logger); err != nil {
		logger.WithError(err).Fatal("Erro durante o seed")
	}
}

func run(cfg *config.Config, schemaOnly bool, logger log.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}
	defer conn.Close()

	startTime := time.Now()
	fixture := provider.DefaultFixture()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, repository.Schema); err != nil {
			return fmt.Errorf("criando tabelas: %w", err)
		}
		logger.Info("Tabelas criadas")

		if schemaOnly {
			return nil
		}

		return seedFixture(ctx, repository.NewDashboardRepository(tx), fixture)
	})
	if err != nil {
		return fmt.Errorf("transação desfeita: %w", err)
	}

	logger.WithFields(log.Fields{
		"sales_points": len(fixture.SalesData),
		"categories":   len(fixture.CategoryData),
		"orders":       len(fixture.RecentOrders),
		"duration":     time.Since(startTime).String(),
	}).Info("Seed concluído com sucesso")

	return nil
}

// seedFixture grava os quatro conjuntos; o primeiro erro interrompe o seed
func seedFixture(ctx context.Context, repo repository.DashboardRepository, fixture provider.Fixture) error {
	if err := repo.SaveStats(ctx, fixture.Stats); err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	if err := repo.SaveSalesData(ctx, fixture.SalesData); err != nil {
		return fmt.Errorf("salesData: %w", err)
	}
	if err := repo.SaveCategories(ctx, fixture.CategoryData); err != nil {
		return fmt.Errorf("categoryData: %w", err)
	}
	if err := repo.SaveOrders(ctx, fixture.RecentOrders); err != nil {
		return fmt.Errorf("recentOrders: %w", err)
	}
	return nil
}
