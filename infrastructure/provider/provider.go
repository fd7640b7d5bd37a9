// Package provider define a fonte dos quatro conjuntos de dados do dashboard e as
// suas variantes (fixture estática, API remota e PostgreSQL), escolhidas uma única vez
// na inicialização.
package provider

import (
	"context"
	"fmt"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/dashboardapi/dashboardclient"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks

// DataProvider fornece os conjuntos de dados do dashboard. Falhas são sempre
// *domain.DataUnavailableError; um conjunto vazio não é erro.
type DataProvider interface {
	GetStats(ctx context.Context) (*domain.StatsSummary, error)
	GetSalesData(ctx context.Context) ([]domain.SalesPoint, error)
	GetCategoryData(ctx context.Context) ([]domain.CategorySlice, error)
	GetRecentOrders(ctx context.Context, query string) ([]domain.Order, error)
}

// Backend são os recursos externos da variante escolhida: o healthcheck usa Ping e
// o desligamento chama Close.
type Backend interface {
	Ping(ctx context.Context) error
	Close() error
}

type noopBackend struct{}

func (noopBackend) Ping(context.Context) error { return nil }
func (noopBackend) Close() error               { return nil }

// New escolhe a variante conforme PROVIDER_MODE
func New(ctx context.Context, cfg *config.Config) (DataProvider, Backend, error) {
	switch cfg.Provider.Mode {
	case config.ProviderModeStatic:
		log.L.Info("provider: usando fixture estática")
		return NewStaticFixtureProvider(), noopBackend{}, nil

	case config.ProviderModeRemote:
		log.L.WithField("base_url", cfg.Remote.BaseURL).Info("provider: usando API remota")
		return NewRemoteProvider(dashboardclient.NewClient(cfg)), noopBackend{}, nil

	case config.ProviderModePostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}
		log.L.Info("provider: usando PostgreSQL")
		return NewPostgresProvider(repository.NewDashboardRepository(conn)), conn, nil

	default:
		return nil, nil, fmt.Errorf("provider: modo desconhecido %q", cfg.Provider.Mode)
	}
}
