package provider

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// PostgresProvider lê os conjuntos das tabelas semeadas por infrastructure/migration/seed
type PostgresProvider struct {
	repository repository.DashboardRepository
}

func NewPostgresProvider(repo repository.DashboardRepository) *PostgresProvider {
	return &PostgresProvider{repository: repo}
}

func (p *PostgresProvider) GetStats(ctx context.Context) (*domain.StatsSummary, error) {
	stats, err := p.repository.GetStats(ctx)
	if err != nil {
		return nil, domain.NewDataUnavailableError(domain.ResourceStats, errors.Wrap(err, "consulta de stats"))
	}
	return stats, nil
}

func (p *PostgresProvider) GetSalesData(ctx context.Context) ([]domain.SalesPoint, error) {
	series, err := p.repository.ListSalesData(ctx)
	if err != nil {
		return nil, domain.NewDataUnavailableError(domain.ResourceSalesData, errors.Wrap(err, "consulta de vendas"))
	}

	for i := range series {
		series[i].Revenue = utils.RoundWithTwoDecimalPlace(series[i].Revenue)
	}
	return series, nil
}

func (p *PostgresProvider) GetCategoryData(ctx context.Context) ([]domain.CategorySlice, error) {
	categories, err := p.repository.ListCategories(ctx)
	if err != nil {
		return nil, domain.NewDataUnavailableError(domain.ResourceCategoryData, errors.Wrap(err, "consulta de categorias"))
	}
	return categories, nil
}

func (p *PostgresProvider) GetRecentOrders(ctx context.Context, query string) ([]domain.Order, error) {
	orders, err := p.repository.SearchOrders(ctx, query)
	if err != nil {
		return nil, domain.NewDataUnavailableError(domain.ResourceRecentOrders, errors.Wrapf(err, "busca de pedidos %q", query))
	}

	for i := range orders {
		orders[i].Amount = utils.RoundWithTwoDecimalPlace(orders[i].Amount)
	}
	return orders, nil
}
