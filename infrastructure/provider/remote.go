package provider

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/dashboardapi/dashboardclient"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// RemoteProvider busca os conjuntos na API de dados. A busca textual é delegada
// ao parâmetro ?q= da API.
type RemoteProvider struct {
	client dashboardclient.Client
}

func NewRemoteProvider(client dashboardclient.Client) *RemoteProvider {
	return &RemoteProvider{client: client}
}

func (p *RemoteProvider) GetStats(ctx context.Context) (*domain.StatsSummary, error) {
	stats, err := p.client.GetStats(ctx)
	if err != nil {
		return nil, unavailable(domain.ResourceStats, err)
	}
	return stats, nil
}

func (p *RemoteProvider) GetSalesData(ctx context.Context) ([]domain.SalesPoint, error) {
	series, err := p.client.GetSalesData(ctx)
	if err != nil {
		return nil, unavailable(domain.ResourceSalesData, err)
	}
	return series, nil
}

func (p *RemoteProvider) GetCategoryData(ctx context.Context) ([]domain.CategorySlice, error) {
	categories, err := p.client.GetCategoryData(ctx)
	if err != nil {
		return nil, unavailable(domain.ResourceCategoryData, err)
	}
	return categories, nil
}

func (p *RemoteProvider) GetRecentOrders(ctx context.Context, query string) ([]domain.Order, error) {
	orders, err := p.client.GetRecentOrders(ctx, query)
	if err != nil {
		return nil, unavailable(domain.ResourceRecentOrders, err)
	}
	return orders, nil
}

func unavailable(resource string, err error) error {
	return domain.NewDataUnavailableError(resource, errors.Wrapf(err, "falha ao buscar %s", resource))
}
