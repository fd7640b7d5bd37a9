package provider

import (
	"context"
	"slices"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/filtering"
)

// StaticFixtureProvider serve a fixture em memória. Cada chamada devolve cópias,
// então consumidores não conseguem alterar a fixture.
type StaticFixtureProvider struct {
	fixture Fixture
}

func NewStaticFixtureProvider() *StaticFixtureProvider {
	return NewStaticFixtureProviderWith(DefaultFixture())
}

func NewStaticFixtureProviderWith(fixture Fixture) *StaticFixtureProvider {
	return &StaticFixtureProvider{fixture: fixture}
}

func (p *StaticFixtureProvider) GetStats(ctx context.Context) (*domain.StatsSummary, error) {
	stats := p.fixture.Stats
	return &stats, nil
}

func (p *StaticFixtureProvider) GetSalesData(ctx context.Context) ([]domain.SalesPoint, error) {
	return slices.Clone(p.fixture.SalesData), nil
}

func (p *StaticFixtureProvider) GetCategoryData(ctx context.Context) ([]domain.CategorySlice, error) {
	return slices.Clone(p.fixture.CategoryData), nil
}

func (p *StaticFixtureProvider) GetRecentOrders(ctx context.Context, query string) ([]domain.Order, error) {
	return filtering.FilterOrders(p.fixture.RecentOrders, query, nil), nil
}
