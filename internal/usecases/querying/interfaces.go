package querying

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/querycache"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_querier.go -package=mocks

// Querier expõe as consultas do dashboard já passando pelo cache
type Querier interface {
	// GetStats obtém os indicadores agregados
	GetStats(ctx context.Context) (*domain.StatsSummary, error)

	// GetSalesData obtém a série mensal restrita ao período (nil = ano inteiro)
	GetSalesData(ctx context.Context, dateRange *domain.DateRange) ([]domain.SalesPoint, error)

	// GetCategoryData obtém a distribuição por categoria
	GetCategoryData(ctx context.Context) ([]domain.CategorySlice, error)

	// GetRecentOrders obtém a tabela de pedidos filtrada e ordenada
	GetRecentOrders(ctx context.Context, filter domain.OrdersFilter) (*domain.OrdersView, error)

	// GetOverview carrega todos os painéis em paralelo. Falhas ficam em Overview.Errors.
	GetOverview(ctx context.Context, dateRange *domain.DateRange) *domain.Overview
}

// CacheManager dá acesso operacional ao cache de consultas
type CacheManager interface {
	CacheStats() querycache.Stats
	PurgeCache()

	// InvalidateCache descarta as entradas de um recurso e devolve quantas foram removidas
	InvalidateCache(resource string) (int, error)
}
