package querying

import (
	"context"
	"slices"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/provider"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/querycache"
)

const (
	defaultStaticStaleTime = 5 * time.Minute
	defaultOrdersStaleTime = 2 * time.Minute
)

// Service compõe provider, cache e motor de filtros
type Service struct {
	provider        provider.DataProvider
	cache           querycache.Cache
	staticStaleTime time.Duration
	ordersStaleTime time.Duration
	referenceYear   int
}

func NewService(cfg *config.Config, dataProvider provider.DataProvider, cache querycache.Cache) *Service {
	s := &Service{
		provider:        dataProvider,
		cache:           cache,
		staticStaleTime: cfg.Cache.StaticStaleTime,
		ordersStaleTime: cfg.Cache.OrdersStaleTime,
		referenceYear:   cfg.Sales.ReferenceYear,
	}

	if s.staticStaleTime <= 0 {
		s.staticStaleTime = defaultStaticStaleTime
	}
	if s.ordersStaleTime <= 0 {
		s.ordersStaleTime = defaultOrdersStaleTime
	}
	if s.referenceYear == 0 {
		s.referenceYear = domain.DefaultSalesReferenceYear
	}

	return s
}

func (s *Service) GetStats(ctx context.Context) (*domain.StatsSummary, error) {
	key := querycache.Key{Resource: domain.ResourceStats}

	stats, err := querycache.Get(ctx, s.cache, key, s.staticStaleTime, s.provider.GetStats)
	if err != nil {
		return nil, err
	}

	summary := *stats
	return &summary, nil
}

func (s *Service) GetSalesData(ctx context.Context, dateRange *domain.DateRange) ([]domain.SalesPoint, error) {
	key := withRange(querycache.Key{Resource: domain.ResourceSalesData}, dateRange)

	series, err := querycache.Get(ctx, s.cache, key, s.staticStaleTime, func(ctx context.Context) ([]domain.SalesPoint, error) {
		series, err := s.provider.GetSalesData(ctx)
		if err != nil {
			return nil, err
		}
		return filtering.Bucket(series, dateRange, s.referenceYear), nil
	})
	if err != nil {
		return nil, err
	}

	return slices.Clone(series), nil
}

func (s *Service) GetCategoryData(ctx context.Context) ([]domain.CategorySlice, error) {
	key := querycache.Key{Resource: domain.ResourceCategoryData}

	categories, err := querycache.Get(ctx, s.cache, key, s.staticStaleTime, s.provider.GetCategoryData)
	if err != nil {
		return nil, err
	}

	return slices.Clone(categories), nil
}

// GetRecentOrders guarda em cache apenas o resultado filtrado. A ordenação é aplicada
// depois, então alternar colunas não gera nova busca.
func (s *Service) GetRecentOrders(ctx context.Context, filter domain.OrdersFilter) (*domain.OrdersView, error) {
	key := withRange(querycache.Key{Resource: domain.ResourceRecentOrders, Query: filter.Query}, filter.DateRange)

	orders, err := querycache.Get(ctx, s.cache, key, s.ordersStaleTime, func(ctx context.Context) ([]domain.Order, error) {
		orders, err := s.provider.GetRecentOrders(ctx, filter.Query)
		if err != nil {
			return nil, err
		}
		return filtering.FilterOrders(orders, filter.Query, filter.DateRange), nil
	})
	if err != nil {
		return nil, err
	}

	if filter.Sort.Field == "" {
		filter.Sort = domain.DefaultSortState
	}

	return domain.NewOrdersView(filtering.SortOrders(orders, filter.Sort), filter), nil
}

func (s *Service) GetOverview(ctx context.Context, dateRange *domain.DateRange) *domain.Overview {
	overview := &domain.Overview{DateRange: dateRange}
	panelErrors := make([]*domain.PanelError, 4)

	p := pool.New().WithMaxGoroutines(4)

	p.Go(func() {
		stats, err := s.GetStats(ctx)
		overview.Stats = stats
		panelErrors[0] = panelError(ctx, domain.ResourceStats, err)
	})
	p.Go(func() {
		series, err := s.GetSalesData(ctx, dateRange)
		overview.Sales = series
		panelErrors[1] = panelError(ctx, domain.ResourceSalesData, err)
	})
	p.Go(func() {
		categories, err := s.GetCategoryData(ctx)
		overview.Categories = categories
		panelErrors[2] = panelError(ctx, domain.ResourceCategoryData, err)
	})
	p.Go(func() {
		orders, err := s.GetRecentOrders(ctx, domain.OrdersFilter{DateRange: dateRange, Sort: domain.DefaultSortState})
		overview.Orders = orders
		panelErrors[3] = panelError(ctx, domain.ResourceRecentOrders, err)
	})

	p.Wait()

	for _, pe := range panelErrors {
		if pe != nil {
			overview.Errors = append(overview.Errors, *pe)
		}
	}

	return overview
}

func (s *Service) CacheStats() querycache.Stats {
	return s.cache.Stats()
}

func (s *Service) PurgeCache() {
	s.cache.Purge()
}

func (s *Service) InvalidateCache(resource string) (int, error) {
	resource, err := domain.ParseResource(resource)
	if err != nil {
		return 0, err
	}
	return s.cache.InvalidateResource(resource), nil
}

func panelError(ctx context.Context, resource string, err error) *domain.PanelError {
	if err == nil {
		return nil
	}

	log.ForContext(ctx).WithError(err).WithField("resource", resource).Warn("falha ao carregar painel do dashboard")

	return &domain.PanelError{Resource: resource, Message: err.Error()}
}

func withRange(key querycache.Key, dateRange *domain.DateRange) querycache.Key {
	if dateRange != nil {
		key.StartDate = dateRange.StartDate.String()
		key.EndDate = dateRange.EndDate.String()
	}
	return key
}
