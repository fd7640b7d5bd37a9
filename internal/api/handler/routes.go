package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/provider"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/querying"
)

func Healthcheck(backend Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(backend),
		},
	}
}

// DataSource expõe os conjuntos crus, permitindo que outra instância use esta como provider remoto
func DataSource(dataProvider provider.DataProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/stats",
			Method:  http.MethodGet,
			Handler: GetStats(dataProvider),
		},
		{
			Path:    "/salesData",
			Method:  http.MethodGet,
			Handler: GetSalesData(dataProvider),
		},
		{
			Path:    "/categoryData",
			Method:  http.MethodGet,
			Handler: GetCategoryData(dataProvider),
		},
		{
			Path:    "/recentOrders",
			Method:  http.MethodGet,
			Handler: GetRecentOrders(dataProvider),
		},
	}
}

func Dashboard(service querying.Querier) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetOverview(service),
		},
		{
			Path:    "/v1/dashboard/stats",
			Method:  http.MethodGet,
			Handler: GetDashboardStats(service),
		},
		{
			Path:    "/v1/dashboard/sales",
			Method:  http.MethodGet,
			Handler: GetDashboardSales(service),
		},
		{
			Path:    "/v1/dashboard/categories",
			Method:  http.MethodGet,
			Handler: GetDashboardCategories(service),
		},
		{
			Path:    "/v1/dashboard/orders",
			Method:  http.MethodGet,
			Handler: GetDashboardOrders(service),
		},
	}
}

func DateRanges(now func() time.Time) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/date-ranges/presets",
			Method:  http.MethodGet,
			Handler: GetDateRangePresets(),
		},
		{
			Path:    "/v1/date-ranges",
			Method:  http.MethodGet,
			Handler: GetPresetDateRange(now),
		},
	}
}

func Cache(cacheManager querying.CacheManager, reporter CacheReporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cache/status",
			Method:  http.MethodGet,
			Handler: GetCacheStatus(cacheManager, reporter),
		},
		{
			Path:    "/v1/cache/purge",
			Method:  http.MethodPost,
			Handler: PurgeCache(cacheManager),
		},
		{
			Path:    "/v1/cache/invalidate",
			Method:  http.MethodPost,
			Handler: InvalidateCache(cacheManager),
		},
		{
			Path:    "/v1/cache/report/run",
			Method:  http.MethodPost,
			Handler: RunCacheReport(reporter),
		},
	}
}
