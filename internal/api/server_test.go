package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/provider"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/querying"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
	"github.com/vfg2006/sales-dashboard-api/pkg/querycache"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestServer(t *testing.T) *Server {
	t.Helper()
	log.SetupTestLogger()

	cfg := &config.Config{
		App:    config.App{AllowedOrigins: []string{"http://localhost:3000"}},
		Server: config.Server{Port: "0"},
	}

	dataProvider := provider.NewStaticFixtureProvider()
	service := querying.NewService(cfg, dataProvider, querycache.New())

	srv, err := New(cfg, dataProvider, nil, service, scheduler.NewCacheReportService(service, cfg))
	require.NoError(t, err)
	return srv
}

func TestServer_OrdersEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/orders?q=completed&sort=amount&direction=desc", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))

	var view domain.OrdersView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))

	require.Len(t, view.Rows, 3)
	assert.Equal(t, []int{6, 1, 4}, []int{view.Rows[0].ID, view.Rows[1].ID, view.Rows[2].ID})
	assert.Equal(t, domain.StatusVariantCompleted, view.Rows[0].StatusVariant)
}

func TestServer_OverviewAndCacheStatus(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard?start_date=2024-01-01&end_date=2024-06-30", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var overview domain.Overview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &overview))
	assert.Empty(t, overview.Errors)
	assert.Len(t, overview.Sales, 6)
	assert.Equal(t, 8, overview.Orders.Total)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cache/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var status struct {
		Cache querycache.Stats `json:"cache"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, 4, status.Cache.Entries)
}
