package dashboardclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&config.Config{Remote: config.Remote{BaseURL: srv.URL, Timeout: time.Second}})
}

func TestDashboardClient_GetRecentOrders(t *testing.T) {
	var receivedQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recentOrders", r.URL.Path)
		receivedQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":2,"customer":"Jane Smith","product":"MacBook Pro","amount":2499,"status":"Processing","date":"2024-01-14"}]`))
	})

	orders, err := client.GetRecentOrders(context.Background(), "jane & co")
	require.NoError(t, err)

	assert.Equal(t, "jane & co", receivedQuery)
	require.Len(t, orders, 1)
	assert.Equal(t, 2, orders[0].ID)
	assert.Equal(t, domain.OrderStatusProcessing, orders[0].Status)
	assert.Equal(t, domain.NewDate(2024, time.January, 14), orders[0].Date)
}

func TestDashboardClient_GetStats(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stats", r.URL.Path)
		_, _ = w.Write([]byte(`{"totalRevenue":125000,"totalUsers":2847,"totalOrders":156,"conversionRate":3.2}`))
	})

	stats, err := client.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.StatsSummary{TotalRevenue: 125000, TotalUsers: 2847, TotalOrders: 156, ConversionRate: 3.2}, stats)
}

func TestDashboardClient_EmptyArrayIsNotAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	slices, err := client.GetCategoryData(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, slices)
	assert.Empty(t, slices)
}

func TestDashboardClient_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "indisponível", http.StatusServiceUnavailable)
	})

	_, err := client.GetSalesData(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
}

func TestDashboardClient_InvalidBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	_, err := client.GetSalesData(context.Background())
	assert.Error(t, err)
}
