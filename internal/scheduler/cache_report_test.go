package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/querying/mocks"
	"github.com/vfg2006/sales-dashboard-api/pkg/querycache"
)

func newCacheReportService(t *testing.T, enabled bool) (*CacheReportService, *mocks.MockCacheManager) {
	ctrl := gomock.NewController(t)
	cacheManager := mocks.NewMockCacheManager(ctrl)

	cfg := &config.Config{
		CacheReport: config.CacheReport{CronSchedule: "*/15 * * * *", Enabled: enabled},
	}

	service := NewCacheReportService(cacheManager, cfg)
	service.now = func() time.Time { return time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC) }

	return service, cacheManager
}

func TestCacheReportService_TriggerManualReport(t *testing.T) {
	tests := []struct {
		name          string
		stats         querycache.Stats
		expectedRatio float64
	}{
		{
			name:          "Cache sem consultas - taxa de acerto zero",
			stats:         querycache.Stats{},
			expectedRatio: 0,
		},
		{
			name:          "Três acertos e uma falta - taxa de 75%",
			stats:         querycache.Stats{Entries: 2, Hits: 3, Misses: 1, Loads: 1},
			expectedRatio: 0.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, cacheManager := newCacheReportService(t, false)
			cacheManager.EXPECT().CacheStats().Return(tt.stats)

			report := service.TriggerManualReport()

			require.NotNil(t, report)
			assert.Equal(t, tt.stats, report.Stats)
			assert.InDelta(t, tt.expectedRatio, report.HitRatio, 0.0001)
			assert.Equal(t, time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC), report.GeneratedAt)
		})
	}
}

func TestCacheReportService_GetStatus(t *testing.T) {
	service, cacheManager := newCacheReportService(t, false)

	status := service.GetStatus()
	assert.Equal(t, false, status["report_running"])
	assert.Equal(t, "*/15 * * * *", status["report_cron"])
	assert.Equal(t, 0, status["report_count"])
	assert.NotContains(t, status, "last_report")

	cacheManager.EXPECT().CacheStats().Return(querycache.Stats{Hits: 1})
	service.TriggerManualReport()

	status = service.GetStatus()
	assert.Equal(t, 1, status["report_count"])
	assert.Contains(t, status, "last_report")
}

func TestCacheReportService_Start(t *testing.T) {
	t.Run("Desabilitado - não agenda nada", func(t *testing.T) {
		service, _ := newCacheReportService(t, false)

		require.NoError(t, service.Start(context.Background()))
		assert.Equal(t, 0, service.scheduler.Len())
	})

	t.Run("Habilitado - agenda e para com o contexto", func(t *testing.T) {
		service, _ := newCacheReportService(t, true)
		ctx, cancel := context.WithCancel(context.Background())

		require.NoError(t, service.Start(ctx))
		assert.Equal(t, 1, service.scheduler.Len())

		cancel()
		assert.Eventually(t, func() bool { return !service.scheduler.IsRunning() }, time.Second, 10*time.Millisecond)
	})

	t.Run("Expressão cron inválida", func(t *testing.T) {
		service, _ := newCacheReportService(t, true)
		service.config.CronSchedule = "não é cron"

		assert.Error(t, service.Start(context.Background()))
	})
}
