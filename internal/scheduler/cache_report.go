package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/querying"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/querycache"
)

// CacheReportConfig representa a configuração do relatório periódico do cache
type CacheReportConfig struct {
	CronSchedule string
	Enabled      bool
}

// CacheReport é o retrato do cache em um instante, com a taxa de acerto acumulada
type CacheReport struct {
	querycache.Stats
	HitRatio    float64   `json:"hit_ratio"`
	GeneratedAt time.Time `json:"generated_at"`
}

// CacheReportService registra periodicamente o estado do cache de consultas
type CacheReportService struct {
	scheduler    *gocron.Scheduler
	config       CacheReportConfig
	cacheManager querying.CacheManager
	now          func() time.Time

	mu          sync.Mutex
	running     bool
	lastReport  *CacheReport
	reportCount int
}

func NewCacheReportService(cacheManager querying.CacheManager, appConfig *config.Config) *CacheReportService {
	reportConfig := CacheReportConfig{
		CronSchedule: appConfig.CacheReport.CronSchedule,
		Enabled:      appConfig.CacheReport.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": reportConfig.CronSchedule,
		"enabled":       reportConfig.Enabled,
	}).Info("Configuração do relatório de cache carregada")

	return &CacheReportService{
		scheduler:    gocron.NewScheduler(time.UTC),
		config:       reportConfig,
		cacheManager: cacheManager,
		now:          time.Now,
	}
}

// Start agenda o relatório e para o agendador quando ctx for cancelado
func (s *CacheReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Relatório de cache desabilitado por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do relatório de cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.report()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório de cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador do relatório de cache")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualReport gera o relatório imediatamente, fora do agendamento
func (s *CacheReportService) TriggerManualReport() *CacheReport {
	log.L.Info("Gerando relatório de cache manualmente")
	return s.report()
}

func (s *CacheReportService) report() *CacheReport {
	s.mu.Lock()
	if s.running {
		last := s.lastReport
		s.mu.Unlock()
		log.L.Info("Relatório de cache já em andamento, ignorando")
		return last
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	stats := s.cacheManager.CacheStats()
	report := &CacheReport{
		Stats:       stats,
		HitRatio:    hitRatio(stats),
		GeneratedAt: s.now(),
	}

	log.L.WithFields(log.Fields{
		"entries":   stats.Entries,
		"hits":      stats.Hits,
		"misses":    stats.Misses,
		"loads":     stats.Loads,
		"failures":  stats.Failures,
		"hit_ratio": report.HitRatio,
	}).Info("Relatório do cache de consultas")

	s.mu.Lock()
	s.lastReport = report
	s.reportCount++
	s.mu.Unlock()

	return report
}

func hitRatio(stats querycache.Stats) float64 {
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0
	}
	return float64(stats.Hits) / float64(total)
}

// GetStatus retorna o status atual do agendador
func (s *CacheReportService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := map[string]any{
		"report_running": s.running,
		"report_cron":    s.config.CronSchedule,
		"report_enabled": s.config.Enabled,
		"report_count":   s.reportCount,
	}
	if s.lastReport != nil {
		status["last_report"] = s.lastReport
	}

	return status
}
