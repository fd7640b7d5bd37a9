package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/querying"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// CacheReporter é o agendador do relatório de cache
type CacheReporter interface {
	TriggerManualReport() *scheduler.CacheReport
	GetStatus() map[string]any
}

// GetCacheStatus retorna as estatísticas do cache e o status do relatório periódico
func GetCacheStatus(cacheManager querying.CacheManager, reporter CacheReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"cache": cacheManager.CacheStats(),
		}
		if reporter != nil {
			response["report"] = reporter.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}

// PurgeCache descarta todas as entradas; a próxima consulta de cada chave busca de novo
func PurgeCache(cacheManager querying.CacheManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		before := cacheManager.CacheStats().Entries
		cacheManager.PurgeCache()

		log.ForContext(r.Context()).WithField("entries", before).Info("cache: entradas descartadas manualmente")

		writeJSON(w, r, http.StatusOK, map[string]any{
			"message": "Cache descartado com sucesso",
			"purged":  before,
		})
	})
}

// InvalidateCache descarta as entradas de um único recurso (?resource=stats)
func InvalidateCache(cacheManager querying.CacheManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resource := strings.TrimSpace(r.URL.Query().Get("resource"))
		if resource == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro resource é obrigatório", nil)
			return
		}

		removed, err := cacheManager.InvalidateCache(resource)
		if errors.Is(err, domain.ErrUnknownResource) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Recurso desconhecido", map[string]any{
				"resource":  resource,
				"resources": domain.Resources,
			})
			return
		}
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"resource": resource,
			"entries":  removed,
		}).Info("cache: recurso invalidado manualmente")

		writeJSON(w, r, http.StatusOK, map[string]any{
			"resource":    resource,
			"invalidated": removed,
		})
	})
}

func RunCacheReport(reporter CacheReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if reporter == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Relatório de cache não disponível", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, reporter.TriggerManualReport())
	})
}
