package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func GetDateRangePresets() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, domain.Presets)
	})
}

// GetPresetDateRange calcula o período de um preset (?preset=30) a partir de hoje
func GetPresetDateRange(now func() time.Time) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		value := r.URL.Query().Get("preset")
		if value == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro preset é obrigatório", nil)
			return
		}

		days, err := strconv.Atoi(value)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro preset deve ser um número de dias", nil)
			return
		}

		dateRange, err := domain.PresetRange(days, now())
		if err != nil {
			if errors.Is(err, domain.ErrUnknownPreset) {
				log.ForContext(r.Context()).WithField("preset", days).Warn("date-ranges: preset desconhecido")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), domain.Presets)
				return
			}
			writeQueryError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, dateRange)
	})
}
