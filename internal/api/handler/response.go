package handler

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao enviar resposta")
	}
}

// writeQueryError traduz os erros da camada de consulta para o envelope da API
func writeQueryError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	if resource, ok := domain.UnavailableResource(err); ok {
		logger.WithField("resource", resource).Warn("fonte de dados indisponível")
		apiErrors.WriteError(w, apiErrors.ErrDataUnavailable, "Não foi possível carregar os dados", map[string]string{
			"resource": resource,
		})
		return
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		logger.Warn("consulta interrompida antes da conclusão")
		apiErrors.WriteError(w, apiErrors.ErrTimeout, "A consulta não terminou a tempo", nil)
		return
	}

	logger.Error("erro inesperado na consulta")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}

// dateRangeFrom lê start_date/end_date. Um range incompleto ou inválido é ignorado
// (consulta sem filtro de período) e apenas registrado.
func dateRangeFrom(r *http.Request) *domain.DateRange {
	query := r.URL.Query()

	dateRange, err := domain.NewDateRange(query.Get("start_date"), query.Get("end_date"))
	if err != nil {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"start_date": query.Get("start_date"),
			"end_date":   query.Get("end_date"),
			"error":      err.Error(),
		}).Warn("período inválido ignorado")
		return nil
	}

	if dateRange.Inverted() {
		log.ForContext(r.Context()).WithField("date_range", dateRange.String()).Debug("período invertido, nenhum registro será retornado")
	}

	return dateRange
}
