package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/querying"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetOverview carrega todos os painéis. Falhas individuais vêm em "errors" e não
// alteram o status da resposta.
func GetOverview(service querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		overview := service.GetOverview(r.Context(), dateRangeFrom(r))

		if len(overview.Errors) > 0 {
			log.ForContext(r.Context()).WithField("failed_panels", len(overview.Errors)).Warn("dashboard: visão geral parcial")
		}

		writeJSON(w, r, http.StatusOK, overview)
	})
}

func GetDashboardStats(service querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.GetStats(r.Context())
		if err != nil {
			writeQueryError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, stats)
	})
}

func GetDashboardSales(service querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		series, err := service.GetSalesData(r.Context(), dateRangeFrom(r))
		if err != nil {
			writeQueryError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, series)
	})
}

func GetDashboardCategories(service querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		categories, err := service.GetCategoryData(r.Context())
		if err != nil {
			writeQueryError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, categories)
	})
}

// GetDashboardOrders devolve a tabela de pedidos. sort/direction informam o estado atual
// e toggle a coluna clicada; a resposta traz o estado resultante.
func GetDashboardOrders(service querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sortState, err := sortStateFrom(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: ordenação inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]any{
				"fields":     domain.SortFields,
				"directions": []domain.SortDirection{domain.SortAsc, domain.SortDesc},
			})
			return
		}

		filter := domain.OrdersFilter{
			Query:     strings.TrimSpace(r.URL.Query().Get("q")),
			DateRange: dateRangeFrom(r),
			Sort:      sortState,
		}

		view, err := service.GetRecentOrders(r.Context(), filter)
		if err != nil {
			writeQueryError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"query":      filter.Query,
			"date_range": filter.DateRange.String(),
			"sort":       string(view.Sort.Field) + " " + string(view.Sort.Direction),
			"total":      view.Total,
		}).Debug("dashboard: pedidos filtrados")

		writeJSON(w, r, http.StatusOK, view)
	})
}

func sortStateFrom(r *http.Request) (domain.SortState, error) {
	query := r.URL.Query()
	state := domain.DefaultSortState

	if value := query.Get("sort"); value != "" {
		field, err := domain.ParseSortField(value)
		if err != nil {
			return state, err
		}
		state = domain.SortState{Field: field, Direction: domain.SortAsc}
	}

	if value := query.Get("direction"); value != "" {
		direction, err := domain.ParseSortDirection(value)
		if err != nil {
			return state, err
		}
		state.Direction = direction
	}

	if value := query.Get("toggle"); value != "" {
		field, err := domain.ParseSortField(value)
		if err != nil {
			return state, err
		}
		state = state.Toggle(field)
	}

	return state, nil
}
