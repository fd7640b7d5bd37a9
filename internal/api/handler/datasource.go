package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/provider"
)

// Os handlers desta seção expõem os conjuntos crus do provider, no mesmo contrato
// consumido pelo RemoteProvider.

func GetStats(dataProvider provider.DataProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats, err := dataProvider.GetStats(r.Context())
		if err != nil {
			writeQueryError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, stats)
	})
}

func GetSalesData(dataProvider provider.DataProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		series, err := dataProvider.GetSalesData(r.Context())
		if err != nil {
			writeQueryError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, series)
	})
}

func GetCategoryData(dataProvider provider.DataProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		categories, err := dataProvider.GetCategoryData(r.Context())
		if err != nil {
			writeQueryError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, categories)
	})
}

func GetRecentOrders(dataProvider provider.DataProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orders, err := dataProvider.GetRecentOrders(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			writeQueryError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, orders)
	})
}
