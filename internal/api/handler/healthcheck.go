package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const healthcheckTimeout = 2 * time.Second

// Pinger verifica a dependência externa do provider (o banco no modo postgres)
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde ok; com backend informado, o banco precisa responder ao ping
func HealthcheckHandler(backend Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if backend != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
			defer cancel()

			if err := backend.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Error("healthcheck: banco de dados indisponível")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Banco de dados indisponível", nil)
				return
			}
		}

		writeJSON(w, r, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
}
