package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{name: "preset inválido", code: ErrInvalidRequest, expectedStatus: http.StatusBadRequest},
		{name: "ordenação inválida", code: ErrInvalidFormat, expectedStatus: http.StatusBadRequest},
		{name: "fonte indisponível", code: ErrDataUnavailable, expectedStatus: http.StatusBadGateway},
		{name: "tempo esgotado", code: ErrTimeout, expectedStatus: http.StatusGatewayTimeout},
		{name: "banco inacessível", code: ErrDatabaseOperation, expectedStatus: http.StatusServiceUnavailable},
		{name: "código desconhecido vira 500", code: "XYZ_999", expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string]string{"resource": "stats"})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
			assert.Equal(t, map[string]any{"resource": "stats"}, body.Details)
		})
	}
}
