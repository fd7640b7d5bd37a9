package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	t.Run("gera novo ID quando o cabeçalho está vazio", func(t *testing.T) {
		ctx, id := WithCorrelationID(context.Background(), "")

		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, GetCorrelationID(ctx))
	})

	t.Run("reaproveita ID válido recebido", func(t *testing.T) {
		incoming := uuid.New().String()
		ctx, id := WithCorrelationID(context.Background(), incoming)

		assert.Equal(t, incoming, id)
		assert.Equal(t, incoming, GetCorrelationID(ctx))
	})

	t.Run("descarta ID inválido", func(t *testing.T) {
		_, id := WithCorrelationID(context.Background(), "not-a-uuid")
		assert.NotEqual(t, "not-a-uuid", id)
	})
}

func TestGetCorrelationIDWithoutValue(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
}
