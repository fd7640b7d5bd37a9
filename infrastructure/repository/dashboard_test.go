package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSearchOrdersQuery(t *testing.T) {
	t.Run("sem busca lista todos os pedidos", func(t *testing.T) {
		query, args, err := buildSearchOrdersQuery("")
		require.NoError(t, err)

		assert.Equal(t, "SELECT id, customer, product, amount, status, order_date FROM orders ORDER BY order_date DESC, id ASC", query)
		assert.Empty(t, args)
	})

	t.Run("busca em cliente, produto e status", func(t *testing.T) {
		query, args, err := buildSearchOrdersQuery("jane")
		require.NoError(t, err)

		assert.Contains(t, query, "customer ILIKE $1")
		assert.Contains(t, query, "product ILIKE $2")
		assert.Contains(t, query, "status ILIKE $3")
		assert.Equal(t, []any{"%jane%", "%jane%", "%jane%"}, args)
	})

	t.Run("curingas do usuário são escapados", func(t *testing.T) {
		_, args, err := buildSearchOrdersQuery("50%_off")
		require.NoError(t, err)

		assert.Equal(t, `%50\%\_off%`, args[0])
	})
}
