package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func salesFixture() []domain.SalesPoint {
	series := make([]domain.SalesPoint, 0, len(domain.MonthLabels))
	for i, label := range domain.MonthLabels {
		series = append(series, domain.SalesPoint{Month: label, Revenue: float64(10000 + i*1000), Orders: 40 + i})
	}
	return series
}

func months(series []domain.SalesPoint) []string {
	out := make([]string, 0, len(series))
	for _, p := range series {
		out = append(out, p.Month)
	}
	return out
}

func TestBucket(t *testing.T) {
	series := salesFixture()

	t.Run("sem período devolve a série original", func(t *testing.T) {
		assert.Equal(t, series, Bucket(series, nil, domain.DefaultSalesReferenceYear))
	})

	t.Run("março a maio", func(t *testing.T) {
		r, err := domain.NewDateRange("2024-03-01", "2024-05-31")
		require.NoError(t, err)

		assert.Equal(t, []string{"Mar", "Apr", "May"}, months(Bucket(series, r, domain.DefaultSalesReferenceYear)))
	})

	t.Run("início depois do dia 1 exclui o mês inteiro", func(t *testing.T) {
		r, err := domain.NewDateRange("2024-03-02", "2024-06-01")
		require.NoError(t, err)

		assert.Equal(t, []string{"Apr", "May", "Jun"}, months(Bucket(series, r, domain.DefaultSalesReferenceYear)))
	})

	t.Run("período invertido não retorna nada", func(t *testing.T) {
		r, err := domain.NewDateRange("2024-06-01", "2024-01-01")
		require.NoError(t, err)

		assert.Empty(t, Bucket(series, r, domain.DefaultSalesReferenceYear))
	})

	t.Run("período fora do ano de referência", func(t *testing.T) {
		r, err := domain.NewDateRange("2025-01-01", "2025-12-31")
		require.NoError(t, err)

		assert.Empty(t, Bucket(series, r, domain.DefaultSalesReferenceYear))
		assert.Len(t, Bucket(series, r, 2025), 12)
	})

	t.Run("rótulo desconhecido é descartado", func(t *testing.T) {
		r, err := domain.NewDateRange("2024-01-01", "2024-12-31")
		require.NoError(t, err)

		withUnknown := append(salesFixture(), domain.SalesPoint{Month: "Q1"})
		assert.Len(t, Bucket(withUnknown, r, domain.DefaultSalesReferenceYear), 12)
	})
}
