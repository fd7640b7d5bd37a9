package filtering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func orderFixture() []domain.Order {
	return []domain.Order{
		{ID: 1, Customer: "John Doe", Product: "iPhone 15", Amount: 999, Status: domain.OrderStatusCompleted, Date: domain.NewDate(2024, time.January, 15)},
		{ID: 2, Customer: "Jane Smith", Product: "MacBook Pro", Amount: 2499, Status: domain.OrderStatusProcessing, Date: domain.NewDate(2024, time.January, 14)},
		{ID: 3, Customer: "Mike Johnson", Product: "AirPods Pro", Amount: 249, Status: domain.OrderStatusShipped, Date: domain.NewDate(2024, time.January, 13)},
		{ID: 4, Customer: "Sarah Wilson", Product: "iPad Air", Amount: 599, Status: domain.OrderStatusCompleted, Date: domain.NewDate(2024, time.January, 12)},
		{ID: 5, Customer: "David Brown", Product: "Apple Watch", Amount: 399, Status: domain.OrderStatusPending, Date: domain.NewDate(2024, time.January, 11)},
		{ID: 6, Customer: "lisa Davis", Product: "MacBook Air", Amount: 1199, Status: "Refunded", Date: domain.NewDate(2024, time.January, 10)},
	}
}

func ids(orders []domain.Order) []int {
	out := make([]int, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func dateRange(t *testing.T, start, end string) *domain.DateRange {
	t.Helper()
	r, err := domain.NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestFilterOrders(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		dateRange func(t *testing.T) *domain.DateRange
		expected  []int
	}{
		{
			name:     "busca vazia mantém todos os pedidos",
			query:    "",
			expected: []int{1, 2, 3, 4, 5, 6},
		},
		{
			name:     "busca pelo cliente ignora maiúsculas",
			query:    "JANE",
			expected: []int{2},
		},
		{
			name:     "busca pelo produto",
			query:    "macbook",
			expected: []int{2, 6},
		},
		{
			name:     "busca pelo status",
			query:    "complet",
			expected: []int{1, 4},
		},
		{
			name:     "status desconhecido participa da busca como texto",
			query:    "refund",
			expected: []int{6},
		},
		{
			name:     "busca sem resultado",
			query:    "samsung",
			expected: []int{},
		},
		{
			name:      "período inclusivo nos dois limites",
			dateRange: func(t *testing.T) *domain.DateRange { return dateRange(t, "2024-01-11", "2024-01-13") },
			expected:  []int{3, 4, 5},
		},
		{
			name:      "busca e período combinados com E",
			query:     "pro",
			dateRange: func(t *testing.T) *domain.DateRange { return dateRange(t, "2024-01-13", "2024-01-31") },
			expected:  []int{2, 3},
		},
		{
			name:      "período invertido não retorna nada",
			dateRange: func(t *testing.T) *domain.DateRange { return dateRange(t, "2024-06-01", "2024-01-01") },
			expected:  []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r *domain.DateRange
			if tt.dateRange != nil {
				r = tt.dateRange(t)
			}

			result := FilterOrders(orderFixture(), tt.query, r)
			assert.Equal(t, tt.expected, ids(result))
		})
	}
}

func TestFilterOrders_OnlyMatchingElements(t *testing.T) {
	orders := orderFixture()
	for _, query := range []string{"a", "o", "pro", "Mac", "ING", "x"} {
		result := FilterOrders(orders, query, nil)
		for _, o := range result {
			assert.True(t, MatchesQuery(o, query), "pedido %d não deveria passar na busca %q", o.ID, query)
		}
		expected := 0
		for _, o := range orders {
			if MatchesQuery(o, query) {
				expected++
			}
		}
		assert.Len(t, result, expected)
	}
}

func TestSortOrders(t *testing.T) {
	tests := []struct {
		name     string
		sort     domain.SortState
		expected []int
	}{
		{"data descendente", domain.SortState{Field: domain.SortFieldDate, Direction: domain.SortDesc}, []int{1, 2, 3, 4, 5, 6}},
		{"data ascendente", domain.SortState{Field: domain.SortFieldDate, Direction: domain.SortAsc}, []int{6, 5, 4, 3, 2, 1}},
		{"valor numérico ascendente", domain.SortState{Field: domain.SortFieldAmount, Direction: domain.SortAsc}, []int{3, 5, 4, 1, 6, 2}},
		{"valor numérico descendente", domain.SortState{Field: domain.SortFieldAmount, Direction: domain.SortDesc}, []int{2, 6, 1, 4, 5, 3}},
		{"cliente sem diferenciar maiúsculas", domain.SortState{Field: domain.SortFieldCustomer, Direction: domain.SortAsc}, []int{5, 2, 1, 6, 3, 4}},
		{"id descendente", domain.SortState{Field: domain.SortFieldID, Direction: domain.SortDesc}, []int{6, 5, 4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(SortOrders(orderFixture(), tt.sort)))
		})
	}
}

func TestSortOrders_IDComparedAsText(t *testing.T) {
	orders := []domain.Order{{ID: 2}, {ID: 10}, {ID: 1}}

	tests := []struct {
		name      string
		direction domain.SortDirection
		expected  []int
	}{
		{"id ascendente em ordem de texto", domain.SortAsc, []int{1, 10, 2}},
		{"id descendente em ordem de texto", domain.SortDesc, []int{2, 10, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sorted := SortOrders(orders, domain.SortState{Field: domain.SortFieldID, Direction: tt.direction})
			assert.Equal(t, tt.expected, ids(sorted))
		})
	}
}

func TestSortOrders_StableAndIdempotent(t *testing.T) {
	orders := orderFixture()
	sort := domain.SortState{Field: domain.SortFieldStatus, Direction: domain.SortAsc}

	sorted := SortOrders(orders, sort)
	// Completed (1, 4) empatam e mantêm a ordem de entrada
	assert.Equal(t, []int{1, 4, 5, 2, 6, 3}, ids(sorted))

	again := SortOrders(sorted, sort)
	assert.Equal(t, ids(sorted), ids(again))

	desc := SortOrders(orders, domain.SortState{Field: domain.SortFieldStatus, Direction: domain.SortDesc})
	assert.Equal(t, []int{3, 6, 2, 5, 1, 4}, ids(desc))
}

func TestSortOrders_DoesNotMutateInput(t *testing.T) {
	orders := orderFixture()
	_ = SortOrders(orders, domain.SortState{Field: domain.SortFieldAmount, Direction: domain.SortAsc})
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(orders))
}

func TestView(t *testing.T) {
	orders := []domain.Order{
		{ID: 1, Customer: "John Doe", Status: domain.OrderStatusCompleted, Date: domain.NewDate(2024, time.January, 15), Amount: 999},
		{ID: 2, Customer: "Jane Smith", Status: domain.OrderStatusProcessing, Date: domain.NewDate(2024, time.January, 14), Amount: 2499},
	}

	result := View(orders, "jane", nil, domain.SortState{Field: domain.SortFieldDate, Direction: domain.SortDesc})
	require.Len(t, result, 1)
	assert.Equal(t, 2, result[0].ID)

	assert.Empty(t, View(nil, "", nil, domain.DefaultSortState))
	assert.NotNil(t, View(nil, "", nil, domain.DefaultSortState))
}
