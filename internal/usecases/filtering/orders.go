// Package filtering contém o motor de filtro e ordenação das visões do dashboard.
// Nenhuma função altera a fatia recebida; todas devolvem uma nova fatia.
package filtering

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// MatchesQuery verifica se a busca (case-insensitive) aparece no cliente, produto ou status
func MatchesQuery(order domain.Order, query string) bool {
	if query == "" {
		return true
	}

	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(order.Customer), q) ||
		strings.Contains(strings.ToLower(order.Product), q) ||
		strings.Contains(strings.ToLower(string(order.Status)), q)
}

// FilterOrders mantém os pedidos que satisfazem a busca E o período
func FilterOrders(orders []domain.Order, query string, dateRange *domain.DateRange) []domain.Order {
	filtered := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if MatchesQuery(order, query) && dateRange.Contains(order.Date) {
			filtered = append(filtered, order)
		}
	}
	return filtered
}

// SortOrders ordena de forma estável; empates preservam a ordem de entrada
func SortOrders(orders []domain.Order, sort domain.SortState) []domain.Order {
	sorted := slices.Clone(orders)
	if sorted == nil {
		sorted = []domain.Order{}
	}

	compare := comparatorFor(sort.Field)
	if sort.Direction == domain.SortDesc {
		asc := compare
		compare = func(a, b domain.Order) int { return -asc(a, b) }
	}

	slices.SortStableFunc(sorted, compare)
	return sorted
}

// View aplica filtro e ordenação, produzindo a visão da tabela de pedidos
func View(orders []domain.Order, query string, dateRange *domain.DateRange, sort domain.SortState) []domain.Order {
	return SortOrders(FilterOrders(orders, query, dateRange), sort)
}

func comparatorFor(field domain.SortField) func(a, b domain.Order) int {
	switch field {
	case domain.SortFieldID:
		// id é comparado como texto, igual às demais colunas sem comparador próprio
		return foldedString(func(o domain.Order) string { return strconv.Itoa(o.ID) })
	case domain.SortFieldAmount:
		return func(a, b domain.Order) int { return cmp.Compare(a.Amount, b.Amount) }
	case domain.SortFieldDate:
		return func(a, b domain.Order) int { return a.Date.Compare(b.Date) }
	case domain.SortFieldCustomer:
		return foldedString(func(o domain.Order) string { return o.Customer })
	case domain.SortFieldProduct:
		return foldedString(func(o domain.Order) string { return o.Product })
	case domain.SortFieldStatus:
		return foldedString(func(o domain.Order) string { return string(o.Status) })
	default:
		return func(a, b domain.Order) int { return 0 }
	}
}

func foldedString(value func(domain.Order) string) func(a, b domain.Order) int {
	return func(a, b domain.Order) int {
		return strings.Compare(strings.ToLower(value(a)), strings.ToLower(value(b)))
	}
}
