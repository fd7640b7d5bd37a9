package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSortField     = errors.New("invalid sort field")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
)

type SortField string

const (
	SortFieldID       SortField = "id"
	SortFieldCustomer SortField = "customer"
	SortFieldProduct  SortField = "product"
	SortFieldAmount   SortField = "amount"
	SortFieldStatus   SortField = "status"
	SortFieldDate     SortField = "date"
)

var SortFields = []SortField{
	SortFieldID,
	SortFieldCustomer,
	SortFieldProduct,
	SortFieldAmount,
	SortFieldStatus,
	SortFieldDate,
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func (d SortDirection) Flip() SortDirection {
	if d == SortAsc {
		return SortDesc
	}
	return SortAsc
}

func ParseSortField(value string) (SortField, error) {
	field := SortField(strings.ToLower(strings.TrimSpace(value)))
	for _, f := range SortFields {
		if f == field {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortField, value)
}

func ParseSortDirection(value string) (SortDirection, error) {
	switch SortDirection(strings.ToLower(strings.TrimSpace(value))) {
	case SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortDirection, value)
	}
}

// SortState é o estado de ordenação da tabela de pedidos
type SortState struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSortState ordena pelos pedidos mais recentes primeiro
var DefaultSortState = SortState{Field: SortFieldDate, Direction: SortDesc}

// Toggle aplica a seleção de uma coluna: a mesma coluna inverte a direção,
// uma coluna nova volta para ascendente.
func (s SortState) Toggle(field SortField) SortState {
	if s.Field == field {
		return SortState{Field: field, Direction: s.Direction.Flip()}
	}
	return SortState{Field: field, Direction: SortAsc}
}
