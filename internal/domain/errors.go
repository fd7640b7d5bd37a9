package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Recursos expostos pela fonte de dados
const (
	ResourceStats        = "stats"
	ResourceSalesData    = "salesData"
	ResourceCategoryData = "categoryData"
	ResourceRecentOrders = "recentOrders"
)

var Resources = []string{ResourceStats, ResourceSalesData, ResourceCategoryData, ResourceRecentOrders}

var (
	ErrDataUnavailable = errors.New("data unavailable")
	ErrUnknownResource = errors.New("unknown resource")
)

// ParseResource aceita o nome do recurso sem diferenciar maiúsculas
func ParseResource(value string) (string, error) {
	value = strings.TrimSpace(value)
	for _, r := range Resources {
		if strings.EqualFold(r, value) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownResource, value)
}

// DataUnavailableError indica que a fonte de dados falhou para um recurso específico.
// Um resultado vazio nunca é reportado com este erro.
type DataUnavailableError struct {
	Resource string
	Err      error
}

func NewDataUnavailableError(resource string, err error) *DataUnavailableError {
	return &DataUnavailableError{Resource: resource, Err: err}
}

func (e *DataUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Resource, ErrDataUnavailable)
	}
	return fmt.Sprintf("%s: %s: %v", e.Resource, ErrDataUnavailable, e.Err)
}

func (e *DataUnavailableError) Unwrap() error {
	return e.Err
}

func (e *DataUnavailableError) Is(target error) bool {
	return target == ErrDataUnavailable
}

// UnavailableResource extrai o recurso de um DataUnavailableError na cadeia de err
func UnavailableResource(err error) (string, bool) {
	var dataErr *DataUnavailableError
	if errors.As(err, &dataErr) {
		return dataErr.Resource, true
	}
	return "", false
}
