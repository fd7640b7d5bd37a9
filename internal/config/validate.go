package config

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid config")

// Validate verifica os valores que não têm fallback razoável
func (c *Config) Validate() error {
	switch c.Provider.Mode {
	case ProviderModeStatic, ProviderModePostgres:
	case ProviderModeRemote:
		if c.Remote.BaseURL == "" {
			return fmt.Errorf("%w: REMOTE_BASE_URL é obrigatório no modo remote", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: PROVIDER_MODE desconhecido %q", ErrInvalidConfig, c.Provider.Mode)
	}

	if c.Cache.StaticStaleTime <= 0 || c.Cache.OrdersStaleTime <= 0 {
		return fmt.Errorf("%w: janelas de cache devem ser positivas", ErrInvalidConfig)
	}

	if c.Sales.ReferenceYear <= 0 {
		return fmt.Errorf("%w: SALES_REFERENCE_YEAR inválido", ErrInvalidConfig)
	}

	return nil
}
