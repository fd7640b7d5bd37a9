package dashboardclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client consome a API de dados do dashboard (GET /stats, /salesData, /categoryData, /recentOrders)
type Client interface {
	GetStats(ctx context.Context) (*domain.StatsSummary, error)
	GetSalesData(ctx context.Context) ([]domain.SalesPoint, error)
	GetCategoryData(ctx context.Context) ([]domain.CategorySlice, error)
	GetRecentOrders(ctx context.Context, query string) ([]domain.Order, error)
}

// StatusError é retornado quando a API responde com status diferente de 2xx
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("requisição %s falhou com status %d: %s", e.URL, e.StatusCode, e.Body)
}

type DashboardClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Remote.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &DashboardClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.Remote.BaseURL,
	}
}

func (c *DashboardClient) GetStats(ctx context.Context) (*domain.StatsSummary, error) {
	var response domain.StatsSummary
	if err := c.get(ctx, "/stats", nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *DashboardClient) GetSalesData(ctx context.Context) ([]domain.SalesPoint, error) {
	response := []domain.SalesPoint{}
	if err := c.get(ctx, "/salesData", nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *DashboardClient) GetCategoryData(ctx context.Context) ([]domain.CategorySlice, error) {
	response := []domain.CategorySlice{}
	if err := c.get(ctx, "/categoryData", nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *DashboardClient) GetRecentOrders(ctx context.Context, query string) ([]domain.Order, error) {
	var params url.Values
	if query != "" {
		params = url.Values{"q": []string{query}}
	}

	response := []domain.Order{}
	if err := c.get(ctx, "/recentOrders", params, &response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *DashboardClient) get(ctx context.Context, resource string, params url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, resource)
	if params != nil {
		endpoint.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{URL: endpoint.String(), StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
