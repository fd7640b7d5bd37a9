package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	statsTable      = "dashboard_stats"
	salesDataTable  = "sales_data"
	categoriesTable = "category_data"
	ordersTable     = "orders"
)

// Schema cria as tabelas lidas pelo DashboardRepository
const Schema = `
CREATE TABLE IF NOT EXISTS dashboard_stats (
	id              SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
	total_revenue   NUMERIC(14, 2) NOT NULL DEFAULT 0,
	total_users     INTEGER        NOT NULL DEFAULT 0,
	total_orders    INTEGER        NOT NULL DEFAULT 0,
	conversion_rate NUMERIC(6, 2)  NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS sales_data (
	position SMALLINT PRIMARY KEY,
	month    VARCHAR(3)     NOT NULL UNIQUE,
	revenue  NUMERIC(14, 2) NOT NULL CHECK (revenue >= 0),
	orders   INTEGER        NOT NULL CHECK (orders >= 0)
);

CREATE TABLE IF NOT EXISTS category_data (
	name     VARCHAR(100) PRIMARY KEY,
	value    NUMERIC(5, 2) NOT NULL,
	color    VARCHAR(20)   NOT NULL,
	position SMALLINT      NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
	id         INTEGER PRIMARY KEY,
	customer   VARCHAR(200)   NOT NULL,
	product    VARCHAR(200)   NOT NULL,
	amount     NUMERIC(14, 2) NOT NULL,
	status     VARCHAR(50)    NOT NULL,
	order_date DATE           NOT NULL
);
`

//go:generate mockgen -source=dashboard.go -destination=mocks/mock_dashboard.go -package=mocks

type DashboardRepository interface {
	GetStats(ctx context.Context) (*domain.StatsSummary, error)
	ListSalesData(ctx context.Context) ([]domain.SalesPoint, error)
	ListCategories(ctx context.Context) ([]domain.CategorySlice, error)
	SearchOrders(ctx context.Context, query string) ([]domain.Order, error)

	SaveStats(ctx context.Context, stats domain.StatsSummary) error
	SaveSalesData(ctx context.Context, series []domain.SalesPoint) error
	SaveCategories(ctx context.Context, categories []domain.CategorySlice) error
	SaveOrders(ctx context.Context, orders []domain.Order) error
}

type dashboardRepository struct {
	conn postgres.Queryer
}

func NewDashboardRepository(conn postgres.Queryer) DashboardRepository {
	return &dashboardRepository{
		conn: conn,
	}
}

func (r *dashboardRepository) GetStats(ctx context.Context) (*domain.StatsSummary, error) {
	query, args, err := squirrel.
		Select("total_revenue", "total_users", "total_orders", "conversion_rate").
		From(statsTable).
		Where(squirrel.Eq{"id": 1}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var stats domain.StatsSummary
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalRevenue,
		&stats.TotalUsers,
		&stats.TotalOrders,
		&stats.ConversionRate,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.StatsSummary{}, nil
		}
		return nil, fmt.Errorf("erro ao escanear stats: %w", err)
	}

	stats.TotalRevenue = utils.RoundWithTwoDecimalPlace(stats.TotalRevenue)
	stats.ConversionRate = utils.RoundWithTwoDecimalPlace(stats.ConversionRate)

	return &stats, nil
}

func (r *dashboardRepository) ListSalesData(ctx context.Context) ([]domain.SalesPoint, error) {
	query, args, err := squirrel.
		Select("month", "revenue", "orders").
		From(salesDataTable).
		OrderBy("position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	series := make([]domain.SalesPoint, 0, len(domain.MonthLabels))
	for rows.Next() {
		var point domain.SalesPoint
		if err := rows.Scan(&point.Month, &point.Revenue, &point.Orders); err != nil {
			return nil, fmt.Errorf("erro ao escanear série de vendas: %w", err)
		}
		series = append(series, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return series, nil
}

func (r *dashboardRepository) ListCategories(ctx context.Context) ([]domain.CategorySlice, error) {
	query, args, err := squirrel.
		Select("name", "value", "color").
		From(categoriesTable).
		OrderBy("position ASC", "name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.CategorySlice, 0)
	for rows.Next() {
		var slice domain.CategorySlice
		if err := rows.Scan(&slice.Name, &slice.Value, &slice.Color); err != nil {
			return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
		}
		categories = append(categories, slice)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return categories, nil
}

func (r *dashboardRepository) SearchOrders(ctx context.Context, search string) ([]domain.Order, error) {
	query, args, err := buildSearchOrdersQuery(search)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var (
			order     domain.Order
			status    string
			orderDate time.Time
		)
		if err := rows.Scan(&order.ID, &order.Customer, &order.Product, &order.Amount, &status, &orderDate); err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}
		order.Status = domain.OrderStatus(status)
		order.Date = domain.DateOf(orderDate)
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

// buildSearchOrdersQuery busca por cliente, produto ou status (ILIKE), mais recentes primeiro
func buildSearchOrdersQuery(search string) (string, []any, error) {
	builder := squirrel.
		Select("id", "customer", "product", "amount", "status", "order_date").
		From(ordersTable).
		OrderBy("order_date DESC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if search != "" {
		pattern := "%" + escapeLike(search) + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"customer": pattern},
			squirrel.ILike{"product": pattern},
			squirrel.ILike{"status": pattern},
		})
	}

	return builder.ToSql()
}

func escapeLike(value string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
}

func (r *dashboardRepository) SaveStats(ctx context.Context, stats domain.StatsSummary) error {
	query, args, err := squirrel.
		Insert(statsTable).
		Columns("id", "total_revenue", "total_users", "total_orders", "conversion_rate").
		Values(1, stats.TotalRevenue, stats.TotalUsers, stats.TotalOrders, stats.ConversionRate).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				total_revenue = EXCLUDED.total_revenue,
				total_users = EXCLUDED.total_users,
				total_orders = EXCLUDED.total_orders,
				conversion_rate = EXCLUDED.conversion_rate
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.exec(ctx, query, args...)
}

func (r *dashboardRepository) SaveSalesData(ctx context.Context, series []domain.SalesPoint) error {
	if len(series) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(salesDataTable).
		Columns("position", "month", "revenue", "orders").
		Suffix(`
			ON CONFLICT (position) DO UPDATE SET
				month = EXCLUDED.month,
				revenue = EXCLUDED.revenue,
				orders = EXCLUDED.orders
		`).
		PlaceholderFormat(squirrel.Dollar)

	for i, point := range series {
		builder = builder.Values(i+1, point.Month, point.Revenue, point.Orders)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.exec(ctx, query, args...)
}

func (r *dashboardRepository) SaveCategories(ctx context.Context, categories []domain.CategorySlice) error {
	if len(categories) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(categoriesTable).
		Columns("name", "value", "color", "position").
		Suffix(`
			ON CONFLICT (name) DO UPDATE SET
				value = EXCLUDED.value,
				color = EXCLUDED.color,
				position = EXCLUDED.position
		`).
		PlaceholderFormat(squirrel.Dollar)

	for i, slice := range categories {
		builder = builder.Values(slice.Name, slice.Value, slice.Color, i+1)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.exec(ctx, query, args...)
}

func (r *dashboardRepository) SaveOrders(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(ordersTable).
		Columns("id", "customer", "product", "amount", "status", "order_date").
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				customer = EXCLUDED.customer,
				product = EXCLUDED.product,
				amount = EXCLUDED.amount,
				status = EXCLUDED.status,
				order_date = EXCLUDED.order_date
		`).
		PlaceholderFormat(squirrel.Dollar)

	for _, order := range orders {
		builder = builder.Values(order.ID, order.Customer, order.Product, order.Amount, string(order.Status), order.Date.String())
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.exec(ctx, query, args...)
}

func (r *dashboardRepository) exec(ctx context.Context, query string, args ...any) error {
	_, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}
	return nil
}
