package domain

// CategorySlice é uma fatia da distribuição por categoria. Os valores não precisam somar 100.
type CategorySlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

type StatsSummary struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalUsers     int     `json:"totalUsers"`
	TotalOrders    int     `json:"totalOrders"`
	ConversionRate float64 `json:"conversionRate"`
}
