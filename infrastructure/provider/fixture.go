package provider

import (
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Fixture é o conjunto estático servido no modo static e usado para popular o banco
type Fixture struct {
	Stats        domain.StatsSummary
	SalesData    []domain.SalesPoint
	CategoryData []domain.CategorySlice
	RecentOrders []domain.Order
}

func DefaultFixture() Fixture {
	return Fixture{
		Stats: domain.StatsSummary{
			TotalRevenue:   125000,
			TotalUsers:     2847,
			TotalOrders:    156,
			ConversionRate: 3.2,
		},
		SalesData: []domain.SalesPoint{
			{Month: "Jan", Revenue: 12000, Orders: 45},
			{Month: "Feb", Revenue: 15000, Orders: 52},
			{Month: "Mar", Revenue: 18000, Orders: 61},
			{Month: "Apr", Revenue: 22000, Orders: 73},
			{Month: "May", Revenue: 25000, Orders: 84},
			{Month: "Jun", Revenue: 28000, Orders: 92},
			{Month: "Jul", Revenue: 32000, Orders: 105},
			{Month: "Aug", Revenue: 35000, Orders: 118},
			{Month: "Sep", Revenue: 38000, Orders: 125},
			{Month: "Oct", Revenue: 42000, Orders: 138},
			{Month: "Nov", Revenue: 45000, Orders: 142},
			{Month: "Dec", Revenue: 48000, Orders: 156},
		},
		CategoryData: []domain.CategorySlice{
			{Name: "Electronics", Value: 35, Color: "#8884d8"},
			{Name: "Clothing", Value: 25, Color: "#82ca9d"},
			{Name: "Books", Value: 20, Color: "#ffc658"},
			{Name: "Home & Garden", Value: 12, Color: "#ff7300"},
			{Name: "Sports", Value: 8, Color: "#00ff00"},
		},
		RecentOrders: []domain.Order{
			{ID: 1, Customer: "John Doe", Product: "iPhone 15", Amount: 999, Status: domain.OrderStatusCompleted, Date: domain.NewDate(2024, time.January, 15)},
			{ID: 2, Customer: "Jane Smith", Product: "MacBook Pro", Amount: 2499, Status: domain.OrderStatusProcessing, Date: domain.NewDate(2024, time.January, 14)},
			{ID: 3, Customer: "Mike Johnson", Product: "AirPods Pro", Amount: 249, Status: domain.OrderStatusShipped, Date: domain.NewDate(2024, time.January, 13)},
			{ID: 4, Customer: "Sarah Wilson", Product: "iPad Air", Amount: 599, Status: domain.OrderStatusCompleted, Date: domain.NewDate(2024, time.January, 12)},
			{ID: 5, Customer: "David Brown", Product: "Apple Watch", Amount: 399, Status: domain.OrderStatusPending, Date: domain.NewDate(2024, time.January, 11)},
			{ID: 6, Customer: "Lisa Davis", Product: "MacBook Air", Amount: 1199, Status: domain.OrderStatusCompleted, Date: domain.NewDate(2024, time.January, 10)},
			{ID: 7, Customer: "Tom Miller", Product: "iPhone 14", Amount: 799, Status: domain.OrderStatusShipped, Date: domain.NewDate(2024, time.January, 9)},
			{ID: 8, Customer: "Emma Garcia", Product: "iPad Pro", Amount: 1099, Status: domain.OrderStatusProcessing, Date: domain.NewDate(2024, time.January, 8)},
		},
	}
}
