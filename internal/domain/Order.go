package domain

import "strings"

type OrderStatus string

const (
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusPending    OrderStatus = "Pending"
)

// Variantes de exibição do status de um pedido
const (
	StatusVariantCompleted  = "completed"
	StatusVariantProcessing = "processing"
	StatusVariantShipped    = "shipped"
	StatusVariantPending    = "pending"
	StatusVariantDefault    = "default"
)

// Variant retorna a categoria de exibição do status. Status desconhecidos caem em "default".
func (s OrderStatus) Variant() string {
	switch strings.ToLower(string(s)) {
	case StatusVariantCompleted:
		return StatusVariantCompleted
	case StatusVariantProcessing:
		return StatusVariantProcessing
	case StatusVariantShipped:
		return StatusVariantShipped
	case StatusVariantPending:
		return StatusVariantPending
	default:
		return StatusVariantDefault
	}
}

// Order é imutável depois de carregado; filtros e ordenações geram novas visões
type Order struct {
	ID       int         `json:"id"`
	Customer string      `json:"customer"`
	Product  string      `json:"product"`
	Amount   float64     `json:"amount"`
	Status   OrderStatus `json:"status"`
	Date     Date        `json:"date"`
}

type OrderRow struct {
	Order
	StatusVariant string `json:"statusVariant"`
}

func NewOrderRow(order Order) OrderRow {
	return OrderRow{
		Order:         order,
		StatusVariant: order.Status.Variant(),
	}
}
