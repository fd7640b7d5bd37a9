package domain

// OrdersFilter reúne os parâmetros da tabela de pedidos
type OrdersFilter struct {
	Query     string
	DateRange *DateRange
	Sort      SortState
}

type OrdersView struct {
	Rows      []OrderRow `json:"rows"`
	Sort      SortState  `json:"sort"`
	Total     int        `json:"total"`
	Empty     bool       `json:"empty"` // nenhum pedido corresponde aos filtros
	Query     string     `json:"query,omitempty"`
	DateRange *DateRange `json:"date_range,omitempty"`
}

func NewOrdersView(orders []Order, filter OrdersFilter) *OrdersView {
	rows := make([]OrderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, NewOrderRow(o))
	}

	return &OrdersView{
		Rows:      rows,
		Sort:      filter.Sort,
		Total:     len(rows),
		Empty:     len(rows) == 0,
		Query:     filter.Query,
		DateRange: filter.DateRange,
	}
}

// PanelError descreve a falha de um painel sem derrubar os demais
type PanelError struct {
	Resource string `json:"resource"`
	Message  string `json:"message"`
}

// Overview é a visão completa do dashboard
type Overview struct {
	Stats      *StatsSummary   `json:"stats,omitempty"`
	Sales      []SalesPoint    `json:"sales"`
	Categories []CategorySlice `json:"categories"`
	Orders     *OrdersView     `json:"orders,omitempty"`
	DateRange  *DateRange      `json:"date_range,omitempty"`
	Errors     []PanelError    `json:"errors,omitempty"`
}
