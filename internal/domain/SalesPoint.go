package domain

import "time"

// MonthLabels são os rótulos fixos da série de vendas, na ordem do calendário
var MonthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// DefaultSalesReferenceYear é o ano implícito da série mensal
const DefaultSalesReferenceYear = 2024

type SalesPoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// MonthOf converte o rótulo em mês do calendário
func MonthOf(label string) (time.Month, bool) {
	for i, l := range MonthLabels {
		if l == label {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

// BucketDate mapeia o ponto para o primeiro dia do seu mês no ano de referência
func (p SalesPoint) BucketDate(referenceYear int) (Date, bool) {
	month, ok := MonthOf(p.Month)
	if !ok {
		return Date{}, false
	}
	return NewDate(referenceYear, month, 1), true
}
