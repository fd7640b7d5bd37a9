package filtering

import "github.com/vfg2006/sales-dashboard-api/internal/domain"

// Bucket mantém os pontos cujo mês (dia 1 do ano de referência) está dentro do período.
// Sem período, a série é devolvida inteira e na ordem original.
func Bucket(series []domain.SalesPoint, dateRange *domain.DateRange, referenceYear int) []domain.SalesPoint {
	if dateRange == nil {
		return series
	}

	bucketed := make([]domain.SalesPoint, 0, len(series))
	for _, point := range series {
		date, ok := point.BucketDate(referenceYear)
		if !ok {
			continue
		}
		if dateRange.Contains(date) {
			bucketed = append(bucketed, point)
		}
	}
	return bucketed
}
