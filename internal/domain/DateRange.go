package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnknownPreset = errors.New("unknown date range preset")

// DateRange tem limites inclusivos. Um range invertido (início depois do fim) é aceito
// e simplesmente não contém nenhuma data.
type DateRange struct {
	StartDate Date `json:"startDate"`
	EndDate   Date `json:"endDate"`
}

type Preset struct {
	Label string `json:"label"`
	Days  int    `json:"days"`
}

// Presets disponíveis no seletor de período
var Presets = []Preset{
	{Label: "Last 7 days", Days: 7},
	{Label: "Last 30 days", Days: 30},
	{Label: "Last 90 days", Days: 90},
	{Label: "This year", Days: 365},
}

// NewDateRange monta um range a partir das duas datas informadas manualmente.
// Ambas vazias significa "sem filtro" (nil, nil). Qualquer limite ausente ou
// inválido também resulta em nil, acompanhado do erro para registro.
func NewDateRange(start, end string) (*DateRange, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" && end == "" {
		return nil, nil
	}

	if start == "" || end == "" {
		return nil, fmt.Errorf("range incompleto: start_date=%q end_date=%q", start, end)
	}

	startDate, err := ParseDate(start)
	if err != nil {
		return nil, fmt.Errorf("start_date: %w", err)
	}

	endDate, err := ParseDate(end)
	if err != nil {
		return nil, fmt.Errorf("end_date: %w", err)
	}

	return &DateRange{StartDate: startDate, EndDate: endDate}, nil
}

// PresetRange calcula o range dos últimos N dias a partir de now
func PresetRange(days int, now time.Time) (*DateRange, error) {
	if !isPreset(days) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPreset, days)
	}

	end := DateOf(now)
	return &DateRange{
		StartDate: end.AddDays(-days),
		EndDate:   end,
	}, nil
}

func isPreset(days int) bool {
	for _, p := range Presets {
		if p.Days == days {
			return true
		}
	}
	return false
}

// Contains verifica start <= d <= end. Um range nil contém tudo.
func (r *DateRange) Contains(d Date) bool {
	if r == nil {
		return true
	}
	return !d.Before(r.StartDate) && !d.After(r.EndDate)
}

func (r *DateRange) Inverted() bool {
	return r != nil && r.StartDate.After(r.EndDate)
}

func (r *DateRange) String() string {
	if r == nil {
		return ""
	}
	return r.StartDate.String() + ".." + r.EndDate.String()
}
