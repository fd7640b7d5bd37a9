package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Date representa uma data de calendário (sem horário), serializada como YYYY-MM-DD
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf descarta o horário de t
func DateOf(t time.Time) Date {
	return Date{Time: utils.StartOfDay(t)}
}

func ParseDate(value string) (Date, error) {
	parsed, err := utils.ParseDate(value)
	if err != nil {
		return Date{}, fmt.Errorf("data inválida %q: %w", value, err)
	}
	if parsed == nil {
		return Date{}, fmt.Errorf("data vazia")
	}
	return DateOf(*parsed), nil
}

func (d Date) Before(other Date) bool { return d.Time.Before(other.Time) }
func (d Date) After(other Date) bool  { return d.Time.After(other.Time) }

// Compare retorna -1, 0 ou 1
func (d Date) Compare(other Date) int {
	return d.Time.Compare(other.Time)
}

func (d Date) AddDays(days int) Date {
	return Date{Time: d.Time.AddDate(0, 0, days)}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
