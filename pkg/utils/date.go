package utils

import (
	"strings"
	"time"
)

// ParseDate converte uma data no formato YYYY-MM-DD. String vazia retorna nil sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	// Aceita também timestamps completos, considerando apenas a parte da data
	if len(dateStr) > len(time.DateOnly) && dateStr[len(time.DateOnly)] == 'T' {
		dateStr = dateStr[:len(time.DateOnly)]
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// StartOfDay descarta o horário e devolve a data à meia-noite UTC
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
