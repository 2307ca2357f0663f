package utils

import "time"

// ParseDateOr interpreta uma data no formato YYYY-MM-DD; string vazia devolve o fallback
func ParseDateOr(dateStr string, fallback time.Time) (time.Time, error) {
	if dateStr == "" {
		return fallback, nil
	}

	return time.Parse(time.DateOnly, dateStr)
}
