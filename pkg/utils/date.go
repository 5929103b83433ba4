package utils

import "time"

// ParseDate interpreta uma data no formato YYYY-MM-DD, como vem no segmento
// de data das linhas de relatório.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(time.DateOnly, dateStr)
}
