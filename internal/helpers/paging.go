package helpers

import (
	"strconv"
	"strings"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ParsePageLimit convierte los parámetros de paginación a enteros aplicando defaults y tope.
func ParsePageLimit(pageStr, limitStr string) (int, int) {
	page := defaultPage
	limit := defaultLimit

	if v, err := strconv.Atoi(strings.TrimSpace(pageStr)); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(limitStr)); err == nil && v > 0 {
		limit = v
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
