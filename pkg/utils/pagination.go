package utils

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PaginationParams represents normalized pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// NormalizePagination turns raw page/limit query values into usable
// parameters. It never fails: page falls back to 1 when absent, non-numeric
// or below 1; limit falls back to 10 when absent or non-numeric and is
// otherwise clamped to [1, 100].
func NormalizePagination(rawPage, rawLimit string) PaginationParams {
	page, err := strconv.Atoi(strings.TrimSpace(rawPage))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(strings.TrimSpace(rawLimit))
	switch {
	case err != nil:
		limit = DefaultLimit
	case limit < 1:
		limit = 1
	case limit > MaxLimit:
		limit = MaxLimit
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: offset(page, limit),
	}
}

// offset saturates instead of overflowing for absurd page numbers.
func offset(page, limit int) int {
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// TotalPages is ceil(total/limit), and 0 for an empty result.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
