package usecase

import (
	"math"
	"strconv"
	"strings"

	"catalogapi/internal/domain/entity"
)

// ParseProductFilter turns raw query values into a filter. Anything missing
// or malformed leaves that constraint out rather than matching nothing.
func ParseProductFilter(query ListProductsQuery) entity.ProductFilter {
	return entity.ProductFilter{
		Category: query.Category,
		MinPrice: parsePrice(query.MinPrice),
		MaxPrice: parsePrice(query.MaxPrice),
		InStock:  parseInStock(query.InStock),
		Search:   query.Search,
	}
}

func parsePrice(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	return &value
}

// parseInStock only recognises the literal strings "true" and "false".
func parseInStock(raw string) *bool {
	switch raw {
	case "true":
		inStock := true
		return &inStock
	case "false":
		inStock := false
		return &inStock
	default:
		return nil
	}
}
