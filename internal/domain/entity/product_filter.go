package entity

import (
	"strings"
)

// ProductFilter is the set of optional listing constraints. A nil pointer or
// empty string means the constraint is absent, which is different from a
// constraint that happens to match nothing: MinPrice pointing at 0 is a real
// lower bound.
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	InStock  *bool
	Search   string
}

func (f ProductFilter) IsEmpty() bool {
	return f.Category == "" && f.MinPrice == nil && f.MaxPrice == nil && f.InStock == nil && f.Search == ""
}

// Matches evaluates the filter against a single product. Stores that cannot
// express the whole filter natively use it to finish the job in memory.
func (f ProductFilter) Matches(p *Product) bool {
	if f.Category != "" && (p.Category == nil || *p.Category != f.Category) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.InStock != nil && *f.InStock != p.InStock() {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		inName := strings.Contains(strings.ToLower(p.Name), needle)
		inDescription := p.Description != nil && strings.Contains(strings.ToLower(*p.Description), needle)
		if !inName && !inDescription {
			return false
		}
	}
	return true
}
