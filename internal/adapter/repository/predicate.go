package repository

import (
	"strconv"
	"strings"

	"catalogapi/internal/domain/entity"
	"catalogapi/internal/infrastructure/database"
)

// predicate accumulates one SQL clause per active filter. An absent filter
// adds nothing, so "no price filter" and "a price filter matching nothing"
// stay distinguishable.
type predicate struct {
	clauses []string
	args    []interface{}
}

func (p *predicate) and(clause string, args ...interface{}) {
	p.clauses = append(p.clauses, clause)
	p.args = append(p.args, args...)
}

func (p predicate) where() string {
	if len(p.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.clauses, " AND ")
}

func buildPredicate(dialect Dialect, filter entity.ProductFilter) predicate {
	var p predicate

	if filter.Category != "" {
		p.and("category = ?", filter.Category)
	}

	if filter.MinPrice != nil {
		p.and("price >= ?", *filter.MinPrice)
	}

	if filter.MaxPrice != nil {
		p.and("price <= ?", *filter.MaxPrice)
	}

	if filter.InStock != nil {
		if *filter.InStock {
			p.and("quantity > 0")
		} else {
			p.and("quantity = 0")
		}
	}

	if filter.Search != "" {
		lower := lowerFunction(dialect)
		pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		p.and("("+lower+`(name) LIKE ? ESCAPE '\' OR `+lower+`(description) LIKE ? ESCAPE '\')`, pattern, pattern)
	}

	return p
}

// lowerFunction names the SQL function that lowercases like strings.ToLower.
func lowerFunction(dialect Dialect) string {
	if dialect == DialectSQLite {
		return database.UnicodeLowerFunction
	}
	return "LOWER"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// rebind rewrites ? placeholders into $1, $2, ... for postgres.
func rebind(dialect Dialect, query string) string {
	if dialect != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
