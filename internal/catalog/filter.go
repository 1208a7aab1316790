package catalog

import (
	"sort"
	"strings"

	"github.com/lumastudio/storefront/pkg/enums"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// Filter holds the raw browse inputs. Min and Max are kept as typed text so
// that empty or non-numeric bounds are ignored instead of rejected.
type Filter struct {
	Category string
	Query    string
	Min      string
	Max      string
	Sort     enums.SortMode
}

// Active reports whether any input narrows the catalog.
func (f Filter) Active() bool {
	return (f.Category != "" && f.Category != enums.CategoryAll) ||
		strings.TrimSpace(f.Query) != "" || f.Min != "" || f.Max != ""
}

// ParseBound reads a price bound. ok is false for empty or non-numeric input.
func ParseBound(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}

// Apply filters products and then sorts them. Relevance keeps insertion
// order; price sorts are stable.
func Apply(products []Product, f Filter) []Product {
	fold := cases.Fold()
	query := fold.String(f.Query)
	minPrice, hasMin := ParseBound(f.Min)
	maxPrice, hasMax := ParseBound(f.Max)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && f.Category != enums.CategoryAll && string(p.Category) != f.Category {
			continue
		}
		if query != "" && !strings.Contains(fold.String(p.Name), query) {
			continue
		}
		if hasMin && p.Price.LessThan(minPrice) {
			continue
		}
		if hasMax && p.Price.GreaterThan(maxPrice) {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case enums.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case enums.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	}
	return out
}
