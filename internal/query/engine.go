package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"pixelfront/internal/catalog"
)

// Result is one page of the filtered and sorted catalog.
type Result struct {
	Products     []catalog.Product
	TotalMatches int // matches after filtering, before pagination
	TotalPages   int // ceil(TotalMatches / Limit), 0 when nothing matches
}

// Evaluate applies s to the full catalog: filter, then stable sort, then page
// slice. It is pure and never fails; degenerate inputs (inverted price bounds,
// a page past the end, a non-positive limit) produce empty results rather than
// errors. Validation belongs to the location codec, not here.
func Evaluate(products []catalog.Product, s State) Result {
	filtered := filter(products, s)
	sortProducts(filtered, s.SortField, s.SortOrder)

	total := len(filtered)
	pages := 0
	if s.Limit > 0 {
		pages = (total + s.Limit - 1) / s.Limit
	}

	// The page is taken at face value: a page beyond the last one yields an
	// empty slice instead of being clamped, so the location stays authoritative.
	start := (s.Page - 1) * s.Limit
	end := start + s.Limit
	if s.Limit <= 0 || start < 0 || start > total {
		return Result{TotalMatches: total, TotalPages: pages}
	}
	if end > total {
		end = total
	}

	return Result{
		Products:     filtered[start:end],
		TotalMatches: total,
		TotalPages:   pages,
	}
}

func filter(products []catalog.Product, s State) []catalog.Product {
	search := strings.ToLower(s.Search)

	matched := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		if s.MinPrice != nil && p.Price < *s.MinPrice {
			continue
		}
		if s.MaxPrice != nil && p.Price > *s.MaxPrice {
			continue
		}
		if s.InStock != nil && p.InStock != *s.InStock {
			continue
		}
		if s.Category != "" && !strings.EqualFold(p.Category, s.Category) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// sortProducts orders products in place. The sort is stable so that products
// with equal keys keep their catalog order and pages stay reproducible across
// renders. Titles compare with locale-aware collation rather than byte order.
func sortProducts(products []catalog.Product, field Field, order Order) {
	var compare func(a, b catalog.Product) int
	switch field {
	case FieldPrice:
		compare = func(a, b catalog.Product) int {
			switch {
			case a.Price < b.Price:
				return -1
			case a.Price > b.Price:
				return 1
			}
			return 0
		}
	default:
		collator := collate.New(language.Und)
		compare = func(a, b catalog.Product) int {
			return collator.CompareString(a.Title, b.Title)
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		c := compare(products[i], products[j])
		if order == OrderDesc {
			c = -c
		}
		return c < 0
	})
}
