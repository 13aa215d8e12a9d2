// Package query turns a declarative view description into a page of products.
//
// A State describes what the user wants to see (filters, sort, page); Evaluate
// applies it to the full catalog and returns the matching page plus pagination
// metadata. States are plain values: every commit replaces the whole State,
// and a State round-trips losslessly through the flat parameter map that backs
// the navigable location (see params.go).
package query

// Field selects the sort key.
type Field string

// Order selects the sort direction.
type Order string

const (
	FieldTitle Field = "title"
	FieldPrice Field = "price"

	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

const (
	// DefaultPage is the page shown when the location names none.
	DefaultPage = 1
	// DefaultLimit matches the original twelve-card grid.
	DefaultLimit = 12
)

// State is the desired view of the catalog. Zero-value string fields and nil
// pointers mean "no constraint"; an absent filter never excludes anything.
type State struct {
	Search   string
	MinPrice *float64
	MaxPrice *float64
	InStock  *bool
	Category string

	SortField Field
	SortOrder Order

	Page  int
	Limit int
}

// DefaultState returns the view shown for an empty location.
func DefaultState() State {
	return State{
		SortField: FieldTitle,
		SortOrder: OrderAsc,
		Page:      DefaultPage,
		Limit:     DefaultLimit,
	}
}

// WithoutFilters returns a copy with every filter cleared and the page reset,
// keeping only the sort. This backs the "clear filters" action.
func (s State) WithoutFilters() State {
	cleared := DefaultState()
	cleared.SortField = s.SortField
	cleared.SortOrder = s.SortOrder
	cleared.Limit = s.Limit
	return cleared
}

// HasFilters reports whether any filter field is active.
func (s State) HasFilters() bool {
	return s.Search != "" || s.MinPrice != nil || s.MaxPrice != nil ||
		s.InStock != nil || s.Category != ""
}
