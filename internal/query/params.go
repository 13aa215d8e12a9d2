package query

import (
	"net/url"
	"strconv"
)

// Parameter keys understood by the location codec.
const (
	keyPage      = "page"
	keyLimit     = "limit"
	keySearch    = "search"
	keyMinPrice  = "minPrice"
	keyMaxPrice  = "maxPrice"
	keyInStock   = "inStock"
	keyCategory  = "category"
	keySortField = "sortField"
	keySortOrder = "sortOrder"
)

// Decode builds a State from a flat parameter map. Unparseable or missing
// numeric values are treated as absent, never as zero; inStock is only
// meaningful when the key is present at all, so "inStock=false" filters for
// out-of-stock products rather than being dropped.
func Decode(values url.Values) State {
	s := DefaultState()

	if page, ok := intValue(values, keyPage); ok && page > 0 {
		s.Page = page
	}
	if limit, ok := intValue(values, keyLimit); ok && limit > 0 {
		s.Limit = limit
	}

	s.Search = values.Get(keySearch)
	s.Category = values.Get(keyCategory)
	s.MinPrice = floatValue(values, keyMinPrice)
	s.MaxPrice = floatValue(values, keyMaxPrice)
	s.InStock = boolValue(values, keyInStock)

	if field := Field(values.Get(keySortField)); field == FieldTitle || field == FieldPrice {
		s.SortField = field
	}
	if order := Order(values.Get(keySortOrder)); order == OrderAsc || order == OrderDesc {
		s.SortOrder = order
	}

	return s
}

// Encode serializes a State back into a parameter map. Absent filters and
// default-valued fields are omitted entirely; a cleared field never shows up
// as an empty token.
func Encode(s State) url.Values {
	values := url.Values{}

	if s.Search != "" {
		values.Set(keySearch, s.Search)
	}
	if s.MinPrice != nil {
		values.Set(keyMinPrice, formatFloat(*s.MinPrice))
	}
	if s.MaxPrice != nil {
		values.Set(keyMaxPrice, formatFloat(*s.MaxPrice))
	}
	if s.InStock != nil {
		values.Set(keyInStock, strconv.FormatBool(*s.InStock))
	}
	if s.Category != "" {
		values.Set(keyCategory, s.Category)
	}
	if s.SortField != FieldTitle {
		values.Set(keySortField, string(s.SortField))
	}
	if s.SortOrder != OrderAsc {
		values.Set(keySortOrder, string(s.SortOrder))
	}
	if s.Page != DefaultPage {
		values.Set(keyPage, strconv.Itoa(s.Page))
	}
	if s.Limit != DefaultLimit {
		values.Set(keyLimit, strconv.Itoa(s.Limit))
	}

	return values
}

func intValue(values url.Values, key string) (int, bool) {
	raw := values.Get(key)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func floatValue(values url.Values, key string) *float64 {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

func boolValue(values url.Values, key string) *bool {
	if !values.Has(key) {
		return nil
	}
	b, err := strconv.ParseBool(values.Get(key))
	if err != nil {
		return nil
	}
	return &b
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
