package ui

import (
	"net/url"
	"strings"
)

// Location is the in-app navigable location: a history of encoded query
// strings with a cursor. The query state has no storage of its own — whatever
// the current entry decodes to IS the committed view, which is what makes a
// route reproducible and shareable (`-route "search=phone&page=2"`).
type Location struct {
	history []string
	index   int
}

// NewLocation seeds the history with an initial route. A leading "?" is
// tolerated; an unparseable route degrades to the empty one.
func NewLocation(route string) *Location {
	return &Location{history: []string{normalizeRoute(route)}}
}

// Current returns the encoded query string at the cursor.
func (l *Location) Current() string {
	return l.history[l.index]
}

// Values decodes the current entry into a parameter map.
func (l *Location) Values() url.Values {
	values, err := url.ParseQuery(l.Current())
	if err != nil {
		return url.Values{}
	}
	return values
}

// Navigate pushes a new entry, dropping any forward history. Navigating to the
// current entry is a no-op so repeated identical commits do not pile up.
func (l *Location) Navigate(values url.Values) {
	encoded := values.Encode()
	if encoded == l.Current() {
		return
	}
	l.history = append(l.history[:l.index+1], encoded)
	l.index = len(l.history) - 1
}

// Back moves the cursor one entry back, reporting whether it moved.
func (l *Location) Back() bool {
	if l.index == 0 {
		return false
	}
	l.index--
	return true
}

// Forward moves the cursor one entry forward, reporting whether it moved.
func (l *Location) Forward() bool {
	if l.index >= len(l.history)-1 {
		return false
	}
	l.index++
	return true
}

func normalizeRoute(route string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(route), "?")
	values, err := url.ParseQuery(trimmed)
	if err != nil {
		return ""
	}
	return values.Encode()
}
