package ui

import (
	"net/url"
	"testing"
)

func TestLocation_NavigateAndHistory(t *testing.T) {
	l := NewLocation("")

	l.Navigate(url.Values{"search": {"pen"}})
	l.Navigate(url.Values{"search": {"pen"}, "page": {"2"}})

	if got := l.Current(); got != "page=2&search=pen" {
		t.Fatalf("Current() = %q, want page=2&search=pen", got)
	}

	if !l.Back() {
		t.Fatal("Back() = false, want true")
	}
	if got := l.Values().Get("search"); got != "pen" {
		t.Fatalf("after back, search = %q, want pen", got)
	}
	if l.Values().Has("page") {
		t.Fatal("after back, page key should be gone")
	}

	if !l.Forward() {
		t.Fatal("Forward() = false, want true")
	}
	if got := l.Values().Get("page"); got != "2" {
		t.Fatalf("after forward, page = %q, want 2", got)
	}
	if l.Forward() {
		t.Fatal("Forward() past the end should report false")
	}
}

func TestLocation_NavigateTruncatesForwardHistory(t *testing.T) {
	l := NewLocation("")
	l.Navigate(url.Values{"page": {"2"}})
	l.Navigate(url.Values{"page": {"3"}})
	l.Back()
	l.Back()

	l.Navigate(url.Values{"search": {"x"}})

	if l.Forward() {
		t.Fatal("forward history should be dropped after a new navigation")
	}
	if got := l.Current(); got != "search=x" {
		t.Fatalf("Current() = %q, want search=x", got)
	}
}

func TestLocation_DuplicateNavigationIsNoOp(t *testing.T) {
	l := NewLocation("search=pen")
	l.Navigate(url.Values{"search": {"pen"}})

	if len(l.history) != 1 {
		t.Fatalf("history = %v, want a single entry", l.history)
	}
	if l.Back() {
		t.Fatal("nothing to go back to")
	}
}

func TestNewLocation_NormalizesRoute(t *testing.T) {
	cases := []struct {
		name  string
		route string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "search=pen&page=2", "page=2&search=pen"},
		{"leading question mark", "?search=pen", "search=pen"},
		{"unparseable degrades to empty", "a=%zz", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewLocation(tc.route).Current(); got != tc.want {
				t.Fatalf("NewLocation(%q).Current() = %q, want %q", tc.route, got, tc.want)
			}
		})
	}
}
