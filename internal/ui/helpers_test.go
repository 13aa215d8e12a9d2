package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short stays", "Pen", 10, "Pen"},
		{"exact stays", "Pencil", 6, "Pencil"},
		{"long ellipsized", "Mechanical Pencil", 10, "Mechanica…"},
		{"whitespace trimmed", "  Pen  ", 10, "Pen"},
		{"limit one", "Pen", 1, "P"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestStars(t *testing.T) {
	cases := []struct {
		rate float64
		want string
	}{
		{0, "☆☆☆☆☆"},
		{2.4, "★★☆☆☆"},
		{2.5, "★★★☆☆"},
		{4.69, "★★★★★"},
		{5, "★★★★★"},
		{-1, "☆☆☆☆☆"},
		{9, "★★★★★"},
	}
	for _, tc := range cases {
		if got := stars(tc.rate); got != tc.want {
			t.Fatalf("stars(%v) = %q, want %q", tc.rate, got, tc.want)
		}
	}
}
