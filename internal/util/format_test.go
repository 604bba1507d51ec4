package util_test

import (
	"testing"
	"time"

	"github.com/inkwell-labs/inkctl/internal/util"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a longer title that gets cut", 10, "a longer…"},
		{"héllo wörld", 6, "héllo…"},
		{"anything", 0, ""},
		{"ab", 1, "…"},
	}
	for _, tc := range cases {
		if got := util.Truncate(tc.in, tc.max); got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		t    time.Time
		want string
	}{
		{time.Time{}, "—"},
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-48 * time.Hour), "2d ago"},
		{now.Add(-90 * 24 * time.Hour), "2026-06-01"},
	}
	for _, tc := range cases {
		if got := util.RelativeTime(tc.t, now); got != tc.want {
			t.Errorf("RelativeTime(%v) = %q, want %q", tc.t, got, tc.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := util.PadRight("ab", 5); got != "ab   " {
		t.Errorf("got %q", got)
	}
	// Wide runes occupy two cells each.
	if got := util.PadRight("本", 4); got != "本  " {
		t.Errorf("got %q", got)
	}
	if got := util.PadRight("too long", 4); got != "too long" {
		t.Errorf("got %q", got)
	}
}

func TestPlural(t *testing.T) {
	if got := util.Plural(1, "book"); got != "1 book" {
		t.Errorf("got %q", got)
	}
	if got := util.Plural(3, "book"); got != "3 books" {
		t.Errorf("got %q", got)
	}
	if got := util.Plural(0, "chapter"); got != "0 chapters" {
		t.Errorf("got %q", got)
	}
}

func TestStars(t *testing.T) {
	cases := []struct {
		rating float64
		want   string
	}{
		{0, "☆☆☆☆☆"},
		{4.6, "★★★★★"},
		{3.2, "★★★☆☆"},
		{5, "★★★★★"},
		{7, "★★★★★"},
	}
	for _, tc := range cases {
		if got := util.Stars(tc.rating); got != tc.want {
			t.Errorf("Stars(%v) = %q, want %q", tc.rating, got, tc.want)
		}
	}
}
