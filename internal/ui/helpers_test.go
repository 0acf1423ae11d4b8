package ui

import (
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a longer string than allowed", 10, "a longer …"},
		{"anything", 0, "anything"},
		{"café au lait", 5, "café…"},
		{"ab", 1, "a"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.max); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()
	cases := []struct {
		at   time.Time
		want string
	}{
		{time.Time{}, "some time ago"},
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-49 * time.Hour), "2d ago"},
	}
	for _, tc := range cases {
		if got := relativeTime(tc.at); got != tc.want {
			t.Fatalf("relativeTime(%v) = %q, want %q", tc.at, got, tc.want)
		}
	}

	old := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	if got := relativeTime(old); got != "2020-01-02" {
		t.Fatalf("relativeTime(old) = %q, want date form", got)
	}
}
