package ui

import (
	"testing"
	"time"
)

func TestHumanizeDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Millisecond, "now"},
		{5 * time.Second, "5s"},
		{3 * time.Minute, "3m"},
		{2 * time.Hour, "2h"},
	}
	for _, tt := range tests {
		if got := humanizeDuration(tt.d); got != tt.want {
			t.Errorf("humanizeDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestPadCell(t *testing.T) {
	if got := padCell("abc", 6); got != "abc   " {
		t.Fatalf("padCell = %q", got)
	}
	if got := padCell("abcdefgh", 6); got != "abcde…" {
		t.Fatalf("padCell truncated = %q", got)
	}
	if got := padCell("", 3); got != "   " {
		t.Fatalf("padCell empty = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("holiday", 4); got != "hol…" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("ok", 4); got != "ok" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("anything", 0); got != "" {
		t.Fatalf("truncate zero = %q", got)
	}
	if got := truncate("ab", 1); got != "…" {
		t.Fatalf("truncate one = %q", got)
	}
}
