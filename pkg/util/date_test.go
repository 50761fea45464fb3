package util

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	s := "2024-10-10"
	got, ok := ParseDate(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if FormatDate(got) != s {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestParseDateRejectsTimestamp(t *testing.T) {
	if _, ok := ParseDate("2024-10-10T10:10:10Z"); ok {
		t.Fatalf("expected timestamp to be rejected")
	}
	if _, ok := ParseDate(""); ok {
		t.Fatalf("expected empty string to be rejected")
	}
}

func TestParseDateDefault(t *testing.T) {
	def := time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)
	got := ParseDateDefault("", def)
	if !got.Equal(def) {
		t.Fatalf("expected default")
	}
}

func TestUnixDate(t *testing.T) {
	// 2024-10-10 10:10:10 UTC truncates to midnight
	sec := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC).Unix()
	got := UnixDate(sec)
	want := time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected day %v", got)
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	if d := DaysBetween(a, b); d != 30 {
		t.Fatalf("expected 30 days, got %d", d)
	}
}
