package util

import (
    "strconv"
    "testing"
    "time"
)

func TestParseTimeRFC3339(t *testing.T) {
    s := "2026-08-24T10:10:10Z"
    got, ok := ParseTime(s)
    if !ok {
        t.Fatalf("expected ok")
    }
    if got.UTC().Format(time.RFC3339) != s {
        t.Fatalf("unexpected time %v", got)
    }
}

func TestParseTimeUnix(t *testing.T) {
    ts := time.Date(2026, 8, 24, 10, 10, 10, 0, time.UTC).Unix()
    got, ok := ParseTime(strconv.FormatInt(ts, 10))
    if !ok {
        t.Fatalf("expected ok")
    }
    if got.Unix() != ts {
        t.Fatalf("unexpected unix %v", got.Unix())
    }
}

func TestParseTimeDefault(t *testing.T) {
    def := time.Date(2026, 8, 24, 10, 10, 10, 0, time.UTC)
    got := ParseTimeDefault("", def)
    if !got.Equal(def) {
        t.Fatalf("expected default")
    }
}

func TestParseDate(t *testing.T) {
    got, ok := ParseDate("2026-08-24")
    if !ok {
        t.Fatalf("expected ok")
    }
    if got.Year() != 2026 || got.Month() != 8 || got.Day() != 24 {
        t.Fatalf("unexpected date %v", got)
    }
    if _, ok := ParseDate("24/08/2026"); ok {
        t.Fatalf("expected parse failure")
    }
}

func TestParseFloatDefault(t *testing.T) {
    if got := ParseFloatDefault("8.5", 0); got != 8.5 {
        t.Fatalf("unexpected %v", got)
    }
    if got := ParseFloatDefault("n/a", 1.5); got != 1.5 {
        t.Fatalf("expected default, got %v", got)
    }
}
