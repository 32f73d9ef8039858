package timeutil_test

import (
	"testing"
	"time"

	"github.com/tripstack/travel-mcp-server/internal/timeutil"
)

func TestParseISODate(t *testing.T) {
	got, err := timeutil.ParseISODate(" 2025-10-01 ")
	if err != nil {
		t.Fatalf("ParseISODate failed: %v", err)
	}
	if timeutil.FormatISODate(got) != "2025-10-01" {
		t.Errorf("round trip = %s", timeutil.FormatISODate(got))
	}

	for _, bad := range []string{"", "10/01/2025", "2025-13-01", "2025-10-1"} {
		if _, err := timeutil.ParseISODate(bad); err == nil {
			t.Errorf("ParseISODate(%q) accepted", bad)
		}
	}
}

func TestAddDaysAcrossMonth(t *testing.T) {
	start := time.Date(2025, 9, 29, 0, 0, 0, 0, time.UTC)
	got := timeutil.AddDays(start, 3)
	if timeutil.FormatISODate(got) != "2025-10-02" {
		t.Errorf("AddDays = %s", timeutil.FormatISODate(got))
	}
}

func TestMidnight(t *testing.T) {
	loc := time.FixedZone("CST", -6*3600)
	noon := time.Date(2025, 9, 15, 12, 34, 56, 789, loc)
	got := timeutil.Midnight(noon)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("Midnight = %v", got)
	}
	if got.Location() != loc {
		t.Error("Midnight changed the location")
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := map[int]string{
		210: "3h 30m",
		180: "3h",
		45:  "0h 45m",
	}
	for minutes, want := range cases {
		if got := timeutil.FormatMinutes(minutes); got != want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", minutes, got, want)
		}
	}
}

func TestParseDurationOrDefault(t *testing.T) {
	if got := timeutil.ParseDurationOrDefault("45s", time.Minute); got != 45*time.Second {
		t.Errorf("valid duration = %v", got)
	}
	if got := timeutil.ParseDurationOrDefault("", time.Minute); got != time.Minute {
		t.Errorf("empty value = %v", got)
	}
	if got := timeutil.ParseDurationOrDefault("soon", time.Minute); got != time.Minute {
		t.Errorf("invalid value = %v", got)
	}
}
