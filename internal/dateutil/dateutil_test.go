package dateutil

import (
	"testing"
	"time"
)

func TestFormatParseRoundTrip(t *testing.T) {
	for _, s := range []string{"2025-09-01", "2025-01-31", "2024-02-29", "1999-12-31"} {
		d, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", s, err)
		}
		if got := FormatDate(d); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "2025-9-1", "not a date", "2025/09/01"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) should fail", s)
		}
	}
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2025, 2)
	if got := start.Format(time.RFC3339); got != "2025-02-01T00:00:00Z" {
		t.Errorf("start = %s", got)
	}
	if end.Day() != 28 || end.Month() != time.February || end.Hour() != 23 {
		t.Errorf("end = %s", end)
	}

	// leap year
	_, end = MonthRange(2024, 2)
	if end.Day() != 29 {
		t.Errorf("leap february end day = %d", end.Day())
	}

	// december rolls into january correctly
	_, end = MonthRange(2025, 12)
	if end.Month() != time.December || end.Day() != 31 {
		t.Errorf("december end = %s", end)
	}
}

func TestOverlapsMonthExactMonth(t *testing.T) {
	// an all-day event spanning exactly september overlaps september
	// and neither adjacent month
	if !OverlapsMonth(true, "2025-09-01", "2025-09-30", 2025, 9) {
		t.Error("full-month event should overlap its own month")
	}
	if OverlapsMonth(true, "2025-09-01", "2025-09-30", 2025, 8) {
		t.Error("should not overlap august")
	}
	if OverlapsMonth(true, "2025-09-01", "2025-09-30", 2025, 10) {
		t.Error("should not overlap october")
	}
}

func TestOverlapsMonthEdges(t *testing.T) {
	// multi-day event straddling a month boundary overlaps both
	if !OverlapsMonth(true, "2025-09-29", "2025-10-02", 2025, 9) {
		t.Error("straddling event should overlap september")
	}
	if !OverlapsMonth(true, "2025-09-29", "2025-10-02", 2025, 10) {
		t.Error("straddling event should overlap october")
	}

	// zero-duration timed event on the first instant of the month
	if !OverlapsMonth(false, "2025-09-01T00:00:00Z", "2025-09-01T00:00:00Z", 2025, 9) {
		t.Error("zero-duration event at month start should overlap")
	}

	// timed event entirely inside the month
	if !OverlapsMonth(false, "2025-09-10T07:00:00Z", "2025-09-10T08:00:00Z", 2025, 9) {
		t.Error("timed in-month event should overlap")
	}

	// unparseable input never overlaps
	if OverlapsMonth(true, "bogus", "", 2025, 9) {
		t.Error("garbage event should not overlap")
	}
}

func TestAddDaysAddMinutes(t *testing.T) {
	d, _ := ParseDate("2025-09-28")
	if got := FormatDate(AddDays(d, 5)); got != "2025-10-03" {
		t.Errorf("AddDays across month = %s", got)
	}
	tm := time.Date(2025, 9, 1, 7, 0, 0, 0, time.UTC)
	if got := AddMinutes(tm, 90); got.Hour() != 8 || got.Minute() != 30 {
		t.Errorf("AddMinutes = %s", got)
	}
}

func TestClampIntIdempotent(t *testing.T) {
	for _, v := range []int{-10, 0, 5, 60, 180, 500} {
		once := ClampInt(v, 5, 180)
		if once < 5 || once > 180 {
			t.Errorf("ClampInt(%d) = %d out of range", v, once)
		}
		if twice := ClampInt(once, 5, 180); twice != once {
			t.Errorf("ClampInt not idempotent for %d: %d != %d", v, twice, once)
		}
	}
	if ClampInt(3, 5, 180) != 5 || ClampInt(300, 5, 180) != 180 || ClampInt(45, 5, 180) != 45 {
		t.Error("ClampInt bounds wrong")
	}
}
