package wallclock

import (
	"errors"
	"fmt"
	"testing"
	"time"

	derr "github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/errors"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/models"
	"go.uber.org/zap"
)

func mustInstant(t *testing.T, value string) time.Time {
	t.Helper()
	got, err := ParseInstant(value)
	if err != nil {
		t.Fatalf("parse instant %q: %v", value, err)
	}
	return got
}

func TestCalendarDateToInstant(t *testing.T) {
	conv := New(zap.NewNop(), time.UTC)
	date := models.NewCalendarDate(2026, time.January, 29)

	tests := []struct {
		name     string
		tz       string
		boundary Boundary
		want     string
	}{
		{name: "la_start", tz: "America/Los_Angeles", boundary: BoundaryStart, want: "2026-01-29T08:01:00.000Z"},
		{name: "la_end", tz: "America/Los_Angeles", boundary: BoundaryEnd, want: "2026-01-30T07:59:59.000Z"},
		{name: "tokyo_start", tz: "Asia/Tokyo", boundary: BoundaryStart, want: "2026-01-28T15:01:00.000Z"},
		{name: "kathmandu_end", tz: "Asia/Kathmandu", boundary: BoundaryEnd, want: "2026-01-29T18:14:59.000Z"},
		{name: "default_zone", tz: "", boundary: BoundaryStart, want: "2026-01-29T00:01:00.000Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatInstant(conv.CalendarDateToInstant(date, tt.tz, tt.boundary))
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestInstantToWallDateTime(t *testing.T) {
	conv := New(zap.NewNop(), time.UTC)

	date, clock := conv.InstantToWallDateTime(mustInstant(t, "2026-01-29T05:30:00.000Z"), "Asia/Tokyo")
	if date.String() != "2026-01-29" || clock.String() != "14:30" {
		t.Fatalf("expected 2026-01-29 14:30, got %s %s", date, clock)
	}

	if got := conv.InstantToWallTime(mustInstant(t, "2026-01-29T08:01:00Z"), "America/Los_Angeles"); got.String() != "00:01" {
		t.Fatalf("expected 00:01, got %s", got)
	}

	if got := conv.InstantToCalendarDate(mustInstant(t, "2026-01-30T07:59:59Z"), "America/Los_Angeles"); got.String() != "2026-01-29" {
		t.Fatalf("expected 2026-01-29, got %s", got)
	}
}

func TestWallDateTimeToInstant(t *testing.T) {
	conv := New(zap.NewNop(), time.UTC)

	got := conv.WallDateTimeToInstant(models.NewCalendarDate(2026, time.January, 29), models.NewWallTime(14, 30), "Asia/Tokyo")
	if FormatInstant(got) != "2026-01-29T05:30:00.000Z" {
		t.Fatalf("expected 2026-01-29T05:30:00.000Z, got %s", FormatInstant(got))
	}
}

func TestRoundTripOutsideTransitions(t *testing.T) {
	conv := New(zap.NewNop(), time.UTC)
	zones := []string{
		"America/Los_Angeles",
		"America/New_York",
		"Europe/Paris",
		"Asia/Kolkata",
		"Asia/Kathmandu",
		"Australia/Sydney",
		"Pacific/Kiritimati",
		"Pacific/Pago_Pago",
		"UTC",
	}
	days := []time.Time{
		time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC),
	}

	for _, tz := range zones {
		for _, day := range days {
			for minute := 0; minute < 24*60; minute += 37 {
				instant := day.Add(time.Duration(minute) * time.Minute)

				date, clock := conv.InstantToWallDateTime(instant, tz)
				back := conv.WallDateTimeToInstant(date, clock, tz)
				if !back.Equal(instant) {
					t.Fatalf("%s: round trip of %s gave %s (local %s %s)", tz, FormatInstant(instant), FormatInstant(back), date, clock)
				}
			}
		}
	}
}

func TestDateBoundaryLaw(t *testing.T) {
	conv := New(zap.NewNop(), time.UTC)
	zones := []string{"America/Los_Angeles", "Europe/Paris", "Asia/Tokyo", "Pacific/Kiritimati", "Pacific/Pago_Pago"}
	start := models.NewCalendarDate(2026, time.January, 1)

	for _, tz := range zones {
		for offset := 0; offset < 60; offset++ {
			date := start.AddDays(offset)
			for _, boundary := range []Boundary{BoundaryStart, BoundaryEnd} {
				got := conv.InstantToCalendarDate(conv.CalendarDateToInstant(date, tz, boundary), tz)
				if got != date {
					t.Fatalf("%s %s (%s): expected %s, got %s", tz, date, boundary, date, got)
				}
			}
		}
	}
}

func TestUnknownTimezoneFallsBackToDefault(t *testing.T) {
	tokyo, err := LoadDefault("Asia/Tokyo")
	if err != nil {
		t.Fatalf("load default: %v", err)
	}
	conv := New(zap.NewNop(), tokyo)

	date := models.NewCalendarDate(2026, time.March, 2)
	want := conv.CalendarDateToInstant(date, "Asia/Tokyo", BoundaryStart)
	got := conv.CalendarDateToInstant(date, "Mars/Olympus_Mons", BoundaryStart)
	if !got.Equal(want) {
		t.Fatalf("expected fallback to Asia/Tokyo %s, got %s", FormatInstant(want), FormatInstant(got))
	}

	if conv.Location("Local") != tokyo {
		t.Fatalf("expected Local to resolve to the injected default")
	}
}

func TestUnknownTimezonesAreNotMemoized(t *testing.T) {
	conv := New(zap.NewNop(), time.UTC)

	for i := 0; i < 1000; i++ {
		if loc := conv.Location(fmt.Sprintf("Bogus/Zone_%d", i)); loc != time.UTC {
			t.Fatalf("expected fallback zone, got %s", loc)
		}
	}
	conv.Location("Asia/Tokyo")
	conv.Location("Asia/Tokyo")

	entries := 0
	conv.zones.Range(func(_, _ any) bool {
		entries++
		return true
	})
	if entries != 1 {
		t.Fatalf("expected 1 memoized zone, got %d", entries)
	}
}

func TestLoadDefaultRejectsHostZone(t *testing.T) {
	if _, err := LoadDefault("Local"); !errors.Is(err, derr.ErrTimezoneResolution) {
		t.Fatalf("expected timezone resolution error, got %v", err)
	}
	if _, err := LoadDefault("Nowhere/Atlantis"); !errors.Is(err, derr.ErrTimezoneResolution) {
		t.Fatalf("expected timezone resolution error, got %v", err)
	}
	loc, err := LoadDefault("")
	if err != nil || loc != time.UTC {
		t.Fatalf("expected UTC for empty name, got %v, %v", loc, err)
	}
}

// Spring forward in Los Angeles happens at 2026-03-08 10:00Z. A wall time just after
// the jump is probed with the pre-jump offset and lands an hour late.
func TestProbeAcrossSpringForwardIsOffByAnHour(t *testing.T) {
	conv := New(zap.NewNop(), time.UTC)
	date := models.NewCalendarDate(2026, time.March, 8)

	got := conv.WallDateTimeToInstant(date, models.NewWallTime(3, 0), "America/Los_Angeles")
	if FormatInstant(got) != "2026-03-08T11:00:00.000Z" {
		t.Fatalf("expected 2026-03-08T11:00:00.000Z, got %s", FormatInstant(got))
	}
	if clock := conv.InstantToWallTime(got, "America/Los_Angeles"); clock.String() != "04:00" {
		t.Fatalf("expected 04:00 after the jump, got %s", clock)
	}

	noon := conv.WallDateTimeToInstant(date, models.NewWallTime(12, 0), "America/Los_Angeles")
	if FormatInstant(noon) != "2026-03-08T19:00:00.000Z" {
		t.Fatalf("expected 2026-03-08T19:00:00.000Z, got %s", FormatInstant(noon))
	}
}

func TestDayRange(t *testing.T) {
	conv := New(zap.NewNop(), time.UTC)

	from, to := conv.DayRange(models.NewCalendarDate(2026, time.January, 29), "America/Los_Angeles")
	if FormatInstant(from) != "2026-01-29T08:00:00.000Z" {
		t.Fatalf("unexpected range start %s", FormatInstant(from))
	}
	if FormatInstant(to) != "2026-01-30T08:00:00.000Z" {
		t.Fatalf("unexpected range end %s", FormatInstant(to))
	}
}

func TestParseInstant(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "utc_millis", value: "2026-01-29T08:01:00.000Z", want: "2026-01-29T08:01:00.000Z"},
		{name: "no_fraction", value: "2026-01-29T08:01:00Z", want: "2026-01-29T08:01:00.000Z"},
		{name: "offset", value: "2026-01-29T00:01:00-08:00", want: "2026-01-29T08:01:00.000Z"},
		{name: "empty", value: " ", wantErr: true},
		{name: "date_only", value: "2026-01-29", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInstant(tt.value)
			if tt.wantErr {
				if !errors.Is(err, derr.ErrParse) {
					t.Fatalf("expected parse error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if FormatInstant(got) != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, FormatInstant(got))
			}
		})
	}
}

func TestParseBoundary(t *testing.T) {
	if b, err := ParseBoundary("END"); err != nil || b != BoundaryEnd {
		t.Fatalf("expected end boundary, got %v, %v", b, err)
	}
	if b, err := ParseBoundary(""); err != nil || b != BoundaryStart {
		t.Fatalf("expected start boundary, got %v, %v", b, err)
	}
	if _, err := ParseBoundary("noon"); !errors.Is(err, derr.ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
}
