package models

import (
	"errors"
	"testing"
	"time"

	derr "github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/errors"
)

func TestParseWallTime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    WallTime
		wantErr bool
	}{
		{name: "two digit hour", value: "09:30", want: NewWallTime(9, 30)},
		{name: "one digit hour", value: "7:05", want: NewWallTime(7, 5)},
		{name: "seconds dropped", value: "18:45:59", want: NewWallTime(18, 45)},
		{name: "surrounding space", value: " 23:59 ", want: NewWallTime(23, 59)},
		{name: "midnight", value: "00:00", want: NewWallTime(0, 0)},
		{name: "hour 24", value: "24:00", wantErr: true},
		{name: "minute 60", value: "12:60", wantErr: true},
		{name: "one digit minute", value: "12:5", wantErr: true},
		{name: "three digit hour", value: "012:00", wantErr: true},
		{name: "second 60", value: "12:00:60", wantErr: true},
		{name: "no colon", value: "1200", wantErr: true},
		{name: "too many parts", value: "12:00:00:00", wantErr: true},
		{name: "words", value: "7pm", wantErr: true},
		{name: "negative", value: "-1:00", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWallTime(tt.value)
			if tt.wantErr {
				if !errors.Is(err, derr.ErrParse) {
					t.Fatalf("expected ErrParse, got %v (value %s)", err, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseCalendarDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    CalendarDate
		wantErr bool
	}{
		{name: "canonical", value: "2026-03-01", want: NewCalendarDate(2026, time.March, 1)},
		{name: "leap day", value: "2028-02-29", want: NewCalendarDate(2028, time.February, 29)},
		{name: "february 30", value: "2026-02-30", wantErr: true},
		{name: "not a leap year", value: "2026-02-29", wantErr: true},
		{name: "month 13", value: "2026-13-01", wantErr: true},
		{name: "unpadded", value: "2026-3-1", wantErr: true},
		{name: "with time", value: "2026-03-01T10:00:00Z", wantErr: true},
		{name: "blank", value: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCalendarDate(tt.value)
			if tt.wantErr {
				if !errors.Is(err, derr.ErrParse) {
					t.Fatalf("expected ErrParse, got %v (value %s)", err, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		value     string
		want      TimeOfDay
		wantStart string
		wantErr   bool
	}{
		{value: "morning", want: TimeOfDayMorning, wantStart: "09:00"},
		{value: "Afternoon", want: TimeOfDayAfternoon, wantStart: "14:00"},
		{value: " evening ", want: TimeOfDayEvening, wantStart: "19:00"},
		{value: "NIGHT", want: TimeOfDayNight, wantStart: "21:00"},
		{value: "", want: TimeOfDayUnspecified},
		{value: "noon", wantErr: true},
		{value: "dawn", wantErr: true},
		{value: "mornings", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.value)
			if tt.wantErr {
				if !errors.Is(err, derr.ErrParse) {
					t.Fatalf("expected ErrParse, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}

			start, ok := got.StartTime()
			if tt.wantStart == "" {
				if ok {
					t.Fatalf("expected no start time, got %s", start)
				}
				return
			}
			if !ok || start.String() != tt.wantStart {
				t.Fatalf("expected start %s, got %s (ok=%v)", tt.wantStart, start, ok)
			}
		})
	}
}

func TestCalendarDateText(t *testing.T) {
	var zero CalendarDate
	text, err := zero.MarshalText()
	if err != nil || len(text) != 0 {
		t.Fatalf("expected empty text for zero date, got %q, %v", text, err)
	}

	d := NewCalendarDate(2026, time.March, 1)
	if err := d.UnmarshalText(text); err != nil {
		t.Fatalf("expected empty text to unmarshal, got %v", err)
	}
	if !d.IsZero() {
		t.Fatalf("expected zero date, got %s", d)
	}

	if err := d.UnmarshalText([]byte("2026-02-30")); !errors.Is(err, derr.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}

	text, err = NewCalendarDate(2026, time.March, 8).MarshalText()
	if err != nil || string(text) != "2026-03-08" {
		t.Fatalf("expected 2026-03-08, got %q, %v", text, err)
	}
}

func TestCalendarDateArithmetic(t *testing.T) {
	start := NewCalendarDate(2026, time.February, 27)

	if got := start.AddDays(2); got != NewCalendarDate(2026, time.March, 1) {
		t.Fatalf("expected 2026-03-01, got %s", got)
	}
	if got := start.DaysUntil(NewCalendarDate(2026, time.March, 8)); got != 9 {
		t.Fatalf("expected 9 days, got %d", got)
	}
	if got := NewCalendarDate(2026, time.March, 1).Weekday(); got != time.Sunday {
		t.Fatalf("expected Sunday, got %s", got)
	}
}

func TestWallTimeFromMinutesClamps(t *testing.T) {
	if got := WallTimeFromMinutes(-30); got != NewWallTime(0, 0) {
		t.Fatalf("expected 00:00, got %s", got)
	}
	if got := NewWallTime(22, 30).Add(120); got != NewWallTime(23, 59) {
		t.Fatalf("expected 23:59, got %s", got)
	}
}
