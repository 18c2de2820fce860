package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	derr "github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/errors"
)

const (
	calendarDateLayout = "2006-01-02"
	minutesPerDay      = 24 * 60
)

// CalendarDate is a day as written on a form: no time of day, no zone.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

func ParseCalendarDate(value string) (CalendarDate, error) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return CalendarDate{}, fmt.Errorf("%w: calendar date is empty", derr.ErrParse)
	}

	t, err := time.Parse(calendarDateLayout, raw)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: calendar date %q: expected YYYY-MM-DD", derr.ErrParse, value)
	}

	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// CalendarDateOf returns the date fields of t as seen in t's own location.
func CalendarDateOf(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d CalendarDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d CalendarDate) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

func (d *CalendarDate) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = CalendarDate{}
		return nil
	}

	parsed, err := ParseCalendarDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// midnightUTC anchors the date at 00:00 UTC so date arithmetic never sees a zone.
func (d CalendarDate) midnightUTC() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d CalendarDate) AddDays(n int) CalendarDate {
	return CalendarDateOf(d.midnightUTC().AddDate(0, 0, n))
}

// DaysUntil returns the number of calendar days from d to other (negative if other is earlier).
func (d CalendarDate) DaysUntil(other CalendarDate) int {
	return int(other.midnightUTC().Sub(d.midnightUTC()).Hours() / 24)
}

func (d CalendarDate) Before(other CalendarDate) bool {
	return d.midnightUTC().Before(other.midnightUTC())
}

func (d CalendarDate) Weekday() time.Weekday {
	return d.midnightUTC().Weekday()
}

// WallTime is an hour and minute read off a 24-hour clock.
type WallTime struct {
	Hour   int
	Minute int
}

func NewWallTime(hour, minute int) WallTime {
	return WallTime{Hour: hour, Minute: minute}
}

// ParseWallTime accepts H:MM, HH:MM and HH:MM:SS; seconds are dropped.
func ParseWallTime(value string) (WallTime, error) {
	raw := strings.TrimSpace(value)
	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return WallTime{}, fmt.Errorf("%w: wall time %q: expected HH:MM", derr.ErrParse, value)
	}

	hour, err := parseClockField(parts[0], 1, 23)
	if err != nil {
		return WallTime{}, fmt.Errorf("%w: wall time %q: hour: %v", derr.ErrParse, value, err)
	}
	minute, err := parseClockField(parts[1], 2, 59)
	if err != nil {
		return WallTime{}, fmt.Errorf("%w: wall time %q: minute: %v", derr.ErrParse, value, err)
	}
	if len(parts) == 3 {
		if _, err := parseClockField(parts[2], 2, 59); err != nil {
			return WallTime{}, fmt.Errorf("%w: wall time %q: second: %v", derr.ErrParse, value, err)
		}
	}

	return WallTime{Hour: hour, Minute: minute}, nil
}

func parseClockField(raw string, minDigits, max int) (int, error) {
	if len(raw) < minDigits || len(raw) > 2 {
		return 0, fmt.Errorf("bad width %q", raw)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > max {
		return 0, fmt.Errorf("%d out of range", v)
	}
	return v, nil
}

// WallTimeFromMinutes clamps minutes into a single day.
func WallTimeFromMinutes(minutes int) WallTime {
	if minutes < 0 {
		minutes = 0
	}
	if minutes > minutesPerDay-1 {
		minutes = minutesPerDay - 1
	}
	return WallTime{Hour: minutes / 60, Minute: minutes % 60}
}

// WallTimeOf returns the clock fields of t as seen in t's own location.
func WallTimeOf(t time.Time) WallTime {
	return WallTime{Hour: t.Hour(), Minute: t.Minute()}
}

func (w WallTime) Minutes() int {
	return w.Hour*60 + w.Minute
}

func (w WallTime) Add(minutes int) WallTime {
	return WallTimeFromMinutes(w.Minutes() + minutes)
}

func (w WallTime) Before(other WallTime) bool {
	return w.Minutes() < other.Minutes()
}

func (w WallTime) String() string {
	return fmt.Sprintf("%02d:%02d", w.Hour, w.Minute)
}

func (w WallTime) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

func (w *WallTime) UnmarshalText(text []byte) error {
	parsed, err := ParseWallTime(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
