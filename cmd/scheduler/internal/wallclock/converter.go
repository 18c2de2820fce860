// Package wallclock converts between absolute instants and the calendar date and
// clock time a person reads in a given IANA timezone.
//
// Instants cross package boundaries as UTC time.Time values (ISO-8601 on the wire),
// dates as models.CalendarDate and clock times as models.WallTime.
package wallclock

import (
	"fmt"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"

	derr "github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/errors"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/models"
	"go.uber.org/zap"
)

const instantLayout = "2006-01-02T15:04:05.000Z07:00"

// Boundary picks which end of a calendar day a date-only value is pinned to.
type Boundary uint8

const (
	// BoundaryStart pins a date to 00:01 local time.
	BoundaryStart Boundary = iota
	// BoundaryEnd pins a date to 23:59:59 local time.
	BoundaryEnd
)

func ParseBoundary(value string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "start":
		return BoundaryStart, nil
	case "end":
		return BoundaryEnd, nil
	default:
		return BoundaryStart, fmt.Errorf("%w: boundary %q: expected start or end", derr.ErrParse, value)
	}
}

func (b Boundary) String() string {
	if b == BoundaryEnd {
		return "end"
	}
	return "start"
}

func (b Boundary) clock() (hour, minute, second int) {
	if b == BoundaryEnd {
		return 23, 59, 59
	}
	return 0, 1, 0
}

type Converter struct {
	log      *zap.Logger
	fallback *time.Location
	zones    sync.Map
}

// New returns a converter that resolves an empty or unknown timezone id to fallback.
// A nil fallback means UTC.
func New(log *zap.Logger, fallback *time.Location) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	if fallback == nil {
		fallback = time.UTC
	}

	return &Converter{
		log:      log,
		fallback: fallback,
	}
}

// LoadDefault resolves the zone used when callers pass no timezone id.
func LoadDefault(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC, nil
	}
	if strings.EqualFold(name, "local") {
		return nil, fmt.Errorf("%w: %q is host dependent, name a zone explicitly", derr.ErrTimezoneResolution, name)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", derr.ErrTimezoneResolution, name, err)
	}
	return loc, nil
}

func (c *Converter) Default() *time.Location {
	return c.fallback
}

// Location resolves tz, falling back to the default zone with a warning when the id is unknown.
func (c *Converter) Location(tz string) *time.Location {
	tz = strings.TrimSpace(tz)
	if tz == "" || strings.EqualFold(tz, "local") {
		return c.fallback
	}

	if cached, ok := c.zones.Load(tz); ok {
		return cached.(*time.Location)
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		c.log.Warn("timezone resolution failed, using default zone",
			zap.String("tz", tz),
			zap.String("default_tz", c.fallback.String()),
			zap.Error(fmt.Errorf("%w: %v", derr.ErrTimezoneResolution, err)),
		)
		return c.fallback
	}

	// Only resolved ids are memoized.
	c.zones.Store(tz, loc)
	return loc
}

func (c *Converter) CalendarDateToInstant(date models.CalendarDate, tz string, boundary Boundary) time.Time {
	return c.CalendarDateToInstantIn(date, c.Location(tz), boundary)
}

func (c *Converter) CalendarDateToInstantIn(date models.CalendarDate, loc *time.Location, boundary Boundary) time.Time {
	hour, minute, second := boundary.clock()
	return probeInstant(date, hour, minute, second, loc)
}

func (c *Converter) InstantToCalendarDate(t time.Time, tz string) models.CalendarDate {
	return models.CalendarDateOf(t.In(c.Location(tz)))
}

func (c *Converter) InstantToWallTime(t time.Time, tz string) models.WallTime {
	return models.WallTimeOf(t.In(c.Location(tz)))
}

func (c *Converter) InstantToWallDateTime(t time.Time, tz string) (models.CalendarDate, models.WallTime) {
	return InstantToWallDateTimeIn(t, c.Location(tz))
}

func InstantToWallDateTimeIn(t time.Time, loc *time.Location) (models.CalendarDate, models.WallTime) {
	local := t.In(loc)
	return models.CalendarDateOf(local), models.WallTimeOf(local)
}

func (c *Converter) WallDateTimeToInstant(date models.CalendarDate, clock models.WallTime, tz string) time.Time {
	return WallDateTimeToInstantIn(date, clock, c.Location(tz))
}

func WallDateTimeToInstantIn(date models.CalendarDate, clock models.WallTime, loc *time.Location) time.Time {
	return probeInstant(date, clock.Hour, clock.Minute, 0, loc)
}

// DayRange returns [00:00 local on date, 00:00 local on the next date).
func (c *Converter) DayRange(date models.CalendarDate, tz string) (time.Time, time.Time) {
	return DayRangeIn(date, c.Location(tz))
}

func DayRangeIn(date models.CalendarDate, loc *time.Location) (time.Time, time.Time) {
	midnight := models.NewWallTime(0, 0)
	return WallDateTimeToInstantIn(date, midnight, loc), WallDateTimeToInstantIn(date.AddDays(1), midnight, loc)
}

func ParseInstant(value string) (time.Time, error) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: instant is empty", derr.ErrParse)
	}

	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: instant %q: expected ISO-8601", derr.ErrParse, value)
	}
	return t.UTC(), nil
}

// FormatInstant renders t as ISO-8601 UTC with millisecond precision.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(instantLayout)
}
