package scheduling

import (
	"fmt"
	"time"

	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/models"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/wallclock"
	"go.uber.org/zap"
)

const (
	ReasonStatedContext   = "from stated context"
	ReasonNextOnThatDay   = "next available time on that day"
	ReasonActivityDefault = "default time for this activity"
	ReasonOptimalSlot     = "optimal time slot found"
	ReasonNextAvailable   = "next available time"
	ReasonDefault         = "default suggestion"

	preferredWindowMinutes = 120
	lastMinuteOfDay        = endOfDayMinutes - 1
)

// BookingSource hands out the bookings that start on a local calendar date.
type BookingSource interface {
	BookingsOn(date models.CalendarDate) []models.Booking
}

type Request struct {
	Category string
	Type     string
	Context  *models.SuggestionContext
	// Trip is nil when the caller could not load trip metadata.
	Trip *models.Trip
}

type Suggester struct {
	log    *zap.Logger
	conv   *wallclock.Converter
	finder *SlotFinder
}

func NewSuggester(log *zap.Logger, conv *wallclock.Converter, finder *SlotFinder) *Suggester {
	if log == nil {
		log = zap.NewNop()
	}
	if finder == nil {
		finder = NewSlotFinder()
	}

	return &Suggester{
		log:    log,
		conv:   conv,
		finder: finder,
	}
}

// Suggest always produces a suggestion; conflicts degrade to defaults. The only error
// is a trip whose dates are missing or reversed.
func (s *Suggester) Suggest(req Request, src BookingSource) (models.SchedulingSuggestion, error) {
	const op = "scheduling.Suggest"

	defaults := DefaultsFor(req.Category, req.Type)
	duration := defaults.DurationMinutes()

	logger := s.log.With(
		zap.String("op", op),
		zap.String("category", req.Category),
		zap.String("type", req.Type),
	)

	var (
		dayCount int
		loc      *time.Location
	)
	if req.Trip != nil {
		if err := req.Trip.Validate(); err != nil {
			return models.SchedulingSuggestion{}, fmt.Errorf("%s: %w", op, err)
		}
		dayCount = req.Trip.DayCount()
		loc = s.conv.Location(req.Trip.TimeZoneID)
	}
	if src == nil {
		src = DayIndex{}
	}

	hints := req.Context
	if day, ok := requestedDay(hints, dayCount); ok {
		if hints.SpecificTime != nil {
			logger.Debug("using stated day and time", zap.Int("day", day))
			return newSuggestion(day, *hints.SpecificTime, duration, ReasonStatedContext), nil
		}

		if req.Trip != nil {
			date := req.Trip.DateOf(day)
			slots := s.finder.FindSlots(day, date, src.BookingsOn(date), loc, defaults.DurationHours)
			if len(slots) > 0 {
				logger.Debug("using first open slot on stated day", zap.Int("day", day), zap.Int("slots", len(slots)))
				return newSuggestion(day, slots[0].StartTime, duration, ReasonNextOnThatDay), nil
			}
		}

		start := defaults.StartTime
		if t, ok := hints.TimeOfDay.StartTime(); ok {
			start = t
		}
		logger.Debug("no open slot on stated day, using default time", zap.Int("day", day))
		return newSuggestion(day, start, duration, ReasonActivityDefault), nil
	}

	for day := 1; day <= dayCount; day++ {
		date := req.Trip.DateOf(day)
		slots := s.finder.FindSlots(day, date, src.BookingsOn(date), loc, defaults.DurationHours)
		if len(slots) == 0 {
			continue
		}

		for _, slot := range slots {
			if abs(slot.StartTime.Minutes()-defaults.StartTime.Minutes()) < preferredWindowMinutes {
				logger.Debug("found slot near default time", zap.Int("day", day))
				return newSuggestion(day, slot.StartTime, duration, ReasonOptimalSlot), nil
			}
		}

		logger.Debug("using first open slot", zap.Int("day", day))
		return newSuggestion(day, slots[0].StartTime, duration, ReasonNextAvailable), nil
	}

	logger.Debug("no open slot on any day", zap.Int("days", dayCount))
	return newSuggestion(1, defaults.StartTime, duration, ReasonDefault), nil
}

// requestedDay clamps a stated day into the trip when the trip length is known.
func requestedDay(hints *models.SuggestionContext, dayCount int) (int, bool) {
	// Day 0 means no day was stated.
	if hints == nil || hints.DayNumber == nil || *hints.DayNumber == 0 {
		return 0, false
	}

	day := *hints.DayNumber
	if day < 1 {
		day = 1
	}
	if dayCount > 0 && day > dayCount {
		day = dayCount
	}
	return day, true
}

// newSuggestion keeps the item inside the day: the end is capped at 23:59 and the
// start pulled back if that would leave nothing.
func newSuggestion(day int, start models.WallTime, durationMinutes int, reason string) models.SchedulingSuggestion {
	startMin := start.Minutes()
	endMin := startMin + durationMinutes
	if endMin > lastMinuteOfDay {
		endMin = lastMinuteOfDay
	}
	if startMin >= endMin {
		startMin = endMin - durationMinutes
		if startMin < 0 {
			startMin = 0
		}
	}

	return models.SchedulingSuggestion{
		Day:       day,
		StartTime: models.WallTimeFromMinutes(startMin),
		EndTime:   models.WallTimeFromMinutes(endMin),
		Reason:    reason,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
