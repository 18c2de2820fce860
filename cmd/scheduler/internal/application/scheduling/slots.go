package scheduling

import (
	"sort"
	"time"

	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/models"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/wallclock"
)

const (
	businessDayStart = 8 * 60
	businessDayEnd   = 23 * 60
	bufferMinutes    = 30
	endOfDayMinutes  = 24 * 60
)

// SlotFinder finds open gaps in one day's bookings, within business hours.
type SlotFinder struct {
	dayStart int
	dayEnd   int
	buffer   int
}

func NewSlotFinder() *SlotFinder {
	return &SlotFinder{
		dayStart: businessDayStart,
		dayEnd:   businessDayEnd,
		buffer:   bufferMinutes,
	}
}

type span struct {
	start int
	end   int
}

// FindSlots returns one slot per gap that is at least durationHours plus the buffer wide.
// Slot edges that touch a booking are pulled in by the buffer. Bookings are read in
// start order only, so overlapping or duplicate bookings are fine.
func (f *SlotFinder) FindSlots(day int, date models.CalendarDate, bookings []models.Booking, loc *time.Location, durationHours float64) []models.TimeSlot {
	spans := f.localSpans(date, bookings, loc)

	if len(spans) == 0 {
		return []models.TimeSlot{{
			Day:       day,
			StartTime: models.WallTimeFromMinutes(f.dayStart),
			EndTime:   models.WallTimeFromMinutes(f.dayEnd),
		}}
	}

	need := hoursToMinutes(durationHours) + f.buffer
	slots := make([]models.TimeSlot, 0, len(spans)+1)

	cursor, cursorAtBooking := f.dayStart, false
	for _, s := range spans {
		gapEnd, endAtBooking := s.start, true
		if gapEnd > f.dayEnd {
			gapEnd, endAtBooking = f.dayEnd, false
		}
		slots = f.appendGap(slots, day, need, cursor, cursorAtBooking, gapEnd, endAtBooking)

		if s.end > cursor {
			cursor, cursorAtBooking = s.end, true
		}
	}
	slots = f.appendGap(slots, day, need, cursor, cursorAtBooking, f.dayEnd, false)

	return slots
}

func (f *SlotFinder) appendGap(slots []models.TimeSlot, day, need, start int, startAtBooking bool, end int, endAtBooking bool) []models.TimeSlot {
	if end-start < need {
		return slots
	}

	if startAtBooking {
		start += f.buffer
	}
	if endAtBooking {
		end -= f.buffer
	}
	if start >= end {
		return slots
	}

	return append(slots, models.TimeSlot{
		Day:       day,
		StartTime: models.WallTimeFromMinutes(start),
		EndTime:   models.WallTimeFromMinutes(end),
	})
}

// localSpans converts bookings to minutes since local midnight on date, sorted by start.
// A booking without an end is a point; one ending on a later date runs to midnight.
func (f *SlotFinder) localSpans(date models.CalendarDate, bookings []models.Booking, loc *time.Location) []span {
	spans := make([]span, 0, len(bookings))

	for _, b := range bookings {
		startDate, startClock := wallclock.InstantToWallDateTimeIn(b.Start, loc)
		if date.Before(startDate) {
			continue
		}
		start := startClock.Minutes()
		if startDate.Before(date) {
			start = 0
		}

		endDate, endClock := wallclock.InstantToWallDateTimeIn(b.EndOrStart(), loc)
		end := endClock.Minutes()
		switch {
		case date.Before(endDate):
			end = endOfDayMinutes
		case endDate.Before(date):
			continue
		}
		if end < start {
			end = start
		}

		spans = append(spans, span{start: start, end: end})
	}

	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].start < spans[j].start
	})

	return spans
}
