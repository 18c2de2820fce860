package scheduling

import (
	"testing"
	"time"

	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/models"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/wallclock"
	"go.uber.org/zap"
)

const testZone = "America/Los_Angeles"

type bookingFactory struct {
	t    *testing.T
	conv *wallclock.Converter
	date models.CalendarDate
}

func newBookingFactory(t *testing.T, date models.CalendarDate) bookingFactory {
	return bookingFactory{t: t, conv: wallclock.New(zap.NewNop(), time.UTC), date: date}
}

func (f bookingFactory) at(clock string) time.Time {
	f.t.Helper()
	w, err := models.ParseWallTime(clock)
	if err != nil {
		f.t.Fatalf("parse %q: %v", clock, err)
	}
	return f.conv.WallDateTimeToInstant(f.date, w, testZone)
}

func (f bookingFactory) booking(from, to string) models.Booking {
	f.t.Helper()
	end := f.at(to)
	return models.Booking{Start: f.at(from), End: &end}
}

func (f bookingFactory) point(at string) models.Booking {
	f.t.Helper()
	return models.Booking{Start: f.at(at)}
}

func slotStrings(slots []models.TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.StartTime.String()+"-"+s.EndTime.String())
	}
	return out
}

func TestFindSlots(t *testing.T) {
	date := models.NewCalendarDate(2026, time.March, 2)
	f := newBookingFactory(t, date)
	loc, _ := time.LoadLocation(testZone)

	tests := []struct {
		name     string
		bookings []models.Booking
		hours    float64
		want     []string
	}{
		{
			name:  "empty day",
			hours: 1.5,
			want:  []string{"08:00-23:00"},
		},
		{
			name:     "morning booking leaves the rest of the day",
			bookings: []models.Booking{f.booking("09:00", "11:00")},
			hours:    1.5,
			want:     []string{"11:30-23:00"},
		},
		{
			name:     "gap before first booking",
			bookings: []models.Booking{f.booking("12:00", "13:00")},
			hours:    2,
			want:     []string{"08:00-11:30", "13:30-23:00"},
		},
		{
			name: "gap between bookings",
			bookings: []models.Booking{
				f.booking("15:00", "16:00"),
				f.booking("08:00", "10:00"),
				f.booking("17:00", "23:00"),
			},
			hours: 1,
			want:  []string{"10:30-14:30"},
		},
		{
			name:     "fully booked",
			bookings: []models.Booking{f.booking("08:00", "23:00")},
			hours:    1.5,
			want:     []string{},
		},
		{
			name: "back to back with short gaps",
			bookings: []models.Booking{
				f.booking("08:00", "12:00"),
				f.booking("12:20", "17:00"),
				f.booking("17:25", "23:00"),
			},
			hours: 0.5,
			want:  []string{},
		},
		{
			name:     "open ended booking is a point",
			bookings: []models.Booking{f.point("14:00")},
			hours:    2,
			want:     []string{"08:00-13:30", "14:30-23:00"},
		},
		{
			name: "overlapping bookings do not open a gap inside a longer one",
			bookings: []models.Booking{
				f.booking("09:00", "18:00"),
				f.booking("10:00", "11:00"),
				f.booking("13:00", "14:00"),
			},
			hours: 1,
			want:  []string{"18:30-23:00"},
		},
		{
			name:     "gap exactly duration plus buffer",
			bookings: []models.Booking{f.booking("10:00", "11:00"), f.booking("13:00", "14:00")},
			hours:    1.5,
			want:     []string{"08:00-09:30", "11:30-12:30", "14:30-23:00"},
		},
		{
			name:     "booking before business hours",
			bookings: []models.Booking{f.booking("06:00", "07:00")},
			hours:    2,
			want:     []string{"08:00-23:00"},
		},
	}

	finder := NewSlotFinder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slotStrings(finder.FindSlots(2, date, tt.bookings, loc, tt.hours))
			if len(got) != len(tt.want) {
				t.Fatalf("expected slots %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("expected slots %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestFindSlotsBookingPastMidnight(t *testing.T) {
	date := models.NewCalendarDate(2026, time.March, 2)
	f := newBookingFactory(t, date)
	next := newBookingFactory(t, date.AddDays(1))
	loc, _ := time.LoadLocation(testZone)

	end := next.at("01:00")
	bookings := []models.Booking{{Start: f.at("20:00"), End: &end}}

	got := slotStrings(NewSlotFinder().FindSlots(1, date, bookings, loc, 2))
	if len(got) != 1 || got[0] != "08:00-19:30" {
		t.Fatalf("expected [08:00-19:30], got %v", got)
	}
}

func TestFindSlotsInvariants(t *testing.T) {
	date := models.NewCalendarDate(2026, time.March, 2)
	f := newBookingFactory(t, date)
	loc, _ := time.LoadLocation(testZone)

	bookings := []models.Booking{
		f.booking("08:40", "09:10"),
		f.booking("10:00", "10:30"),
		f.booking("10:15", "12:45"),
		f.point("15:00"),
		f.booking("19:00", "20:00"),
	}

	for _, hours := range []float64{0.5, 1, 1.5, 2, 3} {
		for _, slot := range NewSlotFinder().FindSlots(3, date, bookings, loc, hours) {
			if slot.Day != 3 {
				t.Fatalf("expected day 3, got %d", slot.Day)
			}
			if !slot.StartTime.Before(slot.EndTime) {
				t.Fatalf("slot %s-%s is empty", slot.StartTime, slot.EndTime)
			}
			if slot.StartTime.Minutes() < businessDayStart || slot.EndTime.Minutes() > businessDayEnd {
				t.Fatalf("slot %s-%s leaves business hours", slot.StartTime, slot.EndTime)
			}
		}
	}
}
