package scheduling

import (
	"time"

	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/models"
)

// DayIndex groups a booking snapshot by the local calendar date each booking starts on.
type DayIndex map[models.CalendarDate][]models.Booking

func NewDayIndex(bookings []models.Booking, loc *time.Location) DayIndex {
	if loc == nil {
		loc = time.UTC
	}

	index := make(DayIndex)
	for _, b := range bookings {
		date := models.CalendarDateOf(b.Start.In(loc))
		index[date] = append(index[date], b)
	}
	return index
}

func (idx DayIndex) BookingsOn(date models.CalendarDate) []models.Booking {
	return idx[date]
}
