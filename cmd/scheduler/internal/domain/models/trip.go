package models

import (
	"fmt"
	"time"

	derr "github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/errors"
)

type TripID string

type Trip struct {
	ID         TripID
	Title      string
	StartDate  CalendarDate
	EndDate    CalendarDate
	TimeZoneID string
}

func (t Trip) Validate() error {
	if t.StartDate.IsZero() || t.EndDate.IsZero() {
		return fmt.Errorf("%w: trip %s is missing start or end date", derr.ErrInvalidTrip, t.ID)
	}
	if t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("%w: trip %s ends %s before it starts %s", derr.ErrInvalidTrip, t.ID, t.EndDate, t.StartDate)
	}
	return nil
}

// DayCount counts calendar days inclusively: Mar 1 to Mar 8 is 8 days.
func (t Trip) DayCount() int {
	return t.StartDate.DaysUntil(t.EndDate) + 1
}

// DateOf maps a 1-based trip day to its calendar date.
func (t Trip) DateOf(day int) CalendarDate {
	return t.StartDate.AddDays(day - 1)
}

type TripDay struct {
	Day     int          `json:"day"`
	Date    CalendarDate `json:"date"`
	Weekday string       `json:"dayOfWeek"`
}

func (t Trip) Days() []TripDay {
	n := t.DayCount()
	if n <= 0 {
		return nil
	}

	days := make([]TripDay, 0, n)
	for day := 1; day <= n; day++ {
		date := t.DateOf(day)
		days = append(days, TripDay{
			Day:     day,
			Date:    date,
			Weekday: date.Weekday().String()[:3],
		})
	}
	return days
}

type Booking struct {
	ID       string
	Category string
	Type     string
	Title    string
	Start    time.Time
	End      *time.Time
}

// EndOrStart treats an open-ended booking as a point in time.
func (b Booking) EndOrStart() time.Time {
	if b.End == nil {
		return b.Start
	}
	return *b.End
}
