package model

import (
	"time"

	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/models"
)

// TripRow mirrors the trips table. Postgres DATE columns scan as UTC midnight.
type TripRow struct {
	ID         string
	Title      string
	StartDate  time.Time
	EndDate    time.Time
	TimeZoneID string
}

func (r TripRow) ToDomain() models.Trip {
	return models.Trip{
		ID:         models.TripID(r.ID),
		Title:      r.Title,
		StartDate:  dateOf(r.StartDate),
		EndDate:    dateOf(r.EndDate),
		TimeZoneID: r.TimeZoneID,
	}
}

type BookingRow struct {
	ID       string
	Category string
	Type     string
	Title    string
	StartAt  time.Time
	EndAt    *time.Time
}

func (r BookingRow) ToDomain() models.Booking {
	b := models.Booking{
		ID:       r.ID,
		Category: r.Category,
		Type:     r.Type,
		Title:    r.Title,
		Start:    r.StartAt.UTC(),
	}
	if r.EndAt != nil {
		end := r.EndAt.UTC()
		b.End = &end
	}
	return b
}

func dateOf(t time.Time) models.CalendarDate {
	if t.IsZero() {
		return models.CalendarDate{}
	}
	return models.CalendarDateOf(t.UTC())
}
