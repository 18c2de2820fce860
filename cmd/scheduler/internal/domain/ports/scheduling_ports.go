package ports

import (
	"context"
	"time"

	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/models"
)

type TripRepository interface {
	GetTrip(ctx context.Context, id models.TripID) (models.Trip, error)
}

type BookingRepository interface {
	// ListBookings returns bookings of a trip whose start lies in [from, to).
	ListBookings(ctx context.Context, id models.TripID, from, to time.Time) ([]models.Booking, error)
}

type TripCache interface {
	GetByID(ctx context.Context, id models.TripID) (models.Trip, error)
	Set(ctx context.Context, trip models.Trip, ttl time.Duration) error
}

type CalendarExporter interface {
	Export(trip models.Trip, bookings []models.Booking) ([]byte, error)
}
