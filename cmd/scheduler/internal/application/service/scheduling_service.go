package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/application/scheduling"
	derr "github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/errors"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/models"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/ports"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/wallclock"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "scheduler/service"

type SchedulingService struct {
	log       *zap.Logger
	trips     ports.TripRepository
	bookings  ports.BookingRepository
	cache     ports.TripCache
	cacheTTL  time.Duration
	conv      *wallclock.Converter
	suggester *scheduling.Suggester
	exporter  ports.CalendarExporter
}

type Deps struct {
	Trips     ports.TripRepository
	Bookings  ports.BookingRepository
	Cache     ports.TripCache
	CacheTTL  time.Duration
	Converter *wallclock.Converter
	Exporter  ports.CalendarExporter
}

func NewSchedulingService(log *zap.Logger, deps Deps) *SchedulingService {
	if log == nil {
		log = zap.NewNop()
	}
	conv := deps.Converter
	if conv == nil {
		conv = wallclock.New(log, time.UTC)
	}

	return &SchedulingService{
		log:       log,
		trips:     deps.Trips,
		bookings:  deps.Bookings,
		cache:     deps.Cache,
		cacheTTL:  deps.CacheTTL,
		conv:      conv,
		suggester: scheduling.NewSuggester(log, conv, scheduling.NewSlotFinder()),
		exporter:  deps.Exporter,
	}
}

func (s *SchedulingService) Converter() *wallclock.Converter {
	return s.conv
}

// SuggestSchedule proposes a day and time for a new item on the trip. A trip that
// cannot be found still gets the default suggestion.
func (s *SchedulingService) SuggestSchedule(ctx context.Context, id models.TripID, item models.ItemRequest) (models.SchedulingSuggestion, error) {
	const op = "service.SuggestSchedule"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()
	span.SetAttributes(
		attribute.String("trip.id", string(id)),
		attribute.String("item.category", item.Category),
		attribute.String("item.type", item.Type),
	)

	logger := s.log.With(
		zap.String("op", op),
		zap.String("trip_id", string(id)),
		zap.String("category", item.Category),
	)

	if strings.TrimSpace(string(id)) == "" {
		span.SetStatus(otelcodes.Error, "empty trip id")
		return models.SchedulingSuggestion{}, fmt.Errorf("%s: %w: trip id is required", op, derr.ErrInvalidRequest)
	}

	req := scheduling.Request{
		Category: item.Category,
		Type:     item.Type,
		Context:  item.Context,
	}

	var src scheduling.BookingSource
	trip, err := s.getTrip(ctx, id)
	switch {
	case err == nil:
		if err := trip.Validate(); err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, "invalid trip")
			return models.SchedulingSuggestion{}, fmt.Errorf("%s: %w", op, err)
		}
		bookings, err := s.loadBookings(ctx, trip)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, "failed to load bookings")
			return models.SchedulingSuggestion{}, fmt.Errorf("%s: %w", op, err)
		}
		req.Trip = &trip
		src = scheduling.NewDayIndex(bookings, s.conv.Location(trip.TimeZoneID))
		span.SetAttributes(attribute.Int("trip.bookings", len(bookings)))
	case errors.Is(err, derr.ErrTripNotFound):
		logger.Warn("trip not found, suggesting defaults")
		span.AddEvent("trip.not_found")
	default:
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "failed to load trip")
		return models.SchedulingSuggestion{}, fmt.Errorf("%s: %w", op, err)
	}

	suggestion, err := s.suggester.Suggest(req, src)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "suggest failed")
		return models.SchedulingSuggestion{}, fmt.Errorf("%s: %w", op, err)
	}

	span.SetAttributes(
		attribute.Int("suggestion.day", suggestion.Day),
		attribute.String("suggestion.reason", suggestion.Reason),
	)
	span.SetStatus(otelcodes.Ok, "ok")
	logger.Info("schedule suggested",
		zap.Int("day", suggestion.Day),
		zap.String("start", suggestion.StartTime.String()),
		zap.String("end", suggestion.EndTime.String()),
		zap.String("reason", suggestion.Reason),
	)
	return suggestion, nil
}

func (s *SchedulingService) TripDays(ctx context.Context, id models.TripID) ([]models.TripDay, error) {
	const op = "service.TripDays"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op, trace.WithAttributes(attribute.String("trip.id", string(id))))
	defer span.End()

	trip, err := s.getTrip(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := trip.Validate(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return trip.Days(), nil
}

func (s *SchedulingService) ExportCalendar(ctx context.Context, id models.TripID) ([]byte, error) {
	const op = "service.ExportCalendar"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op, trace.WithAttributes(attribute.String("trip.id", string(id))))
	defer span.End()

	if s.exporter == nil {
		return nil, fmt.Errorf("%s: calendar exporter is not configured", op)
	}

	trip, err := s.getTrip(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := trip.Validate(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bookings, err := s.loadBookings(ctx, trip)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := s.exporter.Export(trip, bookings)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%s: export calendar: %w", op, err)
	}

	span.SetAttributes(attribute.Int("calendar.events", len(bookings)))
	return data, nil
}

func (s *SchedulingService) getTrip(ctx context.Context, id models.TripID) (models.Trip, error) {
	const op = "service.getTrip"

	logger := s.log.With(
		zap.String("op", op),
		zap.String("trip_id", string(id)),
	)

	if s.cache != nil {
		trip, err := s.cache.GetByID(ctx, id)
		if err == nil {
			logger.Debug("trip loaded from redis cache")
			return trip, nil
		}
		if !errors.Is(err, derr.ErrTripNotFound) {
			logger.Warn("redis cache read failed", zap.Error(err))
		}
	}

	trip, err := s.trips.GetTrip(ctx, id)
	if err != nil {
		if errors.Is(err, derr.ErrTripNotFound) {
			return models.Trip{}, err
		}
		return models.Trip{}, fmt.Errorf("%s: get trip from repo: %w", op, err)
	}
	logger.Debug("trip loaded from db")

	if s.cache != nil {
		if err := s.cache.Set(ctx, trip, s.cacheTTL); err != nil {
			logger.Warn("redis cache write failed", zap.Error(err))
		}
	}

	return trip, nil
}

// loadBookings reads every booking that starts on one of the trip's local calendar days.
func (s *SchedulingService) loadBookings(ctx context.Context, trip models.Trip) ([]models.Booking, error) {
	loc := s.conv.Location(trip.TimeZoneID)
	from, _ := wallclock.DayRangeIn(trip.StartDate, loc)
	_, to := wallclock.DayRangeIn(trip.EndDate, loc)

	bookings, err := s.bookings.ListBookings(ctx, trip.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}
