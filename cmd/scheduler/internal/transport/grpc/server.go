package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/application/service"
	derr "github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/errors"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/models"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/wallclock"
	schedulingv1 "github.com/ozzus/trip-scheduler/protos/scheduling/v1"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const calendarContentType = "text/calendar; charset=utf-8"

type serverAPI struct {
	schedulingv1.UnimplementedSchedulingServiceServer
	log     *zap.Logger
	service *service.SchedulingService
	conv    *wallclock.Converter
}

func Register(gRPCServer *grpc.Server, log *zap.Logger, schedulingService *service.SchedulingService) {
	schedulingv1.RegisterSchedulingServiceServer(gRPCServer, &serverAPI{
		log:     log,
		service: schedulingService,
		conv:    schedulingService.Converter(),
	})
}

func (s *serverAPI) SuggestSchedule(ctx context.Context, req *schedulingv1.SuggestScheduleRequest) (*schedulingv1.SuggestScheduleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	tripID := strings.TrimSpace(req.GetTripId())
	if tripID == "" {
		return nil, status.Error(codes.InvalidArgument, "trip_id is required")
	}

	hints, err := toSuggestionContext(req.GetContext())
	if err != nil {
		return nil, mapError(err)
	}

	suggestion, err := s.service.SuggestSchedule(ctx, models.TripID(tripID), models.ItemRequest{
		Category: strings.TrimSpace(req.Category),
		Type:     strings.TrimSpace(req.Type),
		Context:  hints,
	})
	if err != nil {
		s.log.Error("SuggestSchedule failed", zap.String("trip_id", tripID), zap.Error(err))
		return nil, mapError(err)
	}

	return &schedulingv1.SuggestScheduleResponse{
		Day:       int32(suggestion.Day),
		StartTime: suggestion.StartTime.String(),
		EndTime:   suggestion.EndTime.String(),
		Reason:    suggestion.Reason,
	}, nil
}

func (s *serverAPI) ListTripDays(ctx context.Context, req *schedulingv1.ListTripDaysRequest) (*schedulingv1.ListTripDaysResponse, error) {
	tripID := strings.TrimSpace(req.GetTripId())
	if tripID == "" {
		return nil, status.Error(codes.InvalidArgument, "trip_id is required")
	}

	days, err := s.service.TripDays(ctx, models.TripID(tripID))
	if err != nil {
		s.log.Error("ListTripDays failed", zap.String("trip_id", tripID), zap.Error(err))
		return nil, mapError(err)
	}

	resp := &schedulingv1.ListTripDaysResponse{
		TripId: tripID,
		Days:   make([]*schedulingv1.TripDay, 0, len(days)),
	}
	for _, d := range days {
		resp.Days = append(resp.Days, &schedulingv1.TripDay{
			Day:       int32(d.Day),
			Date:      d.Date.String(),
			DayOfWeek: d.Weekday,
		})
	}

	return resp, nil
}

func (s *serverAPI) ExportCalendar(ctx context.Context, req *schedulingv1.ExportCalendarRequest) (*schedulingv1.ExportCalendarResponse, error) {
	tripID := strings.TrimSpace(req.GetTripId())
	if tripID == "" {
		return nil, status.Error(codes.InvalidArgument, "trip_id is required")
	}

	data, err := s.service.ExportCalendar(ctx, models.TripID(tripID))
	if err != nil {
		s.log.Error("ExportCalendar failed", zap.String("trip_id", tripID), zap.Error(err))
		return nil, mapError(err)
	}

	return &schedulingv1.ExportCalendarResponse{ContentType: calendarContentType, Calendar: data}, nil
}

func (s *serverAPI) CalendarDateToInstant(_ context.Context, req *schedulingv1.CalendarDateToInstantRequest) (*schedulingv1.CalendarDateToInstantResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	date, err := models.ParseCalendarDate(req.Date)
	if err != nil {
		return nil, mapError(err)
	}
	boundary, err := wallclock.ParseBoundary(req.Boundary)
	if err != nil {
		return nil, mapError(err)
	}

	instant := s.conv.CalendarDateToInstant(date, req.TimeZone, boundary)
	return &schedulingv1.CalendarDateToInstantResponse{Instant: wallclock.FormatInstant(instant)}, nil
}

func (s *serverAPI) InstantToWallDateTime(_ context.Context, req *schedulingv1.InstantToWallDateTimeRequest) (*schedulingv1.InstantToWallDateTimeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	instant, err := wallclock.ParseInstant(req.Instant)
	if err != nil {
		return nil, mapError(err)
	}

	loc := s.conv.Location(req.TimeZone)
	date, clock := wallclock.InstantToWallDateTimeIn(instant, loc)
	return &schedulingv1.InstantToWallDateTimeResponse{
		Date:     date.String(),
		Time:     clock.String(),
		TimeZone: loc.String(),
	}, nil
}

func (s *serverAPI) WallDateTimeToInstant(_ context.Context, req *schedulingv1.WallDateTimeToInstantRequest) (*schedulingv1.WallDateTimeToInstantResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	date, err := models.ParseCalendarDate(req.Date)
	if err != nil {
		return nil, mapError(err)
	}
	clock, err := models.ParseWallTime(req.Time)
	if err != nil {
		return nil, mapError(err)
	}

	instant := s.conv.WallDateTimeToInstant(date, clock, req.TimeZone)
	return &schedulingv1.WallDateTimeToInstantResponse{Instant: wallclock.FormatInstant(instant)}, nil
}

func toSuggestionContext(in *schedulingv1.ItemContext) (*models.SuggestionContext, error) {
	if in == nil {
		return nil, nil
	}

	out := &models.SuggestionContext{}
	if day, ok := in.GetDay(); ok {
		d := int(day)
		out.DayNumber = &d
	}
	if raw := strings.TrimSpace(in.GetSpecificTime()); raw != "" {
		clock, err := models.ParseWallTime(raw)
		if err != nil {
			return nil, err
		}
		out.SpecificTime = &clock
	}
	tod, err := models.ParseTimeOfDay(in.GetTimeOfDay())
	if err != nil {
		return nil, err
	}
	out.TimeOfDay = tod

	return out, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, derr.ErrParse), errors.Is(err, derr.ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, derr.ErrTripNotFound):
		return status.Error(codes.NotFound, "trip not found")
	case errors.Is(err, derr.ErrInvalidTrip):
		return status.Error(codes.FailedPrecondition, "trip has invalid dates")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
