package scheduler

import (
	"context"
	"strings"
	"time"

	schedulingv1 "github.com/ozzus/trip-scheduler/protos/scheduling/v1"
)

type Client struct {
	client  schedulingv1.SchedulingServiceClient
	timeout time.Duration
}

func NewClient(client schedulingv1.SchedulingServiceClient, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		client:  client,
		timeout: timeout,
	}
}

func (c *Client) SuggestSchedule(ctx context.Context, req *schedulingv1.SuggestScheduleRequest) (*schedulingv1.SuggestScheduleResponse, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.SuggestSchedule(reqCtx, req)
}

func (c *Client) ListTripDays(ctx context.Context, tripID string) (*schedulingv1.ListTripDaysResponse, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.ListTripDays(reqCtx, &schedulingv1.ListTripDaysRequest{TripId: strings.TrimSpace(tripID)})
}

func (c *Client) ExportCalendar(ctx context.Context, tripID string) (*schedulingv1.ExportCalendarResponse, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.ExportCalendar(reqCtx, &schedulingv1.ExportCalendarRequest{TripId: strings.TrimSpace(tripID)})
}

func (c *Client) CalendarDateToInstant(ctx context.Context, date, tz, boundary string) (*schedulingv1.CalendarDateToInstantResponse, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.CalendarDateToInstant(reqCtx, &schedulingv1.CalendarDateToInstantRequest{
		Date:     date,
		TimeZone: tz,
		Boundary: boundary,
	})
}

func (c *Client) InstantToWallDateTime(ctx context.Context, instant, tz string) (*schedulingv1.InstantToWallDateTimeResponse, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.InstantToWallDateTime(reqCtx, &schedulingv1.InstantToWallDateTimeRequest{
		Instant:  instant,
		TimeZone: tz,
	})
}

func (c *Client) WallDateTimeToInstant(ctx context.Context, date, clock, tz string) (*schedulingv1.WallDateTimeToInstantResponse, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.WallDateTimeToInstant(reqCtx, &schedulingv1.WallDateTimeToInstantRequest{
		Date:     date,
		Time:     clock,
		TimeZone: tz,
	})
}
