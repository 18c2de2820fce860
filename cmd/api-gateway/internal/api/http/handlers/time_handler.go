package handlers

import (
	"context"
	"net/http"

	schedulingv1 "github.com/ozzus/trip-scheduler/protos/scheduling/v1"
	"go.uber.org/zap"
)

type TimeConverter interface {
	CalendarDateToInstant(ctx context.Context, date, tz, boundary string) (*schedulingv1.CalendarDateToInstantResponse, error)
	InstantToWallDateTime(ctx context.Context, instant, tz string) (*schedulingv1.InstantToWallDateTimeResponse, error)
	WallDateTimeToInstant(ctx context.Context, date, clock, tz string) (*schedulingv1.WallDateTimeToInstantResponse, error)
}

// TimeHandler exposes the wall clock conversions. Format validation happens in
// the scheduler; the gateway only checks that required values are present.
type TimeHandler struct {
	log    *zap.Logger
	client TimeConverter
}

func NewTimeHandler(log *zap.Logger, client TimeConverter) *TimeHandler {
	return &TimeHandler{log: log, client: client}
}

// Instant handles GET /v1/time/instant?date=&tz=&boundary=.
func (h *TimeHandler) Instant(w http.ResponseWriter, r *http.Request) {
	date, errMsg := requiredQuery(r, "date")
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}
	tz := optionalQuery(r, "tz")

	resp, err := h.client.CalendarDateToInstant(r.Context(), date, tz, optionalQuery(r, "boundary"))
	if err != nil {
		h.log.Warn("calendar date conversion failed", zap.String("date", date), zap.String("tz", tz), zap.Error(err))
		writeUpstreamError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"instant": resp.Instant})
}

// Local handles GET /v1/time/local?instant=&tz=.
func (h *TimeHandler) Local(w http.ResponseWriter, r *http.Request) {
	instant, errMsg := requiredQuery(r, "instant")
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}
	tz := optionalQuery(r, "tz")

	resp, err := h.client.InstantToWallDateTime(r.Context(), instant, tz)
	if err != nil {
		h.log.Warn("instant conversion failed", zap.String("instant", instant), zap.String("tz", tz), zap.Error(err))
		writeUpstreamError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"date":     resp.Date,
		"time":     resp.Time,
		"timeZone": resp.TimeZone,
	})
}

// UTC handles GET /v1/time/utc?date=&time=&tz=.
func (h *TimeHandler) UTC(w http.ResponseWriter, r *http.Request) {
	date, errMsg := requiredQuery(r, "date")
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}
	clock, errMsg := requiredQuery(r, "time")
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}
	tz := optionalQuery(r, "tz")

	resp, err := h.client.WallDateTimeToInstant(r.Context(), date, clock, tz)
	if err != nil {
		h.log.Warn("wall clock conversion failed", zap.String("date", date), zap.String("time", clock), zap.Error(err))
		writeUpstreamError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"instant": resp.Instant})
}
