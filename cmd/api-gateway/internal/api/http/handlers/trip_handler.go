package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	schedulingv1 "github.com/ozzus/trip-scheduler/protos/scheduling/v1"
	"go.uber.org/zap"
)

const maxSuggestionBody = 64 << 10

type TripScheduler interface {
	SuggestSchedule(ctx context.Context, req *schedulingv1.SuggestScheduleRequest) (*schedulingv1.SuggestScheduleResponse, error)
	ListTripDays(ctx context.Context, tripID string) (*schedulingv1.ListTripDaysResponse, error)
	ExportCalendar(ctx context.Context, tripID string) (*schedulingv1.ExportCalendarResponse, error)
}

type SuggestionObserver interface {
	ObserveSuggestion(reason string)
}

type TripHandler struct {
	log      *zap.Logger
	client   TripScheduler
	observer SuggestionObserver
}

type suggestionContext struct {
	Day          *int32 `json:"day"`
	SpecificTime string `json:"specificTime"`
	TimeOfDay    string `json:"timeOfDay"`
}

type suggestionRequest struct {
	Category string             `json:"category"`
	Type     string             `json:"type"`
	Context  *suggestionContext `json:"context"`
}

type suggestionResponse struct {
	TripID    string `json:"tripId"`
	Day       int32  `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Reason    string `json:"reason"`
}

type tripDayResponse struct {
	Day       int32  `json:"day"`
	Date      string `json:"date"`
	DayOfWeek string `json:"dayOfWeek"`
}

func NewTripHandler(log *zap.Logger, client TripScheduler, observer SuggestionObserver) *TripHandler {
	return &TripHandler{log: log, client: client, observer: observer}
}

// Suggest handles POST /v1/trips/{id}/suggestions.
func (h *TripHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	tripID, errMsg := parseTripID(r)
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	var body suggestionRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSuggestionBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid json body: %v", err))
		return
	}

	req := &schedulingv1.SuggestScheduleRequest{
		TripId:   tripID,
		Category: strings.TrimSpace(body.Category),
		Type:     strings.TrimSpace(body.Type),
	}
	if c := body.Context; c != nil {
		req.Context = &schedulingv1.ItemContext{
			Day:          c.Day,
			SpecificTime: strings.TrimSpace(c.SpecificTime),
			TimeOfDay:    strings.TrimSpace(c.TimeOfDay),
		}
	}

	resp, err := h.client.SuggestSchedule(r.Context(), req)
	if err != nil {
		h.log.Error("suggest schedule failed", zap.String("trip_id", tripID), zap.Error(err))
		writeUpstreamError(w, err)
		return
	}

	if h.observer != nil {
		h.observer.ObserveSuggestion(resp.Reason)
	}

	writeJSON(w, http.StatusOK, suggestionResponse{
		TripID:    tripID,
		Day:       resp.Day,
		StartTime: resp.StartTime,
		EndTime:   resp.EndTime,
		Reason:    resp.Reason,
	})
}

// Days handles GET /v1/trips/{id}/days.
func (h *TripHandler) Days(w http.ResponseWriter, r *http.Request) {
	tripID, errMsg := parseTripID(r)
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	resp, err := h.client.ListTripDays(r.Context(), tripID)
	if err != nil {
		h.log.Error("list trip days failed", zap.String("trip_id", tripID), zap.Error(err))
		writeUpstreamError(w, err)
		return
	}

	days := make([]tripDayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		if d == nil {
			continue
		}
		days = append(days, tripDayResponse{Day: d.Day, Date: d.Date, DayOfWeek: d.DayOfWeek})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tripId": tripID,
		"days":   days,
	})
}

// Calendar handles GET /v1/trips/{id}/calendar.ics.
func (h *TripHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	tripID, errMsg := parseTripID(r)
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	resp, err := h.client.ExportCalendar(r.Context(), tripID)
	if err != nil {
		h.log.Error("export calendar failed", zap.String("trip_id", tripID), zap.Error(err))
		writeUpstreamError(w, err)
		return
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "text/calendar; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="trip-%s.ics"`, tripID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(resp.Calendar)
}
