// Package ics renders a trip and its bookings as an iCalendar feed.
package ics

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/models"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/wallclock"
)

const productID = "-//trip-scheduler//calendar export//EN"

type Exporter struct {
	conv   *wallclock.Converter
	domain string
	now    func() time.Time
}

func NewExporter(conv *wallclock.Converter, uidDomain string) *Exporter {
	if strings.TrimSpace(uidDomain) == "" {
		uidDomain = "trip-scheduler"
	}
	return &Exporter{conv: conv, domain: uidDomain, now: time.Now}
}

// Export writes one VEVENT per booking. Times are emitted in UTC; the trip zone
// goes into X-WR-TIMEZONE so clients can display local wall clock.
func (e *Exporter) Export(trip models.Trip, bookings []models.Booking) ([]byte, error) {
	loc := e.conv.Location(trip.TimeZoneID)
	stamp := e.now().UTC()

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRTimezone(loc.String())
	if trip.Title != "" {
		cal.SetXWRCalName(trip.Title)
	}

	dayCount := trip.DayCount()
	for _, b := range bookings {
		if b.ID == "" {
			return nil, fmt.Errorf("booking without id on trip %s", trip.ID)
		}

		ev := cal.AddEvent(fmt.Sprintf("%s@%s", b.ID, e.domain))
		ev.SetDtStampTime(stamp)
		ev.SetSummary(summaryOf(b))
		ev.SetStartAt(b.Start.UTC())
		if b.End != nil {
			ev.SetEndAt(b.End.UTC())
		}
		if b.Category != "" {
			ev.SetProperty(ical.ComponentPropertyCategories, b.Category)
		}

		date, clock := wallclock.InstantToWallDateTimeIn(b.Start, loc)
		day := trip.StartDate.DaysUntil(date) + 1
		if day >= 1 && day <= dayCount {
			ev.SetDescription(fmt.Sprintf("Day %d of %d, %s %s local", day, dayCount, date.Weekday().String()[:3], clock))
		}
	}

	return []byte(cal.Serialize()), nil
}

func summaryOf(b models.Booking) string {
	if title := strings.TrimSpace(b.Title); title != "" {
		return title
	}
	parts := make([]string, 0, 2)
	for _, p := range []string{b.Category, b.Type} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "Booking"
	}
	return strings.Join(parts, ": ")
}
