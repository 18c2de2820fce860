package wallclock

import (
	"time"

	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/models"
)

// probeInstant finds the instant whose rendering in loc reads date hour:minute:second.
//
// The fields are first read as UTC to get a trial instant. Rendering the trial in loc
// shows the zone's offset at that moment, and shifting the trial by that offset gives
// the answer. The offset is sampled at the trial, not at the result, so a wall time
// inside or near a daylight saving jump can land on the wrong side of it.
func probeInstant(date models.CalendarDate, hour, minute, second int, loc *time.Location) time.Time {
	trial := time.Date(date.Year, date.Month, date.Day, hour, minute, second, 0, time.UTC)

	rendered := trial.In(loc)
	renderedAsUTC := time.Date(
		rendered.Year(), rendered.Month(), rendered.Day(),
		rendered.Hour(), rendered.Minute(), rendered.Second(), 0,
		time.UTC,
	)

	offset := renderedAsUTC.Sub(trial)
	return trial.Add(-offset).UTC()
}
