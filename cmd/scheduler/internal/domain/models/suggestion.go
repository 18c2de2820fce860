package models

import (
	"fmt"
	"strings"

	derr "github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/errors"
)

type TimeOfDay string

const (
	TimeOfDayUnspecified TimeOfDay = ""
	TimeOfDayMorning     TimeOfDay = "morning"
	TimeOfDayAfternoon   TimeOfDay = "afternoon"
	TimeOfDayEvening     TimeOfDay = "evening"
	TimeOfDayNight       TimeOfDay = "night"
)

func ParseTimeOfDay(value string) (TimeOfDay, error) {
	switch TimeOfDay(strings.ToLower(strings.TrimSpace(value))) {
	case TimeOfDayUnspecified:
		return TimeOfDayUnspecified, nil
	case TimeOfDayMorning:
		return TimeOfDayMorning, nil
	case TimeOfDayAfternoon:
		return TimeOfDayAfternoon, nil
	case TimeOfDayEvening:
		return TimeOfDayEvening, nil
	case TimeOfDayNight:
		return TimeOfDayNight, nil
	default:
		return TimeOfDayUnspecified, fmt.Errorf("%w: time of day %q", derr.ErrParse, value)
	}
}

// StartTime is the clock time a part of the day starts at; ok is false when unspecified.
func (t TimeOfDay) StartTime() (WallTime, bool) {
	switch t {
	case TimeOfDayMorning:
		return NewWallTime(9, 0), true
	case TimeOfDayAfternoon:
		return NewWallTime(14, 0), true
	case TimeOfDayEvening:
		return NewWallTime(19, 0), true
	case TimeOfDayNight:
		return NewWallTime(21, 0), true
	default:
		return WallTime{}, false
	}
}

// SuggestionContext carries optional hints extracted from a conversation.
type SuggestionContext struct {
	DayNumber    *int
	SpecificTime *WallTime
	TimeOfDay    TimeOfDay
}

type ItemRequest struct {
	Category string
	Type     string
	Context  *SuggestionContext
}

type TimeSlot struct {
	Day       int
	StartTime WallTime
	EndTime   WallTime
}

type SchedulingSuggestion struct {
	Day       int
	StartTime WallTime
	EndTime   WallTime
	Reason    string
}
