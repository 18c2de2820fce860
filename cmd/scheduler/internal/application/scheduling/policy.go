package scheduling

import (
	"math"
	"strings"

	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/models"
)

const (
	CategoryDining   = "Dining"
	CategoryActivity = "Activity"
	CategoryStay     = "Stay"
	CategoryTravel   = "Travel"
)

// Defaults is the usual start and length of an item of some kind.
type Defaults struct {
	StartTime     models.WallTime
	DurationHours float64
}

func (d Defaults) DurationMinutes() int {
	return hoursToMinutes(d.DurationHours)
}

func (d Defaults) EndTime() models.WallTime {
	return d.StartTime.Add(d.DurationMinutes())
}

func hoursToMinutes(hours float64) int {
	return int(math.Round(hours * 60))
}

func defaults(hour, minute int, hours float64) Defaults {
	return Defaults{StartTime: models.NewWallTime(hour, minute), DurationHours: hours}
}

// DefaultsFor never fails: unknown categories get the generic 10:00, two hour slot.
func DefaultsFor(category, typ string) Defaults {
	kind := strings.ToLower(typ)

	switch category {
	case CategoryDining:
		switch {
		case strings.Contains(kind, "breakfast"):
			return defaults(8, 0, 1)
		case strings.Contains(kind, "lunch"):
			return defaults(12, 0, 1.5)
		default:
			return defaults(19, 0, 2)
		}
	case CategoryActivity:
		switch {
		case strings.Contains(kind, "tour"):
			return defaults(10, 0, 3)
		case strings.Contains(kind, "museum"):
			return defaults(10, 0, 2)
		default:
			return defaults(14, 0, 2)
		}
	case CategoryStay:
		return defaults(15, 0, 0.5)
	case CategoryTravel:
		return defaults(10, 0, 2)
	default:
		return defaults(10, 0, 2)
	}
}
