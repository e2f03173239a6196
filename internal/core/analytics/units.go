package analytics

import (
	"strconv"

	"github.com/andycampbellcrowe-del/watertracker/internal/core/domain"
)

const (
	ozToLiters = 0.0295735
	litersToOz = 33.814
)

func OzToLiters(oz float64) float64 {
	return oz * ozToLiters
}

func LitersToOz(liters float64) float64 {
	return liters * litersToOz
}

// ConvertVolume translates between the canonical unit (ounces) and liters.
// All aggregation stays in ounces; this is a boundary helper for responses
// rendered in the household's display unit.
func ConvertVolume(value float64, from, to string) float64 {
	if from == to {
		return value
	}
	if from == domain.UnitOunces && to == domain.UnitLiters {
		return OzToLiters(value)
	}
	return LitersToOz(value)
}

// FormatVolume renders a canonical ounce volume in the display unit with one
// decimal place.
func FormatVolume(volumeOz float64, unit string) string {
	value := volumeOz
	if unit == domain.UnitLiters {
		value = OzToLiters(volumeOz)
	}
	return strconv.FormatFloat(value, 'f', 1, 64)
}
