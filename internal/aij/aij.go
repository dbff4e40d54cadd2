package aij

import (
	"math"

	"github.com/alexiusacademia/gobrace/internal/unit"
	"github.com/alexiusacademia/gobrace/internal/value"
)

// AIJ steel design constants for high-strength bolted brace joints

const (
	// Bolt layout along the brace axis (mm)
	EndDistanceMm = 40.0
	PitchMm       = 60.0

	// Slip coefficient for friction-type joints
	FrictionFactor = 0.45

	// Stress spread angle through the gusset plate (Whitmore, 30°)
	SpreadAngle = math.Pi / 6

	// Margin beyond the last bolt on the gusset outline (mm)
	GussetMarginMm = 40.0

	// Hole clearance (mm): +2 below the threshold diameter, +3 from it on
	HoleThresholdMm  = 27.0
	HoleClearanceMm  = 2.0
	HoleClearanceLMm = 3.0

	// Ratio limit for the OK judgment
	RatioLimit = 1.0
)

// EndDistance is the distance from the member end to the first bolt row
func EndDistance() value.Length {
	return value.NewLength(EndDistanceMm, unit.MilliMeter)
}

// Pitch is the distance between bolt rows
func Pitch() value.Length {
	return value.NewLength(PitchMm, unit.MilliMeter)
}

func GussetMargin() value.Length {
	return value.NewLength(GussetMarginMm, unit.MilliMeter)
}

// HoleDiameter returns the standard bolt hole diameter for a shank diameter d
func HoleDiameter(d value.Length) value.Length {
	if d.Less(value.NewLength(HoleThresholdMm, unit.MilliMeter)) {
		return d.Add(value.NewLength(HoleClearanceMm, unit.MilliMeter))
	}
	return d.Add(value.NewLength(HoleClearanceLMm, unit.MilliMeter))
}

// SpreadFactor is tan(30°), the lateral spread per unit length
func SpreadFactor() float64 {
	return math.Tan(SpreadAngle)
}
