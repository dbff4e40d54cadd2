package unit

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit is returned when a unit symbol cannot be parsed.
var ErrUnknownUnit = errors.New("unknown unit")

// LengthUnit is a unit of length. Its rate converts to meters.
type LengthUnit int

const (
	Meter LengthUnit = iota
	CentiMeter
	MilliMeter
)

// Rate returns the length of one unit in meters.
func (u LengthUnit) Rate() float64 {
	switch u {
	case CentiMeter:
		return 1e-2
	case MilliMeter:
		return 1e-3
	default:
		return 1e+0
	}
}

func (u LengthUnit) String() string {
	switch u {
	case CentiMeter:
		return "cm"
	case MilliMeter:
		return "mm"
	default:
		return "m"
	}
}

// LengthUnits lists every supported length unit.
func LengthUnits() []LengthUnit {
	return []LengthUnit{Meter, CentiMeter, MilliMeter}
}

// ParseLengthUnit parses "m", "cm" or "mm".
func ParseLengthUnit(s string) (LengthUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "meter":
		return Meter, nil
	case "cm", "centimeter":
		return CentiMeter, nil
	case "mm", "millimeter":
		return MilliMeter, nil
	}
	return Meter, fmt.Errorf("%w: length %q", ErrUnknownUnit, s)
}

// ForceUnit is a unit of force. Its rate converts to newtons.
type ForceUnit int

const (
	Newton ForceUnit = iota
	KiloNewton
)

// Rate returns the force of one unit in newtons.
func (u ForceUnit) Rate() float64 {
	switch u {
	case KiloNewton:
		return 1e+3
	default:
		return 1e+0
	}
}

func (u ForceUnit) String() string {
	switch u {
	case KiloNewton:
		return "kN"
	default:
		return "N"
	}
}

// ForceUnits lists every supported force unit.
func ForceUnits() []ForceUnit {
	return []ForceUnit{Newton, KiloNewton}
}

// ParseForceUnit parses "N" or "kN".
func ParseForceUnit(s string) (ForceUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "newton":
		return Newton, nil
	case "kn", "kilonewton":
		return KiloNewton, nil
	}
	return Newton, fmt.Errorf("%w: force %q", ErrUnknownUnit, s)
}
