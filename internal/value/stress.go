package value

import (
	"encoding/json"

	"github.com/alexiusacademia/gobrace/internal/unit"
)

// Stress is a stress stored in pascals (N/m²).
type Stress struct {
	pa float64
}

// NewStress creates a Stress of s expressed in fu per square lu,
// e.g. NewStress(235, unit.Newton, unit.MilliMeter) for 235 N/mm².
func NewStress(s float64, fu unit.ForceUnit, lu unit.LengthUnit) Stress {
	r := lu.Rate()
	return Stress{pa: s * fu.Rate() / (r * r)}
}

// In returns the stress expressed in fu per square lu.
func (s Stress) In(fu unit.ForceUnit, lu unit.LengthUnit) float64 {
	r := lu.Rate()
	return s.pa / fu.Rate() * (r * r)
}

// Ratio returns s / o as a dimensionless number.
func (s Stress) Ratio(o Stress) float64 {
	return s.pa / o.pa
}

func (s Stress) Equal(o Stress) bool { return compare(s.pa, o.pa) == 0 }
func (s Stress) IsZero() bool        { return s.pa == 0 }

// IsFinite reports whether the stress is a finite number.
func (s Stress) IsFinite() bool { return finite(s.pa) }

// MarshalJSON encodes the stress in pascals.
func (s Stress) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.pa)
}

// UnmarshalJSON decodes a stress given in pascals.
func (s *Stress) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &s.pa)
}
