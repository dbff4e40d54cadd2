package value

import (
	"encoding/json"

	"github.com/alexiusacademia/gobrace/internal/unit"
)

// Length is a signed length stored in meters.
type Length struct {
	m float64
}

// NewLength creates a Length of l expressed in unit u.
func NewLength(l float64, u unit.LengthUnit) Length {
	return Length{m: l * u.Rate()}
}

// In returns the length expressed in unit u.
func (l Length) In(u unit.LengthUnit) float64 {
	return l.m / u.Rate()
}

func (l Length) Add(o Length) Length { return Length{m: l.m + o.m} }
func (l Length) Sub(o Length) Length { return Length{m: l.m - o.m} }

// Scale multiplies the length by a dimensionless factor.
func (l Length) Scale(k float64) Length { return Length{m: l.m * k} }

// Mul returns the area of the rectangle l × o. Both sides must have the
// same sign, otherwise the product is a negative area.
func (l Length) Mul(o Length) (Area, error) {
	return newAreaM2(l.m * o.m)
}

// Compare returns -1, 0 or 1 comparing canonical magnitudes.
func (l Length) Compare(o Length) int { return compare(l.m, o.m) }
func (l Length) Less(o Length) bool   { return l.Compare(o) < 0 }
func (l Length) Equal(o Length) bool  { return l.Compare(o) == 0 }
func (l Length) IsZero() bool         { return l.m == 0 }

// MinLength returns the shorter of a and b.
func MinLength(a, b Length) Length {
	if b.Less(a) {
		return b
	}
	return a
}

// MarshalJSON encodes the length in meters.
func (l Length) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.m)
}

// UnmarshalJSON decodes a length given in meters.
func (l *Length) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &l.m)
}
