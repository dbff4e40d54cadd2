package value

import (
	"encoding/json"

	"github.com/alexiusacademia/gobrace/internal/unit"
)

// Area is a non-negative area stored in square meters.
type Area struct {
	m2 float64
}

// NewArea creates an Area of a expressed in the square of unit u.
// A negative magnitude fails with ErrInvalidQuantity.
func NewArea(a float64, u unit.LengthUnit) (Area, error) {
	r := u.Rate()
	return newAreaM2(a * r * r)
}

// MustArea is like NewArea but panics on a negative magnitude.
// It is meant for constant tables.
func MustArea(a float64, u unit.LengthUnit) Area {
	area, err := NewArea(a, u)
	if err != nil {
		panic(err)
	}
	return area
}

func newAreaM2(m2 float64) (Area, error) {
	if m2 < 0 {
		return Area{}, invalid("area is negative: %g m²", m2)
	}
	return Area{m2: m2}, nil
}

// In returns the area expressed in the square of unit u.
func (a Area) In(u unit.LengthUnit) float64 {
	r := u.Rate()
	return a.m2 / (r * r)
}

func (a Area) Add(b Area) Area { return Area{m2: a.m2 + b.m2} }

// Sub returns a − b. A result below zero fails with ErrInvalidQuantity;
// callers that clamp must compare first.
func (a Area) Sub(b Area) (Area, error) {
	return newAreaM2(a.m2 - b.m2)
}

// Scale multiplies the area by a dimensionless factor.
func (a Area) Scale(k float64) (Area, error) {
	return newAreaM2(a.m2 * k)
}

// MulStress returns the force carried by the area at stress s.
func (a Area) MulStress(s Stress) Force {
	return Force{n: a.m2 * s.pa}
}

func (a Area) Compare(b Area) int { return compare(a.m2, b.m2) }
func (a Area) Less(b Area) bool   { return a.Compare(b) < 0 }
func (a Area) Equal(b Area) bool  { return a.Compare(b) == 0 }
func (a Area) IsZero() bool       { return a.m2 == 0 }

// MarshalJSON encodes the area in square meters.
func (a Area) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.m2)
}

// UnmarshalJSON decodes an area given in square meters.
func (a *Area) UnmarshalJSON(data []byte) error {
	var m2 float64
	if err := json.Unmarshal(data, &m2); err != nil {
		return err
	}
	area, err := newAreaM2(m2)
	if err != nil {
		return err
	}
	*a = area
	return nil
}
