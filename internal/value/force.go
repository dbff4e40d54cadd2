package value

import (
	"encoding/json"
	"math"

	"github.com/alexiusacademia/gobrace/internal/unit"
)

// Force is a signed force stored in newtons.
type Force struct {
	n float64
}

// NewForce creates a Force of f expressed in unit u.
func NewForce(f float64, u unit.ForceUnit) Force {
	return Force{n: f * u.Rate()}
}

// In returns the force expressed in unit u.
func (f Force) In(u unit.ForceUnit) float64 {
	return f.n / u.Rate()
}

func (f Force) Add(o Force) Force { return Force{n: f.n + o.n} }
func (f Force) Sub(o Force) Force { return Force{n: f.n - o.n} }

// Scale multiplies the force by a dimensionless factor.
func (f Force) Scale(k float64) Force { return Force{n: f.n * k} }

// DivArea returns the stress of the force spread over a.
// A zero area yields an infinite stress.
func (f Force) DivArea(a Area) Stress {
	if a.m2 == 0 {
		return Stress{pa: math.Copysign(math.Inf(1), f.n)}
	}
	return Stress{pa: f.n / a.m2}
}

// Ratio returns f / o as a dimensionless number.
func (f Force) Ratio(o Force) float64 {
	return f.n / o.n
}

func (f Force) Equal(o Force) bool { return compare(f.n, o.n) == 0 }
func (f Force) IsZero() bool       { return f.n == 0 }

// MarshalJSON encodes the force in newtons.
func (f Force) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.n)
}

// UnmarshalJSON decodes a force given in newtons.
func (f *Force) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &f.n)
}
