package aij

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexiusacademia/gobrace/internal/unit"
	"github.com/alexiusacademia/gobrace/internal/value"
)

func TestHoleDiameter(t *testing.T) {
	tests := []struct {
		name string
		d    float64
		want float64
	}{
		{"M16", 16, 18},
		{"M20", 20, 22},
		{"M22", 22, 24},
		{"M24", 24, 26},
		{"at threshold", 27, 30},
		{"M30", 30, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HoleDiameter(value.NewLength(tt.d, unit.MilliMeter))
			assert.InDelta(t, tt.want, got.In(unit.MilliMeter), 1e-9)
		})
	}
}

func TestLayoutConstants(t *testing.T) {
	assert.InDelta(t, 0.04, EndDistance().In(unit.Meter), 1e-12)
	assert.InDelta(t, 0.06, Pitch().In(unit.Meter), 1e-12)
	assert.InDelta(t, 1/math.Sqrt(3), SpreadFactor(), 1e-12)
}
