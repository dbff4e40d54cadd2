package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRates(t *testing.T) {
	assert.Equal(t, 1.0, Meter.Rate())
	assert.Equal(t, 1e-2, CentiMeter.Rate())
	assert.Equal(t, 1e-3, MilliMeter.Rate())
	assert.Equal(t, 1.0, Newton.Rate())
	assert.Equal(t, 1e3, KiloNewton.Rate())
}

func TestParse(t *testing.T) {
	for _, u := range LengthUnits() {
		got, err := ParseLengthUnit(u.String())
		require.NoError(t, err)
		assert.Equal(t, u, got)
	}
	for _, u := range ForceUnits() {
		got, err := ParseForceUnit(u.String())
		require.NoError(t, err)
		assert.Equal(t, u, got)
	}

	_, err := ParseLengthUnit("ft")
	assert.ErrorIs(t, err, ErrUnknownUnit)
	_, err = ParseForceUnit("kgf")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}
