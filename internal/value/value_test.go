package value_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobrace/internal/unit"
	"github.com/alexiusacademia/gobrace/internal/value"
)

var magnitudes = []float64{0, 1, 0.5, 19.0, 235, 1e-6, 12345.678, -42.5}

func TestRoundTrip_Length(t *testing.T) {
	for _, u := range unit.LengthUnits() {
		for _, m := range magnitudes {
			got := value.NewLength(m, u).In(u)
			assert.InDelta(t, m, got, 1e-9*math.Max(1, math.Abs(m)), "%g %s", m, u)
		}
	}
}

func TestRoundTrip_Area(t *testing.T) {
	for _, u := range unit.LengthUnits() {
		for _, m := range magnitudes {
			if m < 0 {
				continue
			}
			a, err := value.NewArea(m, u)
			require.NoError(t, err)
			assert.InDelta(t, m, a.In(u), 1e-9*math.Max(1, m), "%g %s²", m, u)
		}
	}
}

func TestRoundTrip_Force(t *testing.T) {
	for _, u := range unit.ForceUnits() {
		for _, m := range magnitudes {
			got := value.NewForce(m, u).In(u)
			assert.InDelta(t, m, got, 1e-9*math.Max(1, math.Abs(m)), "%g %s", m, u)
		}
	}
}

func TestRoundTrip_Stress(t *testing.T) {
	for _, fu := range unit.ForceUnits() {
		for _, lu := range unit.LengthUnits() {
			for _, m := range magnitudes {
				got := value.NewStress(m, fu, lu).In(fu, lu)
				assert.InDelta(t, m, got, 1e-9*math.Max(1, math.Abs(m)), "%g %s/%s²", m, fu, lu)
			}
		}
	}
}

func TestCrossUnitConsistency(t *testing.T) {
	assert.InDelta(t, 1.0, value.NewLength(1000, unit.MilliMeter).In(unit.Meter), 1e-12)
	assert.InDelta(t, 10.0, value.NewLength(1, unit.CentiMeter).In(unit.MilliMeter), 1e-12)

	a, err := value.NewArea(1, unit.CentiMeter)
	require.NoError(t, err)
	assert.InDelta(t, 1e-4, a.In(unit.Meter), 1e-16)
	assert.InDelta(t, 100.0, a.In(unit.MilliMeter), 1e-9)

	assert.InDelta(t, 100.0, value.NewForce(100000, unit.Newton).In(unit.KiloNewton), 1e-9)

	fy := value.NewStress(235, unit.Newton, unit.MilliMeter)
	assert.InDelta(t, 235e6, fy.In(unit.Newton, unit.Meter), 1e-3)
	assert.InDelta(t, 23.5, fy.In(unit.KiloNewton, unit.CentiMeter), 1e-9)
}

func TestLengthMul_IsArea(t *testing.T) {
	a, err := value.NewLength(2, unit.Meter).Mul(value.NewLength(3, unit.Meter))
	require.NoError(t, err)

	want, err := value.NewArea(6, unit.Meter)
	require.NoError(t, err)
	assert.True(t, a.Equal(want))

	mixed, err := value.NewLength(10, unit.MilliMeter).Mul(value.NewLength(2.2, unit.CentiMeter))
	require.NoError(t, err)
	assert.InDelta(t, 2.2, mixed.In(unit.CentiMeter), 1e-12)
}

func TestLengthMul_NegativeProduct(t *testing.T) {
	_, err := value.NewLength(-2, unit.Meter).Mul(value.NewLength(3, unit.Meter))
	assert.ErrorIs(t, err, value.ErrInvalidQuantity)
}

func TestNewArea_Negative(t *testing.T) {
	for _, u := range unit.LengthUnits() {
		_, err := value.NewArea(-1, u)
		assert.ErrorIs(t, err, value.ErrInvalidQuantity)
	}
	assert.Panics(t, func() { value.MustArea(-1, unit.MilliMeter) })
}

func TestAreaSub(t *testing.T) {
	big := value.MustArea(19, unit.CentiMeter)
	small := value.MustArea(4.4, unit.CentiMeter)

	net, err := big.Sub(small)
	require.NoError(t, err)
	assert.InDelta(t, 14.6, net.In(unit.CentiMeter), 1e-9)

	_, err = small.Sub(big)
	assert.ErrorIs(t, err, value.ErrInvalidQuantity)
}

func TestAreaScaleAndAdd(t *testing.T) {
	a := value.MustArea(2, unit.CentiMeter)

	twice, err := a.Scale(2)
	require.NoError(t, err)
	assert.InDelta(t, 4, twice.In(unit.CentiMeter), 1e-12)
	assert.InDelta(t, 6, a.Add(twice).In(unit.CentiMeter), 1e-12)

	_, err = a.Scale(-1)
	assert.ErrorIs(t, err, value.ErrInvalidQuantity)
}

func TestAreaTimesStress_IsForce(t *testing.T) {
	a := value.MustArea(14.6, unit.CentiMeter)
	fy := value.NewStress(235, unit.Newton, unit.MilliMeter)

	f := a.MulStress(fy)
	assert.InDelta(t, 343.1, f.In(unit.KiloNewton), 1e-9)
}

func TestForceDivisions(t *testing.T) {
	f := value.NewForce(343.1, unit.KiloNewton)
	a := value.MustArea(14.6, unit.CentiMeter)

	s := f.DivArea(a)
	assert.InDelta(t, 235, s.In(unit.Newton, unit.MilliMeter), 1e-9)

	fy := value.NewStress(235, unit.Newton, unit.MilliMeter)
	assert.InDelta(t, 1.0, s.Ratio(fy), 1e-12)

	assert.InDelta(t, 0.5, value.NewForce(50, unit.KiloNewton).Ratio(value.NewForce(100000, unit.Newton)), 1e-12)
	assert.InDelta(t, 70.65, value.NewForce(141.3, unit.KiloNewton).Scale(0.5).In(unit.KiloNewton), 1e-9)

	inf := f.DivArea(value.Area{})
	assert.False(t, inf.IsFinite())
}

func TestOrdering(t *testing.T) {
	short := value.NewLength(300, unit.MilliMeter)
	long := value.NewLength(0.5, unit.Meter)

	assert.True(t, short.Less(long))
	assert.Equal(t, -1, short.Compare(long))
	assert.Equal(t, 1, long.Compare(short))
	assert.Equal(t, 0, short.Compare(value.NewLength(30, unit.CentiMeter)))
	assert.True(t, value.MinLength(long, short).Equal(short))
	assert.True(t, value.MinLength(short, long).Equal(short))

	a := value.MustArea(1, unit.CentiMeter)
	b := value.MustArea(100, unit.MilliMeter)
	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Compare(b))
	assert.True(t, value.MustArea(99, unit.MilliMeter).Less(a))
}

func TestEquality_CanonicalUnit(t *testing.T) {
	assert.True(t, value.NewLength(1, unit.Meter).Equal(value.NewLength(1000, unit.MilliMeter)))
	assert.True(t, value.NewForce(1, unit.KiloNewton).Equal(value.NewForce(1000, unit.Newton)))
	assert.False(t, value.NewLength(1, unit.Meter).Equal(value.NewLength(1, unit.MilliMeter)))
}

func TestJSON(t *testing.T) {
	type payload struct {
		L value.Length `json:"l"`
		A value.Area   `json:"a"`
		F value.Force  `json:"f"`
		S value.Stress `json:"s"`
	}
	in := payload{
		L: value.NewLength(0.04, unit.Meter),
		A: value.MustArea(0.0001, unit.Meter),
		F: value.NewForce(1, unit.KiloNewton),
		S: value.NewStress(1e6, unit.Newton, unit.Meter),
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"l":0.04,"a":0.0001,"f":1000,"s":1000000}`, string(data))

	var out payload
	require.NoError(t, json.Unmarshal(data, &out))
	assert.InDelta(t, 40, out.L.In(unit.MilliMeter), 1e-9)
	assert.InDelta(t, 1, out.A.In(unit.CentiMeter), 1e-9)

	var a value.Area
	assert.ErrorIs(t, json.Unmarshal([]byte(`-1`), &a), value.ErrInvalidQuantity)
}
