package member

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobrace/internal/catalog"
	"github.com/alexiusacademia/gobrace/internal/unit"
	"github.com/alexiusacademia/gobrace/internal/value"
)

func mm(v float64) value.Length { return value.NewLength(v, unit.MilliMeter) }

func fixtures(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c
}

func bolts(t *testing.T, diameter, material string, rows int) BoltConnection {
	t.Helper()
	c := fixtures(t)
	d, err := c.BoltDiameter(diameter)
	require.NoError(t, err)
	m, err := c.BoltMaterial(material)
	require.NoError(t, err)
	b, err := NewBoltConnection(d, m, rows)
	require.NoError(t, err)
	return b
}

// 19.00 cm² gross, 10 mm plate, two bolt lines
func twoLineSection(t *testing.T) Section {
	t.Helper()
	s, err := NewSection(catalog.Section{
		Name: "CT-50x100x10x10",
		Kind: catalog.CT,
		H:    mm(50),
		B:    mm(100),
		Tw:   mm(10),
		Tf:   mm(10),
		Area: value.MustArea(19.00, unit.CentiMeter),
	})
	require.NoError(t, err)
	return s
}

func TestSection_NetArea(t *testing.T) {
	s := twoLineSection(t)
	b := bolts(t, "M20", "F10T", 1)

	assert.Equal(t, 2, s.NumColumns())
	assert.InDelta(t, 22.0, b.HoleDiameter().In(unit.MilliMeter), 1e-9)

	holes, err := s.HoleArea(b)
	require.NoError(t, err)
	assert.InDelta(t, 4.4, holes.In(unit.CentiMeter), 1e-9)

	net, err := s.NetArea(b)
	require.NoError(t, err)
	assert.InDelta(t, 14.6, net.In(unit.CentiMeter), 1e-9)
}

func TestSection_NetAreaNegative(t *testing.T) {
	s, err := NewSection(catalog.Section{
		Name: "tiny", Kind: catalog.CT, H: mm(20), B: mm(100), Tw: mm(10), Tf: mm(10),
		Area: value.MustArea(1, unit.CentiMeter),
	})
	require.NoError(t, err)

	_, err = s.NetArea(bolts(t, "M20", "F10T", 1))
	assert.ErrorIs(t, err, value.ErrInvalidQuantity)
}

func TestNewSection_Unsupported(t *testing.T) {
	_, err := NewSection(catalog.Section{Name: "CT-90x180", Kind: catalog.CT, B: mm(180)})
	assert.ErrorIs(t, err, catalog.ErrUnsupportedConfiguration)
}

func TestSection_GaugeWidth(t *testing.T) {
	c := fixtures(t)

	tests := []struct {
		name  string
		width float64
		cols  int
	}{
		{"CT-100x200x8x12", 120, 2},
		{"CT-150x300x10x15", 230, 4},
		{"L-100x100x10", 0, 1},
		{"[-100x50x5x7.5", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := c.Section(tt.name)
			require.NoError(t, err)
			s, err := NewSection(p)
			require.NoError(t, err)
			assert.InDelta(t, tt.width, s.GaugeWidth().In(unit.MilliMeter), 1e-9)
			assert.Equal(t, tt.cols, s.NumColumns())
		})
	}
}

func TestNewBoltConnection_Rows(t *testing.T) {
	c := fixtures(t)
	d, _ := c.BoltDiameter("M20")
	m, _ := c.BoltMaterial("F10T")

	_, err := NewBoltConnection(d, m, 0)
	assert.ErrorIs(t, err, value.ErrInvalidQuantity)
}

func TestBoltConnection_Friction(t *testing.T) {
	b := bolts(t, "M20", "F10T", 1)

	assert.InDelta(t, 70.65, b.SingleFriction().In(unit.KiloNewton), 1e-9)
	assert.InDelta(t, 141.3, b.DoubleFriction().In(unit.KiloNewton), 1e-9)
}

func TestBoltConnection_JointLength(t *testing.T) {
	tests := []struct {
		rows int
		want float64
	}{
		{1, 80},
		{2, 140},
		{4, 260},
	}
	for _, tt := range tests {
		b := bolts(t, "M20", "F10T", tt.rows)
		assert.InDelta(t, tt.want, b.JointLength().In(unit.MilliMeter), 1e-9)
	}
}

func TestBoltConnection_Coordinates(t *testing.T) {
	b := bolts(t, "M22", "F10T", 2)

	got := b.Coordinates([]value.Length{mm(30), mm(-30)})
	require.Len(t, got, 4)

	want := [][2]float64{{40, 30}, {100, 30}, {40, -30}, {100, -30}}
	for i, c := range got {
		assert.InDelta(t, want[i][0], c.X.In(unit.MilliMeter), 1e-9)
		assert.InDelta(t, want[i][1], c.Y.In(unit.MilliMeter), 1e-9)
	}
	assert.Equal(t, 4, b.NumBolts(2))
}

func TestBoltConnection_HeadGeometry(t *testing.T) {
	b := bolts(t, "M24", "S10T", 1)

	assert.InDelta(t, 24.0, b.ShankDiameter().In(unit.MilliMeter), 1e-9)
	assert.InDelta(t, 26.0, b.HoleDiameter().In(unit.MilliMeter), 1e-9)
	assert.InDelta(t, 15.0, b.HeadHeight().In(unit.MilliMeter), 1e-9)
	assert.InDelta(t, 41.0, b.HeadSize().In(unit.MilliMeter), 1e-9)
}

func TestNewGussetPlate_Invalid(t *testing.T) {
	_, err := NewGussetPlate(mm(0), mm(300), catalog.SteelMaterial{})
	assert.ErrorIs(t, err, value.ErrInvalidQuantity)

	_, err = NewGussetPlate(mm(12), mm(-1), catalog.SteelMaterial{})
	assert.ErrorIs(t, err, value.ErrInvalidQuantity)
}

func TestGussetPlate_EffectiveNetArea(t *testing.T) {
	g, err := NewGussetPlate(mm(12), mm(300), catalog.SteelMaterial{Name: "SS400"})
	require.NoError(t, err)
	b := bolts(t, "M20", "F10T", 3)

	gross, err := g.GrossArea()
	require.NoError(t, err)
	assert.InDelta(t, 36.0, gross.In(unit.CentiMeter), 1e-9)

	areas, err := g.EffectiveNetArea(mm(120), b, 2)
	require.NoError(t, err)

	dev := 120*math.Tan(math.Pi/6) + 120
	assert.InDelta(t, dev, areas.DevelopmentLength.In(unit.MilliMeter), 1e-9)
	assert.InDelta(t, dev, areas.EffectiveLength.In(unit.MilliMeter), 1e-9)
	assert.InDelta(t, dev*12, areas.Gross.In(unit.MilliMeter), 1e-6)
	assert.InDelta(t, 12*22*2, areas.Holes.In(unit.MilliMeter), 1e-6)
	assert.InDelta(t, dev*12-528, areas.Net.In(unit.MilliMeter), 1e-6)
	assert.False(t, areas.Clamped)
}

func TestGussetPlate_EffectiveLengthCappedByLg(t *testing.T) {
	g, err := NewGussetPlate(mm(12), mm(150), catalog.SteelMaterial{})
	require.NoError(t, err)
	b := bolts(t, "M20", "F10T", 5)

	areas, err := g.EffectiveNetArea(mm(120), b, 2)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, areas.EffectiveLength.In(unit.MilliMeter), 1e-9)
}

func TestGussetPlate_NetAreaClampsToZero(t *testing.T) {
	// one row, no gauge spread: the effective width is zero
	g, err := NewGussetPlate(mm(10), mm(300), catalog.SteelMaterial{})
	require.NoError(t, err)
	b := bolts(t, "M20", "F10T", 1)

	areas, err := g.EffectiveNetArea(mm(0), b, 1)
	require.NoError(t, err)
	assert.True(t, areas.Clamped)
	assert.True(t, areas.Net.IsZero())
	assert.Equal(t, 0.0, areas.Net.In(unit.Meter))
}

func TestGussetPlate_Outline(t *testing.T) {
	g, err := NewGussetPlate(mm(12), mm(300), catalog.SteelMaterial{})
	require.NoError(t, err)

	pts := g.Outline(mm(200), mm(140), unit.MilliMeter).Points()
	require.Len(t, pts, 6)
	assert.InDelta(t, 100.0, pts[0].Y, 1e-9)
	assert.InDelta(t, 140.0, pts[1].X, 1e-9)
	assert.InDelta(t, 150.0, pts[1].Y, 1e-9)
	assert.InDelta(t, 180.0, pts[2].X, 1e-9)
	assert.InDelta(t, -100.0, pts[5].Y, 1e-9)
}

func TestGussetPlate_EffectiveNetAreaClampsWithinTolerance(t *testing.T) {
	g, err := NewGussetPlate(mm(12), mm(300), catalog.SteelMaterial{Name: "SS400"})
	require.NoError(t, err)
	b := bolts(t, "M20", "F10T", 1)

	// two 22 mm holes take up the 44 mm width to within rounding
	areas, err := g.EffectiveNetArea(mm(44*(1-1e-13)), b, 2)
	require.NoError(t, err)
	assert.True(t, areas.Clamped)
	assert.True(t, areas.Net.IsZero())
}
