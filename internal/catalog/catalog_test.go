package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobrace/internal/unit"
	"github.com/alexiusacademia/gobrace/internal/value"
)

func defaultCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default()
	require.NoError(t, err)
	return c
}

func TestDefault_Names(t *testing.T) {
	c := defaultCatalog(t)

	assert.Contains(t, c.SectionNames(), "CT-100x200x8x12")
	assert.Contains(t, c.SectionNames(), "L-100x100x10")
	assert.Contains(t, c.SectionNames(), "[-100x50x5x7.5")
	assert.Equal(t, []string{"SS400", "SM490", "SN400B", "SN490B"}, c.MaterialNames())
	assert.Equal(t, []string{"F8T", "F10T", "S10T"}, c.BoltMaterialNames())
	assert.Equal(t, []string{"M16", "M20", "M22", "M24"}, c.BoltDiameterNames())
}

func TestLookup(t *testing.T) {
	c := defaultCatalog(t)

	sec, err := c.Section("L-100x100x10")
	require.NoError(t, err)
	assert.Equal(t, Angle, sec.Kind)
	assert.InDelta(t, 19.00, sec.Area.In(unit.CentiMeter), 1e-9)
	assert.InDelta(t, 10.0, sec.Thickness().In(unit.MilliMeter), 1e-9)
	assert.InDelta(t, 100.0, sec.Breadth().In(unit.MilliMeter), 1e-9)

	ss, err := c.Material("SS400")
	require.NoError(t, err)
	assert.InDelta(t, 235.0, ss.Fy.In(unit.Newton, unit.MilliMeter), 1e-9)

	f10t, err := c.BoltMaterial("F10T")
	require.NoError(t, err)
	assert.InDelta(t, 500.0, f10t.T0.In(unit.Newton, unit.MilliMeter), 1e-9)

	m20, err := c.BoltDiameter("M20")
	require.NoError(t, err)
	assert.InDelta(t, 314.0, m20.Area.In(unit.MilliMeter), 1e-9)
	assert.InDelta(t, 20.0, m20.D.In(unit.MilliMeter), 1e-9)
}

func TestLookup_NotFound(t *testing.T) {
	c := defaultCatalog(t)

	_, err := c.Section("H-200x200")
	require.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "section", nf.Kind)
	assert.Equal(t, "H-200x200", nf.Name)

	_, err = c.Material("SS999")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.BoltMaterial("F12T")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = c.BoltDiameter("M99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestThickness_PerKind(t *testing.T) {
	c := defaultCatalog(t)

	tests := []struct {
		name      string
		thickness float64
		breadth   float64
	}{
		{"CT-100x200x8x12", 12, 200},
		{"L-80x80x6", 6, 80},
		{"[-100x50x5x7.5", 5, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec, err := c.Section(tt.name)
			require.NoError(t, err)
			assert.InDelta(t, tt.thickness, sec.Thickness().In(unit.MilliMeter), 1e-9)
			assert.InDelta(t, tt.breadth, sec.Breadth().In(unit.MilliMeter), 1e-9)
		})
	}
}

func TestGaugeList(t *testing.T) {
	mm := func(v float64) value.Length { return value.NewLength(v, unit.MilliMeter) }

	tests := []struct {
		breadth float64
		want    []float64
	}{
		{100, []float64{30, -30}},
		{200, []float64{60, -60}},
		{300, []float64{115, 75, -75, -115}},
		{400, []float64{160, 70, -70, -160}},
	}
	for _, tt := range tests {
		sec := Section{Name: "CT", Kind: CT, B: mm(tt.breadth)}
		got, err := sec.GaugeList()
		require.NoError(t, err)
		require.Len(t, got, len(tt.want))
		for i, g := range got {
			assert.InDelta(t, tt.want[i], g.In(unit.MilliMeter), 1e-9)
		}
	}

	angle := Section{Name: "L", Kind: Angle, H: mm(80), Gauge: mm(45)}
	got, err := angle.GaugeList()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].IsZero())
}

func TestGaugeList_UnsupportedBreadth(t *testing.T) {
	sec := Section{Name: "CT-90x180", Kind: CT, B: value.NewLength(180, unit.MilliMeter)}

	_, err := sec.GaugeList()
	assert.ErrorIs(t, err, ErrUnsupportedConfiguration)
}

func TestOutline_MatchesCatalogArea(t *testing.T) {
	c := defaultCatalog(t)

	// outlines ignore fillets, so they run a few percent under the rolled area
	for _, sec := range c.Sections() {
		t.Run(sec.Name, func(t *testing.T) {
			outline := sec.Outline(unit.MilliMeter)
			area, _, _ := outline.AreaAndCentroid()
			want := sec.Area.In(unit.MilliMeter)
			assert.InEpsilon(t, want, area, 0.06)
		})
	}
}

func TestOutline_AngleBoltLineOnAxis(t *testing.T) {
	c := defaultCatalog(t)
	sec, err := c.Section("L-80x80x6")
	require.NoError(t, err)

	b := sec.Outline(unit.MilliMeter).Bounds()
	assert.InDelta(t, -45.0, b.MinY, 1e-9)
	assert.InDelta(t, 35.0, b.MaxY, 1e-9)
	assert.InDelta(t, 80.0, b.MaxX, 1e-9)
}

const extraYAML = `
sections:
  - {name: CT-100x200x8x12, kind: ct, h: 100, b: 200, tw: 8, tf: 12, area_cm2: 32.0}
  - {name: CT-50x100x6x8, kind: ct, h: 50, b: 100, tw: 6, tf: 8, area_cm2: 10.79}
materials:
  - {name: SM520, fy: 355, fu: 520}
`

func TestMerge_ReplacesAndAppends(t *testing.T) {
	extra, err := Parse([]byte(extraYAML))
	require.NoError(t, err)

	c := defaultCatalog(t).Merge(extra)

	sec, err := c.Section("CT-100x200x8x12")
	require.NoError(t, err)
	assert.InDelta(t, 32.0, sec.Area.In(unit.CentiMeter), 1e-9)

	names := c.SectionNames()
	assert.Equal(t, "CT-75x150x7x10", names[0])
	assert.Equal(t, "CT-50x100x6x8", names[len(names)-1])
	assert.Contains(t, c.MaterialNames(), "SM520")

	// the built-in catalog is untouched
	orig, err := defaultCatalog(t).Section("CT-100x200x8x12")
	require.NoError(t, err)
	assert.InDelta(t, 31.76, orig.Area.In(unit.CentiMeter), 1e-9)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte(extraYAML), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Contains(t, c.SectionNames(), "CT-50x100x6x8")

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "unsupported CT breadth",
			yaml: `sections: [{name: CT-90x180x7x10, kind: ct, h: 90, b: 180, tw: 7, tf: 10, area_cm2: 20}]`,
			want: ErrUnsupportedConfiguration,
		},
		{
			name: "negative thickness",
			yaml: `sections: [{name: L-bad, kind: angle, h: 80, b: 80, tw: -6, gauge: 45, area_cm2: 9}]`,
			want: value.ErrInvalidQuantity,
		},
		{
			name: "negative area",
			yaml: `sections: [{name: L-bad, kind: angle, h: 80, b: 80, tw: 6, gauge: 45, area_cm2: -9}]`,
			want: value.ErrInvalidQuantity,
		},
		{
			name: "unknown kind",
			yaml: `sections: [{name: H-200, kind: wide-flange, h: 200, b: 200, tw: 8, tf: 12, area_cm2: 63}]`,
			want: ErrUnsupportedConfiguration,
		},
		{
			name: "fy above fu",
			yaml: `materials: [{name: X, fy: 500, fu: 400}]`,
			want: value.ErrInvalidQuantity,
		},
		{
			name: "duplicate names",
			yaml: `bolt_materials: [{name: F10T, t0: 500}, {name: F10T, t0: 400}]`,
			want: value.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var ve *ValidationError
			assert.True(t, errors.As(err, &ve))
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte(`sections: [{name: X, kind: ct, depth: 100}]`))
	assert.Error(t, err)
}

func TestKind_Text(t *testing.T) {
	for _, k := range []Kind{CT, Angle, Channel} {
		text, err := k.MarshalText()
		require.NoError(t, err)

		var back Kind
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, k, back)
	}
}
