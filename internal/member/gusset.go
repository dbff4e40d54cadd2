package member

import (
	"fmt"

	"github.com/alexiusacademia/gobrace/internal/aij"
	"github.com/alexiusacademia/gobrace/internal/catalog"
	"github.com/alexiusacademia/gobrace/internal/geom"
	"github.com/alexiusacademia/gobrace/internal/unit"
	"github.com/alexiusacademia/gobrace/internal/value"
)

// GussetPlate is the plate the brace is bolted to.
type GussetPlate struct {
	Thickness value.Length          `json:"thickness"`
	Lg        value.Length          `json:"lg"` // plate width available at the joint
	Material  catalog.SteelMaterial `json:"material"`
}

// NewGussetPlate requires a positive thickness and width
func NewGussetPlate(t, lg value.Length, m catalog.SteelMaterial) (GussetPlate, error) {
	zero := value.Length{}
	if !zero.Less(t) || !zero.Less(lg) {
		return GussetPlate{}, fmt.Errorf("member.NewGussetPlate: %w: thickness and lg must be positive",
			value.ErrInvalidQuantity)
	}
	return GussetPlate{Thickness: t, Lg: lg, Material: m}, nil
}

func (g GussetPlate) IsZero() bool { return g.Thickness.IsZero() }

// GrossArea is t × lg
func (g GussetPlate) GrossArea() (value.Area, error) {
	return g.Thickness.Mul(g.Lg)
}

// GussetAreas holds the intermediate values of the effective net area
type GussetAreas struct {
	DevelopmentLength value.Length `json:"development_length"`
	EffectiveLength   value.Length `json:"effective_length"`
	Gross             value.Area   `json:"gross"`
	Holes             value.Area   `json:"holes"`
	Net               value.Area   `json:"net"`
	Clamped           bool         `json:"clamped"`
}

// DevelopmentLength is the width the bolt force spreads over at the last
// bolt row: the 30° spread along the bolt rows plus the gauge width.
func (g GussetPlate) DevelopmentLength(gaugeWidth value.Length, b BoltConnection) value.Length {
	return b.Pitch().Scale(float64(b.Rows-1) * aij.SpreadFactor()).Add(gaugeWidth)
}

// EffectiveLength caps the development length at the plate width
func (g GussetPlate) EffectiveLength(gaugeWidth value.Length, b BoltConnection) value.Length {
	return value.MinLength(g.Lg, g.DevelopmentLength(gaugeWidth, b))
}

// EffectiveNetArea is the effective width times the thickness, less the
// bolt holes of the last row. It is zero when the holes take up the whole
// effective width.
func (g GussetPlate) EffectiveNetArea(gaugeWidth value.Length, b BoltConnection, columns int) (GussetAreas, error) {
	const op = "member.GussetPlate.EffectiveNetArea"

	out := GussetAreas{
		DevelopmentLength: g.DevelopmentLength(gaugeWidth, b),
		EffectiveLength:   g.EffectiveLength(gaugeWidth, b),
	}

	var err error
	out.Gross, err = out.EffectiveLength.Mul(g.Thickness)
	if err != nil {
		return GussetAreas{}, fmt.Errorf("%s: %w", op, err)
	}
	out.Holes, err = holeDeduction(g.Thickness, b, columns)
	if err != nil {
		return GussetAreas{}, fmt.Errorf("%s: %w", op, err)
	}

	// within tolerance of the gross area counts as the whole width
	if !out.Holes.Less(out.Gross) {
		out.Net = value.Area{}
		out.Clamped = true
		return out, nil
	}
	out.Net, err = out.Gross.Sub(out.Holes)
	if err != nil {
		return GussetAreas{}, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// Outline is the plan shape of the plate: tapering from the section
// breadth at the member end to lg at the last bolt row, then a margin.
func (g GussetPlate) Outline(breadth, jointLength value.Length, u unit.LengthUnit) geom.Polyline {
	lg := g.Lg.In(u)
	b := breadth.In(u)
	jl := jointLength.In(u)
	end := jointLength.Add(aij.GussetMargin()).In(u)

	outline, _ := geom.NewPolyline([]geom.Point{
		{X: 0, Y: b / 2},
		{X: jl, Y: lg / 2},
		{X: end, Y: lg / 2},
		{X: end, Y: -lg / 2},
		{X: jl, Y: -lg / 2},
		{X: 0, Y: -b / 2},
	})
	return outline
}
