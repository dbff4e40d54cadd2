package check

import (
	"fmt"

	"github.com/alexiusacademia/gobrace/internal/catalog"
	"github.com/alexiusacademia/gobrace/internal/member"
	"github.com/alexiusacademia/gobrace/internal/value"
)

// BaseYieldResult is the net-section yield check of the brace member
type BaseYieldResult struct {
	Section   string       `json:"section"`
	Material  string       `json:"material"`
	Thickness value.Length `json:"thickness"`
	Columns   int          `json:"columns"`
	Hole      value.Length `json:"hole_diameter"`
	GrossArea value.Area   `json:"gross_area"`
	HoleArea  value.Area   `json:"hole_area"`
	NetArea   value.Area   `json:"net_area"`
	Fy        value.Stress `json:"fy"`
	Ny        value.Force  `json:"ny"`
	Nd        value.Force  `json:"nd"`
	Gamma     Ratio        `json:"gamma"`
	Judgment  Judgment     `json:"judgment"`
}

// BaseYield checks Nd against Ny = net area × Fy of the brace member.
func BaseYield(sec member.Section, mat catalog.SteelMaterial, bolts member.BoltConnection, nd value.Force) (*BaseYieldResult, error) {
	const op = "check.BaseYield"

	switch {
	case sec.IsZero():
		return nil, incomplete(op, "section")
	case mat.Name == "":
		return nil, incomplete(op, "material")
	case bolts.IsZero():
		return nil, incomplete(op, "bolt connection")
	}

	holes, err := sec.HoleArea(bolts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	net, err := sec.NetArea(bolts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ny := net.MulStress(mat.Fy)
	gamma := NewRatio(nd, ny)

	return &BaseYieldResult{
		Section:   sec.Profile().Name,
		Material:  mat.Name,
		Thickness: sec.Profile().Thickness(),
		Columns:   sec.NumColumns(),
		Hole:      bolts.HoleDiameter(),
		GrossArea: sec.Profile().Area,
		HoleArea:  holes,
		NetArea:   net,
		Fy:        mat.Fy,
		Ny:        ny,
		Nd:        nd,
		Gamma:     gamma,
		Judgment:  gamma.Judge(),
	}, nil
}

// BoltYieldResult is the slip check of the bolt group
type BoltYieldResult struct {
	Diameter       string      `json:"diameter"`
	Material       string      `json:"material"`
	Rows           int         `json:"rows"`
	Columns        int         `json:"columns"`
	NumBolts       int         `json:"num_bolts"`
	SingleFriction value.Force `json:"single_friction"`
	DoubleFriction value.Force `json:"double_friction"`
	Ny             value.Force `json:"ny"`
	Nd             value.Force `json:"nd"`
	Gamma          Ratio       `json:"gamma"`
	Judgment       Judgment    `json:"judgment"`
}

// BoltYield checks Nd against the single-friction capacity of every bolt.
func BoltYield(sec member.Section, bolts member.BoltConnection, nd value.Force) (*BoltYieldResult, error) {
	const op = "check.BoltYield"

	switch {
	case sec.IsZero():
		return nil, incomplete(op, "section")
	case bolts.IsZero():
		return nil, incomplete(op, "bolt connection")
	}

	n := bolts.NumBolts(sec.NumColumns())
	single := bolts.SingleFriction()
	ny := single.Scale(float64(n))
	gamma := NewRatio(nd, ny)

	return &BoltYieldResult{
		Diameter:       bolts.Diameter.Name,
		Material:       bolts.Material.Name,
		Rows:           bolts.Rows,
		Columns:        sec.NumColumns(),
		NumBolts:       n,
		SingleFriction: single,
		DoubleFriction: bolts.DoubleFriction(),
		Ny:             ny,
		Nd:             nd,
		Gamma:          gamma,
		Judgment:       gamma.Judge(),
	}, nil
}

// GussetYieldResult is the effective net-section yield check of the gusset
type GussetYieldResult struct {
	Material   string             `json:"material"`
	Thickness  value.Length       `json:"thickness"`
	Lg         value.Length       `json:"lg"`
	GaugeWidth value.Length       `json:"gauge_width"`
	Areas      member.GussetAreas `json:"areas"`
	Fy         value.Stress       `json:"fy"`
	Ny         value.Force        `json:"ny"`
	Nd         value.Force        `json:"nd"`
	Gamma      Ratio              `json:"gamma"`
	Judgment   Judgment           `json:"judgment"`
}

// GussetYield checks Nd against Ny = effective net area × Fy of the plate.
func GussetYield(sec member.Section, gusset member.GussetPlate, bolts member.BoltConnection, nd value.Force) (*GussetYieldResult, error) {
	const op = "check.GussetYield"

	switch {
	case sec.IsZero():
		return nil, incomplete(op, "section")
	case gusset.IsZero():
		return nil, incomplete(op, "gusset plate")
	case bolts.IsZero():
		return nil, incomplete(op, "bolt connection")
	}

	gw := sec.GaugeWidth()
	areas, err := gusset.EffectiveNetArea(gw, bolts, sec.NumColumns())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ny := areas.Net.MulStress(gusset.Material.Fy)
	gamma := NewRatio(nd, ny)

	return &GussetYieldResult{
		Material:   gusset.Material.Name,
		Thickness:  gusset.Thickness,
		Lg:         gusset.Lg,
		GaugeWidth: gw,
		Areas:      areas,
		Fy:         gusset.Material.Fy,
		Ny:         ny,
		Nd:         nd,
		Gamma:      gamma,
		Judgment:   gamma.Judge(),
	}, nil
}
