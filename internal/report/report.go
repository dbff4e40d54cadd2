// Package report turns a check result into printable tables.
//
// Build produces one table model shared by every output format, so the
// text, PDF and XLSX reports always show the same rounded values.
package report

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alexiusacademia/gobrace/internal/check"
	"github.com/alexiusacademia/gobrace/internal/unit"
)

// ErrNoResult is returned when there is nothing to report.
var ErrNoResult = errors.New("no result to report")

// Column is a table header with its unit.
type Column struct {
	Name string
	Unit string
}

// Cell is a table value, numeric when IsNum is set.
type Cell struct {
	Text  string
	Num   decimal.Decimal
	IsNum bool
}

func text(s string) Cell { return Cell{Text: s} }

func num(v float64, places int32) Cell {
	d := decimal.NewFromFloat(v).Round(places)
	return Cell{Text: d.StringFixed(places), Num: d, IsNum: true}
}

func count(n int) Cell {
	d := decimal.NewFromInt(int64(n))
	return Cell{Text: d.String(), Num: d, IsNum: true}
}

func ratio(r check.Ratio) Cell {
	if !r.IsFinite() {
		return text("∞")
	}
	return num(float64(r), 3)
}

// Table is one check rendered as a header and its rows.
type Table struct {
	Title   string
	Columns []Column
	Rows    [][]Cell
}

// Report is the printable form of a check.Result.
type Report struct {
	Title     string
	ID        string
	Mark      string
	CreatedAt time.Time
	Force     Cell
	Judgment  check.Judgment
	Tables    []Table
}

const Title = "Brace Joint Verification"

// Build lays out the recorded checks of r as tables.
func Build(r *check.Result) (*Report, error) {
	if r == nil || (r.Base == nil && r.Bolt == nil && r.Gusset == nil) {
		return nil, ErrNoResult
	}

	rep := &Report{
		Title:     Title,
		ID:        r.ID,
		Mark:      r.Mark,
		CreatedAt: r.CreatedAt,
		Force:     num(r.Force.In(unit.KiloNewton), 1),
		Judgment:  r.Judgment(),
	}
	if r.Base != nil {
		rep.Tables = append(rep.Tables, baseTable(r.Mark, r.Base))
	}
	if r.Bolt != nil {
		rep.Tables = append(rep.Tables, boltTable(r.Mark, r.Bolt))
	}
	if r.Gusset != nil {
		rep.Tables = append(rep.Tables, gussetTable(r.Mark, r.Gusset))
	}
	return rep, nil
}

func baseTable(mark string, b *check.BaseYieldResult) Table {
	return Table{
		Title: "Base metal yield",
		Columns: []Column{
			{"Mark", ""}, {"Section", ""}, {"Material", ""},
			{"A", "cm²"}, {"Ae", "cm²"}, {"F", "N/mm²"},
			{"Ny", "kN"}, {"Nd", "kN"}, {"γ", ""}, {"Judge", ""},
		},
		Rows: [][]Cell{{
			text(mark), text(b.Section), text(b.Material),
			num(b.GrossArea.In(unit.CentiMeter), 2),
			num(b.NetArea.In(unit.CentiMeter), 2),
			num(b.Fy.In(unit.Newton, unit.MilliMeter), 0),
			num(b.Ny.In(unit.KiloNewton), 1),
			num(b.Nd.In(unit.KiloNewton), 1),
			ratio(b.Gamma),
			text(string(b.Judgment)),
		}},
	}
}

func boltTable(mark string, b *check.BoltYieldResult) Table {
	return Table{
		Title: "Bolt yield",
		Columns: []Column{
			{"Mark", ""}, {"Diameter", ""}, {"Material", ""},
			{"qy", "kN"}, {"n", ""},
			{"Ny", "kN"}, {"Nd", "kN"}, {"γ", ""}, {"Judge", ""},
		},
		Rows: [][]Cell{{
			text(mark), text(b.Diameter), text(b.Material),
			num(b.SingleFriction.In(unit.KiloNewton), 2),
			count(b.NumBolts),
			num(b.Ny.In(unit.KiloNewton), 1),
			num(b.Nd.In(unit.KiloNewton), 1),
			ratio(b.Gamma),
			text(string(b.Judgment)),
		}},
	}
}

func gussetTable(mark string, g *check.GussetYieldResult) Table {
	return Table{
		Title: "Gusset plate yield",
		Columns: []Column{
			{"Mark", ""}, {"Material", ""},
			{"t", "mm"}, {"le", "mm"}, {"Ae", "cm²"}, {"F", "N/mm²"},
			{"Ny", "kN"}, {"Nd", "kN"}, {"γ", ""}, {"Judge", ""},
		},
		Rows: [][]Cell{{
			text(mark), text(g.Material),
			num(g.Thickness.In(unit.MilliMeter), 1),
			num(g.Areas.EffectiveLength.In(unit.MilliMeter), 1),
			num(g.Areas.Net.In(unit.CentiMeter), 2),
			num(g.Fy.In(unit.Newton, unit.MilliMeter), 0),
			num(g.Ny.In(unit.KiloNewton), 1),
			num(g.Nd.In(unit.KiloNewton), 1),
			ratio(g.Gamma),
			text(string(g.Judgment)),
		}},
	}
}

func (c Column) Header() string {
	if c.Unit == "" {
		return c.Name
	}
	return c.Name + " (" + c.Unit + ")"
}
