package brace

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/alexiusacademia/gobrace/internal/diagram"
	"github.com/alexiusacademia/gobrace/internal/unit"
	"github.com/alexiusacademia/gobrace/internal/value"
)

// Preview collects the current joint geometry for drawing, in mm.
func (d *Designer) Preview() diagram.JointDiagramData {
	s := d.Snapshot()
	mm := unit.MilliMeter
	p := s.Section.Profile()
	joint := s.Bolts.JointLength()

	return diagram.JointDiagramData{
		Title:        fmt.Sprintf("%s / %d x %s %s", p.Name, s.Bolts.Rows, s.Bolts.Diameter.Name, s.Bolts.Material.Name),
		Section:      p.Outline(mm),
		Gusset:       s.Gusset.Outline(p.Breadth(), joint, mm),
		Bolts:        d.BoltCoordinates(mm),
		HoleDiameter: s.Bolts.HoleDiameter().In(mm),
		Breadth:      p.Breadth().In(mm),
		JointLength:  joint.In(mm),
	}
}

// BoltLayout describes the bolt group for the terminal sketch.
func (d *Designer) BoltLayout() diagram.BoltLayout {
	s := d.Snapshot()
	mm := unit.MilliMeter

	return diagram.BoltLayout{
		Bolt: s.Bolts.Diameter.Name + " " + s.Bolts.Material.Name,
		Rows: s.Bolts.Rows,
		Gauges: lo.Map(s.Section.Gauges(), func(g value.Length, _ int) float64 {
			return g.In(mm)
		}),
		EndDistance: s.Bolts.EndDistance().In(mm),
		Pitch:       s.Bolts.Pitch().In(mm),
		JointLength: s.Bolts.JointLength().In(mm),
	}
}
