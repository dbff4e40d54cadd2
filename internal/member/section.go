// Package member models the parts of a brace joint: the brace section, the
// bolt group and the gusset plate.
package member

import (
	"fmt"

	"github.com/alexiusacademia/gobrace/internal/catalog"
	"github.com/alexiusacademia/gobrace/internal/value"
)

// Section is a catalog section with its bolt lines resolved.
type Section struct {
	profile catalog.Section
	gauges  []value.Length
}

// NewSection resolves the gauge list of p once.
func NewSection(p catalog.Section) (Section, error) {
	const op = "member.NewSection"

	gauges, err := p.GaugeList()
	if err != nil {
		return Section{}, fmt.Errorf("%s: %s: %w", op, p.Name, err)
	}
	return Section{profile: p, gauges: gauges}, nil
}

func (s Section) Profile() catalog.Section { return s.profile }

func (s Section) IsZero() bool { return s.profile.IsZero() }

// Gauges returns the bolt line offsets, most positive first.
func (s Section) Gauges() []value.Length {
	return append([]value.Length(nil), s.gauges...)
}

// NumColumns is the number of bolt lines
func (s Section) NumColumns() int { return len(s.gauges) }

// GaugeWidth is the spread between the outermost bolt lines
func (s Section) GaugeWidth() value.Length {
	if len(s.gauges) == 0 {
		return value.Length{}
	}
	return s.gauges[0].Sub(s.gauges[len(s.gauges)-1])
}

// HoleArea is the area lost to one bolt hole per column
func (s Section) HoleArea(b BoltConnection) (value.Area, error) {
	return holeDeduction(s.profile.Thickness(), b, s.NumColumns())
}

// NetArea is the gross area minus the bolt holes. A section whose holes
// exceed its gross area fails with value.ErrInvalidQuantity.
func (s Section) NetArea(b BoltConnection) (value.Area, error) {
	const op = "member.Section.NetArea"

	holes, err := s.HoleArea(b)
	if err != nil {
		return value.Area{}, fmt.Errorf("%s: %w", op, err)
	}
	net, err := s.profile.Area.Sub(holes)
	if err != nil {
		return value.Area{}, fmt.Errorf("%s: %s: %w", op, s.profile.Name, err)
	}
	return net, nil
}

func holeDeduction(t value.Length, b BoltConnection, columns int) (value.Area, error) {
	perHole, err := t.Mul(b.HoleDiameter())
	if err != nil {
		return value.Area{}, err
	}
	return perHole.Scale(float64(columns))
}
