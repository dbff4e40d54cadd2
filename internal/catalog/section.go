package catalog

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gobrace/internal/geom"
	"github.com/alexiusacademia/gobrace/internal/unit"
	"github.com/alexiusacademia/gobrace/internal/value"
)

// Kind identifies the rolled shape of a section.
type Kind int

const (
	CT Kind = iota
	Angle
	Channel
)

func (k Kind) String() string {
	switch k {
	case Angle:
		return "angle"
	case Channel:
		return "channel"
	default:
		return "ct"
	}
}

// ParseKind parses "ct", "angle" or "channel".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ct":
		return CT, nil
	case "angle", "l":
		return Angle, nil
	case "channel", "[":
		return Channel, nil
	}
	return CT, fmt.Errorf("unknown section kind %q", s)
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Section is a rolled steel section bolted to the gusset plate.
//
// Field meaning depends on Kind:
//   - CT: H depth, B flange width, Tw web, Tf flange (bolted)
//   - Angle: H bolted leg, B outstanding leg, Tw leg thickness, Gauge bolt line
//   - Channel: H depth (bolted web), B flange width, Tw web (bolted), Tf flange
type Section struct {
	Name  string       `json:"name"`
	Kind  Kind         `json:"kind"`
	H     value.Length `json:"h"`
	B     value.Length `json:"b"`
	Tw    value.Length `json:"tw"`
	Tf    value.Length `json:"tf"`
	Gauge value.Length `json:"gauge"`
	Area  value.Area   `json:"area"`
}

// IsZero reports whether s is the unset zero value.
func (s Section) IsZero() bool {
	return s.Name == "" && s.Area.IsZero()
}

// Thickness returns the base-metal plate thickness in contact with the gusset
func (s Section) Thickness() value.Length {
	if s.Kind == CT {
		return s.Tf
	}
	return s.Tw
}

// Breadth returns the width of the bolted plate
func (s Section) Breadth() value.Length {
	if s.Kind == CT {
		return s.B
	}
	return s.H
}

// gaugeTable lists CT bolt line offsets (mm) keyed by flange breadth (mm),
// ordered from the most positive to the most negative offset.
var gaugeTable = []struct {
	breadth float64
	gauges  []float64
}{
	{100, []float64{30, -30}},
	{125, []float64{37.5, -37.5}},
	{150, []float64{45, -45}},
	{175, []float64{52.5, -52.5}},
	{200, []float64{60, -60}},
	{250, []float64{75, -75}},
	{300, []float64{115, 75, -75, -115}},
	{350, []float64{140, 70, -70, -140}},
	{400, []float64{160, 70, -70, -160}},
}

// GaugeList returns the transverse bolt line offsets from the section
// centreline. Its length is the number of bolt columns.
func (s Section) GaugeList() ([]value.Length, error) {
	if s.Kind != CT {
		return []value.Length{value.NewLength(0, unit.MilliMeter)}, nil
	}

	for _, row := range gaugeTable {
		if !s.B.Equal(value.NewLength(row.breadth, unit.MilliMeter)) {
			continue
		}
		out := make([]value.Length, len(row.gauges))
		for i, g := range row.gauges {
			out[i] = value.NewLength(g, unit.MilliMeter)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: no gauge table entry for CT breadth B = %g mm",
		ErrUnsupportedConfiguration, s.B.In(unit.MilliMeter))
}

// Outline returns the cross-section drawn in the joint plane, with the
// bolted plate on x = 0 and bolt lines on the y axis.
func (s Section) Outline(u unit.LengthUnit) geom.Polyline {
	h := s.H.In(u)
	b := s.B.In(u)
	tw := s.Tw.In(u)
	tf := s.Tf.In(u)

	var pts []geom.Point
	switch s.Kind {
	case Angle:
		g := s.Gauge.In(u)
		pts = []geom.Point{
			{X: 0, Y: -g},
			{X: h, Y: -g},
			{X: h, Y: tw - g},
			{X: tw, Y: tw - g},
			{X: tw, Y: b - g},
			{X: 0, Y: b - g},
		}
	case Channel:
		pts = []geom.Point{
			{X: 0, Y: h / 2},
			{X: b, Y: h / 2},
			{X: b, Y: h/2 - tf},
			{X: tw, Y: h/2 - tf},
			{X: tw, Y: -h/2 + tf},
			{X: b, Y: -h/2 + tf},
			{X: b, Y: -h / 2},
			{X: 0, Y: -h / 2},
		}
	default:
		pts = []geom.Point{
			{X: 0, Y: b / 2},
			{X: tf, Y: b / 2},
			{X: tf, Y: tw / 2},
			{X: h, Y: tw / 2},
			{X: h, Y: -tw / 2},
			{X: tf, Y: -tw / 2},
			{X: tf, Y: -b / 2},
			{X: 0, Y: -b / 2},
		}
	}

	outline, _ := geom.NewPolyline(pts)
	return outline
}

// Validate checks if the section definition is usable for a joint check
func (s Section) Validate() error {
	if s.Name == "" {
		return &ValidationError{Entry: "section", msg: "name is required", err: value.ErrInvalidQuantity}
	}

	type dim struct {
		label string
		v     value.Length
	}
	dims := []dim{{"h", s.H}, {"b", s.B}, {"tw", s.Tw}}
	if s.Kind != Angle {
		dims = append(dims, dim{"tf", s.Tf})
	}
	for _, d := range dims {
		if !value.NewLength(0, unit.Meter).Less(d.v) {
			return &ValidationError{Entry: s.Name, msg: d.label + " must be positive", err: value.ErrInvalidQuantity}
		}
	}
	if s.Area.IsZero() {
		return &ValidationError{Entry: s.Name, msg: "area must be positive", err: value.ErrInvalidQuantity}
	}
	if s.Kind == Angle && s.Gauge.Less(value.NewLength(0, unit.Meter)) {
		return &ValidationError{Entry: s.Name, msg: "gauge must not be negative", err: value.ErrInvalidQuantity}
	}
	if _, err := s.GaugeList(); err != nil {
		return &ValidationError{Entry: s.Name, msg: err.Error(), err: ErrUnsupportedConfiguration}
	}
	return nil
}
