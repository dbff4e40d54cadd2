package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrTooFewPoints is returned when a polyline has fewer than two points.
var ErrTooFewPoints = errors.New("polyline needs at least 2 points")

// Point represents a 2D coordinate
type Point struct {
	X float64
	Y float64
}

// MarshalJSON encodes the point as an [x, y] pair.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

// UnmarshalJSON decodes an [x, y] pair.
func (p *Point) UnmarshalJSON(data []byte) error {
	var xy [2]float64
	if err := json.Unmarshal(data, &xy); err != nil {
		return err
	}
	p.X, p.Y = xy[0], xy[1]
	return nil
}

// Polyline is an ordered vertex list. Outlines are closed implicitly
// from the last point back to the first.
type Polyline struct {
	points []Point
}

// NewPolyline builds a polyline from at least two points.
func NewPolyline(points []Point) (Polyline, error) {
	if len(points) < 2 {
		return Polyline{}, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}
	return Polyline{points: append([]Point(nil), points...)}, nil
}

// Points returns a copy of the vertices.
func (p Polyline) Points() []Point {
	return append([]Point(nil), p.points...)
}

func (p Polyline) Len() int { return len(p.points) }

// Bounds holds the bounding box of a polyline
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Union returns the smallest box containing b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, o.MinX),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Bounds computes the bounding box of the vertices
func (p Polyline) Bounds() Bounds {
	if len(p.points) == 0 {
		return Bounds{}
	}
	b := Bounds{
		MinX: p.points[0].X, MaxX: p.points[0].X,
		MinY: p.points[0].Y, MaxY: p.points[0].Y,
	}
	for _, v := range p.points {
		b.MinX = math.Min(b.MinX, v.X)
		b.MaxX = math.Max(b.MaxX, v.X)
		b.MinY = math.Min(b.MinY, v.Y)
		b.MaxY = math.Max(b.MaxY, v.Y)
	}
	return b
}

// AreaAndCentroid uses the shoelace formula on the closed outline
func (p Polyline) AreaAndCentroid() (area, cx, cy float64) {
	n := len(p.points)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p.points[i].X*p.points[j].Y - p.points[j].X*p.points[i].Y
		signedArea += cross
		sumX += (p.points[i].X + p.points[j].X) * cross
		sumY += (p.points[i].Y + p.points[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

// Translate returns the polyline shifted by (dx, dy).
func (p Polyline) Translate(dx, dy float64) Polyline {
	out := make([]Point, len(p.points))
	for i, v := range p.points {
		out[i] = Point{X: v.X + dx, Y: v.Y + dy}
	}
	return Polyline{points: out}
}

type polylineJSON struct {
	StartPoint Point   `json:"start_point"`
	NextPoints []Point `json:"next_points"`
}

// MarshalJSON encodes the polyline as a start point followed by the
// remaining vertices.
func (p Polyline) MarshalJSON() ([]byte, error) {
	if len(p.points) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(polylineJSON{
		StartPoint: p.points[0],
		NextPoints: append([]Point{}, p.points[1:]...),
	})
}

// UnmarshalJSON decodes the start point / next points form.
func (p *Polyline) UnmarshalJSON(data []byte) error {
	var raw polylineJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	pl, err := NewPolyline(append([]Point{raw.StartPoint}, raw.NextPoints...))
	if err != nil {
		return err
	}
	*p = pl
	return nil
}
