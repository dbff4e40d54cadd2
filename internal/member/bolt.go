package member

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/alexiusacademia/gobrace/internal/aij"
	"github.com/alexiusacademia/gobrace/internal/catalog"
	"github.com/alexiusacademia/gobrace/internal/value"
)

// BoltConnection is a group of identical high-strength bolts laid out in
// rows along the brace axis, one column per gauge line.
type BoltConnection struct {
	Diameter catalog.BoltDiameter `json:"diameter"`
	Material catalog.BoltMaterial `json:"material"`
	Rows     int                  `json:"rows"`
}

// NewBoltConnection validates the row count
func NewBoltConnection(d catalog.BoltDiameter, m catalog.BoltMaterial, rows int) (BoltConnection, error) {
	if rows < 1 {
		return BoltConnection{}, fmt.Errorf("member.NewBoltConnection: %w: rows must be at least 1, got %d",
			value.ErrInvalidQuantity, rows)
	}
	return BoltConnection{Diameter: d, Material: m, Rows: rows}, nil
}

func (b BoltConnection) IsZero() bool { return b.Rows == 0 }

func (b BoltConnection) ShankDiameter() value.Length { return b.Diameter.D }
func (b BoltConnection) HeadHeight() value.Length    { return b.Diameter.HeadHeight }
func (b BoltConnection) HeadSize() value.Length      { return b.Diameter.HeadSize }

// HoleDiameter is the shank diameter plus the standard clearance
func (b BoltConnection) HoleDiameter() value.Length {
	return aij.HoleDiameter(b.Diameter.D)
}

func (b BoltConnection) EndDistance() value.Length { return aij.EndDistance() }
func (b BoltConnection) Pitch() value.Length       { return aij.Pitch() }

// JointLength is the lapped length: an end distance on both sides of the
// bolt rows.
func (b BoltConnection) JointLength() value.Length {
	return b.EndDistance().Scale(2).Add(b.Pitch().Scale(float64(b.Rows - 1)))
}

// NumBolts is the bolt count for the given number of gauge columns
func (b BoltConnection) NumBolts(columns int) int {
	return b.Rows * columns
}

// Coordinate is a bolt centre: X along the brace from the member end, Y
// across it from the centreline.
type Coordinate struct {
	X value.Length `json:"x"`
	Y value.Length `json:"y"`
}

// Coordinates lists the bolt centres, gauge by gauge, row by row.
func (b BoltConnection) Coordinates(gauges []value.Length) []Coordinate {
	return lo.FlatMap(gauges, func(y value.Length, _ int) []Coordinate {
		return lo.Times(b.Rows, func(i int) Coordinate {
			return Coordinate{
				X: b.EndDistance().Add(b.Pitch().Scale(float64(i))),
				Y: y,
			}
		})
	})
}

// SingleFriction is the slip capacity of one bolt on one friction surface
func (b BoltConnection) SingleFriction() value.Force {
	return b.Diameter.Area.MulStress(b.Material.T0).Scale(aij.FrictionFactor)
}

// DoubleFriction is the slip capacity of one bolt on two friction surfaces
func (b BoltConnection) DoubleFriction() value.Force {
	return b.SingleFriction().Scale(2)
}
