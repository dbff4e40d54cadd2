package catalog

import (
	"github.com/alexiusacademia/gobrace/internal/value"
)

// SteelMaterial is a structural steel grade
type SteelMaterial struct {
	Name string       `json:"name"`
	Fy   value.Stress `json:"fy"` // yield stress
	Fu   value.Stress `json:"fu"` // tensile strength
}

// BoltMaterial is a high-strength bolt grade
type BoltMaterial struct {
	Name string       `json:"name"`
	T0   value.Stress `json:"t0"` // design bolt tension
}

// BoltDiameter is a nominal bolt size with its head geometry
type BoltDiameter struct {
	Name       string       `json:"name"`
	D          value.Length `json:"d"`           // shank diameter
	Area       value.Area   `json:"area"`        // full cross-section
	HeadHeight value.Length `json:"head_height"` // k
	HeadSize   value.Length `json:"head_size"`   // width across flats
}
