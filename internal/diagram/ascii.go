package diagram

import (
	"fmt"
	"math"
	"strings"
)

// BoltLayout describes the bolt group for the ASCII sketch, in mm
type BoltLayout struct {
	Bolt        string    // e.g. "M20 F10T"
	Rows        int       // bolts along the brace
	Gauges      []float64 // bolt line offsets, most positive first
	EndDistance float64
	Pitch       float64
	JointLength float64
}

// mmPerChar is the horizontal scale of the sketch
const mmPerChar = 10.0

// DrawASCIIBoltLayout sketches the bolt group in plan: one line per gauge,
// one ● per bolt, the member end on the left.
func DrawASCIIBoltLayout(l BoltLayout) string {
	var sb strings.Builder

	width := int(math.Round(l.JointLength/mmPerChar)) + 1
	if width < 2 {
		width = 2
	}
	line := func(fill string) []string {
		cells := make([]string, width)
		for i := range cells {
			cells[i] = fill
		}
		return cells
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  BOLT LAYOUT  %s  (%d row x %d line = %d bolts)\n",
		l.Bolt, l.Rows, len(l.Gauges), l.Rows*len(l.Gauges)))
	sb.WriteString("  ──────────────────────────────────────────\n")

	edge := line("─")
	sb.WriteString(fmt.Sprintf("  %10s  ┌%s┐\n", "", strings.Join(edge, "")))

	for _, g := range l.Gauges {
		cells := line(" ")
		for i := 0; i < l.Rows; i++ {
			x := int(math.Round((l.EndDistance + l.Pitch*float64(i)) / mmPerChar))
			if x >= 0 && x < width {
				cells[x] = "●"
			}
		}
		sb.WriteString(fmt.Sprintf("  %+7.1f mm  │%s│\n", g, strings.Join(cells, "")))
	}

	sb.WriteString(fmt.Sprintf("  %10s  └%s┘\n", "", strings.Join(edge, "")))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  e = %.0f mm   p = %.0f mm   L = %.0f mm   (1 char = %.0f mm)\n",
		l.EndDistance, l.Pitch, l.JointLength, mmPerChar))

	return sb.String()
}
