package diagram

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gobrace/internal/geom"
)

// JointDiagramData holds the drawing of one brace joint, in mm
type JointDiagramData struct {
	Title string

	// Cross-section of the brace, bolted plate on x = 0
	Section geom.Polyline

	// Plan of the gusset plate, member end at x = 0
	Gusset geom.Polyline

	// Bolt centres in plan
	Bolts        []geom.Point
	HoleDiameter float64

	// Bolted plate width and lapped length, for the member footprint
	Breadth     float64
	JointLength float64
}

// sectionGap separates the cross-section inset from the plan view (mm)
const sectionGap = 60.0

// JointPlot draws the gusset plan with its bolts, and the brace
// cross-section to the left of it.
func JointPlot(data JointDiagramData) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = data.Title
	if p.Title.Text == "" {
		p.Title.Text = "Brace Joint"
	}
	p.X.Label.Text = "x (mm)"
	p.Y.Label.Text = "y (mm)"

	// Gusset plate
	if data.Gusset.Len() >= 3 {
		gusset, err := plotter.NewPolygon(toXYs(data.Gusset.Points()))
		if err != nil {
			return nil, err
		}
		gusset.Color = color.RGBA{R: 200, G: 200, B: 200, A: 255}
		gusset.LineStyle.Width = vg.Points(1.5)
		gusset.LineStyle.Color = color.Black
		p.Add(gusset)
	}

	// Brace member footprint over the gusset
	if data.Breadth > 0 {
		tail := -sectionGap / 2
		member, err := plotter.NewPolygon(plotter.XYs{
			{X: tail, Y: data.Breadth / 2},
			{X: data.JointLength, Y: data.Breadth / 2},
			{X: data.JointLength, Y: -data.Breadth / 2},
			{X: tail, Y: -data.Breadth / 2},
		})
		if err != nil {
			return nil, err
		}
		member.Color = color.RGBA{R: 100, G: 149, B: 237, A: 120}
		member.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
		p.Add(member)
	}

	// Bolt holes
	if len(data.Bolts) > 0 {
		bolts, err := plotter.NewScatter(toXYs(data.Bolts))
		if err != nil {
			return nil, err
		}
		bolts.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
		bolts.GlyphStyle.Radius = vg.Points(4)
		bolts.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(bolts)
	}

	// Cross-section to the left of the member end
	if data.Section.Len() >= 3 {
		b := data.Section.Bounds()
		shifted := data.Section.Translate(-b.MaxX-sectionGap, 0)
		section, err := plotter.NewPolygon(toXYs(shifted.Points()))
		if err != nil {
			return nil, err
		}
		section.Color = color.RGBA{R: 100, G: 149, B: 237, A: 200}
		section.LineStyle.Width = vg.Points(1.5)
		section.LineStyle.Color = color.Black
		p.Add(section)

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: shifted.Bounds().MinX, Y: b.MaxY + 15}},
			Labels: []string{"Section"},
		})
		if err != nil {
			return nil, err
		}
		p.Add(lbl)
	}

	labels := []struct {
		x, y float64
		text string
	}{
		{data.JointLength / 2, -data.Breadth/2 - 20, fmt.Sprintf("L=%.0fmm", data.JointLength)},
		{0, data.Breadth/2 + 15, fmt.Sprintf("holes d=%.0fmm", data.HoleDiameter)},
	}
	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return nil, err
		}
		p.Add(l)
	}

	return p, nil
}

func toXYs(pts []geom.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, v := range pts {
		xys[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	return xys
}

const (
	diagramWidth  = 8 * vg.Inch
	diagramHeight = 6 * vg.Inch
)

// ExportJointDiagram exports the joint diagram to an image file. The
// format follows the extension: png, svg or pdf, defaulting to png.
func ExportJointDiagram(data JointDiagramData, filename string) error {
	p, err := JointPlot(data)
	if err != nil {
		return err
	}

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(diagramWidth, diagramHeight, filename)
	default:
		return p.Save(diagramWidth, diagramHeight, filename+".png")
	}
}

// WriteJointDiagram renders the joint diagram to w in the given format
// (png, svg or pdf).
func WriteJointDiagram(w io.Writer, data JointDiagramData, format string) error {
	p, err := JointPlot(data)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(diagramWidth, diagramHeight, strings.ToLower(format))
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
