package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobrace/internal/diagram"
	"github.com/alexiusacademia/gobrace/internal/geom"
	"github.com/alexiusacademia/gobrace/internal/unit"
)

var (
	geomJoint  jointFlags
	geomUnit   string
	geomJSON   bool
	geomOutput string
)

var geometryCmd = &cobra.Command{
	Use:   "geometry",
	Short: "Print the joint geometry",
	Long: `Print the section outline, gusset outline, bolt positions and
bolt dimensions of a joint in the requested length unit.

Examples:
  # Geometry in millimeters
  gobrace geometry -s CT-125x250x9x14 -r 3 --unit mm

  # Export a drawing of the joint
  gobrace geometry -s L-90x90x7 -r 2 -o joint.png`,
	RunE: runGeometry,
}

func init() {
	rootCmd.AddCommand(geometryCmd)

	geomJoint.register(geometryCmd)
	geometryCmd.Flags().StringVarP(&geomUnit, "unit", "u", "mm", "Length unit (m, cm, mm)")
	geometryCmd.Flags().BoolVar(&geomJSON, "json", false, "Print the geometry as JSON")
	geometryCmd.Flags().StringVarP(&geomOutput, "output", "o", "", "Export drawing to file (png, svg, pdf)")
}

type geometry struct {
	Unit        string        `json:"unit"`
	Section     geom.Polyline `json:"section"`
	Gusset      geom.Polyline `json:"gusset"`
	Bolts       []geom.Point  `json:"bolts"`
	JointLength float64       `json:"joint_length"`
}

func runGeometry(cmd *cobra.Command, args []string) error {
	u, err := unit.ParseLengthUnit(geomUnit)
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context(), geomJoint.defaults())
	if err != nil {
		return err
	}
	defer a.close()

	if err := geomJoint.apply(a); err != nil {
		return err
	}
	d := a.designer

	g := geometry{
		Unit:        u.String(),
		Section:     d.SectionOutline(u),
		Gusset:      d.GussetOutline(u),
		Bolts:       d.BoltCoordinates(u),
		JointLength: d.JointLength(u),
	}

	if geomJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(g); err != nil {
			return err
		}
	} else {
		printGeometry(g, d.BoltDimensions(u).Hole, d.SectionThickness(u), d.GussetThickness(u))
		fmt.Println(diagram.DrawASCIIBoltLayout(d.BoltLayout()))
	}

	if geomOutput != "" {
		if err := diagram.ExportJointDiagram(d.Preview(), geomOutput); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Printf("Diagram exported to: %s\n", geomOutput)
	}
	return nil
}

func printGeometry(g geometry, hole, tSection, tGusset float64) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BRACE JOINT GEOMETRY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Joint length:\t%.4g %s\n", g.JointLength, g.Unit)
	fmt.Fprintf(w, "  Hole diameter:\t%.4g %s\n", hole, g.Unit)
	fmt.Fprintf(w, "  Section thickness:\t%.4g %s\n", tSection, g.Unit)
	fmt.Fprintf(w, "  Gusset thickness:\t%.4g %s\n", tGusset, g.Unit)
	w.Flush()
	fmt.Println()

	printPoints("SECTION OUTLINE", g.Section.Points(), g.Unit)
	printPoints("GUSSET OUTLINE", g.Gusset.Points(), g.Unit)
	printPoints("BOLT CENTRES", g.Bolts, g.Unit)
}

func printPoints(title string, pts []geom.Point, u string) {
	fmt.Printf("%s (%s):\n", title, u)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i, p := range pts {
		fmt.Fprintf(w, "  %d\t%.4g\t%.4g\t\n", i+1, p.X, p.Y)
	}
	w.Flush()
	fmt.Println()
}
