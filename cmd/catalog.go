package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobrace/internal/catalog"
	"github.com/alexiusacademia/gobrace/internal/unit"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List sections, steel grades and bolts",
	Long: `List the entries of the built-in catalog, merged with the
file given by --catalog or GOBRACE_CATALOG_FILE.

Subcommands:
  sections        - CT, angle and channel sections
  materials       - structural steel grades
  bolt-diameters  - bolt sizes and head dimensions
  bolt-materials  - high-strength bolt grades`,
}

var catalogSectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List sections",
	RunE: withCatalog(func(c *catalog.Catalog) {
		fmt.Println("SECTIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Name\tKind\tH (mm)\tB (mm)\tt (mm)\tA (cm²)")
		for _, s := range c.Sections() {
			fmt.Fprintf(w, "  %s\t%s\t%.0f\t%.0f\t%.1f\t%.2f\n",
				s.Name, s.Kind,
				s.H.In(unit.MilliMeter), s.B.In(unit.MilliMeter),
				s.Thickness().In(unit.MilliMeter), s.Area.In(unit.CentiMeter))
		}
		w.Flush()
	}),
}

var catalogMaterialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List steel grades",
	RunE: withCatalog(func(c *catalog.Catalog) {
		fmt.Println("STEEL GRADES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Name\tF (N/mm²)\tFu (N/mm²)")
		for _, name := range c.MaterialNames() {
			m, _ := c.Material(name)
			fmt.Fprintf(w, "  %s\t%.0f\t%.0f\n", m.Name,
				m.Fy.In(unit.Newton, unit.MilliMeter), m.Fu.In(unit.Newton, unit.MilliMeter))
		}
		w.Flush()
	}),
}

var catalogBoltDiametersCmd = &cobra.Command{
	Use:   "bolt-diameters",
	Short: "List bolt sizes",
	RunE: withCatalog(func(c *catalog.Catalog) {
		fmt.Println("BOLT SIZES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Name\td (mm)\tA (mm²)\tHead k (mm)\tHead s (mm)")
		for _, name := range c.BoltDiameterNames() {
			b, _ := c.BoltDiameter(name)
			fmt.Fprintf(w, "  %s\t%.0f\t%.0f\t%.0f\t%.0f\n", b.Name,
				b.D.In(unit.MilliMeter), b.Area.In(unit.MilliMeter),
				b.HeadHeight.In(unit.MilliMeter), b.HeadSize.In(unit.MilliMeter))
		}
		w.Flush()
	}),
}

var catalogBoltMaterialsCmd = &cobra.Command{
	Use:   "bolt-materials",
	Short: "List high-strength bolt grades",
	RunE: withCatalog(func(c *catalog.Catalog) {
		fmt.Println("BOLT GRADES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Name\tT0 (N/mm²)")
		for _, name := range c.BoltMaterialNames() {
			m, _ := c.BoltMaterial(name)
			fmt.Fprintf(w, "  %s\t%.0f\n", m.Name, m.T0.In(unit.Newton, unit.MilliMeter))
		}
		w.Flush()
	}),
}

func withCatalog(fn func(*catalog.Catalog)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		fmt.Println()
		fn(c)
		fmt.Println()
		return nil
	}
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogSectionsCmd)
	catalogCmd.AddCommand(catalogMaterialsCmd)
	catalogCmd.AddCommand(catalogBoltDiametersCmd)
	catalogCmd.AddCommand(catalogBoltMaterialsCmd)
}
