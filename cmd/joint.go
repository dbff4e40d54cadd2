package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobrace/internal/brace"
	"github.com/alexiusacademia/gobrace/internal/unit"
)

// jointFlags describes a joint on the command line.
type jointFlags struct {
	mark           string
	section        string
	material       string
	boltMaterial   string
	boltDiameter   string
	rows           int
	gussetT        float64
	gussetLg       float64
	gussetMaterial string
	force          float64
}

func (j *jointFlags) register(cmd *cobra.Command) {
	def := brace.DefaultJoint
	f := cmd.Flags()

	f.StringVar(&j.mark, "mark", def.Mark, "Member mark shown in reports")

	// Member flags
	f.StringVarP(&j.section, "section", "s", def.Section, "Section name from the catalog")
	f.StringVarP(&j.material, "material", "m", def.Material, "Steel grade of the member")

	// Bolt flags
	f.StringVar(&j.boltMaterial, "bolt-material", def.BoltMaterial, "High-strength bolt grade")
	f.StringVarP(&j.boltDiameter, "diameter", "d", def.BoltDiameter, "Bolt size")
	f.IntVarP(&j.rows, "rows", "r", def.BoltRows, "Number of bolt rows along the member")

	// Gusset flags
	f.Float64Var(&j.gussetT, "gusset-t", 0, "Gusset thickness (mm), defaults to the section thickness")
	f.Float64Var(&j.gussetLg, "lg", 0, "Gusset length lg (mm), defaults to GOBRACE_GUSSET_LG_MM")
	f.StringVar(&j.gussetMaterial, "gusset-material", "", "Gusset steel grade, defaults to --material")

	// Loading flag
	f.Float64VarP(&j.force, "force", "n", 0, "Design axial force Nd (kN)")
}

// defaults turns the flags into the Designer's starting joint.
func (j *jointFlags) defaults() brace.Defaults {
	return brace.Defaults{
		Section:      j.section,
		Material:     j.material,
		BoltMaterial: j.boltMaterial,
		BoltDiameter: j.boltDiameter,
		BoltRows:     j.rows,
		GussetLgMm:   j.gussetLg,
		Mark:         j.mark,
	}
}

// apply sets the gusset and force, which the defaults cannot carry.
func (j *jointFlags) apply(a *app) error {
	d := a.designer

	if j.gussetT != 0 || j.gussetMaterial != "" {
		t := j.gussetT
		if t == 0 {
			t = d.SectionThickness(unit.MilliMeter)
		}
		lg := j.gussetLg
		if lg == 0 {
			lg = a.cfg.Defaults.GussetLgMm
		}
		mat := j.gussetMaterial
		if mat == "" {
			mat = j.material
		}
		if err := d.SetGusset(t, lg, mat); err != nil {
			return err
		}
	}
	d.SetForce(j.force)
	return nil
}
