package check

import (
	"time"

	"github.com/alexiusacademia/gobrace/internal/value"
)

// DefaultMark is the member mark printed on reports.
const DefaultMark = "V1"

// Result is a recorded verification of one brace joint. A check that has
// not been run is nil.
type Result struct {
	ID        string      `json:"id"`
	Mark      string      `json:"mark"`
	CreatedAt time.Time   `json:"created_at"`
	Force     value.Force `json:"force"`

	Base   *BaseYieldResult   `json:"base_yield,omitempty"`
	Bolt   *BoltYieldResult   `json:"bolt_yield,omitempty"`
	Gusset *GussetYieldResult `json:"gusset_yield,omitempty"`
}

// Complete reports whether all three checks are present.
func (r *Result) Complete() bool {
	return r != nil && r.Base != nil && r.Bolt != nil && r.Gusset != nil
}

// Judgment is NG when any recorded check is NG.
func (r *Result) Judgment() Judgment {
	for _, j := range r.judgments() {
		if j == NG {
			return NG
		}
	}
	return OK
}

// MaxRatio returns the governing ratio of the recorded checks.
func (r *Result) MaxRatio() Ratio {
	var worst Ratio
	for _, g := range r.ratios() {
		if !g.IsFinite() {
			return g
		}
		if g > worst {
			worst = g
		}
	}
	return worst
}

func (r *Result) judgments() []Judgment {
	var out []Judgment
	if r.Base != nil {
		out = append(out, r.Base.Judgment)
	}
	if r.Bolt != nil {
		out = append(out, r.Bolt.Judgment)
	}
	if r.Gusset != nil {
		out = append(out, r.Gusset.Judgment)
	}
	return out
}

func (r *Result) ratios() []Ratio {
	var out []Ratio
	if r.Base != nil {
		out = append(out, r.Base.Gamma)
	}
	if r.Bolt != nil {
		out = append(out, r.Bolt.Gamma)
	}
	if r.Gusset != nil {
		out = append(out, r.Gusset.Gamma)
	}
	return out
}
