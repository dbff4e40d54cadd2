// Package check evaluates a brace joint against its yield capacities.
//
// Every check is a pure function of the joint parts and the design force.
// Results keep the intermediate values so reports can print them as they
// were computed.
package check

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gobrace/internal/aij"
	"github.com/alexiusacademia/gobrace/internal/value"
)

// ErrIncomplete is returned when a check needs a joint part that was never set.
var ErrIncomplete = errors.New("joint is incomplete")

func incomplete(op, part string) error {
	return fmt.Errorf("%s: %w: %s not set", op, ErrIncomplete, part)
}

// Judgment is the verdict of a check
type Judgment string

const (
	OK Judgment = "OK"
	NG Judgment = "NG"
)

// Ratio is the demand/capacity ratio γ = Nd / Ny.
type Ratio float64

// NewRatio divides the design force by the allowable force. A zero capacity
// gives +Inf, or 0 when there is no demand either.
func NewRatio(nd, ny value.Force) Ratio {
	if ny.IsZero() {
		if nd.IsZero() {
			return 0
		}
		return Ratio(math.Inf(1))
	}
	return Ratio(nd.Ratio(ny))
}

// Judge returns OK when γ does not exceed 1.0
func (r Ratio) Judge() Judgment {
	if float64(r) <= aij.RatioLimit {
		return OK
	}
	return NG
}

func (r Ratio) IsFinite() bool {
	return !math.IsInf(float64(r), 0) && !math.IsNaN(float64(r))
}

// MarshalJSON writes non-finite ratios as null.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.IsFinite() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(r))
}

// UnmarshalJSON reads null back as +Inf.
func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ratio(math.Inf(1))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*r = Ratio(f)
	return nil
}
