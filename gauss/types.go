// SPDX-License-Identifier: MIT

package gauss

import "fmt"

// Outcome is the terminal state of one solve.
type Outcome int

const (
	// Unique means every pivot and diagonal was non-zero and X holds the solution.
	Unique Outcome = iota

	// NoUniqueSolution means a zero pivot (forward) or zero diagonal (back
	// substitution) was met. It is a normal result, not an error.
	NoUniqueSolution
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Unique:
		return "unique"
	case NoUniqueSolution:
		return "no unique solution"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Phase names the state-machine stage a step (or a singular stop) belongs to.
//
//	Forward(0) → … → Forward(n-1) → BackSubstitution(n-1) → … → BackSubstitution(0) → Done
//
// with an early jump to NoUniqueSolution from any Forward or BackSubstitution state.
type Phase int

const (
	PhaseForward Phase = iota
	PhaseBackSubstitution
	PhaseDone
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseForward:
		return "forward elimination"
	case PhaseBackSubstitution:
		return "back substitution"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// StepKind classifies a trace step.
type StepKind int

const (
	// StepPhase is a phase banner (start of forward elimination, its
	// completion, start of back substitution).
	StepPhase StepKind = iota

	// StepPivotSearch announces a zero pivot and the search below it.
	StepPivotSearch

	// StepSwap records a full row exchange.
	StepSwap

	// StepEliminate records R{j} = R{j} - factor * R{i}.
	StepEliminate

	// StepSnapshot carries a rendered copy of the whole matrix.
	StepSnapshot

	// StepValue reports one unknown computed by back substitution.
	StepValue

	// StepSingular reports that the system has no unique solution.
	StepSingular
)

// String implements fmt.Stringer.
func (k StepKind) String() string {
	switch k {
	case StepPhase:
		return "phase"
	case StepPivotSearch:
		return "pivot-search"
	case StepSwap:
		return "swap"
	case StepEliminate:
		return "eliminate"
	case StepSnapshot:
		return "snapshot"
	case StepValue:
		return "value"
	case StepSingular:
		return "singular"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// Step is one trace line. Text is the human-readable rendering; the other
// fields carry the same information in structured form. Row indices are
// 0-based; NoRow marks fields that do not apply to the step kind.
//
//	Kind          Row          PivotRow       Factor  Value
//	PivotSearch   i            NoRow          -       -
//	Swap          i            k (new pivot)  -       -
//	Eliminate     j (target)   i (pivot)      factor  -
//	Value         i            NoRow          -       x[i]
//	Singular      i            NoRow          -       -
type Step struct {
	Kind     StepKind
	Phase    Phase
	Row      int
	PivotRow int
	Factor   float64
	Value    float64
	Text     string
}

// NoRow marks Row/PivotRow as not applicable.
const NoRow = -1

// String implements fmt.Stringer and returns Text.
func (s Step) String() string { return s.Text }

// Result is the outcome of one solve together with its full trace.
type Result struct {
	// Outcome is Unique or NoUniqueSolution.
	Outcome Outcome

	// X holds the n unknowns (X[i] belongs to column i) when Outcome is
	// Unique; it is nil otherwise.
	X []float64

	// Trace lists every step in the order it was performed, including the
	// steps before an early singular stop.
	Trace Trace

	// SingularRow is the 0-based row whose pivot/diagonal was zero, or NoRow.
	SingularRow int

	// SingularPhase is where the singular stop happened; PhaseDone when Unique.
	SingularPhase Phase
}

// Solution returns X, or ErrNoSolution when the system has no unique solution.
func (r *Result) Solution() ([]float64, error) {
	if r.Outcome != Unique {
		return nil, ErrNoSolution
	}

	return r.X, nil
}

// SolutionLines renders X as "x{i+1} = value" with prec decimals.
// It returns a single "no unique solution" line for singular outcomes.
func (r *Result) SolutionLines(prec int) []string {
	if r.Outcome != Unique {
		return []string{msgNoUniqueSolution}
	}
	out := make([]string, len(r.X))
	for i, v := range r.X {
		out[i] = formatValue(i, v, prec)
	}

	return out
}
