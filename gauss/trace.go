// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"strings"
)

// Trace lines. Row numbers in text are 1-based, as a reader counts equations.
const (
	msgForwardStart     = "--- forward elimination ---"
	msgForwardDone      = "--- forward elimination complete ---"
	msgBackStart        = "--- back substitution ---"
	msgNoUniqueSolution = "no unique solution"

	fmtPivotSearch  = "> pivot in row %d is zero, searching rows below for a swap"
	fmtSwap         = "> swapped row %d with row %d"
	msgSingularFwd  = "> " + msgNoUniqueSolution
	fmtEliminate    = "R%d = R%d - (%.*f) * R%d"
	fmtSingularBack = "> pivot in row %d is zero, " + msgNoUniqueSolution
	fmtValue        = "x%d = %.*f"
)

// Trace is the ordered, append-only list of steps produced by one solve.
// The solver never reads it back.
type Trace struct {
	steps []Step
}

// Len returns the number of steps.
func (t Trace) Len() int { return len(t.steps) }

// Steps returns a copy of the steps in order.
func (t Trace) Steps() []Step {
	out := make([]Step, len(t.steps))
	copy(out, t.steps)

	return out
}

// Lines returns the Text of every step in order. Snapshot steps span several lines.
func (t Trace) Lines() []string {
	out := make([]string, len(t.steps))
	for i, s := range t.steps {
		out[i] = s.Text
	}

	return out
}

// Count returns how many steps have the given kind.
func (t Trace) Count(kind StepKind) int {
	n := 0
	for _, s := range t.steps {
		if s.Kind == kind {
			n++
		}
	}

	return n
}

// First returns the first step of the given kind and its position.
// It returns (Step{}, -1) when no such step exists.
func (t Trace) First(kind StepKind) (Step, int) {
	for i, s := range t.steps {
		if s.Kind == kind {
			return s, i
		}
	}

	return Step{}, -1
}

// Filter returns the steps of the given kind in order.
func (t Trace) Filter(kind StepKind) []Step {
	var out []Step
	for _, s := range t.steps {
		if s.Kind == kind {
			out = append(out, s)
		}
	}

	return out
}

// String joins every line with a newline.
func (t Trace) String() string {
	return strings.Join(t.Lines(), "\n")
}

func (t *Trace) append(s Step) { t.steps = append(t.steps, s) }

// ---------- step constructors ----------

func phaseStep(p Phase, text string) Step {
	return Step{Kind: StepPhase, Phase: p, Row: NoRow, PivotRow: NoRow, Text: text}
}

func pivotSearchStep(i int) Step {
	return Step{
		Kind: StepPivotSearch, Phase: PhaseForward, Row: i, PivotRow: NoRow,
		Text: fmt.Sprintf(fmtPivotSearch, i+1),
	}
}

func swapStep(i, k int) Step {
	return Step{
		Kind: StepSwap, Phase: PhaseForward, Row: i, PivotRow: k,
		Text: fmt.Sprintf(fmtSwap, i+1, k+1),
	}
}

func eliminateStep(j, i int, factor float64, prec int) Step {
	return Step{
		Kind: StepEliminate, Phase: PhaseForward, Row: j, PivotRow: i, Factor: factor,
		Text: fmt.Sprintf(fmtEliminate, j+1, j+1, prec, factor, i+1),
	}
}

func snapshotStep(p Phase, rendered string) Step {
	return Step{Kind: StepSnapshot, Phase: p, Row: NoRow, PivotRow: NoRow, Text: rendered}
}

func singularStep(p Phase, i int) Step {
	text := msgSingularFwd
	if p == PhaseBackSubstitution {
		text = fmt.Sprintf(fmtSingularBack, i+1)
	}

	return Step{Kind: StepSingular, Phase: p, Row: i, PivotRow: NoRow, Text: text}
}

func valueStep(i int, v float64, prec int) Step {
	return Step{
		Kind: StepValue, Phase: PhaseBackSubstitution, Row: i, PivotRow: NoRow, Value: v,
		Text: formatValue(i, v, prec),
	}
}

// formatValue renders "x{i+1} = v" with prec decimals.
func formatValue(i int, v float64, prec int) string {
	return fmt.Sprintf(fmtValue, i+1, prec, v)
}
