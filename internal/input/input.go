// SPDX-License-Identifier: MIT

// Package input decodes the system document read by the gauss CLI.
//
// The document is YAML (JSON is accepted as its subset) in one of two forms:
//
//	systems:
//	  - name: textbook
//	    rows: [[2, 1, 1, 5], [4, -6, 0, -2], [-2, 7, 2, 9]]
//	  - rows: [[5, 10]]
//
// or, for a single system,
//
//	rows: [[2, 1, 1, 5], [4, -6, 0, -2], [-2, 7, 2, 9]]
//
// Every system becomes a fresh *matrix.Dense; shape checks beyond
// rectangularity are left to the solver.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gauss/matrix"
)

var (
	// ErrEmptyDocument indicates a document with neither systems nor rows.
	ErrEmptyDocument = errors.New("input: document declares no systems")

	// ErrAmbiguousDocument indicates a document with both systems and rows.
	ErrAmbiguousDocument = errors.New("input: document declares both systems and rows")

	// ErrMalformed indicates a document that could not be decoded.
	ErrMalformed = errors.New("input: malformed document")
)

// DefaultSingleName names the system of a top-level rows document.
const DefaultSingleName = "system"

// System is one named augmented matrix.
type System struct {
	Name   string
	Matrix *matrix.Dense
}

type document struct {
	Systems []systemDoc `yaml:"systems"`
	Rows    [][]float64 `yaml:"rows"`
}

type systemDoc struct {
	Name string      `yaml:"name"`
	Rows [][]float64 `yaml:"rows"`
}

// Decode reads one document from r. Unknown keys are rejected.
//
// Errors: ErrMalformed, ErrEmptyDocument, ErrAmbiguousDocument, or a
// matrix error (ErrInvalidDimensions, ErrRaggedRows, ErrNaNInf) tagged with
// the system name.
func Decode(r io.Reader) ([]System, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	switch {
	case doc.Rows != nil && doc.Systems != nil:
		return nil, ErrAmbiguousDocument
	case doc.Rows != nil:
		doc.Systems = []systemDoc{{Name: DefaultSingleName, Rows: doc.Rows}}
	case len(doc.Systems) == 0:
		return nil, ErrEmptyDocument
	}

	out := make([]System, len(doc.Systems))
	for i, sd := range doc.Systems {
		name := sd.Name
		if name == "" {
			name = fmt.Sprintf("%s-%d", DefaultSingleName, i+1)
		}
		m, err := matrix.NewDenseFrom(sd.Rows)
		if err != nil {
			return nil, fmt.Errorf("input: %s: %w", name, err)
		}
		out[i] = System{Name: name, Matrix: m}
	}

	return out, nil
}

// ReadFile decodes the document at path; "-" reads stdin.
func ReadFile(path string, stdin io.Reader) ([]System, error) {
	if path == "-" {
		return Decode(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Matrices returns the matrices of systems in order.
func Matrices(systems []System) []*matrix.Dense {
	out := make([]*matrix.Dense, len(systems))
	for i, s := range systems {
		out[i] = s.Matrix
	}

	return out
}
