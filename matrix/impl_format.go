// SPDX-License-Identifier: MIT

// Package matrix - fixed-width rendering.
//
// Purpose:
//   - Render a Dense as a bracketed, right-aligned grid suitable for step traces:
//
//	[[  2.0000   1.0000   1.0000   5.0000]
//	 [  0.0000  -8.0000  -2.0000 -12.0000]]
//
//     (every cell is padded to the widest cell, so columns line up).
//   - Values that round to zero are printed without a sign ("-0.0000" → "0.0000").

package matrix

import (
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen    = "["
	_fmtClose   = "]"
	_fmtSep     = " "
	_fmtNewline = "\n"
	_fmtIndent  = " "
)

// Format renders m with prec decimals per cell (negative prec → DefaultFormatPrecision).
// Deterministic: fixed i→j order, no locale dependence.
// Complexity: O(r*c) time and space.
func (m *Dense) Format(prec int) string {
	if prec < 0 {
		prec = DefaultFormatPrecision
	}

	// Pass 1: format every cell once and track the widest one.
	cells := make([]string, len(m.data))
	width := 0
	for idx, v := range m.data {
		s := trimNegativeZero(strconv.FormatFloat(v, 'f', prec, 64))
		cells[idx] = s
		if len(s) > width {
			width = len(s)
		}
	}

	// Pass 2: emit rows, right-aligning each cell to width.
	var b strings.Builder
	b.Grow(m.r * (m.c*(width+1) + 3))
	b.WriteString(_fmtOpen)
	var i, j int
	for i = 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtNewline)
			b.WriteString(_fmtIndent)
		}
		b.WriteString(_fmtOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			s := cells[i*m.c+j]
			b.WriteString(strings.Repeat(" ", width-len(s)))
			b.WriteString(s)
		}
		b.WriteString(_fmtClose)
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// trimNegativeZero drops the sign from strings like "-0.0000".
func trimNegativeZero(s string) string {
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}

	return s
}
