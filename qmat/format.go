// SPDX-License-Identifier: MIT

// Package qmat - plain-text display of numerical values.

package qmat

import (
	"fmt"
	"strings"

	"github.com/gitter-badger/qpp/qerr"
)

// defaultChop zeroes display noise: components smaller in magnitude are
// printed as 0. Underlying data is never modified.
const defaultChop = 1e-10

// fmtComplex renders one amplitude compactly: pure reals drop the imaginary
// part, pure imaginaries drop the real part, exact zeros print as "0".
func fmtComplex(z complex128) string {
	re, im := real(z), imag(z)
	if re < defaultChop && re > -defaultChop {
		re = 0
	}
	if im < defaultChop && im > -defaultChop {
		im = 0
	}
	switch {
	case re == 0 && im == 0:
		return "0"
	case im == 0:
		return fmt.Sprintf("%g", re)
	case re == 0:
		return fmt.Sprintf("%gi", im)
	default:
		return fmt.Sprintf("%g%+gi", re, im)
	}
}

// String renders the matrix one bracketed row per line.
func (m *Dense) String() string {
	if m == nil {
		return "[]"
	}
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(fmtComplex(m.data[i*m.cols+j]))
		}
		sb.WriteString("]")
		if i < m.rows-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Format renders a value of any supported dynamic type for terminal output:
// matrices row by row, slices as bracketed lists, scalars bare. A type with
// no display form yields UndefinedType.
// Complexity: O(size of the value).
func Format(v any) (string, error) {
	switch x := v.(type) {
	case *Dense:
		return x.String(), nil
	case []complex128:
		parts := make([]string, len(x))
		for i, z := range x {
			parts[i] = fmtComplex(z)
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case []float64:
		parts := make([]string, len(x))
		for i, f := range x {
			parts[i] = fmtComplex(complex(f, 0))
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case []int:
		parts := make([]string, len(x))
		for i, n := range x {
			parts[i] = fmt.Sprintf("%d", n)
		}
		return "[" + strings.Join(parts, " ") + "]", nil
	case complex128:
		return fmtComplex(x), nil
	case float64:
		return fmtComplex(complex(x, 0)), nil
	case int:
		return fmt.Sprintf("%d", x), nil
	default:
		return "", qerr.New(qerr.UndefinedType, "qmat.Format")
	}
}
