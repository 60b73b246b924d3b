// SPDX-License-Identifier: MIT

// Package qmat - Dense storage (row-major) and safe accessors.

package qmat

import (
	"github.com/gitter-badger/qpp/qerr"
)

// Dense is a row-major complex matrix. rows and cols are at least 1 for any
// constructed value; data holds rows*cols elements with the explicit index
// formula i*cols + j.
type Dense struct {
	rows, cols int
	data       []complex128 // flat backing storage, length == rows*cols
}

// New creates a rows×cols zero matrix. A non-positive dimension yields
// ZeroSize.
// Complexity: O(rows*cols).
func New(rows, cols int) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, qerr.New(qerr.ZeroSize, "qmat.New")
	}
	return &Dense{rows: rows, cols: cols, data: make([]complex128, rows*cols)}, nil
}

// FromSlice creates a rows×cols matrix from row-major data. The slice is
// copied; the caller keeps ownership of its argument. A non-positive
// dimension yields ZeroSize, a length disagreement SizeMismatch.
// Complexity: O(rows*cols).
func FromSlice(rows, cols int, data []complex128) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, qerr.New(qerr.ZeroSize, "qmat.FromSlice")
	}
	if len(data) != rows*cols {
		return nil, qerr.New(qerr.SizeMismatch, "qmat.FromSlice")
	}
	d := make([]complex128, len(data))
	copy(d, data)
	return &Dense{rows: rows, cols: cols, data: d}, nil
}

// Identity creates the n×n identity matrix. Non-positive n yields ZeroSize.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, qerr.New(qerr.ZeroSize, "qmat.Identity")
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Ket creates a column vector (n×1 matrix) from its amplitudes. No
// amplitudes yields ZeroSize. The amplitudes are copied verbatim; callers
// normalize if needed.
// Complexity: O(n).
func Ket(amps ...complex128) (*Dense, error) {
	if len(amps) == 0 {
		return nil, qerr.New(qerr.ZeroSize, "qmat.Ket")
	}
	return FromSlice(len(amps), 1, amps)
}

// Bra creates a row vector (1×n matrix) from its amplitudes. No amplitudes
// yields ZeroSize.
// Complexity: O(n).
func Bra(amps ...complex128) (*Dense, error) {
	if len(amps) == 0 {
		return nil, qerr.New(qerr.ZeroSize, "qmat.Bra")
	}
	return FromSlice(1, len(amps), amps)
}

// Rows returns the row count; 0 for a nil matrix.
func (m *Dense) Rows() int {
	if m == nil {
		return 0
	}
	return m.rows
}

// Cols returns the column count; 0 for a nil matrix.
func (m *Dense) Cols() int {
	if m == nil {
		return 0
	}
	return m.cols
}

// Size returns the total element count rows*cols; 0 for a nil matrix.
func (m *Dense) Size() int {
	if m == nil {
		return 0
	}
	return m.rows * m.cols
}

// At returns the element at row i, column j. Indices outside the matrix
// yield OutOfRange.
// Complexity: O(1).
func (m *Dense) At(i, j int) (complex128, error) {
	if m == nil || i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, qerr.New(qerr.OutOfRange, "qmat.At")
	}
	return m.data[i*m.cols+j], nil
}

// Set stores v at row i, column j. Indices outside the matrix yield
// OutOfRange.
// Complexity: O(1).
func (m *Dense) Set(i, j int, v complex128) error {
	if m == nil || i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return qerr.New(qerr.OutOfRange, "qmat.Set")
	}
	m.data[i*m.cols+j] = v
	return nil
}

// Clone returns an independent deep copy; nil clones to nil.
// Complexity: O(rows*cols).
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	d := make([]complex128, len(m.data))
	copy(d, m.data)
	return &Dense{rows: m.rows, cols: m.cols, data: d}
}

// Raw returns a copy of the row-major backing data. Mutating the returned
// slice does not affect the matrix.
// Complexity: O(rows*cols).
func (m *Dense) Raw() []complex128 {
	if m == nil {
		return nil
	}
	d := make([]complex128, len(m.data))
	copy(d, m.data)
	return d
}

// Shape predicates. All report false on a nil matrix.

// IsSquare reports rows == cols.
func (m *Dense) IsSquare() bool { return m != nil && m.rows == m.cols }

// IsCvector reports a column vector shape (n×1).
func (m *Dense) IsCvector() bool { return m != nil && m.cols == 1 }

// IsRvector reports a row vector shape (1×n).
func (m *Dense) IsRvector() bool { return m != nil && m.rows == 1 }

// IsVector reports either vector shape.
func (m *Dense) IsVector() bool { return m.IsCvector() || m.IsRvector() }

// IsQubitMatrix reports the exact 2×2 shape.
func (m *Dense) IsQubitMatrix() bool { return m != nil && m.rows == 2 && m.cols == 2 }

// IsQubitCvector reports the exact 2×1 shape.
func (m *Dense) IsQubitCvector() bool { return m != nil && m.rows == 2 && m.cols == 1 }

// IsQubitRvector reports the exact 1×2 shape.
func (m *Dense) IsQubitRvector() bool { return m != nil && m.rows == 1 && m.cols == 2 }

// IsQubitVector reports either qubit vector shape.
func (m *Dense) IsQubitVector() bool { return m.IsQubitCvector() || m.IsQubitRvector() }
