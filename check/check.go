package check

import (
	"github.com/gitter-badger/qpp/qdim"
	"github.com/gitter-badger/qpp/qerr"
	"github.com/gitter-badger/qpp/qmat"
)

// NonZero fails with ZeroSize when the matrix is nil or empty.
func NonZero(m *qmat.Dense, where string) error {
	if m.Size() == 0 {
		return qerr.New(qerr.ZeroSize, where)
	}
	return nil
}

// NonEmpty fails with ZeroSize when the index list has no entries.
func NonEmpty(xs []int, where string) error {
	if len(xs) == 0 {
		return qerr.New(qerr.ZeroSize, where)
	}
	return nil
}

// Square fails with MatrixNotSquare unless m is square.
func Square(m *qmat.Dense, where string) error {
	if !m.IsSquare() {
		return qerr.New(qerr.MatrixNotSquare, where)
	}
	return nil
}

// Cvector fails with MatrixNotCvector unless m is a column vector.
func Cvector(m *qmat.Dense, where string) error {
	if !m.IsCvector() {
		return qerr.New(qerr.MatrixNotCvector, where)
	}
	return nil
}

// Rvector fails with MatrixNotRvector unless m is a row vector.
func Rvector(m *qmat.Dense, where string) error {
	if !m.IsRvector() {
		return qerr.New(qerr.MatrixNotRvector, where)
	}
	return nil
}

// Vector fails with MatrixNotVector unless m is a vector of either
// orientation.
func Vector(m *qmat.Dense, where string) error {
	if !m.IsVector() {
		return qerr.New(qerr.MatrixNotVector, where)
	}
	return nil
}

// SquareOrCvector fails with MatrixNotSquareNorCvector unless m is square or
// a column vector — the admissible shapes for a state argument that may be a
// density matrix or a ket.
func SquareOrCvector(m *qmat.Dense, where string) error {
	if !m.IsSquare() && !m.IsCvector() {
		return qerr.New(qerr.MatrixNotSquareNorCvector, where)
	}
	return nil
}

// SquareOrRvector fails with MatrixNotSquareNorRvector unless m is square or
// a row vector.
func SquareOrRvector(m *qmat.Dense, where string) error {
	if !m.IsSquare() && !m.IsRvector() {
		return qerr.New(qerr.MatrixNotSquareNorRvector, where)
	}
	return nil
}

// SquareOrVector fails with MatrixNotSquareNorVector unless m is square or a
// vector of either orientation.
func SquareOrVector(m *qmat.Dense, where string) error {
	if !m.IsSquare() && !m.IsVector() {
		return qerr.New(qerr.MatrixNotSquareNorVector, where)
	}
	return nil
}

// QubitMatrix fails with NotQubitMatrix unless m is exactly 2×2.
func QubitMatrix(m *qmat.Dense, where string) error {
	if !m.IsQubitMatrix() {
		return qerr.New(qerr.NotQubitMatrix, where)
	}
	return nil
}

// QubitCvector fails with NotQubitCvector unless m is exactly 2×1.
func QubitCvector(m *qmat.Dense, where string) error {
	if !m.IsQubitCvector() {
		return qerr.New(qerr.NotQubitCvector, where)
	}
	return nil
}

// QubitRvector fails with NotQubitRvector unless m is exactly 1×2.
func QubitRvector(m *qmat.Dense, where string) error {
	if !m.IsQubitRvector() {
		return qerr.New(qerr.NotQubitRvector, where)
	}
	return nil
}

// QubitVector fails with NotQubitVector unless m is 2×1 or 1×2.
func QubitVector(m *qmat.Dense, where string) error {
	if !m.IsQubitVector() {
		return qerr.New(qerr.NotQubitVector, where)
	}
	return nil
}

// QubitSubsys fails with NotQubitSubsys unless every selected subsystem is
// 2-dimensional. Labels outside dims count as violations.
func QubitSubsys(subsys, dims []int, where string) error {
	for _, s := range subsys {
		if s < 0 || s >= len(dims) || dims[s] != 2 {
			return qerr.New(qerr.NotQubitSubsys, where)
		}
	}
	return nil
}

// Dims fails with DimsInvalid unless dims is non-empty with no zero entry.
func Dims(dims []int, where string) error {
	if !qdim.Valid(dims) {
		return qerr.New(qerr.DimsInvalid, where)
	}
	return nil
}

// DimsEqual fails with DimsNotEqual unless the two lists agree entry by
// entry.
func DimsEqual(a, b []int, where string) error {
	if !qdim.Equal(a, b) {
		return qerr.New(qerr.DimsNotEqual, where)
	}
	return nil
}

// DimsMatchMat fails with DimsMismatchMatrix unless the product of dims
// equals the row count of the (square) matrix.
func DimsMatchMat(dims []int, m *qmat.Dense, where string) error {
	if qdim.Prod(dims) != m.Rows() {
		return qerr.New(qerr.DimsMismatchMatrix, where)
	}
	return nil
}

// DimsMatchCvector fails with DimsMismatchCvector unless the product of dims
// equals the length of the column vector.
func DimsMatchCvector(dims []int, v *qmat.Dense, where string) error {
	if qdim.Prod(dims) != v.Rows() {
		return qerr.New(qerr.DimsMismatchCvector, where)
	}
	return nil
}

// DimsMatchRvector fails with DimsMismatchRvector unless the product of dims
// equals the length of the row vector.
func DimsMatchRvector(dims []int, v *qmat.Dense, where string) error {
	if qdim.Prod(dims) != v.Cols() {
		return qerr.New(qerr.DimsMismatchRvector, where)
	}
	return nil
}

// DimsMatchVector fails with DimsMismatchVector unless the product of dims
// equals the element count of the vector, whichever its orientation.
func DimsMatchVector(dims []int, v *qmat.Dense, where string) error {
	if qdim.Prod(dims) != v.Size() {
		return qerr.New(qerr.DimsMismatchVector, where)
	}
	return nil
}

// Subsys fails with SubsysMismatchDims unless subsys is a duplicate-free
// selection of labels in [0, len(dims)).
func Subsys(subsys, dims []int, where string) error {
	if !qdim.SubsysValid(subsys, len(dims)) {
		return qerr.New(qerr.SubsysMismatchDims, where)
	}
	return nil
}

// MatrixMatchSubsys fails with MatrixMismatchSubsys unless the gate's row
// count equals the total dimension of the selected subsystems. Labels
// outside dims fail with SubsysMismatchDims.
func MatrixMatchSubsys(a *qmat.Dense, subsys, dims []int, where string) error {
	p := 1
	for _, s := range subsys {
		if s < 0 || s >= len(dims) {
			return qerr.New(qerr.SubsysMismatchDims, where)
		}
		p *= dims[s]
	}
	if a.Rows() != p {
		return qerr.New(qerr.MatrixMismatchSubsys, where)
	}
	return nil
}

// Perm fails with PermInvalid unless perm is a permutation of 0..n-1.
func Perm(perm []int, where string) error {
	if !qdim.IsPerm(perm) {
		return qerr.New(qerr.PermInvalid, where)
	}
	return nil
}

// PermMatchDims fails with PermMismatchDims unless the permutation has one
// entry per subsystem.
func PermMatchDims(perm, dims []int, where string) error {
	if len(perm) != len(dims) {
		return qerr.New(qerr.PermMismatchDims, where)
	}
	return nil
}

// Bipartite fails with NotBipartite unless dims describes exactly two
// parts.
func Bipartite(dims []int, where string) error {
	if len(dims) != 2 {
		return qerr.New(qerr.NotBipartite, where)
	}
	return nil
}

// SameSize fails with SizeMismatch unless a and b share both row and column
// counts.
func SameSize(a, b *qmat.Dense, where string) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return qerr.New(qerr.SizeMismatch, where)
	}
	return nil
}
