// Package qpp is a small qudit toolkit built around one idea: every
// precondition a numerical routine can violate has exactly one typed error,
// and every such error renders the same way.
//
// 🚀 What is qpp?
//
//	A pure-Go library for matrices, multipartite states and the typed
//	error catalog underneath them:
//		• qerr  — the closed error catalog: Kind, Error, "IN <origin>: <description>!"
//		• qmat  — dense complex matrices: kets, bras, Kron, Adjoint, Pow
//		• qdim  — dimension lists & mixed-radix multi-indices
//		• check — origin-threading validators, one error kind each
//		• gates — qubit gates plus the qudit family Xd, Zd, Fd and CTRL
//		• states — Zero, Basis, Mes, Bell, seeded RandKet
//		• qop   — Apply, SysPermute, Measure, PTrace, NormDiff
//		• codes — five-qubit, Steane and Shor codewords, built from stabilizers
//
// ✨ Why choose qpp?
//
//   - Closed error taxonomy — match any failure with errors.Is(err, qerr.<Kind>)
//   - Deterministic by default — explicit seeds, no global RNG, no hidden state
//   - Pure Go — no cgo, values are immutable after construction
//   - Exercised end to end — qudit teleportation runs in the tests and the CLI
//
// Quick error-handling example:
//
//	_, err := qop.Apply(state, gate, []int{0}, dims)
//	if errors.Is(err, qerr.MatrixMismatchSubsys) {
//		// gate side disagrees with the targeted subsystems
//	}
//
// The demo CLI lives in cmd/qpp: render the catalog with `qpp kinds`, run
// teleportation with `qpp teleport`, print codewords with `qpp codes`.
//
//	go get github.com/gitter-badger/qpp
package qpp
