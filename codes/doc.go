// Package codes builds the logical codewords of the standard small quantum
// error-correcting codes: the 5-qubit perfect code, the 7-qubit Steane code
// and the 9-qubit Shor code.
//
// Codewords are constructed, not transcribed: |0_L⟩ is the projection of
// |0...0⟩ onto the joint +1 eigenspace of the stabilizer generators and
// the logical Z, normalized, and |1_L⟩ is the logical X image of |0_L⟩.
// The construction
// is verified in the tests against the defining properties (unit norm,
// mutual orthogonality, invariance under every generator).
package codes
