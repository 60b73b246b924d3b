// Package gates constructs the standard quantum gates as qmat matrices:
// the fixed single- and two-qubit set (X, Y, Z, H, S, T, CNOT, CZ, SWAP)
// and the qudit family parametrized by dimension (Id, Xd shift, Zd clock,
// Fd Fourier), plus the generalized controlled gate CTRL.
//
// Constructors return fresh matrices on every call; mutating a returned
// gate never affects later calls. The fixed qubit gates cannot fail and
// return the matrix alone; parametrized constructors validate their
// arguments and return catalog errors (DimsInvalid for a bad dimension,
// MatrixNotSquare / DimsMismatchMatrix / SubsysMismatchDims for a bad CTRL
// configuration).
//
// Conventions follow the Fourier picture: ω = exp(2πi/d), Xd|j⟩ = |j+1 mod
// d⟩, Zd|j⟩ = ω^j|j⟩, Fd|j⟩ = d^{-1/2} Σ_k ω^{jk}|k⟩. For d = 2 these
// reduce to X, Z and H.
package gates
