// Package states constructs commonly used kets: computational basis states,
// the maximally entangled two-qudit state, and seeded random states.
//
// Every constructor returns a fresh normalized column vector. Randomness is
// explicit and reproducible: RandKet takes a seed, never a global source,
// so a fixed seed fixes the state across runs and platforms.
package states
