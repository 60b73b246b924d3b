// Package qop implements operations on multipartite states: applying gates
// to selected subsystems, permuting subsystems, computational-basis
// measurement, projectors and partial traces.
//
// States are qmat.Dense values: kets as column vectors, density matrices as
// square matrices. Every operation validates its arguments up front and
// reports the first violated precondition as a qerr error carrying the
// operation name as origin; inputs are never modified.
//
// Measurement sampling is deterministic: Measure takes an explicit seed, so
// equal inputs and seeds give equal outcomes. There is no global RNG.
package qop
