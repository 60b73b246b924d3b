// SPDX-License-Identifier: MIT

// Package qerr - the Error value, construction and matching helpers.

package qerr

import "errors"

// Error is one reported precondition violation: a Kind plus the origin that
// detected it, and for Custom a free-form detail. The value is immutable
// after construction; all methods are pure and safe for concurrent use.
type Error struct {
	kind   Kind
	where  string // origin, stored verbatim (may be empty)
	detail string // set only by NewCustom
}

// Error implements the error interface.
var _ error = Error{}

// New builds an Error of a fixed Kind with the given origin. The origin is
// stored verbatim; empty is legal. New cannot fail. Passing Custom yields a
// custom error with an empty detail, equivalent to NewCustom(where, "").
// Complexity: O(1).
func New(kind Kind, where string) Error {
	return Error{kind: kind, where: where}
}

// NewCustom builds the free-form variant: its description is
// "CUSTOM EXCEPTION " followed by detail, byte for byte. Both arguments are
// stored verbatim and may be empty.
// Complexity: O(1).
func NewCustom(where, detail string) Error {
	return Error{kind: Custom, where: where, detail: detail}
}

// Kind returns the discriminant, fixed for the lifetime of the value.
func (e Error) Kind() Kind { return e.kind }

// Where returns the origin string exactly as supplied at construction.
func (e Error) Where() string { return e.where }

// Detail returns the caller-supplied detail; empty for every Kind except
// those built with NewCustom.
func (e Error) Detail() string { return e.detail }

// Describe returns the fixed description for the value's Kind; for Custom,
// the detail is appended to the "CUSTOM EXCEPTION " template. Repeated calls
// on the same value return identical strings.
// Complexity: O(1) for fixed kinds, O(len(detail)) for Custom.
func (e Error) Describe() string {
	if e.kind == Custom {
		return customPrefix + e.detail
	}
	return e.kind.Description()
}

// Render combines an origin with the description into the canonical
// diagnostic form:
//
//	"IN " + where + ": " + Describe() + "!"
//
// Exact punctuation and field order are load-bearing; log scrapers and the
// tests match this text verbatim. The string is computed fresh on every
// call; nothing is cached and no internal buffer is exposed.
func (e Error) Render(where string) string {
	return "IN " + where + ": " + e.Describe() + "!"
}

// Error renders the diagnostic using the origin stored at construction.
// This is the text observed through the error interface.
func (e Error) Error() string {
	return e.Render(e.where)
}

// Is reports whether target carries the same Kind, making errors.Is match on
// the discriminant alone: both a bare Kind and any Error of equal Kind are
// accepted, regardless of origin or detail.
func (e Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.kind == t
	case Error:
		return e.kind == t.kind
	default:
		return false
	}
}

// KindOf extracts the Kind from err or anything it wraps. The second return
// is false when no cataloged value is found, in which case the Kind is
// Unknown.
// Complexity: O(depth of the wrap chain).
func KindOf(err error) (Kind, bool) {
	var e Error
	if errors.As(err, &e) {
		return e.kind, true
	}
	var k Kind
	if errors.As(err, &k) {
		return k, true
	}
	return Unknown, false
}
