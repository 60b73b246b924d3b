package qdim

// Prod returns the product of all entries, i.e. the total dimension of the
// tensor product described by dims. The empty product is 1; emptiness is a
// validity question and belongs to Valid.
// Complexity: O(n).
func Prod(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}
	return p
}

// Uniform returns a dimension list of n subsystems of dimension d each, the
// common case of n qudits. Non-positive n yields an empty list.
// Complexity: O(n).
func Uniform(n, d int) []int {
	if n < 0 {
		n = 0
	}
	dims := make([]int, n)
	for i := range dims {
		dims[i] = d
	}
	return dims
}

// Valid reports whether dims is a usable dimension list: non-empty with no
// zero entry.
// Complexity: O(n).
func Valid(dims []int) bool {
	if len(dims) == 0 {
		return false
	}
	for _, d := range dims {
		if d < 1 {
			return false
		}
	}
	return true
}

// Equal reports whether two dimension lists agree entry by entry.
// Complexity: O(n).
func Equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsPerm reports whether perm is a permutation of 0..len(perm)-1. The empty
// list is not a permutation.
// Complexity: O(n) time, O(n) space.
func IsPerm(perm []int) bool {
	n := len(perm)
	if n == 0 {
		return false
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}

// SubsysValid reports whether subsys is a usable subsystem selection out of
// n subsystems: no more than n labels, no duplicates, every label in
// [0, n). The empty selection is valid here; operations that require at
// least one target guard emptiness separately.
// Complexity: O(len(subsys)) time, O(n) space.
func SubsysValid(subsys []int, n int) bool {
	if len(subsys) > n || n < 0 {
		return false
	}
	seen := make([]bool, n)
	for _, s := range subsys {
		if s < 0 || s >= n || seen[s] {
			return false
		}
		seen[s] = true
	}
	return true
}
