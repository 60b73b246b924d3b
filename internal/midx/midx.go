// Package midx holds the unchecked mixed-radix conversions used in hot
// loops by gates and qop. Callers guarantee every index is in range; the
// checked public surface lives in qdim.
package midx

// ToMulti fills out with the row-major digits of n under the given radices:
// the last subsystem varies fastest. len(out) must equal len(dims).
func ToMulti(n int, dims, out []int) {
	for i := len(dims) - 1; i >= 0; i-- {
		out[i] = n % dims[i]
		n /= dims[i]
	}
}

// ToFlat folds row-major digits back into a flat index, the inverse of
// ToMulti.
func ToFlat(digits, dims []int) int {
	n := 0
	for i := range dims {
		n = n*dims[i] + digits[i]
	}
	return n
}

// Prod returns the product over dims of the selected labels.
func Prod(dims, labels []int) int {
	p := 1
	for _, s := range labels {
		p *= dims[s]
	}
	return p
}
