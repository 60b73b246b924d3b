// SPDX-License-Identifier: MIT

package qmat_test

import (
	"testing"

	"github.com/gitter-badger/qpp/qmat"
)

func benchMatrix(b *testing.B, n int) *qmat.Dense {
	b.Helper()
	data := make([]complex128, n*n)
	for i := range data {
		data[i] = complex(float64(i%7)-3, float64(i%5)-2)
	}
	m, err := qmat.FromSlice(n, n, data)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func BenchmarkMul_16(b *testing.B) {
	m := benchMatrix(b, 16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := qmat.Mul(m, m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKron_8(b *testing.B) {
	m := benchMatrix(b, 8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := qmat.Kron(m, m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPow_8(b *testing.B) {
	m := benchMatrix(b, 8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := qmat.Pow(m, 16); err != nil {
			b.Fatal(err)
		}
	}
}
