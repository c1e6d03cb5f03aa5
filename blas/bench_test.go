package blas

import "testing"

func BenchmarkDot(b *testing.B) {
	for _, bs := range benchSizes {
		x := make([]float64, bs.size)
		y := make([]float64, bs.size)
		for i := range x {
			x[i] = float64(i%7) - 3
			y[i] = float64(i%5) - 2
		}
		vx, vy := NewVector(x), NewVector(y)

		b.Run(bs.name, func(b *testing.B) {
			var sink float64
			for i := 0; i < b.N; i++ {
				sink = Dot(vx, vy)
			}
			_ = sink
		})
	}
}

func BenchmarkAxpy(b *testing.B) {
	for _, bs := range benchSizes {
		x := make([]float64, bs.size)
		y := make([]float64, bs.size)
		for i := range x {
			x[i] = float64(i%7) - 3
		}
		vx, vy := NewVector(x), NewVector(y)

		b.Run(bs.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Axpy(1.0001, vx, vy)
			}
		})
	}
}

func BenchmarkNrm2(b *testing.B) {
	for _, bs := range benchSizes {
		x := make([]float64, bs.size)
		for i := range x {
			x[i] = float64(i%9) - 4
		}
		vx := NewVector(x)

		b.Run(bs.name, func(b *testing.B) {
			var sink float64
			for i := 0; i < b.N; i++ {
				sink = Nrm2(vx)
			}
			_ = sink
		})
	}
}

func BenchmarkDotcComplex(b *testing.B) {
	for _, bs := range benchSizes {
		x := make([]complex128, bs.size)
		y := make([]complex128, bs.size)
		for i := range x {
			x[i] = complex(float64(i%7)-3, float64(i%3)-1)
			y[i] = complex(float64(i%5)-2, float64(i%4)-2)
		}
		vx, vy := NewVector(x), NewVector(y)

		b.Run(bs.name, func(b *testing.B) {
			var sink complex128
			for i := 0; i < b.N; i++ {
				sink = Dotc(vx, vy)
			}
			_ = sink
		})
	}
}
