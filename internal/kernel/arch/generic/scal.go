package generic

// Sscal scales the first n elements of x in place: x[i] *= alpha.
// This is the pure Go fallback implementation.
func Sscal(n int, alpha float32, x []float32, incX int) {
	if n <= 0 {
		return
	}
	ix := 0
	for i := 0; i < n; i++ {
		x[ix] *= alpha
		ix += incX
	}
}

// Dscal scales the first n elements of x in place: x[i] *= alpha.
func Dscal(n int, alpha float64, x []float64, incX int) {
	if n <= 0 {
		return
	}
	ix := 0
	for i := 0; i < n; i++ {
		x[ix] *= alpha
		ix += incX
	}
}

// Cscal scales the first n elements of x in place: x[i] *= alpha.
// A real-valued scale factor is expressed as complex(a, 0) by the caller.
func Cscal(n int, alpha complex64, x []complex64, incX int) {
	if n <= 0 {
		return
	}
	ix := 0
	for i := 0; i < n; i++ {
		x[ix] *= alpha
		ix += incX
	}
}

// Zscal scales the first n elements of x in place: x[i] *= alpha.
func Zscal(n int, alpha complex128, x []complex128, incX int) {
	if n <= 0 {
		return
	}
	ix := 0
	for i := 0; i < n; i++ {
		x[ix] *= alpha
		ix += incX
	}
}
