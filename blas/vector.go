package blas

// Elem is the closed set of supported element kinds. The kind is fixed per
// instantiation; operands of one call never mix kinds.
type Elem interface {
	float32 | float64 | complex64 | complex128
}

// Real is the subset of element kinds for which planar rotation is defined.
type Real interface {
	float32 | float64
}

// Vector is a non-owning strided view over caller-allocated storage.
// Element i lives at Data[i*Inc]. The view assumes Inc >= 1 and
// len(Data) >= (N-1)*Inc+1; it carries no state between calls and must not
// outlive the backing slice.
type Vector[T Elem] struct {
	// Data is the base of the backing storage. Not copied, not owned.
	Data []T

	// N is the logical element count.
	N int

	// Inc is the element stride between logically consecutive entries.
	Inc int
}

// NewVector returns a unit-stride view covering all of data.
func NewVector[T Elem](data []T) Vector[T] {
	return Vector[T]{Data: data, N: len(data), Inc: 1}
}

// Matrix is a non-owning view of a dense Rows x Cols matrix stored
// contiguously in column-major order.
type Matrix[T Elem] struct {
	// Data is the base of the backing storage, len >= Rows*Cols.
	Data []T

	// Rows and Cols are the matrix dimensions.
	Rows, Cols int
}

// NewMatrix returns a view of data as a rows x cols column-major matrix.
// Panics if data is shorter than rows*cols.
func NewMatrix[T Elem](data []T, rows, cols int) Matrix[T] {
	if len(data) < rows*cols {
		panic("blas: matrix storage shorter than rows*cols")
	}
	return Matrix[T]{Data: data, Rows: rows, Cols: cols}
}

// Flat reinterprets the matrix as a contiguous unit-stride vector of
// Rows*Cols elements, making every vector operation applicable to matrices.
func (m Matrix[T]) Flat() Vector[T] {
	return Vector[T]{Data: m.Data, N: m.Rows * m.Cols, Inc: 1}
}
