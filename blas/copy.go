package blas

// Copy writes the first dst.N elements of src into dst, element for element
// in forward order, each side traversed by its own stride.
//
// Precondition: src.N >= dst.N. The operation trusts the caller and reads
// src as far as the destination length demands; a shorter source is
// undefined behavior (in practice a bounds-check panic).
func Copy[T Elem](src, dst Vector[T]) {
	kinds[T]().copy(dst.N, src.Data, src.Inc, dst.Data, dst.Inc)
}

// CopyMat copies dst.Rows*dst.Cols elements from src into dst, treating both
// matrices as contiguous unit-stride flat vectors.
//
// Precondition: src holds at least dst.Rows*dst.Cols elements.
func CopyMat[T Elem](src, dst Matrix[T]) {
	kinds[T]().copy(dst.Rows*dst.Cols, src.Data, 1, dst.Data, 1)
}
