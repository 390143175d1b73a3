// Package mshadow provides device-polymorphic random number generation for
// multi-dimensional numeric buffers. A Random engine is bound to a compute
// device and a seed; it fills caller-owned tensors with uniform or Gaussian
// values and can hand out transient random expressions backed by a shared
// scratch buffer.
package mshadow

import "fmt"

// Float constrains the element precision of tensors and engines.
type Float interface {
	~float32 | ~float64
}

// Shape describes the dimensions of a tensor. Shape[0] is the contiguous
// (innermost) dimension; higher indices are outer dimensions.
type Shape []int

// Size returns the total number of elements described by the shape.
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Cols returns the flattened outer-dimension count, i.e. the number of
// contiguous columns of length Shape[0] the tensor decomposes into.
func (s Shape) Cols() int {
	n := 1
	for _, d := range s[1:] {
		n *= d
	}
	return n
}

// Tensor is a view over a flat numeric buffer with a shape and a leading
// stride. Stride is the element distance between consecutive columns and is
// at least Shape[0]; views into padded storage have Stride > Shape[0].
type Tensor[T Float] struct {
	Data   []T
	Shape  Shape
	Stride int
}

// NewTensor allocates a contiguous tensor of the given shape (Stride equals
// the leading dimension). The shape must have rank >= 1 with positive dims.
func NewTensor[T Float](shape Shape) Tensor[T] {
	if len(shape) == 0 {
		panic("mshadow: tensor shape must have rank >= 1")
	}
	for _, d := range shape {
		if d <= 0 {
			panic(fmt.Sprintf("mshadow: invalid tensor shape %v", shape))
		}
	}
	return Tensor[T]{
		Data:   make([]T, shape.Size()),
		Shape:  append(Shape(nil), shape...),
		Stride: shape[0],
	}
}

// Matrix is a tensor reduced to Rows x Cols for per-column processing.
type Matrix[T Float] struct {
	Rows, Cols, Stride int
	Data               []T
}

// FlatTo2D reduces the tensor to a 2D view: Rows is the contiguous leading
// dimension, Cols is the product of all outer dimensions.
func (t Tensor[T]) FlatTo2D() Matrix[T] {
	return Matrix[T]{
		Rows:   t.Shape[0],
		Cols:   t.Shape.Cols(),
		Stride: t.Stride,
		Data:   t.Data,
	}
}

// Col returns the i-th column as a contiguous slice of length Rows.
func (m Matrix[T]) Col(i int) []T {
	off := i * m.Stride
	return m.Data[off : off+m.Rows]
}
