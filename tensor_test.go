package mshadow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeSize(t *testing.T) {
	assert.Equal(t, 12, Shape{4, 3}.Size())
	assert.Equal(t, 24, Shape{2, 3, 4}.Size())
	assert.Equal(t, 7, Shape{7}.Size())
}

func TestShapeCols(t *testing.T) {
	assert.Equal(t, 1, Shape{7}.Cols())
	assert.Equal(t, 3, Shape{4, 3}.Cols())
	assert.Equal(t, 12, Shape{2, 3, 4}.Cols())
}

func TestNewTensorContiguous(t *testing.T) {
	tn := NewTensor[float64](Shape{4, 3})
	assert.Equal(t, 12, len(tn.Data))
	assert.Equal(t, 4, tn.Stride)
	assert.Equal(t, Shape{4, 3}, tn.Shape)
}

func TestNewTensorInvalidShapePanics(t *testing.T) {
	assert.Panics(t, func() { NewTensor[float64](Shape{}) })
	assert.Panics(t, func() { NewTensor[float64](Shape{4, 0}) })
	assert.Panics(t, func() { NewTensor[float64](Shape{-1}) })
}

func TestFlatTo2D(t *testing.T) {
	tn := NewTensor[float64](Shape{2, 3, 4})
	mat := tn.FlatTo2D()
	assert.Equal(t, 2, mat.Rows)
	assert.Equal(t, 12, mat.Cols)

	// Columns are disjoint contiguous windows over the backing storage.
	for i := 0; i < mat.Cols; i++ {
		col := mat.Col(i)
		assert.Equal(t, 2, len(col))
		col[0] = float64(i)
	}
	for i := 0; i < mat.Cols; i++ {
		assert.Equal(t, float64(i), tn.Data[i*2])
	}
}

func TestFlatTo2DPaddedView(t *testing.T) {
	// A view with stride 8 over rows of 5 skips the padding elements.
	data := make([]float64, 16)
	for i := range data {
		data[i] = float64(i)
	}
	v := Tensor[float64]{Data: data, Shape: Shape{5, 2}, Stride: 8}
	mat := v.FlatTo2D()
	assert.Equal(t, 5, mat.Rows)
	assert.Equal(t, 2, mat.Cols)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, mat.Col(0))
	assert.Equal(t, []float64{8, 9, 10, 11, 12}, mat.Col(1))
}
