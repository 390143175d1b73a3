package mshadow

import "fmt"

// Expr is a minimal arithmetic expression over a 2D-flattened tensor view.
// Expressions are evaluated lazily element by element; EvalTo materializes
// one into a destination tensor.
type Expr[T Float] interface {
	// ExprShape returns the shape of the expression's value.
	ExprShape() Shape
	// At returns the element in column col (flattened outer index) at row
	// (contiguous inner index).
	At(col, row int) T
}

// identityExpr wraps a tensor view so it composes as an expression operand.
type identityExpr[T Float] struct {
	t Tensor[T]
}

// MakeExpr wraps a tensor view as an identity expression.
func MakeExpr[T Float](t Tensor[T]) Expr[T] {
	return identityExpr[T]{t: t}
}

func (e identityExpr[T]) ExprShape() Shape { return e.t.Shape }

func (e identityExpr[T]) At(col, row int) T {
	return e.t.Data[col*e.t.Stride+row]
}

type scaleExpr[T Float] struct {
	e Expr[T]
	k T
}

// Scale returns the expression e with every element multiplied by k.
func Scale[T Float](e Expr[T], k T) Expr[T] {
	return scaleExpr[T]{e: e, k: k}
}

func (e scaleExpr[T]) ExprShape() Shape  { return e.e.ExprShape() }
func (e scaleExpr[T]) At(col, row int) T { return e.e.At(col, row) * e.k }

type addExpr[T Float] struct {
	lhs, rhs Expr[T]
}

// Add returns the elementwise sum of two expressions of identical shape.
func Add[T Float](lhs, rhs Expr[T]) Expr[T] {
	if lhs.ExprShape().Size() != rhs.ExprShape().Size() {
		panic(fmt.Sprintf("mshadow: shape mismatch in expression: %v vs %v",
			lhs.ExprShape(), rhs.ExprShape()))
	}
	return addExpr[T]{lhs: lhs, rhs: rhs}
}

func (e addExpr[T]) ExprShape() Shape  { return e.lhs.ExprShape() }
func (e addExpr[T]) At(col, row int) T { return e.lhs.At(col, row) + e.rhs.At(col, row) }

// EvalTo materializes an expression into dst. The destination must have the
// same leading dimension and element count as the expression.
func EvalTo[T Float](dst Tensor[T], e Expr[T]) {
	if dst.Shape.Size() != e.ExprShape().Size() || dst.Shape[0] != e.ExprShape()[0] {
		panic(fmt.Sprintf("mshadow: cannot evaluate %v expression into %v tensor",
			e.ExprShape(), dst.Shape))
	}
	mat := dst.FlatTo2D()
	for i := 0; i < mat.Cols; i++ {
		col := mat.Col(i)
		for j := range col {
			col[j] = e.At(i, j)
		}
	}
}
