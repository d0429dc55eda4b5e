// Package matrix provides the fixed-shape matrix engine for the FixNet library.
package matrix

import (
	"fmt"
	"strings"
)

// Float is a constraint for the supported floating-point widths.
//
// The width is chosen once per binary by instantiating the library's types
// at float32 or float64; it is never mixed at runtime.
type Float interface {
	~float32 | ~float64
}

// Matrix is a rectangular buffer of floating-point values whose dimensions
// are fixed at construction.
//
// All operations are functional: they return a new matrix and leave their
// operands untouched. Arithmetic follows plain IEEE semantics: NaN and Inf
// propagate, there are no guards or saturation.
//
// Example:
//
//	a := matrix.Zeros[float64](2, 3)
//	b, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
//	c := a.MatMul(b) // 2x2
type Matrix[T Float] struct {
	rows, cols int
	data       []T // row-major, len == rows*cols
}

// checkDims panics if the dimensions cannot describe a matrix.
func checkDims(op string, rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("%s: invalid dimensions %dx%d (must be > 0)", op, rows, cols))
	}
}

// Zeros returns a rows x cols matrix with every entry set to 0.
func Zeros[T Float](rows, cols int) Matrix[T] {
	checkDims("zeros", rows, cols)
	return Matrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}
}

// Random returns a rows x cols matrix with entries drawn uniformly from
// [-1, 1) using the supplied source. A nil source uses DefaultSource.
func Random[T Float](rows, cols int, src Source) Matrix[T] {
	checkDims("random", rows, cols)
	if src == nil {
		src = DefaultSource()
	}

	m := Zeros[T](rows, cols)
	for i := range m.data {
		m.data[i] = T(src.Float64()*2.0 - 1.0)
	}
	return m
}

// FromSlice builds a rows x cols matrix from a flat row-major slice.
// The slice is copied.
func FromSlice[T Float](data []T, rows, cols int) (Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return Matrix[T]{}, fmt.Errorf("matrix: invalid dimensions %dx%d (must be > 0)", rows, cols)
	}
	if len(data) != rows*cols {
		return Matrix[T]{}, fmt.Errorf("matrix: %dx%d requires %d elements, got %d", rows, cols, rows*cols, len(data))
	}

	m := Zeros[T](rows, cols)
	copy(m.data, data)
	return m, nil
}

// FromRows builds a matrix from explicit row data. Every row must have the
// same length; ragged input is an error, never truncated or padded.
func FromRows[T Float](rows [][]T) (Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix[T]{}, fmt.Errorf("matrix: empty row data")
	}

	cols := len(rows[0])
	m := Zeros[T](len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return Matrix[T]{}, fmt.Errorf("matrix: ragged rows: row 0 has %d columns, row %d has %d", cols, i, len(row))
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// ColumnVector wraps a slice as an n x 1 matrix. The slice is copied.
func ColumnVector[T Float](values []T) Matrix[T] {
	checkDims("column vector", len(values), 1)
	m := Zeros[T](len(values), 1)
	copy(m.data, values)
	return m
}

// Identity returns the n x n identity matrix.
func Identity[T Float](n int) Matrix[T] {
	m := Zeros[T](n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix[T]) Cols() int { return m.cols }

// At returns the entry at row i, column j.
func (m Matrix[T]) At(i, j int) T {
	m.checkIndex("at", i, j)
	return m.data[i*m.cols+j]
}

// Set assigns the entry at row i, column j.
func (m Matrix[T]) Set(i, j int, v T) {
	m.checkIndex("set", i, j)
	m.data[i*m.cols+j] = v
}

func (m Matrix[T]) checkIndex(op string, i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("%s: index (%d, %d) out of range for %dx%d matrix", op, i, j, m.rows, m.cols))
	}
}

// Data returns the backing row-major slice. Mutating it mutates the matrix.
func (m Matrix[T]) Data() []T { return m.data }

// Column returns a copy of the values of an n x 1 matrix as a flat slice.
// It panics if the matrix has more than one column.
func (m Matrix[T]) Column() []T {
	if m.cols != 1 {
		panic(fmt.Sprintf("column: matrix is %dx%d, not a column vector", m.rows, m.cols))
	}
	out := make([]T, m.rows)
	copy(out, m.data)
	return out
}

// Clone returns a deep copy of the matrix.
func (m Matrix[T]) Clone() Matrix[T] {
	c := Matrix[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	copy(c.data, m.data)
	return c
}

// MatMul multiplies m by other and returns the product.
//
// m must be R x C and other C x K; the result is R x K. It panics if the
// inner dimensions do not match.
func (m Matrix[T]) MatMul(other Matrix[T]) Matrix[T] {
	if m.cols != other.rows {
		panic(fmt.Sprintf("matmul: inner dimensions do not match: %dx%d @ %dx%d", m.rows, m.cols, other.rows, other.cols))
	}

	res := Zeros[T](m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			var sum T
			for k := 0; k < m.cols; k++ {
				sum += m.data[i*m.cols+k] * other.data[k*other.cols+j]
			}
			res.data[i*other.cols+j] = sum
		}
	}
	return res
}

// Add returns the elementwise sum of two equally shaped matrices.
func (m Matrix[T]) Add(other Matrix[T]) Matrix[T] {
	m.checkSameShape("add", other)
	res := Zeros[T](m.rows, m.cols)
	for i, v := range m.data {
		res.data[i] = v + other.data[i]
	}
	return res
}

// Sub returns the elementwise difference of two equally shaped matrices.
func (m Matrix[T]) Sub(other Matrix[T]) Matrix[T] {
	m.checkSameShape("sub", other)
	res := Zeros[T](m.rows, m.cols)
	for i, v := range m.data {
		res.data[i] = v - other.data[i]
	}
	return res
}

// Mul returns the elementwise (Hadamard) product of two equally shaped
// matrices.
func (m Matrix[T]) Mul(other Matrix[T]) Matrix[T] {
	m.checkSameShape("mul", other)
	res := Zeros[T](m.rows, m.cols)
	for i, v := range m.data {
		res.data[i] = v * other.data[i]
	}
	return res
}

func (m Matrix[T]) checkSameShape(op string, other Matrix[T]) {
	if m.rows != other.rows || m.cols != other.cols {
		panic(fmt.Sprintf("%s: shapes do not match: %dx%d vs %dx%d", op, m.rows, m.cols, other.rows, other.cols))
	}
}

// Scale returns the matrix with every entry multiplied by s.
func (m Matrix[T]) Scale(s T) Matrix[T] {
	res := Zeros[T](m.rows, m.cols)
	for i, v := range m.data {
		res.data[i] = v * s
	}
	return res
}

// Map applies fn to every entry and returns the resulting matrix.
func (m Matrix[T]) Map(fn func(T) T) Matrix[T] {
	res := Zeros[T](m.rows, m.cols)
	for i, v := range m.data {
		res.data[i] = fn(v)
	}
	return res
}

// Transpose returns the C x R transpose of an R x C matrix.
func (m Matrix[T]) Transpose() Matrix[T] {
	res := Zeros[T](m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			res.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return res
}

// Equal reports whether two matrices have the same shape and identical
// entries. NaN entries compare unequal, per IEEE semantics.
func (m Matrix[T]) Equal(other Matrix[T]) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// String renders the matrix as a nested list, one inner list per row.
func (m Matrix[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%v", m.data[i*m.cols+j])
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}
