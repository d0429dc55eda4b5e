package matrix

import "fmt"

// Workspace is the in-place counterpart of Matrix for callers that cannot
// afford one allocation per operation.
//
// A Workspace owns a single backing buffer sized at its capacity and tracks
// the logical row and column counts separately, so one oversized buffer can
// represent several logical shapes over its lifetime. Operations mutate the
// receiver and never allocate; the logical shape may shrink or grow within
// the fixed capacity, the buffer never moves.
//
// Example:
//
//	w, _ := matrix.NewWorkspace[float32](8, 8, 3, 4) // 8x8 buffer, 3x4 logical
//	w.MatMul(other)                                  // logical shape is now 3 x other.Cols()
type Workspace[T Float] struct {
	capRows, capCols int
	rows, cols       int
	data             []T // row-major at capCols stride
	scratch          []T // one row, avoids aliasing during in-place MatMul
	stage            []T // full capacity, staging area for Transpose
}

// NewWorkspace allocates a capRows x capCols buffer holding a zeroed
// rows x cols logical matrix. The logical shape must fit the capacity.
func NewWorkspace[T Float](capRows, capCols, rows, cols int) (*Workspace[T], error) {
	if capRows <= 0 || capCols <= 0 {
		return nil, fmt.Errorf("workspace: invalid capacity %dx%d (must be > 0)", capRows, capCols)
	}
	if rows <= 0 || cols <= 0 || rows > capRows || cols > capCols {
		return nil, fmt.Errorf("workspace: logical shape %dx%d does not fit capacity %dx%d", rows, cols, capRows, capCols)
	}

	return &Workspace[T]{
		capRows: capRows,
		capCols: capCols,
		rows:    rows,
		cols:    cols,
		data:    make([]T, capRows*capCols),
		scratch: make([]T, capCols),
		stage:   make([]T, capRows*capCols),
	}, nil
}

// Rows returns the logical row count.
func (w *Workspace[T]) Rows() int { return w.rows }

// Cols returns the logical column count.
func (w *Workspace[T]) Cols() int { return w.cols }

// CapRows returns the backing buffer's row capacity.
func (w *Workspace[T]) CapRows() int { return w.capRows }

// CapCols returns the backing buffer's column capacity.
func (w *Workspace[T]) CapCols() int { return w.capCols }

// At returns the entry at row i, column j of the logical matrix.
func (w *Workspace[T]) At(i, j int) T {
	w.checkIndex("at", i, j)
	return w.data[i*w.capCols+j]
}

// Set assigns the entry at row i, column j of the logical matrix.
func (w *Workspace[T]) Set(i, j int, v T) {
	w.checkIndex("set", i, j)
	w.data[i*w.capCols+j] = v
}

func (w *Workspace[T]) checkIndex(op string, i, j int) {
	if i < 0 || i >= w.rows || j < 0 || j >= w.cols {
		panic(fmt.Sprintf("%s: index (%d, %d) out of range for %dx%d workspace", op, i, j, w.rows, w.cols))
	}
}

// Load copies a matrix into the workspace and adopts its logical shape.
// It panics if the matrix does not fit the capacity.
func (w *Workspace[T]) Load(m Matrix[T]) {
	if m.rows > w.capRows || m.cols > w.capCols {
		panic(fmt.Sprintf("load: %dx%d matrix does not fit %dx%d capacity", m.rows, m.cols, w.capRows, w.capCols))
	}
	w.rows, w.cols = m.rows, m.cols
	for i := 0; i < m.rows; i++ {
		copy(w.data[i*w.capCols:i*w.capCols+m.cols], m.data[i*m.cols:(i+1)*m.cols])
	}
}

// Matrix returns a functional copy of the logical contents.
func (w *Workspace[T]) Matrix() Matrix[T] {
	m := Zeros[T](w.rows, w.cols)
	for i := 0; i < w.rows; i++ {
		copy(m.data[i*w.cols:(i+1)*w.cols], w.data[i*w.capCols:i*w.capCols+w.cols])
	}
	return m
}

// MatMul multiplies the logical matrix by other in place. The logical
// column count becomes other's; the row count is unchanged. It panics if
// the inner dimensions do not match or other's width exceeds the capacity.
func (w *Workspace[T]) MatMul(other *Workspace[T]) {
	if w.cols != other.rows {
		panic(fmt.Sprintf("matmul: inner dimensions do not match: %dx%d @ %dx%d", w.rows, w.cols, other.rows, other.cols))
	}
	if other.cols > w.capCols {
		panic(fmt.Sprintf("matmul: result width %d exceeds capacity %d", other.cols, w.capCols))
	}

	// The product row depends on the whole operand row, so it is staged in
	// the scratch row before overwriting.
	for i := 0; i < w.rows; i++ {
		for j := 0; j < other.cols; j++ {
			var sum T
			for k := 0; k < w.cols; k++ {
				sum += w.data[i*w.capCols+k] * other.data[k*other.capCols+j]
			}
			w.scratch[j] = sum
		}
		copy(w.data[i*w.capCols:i*w.capCols+other.cols], w.scratch[:other.cols])
	}
	w.cols = other.cols
}

// Add adds other's logical matrix into the receiver elementwise.
func (w *Workspace[T]) Add(other *Workspace[T]) {
	w.checkSameShape("add", other)
	for i := 0; i < w.rows; i++ {
		for j := 0; j < w.cols; j++ {
			w.data[i*w.capCols+j] += other.data[i*other.capCols+j]
		}
	}
}

// Sub subtracts other's logical matrix from the receiver elementwise.
func (w *Workspace[T]) Sub(other *Workspace[T]) {
	w.checkSameShape("sub", other)
	for i := 0; i < w.rows; i++ {
		for j := 0; j < w.cols; j++ {
			w.data[i*w.capCols+j] -= other.data[i*other.capCols+j]
		}
	}
}

// Mul multiplies the receiver by other elementwise.
func (w *Workspace[T]) Mul(other *Workspace[T]) {
	w.checkSameShape("mul", other)
	for i := 0; i < w.rows; i++ {
		for j := 0; j < w.cols; j++ {
			w.data[i*w.capCols+j] *= other.data[i*other.capCols+j]
		}
	}
}

func (w *Workspace[T]) checkSameShape(op string, other *Workspace[T]) {
	if w.rows != other.rows || w.cols != other.cols {
		panic(fmt.Sprintf("%s: shapes do not match: %dx%d vs %dx%d", op, w.rows, w.cols, other.rows, other.cols))
	}
}

// Map applies fn to every entry of the logical matrix in place.
func (w *Workspace[T]) Map(fn func(T) T) {
	for i := 0; i < w.rows; i++ {
		for j := 0; j < w.cols; j++ {
			w.data[i*w.capCols+j] = fn(w.data[i*w.capCols+j])
		}
	}
}

// Transpose flips the logical matrix in place. The transpose must fit the
// capacity.
func (w *Workspace[T]) Transpose() {
	if w.cols > w.capRows || w.rows > w.capCols {
		panic(fmt.Sprintf("transpose: %dx%d result does not fit %dx%d capacity", w.cols, w.rows, w.capRows, w.capCols))
	}

	// Staged through the preallocated buffer: an in-place transpose of a
	// non-square region inside a strided buffer would clobber itself.
	for i := 0; i < w.rows; i++ {
		for j := 0; j < w.cols; j++ {
			w.stage[j*w.capCols+i] = w.data[i*w.capCols+j]
		}
	}
	w.rows, w.cols = w.cols, w.rows
	for i := 0; i < w.rows; i++ {
		copy(w.data[i*w.capCols:i*w.capCols+w.cols], w.stage[i*w.capCols:i*w.capCols+w.cols])
	}
}
