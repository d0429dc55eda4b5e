// Copyright 2026 The FixNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/fixnet-ml/fixnet/internal/matrix"
)

// Float is a constraint for the supported floating-point widths.
type Float = matrix.Float

// Matrix is a fixed-shape matrix with functional operations.
type Matrix[T Float] = matrix.Matrix[T]

// Workspace is a fixed-capacity matrix mutated in place, for callers that
// cannot afford per-operation allocation.
type Workspace[T Float] = matrix.Workspace[T]

// Source is a uniform random source consumed by Random.
type Source = matrix.Source

// Zeros returns a rows x cols matrix with every entry set to 0.
func Zeros[T Float](rows, cols int) Matrix[T] {
	return matrix.Zeros[T](rows, cols)
}

// Random returns a rows x cols matrix with entries drawn uniformly from
// [-1, 1). A nil source uses DefaultSource.
func Random[T Float](rows, cols int, src Source) Matrix[T] {
	return matrix.Random[T](rows, cols, src)
}

// FromSlice builds a rows x cols matrix from a flat row-major slice.
func FromSlice[T Float](data []T, rows, cols int) (Matrix[T], error) {
	return matrix.FromSlice(data, rows, cols)
}

// FromRows builds a matrix from explicit row data.
//
// Example:
//
//	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
func FromRows[T Float](rows [][]T) (Matrix[T], error) {
	return matrix.FromRows(rows)
}

// ColumnVector wraps a slice as an n x 1 matrix.
func ColumnVector[T Float](values []T) Matrix[T] {
	return matrix.ColumnVector(values)
}

// Identity returns the n x n identity matrix.
func Identity[T Float](n int) Matrix[T] {
	return matrix.Identity[T](n)
}

// NewWorkspace allocates a capRows x capCols buffer holding a zeroed
// rows x cols logical matrix.
func NewWorkspace[T Float](capRows, capCols, rows, cols int) (*Workspace[T], error) {
	return matrix.NewWorkspace[T](capRows, capCols, rows, cols)
}

// DefaultSource returns a source seeded with the library's fixed default
// seed, for reproducible initialization.
func DefaultSource() Source {
	return matrix.DefaultSource()
}
