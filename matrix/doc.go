// Copyright 2026 The FixNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides fixed-shape matrix arithmetic for the FixNet
// library.
//
// # Overview
//
// Matrices have their dimensions fixed at construction. This package
// provides:
//   - Functional operations (Matrix): MatMul, Add, Sub, Mul, Map, Transpose
//   - An in-place, allocation-free variant (Workspace) whose logical shape
//     is tracked separately from its backing capacity
//   - Construction from zeros, uniform random values in [-1, 1), or
//     explicit data
//
// # Basic Usage
//
//	import "github.com/fixnet-ml/fixnet/matrix"
//
//	func main() {
//	    a := matrix.Zeros[float64](2, 3)
//	    b := matrix.Random[float64](3, 2, matrix.DefaultSource())
//
//	    c := a.MatMul(b)            // 2x2
//	    d := c.Add(c).Transpose()
//	    fmt.Println(d)              // nested-list rendering
//	}
//
// # Float Width
//
// Every type is generic over the Float constraint (float32 or float64). An
// embedding application picks one width and instantiates the library at it;
// widths are never mixed at runtime.
//
// # Shape Errors
//
// Constructors taking caller data report bad shapes as errors. Arithmetic
// operations on incompatibly shaped operands panic with a descriptive
// message; they never truncate or pad.
package matrix
