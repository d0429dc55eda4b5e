// Copyright 2026 The FixNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixnet-ml/fixnet/matrix"
)

// The facade re-exports the engine; one pass over the surface is enough,
// the engine itself is tested in internal/matrix.
func TestFacade(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	b := matrix.Identity[float64](2)
	assert.True(t, a.MatMul(b).Equal(a))

	v := matrix.ColumnVector([]float64{1, 2})
	assert.Equal(t, 2, a.MatMul(v).Rows())

	r := matrix.Random[float32](2, 2, matrix.DefaultSource())
	assert.Equal(t, 2, r.Rows())

	flat, err := matrix.FromSlice([]float64{0, 0}, 2, 1)
	require.NoError(t, err)
	assert.True(t, matrix.Zeros[float64](2, 1).Equal(flat))

	w, err := matrix.NewWorkspace[float64](4, 4, 2, 2)
	require.NoError(t, err)
	w.Load(a)
	assert.True(t, w.Matrix().Equal(a))
}
