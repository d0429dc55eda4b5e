// Copyright 2026 The FixNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixnet-ml/fixnet/matrix"
	"github.com/fixnet-ml/fixnet/nn"
)

// The facade re-exports the chain; one pass over the surface is enough,
// the chain itself is tested in internal/nn.
func TestFacade(t *testing.T) {
	act := nn.Sigmoid[float64]()

	net, err := nn.New[float64](2, 3, 1)
	require.NoError(t, err)

	out, err := net.Predict([]float64{0, 0}, act)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, out[0], 1e-15)

	err = net.Train(0.5, [][]float64{{1, 1}}, [][]float64{{1}}, 10, act)
	require.NoError(t, err)

	_, err = nn.NewRandom[float64](matrix.DefaultSource(), 2, 2)
	require.NoError(t, err)

	_, err = nn.NewWith(
		[]matrix.Matrix[float64]{matrix.Zeros[float64](3, 2), matrix.Zeros[float64](1, 2)},
		[]matrix.Matrix[float64]{matrix.Zeros[float64](3, 1), matrix.Zeros[float64](1, 1)},
	)
	require.ErrorIs(t, err, nn.ErrMalformedChain)
}
