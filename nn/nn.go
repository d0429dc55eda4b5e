// Copyright 2026 The FixNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/fixnet-ml/fixnet/internal/nn"
	"github.com/fixnet-ml/fixnet/matrix"
)

// ErrMalformedChain reports a layer chain whose declared widths do not
// connect.
var ErrMalformedChain = nn.ErrMalformedChain

// Activation bundles a scalar nonlinearity with its derivative. The
// derivative is evaluated on already-activated values.
type Activation[T matrix.Float] = nn.Activation[T]

// Network is a feedforward chain of processing layers.
type Network[T matrix.Float] = nn.Network[T]

// Sigmoid returns the logistic activation pair.
func Sigmoid[T matrix.Float]() Activation[T] {
	return nn.Sigmoid[T]()
}

// New builds a network from layer widths with zeroed weights and biases.
// sizes lists every layer's width, input first, output last.
func New[T matrix.Float](sizes ...int) (*Network[T], error) {
	return nn.New[T](sizes...)
}

// NewRandom builds a network from layer widths with weights and biases
// drawn uniformly from [-1, 1). A nil source uses matrix.DefaultSource.
func NewRandom[T matrix.Float](src matrix.Source, sizes ...int) (*Network[T], error) {
	return nn.NewRandom[T](src, sizes...)
}

// NewWith builds a network from pretrained weight matrices and bias
// vectors, one pair per layer.
func NewWith[T matrix.Float](weights, biases []matrix.Matrix[T]) (*Network[T], error) {
	return nn.NewWith(weights, biases)
}
