// Package nn implements the feedforward layer chain of the FixNet library.
//
// A network is a linked chain of processing layers terminated by an end
// layer. Inference walks the chain input to output; training walks it back
// output to input, updating each layer's weights and biases in place.
package nn

import (
	"math"

	"github.com/fixnet-ml/fixnet/internal/matrix"
)

// Activation bundles a scalar nonlinearity with its derivative.
//
// The derivative is evaluated on already-activated values, not on raw
// pre-activation sums; the backward pass relies on this contract. The
// logistic function's shortcut form x*(1-x) is the canonical example.
type Activation[T matrix.Float] struct {
	Function   func(T) T
	Derivative func(T) T
}

// Sigmoid returns the logistic activation pair.
func Sigmoid[T matrix.Float]() Activation[T] {
	return Activation[T]{
		Function: func(x T) T {
			return T(1.0 / (1.0 + math.Exp(-float64(x))))
		},
		Derivative: func(x T) T {
			return x * (1 - x)
		},
	}
}
