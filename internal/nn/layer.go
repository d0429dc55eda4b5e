package nn

import (
	"github.com/fixnet-ml/fixnet/internal/matrix"
)

// backProps carries the transient (errors, gradients) column-vector pair
// handed from a layer to its upstream neighbor during one backward step.
// Both vectors are sized to the receiving layer's input width.
type backProps[T matrix.Float] struct {
	errors    matrix.Matrix[T]
	gradients matrix.Matrix[T]
}

// layer is the chain-internal protocol shared by processing and end layers.
type layer[T matrix.Float] interface {
	// feedForward consumes a column vector of this layer's input width and
	// returns the chain's final output vector.
	feedForward(feed matrix.Matrix[T], act Activation[T]) matrix.Matrix[T]

	// backPropagate updates this layer's parameters from the most recent
	// forward pass and returns the error/gradient pair for the upstream
	// layer. outputs and targets are the chain's final output and the
	// training target for the example just fed forward.
	backPropagate(lr T, outputs, targets matrix.Matrix[T], act Activation[T]) backProps[T]

	// inWidth is the number of values this layer consumes.
	inWidth() int
}

// processLayer is a trainable stage: weights, biases, and a cached copy of
// the last input, linked to the next layer in the chain.
type processLayer[T matrix.Float] struct {
	next    layer[T]
	weights matrix.Matrix[T] // next layer's width x this layer's width
	biases  matrix.Matrix[T] // next layer's width x 1

	// lastInput is overwritten on every forward pass and read by the
	// following backward pass. It is only valid after a forward pass.
	lastInput matrix.Matrix[T]
}

func (l *processLayer[T]) inWidth() int { return l.weights.Cols() }

func (l *processLayer[T]) feedForward(feed matrix.Matrix[T], act Activation[T]) matrix.Matrix[T] {
	l.lastInput = feed
	out := l.weights.MatMul(feed).Add(l.biases).Map(act.Function)
	return l.next.feedForward(out, act)
}

func (l *processLayer[T]) backPropagate(lr T, outputs, targets matrix.Matrix[T], act Activation[T]) backProps[T] {
	// Downstream layers correct themselves first; their propagated error and
	// gradient drive this layer's update.
	bp := l.next.backPropagate(lr, outputs, targets, act)

	delta := bp.gradients.Mul(bp.errors).Scale(lr)
	l.weights = l.weights.Add(delta.MatMul(l.lastInput.Transpose()))
	l.biases = l.biases.Add(delta)

	// The error is pushed back through the freshly updated weights, not the
	// ones used in the forward pass. Update-then-propagate is a deliberate
	// behavioral choice kept for compatibility with the original training
	// dynamics.
	errors := l.weights.Transpose().MatMul(bp.errors)
	gradients := l.lastInput.Map(act.Derivative)

	return backProps[T]{errors: errors, gradients: gradients}
}

// endLayer terminates the chain. It holds no parameters, returns the final
// activated vector unchanged on the way forward, and seeds backpropagation
// with the output error on the way back.
type endLayer[T matrix.Float] struct {
	width int
}

func (l *endLayer[T]) inWidth() int { return l.width }

func (l *endLayer[T]) feedForward(feed matrix.Matrix[T], _ Activation[T]) matrix.Matrix[T] {
	return feed
}

func (l *endLayer[T]) backPropagate(_ T, outputs, targets matrix.Matrix[T], act Activation[T]) backProps[T] {
	return backProps[T]{
		errors:    targets.Sub(outputs),
		gradients: outputs.Map(act.Derivative),
	}
}
