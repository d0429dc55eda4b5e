package nn

import (
	"errors"
	"fmt"

	"github.com/fixnet-ml/fixnet/internal/matrix"
)

// ErrMalformedChain reports a layer chain whose declared widths do not
// connect. Construction fails fast with this error; a malformed chain is
// never handed back to the caller.
var ErrMalformedChain = errors.New("nn: malformed layer chain")

// Network is a feedforward chain of processing layers.
//
// A network is built once, from layer widths or pretrained parameters, and
// then mutated in place by Train. It is owned by a single caller; nothing
// in it is safe for concurrent use.
//
// Example:
//
//	net, err := nn.New[float64](2, 3, 1)
//	if err != nil {
//	    ...
//	}
//	err = net.Train(0.5, inputs, targets, 10_000, nn.Sigmoid[float64]())
//	out, err := net.Predict([]float64{1, 0}, nn.Sigmoid[float64]())
type Network[T matrix.Float] struct {
	sizes  []int
	first  layer[T]
	layers []*processLayer[T] // input-to-output order, for inspection
}

func validateSizes(sizes []int) error {
	if len(sizes) < 2 {
		return fmt.Errorf("%w: need at least an input and an output width, got %d", ErrMalformedChain, len(sizes))
	}
	for i, s := range sizes {
		if s <= 0 {
			return fmt.Errorf("%w: width %d at position %d (must be > 0)", ErrMalformedChain, s, i)
		}
	}
	return nil
}

// build assembles the linked chain from per-layer parameters. weights[i]
// must already be sizes[i+1] x sizes[i] and biases[i] sizes[i+1] x 1.
func build[T matrix.Float](sizes []int, weights, biases []matrix.Matrix[T]) *Network[T] {
	var next layer[T] = &endLayer[T]{width: sizes[len(sizes)-1]}

	procs := make([]*processLayer[T], len(weights))
	for i := len(weights) - 1; i >= 0; i-- {
		l := &processLayer[T]{
			next:      next,
			weights:   weights[i],
			biases:    biases[i],
			lastInput: matrix.Zeros[T](sizes[i], 1),
		}
		procs[i] = l
		next = l
	}

	return &Network[T]{
		sizes:  append([]int(nil), sizes...),
		first:  next,
		layers: procs,
	}
}

// New builds a network from layer widths with all weights and biases set to
// zero. sizes lists every layer's width, input first, output last.
func New[T matrix.Float](sizes ...int) (*Network[T], error) {
	if err := validateSizes(sizes); err != nil {
		return nil, err
	}

	weights := make([]matrix.Matrix[T], len(sizes)-1)
	biases := make([]matrix.Matrix[T], len(sizes)-1)
	for i := range weights {
		weights[i] = matrix.Zeros[T](sizes[i+1], sizes[i])
		biases[i] = matrix.Zeros[T](sizes[i+1], 1)
	}
	return build(sizes, weights, biases), nil
}

// NewRandom builds a network from layer widths with weights and biases
// drawn uniformly from [-1, 1). Zero initialization cannot break the
// symmetry between hidden units, so this is the constructor to reach for
// when training from scratch. A nil source uses matrix.DefaultSource.
func NewRandom[T matrix.Float](src matrix.Source, sizes ...int) (*Network[T], error) {
	if err := validateSizes(sizes); err != nil {
		return nil, err
	}
	if src == nil {
		src = matrix.DefaultSource()
	}

	weights := make([]matrix.Matrix[T], len(sizes)-1)
	biases := make([]matrix.Matrix[T], len(sizes)-1)
	for i := range weights {
		weights[i] = matrix.Random[T](sizes[i+1], sizes[i], src)
		biases[i] = matrix.Random[T](sizes[i+1], 1, src)
	}
	return build(sizes, weights, biases), nil
}

// NewWith builds a network from pretrained parameters. weights[i] and
// biases[i] belong to layer i; layer widths are derived from the weight
// shapes. Adjacent layers whose widths do not connect, or biases that do
// not match their weights, are rejected with ErrMalformedChain. The
// matrices are cloned, so the caller's copies stay independent.
func NewWith[T matrix.Float](weights, biases []matrix.Matrix[T]) (*Network[T], error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: no layers", ErrMalformedChain)
	}
	if len(weights) != len(biases) {
		return nil, fmt.Errorf("%w: %d weight matrices but %d bias vectors", ErrMalformedChain, len(weights), len(biases))
	}

	sizes := make([]int, 0, len(weights)+1)
	sizes = append(sizes, weights[0].Cols())
	for i, w := range weights {
		if i > 0 && w.Cols() != weights[i-1].Rows() {
			return nil, fmt.Errorf("%w: layer %d consumes %d values but layer %d produces %d",
				ErrMalformedChain, i, w.Cols(), i-1, weights[i-1].Rows())
		}
		if biases[i].Rows() != w.Rows() || biases[i].Cols() != 1 {
			return nil, fmt.Errorf("%w: layer %d bias is %dx%d, want %dx1",
				ErrMalformedChain, i, biases[i].Rows(), biases[i].Cols(), w.Rows())
		}
		sizes = append(sizes, w.Rows())
	}

	clonedW := make([]matrix.Matrix[T], len(weights))
	clonedB := make([]matrix.Matrix[T], len(biases))
	for i := range weights {
		clonedW[i] = weights[i].Clone()
		clonedB[i] = biases[i].Clone()
	}
	return build(sizes, clonedW, clonedB), nil
}

// Sizes returns the layer widths, input first, output last.
func (n *Network[T]) Sizes() []int {
	return append([]int(nil), n.sizes...)
}

// Weights returns cloned snapshots of every layer's weight matrix, in
// input-to-output order.
func (n *Network[T]) Weights() []matrix.Matrix[T] {
	out := make([]matrix.Matrix[T], len(n.layers))
	for i, l := range n.layers {
		out[i] = l.weights.Clone()
	}
	return out
}

// Biases returns cloned snapshots of every layer's bias vector, in
// input-to-output order.
func (n *Network[T]) Biases() []matrix.Matrix[T] {
	out := make([]matrix.Matrix[T], len(n.layers))
	for i, l := range n.layers {
		out[i] = l.biases.Clone()
	}
	return out
}

// Predict runs one forward pass and returns the network's output. It never
// mutates weights or biases.
func (n *Network[T]) Predict(input []T, act Activation[T]) ([]T, error) {
	if len(input) != n.first.inWidth() {
		return nil, fmt.Errorf("nn: predict: network consumes %d values, got %d", n.first.inWidth(), len(input))
	}
	out := n.first.feedForward(matrix.ColumnVector(input), act)
	return out.Column(), nil
}

// Train runs online gradient descent: for every epoch, every (input,
// target) pair in order gets one forward pass followed by one backward
// pass, updating parameters in place. Exactly epochs * len(inputs) update
// steps run; there is no batching, shuffling, or early exit. Zero epochs
// leaves the network untouched.
func (n *Network[T]) Train(lr T, inputs, targets [][]T, epochs int, act Activation[T]) error {
	if epochs < 0 {
		return fmt.Errorf("nn: train: negative epoch count %d", epochs)
	}
	if len(inputs) != len(targets) {
		return fmt.Errorf("nn: train: %d inputs but %d targets", len(inputs), len(targets))
	}
	inW, outW := n.sizes[0], n.sizes[len(n.sizes)-1]
	for i := range inputs {
		if len(inputs[i]) != inW {
			return fmt.Errorf("nn: train: input %d has %d values, network consumes %d", i, len(inputs[i]), inW)
		}
		if len(targets[i]) != outW {
			return fmt.Errorf("nn: train: target %d has %d values, network produces %d", i, len(targets[i]), outW)
		}
	}

	for epoch := 0; epoch < epochs; epoch++ {
		for i := range inputs {
			outputs := n.first.feedForward(matrix.ColumnVector(inputs[i]), act)
			n.first.backPropagate(lr, outputs, matrix.ColumnVector(targets[i]), act)
		}
	}
	return nil
}
