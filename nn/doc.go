// Copyright 2026 The FixNet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the FixNet feedforward network: a chain of fixed-width
// layers with forward inference and online gradient-descent training.
//
// # Overview
//
// A Network is a sequence of processing layers, each owning a weight matrix
// and a bias vector, terminated by an output boundary. Layer widths are
// validated when the network is built; a chain whose adjacent widths do not
// connect is rejected with ErrMalformedChain.
//
// # Basic Usage
//
//	import "github.com/fixnet-ml/fixnet/nn"
//
//	func main() {
//	    net, err := nn.NewRandom[float64](nil, 2, 3, 1)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    inputs := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
//	    targets := [][]float64{{0}, {1}, {1}, {0}}
//
//	    act := nn.Sigmoid[float64]()
//	    if err := net.Train(0.5, inputs, targets, 10_000, act); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out, _ := net.Predict([]float64{1, 0}, act)
//	    fmt.Println(out)
//	}
//
// # Activations
//
// Networks consume an externally supplied Activation pair: the scalar
// nonlinearity and its derivative. The derivative is evaluated on
// already-activated values. Sigmoid is provided; anything satisfying the
// contract plugs in.
//
// # Concurrency
//
// A Network is owned by one caller and mutated in place by Train. Nothing
// in this package is safe for concurrent use.
package nn
