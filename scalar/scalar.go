// Copyright 2026 Grain ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides reverse-mode automatic differentiation over scalar
// values.
//
// Arithmetic operations on Values record a directed acyclic expression
// graph; a single Backward call then computes the exact gradient of one
// output with respect to every Value it depends on, via the chain rule.
// Gradients accumulate across backward passes and are reset explicitly by
// the caller.
//
// Example:
//
//	import "github.com/grain-ml/grain/scalar"
//
//	func main() {
//	    g := scalar.NewGraph()
//	    a := g.Value(2)
//	    b := g.Value(-3)
//	    c := g.Value(10)
//	    f := a.Mul(b).Add(c).ReLU()
//
//	    f.Backward()
//	    fmt.Println(f.Data()) // 4
//	    fmt.Println(a.Grad()) // df/da = -3
//	}
package scalar

import (
	"github.com/grain-ml/grain/internal/scalar"
)

// Graph is the arena that owns every node of one expression graph. A Graph
// is not safe for concurrent use; independent Graphs are fully isolated.
type Graph = scalar.Graph

// Value is a handle to one scalar node in a Graph. Operations on Values
// build the graph; Backward walks it.
type Value = scalar.Value

// ErrUnsupportedExponent reports a power whose exponent is a graph-tracked
// Value rather than a plain number.
var ErrUnsupportedExponent = scalar.ErrUnsupportedExponent

// NewGraph creates an empty expression graph.
//
// Example:
//
//	g := scalar.NewGraph()
//	x := g.Value(3)
func NewGraph() *Graph {
	return scalar.NewGraph()
}
