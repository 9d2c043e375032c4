// Package scalar implements reverse-mode automatic differentiation over
// scalar values.
//
// Applying arithmetic operations to Values records a directed acyclic
// expression graph. Backward then walks that graph once in reverse
// topological order and accumulates the exact partial derivative of the root
// with respect to every participating Value.
//
// Architecture:
//   - Graph: arena that owns every node of one expression graph
//   - Value: handle to one node (graph pointer plus arena index)
//   - Op: operation kind; the backward step is one dispatch over it
//   - Reverse-mode AD: gradients accumulate with += under the chain rule
//
// Usage:
//
//	g := scalar.NewGraph()
//	a := g.Value(2)
//	b := g.Value(-3)
//	c := g.Value(10)
//	f := a.Mul(b).Add(c).ReLU()
//
//	f.Backward()
//	fmt.Println(a.Grad()) // df/da = -3
package scalar

import "fmt"

// Value is a handle to one scalar node in a Graph. Two Values are handles to
// the same node exactly when they were returned by the same construction
// call or copied from one that was; node identity, not numeric equality,
// governs gradient flow.
type Value struct {
	g  *Graph
	id int32
}

// node returns the underlying arena slot. The pointer is valid only until
// the next node is appended to the graph.
func (v *Value) node() *node {
	return &v.g.nodes[v.id]
}

// Data returns the forward value.
func (v *Value) Data() float64 {
	return v.node().val
}

// Grad returns the gradient accumulated by backward passes, zero until one
// touches this node.
func (v *Value) Grad() float64 {
	return v.node().grad
}

// ZeroGrad resets this node's gradient to zero. Backward accumulates rather
// than overwrites, so training loops reset parameter gradients between
// iterations.
func (v *Value) ZeroGrad() {
	v.node().grad = 0
}

// Op returns the diagnostic tag of the operation that produced this node
// ("+", "*", "**2", "ReLU", "tanh", "σ", "exp", "log"). Leaves return "".
func (v *Value) Op() string {
	return v.node().opTag()
}

// Label returns the user-assigned name, if any.
func (v *Value) Label() string {
	return v.node().label
}

// SetLabel assigns a diagnostic name to this node.
func (v *Value) SetLabel(label string) {
	v.node().label = label
}

// String renders the node for diagnostics, including the operation tag and
// label when present.
func (v *Value) String() string {
	n := v.node()
	s := fmt.Sprintf("Value(data=%v, grad=%v", n.val, n.grad)
	if tag := n.opTag(); tag != "" {
		s += ", op=" + tag
	}
	if n.label != "" {
		s += ", label=" + n.label
	}
	return s + ")"
}
