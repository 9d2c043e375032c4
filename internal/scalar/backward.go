package scalar

import "math"

// frame is one entry of the explicit traversal stack. A node is pushed
// twice: first unexpanded to schedule its operands, then expanded to emit it
// in post-order once they are done.
type frame struct {
	id       int32
	expanded bool
}

// Backward computes the gradient of v with respect to every node it was
// derived from.
//
// It walks v's ancestry once in post-order (iteratively, so deep chains
// cannot overflow the stack), seeds v's gradient with 1, and then processes
// nodes in reverse topological order. Reverse order guarantees that when a
// node's local rule runs, every consumer of that node has already added its
// full contribution, which is what makes += accumulation correct for nodes
// used more than once.
//
// Backward never resets gradients: repeated calls keep accumulating, except
// for v's own gradient, which is overwritten to 1 each call because v is the
// quantity being differentiated. Nodes outside v's ancestry are untouched.
// Callers wanting fresh gradients reset them first (ZeroGrad).
func (v *Value) Backward() {
	g := v.g
	visited := make([]bool, len(g.nodes))
	topo := make([]int32, 0, len(g.nodes))

	stack := make([]frame, 0, 64)
	stack = append(stack, frame{id: v.id})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.expanded {
			topo = append(topo, f.id)
			continue
		}
		if visited[f.id] {
			continue
		}
		visited[f.id] = true
		stack = append(stack, frame{id: f.id, expanded: true})
		n := &g.nodes[f.id]
		if n.a != noOperand && !visited[n.a] {
			stack = append(stack, frame{id: n.a})
		}
		if n.b != noOperand && !visited[n.b] {
			stack = append(stack, frame{id: n.b})
		}
	}

	g.nodes[v.id].grad = 1
	for i := len(topo) - 1; i >= 0; i-- {
		g.propagate(topo[i])
	}
}

// propagate applies the local derivative rule of node i: it reads the
// node's accumulated gradient and adds the scaled contribution into each
// operand's gradient. Operand indices are always smaller than i, so the
// writes never alias n itself.
func (g *Graph) propagate(i int32) {
	n := &g.nodes[i]
	switch n.op {
	case OpLeaf:
		// no operands
	case OpAdd:
		g.nodes[n.a].grad += n.grad
		g.nodes[n.b].grad += n.grad
	case OpMul:
		g.nodes[n.a].grad += g.nodes[n.b].val * n.grad
		g.nodes[n.b].grad += g.nodes[n.a].val * n.grad
	case OpPow:
		g.nodes[n.a].grad += n.aux * math.Pow(g.nodes[n.a].val, n.aux-1) * n.grad
	case OpReLU:
		if n.val > 0 {
			g.nodes[n.a].grad += n.grad
		}
	case OpTanh:
		g.nodes[n.a].grad += (1 - n.val*n.val) * n.grad
	case OpSigmoid:
		g.nodes[n.a].grad += n.val * (1 - n.val) * n.grad
	case OpExp:
		g.nodes[n.a].grad += n.val * n.grad
	case OpLog:
		g.nodes[n.a].grad += n.grad / g.nodes[n.a].val
	}
}
