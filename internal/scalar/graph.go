package scalar

import "strconv"

// Op identifies the operation that produced a node.
// The backward pass is a single dispatch over this enum; nodes store no
// closures.
type Op uint8

const (
	OpLeaf Op = iota // wraps a raw number, no operands
	OpAdd
	OpMul
	OpPow
	OpReLU
	OpTanh
	OpSigmoid
	OpExp
	OpLog
)

// String returns the diagnostic tag for the operation kind. Leaves have an
// empty tag. OpPow renders without its exponent; node.opTag includes it.
func (op Op) String() string {
	switch op {
	case OpLeaf:
		return ""
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	case OpPow:
		return "**"
	case OpReLU:
		return "ReLU"
	case OpTanh:
		return "tanh"
	case OpSigmoid:
		return "σ"
	case OpExp:
		return "exp"
	case OpLog:
		return "log"
	}
	return "?"
}

// noOperand marks an unused operand slot.
const noOperand int32 = -1

// node is one scalar in the expression graph. Operands are arena indices,
// which are always smaller than the node's own index: operations only ever
// derive new nodes from existing ones, so the arena order is already
// topological and the graph cannot contain a cycle.
type node struct {
	val   float64 // forward value, fixed at construction
	grad  float64 // ∂(root)/∂(this node), accumulated by backward passes
	aux   float64 // Pow exponent; unused by other ops
	a, b  int32   // operand indices, noOperand when absent
	op    Op
	label string // optional user-assigned name, diagnostic only
}

// opTag renders the node's diagnostic operation tag, including the exponent
// for power nodes ("**2", "**-1").
func (n *node) opTag() string {
	if n.op == OpPow {
		return "**" + strconv.FormatFloat(n.aux, 'g', -1, 64)
	}
	return n.op.String()
}

// Graph is the arena that owns every node of one expression graph. Values
// are handles into it.
//
// A Graph is not safe for concurrent use: one goroutine builds the forward
// graph and later walks it backward. Independent Graphs are fully isolated
// and may be used from different goroutines.
//
// Usage:
//
//	g := NewGraph()
//	x := g.Value(3)
//	y := x.Pow(2) // y = x²
//
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x = 6
type Graph struct {
	nodes []node
}

// NewGraph creates an empty expression graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]node, 0, 64), // Pre-allocate for common case
	}
}

// Value creates a leaf node wrapping the raw number x. Its gradient starts
// at zero and it has no operands.
func (g *Graph) Value(x float64) *Value {
	return g.newNode(OpLeaf, x, noOperand, noOperand, 0)
}

// newNode appends a node to the arena and returns its handle. Appending may
// reallocate the backing array, so *node pointers must never be held across
// a newNode call.
func (g *Graph) newNode(op Op, val float64, a, b int32, aux float64) *Value {
	g.nodes = append(g.nodes, node{val: val, aux: aux, a: a, b: b, op: op})
	return &Value{g: g, id: int32(len(g.nodes) - 1)}
}

// NumNodes returns the number of nodes in the arena, leaves included.
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

// Clear drops every node and keeps the arena's capacity for reuse. All
// Values previously created on g are invalidated; using one afterwards
// panics.
func (g *Graph) Clear() {
	g.nodes = g.nodes[:0]
}

// ZeroGrad resets every node's gradient to zero, leaving values intact.
// Callers that run repeated backward passes over fresh gradients use this
// between passes; Backward itself never resets anything.
func (g *Graph) ZeroGrad() {
	for i := range g.nodes {
		g.nodes[i].grad = 0
	}
}
