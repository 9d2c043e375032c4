package scalar

import (
	"errors"
	"math"
)

// ErrUnsupportedExponent reports a power whose exponent is a graph-tracked
// Value rather than a plain number. Differentiating with respect to the
// exponent is not implemented, and coercing the exponent's numeric value
// would silently detach it from the graph, so the call fails instead.
var ErrUnsupportedExponent = errors.New("scalar: Value exponents are not supported")

// sameGraph returns the graph shared by v and w.
func (v *Value) sameGraph(w *Value) *Graph {
	if v.g != w.g {
		panic("scalar: operands belong to different graphs")
	}
	return v.g
}

// Add returns a new Value holding v + w.
// d(v+w)/dv = 1 and d(v+w)/dw = 1: the upstream gradient flows unchanged to
// both operands.
func (v *Value) Add(w *Value) *Value {
	g := v.sameGraph(w)
	return g.newNode(OpAdd, v.Data()+w.Data(), v.id, w.id, 0)
}

// Mul returns a new Value holding v * w.
// d(v*w)/dv = w and d(v*w)/dw = v.
func (v *Value) Mul(w *Value) *Value {
	g := v.sameGraph(w)
	return g.newNode(OpMul, v.Data()*w.Data(), v.id, w.id, 0)
}

// Pow returns a new Value holding v raised to the constant exponent p.
// d(v**p)/dv = p * v**(p-1). Untyped integer constants convert implicitly,
// so v.Pow(2) and v.Pow(-1) read naturally.
func (v *Value) Pow(p float64) *Value {
	return v.g.newNode(OpPow, math.Pow(v.Data(), p), v.id, noOperand, p)
}

// PowValue rejects a graph-tracked exponent with ErrUnsupportedExponent.
// Only plain numeric exponents are supported; use Pow.
func (v *Value) PowValue(exp *Value) (*Value, error) {
	return nil, ErrUnsupportedExponent
}

// ReLU returns a new Value holding v clamped below at zero.
// d(ReLU(v))/dv = 1 where the output is positive, 0 elsewhere.
func (v *Value) ReLU() *Value {
	out := v.Data()
	if out < 0 {
		out = 0
	}
	return v.g.newNode(OpReLU, out, v.id, noOperand, 0)
}

// Tanh returns a new Value holding the hyperbolic tangent of v.
// d(tanh(v))/dv = 1 - tanh(v)², computed from the stored output.
func (v *Value) Tanh() *Value {
	return v.g.newNode(OpTanh, math.Tanh(v.Data()), v.id, noOperand, 0)
}

// Sigmoid returns a new Value holding 1/(1+e^-v).
// d(σ(v))/dv = σ(v) * (1 - σ(v)), computed from the stored output.
func (v *Value) Sigmoid() *Value {
	return v.g.newNode(OpSigmoid, 1/(1+math.Exp(-v.Data())), v.id, noOperand, 0)
}

// Exp returns a new Value holding e^v.
// d(e^v)/dv = e^v, the stored output itself.
func (v *Value) Exp() *Value {
	return v.g.newNode(OpExp, math.Exp(v.Data()), v.id, noOperand, 0)
}

// Log returns a new Value holding the natural logarithm of v.
// d(ln v)/dv = 1/v.
func (v *Value) Log() *Value {
	return v.g.newNode(OpLog, math.Log(v.Data()), v.id, noOperand, 0)
}

// Neg returns -v, expressed as v * -1 so the gradient rule is inherited from
// Mul rather than derived separately.
func (v *Value) Neg() *Value {
	return v.MulScalar(-1)
}

// Sub returns v - w, expressed as v + (-w).
func (v *Value) Sub(w *Value) *Value {
	return v.Add(w.Neg())
}

// Div returns v / w, expressed as v * w**-1. Division by a zero-valued node
// follows IEEE float semantics and yields ±Inf or NaN, not an error.
func (v *Value) Div(w *Value) *Value {
	return v.Mul(w.Pow(-1))
}

// AddScalar returns v + x, wrapping x as a fresh leaf. Addition commutes, so
// this covers x + v as well.
func (v *Value) AddScalar(x float64) *Value {
	return v.Add(v.g.Value(x))
}

// MulScalar returns v * x, wrapping x as a fresh leaf.
func (v *Value) MulScalar(x float64) *Value {
	return v.Mul(v.g.Value(x))
}

// SubScalar returns v - x.
func (v *Value) SubScalar(x float64) *Value {
	return v.Sub(v.g.Value(x))
}

// ScalarSub returns x - v, the reversed form for a raw left operand.
func (v *Value) ScalarSub(x float64) *Value {
	return v.g.Value(x).Sub(v)
}

// DivScalar returns v / x.
func (v *Value) DivScalar(x float64) *Value {
	return v.Div(v.g.Value(x))
}

// ScalarDiv returns x / v, the reversed form for a raw left operand.
func (v *Value) ScalarDiv(x float64) *Value {
	return v.g.Value(x).Div(v)
}
