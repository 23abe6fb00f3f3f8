package calc

import "math"

// Operator is a named binary function of the active operand and the current value.
type Operator struct {
	Symbol string
	fn     func(left, right float64) float64
}

// NewOperator wraps fn as an operator displayed as symbol.
func NewOperator(symbol string, fn func(left, right float64) float64) Operator {
	return Operator{Symbol: symbol, fn: fn}
}

// Apply evaluates the operator. The result may be NaN or infinite; SetValue
// rejects such results.
func (o Operator) Apply(left, right float64) float64 {
	if o.fn == nil {
		return math.NaN()
	}
	return o.fn(left, right)
}

// Built-in binary operators.
var (
	Add          = NewOperator("+", func(l, r float64) float64 { return l + r })
	Subtract     = NewOperator("-", func(l, r float64) float64 { return l - r })
	Multiply     = NewOperator("*", func(l, r float64) float64 { return l * r })
	Divide       = NewOperator("/", func(l, r float64) float64 { return l / r })
	Power        = NewOperator("x^n", math.Pow)
	InversePower = NewOperator("x^-n", func(l, r float64) float64 { return math.Pow(l, -r) })
)

// Func is a unary operation on the current value.
type Func func(float64) float64

// Unary is a unary operation with an optional inverse, selected by the
// calculator's inversion toggle.
type Unary struct {
	Label    string
	InvLabel string
	Apply    Func
	Inverse  Func
}

// Select returns the function for the given inversion state. Operations
// without an inverse ignore the flag.
func (u Unary) Select(inverted bool) Func {
	if inverted && u.Inverse != nil {
		return u.Inverse
	}
	return u.Apply
}

// LabelFor returns the label shown for the given inversion state.
func (u Unary) LabelFor(inverted bool) string {
	if inverted && u.InvLabel != "" {
		return u.InvLabel
	}
	return u.Label
}

// Unary operations of the scientific keypad.
var (
	Reciprocal = Unary{Label: "1/x", Apply: func(x float64) float64 { return math.Pow(x, -1) }}
	Sin        = Unary{Label: "sin", InvLabel: "asin", Apply: math.Sin, Inverse: math.Asin}
	Cos        = Unary{Label: "cos", InvLabel: "acos", Apply: math.Cos, Inverse: math.Acos}
	Tan        = Unary{Label: "tan", InvLabel: "atan", Apply: math.Tan, Inverse: math.Atan}
	Ctg        = Unary{
		Label:    "ctg",
		InvLabel: "actg",
		Apply:    func(x float64) float64 { return math.Pow(math.Tan(x), -1) },
		Inverse:  func(x float64) float64 { return math.Pi/2 - math.Atan(x) },
	}
	Log = Unary{
		Label:    "log",
		InvLabel: "10^x",
		Apply:    math.Log10,
		Inverse:  func(x float64) float64 { return math.Pow(10, x) },
	}
	Ln = Unary{Label: "ln", InvLabel: "e^x", Apply: math.Log, Inverse: math.Exp}
)

// Switchable is a binary operator with an inverse, selected by the
// calculator's inversion toggle.
type Switchable struct {
	Apply   Operator
	Inverse Operator
}

// Select returns the operator for the given inversion state.
func (s Switchable) Select(inverted bool) Operator {
	if inverted {
		return s.Inverse
	}
	return s.Apply
}

// Exponent is the x^n key, x^-n when inverted.
var Exponent = Switchable{Apply: Power, Inverse: InversePower}
