package app

import (
	"calcgrid/calc"
	"calcgrid/keys"
)

var binaryKeys = map[keys.KeyName]calc.Operator{
	keys.KeyAdd:      calc.Add,
	keys.KeySubtract: calc.Subtract,
	keys.KeyMultiply: calc.Multiply,
	keys.KeyDivide:   calc.Divide,
}

var unaryKeys = map[keys.KeyName]calc.Unary{
	keys.KeyReciprocal: calc.Reciprocal,
	keys.KeySin:        calc.Sin,
	keys.KeyCos:        calc.Cos,
	keys.KeyTan:        calc.Tan,
	keys.KeyCtg:        calc.Ctg,
	keys.KeyLog:        calc.Log,
	keys.KeyLn:         calc.Ln,
}

// apply performs the calculator action bound to name. Keys without an action
// are ignored.
func (m *home) apply(name keys.KeyName) error {
	if name.IsDigit() {
		return m.engine.InsertDigit(name.Digit())
	}
	if op, ok := binaryKeys[name]; ok {
		return calc.ApplyOperator(m.engine, op)
	}
	if u, ok := unaryKeys[name]; ok {
		return calc.ApplyUnary(m.engine, u.Select(m.inverted))
	}

	switch name {
	case keys.KeyPoint:
		m.engine.InsertDecimalPoint()
	case keys.KeySign:
		m.engine.SwapSign()
	case keys.KeyPower:
		return calc.ApplyOperator(m.engine, calc.Exponent.Select(m.inverted))
	case keys.KeyEquals:
		return calc.Equals(m.engine)
	case keys.KeyClear:
		m.engine.Clear()
	case keys.KeyReset:
		m.engine.ClearAll()
	case keys.KeyPush:
		return calc.PushValue(m.engine)
	case keys.KeyPop:
		return calc.PopValue(m.engine)
	case keys.KeyInvert:
		m.setInverted(!m.inverted)
	}
	return nil
}
