package calc

import "fmt"

// Model is the set of engine primitives the key-press protocol is built on.
type Model interface {
	Value() float64
	SetValue(v float64) error
	ActiveOperand() (float64, error)
	SetActiveOperand(v float64) error
	ClearActiveOperand()
	PendingOperator() (Operator, bool)
	SetPendingOperator(op Operator)
	ClearPendingOperator()
	Push(v float64) error
	Pop() (float64, error)
}

// current returns the entry value, failing when it was typed past the
// float64 range.
func current(m Model) (float64, error) {
	v := m.Value()
	if !isFinite(v) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidOperation, v)
	}
	return v, nil
}

// evaluatePending applies the pending operator to the active operand and the
// current value and stores the result. It reports whether anything was pending.
func evaluatePending(m Model) (bool, error) {
	op, ok := m.PendingOperator()
	if !ok {
		return false, nil
	}
	left, err := m.ActiveOperand()
	if err != nil {
		return true, err
	}
	right, err := current(m)
	if err != nil {
		return true, err
	}
	return true, m.SetValue(op.Apply(left, right))
}

// ApplyOperator handles a binary operator key. A pending operator is
// evaluated first; if that fails the chain is left untouched. Then the current
// value becomes the active operand, op becomes pending and the entry resets to 0.
func ApplyOperator(m Model, op Operator) error {
	if _, err := evaluatePending(m); err != nil {
		return err
	}
	v, err := current(m)
	if err != nil {
		return err
	}
	if err := m.SetActiveOperand(v); err != nil {
		return err
	}
	m.SetPendingOperator(op)
	return m.SetValue(0)
}

// Equals handles the "=" key: evaluate the pending operator and end the chain.
// Without a pending operator it does nothing.
func Equals(m Model) error {
	pending, err := evaluatePending(m)
	if err != nil || !pending {
		return err
	}
	m.ClearActiveOperand()
	m.ClearPendingOperator()
	return nil
}

// ApplyUnary replaces the current value with fn of it.
func ApplyUnary(m Model, fn Func) error {
	v, err := current(m)
	if err != nil {
		return err
	}
	return m.SetValue(fn(v))
}

// PushValue moves the current value onto the stack and resets the entry to 0.
func PushValue(m Model) error {
	v, err := current(m)
	if err != nil {
		return err
	}
	if err := m.Push(v); err != nil {
		return err
	}
	return m.SetValue(0)
}

// PopValue replaces the current value with the top of the stack.
func PopValue(m Model) error {
	v, err := m.Pop()
	if err != nil {
		return err
	}
	return m.SetValue(v)
}

var _ Model = (*Engine)(nil)
