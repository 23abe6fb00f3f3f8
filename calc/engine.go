// Package calc implements the calculator model: digit entry into a text
// buffer, a pending binary operator with its active operand, and a memory
// stack. It is single-threaded; listeners run inline before a mutating call
// returns.
package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Engine holds the state of one calculator session.
type Engine struct {
	// buffer is the entry text. It is only meaningful while hasBuffer is set;
	// otherwise the displayed value is 0.
	buffer    string
	hasBuffer bool

	pending    Operator
	hasPending bool

	activeOperand    float64
	activeOperandSet bool

	stack []float64

	listeners []Listener
}

// New returns an engine showing 0 with no chain and an empty stack.
func New() *Engine {
	return &Engine{}
}

// Value returns the current value as a number. A buffer typed past the
// float64 range reads as ±Inf.
func (e *Engine) Value() float64 {
	if !e.hasBuffer {
		return 0
	}
	return parseBuffer(e.buffer)
}

// SetValue replaces the entry buffer with the canonical text of v.
func (e *Engine) SetValue(v float64) error {
	if !isFinite(v) {
		return fmt.Errorf("%w: %v", ErrInvalidOperation, v)
	}
	e.buffer = formatNumber(v)
	e.hasBuffer = true
	e.notify()
	return nil
}

// Clear resets the entry buffer. The chain is left alone.
func (e *Engine) Clear() {
	e.buffer = ""
	e.hasBuffer = false
	e.notify()
}

// ClearAll resets the entry buffer and the chain. The stack survives.
func (e *Engine) ClearAll() {
	e.buffer = ""
	e.hasBuffer = false
	e.activeOperand = 0
	e.activeOperandSet = false
	e.pending = Operator{}
	e.hasPending = false
	e.notify()
}

// SwapSign toggles the leading minus of the entry buffer.
func (e *Engine) SwapSign() {
	if !e.hasBuffer {
		return
	}
	if strings.HasPrefix(e.buffer, "-") {
		e.buffer = strings.TrimPrefix(e.buffer, "-")
	} else {
		e.buffer = "-" + e.buffer
	}
	e.notify()
}

// InsertDecimalPoint appends a decimal point unless the buffer has one.
func (e *Engine) InsertDecimalPoint() {
	if !e.hasBuffer {
		e.buffer = "0"
		e.hasBuffer = true
	}
	if strings.ContainsAny(e.buffer, ".e") {
		return
	}
	e.buffer += "."
	e.notify()
}

// InsertDigit appends d to the buffer. Once the value reaches a tenth of the
// largest float64 further digits are ignored, as are digits after an exponent.
func (e *Engine) InsertDigit(d int) error {
	if d < 0 || d > 9 {
		return fmt.Errorf("%w: %d", ErrInvalidDigit, d)
	}
	digit := strconv.Itoa(d)
	switch {
	case !e.hasBuffer:
		e.buffer = digit
		e.hasBuffer = true
	case strings.Contains(e.buffer, "e"):
		return nil
	case e.Value() < math.MaxFloat64/10:
		e.buffer += digit
	default:
		return nil
	}
	e.notify()
	return nil
}

// HasActiveOperand reports whether an operand is armed.
func (e *Engine) HasActiveOperand() bool {
	return e.activeOperandSet
}

// ActiveOperand returns the armed left operand.
func (e *Engine) ActiveOperand() (float64, error) {
	if !e.activeOperandSet {
		return 0, ErrInvalidState
	}
	return e.activeOperand, nil
}

// SetActiveOperand arms v as the left operand of the pending operator.
func (e *Engine) SetActiveOperand(v float64) error {
	if !isFinite(v) {
		return fmt.Errorf("%w: %v", ErrInvalidOperation, v)
	}
	e.activeOperand = v
	e.activeOperandSet = true
	return nil
}

// ClearActiveOperand disarms the left operand.
func (e *Engine) ClearActiveOperand() {
	e.activeOperand = 0
	e.activeOperandSet = false
}

// PendingOperator returns the armed binary operator, if any.
func (e *Engine) PendingOperator() (Operator, bool) {
	return e.pending, e.hasPending
}

// SetPendingOperator arms op.
func (e *Engine) SetPendingOperator(op Operator) {
	e.pending = op
	e.hasPending = true
}

// ClearPendingOperator drops the armed operator.
func (e *Engine) ClearPendingOperator() {
	e.pending = Operator{}
	e.hasPending = false
}

// Push puts v on the memory stack.
func (e *Engine) Push(v float64) error {
	if !isFinite(v) {
		return fmt.Errorf("%w: %v", ErrInvalidOperation, v)
	}
	e.stack = append(e.stack, v)
	return nil
}

// Pop removes and returns the top of the memory stack.
func (e *Engine) Pop() (float64, error) {
	if len(e.stack) == 0 {
		return 0, ErrStackUnderflow
	}
	v := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	return v, nil
}

// Depth returns the number of values on the memory stack.
func (e *Engine) Depth() int {
	return len(e.stack)
}

// String returns the text to display.
func (e *Engine) String() string {
	if !e.hasBuffer {
		return "0"
	}
	return formatDisplay(e.buffer)
}
