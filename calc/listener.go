package calc

import (
	"fmt"
	"reflect"
)

// Listener is notified after every change to the displayed value.
//
// Listeners are compared by identity, so implementations must be pointers
// or other comparable values.
type Listener interface {
	ValueChanged(e *Engine)
}

// AddListener registers l. Registering the same listener twice is a no-op.
// Listeners that cannot be compared, such as func adapters, are rejected
// with ErrInvalidListener.
func (e *Engine) AddListener(l Listener) error {
	if !isComparable(l) {
		return fmt.Errorf("%w: %T", ErrInvalidListener, l)
	}
	for _, existing := range e.listeners {
		if existing == l {
			return nil
		}
	}
	e.listeners = append(e.listeners, l)
	return nil
}

// RemoveListener unregisters l. Unknown listeners are ignored.
func (e *Engine) RemoveListener(l Listener) {
	if !isComparable(l) {
		return
	}
	for i, existing := range e.listeners {
		if existing == l {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

func isComparable(l Listener) bool {
	t := reflect.TypeOf(l)
	return t != nil && t.Comparable()
}

func (e *Engine) notify() {
	for _, l := range e.listeners {
		l.ValueChanged(e)
	}
}
