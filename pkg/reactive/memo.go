package reactive

import "reflect"

// Memo is a derived signal: its computation re-runs eagerly whenever a
// dependency changes, but its own subscribers are only notified when the
// freshly computed value differs from the previous one. This is the
// mechanism that stops redundant downstream recomputation when an upstream
// signal changes without changing the derived value.
type Memo[T any] struct {
	inner *Signal[T]

	// equal is the equality function used for the short-circuit.
	// If nil, defaultEquals is used.
	equal func(T, T) bool

	effect *Effect
}

// NewMemo creates a memo owned by the current scope and computes its value
// immediately. On recomputation, prev points at the previously computed
// value.
//
// The equality used for the short-circuit defaults to == for basic types and
// reflect.DeepEqual otherwise; override it with WithEquals before the first
// dependency fires.
func NewMemo[T any](fn func(prev *T) T) *Memo[T] {
	m := &Memo[T]{}

	var zero T
	m.inner = NewSignal(zero)

	var prev *T
	m.effect = CreateEffect(func(_ *struct{}) struct{} {
		v := fn(prev)
		if prev == nil {
			// First computation: seed without notifying.
			m.inner.store(v)
		} else if !m.equals(*prev, v) {
			m.inner.Set(v)
		}
		p := v
		prev = &p
		return struct{}{}
	})

	return m
}

// WithEquals configures a custom equality function for the propagation
// short-circuit.
func (m *Memo[T]) WithEquals(fn func(T, T) bool) *Memo[T] {
	m.equal = fn
	return m
}

// Get returns the memo's value and subscribes the current effect.
func (m *Memo[T]) Get() T {
	return m.inner.Get()
}

// With calls fn with the memo's value, subscribing the current effect.
func (m *Memo[T]) With(fn func(T)) {
	m.inner.With(fn)
}

// Peek returns the memo's value without subscribing.
func (m *Memo[T]) Peek() T {
	return m.inner.Peek()
}

// Track subscribes the current effect without reading the value.
func (m *Memo[T]) Track() {
	m.inner.Track()
}

// ID returns the identity of the memo's inner signal.
func (m *Memo[T]) ID() uint64 {
	return m.inner.ID()
}

func (m *Memo[T]) equals(a, b T) bool {
	if m.equal != nil {
		return m.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals provides type-appropriate equality checking.
// Uses == for basic comparable types and reflect.DeepEqual for others.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int8:
		return av == any(b).(int8)
	case int16:
		return av == any(b).(int16)
	case int32:
		return av == any(b).(int32)
	case int64:
		return av == any(b).(int64)
	case uint:
		return av == any(b).(uint)
	case uint8:
		return av == any(b).(uint8)
	case uint16:
		return av == any(b).(uint16)
	case uint32:
		return av == any(b).(uint32)
	case uint64:
		return av == any(b).(uint64)
	case float32:
		return av == any(b).(float32)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		return reflect.DeepEqual(a, b)
	}
}
