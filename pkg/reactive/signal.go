package reactive

import (
	"sync"
	"sync/atomic"
)

// signalBase provides type-erased subscriber management.
// It is embedded in Signal[T] to share subscription logic with Trigger and
// the memo's inner signal.
type signalBase struct {
	id uint64

	// subs are the listeners subscribed to this signal, in subscription
	// order. Order carries no semantic meaning; subscribers of one signal
	// are independent of each other.
	subs []Listener

	// subMu protects the subs slice.
	subMu sync.Mutex

	// disposed marks the signal as torn down by scope disposal.
	// A disposed signal is inert: writes and notifications are no-ops.
	disposed atomic.Bool
}

// subscribe adds a listener to this signal's subscribers.
// Deduplicates by listener ID to prevent double-subscription.
func (s *signalBase) subscribe(l Listener) {
	if l == nil || s.disposed.Load() {
		return
	}

	s.subMu.Lock()
	defer s.subMu.Unlock()

	lid := l.ID()
	for _, existing := range s.subs {
		if existing.ID() == lid {
			return
		}
	}

	s.subs = append(s.subs, l)
}

// unsubscribe removes a listener from this signal's subscribers.
func (s *signalBase) unsubscribe(l Listener) {
	if l == nil {
		return
	}

	s.subMu.Lock()
	defer s.subMu.Unlock()

	lid := l.ID()
	for i, existing := range s.subs {
		if existing.ID() == lid {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// notifySubscribers re-runs every subscribed listener. Outside a batch this
// happens synchronously, before the triggering write returns; inside a batch
// the listeners are queued and deduplicated for the batch drain.
//
// The subscriber list is copied first: listeners re-track their dependencies
// while running, mutating subs under our feet otherwise.
func (s *signalBase) notifySubscribers() {
	if s.disposed.Load() {
		return
	}

	s.subMu.Lock()
	subs := make([]Listener, len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	if getBatchDepth() > 0 {
		for _, sub := range subs {
			queuePendingUpdate(sub)
		}
		return
	}

	for _, sub := range subs {
		sub.MarkDirty()
	}
}

// track subscribes the current listener without reading any value.
func (s *signalBase) track() {
	if listener := getCurrentListener(); listener != nil {
		s.subscribe(listener)
		if o, ok := listener.(observer); ok {
			o.addSource(s)
		}
	}
}

// dispose marks the signal as torn down and drops its subscribers.
// Implements disposable for scope teardown.
func (s *signalBase) dispose() {
	if s.disposed.Swap(true) {
		return
	}
	s.subMu.Lock()
	s.subs = nil
	s.subMu.Unlock()
}

// observer is a listener that keeps the inverse dependency edge, so it can
// unsubscribe from signals it stops reading. Effects implement it.
type observer interface {
	Listener
	addSource(source *signalBase)
}

// Signal is a reactive value container. Reading a signal during an effect or
// memo run subscribes that effect to the signal; writing re-runs every
// subscriber synchronously.
//
// A write always notifies, even when the new value compares equal to the old
// one. Use a Memo to cut propagation on unchanged derived values.
type Signal[T any] struct {
	base signalBase

	// value is the current signal value.
	value T

	// mu protects the value.
	mu sync.RWMutex
}

// NewSignal creates a new read-write signal with the given initial value,
// owned by the current scope.
func NewSignal[T any](initial T) *Signal[T] {
	s := &Signal[T]{
		base: signalBase{
			id: nextID(),
		},
		value: initial,
	}
	if scope := getCurrentScope(); scope != nil {
		scope.registerSignal(&s.base)
	}
	return s
}

// NewSplitSignal creates a signal and returns separated read and write
// handles referencing the same underlying storage.
func NewSplitSignal[T any](initial T) (*ReadSignal[T], *WriteSignal[T]) {
	s := NewSignal(initial)
	return s.ReadOnly(), s.WriteOnly()
}

// Get returns the current value and subscribes the current effect, if any.
func (s *Signal[T]) Get() T {
	s.base.track()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// With calls fn with the current value, subscribing the current effect.
// The value must not be retained past fn.
func (s *Signal[T]) With(fn func(T)) {
	fn(s.Get())
}

// Peek returns the current value without subscribing.
// Use this to read a signal without forming a dependency edge.
func (s *Signal[T]) Peek() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// PeekWith calls fn with the current value without subscribing.
func (s *Signal[T]) PeekWith(fn func(T)) {
	fn(s.Peek())
}

// Track subscribes the current effect without reading the value.
func (s *Signal[T]) Track() {
	s.base.track()
}

// Set replaces the signal's value and synchronously re-runs all subscribed
// effects before returning. Writing a disposed signal is a no-op.
func (s *Signal[T]) Set(value T) {
	if s.base.disposed.Load() {
		return
	}

	s.mu.Lock()
	s.value = value
	s.mu.Unlock()

	s.base.notifySubscribers()
}

// Update mutates the signal's value through fn and notifies subscribers.
func (s *Signal[T]) Update(fn func(T) T) {
	if s.base.disposed.Load() {
		return
	}

	s.mu.Lock()
	s.value = fn(s.value)
	s.mu.Unlock()

	s.base.notifySubscribers()
}

// store replaces the value without notifying. Used by Memo to seed its
// inner signal on the first computation.
func (s *Signal[T]) store(value T) {
	s.mu.Lock()
	s.value = value
	s.mu.Unlock()
}

// ID returns the unique identifier for this signal.
func (s *Signal[T]) ID() uint64 {
	return s.base.id
}

// IsDisposed reports whether the signal's owning scope has been disposed.
// A disposed signal still answers reads with its last value but ignores
// writes; callers treat it as already torn down, not as an error.
func (s *Signal[T]) IsDisposed() bool {
	return s.base.disposed.Load()
}

// ReadOnly returns a read handle sharing this signal's storage.
func (s *Signal[T]) ReadOnly() *ReadSignal[T] {
	return &ReadSignal[T]{s: s}
}

// WriteOnly returns a write handle sharing this signal's storage.
func (s *Signal[T]) WriteOnly() *WriteSignal[T] {
	return &WriteSignal[T]{s: s}
}

// ReadSignal is the read half of a split signal.
type ReadSignal[T any] struct {
	s *Signal[T]
}

// Get returns the current value and subscribes the current effect.
func (r *ReadSignal[T]) Get() T { return r.s.Get() }

// With calls fn with the current value, subscribing the current effect.
func (r *ReadSignal[T]) With(fn func(T)) { r.s.With(fn) }

// Peek returns the current value without subscribing.
func (r *ReadSignal[T]) Peek() T { return r.s.Peek() }

// PeekWith calls fn with the current value without subscribing.
func (r *ReadSignal[T]) PeekWith(fn func(T)) { r.s.PeekWith(fn) }

// Track subscribes the current effect without reading the value.
func (r *ReadSignal[T]) Track() { r.s.Track() }

// ID returns the identity of the underlying signal.
func (r *ReadSignal[T]) ID() uint64 { return r.s.ID() }

// WriteSignal is the write half of a split signal.
type WriteSignal[T any] struct {
	s *Signal[T]
}

// Set replaces the value and synchronously re-runs subscribers.
func (w *WriteSignal[T]) Set(value T) { w.s.Set(value) }

// Update mutates the value through fn and notifies subscribers.
func (w *WriteSignal[T]) Update(fn func(T) T) { w.s.Update(fn) }

// ID returns the identity of the underlying signal.
func (w *WriteSignal[T]) ID() uint64 { return w.s.ID() }
