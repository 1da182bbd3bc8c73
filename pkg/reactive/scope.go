package reactive

import (
	"sync"
	"sync/atomic"
)

// Scope is a node in the hierarchical ownership tree. Signals and effects
// created while a scope is current are registered under it, and disposing
// the scope tears them all down, children first.
//
// Scopes mirror the view tree: each view owns one, so removing a view
// cascades through every piece of reactive state the view created.
type Scope struct {
	id uint64

	// parent is the parent scope, nil for a root scope.
	parent *Scope

	// children are child scopes, in creation order.
	children   []*Scope
	childrenMu sync.Mutex

	// signals are the signal storages registered directly under this scope.
	signals   []disposable
	signalsMu sync.Mutex

	// effects owned by this scope.
	effects   []*Effect
	effectsMu sync.Mutex

	// cleanups are functions registered via OnCleanup, run on disposal in
	// reverse registration order.
	cleanups   []func()
	cleanupsMu sync.Mutex

	// disposed indicates whether this scope has been disposed.
	disposed atomic.Bool
}

// NewScope creates a scope that is not a child of any other scope.
func NewScope() *Scope {
	return &Scope{id: nextID()}
}

// CreateChild creates a new scope registered as a child of s.
func (s *Scope) CreateChild() *Scope {
	child := &Scope{
		id:     nextID(),
		parent: s,
	}
	s.childrenMu.Lock()
	s.children = append(s.children, child)
	s.childrenMu.Unlock()
	return child
}

// CurrentScope returns the scope that owns newly created reactive
// primitives on this goroutine, or nil if none has been entered.
func CurrentScope() *Scope {
	return getCurrentScope()
}

// ID returns the unique identifier for this scope.
func (s *Scope) ID() uint64 {
	return s.id
}

// Parent returns the parent scope, or nil for a root scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// IsDisposed returns true once Dispose has run.
func (s *Scope) IsDisposed() bool {
	return s.disposed.Load()
}

// Enter runs fn with s as the current scope. Any signal, effect or child
// scope created inside fn is owned by s. The previous current scope is
// restored on every exit path, including panics.
func (s *Scope) Enter(fn func()) {
	old := setCurrentScope(s)
	defer setCurrentScope(old)
	fn()
}

// EnterChild runs fn inside a fresh child scope of s and returns that scope,
// so the caller can dispose the state fn created as one unit.
func (s *Scope) EnterChild(fn func()) *Scope {
	child := s.CreateChild()
	child.Enter(fn)
	return child
}

// registerSignal records a signal storage for teardown on disposal.
func (s *Scope) registerSignal(d disposable) {
	if s.disposed.Load() {
		return
	}
	s.signalsMu.Lock()
	s.signals = append(s.signals, d)
	s.signalsMu.Unlock()
}

// registerEffect records an effect for teardown on disposal.
func (s *Scope) registerEffect(e *Effect) {
	if s.disposed.Load() {
		return
	}
	s.effectsMu.Lock()
	s.effects = append(s.effects, e)
	s.effectsMu.Unlock()
}

// removeChild detaches a disposed child from s.
func (s *Scope) removeChild(child *Scope) {
	s.childrenMu.Lock()
	defer s.childrenMu.Unlock()
	for i, c := range s.children {
		if c == child {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}

// OnCleanup registers fn to run when the current scope is disposed. Inside
// an effect body the current scope is the effect's run scope, so the cleanup
// also runs before the effect's next execution.
//
// With no current scope, fn is dropped: there is nothing it could be tied to.
func OnCleanup(fn func()) {
	scope := getCurrentScope()
	if scope == nil {
		return
	}
	scope.onCleanup(fn)
}

func (s *Scope) onCleanup(fn func()) {
	if s.disposed.Load() {
		// Already disposed, run immediately.
		fn()
		return
	}
	s.cleanupsMu.Lock()
	s.cleanups = append(s.cleanups, fn)
	s.cleanupsMu.Unlock()
}

// Dispose tears down this scope: all descendant scopes first (depth-first,
// last created first), then effects, then signal storage, then cleanups in
// reverse registration order. Disposing an already-disposed scope is a
// no-op, as is any later write to a signal it owned.
func (s *Scope) Dispose() {
	if s.disposed.Swap(true) {
		return
	}

	if s.parent != nil {
		s.parent.removeChild(s)
	}

	s.childrenMu.Lock()
	children := make([]*Scope, len(s.children))
	copy(children, s.children)
	s.children = nil
	s.childrenMu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	s.effectsMu.Lock()
	effects := s.effects
	s.effects = nil
	s.effectsMu.Unlock()

	for _, e := range effects {
		e.dispose()
	}

	s.signalsMu.Lock()
	signals := s.signals
	s.signals = nil
	s.signalsMu.Unlock()

	for _, sig := range signals {
		sig.dispose()
	}

	s.cleanupsMu.Lock()
	cleanups := s.cleanups
	s.cleanups = nil
	s.cleanupsMu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
