package reactive

import (
	"sync"
	"sync/atomic"
)

// Effect is a computation that re-runs whenever any signal it read during
// its previous run changes. Dependencies are re-tracked on every run, so an
// effect that conditionally reads different signals is only subscribed to
// the ones it actually read last time.
//
// Effects re-run synchronously when a dependency is written, before the
// write returns. Each run happens inside a fresh child scope, and the
// previous run's scope is disposed first, tearing down any nested signals,
// effects, or cleanups the body created.
type Effect struct {
	id uint64

	// fn is the wrapped effect body, closed over its accumulator state.
	fn func()

	// sources are the signals this effect currently observes.
	// Rebuilt on every run.
	sources   []*signalBase
	sourcesMu sync.Mutex

	// owner is the scope that owns this effect.
	owner *Scope

	// runScope holds reactive state created during the last run.
	// Disposed and replaced at the start of each run.
	runScope *Scope

	// running guards against an effect writing one of its own
	// dependencies, which would otherwise recurse without bound.
	running bool

	// disposed indicates the effect has been torn down.
	disposed atomic.Bool
}

// CreateEffect registers and immediately runs an effect. On the first run
// prev is nil; on subsequent runs it points at the previous return value,
// enabling the memoized-accumulator diffing pattern.
//
// The effect is owned by the current scope and torn down with it.
func CreateEffect[T any](fn func(prev *T) T) *Effect {
	e := &Effect{
		id:    nextID(),
		owner: getCurrentScope(),
	}

	var prev *T
	e.fn = func() {
		v := fn(prev)
		prev = &v
	}

	if e.owner != nil {
		e.owner.registerEffect(e)
	}

	e.run()

	return e
}

// ID returns the unique identifier for this effect.
// Implements the Listener interface.
func (e *Effect) ID() uint64 {
	return e.id
}

// MarkDirty re-runs the effect. Outside a batch this happens synchronously
// on the notifying goroutine; inside a batch, the drain calls it once.
// Implements the Listener interface.
func (e *Effect) MarkDirty() {
	e.run()
}

// IsDisposed returns true once the effect has been torn down.
func (e *Effect) IsDisposed() bool {
	return e.disposed.Load()
}

// run executes the effect body with full dependency re-tracking:
// dispose the previous run's scope, drop all existing subscriptions, then
// run the body as the current listener inside a fresh run scope.
func (e *Effect) run() {
	if e.disposed.Load() || e.running {
		return
	}
	e.running = true
	defer func() { e.running = false }()

	if e.runScope != nil {
		e.runScope.Dispose()
	}
	if e.owner != nil {
		e.runScope = e.owner.CreateChild()
	} else {
		e.runScope = NewScope()
	}

	e.clearSources()

	oldListener := setCurrentListener(e)
	defer setCurrentListener(oldListener)

	e.runScope.Enter(e.fn)
}

// addSource records the inverse dependency edge.
// Called by signals when they are read while this effect is current.
func (e *Effect) addSource(source *signalBase) {
	e.sourcesMu.Lock()
	defer e.sourcesMu.Unlock()

	for _, s := range e.sources {
		if s == source {
			return
		}
	}
	e.sources = append(e.sources, source)
}

// clearSources removes this effect from every signal it observed and resets
// the observer list, so the coming run re-tracks from scratch.
func (e *Effect) clearSources() {
	e.sourcesMu.Lock()
	sources := e.sources
	e.sources = nil
	e.sourcesMu.Unlock()

	for _, source := range sources {
		source.unsubscribe(e)
	}
}

// dispose tears the effect down: unsubscribe everywhere and dispose the
// last run's scope.
func (e *Effect) dispose() {
	if e.disposed.Swap(true) {
		return
	}

	e.clearSources()

	if e.runScope != nil {
		e.runScope.Dispose()
		e.runScope = nil
	}
}

// CreateUpdater runs compute reactively and returns its first result.
// Whenever a dependency of compute changes, compute re-runs and the fresh
// result is handed to onChange. The view layer uses this to bind
// signal-driven style setters: the initial style is applied directly, later
// recomputations arrive through onChange.
func CreateUpdater[R any](compute func() R, onChange func(R)) R {
	var result R
	first := true
	CreateEffect(func(_ *struct{}) struct{} {
		v := compute()
		if first {
			first = false
			result = v
		} else {
			onChange(v)
		}
		return struct{}{}
	})
	return result
}
