package reactive

import (
	"reflect"
	"sync"

	"github.com/petermattis/goid"
)

// trackingContext holds the reactive state for one goroutine: which scope
// owns newly created primitives, which listener is collecting dependencies,
// batch nesting, and the type-keyed context table.
type trackingContext struct {
	// currentScope owns signals and effects created while it is current.
	// nil means new primitives are unowned and live until process exit.
	currentScope *Scope

	// currentListener is what is currently tracking dependencies.
	// When a signal is read, it subscribes this listener.
	// nil means no tracking (reads don't create subscriptions).
	currentListener Listener

	// batchDepth tracks nested Batch() calls. When > 0, signal updates
	// queue notifications instead of firing immediately.
	batchDepth int

	// pendingUpdates accumulates listeners to notify when the outermost
	// batch completes. Deduplicated by ID before notification.
	pendingUpdates []Listener

	// contexts is the type-indexed value table for ProvideContext/UseContext.
	contexts map[reflect.Type]any
}

// trackingContexts stores per-goroutine tracking contexts.
var trackingContexts sync.Map

// getTrackingContext returns the tracking context for the current goroutine,
// creating it on first use.
func getTrackingContext() *trackingContext {
	gid := goid.Get()

	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*trackingContext)
	}

	ctx := &trackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

// getCurrentListener returns the listener currently collecting dependencies,
// or nil if no tracking is active.
func getCurrentListener() Listener {
	return getTrackingContext().currentListener
}

// setCurrentListener sets the current listener for dependency tracking.
// Returns the previous listener so it can be restored.
func setCurrentListener(l Listener) Listener {
	ctx := getTrackingContext()
	old := ctx.currentListener
	ctx.currentListener = l
	return old
}

// getCurrentScope returns the scope that owns newly created primitives,
// or nil if none is set.
func getCurrentScope() *Scope {
	return getTrackingContext().currentScope
}

// setCurrentScope sets the current owning scope.
// Returns the previous scope so it can be restored.
func setCurrentScope(s *Scope) *Scope {
	ctx := getTrackingContext()
	old := ctx.currentScope
	ctx.currentScope = s
	return old
}

// getBatchDepth returns the current batch nesting depth.
func getBatchDepth() int {
	return getTrackingContext().batchDepth
}

// incrementBatchDepth increases the batch depth by 1.
func incrementBatchDepth() {
	getTrackingContext().batchDepth++
}

// decrementBatchDepth decreases the batch depth by 1.
// Returns true if batch depth reached 0 (batch complete).
func decrementBatchDepth() bool {
	ctx := getTrackingContext()
	ctx.batchDepth--
	return ctx.batchDepth == 0
}

// queuePendingUpdate adds a listener to the pending updates queue.
// Called during batch mode when a signal is updated.
func queuePendingUpdate(l Listener) {
	ctx := getTrackingContext()
	ctx.pendingUpdates = append(ctx.pendingUpdates, l)
}

// drainPendingUpdates returns and clears the pending updates queue.
func drainPendingUpdates() []Listener {
	ctx := getTrackingContext()
	updates := ctx.pendingUpdates
	ctx.pendingUpdates = nil
	return updates
}

// WithListener runs fn with the given listener installed for dependency
// tracking, restoring the previous listener on all exit paths.
func WithListener(l Listener, fn func()) {
	old := setCurrentListener(l)
	defer setCurrentListener(old)
	fn()
}
