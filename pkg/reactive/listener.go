package reactive

// Listener is anything that can be notified when a signal it subscribed to
// changes. Effects implement it directly; memos implement it through their
// inner effect.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies changed.
	// Outside a batch this runs the listener synchronously, before the
	// triggering Set or Update returns.
	MarkDirty()

	// ID returns a unique identifier for this listener.
	// Used for deduplication when a batch drains.
	ID() uint64
}

// disposable is anything a Scope can tear down on disposal.
type disposable interface {
	dispose()
}
