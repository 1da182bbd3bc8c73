package reactive

// Batch groups multiple signal writes into a single notification phase.
// Listeners notified inside the batch are collected and deduplicated by ID,
// then each runs exactly once when the outermost batch completes.
//
// Batches nest: notifications only fire when the outermost batch ends.
//
//	reactive.Batch(func() {
//	    fontSize.Set(16)
//	    textColor.Set(dark)
//	})
//	// dependent effects run once, after both writes
func Batch(fn func()) {
	incrementBatchDepth()

	defer func() {
		if decrementBatchDepth() {
			processPendingUpdates()
		}
	}()

	fn()
}

// processPendingUpdates deduplicates and notifies all pending listeners.
func processPendingUpdates() {
	updates := drainPendingUpdates()
	if len(updates) == 0 {
		return
	}

	seen := make(map[uint64]bool, len(updates))
	for _, listener := range updates {
		id := listener.ID()
		if seen[id] {
			continue
		}
		seen[id] = true
		listener.MarkDirty()
	}
}

// Untracked runs fn without tracking signal reads as dependencies. The
// previous tracking state is restored on all exit paths, including panics.
//
// For a single read, signal.Peek() is clearer.
func Untracked(fn func()) {
	old := setCurrentListener(nil)
	defer setCurrentListener(old)
	fn()
}

// UntrackedGet reads a signal's value without creating a dependency.
// Equivalent to s.Peek().
func UntrackedGet[T any](s *Signal[T]) T {
	return s.Peek()
}
