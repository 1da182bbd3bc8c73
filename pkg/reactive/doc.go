// Package reactive provides the fine-grained reactive runtime that drives
// style recalculation: signals, effects, memos, triggers, and hierarchical
// scopes for bulk disposal.
//
// # Core Types
//
// Signal[T] is a reactive value container:
//
//	count := reactive.NewSignal(0)
//	value := count.Get()  // Read (subscribes the current effect)
//	count.Set(5)          // Write (synchronously re-runs subscribers)
//	count.Update(func(n int) int { return n + 1 })
//
// Effect re-runs whenever any signal it read during its last run changes.
// The previous return value is passed back in, enabling diffing:
//
//	reactive.CreateEffect(func(prev *int) int {
//	    n := count.Get()
//	    if prev != nil && *prev != n {
//	        // react to the change
//	    }
//	    return n
//	})
//
// Memo[T] is a derived signal that only notifies its own subscribers when
// the recomputed value actually differs from the previous one.
//
// # Propagation Model
//
// Writes are synchronous: Set re-runs every subscribed effect, depth-first,
// on the calling goroutine, before it returns. There is no deferred queue
// unless updates are explicitly grouped with Batch.
//
// # Ownership
//
// Every signal and effect is owned by the Scope that was current when it was
// created. Disposing a scope recursively disposes all descendant scopes and
// everything registered under them. Effects additionally own a per-run child
// scope, so reactive state created inside an effect body is torn down before
// the next run.
//
// # Threading
//
// The runtime is per-goroutine. Handles must stay on the goroutine that
// created them; there is no cross-goroutine signal sharing.
package reactive
