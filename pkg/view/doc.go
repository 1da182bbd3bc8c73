// Package view holds the view tree, per-view style state, and the style
// pass that resolves styles top-down.
//
// A View owns a reactive scope; removing a view from the tree disposes the
// scope, tearing down every signal and effect created while building it.
// Style state lives in ViewState: a stack of style slots that reactive
// updaters write into, the cached combined (selector-resolved) and computed
// (inheritance-applied) styles, and the change flags that drive the next
// pass.
//
// The style pass walks the tree pre-order, carrying a style.RecalcChange
// from parent to child. Views whose incoming change permits it take the
// inherited-only fast path, overlaying fresh inherited values on the cached
// combined style instead of re-running selector resolution.
package view
