// Package style implements the style value model and the graduated
// recalculation engine.
//
// A Style is a property-keyed map with conditionally merged sub-maps for
// interaction selectors (hover, focus, active, ...), responsive breakpoints,
// and style classes. Each property key carries static metadata: whether it
// is inherited by children and whether it affects layout.
//
// StyleRecalcChange describes, for one node during a style pass, how
// aggressively style must be re-resolved and whether the cheap
// inherited-only path is legal. It is a pure value type; the view package
// threads it through the tree.
package style
