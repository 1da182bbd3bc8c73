package view

import "strings"

// ChangeFlags are the binary per-view dirty bits. They record that work is
// requested; style.RecalcChange records why, which is what enables the
// graduated recalculation paths.
type ChangeFlags uint8

const (
	// ChangeStyle marks the view's own style as needing recalculation.
	ChangeStyle ChangeFlags = 1 << iota

	// ChangeChildStyle marks that some descendant requested style. It keeps
	// the pass from skipping subtrees with clean roots.
	ChangeChildStyle

	// ChangeLayout marks that the view's geometry must be recomputed. The
	// layout collaborator consumes and clears it.
	ChangeLayout

	// ChangePaint marks that the view must be repainted.
	ChangePaint
)

// Has reports whether all bits in other are set.
func (f ChangeFlags) Has(other ChangeFlags) bool { return f&other == other }

// Intersects reports whether any bit in other is set.
func (f ChangeFlags) Intersects(other ChangeFlags) bool { return f&other != 0 }

func (f ChangeFlags) String() string {
	if f == 0 {
		return "(none)"
	}
	var parts []string
	if f.Has(ChangeStyle) {
		parts = append(parts, "style")
	}
	if f.Has(ChangeChildStyle) {
		parts = append(parts, "child-style")
	}
	if f.Has(ChangeLayout) {
		parts = append(parts, "layout")
	}
	if f.Has(ChangePaint) {
		parts = append(parts, "paint")
	}
	return strings.Join(parts, "|")
}
