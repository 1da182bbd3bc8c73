package view

import (
	"github.com/floem-go/floem/pkg/style"
)

// Root owns a view tree plus the window-level state that drives style
// resolution: which views are hovered, focused, active, dragging, selected
// or disabled, the dark-mode flag, and the responsive breakpoint. It also
// accumulates the pending recalc changes consumed by the next style pass.
//
// Root is not safe for concurrent use; like the tree it owns, it belongs to
// the goroutine running the update loop.
type Root struct {
	root *View

	hovered  map[uint64]bool
	selected map[uint64]bool
	disabled map[uint64]bool
	focused  uint64
	active   uint64
	dragging uint64

	focusVisible bool
	darkMode     bool
	breakpoint   style.Breakpoint

	// pendingChildChanges holds recalc changes to hand to a view's children
	// on the next pass, keyed by the parent view's id. Interaction
	// transitions on inherited states (disabled, selected) land here.
	pendingChildChanges map[uint64]style.RecalcChange

	// pendingGlobalRecalc is folded into the change entering the root view.
	// Dark-mode and breakpoint transitions land here.
	pendingGlobalRecalc style.RecalcChange
}

// NewRoot wraps a view as the root of a styled tree.
func NewRoot(root *View) *Root {
	return &Root{
		root:                root,
		hovered:             make(map[uint64]bool),
		selected:            make(map[uint64]bool),
		disabled:            make(map[uint64]bool),
		breakpoint:          style.BreakpointForWidth(1024),
		pendingChildChanges: make(map[uint64]style.RecalcChange),
	}
}

// View returns the root view.
func (r *Root) View() *View { return r.root }

// Breakpoint returns the current responsive breakpoint.
func (r *Root) Breakpoint() style.Breakpoint { return r.breakpoint }

// DarkMode returns the current dark-mode flag.
func (r *Root) DarkMode() bool { return r.darkMode }

// RequestStyle marks the view's own style dirty and bubbles a child-style
// bit up through its ancestors so the next pass reaches it.
func (r *Root) RequestStyle(v *View) {
	v.state.requested |= ChangeStyle
	for p := v.parent; p != nil; p = p.parent {
		if p.state.requested.Has(ChangeChildStyle) {
			break
		}
		p.state.requested |= ChangeChildStyle
	}
}

// RequestStyleRecursive marks the whole subtree dirty. Interior nodes also
// get the child-style bit so the pass descends past views whose own resolved
// style comes out unchanged.
func (r *Root) RequestStyleRecursive(v *View) {
	v.Walk(func(n *View) bool {
		n.state.requested |= ChangeStyle
		if len(n.children) > 0 {
			n.state.requested |= ChangeChildStyle
		}
		return true
	})
	for p := v.parent; p != nil; p = p.parent {
		if p.state.requested.Has(ChangeChildStyle) {
			break
		}
		p.state.requested |= ChangeChildStyle
	}
}

// requestChildChange queues a recalc change for v's children on the next
// pass and makes sure the pass reaches v.
func (r *Root) requestChildChange(v *View, change style.RecalcChange) {
	r.pendingChildChanges[v.id] = r.pendingChildChanges[v.id].Combine(change)
	r.RequestStyle(v)
}

// styleRelevant reports whether a selector transition on v can change its
// resolved style at all.
func styleRelevant(v *View, sel style.Selector) bool {
	return v.state.hasStyleSelectors.Has(sel)
}

// SetHovered records a pointer enter or leave. Style is requested only when
// the view actually styles its hovered state.
func (r *Root) SetHovered(v *View, hovered bool) {
	if r.hovered[v.id] == hovered {
		return
	}
	if hovered {
		r.hovered[v.id] = true
	} else {
		delete(r.hovered, v.id)
	}
	if styleRelevant(v, style.SelHover) {
		r.RequestStyle(v)
	}
}

// SetFocused moves keyboard focus to v, or clears it when v is nil.
func (r *Root) SetFocused(v *View, visible bool) {
	prev := r.focused
	r.focused = 0
	r.focusVisible = visible
	if v != nil {
		r.focused = v.id
	}
	if v != nil && prev != v.id &&
		(styleRelevant(v, style.SelFocus) || styleRelevant(v, style.SelFocusVisible)) {
		r.RequestStyle(v)
	}
	if prev != 0 && (v == nil || prev != v.id) {
		if old := r.findView(prev); old != nil &&
			(styleRelevant(old, style.SelFocus) || styleRelevant(old, style.SelFocusVisible)) {
			r.RequestStyle(old)
		}
	}
}

// SetActive records a pointer press or release on v, or clears the active
// view when v is nil.
func (r *Root) SetActive(v *View, active bool) {
	id := uint64(0)
	if active && v != nil {
		id = v.id
	}
	if r.active == id {
		return
	}
	prev := r.active
	r.active = id
	if v != nil && styleRelevant(v, style.SelActive) {
		r.RequestStyle(v)
	}
	if prev != 0 && prev != id {
		if old := r.findView(prev); old != nil && styleRelevant(old, style.SelActive) {
			r.RequestStyle(old)
		}
	}
}

// SetDragging records a drag start or end on v, or clears the dragging view
// when v is nil.
func (r *Root) SetDragging(v *View, dragging bool) {
	id := uint64(0)
	if dragging && v != nil {
		id = v.id
	}
	if r.dragging == id {
		return
	}
	prev := r.dragging
	r.dragging = id
	if v != nil && styleRelevant(v, style.SelDragging) {
		r.RequestStyle(v)
	}
	if prev != 0 && prev != id {
		if old := r.findView(prev); old != nil && styleRelevant(old, style.SelDragging) {
			r.RequestStyle(old)
		}
	}
}

// SetSelected toggles the view's selected state. Selection is inherited:
// descendants styling their selected state recalc too, through an
// inherited-only change carrying the selected-changed flag so the fast path
// cannot skip them.
func (r *Root) SetSelected(v *View, selected bool) {
	if r.selected[v.id] == selected {
		return
	}
	if selected {
		r.selected[v.id] = true
	} else {
		delete(r.selected, v.id)
	}
	if styleRelevant(v, style.SelSelected) {
		r.RequestStyle(v)
	}
	r.requestChildChange(v,
		style.NewRecalcChange(style.PropagateInheritedOnly).WithFlags(style.FlagSelectedChanged))
}

// SetDisabled toggles the view's disabled state, which descendants inherit.
func (r *Root) SetDisabled(v *View, disabled bool) {
	if r.disabled[v.id] == disabled {
		return
	}
	if disabled {
		r.disabled[v.id] = true
	} else {
		delete(r.disabled, v.id)
	}
	r.RequestStyle(v)
	r.requestChildChange(v,
		style.NewRecalcChange(style.PropagateInheritedOnly).WithFlags(style.FlagDisabledChanged))
}

// AddClass attaches a style class to the view and schedules the recalc the
// change requires.
func (r *Root) AddClass(v *View, c *style.Class) {
	v.AddClass(c)
	r.RequestStyle(v)
}

// RemoveClass detaches a style class from the view.
func (r *Root) RemoveClass(v *View, c *style.Class) {
	v.RemoveClass(c)
	r.RequestStyle(v)
}

// SetDarkMode toggles dark mode for the whole tree. Every view may style its
// dark-mode state, so the next pass recalculates all descendants.
func (r *Root) SetDarkMode(dark bool) {
	if r.darkMode == dark {
		return
	}
	r.darkMode = dark
	r.pendingGlobalRecalc = r.pendingGlobalRecalc.Combine(
		style.NewRecalcChange(style.PropagateRecalcDescendants).WithFlags(style.FlagDarkModeChanged))
	r.RequestStyle(r.root)
}

// SetScreenSize records a window resize. A recalc is queued only when the
// responsive breakpoint actually changes bucket.
func (r *Root) SetScreenSize(width float64) {
	bp := style.BreakpointForWidth(width)
	if bp == r.breakpoint {
		return
	}
	r.breakpoint = bp
	r.pendingGlobalRecalc = r.pendingGlobalRecalc.Combine(
		style.NewRecalcChange(style.PropagateRecalcDescendants).WithFlags(style.FlagResponsiveChanged))
	r.RequestStyle(r.root)
}

// interactionState assembles the selector predicate inputs for one view.
// Disabled walks up the tree since ancestors disable their subtrees.
func (r *Root) interactionState(v *View) style.InteractionState {
	disabled := false
	for n := v; n != nil; n = n.parent {
		if r.disabled[n.id] {
			disabled = true
			break
		}
	}
	selected := false
	for n := v; n != nil; n = n.parent {
		if r.selected[n.id] {
			selected = true
			break
		}
	}
	return style.InteractionState{
		Hovered:      r.hovered[v.id],
		Focused:      r.focused == v.id,
		FocusVisible: r.focused == v.id && r.focusVisible,
		Active:       r.active == v.id,
		Dragging:     r.dragging == v.id,
		Selected:     selected,
		Disabled:     disabled,
		DarkMode:     r.darkMode,
	}
}

func (r *Root) findView(id uint64) *View {
	var found *View
	r.root.Walk(func(v *View) bool {
		if v.id == id {
			found = v
			return false
		}
		return true
	})
	return found
}
