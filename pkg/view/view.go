package view

import (
	"sync/atomic"

	"github.com/floem-go/floem/pkg/reactive"
	"github.com/floem-go/floem/pkg/style"
)

var viewIDCounter atomic.Uint64

// View is a node in the view tree. Each view owns a reactive scope: signals
// and effects created while building the view are disposed when the view is
// removed from the tree.
type View struct {
	id       uint64
	parent   *View
	children []*View
	scope    *reactive.Scope
	state    *ViewState
}

// New creates a detached view with its own root scope. Use AddChild to
// attach it under a parent, or hand it to a Root as the tree root.
func New() *View {
	v := &View{
		id:    viewIDCounter.Add(1),
		scope: reactive.NewScope(),
		state: newViewState(),
	}
	v.state.requested |= ChangeStyle
	return v
}

// ID returns the view's stable identifier.
func (v *View) ID() uint64 { return v.id }

// Parent returns the parent view, or nil for the root.
func (v *View) Parent() *View { return v.parent }

// Children returns the view's children. The returned slice is the view's
// own; callers must not mutate it.
func (v *View) Children() []*View { return v.children }

// Scope returns the view's owning reactive scope. Effects driving the
// view's styles are created inside it so they die with the view.
func (v *View) Scope() *reactive.Scope { return v.scope }

// State returns the view's style state.
func (v *View) State() *ViewState { return v.state }

// NewChild creates a view attached under v, with a reactive scope parented
// to v's scope.
func (v *View) NewChild() *View {
	child := &View{
		id:     viewIDCounter.Add(1),
		parent: v,
		scope:  v.scope.CreateChild(),
		state:  newViewState(),
	}
	child.state.requested |= ChangeStyle
	v.children = append(v.children, child)
	for p := v; p != nil; p = p.parent {
		if p.state.requested.Has(ChangeChildStyle) {
			break
		}
		p.state.requested |= ChangeChildStyle
	}
	return child
}

// RemoveChild detaches child from v and disposes it: the child's reactive
// scope and every descendant's scope are torn down, cascading signal and
// effect disposal.
func (v *View) RemoveChild(child *View) {
	for i, c := range v.children {
		if c == child {
			v.children = append(v.children[:i], v.children[i+1:]...)
			child.parent = nil
			child.dispose()
			return
		}
	}
}

// Dispose tears the view and its subtree down. Detached views must be
// disposed explicitly; attached views are disposed by RemoveChild.
func (v *View) Dispose() {
	if v.parent != nil {
		v.parent.RemoveChild(v)
		return
	}
	v.dispose()
}

func (v *View) dispose() {
	for _, c := range v.children {
		c.parent = nil
		c.dispose()
	}
	v.children = nil
	v.scope.Dispose()
}

// Walk visits v and its descendants pre-order. Returning false from fn
// skips the view's subtree.
func (v *View) Walk(fn func(*View) bool) {
	if !fn(v) {
		return
	}
	for _, c := range v.children {
		c.Walk(fn)
	}
}

// AddStyle pushes a style slot and returns its offset. Reactive style
// updaters call SetStyle with the offset on every recomputation.
func (v *View) AddStyle(s *style.Style) int {
	return v.state.styles.push(s)
}

// SetStyle replaces the slot at offset.
func (v *View) SetStyle(offset int, s *style.Style) {
	v.state.styles.set(offset, s)
}

// AddClass marks the view as carrying the given style class.
func (v *View) AddClass(c *style.Class) {
	for _, existing := range v.state.classes {
		if existing == c {
			return
		}
	}
	v.state.classes = append(v.state.classes, c)
	v.state.classesChanged = true
}

// RemoveClass removes a carried class.
func (v *View) RemoveClass(c *style.Class) {
	for i, existing := range v.state.classes {
		if existing == c {
			v.state.classes = append(v.state.classes[:i], v.state.classes[i+1:]...)
			v.state.classesChanged = true
			return
		}
	}
}
