package view

import (
	"time"

	"github.com/floem-go/floem/pkg/style"
)

// PassStats summarizes one style pass for instrumentation.
type PassStats struct {
	ViewsVisited    int
	FullResolutions int
	FastPathApplies int
	Iterations      int
	Duration        time.Duration
}

// StylePass resolves styles for every dirty view, pre-order, parent before
// children. A recalc can dirty further views (a class escalation marks
// children), so the pass loops until the tree is clean.
func (r *Root) StylePass() PassStats {
	start := time.Now()
	var stats PassStats
	for r.root.state.requested.Intersects(ChangeStyle|ChangeChildStyle) || !r.pendingGlobalRecalc.IsEmpty() {
		change := r.pendingGlobalRecalc
		r.pendingGlobalRecalc = style.RecalcNone
		stats.Iterations++
		r.styleView(r.root, nil, change, &stats)
	}
	stats.Duration = time.Since(start)
	return stats
}

// styleView recalculates one view and recurses into its children with the
// change computed for them.
func (r *Root) styleView(v *View, parentComputed *style.Style, change style.RecalcChange, stats *PassStats) {
	st := v.state
	st.acquire()
	defer st.release()

	stats.ViewsVisited++

	dirty := st.requested.Has(ChangeStyle)
	prevComputed := st.computed
	recalced := false

	if change.ShouldRecalc(dirty) {
		st.requested &^= ChangeStyle
		hasSelectors := !st.hasStyleSelectors.IsEmpty()
		if !dirty && st.combined != nil && change.CanUseInheritedFastPath(hasSelectors) {
			st.computed = st.combined.Clone().ApplyOnlyInherited(parentComputed)
			st.fastPathApplies++
			stats.FastPathApplies++
		} else {
			st.combined = r.computeCombined(v, parentComputed)
			st.computed = st.combined.Clone().ApplyOnlyInherited(parentComputed)
			st.fullResolutions++
			stats.FullResolutions++
		}
		recalced = true
	}

	childChange := change.ForChildren()

	if recalced {
		switch {
		case prevComputed == nil:
			st.requested |= ChangeLayout
			childChange = childChange.EnsureAtLeast(style.PropagateInheritedOnly)
		default:
			if prevComputed.DiffAffectsLayout(st.computed) {
				st.requested |= ChangeLayout
			} else if !prevComputed.Equal(st.computed) {
				st.requested |= ChangePaint
			}
			inherited := prevComputed.InheritedDiff(st.computed)
			if inherited.HasChanges() {
				childChange = childChange.EnsureAtLeast(style.PropagateInheritedOnly)
				if inherited.FontChanged() {
					childChange = childChange.WithFlags(style.FlagFontUnitsChanged)
				}
			}
		}
		if st.classesChanged {
			st.classesChanged = false
			childChange = childChange.ForceRecalcChildren().WithFlags(style.FlagClassChanged)
		}
	}

	if pending, ok := r.pendingChildChanges[v.id]; ok {
		delete(r.pendingChildChanges, v.id)
		childChange = childChange.Combine(pending)
	}

	childDirty := st.requested.Has(ChangeChildStyle)
	st.requested &^= ChangeChildStyle

	if !childDirty && !childChange.Propagate().RequiresChildTraversal() {
		return
	}
	parentCtx := st.computed
	for _, c := range v.children {
		r.styleView(c, parentCtx, childChange, stats)
	}
}

// computeCombined runs full selector resolution over the view's style
// slots: class styles cascading from the parent context apply first, then
// each slot in push order, later slots winning. The result keeps the slots'
// class maps so they cascade further down.
func (r *Root) computeCombined(v *View, parentCtx *style.Style) *style.Style {
	state := r.interactionState(v)
	bp := r.breakpoint

	combined := style.New()
	if parentCtx != nil {
		for _, c := range v.state.classes {
			if sub, ok := parentCtx.ResolveClass(c, state, bp); ok {
				combined.Apply(sub)
			}
		}
	}

	var present style.Selectors
	for _, s := range v.state.styles.slots {
		if s == nil {
			continue
		}
		combined.Apply(s.Resolve(state, bp, v.state.classes))
		combined.AdoptClasses(s)
		present = present.Union(s.SelectorsPresent())
	}
	v.state.hasStyleSelectors = present
	return combined
}
