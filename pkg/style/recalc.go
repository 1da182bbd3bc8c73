package style

import "strings"

// Propagate describes how a style change spreads to children. Variants are
// ordered by intensity so combining two changes takes the larger value.
type Propagate uint8

const (
	// PropagateNone means no children need style updates.
	PropagateNone Propagate = iota

	// PropagateUpdatePseudoElements touches only synthetic child elements
	// such as scrollbars. Children keep their computed styles.
	PropagateUpdatePseudoElements

	// PropagateInheritedOnly means only inherited properties changed.
	// Children can take a fast path that applies the new inherited values
	// without re-running full selector resolution.
	PropagateInheritedOnly

	// PropagateRecalcChildren recalculates style for immediate children,
	// typically after a class was applied that children might match.
	PropagateRecalcChildren

	// PropagateRecalcDescendants recalculates style for the whole subtree.
	PropagateRecalcDescendants
)

// RequiresChildTraversal reports whether any child work is needed.
func (p Propagate) RequiresChildTraversal() bool { return p != PropagateNone }

// RequiresFullResolution reports whether full selector resolution is needed.
// When false, the inherited-only fast path is a candidate.
func (p Propagate) RequiresFullResolution() bool {
	return p == PropagateRecalcChildren || p == PropagateRecalcDescendants
}

// IsRecursive reports whether all descendants need recalc, not just
// immediate children.
func (p Propagate) IsRecursive() bool { return p == PropagateRecalcDescendants }

func (p Propagate) String() string {
	switch p {
	case PropagateNone:
		return "none"
	case PropagateUpdatePseudoElements:
		return "update-pseudo-elements"
	case PropagateInheritedOnly:
		return "inherited-only"
	case PropagateRecalcChildren:
		return "recalc-children"
	case PropagateRecalcDescendants:
		return "recalc-descendants"
	default:
		return "unknown"
	}
}

func maxPropagate(a, b Propagate) Propagate {
	if a > b {
		return a
	}
	return b
}

// RecalcFlags modify how a style recalculation proceeds. Flags combine with
// a Propagate level inside a RecalcChange.
type RecalcFlags uint16

const (
	// FlagReattach forces a layout tree rebuild for affected views.
	FlagReattach RecalcFlags = 1 << iota

	// FlagDisabledChanged marks that the inherited disabled state changed;
	// views with disabled selectors need recalc.
	FlagDisabledChanged

	// FlagSelectedChanged marks that the inherited selected state changed;
	// views with selected selectors need recalc.
	FlagSelectedChanged

	// FlagDarkModeChanged marks that dark mode toggled; views with dark
	// mode selectors need recalc.
	FlagDarkModeChanged

	// FlagResponsiveChanged marks that the screen-size breakpoint changed;
	// views with responsive selectors need recalc.
	FlagResponsiveChanged

	// FlagClassChanged marks that a class was added or removed; children
	// that might match it need recalc.
	FlagClassChanged

	// FlagSuppressRecalc suppresses recalc for the current view. It applies
	// to one tree level only and is stripped before visiting children.
	FlagSuppressRecalc

	// FlagFontUnitsChanged marks that font-relative units (em, rem) may
	// resolve differently.
	FlagFontUnitsChanged
)

// Contains reports whether all bits in other are set.
func (f RecalcFlags) Contains(other RecalcFlags) bool { return f&other == other }

// Intersects reports whether any bit in other is set.
func (f RecalcFlags) Intersects(other RecalcFlags) bool { return f&other != 0 }

// IsEmpty reports whether no flags are set.
func (f RecalcFlags) IsEmpty() bool { return f == 0 }

func (f RecalcFlags) String() string {
	if f == 0 {
		return "(none)"
	}
	names := []struct {
		bit  RecalcFlags
		name string
	}{
		{FlagReattach, "reattach"},
		{FlagDisabledChanged, "disabled-changed"},
		{FlagSelectedChanged, "selected-changed"},
		{FlagDarkModeChanged, "dark-mode-changed"},
		{FlagResponsiveChanged, "responsive-changed"},
		{FlagClassChanged, "class-changed"},
		{FlagSuppressRecalc, "suppress-recalc"},
		{FlagFontUnitsChanged, "font-units-changed"},
	}
	var parts []string
	for _, n := range names {
		if f.Contains(n.bit) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// RecalcChange tracks what kind of style recalculation is needed. It is
// passed down through the view tree during the style pass so parent changes
// inform child recalculation decisions.
//
// The zero value means no work is needed.
type RecalcChange struct {
	propagate Propagate
	flags     RecalcFlags
}

// RecalcNone is the change that requires no work.
var RecalcNone = RecalcChange{}

// NewRecalcChange builds a change with the given propagation level and no
// flags.
func NewRecalcChange(p Propagate) RecalcChange {
	return RecalcChange{propagate: p}
}

// WithFlags returns a copy with the given flags added.
func (c RecalcChange) WithFlags(flags RecalcFlags) RecalcChange {
	c.flags |= flags
	return c
}

// Propagate returns the propagation level.
func (c RecalcChange) Propagate() Propagate { return c.propagate }

// Flags returns the flag set.
func (c RecalcChange) Flags() RecalcFlags { return c.flags }

// IsEmpty reports whether no recalculation is needed.
func (c RecalcChange) IsEmpty() bool {
	return c.propagate == PropagateNone && c.flags == 0
}

// ForChildren computes the change handed to children. RecalcDescendants and
// InheritedOnly keep spreading; RecalcChildren was consumed at this level and
// becomes None, as do the remaining levels. SuppressRecalc applies to one
// level only and is stripped.
func (c RecalcChange) ForChildren() RecalcChange {
	var child Propagate
	switch c.propagate {
	case PropagateRecalcDescendants:
		child = PropagateRecalcDescendants
	case PropagateInheritedOnly:
		child = PropagateInheritedOnly
	default:
		child = PropagateNone
	}
	return RecalcChange{
		propagate: child,
		flags:     c.flags &^ FlagSuppressRecalc,
	}
}

// Combine merges two changes: the more intensive propagation wins and the
// flag sets union. Used when multiple sources contribute to one view's
// change, such as a class change arriving together with a hover change.
func (c RecalcChange) Combine(other RecalcChange) RecalcChange {
	return RecalcChange{
		propagate: maxPropagate(c.propagate, other.propagate),
		flags:     c.flags | other.flags,
	}
}

// EnsureAtLeast upgrades to at least the given propagation level.
func (c RecalcChange) EnsureAtLeast(p Propagate) RecalcChange {
	c.propagate = maxPropagate(c.propagate, p)
	return c
}

// ForceRecalcDescendants sets the propagation to the whole subtree.
func (c RecalcChange) ForceRecalcDescendants() RecalcChange {
	c.propagate = PropagateRecalcDescendants
	return c
}

// ForceRecalcChildren upgrades the propagation to at least immediate
// children.
func (c RecalcChange) ForceRecalcChildren() RecalcChange {
	return c.EnsureAtLeast(PropagateRecalcChildren)
}

// ForceReattach marks that the layout tree must be rebuilt.
func (c RecalcChange) ForceReattach() RecalcChange {
	return c.WithFlags(FlagReattach)
}

// ShouldRecalc reports whether the current view's style needs
// recalculation: either the view is dirty itself or the incoming change
// requires visiting children. SuppressRecalc vetoes both.
func (c RecalcChange) ShouldRecalc(viewIsDirty bool) bool {
	if c.flags.Contains(FlagSuppressRecalc) {
		return false
	}
	return viewIsDirty || c.propagate.RequiresChildTraversal()
}

// CanUseInheritedFastPath reports whether the view can apply changed
// inherited values directly instead of re-running full selector resolution.
// Views with state-dependent selectors never qualify, since those selectors
// might match differently now. Beyond that, the propagation must be exactly
// InheritedOnly with no selector-relevant state flags set.
func (c RecalcChange) CanUseInheritedFastPath(viewHasSelectors bool) bool {
	if viewHasSelectors {
		return false
	}
	return c.propagate == PropagateInheritedOnly &&
		!c.flags.Intersects(FlagDisabledChanged|FlagSelectedChanged|FlagDarkModeChanged|FlagClassChanged)
}

// NeedsReattach reports whether the layout tree must be rebuilt.
func (c RecalcChange) NeedsReattach() bool {
	return c.flags.Contains(FlagReattach)
}

// FontUnitsMayHaveChanged reports whether font-relative units could resolve
// differently after this change.
func (c RecalcChange) FontUnitsMayHaveChanged() bool {
	return c.flags.Contains(FlagFontUnitsChanged) ||
		c.propagate == PropagateRecalcDescendants
}

// InheritedGroups are groups of inherited properties that change together.
type InheritedGroups uint8

const (
	// GroupFont covers font-size, font-family, font-weight, line-height.
	GroupFont InheritedGroups = 1 << iota
	// GroupText covers text color and alignment.
	GroupText
	// GroupOther covers the remaining inherited properties.
	GroupOther
)

// Contains reports whether all bits in other are set.
func (g InheritedGroups) Contains(other InheritedGroups) bool { return g&other == other }

// IsEmpty reports whether no groups are set.
func (g InheritedGroups) IsEmpty() bool { return g == 0 }

// InheritedChanges tracks which inherited property groups actually changed,
// letting the fast path propagate just those values.
type InheritedChanges struct {
	groups InheritedGroups
}

// InheritedChangesFor builds a change set with the given groups.
func InheritedChangesFor(groups InheritedGroups) InheritedChanges {
	return InheritedChanges{groups: groups}
}

// HasChanges reports whether any inherited properties changed.
func (ic InheritedChanges) HasChanges() bool { return ic.groups != 0 }

// FontChanged reports whether font properties changed.
func (ic InheritedChanges) FontChanged() bool { return ic.groups.Contains(GroupFont) }

// TextChanged reports whether text properties changed.
func (ic InheritedChanges) TextChanged() bool { return ic.groups.Contains(GroupText) }

// Combine unions two change sets.
func (ic InheritedChanges) Combine(other InheritedChanges) InheritedChanges {
	return InheritedChanges{groups: ic.groups | other.groups}
}

// GroupForProp classifies an inherited property into its change group.
func GroupForProp(p *Prop) InheritedGroups {
	switch p {
	case FontSize.Key(), FontFamily.Key(), FontWeight.Key(), LineHeight.Key():
		return GroupFont
	case TextColor.Key():
		return GroupText
	default:
		return GroupOther
	}
}
