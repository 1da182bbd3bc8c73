package style

// Selector is a pseudo-class predicate keying a conditional style sub-map.
// Selector values are single bits so a Selectors bitset can carry them.
type Selector uint16

const (
	SelHover Selector = 1 << iota
	SelFocus
	SelFocusVisible
	SelActive
	SelDisabled
	SelDragging
	SelSelected
	SelDarkMode
)

// allSelectors lists every selector in application order: a sub-map applied
// later overrides earlier ones for the same property, so the more specific
// interaction states come last.
var allSelectors = []Selector{
	SelDarkMode,
	SelHover,
	SelFocus,
	SelFocusVisible,
	SelActive,
	SelDragging,
	SelSelected,
	SelDisabled,
}

// Name returns a human-readable name for the selector.
func (s Selector) Name() string {
	switch s {
	case SelHover:
		return "Hover"
	case SelFocus:
		return "Focus"
	case SelFocusVisible:
		return "FocusVisible"
	case SelActive:
		return "Active"
	case SelDisabled:
		return "Disabled"
	case SelDragging:
		return "Dragging"
	case SelSelected:
		return "Selected"
	case SelDarkMode:
		return "DarkMode"
	default:
		return "Unknown"
	}
}

// Selectors is a bitmask of selectors present somewhere in a style, plus a
// responsive bit for breakpoint sub-maps. The event router reads it to skip
// style requests for views that don't care about an interaction state, and
// the recalc engine reads it to rule out the inherited-only fast path.
type Selectors struct {
	bits       Selector
	responsive bool
}

// Set returns the bitset with the given selector set or cleared.
func (s Selectors) Set(sel Selector, value bool) Selectors {
	if value {
		s.bits |= sel
	} else {
		s.bits &^= sel
	}
	return s
}

// Has reports whether the given selector is present.
func (s Selectors) Has(sel Selector) bool {
	return s.bits&sel == sel
}

// Union merges two bitsets.
func (s Selectors) Union(other Selectors) Selectors {
	return Selectors{
		bits:       s.bits | other.bits,
		responsive: s.responsive || other.responsive,
	}
}

// Responsive returns the bitset with the responsive bit set.
func (s Selectors) Responsive() Selectors {
	s.responsive = true
	return s
}

// HasResponsive reports whether any breakpoint sub-map is present.
func (s Selectors) HasResponsive() bool {
	return s.responsive
}

// IsEmpty reports whether no selectors and no responsive maps are present.
// When true, the inherited-only fast path is structurally safe.
func (s Selectors) IsEmpty() bool {
	return s.bits == 0 && !s.responsive
}

// Active returns the names of the selectors present, for debug output.
func (s Selectors) Active() []string {
	var names []string
	for _, sel := range allSelectors {
		if s.Has(sel) {
			names = append(names, sel.Name())
		}
	}
	if s.responsive {
		names = append(names, "Responsive")
	}
	return names
}

// InteractionState carries the current interaction predicates for one view
// during style resolution. The window-level state fills it in; some bits
// (disabled, selected, dark mode) inherit down the tree.
type InteractionState struct {
	Hovered      bool
	Focused      bool
	FocusVisible bool
	Active       bool
	Disabled     bool
	Dragging     bool
	Selected     bool
	DarkMode     bool
}

// matches reports whether the given selector's sub-map applies.
func (i InteractionState) matches(sel Selector) bool {
	switch sel {
	case SelHover:
		return i.Hovered
	case SelFocus:
		return i.Focused
	case SelFocusVisible:
		return i.FocusVisible
	case SelActive:
		return i.Active
	case SelDisabled:
		return i.Disabled
	case SelDragging:
		return i.Dragging
	case SelSelected:
		return i.Selected
	case SelDarkMode:
		return i.DarkMode
	default:
		return false
	}
}

// ActiveSelectors returns the bitset of selectors this state satisfies.
func (i InteractionState) ActiveSelectors() Selectors {
	var s Selectors
	for _, sel := range allSelectors {
		if i.matches(sel) {
			s = s.Set(sel, true)
		}
	}
	return s
}
