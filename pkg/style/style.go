package style

// Style is an immutable-by-convention bag of property values plus nested
// sub-styles gated on interaction selectors, responsive breakpoints, and
// classes. Builders mutate and return the receiver, so chained construction
// reads top to bottom:
//
//	style.New().
//		SetProp(style.Background, gray).
//		Hover(func(s *style.Style) *style.Style {
//			return s.SetProp(style.Background, blue)
//		})
type Style struct {
	props       map[*Prop]any
	selectors   map[Selector]*Style
	breakpoints map[Breakpoint]*Style
	classes     map[*Class]*Style
}

// New returns an empty style.
func New() *Style {
	return &Style{props: make(map[*Prop]any)}
}

// Set writes a raw property value. Prefer TypedProp.Set for checked writes.
func (s *Style) Set(p *Prop, value any) *Style {
	s.props[p] = value
	return s
}

// SetProp writes a typed property value.
func SetProp[T any](s *Style, p TypedProp[T], value T) *Style {
	return p.Set(s, value)
}

// Get reads a raw property value set directly on this style. Nested
// selector, breakpoint, and class sub-styles are not consulted; use Resolve
// for the combined view.
func (s *Style) Get(p *Prop) (any, bool) {
	v, ok := s.props[p]
	return v, ok
}

// selector installs or extends a selector sub-style.
func (s *Style) selector(sel Selector, build func(*Style) *Style) *Style {
	if s.selectors == nil {
		s.selectors = make(map[Selector]*Style)
	}
	sub, ok := s.selectors[sel]
	if !ok {
		sub = New()
		s.selectors[sel] = sub
	}
	build(sub)
	return s
}

// Hover adds styling applied while the view is hovered.
func (s *Style) Hover(build func(*Style) *Style) *Style {
	return s.selector(SelHover, build)
}

// Focus adds styling applied while the view holds focus.
func (s *Style) Focus(build func(*Style) *Style) *Style {
	return s.selector(SelFocus, build)
}

// FocusVisible adds styling applied while focus should be visibly indicated.
func (s *Style) FocusVisible(build func(*Style) *Style) *Style {
	return s.selector(SelFocusVisible, build)
}

// Active adds styling applied while the pointer is pressed on the view.
func (s *Style) Active(build func(*Style) *Style) *Style {
	return s.selector(SelActive, build)
}

// Disabled adds styling applied while the view is disabled.
func (s *Style) Disabled(build func(*Style) *Style) *Style {
	return s.selector(SelDisabled, build)
}

// Dragging adds styling applied while the view is being dragged.
func (s *Style) Dragging(build func(*Style) *Style) *Style {
	return s.selector(SelDragging, build)
}

// Selected adds styling applied while the view is selected.
func (s *Style) Selected(build func(*Style) *Style) *Style {
	return s.selector(SelSelected, build)
}

// DarkMode adds styling applied while the window is in dark mode.
func (s *Style) DarkMode(build func(*Style) *Style) *Style {
	return s.selector(SelDarkMode, build)
}

// Responsive adds styling applied while the window width falls in the given
// breakpoint.
func (s *Style) Responsive(bp Breakpoint, build func(*Style) *Style) *Style {
	if s.breakpoints == nil {
		s.breakpoints = make(map[Breakpoint]*Style)
	}
	sub, ok := s.breakpoints[bp]
	if !ok {
		sub = New()
		s.breakpoints[bp] = sub
	}
	build(sub)
	return s
}

// Class adds styling applied to descendants carrying the given class.
func (s *Style) Class(c *Class, build func(*Style) *Style) *Style {
	if s.classes == nil {
		s.classes = make(map[*Class]*Style)
	}
	sub, ok := s.classes[c]
	if !ok {
		sub = New()
		s.classes[c] = sub
	}
	build(sub)
	return s
}

// Apply merges other into s, with other winning on conflicts. Nested
// selector, breakpoint, and class maps merge recursively.
func (s *Style) Apply(other *Style) *Style {
	if other == nil {
		return s
	}
	for p, v := range other.props {
		s.props[p] = v
	}
	for sel, sub := range other.selectors {
		s.selector(sel, func(dst *Style) *Style { return dst.Apply(sub) })
	}
	for bp, sub := range other.breakpoints {
		s.Responsive(bp, func(dst *Style) *Style { return dst.Apply(sub) })
	}
	for c, sub := range other.classes {
		s.Class(c, func(dst *Style) *Style { return dst.Apply(sub) })
	}
	return s
}

// Clone deep-copies the style, including nested sub-styles.
func (s *Style) Clone() *Style {
	out := New()
	for p, v := range s.props {
		out.props[p] = v
	}
	for sel, sub := range s.selectors {
		if out.selectors == nil {
			out.selectors = make(map[Selector]*Style)
		}
		out.selectors[sel] = sub.Clone()
	}
	for bp, sub := range s.breakpoints {
		if out.breakpoints == nil {
			out.breakpoints = make(map[Breakpoint]*Style)
		}
		out.breakpoints[bp] = sub.Clone()
	}
	for c, sub := range s.classes {
		if out.classes == nil {
			out.classes = make(map[*Class]*Style)
		}
		out.classes[c] = sub.Clone()
	}
	return out
}

// SelectorsPresent reports which selectors and whether any responsive
// breakpoints appear anywhere in the style, including nested sub-styles.
// The recalc engine uses this to decide whether interaction-state and
// screen-size changes can touch the owning view at all.
func (s *Style) SelectorsPresent() Selectors {
	var out Selectors
	for sel, sub := range s.selectors {
		out = out.Set(sel, true)
		out = out.Union(sub.SelectorsPresent())
	}
	if len(s.breakpoints) > 0 {
		out = out.Responsive()
		for _, sub := range s.breakpoints {
			out = out.Union(sub.SelectorsPresent())
		}
	}
	for _, sub := range s.classes {
		out = out.Union(sub.SelectorsPresent())
	}
	return out
}

// AnyInherited reports whether the style sets any inherited property,
// directly or in a nested sub-style.
func (s *Style) AnyInherited() bool {
	for p := range s.props {
		if p.inherited {
			return true
		}
	}
	for _, sub := range s.selectors {
		if sub.AnyInherited() {
			return true
		}
	}
	for _, sub := range s.breakpoints {
		if sub.AnyInherited() {
			return true
		}
	}
	for _, sub := range s.classes {
		if sub.AnyInherited() {
			return true
		}
	}
	return false
}

// InheritedContext extracts the parts of a resolved style that flow down to
// children: values of inherited properties plus class sub-styles, which
// cascade until overridden.
func (s *Style) InheritedContext() *Style {
	out := New()
	for p, v := range s.props {
		if p.inherited {
			out.props[p] = v
		}
	}
	for c, sub := range s.classes {
		if out.classes == nil {
			out.classes = make(map[*Class]*Style)
		}
		out.classes[c] = sub.Clone()
	}
	return out
}

// Resolve flattens the style against the given interaction state, breakpoint,
// and applied classes. Precedence, later wins:
//
//  1. class sub-styles for each applied class, in the order given
//  2. base property values
//  3. selector sub-styles whose selector is active, in fixed application
//     order, resolved recursively
//  4. the breakpoint sub-style for the current breakpoint
func (s *Style) Resolve(state InteractionState, bp Breakpoint, classes []*Class) *Style {
	out := New()
	for _, c := range classes {
		if sub, ok := s.classes[c]; ok {
			out.Apply(sub.Resolve(state, bp, classes))
		}
	}
	for p, v := range s.props {
		out.props[p] = v
	}
	for _, sel := range allSelectors {
		if !state.matches(sel) {
			continue
		}
		if sub, ok := s.selectors[sel]; ok {
			out.Apply(sub.Resolve(state, bp, classes))
		}
	}
	if sub, ok := s.breakpoints[bp]; ok {
		out.Apply(sub.Resolve(state, bp, classes))
	}
	return out
}

// ApplyOnlyInherited overlays the parent's inherited property values onto s
// as defaults: a value is copied only where s does not set the property
// itself. This is the inherited-only fast path; it skips selector resolution
// entirely.
func (s *Style) ApplyOnlyInherited(parent *Style) *Style {
	if parent == nil {
		return s
	}
	for p, v := range parent.props {
		if !p.inherited {
			continue
		}
		if _, ok := s.props[p]; !ok {
			s.props[p] = v
		}
	}
	for c, psub := range parent.classes {
		if s.classes == nil {
			s.classes = make(map[*Class]*Style)
		}
		if own, ok := s.classes[c]; ok {
			s.classes[c] = psub.Clone().Apply(own)
		} else {
			s.classes[c] = psub.Clone()
		}
	}
	return s
}

// AdoptClasses merges other's class sub-styles into s without touching
// direct properties. Combined styles keep their class maps so the maps can
// cascade to descendants through InheritedContext.
func (s *Style) AdoptClasses(other *Style) *Style {
	for c, sub := range other.classes {
		if s.classes == nil {
			s.classes = make(map[*Class]*Style)
		}
		if existing, ok := s.classes[c]; ok {
			existing.Apply(sub)
		} else {
			s.classes[c] = sub.Clone()
		}
	}
	return s
}

// InheritedDiff classifies which inherited property groups differ between
// two resolved styles.
func (s *Style) InheritedDiff(other *Style) InheritedChanges {
	var groups InheritedGroups
	for p, v := range s.props {
		if !p.inherited {
			continue
		}
		if ov, ok := other.props[p]; !ok || ov != v {
			groups |= GroupForProp(p)
		}
	}
	for p := range other.props {
		if !p.inherited {
			continue
		}
		if _, ok := s.props[p]; !ok {
			groups |= GroupForProp(p)
		}
	}
	return InheritedChangesFor(groups)
}

// ResolveClass resolves the sub-style registered for class c, if any.
// Ancestor styles hand their class maps down through InheritedContext, so
// views resolve class styling against both the cascaded context and their
// own style.
func (s *Style) ResolveClass(c *Class, state InteractionState, bp Breakpoint) (*Style, bool) {
	sub, ok := s.classes[c]
	if !ok {
		return nil, false
	}
	return sub.Resolve(state, bp, nil), true
}

// Equal reports whether two resolved styles hold identical direct property
// values. Nested sub-styles are ignored; Resolve output has none.
func (s *Style) Equal(other *Style) bool {
	if len(s.props) != len(other.props) {
		return false
	}
	for p, v := range s.props {
		ov, ok := other.props[p]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// DiffAffectsLayout reports whether any property whose value differs between
// the two resolved styles is layout-affecting.
func (s *Style) DiffAffectsLayout(other *Style) bool {
	for p, v := range s.props {
		if !p.affectsLayout {
			continue
		}
		if ov, ok := other.props[p]; !ok || ov != v {
			return true
		}
	}
	for p := range other.props {
		if !p.affectsLayout {
			continue
		}
		if _, ok := s.props[p]; !ok {
			return true
		}
	}
	return false
}

// DiffFontProps reports whether any font-related property differs between
// the two resolved styles. Font changes invalidate font-relative units in
// descendants even when nothing else moved.
func (s *Style) DiffFontProps(other *Style) bool {
	for _, p := range fontProps {
		v, vok := s.props[p]
		ov, ook := other.props[p]
		if vok != ook || (vok && v != ov) {
			return true
		}
	}
	return false
}

var fontProps = []*Prop{FontSize.Key(), FontFamily.Key(), FontWeight.Key(), LineHeight.Key()}

// PropCount returns the number of directly set properties.
func (s *Style) PropCount() int { return len(s.props) }

// ForEach visits each directly set property value.
func (s *Style) ForEach(fn func(p *Prop, value any)) {
	for p, v := range s.props {
		fn(p, v)
	}
}
