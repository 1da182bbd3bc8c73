package style

import "testing"

func TestStyleSetGet(t *testing.T) {
	s := New()
	FontSize.Set(s, 14)

	got, ok := FontSize.Get(s)
	if !ok || got != 14 {
		t.Fatalf("FontSize = %v, %v; want 14, true", got, ok)
	}
	if _, ok := Width.Get(s); ok {
		t.Error("unset property reported as present")
	}
	if got := Width.GetOr(s, 100); got != 100 {
		t.Errorf("GetOr = %v, want fallback 100", got)
	}
}

func TestResolveBaseOnly(t *testing.T) {
	s := New()
	FontSize.Set(s, 12)
	Background.Set(s, RGB(10, 20, 30))

	resolved := s.Resolve(InteractionState{}, MD, nil)
	if got, _ := FontSize.Get(resolved); got != 12 {
		t.Errorf("resolved font-size = %v, want 12", got)
	}
	if resolved.PropCount() != 2 {
		t.Errorf("resolved prop count = %d, want 2", resolved.PropCount())
	}
}

func TestResolveSelectorOverridesBase(t *testing.T) {
	s := New()
	Background.Set(s, RGB(0, 0, 0))
	s.Hover(func(sub *Style) *Style {
		return Background.Set(sub, RGB(255, 0, 0))
	})

	plain := s.Resolve(InteractionState{}, MD, nil)
	if got, _ := Background.Get(plain); got != RGB(0, 0, 0) {
		t.Errorf("non-hovered background = %v", got)
	}

	hovered := s.Resolve(InteractionState{Hovered: true}, MD, nil)
	if got, _ := Background.Get(hovered); got != RGB(255, 0, 0) {
		t.Errorf("hovered background = %v", got)
	}
}

func TestResolveSelectorPrecedence(t *testing.T) {
	// Disabled applies after Hover, so it wins when both are active.
	s := New()
	s.Hover(func(sub *Style) *Style {
		return Opacity.Set(sub, 0.9)
	})
	s.Disabled(func(sub *Style) *Style {
		return Opacity.Set(sub, 0.5)
	})

	resolved := s.Resolve(InteractionState{Hovered: true, Disabled: true}, MD, nil)
	if got, _ := Opacity.Get(resolved); got != 0.5 {
		t.Errorf("opacity = %v, want disabled value 0.5", got)
	}
}

func TestResolveBreakpointOverridesSelectors(t *testing.T) {
	s := New()
	Width.Set(s, 100)
	s.Hover(func(sub *Style) *Style {
		return Width.Set(sub, 200)
	})
	s.Responsive(SM, func(sub *Style) *Style {
		return Width.Set(sub, 50)
	})

	resolved := s.Resolve(InteractionState{Hovered: true}, SM, nil)
	if got, _ := Width.Get(resolved); got != 50 {
		t.Errorf("width = %v, want breakpoint value 50", got)
	}

	resolved = s.Resolve(InteractionState{Hovered: true}, LG, nil)
	if got, _ := Width.Get(resolved); got != 200 {
		t.Errorf("width = %v, want hover value 200", got)
	}
}

func TestResolveClassLosesToDirectProps(t *testing.T) {
	button := NewClass("button")
	s := New()
	Padding.Set(s, 8)
	s.Class(button, func(sub *Style) *Style {
		Padding.Set(sub, 4)
		return Gap.Set(sub, 2)
	})

	resolved := s.Resolve(InteractionState{}, MD, []*Class{button})
	if got, _ := Padding.Get(resolved); got != 8 {
		t.Errorf("padding = %v; direct value should win over class", got)
	}
	if got, _ := Gap.Get(resolved); got != 2 {
		t.Errorf("gap = %v, want class value 2", got)
	}
}

func TestResolveNestedSelectorInsideClass(t *testing.T) {
	button := NewClass("button")
	s := New()
	s.Class(button, func(sub *Style) *Style {
		Background.Set(sub, RGB(1, 1, 1))
		return sub.Hover(func(h *Style) *Style {
			return Background.Set(h, RGB(2, 2, 2))
		})
	})

	hovered := s.Resolve(InteractionState{Hovered: true}, MD, []*Class{button})
	if got, _ := Background.Get(hovered); got != RGB(2, 2, 2) {
		t.Errorf("background = %v, want nested hover value", got)
	}
}

func TestApplyMergesRecursively(t *testing.T) {
	a := New()
	FontSize.Set(a, 10)
	a.Hover(func(sub *Style) *Style {
		Opacity.Set(sub, 0.8)
		return FontSize.Set(sub, 11)
	})

	b := New()
	FontSize.Set(b, 20)
	b.Hover(func(sub *Style) *Style {
		return FontSize.Set(sub, 21)
	})

	a.Apply(b)
	if got, _ := FontSize.Get(a); got != 20 {
		t.Errorf("base font-size = %v, want later value 20", got)
	}
	hov := a.selectors[SelHover]
	if got, _ := FontSize.Get(hov); got != 21 {
		t.Errorf("hover font-size = %v, want 21", got)
	}
	if got, _ := Opacity.Get(hov); got != 0.8 {
		t.Errorf("hover opacity = %v, want preserved 0.8", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := New()
	FontSize.Set(s, 10)
	s.Hover(func(sub *Style) *Style {
		return Opacity.Set(sub, 0.5)
	})

	c := s.Clone()
	FontSize.Set(c, 99)
	c.Hover(func(sub *Style) *Style {
		return Opacity.Set(sub, 0.1)
	})

	if got, _ := FontSize.Get(s); got != 10 {
		t.Errorf("clone write leaked into original base: %v", got)
	}
	if got, _ := Opacity.Get(s.selectors[SelHover]); got != 0.5 {
		t.Errorf("clone write leaked into original sub-style: %v", got)
	}
}

func TestSelectorsPresentRecursive(t *testing.T) {
	s := New()
	if !s.SelectorsPresent().IsEmpty() {
		t.Error("empty style reports selectors")
	}

	s.Hover(func(sub *Style) *Style {
		return sub.DarkMode(func(d *Style) *Style {
			return Background.Set(d, RGB(0, 0, 0))
		})
	})
	s.Responsive(SM, func(sub *Style) *Style {
		return Width.Set(sub, 10)
	})

	present := s.SelectorsPresent()
	if !present.Has(SelHover) {
		t.Error("hover selector not detected")
	}
	if !present.Has(SelDarkMode) {
		t.Error("nested dark mode selector not detected")
	}
	if !present.HasResponsive() {
		t.Error("responsive styling not detected")
	}
	if present.Has(SelFocus) {
		t.Error("absent selector reported as present")
	}
}

func TestAnyInherited(t *testing.T) {
	s := New()
	Width.Set(s, 10)
	if s.AnyInherited() {
		t.Error("width is not inherited")
	}

	s.Hover(func(sub *Style) *Style {
		return TextColor.Set(sub, RGB(1, 2, 3))
	})
	if !s.AnyInherited() {
		t.Error("nested inherited prop not detected")
	}
}

func TestInheritedContext(t *testing.T) {
	theme := NewClass("theme")
	s := New()
	FontSize.Set(s, 16)
	Width.Set(s, 300)
	s.Class(theme, func(sub *Style) *Style {
		return Background.Set(sub, RGB(9, 9, 9))
	})

	ctx := s.InheritedContext()
	if got, ok := FontSize.Get(ctx); !ok || got != 16 {
		t.Errorf("inherited context font-size = %v, %v", got, ok)
	}
	if _, ok := Width.Get(ctx); ok {
		t.Error("non-inherited prop leaked into inherited context")
	}
	if _, ok := ctx.classes[theme]; !ok {
		t.Error("class sub-style not carried in inherited context")
	}
}

func TestDiffAffectsLayout(t *testing.T) {
	a := New()
	FontSize.Set(a, 10)
	Background.Set(a, RGB(1, 1, 1))

	b := a.Clone()
	Background.Set(b, RGB(2, 2, 2))
	if a.DiffAffectsLayout(b) {
		t.Error("paint-only diff reported as layout-affecting")
	}

	FontSize.Set(b, 20)
	if !a.DiffAffectsLayout(b) {
		t.Error("font-size diff should affect layout")
	}

	c := New()
	if !a.DiffAffectsLayout(c) {
		t.Error("removing a layout prop should affect layout")
	}
}

func TestDiffFontProps(t *testing.T) {
	a := New()
	FontSize.Set(a, 10)
	b := a.Clone()
	if a.DiffFontProps(b) {
		t.Error("identical font props reported as changed")
	}
	FontSize.Set(b, 12)
	if !a.DiffFontProps(b) {
		t.Error("font-size change not detected")
	}
}

func TestStyleEqual(t *testing.T) {
	a := New()
	FontSize.Set(a, 10)
	b := New()
	FontSize.Set(b, 10)
	if !a.Equal(b) {
		t.Error("equal styles compared unequal")
	}
	FontSize.Set(b, 11)
	if a.Equal(b) {
		t.Error("different styles compared equal")
	}
}

func TestPropInterpolate(t *testing.T) {
	key := FontSize.Key()
	if got := key.Interpolate(10.0, 20.0, 0.5); got != 15.0 {
		t.Errorf("Interpolate = %v, want 15", got)
	}
	if FontFamily.Key().CanInterpolate() {
		t.Error("font-family should not interpolate")
	}
	if got := FontFamily.Key().Interpolate("a", "b", 0.5); got != "b" {
		t.Errorf("non-interpolating prop should snap to b, got %v", got)
	}
}
