package style

import "testing"

func TestSelectorsSetHas(t *testing.T) {
	var s Selectors
	s = s.Set(SelHover, true).Set(SelFocus, true)
	if !s.Has(SelHover) || !s.Has(SelFocus) {
		t.Error("set selectors not reported")
	}
	if s.Has(SelActive) {
		t.Error("unset selector reported")
	}
	s = s.Set(SelHover, false)
	if s.Has(SelHover) {
		t.Error("cleared selector still reported")
	}
}

func TestSelectorsUnion(t *testing.T) {
	a := Selectors{}.Set(SelHover, true)
	b := Selectors{}.Set(SelDarkMode, true).Responsive()
	u := a.Union(b)
	if !u.Has(SelHover) || !u.Has(SelDarkMode) || !u.HasResponsive() {
		t.Errorf("union dropped bits: %v", u.Active())
	}
}

func TestSelectorsIsEmpty(t *testing.T) {
	var s Selectors
	if !s.IsEmpty() {
		t.Error("zero value not empty")
	}
	if s.Responsive().IsEmpty() {
		t.Error("responsive-only set reported empty")
	}
	if s.Set(SelSelected, true).IsEmpty() {
		t.Error("non-empty set reported empty")
	}
}

func TestInteractionStateActiveSelectors(t *testing.T) {
	state := InteractionState{Hovered: true, DarkMode: true}
	active := state.ActiveSelectors()
	if !active.Has(SelHover) || !active.Has(SelDarkMode) {
		t.Error("active selectors missing set states")
	}
	if active.Has(SelDisabled) {
		t.Error("inactive state reported as active")
	}
}

func TestSelectorApplicationOrder(t *testing.T) {
	// Disabled applies last so it wins conflicts; dark mode applies first
	// so any interaction state can override theme values.
	if allSelectors[0] != SelDarkMode {
		t.Errorf("first selector = %v, want dark mode", allSelectors[0])
	}
	if allSelectors[len(allSelectors)-1] != SelDisabled {
		t.Errorf("last selector = %v, want disabled", allSelectors[len(allSelectors)-1])
	}
}

func TestBreakpointForWidth(t *testing.T) {
	tests := []struct {
		width float64
		want  Breakpoint
	}{
		{320, XS},
		{639, XS},
		{640, SM},
		{768, MD},
		{1023, MD},
		{1024, LG},
		{1280, XL},
		{1536, XXL},
		{2560, XXL},
	}
	for _, tt := range tests {
		if got := BreakpointForWidth(tt.width); got != tt.want {
			t.Errorf("BreakpointForWidth(%v) = %v, want %v", tt.width, got, tt.want)
		}
	}
}
