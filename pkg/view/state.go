package view

import "github.com/floem-go/floem/pkg/style"

// styleStack holds the view's style slots. Builders push a slot per style
// source and keep the offset; reactive updaters overwrite their slot on
// every recomputation. Later slots win conflicts during resolution.
type styleStack struct {
	slots []*style.Style
}

func (st *styleStack) push(s *style.Style) int {
	st.slots = append(st.slots, s)
	return len(st.slots) - 1
}

func (st *styleStack) set(offset int, s *style.Style) {
	if offset < 0 || offset >= len(st.slots) {
		panic("floem: style offset out of range")
	}
	st.slots[offset] = s
}

// ViewState is the per-view style state consumed and produced by the style
// pass.
type ViewState struct {
	styles  styleStack
	classes []*style.Class

	// classesChanged is set by AddClass/RemoveClass and consumed by the
	// next recalc of this view; it escalates the child change.
	classesChanged bool

	// combined caches the selector-resolved merge of the style slots,
	// without inheritance. The inherited-only fast path reuses it.
	combined *style.Style

	// computed is combined with the parent's inherited values applied.
	computed *style.Style

	// hasStyleSelectors records which interaction selectors appear anywhere
	// in the view's styles. Interaction transitions consult it before
	// requesting style, and it disqualifies the fast path.
	hasStyleSelectors style.Selectors

	requested ChangeFlags

	// held guards against reentrant access during the style pass.
	held bool

	// Cumulative instrumentation, exposed through the inspector.
	fullResolutions uint64
	fastPathApplies uint64
}

func newViewState() *ViewState {
	return &ViewState{}
}

// acquire takes the state for the duration of a style recalc. Reentrant
// acquisition means a style function is reading the state it is being
// resolved into, which would observe a half-written style.
func (s *ViewState) acquire() {
	if s.held {
		panic("floem: view state already borrowed during style pass")
	}
	s.held = true
}

func (s *ViewState) release() {
	s.held = false
}

// Combined returns the cached selector-resolved style, nil before the first
// pass.
func (s *ViewState) Combined() *style.Style { return s.combined }

// Computed returns the cached computed style (inheritance applied), nil
// before the first pass.
func (s *ViewState) Computed() *style.Style { return s.computed }

// Classes returns the classes the view carries.
func (s *ViewState) Classes() []*style.Class { return s.classes }

// HasStyleSelectors returns the selectors present anywhere in the view's
// styles, as of the last full resolution.
func (s *ViewState) HasStyleSelectors() style.Selectors { return s.hasStyleSelectors }

// Requested returns the view's pending change flags.
func (s *ViewState) Requested() ChangeFlags { return s.requested }

// ClearLayout consumes the needs-layout bit. The layout collaborator calls
// it after recomputing geometry.
func (s *ViewState) ClearLayout() { s.requested &^= ChangeLayout }

// ClearPaint consumes the needs-paint bit.
func (s *ViewState) ClearPaint() { s.requested &^= ChangePaint }

// FullResolutions returns how many times this view has gone through full
// selector resolution.
func (s *ViewState) FullResolutions() uint64 { return s.fullResolutions }

// FastPathApplies returns how many times this view took the inherited-only
// fast path.
func (s *ViewState) FastPathApplies() uint64 { return s.fastPathApplies }
