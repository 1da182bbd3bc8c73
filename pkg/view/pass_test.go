package view

import (
	"testing"

	"github.com/floem-go/floem/pkg/style"
)

// buildTree returns a three-level tree: root -> mid -> leaf, each with one
// style slot.
func buildTree() (r *Root, rootView, mid, leaf *View) {
	rootView = New()
	mid = rootView.NewChild()
	leaf = mid.NewChild()
	r = NewRoot(rootView)
	return r, rootView, mid, leaf
}

func TestFirstPassResolvesEveryView(t *testing.T) {
	r, rootView, mid, leaf := buildTree()
	defer rootView.Dispose()

	rootView.AddStyle(style.FontSize.Set(style.New(), 10))
	mid.AddStyle(style.New())
	leaf.AddStyle(style.New())

	stats := r.StylePass()
	if stats.FullResolutions != 3 {
		t.Errorf("full resolutions = %d, want 3", stats.FullResolutions)
	}
	if stats.FastPathApplies != 0 {
		t.Errorf("fast path applies = %d, want 0 on first pass", stats.FastPathApplies)
	}

	// Inherited prop reached the leaf.
	if got, ok := style.FontSize.Get(leaf.State().Computed()); !ok || got != 10 {
		t.Errorf("leaf font-size = %v, %v; want 10", got, ok)
	}
}

func TestInheritedChangeTakesFastPath(t *testing.T) {
	r, rootView, mid, leaf := buildTree()
	defer rootView.Dispose()

	offset := rootView.AddStyle(style.FontSize.Set(style.New(), 10))
	mid.AddStyle(style.New())
	leaf.AddStyle(style.New())
	r.StylePass()

	leafFull := leaf.State().FullResolutions()
	midFull := mid.State().FullResolutions()

	// Only an inherited property changes at the root.
	rootView.SetStyle(offset, style.FontSize.Set(style.New(), 20))
	r.RequestStyle(rootView)
	stats := r.StylePass()

	if got, _ := style.FontSize.Get(leaf.State().Computed()); got != 20 {
		t.Errorf("leaf font-size = %v, want 20", got)
	}
	if leaf.State().FullResolutions() != leafFull {
		t.Errorf("leaf went through full resolution; count %d -> %d",
			leafFull, leaf.State().FullResolutions())
	}
	if leaf.State().FastPathApplies() != 1 {
		t.Errorf("leaf fast path applies = %d, want 1", leaf.State().FastPathApplies())
	}
	if mid.State().FullResolutions() != midFull {
		t.Error("mid went through full resolution on an inherited-only change")
	}
	if stats.FastPathApplies != 2 {
		t.Errorf("pass fast path applies = %d, want 2 (mid and leaf)", stats.FastPathApplies)
	}
	if stats.FullResolutions != 1 {
		t.Errorf("pass full resolutions = %d, want 1 (root only)", stats.FullResolutions)
	}
}

func TestViewWithSelectorsSkipsFastPath(t *testing.T) {
	r, rootView, mid, leaf := buildTree()
	defer rootView.Dispose()

	offset := rootView.AddStyle(style.FontSize.Set(style.New(), 10))
	mid.AddStyle(style.New())
	leaf.AddStyle(style.New().Hover(func(s *style.Style) *style.Style {
		return style.Opacity.Set(s, 0.5)
	}))
	r.StylePass()

	leafFull := leaf.State().FullResolutions()
	rootView.SetStyle(offset, style.FontSize.Set(style.New(), 20))
	r.RequestStyle(rootView)
	r.StylePass()

	if leaf.State().FullResolutions() != leafFull+1 {
		t.Error("leaf with selectors must fully resolve on inherited changes")
	}
	if got, _ := style.FontSize.Get(leaf.State().Computed()); got != 20 {
		t.Errorf("leaf font-size = %v, want 20", got)
	}
}

func TestHoverOnlyRestylesSelectorViews(t *testing.T) {
	r, rootView, _, leaf := buildTree()
	defer rootView.Dispose()

	rootView.AddStyle(style.New())
	leaf.AddStyle(style.New().Hover(func(s *style.Style) *style.Style {
		return style.Background.Set(s, style.RGB(255, 0, 0))
	}))
	r.StylePass()

	// A view without hover styling ignores the transition entirely.
	r.SetHovered(rootView, true)
	stats := r.StylePass()
	if stats.ViewsVisited != 0 {
		t.Errorf("hover on selector-free view visited %d views", stats.ViewsVisited)
	}

	r.SetHovered(leaf, true)
	r.StylePass()
	if got, _ := style.Background.Get(leaf.State().Computed()); got != style.RGB(255, 0, 0) {
		t.Errorf("hovered background = %v", got)
	}

	r.SetHovered(leaf, false)
	r.StylePass()
	if _, ok := style.Background.Get(leaf.State().Computed()); ok {
		t.Error("hover styling stuck after pointer leave")
	}
}

func TestDarkModeRecalcsAllDescendants(t *testing.T) {
	r, rootView, _, leaf := buildTree()
	defer rootView.Dispose()

	rootView.AddStyle(style.New())
	leaf.AddStyle(style.New().DarkMode(func(s *style.Style) *style.Style {
		return style.TextColor.Set(s, style.RGB(255, 255, 255))
	}))
	r.StylePass()

	r.SetDarkMode(true)
	stats := r.StylePass()
	if stats.FullResolutions != 3 {
		t.Errorf("dark mode full resolutions = %d, want all 3", stats.FullResolutions)
	}
	if stats.FastPathApplies != 0 {
		t.Error("dark mode change must not take the fast path")
	}
	if got, _ := style.TextColor.Get(leaf.State().Computed()); got != style.RGB(255, 255, 255) {
		t.Errorf("dark text color = %v", got)
	}
}

func TestScreenSizeChangeWithinBucketIsFree(t *testing.T) {
	r, rootView, _, leaf := buildTree()
	defer rootView.Dispose()

	rootView.AddStyle(style.New())
	leaf.AddStyle(style.New().Responsive(style.SM, func(s *style.Style) *style.Style {
		return style.Width.Set(s, 50)
	}))
	r.StylePass()

	// Stays in the same bucket: nothing to do.
	r.SetScreenSize(1100)
	if stats := r.StylePass(); stats.ViewsVisited != 0 {
		t.Errorf("same-bucket resize visited %d views", stats.ViewsVisited)
	}

	r.SetScreenSize(700)
	r.StylePass()
	if got, _ := style.Width.Get(leaf.State().Computed()); got != 50.0 {
		t.Errorf("responsive width = %v, want 50", got)
	}
}

func TestClassChangeRecalcsChildren(t *testing.T) {
	accent := style.NewClass("accent")

	r, rootView, mid, leaf := buildTree()
	defer rootView.Dispose()

	rootView.AddStyle(style.New().Class(accent, func(s *style.Style) *style.Style {
		return style.TextColor.Set(s, style.RGB(0, 0, 255))
	}))
	mid.AddStyle(style.New())
	leaf.AddStyle(style.New())
	r.StylePass()

	if _, ok := style.TextColor.Get(leaf.State().Computed()); ok {
		t.Fatal("class styling applied before class was added")
	}

	r.AddClass(leaf, accent)
	r.StylePass()
	if got, ok := style.TextColor.Get(leaf.State().Computed()); !ok || got != style.RGB(0, 0, 255) {
		t.Errorf("class color = %v, %v", got, ok)
	}

	r.RemoveClass(leaf, accent)
	r.StylePass()
	if _, ok := style.TextColor.Get(leaf.State().Computed()); ok {
		t.Error("class styling stuck after removal")
	}
}

func TestDisabledStateIsInherited(t *testing.T) {
	r, rootView, mid, leaf := buildTree()
	defer rootView.Dispose()

	rootView.AddStyle(style.New())
	mid.AddStyle(style.New())
	leaf.AddStyle(style.New().Disabled(func(s *style.Style) *style.Style {
		return style.Opacity.Set(s, 0.4)
	}))
	r.StylePass()

	r.SetDisabled(mid, true)
	r.StylePass()
	if got, _ := style.Opacity.Get(leaf.State().Computed()); got != 0.4 {
		t.Errorf("leaf opacity = %v; ancestor disabled state should apply", got)
	}

	r.SetDisabled(mid, false)
	r.StylePass()
	if _, ok := style.Opacity.Get(leaf.State().Computed()); ok {
		t.Error("disabled styling stuck after re-enable")
	}
}

func TestLayoutAndPaintFlags(t *testing.T) {
	r, rootView, _, leaf := buildTree()
	defer rootView.Dispose()

	offset := leaf.AddStyle(style.Background.Set(style.New(), style.RGB(1, 1, 1)))
	r.StylePass()
	leaf.State().ClearLayout()
	leaf.State().ClearPaint()

	// Paint-only change.
	leaf.SetStyle(offset, style.Background.Set(style.New(), style.RGB(2, 2, 2)))
	r.RequestStyle(leaf)
	r.StylePass()
	if leaf.State().Requested().Has(ChangeLayout) {
		t.Error("paint-only change raised needs-layout")
	}
	if !leaf.State().Requested().Has(ChangePaint) {
		t.Error("paint change did not raise needs-paint")
	}
	leaf.State().ClearPaint()

	// Layout-affecting change.
	next := style.Background.Set(style.New(), style.RGB(2, 2, 2))
	style.Width.Set(next, 120)
	leaf.SetStyle(offset, next)
	r.RequestStyle(leaf)
	r.StylePass()
	if !leaf.State().Requested().Has(ChangeLayout) {
		t.Error("width change did not raise needs-layout")
	}
}

func TestRequestStyleRecursiveResolvesWholeSubtree(t *testing.T) {
	r, rootView, mid, leaf := buildTree()
	defer rootView.Dispose()

	rootView.AddStyle(style.FontSize.Set(style.New(), 10))
	mid.AddStyle(style.New())
	leaf.AddStyle(style.New())
	r.StylePass()

	// Nothing changed, so every resolved style comes out identical; the
	// pass must still descend to every view in the subtree.
	r.RequestStyleRecursive(rootView)
	stats := r.StylePass()
	if stats.FullResolutions != 3 {
		t.Errorf("full resolutions = %d, want 3", stats.FullResolutions)
	}
	for _, v := range []*View{rootView, mid, leaf} {
		if v.State().Requested().Intersects(ChangeStyle | ChangeChildStyle) {
			t.Errorf("view %d still style-dirty after pass", v.ID())
		}
	}

	// Restyling a mid subtree leaves the root untouched.
	rootFull := rootView.State().FullResolutions()
	r.RequestStyleRecursive(mid)
	stats = r.StylePass()
	if stats.FullResolutions != 2 {
		t.Errorf("subtree full resolutions = %d, want 2 (mid and leaf)", stats.FullResolutions)
	}
	if rootView.State().FullResolutions() != rootFull {
		t.Error("root was fully resolved by a subtree request")
	}
}

func TestClearingActiveAndDraggingWithNilView(t *testing.T) {
	r, rootView, _, leaf := buildTree()
	defer rootView.Dispose()

	rootView.AddStyle(style.New())
	leaf.AddStyle(style.New().Active(func(s *style.Style) *style.Style {
		return style.Opacity.Set(s, 0.8)
	}).Dragging(func(s *style.Style) *style.Style {
		return style.Opacity.Set(s, 0.6)
	}))
	r.StylePass()

	r.SetActive(leaf, true)
	r.StylePass()
	if got, _ := style.Opacity.Get(leaf.State().Computed()); got != 0.8 {
		t.Fatalf("active opacity = %v, want 0.8", got)
	}

	r.SetActive(nil, false)
	r.StylePass()
	if _, ok := style.Opacity.Get(leaf.State().Computed()); ok {
		t.Error("active styling stuck after nil clear")
	}

	r.SetDragging(leaf, true)
	r.StylePass()
	if got, _ := style.Opacity.Get(leaf.State().Computed()); got != 0.6 {
		t.Fatalf("dragging opacity = %v, want 0.6", got)
	}

	r.SetDragging(nil, false)
	r.StylePass()
	if _, ok := style.Opacity.Get(leaf.State().Computed()); ok {
		t.Error("dragging styling stuck after nil clear")
	}
}

func TestNewChildAfterFirstPassGetsStyled(t *testing.T) {
	r, rootView, mid, _ := buildTree()
	defer rootView.Dispose()

	rootView.AddStyle(style.FontSize.Set(style.New(), 10))
	r.StylePass()

	late := mid.NewChild()
	late.AddStyle(style.New())
	r.StylePass()
	if got, ok := style.FontSize.Get(late.State().Computed()); !ok || got != 10 {
		t.Errorf("late child font-size = %v, %v; want inherited 10", got, ok)
	}
}

func BenchmarkStylePassInheritedOnly(b *testing.B) {
	rootView := New()
	defer rootView.Dispose()
	offset := rootView.AddStyle(style.FontSize.Set(style.New(), 10))
	for i := 0; i < 10; i++ {
		mid := rootView.NewChild()
		mid.AddStyle(style.New())
		for j := 0; j < 10; j++ {
			leaf := mid.NewChild()
			leaf.AddStyle(style.New())
		}
	}
	r := NewRoot(rootView)
	r.StylePass()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rootView.SetStyle(offset, style.FontSize.Set(style.New(), float64(10+i%10)))
		r.RequestStyle(rootView)
		r.StylePass()
	}
}
