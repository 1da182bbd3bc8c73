package style

import "fmt"

// Prop is a registered style property key. The key carries the property's
// static metadata: whether children inherit its resolved value as their
// default, whether a change to it can move geometry, and how to interpolate
// it for transitions and animations.
//
// Props are identity-keyed: styles store values against the *Prop pointer.
type Prop struct {
	name          string
	inherited     bool
	affectsLayout bool
	interpolate   func(a, b any, t float64) any
}

// PropOption configures a property at registration time.
type PropOption func(*Prop)

// Inherited marks the property as inherited: children see the parent's
// resolved value as their default.
func Inherited() PropOption {
	return func(p *Prop) { p.inherited = true }
}

// AffectsLayout marks the property as geometry-affecting: a changed resolved
// value raises the node's needs-layout flag.
func AffectsLayout() PropOption {
	return func(p *Prop) { p.affectsLayout = true }
}

// WithInterpolate sets the interpolation function used when the property is
// animated or transitioned.
func WithInterpolate(fn func(a, b any, t float64) any) PropOption {
	return func(p *Prop) { p.interpolate = fn }
}

// Name returns the property name.
func (p *Prop) Name() string { return p.name }

// Inherited reports whether children inherit this property.
func (p *Prop) Inherited() bool { return p.inherited }

// AffectsLayout reports whether a change to this property can move geometry.
func (p *Prop) AffectsLayout() bool { return p.affectsLayout }

// CanInterpolate reports whether the property supports animation.
func (p *Prop) CanInterpolate() bool { return p.interpolate != nil }

// Interpolate blends two values of this property at position t in [0, 1].
// Properties without an interpolation function snap to b.
func (p *Prop) Interpolate(a, b any, t float64) any {
	if p.interpolate == nil {
		return b
	}
	return p.interpolate(a, b, t)
}

// TypedProp pairs a property key with its value type, giving compile-time
// checked reads and writes. The stored value type is fixed at registration;
// a mismatched read panics, which indicates a bug at the registration site.
type TypedProp[T any] struct {
	prop *Prop
}

// NewProp registers a new typed property key.
func NewProp[T any](name string, opts ...PropOption) TypedProp[T] {
	p := &Prop{name: name}
	for _, opt := range opts {
		opt(p)
	}
	return TypedProp[T]{prop: p}
}

// Key returns the untyped property key.
func (p TypedProp[T]) Key() *Prop { return p.prop }

// Get reads the property from a style. The second return is false when the
// style does not set the property.
func (p TypedProp[T]) Get(s *Style) (T, bool) {
	v, ok := s.Get(p.prop)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("floem: property %q holds %T, requested %T", p.prop.name, v, t))
	}
	return t, true
}

// GetOr reads the property, falling back to def when unset.
func (p TypedProp[T]) GetOr(s *Style, def T) T {
	if v, ok := p.Get(s); ok {
		return v
	}
	return def
}

// Set writes the property into a style.
func (p TypedProp[T]) Set(s *Style, value T) *Style {
	return s.Set(p.prop, value)
}

// InterpolateFloat linearly blends float64 property values.
func InterpolateFloat(a, b any, t float64) any {
	af, aok := a.(float64)
	bf, bok := b.(float64)
	if !aok || !bok {
		return b
	}
	return af + (bf-af)*t
}

// Built-in properties. Inherited text properties flow down the tree; the
// layout-affecting ones raise needs-layout on the owning node when their
// resolved value changes.
var (
	FontSize   = NewProp[float64]("font-size", Inherited(), AffectsLayout(), WithInterpolate(InterpolateFloat))
	FontFamily = NewProp[string]("font-family", Inherited(), AffectsLayout())
	FontWeight = NewProp[int]("font-weight", Inherited(), AffectsLayout())
	TextColor  = NewProp[Color]("color", Inherited())
	LineHeight = NewProp[float64]("line-height", Inherited(), AffectsLayout(), WithInterpolate(InterpolateFloat))

	Width    = NewProp[float64]("width", AffectsLayout(), WithInterpolate(InterpolateFloat))
	Height   = NewProp[float64]("height", AffectsLayout(), WithInterpolate(InterpolateFloat))
	Padding  = NewProp[float64]("padding", AffectsLayout(), WithInterpolate(InterpolateFloat))
	Margin   = NewProp[float64]("margin", AffectsLayout(), WithInterpolate(InterpolateFloat))
	Gap      = NewProp[float64]("gap", AffectsLayout(), WithInterpolate(InterpolateFloat))
	FlexGrow = NewProp[float64]("flex-grow", AffectsLayout(), WithInterpolate(InterpolateFloat))
	Display  = NewProp[DisplayKind]("display", AffectsLayout())

	Background   = NewProp[Color]("background")
	BorderColor  = NewProp[Color]("border-color")
	BorderWidth  = NewProp[float64]("border-width", AffectsLayout(), WithInterpolate(InterpolateFloat))
	BorderRadius = NewProp[float64]("border-radius", WithInterpolate(InterpolateFloat))
	Outline      = NewProp[float64]("outline", WithInterpolate(InterpolateFloat))
	BoxShadow    = NewProp[Shadow]("box-shadow")
	Opacity      = NewProp[float64]("opacity", WithInterpolate(InterpolateFloat))
	ZIndex       = NewProp[int]("z-index")
	Cursor       = NewProp[CursorStyle]("cursor")
)

// Shadow describes a drop shadow. Blur and spread are logical pixels.
type Shadow struct {
	OffsetX, OffsetY float64
	Blur             float64
	Spread           float64
	Color            Color
}

// Color is a simple RGBA value. Rendering backends translate it; the style
// engine only stores and compares it.
type Color struct {
	R, G, B, A uint8
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// DisplayKind is the subset of display modes the layout collaborator
// understands.
type DisplayKind uint8

const (
	DisplayFlex DisplayKind = iota
	DisplayGrid
	DisplayNone
)

// CursorStyle names the pointer cursor requested for a view.
type CursorStyle uint8

const (
	CursorDefault CursorStyle = iota
	CursorPointer
	CursorText
	CursorMove
	CursorNotAllowed
)
