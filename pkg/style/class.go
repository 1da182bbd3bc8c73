package style

// Class is a named style class. Classes are identity-keyed: two classes with
// the same name are distinct. A view lists the classes it belongs to, and
// any ancestor (typically a theme at the root) can attach a style sub-map
// for a class that then applies to every descendant carrying it.
type Class struct {
	name string
}

// NewClass creates a new style class. Classes are usually package-level
// variables shared between the style provider and the views that wear them.
func NewClass(name string) *Class {
	return &Class{name: name}
}

// Name returns the class name, for debug output.
func (c *Class) Name() string {
	return c.name
}
