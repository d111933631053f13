package style

// Resolve computes an element's Computed style: initial values, the
// inheritable subset of the parent's style, the tag default, class
// tokens, then inline declarations, applied in that order so each later
// stage's overwrites win — implementing the inline > class > tag default >
// inherited > initial precedence spec §4.2 specifies.
func Resolve(tag string, attrs map[string]string, parent Computed) Computed {
	c := Initial()
	inheritSubset(&c, parent)
	applyTagDefaults(&c, tag)
	if class, ok := attrs["class"]; ok {
		applyClassAttr(&c, class)
	}
	if inline, ok := attrs["style"]; ok {
		applyStyleAttr(&c, inline)
	}
	return c
}

// RootParent is the style a document's top-level elements inherit from:
// the initial values, since there is no enclosing element.
func RootParent() Computed {
	return Initial()
}
