// Package selector implements a fluent builder for CSS selector strings.
//
// A selector is assembled from fragments (element, id, classes, attribute
// expressions, pseudo-classes, pseudo-element) that have to be added in
// that fixed order. The builder does not parse or validate fragment
// content, it only enforces the ordering grammar and renders the result.
package selector

import "strings"

// Kind is the category of a selector fragment. The declaration order of
// the constants defines the required order of fragments inside a selector.
type Kind int

const (
	KindNone Kind = iota // no fragment added yet
	KindElement
	KindID
	KindClass
	KindAttr
	KindPseudoClass
	KindPseudoElement
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindID:
		return "id"
	case KindClass:
		return "class"
	case KindAttr:
		return "attribute"
	case KindPseudoClass:
		return "pseudo-class"
	case KindPseudoElement:
		return "pseudo-element"
	}
	return "none"
}

// singleton reports whether at most one fragment of this kind is allowed
// per selector.
func (k Kind) singleton() bool {
	return k == KindElement || k == KindID || k == KindPseudoElement
}

// A Stringifier renders itself to a CSS selector string. Both single and
// combined selectors satisfy it.
type Stringifier interface {
	Stringify() (string, error)
}

// A Builder accumulates selector fragments and renders them via Stringify.
// All mutators return the same builder so calls can be chained. The first
// ordering violation is recorded and turns all further mutators into no-ops;
// it is returned from Stringify.
type Builder struct {
	element       string
	id            string
	classes       []string
	attrs         []string
	pseudoClasses []string
	pseudoElement string

	last Kind
	err  error
}

// add runs the ordering check for kind k and records the first violation.
// It reports whether the fragment may be stored.
func (b *Builder) add(k Kind) bool {
	if b.err != nil {
		return false
	}
	if k < b.last {
		b.err = &OrderError{Kind: k, Last: b.last}
		return false
	}
	if k == b.last && k.singleton() {
		b.err = &DuplicateError{Kind: k}
		return false
	}
	b.last = k
	return true
}

// Element sets the element (tag) name. Only one element is allowed.
func (b *Builder) Element(value string) *Builder {
	if b.add(KindElement) {
		b.element = value
	}
	return b
}

// ID sets the id. Only one id is allowed.
func (b *Builder) ID(value string) *Builder {
	if b.add(KindID) {
		b.id = value
	}
	return b
}

// Class appends a class name. Classes render in insertion order.
func (b *Builder) Class(name string) *Builder {
	if b.add(KindClass) {
		b.classes = append(b.classes, name)
	}
	return b
}

// Attr appends a raw attribute expression, e.g. `href$=".png"`. The
// expression is not validated.
func (b *Builder) Attr(expr string) *Builder {
	if b.add(KindAttr) {
		b.attrs = append(b.attrs, expr)
	}
	return b
}

// PseudoClass appends a pseudo-class name.
func (b *Builder) PseudoClass(name string) *Builder {
	if b.add(KindPseudoClass) {
		b.pseudoClasses = append(b.pseudoClasses, name)
	}
	return b
}

// PseudoElement sets the pseudo-element. Only one is allowed.
func (b *Builder) PseudoElement(value string) *Builder {
	if b.add(KindPseudoElement) {
		b.pseudoElement = value
	}
	return b
}

// Stringify renders the accumulated fragments in category order. It returns
// the first error recorded during construction, if any. Calling Stringify
// does not modify the builder, repeated calls yield the same string.
func (b *Builder) Stringify() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	var sb strings.Builder
	sb.WriteString(b.element)
	if b.id != "" {
		sb.WriteString("#")
		sb.WriteString(b.id)
	}
	for _, cl := range b.classes {
		sb.WriteString(".")
		sb.WriteString(cl)
	}
	for _, a := range b.attrs {
		sb.WriteString("[")
		sb.WriteString(a)
		sb.WriteString("]")
	}
	for _, pc := range b.pseudoClasses {
		sb.WriteString(":")
		sb.WriteString(pc)
	}
	if b.pseudoElement != "" {
		sb.WriteString("::")
		sb.WriteString(b.pseudoElement)
	}
	return sb.String(), nil
}

// Element returns a fresh builder with the element set.
func Element(value string) *Builder { return new(Builder).Element(value) }

// ID returns a fresh builder with the id set.
func ID(value string) *Builder { return new(Builder).ID(value) }

// Class returns a fresh builder with one class added.
func Class(name string) *Builder { return new(Builder).Class(name) }

// Attr returns a fresh builder with one attribute expression added.
func Attr(expr string) *Builder { return new(Builder).Attr(expr) }

// PseudoClass returns a fresh builder with one pseudo-class added.
func PseudoClass(name string) *Builder { return new(Builder).PseudoClass(name) }

// PseudoElement returns a fresh builder with the pseudo-element set.
func PseudoElement(value string) *Builder { return new(Builder).PseudoElement(value) }
