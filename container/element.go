package container

import (
	"iter"
	"maps"
	"slices"
)

// Element is a node of the decoded tree. Child order is document order.
type Element struct {
	Name       string
	Attributes map[string]Value
	Children   []*Element
}

// Document is a decoded container: the package name plus the root element.
type Document struct {
	Package string
	Root    *Element
}

func (e *Element) Attr(name string) (Value, bool) {
	v, ok := e.Attributes[name]
	return v, ok
}

// AttrNames returns attribute names in sorted order.
func (e *Element) AttrNames() []string {
	return slices.Sorted(maps.Keys(e.Attributes))
}

// Child returns the first child with the given name, or nil.
func (e *Element) Child(name string) *Element {
	for _, child := range e.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

func (e *Element) ChildrenNamed(name string) iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		for _, child := range e.Children {
			if child.Name == name && !yield(child) {
				return
			}
		}
	}
}

// Walk visits e and its descendants depth-first in document order.
// Returning false from visitor skips the element's children.
func (e *Element) Walk(visitor func(el *Element, depth int) bool) {
	var walk func(*Element, int)
	walk = func(el *Element, depth int) {
		if !visitor(el, depth) {
			return
		}
		for _, child := range el.Children {
			walk(child, depth+1)
		}
	}
	walk(e, 0)
}
