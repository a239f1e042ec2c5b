package vdom

import "strings"

// ClassList accumulates CSS class names in insertion order.
type ClassList struct {
	names []string
}

// Classes starts a class list with the given names.
func Classes(names ...string) *ClassList {
	cl := &ClassList{}
	return cl.Add(names...)
}

// Add appends names, skipping empty strings and duplicates.
func (cl *ClassList) Add(names ...string) *ClassList {
	for _, n := range names {
		for _, f := range strings.Fields(n) {
			if !cl.Has(f) {
				cl.names = append(cl.names, f)
			}
		}
	}
	return cl
}

// AddIf appends names when cond is true.
func (cl *ClassList) AddIf(cond bool, names ...string) *ClassList {
	if cond {
		cl.Add(names...)
	}
	return cl
}

// Has reports whether name is in the list.
func (cl *ClassList) Has(name string) bool {
	for _, n := range cl.names {
		if n == name {
			return true
		}
	}
	return false
}

// Names returns a copy of the class names.
func (cl *ClassList) Names() []string {
	return append([]string(nil), cl.names...)
}

// String joins the list with spaces.
func (cl *ClassList) String() string {
	return strings.Join(cl.names, " ")
}

// Attr returns the list as a class attribute.
func (cl *ClassList) Attr() Attr {
	return attr("class", cl.String())
}
