// Package vdom provides the element tree that MDC components render to.
//
// Elements are built with tag functions that accept a mix of attributes,
// event handlers, children and text:
//
//	Button(
//	    Class("mdc-button", "mdc-button--raised"),
//	    Ref(rootRef),
//	    Span(Class("mdc-button__label"), "Save"),
//	)
//
// Ref attaches a node reference to an element. The component runtime resolves
// references after every render so widget bindings can locate their root.
// Props whose key starts with an underscore are internal and never rendered.
package vdom
