// Package component hosts render functions that own external resources.
//
// A component is a plain function of a Scope and a props value:
//
//	func Counter(s *component.Scope, p CounterProps) (*vdom.VNode, error)
//
// Render functions must be free of side effects. Work that touches the
// outside world is registered with UseEffect and runs after the rendered
// tree has been committed, children first and in registration order within
// a scope. Hooks (UseEffect, UseRef, UseNodeRef, UseHook) are identified by
// call order, so they must be called unconditionally on every render.
//
// # Roots
//
// Mount renders a component, commits the tree and runs its effects:
//
//	root, err := component.Mount(ctx, App, props,
//	    component.WithToolkit(tk),
//	    component.WithLogger(logger),
//	)
//	...
//	err = root.Update(next)  // full re-render, then effects whose deps changed
//	err = root.Unmount()     // cleanups run children first
//
// A Root is not safe for concurrent use. Callers serialize Mount, Update,
// Unmount and any event delivery that may call Update.
//
// # Children
//
// Child renders a nested component in a scope identified by key. Scopes
// whose key is not rendered again are disposed at the next commit:
//
//	body, err := component.Child(s, "confirm", Button, ButtonProps{Label: "OK"})
//
// # Element references
//
// UseNodeRef returns a NodeRef that is attached to an element with
// vdom.Ref. At commit the element receives a stable data-mdc-ref attribute
// and the NodeRef reports it as a widget.Node, which is what toolkits bind
// widgets to.
package component
