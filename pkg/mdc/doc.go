// Package mdc renders Material Components for the Web and binds each one to
// its toolkit widget.
//
// Every component is a component.Func:
//
//	func Button(s *component.Scope, p ButtonProps) (*vdom.VNode, error)
//
// It computes the MDC class list from its props, renders the markup MDC
// expects, and wires the widget through package binding. Components are
// mounted directly or nested with component.Child:
//
//	root, err := component.Mount(ctx, mdc.Dialog, mdc.DialogProps{
//		Title:   "Discard draft?",
//		Buttons: []mdc.DialogButton{{Action: "close", Label: "Cancel", IsDefault: true}},
//		IsOpen:  true,
//	}, component.WithToolkit(tk))
//
// Props ending in Ref receive the live widget handle. Attrs are passed to
// the component's native element unchanged.
package mdc
