// Package binding ties imperative toolkit widgets to component scopes.
//
// Four hooks cover the lifecycle of a widget bound to a rendered element:
//
//   - UseWidget constructs the widget once its root element is committed,
//     rebuilds it when the kind, the element or the disabled flag changes,
//     and destroys it when the scope is disposed.
//   - UseEvent keeps exactly one subscription between the current widget
//     and the latest callback for one event.
//   - UseControlledValue pushes a caller-owned value into the widget,
//     skipping pushes while the user is interacting with the element.
//   - UseOpenState drives dialog-like widgets from a boolean prop.
//
// A typical component:
//
//	func Dialog(s *component.Scope, p DialogProps) (*vdom.VNode, error) {
//	    root := component.UseNodeRef(s)
//	    b := binding.UseWidget(s, widget.KindDialog, root, binding.Into(p.Handle))
//	    binding.UseOpenState(s, b, p.Open, binding.OpenHandlers{OnClosed: p.OnClosed})
//	    return vdom.Div(vdom.Ref(root), vdom.Class("mdc-dialog"), ...), nil
//	}
//
// All widget calls happen in effects, after the tree is committed, so
// render functions stay free of side effects.
package binding
