package mdc

import (
	"github.com/vango-dev/mdc/pkg/binding"
	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/vdom"
	"github.com/vango-dev/mdc/pkg/widget"
)

// SnackbarProps configures Snackbar.
type SnackbarProps struct {
	Label string

	// ActionLabel renders an action button when set.
	ActionLabel string

	// IsOpen is the desired state. An auto-dismissed snackbar stays
	// closed until IsOpen goes false and true again.
	IsOpen bool

	IsStacked bool

	// IsLeading places the snackbar at the leading edge of the screen
	// instead of centering it.
	IsLeading bool

	// TimeoutMs overrides the widget's auto-dismiss timeout when positive.
	TimeoutMs int

	// Class is added to the snackbar surface.
	Class       string
	SnackbarRef *component.Ref[widget.Handle]

	// The closing handlers receive the close reason, "dismiss" or
	// "action", in the event detail.
	binding.OpenHandlers
}

// Snackbar renders an mdc-snackbar bound to an MDCSnackbar.
func Snackbar(s *component.Scope, p SnackbarProps) (*vdom.VNode, error) {
	root := component.UseNodeRef(s)
	opts := []binding.Option{binding.Into(p.SnackbarRef)}
	if timeout := p.TimeoutMs; timeout > 0 {
		opts = append(opts, binding.AfterCreate(func(h widget.Handle) error {
			return h.Set("timeoutMs", timeout)
		}))
	}
	b := binding.UseWidget(s, widget.KindSnackbar, root, opts...)
	binding.UseOpenState(s, b, p.IsOpen, p.OpenHandlers)

	var actions *vdom.VNode
	if p.ActionLabel != "" {
		actions = vdom.Div(vdom.Class("mdc-snackbar__actions"),
			vdom.Button(
				vdom.Type("button"),
				vdom.Class("mdc-button mdc-snackbar__action"),
				vdom.Div(vdom.Class("mdc-button__ripple")),
				vdom.Span(vdom.Class("mdc-button__label"), p.ActionLabel),
			),
		)
	}

	return vdom.Div(
		vdom.Ref(root),
		vdom.Classes("mdc-snackbar").
			AddIf(p.IsStacked, "mdc-snackbar--stacked").
			AddIf(p.IsLeading, "mdc-snackbar--leading").
			Attr(),
		vdom.Div(
			vdom.Classes("mdc-snackbar__surface", p.Class).Attr(),
			vdom.Div(
				vdom.Class("mdc-snackbar__label"),
				vdom.Role("status"),
				vdom.AriaLive("polite"),
				p.Label,
			),
			actions,
		),
	), nil
}
