package mdc

import (
	"github.com/vango-dev/mdc/pkg/binding"
	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/vdom"
	"github.com/vango-dev/mdc/pkg/widget"
)

// DialogButton is an action button of a dialog. Pressing it closes the
// dialog with Action as the close action.
type DialogButton struct {
	Action    string
	Label     string
	IsDefault bool
}

// DialogProps configures Dialog.
type DialogProps struct {
	Title   string
	Buttons []DialogButton
	Content []*vdom.VNode

	// IsOpen is the desired state. The dialog is opened or closed only
	// when IsOpen changes; a dialog the user closed stays closed until
	// IsOpen goes false and true again.
	IsOpen bool

	// Class is added to the dialog surface.
	Class     string
	DialogRef *component.Ref[widget.Handle]

	// The closing handlers receive the close action in the event detail.
	binding.OpenHandlers
}

// Dialog renders a confirmation mdc-dialog bound to an MDCDialog.
func Dialog(s *component.Scope, p DialogProps) (*vdom.VNode, error) {
	root := component.UseNodeRef(s)
	b := binding.UseWidget(s, widget.KindDialog, root, binding.Into(p.DialogRef))
	binding.UseOpenState(s, b, p.IsOpen, p.OpenHandlers)

	buttons := make([]*vdom.VNode, len(p.Buttons))
	for i, btn := range p.Buttons {
		buttons[i] = vdom.Button(
			vdom.Key(btn.Action),
			vdom.Type("button"),
			vdom.Class("mdc-button mdc-dialog__button"),
			vdom.Data("mdc-dialog-action", btn.Action),
			vdom.AttrIf(btn.IsDefault, vdom.Data("mdc-dialog-button-default", "")),
			vdom.Div(vdom.Class("mdc-button__ripple")),
			vdom.Span(vdom.Class("mdc-button__label"), btn.Label),
		)
	}

	return vdom.Div(
		vdom.Ref(root),
		vdom.Class("mdc-dialog"),
		vdom.Div(vdom.Class("mdc-dialog__container"),
			vdom.Div(
				vdom.Classes("mdc-dialog__surface", p.Class).Attr(),
				vdom.Role("alertdialog"),
				vdom.AriaModal(true),
				vdom.If(p.Title != "", vdom.H2(vdom.Class("mdc-dialog__title"), p.Title)),
				vdom.Div(vdom.Class("mdc-dialog__content"), p.Content),
				vdom.Div(vdom.Class("mdc-dialog__actions"), buttons),
			),
		),
		vdom.Div(vdom.Class("mdc-dialog__scrim")),
	), nil
}

// AlertDialogProps configures AlertDialog.
type AlertDialogProps struct {
	// Content is the alert message.
	Content string
	Buttons []DialogButton
	IsOpen  bool
	Class   string

	DialogRef *component.Ref[widget.Handle]

	binding.OpenHandlers
}

// AlertDialog renders a title-less Dialog showing a message.
func AlertDialog(s *component.Scope, p AlertDialogProps) (*vdom.VNode, error) {
	return component.Child(s, "dialog", Dialog, DialogProps{
		Buttons:      p.Buttons,
		Content:      []*vdom.VNode{vdom.Text(p.Content)},
		IsOpen:       p.IsOpen,
		Class:        p.Class,
		DialogRef:    p.DialogRef,
		OpenHandlers: p.OpenHandlers,
	})
}
