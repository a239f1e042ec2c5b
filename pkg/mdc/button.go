package mdc

import (
	"github.com/vango-dev/mdc/pkg/binding"
	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/vdom"
	"github.com/vango-dev/mdc/pkg/widget"
)

// ButtonVariation selects the button style.
type ButtonVariation string

const (
	ButtonText      ButtonVariation = "text"
	ButtonOutlined  ButtonVariation = "outlined"
	ButtonContained ButtonVariation = "contained"
)

// ButtonProps configures Button.
type ButtonProps struct {
	Label string

	// Variation defaults to ButtonText.
	Variation ButtonVariation

	// Icon is the text of a leading icon element, e.g. "bookmark".
	// IconClass replaces the default "material-icons" class. Either one
	// renders the icon.
	Icon      string
	IconClass string

	Disabled bool

	// SupportsTouch wraps the button so its touch target is 48x48px.
	SupportsTouch bool

	// DisablesMdcInstance renders the markup without a ripple.
	DisablesMdcInstance bool

	Class     string
	RippleRef *component.Ref[widget.Handle]
	OnClick   func()
	Attrs     []vdom.Attr
}

// Button renders an mdc-button bound to an MDCRipple.
func Button(s *component.Scope, p ButtonProps) (*vdom.VNode, error) {
	root := component.UseNodeRef(s)
	binding.UseWidget(s, widget.KindRipple, root,
		binding.Disabled(p.DisablesMdcInstance),
		binding.Into(p.RippleRef),
	)

	classes := vdom.Classes("mdc-button")
	switch p.Variation {
	case "", ButtonText:
	case ButtonOutlined:
		classes.Add("mdc-button--outlined")
	case ButtonContained:
		classes.Add("mdc-button--raised")
	default:
		return nil, unsupported(s, "Button", string(p.Variation), "text", "outlined", "contained")
	}
	classes.AddIf(p.SupportsTouch, "mdc-button--touch")
	classes.Add(p.Class)

	var onClick any
	if p.OnClick != nil {
		onClick = vdom.OnClick(p.OnClick)
	}

	button := vdom.Button(
		vdom.Ref(root),
		classes.Attr(),
		vdom.DisabledIf(p.Disabled),
		onClick,
		p.Attrs,
		vdom.Div(vdom.Class("mdc-button__ripple")),
		buttonIcon(p.Icon, p.IconClass, "mdc-button__icon", vdom.I),
		vdom.Span(vdom.Class("mdc-button__label"), p.Label),
		vdom.If(p.SupportsTouch, vdom.Div(vdom.Class("mdc-button__touch"))),
	)
	if p.SupportsTouch {
		return vdom.Div(vdom.Class("mdc-touch-target-wrapper"), button), nil
	}
	return button, nil
}

// buttonIcon renders the optional icon of buttons and tabs.
func buttonIcon(icon, iconClass, class string, tag func(...any) *vdom.VNode) *vdom.VNode {
	if icon == "" && iconClass == "" {
		return nil
	}
	if iconClass == "" {
		iconClass = "material-icons"
	}
	return tag(vdom.Class(iconClass, class), vdom.AriaHidden(true), icon)
}

// IconButtonProps configures IconButton.
type IconButtonProps struct {
	// Icon is the button content, e.g. "favorite" with Class
	// "material-icons". Children replace it.
	Icon     string
	Children []*vdom.VNode

	Disabled            bool
	DisablesMdcInstance bool

	Class     string
	RippleRef *component.Ref[widget.Handle]
	OnClick   func()
	Attrs     []vdom.Attr
}

// IconButton renders an mdc-icon-button bound to an unbounded MDCRipple.
func IconButton(s *component.Scope, p IconButtonProps) (*vdom.VNode, error) {
	root := component.UseNodeRef(s)
	binding.UseWidget(s, widget.KindRipple, root,
		binding.Disabled(p.DisablesMdcInstance),
		binding.Into(p.RippleRef),
		binding.AfterCreate(unbounded),
	)

	var content any = p.Icon
	if len(p.Children) > 0 {
		content = p.Children
	}
	var onClick any
	if p.OnClick != nil {
		onClick = vdom.OnClick(p.OnClick)
	}
	return vdom.Button(
		vdom.Ref(root),
		vdom.Classes("mdc-icon-button", p.Class).Attr(),
		vdom.DisabledIf(p.Disabled),
		onClick,
		p.Attrs,
		content,
	), nil
}

func unbounded(h widget.Handle) error {
	return h.Set("unbounded", true)
}
