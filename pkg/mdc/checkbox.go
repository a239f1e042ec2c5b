package mdc

import (
	"github.com/vango-dev/mdc/pkg/binding"
	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/vdom"
	"github.com/vango-dev/mdc/pkg/widget"
)

// CheckboxProps configures Checkbox.
type CheckboxProps struct {
	// ID is the native input id; the label points at it.
	ID    string
	Name  string
	Value string

	// Label wraps the checkbox in an mdc-form-field.
	Label string

	Checked bool

	// Indeterminate renders the mixed state while unchecked.
	Indeterminate bool

	Disabled      bool
	SupportsTouch bool

	// DisablesMdcInstance renders the markup without binding widgets.
	DisablesMdcInstance bool

	Class        string
	CheckboxRef  *component.Ref[widget.Handle]
	FormFieldRef *component.Ref[widget.Handle]
	OnChange     func(vdom.Event)

	// Attrs go to the native input.
	Attrs []vdom.Attr
}

// Checkbox renders an mdc-checkbox bound to an MDCCheckbox and, when
// labeled, an mdc-form-field bound to an MDCFormField.
func Checkbox(s *component.Scope, p CheckboxProps) (*vdom.VNode, error) {
	root := component.UseNodeRef(s)
	field := component.UseNodeRef(s)
	cb := binding.UseWidget(s, widget.KindCheckbox, root,
		binding.Disabled(p.DisablesMdcInstance),
		binding.Into(p.CheckboxRef),
	)
	ff := binding.UseWidget(s, widget.KindFormField, field,
		binding.Disabled(p.DisablesMdcInstance || p.Label == ""),
		binding.Into(p.FormFieldRef),
	)
	useFormFieldInput(s, ff, cb)

	classes := vdom.Classes("mdc-checkbox").
		AddIf(p.Checked, "mdc-checkbox--selected").
		AddIf(p.Disabled, "mdc-checkbox--disabled")
	if p.SupportsTouch {
		classes.Add("mdc-checkbox--touch")
	} else if p.Label == "" {
		classes.Add(p.Class)
	}

	var onChange any
	if p.OnChange != nil {
		onChange = vdom.OnChange(p.OnChange)
	}
	input := vdom.Input(
		vdom.Type("checkbox"),
		vdom.Class("mdc-checkbox__native-control"),
		vdom.AttrIf(p.ID != "", vdom.ID(p.ID)),
		vdom.AttrIf(p.Name != "", vdom.Name(p.Name)),
		vdom.AttrIf(p.Value != "", vdom.Value(p.Value)),
		vdom.Checked(p.Checked),
		vdom.DisabledIf(p.Disabled),
		vdom.AttrIf(!p.Checked && p.Indeterminate, vdom.Data("indeterminate", "true")),
		onChange,
		p.Attrs,
	)

	node := vdom.Div(
		vdom.Ref(root),
		classes.Attr(),
		input,
		vdom.Div(vdom.Class("mdc-checkbox__background"),
			vdom.Svg(vdom.Class("mdc-checkbox__checkmark"), vdom.ViewBox("0 0 24 24"),
				vdom.Path(
					vdom.Class("mdc-checkbox__checkmark-path"),
					vdom.Fill("none"),
					vdom.D("M1.73,12.91 8.1,19.28 22.79,4.59"),
				),
			),
			vdom.Div(vdom.Class("mdc-checkbox__mixedmark")),
		),
		vdom.Div(vdom.Class("mdc-checkbox__ripple")),
	)
	return wrapControl(node, field, p.ID, p.Label, p.Class, p.SupportsTouch), nil
}

// wrapControl adds the form field around a labeled control and the touch
// target wrapper around touch controls. The caller's class goes to the
// outermost element.
func wrapControl(control *vdom.VNode, field *component.NodeRef, id, label, class string, touch bool) *vdom.VNode {
	node := control
	if label != "" {
		classes := vdom.Classes("mdc-form-field")
		if !touch {
			classes.Add(class)
		}
		node = vdom.Div(
			vdom.Ref(field),
			classes.Attr(),
			control,
			vdom.Label(vdom.AttrIf(id != "", vdom.For(id)), label),
		)
	}
	if touch {
		return vdom.Div(vdom.Classes("mdc-touch-target-wrapper", class).Attr(), node)
	}
	return node
}
