package mdc

import (
	"github.com/vango-dev/mdc/pkg/binding"
	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/vdom"
	"github.com/vango-dev/mdc/pkg/widget"
)

// RadioProps configures Radio.
type RadioProps struct {
	ID    string
	Name  string
	Value string
	Label string

	Checked             bool
	Disabled            bool
	SupportsTouch       bool
	DisablesMdcInstance bool

	Class        string
	RadioRef     *component.Ref[widget.Handle]
	FormFieldRef *component.Ref[widget.Handle]
	OnChange     func(vdom.Event)

	// Attrs go to the native input.
	Attrs []vdom.Attr
}

// Radio renders an mdc-radio bound to an MDCRadio and, when labeled, an
// mdc-form-field bound to an MDCFormField.
func Radio(s *component.Scope, p RadioProps) (*vdom.VNode, error) {
	root := component.UseNodeRef(s)
	field := component.UseNodeRef(s)
	rb := binding.UseWidget(s, widget.KindRadio, root,
		binding.Disabled(p.DisablesMdcInstance),
		binding.Into(p.RadioRef),
	)
	ff := binding.UseWidget(s, widget.KindFormField, field,
		binding.Disabled(p.DisablesMdcInstance || p.Label == ""),
		binding.Into(p.FormFieldRef),
	)
	useFormFieldInput(s, ff, rb)

	classes := vdom.Classes("mdc-radio").AddIf(p.Disabled, "mdc-radio--disabled")
	if p.SupportsTouch {
		classes.Add("mdc-radio--touch")
	} else if p.Label == "" {
		classes.Add(p.Class)
	}

	var onChange any
	if p.OnChange != nil {
		onChange = vdom.OnChange(p.OnChange)
	}
	node := vdom.Div(
		vdom.Ref(root),
		classes.Attr(),
		vdom.Input(
			vdom.Type("radio"),
			vdom.Class("mdc-radio__native-control"),
			vdom.AttrIf(p.ID != "", vdom.ID(p.ID)),
			vdom.AttrIf(p.Name != "", vdom.Name(p.Name)),
			vdom.AttrIf(p.Value != "", vdom.Value(p.Value)),
			vdom.Checked(p.Checked),
			vdom.DisabledIf(p.Disabled),
			onChange,
			p.Attrs,
		),
		vdom.Div(vdom.Class("mdc-radio__background"),
			vdom.Div(vdom.Class("mdc-radio__outer-circle")),
			vdom.Div(vdom.Class("mdc-radio__inner-circle")),
		),
		vdom.Div(vdom.Class("mdc-radio__ripple")),
	)
	return wrapControl(node, field, p.ID, p.Label, p.Class, p.SupportsTouch), nil
}
