package mdc

import (
	"strings"

	"github.com/vango-dev/mdc/pkg/binding"
	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/vdom"
	"github.com/vango-dev/mdc/pkg/widget"
)

// TextFieldVariation selects the text field style.
type TextFieldVariation string

const (
	TextFieldFilled         TextFieldVariation = "filled"
	TextFieldOutlined       TextFieldVariation = "outlined"
	TextFieldTextarea       TextFieldVariation = "textarea"
	TextFieldFilledTextarea TextFieldVariation = "filled-textarea"
)

// TextFieldProps configures TextField.
type TextFieldProps struct {
	// ID is used as the input id and name, and derives the ids of the
	// label ("<id>-label") and helper text ("<id>-helper").
	ID    string
	Label string

	// Type is the input type, "text" by default. Ignored by textareas.
	Type string

	// Value is pushed into the widget on every change unless the field
	// has focus. Nil leaves the field uncontrolled with DefaultValue.
	Value        *string
	DefaultValue string

	// Variation defaults to TextFieldFilled.
	Variation TextFieldVariation

	HelperText              string
	ShowsHelperPersistently bool
	ShowsHelperAsValidation bool

	// Rows and Cols size textareas; they default to 4 and 32.
	Rows      int
	Cols      int
	Resizable bool

	Disabled bool
	Required bool

	// Dataset adds data-* attributes to the input.
	Dataset map[string]string

	Class        string
	TextFieldRef *component.Ref[widget.Handle]
	OnInput      func(vdom.Event)

	// Attrs go to the native input or textarea.
	Attrs []vdom.Attr
}

// TextField renders an mdc-text-field bound to an MDCTextField, followed by
// its helper line when helper text is configured.
func TextField(s *component.Scope, p TextFieldProps) (*vdom.VNode, error) {
	root := component.UseNodeRef(s)
	b := binding.UseWidget(s, widget.KindTextField, root, binding.Into(p.TextFieldRef))
	binding.UseControlledValue(s, b, p.Value, binding.AssignValue[string])

	classes := vdom.Classes("mdc-text-field").
		AddIf(p.Label == "", "mdc-text-field--no-label").
		AddIf(p.Disabled, "mdc-text-field--disabled").
		AddIf(p.DefaultValue != "", "mdc-text-field--label-floating")
	filled, textarea := true, false
	switch p.Variation {
	case "", TextFieldFilled:
		classes.Add("mdc-text-field--filled")
	case TextFieldOutlined:
		classes.Add("mdc-text-field--outlined")
		filled = false
	case TextFieldTextarea:
		classes.Add("mdc-text-field--outlined", "mdc-text-field--textarea")
		filled, textarea = false, true
	case TextFieldFilledTextarea:
		classes.Add("mdc-text-field--filled", "mdc-text-field--textarea")
		textarea = true
	default:
		return nil, unsupported(s, "TextField", string(p.Variation), "filled", "outlined", "textarea", "filled-textarea")
	}
	classes.Add(p.Class)

	input := textFieldInput(p, textarea)
	if textarea && p.Resizable {
		input = vdom.Span(vdom.Class("mdc-text-field__resizer"), input)
	}

	var label *vdom.VNode
	if p.Label != "" {
		label = vdom.Span(
			vdom.Classes("mdc-floating-label").AddIf(p.DefaultValue != "", "mdc-floating-label--float-above").Attr(),
			vdom.AttrIf(p.ID != "", vdom.ID(p.ID+"-label")),
			p.Label,
		)
	}

	var field *vdom.VNode
	if filled {
		field = vdom.Label(
			vdom.Ref(root),
			classes.Attr(),
			vdom.Span(vdom.Class("mdc-text-field__ripple")),
			input,
			label,
			vdom.Span(vdom.Class("mdc-line-ripple")),
		)
	} else {
		var notch *vdom.VNode
		if label != nil {
			notch = vdom.Span(vdom.Class("mdc-notched-outline__notch"), label)
		}
		field = vdom.Label(
			vdom.Ref(root),
			classes.Attr(),
			input,
			vdom.Span(vdom.Class("mdc-notched-outline"),
				vdom.Span(vdom.Class("mdc-notched-outline__leading")),
				notch,
				vdom.Span(vdom.Class("mdc-notched-outline__trailing")),
			),
		)
	}
	return vdom.Fragment(field, helperLine(p)), nil
}

func (p TextFieldProps) hasHelper() bool {
	return p.HelperText != "" || p.ShowsHelperPersistently || p.ShowsHelperAsValidation
}

func textFieldInput(p TextFieldProps, textarea bool) *vdom.VNode {
	attrs := []vdom.Attr{vdom.Class("mdc-text-field__input")}
	if p.ID != "" {
		attrs = append(attrs, vdom.ID(p.ID), vdom.Name(p.ID))
		if p.Label != "" {
			attrs = append(attrs, vdom.AriaLabelledBy(p.ID+"-label"))
		}
		if p.hasHelper() {
			attrs = append(attrs, vdom.AriaControls(p.ID+"-helper"), vdom.AriaDescribedBy(p.ID+"-helper"))
		}
	}
	if p.Disabled {
		attrs = append(attrs, vdom.Disabled())
	}
	if p.Required {
		attrs = append(attrs, vdom.Required())
	}
	for k, v := range p.Dataset {
		attrs = append(attrs, vdom.Data(strings.ToLower(k), v))
	}
	var onInput any
	if p.OnInput != nil {
		onInput = vdom.OnInput(p.OnInput)
	}

	value := p.DefaultValue
	if p.Value != nil {
		value = *p.Value
	}

	if textarea {
		rows, cols := p.Rows, p.Cols
		if rows == 0 {
			rows = 4
		}
		if cols == 0 {
			cols = 32
		}
		attrs = append(attrs, vdom.Rows(rows), vdom.Cols(cols))
		return vdom.Textarea(attrs, onInput, p.Attrs, value)
	}

	typ := p.Type
	if typ == "" {
		typ = "text"
	}
	attrs = append(attrs, vdom.Type(typ), vdom.AttrIf(value != "", vdom.Value(value)))
	return vdom.Input(attrs, onInput, p.Attrs)
}

func helperLine(p TextFieldProps) *vdom.VNode {
	if !p.hasHelper() {
		return nil
	}
	return vdom.Div(vdom.Class("mdc-text-field-helper-line"),
		vdom.Div(
			vdom.Classes("mdc-text-field-helper-text").
				AddIf(p.ShowsHelperPersistently, "mdc-text-field-helper-text--persistent").
				AddIf(p.ShowsHelperAsValidation, "mdc-text-field-helper-text--validation-msg").
				Attr(),
			vdom.AttrIf(p.ID != "", vdom.ID(p.ID+"-helper")),
			vdom.AriaHidden(true),
			p.HelperText,
		),
	)
}
