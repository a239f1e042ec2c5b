package mdc

import (
	"strconv"

	"github.com/vango-dev/mdc/pkg/binding"
	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/vdom"
	"github.com/vango-dev/mdc/pkg/widget"
)

// SelectVariation selects the select style.
type SelectVariation string

const (
	SelectFilled   SelectVariation = "filled"
	SelectOutlined SelectVariation = "outlined"
)

// SelectItem is one option of a Select.
type SelectItem struct {
	Value string
	Text  string
}

// StringItems returns items whose value and text are the same string.
func StringItems(values ...string) []SelectItem {
	items := make([]SelectItem, len(values))
	for i, v := range values {
		items[i] = SelectItem{Value: v, Text: v}
	}
	return items
}

// ItemsOf builds select items from arbitrary records. A nil value func
// uses the record's index as its value.
func ItemsOf[T any](records []T, value func(T) string, text func(T) string) []SelectItem {
	items := make([]SelectItem, len(records))
	for i, r := range records {
		v := strconv.Itoa(i)
		if value != nil {
			v = value(r)
		}
		items[i] = SelectItem{Value: v, Text: text(r)}
	}
	return items
}

// SelectProps configures Select.
type SelectProps struct {
	Label string
	Items []SelectItem

	// Value is the selected item value. Nil leaves the selection to the
	// widget; a non-nil value is pushed into it on every change unless the
	// select has focus.
	Value *string

	// Variation defaults to SelectFilled.
	Variation SelectVariation

	Required bool
	Disabled bool

	Class     string
	SelectRef *component.Ref[widget.Handle]

	// OnChange receives {value, index} when the user selects an item.
	OnChange func(widget.Event)

	// Attrs go to the root element.
	Attrs []vdom.Attr
}

// Select renders an mdc-select bound to an MDCSelect.
func Select(s *component.Scope, p SelectProps) (*vdom.VNode, error) {
	root := component.UseNodeRef(s)
	b := binding.UseWidget(s, widget.KindSelect, root, binding.Into(p.SelectRef))
	binding.UseControlledValue(s, b, p.Value, binding.SelectValue[string])
	binding.UseEvent(s, b, widget.EventChange, p.OnChange)

	if p.Items == nil {
		return nil, missing(s, "Select", "Items")
	}
	classes := vdom.Classes("mdc-select")
	outlined := false
	switch p.Variation {
	case "", SelectFilled:
		classes.Add("mdc-select--filled")
	case SelectOutlined:
		classes.Add("mdc-select--outlined")
		outlined = true
	default:
		return nil, unsupported(s, "Select", string(p.Variation), "filled", "outlined")
	}
	classes.AddIf(p.Required, "mdc-select--required").
		AddIf(p.Disabled, "mdc-select--disabled").
		Add(p.Class)

	selected := ""
	if p.Value != nil {
		selected = *p.Value
	}
	selectedText := ""
	options := make([]*vdom.VNode, len(p.Items))
	for i, item := range p.Items {
		isSelected := selected != "" && item.Value == selected
		if isSelected && selectedText == "" {
			selectedText = item.Text
		}
		options[i] = vdom.Li(
			vdom.Key(item.Value),
			vdom.Classes("mdc-list-item").AddIf(isSelected, "mdc-list-item--selected").Attr(),
			vdom.Data("value", item.Value),
			vdom.Role("option"),
			vdom.AttrIf(isSelected, vdom.AriaSelected(true)),
			vdom.Span(vdom.Class("mdc-list-item__ripple")),
			vdom.If(item.Text != "", vdom.Span(vdom.Class("mdc-list-item__text"), item.Text)),
		)
	}

	var label *vdom.VNode
	if outlined {
		label = vdom.Span(vdom.Class("mdc-notched-outline"),
			vdom.Span(vdom.Class("mdc-notched-outline__leading")),
			vdom.If(p.Label != "", vdom.Span(vdom.Class("mdc-notched-outline__notch"),
				vdom.Span(vdom.Class("mdc-floating-label"), p.Label),
			)),
			vdom.Span(vdom.Class("mdc-notched-outline__trailing")),
		)
	} else {
		label = vdom.Fragment(
			vdom.If(p.Label != "", vdom.Span(vdom.Class("mdc-floating-label"), p.Label)),
			vdom.Span(vdom.Class("mdc-line-ripple")),
		)
	}

	return vdom.Div(
		vdom.Ref(root),
		classes.Attr(),
		p.Attrs,
		vdom.Div(
			vdom.Class("mdc-select__anchor"),
			vdom.Role("button"),
			vdom.AriaHasPopup("listbox"),
			vdom.AttrIf(p.Required, vdom.AriaRequired(true)),
			vdom.AttrIf(p.Disabled, vdom.AriaDisabled(true)),
			vdom.If(!outlined, vdom.Span(vdom.Class("mdc-select__ripple"))),
			vdom.Span(vdom.Class("mdc-select__selected-text"), selectedText),
			vdom.Span(vdom.Class("mdc-select__dropdown-icon"), dropdownIcon()),
			label,
		),
		vdom.Div(
			vdom.Class("mdc-select__menu mdc-menu mdc-menu-surface mdc-menu-surface--fullwidth"),
			vdom.Ul(vdom.Class("mdc-list"), vdom.Role("listbox"), options),
		),
	), nil
}

func dropdownIcon() *vdom.VNode {
	return vdom.Svg(
		vdom.Class("mdc-select__dropdown-icon-graphic"),
		vdom.ViewBox("7 10 10 5"),
		vdom.Polygon(
			vdom.Class("mdc-select__dropdown-icon-inactive"),
			vdom.Stroke("none"),
			vdom.FillRule("evenodd"),
			vdom.Points("7 10 12 15 17 10"),
		),
		vdom.Polygon(
			vdom.Class("mdc-select__dropdown-icon-active"),
			vdom.Stroke("none"),
			vdom.FillRule("evenodd"),
			vdom.Points("7 15 12 10 17 15"),
		),
	)
}
