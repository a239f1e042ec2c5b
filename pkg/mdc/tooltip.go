package mdc

import (
	"github.com/vango-dev/mdc/pkg/binding"
	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/vdom"
	"github.com/vango-dev/mdc/pkg/widget"
)

// TooltipProps configures Tooltip.
type TooltipProps struct {
	// ID is the tooltip element id. A random "mrj-" id is generated on
	// first render when empty and kept for the life of the component.
	ID   string
	Text string

	// Anchor is the element the tooltip describes. Anything other than a
	// single element is wrapped in a div.
	Anchor []*vdom.VNode

	// Class is added to the tooltip element.
	Class      string
	TooltipRef *component.Ref[widget.Handle]
}

// Tooltip renders a plain mdc-tooltip bound to an MDCTooltip, next to the
// anchor it describes.
func Tooltip(s *component.Scope, p TooltipProps) (*vdom.VNode, error) {
	id := component.UseHook(s, func() string {
		if p.ID != "" {
			return p.ID
		}
		return TooltipID()
	})
	root := component.UseNodeRef(s)
	binding.UseWidget(s, widget.KindTooltip, root, binding.Into(p.TooltipRef))

	var anchor *vdom.VNode
	if len(p.Anchor) == 1 && p.Anchor[0] != nil && p.Anchor[0].Kind == vdom.KindElement {
		anchor = withAttr(p.Anchor[0], vdom.AriaDescribedBy(id))
	} else {
		anchor = vdom.Div(vdom.AriaDescribedBy(id), p.Anchor)
	}

	return vdom.Fragment(
		anchor,
		vdom.Div(
			vdom.Ref(root),
			vdom.ID(id),
			vdom.Classes("mdc-tooltip", p.Class).Attr(),
			vdom.Role("tooltip"),
			vdom.AriaHidden(true),
			vdom.Div(vdom.Class("mdc-tooltip__surface mdc-tooltip__surface-animation"), p.Text),
		),
	), nil
}

// withAttr returns a shallow copy of n with a set. The caller's node is
// left untouched.
func withAttr(n *vdom.VNode, a vdom.Attr) *vdom.VNode {
	c := *n
	c.Props = make(vdom.Props, len(n.Props)+1)
	for k, v := range n.Props {
		c.Props[k] = v
	}
	c.Props[a.Key] = a.Value
	return &c
}
