package mdc

import (
	"github.com/vango-dev/mdc/pkg/binding"
	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/vdom"
	"github.com/vango-dev/mdc/pkg/widget"
)

// IconToggleProps configures IconToggle.
type IconToggleProps struct {
	// OnIcon and OffIcon are icon texts rendered in <i> elements carrying
	// IconClass, e.g. "favorite" and "favorite_border" with
	// "material-icons".
	OnIcon    string
	OffIcon   string
	IconClass string

	// On and Off replace the icon texts with custom elements, see
	// ToggleOn and ToggleOff.
	On  *vdom.VNode
	Off *vdom.VNode

	IsOn bool

	// Label is the aria-label of a pressed/unpressed toggle. LabelOn and
	// LabelOff instead switch the label with the state.
	Label    string
	LabelOn  string
	LabelOff string

	// DisablesMdcInstance skips the ripple. The toggle widget is always
	// bound.
	DisablesMdcInstance bool

	Class     string
	ToggleRef *component.Ref[widget.Handle]
	RippleRef *component.Ref[widget.Handle]

	// OnChange receives {isOn} when the user toggles the button.
	OnChange func(widget.Event)

	Attrs []vdom.Attr
}

// IconToggle renders an mdc-icon-button bound to an MDCIconButtonToggle and
// an unbounded MDCRipple.
func IconToggle(s *component.Scope, p IconToggleProps) (*vdom.VNode, error) {
	root := component.UseNodeRef(s)
	toggle := binding.UseWidget(s, widget.KindIconButtonToggle, root, binding.Into(p.ToggleRef))
	binding.UseWidget(s, widget.KindRipple, root,
		binding.Disabled(p.DisablesMdcInstance),
		binding.Into(p.RippleRef),
		binding.AfterCreate(unbounded),
	)
	binding.UseEvent(s, toggle, widget.EventChange, p.OnChange)
	binding.UseControlledValue(s, toggle, &p.IsOn, setOn)

	var labels []vdom.Attr
	switch {
	case p.LabelOn != "" || p.LabelOff != "":
		current := p.LabelOff
		if p.IsOn {
			current = p.LabelOn
		}
		labels = []vdom.Attr{
			vdom.AriaLabel(current),
			vdom.Data("aria-label-on", p.LabelOn),
			vdom.Data("aria-label-off", p.LabelOff),
		}
	case p.Label != "":
		labels = []vdom.Attr{vdom.AriaLabel(p.Label), vdom.AriaPressed(p.IsOn)}
	}

	off, on := p.Off, p.On
	if off == nil {
		off = ToggleOff(vdom.I(vdom.Class(p.IconClass), p.OffIcon))
	}
	if on == nil {
		on = ToggleOn(vdom.I(vdom.Class(p.IconClass), p.OnIcon))
	}

	return vdom.Button(
		vdom.Ref(root),
		vdom.Classes("mdc-icon-button").AddIf(p.IsOn, "mdc-icon-button--on").Add(p.Class).Attr(),
		labels,
		p.Attrs,
		off,
		on,
	), nil
}

// ToggleOn marks n as the icon shown while the toggle is on. n may be an
// <i>, <img> or <svg> element.
func ToggleOn(n *vdom.VNode) *vdom.VNode {
	n.Props["class"] = vdom.Classes("mdc-icon-button__icon", "mdc-icon-button__icon--on", classOf(n)).String()
	return n
}

// ToggleOff marks n as the icon shown while the toggle is off.
func ToggleOff(n *vdom.VNode) *vdom.VNode {
	n.Props["class"] = vdom.Classes("mdc-icon-button__icon", classOf(n)).String()
	return n
}

func classOf(n *vdom.VNode) string {
	class, _ := n.Props["class"].(string)
	return class
}

func setOn(h widget.Handle, on bool) error {
	return h.Set("on", on)
}
