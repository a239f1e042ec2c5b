package mdc

import (
	"strconv"

	"github.com/vango-dev/mdc/pkg/binding"
	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/vdom"
	"github.com/vango-dev/mdc/pkg/widget"
)

// TabProps configures Tab.
type TabProps struct {
	Label  string
	Active bool

	// Icon and IconClass render a tab icon, as for Button.
	Icon      string
	IconClass string

	Class  string
	TabRef *component.Ref[widget.Handle]

	// OnInteracted receives the tab's interaction event.
	OnInteracted func(widget.Event)

	// Attrs go to the tab button.
	Attrs []vdom.Attr
}

// Tab renders an mdc-tab bound to an MDCTab. Tabs are normally rendered by
// TabBar.
func Tab(s *component.Scope, p TabProps) (*vdom.VNode, error) {
	root := component.UseNodeRef(s)
	b := binding.UseWidget(s, widget.KindTab, root, binding.Into(p.TabRef))
	binding.UseEvent(s, b, widget.EventInteracted, p.OnInteracted)

	return vdom.Button(
		vdom.Ref(root),
		vdom.Classes("mdc-tab").AddIf(p.Active, "mdc-tab--active").Add(p.Class).Attr(),
		vdom.Role("tab"),
		vdom.AriaSelected(p.Active),
		vdom.TabIndex(-1),
		vdom.Type("button"),
		p.Attrs,
		vdom.Span(vdom.Class("mdc-tab__content"),
			buttonIcon(p.Icon, p.IconClass, "mdc-tab__icon", vdom.Span),
			vdom.Span(vdom.Class("mdc-tab__text-label"), p.Label),
		),
		vdom.Span(
			vdom.Classes("mdc-tab-indicator").AddIf(p.Active, "mdc-tab-indicator--active").Attr(),
			vdom.Span(vdom.Class("mdc-tab-indicator__content mdc-tab-indicator__content--underline")),
		),
		vdom.Span(vdom.Class("mdc-tab__ripple")),
	), nil
}

// TabBarProps configures TabBar.
type TabBarProps struct {
	// Tabs are rendered as child Tab components.
	Tabs []TabProps

	// Children are rendered after Tabs, for tabs built by the caller.
	Children []*vdom.VNode

	// ActiveTab, when set, is activated through the widget whenever it
	// changes.
	ActiveTab *int

	Class     string
	TabBarRef *component.Ref[widget.Handle]

	// OnActivated receives {index} when a tab is activated.
	OnActivated func(widget.Event)
}

// TabBar renders an mdc-tab-bar bound to an MDCTabBar.
func TabBar(s *component.Scope, p TabBarProps) (*vdom.VNode, error) {
	root := component.UseNodeRef(s)
	b := binding.UseWidget(s, widget.KindTabBar, root, binding.Into(p.TabBarRef))
	binding.UseEvent(s, b, widget.EventActivated, p.OnActivated)
	binding.UseControlledValue(s, b, p.ActiveTab, activateTab)

	tabs := make([]*vdom.VNode, 0, len(p.Tabs)+len(p.Children))
	for i, tp := range p.Tabs {
		if p.ActiveTab != nil {
			tp.Active = i == *p.ActiveTab
		}
		tab, err := component.Child(s, "tab-"+strconv.Itoa(i), Tab, tp)
		if err != nil {
			return nil, err
		}
		tabs = append(tabs, tab)
	}
	tabs = append(tabs, p.Children...)

	return vdom.Div(
		vdom.Ref(root),
		vdom.Classes("mdc-tab-bar", p.Class).Attr(),
		vdom.Role("tablist"),
		vdom.Div(vdom.Class("mdc-tab-scroller"),
			vdom.Div(vdom.Class("mdc-tab-scroller__scroll-area"),
				vdom.Div(vdom.Class("mdc-tab-scroller__scroll-content"), tabs),
			),
		),
	), nil
}

func activateTab(h widget.Handle, index int) error {
	return h.Call("activateTab", index)
}
