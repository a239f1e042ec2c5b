package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindRaw                   // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is a node of the rendered tree.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes and event handlers
	Children []*VNode // Child nodes
	Key      string   // Identity among siblings
	Text     string   // For KindText and KindRaw
}

// Props holds attributes and event handlers.
type Props map[string]any

// RefKey is the internal prop holding the ref targets of an element.
const RefKey = "_ref"

// IsInteractive returns true if this node has event handlers.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key, value := range v.Props {
		if strings.HasPrefix(key, "on") && IsHandler(value) {
			return true
		}
	}
	return false
}

// Attr returns the value of the named prop and whether it is set.
func (v *VNode) Attr(key string) (any, bool) {
	if v == nil || v.Props == nil {
		return nil, false
	}
	value, ok := v.Props[key]
	return value, ok
}

// Walk calls fn for v and every descendant in document order.
// Returning false from fn skips the node's children.
func (v *VNode) Walk(fn func(*VNode) bool) {
	if v == nil {
		return
	}
	if !fn(v) {
		return
	}
	for _, child := range v.Children {
		child.Walk(fn)
	}
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents a DOM event handler.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // func() or func(Event)
}

// Event is the payload delivered to DOM event handlers.
type Event struct {
	Type   string
	Target string
	Value  string
}

// IsHandler reports whether value is a supported handler function.
func IsHandler(value any) bool {
	switch value.(type) {
	case func(), func(Event):
		return true
	}
	return false
}

// RefTarget receives the element a Ref attribute is attached to.
type RefTarget interface {
	AttachElement(node *VNode)
}

// Ref attaches t to the element. An element may carry several refs.
func Ref(t RefTarget) Attr {
	if t == nil {
		return Attr{}
	}
	return Attr{Key: RefKey, Value: t}
}

// RefTargets returns the ref targets attached to node.
func RefTargets(node *VNode) []RefTarget {
	switch v := node.Props[RefKey].(type) {
	case RefTarget:
		return []RefTarget{v}
	case []RefTarget:
		return v
	}
	return nil
}
