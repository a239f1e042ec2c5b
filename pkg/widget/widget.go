package widget

// Kind identifies a toolkit widget constructor (e.g., "MDCDialog").
type Kind string

const (
	KindRipple           Kind = "MDCRipple"
	KindCheckbox         Kind = "MDCCheckbox"
	KindFormField        Kind = "MDCFormField"
	KindRadio            Kind = "MDCRadio"
	KindSelect           Kind = "MDCSelect"
	KindTextField        Kind = "MDCTextField"
	KindDialog           Kind = "MDCDialog"
	KindSnackbar         Kind = "MDCSnackbar"
	KindTab              Kind = "MDCTab"
	KindTabBar           Kind = "MDCTabBar"
	KindDataTable        Kind = "MDCDataTable"
	KindIconButtonToggle Kind = "MDCIconButtonToggle"
	KindTooltip          Kind = "MDCTooltip"
)

// Kinds lists every widget kind the components bind.
var Kinds = []Kind{
	KindRipple, KindCheckbox, KindFormField, KindRadio, KindSelect,
	KindTextField, KindDialog, KindSnackbar, KindTab, KindTabBar,
	KindDataTable, KindIconButtonToggle, KindTooltip,
}

// Node references a rendered element. ID is the value of the element's
// data-mdc-ref attribute and is stable for the lifetime of the node ref.
type Node struct {
	ID  string
	Tag string
}

// IsZero reports whether n refers to no element.
func (n Node) IsZero() bool {
	return n.ID == ""
}

// Listener receives widget events. Implementations must be comparable
// (pointer types) because Unlisten matches listeners by identity.
type Listener interface {
	HandleEvent(e Event)
}

// Handle is a live widget instance owned by exactly one binder.
type Handle interface {
	// Kind returns the constructor the handle was created with.
	Kind() Kind

	// Root returns the element the handle is bound to.
	Root() Node

	// Listen subscribes l to the wire event name.
	Listen(event string, l Listener)

	// Unlisten removes a subscription previously added with Listen.
	Unlisten(event string, l Listener)

	// Set writes a widget field such as "value" or "unbounded".
	Set(field string, value any) error

	// Get reads a widget field.
	Get(field string) (any, error)

	// Call invokes a widget method such as "layout".
	Call(method string, args ...any) error

	// Destroy tears the widget down. Calling it twice is not guaranteed
	// to be safe for every kind.
	Destroy() error
}

// Opener is implemented by dialog-like handles.
type Opener interface {
	Handle

	IsOpen() bool
	Open() error
	Close(action string) error
}

// Document reports the focus state of the rendering document.
type Document interface {
	HasFocus() bool
	ActiveElement() (Node, bool)
}

// Toolkit constructs widgets.
type Toolkit interface {
	New(kind Kind, root Node) (Handle, error)
	Document() Document
}

// HasFocusOn reports whether doc is focused and its active element is n.
func HasFocusOn(doc Document, n Node) bool {
	if doc == nil || n.IsZero() || !doc.HasFocus() {
		return false
	}
	active, ok := doc.ActiveElement()
	return ok && active.ID == n.ID
}
