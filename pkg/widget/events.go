package widget

import "fmt"

// Logical event names shared by several widget kinds.
const (
	EventOpening             = "opening"
	EventOpened              = "opened"
	EventClosing             = "closing"
	EventClosed              = "closed"
	EventChange              = "change"
	EventActivated           = "activated"
	EventInteracted          = "interacted"
	EventRowSelectionChanged = "rowSelectionChanged"
	EventSelectedAll         = "selectedAll"
	EventUnselectedAll       = "unselectedAll"
	EventSorted              = "sorted"
)

// eventNames maps each kind's logical event names to the names the toolkit
// dispatches on the wire.
var eventNames = map[Kind]map[string]string{
	KindDialog: {
		EventOpening: "MDCDialog:opening",
		EventOpened:  "MDCDialog:opened",
		EventClosing: "MDCDialog:closing",
		EventClosed:  "MDCDialog:closed",
	},
	KindSnackbar: {
		EventOpening: "MDCSnackbar:opening",
		EventOpened:  "MDCSnackbar:opened",
		EventClosing: "MDCSnackbar:closing",
		EventClosed:  "MDCSnackbar:closed",
	},
	KindSelect: {
		EventChange: "MDCSelect:change",
	},
	KindTab: {
		EventInteracted: "MDCTab:interacted",
	},
	KindTabBar: {
		EventActivated: "MDCTabBar:activated",
	},
	KindDataTable: {
		EventRowSelectionChanged: "MDCDataTable:rowSelectionChanged",
		EventSelectedAll:         "MDCDataTable:selectedAll",
		EventUnselectedAll:       "MDCDataTable:unselectedAll",
		EventSorted:              "MDCDataTable:sorted",
	},
	KindIconButtonToggle: {
		EventChange: "MDCIconButtonToggle:change",
	},
}

// EventName returns the wire name of a logical event for kind.
func EventName(kind Kind, logical string) (string, bool) {
	name, ok := eventNames[kind][logical]
	return name, ok
}

// MustEventName is like EventName but panics for an unknown pair.
// Components only pass the constants above.
func MustEventName(kind Kind, logical string) string {
	name, ok := EventName(kind, logical)
	if !ok {
		panic(fmt.Sprintf("widget: %s has no %q event", kind, logical))
	}
	return name
}

// LogicalEvent maps a wire name back to its kind and logical name.
func LogicalEvent(wire string) (Kind, string, bool) {
	for kind, names := range eventNames {
		for logical, w := range names {
			if w == wire {
				return kind, logical, true
			}
		}
	}
	return "", "", false
}
