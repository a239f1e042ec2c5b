package widget

import (
	"testing"
)

func TestEventName(t *testing.T) {
	tests := []struct {
		kind    Kind
		logical string
		want    string
		ok      bool
	}{
		{KindDialog, EventOpening, "MDCDialog:opening", true},
		{KindDialog, EventClosed, "MDCDialog:closed", true},
		{KindSnackbar, EventClosing, "MDCSnackbar:closing", true},
		{KindSelect, EventChange, "MDCSelect:change", true},
		{KindTabBar, EventActivated, "MDCTabBar:activated", true},
		{KindDataTable, EventSorted, "MDCDataTable:sorted", true},
		{KindIconButtonToggle, EventChange, "MDCIconButtonToggle:change", true},
		{KindRipple, EventChange, "", false},
		{KindDialog, "bogus", "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.logical, func(t *testing.T) {
			got, ok := EventName(tt.kind, tt.logical)
			if got != tt.want || ok != tt.ok {
				t.Errorf("EventName() = %q, %v; want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMustEventNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown event")
		}
	}()
	MustEventName(KindRipple, EventOpened)
}

func TestLogicalEvent(t *testing.T) {
	kind, logical, ok := LogicalEvent("MDCDataTable:rowSelectionChanged")
	if !ok || kind != KindDataTable || logical != EventRowSelectionChanged {
		t.Errorf("LogicalEvent() = %q, %q, %v", kind, logical, ok)
	}
	if _, _, ok := LogicalEvent("click"); ok {
		t.Error("expected unknown wire name to fail")
	}
}

func TestHandlerName(t *testing.T) {
	tests := map[string]string{
		"opened":              "onOpened",
		"rowSelectionChanged": "onRowSelectionChanged",
		"":                    "on",
	}
	for in, want := range tests {
		if got := HandlerName(in); got != want {
			t.Errorf("HandlerName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEventAccessors(t *testing.T) {
	e := Event{
		Name: "MDCSelect:change",
		Detail: map[string]any{
			"value":    "two",
			"index":    float64(1),
			"selected": true,
			"flag":     "true",
			"action":   "ok",
		},
	}

	if got := e.String("value"); got != "two" {
		t.Errorf("String(value) = %q", got)
	}
	if got := e.Int("index"); got != 1 {
		t.Errorf("Int(index) = %d", got)
	}
	if !e.Bool("selected") || !e.Bool("flag") {
		t.Error("Bool accessors should be true")
	}
	if e.Bool("missing") || e.Int("missing") != 0 || e.String("missing") != "" {
		t.Error("missing keys should yield zero values")
	}
	if e.Action() != "ok" {
		t.Errorf("Action() = %q", e.Action())
	}
	if e.Reason() != "" {
		t.Errorf("Reason() = %q", e.Reason())
	}
}

type fakeDoc struct {
	focused bool
	active  Node
}

func (d fakeDoc) HasFocus() bool { return d.focused }
func (d fakeDoc) ActiveElement() (Node, bool) {
	return d.active, !d.active.IsZero()
}

func TestHasFocusOn(t *testing.T) {
	n := Node{ID: "m1", Tag: "label"}
	tests := []struct {
		name string
		doc  Document
		want bool
	}{
		{"nil document", nil, false},
		{"unfocused document", fakeDoc{focused: false, active: n}, false},
		{"other element", fakeDoc{focused: true, active: Node{ID: "m2"}}, false},
		{"no active element", fakeDoc{focused: true}, false},
		{"bound element", fakeDoc{focused: true, active: n}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasFocusOn(tt.doc, n); got != tt.want {
				t.Errorf("HasFocusOn() = %v, want %v", got, tt.want)
			}
		})
	}
}
