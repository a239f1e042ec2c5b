package widget

import (
	"fmt"
	"strconv"
	"strings"
)

// Event is a custom event emitted by a widget. Detail mirrors the DOM
// CustomEvent detail object.
type Event struct {
	Name   string
	Detail map[string]any
}

// String returns the detail value for key formatted as a string.
func (e Event) String(key string) string {
	if v, ok := e.Detail[key]; ok && v != nil {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// Int returns the detail value for key as an int.
func (e Event) Int(key string) int {
	if v, ok := e.Detail[key]; ok {
		switch val := v.(type) {
		case int:
			return val
		case int64:
			return int(val)
		case float64:
			return int(val)
		case string:
			i, _ := strconv.Atoi(val)
			return i
		}
	}
	return 0
}

// Bool returns the detail value for key as a bool.
func (e Event) Bool(key string) bool {
	if v, ok := e.Detail[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
		b, _ := strconv.ParseBool(fmt.Sprintf("%v", v))
		return b
	}
	return false
}

// Raw returns the detail value for key without conversion.
func (e Event) Raw(key string) any {
	return e.Detail[key]
}

// Action is the dialog close action, or the empty string.
func (e Event) Action() string { return e.String("action") }

// Reason is the snackbar close reason, or the empty string.
func (e Event) Reason() string { return e.String("reason") }

// HandlerName returns the callback property name for a logical event,
// e.g. "opened" becomes "onOpened".
func HandlerName(event string) string {
	if event == "" {
		return "on"
	}
	return "on" + strings.ToUpper(event[:1]) + event[1:]
}
