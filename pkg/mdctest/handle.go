package mdctest

import (
	"fmt"
	"sync"
	"time"

	"github.com/vango-dev/mdc/pkg/widget"
)

// DefaultSnackbarTimeout is the auto-dismiss delay of snackbars whose
// timeoutMs field was not set.
const DefaultSnackbarTimeout = 5000 * time.Millisecond

// Handle is a simulated widget. Test code drives it with the interaction
// methods (Click, SelectItem, Activate...) and inspects it with Field,
// Calls, Log and Listeners.
type Handle struct {
	tk   *Toolkit
	kind widget.Kind
	root widget.Node

	mu        sync.Mutex
	fields    map[string]any
	listeners map[string][]widget.Listener
	calls     map[string]int
	log       []string
	destroyed bool
	opened    bool
	pending   []func()

	// Data table state.
	rows     []string
	selected map[string]bool
}

func newHandle(tk *Toolkit, kind widget.Kind, root widget.Node) *Handle {
	return &Handle{
		tk:        tk,
		kind:      kind,
		root:      root,
		fields:    make(map[string]any),
		listeners: make(map[string][]widget.Listener),
		calls:     make(map[string]int),
		selected:  make(map[string]bool),
	}
}

var _ widget.Handle = (*Handle)(nil)

// Kind implements widget.Handle.
func (h *Handle) Kind() widget.Kind { return h.kind }

// Root implements widget.Handle.
func (h *Handle) Root() widget.Node { return h.root }

// Listen implements widget.Handle.
func (h *Handle) Listen(event string, l widget.Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record("Listen", "listen "+event)
	h.listeners[event] = append(h.listeners[event], l)
}

// Unlisten implements widget.Handle.
func (h *Handle) Unlisten(event string, l widget.Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.record("Unlisten", "unlisten "+event)
	ls := h.listeners[event]
	for i, x := range ls {
		if x == l {
			h.listeners[event] = append(ls[:i:i], ls[i+1:]...)
			break
		}
	}
	if len(h.listeners[event]) == 0 {
		delete(h.listeners, event)
	}
}

// Set implements widget.Handle.
func (h *Handle) Set(field string, value any) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.destroyed {
		return widget.ErrDestroyed
	}
	h.record("Set", fmt.Sprintf("set %s=%v", field, value))
	h.fields[field] = value
	return nil
}

// Get implements widget.Handle.
func (h *Handle) Get(field string) (any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.destroyed {
		return nil, widget.ErrDestroyed
	}
	if field == "isOpen" {
		return h.opened, nil
	}
	v, ok := h.fields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", widget.ErrUnknownField, h.kind, field)
	}
	return v, nil
}

// Call implements widget.Handle. Each kind supports the methods the
// components use.
func (h *Handle) Call(method string, args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.destroyed {
		return widget.ErrDestroyed
	}
	h.record("Call:"+method, fmt.Sprintf("call %s%v", method, args))

	switch {
	case method == "layout":
		return nil
	case method == "setValue" && h.kind == widget.KindSelect && len(args) == 1:
		h.fields["value"] = args[0]
		return nil
	case method == "activateTab" && h.kind == widget.KindTabBar && len(args) == 1:
		h.fields["activeTab"] = args[0]
		return nil
	}
	return fmt.Errorf("%w: %s.%s", widget.ErrUnknownMethod, h.kind, method)
}

// Destroy implements widget.Handle.
func (h *Handle) Destroy() error {
	h.mu.Lock()
	h.record("Destroy", "destroy")
	if h.destroyed {
		h.mu.Unlock()
		if h.kind == widget.KindDataTable {
			return fmt.Errorf("%s: destroy called twice", h.kind)
		}
		return widget.ErrDestroyed
	}
	h.destroyed = true
	h.listeners = make(map[string][]widget.Listener)
	h.pending = nil
	h.opened = false
	h.mu.Unlock()

	h.tk.cancelTimers(h)
	return h.tk.destroyed(h)
}

// record must be called with h.mu held.
func (h *Handle) record(name, entry string) {
	h.calls[name]++
	h.log = append(h.log, entry)
}

// Destroyed reports whether Destroy was called.
func (h *Handle) Destroyed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.destroyed
}

// Field returns a field previously set on the handle.
func (h *Handle) Field(name string) any {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.fields[name]
}

// Calls returns how often a method was invoked. Names are Listen,
// Unlisten, Set, Destroy, Open, Close, and Call:<method>.
func (h *Handle) Calls(name string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls[name]
}

// Log returns every recorded call in order, e.g. "set value=x".
func (h *Handle) Log() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.log...)
}

// ResetLog clears the call log and counters.
func (h *Handle) ResetLog() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.log = nil
	h.calls = make(map[string]int)
}

// Listeners returns the number of listeners for a logical event.
func (h *Handle) Listeners(logical string) int {
	wire, _ := widget.EventName(h.kind, logical)
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners[wire])
}

// Opened reports the simulated open state of a dialog or snackbar.
func (h *Handle) Opened() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.opened
}

// Emit dispatches a logical event with detail to the handle's listeners.
func (h *Handle) Emit(logical string, detail map[string]any) {
	wire := widget.MustEventName(h.kind, logical)
	h.mu.Lock()
	if h.destroyed {
		h.mu.Unlock()
		return
	}
	ls := append([]widget.Listener(nil), h.listeners[wire]...)
	h.mu.Unlock()

	e := widget.Event{Name: wire, Detail: detail}
	for _, l := range ls {
		l.HandleEvent(e)
	}
}

func (h *Handle) takePending() []func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	p := h.pending
	h.pending = nil
	return p
}

func (h *Handle) mustBe(kinds ...widget.Kind) {
	for _, k := range kinds {
		if h.kind == k {
			return
		}
	}
	panic(fmt.Sprintf("mdctest: %s does not support this interaction", h.kind))
}

// opener exposes the open/close methods of dialogs and snackbars.
type opener struct{ *Handle }

var _ widget.Opener = opener{}

func (o opener) IsOpen() bool { return o.Opened() }

func (o opener) Open() error { return o.open() }

func (o opener) Close(action string) error { return o.close(action) }

func (h *Handle) open() error {
	h.mu.Lock()
	if h.destroyed {
		h.mu.Unlock()
		return widget.ErrDestroyed
	}
	h.record("Open", "open")
	if h.opened {
		h.mu.Unlock()
		return nil
	}
	h.mu.Unlock()

	if h.kind == widget.KindDialog {
		if _, _, ok := h.tk.measure(h.root); !ok {
			return widget.ErrLayoutUnavailable
		}
	}

	h.mu.Lock()
	h.opened = true
	h.pending = append(h.pending, func() { h.Emit(widget.EventOpened, map[string]any{}) })
	timeout := DefaultSnackbarTimeout
	if ms, ok := h.fields["timeoutMs"].(int); ok {
		timeout = time.Duration(ms) * time.Millisecond
	}
	h.mu.Unlock()

	h.Emit(widget.EventOpening, map[string]any{})
	if h.kind == widget.KindSnackbar && timeout > 0 {
		h.tk.after(h, timeout, func() { h.close("dismiss") })
	}
	return nil
}

// close closes with action as the dialog action or snackbar reason.
func (h *Handle) close(action string) error {
	h.mu.Lock()
	if h.destroyed {
		h.mu.Unlock()
		return widget.ErrDestroyed
	}
	h.record("Close", "close "+action)
	if !h.opened {
		h.mu.Unlock()
		return nil
	}
	h.opened = false
	key := "action"
	if h.kind == widget.KindSnackbar {
		key = "reason"
	}
	detail := map[string]any{}
	if action != "" {
		detail[key] = action
	}
	h.pending = append(h.pending, func() { h.Emit(widget.EventClosed, detail) })
	h.mu.Unlock()

	h.tk.cancelTimers(h)
	h.Emit(widget.EventClosing, detail)
	return nil
}

// HandleOf returns the simulated handle behind a handle returned by New.
func HandleOf(h widget.Handle) *Handle {
	switch v := h.(type) {
	case *Handle:
		return v
	case opener:
		return v.Handle
	}
	return nil
}
