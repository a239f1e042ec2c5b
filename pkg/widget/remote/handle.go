package remote

import (
	"fmt"
	"sync"

	"github.com/vango-dev/mdc/pkg/widget"
)

// Handle proxies one MDC instance on the client. Fields written by the
// server and fields reported by the client are mirrored so Get never
// round-trips.
type Handle struct {
	tk   *Toolkit
	id   string
	kind widget.Kind
	root widget.Node

	mu        sync.Mutex
	listeners map[string][]widget.Listener
	fields    map[string]any
	destroyed bool
}

var _ widget.Handle = (*Handle)(nil)

// ID returns the widget id used on the wire.
func (h *Handle) ID() string { return h.id }

// Kind implements widget.Handle.
func (h *Handle) Kind() widget.Kind { return h.kind }

// Root implements widget.Handle.
func (h *Handle) Root() widget.Node { return h.root }

// Listen implements widget.Handle. Only the first listener of an event is
// announced to the client.
func (h *Handle) Listen(event string, l widget.Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.destroyed {
		return
	}
	if len(h.listeners[event]) == 0 {
		h.tk.queue(Command{Op: OpListen, ID: h.id, Event: event})
	}
	h.listeners[event] = append(h.listeners[event], l)
}

// Unlisten implements widget.Handle. Removing the last listener of an
// event tells the client to stop forwarding it.
func (h *Handle) Unlisten(event string, l widget.Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	ls := h.listeners[event]
	for i, x := range ls {
		if x == l {
			ls = append(ls[:i:i], ls[i+1:]...)
			break
		}
	}
	if len(ls) > 0 {
		h.listeners[event] = ls
		return
	}
	if _, ok := h.listeners[event]; !ok {
		return
	}
	delete(h.listeners, event)
	if !h.destroyed {
		h.tk.queue(Command{Op: OpUnlisten, ID: h.id, Event: event})
	}
}

// Set implements widget.Handle.
func (h *Handle) Set(field string, value any) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.destroyed {
		return widget.ErrDestroyed
	}
	h.fields[field] = value
	h.tk.queue(Command{Op: OpSet, ID: h.id, Field: field, Value: wireValue(value)})
	return nil
}

// Get implements widget.Handle from the mirror.
func (h *Handle) Get(field string) (any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.destroyed {
		return nil, widget.ErrDestroyed
	}
	v, ok := h.fields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", widget.ErrUnknownField, h.kind, field)
	}
	return v, nil
}

// Call implements widget.Handle. Method errors are reported asynchronously
// by the client.
func (h *Handle) Call(method string, args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.destroyed {
		return widget.ErrDestroyed
	}
	wire := make([]any, len(args))
	for i, a := range args {
		wire[i] = wireValue(a)
	}
	if len(wire) == 0 {
		wire = nil
	}
	h.tk.queue(Command{Op: OpCall, ID: h.id, Method: method, Args: wire})
	return nil
}

// Destroy implements widget.Handle. A second call returns
// widget.ErrDestroyed.
func (h *Handle) Destroy() error {
	h.mu.Lock()
	if h.destroyed {
		h.mu.Unlock()
		return widget.ErrDestroyed
	}
	h.destroyed = true
	h.listeners = make(map[string][]widget.Listener)
	h.mu.Unlock()

	h.tk.mu.Lock()
	delete(h.tk.handles, h.id)
	h.tk.outbox = append(h.tk.outbox, Command{Op: OpDestroy, ID: h.id})
	h.tk.mu.Unlock()
	return nil
}

func (h *Handle) mirror(field string, value any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fields[field] = value
}

// dispatch mirrors the state carried by e and delivers it to the
// listeners registered for its name.
func (h *Handle) dispatch(e widget.Event) {
	_, logical, _ := widget.LogicalEvent(e.Name)

	h.mu.Lock()
	if h.destroyed {
		h.mu.Unlock()
		return
	}
	switch logical {
	case widget.EventOpening:
		h.fields["isOpen"] = true
	case widget.EventClosing:
		h.fields["isOpen"] = false
	case widget.EventChange:
		if h.kind == widget.KindSelect {
			h.fields["value"] = e.Raw("value")
			h.fields["selectedIndex"] = e.Int("index")
		} else {
			h.fields["on"] = e.Bool("isOn")
		}
	case widget.EventActivated:
		h.fields["activeTab"] = e.Int("index")
	}
	ls := append([]widget.Listener(nil), h.listeners[e.Name]...)
	h.mu.Unlock()

	for _, l := range ls {
		l.HandleEvent(e)
	}
}

// opener adds the open/close methods of dialogs and snackbars.
type opener struct{ *Handle }

var _ widget.Opener = opener{}

// IsOpen reports the mirrored open state.
func (o opener) IsOpen() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	open, _ := o.fields["isOpen"].(bool)
	return open
}

// Open asks the client to open the widget. The mirror flips immediately;
// the client confirms with an opening event.
func (o opener) Open() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.destroyed {
		return widget.ErrDestroyed
	}
	o.fields["isOpen"] = true
	o.tk.queue(Command{Op: OpCall, ID: o.id, Method: "open"})
	return nil
}

// Close asks the client to close the widget with action.
func (o opener) Close(action string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.destroyed {
		return widget.ErrDestroyed
	}
	o.fields["isOpen"] = false
	var args []any
	if action != "" {
		args = []any{action}
	}
	o.tk.queue(Command{Op: OpCall, ID: o.id, Method: "close", Args: args})
	return nil
}

// proxyOf returns the proxy behind a handle returned by New.
func proxyOf(h widget.Handle) *Handle {
	switch v := h.(type) {
	case *Handle:
		return v
	case opener:
		return v.Handle
	}
	return nil
}
