package binding

import (
	"fmt"

	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/widget"
)

// bridge is the single listener one UseEvent call keeps on a widget. The
// callback behind it is swapped on every commit, so replacing a callback
// never adds a second subscription.
type bridge struct {
	logical string
	fn      func(widget.Event)

	attached widget.Handle
	wire     string
}

// HandleEvent implements widget.Listener.
func (br *bridge) HandleEvent(e widget.Event) {
	if fn := br.fn; fn != nil {
		fn(e)
	}
}

// sync subscribes to h when a callback is present and unsubscribes from
// any other handle.
func (br *bridge) sync(h widget.Handle) error {
	want := h != nil && br.fn != nil
	if br.attached != nil && (!want || br.attached != h) {
		br.detach()
	}
	if !want || br.attached != nil {
		return nil
	}

	wire, ok := widget.EventName(h.Kind(), br.logical)
	if !ok {
		return fmt.Errorf("binding: %s has no %q event", h.Kind(), br.logical)
	}
	h.Listen(wire, br)
	br.attached = h
	br.wire = wire
	return nil
}

func (br *bridge) detach() {
	if br.attached == nil {
		return
	}
	br.attached.Unlisten(br.wire, br)
	br.attached = nil
	br.wire = ""
}

// UseEvent forwards the logical event (see widget.EventOpened and friends)
// of b's widget to fn. A nil fn keeps the widget unsubscribed.
func UseEvent(s *component.Scope, b *Binder, event string, fn func(widget.Event)) {
	br := component.UseHook(s, func() *bridge {
		return &bridge{logical: event}
	})

	component.UseEffect(s, nil, func() (component.Cleanup, error) {
		br.fn = fn
		return nil, br.sync(b.Handle())
	})
	component.UseEffect(s, component.Deps{}, func() (component.Cleanup, error) {
		b.register(br)
		return func() error {
			br.detach()
			b.deregister(br)
			return nil
		}, nil
	})
}
