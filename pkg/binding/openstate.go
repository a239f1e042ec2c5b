package binding

import (
	"fmt"

	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/widget"
)

// OpenHandlers receive the transitions of an open/close widget. Closing
// events carry the dialog action or the snackbar reason in their detail.
type OpenHandlers struct {
	OnOpening func(widget.Event)
	OnOpened  func(widget.Event)
	OnClosing func(widget.Event)
	OnClosed  func(widget.Event)
}

type openState struct {
	handle  widget.Handle
	desired bool
}

// UseOpenState opens or closes b's widget to match open. The widget is
// only called when open or the widget itself changed since the last
// commit, and only when its reported state differs.
func UseOpenState(s *component.Scope, b *Binder, open bool, h OpenHandlers) {
	UseEvent(s, b, widget.EventOpening, h.OnOpening)
	UseEvent(s, b, widget.EventOpened, h.OnOpened)
	UseEvent(s, b, widget.EventClosing, h.OnClosing)
	UseEvent(s, b, widget.EventClosed, h.OnClosed)

	st := component.UseHook(s, func() *openState {
		return &openState{}
	})

	component.UseEffect(s, nil, func() (component.Cleanup, error) {
		handle := b.Handle()
		if handle == nil {
			st.handle = nil
			return nil, nil
		}
		if st.handle == handle && st.desired == open {
			return nil, nil
		}
		st.handle, st.desired = handle, open

		op, ok := handle.(widget.Opener)
		if !ok {
			return nil, fmt.Errorf("binding: %s cannot be opened", handle.Kind())
		}
		switch {
		case open && !op.IsOpen():
			if err := op.Open(); err != nil {
				return nil, fmt.Errorf("binding: open %s: %w", handle.Kind(), err)
			}
		case !open && op.IsOpen():
			if err := op.Close(""); err != nil {
				return nil, fmt.Errorf("binding: close %s: %w", handle.Kind(), err)
			}
		}
		return nil, nil
	})
}
