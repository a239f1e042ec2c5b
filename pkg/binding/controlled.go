package binding

import (
	"fmt"

	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/widget"
)

type controlled[T comparable] struct {
	handle widget.Handle
	last   T
	seen   bool
}

// UseControlledValue pushes *value into b's widget with apply whenever the
// value or the widget changes. A nil value leaves the widget uncontrolled.
// Pushes are skipped while the document is focused on the widget's root
// element; a skipped value is not retried.
func UseControlledValue[T comparable](s *component.Scope, b *Binder, value *T, apply func(widget.Handle, T) error) {
	st := component.UseHook(s, func() *controlled[T] {
		return &controlled[T]{}
	})

	component.UseEffect(s, nil, func() (component.Cleanup, error) {
		h := b.Handle()
		if value == nil || h == nil {
			st.handle = h
			st.seen = false
			return nil, nil
		}
		v := *value
		if st.seen && st.handle == h && st.last == v {
			return nil, nil
		}
		st.handle, st.last, st.seen = h, v, true

		var doc widget.Document
		if tk := s.Toolkit(); tk != nil {
			doc = tk.Document()
		}
		if widget.HasFocusOn(doc, h.Root()) {
			s.Logger().Debug("controlled value not pushed: element has focus", "widget", h.Kind(), "root", h.Root().ID)
			observerOf(s).ValuePushed(h.Kind(), true)
			return nil, nil
		}

		if err := apply(h, v); err != nil {
			return nil, fmt.Errorf("binding: push value to %s: %w", h.Kind(), err)
		}
		observerOf(s).ValuePushed(h.Kind(), false)
		return nil, nil
	})
}

// AssignValue writes v to the widget's value field with native validation
// switched off, so assigning does not flag an untouched field invalid.
func AssignValue[T any](h widget.Handle, v T) error {
	return withoutNativeValidation(h, func() error {
		return h.Set("value", v)
	})
}

// SelectValue selects v through the widget's setValue method and
// re-measures the floating label.
func SelectValue[T any](h widget.Handle, v T) error {
	return withoutNativeValidation(h, func() error {
		if err := h.Call("setValue", v); err != nil {
			return err
		}
		return h.Call("layout")
	})
}

func withoutNativeValidation(h widget.Handle, fn func() error) error {
	if err := h.Set("useNativeValidation", false); err != nil {
		return err
	}
	err := fn()
	if rerr := h.Set("useNativeValidation", true); err == nil {
		err = rerr
	}
	return err
}
