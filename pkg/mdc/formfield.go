package mdc

import (
	"github.com/vango-dev/mdc/pkg/binding"
	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/widget"
)

type formFieldInput struct {
	field, input widget.Handle
}

// useFormFieldInput assigns the input widget to the form field's input
// property whenever either widget is rebuilt, so a label click ripples the
// control.
func useFormFieldInput(s *component.Scope, field, input *binding.Binder) {
	st := component.UseHook(s, func() *formFieldInput { return &formFieldInput{} })
	component.UseEffect(s, nil, func() (component.Cleanup, error) {
		f, in := field.Handle(), input.Handle()
		if f == st.field && in == st.input {
			return nil, nil
		}
		st.field, st.input = f, in
		if f == nil || in == nil {
			return nil, nil
		}
		return nil, f.Set("input", in)
	})
}
