package binding

import (
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/widget"
)

const tracerName = "github.com/vango-dev/mdc/pkg/binding"

// Observer is notified about widget lifecycle events. Implementations
// must be safe for concurrent use when several roots share them.
type Observer interface {
	// WidgetCreated is called after a widget was constructed and
	// initialized.
	WidgetCreated(kind widget.Kind, took time.Duration)

	// WidgetDestroyed is called after a widget was destroyed without error.
	WidgetDestroyed(kind widget.Kind)

	// CreateFailed is called when construction or initialization failed.
	CreateFailed(kind widget.Kind)

	// DestroyFailed is called when Destroy returned an error. suppressed
	// reports whether the error was swallowed by SuppressDestroyErrors.
	DestroyFailed(kind widget.Kind, suppressed bool)

	// ValuePushed is called for every controlled value change. skipped
	// reports whether the push was skipped because the element had focus.
	ValuePushed(kind widget.Kind, skipped bool)
}

type observerKey struct{}

type tracerKey struct{}

// WithObserver reports the lifecycle of every widget bound under a root
// to o.
func WithObserver(o Observer) component.Option {
	return component.WithValue(observerKey{}, o)
}

// WithTracer traces widget construction and destruction with t instead of
// the tracer of the global provider.
func WithTracer(t trace.Tracer) component.Option {
	return component.WithValue(tracerKey{}, t)
}

func observerOf(s *component.Scope) Observer {
	if o, ok := s.Value(observerKey{}).(Observer); ok && o != nil {
		return o
	}
	return nopObserver{}
}

func tracerOf(s *component.Scope) trace.Tracer {
	if t, ok := s.Value(tracerKey{}).(trace.Tracer); ok && t != nil {
		return t
	}
	return otel.Tracer(tracerName)
}

type nopObserver struct{}

func (nopObserver) WidgetCreated(widget.Kind, time.Duration) {}
func (nopObserver) WidgetDestroyed(widget.Kind)              {}
func (nopObserver) CreateFailed(widget.Kind)                 {}
func (nopObserver) DestroyFailed(widget.Kind, bool)          {}
func (nopObserver) ValuePushed(widget.Kind, bool)            {}
