package widget

import "errors"

var (
	// ErrUnsupportedVariation is returned when a component is rendered
	// with a variation it does not implement.
	ErrUnsupportedVariation = errors.New("widget: unsupported variation")

	// ErrUnknownKind is returned by toolkits asked to construct a kind they
	// do not provide.
	ErrUnknownKind = errors.New("widget: unknown kind")

	// ErrDestroyed is returned when operating on a destroyed handle.
	ErrDestroyed = errors.New("widget: handle destroyed")

	// ErrLayoutUnavailable is returned when a widget needs to measure
	// layout and the environment cannot.
	ErrLayoutUnavailable = errors.New("widget: layout measurement unavailable")

	// ErrUnknownField is returned by Get for fields the widget never reported.
	ErrUnknownField = errors.New("widget: unknown field")

	// ErrUnknownMethod is returned by Call for methods the widget lacks.
	ErrUnknownMethod = errors.New("widget: unknown method")

	// ErrMalformedRoot is returned when the root element lacks the shape the
	// widget requires.
	ErrMalformedRoot = errors.New("widget: malformed root element")
)
