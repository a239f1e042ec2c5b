package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryBinding  Category = "binding"
	CategoryRender   Category = "render"
	CategoryProtocol Category = "protocol"
	CategoryConfig   Category = "config"
	CategoryCLI      Category = "cli"
)

// MDCError is a structured error with component context, suggestions, and documentation.
type MDCError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (binding, render, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Component is the slash separated scope path where the error occurred.
	Component string

	// Widget is the toolkit kind involved, if any (e.g., "MDCDialog").
	Widget string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *MDCError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Widget != "" {
		msg += " (" + e.Widget + ")"
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *MDCError) Unwrap() error {
	return e.Wrapped
}

// InComponent records the component path the error was raised in.
func (e *MDCError) InComponent(path string) *MDCError {
	e.Component = path
	return e
}

// ForWidget records the widget kind involved in the error.
func (e *MDCError) ForWidget(kind string) *MDCError {
	e.Widget = kind
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *MDCError) WithSuggestion(s string) *MDCError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *MDCError) WithDetail(d string) *MDCError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *MDCError) Wrap(err error) *MDCError {
	e.Wrapped = err
	return e
}

// New creates an MDCError from a registered error code.
func New(code string) *MDCError {
	template, ok := registry[code]
	if !ok {
		return &MDCError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &MDCError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new MDCError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *MDCError {
	return &MDCError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an MDCError.
func FromError(err error, code string) *MDCError {
	if err == nil {
		return nil
	}
	if me, ok := err.(*MDCError); ok {
		return me
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err, or any error in its tree, is an MDCError with the given code.
func HasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	if me, ok := err.(*MDCError); ok && me.Code == code {
		return true
	}
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return HasCode(u.Unwrap(), code)
	case interface{ Unwrap() []error }:
		for _, inner := range u.Unwrap() {
			if HasCode(inner, code) {
				return true
			}
		}
	}
	return false
}
