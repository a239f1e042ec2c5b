// Package errors provides structured, actionable error messages for the
// MDC bindings.
//
// Every error carries a stable code (e.g. "E101") that maps to a short
// message, a longer explanation and a documentation URL. Errors raised while
// rendering or binding a widget also record the component path they came
// from, so a failure deep inside a composite component points at the leaf
// that caused it.
//
// # Error Categories
//
//   - binding: widget construction, destruction and hook-order failures
//   - render: invalid props such as an unknown variation
//   - protocol: malformed messages on the remote toolkit connection
//   - config: unreadable or invalid mdc.json / mdc.yaml
//   - cli: command line misuse
//
// # Usage
//
//	err := errors.New("E101").
//	    InComponent("Gallery/Button").
//	    WithDetail(`variation "raised" is not supported`).
//	    WithSuggestion(`use one of "text", "outlined" or "contained"`)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E101: Unsupported variation
//	//
//	//   in Gallery/Button
//	//
//	//   variation "raised" is not supported
//	//
//	//   Hint: use one of "text", "outlined" or "contained"
//	//
//	//   Learn more: https://mdc.vango.dev/docs/errors/E101
package errors
