// Package render converts vdom trees into HTML.
//
// Output is deterministic: attributes are written in sorted order, internal
// props (keys starting with "_") are dropped, and elements carrying event
// handlers receive a data-hid attribute. The handlers collected during a
// render are returned by Handlers so a live session can route browser
// events back to them.
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(root.Tree())
//
// RenderPage wraps a body tree in a complete document that loads the MDC
// stylesheet and scripts.
package render
