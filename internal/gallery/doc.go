// Package gallery serves a demo page that composes every component of
// pkg/mdc with live state.
//
// GET / renders the page on the server without binding widgets. The
// page script then opens /ws, where a session mounts the same page on a
// remote toolkit: widget commands flow to the browser's MDC runtime, and
// widget events, DOM events and focus reports flow back. After every
// event the session re-renders and sends the new markup along with the
// queued commands.
//
//	srv := gallery.NewServer(cfg, logger)
//	defer srv.Close()
//	http.ListenAndServe(cfg.Address(), srv.Handler())
//
// Samples returns each component rendered with representative props,
// which the mdc render command prints.
package gallery
