// Package widget defines the boundary between the declarative components and
// the Material Components toolkit that owns the real widget instances.
//
// A Toolkit constructs a Handle for a widget Kind bound to a rendered root
// Node. Handles are imperative: listeners are attached and detached by
// identity, fields are written directly, and Destroy tears the instance down.
// Dialog-like widgets additionally implement Opener.
//
// Two toolkits ship with this module: package remote drives MDC instances in
// a browser over a websocket, and package mdctest simulates them in memory
// for tests.
package widget
