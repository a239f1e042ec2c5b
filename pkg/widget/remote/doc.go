// Package remote implements widget.Toolkit for MDC instances that live in a
// browser.
//
// A Handle is a proxy: Set, Call, Listen and Destroy queue Commands, and
// the connection owner sends them after each commit with Flush, preceded by
// the rendered markup the new widgets attach to. The client answers with
// Messages: widget events, field and focus reports, and DOM events for
// elements carrying data-hid. Events and reports update a mirror of the
// widget's fields, so Get and IsOpen answer without a round trip.
//
// Commands and messages are JSON objects, one per websocket text message:
//
//	{"op":"create","id":"w1","kind":"MDCDialog","root":"r1"}
//	{"op":"listen","id":"w1","event":"MDCDialog:closing"}
//	{"op":"call","id":"w1","method":"open"}
//	{"type":"event","id":"w1","name":"MDCDialog:closing","detail":{"action":"ok"}}
package remote
