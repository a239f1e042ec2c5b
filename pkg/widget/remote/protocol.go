package remote

import (
	"github.com/go-json-experiment/json"

	mdcerrors "github.com/vango-dev/mdc/internal/errors"
	"github.com/vango-dev/mdc/pkg/widget"
)

// Op is the operation of a server-to-client command.
type Op string

const (
	OpCreate   Op = "create"
	OpDestroy  Op = "destroy"
	OpListen   Op = "listen"
	OpUnlisten Op = "unlisten"
	OpSet      Op = "set"
	OpCall     Op = "call"
	OpRender   Op = "render"
)

// Command is sent to the client, one per websocket text message.
type Command struct {
	Op Op `json:"op"`

	// ID is the widget id assigned by the server.
	ID string `json:"id,omitempty"`

	// Kind and Root are sent with create. Root is the data-mdc-ref value
	// of the element the widget is attached to.
	Kind widget.Kind `json:"kind,omitempty"`
	Root string      `json:"root,omitempty"`

	// Event is the wire event name of listen and unlisten.
	Event string `json:"event,omitempty"`

	Field string `json:"field,omitempty"`

	// Value is omitted only when nil, so "" and false reach the client.
	Value any `json:"value,omitzero"`

	Method string `json:"method,omitempty"`
	Args   []any  `json:"args,omitempty"`

	// HTML replaces the content of the client's mount element.
	HTML string `json:"html,omitempty"`
}

// WidgetRef stands for a widget handle inside a set or call value. The
// client resolves it to the instance with that id.
type WidgetRef struct {
	Widget string `json:"$widget"`
}

// MessageType is the type of a client-to-server message.
type MessageType string

const (
	// MsgEvent carries a widget event.
	MsgEvent MessageType = "event"

	// MsgState reports a widget field changed by the user.
	MsgState MessageType = "state"

	// MsgFocus reports the document focus.
	MsgFocus MessageType = "focus"

	// MsgError reports a command the client failed to apply.
	MsgError MessageType = "error"

	// MsgDOM carries a DOM event for an element with a data-hid.
	MsgDOM MessageType = "dom"
)

// Message is received from the client.
type Message struct {
	Type MessageType `json:"type"`

	ID     string         `json:"id,omitempty"`
	Name   string         `json:"name,omitempty"`
	Detail map[string]any `json:"detail,omitempty"`

	Field string `json:"field,omitempty"`
	Value any    `json:"value,omitzero"`

	HasFocus bool   `json:"hasFocus,omitempty"`
	Active   string `json:"active,omitempty"`

	Error string `json:"error,omitempty"`

	// HID and Event address a DOM handler; Value holds the target value.
	HID   string `json:"hid,omitempty"`
	Event string `json:"event,omitempty"`
}

// EncodeCommand encodes c with a stable member order.
func EncodeCommand(c Command) ([]byte, error) {
	return json.Marshal(c, json.Deterministic(true))
}

// DecodeMessage decodes a client message. Unknown members are rejected.
func DecodeMessage(data []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m, json.RejectUnknownMembers(true)); err != nil {
		return Message{}, mdcerrors.New("E120").Wrap(err)
	}
	switch m.Type {
	case MsgEvent, MsgState, MsgFocus, MsgError, MsgDOM:
		return m, nil
	}
	return Message{}, mdcerrors.New("E120").WithDetail("unknown message type " + string(m.Type))
}

// wireValue replaces handles in v by WidgetRefs.
func wireValue(v any) any {
	if h, ok := v.(widget.Handle); ok {
		if p := proxyOf(h); p != nil {
			return WidgetRef{Widget: p.id}
		}
	}
	return v
}
