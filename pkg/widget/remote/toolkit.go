package remote

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	mdcerrors "github.com/vango-dev/mdc/internal/errors"
	"github.com/vango-dev/mdc/pkg/widget"
)

// Toolkit is a widget.Toolkit whose handles are proxies for MDC instances
// living in a browser. Operations on handles queue commands; the owner of
// the connection drains them with Flush after every commit and feeds
// client messages to Receive.
type Toolkit struct {
	logger *slog.Logger

	mu      sync.Mutex
	nextID  uint64
	handles map[string]*Handle
	outbox  []Command

	hasFocus bool
	active   string
}

// Option configures a Toolkit.
type Option func(*Toolkit)

// WithLogger sets the logger used for client errors and dropped messages.
func WithLogger(l *slog.Logger) Option {
	return func(t *Toolkit) { t.logger = l }
}

// NewToolkit returns an empty toolkit.
func NewToolkit(opts ...Option) *Toolkit {
	t := &Toolkit{
		logger:  slog.Default(),
		handles: make(map[string]*Handle),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var _ widget.Toolkit = (*Toolkit)(nil)

// New implements widget.Toolkit. The widget is created on the client when
// the create command is flushed, after the markup of its root.
func (t *Toolkit) New(kind widget.Kind, root widget.Node) (widget.Handle, error) {
	if !known(kind) {
		return nil, fmt.Errorf("%w: %s", widget.ErrUnknownKind, kind)
	}
	if root.IsZero() {
		return nil, fmt.Errorf("%w: %s has no root element", widget.ErrMalformedRoot, kind)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	h := &Handle{
		tk:        t,
		id:        "w" + strconv.FormatUint(t.nextID, 10),
		kind:      kind,
		root:      root,
		listeners: make(map[string][]widget.Listener),
		fields:    make(map[string]any),
	}
	t.handles[h.id] = h
	t.outbox = append(t.outbox, Command{Op: OpCreate, ID: h.id, Kind: kind, Root: root.ID})

	if opens(kind) {
		return opener{h}, nil
	}
	return h, nil
}

func known(kind widget.Kind) bool {
	for _, k := range widget.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func opens(kind widget.Kind) bool {
	return kind == widget.KindDialog || kind == widget.KindSnackbar
}

// Document implements widget.Toolkit with the focus last reported by the
// client.
func (t *Toolkit) Document() widget.Document { return document{t} }

type document struct{ t *Toolkit }

func (d document) HasFocus() bool {
	d.t.mu.Lock()
	defer d.t.mu.Unlock()
	return d.t.hasFocus
}

func (d document) ActiveElement() (widget.Node, bool) {
	d.t.mu.Lock()
	defer d.t.mu.Unlock()
	if d.t.active == "" {
		return widget.Node{}, false
	}
	return widget.Node{ID: d.t.active}, true
}

// Flush returns the queued commands, preceded by a render command when
// html is not empty, and empties the queue.
func (t *Toolkit) Flush(html string) []Command {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []Command
	if html != "" {
		out = append(out, Command{Op: OpRender, HTML: html})
	}
	out = append(out, t.outbox...)
	t.outbox = nil
	return out
}

// Pending returns the number of queued commands.
func (t *Toolkit) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.outbox)
}

// Live returns the number of handles that were not destroyed.
func (t *Toolkit) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.handles)
}

func (t *Toolkit) queue(c Command) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.outbox = append(t.outbox, c)
}

func (t *Toolkit) lookup(id string) (*Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	h, ok := t.handles[id]
	if !ok {
		return nil, mdcerrors.New("E121").WithDetail("widget " + strconv.Quote(id) + " is not live")
	}
	return h, nil
}

// Receive applies a client message: events are dispatched to the
// listeners of their widget, state and focus reports update the mirrors.
// DOM messages are not widget messages and must be routed by the caller.
func (t *Toolkit) Receive(m Message) error {
	switch m.Type {
	case MsgEvent:
		h, err := t.lookup(m.ID)
		if err != nil {
			return err
		}
		h.dispatch(widget.Event{Name: m.Name, Detail: m.Detail})
		return nil

	case MsgState:
		h, err := t.lookup(m.ID)
		if err != nil {
			return err
		}
		h.mirror(m.Field, m.Value)
		return nil

	case MsgFocus:
		t.mu.Lock()
		t.hasFocus, t.active = m.HasFocus, m.Active
		t.mu.Unlock()
		return nil

	case MsgError:
		t.logger.Warn("client failed to apply command", "widget", m.ID, "error", m.Error)
		return nil
	}
	return mdcerrors.New("E120").WithDetail("message type " + string(m.Type) + " is not handled by the toolkit")
}

// Close destroys every live handle without sending commands. Call it when
// the connection is gone.
func (t *Toolkit) Close() {
	t.mu.Lock()
	hs := make([]*Handle, 0, len(t.handles))
	for _, h := range t.handles {
		hs = append(hs, h)
	}
	t.handles = make(map[string]*Handle)
	t.outbox = nil
	t.mu.Unlock()

	for _, h := range hs {
		h.mu.Lock()
		h.destroyed = true
		h.listeners = make(map[string][]widget.Listener)
		h.mu.Unlock()
	}
}
