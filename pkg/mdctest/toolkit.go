package mdctest

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vango-dev/mdc/pkg/widget"
)

// Layout measures an element. It stands in for the browser's layout engine.
type Layout func(n widget.Node) (width, height float64)

// FixedLayout reports every element as 100x40.
func FixedLayout(widget.Node) (float64, float64) { return 100, 40 }

// Option configures a Toolkit.
type Option func(*Toolkit)

// WithMeasure enables layout measurement. Dialogs cannot open without it.
func WithMeasure(l Layout) Option {
	return func(t *Toolkit) { t.layout = l }
}

// FailNew makes construction of kind fail with err.
func FailNew(kind widget.Kind, err error) Option {
	return func(t *Toolkit) { t.failNew[kind] = err }
}

// FailDestroy makes Destroy of kind fail with err.
func FailDestroy(kind widget.Kind, err error) Option {
	return func(t *Toolkit) { t.failDestroy[kind] = err }
}

// Toolkit is an in-memory widget.Toolkit. It is safe for concurrent use;
// listeners are always invoked without internal locks held.
type Toolkit struct {
	mu          sync.Mutex
	layout      Layout
	failNew     map[widget.Kind]error
	failDestroy map[widget.Kind]error

	handles []*Handle
	live    map[*Handle]bool

	hasFocus bool
	active   widget.Node

	now    time.Duration
	timers []*timer
}

type timer struct {
	at time.Duration
	h  *Handle
	fn func()
}

// NewToolkit creates a toolkit.
func NewToolkit(opts ...Option) *Toolkit {
	t := &Toolkit{
		failNew:     make(map[widget.Kind]error),
		failDestroy: make(map[widget.Kind]error),
		live:        make(map[*Handle]bool),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var _ widget.Toolkit = (*Toolkit)(nil)

// New implements widget.Toolkit.
func (t *Toolkit) New(kind widget.Kind, root widget.Node) (widget.Handle, error) {
	if !knownKind(kind) {
		return nil, fmt.Errorf("%w: %s", widget.ErrUnknownKind, kind)
	}
	if root.IsZero() {
		return nil, widget.ErrMalformedRoot
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.failNew[kind]; err != nil {
		return nil, err
	}

	h := newHandle(t, kind, root)
	t.handles = append(t.handles, h)
	t.live[h] = true

	switch kind {
	case widget.KindDialog, widget.KindSnackbar:
		return opener{h}, nil
	}
	return h, nil
}

func knownKind(kind widget.Kind) bool {
	for _, k := range widget.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Document implements widget.Toolkit.
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
	return d.t.active, !d.t.active.IsZero()
}

// Focus focuses the document on n.
func (t *Toolkit) Focus(n widget.Node) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hasFocus = true
	t.active = n
}

// Blur removes focus from the document.
func (t *Toolkit) Blur() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hasFocus = false
	t.active = widget.Node{}
}

// Handles returns every handle constructed so far, in order.
func (t *Toolkit) Handles() []*Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*Handle(nil), t.handles...)
}

// Live returns the handles that were not destroyed, in construction order.
func (t *Toolkit) Live() []*Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []*Handle
	for _, h := range t.handles {
		if t.live[h] {
			out = append(out, h)
		}
	}
	return out
}

// LiveCount returns the number of handles that were not destroyed.
func (t *Toolkit) LiveCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

// Created returns how many handles of kind were constructed.
func (t *Toolkit) Created(kind widget.Kind) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, h := range t.handles {
		if h.kind == kind {
			n++
		}
	}
	return n
}

// Find returns the most recently constructed live handle of kind, or nil.
func (t *Toolkit) Find(kind widget.Kind) *Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := len(t.handles) - 1; i >= 0; i-- {
		if h := t.handles[i]; h.kind == kind && t.live[h] {
			return h
		}
	}
	return nil
}

// FindAll returns the live handles of kind in construction order.
func (t *Toolkit) FindAll(kind widget.Kind) []*Handle {
	var out []*Handle
	for _, h := range t.Live() {
		if h.kind == kind {
			out = append(out, h)
		}
	}
	return out
}

// Settle completes every pending transition (the opened and closed
// events that follow animations).
func (t *Toolkit) Settle() {
	for _, h := range t.Live() {
		for _, fn := range h.takePending() {
			fn()
		}
	}
}

// Advance moves the fake clock forward and fires the timers that became due.
func (t *Toolkit) Advance(d time.Duration) {
	t.mu.Lock()
	t.now += d
	var due []*timer
	rest := t.timers[:0]
	for _, tm := range t.timers {
		if tm.at <= t.now {
			due = append(due, tm)
		} else {
			rest = append(rest, tm)
		}
	}
	t.timers = rest
	t.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, tm := range due {
		tm.fn()
	}
}

func (t *Toolkit) after(h *Handle, d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.timers = append(t.timers, &timer{at: t.now + d, h: h, fn: fn})
}

func (t *Toolkit) cancelTimers(h *Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rest := t.timers[:0]
	for _, tm := range t.timers {
		if tm.h != h {
			rest = append(rest, tm)
		}
	}
	t.timers = rest
}

func (t *Toolkit) destroyed(h *Handle) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.live, h)
	return t.failDestroy[h.kind]
}

func (t *Toolkit) measure(n widget.Node) (float64, float64, bool) {
	t.mu.Lock()
	l := t.layout
	t.mu.Unlock()
	if l == nil {
		return 0, 0, false
	}
	w, h := l(n)
	return w, h, true
}
