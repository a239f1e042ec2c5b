package component

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	mdcerrors "github.com/vango-dev/mdc/internal/errors"
	"github.com/vango-dev/mdc/pkg/vdom"
	"github.com/vango-dev/mdc/pkg/widget"
)

// Func is a render function. It must not touch the widget toolkit; side
// effects belong in UseEffect.
type Func[P any] func(s *Scope, props P) (*vdom.VNode, error)

// HookKind identifies the type of hook call for order validation.
type HookKind uint8

const (
	HookEffect HookKind = iota + 1
	HookRef
	HookNodeRef
	HookCustom
)

// String returns a human-readable name for the hook kind.
func (h HookKind) String() string {
	switch h {
	case HookEffect:
		return "Effect"
	case HookRef:
		return "Ref"
	case HookNodeRef:
		return "NodeRef"
	case HookCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

type hookSlot struct {
	kind  HookKind
	value any
}

// runtime is the state shared by every scope of one root.
type runtime struct {
	ctx      context.Context
	toolkit  widget.Toolkit
	logger   *slog.Logger
	values   map[any]any
	debug    bool
	refSeq   uint64
	nodeRefs map[*NodeRef]struct{}
}

// Scope is the instance state of one rendered component. It owns hook
// slots, effects and child scopes. Scopes form a tree mirroring the
// component tree.
type Scope struct {
	rt     *runtime
	parent *Scope
	key    string
	path   string
	logger *slog.Logger

	slots   []hookSlot
	slotIdx int
	renders int

	effects  []*effect
	nodeRefs []*NodeRef

	// children holds every scope created under this one, committed or not.
	children map[string]*Scope
	// order is the committed child order; next is filled during a render.
	order []*Scope
	next  []*Scope
	seen  map[string]bool

	committed bool
	disposed  bool
}

func newScope(rt *runtime, parent *Scope, key, path string) *Scope {
	return &Scope{
		rt:       rt,
		parent:   parent,
		key:      key,
		path:     path,
		logger:   rt.logger.With("scope", path),
		children: make(map[string]*Scope),
		seen:     make(map[string]bool),
	}
}

// Path returns the slash separated keys from the root to this scope.
func (s *Scope) Path() string { return s.path }

// Key returns the key this scope was created with.
func (s *Scope) Key() string { return s.key }

// Logger returns the root logger annotated with the scope path.
func (s *Scope) Logger() *slog.Logger { return s.logger }

// Context returns the context the root was mounted with.
func (s *Scope) Context() context.Context { return s.rt.ctx }

// Toolkit returns the widget toolkit bound to the root, or nil.
func (s *Scope) Toolkit() widget.Toolkit { return s.rt.toolkit }

// Value returns an environment value registered with WithValue.
func (s *Scope) Value(key any) any { return s.rt.values[key] }

// Debug reports whether development checks are enabled.
func (s *Scope) Debug() bool { return s.rt.debug }

// Child renders fn in the child scope identified by key, creating the
// scope on first use. Keys must be unique among the children rendered by
// one scope in one render.
func Child[P any](parent *Scope, key string, fn Func[P], props P) (*vdom.VNode, error) {
	c, err := parent.child(key)
	if err != nil {
		return nil, err
	}
	c.begin()
	node, err := fn(c, props)
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}
	return node, nil
}

func (s *Scope) child(key string) (*Scope, error) {
	if s.seen[key] {
		return nil, mdcerrors.Newf(mdcerrors.CategoryRender, "duplicate child key %q", key).InComponent(s.path)
	}
	s.seen[key] = true

	c, ok := s.children[key]
	if !ok {
		c = newScope(s.rt, s, key, s.path+"/"+key)
		s.children[key] = c
	}
	s.next = append(s.next, c)
	return c, nil
}

// begin prepares the scope for a render pass.
func (s *Scope) begin() {
	s.slotIdx = 0
	s.next = s.next[:0]
	clear(s.seen)
}

// end validates the hook count once a render pass returned.
func (s *Scope) end() error {
	defer func() { s.renders++ }()
	if s.renders == 0 || !s.rt.debug {
		return nil
	}
	if s.slotIdx != len(s.slots) {
		return hookOrderError(s, fmt.Sprintf("render called %d hooks, previous renders called %d", s.slotIdx, len(s.slots)))
	}
	return nil
}

// UseHook returns a value created by init on the first render and reused
// on every later render of the scope.
func UseHook[T any](s *Scope, init func() T) T {
	return slot(s, HookCustom, init)
}

func slot[T any](s *Scope, kind HookKind, init func() T) T {
	i := s.slotIdx
	s.slotIdx++

	if i < len(s.slots) {
		h := s.slots[i]
		v, ok := h.value.(T)
		if h.kind != kind || !ok {
			panic(hookOrderError(s, fmt.Sprintf("hook %d was %s, now %s", i, h.kind, kind)))
		}
		return v
	}

	if s.renders > 0 && s.rt.debug {
		panic(hookOrderError(s, fmt.Sprintf("hook %d (%s) was not called by earlier renders", i, kind)))
	}
	v := init()
	s.slots = append(s.slots, hookSlot{kind: kind, value: v})
	return v
}

func hookOrderError(s *Scope, detail string) *mdcerrors.MDCError {
	return mdcerrors.New("E104").InComponent(s.path).WithDetail(detail).
		WithSuggestion("call hooks unconditionally and in the same order on every render")
}

// rollback drops child scopes created by a render that failed. Committed
// scopes keep their previous child order.
func (s *Scope) rollback() {
	for key, c := range s.children {
		if !c.committed {
			delete(s.children, key)
			continue
		}
		c.rollback()
	}
	s.next = s.next[:0]
	clear(s.seen)
}

// settle commits the child order produced by the last render and returns
// the scopes that were not rendered again, in their previous order.
func (s *Scope) settle(removed []*Scope) []*Scope {
	for _, c := range s.order {
		if !s.seen[c.key] {
			delete(s.children, c.key)
			removed = append(removed, c)
		}
	}
	s.order = append(s.order[:0], s.next...)
	s.committed = true
	for _, c := range s.order {
		removed = c.settle(removed)
	}
	return removed
}

// postOrder calls fn for every committed scope below s, children first.
func (s *Scope) postOrder(fn func(*Scope)) {
	for _, c := range s.order {
		c.postOrder(fn)
	}
	fn(s)
}

// dispose runs the cleanups of s and its subtree: children in reverse
// order first, then the scope's own effects in reverse registration order.
func (s *Scope) dispose() error {
	if s.disposed {
		return nil
	}
	s.disposed = true

	var errs []error
	for i := len(s.order) - 1; i >= 0; i-- {
		if err := s.order[i].dispose(); err != nil {
			errs = append(errs, err)
		}
	}
	for i := len(s.effects) - 1; i >= 0; i-- {
		if err := s.effects[i].dispose(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, r := range s.nodeRefs {
		delete(s.rt.nodeRefs, r)
		r.detach()
	}

	s.order = nil
	s.children = nil
	return errors.Join(errs...)
}
