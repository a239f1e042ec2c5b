package binding

import (
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	mdcerrors "github.com/vango-dev/mdc/internal/errors"
	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/widget"
)

// Option configures UseWidget.
type Option func(*options)

type options struct {
	disabled    bool
	into        *component.Ref[widget.Handle]
	afterCreate func(widget.Handle) error
	suppress    bool
	rebuild     string
}

// Disabled keeps the widget destroyed while disabled is true. Flipping it
// back to false constructs a fresh widget.
func Disabled(disabled bool) Option {
	return func(o *options) { o.disabled = disabled }
}

// Into writes the live handle to ref after construction and nil whenever
// there is no live handle.
func Into(ref *component.Ref[widget.Handle]) Option {
	return func(o *options) { o.into = ref }
}

// AfterCreate runs fn once on every freshly constructed widget, before
// events are attached. If fn fails the widget is destroyed.
func AfterCreate(fn func(widget.Handle) error) Option {
	return func(o *options) { o.afterCreate = fn }
}

// SuppressDestroyErrors logs errors returned by Destroy instead of
// returning them. Only the data table needs it: its toolkit widget fails
// when destroyed after its rows were removed.
func SuppressDestroyErrors() Option {
	return func(o *options) { o.suppress = true }
}

// RebuildOn rebuilds the widget whenever key differs from the key given
// on the previous commit. The data table widget reads its rows once at
// construction, so the table passes a digest of its rows.
func RebuildOn(key string) Option {
	return func(o *options) { o.rebuild = key }
}

// identity is what a widget is built from. A change in any field rebuilds it.
type identity struct {
	disabled bool
	kind     widget.Kind
	node     widget.Node
	rebuild  string
}

// Binder owns the widget bound to one element.
type Binder struct {
	scope *component.Scope
	root  *component.NodeRef

	// Set during render, consumed by reconcile.
	kind widget.Kind
	opts options

	handle  widget.Handle
	applied identity
	settled bool
	bridges []*bridge
}

// UseWidget binds a widget of the given kind to the element carrying
// vdom.Ref(root). The widget is constructed after the first commit that
// renders the element and destroyed when the scope is disposed.
func UseWidget(s *component.Scope, kind widget.Kind, root *component.NodeRef, opts ...Option) *Binder {
	b := component.UseHook(s, func() *Binder {
		return &Binder{scope: s}
	})
	b.root = root
	b.kind = kind
	b.opts = options{}
	for _, opt := range opts {
		opt(&b.opts)
	}

	component.UseEffect(s, nil, func() (component.Cleanup, error) {
		return nil, b.reconcile()
	})
	component.UseEffect(s, component.Deps{}, func() (component.Cleanup, error) {
		return b.release, nil
	})
	return b
}

// Handle returns the live widget, or nil.
func (b *Binder) Handle() widget.Handle { return b.handle }

// Kind returns the widget kind of the last render.
func (b *Binder) Kind() widget.Kind { return b.kind }

// Scope returns the scope that owns the binder.
func (b *Binder) Scope() *component.Scope { return b.scope }

func (b *Binder) reconcile() error {
	var node widget.Node
	if b.root != nil {
		node, _ = b.root.Current()
	}
	want := identity{disabled: b.opts.disabled, kind: b.kind, node: node, rebuild: b.opts.rebuild}
	if b.settled && want == b.applied {
		return nil
	}

	var errs []error
	if b.handle != nil {
		if err := b.destroy(); err != nil {
			errs = append(errs, err)
		}
	}
	b.applied = want
	b.settled = true

	if want.disabled || want.node.IsZero() {
		b.write(nil)
		return errors.Join(errs...)
	}
	if err := b.construct(want); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (b *Binder) construct(id identity) error {
	s := b.scope
	_, span := tracerOf(s).Start(s.Context(), "mdc.widget.construct", trace.WithAttributes(
		attribute.String("mdc.widget", string(id.kind)),
		attribute.String("mdc.scope", s.Path()),
		attribute.String("mdc.root", id.node.ID),
	))
	defer span.End()

	fail := func(err error) error {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		observerOf(s).CreateFailed(id.kind)
		b.write(nil)
		return mdcerrors.New("E102").InComponent(s.Path()).ForWidget(string(id.kind)).Wrap(err)
	}

	tk := s.Toolkit()
	if tk == nil {
		return fail(mdcerrors.New("E105").InComponent(s.Path()))
	}

	start := time.Now()
	h, err := tk.New(id.kind, id.node)
	if err != nil {
		return fail(err)
	}
	if setup := b.opts.afterCreate; setup != nil {
		if err := setup(h); err != nil {
			return fail(errors.Join(err, h.Destroy()))
		}
	}

	b.handle = h
	var errs []error
	for _, br := range b.bridges {
		if err := br.sync(h); err != nil {
			errs = append(errs, err)
		}
	}
	b.write(h)

	took := time.Since(start)
	observerOf(s).WidgetCreated(id.kind, took)
	span.SetStatus(codes.Ok, "")
	s.Logger().Debug("widget constructed", "widget", id.kind, "root", id.node.ID, "took", took)
	return errors.Join(errs...)
}

// destroy forgets the handle before destroying it, so a failing Destroy
// is never retried on the same handle.
func (b *Binder) destroy() error {
	s := b.scope
	h := b.handle
	kind := h.Kind()

	for _, br := range b.bridges {
		br.detach()
	}
	b.handle = nil
	b.write(nil)

	_, span := tracerOf(s).Start(s.Context(), "mdc.widget.destroy", trace.WithAttributes(
		attribute.String("mdc.widget", string(kind)),
		attribute.String("mdc.scope", s.Path()),
	))
	defer span.End()

	if err := h.Destroy(); err != nil {
		span.RecordError(err)
		if b.opts.suppress {
			s.Logger().Warn("widget destroy failed", "widget", kind, "error", err)
			observerOf(s).DestroyFailed(kind, true)
			return nil
		}
		span.SetStatus(codes.Error, err.Error())
		observerOf(s).DestroyFailed(kind, false)
		return mdcerrors.New("E103").InComponent(s.Path()).ForWidget(string(kind)).Wrap(err)
	}

	observerOf(s).WidgetDestroyed(kind)
	s.Logger().Debug("widget destroyed", "widget", kind)
	return nil
}

// release is the unmount cleanup.
func (b *Binder) release() error {
	b.settled = false
	if b.handle == nil {
		return nil
	}
	return b.destroy()
}

func (b *Binder) write(h widget.Handle) {
	if b.opts.into != nil {
		b.opts.into.Set(h)
	}
}

func (b *Binder) register(br *bridge) {
	b.bridges = append(b.bridges, br)
}

func (b *Binder) deregister(br *bridge) {
	for i, x := range b.bridges {
		if x == br {
			b.bridges = append(b.bridges[:i], b.bridges[i+1:]...)
			return
		}
	}
}
