package component

import (
	"context"
	"errors"
	"fmt"

	mdcerrors "github.com/vango-dev/mdc/internal/errors"
	"github.com/vango-dev/mdc/pkg/render"
	"github.com/vango-dev/mdc/pkg/vdom"
)

// Root is a mounted component tree.
type Root[P any] struct {
	rt    *runtime
	scope *Scope
	fn    Func[P]
	props P
	tree  *vdom.VNode

	unmounted bool
}

// Mount renders fn with props, commits the tree and runs its effects.
// If rendering or any effect fails, the partially mounted tree is
// unmounted and the joined errors are returned.
func Mount[P any](ctx context.Context, fn Func[P], props P, opts ...Option) (*Root[P], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := newConfig(opts)
	rt := &runtime{
		ctx:      ctx,
		toolkit:  cfg.toolkit,
		logger:   cfg.logger,
		values:   cfg.values,
		debug:    cfg.debug,
		nodeRefs: make(map[*NodeRef]struct{}),
	}
	r := &Root[P]{
		rt:    rt,
		scope: newScope(rt, nil, cfg.name, cfg.name),
		fn:    fn,
		props: props,
	}

	tree, err := r.render(props)
	if err != nil {
		return nil, err
	}
	if err := r.commit(tree); err != nil {
		return nil, errors.Join(err, r.Unmount())
	}
	return r, nil
}

// Static renders fn once and attaches element refs without running any
// effect. The result carries data-mdc-ref attributes, so it can be sent
// to a client that binds widgets later.
func Static[P any](ctx context.Context, fn Func[P], props P, opts ...Option) (*vdom.VNode, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := newConfig(opts)
	rt := &runtime{
		ctx:      ctx,
		toolkit:  cfg.toolkit,
		logger:   cfg.logger,
		values:   cfg.values,
		debug:    cfg.debug,
		nodeRefs: make(map[*NodeRef]struct{}),
	}
	r := &Root[P]{rt: rt, scope: newScope(rt, nil, cfg.name, cfg.name), fn: fn}
	tree, err := r.render(props)
	if err != nil {
		return nil, err
	}
	attachRefs(tree)
	return tree, nil
}

// Update re-renders the tree with props and runs the effects whose
// dependencies changed. When rendering fails the previous tree stays
// committed and no effect runs.
func (r *Root[P]) Update(props P) error {
	if r.unmounted {
		return mdcerrors.New("E107").InComponent(r.scope.path)
	}
	tree, err := r.render(props)
	if err != nil {
		return err
	}
	r.props = props
	return r.commit(tree)
}

// Unmount disposes every scope, running cleanups children first. Calling
// it again is a no-op.
func (r *Root[P]) Unmount() error {
	if r.unmounted {
		return nil
	}
	r.unmounted = true
	err := r.scope.dispose()
	r.rt.logger.Debug("root unmounted", "root", r.scope.path, "error", err)
	return err
}

// Tree returns the last committed tree.
func (r *Root[P]) Tree() *vdom.VNode { return r.tree }

// Props returns the props of the last successful render.
func (r *Root[P]) Props() P { return r.props }

// Scope returns the root scope.
func (r *Root[P]) Scope() *Scope { return r.scope }

// HTML renders the last committed tree.
func (r *Root[P]) HTML() (string, error) {
	return render.RenderToString(r.tree)
}

// render runs the render pass. Hook order violations surface as errors.
func (r *Root[P]) render(props P) (tree *vdom.VNode, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			me, ok := rec.(*mdcerrors.MDCError)
			if !ok || me.Code != "E104" {
				panic(rec)
			}
			tree, err = nil, me
		}
		if err != nil {
			r.scope.rollback()
		}
	}()

	r.scope.begin()
	tree, err = r.fn(r.scope, props)
	if err != nil {
		return nil, err
	}
	if err := r.scope.end(); err != nil {
		return nil, err
	}
	return tree, nil
}

// commit installs tree: removed scopes are disposed, element refs are
// assigned, then changed effects have their cleanups run and run again.
func (r *Root[P]) commit(tree *vdom.VNode) error {
	var errs []error

	removed := r.scope.settle(nil)
	for _, s := range removed {
		if err := s.dispose(); err != nil {
			errs = append(errs, err)
		}
	}

	for ref := range r.rt.nodeRefs {
		ref.prepare()
	}
	attachRefs(tree)
	for ref := range r.rt.nodeRefs {
		ref.publish()
	}
	r.tree = tree

	r.scope.postOrder(func(s *Scope) {
		for _, e := range s.effects {
			if err := e.runCleanup(); err != nil {
				errs = append(errs, err)
			}
		}
	})
	r.scope.postOrder(func(s *Scope) {
		for _, e := range s.effects {
			if err := e.run(); err != nil {
				errs = append(errs, err)
			}
		}
	})

	if len(errs) > 0 {
		r.rt.logger.Debug("commit failed", "root", r.scope.path, "errors", len(errs))
		return errors.Join(errs...)
	}
	r.rt.logger.Debug("commit", "root", r.scope.path, "removed", len(removed))
	return nil
}

// String identifies the root in logs.
func (r *Root[P]) String() string {
	return fmt.Sprintf("component.Root(%s)", r.scope.path)
}
