package component

import "reflect"

// Cleanup releases what an effect acquired. It runs before the effect runs
// again and when the scope is disposed.
type Cleanup func() error

// Deps lists the values an effect depends on. A nil Deps re-runs the effect
// after every commit; an empty, non-nil Deps runs it once.
type Deps []any

type effect struct {
	fn      func() (Cleanup, error)
	deps    Deps
	cleanup Cleanup
	ran     bool

	// Set by the render that registered the effect, consumed at commit.
	nextFn   func() (Cleanup, error)
	nextDeps Deps
	dirty    bool
}

// UseEffect registers fn to run after the tree is committed. fn runs on the
// first commit and again whenever deps differ from the previous commit.
// Values that cannot be compared with == (funcs, maps, slices) always
// count as changed.
func UseEffect(s *Scope, deps Deps, fn func() (Cleanup, error)) {
	e := slot(s, HookEffect, func() *effect {
		e := &effect{}
		s.effects = append(s.effects, e)
		return e
	})
	e.nextFn = fn
	e.nextDeps = deps
	e.dirty = !e.ran || deps == nil || !sameDeps(e.deps, deps)
}

// runCleanup is the first commit phase for a changed effect.
func (e *effect) runCleanup() error {
	if !e.dirty || e.cleanup == nil {
		return nil
	}
	c := e.cleanup
	e.cleanup = nil
	return c()
}

// run is the second commit phase for a changed effect.
func (e *effect) run() error {
	if !e.dirty {
		return nil
	}
	e.dirty = false
	e.fn = e.nextFn
	e.deps = e.nextDeps
	e.ran = true
	if e.fn == nil {
		return nil
	}
	cleanup, err := e.fn()
	e.cleanup = cleanup
	return err
}

func (e *effect) dispose() error {
	e.dirty = false
	if e.cleanup == nil {
		return nil
	}
	c := e.cleanup
	e.cleanup = nil
	return c()
}

func sameDeps(prev, next Deps) bool {
	if len(prev) != len(next) {
		return false
	}
	for i := range prev {
		if !sameValue(prev[i], next[i]) {
			return false
		}
	}
	return true
}

func sameValue(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}
	if va.Type() != vb.Type() || !va.Comparable() {
		return false
	}
	return va.Equal(vb)
}
