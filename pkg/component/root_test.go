package component

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdcerrors "github.com/vango-dev/mdc/internal/errors"
	"github.com/vango-dev/mdc/pkg/vdom"
)

type recorder struct{ log []string }

func (r *recorder) add(s string) { r.log = append(r.log, s) }

type leafProps struct {
	name string
	rec  *recorder
	dep  int
}

func leaf(s *Scope, p leafProps) (*vdom.VNode, error) {
	UseEffect(s, Deps{p.dep}, func() (Cleanup, error) {
		p.rec.add("run " + p.name)
		return func() error {
			p.rec.add("cleanup " + p.name)
			return nil
		}, nil
	})
	return vdom.Span(p.name), nil
}

type treeProps struct {
	rec      *recorder
	children []string
	dep      int
	fail     bool
}

func tree(s *Scope, p treeProps) (*vdom.VNode, error) {
	UseEffect(s, nil, func() (Cleanup, error) {
		p.rec.add("run parent")
		return nil, nil
	})
	if p.fail {
		return nil, errors.New("render failed")
	}
	node := vdom.Div()
	for _, name := range p.children {
		child, err := Child(s, name, leaf, leafProps{name: name, rec: p.rec, dep: p.dep})
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

func TestEffectsRunChildrenFirst(t *testing.T) {
	rec := &recorder{}
	root, err := Mount(context.Background(), tree, treeProps{rec: rec, children: []string{"a", "b"}})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	want := []string{"run a", "run b", "run parent"}
	if diff := cmp.Diff(want, rec.log); diff != "" {
		t.Errorf("mount effects (-want +got):\n%s", diff)
	}

	rec.log = nil
	if err := root.Update(treeProps{rec: rec, children: []string{"a", "b"}}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"run parent"}, rec.log); diff != "" {
		t.Errorf("unchanged deps should only rerun nil-deps effects (-want +got):\n%s", diff)
	}

	rec.log = nil
	if err := root.Update(treeProps{rec: rec, children: []string{"a", "b"}, dep: 1}); err != nil {
		t.Fatal(err)
	}
	want = []string{"cleanup a", "cleanup b", "run a", "run b", "run parent"}
	if diff := cmp.Diff(want, rec.log); diff != "" {
		t.Errorf("changed deps (-want +got):\n%s", diff)
	}

	rec.log = nil
	if err := root.Unmount(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"cleanup b", "cleanup a"}, rec.log); diff != "" {
		t.Errorf("unmount cleanups (-want +got):\n%s", diff)
	}
	if err := root.Unmount(); err != nil {
		t.Errorf("second Unmount() = %v, want nil", err)
	}
}

func TestRemovedChildIsDisposed(t *testing.T) {
	rec := &recorder{}
	root, err := Mount(context.Background(), tree, treeProps{rec: rec, children: []string{"a", "b"}})
	if err != nil {
		t.Fatal(err)
	}

	rec.log = nil
	if err := root.Update(treeProps{rec: rec, children: []string{"b", "c"}}); err != nil {
		t.Fatal(err)
	}
	want := []string{"cleanup a", "run c", "run parent"}
	if diff := cmp.Diff(want, rec.log); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRenderErrorKeepsPreviousTree(t *testing.T) {
	rec := &recorder{}
	root, err := Mount(context.Background(), tree, treeProps{rec: rec, children: []string{"a"}})
	if err != nil {
		t.Fatal(err)
	}
	before := root.Tree()

	rec.log = nil
	if err := root.Update(treeProps{rec: rec, fail: true}); err == nil {
		t.Fatal("Update() should return the render error")
	}
	if len(rec.log) != 0 {
		t.Errorf("no effect should run after a failed render, got %v", rec.log)
	}
	if root.Tree() != before {
		t.Error("failed render should keep the committed tree")
	}

	// Child "a" is still mounted and keeps its effect state.
	rec.log = nil
	if err := root.Update(treeProps{rec: rec, children: []string{"a"}}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"run parent"}, rec.log); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDuplicateChildKey(t *testing.T) {
	rec := &recorder{}
	_, err := Mount(context.Background(), tree, treeProps{rec: rec, children: []string{"a", "a"}})
	if err == nil || !strings.Contains(err.Error(), `duplicate child key "a"`) {
		t.Errorf("Mount() error = %v, want duplicate key error", err)
	}
}

func TestEffectDeps(t *testing.T) {
	tests := []struct {
		name string
		prev Deps
		next Deps
		same bool
	}{
		{"equal ints", Deps{1, "a"}, Deps{1, "a"}, true},
		{"changed value", Deps{1}, Deps{2}, false},
		{"different length", Deps{1}, Deps{1, 2}, false},
		{"nil values", Deps{nil}, Deps{nil}, true},
		{"nil vs value", Deps{nil}, Deps{0}, false},
		{"different types", Deps{1}, Deps{int64(1)}, false},
		{"funcs always change", Deps{func() {}}, Deps{func() {}}, false},
		{"slices always change", Deps{[]int{1}}, Deps{[]int{1}}, false},
		{"pointers", Deps{&recorder{}}, Deps{&recorder{}}, false},
		{"empty", Deps{}, Deps{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameDeps(tt.prev, tt.next); got != tt.same {
				t.Errorf("sameDeps() = %v, want %v", got, tt.same)
			}
		})
	}
}

func TestEffectRunsOnceWithEmptyDeps(t *testing.T) {
	runs, cleanups := 0, 0
	app := func(s *Scope, _ int) (*vdom.VNode, error) {
		UseEffect(s, Deps{}, func() (Cleanup, error) {
			runs++
			return func() error { cleanups++; return nil }, nil
		})
		return vdom.Div(), nil
	}

	root, err := Mount(context.Background(), app, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 3; i++ {
		if err := root.Update(i); err != nil {
			t.Fatal(err)
		}
	}
	if runs != 1 || cleanups != 0 {
		t.Errorf("runs = %d, cleanups = %d, want 1, 0", runs, cleanups)
	}
	root.Unmount()
	if cleanups != 1 {
		t.Errorf("cleanups after unmount = %d, want 1", cleanups)
	}
}

func TestNodeRef(t *testing.T) {
	var ref *NodeRef
	var seen []bool
	app := func(s *Scope, show bool) (*vdom.VNode, error) {
		ref = UseNodeRef(s)
		UseEffect(s, nil, func() (Cleanup, error) {
			_, ok := ref.Current()
			seen = append(seen, ok)
			return nil, nil
		})
		return vdom.Div(vdom.If(show, vdom.Button(vdom.Ref(ref), vdom.Class("mdc-button")))), nil
	}

	root, err := Mount(context.Background(), app, true)
	if err != nil {
		t.Fatal(err)
	}
	node, ok := ref.Current()
	if !ok || node.Tag != "button" || node.ID != ref.ID() {
		t.Fatalf("Current() = %+v, %v", node, ok)
	}
	html, _ := root.HTML()
	if !strings.Contains(html, `data-mdc-ref="`+ref.ID()+`"`) {
		t.Errorf("HTML() missing ref attribute: %s", html)
	}

	firstID := ref.ID()
	if err := root.Update(false); err != nil {
		t.Fatal(err)
	}
	if _, ok := ref.Current(); ok {
		t.Error("ref should be empty when its element is not rendered")
	}
	if err := root.Update(true); err != nil {
		t.Fatal(err)
	}
	if ref.ID() != firstID {
		t.Errorf("ref id changed from %s to %s", firstID, ref.ID())
	}
	if diff := cmp.Diff([]bool{true, false, true}, seen); diff != "" {
		t.Errorf("effects should observe committed refs (-want +got):\n%s", diff)
	}
}

func TestHookOrderChange(t *testing.T) {
	app := func(s *Scope, extra bool) (*vdom.VNode, error) {
		if extra {
			UseRef[int](s)
		}
		UseEffect(s, Deps{}, func() (Cleanup, error) { return nil, nil })
		return vdom.Div(), nil
	}

	root, err := Mount(context.Background(), app, false, WithDebug(true))
	if err != nil {
		t.Fatal(err)
	}
	err = root.Update(true)
	if !mdcerrors.HasCode(err, "E104") {
		t.Fatalf("Update() error = %v, want E104", err)
	}
}

func TestHookCountChangeInDebugMode(t *testing.T) {
	app := func(s *Scope, n int) (*vdom.VNode, error) {
		for i := 0; i < n; i++ {
			UseRef[int](s)
		}
		return vdom.Div(), nil
	}

	root, err := Mount(context.Background(), app, 2, WithDebug(true))
	if err != nil {
		t.Fatal(err)
	}
	if err := root.Update(1); !mdcerrors.HasCode(err, "E104") {
		t.Errorf("fewer hooks: error = %v, want E104", err)
	}
	if err := root.Update(3); !mdcerrors.HasCode(err, "E104") {
		t.Errorf("more hooks: error = %v, want E104", err)
	}
	if err := root.Update(2); err != nil {
		t.Errorf("same hooks: error = %v", err)
	}
}

func TestUpdateAfterUnmount(t *testing.T) {
	root, err := Mount(context.Background(), func(s *Scope, _ int) (*vdom.VNode, error) { return vdom.Div(), nil }, 0)
	if err != nil {
		t.Fatal(err)
	}
	root.Unmount()
	if err := root.Update(1); !mdcerrors.HasCode(err, "E107") {
		t.Errorf("Update() error = %v, want E107", err)
	}
}

func TestMountFailureUnmounts(t *testing.T) {
	cleaned := false
	boom := errors.New("boom")
	app := func(s *Scope, _ int) (*vdom.VNode, error) {
		UseEffect(s, Deps{}, func() (Cleanup, error) {
			return func() error { cleaned = true; return nil }, nil
		})
		UseEffect(s, Deps{}, func() (Cleanup, error) { return nil, boom })
		return vdom.Div(), nil
	}

	root, err := Mount(context.Background(), app, 0)
	if root != nil || !errors.Is(err, boom) {
		t.Fatalf("Mount() = %v, %v", root, err)
	}
	if !cleaned {
		t.Error("effects that ran before the failure should be cleaned up")
	}
}

func TestStatic(t *testing.T) {
	ran := false
	app := func(s *Scope, label string) (*vdom.VNode, error) {
		ref := UseNodeRef(s)
		UseEffect(s, nil, func() (Cleanup, error) { ran = true; return nil, nil })
		return vdom.Button(vdom.Ref(ref), label), nil
	}

	node, err := Static(context.Background(), app, "OK")
	if err != nil {
		t.Fatal(err)
	}
	if ran {
		t.Error("Static should not run effects")
	}
	if v, _ := node.Attr(RefAttr); v != "r1" {
		t.Errorf("ref attribute = %v, want r1", v)
	}
}

func TestScopeEnvironment(t *testing.T) {
	type key struct{}
	var paths []string
	var value any
	inner := func(s *Scope, _ struct{}) (*vdom.VNode, error) {
		paths = append(paths, s.Path())
		value = s.Value(key{})
		return nil, nil
	}
	app := func(s *Scope, _ struct{}) (*vdom.VNode, error) {
		paths = append(paths, s.Path())
		return Child(s, "inner", inner, struct{}{})
	}

	_, err := Mount(context.Background(), app, struct{}{}, WithName("gallery"), WithValue(key{}, 42))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"gallery", "gallery/inner"}, paths); diff != "" {
		t.Errorf("paths (-want +got):\n%s", diff)
	}
	if value != 42 {
		t.Errorf("Value() = %v, want 42", value)
	}
}
