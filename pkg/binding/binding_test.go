package binding_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.opentelemetry.io/otel/trace/noop"

	mdcerrors "github.com/vango-dev/mdc/internal/errors"
	"github.com/vango-dev/mdc/pkg/binding"
	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/mdctest"
	"github.com/vango-dev/mdc/pkg/vdom"
	"github.com/vango-dev/mdc/pkg/widget"
)

type hostProps struct {
	kind     widget.Kind
	hidden   bool
	disabled bool
	slot     *component.Ref[widget.Handle]
	opts     []binding.Option
	event    string
	onEvent  func(widget.Event)
}

func host(s *component.Scope, p hostProps) (*vdom.VNode, error) {
	root := component.UseNodeRef(s)
	opts := append([]binding.Option{binding.Disabled(p.disabled), binding.Into(p.slot)}, p.opts...)
	b := binding.UseWidget(s, p.kind, root, opts...)
	binding.UseEvent(s, b, p.event, p.onEvent)
	if p.hidden {
		return vdom.Div(), nil
	}
	return vdom.Div(vdom.Ref(root), vdom.Class("host")), nil
}

func TestWidgetLifecycle(t *testing.T) {
	tk := mdctest.NewToolkit()
	slot := component.NewRef[widget.Handle]()
	props := hostProps{kind: widget.KindCheckbox, slot: slot}
	root := mdctest.Mount(t, tk, host, props)

	h := tk.Find(widget.KindCheckbox)
	if h == nil || slot.Current() == nil || mdctest.HandleOf(slot.Current()) != h {
		t.Fatalf("slot = %v, live handle = %v", slot.Current(), h)
	}
	if got, want := h.Root().ID, root.Tree().Props[component.RefAttr]; got != want {
		t.Errorf("handle bound to %s, element ref is %v", got, want)
	}

	// Re-rendering with the same identity keeps the widget.
	for i := 0; i < 3; i++ {
		if err := root.Update(props); err != nil {
			t.Fatal(err)
		}
	}
	if n := tk.Created(widget.KindCheckbox); n != 1 {
		t.Errorf("Created() = %d after re-renders, want 1", n)
	}

	if err := root.Unmount(); err != nil {
		t.Fatal(err)
	}
	if !h.Destroyed() || h.Calls("Destroy") != 1 {
		t.Errorf("unmount: destroyed = %v, Destroy calls = %d", h.Destroyed(), h.Calls("Destroy"))
	}
	if slot.Current() != nil {
		t.Error("slot should be empty after unmount")
	}
}

func TestDisableDestroysExactlyOnce(t *testing.T) {
	tk := mdctest.NewToolkit()
	slot := component.NewRef[widget.Handle]()
	props := hostProps{kind: widget.KindRipple, slot: slot}
	root := mdctest.Mount(t, tk, host, props)
	first := tk.Find(widget.KindRipple)

	props.disabled = true
	for i := 0; i < 3; i++ {
		if err := root.Update(props); err != nil {
			t.Fatal(err)
		}
	}
	if !slot.IsSet() || slot.Current() != nil {
		t.Errorf("slot = %v, want nil", slot.Current())
	}
	if n := first.Calls("Destroy"); n != 1 {
		t.Errorf("Destroy calls = %d, want 1", n)
	}
	if tk.LiveCount() != 0 {
		t.Errorf("LiveCount() = %d, want 0", tk.LiveCount())
	}

	props.disabled = false
	if err := root.Update(props); err != nil {
		t.Fatal(err)
	}
	second := tk.Find(widget.KindRipple)
	if second == nil || second == first {
		t.Fatal("enabling should construct a fresh widget")
	}
	if mdctest.HandleOf(slot.Current()) != second {
		t.Error("slot should hold the fresh widget")
	}
}

func TestMissingRootElement(t *testing.T) {
	tk := mdctest.NewToolkit()
	slot := component.NewRef[widget.Handle]()
	props := hostProps{kind: widget.KindRipple, slot: slot, hidden: true}
	root := mdctest.Mount(t, tk, host, props)

	if tk.Created(widget.KindRipple) != 0 || slot.Current() != nil {
		t.Fatal("no widget should be built without a root element")
	}

	props.hidden = false
	if err := root.Update(props); err != nil {
		t.Fatal(err)
	}
	h := tk.Find(widget.KindRipple)
	if h == nil {
		t.Fatal("widget should be built once the element renders")
	}

	props.hidden = true
	if err := root.Update(props); err != nil {
		t.Fatal(err)
	}
	if !h.Destroyed() || slot.Current() != nil {
		t.Error("widget should be destroyed when its element disappears")
	}
}

func TestKindChangeRebuilds(t *testing.T) {
	tk := mdctest.NewToolkit()
	props := hostProps{kind: widget.KindCheckbox}
	root := mdctest.Mount(t, tk, host, props)
	old := tk.Find(widget.KindCheckbox)

	props.kind = widget.KindRadio
	if err := root.Update(props); err != nil {
		t.Fatal(err)
	}
	if !old.Destroyed() || tk.Find(widget.KindRadio) == nil {
		t.Error("changing the kind should destroy the old widget and build the new one")
	}
}

func TestRebuildOn(t *testing.T) {
	tk := mdctest.NewToolkit()
	props := hostProps{kind: widget.KindDataTable, opts: []binding.Option{binding.RebuildOn("a,b")}}
	root := mdctest.Mount(t, tk, host, props)

	if err := root.Update(props); err != nil {
		t.Fatal(err)
	}
	if n := tk.Created(widget.KindDataTable); n != 1 {
		t.Fatalf("Created() = %d with an unchanged key, want 1", n)
	}

	props.opts = []binding.Option{binding.RebuildOn("a,b,c")}
	if err := root.Update(props); err != nil {
		t.Fatal(err)
	}
	if n := tk.Created(widget.KindDataTable); n != 2 {
		t.Errorf("Created() = %d after the key changed, want 2", n)
	}
	if tk.LiveCount() != 1 {
		t.Errorf("LiveCount() = %d, want 1", tk.LiveCount())
	}
}

func TestAfterCreate(t *testing.T) {
	tk := mdctest.NewToolkit()
	setup := binding.AfterCreate(func(h widget.Handle) error {
		return h.Set("unbounded", true)
	})
	mdctest.Mount(t, tk, host, hostProps{kind: widget.KindRipple, opts: []binding.Option{setup}})

	if got := tk.Find(widget.KindRipple).Field("unbounded"); got != true {
		t.Errorf("unbounded = %v, want true", got)
	}
}

func TestAfterCreateFailureDestroysWidget(t *testing.T) {
	tk := mdctest.NewToolkit()
	boom := errors.New("boom")
	slot := component.NewRef[widget.Handle]()
	setup := binding.AfterCreate(func(widget.Handle) error { return boom })

	_, err := component.Mount(context.Background(), host,
		hostProps{kind: widget.KindRipple, slot: slot, opts: []binding.Option{setup}},
		component.WithToolkit(tk))
	if !errors.Is(err, boom) || !mdcerrors.HasCode(err, "E102") {
		t.Fatalf("Mount() error = %v, want E102 wrapping boom", err)
	}
	if tk.LiveCount() != 0 || slot.Current() != nil {
		t.Error("no widget should survive a failed initialization")
	}
}

func TestConstructionErrors(t *testing.T) {
	tests := []struct {
		name  string
		opts  []component.Option
		codes []string
	}{
		{
			name:  "toolkit failure",
			opts:  []component.Option{component.WithToolkit(mdctest.NewToolkit(mdctest.FailNew(widget.KindSelect, widget.ErrMalformedRoot)))},
			codes: []string{"E102"},
		},
		{
			name:  "no toolkit",
			opts:  nil,
			codes: []string{"E102", "E105"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := component.Mount(context.Background(), host, hostProps{kind: widget.KindSelect}, tt.opts...)
			if err == nil {
				t.Fatal("Mount() should fail")
			}
			for _, code := range tt.codes {
				if !mdcerrors.HasCode(err, code) {
					t.Errorf("error %v lacks %s", err, code)
				}
			}
		})
	}
}

type countingObserver struct {
	mu        sync.Mutex
	created   map[widget.Kind]int
	destroyed map[widget.Kind]int
	failed    int
	destroyKO map[bool]int
	pushes    map[bool]int
}

func newCountingObserver() *countingObserver {
	return &countingObserver{
		created:   make(map[widget.Kind]int),
		destroyed: make(map[widget.Kind]int),
		destroyKO: make(map[bool]int),
		pushes:    make(map[bool]int),
	}
}

func (o *countingObserver) WidgetCreated(k widget.Kind, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.created[k]++
}

func (o *countingObserver) WidgetDestroyed(k widget.Kind) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.destroyed[k]++
}

func (o *countingObserver) CreateFailed(widget.Kind) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failed++
}

func (o *countingObserver) DestroyFailed(_ widget.Kind, suppressed bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.destroyKO[suppressed]++
}

func (o *countingObserver) ValuePushed(_ widget.Kind, skipped bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pushes[skipped]++
}

func TestDestroyErrors(t *testing.T) {
	boom := errors.New("table already gone")

	t.Run("returned", func(t *testing.T) {
		obs := newCountingObserver()
		tk := mdctest.NewToolkit(mdctest.FailDestroy(widget.KindDataTable, boom))
		root, err := component.Mount(context.Background(), host, hostProps{kind: widget.KindDataTable},
			component.WithToolkit(tk), binding.WithObserver(obs))
		if err != nil {
			t.Fatal(err)
		}
		err = root.Unmount()
		if !errors.Is(err, boom) || !mdcerrors.HasCode(err, "E103") {
			t.Errorf("Unmount() error = %v, want E103 wrapping %v", err, boom)
		}
		if obs.destroyKO[false] != 1 {
			t.Errorf("observer saw %v", obs.destroyKO)
		}
	})

	t.Run("suppressed", func(t *testing.T) {
		obs := newCountingObserver()
		tk := mdctest.NewToolkit(mdctest.FailDestroy(widget.KindDataTable, boom))
		root, err := component.Mount(context.Background(), host,
			hostProps{kind: widget.KindDataTable, opts: []binding.Option{binding.SuppressDestroyErrors()}},
			component.WithToolkit(tk), binding.WithObserver(obs), binding.WithTracer(noop.NewTracerProvider().Tracer("test")))
		if err != nil {
			t.Fatal(err)
		}
		if err := root.Unmount(); err != nil {
			t.Errorf("Unmount() error = %v, want nil", err)
		}
		if obs.destroyKO[true] != 1 || obs.created[widget.KindDataTable] != 1 {
			t.Errorf("observer saw created=%v destroyFailed=%v", obs.created, obs.destroyKO)
		}
	})
}

func TestEventBridgeKeepsOneSubscription(t *testing.T) {
	tk := mdctest.NewToolkit()
	var got []string
	callback := func(name string) func(widget.Event) {
		return func(e widget.Event) {
			got = append(got, name+":"+e.String("index"))
		}
	}

	props := hostProps{kind: widget.KindTabBar, event: widget.EventActivated}
	root := mdctest.Mount(t, tk, host, props)
	bar := tk.Find(widget.KindTabBar)
	if n := bar.Listeners(widget.EventActivated); n != 0 {
		t.Fatalf("no callback: Listeners() = %d, want 0", n)
	}

	steps := []struct {
		name string
		fn   func(widget.Event)
		subs int
	}{
		{"a", callback("a"), 1},
		{"b", callback("b"), 1},
		{"b again", callback("b"), 1},
		{"none", nil, 0},
		{"c", callback("c"), 1},
	}
	for i, step := range steps {
		props.onEvent = step.fn
		if err := root.Update(props); err != nil {
			t.Fatal(err)
		}
		if n := bar.Listeners(widget.EventActivated); n != step.subs {
			t.Errorf("step %s: Listeners() = %d, want %d", step.name, n, step.subs)
		}
		bar.Activate(i)
	}

	want := []string{"a:0", "b:1", "b:2", "c:4"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("deliveries (-want +got):\n%s", diff)
	}
	if tk.Created(widget.KindTabBar) != 1 {
		t.Error("callback changes must not rebuild the widget")
	}
}

func TestEventBridgeFollowsRebuild(t *testing.T) {
	tk := mdctest.NewToolkit()
	count := 0
	props := hostProps{kind: widget.KindTabBar, event: widget.EventActivated, onEvent: func(widget.Event) { count++ }}
	root := mdctest.Mount(t, tk, host, props)
	first := tk.Find(widget.KindTabBar)

	props.disabled = true
	if err := root.Update(props); err != nil {
		t.Fatal(err)
	}
	props.disabled = false
	if err := root.Update(props); err != nil {
		t.Fatal(err)
	}
	second := tk.Find(widget.KindTabBar)

	if first.Listeners(widget.EventActivated) != 0 || first.Calls("Unlisten") != 1 {
		t.Errorf("old widget: listeners=%d unlisten=%d", first.Listeners(widget.EventActivated), first.Calls("Unlisten"))
	}
	if second.Listeners(widget.EventActivated) != 1 {
		t.Errorf("new widget listeners = %d, want 1", second.Listeners(widget.EventActivated))
	}
	second.Activate(0)
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	root.Unmount()
	if second.Calls("Unlisten") != 1 {
		t.Error("unmount should unsubscribe before destroying")
	}
}

func TestUnknownEvent(t *testing.T) {
	tk := mdctest.NewToolkit()
	_, err := component.Mount(context.Background(), host,
		hostProps{kind: widget.KindRipple, event: widget.EventOpened, onEvent: func(widget.Event) {}},
		component.WithToolkit(tk))
	if err == nil {
		t.Error("subscribing to an event the kind does not emit should fail")
	}
}
