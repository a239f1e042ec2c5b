package remote_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdcerrors "github.com/vango-dev/mdc/internal/errors"
	"github.com/vango-dev/mdc/pkg/binding"
	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/mdc"
	"github.com/vango-dev/mdc/pkg/widget"
	"github.com/vango-dev/mdc/pkg/widget/remote"
)

type recorder struct{ got []widget.Event }

func (r *recorder) HandleEvent(e widget.Event) { r.got = append(r.got, e) }

func TestCheckboxCommands(t *testing.T) {
	tk := remote.NewToolkit()
	root, err := component.Mount(context.Background(), mdc.Checkbox, mdc.CheckboxProps{Label: "Subscribe"},
		component.WithToolkit(tk))
	if err != nil {
		t.Fatal(err)
	}

	html, err := root.HTML()
	if err != nil {
		t.Fatal(err)
	}
	cmds := tk.Flush(html)
	want := []remote.Command{
		{Op: remote.OpRender, HTML: html},
		{Op: remote.OpCreate, ID: "w1", Kind: widget.KindCheckbox, Root: "r1"},
		{Op: remote.OpCreate, ID: "w2", Kind: widget.KindFormField, Root: "r2"},
		{Op: remote.OpSet, ID: "w2", Field: "input", Value: remote.WidgetRef{Widget: "w1"}},
	}
	if diff := cmp.Diff(want, cmds); diff != "" {
		t.Errorf("commands (-want +got):\n%s", diff)
	}
	if tk.Pending() != 0 {
		t.Errorf("Pending() = %d after Flush", tk.Pending())
	}

	if err := root.Unmount(); err != nil {
		t.Fatal(err)
	}
	var ops []string
	for _, c := range tk.Flush("") {
		ops = append(ops, string(c.Op)+" "+c.ID)
	}
	if diff := cmp.Diff([]string{"destroy w2", "destroy w1"}, ops); diff != "" {
		t.Errorf("unmount commands (-want +got):\n%s", diff)
	}
	if tk.Live() != 0 {
		t.Errorf("Live() = %d after unmount", tk.Live())
	}
}

func TestDialogRoundTrip(t *testing.T) {
	tk := remote.NewToolkit()
	var closing []string
	props := mdc.DialogProps{
		Title:   "Delete?",
		Buttons: []mdc.DialogButton{{Action: "ok", Label: "OK"}},
		IsOpen:  true,
		OpenHandlers: binding.OpenHandlers{
			OnClosing: func(e widget.Event) { closing = append(closing, e.Action()) },
		},
	}
	root, err := component.Mount(context.Background(), mdc.Dialog, props, component.WithToolkit(tk))
	if err != nil {
		t.Fatal(err)
	}

	want := []remote.Command{
		{Op: remote.OpCreate, ID: "w1", Kind: widget.KindDialog, Root: "r1"},
		{Op: remote.OpListen, ID: "w1", Event: "MDCDialog:closing"},
		{Op: remote.OpCall, ID: "w1", Method: "open"},
	}
	if diff := cmp.Diff(want, tk.Flush("")); diff != "" {
		t.Errorf("mount commands (-want +got):\n%s", diff)
	}

	err = tk.Receive(remote.Message{
		Type:   remote.MsgEvent,
		ID:     "w1",
		Name:   "MDCDialog:closing",
		Detail: map[string]any{"action": "ok"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"ok"}, closing); diff != "" {
		t.Errorf("closing actions (-want +got):\n%s", diff)
	}

	// The client closed the dialog; the same desired state is not pushed
	// again.
	if err := root.Update(props); err != nil {
		t.Fatal(err)
	}
	if got := tk.Flush(""); len(got) != 0 {
		t.Errorf("re-render sent %v", got)
	}

	props.IsOpen = false
	if err := root.Update(props); err != nil {
		t.Fatal(err)
	}
	props.IsOpen = true
	if err := root.Update(props); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]remote.Command{{Op: remote.OpCall, ID: "w1", Method: "open"}}, tk.Flush("")); diff != "" {
		t.Errorf("reopen commands (-want +got):\n%s", diff)
	}
}

func TestListenOnce(t *testing.T) {
	tk := remote.NewToolkit()
	h, err := tk.New(widget.KindSelect, widget.Node{ID: "r1", Tag: "div"})
	if err != nil {
		t.Fatal(err)
	}
	tk.Flush("")

	a, b := &recorder{}, &recorder{}
	h.Listen("MDCSelect:change", a)
	h.Listen("MDCSelect:change", b)
	h.Unlisten("MDCSelect:change", a)
	if diff := cmp.Diff([]remote.Command{{Op: remote.OpListen, ID: "w1", Event: "MDCSelect:change"}}, tk.Flush("")); diff != "" {
		t.Errorf("commands (-want +got):\n%s", diff)
	}

	tk.Receive(remote.Message{Type: remote.MsgEvent, ID: "w1", Name: "MDCSelect:change",
		Detail: map[string]any{"value": "two", "index": float64(1)}})
	if len(a.got) != 0 || len(b.got) != 1 {
		t.Errorf("deliveries: removed = %d, kept = %d", len(a.got), len(b.got))
	}
	if v, err := h.Get("value"); err != nil || v != "two" {
		t.Errorf("mirrored value = %v, %v", v, err)
	}
	if v, _ := h.Get("selectedIndex"); v != 1 {
		t.Errorf("mirrored index = %v, want 1", v)
	}

	h.Unlisten("MDCSelect:change", b)
	if diff := cmp.Diff([]remote.Command{{Op: remote.OpUnlisten, ID: "w1", Event: "MDCSelect:change"}}, tk.Flush("")); diff != "" {
		t.Errorf("commands (-want +got):\n%s", diff)
	}
}

func TestHandleErrors(t *testing.T) {
	tk := remote.NewToolkit()
	if _, err := tk.New("MDCSlider", widget.Node{ID: "r1"}); !errors.Is(err, widget.ErrUnknownKind) {
		t.Errorf("New(unknown) error = %v", err)
	}
	if _, err := tk.New(widget.KindRipple, widget.Node{}); !errors.Is(err, widget.ErrMalformedRoot) {
		t.Errorf("New(no root) error = %v", err)
	}

	h, _ := tk.New(widget.KindRipple, widget.Node{ID: "r1"})
	if _, err := h.Get("unbounded"); !errors.Is(err, widget.ErrUnknownField) {
		t.Errorf("Get(unset) error = %v", err)
	}
	h.Set("unbounded", true)
	if v, _ := h.Get("unbounded"); v != true {
		t.Errorf("Get(unbounded) = %v", v)
	}

	if err := h.Destroy(); err != nil {
		t.Fatal(err)
	}
	if err := h.Destroy(); !errors.Is(err, widget.ErrDestroyed) {
		t.Errorf("second Destroy() error = %v", err)
	}
	if err := h.Set("unbounded", false); !errors.Is(err, widget.ErrDestroyed) {
		t.Errorf("Set after destroy error = %v", err)
	}

	err := tk.Receive(remote.Message{Type: remote.MsgEvent, ID: "w1", Name: "MDCRipple:x"})
	if !mdcerrors.HasCode(err, "E121") {
		t.Errorf("event for destroyed widget: error = %v, want E121", err)
	}
	if err := tk.Receive(remote.Message{Type: remote.MsgDOM, HID: "h1", Event: "click"}); !mdcerrors.HasCode(err, "E120") {
		t.Errorf("dom message: error = %v, want E120", err)
	}
}

func TestFocusReport(t *testing.T) {
	tk := remote.NewToolkit()
	props := mdc.TextFieldProps{Label: "Name", Value: new(string)}
	*props.Value = "Ada"
	root, err := component.Mount(context.Background(), mdc.TextField, props, component.WithToolkit(tk))
	if err != nil {
		t.Fatal(err)
	}
	tk.Flush("")

	if err := tk.Receive(remote.Message{Type: remote.MsgFocus, HasFocus: true, Active: "r1"}); err != nil {
		t.Fatal(err)
	}
	if !widget.HasFocusOn(tk.Document(), widget.Node{ID: "r1"}) {
		t.Fatal("focus report not applied")
	}

	next := "Grace"
	props.Value = &next
	if err := root.Update(props); err != nil {
		t.Fatal(err)
	}
	if got := tk.Flush(""); len(got) != 0 {
		t.Errorf("pushed into a focused field: %v", got)
	}
}

func TestClearedTextFieldValue(t *testing.T) {
	tk := remote.NewToolkit()
	name := "Ada"
	props := mdc.TextFieldProps{ID: "name", Label: "Name", Value: &name}
	root, err := component.Mount(context.Background(), mdc.TextField, props, component.WithToolkit(tk))
	if err != nil {
		t.Fatal(err)
	}
	tk.Flush("")

	cleared := ""
	props.Value = &cleared
	if err := root.Update(props); err != nil {
		t.Fatal(err)
	}
	var wire []string
	for _, c := range tk.Flush("") {
		data, err := remote.EncodeCommand(c)
		if err != nil {
			t.Fatal(err)
		}
		wire = append(wire, string(data))
	}
	want := []string{
		`{"op":"set","id":"w1","field":"useNativeValidation","value":false}`,
		`{"op":"set","id":"w1","field":"value","value":""}`,
		`{"op":"set","id":"w1","field":"useNativeValidation","value":true}`,
	}
	if diff := cmp.Diff(want, wire); diff != "" {
		t.Errorf("wire commands (-want +got):\n%s", diff)
	}
	if err := root.Unmount(); err != nil {
		t.Fatal(err)
	}
}

func TestEncodeCommand(t *testing.T) {
	tests := []struct {
		name string
		cmd  remote.Command
		want string
	}{
		{
			"create",
			remote.Command{Op: remote.OpCreate, ID: "w1", Kind: widget.KindTooltip, Root: "r3"},
			`{"op":"create","id":"w1","kind":"MDCTooltip","root":"r3"}`,
		},
		{
			"false value is kept",
			remote.Command{Op: remote.OpSet, ID: "w1", Field: "useNativeValidation", Value: false},
			`{"op":"set","id":"w1","field":"useNativeValidation","value":false}`,
		},
		{
			"empty string value is kept",
			remote.Command{Op: remote.OpSet, ID: "w1", Field: "value", Value: ""},
			`{"op":"set","id":"w1","field":"value","value":""}`,
		},
		{
			"nil value is omitted",
			remote.Command{Op: remote.OpCall, ID: "w1", Method: "layout"},
			`{"op":"call","id":"w1","method":"layout"}`,
		},
		{
			"widget reference",
			remote.Command{Op: remote.OpSet, ID: "w2", Field: "input", Value: remote.WidgetRef{Widget: "w1"}},
			`{"op":"set","id":"w2","field":"input","value":{"$widget":"w1"}}`,
		},
		{
			"call",
			remote.Command{Op: remote.OpCall, ID: "w4", Method: "activateTab", Args: []any{2}},
			`{"op":"call","id":"w4","method":"activateTab","args":[2]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := remote.EncodeCommand(tt.cmd)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.want {
				t.Errorf("EncodeCommand() = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestDecodeMessage(t *testing.T) {
	m, err := remote.DecodeMessage([]byte(`{"type":"event","id":"w1","name":"MDCTabBar:activated","detail":{"index":2}}`))
	if err != nil {
		t.Fatal(err)
	}
	want := remote.Message{Type: remote.MsgEvent, ID: "w1", Name: "MDCTabBar:activated", Detail: map[string]any{"index": float64(2)}}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("message (-want +got):\n%s", diff)
	}

	for _, bad := range []string{
		`{"type":"launch"}`,
		`{"type":"event","extra":1}`,
		`not json`,
	} {
		if _, err := remote.DecodeMessage([]byte(bad)); !mdcerrors.HasCode(err, "E120") {
			t.Errorf("DecodeMessage(%s) error = %v, want E120", bad, err)
		}
	}
}
