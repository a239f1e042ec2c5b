package mdc_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/mdc/pkg/binding"
	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/mdc"
	"github.com/vango-dev/mdc/pkg/mdctest"
	"github.com/vango-dev/mdc/pkg/vdom"
	"github.com/vango-dev/mdc/pkg/widget"
)

// transitions records open/close events as "name:detail".
type transitions struct{ got []string }

func (tr *transitions) handlers() binding.OpenHandlers {
	rec := func(name string) func(widget.Event) {
		return func(e widget.Event) {
			detail := e.Action()
			if detail == "" {
				detail = e.Reason()
			}
			tr.got = append(tr.got, name+":"+detail)
		}
	}
	return binding.OpenHandlers{
		OnOpening: rec("opening"),
		OnOpened:  rec("opened"),
		OnClosing: rec("closing"),
		OnClosed:  rec("closed"),
	}
}

func confirmProps(tr *transitions) mdc.DialogProps {
	return mdc.DialogProps{
		Title: "Discard draft?",
		Buttons: []mdc.DialogButton{
			{Action: "cancel", Label: "Cancel", IsDefault: true},
			{Action: "ok", Label: "OK"},
		},
		Content:      []*vdom.VNode{vdom.P("Your changes will be lost.")},
		OpenHandlers: tr.handlers(),
	}
}

func TestDialogMarkup(t *testing.T) {
	node := static(t, mdc.Dialog, confirmProps(&transitions{}))

	mdctest.ExpectClass(t, node, "mdc-dialog__scrim")
	surface := mdctest.FindByClass(node, "mdc-dialog__surface")
	if surface.Props["role"] != "alertdialog" || surface.Props["aria-modal"] != true {
		t.Errorf("surface = %v", surface.Props)
	}
	buttons := mdctest.FindAllByClass(node, "mdc-dialog__button")
	if len(buttons) != 2 {
		t.Fatalf("rendered %d buttons, want 2", len(buttons))
	}
	if _, ok := buttons[0].Props["data-mdc-dialog-button-default"]; !ok {
		t.Error("cancel should be the default button")
	}
	if _, ok := buttons[1].Props["data-mdc-dialog-button-default"]; ok {
		t.Error("ok should not be the default button")
	}
	if buttons[1].Props["data-mdc-dialog-action"] != "ok" {
		t.Errorf("action = %v, want ok", buttons[1].Props["data-mdc-dialog-action"])
	}
	mdctest.ExpectContains(t, node, `<h2 class="mdc-dialog__title">Discard draft?</h2>`)
}

func TestDialogOpenClose(t *testing.T) {
	tk := mdctest.NewToolkit(mdctest.WithMeasure(mdctest.FixedLayout))
	tr := &transitions{}
	props := confirmProps(tr)
	root := mdctest.Mount(t, tk, mdc.Dialog, props)
	h := tk.Find(widget.KindDialog)

	if h.Opened() || h.Calls("Open") != 0 || len(tr.got) != 0 {
		t.Fatalf("closed dialog: open = %v, Open calls = %d, transitions = %v", h.Opened(), h.Calls("Open"), tr.got)
	}

	props.IsOpen = true
	if err := root.Update(props); err != nil {
		t.Fatal(err)
	}
	if !h.Opened() || h.Calls("Open") != 1 {
		t.Fatalf("open = %v, Open calls = %d after IsOpen=true", h.Opened(), h.Calls("Open"))
	}
	if diff := cmp.Diff([]string{"opening:"}, tr.got); diff != "" {
		t.Errorf("transitions before settle (-want +got):\n%s", diff)
	}
	tk.Settle()
	if err := h.Click("ok"); err != nil {
		t.Fatal(err)
	}
	tk.Settle()

	want := []string{"opening:", "opened:", "closing:ok", "closed:ok"}
	if diff := cmp.Diff(want, tr.got); diff != "" {
		t.Errorf("transitions (-want +got):\n%s", diff)
	}

	// The user closed the dialog; re-rendering with the same desired
	// state does not reopen it.
	if err := root.Update(props); err != nil {
		t.Fatal(err)
	}
	if h.Opened() || h.Calls("Open") != 1 {
		t.Errorf("dialog reopened: open = %v, Open calls = %d", h.Opened(), h.Calls("Open"))
	}

	props.IsOpen = false
	if err := root.Update(props); err != nil {
		t.Fatal(err)
	}
	props.IsOpen = true
	if err := root.Update(props); err != nil {
		t.Fatal(err)
	}
	if !h.Opened() {
		t.Error("toggling IsOpen should reopen the dialog")
	}

	props.IsOpen = false
	if err := root.Update(props); err != nil {
		t.Fatal(err)
	}
	if h.Opened() {
		t.Error("IsOpen=false should close the dialog")
	}
}

func TestDialogNeedsLayout(t *testing.T) {
	tk := mdctest.NewToolkit()
	props := confirmProps(&transitions{})
	props.IsOpen = true

	_, err := component.Mount(context.Background(), mdc.Dialog, props, component.WithToolkit(tk))
	if !errors.Is(err, widget.ErrLayoutUnavailable) {
		t.Fatalf("Mount() error = %v, want ErrLayoutUnavailable", err)
	}
	if n := tk.LiveCount(); n != 0 {
		t.Errorf("LiveCount() = %d after failed mount, want 0", n)
	}
}

func TestAlertDialog(t *testing.T) {
	tk := mdctest.NewToolkit(mdctest.WithMeasure(mdctest.FixedLayout))
	tr := &transitions{}
	slot := component.NewRef[widget.Handle]()
	root := mdctest.Mount(t, tk, mdc.AlertDialog, mdc.AlertDialogProps{
		Content:      "Connection lost.",
		Buttons:      []mdc.DialogButton{{Action: "close", Label: "OK", IsDefault: true}},
		IsOpen:       true,
		DialogRef:    slot,
		OpenHandlers: tr.handlers(),
	})

	tree := root.Tree()
	mdctest.ExpectNotContains(t, tree, "mdc-dialog__title")
	mdctest.ExpectContains(t, tree, `<div class="mdc-dialog__content">Connection lost.</div>`)

	op, ok := slot.Current().(widget.Opener)
	if !ok || !op.IsOpen() {
		t.Fatalf("slot = %v, want an open dialog", slot.Current())
	}
	if diff := cmp.Diff([]string{"opening:"}, tr.got); diff != "" {
		t.Errorf("transitions (-want +got):\n%s", diff)
	}
}

func TestSnackbarAutoDismiss(t *testing.T) {
	tk := mdctest.NewToolkit()
	tr := &transitions{}
	mdctest.Mount(t, tk, mdc.Snackbar, mdc.SnackbarProps{
		Label:        "Saved",
		IsOpen:       true,
		OpenHandlers: tr.handlers(),
	})
	h := tk.Find(widget.KindSnackbar)
	tk.Settle()

	tk.Advance(4 * time.Second)
	if !h.Opened() {
		t.Fatal("snackbar closed before its timeout")
	}
	tk.Advance(time.Second)
	tk.Settle()

	want := []string{"opening:", "opened:", "closing:dismiss", "closed:dismiss"}
	if diff := cmp.Diff(want, tr.got); diff != "" {
		t.Errorf("transitions (-want +got):\n%s", diff)
	}
}

func TestSnackbarTimeoutAndAction(t *testing.T) {
	tk := mdctest.NewToolkit()
	tr := &transitions{}
	root := mdctest.Mount(t, tk, mdc.Snackbar, mdc.SnackbarProps{
		Label:        "Message archived",
		ActionLabel:  "Undo",
		IsOpen:       true,
		IsStacked:    true,
		IsLeading:    true,
		TimeoutMs:    10000,
		Class:        "wide",
		OpenHandlers: tr.handlers(),
	})
	tree := root.Tree()
	mdctest.ExpectClass(t, tree, "mdc-snackbar", "mdc-snackbar--stacked", "mdc-snackbar--leading")
	mdctest.ExpectClass(t, tree, "mdc-snackbar__surface", "wide")
	mdctest.ExpectClass(t, tree, "mdc-button", "mdc-snackbar__action")

	h := tk.Find(widget.KindSnackbar)
	if v := h.Field("timeoutMs"); v != 10000 {
		t.Errorf("timeoutMs = %v, want 10000", v)
	}
	tk.Advance(5 * time.Second)
	if !h.Opened() {
		t.Fatal("custom timeout ignored")
	}
	if err := h.ClickAction(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"opening:", "closing:action"}, tr.got); diff != "" {
		t.Errorf("transitions (-want +got):\n%s", diff)
	}
}
