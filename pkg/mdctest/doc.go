// Package mdctest provides an in-memory widget toolkit and render
// assertions for testing MDC components.
//
// The toolkit simulates just enough of each widget to exercise bindings:
// dialogs and snackbars open and close with the same event sequence as the
// browser library, selects and data tables emit their change events, and
// every call made on a handle is recorded.
//
// # Quick Start
//
//	func TestDialog(t *testing.T) {
//	    tk := mdctest.NewToolkit(mdctest.WithMeasure(mdctest.FixedLayout))
//	    root := mdctest.Mount(t, tk, mdc.Dialog, mdc.DialogProps{Open: true})
//
//	    d := tk.Find(widget.KindDialog)
//	    tk.Settle()                // finish the opening animation
//	    d.Click("accept")          // closes with action "accept"
//	    mdctest.ExpectClass(t, root.Tree(), "mdc-dialog")
//	}
//
// # Time and focus
//
// Snackbar timeouts run on a fake clock moved with Advance. Focus is set
// with Focus and cleared with Blur; the toolkit's Document reports it.
package mdctest
