package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	. "github.com/vango-dev/mdc/pkg/vdom"
)

func TestRenderToString(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want string
	}{
		{"nil", nil, ""},
		{"text", Text("hello"), "hello"},
		{"escaped text", Text(`<b>"x" & 'y'</b>`), "&lt;b&gt;&quot;x&quot; &amp; &#39;y&#39;&lt;/b&gt;"},
		{"raw", Raw("<b>bold</b>"), "<b>bold</b>"},
		{"element", Div(Class("card"), "hi"), `<div class="card">hi</div>`},
		{"sorted attributes", Span(ID("a"), Class("x"), Role("status")), `<span class="x" id="a" role="status"></span>`},
		{"void element", Input(Type("checkbox")), `<input type="checkbox">`},
		{"boolean true", Input(Disabled()), `<input disabled>`},
		{"boolean false", Input(Checked(false)), `<input>`},
		{"aria bool renders value", Div(AriaHidden(true)), `<div aria-hidden="true"></div>`},
		{"int attribute", Textarea(Rows(4)), `<textarea rows="4"></textarea>`},
		{"fragment", Fragment(Span("a"), Span("b")), `<span>a</span><span>b</span>`},
		{"attribute escaping", Div(Data("v", "a\"b\nc")), `<div data-v="a&quot;b&#10;c"></div>`},
		{"key not rendered", Li(Key("k1"), "x"), `<li>x</li>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderToString(tt.node)
			if err != nil {
				t.Fatalf("RenderToString() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("RenderToString() = %q, want %q", got, tt.want)
			}
		})
	}
}

type stubRef struct{ node *VNode }

func (s *stubRef) AttachElement(n *VNode) { s.node = n }

func TestRenderSkipsInternalProps(t *testing.T) {
	node := Div(Ref(&stubRef{}), Class("x"))
	got, err := RenderToString(node)
	if err != nil {
		t.Fatal(err)
	}
	if got != `<div class="x"></div>` {
		t.Errorf("got %q", got)
	}
}

func TestHydrationIDs(t *testing.T) {
	clicked := 0
	tree := Div(
		Span("static"),
		Button(OnClick(func() { clicked++ }), "go"),
		Input(OnInput(func(Event) {})),
	)

	r := NewRenderer(RendererConfig{})
	got, err := r.RenderToString(tree)
	if err != nil {
		t.Fatal(err)
	}

	want := `<div><span>static</span>` +
		`<button data-on-click="true" data-hid="h1">go</button>` +
		`<input data-on-input="true" data-hid="h2"></div>`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}

	keys := make([]string, 0)
	for k := range r.Handlers() {
		keys = append(keys, k)
	}
	if diff := cmp.Diff([]string{"h1_onclick", "h2_oninput"}, keys, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Errorf("Handlers() mismatch (-want +got):\n%s", diff)
	}

	Dispatch(r.Handlers()["h1_onclick"], Event{Type: "click"})
	if clicked != 1 {
		t.Errorf("clicked = %d, want 1", clicked)
	}

	r.Reset()
	if len(r.Handlers()) != 0 {
		t.Error("Reset() should clear handlers")
	}
	again, _ := r.RenderToString(tree)
	if again != want {
		t.Error("Reset() should restart hydration ids")
	}
}

func TestPrettyOutput(t *testing.T) {
	r := NewRenderer(RendererConfig{Pretty: true})
	got, err := r.RenderToString(Div(Span("a")))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "\n  <span>a</span>\n") {
		t.Errorf("pretty output not indented: %q", got)
	}
}

func TestRenderElementWithoutTag(t *testing.T) {
	_, err := RenderToString(&VNode{Kind: KindElement})
	if err == nil {
		t.Error("expected error for element without tag")
	}
}

func TestRenderPage(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(RendererConfig{})
	err := r.RenderPage(&buf, PageData{
		Title:        "Gallery <MDC>",
		StyleSheets:  []string{"/static/mdc.css"},
		Scripts:      []string{"/static/mdc.js", "/static/client.js"},
		InlineScript: "boot()",
		Body:         Main(H1("Components")),
	})
	if err != nil {
		t.Fatal(err)
	}
	html := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>Gallery &lt;MDC&gt;</title>",
		`<link rel="stylesheet" href="/static/mdc.css">`,
		"<main><h1>Components</h1></main>",
		"<script>boot()</script>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Index(html, "mdc.js") > strings.Index(html, "client.js") {
		t.Error("scripts should keep their order")
	}
}
