package mdctest

import (
	"context"
	"strings"
	"testing"

	"github.com/vango-dev/mdc/pkg/component"
	"github.com/vango-dev/mdc/pkg/render"
	"github.com/vango-dev/mdc/pkg/vdom"
)

// Mount mounts fn on tk and unmounts it when the test ends. Mount errors
// fail the test.
func Mount[P any](t testing.TB, tk *Toolkit, fn component.Func[P], props P, opts ...component.Option) *component.Root[P] {
	t.Helper()
	opts = append([]component.Option{component.WithToolkit(tk), component.WithDebug(true)}, opts...)
	root, err := component.Mount(context.Background(), fn, props, opts...)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	t.Cleanup(func() { root.Unmount() })
	return root
}

// RenderToString renders a VNode and returns the HTML string, or the
// empty string if rendering fails.
func RenderToString(node *vdom.VNode) string {
	html, err := render.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 800))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 800))
	}
}

// ExpectClass asserts that some element in node carries every class in
// classes.
func ExpectClass(t testing.TB, node *vdom.VNode, classes ...string) {
	t.Helper()
	if FindByClass(node, classes...) == nil {
		t.Errorf("expected an element with classes %v, got:\n%s", classes, truncate(RenderToString(node), 800))
	}
}

// FindByClass returns the first element, in document order, carrying every
// class in classes.
func FindByClass(node *vdom.VNode, classes ...string) *vdom.VNode {
	var found *vdom.VNode
	node.Walk(func(n *vdom.VNode) bool {
		if found != nil {
			return false
		}
		if n.Kind == vdom.KindElement && hasAll(Classes(n), classes) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAllByClass returns every element carrying class, in document order.
func FindAllByClass(node *vdom.VNode, class string) []*vdom.VNode {
	var out []*vdom.VNode
	node.Walk(func(n *vdom.VNode) bool {
		if n.Kind == vdom.KindElement && hasAll(Classes(n), []string{class}) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Classes returns the class names of an element.
func Classes(n *vdom.VNode) []string {
	if n == nil {
		return nil
	}
	s, _ := n.Props["class"].(string)
	return strings.Fields(s)
}

func hasAll(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
