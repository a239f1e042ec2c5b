package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/mdc/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output. Only use it for debugging; it
	// inserts whitespace text between elements.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer renders vdom trees to HTML.
type Renderer struct {
	config     RendererConfig
	hidCounter uint32
	handlers   map[string]any
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{
		config:   config,
		handlers: make(map[string]any),
	}
}

// RenderToString renders a tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// Handlers returns the handlers collected during rendering, keyed by
// "hid_eventname" (e.g., "h1_onclick").
func (r *Renderer) Handlers() map[string]any {
	return r.handlers
}

// Reset clears the hydration counter and handler registry.
func (r *Renderer) Reset() {
	r.hidCounter = 0
	r.handlers = make(map[string]any)
}

// RenderToString renders node with a default renderer.
func RenderToString(node *vdom.VNode) (string, error) {
	return NewRenderer(RendererConfig{}).RenderToString(node)
}

func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child, depth); err != nil {
				return err
			}
		}
		return nil
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("render: unknown node kind %d", node.Kind)
	}
}

func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag
	if tag == "" {
		return fmt.Errorf("render: element without tag")
	}

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	if node.IsInteractive() {
		r.hidCounter++
		hid := "h" + strconv.FormatUint(uint64(r.hidCounter), 10)
		if _, err := fmt.Fprintf(w, ` data-hid="%s"`, hid); err != nil {
			return err
		}
		r.registerHandlers(hid, node)
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if vdom.IsVoidElement(tag) {
		if r.config.Pretty {
			io.WriteString(w, "\n")
		}
		return nil
	}

	pretty := r.config.Pretty && len(node.Children) > 0
	if pretty {
		io.WriteString(w, "\n")
	}
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}
	if pretty {
		r.writeIndent(w, depth)
	}

	if _, err := io.WriteString(w, "</"+tag+">"); err != nil {
		return err
	}
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
	return nil
}

func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if len(node.Props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var events []string
	for _, key := range keys {
		value := node.Props[key]

		if strings.HasPrefix(key, "_") {
			continue
		}
		if strings.HasPrefix(key, "on") && vdom.IsHandler(value) {
			events = append(events, strings.ToLower(key[2:]))
			continue
		}

		if b, ok := value.(bool); ok && isBooleanAttr(key) {
			if b {
				if _, err := io.WriteString(w, " "+key); err != nil {
					return err
				}
			}
			continue
		}
		if value == nil {
			continue
		}

		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(attrToString(value))); err != nil {
			return err
		}
	}

	for _, name := range events {
		if _, err := fmt.Fprintf(w, ` data-on-%s="true"`, name); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) registerHandlers(hid string, node *vdom.VNode) {
	for key, value := range node.Props {
		if strings.HasPrefix(key, "on") && vdom.IsHandler(value) {
			r.handlers[hid+"_"+key] = value
		}
	}
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (r *Renderer) writeIndent(w io.Writer, depth int) {
	io.WriteString(w, strings.Repeat(r.config.Indent, depth))
}

// booleanAttrs are attributes rendered by name alone when true.
var booleanAttrs = map[string]bool{
	"autofocus":  true,
	"checked":    true,
	"disabled":   true,
	"hidden":     true,
	"multiple":   true,
	"novalidate": true,
	"open":       true,
	"readonly":   true,
	"required":   true,
	"selected":   true,
}

func isBooleanAttr(name string) bool {
	return booleanAttrs[name]
}
