package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Attribute creates an arbitrary attribute. Use it to pass native
// attributes through a component unchanged.
func Attribute(key string, value any) Attr { return attr(key, value) }

// Key sets the sibling identity of an element.
func Key(key string) Attr { return attr("key", key) }

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
// Empty class names are skipped.
func Class(classes ...string) Attr {
	kept := classes[:0:0]
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			kept = append(kept, c)
		}
	}
	return attr("class", strings.Join(kept, " "))
}

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("value", "two") → data-value="two"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// AriaDescribedBy sets the aria-describedby attribute.
func AriaDescribedBy(id string) Attr { return attr("aria-describedby", id) }

// AriaLabelledBy sets the aria-labelledby attribute.
func AriaLabelledBy(id string) Attr { return attr("aria-labelledby", id) }

// AriaLive sets the aria-live attribute.
func AriaLive(mode string) Attr { return attr("aria-live", mode) }

// AriaControls sets the aria-controls attribute.
func AriaControls(id string) Attr { return attr("aria-controls", id) }

// AriaDisabled sets the aria-disabled attribute.
func AriaDisabled(disabled bool) Attr { return attr("aria-disabled", disabled) }

// AriaPressed sets the aria-pressed attribute.
func AriaPressed(pressed bool) Attr { return attr("aria-pressed", pressed) }

// AriaSelected sets the aria-selected attribute.
func AriaSelected(selected bool) Attr { return attr("aria-selected", selected) }

// AriaHasPopup sets the aria-haspopup attribute.
func AriaHasPopup(value string) Attr { return attr("aria-haspopup", value) }

// AriaModal sets the aria-modal attribute.
func AriaModal(modal bool) Attr { return attr("aria-modal", modal) }

// AriaRequired sets the aria-required attribute.
func AriaRequired(required bool) Attr { return attr("aria-required", required) }

// AriaSort sets the aria-sort attribute.
func AriaSort(value string) Attr { return attr("aria-sort", value) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Form attributes

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Disabled sets the disabled attribute.
func Disabled() Attr { return attr("disabled", true) }

// DisabledIf sets the disabled attribute when cond is true.
func DisabledIf(cond bool) Attr { return attr("disabled", cond) }

// Required sets the required attribute.
func Required() Attr { return attr("required", true) }

// Checked sets the checked attribute when cond is true.
func Checked(cond bool) Attr { return attr("checked", cond) }

// Rows sets the rows attribute for textarea.
func Rows(n int) Attr { return attr("rows", n) }

// Cols sets the cols attribute for textarea.
func Cols(n int) Attr { return attr("cols", n) }

// For sets the for attribute (for labels).
func For(id string) Attr { return attr("for", id) }

// Scope sets the scope attribute of a table header cell.
func Scope(scope string) Attr { return attr("scope", scope) }

// Media attributes

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// SVG attributes

// ViewBox sets the viewBox attribute.
func ViewBox(box string) Attr { return attr("viewBox", box) }

// Fill sets the fill attribute.
func Fill(fill string) Attr { return attr("fill", fill) }

// FillRule sets the fill-rule attribute.
func FillRule(rule string) Attr { return attr("fill-rule", rule) }

// Stroke sets the stroke attribute.
func Stroke(stroke string) Attr { return attr("stroke", stroke) }

// D sets the path data attribute.
func D(d string) Attr { return attr("d", d) }

// Points sets the points attribute of a polygon.
func Points(points string) Attr { return attr("points", points) }

// Meta attributes

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attr("charset", charset) }

// Content sets the content attribute of a meta element.
func Content(content string) Attr { return attr("content", content) }
