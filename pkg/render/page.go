package render

import (
	"fmt"
	"io"

	"github.com/vango-dev/mdc/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Scripts contains paths to deferred scripts, loaded in order.
	Scripts []string

	// InlineScript is emitted at the end of the body, after Scripts.
	InlineScript string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n", escapeAttr(lang)); err != nil {
		return err
	}
	if err := r.renderHead(w, page); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "<body>\n"); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}
	io.WriteString(w, "\n")

	for _, src := range page.Scripts {
		if _, err := fmt.Fprintf(w, "  <script src=\"%s\"></script>\n", escapeAttr(src)); err != nil {
			return err
		}
	}
	if page.InlineScript != "" {
		if _, err := fmt.Fprintf(w, "  <script>%s</script>\n", page.InlineScript); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

func (r *Renderer) renderHead(w io.Writer, page PageData) error {
	if _, err := io.WriteString(w, "<head>\n"+
		`  <meta charset="utf-8">`+"\n"+
		`  <meta name="viewport" content="width=device-width, initial-scale=1">`+"\n"); err != nil {
		return err
	}

	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}

	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, `  <link rel="stylesheet" href="%s">`+"\n", escapeAttr(href)); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</head>\n")
	return err
}
