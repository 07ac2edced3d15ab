// Package widgets renders widget definitions as Python source fragments
// for the generated main.py.
package widgets

import (
	"fmt"
	"strings"

	"github.com/stoewer/go-strcase"

	"github.com/chatgpt-apps/create-chatgpt-app/internal/scaffold"
)

// DefaultClassName is the widget dataclass name emitted by the project
// templates and detected by the incremental editor.
const DefaultClassName = "AppWidget"

// HTML returns the Python string-literal expression holding the widget's
// HTML body. CDN and local widgets mount a root div and reference external
// assets; inline widgets embed the (escaped) markup directly.
func HTML(w scaffold.WidgetConfig) string {
	rootID := strcase.SnakeCase(w.Identifier)

	switch w.Type {
	case scaffold.WidgetTypeCDN:
		cdnCSS := w.CDNCSS
		if cdnCSS == "" {
			cdnCSS = fmt.Sprintf("https://example.com/%s.css", w.Identifier)
		}
		cdnJS := w.CDNJS
		if cdnJS == "" {
			cdnJS = fmt.Sprintf("https://example.com/%s.js", w.Identifier)
		}
		return assetHTML(rootID, cdnCSS, cdnJS)
	case scaffold.WidgetTypeLocal:
		return assetHTML(rootID,
			fmt.Sprintf("/static/%s.css", w.Identifier),
			fmt.Sprintf("/static/%s.js", w.Identifier))
	default: // inline
		content := w.HTMLContent
		if content == "" {
			content = fmt.Sprintf(
				"<div style='padding: 20px; border: 1px solid #ccc;'><h2>%s</h2><p>This is %s widget.</p></div>",
				w.Title, w.Identifier)
		}
		return fmt.Sprintf("%q", content)
	}
}

func assetHTML(rootID, css, js string) string {
	lines := []string{
		fmt.Sprintf(`"<div id=\"%s_root\"></div>\n"`, rootID),
		fmt.Sprintf(`"<link rel=\"stylesheet\" href=\"%s\">\n"`, css),
		fmt.Sprintf(`"<script type=\"module\" src=\"%s\"></script>"`, js),
	}
	return strings.Join(lines, "\n")
}

// Literal renders the widget as a Python constructor call suitable for
// insertion into the generated widgets list. The literal is indented for
// a top-level list entry and carries no trailing comma.
func Literal(w scaffold.WidgetConfig, className string) string {
	if className == "" {
		className = DefaultClassName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "    %s(\n", className)
	fmt.Fprintf(&b, "        identifier=%q,\n", w.Identifier)
	fmt.Fprintf(&b, "        title=%q,\n", w.Title)
	fmt.Fprintf(&b, "        template_uri=%q,\n", w.TemplateURI)
	fmt.Fprintf(&b, "        invoking=%q,\n", w.Invoking)
	fmt.Fprintf(&b, "        invoked=%q,\n", w.Invoked)
	b.WriteString("        html=(\n")
	b.WriteString(indent(HTML(w), 12))
	b.WriteString("\n        ),\n")
	fmt.Fprintf(&b, "        response_text=%q,\n", w.ResponseText)
	b.WriteString("    )")
	return b.String()
}

func indent(text string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}
