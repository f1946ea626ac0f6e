package lipbalm

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/beevik/etree"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// StyleMap maps tag names to the lipgloss style applied to their
// content.
type StyleMap map[string]lipgloss.Style

// noFormatTag marks content that only appears when the terminal has no
// color support.
const noFormatTag = "no-format"

// rootTag wraps input fragments so they parse as a single XML document.
const rootTag = "lipbalm-root"

// defaultRenderer is consulted for the terminal color profile. Tests
// swap it out for a deterministic one.
var defaultRenderer = lipgloss.DefaultRenderer()

// SetDefaultRenderer replaces the renderer used for color capability
// detection.
func SetDefaultRenderer(r *lipgloss.Renderer) {
	if r != nil {
		defaultRenderer = r
	}
}

// Render executes input as a Go text template with data, then expands
// style tags in the result.
func Render(input string, data interface{}, styles StyleMap) (string, error) {
	tmpl, err := template.New("lipbalm").Parse(input)
	if err != nil {
		return "", fmt.Errorf("template parse failed: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}

	return ExpandTags(buf.String(), styles)
}

// ExpandTags replaces style tags in input with their styled content.
// Unknown tags pass their content through unchanged, and <no-format>
// content is emitted only when the terminal has no color support. Input
// that does not parse as XML is returned as-is; rich formatting is
// best-effort, never an error.
func ExpandTags(input string, styles StyleMap) (string, error) {
	if input == "" {
		return "", nil
	}

	root, ok := parseFragment(input)
	if !ok {
		return input, nil
	}

	colored := defaultRenderer.ColorProfile() != termenv.Ascii
	return expandChildren(root, styles, colored), nil
}

// StripTags removes every style tag from input, keeping only the text
// content. Input that does not parse as XML is returned as-is.
func StripTags(input string) string {
	if input == "" {
		return ""
	}

	root, ok := parseFragment(input)
	if !ok {
		return input
	}

	var sb strings.Builder
	collectText(root, &sb)
	return sb.String()
}

// parseFragment parses input wrapped in a synthetic root element, so
// fragments with multiple top-level tags or none at all are valid.
// Strict XML parsing is deliberate: raw ampersands and unclosed tags
// mean the input was not tag markup in the first place.
func parseFragment(input string) (*etree.Element, bool) {
	doc := etree.NewDocument()
	wrapped := "<" + rootTag + ">" + input + "</" + rootTag + ">"
	if err := doc.ReadFromString(wrapped); err != nil {
		return nil, false
	}
	root := doc.Root()
	if root == nil {
		return nil, false
	}
	return root, true
}

// expandChildren renders the children of an element in document order.
func expandChildren(el *etree.Element, styles StyleMap, colored bool) string {
	var sb strings.Builder
	for _, child := range el.Child {
		switch node := child.(type) {
		case *etree.CharData:
			sb.WriteString(node.Data)
		case *etree.Element:
			sb.WriteString(expandElement(node, styles, colored))
		}
	}
	return sb.String()
}

// expandElement renders a single element: innermost content first, then
// this element's own style if one is registered and color is available.
func expandElement(el *etree.Element, styles StyleMap, colored bool) string {
	if el.Tag == noFormatTag {
		if colored {
			return ""
		}
		return expandChildren(el, styles, colored)
	}

	content := expandChildren(el, styles, colored)
	if style, ok := styles[el.Tag]; ok && colored {
		// The style renders with its own renderer; ours only decides
		// whether styling happens at all.
		return style.Render(content)
	}
	return content
}

// collectText appends the text content of el and its descendants.
func collectText(el *etree.Element, sb *strings.Builder) {
	for _, child := range el.Child {
		switch node := child.(type) {
		case *etree.CharData:
			sb.WriteString(node.Data)
		case *etree.Element:
			collectText(node, sb)
		}
	}
}
