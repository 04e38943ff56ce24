package docx

import "strings"

// headingRule maps a style display name to its markdown prefix. Rules
// are evaluated top to bottom; matching is case-sensitive because Word
// style names are fixed display strings. English names match by
// containment so derived styles ("Heading 1 Char") classify with their
// base; CJK names match exactly.
type headingRule struct {
	name     string
	prefix   string
	contains bool
}

// headingRules covers the six heading levels under both the English and
// the Chinese display names Word uses for built-in heading styles.
var headingRules = []headingRule{
	{"Heading 1", "# ", true},
	{"Heading 2", "## ", true},
	{"Heading 3", "### ", true},
	{"Heading 4", "#### ", true},
	{"Heading 5", "##### ", true},
	{"Heading 6", "###### ", true},
	{"标题 1", "# ", false},
	{"标题 2", "## ", false},
	{"标题 3", "### ", false},
	{"标题 4", "#### ", false},
	{"标题 5", "##### ", false},
	{"标题 6", "###### ", false},
}

// markdownPrefix returns the markdown prefix for a style name: a run of
// '#' for heading styles, "- " for list styles, empty otherwise.
func markdownPrefix(styleName string) string {
	for _, rule := range headingRules {
		if rule.contains {
			if strings.Contains(styleName, rule.name) {
				return rule.prefix
			}
		} else if styleName == rule.name {
			return rule.prefix
		}
	}
	if strings.Contains(styleName, "List") || strings.Contains(styleName, "列表") {
		return "- "
	}
	return ""
}

// Text returns the document's paragraphs and tables as plain text in
// document order. Paragraphs are trimmed; empty paragraphs produce no
// block. Blocks are joined with blank lines.
func (r *Reader) Text() (string, error) {
	return r.render(false)
}

// Markdown returns the document rendered as markdown: heading styles
// become '#' prefixes, list styles become bullets, tables become pipe
// tables with a separator row after the header.
func (r *Reader) Markdown() (string, error) {
	return r.render(true)
}

func (r *Reader) render(markdown bool) (string, error) {
	if r.document == nil {
		return "", &ReadError{Path: r.path, Err: errNotParsed}
	}

	var blocks []string
	for _, el := range r.elements() {
		switch {
		case el.Paragraph != nil:
			text := strings.TrimSpace(paragraphText(el.Paragraph))
			if text == "" {
				continue
			}
			if markdown {
				prefix := markdownPrefix(r.styleName(el.Paragraph.Properties.Style.Val))
				text = prefix + text
			}
			blocks = append(blocks, text)
		case el.Table != nil:
			table := parseTable(el.Table)
			var rendered string
			if markdown {
				rendered = table.ToMarkdown()
			} else {
				rendered = table.ToText()
			}
			if rendered == "" {
				continue
			}
			blocks = append(blocks, rendered)
		}
	}

	return strings.Join(blocks, "\n\n"), nil
}
