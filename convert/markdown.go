package convert

import (
	"strings"

	"github.com/tsawler/docforge/docx"
)

// lineKind classifies one input line for the markdown scanner.
type lineKind int

const (
	kindBlank lineKind = iota
	kindHeading
	kindTable
	kindBullet
	kindOrdered
	kindParagraph
)

// classify applies the fixed priority order of line-prefix tests:
// heading marker, table-row marker, list markers, else paragraph.
func classify(line string) lineKind {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return kindBlank
	case strings.HasPrefix(trimmed, "#"):
		return kindHeading
	case strings.HasPrefix(trimmed, "|"):
		return kindTable
	case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
		return kindBullet
	case isOrderedItem(trimmed):
		return kindOrdered
	default:
		return kindParagraph
	}
}

// isOrderedItem reports whether a line looks like "N. text".
func isOrderedItem(line string) bool {
	if line == "" || line[0] < '0' || line[0] > '9' {
		return false
	}
	return strings.Contains(line, ". ")
}

// ApplyMarkdown scans markdown text in one forward pass, grouping
// contiguous lines by classification and converting each run into
// builder operations. Blank lines between blocks are skipped and never
// split a document in two.
func ApplyMarkdown(b *docx.Builder, text string) {
	lines := strings.Split(text, "\n")

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		switch classify(lines[i]) {
		case kindBlank:
			i++

		case kindHeading:
			level := 0
			for level < len(line) && line[level] == '#' {
				level++
			}
			b.AddTitle(strings.TrimSpace(line[level:]), level)
			i++

		case kindTable:
			block := collectRun(lines, i, kindTable)
			applyTable(b, block)
			i += len(block)

		case kindBullet:
			block := collectRun(lines, i, kindBullet)
			items := make([]string, len(block))
			for j, item := range block {
				items[j] = strings.TrimSpace(item)[2:]
			}
			b.AddList(items, false)
			i += len(block)

		case kindOrdered:
			block := collectRun(lines, i, kindOrdered)
			items := make([]string, len(block))
			for j, item := range block {
				_, rest, _ := strings.Cut(strings.TrimSpace(item), ". ")
				items[j] = rest
			}
			b.AddList(items, true)
			i += len(block)

		default:
			b.AddParagraph(line, docx.ParagraphOptions{})
			i++
		}
	}
}

// collectRun returns the contiguous span of lines starting at i that
// share the given classification.
func collectRun(lines []string, i int, kind lineKind) []string {
	j := i
	for j < len(lines) && classify(lines[j]) == kind {
		j++
	}
	return lines[i:j]
}

// applyTable converts a pipe-table block into an AddTable call. The
// block needs at least a header line and a separator line; anything
// shorter produces no table. Row 0 holds the headers, row 1 is assumed
// to be the separator and skipped, the rest are data rows.
func applyTable(b *docx.Builder, block []string) {
	if len(block) < 2 {
		return
	}

	headers := splitTableRow(block[0])
	var rows [][]string
	for _, line := range block[2:] {
		rows = append(rows, splitTableRow(line))
	}
	b.AddTable(headers, rows, "", "")
}

// splitTableRow splits a pipe row into trimmed cell texts, dropping
// the two empty boundary fields produced by the outer pipes.
func splitTableRow(line string) []string {
	fields := strings.Split(strings.TrimSpace(line), "|")
	if len(fields) > 0 && strings.TrimSpace(fields[0]) == "" {
		fields = fields[1:]
	}
	if len(fields) > 0 && strings.TrimSpace(fields[len(fields)-1]) == "" {
		fields = fields[:len(fields)-1]
	}

	cells := make([]string, len(fields))
	for i, f := range fields {
		cells[i] = strings.TrimSpace(f)
	}
	return cells
}
