package docx

import "strings"

// ParsedTable holds a table's cell texts by row, in document order.
type ParsedTable struct {
	Rows []ParsedTableRow
}

// ParsedTableRow holds one row's cell texts.
type ParsedTableRow struct {
	Cells []string
}

// parseTable extracts cell texts from a table XML element.
func parseTable(tbl *tableXML) ParsedTable {
	var parsed ParsedTable
	for _, row := range tbl.Rows {
		var pr ParsedTableRow
		for _, cell := range row.Cells {
			pr.Cells = append(pr.Cells, cellText(cell))
		}
		parsed.Rows = append(parsed.Rows, pr)
	}
	return parsed
}

// ToText returns a plain text representation of the table: one line per
// row, cells joined by " | ". Newlines within cells are flattened to
// spaces and each cell is trimmed, matching the markdown rendering.
func (pt *ParsedTable) ToText() string {
	if len(pt.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, row := range pt.Rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = strings.TrimSpace(strings.ReplaceAll(cell, "\n", " "))
		}
		sb.WriteString(strings.Join(cells, " | "))
	}
	return sb.String()
}

// ToMarkdown returns a markdown table representation. Row 0 is treated
// as the header row and is followed by exactly one separator row of
// "---" cells, one per header column. A table with no rows renders as
// an empty string.
func (pt *ParsedTable) ToMarkdown() string {
	if len(pt.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	for rowIdx, row := range pt.Rows {
		sb.WriteString("|")
		for _, cell := range row.Cells {
			text := strings.ReplaceAll(cell, "\n", " ")
			text = strings.ReplaceAll(text, "|", "\\|")
			text = strings.TrimSpace(text)
			sb.WriteString(" ")
			sb.WriteString(text)
			sb.WriteString(" |")
		}

		// Separator row after the header
		if rowIdx == 0 {
			sb.WriteString("\n|")
			for range row.Cells {
				sb.WriteString(" --- |")
			}
		}

		if rowIdx < len(pt.Rows)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
