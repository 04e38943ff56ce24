package docx

import (
	"archive/zip"
	"fmt"
	"strings"
)

// Formatting defaults applied when the caller doesn't override them.
const (
	defaultFont       = "Calibri"
	defaultTitleColor = "1F4E79" // dark blue
	titleSizeHalfPts  = "40"     // 20pt, stored in half-points
	maxHeadingLevel   = 9
)

// Builder assembles a DOCX document from a fixed vocabulary of
// operations and saves it as a package. Content accumulates in
// insertion order; nothing touches disk until Save.
type Builder struct {
	blocks       []interface{}
	templatePath string
	font         string
	titleColor   string
}

// NewBuilder creates a Builder for an empty document.
func NewBuilder() *Builder {
	return &Builder{
		font:       defaultFont,
		titleColor: defaultTitleColor,
	}
}

// NewBuilderFromTemplate creates a Builder seeded from an existing DOCX
// package. The template is validated up front; its parts are carried
// into the saved output with new content appended to the body.
func NewBuilderFromTemplate(path string) (*Builder, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	defer zr.Close()

	found := false
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			found = true
			break
		}
	}
	if !found {
		return nil, &OpenError{Path: path, Err: fmt.Errorf("missing required file: word/document.xml")}
	}

	b := NewBuilder()
	b.templatePath = path
	return b, nil
}

// WithFont sets the document default font. An empty name is ignored;
// font setup is best-effort and never fails.
func (b *Builder) WithFont(name string) *Builder {
	if name != "" {
		b.font = name
	}
	return b
}

// WithTitleColor sets the color used by level-0 titles. The value is a
// hex RRGGBB string without '#'; empty is ignored.
func (b *Builder) WithTitleColor(hex string) *Builder {
	if hex != "" {
		b.titleColor = hex
	}
	return b
}

// AddTitle adds a document title. Level 0 renders as a centered, bold,
// 20pt run in the title color rather than a semantic heading; levels 1
// and up use the native heading styles, clamped to level 9.
func (b *Builder) AddTitle(text string, level int) *Builder {
	if level <= 0 {
		b.blocks = append(b.blocks, pOut{
			PPr: &pPrOut{Jc: &valOut{Val: "center"}},
			Runs: []rOut{{
				RPr: &rPrOut{
					Bold:   &emptyOut{},
					Color:  &valOut{Val: b.titleColor},
					Size:   &valOut{Val: titleSizeHalfPts},
					SizeCs: &valOut{Val: titleSizeHalfPts},
				},
				Text: textRun(text),
			}},
		})
		return b
	}

	if level > maxHeadingLevel {
		level = maxHeadingLevel
	}
	b.blocks = append(b.blocks, pOut{
		PPr:  &pPrOut{Style: &valOut{Val: fmt.Sprintf("Heading%d", level)}},
		Runs: []rOut{{Text: textRun(text)}},
	})
	return b
}

// ParagraphOptions carries optional paragraph formatting. Zero values
// leave the document defaults untouched.
type ParagraphOptions struct {
	Bold      bool
	Italic    bool
	Alignment string  // left, center, right, justify
	FontSize  float64 // points
	Color     string  // hex RRGGBB without '#'
}

// AddParagraph adds one paragraph containing exactly one run with the
// given formatting.
func (b *Builder) AddParagraph(text string, opts ParagraphOptions) *Builder {
	var ppr *pPrOut
	if jc := alignmentValue(opts.Alignment); jc != "" {
		ppr = &pPrOut{Jc: &valOut{Val: jc}}
	}

	var rpr *rPrOut
	if opts.Bold || opts.Italic || opts.FontSize > 0 || opts.Color != "" {
		rpr = &rPrOut{}
		if opts.Bold {
			rpr.Bold = &emptyOut{}
		}
		if opts.Italic {
			rpr.Italic = &emptyOut{}
		}
		if opts.FontSize > 0 {
			half := fmt.Sprintf("%d", int(opts.FontSize*2))
			rpr.Size = &valOut{Val: half}
			rpr.SizeCs = &valOut{Val: half}
		}
		if opts.Color != "" {
			rpr.Color = &valOut{Val: opts.Color}
		}
	}

	b.blocks = append(b.blocks, pOut{
		PPr:  ppr,
		Runs: []rOut{{RPr: rpr, Text: textRun(text)}},
	})
	return b
}

// alignmentValue maps the alignment vocabulary to OOXML justification
// values. Unknown values render as unset.
func alignmentValue(alignment string) string {
	switch alignment {
	case "left":
		return "left"
	case "center":
		return "center"
	case "right":
		return "right"
	case "justify":
		return "both"
	default:
		return ""
	}
}

// AddTable adds a table sized (1+len(rows)) x len(headers). Header
// cells get bold white text on the fill color; data rows fill cells
// positionally, truncating rows wider than the header and leaving
// short rows' trailing cells empty. A table with no headers is
// skipped.
func (b *Builder) AddTable(headers []string, rows [][]string, headerFill, styleName string) *Builder {
	if len(headers) == 0 {
		return b
	}
	if headerFill == "" {
		headerFill = DefaultHeaderFill
	}

	tbl := newTableOut(len(headers), styleName)

	header := trOut{}
	for _, h := range headers {
		header.Cells = append(header.Cells, shadedCell(h, headerFill, true, "FFFFFF"))
	}
	tbl.Rows = append(tbl.Rows, header)

	for _, row := range rows {
		tr := trOut{}
		for col := 0; col < len(headers); col++ {
			text := ""
			if col < len(row) {
				text = row[col]
			}
			tr.Cells = append(tr.Cells, plainCell(text))
		}
		tbl.Rows = append(tbl.Rows, tr)
	}

	b.blocks = append(b.blocks, tbl)
	return b
}

// KeyValue is one label/value pair for AddKeyValueTable.
type KeyValue struct {
	Key   string
	Value string
}

// AddKeyValueTable lays out pairs two per row across four columns
// (label, value, label, value). An odd pair count leaves the last
// row's third and fourth cells empty. Label cells are bold and shaded.
func (b *Builder) AddKeyValueTable(pairs []KeyValue, labelFill string) *Builder {
	if len(pairs) == 0 {
		return b
	}
	if labelFill == "" {
		labelFill = DefaultLabelFill
	}

	tbl := newTableOut(4, DefaultTableStyle)

	for i := 0; i < len(pairs); i += 2 {
		tr := trOut{
			Cells: []tcOut{
				shadedCell(pairs[i].Key, labelFill, true, ""),
				plainCell(pairs[i].Value),
			},
		}
		if i+1 < len(pairs) {
			tr.Cells = append(tr.Cells,
				shadedCell(pairs[i+1].Key, labelFill, true, ""),
				plainCell(pairs[i+1].Value))
		} else {
			tr.Cells = append(tr.Cells, plainCell(""), plainCell(""))
		}
		tbl.Rows = append(tbl.Rows, tr)
	}

	b.blocks = append(b.blocks, tbl)
	return b
}

// AddList adds one paragraph per item with a literal prefix: "N. " for
// ordered lists, a bullet for unordered. These are plain paragraphs,
// not native numbering.
func (b *Builder) AddList(items []string, ordered bool) *Builder {
	for i, item := range items {
		prefix := "• "
		if ordered {
			prefix = fmt.Sprintf("%d. ", i+1)
		}
		b.blocks = append(b.blocks, pOut{
			Runs: []rOut{{Text: textRun(prefix + item)}},
		})
	}
	return b
}

// AddPageBreak adds a paragraph containing a page break run.
func (b *Builder) AddPageBreak() *Builder {
	b.blocks = append(b.blocks, pOut{
		Runs: []rOut{{Br: &brOut{Type: "page"}}},
	})
	return b
}

// AddEmptyLines adds count empty paragraphs.
func (b *Builder) AddEmptyLines(count int) *Builder {
	for i := 0; i < count; i++ {
		b.blocks = append(b.blocks, pOut{})
	}
	return b
}

// Default fills and table style used when callers pass empty values.
const (
	DefaultHeaderFill = "4472C4"
	DefaultLabelFill  = "D9E2F3"
	DefaultTableStyle = "Table Grid"
)

// newTableOut allocates a bordered table with the given column count.
func newTableOut(cols int, styleName string) tblOut {
	if styleName == "" {
		styleName = DefaultTableStyle
	}
	tbl := tblOut{
		Props: tblPrOut{
			Style:   &valOut{Val: styleID(styleName)},
			Width:   &tblWOut{W: "5000", Type: "pct"},
			Borders: singleBorders(),
		},
	}
	for i := 0; i < cols; i++ {
		tbl.Grid.Cols = append(tbl.Grid.Cols, gridColOut{})
	}
	return tbl
}

// styleID derives a style ID from a display name the way Word does:
// spaces dropped, words kept as-is ("Table Grid" -> "TableGrid").
func styleID(name string) string {
	return strings.ReplaceAll(name, " ", "")
}

// plainCell builds a cell holding one unformatted paragraph.
func plainCell(text string) tcOut {
	return tcOut{Paragraphs: []pOut{{Runs: []rOut{{Text: textRun(text)}}}}}
}

// shadedCell builds a shaded cell with bold text, optionally colored.
func shadedCell(text, fill string, bold bool, color string) tcOut {
	rpr := &rPrOut{}
	if bold {
		rpr.Bold = &emptyOut{}
	}
	if color != "" {
		rpr.Color = &valOut{Val: color}
	}
	return tcOut{
		Props: &tcPrOut{Shading: &shdOut{Val: "clear", Fill: fill}},
		Paragraphs: []pOut{{
			Runs: []rOut{{RPr: rpr, Text: textRun(text)}},
		}},
	}
}

// textRun wraps text for a run, preserving significant whitespace.
func textRun(text string) *tOut {
	t := &tOut{Text: text}
	if text != strings.TrimSpace(text) {
		t.Space = "preserve"
	}
	return t
}
