package docx

import "encoding/xml"

// Marshal-only mirror of the read schema in document.go. Tag names keep
// the literal "w:" prefix; the document root declares the namespace so
// serialized blocks nest directly into word/document.xml.

// pOut represents a paragraph element (<w:p>).
type pOut struct {
	XMLName xml.Name `xml:"w:p"`
	PPr     *pPrOut  `xml:"w:pPr,omitempty"`
	Runs    []rOut
}

// pPrOut represents paragraph properties (<w:pPr>).
type pPrOut struct {
	Style *valOut `xml:"w:pStyle,omitempty"`
	Jc    *valOut `xml:"w:jc,omitempty"`
}

// valOut represents a single-value property element.
type valOut struct {
	Val string `xml:"w:val,attr"`
}

// rOut represents a text run (<w:r>).
type rOut struct {
	XMLName xml.Name `xml:"w:r"`
	RPr     *rPrOut  `xml:"w:rPr,omitempty"`
	Br      *brOut   `xml:"w:br,omitempty"`
	Text    *tOut    `xml:"w:t,omitempty"`
}

// rPrOut represents run properties (<w:rPr>). Fonts stay on the
// document defaults in word/styles.xml; runs never override them.
type rPrOut struct {
	Bold   *emptyOut `xml:"w:b,omitempty"`
	Italic *emptyOut `xml:"w:i,omitempty"`
	Color  *valOut   `xml:"w:color,omitempty"`
	Size   *valOut   `xml:"w:sz,omitempty"`
	SizeCs *valOut   `xml:"w:szCs,omitempty"`
}

// emptyOut represents a presence-only toggle element such as <w:b/>.
type emptyOut struct{}

// tOut represents text content (<w:t>).
type tOut struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Text  string `xml:",chardata"`
}

// brOut represents a break (<w:br>).
type brOut struct {
	Type string `xml:"w:type,attr,omitempty"` // page, column, textWrapping
}

// tblOut represents a table (<w:tbl>).
type tblOut struct {
	XMLName xml.Name   `xml:"w:tbl"`
	Props   tblPrOut   `xml:"w:tblPr"`
	Grid    tblGridOut `xml:"w:tblGrid"`
	Rows    []trOut
}

// tblPrOut represents table properties.
type tblPrOut struct {
	Style   *valOut        `xml:"w:tblStyle,omitempty"`
	Width   *tblWOut       `xml:"w:tblW,omitempty"`
	Borders *tblBordersOut `xml:"w:tblBorders,omitempty"`
}

// tblWOut represents table width.
type tblWOut struct {
	W    string `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"` // dxa, pct, auto
}

// tblBordersOut represents table borders.
type tblBordersOut struct {
	Top     borderOut `xml:"w:top"`
	Left    borderOut `xml:"w:left"`
	Bottom  borderOut `xml:"w:bottom"`
	Right   borderOut `xml:"w:right"`
	InsideH borderOut `xml:"w:insideH"`
	InsideV borderOut `xml:"w:insideV"`
}

// borderOut represents a single border edge.
type borderOut struct {
	Val   string `xml:"w:val,attr"`
	Sz    string `xml:"w:sz,attr,omitempty"`
	Color string `xml:"w:color,attr,omitempty"`
}

// singleBorders returns thin single-line borders on all edges.
func singleBorders() *tblBordersOut {
	edge := borderOut{Val: "single", Sz: "4", Color: "auto"}
	return &tblBordersOut{
		Top: edge, Left: edge, Bottom: edge, Right: edge,
		InsideH: edge, InsideV: edge,
	}
}

// tblGridOut represents the table grid definition.
type tblGridOut struct {
	Cols []gridColOut `xml:"w:gridCol"`
}

// gridColOut represents a grid column.
type gridColOut struct {
	W string `xml:"w:w,attr,omitempty"`
}

// trOut represents a table row (<w:tr>).
type trOut struct {
	XMLName xml.Name `xml:"w:tr"`
	Cells   []tcOut
}

// tcOut represents a table cell (<w:tc>).
type tcOut struct {
	XMLName    xml.Name `xml:"w:tc"`
	Props      *tcPrOut `xml:"w:tcPr,omitempty"`
	Paragraphs []pOut
}

// tcPrOut represents cell properties.
type tcPrOut struct {
	Shading *shdOut `xml:"w:shd,omitempty"`
}

// shdOut represents cell shading (<w:shd>).
type shdOut struct {
	Val  string `xml:"w:val,attr"`
	Fill string `xml:"w:fill,attr"`
}
