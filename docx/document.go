package docx

import (
	"encoding/xml"
	"io"
)

// documentXML represents the structure of word/document.xml
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML represents the document body. Elements preserves document
// order across paragraphs and tables, which xml.Unmarshal's per-field
// collection would lose; it is populated by a custom unmarshaler.
type bodyXML struct {
	Elements []bodyElement
}

// bodyElement represents one element in the document body. Exactly one
// of Paragraph or Table is set; all other body children are ignored.
type bodyElement struct {
	Paragraph *paragraphXML
	Table     *tableXML
}

// UnmarshalXML decodes body children one token at a time so that
// paragraphs and tables keep their original interleaving.
func (b *bodyXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				var p paragraphXML
				if err := d.DecodeElement(&p, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, bodyElement{Paragraph: &p})
			case "tbl":
				var tbl tableXML
				if err := d.DecodeElement(&tbl, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, bodyElement{Table: &tbl})
			default:
				// sectPr, bookmarks, sdt wrappers and anything else
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

// paragraphXML represents a paragraph element (<w:p>).
type paragraphXML struct {
	XMLName    xml.Name          `xml:"p"`
	Properties paragraphPropsXML `xml:"pPr"`
	Runs       []runXML          `xml:"r"`
	Hyperlinks []hyperlinkXML    `xml:"hyperlink"`
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style         styleRefXML      `xml:"pStyle"`
	Justification justificationXML `xml:"jc"`
}

// styleRefXML represents a style reference.
type styleRefXML struct {
	Val string `xml:"val,attr"`
}

// justificationXML represents text justification.
type justificationXML struct {
	Val string `xml:"val,attr"` // left, center, right, both
}

// runXML represents a text run (<w:r>).
type runXML struct {
	XMLName    xml.Name    `xml:"r"`
	Properties runPropsXML `xml:"rPr"`
	Text       []textXML   `xml:"t"`
	Tabs       []tabXML    `xml:"tab"`
	Breaks     []breakXML  `xml:"br"`
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Bold     boolXML  `xml:"b"`
	Italic   boolXML  `xml:"i"`
	FontSize sizeXML  `xml:"sz"`
	Color    colorXML `xml:"color"`
}

// boolXML represents a boolean toggle element. Presence means true
// unless val says otherwise.
type boolXML struct {
	XMLName xml.Name
	Val     string `xml:"val,attr"`
}

// sizeXML represents font size (in half-points).
type sizeXML struct {
	Val string `xml:"val,attr"`
}

// colorXML represents text color.
type colorXML struct {
	Val string `xml:"val,attr"` // Hex color or "auto"
}

// textXML represents text content (<w:t>).
type textXML struct {
	XMLName xml.Name `xml:"t"`
	Space   string   `xml:"space,attr"` // preserve
	Value   string   `xml:",chardata"`
}

// tabXML represents a tab character.
type tabXML struct {
	XMLName xml.Name `xml:"tab"`
}

// breakXML represents a break (line or page).
type breakXML struct {
	XMLName xml.Name `xml:"br"`
	Type    string   `xml:"type,attr"` // page, column, textWrapping
}

// hyperlinkXML represents a hyperlink wrapping its own runs.
type hyperlinkXML struct {
	ID   string   `xml:"id,attr"`
	Runs []runXML `xml:"r"`
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	XMLName    xml.Name      `xml:"tbl"`
	Properties tablePropsXML `xml:"tblPr"`
	Grid       tableGridXML  `xml:"tblGrid"`
	Rows       []tableRowXML `xml:"tr"`
}

// tablePropsXML represents table properties.
type tablePropsXML struct {
	Style styleRefXML `xml:"tblStyle"`
}

// tableGridXML represents table grid definition.
type tableGridXML struct {
	Cols []gridColXML `xml:"gridCol"`
}

// gridColXML represents a grid column.
type gridColXML struct {
	W string `xml:"w,attr"` // Width in twips
}

// tableRowXML represents a table row (<w:tr>).
type tableRowXML struct {
	XMLName xml.Name       `xml:"tr"`
	Cells   []tableCellXML `xml:"tc"`
}

// tableCellXML represents a table cell (<w:tc>).
type tableCellXML struct {
	XMLName    xml.Name       `xml:"tc"`
	Paragraphs []paragraphXML `xml:"p"`
}
