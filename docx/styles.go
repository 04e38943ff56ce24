package docx

import "encoding/xml"

// stylesXML represents the structure of word/styles.xml
type stylesXML struct {
	XMLName xml.Name      `xml:"styles"`
	Styles  []styleDefXML `xml:"style"`
}

// styleDefXML represents a style definition.
type styleDefXML struct {
	XMLName xml.Name     `xml:"style"`
	Type    string       `xml:"type,attr"` // paragraph, character, table, numbering
	StyleID string       `xml:"styleId,attr"`
	Name    styleNameXML `xml:"name"`
	BasedOn basedOnXML   `xml:"basedOn"`
}

// styleNameXML represents a style's display name.
type styleNameXML struct {
	Val string `xml:"val,attr"`
}

// basedOnXML represents parent style reference.
type basedOnXML struct {
	Val string `xml:"val,attr"`
}

// styleNames maps style IDs to display names. The display name is what
// heading classification matches against; Word localizes it while the
// style ID stays stable.
type styleNames struct {
	names map[string]string
}

// newStyleNames builds the lookup from parsed styles. A nil styles
// document yields an empty lookup; callers fall back to the style ID.
func newStyleNames(styles *stylesXML) *styleNames {
	sn := &styleNames{names: make(map[string]string)}
	if styles == nil {
		return sn
	}
	for _, s := range styles.Styles {
		if s.StyleID != "" && s.Name.Val != "" {
			sn.names[s.StyleID] = normalizeBuiltinName(s.Name.Val)
		}
	}
	return sn
}

// normalizeBuiltinName maps the lowercase built-in heading names some
// packages store ("heading 1") to the canonical form Word displays
// ("Heading 1"). Other names pass through unchanged.
func normalizeBuiltinName(name string) string {
	if len(name) == len("heading N") && name[:8] == "heading " &&
		name[8] >= '1' && name[8] <= '9' {
		return "Heading " + name[8:]
	}
	return name
}

// Lookup returns the display name for a style ID, or the ID itself when
// the package carries no definition for it.
func (sn *styleNames) Lookup(styleID string) string {
	if name, ok := sn.names[styleID]; ok {
		return name
	}
	return styleID
}
