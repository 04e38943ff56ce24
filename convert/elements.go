// Package convert turns writer input content (a JSON element list or a
// markdown subset) into docx.Builder operations.
package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	colors "gopkg.in/go-playground/colors.v1"

	"github.com/tsawler/docforge/docx"
)

// Document is the structured-input schema: an ordered element list.
type Document struct {
	Elements []Element `json:"elements"`
}

// Element is one tagged record of the structured-input schema. Fields
// beyond Type apply per element type; missing optional fields take
// documented defaults.
type Element struct {
	Type        string     `json:"type"`
	Text        string     `json:"text"`
	Level       *int       `json:"level"`
	Bold        bool       `json:"bold"`
	Italic      bool       `json:"italic"`
	Alignment   string     `json:"alignment"`
	FontSize    float64    `json:"font_size"`
	Color       Color      `json:"color"`
	Headers     []string   `json:"headers"`
	Rows        [][]string `json:"rows"`
	HeaderColor Color      `json:"header_color"`
	LabelColor  Color      `json:"label_color"`
	Style       string     `json:"style"`
	Data        Pairs      `json:"data"`
	Items       []string   `json:"items"`
	Ordered     bool       `json:"ordered"`
	Count       *int       `json:"count"`
}

// intOr returns *v, or def when the field was absent from the input.
// An explicit zero is meaningful for both heading levels and empty
// line counts, so absence and zero must stay distinguishable.
func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

// Color accepts either an RGB triple ([31,78,121]) or a CSS-style
// string ("#1F4E79", "rgb(31,78,121)") and normalizes to hex RRGGBB.
// Values that don't parse leave the color unset rather than failing;
// styling is best-effort.
type Color struct {
	Hex string
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Color) UnmarshalJSON(data []byte) error {
	var triple []int
	if err := json.Unmarshal(data, &triple); err == nil {
		if len(triple) == 3 {
			c.Hex = fmt.Sprintf("%02X%02X%02X",
				clampByte(triple[0]), clampByte(triple[1]), clampByte(triple[2]))
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	c.Hex = ParseColor(s)
	return nil
}

// ParseColor parses a color string to hex RRGGBB without '#'. Bare hex
// digits are accepted alongside the CSS forms; unparseable input
// yields the empty string.
func ParseColor(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if isBareHex(s) {
		s = "#" + s
	}
	parsed, err := colors.Parse(s)
	if err != nil {
		return ""
	}
	rgb := parsed.ToRGB()
	return fmt.Sprintf("%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

func isBareHex(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Pairs is an ordered key/value list. It decodes from either an array
// of {"key":..., "value":...} objects or, as a shorthand, a plain JSON
// object whose keys keep their input order (which a map would lose).
type Pairs []docx.KeyValue

// UnmarshalJSON implements json.Unmarshaler.
func (p *Pairs) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		// Scalar; leave empty.
		return nil
	}

	if delim == '[' {
		for dec.More() {
			var entry struct {
				Key   json.RawMessage `json:"key"`
				Value json.RawMessage `json:"value"`
			}
			if err := dec.Decode(&entry); err != nil {
				return err
			}
			*p = append(*p, docx.KeyValue{
				Key:   rawText(entry.Key),
				Value: rawText(entry.Value),
			})
		}
		return nil
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		*p = append(*p, docx.KeyValue{Key: key, Value: rawText(raw)})
	}

	return nil
}

// rawText renders a JSON value as cell text: strings decode, numbers
// and booleans stringify as their literal text, absent values are
// empty.
func rawText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return string(bytes.TrimSpace(raw))
	}
	return s
}

// ApplyElements dispatches each element to the corresponding builder
// operation. Unknown element types are skipped without error.
func ApplyElements(b *docx.Builder, doc Document) {
	for _, el := range doc.Elements {
		switch el.Type {
		case "title":
			b.AddTitle(el.Text, intOr(el.Level, 0))
		case "heading":
			b.AddTitle(el.Text, intOr(el.Level, 1))
		case "paragraph":
			b.AddParagraph(el.Text, docx.ParagraphOptions{
				Bold:      el.Bold,
				Italic:    el.Italic,
				Alignment: el.Alignment,
				FontSize:  el.FontSize,
				Color:     el.Color.Hex,
			})
		case "table":
			b.AddTable(el.Headers, el.Rows, el.HeaderColor.Hex, el.Style)
		case "key_value_table":
			b.AddKeyValueTable(el.Data, el.LabelColor.Hex)
		case "list":
			b.AddList(el.Items, el.Ordered)
		case "page_break":
			b.AddPageBreak()
		case "empty_lines":
			b.AddEmptyLines(intOr(el.Count, 1))
		}
	}
}
