// Package docx provides DOCX (Office Open XML) document reading and
// writing: a Reader that walks body content in document order, and a
// Builder that assembles new packages from a fixed vocabulary of
// operations (titles, paragraphs, tables, lists, page breaks).
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Reader provides access to DOCX document content.
type Reader struct {
	path      string
	zipReader *zip.ReadCloser
	document  *documentXML
	styles    *stylesXML
	names     *styleNames
}

// Open opens a DOCX file for reading. Failures to open or to decode the
// main document part are reported as *OpenError; the caller owns the
// returned Reader and must Close it.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, &OpenError{Path: filename, Err: err}
	}

	r := &Reader{
		path:      filename,
		zipReader: zr,
	}

	if err := r.validate(); err != nil {
		zr.Close()
		return nil, &OpenError{Path: filename, Err: err}
	}

	if err := r.parseDocument(); err != nil {
		zr.Close()
		return nil, &OpenError{Path: filename, Err: err}
	}

	// Styles are optional; without them heading classification falls
	// back to style IDs.
	r.parseStyles()
	r.names = newStyleNames(r.styles)

	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.zipReader != nil {
		err := r.zipReader.Close()
		r.zipReader = nil
		return err
	}
	return nil
}

// validate checks that required DOCX package parts exist.
func (r *Reader) validate() error {
	required := []string{
		"[Content_Types].xml",
		"word/document.xml",
	}

	fileMap := make(map[string]bool)
	for _, f := range r.zipReader.File {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// parseDocument parses the main document content.
func (r *Reader) parseDocument() error {
	data, err := r.getFileContent("word/document.xml")
	if err != nil {
		return err
	}

	r.document = &documentXML{}
	if err := xml.Unmarshal(data, r.document); err != nil {
		return fmt.Errorf("unmarshaling document.xml: %w", err)
	}

	return nil
}

// parseStyles parses the styles definition file. Styles are optional.
func (r *Reader) parseStyles() {
	data, err := r.getFileContent("word/styles.xml")
	if err != nil {
		return
	}

	styles := &stylesXML{}
	if err := xml.Unmarshal(data, styles); err != nil {
		return
	}
	r.styles = styles
}

// elements returns the body elements in document order.
func (r *Reader) elements() []bodyElement {
	if r.document == nil || r.document.Body == nil {
		return nil
	}
	return r.document.Body.Elements
}

// styleName resolves a paragraph's style ID to its display name.
func (r *Reader) styleName(styleID string) string {
	if styleID == "" {
		return ""
	}
	return r.names.Lookup(styleID)
}

// paragraphText extracts the combined text of a paragraph, including
// hyperlink runs, with tabs and line breaks rendered as characters.
func paragraphText(p *paragraphXML) string {
	var sb strings.Builder
	for _, run := range p.Runs {
		sb.WriteString(runText(run))
	}
	for _, link := range p.Hyperlinks {
		for _, run := range link.Runs {
			sb.WriteString(runText(run))
		}
	}
	return sb.String()
}

// runText extracts text from a run element.
func runText(run runXML) string {
	var parts []string

	for _, t := range run.Text {
		parts = append(parts, t.Value)
	}

	for range run.Tabs {
		parts = append(parts, "\t")
	}

	for _, br := range run.Breaks {
		if br.Type == "page" {
			parts = append(parts, "\n\n")
		} else {
			parts = append(parts, "\n")
		}
	}

	return strings.Join(parts, "")
}

// cellText extracts the combined text of a table cell. Paragraphs
// within one cell are joined with newlines; rendering flattens them.
func cellText(cell tableCellXML) string {
	var parts []string
	for i := range cell.Paragraphs {
		if text := paragraphText(&cell.Paragraphs[i]); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}
