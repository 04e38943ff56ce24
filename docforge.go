// Package docforge converts between DOCX documents and plain text or
// markdown.
//
// Reading:
//
//	md, err := docforge.Open("report.docx").Markdown()
//	if err != nil {
//	    // handle error
//	}
//
// Writing:
//
//	err := docforge.New().
//	    AddTitle("Report", 0).
//	    AddParagraph("Quarterly results.", docx.ParagraphOptions{}).
//	    Save("report.docx")
//
// The lower-level docx package exposes the Reader and Builder directly;
// the convert package turns JSON element lists and markdown into
// Builder operations.
package docforge

import (
	"github.com/tsawler/docforge/docx"
	"github.com/tsawler/docforge/format"
)

// Converter reads a DOCX file and renders its content. The file is
// opened lazily by the terminal operations.
type Converter struct {
	filename string
}

// Open prepares a DOCX file for conversion.
//
// Example:
//
//	text, err := docforge.Open("document.docx").Text()
func Open(filename string) *Converter {
	return &Converter{filename: filename}
}

// Text renders the document as plain text.
func (c *Converter) Text() (string, error) {
	return c.Render(format.OutputText)
}

// Markdown renders the document as markdown.
func (c *Converter) Markdown() (string, error) {
	return c.Render(format.OutputMarkdown)
}

// Render renders the document in the given output format.
func (c *Converter) Render(o format.Output) (string, error) {
	r, err := docx.Open(c.filename)
	if err != nil {
		return "", err
	}
	defer r.Close()

	if o == format.OutputText {
		return r.Text()
	}
	return r.Markdown()
}

// New returns a Builder for an empty document.
func New() *docx.Builder {
	return docx.NewBuilder()
}

// NewFromTemplate returns a Builder seeded from an existing package.
func NewFromTemplate(path string) (*docx.Builder, error) {
	return docx.NewBuilderFromTemplate(path)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	md := docforge.Must(docforge.Open("document.docx").Markdown())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
