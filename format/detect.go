// Package format provides input and output format detection for the
// docforge tools.
package format

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// Output represents a reader output format.
type Output int

const (
	// OutputMarkdown renders headings, lists, and pipe tables.
	OutputMarkdown Output = iota
	// OutputText renders plain text only.
	OutputText
)

// String returns the string representation of the output format.
func (o Output) String() string {
	switch o {
	case OutputText:
		return "text"
	default:
		return "markdown"
	}
}

// ParseOutput parses an output format name.
func ParseOutput(s string) (Output, error) {
	switch strings.ToLower(s) {
	case "text":
		return OutputText, nil
	case "markdown", "md":
		return OutputMarkdown, nil
	default:
		return OutputMarkdown, fmt.Errorf("unknown output format %q", s)
	}
}

// Content represents a writer input content format.
type Content int

const (
	// ContentAuto defers to DetectContent.
	ContentAuto Content = iota
	// ContentJSON is the structured element-list schema.
	ContentJSON
	// ContentMarkdown is the supported markdown subset.
	ContentMarkdown
)

// String returns the string representation of the content format.
func (c Content) String() string {
	switch c {
	case ContentJSON:
		return "json"
	case ContentMarkdown:
		return "markdown"
	default:
		return "auto"
	}
}

// ParseContent parses a content format name.
func ParseContent(s string) (Content, error) {
	switch strings.ToLower(s) {
	case "json":
		return ContentJSON, nil
	case "markdown", "md":
		return ContentMarkdown, nil
	case "auto":
		return ContentAuto, nil
	default:
		return ContentAuto, fmt.Errorf("unknown content format %q", s)
	}
}

// DetectContent resolves ContentAuto for a piece of content. When the
// content came from a file, the extension decides: .json is JSON,
// .md/.markdown is markdown. Without a deciding extension the data is
// tried as JSON and falls back to markdown.
func DetectContent(path string, data []byte) Content {
	if path != "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			return ContentJSON
		case ".md", ".markdown":
			return ContentMarkdown
		}
	}

	if json.Valid(data) && looksStructured(data) {
		return ContentJSON
	}
	return ContentMarkdown
}

// looksStructured reports whether data starts like a JSON object or
// array. Bare JSON scalars ("42", "true") read better as markdown.
func looksStructured(data []byte) bool {
	trimmed := strings.TrimSpace(string(data))
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}

// IsDOCX reports whether a filename carries the .docx extension.
func IsDOCX(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".docx")
}

// ForceDOCXExt makes sure the path ends in .docx, replacing any other
// extension.
func ForceDOCXExt(path string) string {
	if IsDOCX(path) {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".docx"
}
