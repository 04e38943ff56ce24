package convert

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/tsawler/docforge/docx"
	"github.com/tsawler/docforge/format"
)

// FormatError indicates writer input that is neither valid structured
// JSON nor usable markdown.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("content format: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Build converts content into builder operations. ContentAuto is
// resolved against the data first; JSON content that fails to decode
// reports a *FormatError.
func Build(b *docx.Builder, data []byte, f format.Content) error {
	if f == format.ContentAuto {
		f = format.DetectContent("", data)
	}

	switch f {
	case format.ContentJSON:
		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return &FormatError{Err: errors.Wrap(err, "decoding element list")}
		}
		ApplyElements(b, doc)
	default:
		ApplyMarkdown(b, string(data))
	}

	return nil
}

// LoadContent resolves the --content argument: when it names an
// existing file the file is read and its path returned for extension
// based detection; otherwise the argument itself is the content.
func LoadContent(arg string) (data []byte, path string, err error) {
	info, statErr := os.Stat(arg)
	if statErr == nil && !info.IsDir() {
		data, err = os.ReadFile(arg)
		if err != nil {
			return nil, "", errors.Wrapf(err, "reading content file %s", arg)
		}
		return data, arg, nil
	}
	return []byte(arg), "", nil
}
