package docforge

import "github.com/tsawler/docforge/docx"

// BuildOptions holds document-wide styling for the writer pipeline.
// Zero values keep the builder defaults.
type BuildOptions struct {
	// Font is the document default font name.
	Font string

	// TitleColor is the hex RRGGBB color for level-0 titles.
	TitleColor string
}

// apply configures a builder with the options.
func (o BuildOptions) apply(b *docx.Builder) *docx.Builder {
	return b.WithFont(o.Font).WithTitleColor(o.TitleColor)
}

// NewWithOptions returns a Builder for an empty document with the
// given styling applied.
func NewWithOptions(o BuildOptions) *docx.Builder {
	return o.apply(docx.NewBuilder())
}

// NewFromTemplateWithOptions returns a template-seeded Builder with
// the given styling applied.
func NewFromTemplateWithOptions(path string, o BuildOptions) (*docx.Builder, error) {
	b, err := docx.NewBuilderFromTemplate(path)
	if err != nil {
		return nil, err
	}
	return o.apply(b), nil
}
