package convert

import (
	"archive/zip"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/docforge/docx"
)

// applyAndRead decodes a JSON document, applies it, and reads the
// saved result back as plain text.
func applyAndRead(t *testing.T, input string) string {
	t.Helper()

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(input), &doc))

	b := docx.NewBuilder()
	ApplyElements(b, doc)

	path := filepath.Join(t.TempDir(), "out.docx")
	require.NoError(t, b.Save(path))

	r, err := docx.Open(path)
	require.NoError(t, err)
	defer r.Close()

	text, err := r.Text()
	require.NoError(t, err)
	return text
}

func TestApplyElements_TitleAndOrderedList(t *testing.T) {
	input := `{"elements":[
		{"type":"title","text":"Report","level":0},
		{"type":"list","items":["a","b"],"ordered":true}
	]}`

	got := applyAndRead(t, input)
	assert.Equal(t, "Report\n\n1. a\n\n2. b", got)
}

func TestApplyElements_UnknownTypeSkipped(t *testing.T) {
	input := `{"elements":[
		{"type":"paragraph","text":"kept"},
		{"type":"hologram","text":"dropped"},
		{"type":"paragraph","text":"also kept"}
	]}`

	got := applyAndRead(t, input)
	assert.Equal(t, "kept\n\nalso kept", got)
}

func TestApplyElements_Table(t *testing.T) {
	input := `{"elements":[
		{"type":"table","headers":["A","B"],"rows":[["1","2"]]}
	]}`

	got := applyAndRead(t, input)
	assert.Equal(t, "A | B\n1 | 2", got)
}

// applyAndSave decodes a JSON document, applies it, and returns the
// raw word/document.xml of the saved package.
func applyAndSave(t *testing.T, input string) string {
	t.Helper()

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(input), &doc))

	b := docx.NewBuilder()
	ApplyElements(b, doc)

	path := filepath.Join(t.TempDir(), "out.docx")
	require.NoError(t, b.Save(path))

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(data)
		}
	}
	t.Fatal("word/document.xml not found")
	return ""
}

func TestApplyElements_KeyValueTableArraySchema(t *testing.T) {
	input := `{"elements":[
		{"type":"key_value_table","data":[
			{"key":"Author","value":"Finance"},
			{"key":"Period","value":"Q3"},
			{"key":"Status","value":"Final"}
		]}
	]}`

	got := applyAndRead(t, input)
	assert.Equal(t, "Author | Finance | Period | Q3\nStatus | Final |  | ", got)
}

func TestApplyElements_KeyValueTableArrayNonStringValues(t *testing.T) {
	input := `{"elements":[
		{"type":"key_value_table","data":[
			{"key":"Count","value":3},
			{"key":"Final","value":true}
		]}
	]}`

	got := applyAndRead(t, input)
	assert.Equal(t, "Count | 3 | Final | true", got)
}

func TestApplyElements_KeyValueTableOrderPreserved(t *testing.T) {
	input := `{"elements":[
		{"type":"key_value_table","data":{"Zeta":"1","Alpha":"2","Mid":"3"}}
	]}`

	// Keys keep input order, not sorted order.
	got := applyAndRead(t, input)
	assert.Equal(t, "Zeta | 1 | Alpha | 2\nMid | 3 |  | ", got)
}

func TestApplyElements_HeadingDefaultsToLevelOne(t *testing.T) {
	input := `{"elements":[{"type":"heading","text":"Section"}]}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(input), &doc))

	b := docx.NewBuilder()
	ApplyElements(b, doc)

	path := filepath.Join(t.TempDir(), "out.docx")
	require.NoError(t, b.Save(path))

	r, err := docx.Open(path)
	require.NoError(t, err)
	defer r.Close()

	md, err := r.Markdown()
	require.NoError(t, err)
	assert.Equal(t, "# Section", md)
}

func TestApplyElements_HeadingExplicitLevelZero(t *testing.T) {
	// An explicit level 0 is not the same as an absent level: it gets
	// the title treatment, not Heading 1.
	input := `{"elements":[{"type":"heading","text":"Cover","level":0}]}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(input), &doc))

	b := docx.NewBuilder()
	ApplyElements(b, doc)

	path := filepath.Join(t.TempDir(), "out.docx")
	require.NoError(t, b.Save(path))

	r, err := docx.Open(path)
	require.NoError(t, err)
	defer r.Close()

	md, err := r.Markdown()
	require.NoError(t, err)
	assert.Equal(t, "Cover", md)
}

func TestApplyElements_EmptyLinesExplicitZero(t *testing.T) {
	input := `{"elements":[
		{"type":"paragraph","text":"a"},
		{"type":"empty_lines","count":0}
	]}`

	doc := applyAndSave(t, input)
	assert.Zero(t, strings.Count(doc, "<w:p></w:p>"),
		"count 0 must add no empty paragraphs")
}

func TestApplyElements_EmptyLinesDefaultCount(t *testing.T) {
	input := `{"elements":[
		{"type":"paragraph","text":"a"},
		{"type":"empty_lines"},
		{"type":"paragraph","text":"b"}
	]}`

	// Empty paragraphs are invisible to the reader; this just checks
	// the element doesn't derail the pipeline.
	got := applyAndRead(t, input)
	assert.Equal(t, "a\n\nb", got)
}

func TestColor_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"rgb triple", `[31,78,121]`, "1F4E79"},
		{"triple clamped", `[300,-5,0]`, "FF0000"},
		{"hex string with hash", `"#2E74B5"`, "2E74B5"},
		{"bare hex string", `"2E74B5"`, "2E74B5"},
		{"css rgb string", `"rgb(31,78,121)"`, "1F4E79"},
		{"wrong triple length", `[1,2]`, ""},
		{"garbage string", `"not a color"`, ""},
		{"wrong type", `{"r":1}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Color
			require.NoError(t, json.Unmarshal([]byte(tt.input), &c))
			assert.Equal(t, tt.want, c.Hex)
		})
	}
}

func TestPairs_UnmarshalJSON(t *testing.T) {
	var p Pairs
	require.NoError(t, json.Unmarshal([]byte(`{"a":"1","b":2,"c":true}`), &p))

	assert.Equal(t, Pairs{
		{Key: "a", Value: "1"},
		{Key: "b", Value: "2"},
		{Key: "c", Value: "true"},
	}, p)
}
