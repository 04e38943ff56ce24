package docforge

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/docforge/docx"
	"github.com/tsawler/docforge/format"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.docx")

	err := New().
		AddTitle("Quarterly Report", 0).
		AddTitle("Summary", 1).
		AddParagraph("Revenue grew.", docx.ParagraphOptions{}).
		AddTable([]string{"Region", "Total"}, [][]string{{"East", "10"}, {"West", "12"}}, "", "").
		Save(path)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	md, err := Open(path).Markdown()
	if err != nil {
		t.Fatalf("Markdown() error = %v", err)
	}

	want := "Quarterly Report\n\n# Summary\n\nRevenue grew.\n\n" +
		"| Region | Total |\n| --- | --- |\n| East | 10 |\n| West | 12 |"
	if md != want {
		t.Errorf("Markdown() = %q, want %q", md, want)
	}

	text, err := Open(path).Text()
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if !strings.Contains(text, "Region | Total") {
		t.Errorf("Text() = %q, want pipe-joined table row", text)
	}
}

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.docx")
	if err := New().AddTitle("Intro", 1).Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	md, err := Open(path).Render(format.OutputMarkdown)
	if err != nil {
		t.Fatalf("Render(markdown) error = %v", err)
	}
	if md != "# Intro" {
		t.Errorf("Render(markdown) = %q, want %q", md, "# Intro")
	}

	text, err := Open(path).Render(format.OutputText)
	if err != nil {
		t.Fatalf("Render(text) error = %v", err)
	}
	if text != "Intro" {
		t.Errorf("Render(text) = %q, want %q", text, "Intro")
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open("no-such-file.docx").Text()
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var openErr *docx.OpenError
	if !errors.As(err, &openErr) {
		t.Errorf("error type = %T, want *docx.OpenError", err)
	}
}

func TestNewWithOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styled.docx")

	err := NewWithOptions(BuildOptions{Font: "Georgia", TitleColor: "2E74B5"}).
		AddTitle("Styled", 0).
		Save(path)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	text, err := Open(path).Text()
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if text != "Styled" {
		t.Errorf("Text() = %q, want %q", text, "Styled")
	}
}

func TestNewFromTemplateWithOptions_Invalid(t *testing.T) {
	if _, err := NewFromTemplateWithOptions("no-such-template.docx", BuildOptions{}); err == nil {
		t.Fatal("expected error for missing template")
	}
}

func TestMust(t *testing.T) {
	if got := Must("value", nil); got != "value" {
		t.Errorf("Must() = %q, want %q", got, "value")
	}

	defer func() {
		if recover() == nil {
			t.Error("Must() with error should panic")
		}
	}()
	Must("", errors.New("boom"))
}
