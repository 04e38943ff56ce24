package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Package part templates. The body placeholder in documentTemplate is
// filled with the serialized blocks; everything else is static apart
// from the default font and timestamps.
const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
  <Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
  <Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
  <Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>
</Types>`

	packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>
</Relationships>`

	documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

	documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

	documentFooter = `<w:sectPr><w:pgSz w:w="12240" w:h="15840"/><w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="720"/></w:sectPr></w:body></w:document>`

	appPropsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">
  <Application>docforge</Application>
</Properties>`
)

// corePropsXML builds docProps/core.xml with creation timestamps.
func corePropsXML(now time.Time) string {
	ts := now.UTC().Format(time.RFC3339)
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <dc:creator>docforge</dc:creator>
  <cp:lastModifiedBy>docforge</cp:lastModifiedBy>
  <dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>
  <dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>
</cp:coreProperties>`, ts, ts)
}

// stylesPartXML builds word/styles.xml: document defaults carrying the
// chosen font, the built-in heading styles the builder references, and
// the Table Grid style.
func stylesPartXML(font string) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:docDefaults>
    <w:rPrDefault>
      <w:rPr>
        <w:rFonts w:ascii="` + xmlEscapeAttr(font) + `" w:hAnsi="` + xmlEscapeAttr(font) + `" w:eastAsia="` + xmlEscapeAttr(font) + `"/>
        <w:sz w:val="22"/>
        <w:szCs w:val="22"/>
      </w:rPr>
    </w:rPrDefault>
    <w:pPrDefault/>
  </w:docDefaults>
  <w:style w:type="paragraph" w:default="1" w:styleId="Normal">
    <w:name w:val="Normal"/>
  </w:style>
`)

	// Heading sizes in half-points, largest first, flat from level 4.
	sizes := []string{"32", "26", "24", "22", "22", "22", "22", "22", "22"}
	for level := 1; level <= maxHeadingLevel; level++ {
		fmt.Fprintf(&sb, `  <w:style w:type="paragraph" w:styleId="Heading%d">
    <w:name w:val="Heading %d"/>
    <w:basedOn w:val="Normal"/>
    <w:pPr>
      <w:outlineLvl w:val="%d"/>
    </w:pPr>
    <w:rPr>
      <w:color w:val="2F5496"/>
      <w:sz w:val="%s"/>
      <w:szCs w:val="%s"/>
    </w:rPr>
  </w:style>
`, level, level, level-1, sizes[level-1], sizes[level-1])
	}

	sb.WriteString(`  <w:style w:type="table" w:styleId="TableGrid">
    <w:name w:val="Table Grid"/>
    <w:tblPr>
      <w:tblBorders>
        <w:top w:val="single" w:sz="4" w:color="auto"/>
        <w:left w:val="single" w:sz="4" w:color="auto"/>
        <w:bottom w:val="single" w:sz="4" w:color="auto"/>
        <w:right w:val="single" w:sz="4" w:color="auto"/>
        <w:insideH w:val="single" w:sz="4" w:color="auto"/>
        <w:insideV w:val="single" w:sz="4" w:color="auto"/>
      </w:tblBorders>
    </w:tblPr>
  </w:style>
</w:styles>`)
	return sb.String()
}

// xmlEscapeAttr escapes a string for use inside an XML attribute value.
func xmlEscapeAttr(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// serializeBlocks marshals the accumulated blocks into body XML.
func (b *Builder) serializeBlocks() ([]byte, error) {
	var buf bytes.Buffer
	for _, block := range b.blocks {
		data, err := xml.Marshal(block)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	return buf.Bytes(), nil
}

// Save assembles the package and writes it to path. On any failure the
// returned error is a *WriteError and the output must not be treated
// as written.
func (b *Builder) Save(path string) error {
	body, err := b.serializeBlocks()
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	var saveErr error
	if b.templatePath != "" {
		saveErr = b.writeFromTemplate(f, body)
	} else {
		saveErr = b.writePackage(f, body)
	}

	if closeErr := f.Close(); saveErr == nil {
		saveErr = closeErr
	}
	if saveErr != nil {
		os.Remove(path)
		return &WriteError{Path: path, Err: saveErr}
	}
	return nil
}

// writePackage writes a complete package from scratch.
func (b *Builder) writePackage(w io.Writer, body []byte) error {
	zw := zip.NewWriter(w)

	document := documentHeader + string(body) + documentFooter

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/document.xml", document},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesPartXML(b.font)},
		{"docProps/core.xml", corePropsXML(time.Now())},
		{"docProps/app.xml", appPropsXML},
	}

	for _, part := range parts {
		pw, err := zw.Create(part.name)
		if err != nil {
			return err
		}
		if _, err := pw.Write([]byte(part.content)); err != nil {
			return err
		}
	}

	return zw.Close()
}

// writeFromTemplate copies every part of the template package verbatim
// except word/document.xml, whose body receives the new content
// appended before the closing section properties.
func (b *Builder) writeFromTemplate(w io.Writer, body []byte) error {
	zr, err := zip.OpenReader(b.templatePath)
	if err != nil {
		return err
	}
	defer zr.Close()

	zw := zip.NewWriter(w)

	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return err
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return err
		}

		if f.Name == "word/document.xml" {
			data, err = spliceBody(data, body)
			if err != nil {
				return err
			}
		}

		pw, err := zw.Create(f.Name)
		if err != nil {
			return err
		}
		if _, err := pw.Write(data); err != nil {
			return err
		}
	}

	return zw.Close()
}

// spliceBody inserts serialized blocks into an existing document.xml,
// before the section properties when present, otherwise just before
// the body closes.
func spliceBody(document, body []byte) ([]byte, error) {
	doc := string(document)

	idx := strings.LastIndex(doc, "<w:sectPr")
	if idx < 0 {
		idx = strings.LastIndex(doc, "</w:body>")
	}
	if idx < 0 {
		return nil, fmt.Errorf("template document.xml has no body")
	}

	var buf bytes.Buffer
	buf.WriteString(doc[:idx])
	buf.Write(body)
	buf.WriteString(doc[idx:])
	return buf.Bytes(), nil
}
