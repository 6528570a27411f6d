package docx

import (
	"strings"
	"testing"
)

func TestDecodePart_UTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p><w:r><w:t>bom</w:t></w:r></w:p></w:body>
</w:document>`)...)

	doc, err := parseDocumentPart(data)
	if err != nil {
		t.Fatalf("parseDocumentPart: %v", err)
	}
	if len(doc.Body.Elements) != 1 {
		t.Fatalf("got %d body elements, want 1", len(doc.Body.Elements))
	}
	if got := paragraphText(doc.Body.Elements[0].Paragraph); got != "bom" {
		t.Errorf("text = %q, want bom", got)
	}
}

func TestDecodePart_UTF16BOM(t *testing.T) {
	src := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body><w:p><w:r><w:t>wide</w:t></w:r></w:p></w:body>
</w:document>`

	// UTF-16LE with BOM
	data := []byte{0xFF, 0xFE}
	for _, r := range src {
		data = append(data, byte(r), byte(r>>8))
	}

	doc, err := parseDocumentPart(data)
	if err != nil {
		t.Fatalf("parseDocumentPart: %v", err)
	}
	if got := paragraphText(doc.Body.Elements[0].Paragraph); got != "wide" {
		t.Errorf("text = %q, want wide", got)
	}
}

func TestDecodePart_DeclaredCharset(t *testing.T) {
	// ISO-8859-1 content: 0xE9 is é.
	data := []byte(`<?xml version="1.0" encoding="ISO-8859-1"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body><w:p><w:r><w:t>caf` + "\xe9" + `</w:t></w:r></w:p></w:body>
</w:document>`)

	doc, err := parseDocumentPart(data)
	if err != nil {
		t.Fatalf("parseDocumentPart: %v", err)
	}
	if got := paragraphText(doc.Body.Elements[0].Paragraph); got != "café" {
		t.Errorf("text = %q, want café", got)
	}
}

func TestParseDocumentPart_NoBody(t *testing.T) {
	data := []byte(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"/>`)

	_, err := parseDocumentPart(data)
	if err == nil || !strings.Contains(err.Error(), "no body") {
		t.Errorf("err = %v, want no body error", err)
	}
}

func TestParseStylesPart_WrongRoot(t *testing.T) {
	data := []byte(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body/></w:document>`)

	if _, err := parseStylesPart(data); err == nil {
		t.Error("parseStylesPart accepted a document root, want error")
	}
}

func TestParseCommentsPart_Empty(t *testing.T) {
	data := []byte(`<w:comments xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"/>`)

	tree, err := parseCommentsPart(data)
	if err != nil {
		t.Fatalf("parseCommentsPart: %v", err)
	}
	if len(tree.Comments) != 0 {
		t.Errorf("got %d comments, want 0", len(tree.Comments))
	}
}
