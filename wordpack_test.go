package wordpack

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// createTestDocx writes a minimal .docx file and returns its path.
func createTestDocx(t *testing.T, body string) string {
	t.Helper()

	docxPath := filepath.Join(t.TempDir(), "test.docx")
	f, err := os.Create(docxPath)
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	zw := zip.NewWriter(f)

	entries := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`,
		"_rels/.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>` + body + `</w:body>
</w:document>`,
	}
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("writing zip entry %s: %v", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("closing file: %v", err)
	}
	return docxPath
}

func TestOpen(t *testing.T) {
	path := createTestDocx(t, `<w:p><w:r><w:t>Hello World</w:t></w:r></w:p>`)

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer doc.Close()

	if got := doc.Text(); got != "Hello World" {
		t.Errorf("Text = %q, want Hello World", got)
	}
	if doc.Package() == nil {
		t.Error("Package() returned nil")
	}
}

func TestOpen_NotAPackage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.docx")
	if err := os.WriteFile(path, []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); err == nil {
		t.Error("Open accepted a non-zip file")
	}
}

func TestOpenReader(t *testing.T) {
	path := createTestDocx(t, `<w:p><w:r><w:t>via reader</w:t></w:r></w:p>`)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	doc, err := OpenReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	if got := doc.Text(); got != "via reader" {
		t.Errorf("Text = %q, want via reader", got)
	}
}
