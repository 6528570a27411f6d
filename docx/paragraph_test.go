package docx

import "testing"

func TestParagraph_StyleAndText(t *testing.T) {
	body := `<w:p>
  <w:pPr><w:pStyle w:val="Heading1"/></w:pPr>
  <w:r><w:t>Title</w:t></w:r>
  <w:r><w:tab/><w:t xml:space="preserve">continued</w:t></w:r>
</w:p>`
	doc := assemble(t, body, "", nil)

	p := doc.Paragraphs()[0]
	if p.StyleID() != "Heading1" {
		t.Errorf("StyleID = %q, want Heading1", p.StyleID())
	}
	if p.Text() != "Titlecontinued\t" {
		t.Errorf("Text = %q", p.Text())
	}
}

func TestParagraph_HyperlinkResolution(t *testing.T) {
	body := `<w:p>
  <w:hyperlink r:id="rId1"><w:r><w:t>site</w:t></w:r></w:hyperlink>
  <w:hyperlink w:anchor="bookmark1"><w:r><w:t>local</w:t></w:r></w:hyperlink>
</w:p>`
	rels := `
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="https://example.com/" TargetMode="External"/>`
	doc := assemble(t, body, rels, nil)

	p := doc.Paragraphs()[0]
	ids := p.HyperlinkIDs()
	if len(ids) != 1 || ids[0] != "rId1" {
		t.Fatalf("HyperlinkIDs = %v, want [rId1]", ids)
	}

	links := p.Hyperlinks()
	if len(links) != 1 {
		t.Fatalf("got %d resolved hyperlinks, want 1", len(links))
	}
	if links[0].Target != "https://example.com/" {
		t.Errorf("Target = %q, want https://example.com/", links[0].Target)
	}

	// Hyperlink run text participates in the paragraph text.
	if p.Text() != "sitelocal" {
		t.Errorf("Text = %q, want sitelocal", p.Text())
	}
}

func TestParagraph_StaleHyperlinkReference(t *testing.T) {
	// A reference to a relationship the document doesn't declare is
	// skipped, not an error.
	body := `<w:p><w:hyperlink r:id="rId9"><w:r><w:t>gone</w:t></w:r></w:hyperlink></w:p>`
	doc := assemble(t, body, "", nil)

	p := doc.Paragraphs()[0]
	if got := len(p.Hyperlinks()); got != 0 {
		t.Errorf("got %d hyperlinks, want 0", got)
	}
}

func TestParagraph_CommentResolution(t *testing.T) {
	body := `<w:p><w:r><w:commentReference w:id="0"/><w:t>annotated</w:t></w:r></w:p>`
	doc := assemble(t, body, commentsRel, map[string]string{
		"word/comments.xml": testComments,
	})

	p := doc.Paragraphs()[0]
	comments := p.Comments()
	if len(comments) != 1 {
		t.Fatalf("got %d comments, want 1", len(comments))
	}
	if comments[0].Author() != "Ann" {
		t.Errorf("Author = %q, want Ann", comments[0].Author())
	}
}

func TestParagraph_PictureIDs(t *testing.T) {
	body := `<w:p><w:r><w:drawing>
  <wp:inline xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing">
    <a:graphic xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
      <a:graphicData>
        <pic:pic xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">
          <pic:blipFill><a:blip r:embed="rId4"/></pic:blipFill>
        </pic:pic>
      </a:graphicData>
    </a:graphic>
  </wp:inline>
</w:drawing></w:r></w:p>`
	doc := assemble(t, body, "", nil)

	ids := doc.Paragraphs()[0].PictureIDs()
	if len(ids) != 1 || ids[0] != "rId4" {
		t.Errorf("PictureIDs = %v, want [rId4]", ids)
	}
}

func TestTable_Accessors(t *testing.T) {
	body := `<w:tbl>
  <w:tblPr><w:tblStyle w:val="GridTable"/></w:tblPr>
  <w:tr>
    <w:tc><w:p><w:r><w:t>a</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>b</w:t></w:r></w:p></w:tc>
  </w:tr>
  <w:tr>
    <w:tc><w:p><w:r><w:t>c</w:t></w:r></w:p></w:tc>
    <w:tc><w:p><w:r><w:t>d1</w:t></w:r></w:p><w:p><w:r><w:t>d2</w:t></w:r></w:p></w:tc>
  </w:tr>
</w:tbl>`
	doc := assemble(t, body, "", nil)

	tbl := doc.Tables()[0]
	if tbl.StyleID() != "GridTable" {
		t.Errorf("StyleID = %q, want GridTable", tbl.StyleID())
	}
	if tbl.RowCount() != 2 || tbl.ColCount() != 2 {
		t.Errorf("size = %dx%d, want 2x2", tbl.RowCount(), tbl.ColCount())
	}
	if got := tbl.CellText(1, 1); got != "d1\nd2" {
		t.Errorf("CellText(1,1) = %q, want d1\\nd2", got)
	}
	if got := tbl.CellText(5, 5); got != "" {
		t.Errorf("out-of-range CellText = %q, want empty", got)
	}

	want := "a\tb\nc\td1 d2"
	if got := tbl.Text(); got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}
