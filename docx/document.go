package docx

import "encoding/xml"

// XML namespaces used in WordprocessingML parts
const (
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// documentXML represents the structure of the main document part.
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML represents the document body. Paragraphs and tables are
// siblings in the source; Elements preserves their interleaving, which
// xml.Unmarshal's per-field collection would lose.
type bodyXML struct {
	Elements []bodyElementXML
	SectPr   *sectPrXML
}

// bodyElementXML is one block-level child of the body: a paragraph or a
// table, never both.
type bodyElementXML struct {
	Paragraph *paragraphXML
	Table     *tableXML
}

// UnmarshalXML walks the body's children in document order so that
// paragraph/table interleaving survives parsing.
func (b *bodyXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				var p paragraphXML
				if err := d.DecodeElement(&p, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, bodyElementXML{Paragraph: &p})
			case "tbl":
				var tbl tableXML
				if err := d.DecodeElement(&tbl, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, bodyElementXML{Table: &tbl})
			case "sectPr":
				var sp sectPrXML
				if err := d.DecodeElement(&sp, &t); err != nil {
					return err
				}
				b.SectPr = &sp
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

// paragraphXML represents a paragraph element (<w:p>).
type paragraphXML struct {
	XMLName    xml.Name          `xml:"p"`
	Properties paragraphPropsXML `xml:"pPr"`
	Runs       []runXML          `xml:"r"`
	Hyperlinks []hyperlinkRefXML `xml:"hyperlink"`
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style         styleRefXML      `xml:"pStyle"`
	Justification justificationXML `xml:"jc"`
	Spacing       spacingXML       `xml:"spacing"`
	Indent        indentXML        `xml:"ind"`
	OutlineLvl    outlineLvlXML    `xml:"outlineLvl"`
}

// styleRefXML represents a style reference.
type styleRefXML struct {
	Val string `xml:"val,attr"`
}

// justificationXML represents text justification.
type justificationXML struct {
	Val string `xml:"val,attr"` // left, center, right, both
}

// spacingXML represents paragraph spacing in twips.
type spacingXML struct {
	Before string `xml:"before,attr"`
	After  string `xml:"after,attr"`
	Line   string `xml:"line,attr"`
}

// indentXML represents paragraph indentation in twips.
type indentXML struct {
	Left      string `xml:"left,attr"`
	Right     string `xml:"right,attr"`
	FirstLine string `xml:"firstLine,attr"`
	Hanging   string `xml:"hanging,attr"`
}

// outlineLvlXML represents outline level.
type outlineLvlXML struct {
	Val string `xml:"val,attr"`
}

// runXML represents a text run (<w:r>).
type runXML struct {
	XMLName     xml.Name        `xml:"r"`
	Properties  runPropsXML     `xml:"rPr"`
	Text        []textXML       `xml:"t"`
	Tabs        []tabXML        `xml:"tab"`
	Breaks      []breakXML      `xml:"br"`
	Drawings    []drawingXML    `xml:"drawing"`
	CommentRefs []commentRefXML `xml:"commentReference"`
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Bold      boolXML      `xml:"b"`
	Italic    boolXML      `xml:"i"`
	Underline underlineXML `xml:"u"`
	Strike    boolXML      `xml:"strike"`
	FontSize  sizeXML      `xml:"sz"`
	Font      fontXML      `xml:"rFonts"`
	Color     colorXML     `xml:"color"`
	Highlight highlightXML `xml:"highlight"`
}

// boolXML represents a boolean element whose presence means true unless
// val says otherwise.
type boolXML struct {
	XMLName xml.Name
	Val     string `xml:"val,attr"`
}

// set reports whether the element was present and not explicitly false.
func (b boolXML) set() bool {
	return b.XMLName.Local != "" && b.Val != "false" && b.Val != "0"
}

// underlineXML represents underline style.
type underlineXML struct {
	Val string `xml:"val,attr"` // single, double, none, ...
}

// sizeXML represents font size in half-points.
type sizeXML struct {
	Val string `xml:"val,attr"`
}

// fontXML represents font settings.
type fontXML struct {
	ASCII    string `xml:"ascii,attr"`
	HAnsi    string `xml:"hAnsi,attr"`
	CS       string `xml:"cs,attr"`
	EastAsia string `xml:"eastAsia,attr"`
}

// colorXML represents text color.
type colorXML struct {
	Val string `xml:"val,attr"` // hex color or "auto"
}

// highlightXML represents highlight color.
type highlightXML struct {
	Val string `xml:"val,attr"`
}

// textXML represents text content (<w:t>).
type textXML struct {
	XMLName xml.Name `xml:"t"`
	Space   string   `xml:"space,attr"` // preserve
	Value   string   `xml:",chardata"`
}

// tabXML represents a tab character.
type tabXML struct {
	XMLName xml.Name `xml:"tab"`
}

// breakXML represents a break (line or page).
type breakXML struct {
	XMLName xml.Name `xml:"br"`
	Type    string   `xml:"type,attr"` // page, column, textWrapping
}

// drawingXML represents an embedded drawing. Only the picture reference
// matters here: the blip's r:embed relationship id points at the image part.
type drawingXML struct {
	XMLName xml.Name   `xml:"drawing"`
	Inline  *inlineXML `xml:"inline"`
	Anchor  *anchorXML `xml:"anchor"`
}

// inlineXML represents an inline image.
type inlineXML struct {
	Blip *blipXML `xml:"graphic>graphicData>pic>blipFill>blip"`
}

// anchorXML represents an anchored image.
type anchorXML struct {
	Blip *blipXML `xml:"graphic>graphicData>pic>blipFill>blip"`
}

// blipXML represents an image reference.
type blipXML struct {
	Embed string `xml:"embed,attr"` // relationship id
}

// hyperlinkRefXML represents an in-body hyperlink reference. ID is the
// relationship id on the document part; Anchor is an in-document bookmark.
type hyperlinkRefXML struct {
	ID     string   `xml:"id,attr"`
	Anchor string   `xml:"anchor,attr"`
	Runs   []runXML `xml:"r"`
}

// commentRefXML represents a comment reference inside a run
// (<w:commentReference w:id="...">).
type commentRefXML struct {
	ID string `xml:"id,attr"`
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	XMLName    xml.Name      `xml:"tbl"`
	Properties tablePropsXML `xml:"tblPr"`
	Rows       []tableRowXML `xml:"tr"`
}

// tablePropsXML represents table properties.
type tablePropsXML struct {
	Style styleRefXML `xml:"tblStyle"`
}

// tableRowXML represents a table row (<w:tr>).
type tableRowXML struct {
	XMLName xml.Name       `xml:"tr"`
	Cells   []tableCellXML `xml:"tc"`
}

// tableCellXML represents a table cell (<w:tc>).
type tableCellXML struct {
	XMLName    xml.Name       `xml:"tc"`
	Paragraphs []paragraphXML `xml:"p"`
}

// sectPrXML represents section properties (<w:sectPr>), carrying the
// header/footer references the policy consumes.
type sectPrXML struct {
	HeaderRefs []hdrFtrRefXML `xml:"headerReference"`
	FooterRefs []hdrFtrRefXML `xml:"footerReference"`
	TitlePg    *struct{}      `xml:"titlePg"`
}

// hdrFtrRefXML represents a header or footer reference: the r:id names a
// relationship on the document part, Type selects the pages it applies to.
type hdrFtrRefXML struct {
	Type string `xml:"type,attr"` // default, even, first
	ID   string `xml:"id,attr"`
}

// hdrFtrXML represents the structure of a header (<w:hdr>) or footer
// (<w:ftr>) part. The two schemas are identical apart from the root name.
type hdrFtrXML struct {
	Paragraphs []paragraphXML `xml:"p"`
	Tables     []tableXML     `xml:"tbl"`
}
