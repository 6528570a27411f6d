package docx

import (
	"strings"

	"github.com/tsawler/wordpack/opc"
)

// HeaderFooter wraps a parsed header or footer part.
type HeaderFooter struct {
	part opc.Part
	tree *hdrFtrXML
}

// PartName returns the name of the underlying part.
func (hf *HeaderFooter) PartName() string {
	return hf.part.Name
}

// Text returns the header/footer text, paragraphs joined by newlines.
func (hf *HeaderFooter) Text() string {
	var parts []string
	for i := range hf.tree.Paragraphs {
		parts = append(parts, paragraphText(&hf.tree.Paragraphs[i]))
	}
	return strings.Join(parts, "\n")
}

// HeaderFooterPolicy captures which header and footer apply to which
// pages, from the references in the body's final section properties.
// It is built after the rest of the model is assembled, since it
// resolves relationship ids through the completed Document.
type HeaderFooterPolicy struct {
	titlePage bool

	defaultHeader *HeaderFooter
	evenHeader    *HeaderFooter
	firstHeader   *HeaderFooter

	defaultFooter *HeaderFooter
	evenFooter    *HeaderFooter
	firstFooter   *HeaderFooter
}

// newHeaderFooterPolicy builds the policy for an assembled document.
// Dangling header/footer references become document diagnostics.
func newHeaderFooterPolicy(doc *Document) *HeaderFooterPolicy {
	p := &HeaderFooterPolicy{}

	sectPr := doc.tree.Body.SectPr
	if sectPr == nil {
		return p
	}
	p.titlePage = sectPr.TitlePg != nil

	for _, ref := range sectPr.HeaderRefs {
		hf := doc.loadHeaderFooter(ref, opc.RelTypeHeader)
		if hf == nil {
			continue
		}
		switch ref.Type {
		case "even":
			p.evenHeader = hf
		case "first":
			p.firstHeader = hf
		default:
			p.defaultHeader = hf
		}
	}
	for _, ref := range sectPr.FooterRefs {
		hf := doc.loadHeaderFooter(ref, opc.RelTypeFooter)
		if hf == nil {
			continue
		}
		switch ref.Type {
		case "even":
			p.evenFooter = hf
		case "first":
			p.firstFooter = hf
		default:
			p.defaultFooter = hf
		}
	}

	return p
}

// loadHeaderFooter resolves one header/footer reference to a parsed
// part, recording a diagnostic and returning nil on failure.
func (d *Document) loadHeaderFooter(ref hdrFtrRefXML, relType string) *HeaderFooter {
	fail := func(err error) *HeaderFooter {
		d.diags = append(d.diags, &ResolveError{RelID: ref.ID, RelType: relType, Err: err})
		return nil
	}

	rel, err := d.pkg.RelationshipByID(d.root, ref.ID)
	if err != nil {
		return fail(err)
	}
	part, err := d.pkg.ResolveTarget(d.root, rel)
	if err != nil {
		return fail(err)
	}
	data, err := part.Bytes()
	if err != nil {
		return fail(err)
	}
	tree, err := parseHdrFtrPart(data)
	if err != nil {
		return fail(err)
	}
	return &HeaderFooter{part: part, tree: tree}
}

// DefaultHeader returns the header for ordinary pages, nil if none.
func (p *HeaderFooterPolicy) DefaultHeader() *HeaderFooter { return p.defaultHeader }

// EvenPageHeader returns the even-page header, nil if none.
func (p *HeaderFooterPolicy) EvenPageHeader() *HeaderFooter { return p.evenHeader }

// FirstPageHeader returns the first-page header, nil if none.
func (p *HeaderFooterPolicy) FirstPageHeader() *HeaderFooter { return p.firstHeader }

// DefaultFooter returns the footer for ordinary pages, nil if none.
func (p *HeaderFooterPolicy) DefaultFooter() *HeaderFooter { return p.defaultFooter }

// EvenPageFooter returns the even-page footer, nil if none.
func (p *HeaderFooterPolicy) EvenPageFooter() *HeaderFooter { return p.evenFooter }

// FirstPageFooter returns the first-page footer, nil if none.
func (p *HeaderFooterPolicy) FirstPageFooter() *HeaderFooter { return p.firstFooter }

// HeaderFor returns the header applicable to a 1-based page number.
// The first-page header applies only when the section sets titlePg.
func (p *HeaderFooterPolicy) HeaderFor(page int) *HeaderFooter {
	if page == 1 && p.titlePage && p.firstHeader != nil {
		return p.firstHeader
	}
	if page%2 == 0 && p.evenHeader != nil {
		return p.evenHeader
	}
	return p.defaultHeader
}

// FooterFor returns the footer applicable to a 1-based page number.
func (p *HeaderFooterPolicy) FooterFor(page int) *HeaderFooter {
	if page == 1 && p.titlePage && p.firstFooter != nil {
		return p.firstFooter
	}
	if page%2 == 0 && p.evenFooter != nil {
		return p.evenFooter
	}
	return p.defaultFooter
}
