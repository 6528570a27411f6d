// Package wordpack assembles an in-memory model of a Word document
// from its OPC package: body content in source order, hyperlinks,
// comments, styles, embedded objects, and the header/footer policy.
//
// Basic usage:
//
//	doc, err := wordpack.Open("report.docx")
//	if err != nil {
//	    // handle error
//	}
//	defer doc.Close()
//	fmt.Println(doc.Text())
//
// The lower-level docx and opc packages are available when more control
// over the container is needed.
package wordpack

import (
	"io"

	"github.com/tsawler/wordpack/docx"
	"github.com/tsawler/wordpack/opc"
)

// Document is an assembled document that owns its underlying package.
type Document struct {
	*docx.Document
	pkg *opc.Package
}

// Open opens the document at the given path and assembles its model.
// The returned Document must be closed when done.
func Open(filename string, opts ...docx.Option) (*Document, error) {
	pkg, err := opc.OpenFile(filename)
	if err != nil {
		return nil, err
	}

	doc, err := docx.NewDocument(pkg, opts...)
	if err != nil {
		pkg.Close()
		return nil, err
	}
	return &Document{Document: doc, pkg: pkg}, nil
}

// OpenReader assembles a document from an in-memory or seekable source.
func OpenReader(r io.ReaderAt, size int64, opts ...docx.Option) (*Document, error) {
	pkg, err := opc.NewPackage(r, size)
	if err != nil {
		return nil, err
	}

	doc, err := docx.NewDocument(pkg, opts...)
	if err != nil {
		return nil, err
	}
	return &Document{Document: doc, pkg: pkg}, nil
}

// Package exposes the underlying OPC container for part-level access.
func (d *Document) Package() *opc.Package {
	return d.pkg
}

// Close releases the underlying package. Part handles obtained from
// the document are invalid afterwards.
func (d *Document) Close() error {
	return d.pkg.Close()
}
