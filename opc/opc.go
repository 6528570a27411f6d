// Package opc provides read access to OPC (Open Packaging Conventions)
// containers: the ZIP-based packages used by Office Open XML documents.
//
// A package is a set of named parts plus typed relationship metadata
// linking them. This package exposes parts, their content types, and
// relationship queries; it knows nothing about any particular document
// schema.
package opc

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

var (
	// ErrMissingContentTypes indicates the container has no [Content_Types].xml.
	ErrMissingContentTypes = errors.New("opc: missing [Content_Types].xml")

	// ErrPartNotFound indicates a named part does not exist in the container.
	ErrPartNotFound = errors.New("opc: part not found")

	// ErrNoOfficeDocument indicates no main document part could be located.
	ErrNoOfficeDocument = errors.New("opc: no office document part")

	// ErrUnknownRelationshipID indicates a relationship id is not declared
	// by the source part.
	ErrUnknownRelationshipID = errors.New("opc: unknown relationship id")

	// ErrExternalTarget indicates a relationship targets a resource outside
	// the container and cannot be resolved to a part.
	ErrExternalTarget = errors.New("opc: relationship target is external")
)

// Package is an opened OPC container.
type Package struct {
	file  *os.File // non-nil only when opened via OpenFile
	parts map[string]*zip.File

	// content types from [Content_Types].xml
	defaults  map[string]string // lowercased extension -> content type
	overrides map[string]string // part name -> content type

	// parsed relationship files, keyed by the source part name
	// ("" for the package root). Populated on demand.
	rels map[string][]Relationship
}

// OpenFile opens the OPC container at the given path. The returned
// Package holds the file open; call Close when done.
func OpenFile(filename string) (*Package, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening package: %w", err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening package: %w", err)
	}

	pkg, err := NewPackage(f, fi.Size())
	if err != nil {
		f.Close()
		return nil, err
	}
	pkg.file = f
	return pkg, nil
}

// NewPackage opens an OPC container from an in-memory or seekable source.
func NewPackage(r io.ReaderAt, size int64) (*Package, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("reading ZIP archive: %w", err)
	}

	pkg := &Package{
		parts: make(map[string]*zip.File, len(zr.File)),
		rels:  make(map[string][]Relationship),
	}
	for _, f := range zr.File {
		pkg.parts[f.Name] = f
	}

	if err := pkg.parseContentTypes(); err != nil {
		return nil, err
	}
	return pkg, nil
}

// Close releases the underlying file, if the package owns one.
func (p *Package) Close() error {
	if p.file != nil {
		err := p.file.Close()
		p.file = nil
		return err
	}
	return nil
}

// Part returns the part with the given name. Names never carry a
// leading slash inside the ZIP, but callers may pass one.
func (p *Package) Part(name string) (Part, error) {
	name = strings.TrimPrefix(name, "/")
	if _, ok := p.parts[name]; !ok {
		return Part{}, fmt.Errorf("%w: %s", ErrPartNotFound, name)
	}
	return Part{pkg: p, Name: name, ContentType: p.contentType(name)}, nil
}

// OfficeDocument locates the package's main document part via the
// package-level officeDocument relationship. Some producers omit the
// root relationships file; word/document.xml is used as a fallback.
func (p *Package) OfficeDocument() (Part, error) {
	rels, err := p.rootRelationships()
	if err != nil {
		return Part{}, err
	}
	for _, rel := range rels {
		if rel.Type == RelTypeOfficeDocument {
			return p.resolveName("", rel)
		}
	}
	if _, ok := p.parts["word/document.xml"]; ok {
		return p.Part("word/document.xml")
	}
	return Part{}, ErrNoOfficeDocument
}

// contentType returns the content type of a part per [Content_Types].xml.
func (p *Package) contentType(name string) string {
	if ct, ok := p.overrides["/"+name]; ok {
		return ct
	}
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(name)), ".")
	return p.defaults[ext]
}

// readAll reads the full content of a named entry.
func (p *Package) readAll(name string) ([]byte, error) {
	f, ok := p.parts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPartNotFound, name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening part %s: %w", name, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Part is a handle to a single named resource inside the container.
type Part struct {
	pkg *Package

	Name        string
	ContentType string
}

// Bytes reads the part's full content.
func (pt Part) Bytes() ([]byte, error) {
	return pt.pkg.readAll(pt.Name)
}
