package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodePart decodes a part's bytes into the given schema struct.
// A leading UTF-8 or UTF-16 BOM is honored and stripped; parts whose
// XML declaration names a non-UTF-8 encoding are converted through
// charset.NewReaderLabel.
func decodePart(data []byte, v interface{}) error {
	// transform.Nop as the fallback: bytes pass through untouched when
	// no BOM is present, leaving charset conversion to the xml decoder.
	var r io.Reader = transform.NewReader(
		bytes.NewReader(data),
		unicode.BOMOverride(transform.Nop),
	)

	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	return dec.Decode(v)
}

// parseDocumentPart parses a main document part.
func parseDocumentPart(data []byte) (*documentXML, error) {
	doc := &documentXML{}
	if err := decodePart(data, doc); err != nil {
		return nil, fmt.Errorf("unmarshaling document part: %w", err)
	}
	if doc.Body == nil {
		return nil, fmt.Errorf("document part has no body")
	}
	return doc, nil
}

// parseStylesPart parses a styles part.
func parseStylesPart(data []byte) (*stylesXML, error) {
	styles := &stylesXML{}
	if err := decodePart(data, styles); err != nil {
		return nil, fmt.Errorf("unmarshaling styles part: %w", err)
	}
	return styles, nil
}

// parseCommentsPart parses a comments part.
func parseCommentsPart(data []byte) (*commentsXML, error) {
	comments := &commentsXML{}
	if err := decodePart(data, comments); err != nil {
		return nil, fmt.Errorf("unmarshaling comments part: %w", err)
	}
	return comments, nil
}

// parseHdrFtrPart parses a header or footer part; the two schemas differ
// only in the root element name.
func parseHdrFtrPart(data []byte) (*hdrFtrXML, error) {
	hf := &hdrFtrXML{}
	if err := decodePart(data, hf); err != nil {
		return nil, fmt.Errorf("unmarshaling header/footer part: %w", err)
	}
	return hf, nil
}
