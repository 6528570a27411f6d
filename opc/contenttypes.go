package opc

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// contentTypesXML represents [Content_Types].xml.
type contentTypesXML struct {
	XMLName   xml.Name          `xml:"Types"`
	Defaults  []defaultTypeXML  `xml:"Default"`
	Overrides []overrideTypeXML `xml:"Override"`
}

// defaultTypeXML maps a file extension to a content type.
type defaultTypeXML struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// overrideTypeXML maps a single part name to a content type.
type overrideTypeXML struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// parseContentTypes parses [Content_Types].xml into the package's
// extension-default and per-part-override maps.
func (p *Package) parseContentTypes() error {
	data, err := p.readAll("[Content_Types].xml")
	if err != nil {
		return ErrMissingContentTypes
	}

	var ct contentTypesXML
	if err := xml.Unmarshal(data, &ct); err != nil {
		return fmt.Errorf("parsing [Content_Types].xml: %w", err)
	}

	p.defaults = make(map[string]string, len(ct.Defaults))
	for _, d := range ct.Defaults {
		p.defaults[strings.ToLower(d.Extension)] = d.ContentType
	}
	p.overrides = make(map[string]string, len(ct.Overrides))
	for _, o := range ct.Overrides {
		p.overrides[o.PartName] = o.ContentType
	}
	return nil
}
