package opc

// Relationship type URIs defined by the Office Open XML specification.
// These are matched bit-for-bit against package metadata.
const (
	RelTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelTypeStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	RelTypeHyperlink      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
	RelTypeComments       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/comments"
	RelTypeHeader         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/header"
	RelTypeFooter         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer"
	RelTypeNumbering      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
	RelTypeImage          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	RelTypeOLEObject      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/oleObject"
	RelTypePackage        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/package"
)

// Content type strings for WordprocessingML parts.
const (
	ContentTypeMainDocument = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ContentTypeStyles       = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ContentTypeComments     = "application/vnd.openxmlformats-officedocument.wordprocessingml.comments+xml"
	ContentTypeHeader       = "application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"
	ContentTypeFooter       = "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"
)
