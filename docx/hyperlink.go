package docx

// Hyperlink is an immutable hyperlink record: the relationship id on
// the document part plus the resolved target URI. Two hyperlinks are
// distinct when their ids differ, even if the targets coincide.
type Hyperlink struct {
	ID     string
	Target string
}
