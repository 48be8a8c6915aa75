package layout

// Block is one unit of document content queued for layout. The concrete
// types are Paragraph, Table, SignatureGroup, Spacer and PageBreak.
type Block interface {
	Kind() string
	isBlock()
}

// Emphasis selects the font style of a paragraph.
type Emphasis int

const (
	Regular Emphasis = iota
	Bold
	Italic
	BoldItalic
)

func (e Emphasis) style() string {
	switch e {
	case Bold:
		return "B"
	case Italic:
		return "I"
	case BoldItalic:
		return "BI"
	}
	return ""
}

// Paragraph is prose flowed line by line; it may break across pages between
// any two lines.
type Paragraph struct {
	Text       string
	Emphasis   Emphasis
	Align      Align   // default AlignLeft
	Size       float64 // font size, 0 for the body size
	Indent     float64 // left indent in points
	SpaceAfter float64
}

// Spacer adds vertical space. Space that does not fit on the page is dropped.
type Spacer struct {
	Height float64
}

// PageBreak starts a new page unless the current one is still empty.
type PageBreak struct{}

// Table and SignatureGroup are declared next to their renderers.

func (Paragraph) Kind() string      { return "paragraph" }
func (Table) Kind() string          { return "table" }
func (SignatureGroup) Kind() string { return "signatures" }
func (Spacer) Kind() string         { return "spacer" }
func (PageBreak) Kind() string      { return "page break" }

func (Paragraph) isBlock()      {}
func (Table) isBlock()          {}
func (SignatureGroup) isBlock() {}
func (Spacer) isBlock()         {}
func (PageBreak) isBlock()      {}
