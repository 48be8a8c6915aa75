package layout

import "fmt"

// Style holds the typographic defaults of a document.
type Style struct {
	Body Font `yaml:"body"`
	// Leading is the line height as a multiple of the font size.
	Leading float64 `yaml:"leading"`
	// SignatureLines is the height of one signatory row in body lines. It
	// reserves blank space for a handwritten signature.
	SignatureLines float64 `yaml:"signature_lines"`
	// SignatureCaption is printed under each signing line.
	SignatureCaption string `yaml:"signature_caption"`
}

// DefaultStyle returns 11pt Helvetica with 1.35 leading and five-line
// signatory rows.
func DefaultStyle() Style {
	return Style{
		Body:             Font{Family: "Helvetica", Size: 11},
		Leading:          1.35,
		SignatureLines:   5,
		SignatureCaption: "Firma",
	}
}

// LineHeight is the advance of one line set in f.
func (s Style) LineHeight(f Font) float64 {
	return f.Size * s.Leading
}

// Engine draws blocks onto one surface during one render pass.
type Engine struct {
	Surface  Surface
	Header   HeaderFooter // nil leaves Geometry.Top as the first writable offset
	Geometry Geometry
	Style    Style
	// Total is the page count printed in headers; 0 while it is unknown.
	Total int
}

// Start adds the first page and returns a cursor below its header.
func (e *Engine) Start() (Cursor, error) {
	e.Surface.AddPage()
	c := NewCursor(e.Geometry, e.header(1))
	if c.Usable() <= 0 {
		return c, &LayoutOverflowError{Unit: "header", Page: 1, Height: c.Top, Usable: c.Limit()}
	}
	return c, nil
}

// BreakPage adds a page, draws its header and returns a cursor at the first
// writable offset below it. The new offset must be strictly above the old
// one, otherwise the break made no progress.
func (e *Engine) BreakPage(c Cursor) (Cursor, error) {
	e.Surface.AddPage()
	top := e.header(c.Page + 1)
	if top >= c.Y {
		return c, &LayoutOverflowError{Unit: "page break", Page: c.Page + 1, Height: top, Usable: c.Y}
	}
	c.Page++
	c.Y, c.Top = top, top
	return c, nil
}

func (e *Engine) header(page int) float64 {
	if e.Header == nil {
		return e.Geometry.Top
	}
	return e.Header.RenderHeader(e.Surface, page, e.Total)
}

// reserve makes room for an atomic unit of height h, breaking the page when
// it does not fit. A unit that does not fit on an empty page is fatal.
func (e *Engine) reserve(c Cursor, h float64, unit string) (Cursor, error) {
	if !c.WouldOverflow(h) {
		return c, nil
	}
	if c.AtTop() {
		return c, &LayoutOverflowError{Unit: unit, Page: c.Page, Height: h, Usable: c.Usable()}
	}
	c, err := e.BreakPage(c)
	if err != nil {
		return c, err
	}
	if c.WouldOverflow(h) {
		return c, &LayoutOverflowError{Unit: unit, Page: c.Page, Height: h, Usable: c.Usable()}
	}
	return c, nil
}

// Render lays out one block.
func (e *Engine) Render(c Cursor, b Block) (Cursor, error) {
	switch b := b.(type) {
	case Paragraph:
		return e.Paragraph(c, b)
	case Table:
		return e.Table(c, b)
	case SignatureGroup:
		return e.Signatures(c, b)
	case Spacer:
		return c.Skip(b.Height), nil
	case PageBreak:
		if c.AtTop() {
			return c, nil
		}
		return e.BreakPage(c)
	}
	return c, fmt.Errorf("layout: unsupported block %T", b)
}

func (e *Engine) bodyFont(emphasis Emphasis, size float64) Font {
	f := e.Style.Body.WithStyle(emphasis.style())
	if size > 0 {
		f.Size = size
	}
	return f
}
