package layout

import "strings"

// Signatory is one person signing a document.
type Signatory struct {
	Name string
	Role string
}

// SignatureGroup is a titled list of signatories. Each signatory row holds
// the name and role on the left and reserved signing space on the right; a
// row is never split across pages.
type SignatureGroup struct {
	Title       string
	Signatories []Signatory
	SpaceAfter  float64
}

type signatoryState int

const (
	pending signatoryState = iota
	measuring
	fits
	deferred
)

type signatoryRow struct {
	name, role []Line
	height     float64
}

// Signatures renders g from the cursor. The title stays with the first
// signatory and is not repeated on continuation pages.
func (e *Engine) Signatures(c Cursor, g SignatureGroup) (Cursor, error) {
	font := e.Style.Body
	lh := e.Style.LineHeight(font)
	pad := lh / 3
	nameW := c.ContentWidth * 0.6
	signW := c.ContentWidth - nameW

	e.Surface.SetFont(font.WithStyle("B"))
	title := Wrap(e.Surface.StringWidth, g.Title, c.ContentWidth)
	titleH := float64(len(title)) * lh
	if len(title) > 0 {
		titleH += lh / 2
	}
	titleDrawn := len(title) == 0

	var err error
	for _, s := range g.Signatories {
		var row signatoryRow
		state := pending
	step:
		for {
			switch state {
			case pending:
				state = measuring
			case measuring:
				row = e.measureSignatory(s, nameW-2*pad, pad)
				need := row.height
				if !titleDrawn {
					need += titleH
				}
				state = fits
				if c.WouldOverflow(need) {
					state = deferred
				}
			case deferred:
				if c.AtTop() {
					need := row.height
					if !titleDrawn {
						need += titleH
					}
					return c, &LayoutOverflowError{Unit: "signatory", Page: c.Page, Height: need, Usable: c.Usable()}
				}
				if c, err = e.BreakPage(c); err != nil {
					return c, err
				}
				state = measuring
			case fits:
				if !titleDrawn {
					c = e.drawSignatureTitle(c, title, font.WithStyle("B"), lh)
					titleDrawn = true
				}
				c = e.drawSignatory(c, row, nameW, signW, pad)
				break step
			}
		}
	}
	return c.Skip(g.SpaceAfter), nil
}

// SignatoryHeight is the height of the row for s on a page of the given
// content width.
func (e *Engine) SignatoryHeight(s Signatory, contentWidth float64) float64 {
	lh := e.Style.LineHeight(e.Style.Body)
	pad := lh / 3
	return e.measureSignatory(s, contentWidth*0.6-2*pad, pad).height
}

func (e *Engine) measureSignatory(s Signatory, textW, pad float64) signatoryRow {
	font := e.Style.Body
	lh := e.Style.LineHeight(font)

	var row signatoryRow
	e.Surface.SetFont(font.WithStyle("B"))
	row.name = Wrap(e.Surface.StringWidth, s.Name, textW)
	e.Surface.SetFont(font)
	row.role = Wrap(e.Surface.StringWidth, s.Role, textW)

	text := float64(len(row.name)+len(row.role))*lh + 2*pad
	row.height = e.Style.SignatureLines * lh
	if text > row.height {
		row.height = text
	}
	return row
}

func (e *Engine) drawSignatureTitle(c Cursor, title []Line, font Font, lh float64) Cursor {
	e.Surface.SetFont(font)
	for _, line := range title {
		e.Surface.Text(c.LeftMargin, c.Y, c.ContentWidth, lh, strings.TrimRight(line.Text, blanks), AlignLeft)
		c = c.Advance(lh)
	}
	return c.Advance(lh / 2)
}

func (e *Engine) drawSignatory(c Cursor, row signatoryRow, nameW, signW, pad float64) Cursor {
	font := e.Style.Body
	lh := e.Style.LineHeight(font)
	x := c.LeftMargin

	e.Surface.Rect(x, c.Y, nameW, row.height, nil, true)
	e.Surface.Rect(x+nameW, c.Y, signW, row.height, nil, true)

	y := c.Y + pad
	e.Surface.SetFont(font.WithStyle("B"))
	for _, line := range row.name {
		e.Surface.Text(x+pad, y, nameW-2*pad, lh, strings.TrimRight(line.Text, blanks), AlignLeft)
		y += lh
	}
	e.Surface.SetFont(font)
	for _, line := range row.role {
		e.Surface.Text(x+pad, y, nameW-2*pad, lh, strings.TrimRight(line.Text, blanks), AlignLeft)
		y += lh
	}

	lineY := c.Y + row.height - pad - lh
	e.Surface.Line(x+nameW+2*pad, lineY, x+nameW+signW-2*pad, lineY)
	caption := e.Style.SignatureCaption
	if caption != "" {
		e.Surface.SetFont(font.WithSize(font.Size * 0.8))
		e.Surface.Text(x+nameW, lineY, signW, lh, caption, AlignCenter)
	}
	return c.Advance(row.height)
}
