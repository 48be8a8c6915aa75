package layout

import "strings"

// Paragraph flows p line by line from the cursor, breaking the page before
// any line that would cross the bottom margin.
func (e *Engine) Paragraph(c Cursor, p Paragraph) (Cursor, error) {
	font := e.bodyFont(p.Emphasis, p.Size)
	lh := e.Style.LineHeight(font)
	width := c.ContentWidth - p.Indent
	align := p.Align
	if align == "" {
		align = AlignLeft
	}

	e.Surface.SetFont(font)
	lines := Wrap(e.Surface.StringWidth, p.Text, width)

	var err error
	for _, line := range lines {
		if c, err = e.reserve(c, lh, "paragraph line"); err != nil {
			return c, err
		}
		// a page header may have switched fonts
		e.Surface.SetFont(font)
		e.Surface.Text(c.LeftMargin+p.Indent, c.Y, width, lh, strings.TrimRight(line.Text, blanks), align)
		c = c.Advance(lh)
	}
	return c.Skip(p.SpaceAfter), nil
}
