package layout

import (
	"strconv"
	"strings"
)

// HeaderFooter draws the repeating blocks of every page. It only draws; the
// engine applies the returned offset to its cursor.
type HeaderFooter interface {
	// RenderHeader draws the header of page (1-based) and returns the first
	// writable offset below it. total is 0 while the page count is unknown;
	// the returned offset must not depend on it.
	RenderHeader(s Surface, page, total int) float64
	// RenderFooter draws the footer of page at a fixed offset below the
	// bottom margin.
	RenderFooter(s Surface, page, total int)
}

// Letterhead is the institutional header and footer of official documents:
// right-aligned institution lines, the document reference and a running page
// counter on top; contact and address lines plus an optional verification
// code at the bottom.
type Letterhead struct {
	Geometry Geometry

	// Lines are printed right-aligned at the top of every page.
	Lines     []string
	Reference string
	// PageFormat is the running counter; {page} and {pages} are replaced.
	PageFormat string
	Font       Font
	// Gap separates the header rule from the first line of content.
	Gap float64

	FooterLines []string
	FooterFont  Font

	// Background and Verification are image keys registered on the surface.
	// Missing images are skipped.
	Background   string
	Verification string
}

// DefaultPageFormat is the running page counter of Spanish-language
// documents.
const DefaultPageFormat = "Página {page} de {pages}"

// PageLabel renders the running counter for page. An unknown total prints as
// "-".
func (l *Letterhead) PageLabel(page, total int) string {
	format := l.PageFormat
	if format == "" {
		format = DefaultPageFormat
	}
	pages := "-"
	if total > 0 {
		pages = strconv.Itoa(total)
	}
	return strings.NewReplacer("{page}", strconv.Itoa(page), "{pages}", pages).Replace(format)
}

func (l *Letterhead) headerTop() float64 {
	return l.Geometry.Top * 0.45
}

// RenderHeader implements HeaderFooter.
func (l *Letterhead) RenderHeader(s Surface, page, total int) float64 {
	g := l.Geometry
	if l.Background != "" {
		s.Image(l.Background, 0, 0, g.PageWidth, g.PageHeight)
	}

	lh := l.Font.Size * 1.25
	width := g.ContentWidth()
	y := l.headerTop()

	s.SetFont(l.Font.WithStyle("B"))
	for _, line := range l.Lines {
		s.Text(g.Left, y, width, lh, line, AlignRight)
		y += lh
	}
	s.SetFont(l.Font)
	if l.Reference != "" {
		s.Text(g.Left, y, width, lh, l.Reference, AlignRight)
		y += lh
	}
	s.Text(g.Left, y, width, lh, l.PageLabel(page, total), AlignRight)
	y += lh

	y += l.Gap / 2
	s.Line(g.Left, y, g.PageWidth-g.Right, y)
	y += l.Gap / 2

	if y < g.Top {
		y = g.Top
	}
	return y
}

// RenderFooter implements HeaderFooter.
func (l *Letterhead) RenderFooter(s Surface, page, total int) {
	g := l.Geometry
	lh := l.FooterFont.Size * 1.25
	y := g.Limit() + lh/2
	width := g.ContentWidth()

	code := 0.0
	if l.Verification != "" {
		code = g.Bottom - lh
		if !s.Image(l.Verification, g.PageWidth-g.Right-code, y, code, code) {
			code = 0
		}
	}

	s.Line(g.Left, y, g.PageWidth-g.Right-code, y)
	s.SetFont(l.FooterFont)
	for _, line := range l.FooterLines {
		s.Text(g.Left, y, width-code, lh, line, AlignCenter)
		y += lh
	}
}
