package layout

import (
	"context"
	"io"

	"github.com/olekukonko/ll"
)

// Pass selects what a render pass is for.
type Pass int

const (
	// Discovery lays the document out on a disposable surface to learn the
	// total page count.
	Discovery Pass = iota
	// Final lays the document out on the output surface with the total known.
	Final
)

func (p Pass) String() string {
	if p == Discovery {
		return "discovery"
	}
	return "final"
}

// SurfaceFactory returns a fresh, empty surface for a pass.
type SurfaceFactory func(pass Pass) (Surface, error)

// Assembler renders an ordered block list into a finished document.
type Assembler struct {
	Blocks     []Block
	Geometry   Geometry
	Style      Style
	Header     HeaderFooter
	NewSurface SurfaceFactory
	Log        *ll.Logger
}

// Render runs every block through the engine on a new surface and returns
// the surface and the number of pages it produced. total is printed in page
// headers; pass 0 when it is not known yet.
func (a *Assembler) Render(ctx context.Context, pass Pass, total int) (Surface, int, error) {
	if a.NewSurface == nil {
		return nil, 0, ErrNoSurface
	}
	s, err := a.NewSurface(pass)
	if err != nil {
		return nil, 0, err
	}

	e := &Engine{Surface: s, Header: a.Header, Geometry: a.Geometry, Style: a.Style, Total: total}
	c, err := e.Start()
	if err != nil {
		return nil, 0, err
	}
	for i, b := range a.Blocks {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		if c, err = e.Render(c, b); err != nil {
			return nil, 0, &BlockError{Index: i + 1, Kind: b.Kind(), Err: err}
		}
	}
	if a.Log != nil {
		a.Log.Debugf("%s pass: %d blocks on %d pages", pass, len(a.Blocks), c.Page)
	}
	return s, c.Page, nil
}

// Assemble performs the discovery pass, the final pass and the footer sweep,
// then writes the final surface to w. It returns the page count.
func (a *Assembler) Assemble(ctx context.Context, w io.Writer) (int, error) {
	_, total, err := a.Render(ctx, Discovery, 0)
	if err != nil {
		return 0, err
	}

	s, pages, err := a.Render(ctx, Final, total)
	if err != nil {
		return 0, err
	}
	if n := s.PageCount(); n != pages {
		pages = n
	}
	if pages != total {
		return 0, &PassInconsistencyError{Discovery: total, Final: pages}
	}

	if a.Header != nil {
		for p := 1; p <= total; p++ {
			s.SetPage(p)
			a.Header.RenderFooter(s, p, total)
		}
	}
	if err := s.Output(w); err != nil {
		return 0, err
	}
	return total, nil
}
