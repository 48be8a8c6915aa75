package layout

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// testGeometry has 500pt of writable height between y=50 and y=550 when no
// header is drawn.
func testGeometry() Geometry {
	return Geometry{PageWidth: 400, PageHeight: 600, Top: 50, Bottom: 50, Left: 50, Right: 50}
}

// testStyle gives 14pt lines for the 8pt body font.
func testStyle() Style {
	return Style{
		Body:             Font{Family: "Helvetica", Size: 8},
		Leading:          1.75,
		SignatureLines:   5,
		SignatureCaption: "Firma",
	}
}

func newTestEngine(h HeaderFooter) (*Engine, *Recorder) {
	rec := NewRecorder(Monospace{Factor: 0.5})
	e := &Engine{Surface: rec, Header: h, Geometry: testGeometry(), Style: testStyle()}
	return e, rec
}

func numberedLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("línea %d", i+1)
	}
	return strings.Join(lines, "\n")
}

func TestCursorOverflow(t *testing.T) {
	c := NewCursor(testGeometry(), 50)

	tests := []struct {
		name     string
		y        float64
		h        float64
		expected bool
	}{
		{"fits", 50, 100, false},
		{"exactly at margin", 536, 14, false},
		{"crosses margin", 537, 14, true},
		{"zero height at margin", 550, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.Y = tt.y
			if got := c.WouldOverflow(tt.h); got != tt.expected {
				t.Errorf("WouldOverflow(%v) at y=%v = %v, want %v", tt.h, tt.y, got, tt.expected)
			}
		})
	}
}

func TestCursorSkipStopsAtMargin(t *testing.T) {
	c := NewCursor(testGeometry(), 50)
	c.Y = 540
	c = c.Skip(30)
	if c.Y != 550 {
		t.Errorf("Skip past the margin left y=%v, want 550", c.Y)
	}
	if c.Page != 1 {
		t.Errorf("Skip changed page to %d", c.Page)
	}
}

func TestStartAndBreakPage(t *testing.T) {
	e, rec := newTestEngine(nil)

	c, err := e.Start()
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if c.Page != 1 || c.Y != 50 || c.Top != 50 {
		t.Fatalf("Start() cursor = %+v, want page 1 at y=50", c)
	}

	c = c.Advance(200)
	c, err = e.BreakPage(c)
	if err != nil {
		t.Fatalf("BreakPage() error = %v", err)
	}
	if c.Page != 2 || c.Y != 50 {
		t.Errorf("BreakPage() cursor = %+v, want page 2 at y=50", c)
	}
	if rec.PageCount() != 2 {
		t.Errorf("surface has %d pages, want 2", rec.PageCount())
	}
}

func TestBreakPageWithoutProgressFails(t *testing.T) {
	e, _ := newTestEngine(nil)
	c, err := e.Start()
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// still at the top: the new page would start at the same offset
	_, err = e.BreakPage(c)
	var overflow *LayoutOverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("BreakPage() at top error = %v, want LayoutOverflowError", err)
	}
}

func TestParagraphBreaksMidParagraph(t *testing.T) {
	e, rec := newTestEngine(nil)
	c, _ := e.Start()

	c, err := e.Paragraph(c, Paragraph{Text: numberedLines(50)})
	if err != nil {
		t.Fatalf("Paragraph() error = %v", err)
	}

	if rec.PageCount() != 2 {
		t.Fatalf("got %d pages, want 2", rec.PageCount())
	}
	// 500pt of 14pt lines hold 35 lines
	page1, page2 := rec.Texts(1), rec.Texts(2)
	if len(page1) != 35 || len(page2) != 15 {
		t.Errorf("lines per page = %d/%d, want 35/15", len(page1), len(page2))
	}
	if page2[0] != "línea 36" {
		t.Errorf("page 2 starts with %q, want %q", page2[0], "línea 36")
	}
	if c.Page != 2 || c.Y != 50+15*14 {
		t.Errorf("cursor after paragraph = page %d y=%v", c.Page, c.Y)
	}
}

func TestParagraphDrawsTrimmedLinesInsideMargins(t *testing.T) {
	e, rec := newTestEngine(nil)
	c, _ := e.Start()

	text := strings.Repeat("oferta económica ", 30)
	if _, err := e.Paragraph(c, Paragraph{Text: text, Align: AlignRight}); err != nil {
		t.Fatalf("Paragraph() error = %v", err)
	}

	for _, cmd := range rec.Pages[0].Commands {
		if strings.HasSuffix(cmd.Text, " ") {
			t.Errorf("line %q drawn with trailing blank", cmd.Text)
		}
		if cmd.Align != AlignRight {
			t.Errorf("line drawn with align %q, want R", cmd.Align)
		}
		if cmd.Y+cmd.H > 550 {
			t.Errorf("line %q ends at %v, below the margin", cmd.Text, cmd.Y+cmd.H)
		}
	}
}

func TestParagraphLineTallerThanPage(t *testing.T) {
	e, _ := newTestEngine(nil)
	c, _ := e.Start()

	// 300pt type with 1.75 leading needs 525pt per line
	_, err := e.Paragraph(c, Paragraph{Text: "X", Size: 300})
	var overflow *LayoutOverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("Paragraph() error = %v, want LayoutOverflowError", err)
	}
	if overflow.Unit != "paragraph line" {
		t.Errorf("overflow unit = %q", overflow.Unit)
	}
}

func TestPageBreakBlock(t *testing.T) {
	e, rec := newTestEngine(nil)
	c, _ := e.Start()

	c, err := e.Render(c, PageBreak{})
	if err != nil {
		t.Fatalf("Render(PageBreak) at top error = %v", err)
	}
	if rec.PageCount() != 1 {
		t.Errorf("page break on an empty page added a page")
	}

	c, _ = e.Render(c, Paragraph{Text: "texto"})
	c, err = e.Render(c, PageBreak{})
	if err != nil {
		t.Fatalf("Render(PageBreak) error = %v", err)
	}
	if rec.PageCount() != 2 || c.Page != 2 {
		t.Errorf("got %d pages, cursor on page %d, want 2", rec.PageCount(), c.Page)
	}
}

type stubHeader struct {
	top     float64
	calls   []int
	footers []int
}

func (h *stubHeader) RenderHeader(s Surface, page, total int) float64 {
	h.calls = append(h.calls, page)
	s.Text(0, 0, 10, 10, fmt.Sprintf("header %d/%d", page, total), AlignRight)
	return h.top
}

func (h *stubHeader) RenderFooter(s Surface, page, total int) {
	h.footers = append(h.footers, page)
	s.Text(0, 560, 10, 10, fmt.Sprintf("footer %d", page), AlignCenter)
}

func TestHeaderRunsOnEveryNewPage(t *testing.T) {
	h := &stubHeader{top: 100}
	e, rec := newTestEngine(h)
	e.Total = 7

	c, _ := e.Start()
	if c.Y != 100 {
		t.Fatalf("content starts at %v, want 100", c.Y)
	}
	// 450pt below the header hold 32 lines of 14pt
	if _, err := e.Paragraph(c, Paragraph{Text: numberedLines(40)}); err != nil {
		t.Fatalf("Paragraph() error = %v", err)
	}

	if fmt.Sprint(h.calls) != "[1 2]" {
		t.Errorf("header calls = %v, want [1 2]", h.calls)
	}
	page2 := rec.Texts(2)
	if page2[0] != "header 2/7" {
		t.Errorf("page 2 starts with %q, want the header", page2[0])
	}
	if page2[1] != "línea 33" {
		t.Errorf("first content line on page 2 = %q, want %q", page2[1], "línea 33")
	}
}
