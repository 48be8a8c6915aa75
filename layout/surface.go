package layout

import "io"

// Align is a horizontal text alignment.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Color is an RGB color with components in 0..255.
type Color struct {
	R int `yaml:"r"`
	G int `yaml:"g"`
	B int `yaml:"b"`
}

// Font selects a face and size. Style is "", "B", "I" or "BI".
type Font struct {
	Family string  `yaml:"family"`
	Style  string  `yaml:"style"`
	Size   float64 `yaml:"size"`
}

// WithStyle returns f with a different style.
func (f Font) WithStyle(style string) Font {
	f.Style = style
	return f
}

// WithSize returns f with a different size.
func (f Font) WithSize(size float64) Font {
	f.Size = size
	return f
}

// Surface is the drawing target of a render pass. Page numbers are 1-based.
// Every drawing call applies to the current page, which is the last page added
// unless SetPage selected another one.
type Surface interface {
	AddPage()
	SetPage(n int)
	PageCount() int

	SetFont(f Font)
	// StringWidth measures s in the current font.
	StringWidth(s string) float64

	// Text draws s inside the box at (x, y) of width w and height h,
	// vertically centred and horizontally aligned.
	Text(x, y, w, h float64, s string, align Align)
	// Rect draws a rectangle, filled when fill is non-nil and stroked when
	// border is set.
	Rect(x, y, w, h float64, fill *Color, border bool)
	Line(x1, y1, x2, y2 float64)
	// Image draws a previously registered image. It reports false when no
	// image is registered under key.
	Image(key string, x, y, w, h float64) bool

	Output(w io.Writer) error
}
