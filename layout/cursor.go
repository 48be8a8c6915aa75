package layout

// epsilon absorbs floating point drift when many row heights are summed.
const epsilon = 1e-6

// Cursor is the running write position of a render pass. It is a plain value:
// every layout call receives the current cursor and returns the advanced one.
type Cursor struct {
	Page int     // 1-based page index
	Y    float64 // next writable offset from the top of the page
	Top  float64 // first writable offset of the current page, below the header

	PageHeight   float64
	BottomMargin float64
	LeftMargin   float64
	ContentWidth float64
}

// NewCursor returns a cursor for page 1 positioned at top.
func NewCursor(g Geometry, top float64) Cursor {
	return Cursor{
		Page:         1,
		Y:            top,
		Top:          top,
		PageHeight:   g.PageHeight,
		BottomMargin: g.Bottom,
		LeftMargin:   g.Left,
		ContentWidth: g.ContentWidth(),
	}
}

// Limit is the lowest offset content may reach on any page.
func (c Cursor) Limit() float64 {
	return c.PageHeight - c.BottomMargin
}

// WouldOverflow reports whether drawing h more points would cross the bottom
// margin.
func (c Cursor) WouldOverflow(h float64) bool {
	return c.Y+h > c.Limit()+epsilon
}

// Advance moves the cursor down by h. Callers check WouldOverflow first.
func (c Cursor) Advance(h float64) Cursor {
	c.Y += h
	return c
}

// Skip adds vertical space without ever crossing the bottom margin; space that
// does not fit is dropped and the cursor rests on the margin.
func (c Cursor) Skip(h float64) Cursor {
	if c.WouldOverflow(h) {
		c.Y = c.Limit()
		return c
	}
	return c.Advance(h)
}

// AtTop reports whether nothing has been drawn on the current page yet.
func (c Cursor) AtTop() bool {
	return c.Y <= c.Top+epsilon
}

// Usable is the writable height of the current page when empty.
func (c Cursor) Usable() float64 {
	return c.Limit() - c.Top
}

// Remaining is the writable height left on the current page.
func (c Cursor) Remaining() float64 {
	return c.Limit() - c.Y
}
