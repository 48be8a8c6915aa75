package layout

import (
	"fmt"
	"strings"
)

// Column defines one fixed table column.
type Column struct {
	Header string
	// Ratio is the column's share of the table width relative to the other
	// columns. Columns with a zero ratio share the average of the others.
	Ratio float64
	Align Align
}

// CellKind tells how a cell's value becomes text.
type CellKind int

const (
	CellText CellKind = iota
	CellMoney
)

// Cell is one table cell.
type Cell struct {
	Kind   CellKind
	Text   string
	Amount float64
	Bold   bool
}

// Text returns a text cell.
func Text(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// Money returns a cell that is formatted with the table's currency format.
func Money(v float64) Cell {
	return Cell{Kind: CellMoney, Amount: v}
}

// Strong returns c set in bold.
func (c Cell) Strong() Cell {
	c.Bold = true
	return c
}

// TableStyle configures a table instance.
type TableStyle struct {
	Font         Font    `yaml:"font"`    // zero value uses the body font
	Padding      float64 `yaml:"padding"` // cell text padding on every side
	MinRowHeight float64 `yaml:"min_row_height"`
	// RepeatHeader redraws the header row at the top of every continuation
	// page.
	RepeatHeader bool           `yaml:"repeat_header"`
	HideHeader   bool           `yaml:"hide_header"`
	HeaderFill   *Color         `yaml:"header_fill"`
	ZebraFill    *Color         `yaml:"zebra_fill"` // fill of every other data row
	Currency     CurrencyFormat `yaml:"currency"`
}

// DefaultTableStyle returns a bordered 9pt table with a grey header that is
// repeated on continuation pages.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Font:         Font{Family: "Helvetica", Size: 9},
		Padding:      3,
		MinRowHeight: 14,
		RepeatHeader: true,
		HeaderFill:   &Color{R: 217, G: 217, B: 217},
		Currency:     DefaultCurrency(),
	}
}

// Table is a table with a fixed set of columns whose row heights follow
// their wrapped content.
type Table struct {
	Columns    []Column
	Rows       [][]Cell
	Style      TableStyle
	SpaceAfter float64
}

// measuredRow is a row whose cells have been formatted and wrapped.
type measuredRow struct {
	cells  [][]Line
	bold   []bool
	height float64
}

// Widths returns the column widths for a table spanning total points.
func (t Table) Widths(total float64) []float64 {
	var sum float64
	var set int
	for _, col := range t.Columns {
		if col.Ratio > 0 {
			sum += col.Ratio
			set++
		}
	}
	auto := 1.0
	if set > 0 {
		auto = sum / float64(set)
	}
	sum += auto * float64(len(t.Columns)-set)

	widths := make([]float64, len(t.Columns))
	for i, col := range t.Columns {
		r := col.Ratio
		if r <= 0 {
			r = auto
		}
		widths[i] = total * r / sum
	}
	return widths
}

// Table renders t from the cursor. Each row is measured first; its borders
// and fills are drawn once the height is final. A row that does not fit
// starts a new page, optionally below a repeated header row.
func (e *Engine) Table(c Cursor, t Table) (Cursor, error) {
	if len(t.Columns) == 0 {
		return c, ErrNoColumns
	}
	for i, cells := range t.Rows {
		if len(cells) > len(t.Columns) {
			return c, fmt.Errorf("%w: row %d has %d cells for %d columns", ErrRowWidth, i+1, len(cells), len(t.Columns))
		}
	}
	st := t.Style
	if st.Font.Size == 0 {
		st.Font = e.Style.Body
	}
	widths := t.Widths(c.ContentWidth)

	var header *measuredRow
	if !st.HideHeader {
		cells := make([]Cell, len(t.Columns))
		for i, col := range t.Columns {
			cells[i] = Text(col.Header).Strong()
		}
		h := e.measureRow(cells, widths, st)
		header = &h
	}

	var err error
	if header != nil {
		need := header.height
		if len(t.Rows) > 0 {
			need += e.measureRow(t.Rows[0], widths, st).height
		}
		if c, err = e.reserve(c, need, "table header"); err != nil {
			return c, err
		}
		c = e.drawRow(c, *header, t.Columns, widths, st, st.HeaderFill)
	}

	for i, cells := range t.Rows {
		row := e.measureRow(cells, widths, st)
		if c.WouldOverflow(row.height) {
			if c.AtTop() {
				return c, &LayoutOverflowError{Unit: "table row", Page: c.Page, Height: row.height, Usable: c.Usable()}
			}
			if c, err = e.BreakPage(c); err != nil {
				return c, err
			}
			if header != nil && st.RepeatHeader {
				c = e.drawRow(c, *header, t.Columns, widths, st, st.HeaderFill)
			}
			if c.WouldOverflow(row.height) {
				return c, &LayoutOverflowError{Unit: "table row", Page: c.Page, Height: row.height, Usable: c.Remaining()}
			}
		}
		var fill *Color
		if i%2 == 1 {
			fill = st.ZebraFill
		}
		c = e.drawRow(c, row, t.Columns, widths, st, fill)
	}
	return c.Skip(t.SpaceAfter), nil
}

// RowHeight is the height a row of cells takes in table t spanning total
// points: the tallest wrapped cell plus padding above and below, never less
// than the minimum row height.
func (e *Engine) RowHeight(t Table, cells []Cell, total float64) float64 {
	st := t.Style
	if st.Font.Size == 0 {
		st.Font = e.Style.Body
	}
	return e.measureRow(cells, t.Widths(total), st).height
}

func (e *Engine) measureRow(cells []Cell, widths []float64, st TableStyle) measuredRow {
	lh := e.Style.LineHeight(st.Font)
	row := measuredRow{
		cells: make([][]Line, len(widths)),
		bold:  make([]bool, len(widths)),
	}
	var tallest float64
	for i := range widths {
		if i >= len(cells) {
			continue
		}
		cell := cells[i]
		font := st.Font
		if cell.Bold {
			font = font.WithStyle("B")
		}
		e.Surface.SetFont(font)
		lines := Wrap(e.Surface.StringWidth, cellText(cell, st), widths[i]-2*st.Padding)
		row.cells[i] = lines
		row.bold[i] = cell.Bold
		if h := float64(len(lines)) * lh; h > tallest {
			tallest = h
		}
	}
	row.height = tallest + 2*st.Padding
	if row.height < st.MinRowHeight {
		row.height = st.MinRowHeight
	}
	return row
}

func (e *Engine) drawRow(c Cursor, row measuredRow, cols []Column, widths []float64, st TableStyle, fill *Color) Cursor {
	lh := e.Style.LineHeight(st.Font)
	x := c.LeftMargin
	for _, w := range widths {
		e.Surface.Rect(x, c.Y, w, row.height, fill, true)
		x += w
	}

	x = c.LeftMargin
	for i, w := range widths {
		font := st.Font
		if row.bold[i] {
			font = font.WithStyle("B")
		}
		e.Surface.SetFont(font)
		align := cols[i].Align
		if align == "" {
			align = AlignLeft
		}
		y := c.Y + st.Padding
		for _, line := range row.cells[i] {
			e.Surface.Text(x+st.Padding, y, w-2*st.Padding, lh, strings.TrimRight(line.Text, blanks), align)
			y += lh
		}
		x += w
	}
	return c.Advance(row.height)
}

func cellText(c Cell, st TableStyle) string {
	if c.Kind == CellMoney {
		return st.Currency.Format(c.Amount)
	}
	return c.Text
}
