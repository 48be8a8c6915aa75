package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout failure conditions.
var (
	ErrNoSurface = errors.New("layout: no surface factory configured")
	ErrNoColumns = errors.New("layout: table has no columns")
	ErrRowWidth  = errors.New("layout: row has more cells than the table has columns")
)

// LayoutOverflowError reports an atomic unit of content (one line, one table
// row, one signatory) that is taller than the writable height of an empty
// page. Breaking the page again would make no progress.
type LayoutOverflowError struct {
	Unit   string  // "paragraph line", "table row", "signatory", ...
	Page   int     // page on which the unit was attempted
	Height float64 // height the unit needs
	Usable float64 // writable height of an empty page
}

func (e *LayoutOverflowError) Error() string {
	return fmt.Sprintf("layout: %s needs %.1fpt but an empty page offers %.1fpt (page %d)",
		e.Unit, e.Height, e.Usable, e.Page)
}

// PassInconsistencyError reports a final pass that produced a different page
// count than the discovery pass over the same blocks.
type PassInconsistencyError struct {
	Discovery int
	Final     int
}

func (e *PassInconsistencyError) Error() string {
	return fmt.Sprintf("layout: discovery pass counted %d pages but final pass produced %d",
		e.Discovery, e.Final)
}

// BlockError wraps a failure with the position and kind of the block that
// caused it.
type BlockError struct {
	Index int    // 1-based position in the block list
	Kind  string // "paragraph", "table", ...
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("layout: block %d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}
