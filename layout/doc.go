// Package layout flows document content onto fixed-size pages.
//
// Content arrives as an ordered list of Blocks (paragraphs, tables and
// signature groups). An Engine draws each block onto a Surface while a Cursor
// tracks the page index and the vertical write position. When the next unit
// of content would cross the bottom margin the Engine starts a new page and
// lets a HeaderFooter draw the repeating header, which returns the first
// writable offset of that page.
//
// The total page count printed in every header ("Página N de TOTAL") is only
// known once the whole document has been laid out, so the Assembler runs the
// same Render pass twice: a discovery pass on a disposable surface that counts
// pages, and a final pass on the output surface that already knows the total.
// Footers are stamped afterwards in a separate sweep over every page.
//
// All geometry is in PDF points with the origin at the top-left corner.
package layout
