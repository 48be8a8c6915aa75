package layout

import (
	"strings"
	"unicode/utf8"
)

const blanks = " \t"

// Line is one wrapped line of text.
type Line struct {
	Text string
	// Break is set when the line ended at an explicit newline in the input.
	Break bool
}

// Wrap splits text into lines no wider than max according to width.
//
// Wrapping is lossless: spaces at a soft break stay at the end of the line
// they follow, so joining every line's Text, with "\n" after lines that have
// Break set, reproduces text exactly. Words wider than max are split between
// runes. An empty text produces no lines.
func Wrap(width func(string) float64, text string, max float64) []Line {
	if text == "" {
		return nil
	}

	var lines []Line
	paras := strings.Split(text, "\n")
	for i, p := range paras {
		wrapped := wrapParagraph(width, p, max)
		last := len(wrapped) - 1
		for j, s := range wrapped {
			lines = append(lines, Line{Text: s, Break: j == last && i < len(paras)-1})
		}
	}
	return lines
}

// Join reassembles wrapped lines into the text they came from.
func Join(lines []Line) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.Text)
		if l.Break {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func wrapParagraph(width func(string) float64, p string, max float64) []string {
	var lines []string
	cur := ""
	for _, tok := range tokens(p) {
		if cur != "" && width(strings.TrimRight(cur+tok, blanks)) > max {
			lines = append(lines, cur)
			cur = ""
		}
		if cur == "" && width(strings.TrimRight(tok, blanks)) > max {
			parts := splitLong(width, tok, max)
			lines = append(lines, parts[:len(parts)-1]...)
			cur = parts[len(parts)-1]
			continue
		}
		cur += tok
	}
	if cur != "" || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines
}

// tokens splits s into words, each carrying the blanks that follow it. A
// leading run of blanks is a token of its own.
func tokens(s string) []string {
	var out []string
	start := 0
	inBlank := false
	for i, r := range s {
		blank := r == ' ' || r == '\t'
		if !blank && inBlank {
			out = append(out, s[start:i])
			start = i
		}
		inBlank = blank
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

// splitLong cuts a single over-wide word between runes. Trailing blanks stay
// on the last piece.
func splitLong(width func(string) float64, tok string, max float64) []string {
	var parts []string
	start := 0
	for i := 0; i < len(tok); {
		r, size := utf8.DecodeRuneInString(tok[i:])
		if i > start && r != ' ' && r != '\t' && width(tok[start:i+size]) > max {
			parts = append(parts, tok[start:i])
			start = i
		}
		i += size
	}
	return append(parts, tok[start:])
}
