package layout

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// Measurer measures text for a Recorder.
type Measurer interface {
	Width(f Font, s string) float64
}

// Monospace measures every rune as Factor times the font size.
type Monospace struct {
	Factor float64
}

// Width implements Measurer.
func (m Monospace) Width(f Font, s string) float64 {
	factor := m.Factor
	if factor == 0 {
		factor = 0.5
	}
	return float64(utf8.RuneCountInString(s)) * f.Size * factor
}

// Command is one recorded drawing operation.
type Command struct {
	Op         string // "text", "rect", "line" or "image"
	X, Y, W, H float64
	Text       string // text for "text", key for "image"
	Font       Font
	Align      Align
	Fill       *Color
	Border     bool
}

// RenderedPage is the ordered list of drawing operations of one page.
type RenderedPage struct {
	Index    int
	Commands []Command
}

// Recorder is a Surface that records drawing operations instead of
// producing a document. It measures text with its Measurer.
type Recorder struct {
	Measurer Measurer
	// Images holds the keys Image accepts.
	Images map[string]bool
	Pages  []RenderedPage

	current int
	font    Font
}

// NewRecorder returns a Recorder measuring with m.
func NewRecorder(m Measurer) *Recorder {
	return &Recorder{Measurer: m, Images: map[string]bool{}}
}

func (r *Recorder) AddPage() {
	r.Pages = append(r.Pages, RenderedPage{Index: len(r.Pages) + 1})
	r.current = len(r.Pages)
}

func (r *Recorder) SetPage(n int) {
	if n >= 1 && n <= len(r.Pages) {
		r.current = n
	}
}

func (r *Recorder) PageCount() int { return len(r.Pages) }

func (r *Recorder) SetFont(f Font) { r.font = f }

func (r *Recorder) StringWidth(s string) float64 {
	return r.Measurer.Width(r.font, s)
}

func (r *Recorder) Text(x, y, w, h float64, s string, align Align) {
	r.record(Command{Op: "text", X: x, Y: y, W: w, H: h, Text: s, Font: r.font, Align: align})
}

func (r *Recorder) Rect(x, y, w, h float64, fill *Color, border bool) {
	r.record(Command{Op: "rect", X: x, Y: y, W: w, H: h, Fill: fill, Border: border})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.record(Command{Op: "line", X: x1, Y: y1, W: x2 - x1, H: y2 - y1})
}

func (r *Recorder) Image(key string, x, y, w, h float64) bool {
	if !r.Images[key] {
		return false
	}
	r.record(Command{Op: "image", X: x, Y: y, W: w, H: h, Text: key})
	return true
}

// Output writes a textual listing of every page.
func (r *Recorder) Output(w io.Writer) error {
	for _, p := range r.Pages {
		if _, err := fmt.Fprintf(w, "page %d\n", p.Index); err != nil {
			return err
		}
		for _, c := range p.Commands {
			if _, err := fmt.Fprintf(w, "  %s %.2f %.2f %.2f %.2f %q\n", c.Op, c.X, c.Y, c.W, c.H, c.Text); err != nil {
				return err
			}
		}
	}
	return nil
}

// Texts returns the text drawn on page n in drawing order.
func (r *Recorder) Texts(n int) []string {
	if n < 1 || n > len(r.Pages) {
		return nil
	}
	var out []string
	for _, c := range r.Pages[n-1].Commands {
		if c.Op == "text" {
			out = append(out, c.Text)
		}
	}
	return out
}

func (r *Recorder) record(c Command) {
	if r.current == 0 {
		r.AddPage()
	}
	p := &r.Pages[r.current-1]
	p.Commands = append(p.Commands, c)
}
