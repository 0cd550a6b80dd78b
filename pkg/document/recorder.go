package document

import (
	"fmt"
	"io"
	"strings"
)

// Op is one recorded drawing call.
type Op struct {
	Kind  string // "page", "rect", "text", "multitext"
	Page  int
	X, Y  float64
	W, H  float64
	Text  string
	Style string
	Fill  Color
}

// Recorder is a Surface that records drawing calls instead of producing a
// file. Text width is estimated at half the font size per character.
type Recorder struct {
	Ops []Op

	page     int
	fontSize float64
	fill     Color
	clip     int
}

func NewRecorder() *Recorder {
	return &Recorder{fontSize: 10}
}

func (r *Recorder) AddPage() {
	r.page++
	r.Ops = append(r.Ops, Op{Kind: "page", Page: r.page})
}

func (r *Recorder) PageNo() int { return r.page }

func (r *Recorder) SetFont(_ string, size float64) { r.fontSize = size }

func (r *Recorder) SetFillColor(c Color) { r.fill = c }

func (r *Recorder) SetTextColor(Color) {}

func (r *Recorder) SetDrawColor(Color) {}

func (r *Recorder) SetLineWidth(float64) {}

func (r *Recorder) Rect(x, y, w, h float64, style string) {
	r.Ops = append(r.Ops, Op{Kind: "rect", Page: r.page, X: x, Y: y, W: w, H: h, Style: style, Fill: r.fill})
}

func (r *Recorder) Text(x, y, w, h float64, s string, _ Align) {
	r.Ops = append(r.Ops, Op{Kind: "text", Page: r.page, X: x, Y: y, W: w, H: h, Text: s})
}

func (r *Recorder) MultiText(x, y, w, lineHeight float64, s string, _ Align) {
	r.Ops = append(r.Ops, Op{Kind: "multitext", Page: r.page, X: x, Y: y, W: w, H: lineHeight, Text: s})
}

func (r *Recorder) SplitText(s string, w float64) []string {
	perLine := int(w / (r.fontSize / 2))
	if perLine < 1 {
		perLine = 1
	}
	var lines []string
	var cur string
	for _, word := range strings.Fields(s) {
		switch {
		case cur == "":
			cur = word
		case len(cur)+1+len(word) <= perLine:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines
}

func (r *Recorder) ClipRect(float64, float64, float64, float64) { r.clip++ }

func (r *Recorder) ClipEnd() { r.clip-- }

func (r *Recorder) Output(w io.Writer) error {
	if r.clip != 0 {
		return fmt.Errorf("unbalanced clipping: %d", r.clip)
	}
	_, err := fmt.Fprintf(w, "recorded %d ops on %d pages", len(r.Ops), r.page)
	return err
}

func (r *Recorder) Err() error { return nil }

// Texts returns the text drawn on a page, in drawing order.
func (r *Recorder) Texts(page int) []string {
	var out []string
	for _, op := range r.Ops {
		if op.Page == page && (op.Kind == "text" || op.Kind == "multitext") {
			out = append(out, op.Text)
		}
	}
	return out
}

// Pages returns the number of pages started.
func (r *Recorder) Pages() int { return r.page }
