package document

import (
	"bytes"
	"fmt"
)

// Document tracks the cursor of a paginated layout on a Surface.
type Document struct {
	s      Surface
	layout Layout
	y      float64

	hooks  []func()
	footer func(page int)
}

// New starts a document with its first page.
func New(s Surface, layout Layout) *Document {
	d := &Document{s: s, layout: layout}
	s.AddPage()
	d.y = layout.Margins.Top
	return d
}

func (d *Document) Surface() Surface { return d.s }

func (d *Document) Layout() Layout { return d.layout }

// Y returns the current cursor position.
func (d *Document) Y() float64 { return d.y }

// Advance moves the cursor down by h.
func (d *Document) Advance(h float64) { d.y += h }

// SetFooter registers a function drawn at the bottom of every page.
func (d *Document) SetFooter(fn func(page int)) { d.footer = fn }

// PushBreakHook registers fn to run at the top of every new page, after the
// hooks already registered. The returned func removes it.
func (d *Document) PushBreakHook(fn func()) (pop func()) {
	d.hooks = append(d.hooks, fn)
	n := len(d.hooks)
	return func() {
		if len(d.hooks) >= n {
			d.hooks = d.hooks[:n-1]
		}
	}
}

// Fits reports whether a block of height h fits above the bottom margin.
func (d *Document) Fits(h float64) bool {
	return d.y+h <= d.layout.Bottom()
}

// Ensure breaks the page when a block of height h does not fit. It reports
// whether a break happened.
func (d *Document) Ensure(h float64) bool {
	if d.Fits(h) {
		return false
	}
	d.NewPage()
	return true
}

// NewPage finishes the current page and replays the break hooks.
func (d *Document) NewPage() {
	d.drawFooter()
	d.s.AddPage()
	d.y = d.layout.Margins.Top
	for _, fn := range d.hooks {
		fn()
	}
}

func (d *Document) drawFooter() {
	if d.footer == nil {
		return
	}
	d.footer(d.s.PageNo())
}

// Title draws centered bold text across the usable width.
func (d *Document) Title(text string, size float64) {
	h := size * 1.4
	d.Ensure(h)
	d.s.SetFont(Bold, size)
	d.s.SetTextColor(Black)
	d.s.Text(d.layout.Margins.Left, d.y, d.layout.UsableWidth(), h, text, AlignCenter)
	d.y += h
}

// Line draws one line of text across the usable width.
func (d *Document) Line(text string, size float64, style string, align Align) {
	h := size * 1.5
	d.Ensure(h)
	d.s.SetFont(style, size)
	d.s.SetTextColor(Black)
	d.s.Text(d.layout.Margins.Left, d.y, d.layout.UsableWidth(), h, text, align)
	d.y += h
}

// Heading draws a section heading with a rule under it.
func (d *Document) Heading(text string, size float64) {
	h := size * 1.6
	d.Ensure(h + 4)
	d.s.SetFont(Bold, size)
	d.s.SetTextColor(Black)
	d.s.Text(d.layout.Margins.Left, d.y, d.layout.UsableWidth(), h, text, AlignLeft)
	d.y += h
	d.s.SetFillColor(Hex("#D5DBDB"))
	d.s.Rect(d.layout.Margins.Left, d.y, d.layout.UsableWidth(), 0.8, "F")
	d.y += 4
}

// KeyValue draws a label on the left and its value right aligned.
func (d *Document) KeyValue(label, value string, size float64) {
	h := size * 1.6
	d.Ensure(h)
	w := d.layout.UsableWidth()
	d.s.SetTextColor(Black)
	d.s.SetFont(Regular, size)
	d.s.Text(d.layout.Margins.Left, d.y, w*0.6, h, label, AlignLeft)
	d.s.SetFont(Bold, size)
	d.s.Text(d.layout.Margins.Left+w*0.6, d.y, w*0.4, h, value, AlignRight)
	d.y += h
}

// Banner draws a filled full-width box with a left and a right caption.
func (d *Document) Banner(left, right string, height float64, fill, text Color) {
	d.Ensure(height)
	x := d.layout.Margins.Left
	w := d.layout.UsableWidth()
	d.s.SetFillColor(fill)
	d.s.Rect(x, d.y, w, height, "F")
	d.s.SetTextColor(text)
	d.s.SetFont(Bold, 10)
	d.s.Text(x+6, d.y, w/2-6, height, left, AlignLeft)
	d.s.SetFont(Regular, 9)
	d.s.Text(x+w/2, d.y, w/2-6, height, right, AlignRight)
	d.s.SetTextColor(Black)
	d.y += height
}

// Bytes draws the last footer and serializes the finished document. Nothing
// is returned unless the whole document rendered without error.
func (d *Document) Bytes() ([]byte, error) {
	d.drawFooter()
	if err := d.s.Err(); err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}
	var buf bytes.Buffer
	if err := d.s.Output(&buf); err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}
	return buf.Bytes(), nil
}

// PageNumberFooter draws "Page N" centered in the bottom margin.
func PageNumberFooter(d *Document) func(page int) {
	return func(page int) {
		l := d.layout
		d.s.SetFont(Regular, 8)
		d.s.SetTextColor(Hex("#7F8C8D"))
		d.s.Text(l.Margins.Left, l.Bottom()+2, l.UsableWidth(), l.Margins.Bottom/2, fmt.Sprintf("Page %d", page), AlignCenter)
		d.s.SetTextColor(Black)
	}
}
