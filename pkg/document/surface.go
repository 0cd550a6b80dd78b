package document

import "io"

// Font styles accepted by Surface.SetFont.
const (
	Regular = ""
	Bold    = "B"
)

// Surface is the set of drawing primitives the layout code needs.
// Coordinates are points from the top left corner of the page.
type Surface interface {
	AddPage()
	PageNo() int
	SetFont(style string, size float64)
	SetFillColor(c Color)
	SetTextColor(c Color)
	SetDrawColor(c Color)
	SetLineWidth(w float64)

	// Rect draws a rectangle; style is "F" (fill), "D" (stroke) or "FD".
	Rect(x, y, w, h float64, style string)
	// Text draws a single line inside the box, vertically centered.
	Text(x, y, w, h float64, s string, align Align)
	// MultiText draws wrapped text starting at (x, y).
	MultiText(x, y, w, lineHeight float64, s string, align Align)
	// SplitText wraps s to lines no wider than w with the current font.
	SplitText(s string, w float64) []string
	ClipRect(x, y, w, h float64)
	ClipEnd()

	Output(w io.Writer) error
	Err() error
}
