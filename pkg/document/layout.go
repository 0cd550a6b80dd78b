// Package document lays out paginated tabular reports on a fixed page size.
//
// Layout is cursor based: a Document tracks the vertical position on the
// current page, breaks pages before anything that would cross the bottom
// margin, and replays registered hooks (table headers, banners) at the top
// of every new page. Drawing goes through the Surface interface so the same
// layout code renders to gofpdf or to a Recorder in tests.
package document

import (
	"fmt"
	"strconv"
	"strings"
)

// A4 page size in points.
const (
	A4Width  = 595.28
	A4Height = 841.89
)

type Margins struct {
	Top, Right, Bottom, Left float64
}

// Layout is the fixed page geometry of a document.
type Layout struct {
	PageWidth  float64
	PageHeight float64
	Margins    Margins
}

// A4 returns a portrait A4 layout with the same margin on every side.
func A4(margin float64) Layout {
	return Layout{
		PageWidth:  A4Width,
		PageHeight: A4Height,
		Margins:    Margins{Top: margin, Right: margin, Bottom: margin, Left: margin},
	}
}

func (l Layout) UsableWidth() float64 {
	return l.PageWidth - l.Margins.Left - l.Margins.Right
}

// Bottom is the lowest y a row may reach before a page break.
func (l Layout) Bottom() float64 {
	return l.PageHeight - l.Margins.Bottom
}

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "C"
	case AlignRight:
		return "R"
	}
	return "L"
}

// Color is an RGB fill, text or stroke color.
type Color struct {
	R, G, B int
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// Hex parses "#2E86C1" or "2E86C1". Invalid input yields black.
func Hex(s string) Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Black
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Black
	}
	return Color{R: int(v >> 16 & 0xFF), G: int(v >> 8 & 0xFF), B: int(v & 0xFF)}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
