package document

import (
	"fmt"
	"math"
	"strings"
)

// Column describes one table column. Value extracts the raw cell value from
// a row and Format renders it; a nil Format means Plain.
type Column[T any] struct {
	Label  string
	Width  float64
	Align  Align
	Value  func(T) any
	Format Formatter
}

// Style is the visual part of a table.
type Style struct {
	RowHeight    float64
	HeaderHeight float64
	Padding      float64
	FontSize     float64
	HeaderFont   float64
	HeaderFill   Color
	HeaderText   Color
	ZebraFill    Color
	Zebra        bool
	Border       Color
	Borders      bool
}

// DefaultStyle is the blue header, zebra striped look of the sales reports.
func DefaultStyle() Style {
	return Style{
		RowHeight:    24,
		HeaderHeight: 26,
		Padding:      4,
		FontSize:     9,
		HeaderFont:   10,
		HeaderFill:   Hex("#2E86C1"),
		HeaderText:   White,
		ZebraFill:    Hex("#F8F9F9"),
		Zebra:        true,
		Border:       Hex("#D5DBDB"),
		Borders:      true,
	}
}

// TableSpec drives generic table rendering for rows of type T.
type TableSpec[T any] struct {
	Columns   []Column[T]
	WidthMode WidthMode
	Style     Style
	// Wrap measures wrapped cell text and grows the row to fit instead of
	// clipping it.
	Wrap bool
	// Empty is drawn under the header when there are no rows.
	Empty string
}

// Widths resolves the column widths against a usable width.
func (t TableSpec[T]) Widths(usable float64) ([]float64, error) {
	req := make([]float64, len(t.Columns))
	for i, c := range t.Columns {
		req[i] = c.Width
	}
	return ResolveWidths(t.WidthMode, req, usable)
}

// Cells formats every row up front so a bad value fails before anything is drawn.
func (t TableSpec[T]) Cells(rows []T) ([][]string, error) {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(t.Columns))
		for j, c := range t.Columns {
			format := c.Format
			if format == nil {
				format = Plain
			}
			var v any
			if c.Value != nil {
				v = c.Value(row)
			}
			s, err := format(v)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", i+1, c.Label, err)
			}
			out[i][j] = s
		}
	}
	return out, nil
}

// DrawTable renders a table at the cursor. The header is drawn at the start
// and again at the top of every page the table continues on. Every row is
// checked against the bottom margin before it is drawn.
func DrawTable[T any](d *Document, spec TableSpec[T], rows []T) error {
	st := spec.Style
	if st.RowHeight <= 0 {
		st = DefaultStyle()
	}

	widths, err := spec.Widths(d.layout.UsableWidth())
	if err != nil {
		return err
	}
	cells, err := spec.Cells(rows)
	if err != nil {
		return err
	}

	x0 := d.layout.Margins.Left
	lineHeight := st.FontSize * 1.2

	rowHeight := func(i int) float64 {
		if !spec.Wrap {
			return st.RowHeight
		}
		d.s.SetFont(Regular, st.FontSize)
		lines := 1
		for j, text := range cells[i] {
			if n := len(d.s.SplitText(text, widths[j]-2*st.Padding)); n > lines {
				lines = n
			}
		}
		h := math.Max(st.RowHeight, float64(lines)*lineHeight+2*st.Padding)
		// a single row never exceeds one page
		return math.Min(h, d.layout.Bottom()-d.layout.Margins.Top-st.HeaderHeight)
	}

	drawHeader := func() {
		d.s.SetFillColor(st.HeaderFill)
		d.s.Rect(x0, d.y, d.layout.UsableWidth(), st.HeaderHeight, "F")
		d.s.SetTextColor(st.HeaderText)
		d.s.SetFont(Bold, st.HeaderFont)
		x := x0
		for j, c := range spec.Columns {
			d.s.Text(x+st.Padding, d.y, widths[j]-2*st.Padding, st.HeaderHeight, c.Label, AlignCenter)
			x += widths[j]
		}
		d.s.SetTextColor(Black)
		d.y += st.HeaderHeight
	}

	first := st.RowHeight
	if len(cells) > 0 {
		first = rowHeight(0)
	}
	d.Ensure(st.HeaderHeight + first)
	drawHeader()
	pop := d.PushBreakHook(drawHeader)
	defer pop()

	if len(cells) == 0 {
		if spec.Empty != "" {
			d.Ensure(st.RowHeight)
			d.s.SetFont(Regular, st.FontSize)
			d.s.Text(x0, d.y, d.layout.UsableWidth(), st.RowHeight, spec.Empty, AlignCenter)
			d.y += st.RowHeight
		}
		return nil
	}

	for i, row := range cells {
		h := rowHeight(i)
		d.Ensure(h)

		if st.Zebra && i%2 == 0 {
			d.s.SetFillColor(st.ZebraFill)
			d.s.Rect(x0, d.y, d.layout.UsableWidth(), h, "F")
		}

		d.s.SetFont(Regular, st.FontSize)
		d.s.SetTextColor(Black)
		if st.Borders {
			d.s.SetDrawColor(st.Border)
			d.s.SetLineWidth(0.5)
		}

		x := x0
		for j, text := range row {
			w := widths[j]
			if st.Borders {
				d.s.Rect(x, d.y, w, h, "D")
			}
			align := spec.Columns[j].Align
			if spec.Wrap {
				// rows capped at one page drop the lines that do not fit
				lines := d.s.SplitText(text, w-2*st.Padding)
				if fit := int(math.Max(1, math.Floor((h-2*st.Padding)/lineHeight))); len(lines) > fit {
					lines = lines[:fit]
				}
				d.s.ClipRect(x, d.y, w, h)
				d.s.MultiText(x+st.Padding, d.y+st.Padding, w-2*st.Padding, lineHeight, strings.Join(lines, "\n"), align)
				d.s.ClipEnd()
			} else {
				d.s.ClipRect(x, d.y, w, h)
				d.s.Text(x+st.Padding, d.y, w-2*st.Padding, h, text, align)
				d.s.ClipEnd()
			}
			x += w
		}
		d.y += h
	}

	return nil
}
