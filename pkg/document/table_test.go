package document

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sale struct {
	Code  string
	Total float64
	Note  string
}

func saleSpec() TableSpec[sale] {
	return TableSpec[sale]{
		WidthMode: Percent,
		Style:     DefaultStyle(),
		Empty:     "No records found",
		Columns: []Column[sale]{
			{Label: "Code", Width: 0.5, Value: func(s sale) any { return s.Code }},
			{Label: "Total", Width: 0.5, Align: AlignRight, Value: func(s sale) any { return s.Total }, Format: Currency},
		},
	}
}

func sales(n int) []sale {
	out := make([]sale, n)
	for i := range out {
		out[i] = sale{Code: fmt.Sprintf("INV-%03d", i), Total: float64(i)}
	}
	return out
}

func TestDrawTable_SinglePage(t *testing.T) {
	rec := NewRecorder()
	doc := New(rec, A4(15))

	require.NoError(t, DrawTable(doc, saleSpec(), sales(3)))

	assert.Equal(t, 1, rec.Pages())
	assert.Equal(t, []string{"Code", "Total", "INV-000", "$0.00", "INV-001", "$1.00", "INV-002", "$2.00"}, rec.Texts(1))
}

func TestDrawTable_RedrawsHeaderAfterEveryBreak(t *testing.T) {
	rec := NewRecorder()
	doc := New(rec, A4(15))

	require.NoError(t, DrawTable(doc, saleSpec(), sales(80)))

	require.Greater(t, rec.Pages(), 1)
	for page := 1; page <= rec.Pages(); page++ {
		texts := rec.Texts(page)
		require.GreaterOrEqual(t, len(texts), 2, "page %d", page)
		assert.Equal(t, "Code", texts[0], "page %d", page)
		assert.Equal(t, "Total", texts[1], "page %d", page)
	}

	var rows int
	for page := 1; page <= rec.Pages(); page++ {
		for _, s := range rec.Texts(page) {
			if strings.HasPrefix(s, "INV-") {
				rows++
			}
		}
	}
	assert.Equal(t, 80, rows)
}

func TestDrawTable_RowsStayAboveBottomMargin(t *testing.T) {
	rec := NewRecorder()
	layout := A4(15)
	doc := New(rec, layout)

	require.NoError(t, DrawTable(doc, saleSpec(), sales(120)))

	for _, op := range rec.Ops {
		if op.Kind == "rect" {
			assert.LessOrEqual(t, op.Y+op.H, layout.Bottom()+0.001)
		}
	}
}

func TestDrawTable_ZebraByIndexParity(t *testing.T) {
	rec := NewRecorder()
	doc := New(rec, A4(15))
	spec := saleSpec()
	spec.Style.Borders = false

	require.NoError(t, DrawTable(doc, spec, sales(4)))

	var zebra int
	for _, op := range rec.Ops {
		if op.Kind == "rect" && op.Fill == spec.Style.ZebraFill {
			zebra++
		}
	}
	assert.Equal(t, 2, zebra)
}

func TestDrawTable_Empty(t *testing.T) {
	rec := NewRecorder()
	doc := New(rec, A4(15))
	doc.Title("Sales Report", 18)

	require.NoError(t, DrawTable(doc, saleSpec(), nil))

	assert.Equal(t, []string{"Sales Report", "Code", "Total", "No records found"}, rec.Texts(1))
	out, err := doc.Bytes()
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestDrawTable_FormatErrorAbortsBeforeDrawing(t *testing.T) {
	rec := NewRecorder()
	doc := New(rec, A4(15))
	spec := saleSpec()
	spec.Columns[1].Value = func(s sale) any { return s.Note }

	err := DrawTable(doc, spec, sales(2))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormat))
	assert.Empty(t, rec.Texts(1))
}

func TestDrawTable_WrapGrowsRows(t *testing.T) {
	rec := NewRecorder()
	doc := New(rec, A4(18))
	spec := TableSpec[sale]{
		WidthMode: Scale,
		Style:     DefaultStyle(),
		Wrap:      true,
		Columns: []Column[sale]{
			{Label: "Code", Width: 40, Value: func(s sale) any { return s.Code }},
			{Label: "Note", Width: 60, Value: func(s sale) any { return s.Note }},
		},
	}
	rows := []sale{
		{Code: "A", Note: "short"},
		{Code: "B", Note: strings.Repeat("a long description ", 20)},
	}

	require.NoError(t, DrawTable(doc, spec, rows))

	var heights []float64
	for _, op := range rec.Ops {
		if op.Kind == "rect" && op.Style == "F" && op.Fill == spec.Style.ZebraFill {
			heights = append(heights, op.H)
		}
	}
	require.Len(t, heights, 1)
	assert.Equal(t, spec.Style.RowHeight, heights[0])

	var borderHeights []float64
	for _, op := range rec.Ops {
		if op.Kind == "rect" && op.Style == "D" {
			borderHeights = append(borderHeights, op.H)
		}
	}
	require.Len(t, borderHeights, 4)
	assert.Greater(t, borderHeights[2], spec.Style.RowHeight)
}

func TestDrawTable_WrappedCellStaysAboveBottomMargin(t *testing.T) {
	rec := NewRecorder()
	layout := A4(18)
	doc := New(rec, layout)
	spec := TableSpec[sale]{
		WidthMode: Scale,
		Style:     DefaultStyle(),
		Wrap:      true,
		Columns: []Column[sale]{
			{Label: "Code", Width: 40, Value: func(s sale) any { return s.Code }},
			{Label: "Note", Width: 60, Value: func(s sale) any { return s.Note }},
		},
	}
	rows := []sale{{Code: "A", Note: strings.Repeat("word ", 20000)}}

	require.NoError(t, DrawTable(doc, spec, rows))
	_, err := doc.Bytes()
	require.NoError(t, err)

	var drawn int
	for _, op := range rec.Ops {
		if op.Kind != "multitext" {
			continue
		}
		lines := strings.Count(op.Text, "\n") + 1
		assert.LessOrEqual(t, op.Y+float64(lines)*op.H, layout.Bottom(), "page %d", op.Page)
		drawn++
	}
	assert.Equal(t, 2, drawn)
}

func TestDocument_BreakHooksRunInOrder(t *testing.T) {
	rec := NewRecorder()
	doc := New(rec, A4(40))
	var calls []string
	popA := doc.PushBreakHook(func() { calls = append(calls, "banner") })
	popB := doc.PushBreakHook(func() { calls = append(calls, "header") })

	doc.NewPage()
	popB()
	doc.NewPage()
	popA()
	doc.NewPage()

	assert.Equal(t, []string{"banner", "header", "banner"}, calls)
	assert.Equal(t, 4, rec.Pages())
}

func TestDocument_FooterOnEveryPage(t *testing.T) {
	rec := NewRecorder()
	doc := New(rec, A4(40))
	doc.SetFooter(PageNumberFooter(doc))

	require.NoError(t, DrawTable(doc, saleSpec(), sales(60)))
	_, err := doc.Bytes()
	require.NoError(t, err)

	for page := 1; page <= rec.Pages(); page++ {
		texts := rec.Texts(page)
		assert.Equal(t, fmt.Sprintf("Page %d", page), texts[len(texts)-1])
	}
}
