package document

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// WriteXLSX renders the same table spec as a single-sheet workbook. Numeric
// and time values are written as typed cells, everything else as the
// formatted text.
func WriteXLSX[T any](sheet string, spec TableSpec[T], rows []T) ([]byte, error) {
	cells, err := spec.Cells(rows)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	st := spec.Style
	if st.RowHeight <= 0 {
		st = DefaultStyle()
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: hexNoHash(st.HeaderText)},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hexNoHash(st.HeaderFill)}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, fmt.Errorf("money style: %w", err)
	}
	timeStyle, err := f.NewStyle(&excelize.Style{NumFmt: 22})
	if err != nil {
		return nil, fmt.Errorf("time style: %w", err)
	}

	for j, c := range spec.Columns {
		cell, _ := excelize.CoordinatesToCellName(j+1, 1)
		if err := f.SetCellValue(sheet, cell, c.Label); err != nil {
			return nil, err
		}
		col, _ := excelize.ColumnNumberToName(j + 1)
		width := 14.0
		if spec.WidthMode == Percent {
			width = c.Width * 160
		} else if c.Width > 0 {
			width = c.Width / 4
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return nil, err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(spec.Columns), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return nil, err
	}

	for i, row := range rows {
		for j, c := range spec.Columns {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			var v any
			if c.Value != nil {
				v = c.Value(row)
			}
			typed, style := typedValue(v, moneyStyle, timeStyle)
			if typed == nil {
				typed = cells[i][j]
			}
			if err := f.SetCellValue(sheet, cell, typed); err != nil {
				return nil, err
			}
			if style != 0 {
				if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
					return nil, err
				}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func typedValue(v any, moneyStyle, timeStyle int) (any, int) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.InexactFloat64(), moneyStyle
	case decimal.NullDecimal:
		return x.Decimal.InexactFloat64(), moneyStyle
	case int, int64, int32:
		return x, 0
	case time.Time:
		if x.IsZero() {
			return nil, 0
		}
		return x, timeStyle
	}
	return nil, 0
}

func hexNoHash(c Color) string {
	return c.String()[1:]
}
