package document

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

const fontFamily = "Helvetica"

// PDF is a Surface backed by gofpdf.
type PDF struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// NewPDF creates an empty gofpdf document with layout's page size in points.
// Automatic page breaks are off; the Document decides where pages end.
func NewPDF(layout Layout, title string) *PDF {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: layout.PageWidth, Ht: layout.PageHeight},
	})
	pdf.SetMargins(layout.Margins.Left, layout.Margins.Top, layout.Margins.Right)
	pdf.SetAutoPageBreak(false, layout.Margins.Bottom)
	pdf.SetTitle(title, true)
	pdf.SetCreator("omnipay-backoffice", true)
	pdf.SetFont(fontFamily, Regular, 10)

	return &PDF{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (p *PDF) AddPage() { p.pdf.AddPage() }

func (p *PDF) PageNo() int { return p.pdf.PageNo() }

func (p *PDF) SetFont(style string, size float64) { p.pdf.SetFont(fontFamily, style, size) }

func (p *PDF) SetFillColor(c Color) { p.pdf.SetFillColor(c.R, c.G, c.B) }

func (p *PDF) SetTextColor(c Color) { p.pdf.SetTextColor(c.R, c.G, c.B) }

func (p *PDF) SetDrawColor(c Color) { p.pdf.SetDrawColor(c.R, c.G, c.B) }

func (p *PDF) SetLineWidth(w float64) { p.pdf.SetLineWidth(w) }

func (p *PDF) Rect(x, y, w, h float64, style string) { p.pdf.Rect(x, y, w, h, style) }

func (p *PDF) Text(x, y, w, h float64, s string, align Align) {
	p.pdf.SetXY(x, y)
	p.pdf.CellFormat(w, h, p.tr(s), "", 0, align.String()+"M", false, 0, "")
}

func (p *PDF) MultiText(x, y, w, lineHeight float64, s string, align Align) {
	p.pdf.SetXY(x, y)
	p.pdf.MultiCell(w, lineHeight, p.tr(s), "", align.String(), false)
}

func (p *PDF) SplitText(s string, w float64) []string {
	raw := p.pdf.SplitLines([]byte(p.tr(s)), w)
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = string(l)
	}
	return lines
}

func (p *PDF) ClipRect(x, y, w, h float64) { p.pdf.ClipRect(x, y, w, h, false) }

func (p *PDF) ClipEnd() { p.pdf.ClipEnd() }

func (p *PDF) Output(w io.Writer) error { return p.pdf.Output(w) }

func (p *PDF) Err() error { return p.pdf.Error() }
