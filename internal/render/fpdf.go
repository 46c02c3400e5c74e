package render

import (
	"github.com/go-pdf/fpdf"
)

const fontFamily = "Helvetica"

// fpdfCanvas adapts an fpdf document (top-left origin) to Canvas.
type fpdfCanvas struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
	w, h      float64
}

func newFPDFCanvas(pdf *fpdf.Fpdf) *fpdfCanvas {
	w, h := pdf.GetPageSize()
	return &fpdfCanvas{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
		w:         w,
		h:         h,
	}
}

func (c *fpdfCanvas) PageSize() (float64, float64) { return c.w, c.h }

func (c *fpdfCanvas) AddPage() { c.pdf.AddPage() }

func (c *fpdfCanvas) setFont(f Font) {
	style := ""
	if f.Bold {
		style = "B"
	}
	c.pdf.SetFont(fontFamily, style, f.Size)
}

func (c *fpdfCanvas) Text(x, y float64, s string, f Font, col Color) {
	c.setFont(f)
	c.pdf.SetTextColor(col.R, col.G, col.B)
	c.pdf.Text(x, c.h-y, c.translate(s))
}

func (c *fpdfCanvas) TextWidth(s string, f Font) float64 {
	c.setFont(f)
	return c.pdf.GetStringWidth(c.translate(s))
}

func (c *fpdfCanvas) Rect(x, y, w, h float64, col Color) {
	c.pdf.SetFillColor(col.R, col.G, col.B)
	c.pdf.Rect(x, c.h-(y+h), w, h, "F")
}

func (c *fpdfCanvas) Line(x1, y1, x2, y2, width float64, col Color) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
	c.pdf.SetLineWidth(width)
	c.pdf.Line(x1, c.h-y1, x2, c.h-y2)
}
