package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"resumebuilder/internal/model"
)

// ContentType is the media type of rendered documents.
const ContentType = "application/pdf"

// ErrRender wraps failures reported by the PDF writer.
var ErrRender = errors.New("render pdf")

// Document is a rendered resume.
type Document struct {
	Bytes []byte
	Pages int
}

// Renderer turns a ResumeRecord into a PDF. It holds configuration only and
// is safe for concurrent use; each call builds its own document.
type Renderer struct {
	theme        Theme
	compress     bool
	creationDate time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTheme replaces the default layout metrics.
func WithTheme(t Theme) Option {
	return func(r *Renderer) { r.theme = t }
}

// WithCompression toggles content stream compression. Uncompressed output
// keeps the text operators readable in the raw bytes.
func WithCompression(on bool) Option {
	return func(r *Renderer) { r.compress = on }
}

// WithCreationDate pins the document creation date, making output reproducible.
func WithCreationDate(t time.Time) Option {
	return func(r *Renderer) { r.creationDate = t }
}

// NewRenderer returns a Renderer using DefaultTheme with compression on.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{theme: DefaultTheme(), compress: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render lays out rec and serializes the PDF.
func (r *Renderer) Render(ctx context.Context, rec model.ResumeRecord) (doc *Document, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer func() {
		if p := recover(); p != nil {
			doc, err = nil, fmt.Errorf("%w: %v", ErrRender, p)
		}
	}()

	pdf := r.newDocument(rec)
	NewLayout(newFPDFCanvas(pdf), r.theme).Draw(rec)
	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrRender, pdf.Error())
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return &Document{Bytes: buf.Bytes(), Pages: pdf.PageCount()}, nil
}

func documentTitle(name string) string {
	return name + " – Resume"
}

func (r *Renderer) newDocument(rec model.ResumeRecord) *fpdf.Fpdf {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		SizeStr:        strings.ToUpper(r.theme.PageSize),
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(r.compress)
	pdf.SetCreator("resumebuilder", false)
	if rec.Name != "" {
		pdf.SetTitle(documentTitle(rec.Name), true)
		pdf.SetAuthor(rec.Name, true)
	}
	if !r.creationDate.IsZero() {
		pdf.SetCreationDate(r.creationDate)
		pdf.SetCatalogSort(true)
	}
	return pdf
}
