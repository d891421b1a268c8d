package document

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// Sink turns a document into downloadable bytes. The document only fixes
// line content and order; everything visual is the sink's call.
type Sink interface {
	Render(doc Document) ([]byte, error)
}

// Layout constants, in millimeters on an A4 portrait page. Lines are
// absolutely positioned down the left margin, ten apart.
const (
	pdfMarginX   = 10.0
	pdfTopY      = 10.0
	pdfLineStep  = 10.0
	pdfPageLimit = 280.0
)

// PDFSink renders one positioned text line per document line, breaking to a
// fresh page when the current one fills.
type PDFSink struct{}

func NewPDFSink() *PDFSink {
	return &PDFSink{}
}

func (s *PDFSink) Render(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.AddPage()

	y := pdfTopY
	for _, line := range doc.Lines() {
		if y > pdfPageLimit {
			pdf.AddPage()
			y = pdfTopY
		}
		pdf.Text(pdfMarginX, y, line)
		y += pdfLineStep
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
