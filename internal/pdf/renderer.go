// Package pdf renders assembled documents to PDF bytes with gofpdf.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/rodrigobarrosparreira/br-desk/pkg/pdfdoc"
)

// Band heights reserved for the letterhead images.
const (
	headerHeight = 35.0
	footerHeight = 25.0
	marginSide   = 20.0
)

// Column width shares of the line-item table, matching the printed layout.
var tableShares = []float64{0.10, 0.15, 0.45, 0.10, 0.20}

// Renderer renders documents onto A4 pages with the association letterhead.
type Renderer struct {
	headerImage    string
	footerImage    string
	signatureImage string
}

// Option adjusts a Renderer.
type Option func(*Renderer)

// WithLetterhead sets the header and footer band images. Empty paths leave
// the bands blank.
func WithLetterhead(header, footer string) Option {
	return func(r *Renderer) {
		r.headerImage = header
		r.footerImage = footer
	}
}

// WithSignatureImage sets the image stamped on signature blocks that carry
// the association's signature.
func WithSignatureImage(path string) Option {
	return func(r *Renderer) {
		r.signatureImage = path
	}
}

// NewRenderer builds a Renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render lays the document out on A4 pages and returns the PDF bytes.
func (r *Renderer) Render(doc pdfdoc.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	usable := pageWidth - 2*marginSide

	pdf.SetMargins(marginSide, headerHeight+10, marginSide)
	pdf.SetAutoPageBreak(true, footerHeight+10)

	pdf.SetHeaderFunc(func() {
		if r.headerImage == "" {
			return
		}
		pdf.ImageOptions(r.headerImage, 0, 0, pageWidth, headerHeight,
			false, gofpdf.ImageOptions{ImageType: "", ReadDpi: true}, 0, "")
	})
	pdf.SetFooterFunc(func() {
		if r.footerImage == "" {
			return
		}
		_, pageHeight := pdf.GetPageSize()
		pdf.ImageOptions(r.footerImage, 0, pageHeight-footerHeight, pageWidth, footerHeight,
			false, gofpdf.ImageOptions{ImageType: "", ReadDpi: true}, 0, "")
	})

	pdf.AddPage()

	for _, block := range doc.Blocks {
		switch block.Kind {
		case pdfdoc.KindTitle:
			pdf.SetFont("Helvetica", "B", 14)
			pdf.MultiCell(usable, 7, tr(block.Text), "", "C", false)
			pdf.Ln(5)

		case pdfdoc.KindParagraph:
			style := ""
			if block.Bold {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, 11)
			pdf.MultiCell(usable, 6, tr(block.Text), "", "J", false)
			pdf.Ln(3)

		case pdfdoc.KindLines:
			pdf.SetFont("Helvetica", "", 11)
			for _, line := range block.Lines {
				pdf.MultiCell(usable, 6, tr(line), "", "L", false)
			}
			pdf.Ln(3)

		case pdfdoc.KindTable:
			r.renderTable(pdf, tr, usable, block)

		case pdfdoc.KindDateLine:
			pdf.Ln(6)
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(usable, 6, tr(block.Text), "", "R", false)
			pdf.Ln(3)

		case pdfdoc.KindSignature:
			r.renderSignature(pdf, tr, usable, block)

		default:
			return nil, fmt.Errorf("pdf: unknown block kind %q", block.Kind)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render %s: %w", doc.Type, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) renderTable(pdf *gofpdf.Fpdf, tr func(string) string, usable float64, block pdfdoc.Block) {
	widths := make([]float64, len(block.Header))
	for i := range widths {
		share := 1.0 / float64(len(widths))
		if i < len(tableShares) {
			share = tableShares[i]
		}
		widths[i] = usable * share
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(238, 238, 238)
	for i, cell := range block.Header {
		pdf.CellFormat(widths[i], 7, tr(cell), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	if len(block.Rows) == 0 && block.Empty != "" {
		pdf.CellFormat(usable, 7, tr(block.Empty), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	for _, row := range block.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			align := "L"
			switch i {
			case 3:
				align = "C"
			case 4:
				align = "R"
			}
			pdf.CellFormat(widths[i], 7, tr(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(5)
}

func (r *Renderer) renderSignature(pdf *gofpdf.Fpdf, tr func(string) string, usable float64, block pdfdoc.Block) {
	const lineWidth = 100.0

	pdf.Ln(14)
	x := marginSide + (usable-lineWidth)/2
	y := pdf.GetY()
	pdf.Line(x, y, x+lineWidth, y)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.MultiCell(usable, 6, tr(block.Name), "", "C", false)

	pdf.SetFont("Helvetica", "", 10)
	for _, detail := range block.Details {
		pdf.MultiCell(usable, 5, tr(detail), "", "C", false)
	}

	if block.WithImage && r.signatureImage != "" {
		pdf.ImageOptions(r.signatureImage, marginSide+(usable-50)/2, pdf.GetY()+2, 50, 0,
			false, gofpdf.ImageOptions{ImageType: "", ReadDpi: true}, 0, "")
		pdf.Ln(25)
	}
}
