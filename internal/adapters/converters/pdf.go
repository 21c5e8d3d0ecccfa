package converters

import (
	"fmt"
	"io"
	"strings"

	"github.com/GabrielNunesIT/openapi-explorer/internal/domain"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfFormat      = "pdf"
	pdfPageWidth   = 190.0
	pdfMarginLeft  = 10.0
	pdfMarginTop   = 10.0
	pdfMarginRight = 10.0
	pdfLineHeight  = 5.0
	pdfIndentStep  = 2.0
)

// PDFConverter converts reports to PDF format.
type PDFConverter struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// NewPDFConverter creates a new PDF converter.
func NewPDFConverter() *PDFConverter {
	return &PDFConverter{}
}

// Format returns the output format name.
func (c *PDFConverter) Format() string {
	return pdfFormat
}

// Convert writes a title page with the document summary, then one block per endpoint.
func (c *PDFConverter) Convert(report *domain.Report, output io.Writer) error {
	c.pdf = gofpdf.New("P", "mm", "A4", "")
	c.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	c.pdf.SetDrawColor(180, 180, 180) // Light gray for all borders
	c.tr = c.pdf.UnicodeTranslatorFromDescriptor("")

	c.addTitlePage(report)

	if len(report.Endpoints) > 0 {
		c.pdf.AddPage()
		c.addSectionHeader("API Endpoints")

		for _, entry := range report.Endpoints {
			c.addEndpoint(entry)
		}
	}

	if err := c.pdf.Error(); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	return c.pdf.Output(output)
}

func (c *PDFConverter) addTitlePage(report *domain.Report) {
	c.pdf.AddPage()

	c.pdf.SetFont("Arial", "B", 24)
	c.pdf.Ln(20)
	c.pdf.CellFormat(pdfPageWidth, 12, c.tr(reportTitle(report)), "", 1, "C", false, 0, "")
	c.pdf.Ln(10)

	c.pdf.SetFont("Courier", "", 9)
	for _, line := range textLines(report.Summary) {
		c.addTextLine(line)
	}
}

func (c *PDFConverter) addSectionHeader(title string) {
	c.pdf.SetFont("Arial", "B", 18)
	c.pdf.CellFormat(pdfPageWidth, 10, c.tr(title), "", 1, "", false, 0, "")
	c.pdf.Ln(4)
}

func (c *PDFConverter) addEndpoint(entry domain.ReportEntry) {
	lines := textLines(entry.Text)
	if len(lines) == 0 {
		return
	}

	c.checkPageBreak(pdfLineHeight * float64(min(len(lines), 6)))

	// First line is the "METHOD path - summary" heading.
	c.pdf.SetFont("Arial", "B", 11)
	c.pdf.SetTextColor(0, 102, 204)
	c.pdf.MultiCell(pdfPageWidth, 6, c.tr(lines[0]), "", "", false)
	c.pdf.SetTextColor(0, 0, 0)

	c.pdf.SetFont("Courier", "", 9)
	for _, line := range lines[1:] {
		c.addTextLine(line)
	}

	// Separator
	c.pdf.Ln(2)
	c.pdf.SetDrawColor(220, 220, 220)
	c.pdf.Line(pdfMarginLeft, c.pdf.GetY(), pdfMarginLeft+pdfPageWidth, c.pdf.GetY())
	c.pdf.SetDrawColor(180, 180, 180) // Reset to standard light gray
	c.pdf.Ln(4)
}

// addTextLine keeps the rendered indentation as a left offset.
func (c *PDFConverter) addTextLine(line string) {
	trimmed := strings.TrimLeft(line, " ")
	indent := float64(len(line)-len(trimmed)) * pdfIndentStep

	c.checkPageBreak(pdfLineHeight)

	if trimmed == "" {
		c.pdf.Ln(pdfLineHeight)
		return
	}

	c.pdf.SetX(pdfMarginLeft + indent)
	c.pdf.MultiCell(pdfPageWidth-indent, pdfLineHeight-1, c.tr(trimmed), "", "", false)
}

func (c *PDFConverter) checkPageBreak(height float64) {
	_, pageHeight := c.pdf.GetPageSize()
	_, _, _, bottomMargin := c.pdf.GetMargins()

	if c.pdf.GetY()+height > pageHeight-bottomMargin-10 {
		c.pdf.AddPage()
	}
}
