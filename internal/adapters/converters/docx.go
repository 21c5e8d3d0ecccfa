package converters

import (
	"fmt"
	"io"
	"strings"

	"github.com/GabrielNunesIT/openapi-explorer/internal/domain"
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const docxFormat = "docx"

// DocxConverter converts reports to Word (DOCX) format.
type DocxConverter struct{}

// NewDocxConverter creates a new DOCX converter.
func NewDocxConverter() *DocxConverter {
	return &DocxConverter{}
}

// Format returns the output format name.
func (c *DocxConverter) Format() string {
	return docxFormat
}

// Convert transforms a report to DOCX format.
func (c *DocxConverter) Convert(report *domain.Report, output io.Writer) error {
	document, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	c.addTitle(document, report)
	c.addSummary(document, report)
	c.addEndpoints(document, report)

	if err := document.Write(output); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	return nil
}

func (c *DocxConverter) addTitle(document *docx.RootDoc, report *domain.Report) {
	_, _ = document.AddHeading(reportTitle(report), 0) // Level 0 = Title style
	document.AddEmptyParagraph()
}

func (c *DocxConverter) addSummary(document *docx.RootDoc, report *domain.Report) {
	lines := textLines(report.Summary)
	if len(lines) == 0 {
		return
	}

	_, _ = document.AddHeading("Overview", 1)

	for _, line := range lines {
		document.AddParagraph(line)
	}

	document.AddEmptyParagraph()
}

func (c *DocxConverter) addEndpoints(document *docx.RootDoc, report *domain.Report) {
	if len(report.Endpoints) == 0 {
		return
	}

	_, _ = document.AddHeading("API Endpoints", 1)

	for _, entry := range report.Endpoints {
		lines := textLines(entry.Text)
		if len(lines) == 0 {
			continue
		}

		_, _ = document.AddHeading(lines[0], 2)

		for _, line := range lines[1:] {
			trimmed := strings.TrimLeft(line, " ")
			indent := strings.Repeat("    ", (len(line)-len(trimmed))/2)
			document.AddParagraph(indent + trimmed)
		}

		document.AddEmptyParagraph()
	}
}
