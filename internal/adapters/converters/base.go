// Package converters provides exporters that write a rendered report in various formats.
package converters

import (
	"fmt"
	"strings"

	"github.com/GabrielNunesIT/openapi-explorer/internal/domain"
)

// New returns the converter for the named format.
func New(format string) (domain.Converter, error) {
	switch strings.ToLower(format) {
	case "", "text", "txt":
		return NewTextConverter(), nil
	case "pdf":
		return NewPDFConverter(), nil
	case "docx", "word":
		return NewDocxConverter(), nil
	case "confluence", "adf":
		return NewADFConverter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: text, pdf, docx, confluence)", format)
	}
}

// reportTitle returns the heading of a report.
func reportTitle(report *domain.Report) string {
	title := strings.TrimSpace(report.Title)
	if title == "" {
		title = "API Endpoints"
	}

	if v := strings.TrimSpace(report.Version); v != "" {
		return fmt.Sprintf("%s (v%s)", title, v)
	}

	return title
}

// textLines splits rendered text into lines, dropping leading and trailing blank lines.
func textLines(text string) []string {
	text = strings.Trim(text, "\n")
	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}
