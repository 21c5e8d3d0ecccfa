package converters

import (
	"fmt"
	"io"
	"strings"

	"github.com/GabrielNunesIT/openapi-explorer/internal/domain"
)

const textFormat = "text"

// TextConverter writes the report as plain text, exactly as the explorer prints it.
type TextConverter struct{}

// NewTextConverter creates a new text converter.
func NewTextConverter() *TextConverter {
	return &TextConverter{}
}

// Format returns the output format name.
func (c *TextConverter) Format() string {
	return textFormat
}

// Convert writes the summary followed by every endpoint detail.
func (c *TextConverter) Convert(report *domain.Report, output io.Writer) error {
	var sb strings.Builder

	if report.Summary != "" {
		sb.WriteString(report.Summary)
	}

	for _, entry := range report.Endpoints {
		sb.WriteString(entry.Text)
	}

	if _, err := io.WriteString(output, sb.String()); err != nil {
		return fmt.Errorf("failed to write text: %w", err)
	}

	return nil
}
