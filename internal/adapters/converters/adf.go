package converters

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/GabrielNunesIT/openapi-explorer/internal/domain"
)

const adfFormat = "confluence"

// ADFConverter converts reports to Atlassian Document Format (ADF) for Confluence.
type ADFConverter struct{}

// NewADFConverter creates a new ADF converter.
func NewADFConverter() *ADFConverter {
	return &ADFConverter{}
}

// Format returns the output format name.
func (c *ADFConverter) Format() string {
	return adfFormat
}

// ADF node types.
type adfDocument struct {
	Version int       `json:"version"`
	Type    string    `json:"type"`
	Content []adfNode `json:"content"`
}

type adfNode struct {
	Type    string    `json:"type"`
	Attrs   *adfAttrs `json:"attrs,omitempty"`
	Content []adfNode `json:"content,omitempty"`
	Text    string    `json:"text,omitempty"`
	Marks   []adfMark `json:"marks,omitempty"`
}

type adfAttrs struct {
	Level    int    `json:"level,omitempty"`
	Language string `json:"language,omitempty"`
}

type adfMark struct {
	Type string `json:"type"`
}

// Convert transforms a report to ADF JSON format.
func (c *ADFConverter) Convert(report *domain.Report, output io.Writer) error {
	adf := &adfDocument{
		Version: 1,
		Type:    "doc",
		Content: []adfNode{},
	}

	adf.Content = append(adf.Content, c.heading(reportTitle(report), 1))

	if summary := textLines(report.Summary); len(summary) > 0 {
		adf.Content = append(adf.Content, c.codeBlock(summary))
	}

	if len(report.Endpoints) > 0 {
		adf.Content = append(adf.Content, c.heading("API Endpoints", 2))

		for _, entry := range report.Endpoints {
			adf.Content = append(adf.Content, c.endpointNodes(entry)...)
		}
	}

	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(adf); err != nil {
		return fmt.Errorf("failed to encode ADF: %w", err)
	}

	return nil
}

func (c *ADFConverter) heading(text string, level int) adfNode {
	return adfNode{
		Type:  "heading",
		Attrs: &adfAttrs{Level: level},
		Content: []adfNode{
			{Type: "text", Text: text},
		},
	}
}

func (c *ADFConverter) codeText(text string) adfNode {
	return adfNode{
		Type: "text",
		Text: text,
		Marks: []adfMark{
			{Type: "code"},
		},
	}
}

func (c *ADFConverter) codeBlock(lines []string) adfNode {
	return adfNode{
		Type:  "codeBlock",
		Attrs: &adfAttrs{Language: "text"},
		Content: []adfNode{
			{Type: "text", Text: strings.Join(lines, "\n")},
		},
	}
}

func (c *ADFConverter) endpointNodes(entry domain.ReportEntry) []adfNode {
	lines := textLines(entry.Text)
	if len(lines) == 0 {
		return nil
	}

	nodes := []adfNode{
		{
			Type:    "heading",
			Attrs:   &adfAttrs{Level: 3},
			Content: []adfNode{c.codeText(lines[0])},
		},
	}

	if len(lines) > 1 {
		nodes = append(nodes, c.codeBlock(lines[1:]))
	}

	return nodes
}
