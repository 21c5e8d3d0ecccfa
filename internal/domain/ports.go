package domain

import (
	"context"
	"io"
)

// Selector presents the endpoint list and blocks until the operator picks one.
type Selector interface {
	// Select returns ErrCancelled when the operator aborts or ctx is done.
	Select(ctx context.Context, endpoints []EndpointSummary) (EndpointSummary, error)
}

// Resolver re-resolves the full detail of an endpoint from its identity.
type Resolver interface {
	Resolve(op OperationType, path string) (EndpointDetail, error)
}

// Reporter is the operator-facing output sink.
type Reporter interface {
	// WriteLine writes text followed by a line break.
	WriteLine(text string)

	// Verbosef writes a diagnostic message when verbose output is enabled.
	Verbosef(format string, args ...any)

	// Errorf reports an error message.
	Errorf(format string, args ...any)
}

// Converter defines the interface for report exporters.
type Converter interface {
	// Convert writes the report in the target format.
	Convert(report *Report, output io.Writer) error

	// Format returns the output format name (e.g., "pdf", "docx").
	Format() string
}

// Report is the rendered content of a whole document, ready for export.
type Report struct {
	Title     string
	Version   string
	Summary   string
	Endpoints []ReportEntry
}

// ReportEntry is the rendered detail of one endpoint.
type ReportEntry struct {
	Endpoint EndpointSummary
	Text     string
}
