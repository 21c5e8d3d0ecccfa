package explorer

import (
	"fmt"

	"github.com/GabrielNunesIT/openapi-explorer/internal/domain"
	"github.com/GabrielNunesIT/openapi-explorer/internal/presenter"
)

// BuildReport renders the summary and every indexed endpoint, in index order.
func BuildReport(summary domain.DocumentSummary, index []domain.EndpointSummary, resolver domain.Resolver) (*domain.Report, error) {
	report := &domain.Report{
		Summary:   presenter.FormatDocumentSummary(summary),
		Endpoints: make([]domain.ReportEntry, 0, len(index)),
	}

	if summary.Info != nil {
		report.Title = summary.Info.Title
		report.Version = summary.Info.Version
	}

	for _, entry := range index {
		detail, err := resolver.Resolve(entry.OperationType, entry.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", entry, err)
		}

		report.Endpoints = append(report.Endpoints, domain.ReportEntry{
			Endpoint: entry,
			Text:     presenter.FormatEndpointDetail(detail),
		})
	}

	return report, nil
}
