// Package prompt provides the interactive endpoint selection prompt.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/GabrielNunesIT/openapi-explorer/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const defaultHeight = 15

var (
	accentColor = lipgloss.Color("#7aa2f7")
	dimColor    = lipgloss.Color("#6c6c6c")
)

// HuhSelector implements domain.Selector with a huh select field.
type HuhSelector struct {
	title     string
	height    int
	filtering bool
	run       func(ctx context.Context, form *huh.Form) error
}

// Option configures a HuhSelector.
type Option func(*HuhSelector)

// WithHeight sets the number of visible rows.
func WithHeight(height int) Option {
	return func(s *HuhSelector) {
		if height > 0 {
			s.height = height
		}
	}
}

// WithFiltering enables type-to-filter.
func WithFiltering(enabled bool) Option {
	return func(s *HuhSelector) {
		s.filtering = enabled
	}
}

// NewHuhSelector creates a selector titled "Select endpoint".
func NewHuhSelector(opts ...Option) *HuhSelector {
	s := &HuhSelector{
		title:  "Select endpoint",
		height: defaultHeight,
		run: func(ctx context.Context, form *huh.Form) error {
			return form.RunWithContext(ctx)
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Select blocks until the operator picks an endpoint. Ctrl+C inside the
// prompt and ctx cancellation both return domain.ErrCancelled.
func (s *HuhSelector) Select(ctx context.Context, endpoints []domain.EndpointSummary) (domain.EndpointSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.EndpointSummary{}, domain.ErrCancelled
	}

	var choice domain.EndpointSummary
	form := huh.NewForm(huh.NewGroup(s.field(endpoints, &choice))).
		WithTheme(theme()).
		WithShowHelp(true)

	if err := s.run(ctx, form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || ctx.Err() != nil {
			return domain.EndpointSummary{}, domain.ErrCancelled
		}
		return domain.EndpointSummary{}, fmt.Errorf("endpoint prompt failed: %w", err)
	}

	return choice, nil
}

func (s *HuhSelector) field(endpoints []domain.EndpointSummary, value *domain.EndpointSummary) *huh.Select[domain.EndpointSummary] {
	return huh.NewSelect[domain.EndpointSummary]().
		Title(s.title).
		Options(options(endpoints)...).
		Height(s.height).
		Filtering(s.filtering).
		Value(value)
}

func options(endpoints []domain.EndpointSummary) []huh.Option[domain.EndpointSummary] {
	opts := make([]huh.Option[domain.EndpointSummary], 0, len(endpoints))
	for _, e := range endpoints {
		opts = append(opts, huh.NewOption(Label(e), e))
	}

	return opts
}

// Label formats an endpoint for display, aligning paths after the operation type.
func Label(e domain.EndpointSummary) string {
	return fmt.Sprintf("%-7s %s", e.OperationType, e.Path)
}

func theme() *huh.Theme {
	t := huh.ThemeBase()
	t.Focused.Title = t.Focused.Title.Foreground(accentColor).Bold(true)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accentColor)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(accentColor)
	t.Focused.Description = t.Focused.Description.Foreground(dimColor)

	return t
}
