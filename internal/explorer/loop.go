// Package explorer drives the interactive select, resolve and render cycle.
package explorer

import (
	"context"
	"errors"

	"github.com/GabrielNunesIT/openapi-explorer/internal/domain"
	"github.com/GabrielNunesIT/openapi-explorer/internal/presenter"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
)

type state int

const (
	stateSelecting state = iota
	stateTerminated
)

// Explorer orchestrates the exploration loop. It does no resolution or
// rendering itself.
type Explorer struct {
	selector domain.Selector
	resolver domain.Resolver
	reporter domain.Reporter
	render   func(domain.EndpointDetail) string
}

// New creates an Explorer that renders with presenter.FormatEndpointDetail.
func New(selector domain.Selector, resolver domain.Resolver, reporter domain.Reporter) *Explorer {
	return &Explorer{
		selector: selector,
		resolver: resolver,
		reporter: reporter,
		render:   presenter.FormatEndpointDetail,
	}
}

// RunExplorationLoop runs the loop until ctx is cancelled or the operator aborts.
func RunExplorationLoop(ctx context.Context, index []domain.EndpointSummary, resolver domain.Resolver, selector domain.Selector, reporter domain.Reporter) int {
	return New(selector, resolver, reporter).Run(ctx, index)
}

// Run presents index repeatedly until cancellation and returns an exit code.
// Cancellation is checked before every prompt and again once a choice is
// made, so nothing is resolved after it has been observed.
func (e *Explorer) Run(ctx context.Context, index []domain.EndpointSummary) int {
	if len(index) == 0 {
		e.reporter.WriteLine("No endpoints found")
		return ExitOK
	}

	code := ExitOK
	for st := stateSelecting; st != stateTerminated; {
		st, code = e.step(ctx, index)
	}

	return code
}

func (e *Explorer) step(ctx context.Context, index []domain.EndpointSummary) (state, int) {
	if ctx.Err() != nil {
		return stateTerminated, ExitOK
	}

	choice, err := e.selector.Select(ctx, index)
	if err != nil {
		if errors.Is(err, domain.ErrCancelled) || ctx.Err() != nil {
			e.reporter.Verbosef("Exploration cancelled")
			return stateTerminated, ExitOK
		}

		e.reporter.Errorf("Selection failed: %v", err)
		return stateTerminated, ExitFailure
	}

	if ctx.Err() != nil {
		return stateTerminated, ExitOK
	}

	e.reporter.Verbosef("Resolving %s", choice)

	detail, err := e.resolver.Resolve(choice.OperationType, choice.Path)
	if err != nil {
		if errors.Is(err, domain.ErrEndpointNotFound) {
			e.reporter.Errorf("%v", err)
			return stateSelecting, ExitOK
		}

		e.reporter.Errorf("Failed to resolve %s: %v", choice, err)
		return stateTerminated, ExitFailure
	}

	e.reporter.WriteLine(e.render(detail))

	return stateSelecting, ExitOK
}
