package explorer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/GabrielNunesIT/openapi-explorer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSelector returns its choices in order, then blocks until ctx is done.
type scriptedSelector struct {
	mu      sync.Mutex
	choices []domain.EndpointSummary
	calls   int
	waiting chan struct{}
}

func (s *scriptedSelector) Select(ctx context.Context, _ []domain.EndpointSummary) (domain.EndpointSummary, error) {
	s.mu.Lock()
	s.calls++
	if len(s.choices) > 0 {
		choice := s.choices[0]
		s.choices = s.choices[1:]
		s.mu.Unlock()
		return choice, nil
	}
	s.mu.Unlock()

	if s.waiting != nil {
		close(s.waiting)
	}
	<-ctx.Done()
	return domain.EndpointSummary{}, domain.ErrCancelled
}

type fakeResolver struct {
	mu       sync.Mutex
	resolved []domain.EndpointSummary
	missing  map[domain.EndpointSummary]bool
	fail     error
}

func (r *fakeResolver) Resolve(op domain.OperationType, path string) (domain.EndpointDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := domain.EndpointSummary{OperationType: op, Path: path}
	r.resolved = append(r.resolved, id)

	if r.fail != nil {
		return domain.EndpointDetail{}, r.fail
	}
	if r.missing[id] {
		return domain.EndpointDetail{}, &domain.EndpointNotFoundError{OperationType: op, Path: path, Reason: "path is not defined"}
	}

	return domain.EndpointDetail{EndpointSummary: id}, nil
}

func (r *fakeResolver) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.resolved)
}

type recordingReporter struct {
	mu     sync.Mutex
	lines  []string
	errors []string
}

func (r *recordingReporter) WriteLine(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, text)
}

func (r *recordingReporter) Verbosef(string, ...any) {}

func (r *recordingReporter) Errorf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

var (
	getPing  = domain.EndpointSummary{OperationType: domain.OperationGet, Path: "/ping"}
	postPets = domain.EndpointSummary{OperationType: domain.OperationPost, Path: "/pets"}
)

func TestRunRendersEachSelection(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	selector := &scriptedSelector{choices: []domain.EndpointSummary{getPing, postPets}, waiting: make(chan struct{})}
	resolver := &fakeResolver{}
	reporter := &recordingReporter{}

	done := make(chan int)
	go func() {
		done <- RunExplorationLoop(ctx, []domain.EndpointSummary{getPing, postPets}, resolver, selector, reporter)
	}()

	<-selector.waiting
	cancel()

	select {
	case code := <-done:
		assert.Equal(t, ExitOK, code)
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not terminate after cancellation")
	}

	assert.Equal(t, []domain.EndpointSummary{getPing, postPets}, resolver.resolved)
	require.Len(t, reporter.lines, 2)
	assert.Contains(t, reporter.lines[0], "GET /ping")
	assert.Contains(t, reporter.lines[0], "Parameters: None")
	assert.Contains(t, reporter.lines[1], "POST /pets")
}

func TestRunCancelWhileBlockedResolvesNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	selector := &scriptedSelector{waiting: make(chan struct{})}
	resolver := &fakeResolver{}
	reporter := &recordingReporter{}

	done := make(chan int)
	go func() {
		done <- New(selector, resolver, reporter).Run(ctx, []domain.EndpointSummary{getPing})
	}()

	<-selector.waiting
	cancel()

	select {
	case code := <-done:
		assert.Equal(t, ExitOK, code)
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not terminate after cancellation")
	}

	assert.Zero(t, resolver.count())
	assert.Empty(t, reporter.lines)
}

func TestRunAlreadyCancelledNeverPrompts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	selector := &scriptedSelector{choices: []domain.EndpointSummary{getPing}}
	resolver := &fakeResolver{}

	code := New(selector, resolver, &recordingReporter{}).Run(ctx, []domain.EndpointSummary{getPing})

	assert.Equal(t, ExitOK, code)
	assert.Zero(t, selector.calls)
	assert.Zero(t, resolver.count())
}

// cancellingSelector cancels the context as it returns a choice.
type cancellingSelector struct {
	cancel context.CancelFunc
}

func (s *cancellingSelector) Select(context.Context, []domain.EndpointSummary) (domain.EndpointSummary, error) {
	s.cancel()
	return getPing, nil
}

func TestRunCancelObservedAfterChoiceSkipsResolve(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resolver := &fakeResolver{}
	code := New(&cancellingSelector{cancel: cancel}, resolver, &recordingReporter{}).Run(ctx, []domain.EndpointSummary{getPing})

	assert.Equal(t, ExitOK, code)
	assert.Zero(t, resolver.count())
}

func TestRunEndpointNotFoundIsRecoverable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	selector := &scriptedSelector{choices: []domain.EndpointSummary{postPets, getPing}, waiting: make(chan struct{})}
	resolver := &fakeResolver{missing: map[domain.EndpointSummary]bool{postPets: true}}
	reporter := &recordingReporter{}

	done := make(chan int)
	go func() {
		done <- New(selector, resolver, reporter).Run(ctx, []domain.EndpointSummary{getPing, postPets})
	}()

	<-selector.waiting
	cancel()

	assert.Equal(t, ExitOK, <-done)
	require.Len(t, reporter.errors, 1)
	assert.Contains(t, reporter.errors[0], "POST /pets")
	require.Len(t, reporter.lines, 1)
	assert.Contains(t, reporter.lines[0], "GET /ping")
}

type failingSelector struct{}

func (failingSelector) Select(context.Context, []domain.EndpointSummary) (domain.EndpointSummary, error) {
	return domain.EndpointSummary{}, errors.New("terminal is not interactive")
}

func TestRunSelectorFailure(t *testing.T) {
	reporter := &recordingReporter{}

	code := New(failingSelector{}, &fakeResolver{}, reporter).Run(context.Background(), []domain.EndpointSummary{getPing})

	assert.Equal(t, ExitFailure, code)
	require.Len(t, reporter.errors, 1)
	assert.Contains(t, reporter.errors[0], "terminal is not interactive")
}

func TestRunUnexpectedResolveFailure(t *testing.T) {
	selector := &scriptedSelector{choices: []domain.EndpointSummary{getPing}}
	resolver := &fakeResolver{fail: domain.ErrInvalidDocument}
	reporter := &recordingReporter{}

	code := New(selector, resolver, reporter).Run(context.Background(), []domain.EndpointSummary{getPing})

	assert.Equal(t, ExitFailure, code)
	assert.Len(t, reporter.errors, 1)
}

func TestRunEmptyIndex(t *testing.T) {
	selector := &scriptedSelector{}
	reporter := &recordingReporter{}

	code := New(selector, &fakeResolver{}, reporter).Run(context.Background(), nil)

	assert.Equal(t, ExitOK, code)
	assert.Zero(t, selector.calls)
	assert.Equal(t, []string{"No endpoints found"}, reporter.lines)
}
