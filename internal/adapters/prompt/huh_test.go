package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/GabrielNunesIT/openapi-explorer/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var endpoints = []domain.EndpointSummary{
	{OperationType: domain.OperationGet, Path: "/pets"},
	{OperationType: domain.OperationOptions, Path: "/pets"},
}

func TestSelectMapsErrors(t *testing.T) {
	boom := errors.New("no tty")

	tests := []struct {
		name      string
		runErr    error
		cancelled bool
		wantErr   error
	}{
		{name: "user abort", runErr: huh.ErrUserAborted, wantErr: domain.ErrCancelled},
		{name: "context cancelled", runErr: context.Canceled, cancelled: true, wantErr: domain.ErrCancelled},
		{name: "other failure", runErr: boom, wantErr: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			s := NewHuhSelector()
			s.run = func(context.Context, *huh.Form) error {
				if tt.cancelled {
					cancel()
				}
				return tt.runErr
			}

			_, err := s.Select(ctx, endpoints)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSelectCancelledBeforePrompt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	s := NewHuhSelector()
	s.run = func(context.Context, *huh.Form) error {
		called = true
		return nil
	}

	_, err := s.Select(ctx, endpoints)
	assert.ErrorIs(t, err, domain.ErrCancelled)
	assert.False(t, called)
}

func TestOptions(t *testing.T) {
	s := NewHuhSelector(WithHeight(5), WithFiltering(true), WithHeight(0))
	assert.Equal(t, 5, s.height)
	assert.True(t, s.filtering)

	opts := options(endpoints)
	require.Len(t, opts, 2)
	assert.Equal(t, "GET     /pets", opts[0].Key)
	assert.Equal(t, endpoints[1], opts[1].Value)
}
