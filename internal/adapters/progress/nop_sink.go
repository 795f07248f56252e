package progress

import (
	"context"

	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// NopSink is a no-op implementation of ProgressSink, used with --json and --non-interactive
type NopSink struct{}

// NewNopSink creates a new no-op progress sink
func NewNopSink() *NopSink {
	return &NopSink{}
}

func (n *NopSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {}

func (n *NopSink) Info(message string) {}

func (n *NopSink) Error(message string) {}

var _ usecase.ProgressSink = (*NopSink)(nil)
