package progress

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

func TestSpinnerSink(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	sink := NewSpinnerSinkTo(&buf)
	ctx := context.Background()

	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: "wait", Message: "Waiting for receipt...", Spinner: true})
	// the spinner itself only animates on a terminal
	assert.Equal(t, " Waiting for receipt...", sink.spinner.Suffix)

	sink.Info("tx sent")
	assert.Contains(t, buf.String(), "tx sent\n")

	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: "done"})
	assert.False(t, sink.spinner.Active())
	assert.Less(t, sink.Elapsed(), time.Minute)

	sink.Error("boom")
	assert.Contains(t, buf.String(), "boom\n")
	sink.Stop()
}

func TestNopSink(t *testing.T) {
	var sink usecase.ProgressSink = NewNopSink()
	sink.OnProgress(context.Background(), usecase.ProgressEvent{Spinner: true})
	sink.Info("ignored")
	sink.Error("ignored")
}
