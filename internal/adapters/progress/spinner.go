package progress

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// SpinnerSink shows a spinner on stderr while a long step (send, wait for receipt) runs
type SpinnerSink struct {
	mu      sync.Mutex
	spinner *spinner.Spinner
	out     io.Writer
	stage   string
	started time.Time
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)

// NewSpinnerSink creates a spinner sink writing to stderr
func NewSpinnerSink() *SpinnerSink {
	return NewSpinnerSinkTo(os.Stderr)
}

// NewSpinnerSinkTo creates a spinner sink writing to out
func NewSpinnerSinkTo(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false
	return &SpinnerSink{spinner: s, out: out}
}

// OnProgress starts, updates or stops the spinner.
func (p *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if event.Stage != p.stage {
		p.stage = event.Stage
		p.started = time.Now()
	}

	if !event.Spinner {
		if p.spinner.Active() {
			p.spinner.Stop()
		}
		return
	}

	p.spinner.Suffix = " " + event.Message
	if !p.spinner.Active() {
		p.spinner.Start()
	}
}

// Info prints an info message above the spinner.
func (p *SpinnerSink) Info(message string) {
	p.printPaused(color.New(color.FgCyan), message)
}

// Error prints an error message above the spinner.
func (p *SpinnerSink) Error(message string) {
	p.printPaused(color.New(color.FgRed), message)
}

// Stop halts the spinner if it is running.
func (p *SpinnerSink) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.spinner.Active() {
		p.spinner.Stop()
	}
}

// Elapsed reports how long the current stage has been running.
func (p *SpinnerSink) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started.IsZero() {
		return 0
	}
	return time.Since(p.started)
}

func (p *SpinnerSink) printPaused(c *color.Color, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	wasActive := p.spinner.Active()
	if wasActive {
		p.spinner.Stop()
	}
	_, _ = c.Fprintln(p.out, message)
	if wasActive {
		p.spinner.Start()
	}
}
