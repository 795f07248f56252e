package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// AnvilRenderer renders anvil operation results
type AnvilRenderer struct {
	out io.Writer
}

// NewAnvilRenderer creates a new anvil renderer
func NewAnvilRenderer(out io.Writer) *AnvilRenderer {
	return &AnvilRenderer{out: out}
}

// Render renders the anvil operation result
func (r *AnvilRenderer) Render(result *usecase.ManageAnvilResult) error {
	switch result.Operation {
	case "start", "restart":
		return r.renderStart(result)
	case "stop":
		fmt.Fprintln(r.out, FormatSuccess(result.Message))
		return nil
	case "status":
		return r.renderStatus(result)
	default:
		return fmt.Errorf("unknown operation: %s", result.Operation)
	}
}

// renderStart renders the start operation result
func (r *AnvilRenderer) renderStart(result *usecase.ManageAnvilResult) error {
	fmt.Fprintln(r.out, FormatSuccess(result.Message))
	color.New(color.FgYellow).Fprintf(r.out, "📋 Logs: %s\n", result.Instance.LogFile)
	if result.Status != nil && result.Status.RPCURL != "" {
		color.New(color.FgBlue).Fprintf(r.out, "🌐 RPC URL: %s (chain %d)\n", result.Status.RPCURL, result.Instance.ChainID)
	}
	r.renderNetwork(result)
	return nil
}

// renderStatus renders the status operation result
func (r *AnvilRenderer) renderStatus(result *usecase.ManageAnvilResult) error {
	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "📊 Anvil Status ('%s'):\n", result.Instance.Name)

	s := result.Status
	if s == nil || !s.Running {
		color.New(color.FgRed).Fprintln(r.out, "Status: 🔴 Not running")
		color.New(color.FgHiBlack).Fprintf(r.out, "PID file: %s\n", result.Instance.PidFile)
		color.New(color.FgHiBlack).Fprintf(r.out, "Log file: %s\n", result.Instance.LogFile)
		r.renderNetwork(result)
		return nil
	}

	color.New(color.FgGreen).Fprintf(r.out, "Status: 🟢 Running (PID %d)\n", s.PID)
	color.New(color.FgBlue).Fprintf(r.out, "RPC URL: %s\n", s.RPCURL)
	color.New(color.FgYellow).Fprintf(r.out, "Log file: %s\n", s.LogFile)
	if s.RPCHealthy {
		color.New(color.FgGreen).Fprintf(r.out, "RPC Health: ✅ Responding (chain %d, block %d)\n", s.ChainID, s.BlockNumber)
	} else {
		color.New(color.FgRed).Fprintln(r.out, "RPC Health: ❌ Not responding")
		if s.Error != "" {
			color.New(color.FgHiBlack).Fprintf(r.out, "  %s\n", s.Error)
		}
	}
	r.renderNetwork(result)
	return nil
}

// renderNetwork shows which vest network the node backs
func (r *AnvilRenderer) renderNetwork(result *usecase.ManageAnvilResult) {
	line := fmt.Sprintf("Network: %s", result.Instance.Network)
	if result.Active {
		line += " (active)"
	} else {
		line += fmt.Sprintf(" (use -n %s to deploy here)", result.Instance.Network)
	}
	color.New(color.FgHiBlack).Fprintln(r.out, line)
	if result.Warning != "" {
		fmt.Fprintln(r.out, FormatWarning(result.Warning))
	}
}

// RenderLogsHeader renders the header for logs streaming
func (r *AnvilRenderer) RenderLogsHeader(instance string, logFile string) {
	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "📋 Showing anvil '%s' logs (Ctrl+C to exit):\n", instance)
	color.New(color.FgHiBlack).Fprintf(r.out, "Log file: %s\n\n", logFile)
}
