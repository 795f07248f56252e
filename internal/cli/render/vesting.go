package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// DeployRenderer renders the result of vest deploy
type DeployRenderer struct {
	out io.Writer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out}
}

// Render renders the deployment result
func (r *DeployRenderer) Render(result *usecase.DeployVestingResult) error {
	network := fmt.Sprintf("chain %d", result.ChainID)
	if result.Network != nil && result.Network.Name != "" {
		network = fmt.Sprintf("%s (chain %d)", result.Network.Name, result.ChainID)
	}

	if result.DryRun {
		headerStyle.Fprintf(r.out, "🔍 Dry run on %s\n", network)
		fmt.Fprintf(r.out, "Predicted address: %s (nonce %d)\n", highlightStyle.Sprint(result.Address.Hex()), result.Nonce)
	} else {
		fmt.Fprintf(r.out, "VestingWallet deployed to: %s\n", highlightStyle.Sprint(result.Address.Hex()))
	}

	t := newKeyValueTable()
	t.AppendRows(paramsRows(result.Params))
	if result.Artifact != nil {
		t.AppendRow(table.Row{"Artifact", result.Artifact.Path})
	}
	if result.Tx != nil {
		t.AppendRow(table.Row{"Transaction", result.Tx.TxHash.Hex()})
		t.AppendRow(table.Row{"Block", result.Tx.BlockNumber})
		t.AppendRow(table.Row{"Gas used", printer.Sprintf("%d", result.Tx.GasUsed)})
	}
	if result.Deployment != nil {
		t.AppendRow(table.Row{"Registry ID", result.Deployment.ID})
	}
	fmt.Fprintln(r.out, t.Render())

	if result.Check != nil {
		fmt.Fprintln(r.out)
		return NewCheckRenderer(r.out).Render(result.Check)
	}
	return nil
}

// CheckRenderer renders a verification report
type CheckRenderer struct {
	out io.Writer
}

// NewCheckRenderer creates a new check renderer
func NewCheckRenderer(out io.Writer) *CheckRenderer {
	return &CheckRenderer{out: out}
}

// Render renders every check outcome and a summary line
func (r *CheckRenderer) Render(report *domain.CheckReport) error {
	headerStyle.Fprintf(r.out, "🧪 Checking VestingWallet %s (chain %d)\n", report.Address, report.ChainID)
	if report.Now != 0 {
		labelStyle.Fprintf(r.out, "Chain time: %s\n", FormatTimestamp(report.Now))
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateRows = false
	t.AppendHeader(table.Row{"", "Check", "Expected", "Actual"})

	skipped := 0
	for _, o := range report.Outcomes {
		var status string
		switch {
		case o.Skipped:
			status = color.New(color.FgHiBlack).Sprint("-")
			skipped++
		case o.Passed:
			status = color.New(color.FgGreen).Sprint("✓")
		default:
			status = color.New(color.FgRed).Sprint("✗")
		}
		actual := o.Actual
		if o.Error != "" {
			actual = color.New(color.FgRed).Sprint(o.Error)
		}
		t.AppendRow(table.Row{status, o.Name, o.Expected, actual})
	}
	fmt.Fprintln(r.out, t.Render())
	fmt.Fprintln(r.out)

	failed := len(report.Failed())
	ran := len(report.Outcomes) - skipped
	if failed == 0 {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("All checks passed (%d run, %d skipped)", ran, skipped)))
	} else {
		fmt.Fprintln(r.out, color.New(color.FgRed).Sprintf("❌ %d of %d checks failed", failed, ran))
	}
	return nil
}

// InspectRenderer renders a wallet snapshot
type InspectRenderer struct {
	out io.Writer
}

// NewInspectRenderer creates a new inspect renderer
func NewInspectRenderer(out io.Writer) *InspectRenderer {
	return &InspectRenderer{out: out}
}

// Render renders the accessors read from the wallet
func (r *InspectRenderer) Render(result *usecase.InspectVestingResult) error {
	s := result.State
	headerStyle.Fprintf(r.out, "VestingWallet %s (chain %d)\n", s.Address.Hex(), result.ChainID)

	t := newKeyValueTable()
	t.AppendRows([]table.Row{
		{"Owner", addressStyle.Sprint(s.Owner.Hex())},
		{"Start", FormatTimestamp(s.Start)},
		{"Duration", FormatDuration(s.Duration)},
		{"End", FormatTimestamp(s.End())},
		{"At", FormatTimestamp(s.At)},
		{"Progress", FormatPercent(s.Progress())},
		{"Vested", FormatAmount(s.VestedAmount)},
		{"Released", FormatAmount(s.Released)},
		{"Releasable", highlightStyle.Sprint(FormatAmount(s.Releasable()))},
		{"Balance", FormatEther(s.Balance)},
	})
	if d := result.Deployment; d != nil {
		t.AppendRow(table.Row{"Registry ID", d.ID})
		t.AppendRow(table.Row{"Token", fmt.Sprintf("%s (%s)", d.Params.TokenName, d.Params.TokenSymbol)})
		t.AppendRow(table.Row{"Initial supply", FormatAmount(d.Params.InitialSupply)})
	} else {
		t.AppendRow(table.Row{"Registry ID", labelStyle.Sprint("(not recorded)")})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}

// ReleaseRenderer renders the result of vest release
type ReleaseRenderer struct {
	out io.Writer
}

// NewReleaseRenderer creates a new release renderer
func NewReleaseRenderer(out io.Writer) *ReleaseRenderer {
	return &ReleaseRenderer{out: out}
}

// Render renders the released amount and receipt
func (r *ReleaseRenderer) Render(result *usecase.ReleaseVestingResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Released %s tokens from %s", FormatAmount(result.Amount), result.Wallet.Hex())))
	if result.Tx != nil {
		t := newKeyValueTable()
		t.AppendRow(table.Row{"Transaction", result.Tx.TxHash.Hex()})
		t.AppendRow(table.Row{"Block", result.Tx.BlockNumber})
		t.AppendRow(table.Row{"Gas used", printer.Sprintf("%d", result.Tx.GasUsed)})
		fmt.Fprintln(r.out, t.Render())
	}
	return nil
}
