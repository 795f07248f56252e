package render

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

var (
	chainHeader     = color.New(color.BgCyan, color.FgBlack)
	chainHeaderBold = color.New(color.BgCyan, color.FgBlack, color.Bold)
	timestampStyle  = color.New(color.Faint)
	contractStyle   = color.New(color.FgGreen, color.Bold)
)

// DeploymentsRenderer renders deployment lists grouped by chain
type DeploymentsRenderer struct {
	out io.Writer
}

// NewDeploymentsRenderer creates a new deployments renderer
func NewDeploymentsRenderer(out io.Writer) *DeploymentsRenderer {
	return &DeploymentsRenderer{out: out}
}

// RenderDeploymentList renders deployments, one table per chain
func (r *DeploymentsRenderer) RenderDeploymentList(result *usecase.DeploymentListResult) error {
	if len(result.Deployments) == 0 {
		fmt.Fprintln(r.out, "No deployments found")
		return nil
	}

	byChain := lo.GroupBy(result.Deployments, func(d *domain.Deployment) uint64 { return d.ChainID })
	chainIDs := lo.Keys(byChain)
	slices.Sort(chainIDs)

	for i, chainID := range chainIDs {
		deployments := byChain[chainID]
		slices.SortFunc(deployments, func(a, b *domain.Deployment) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})

		networkName := deployments[0].Network
		label := fmt.Sprintf("%-30s", fmt.Sprintf("%d %s", chainID, networkName))
		fmt.Fprintf(r.out, "%s%s\n", chainHeader.Sprint(" ⛓ chain: "), chainHeaderBold.Sprint(label))

		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		t.Style().Options.DrawBorder = false
		t.Style().Options.SeparateColumns = false
		t.Style().Options.SeparateHeader = false
		t.Style().Options.SeparateRows = false
		t.Style().Box = table.BoxStyle{PaddingLeft: "  ", PaddingRight: "  "}
		for _, d := range deployments {
			t.AppendRow(table.Row{
				contractStyle.Sprint(d.Contract),
				addressStyle.Sprint(d.Address.Hex()),
				fmt.Sprintf("%s %s", d.Params.TokenSymbol, FormatAmount(d.Params.InitialSupply)),
				timestampStyle.Sprint(d.CreatedAt.Local().Format("2006-01-02 15:04:05")),
			})
		}
		fmt.Fprintln(r.out, t.Render())
		if i < len(chainIDs)-1 {
			fmt.Fprintln(r.out)
		}
	}

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Total deployments: %d\n", result.Summary.Total)
	return nil
}

// DeploymentRenderer renders detailed information about a single deployment
type DeploymentRenderer struct {
	out io.Writer
}

// NewDeploymentRenderer creates a new deployment renderer
func NewDeploymentRenderer(out io.Writer) *DeploymentRenderer {
	return &DeploymentRenderer{out: out}
}

// RenderDeployment renders detailed deployment information
func (r *DeploymentRenderer) RenderDeployment(d *domain.Deployment) error {
	headerStyle.Fprintf(r.out, "Deployment: %s\n", d.ID)
	fmt.Fprintln(r.out, strings.Repeat("=", 80))

	fmt.Fprintln(r.out, "\nBasic Information:")
	t := newKeyValueTable()
	t.AppendRows([]table.Row{
		{"Contract", highlightStyle.Sprint(d.Contract)},
		{"Address", d.Address.Hex()},
		{"Network", fmt.Sprintf("%s (chain %d)", d.Network, d.ChainID)},
		{"Deployer", d.Deployer.Hex()},
		{"Created", d.CreatedAt.Local().Format("2006-01-02 15:04:05 MST")},
	})
	fmt.Fprintln(r.out, t.Render())

	fmt.Fprintln(r.out, "\nConstructor Arguments:")
	t = newKeyValueTable()
	t.AppendRows(paramsRows(d.Params))
	fmt.Fprintln(r.out, t.Render())

	fmt.Fprintln(r.out, "\nTransaction:")
	t = newKeyValueTable()
	t.AppendRows([]table.Row{
		{"Hash", d.TxHash.Hex()},
		{"Block", d.BlockNumber},
		{"Gas used", printer.Sprintf("%d", d.GasUsed)},
	})
	fmt.Fprintln(r.out, t.Render())
	return nil
}
