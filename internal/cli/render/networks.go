package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// RenderNetworksList renders every known network, marking the current one
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult, probed bool) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateRows = false
	header := table.Row{"", "Network", "Chain ID", "RPC URL"}
	if probed {
		header = append(header, "Status")
	}
	t.AppendHeader(header)

	for _, n := range result.Networks {
		marker := ""
		if n.Name == result.Current {
			marker = color.New(color.FgGreen).Sprint("*")
		}
		chainID := "-"
		if n.ChainID != 0 {
			chainID = fmt.Sprintf("%d", n.ChainID)
		}
		name := n.Name
		if n.Local {
			name += labelStyle.Sprint(" (local)")
		}
		row := table.Row{marker, name, chainID, n.RPCURL}

		switch {
		case n.Error != nil && !probed:
			row[3] = color.New(color.FgRed).Sprintf("error: %v", n.Error)
		case probed && n.Error != nil:
			row = append(row, color.New(color.FgRed).Sprintf("❌ %v", n.Error))
		case probed && n.Reachable:
			row = append(row, color.New(color.FgGreen).Sprint("✅ reachable"))
		case probed:
			row = append(row, labelStyle.Sprint("-"))
		}
		t.AppendRow(row)
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}

// NetworkView is the JSON form of a network entry
type NetworkView struct {
	Name      string `json:"name"`
	ChainID   uint64 `json:"chainId,omitempty"`
	RPCURL    string `json:"rpcUrl,omitempty"`
	Local     bool   `json:"local,omitempty"`
	Current   bool   `json:"current,omitempty"`
	Reachable bool   `json:"reachable,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NetworkViews converts a network list for JSON output
func NetworkViews(result *usecase.ListNetworksResult) []NetworkView {
	views := make([]NetworkView, 0, len(result.Networks))
	for _, n := range result.Networks {
		v := NetworkView{
			Name:      n.Name,
			ChainID:   n.ChainID,
			RPCURL:    n.RPCURL,
			Local:     n.Local,
			Current:   n.Name == result.Current,
			Reachable: n.Reachable,
		}
		if n.Error != nil {
			v.Error = n.Error.Error()
		}
		views = append(views, v)
	}
	return views
}
