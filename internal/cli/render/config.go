package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/vesting-cli/internal/domain/config"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// RenderConfig renders the resolved configuration
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	fmt.Fprintln(r.out, "📋 Current config:")

	t := newKeyValueTable()
	t.AppendRow(table.Row{"Project", result.ProjectRoot})
	if result.ConfigFile != "" {
		t.AppendRow(table.Row{"Config file", getRelativePath(result.ConfigFile)})
	} else {
		t.AppendRow(table.Row{"Config file", labelStyle.Sprint("(none, run 'vest init')")})
	}
	t.AppendRow(table.Row{"Data dir", getRelativePath(result.DataDir)})

	if n := result.Network; n != nil {
		t.AppendRow(table.Row{"Network", fmt.Sprintf("%s (chain %d)", n.Name, n.ChainID)})
		t.AppendRow(table.Row{"RPC URL", n.RPCURL})
	} else {
		t.AppendRow(table.Row{"Network", "(not set)"})
	}

	signer := string(result.Signer.Type)
	if signer == "" {
		signer = "(not set)"
	} else {
		signer = Title(strings.ReplaceAll(signer, "_", " "))
	}
	t.AppendRow(table.Row{"Signer", signer})
	switch {
	case result.SignerAddress != "":
		t.AppendRow(table.Row{"Signer address", addressStyle.Sprint(result.SignerAddress)})
	case result.SignerError != "":
		t.AppendRow(table.Row{"Signer address", FormatWarning(result.SignerError)})
	}
	t.AppendRow(table.Row{"Timeout", result.Timeout.String()})
	if result.NonInteractive {
		t.AppendRow(table.Row{"Non-interactive", "yes"})
	}
	fmt.Fprintln(r.out, t.Render())

	d := result.Deploy
	if d == (config.DeployConfig{}) {
		return nil
	}
	fmt.Fprintln(r.out, "\n📦 Deploy defaults ([deploy]):")
	t = newKeyValueTable()
	for _, kv := range [][2]string{
		{"Artifact", d.Artifact},
		{"Beneficiary", d.Beneficiary},
		{"Duration", durationOrEmpty(d.Duration)},
		{"Token name", d.TokenName},
		{"Token symbol", d.TokenSymbol},
		{"Initial supply", d.InitialSupply},
		{"Value", d.Value},
	} {
		if kv[1] != "" {
			t.AppendRow(table.Row{kv[0], kv[1]})
		}
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}

func durationOrEmpty(seconds uint64) string {
	if seconds == 0 {
		return ""
	}
	return FormatDuration(seconds)
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.LocalConfigResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Set %s to: %s", result.Key, result.Value)))
	if result.Previous != "" && result.Previous != result.Value {
		labelStyle.Fprintf(r.out, "   (was: %s)\n", result.Previous)
	}
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.LocalConfigResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Removed %s from config (default_network in vesting.toml applies)", result.Key)))
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}
