package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/vesting-cli/internal/cli/render"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// NewDevCmd creates the dev command with subcommands
func NewDevCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Development utilities",
		Long:  `Development utilities for working against a local chain.`,
	}

	cmd.AddCommand(newDevAnvilCmd())

	return cmd
}

// newDevAnvilCmd creates the anvil management command
func newDevAnvilCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anvil",
		Short: "Manage local anvil node",
		Long: `Manage a background anvil node. Its port and chain ID come from the active
network when it is local, otherwise from the 'anvil' network preset, so deploys
with -n anvil reach it. The 'anvil' signer uses its first funded account.`,
	}

	for _, op := range []struct {
		name, short, long string
	}{
		{"start", "Start local anvil node", "Start a local anvil node in the background. Fails if already running."},
		{"stop", "Stop local anvil node", "Stop the local anvil node if running."},
		{"restart", "Restart local anvil node", "Stop the local anvil node if running and start a fresh one."},
		{"status", "Show anvil status", "Show status of the local anvil node."},
		{"logs", "Show anvil logs", "Follow the logs of the local anvil node."},
	} {
		cmd.AddCommand(newDevAnvilOpCmd(op.name, op.short, op.long))
	}

	return cmd
}

// anvilFlags holds common flags for anvil commands
type anvilFlags struct {
	name    string
	port    string
	chainID uint64
}

// newDevAnvilOpCmd creates one anvil operation command
func newDevAnvilOpCmd(operation, short, long string) *cobra.Command {
	flags := &anvilFlags{}

	cmd := &cobra.Command{
		Use:   operation,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnvilCommand(cmd, operation, flags)
		},
	}

	cmd.Flags().StringVar(&flags.name, "name", "", "Instance name (default: the network name)")
	cmd.Flags().StringVar(&flags.port, "port", "", "RPC port to bind (default: the network's RPC URL port)")
	cmd.Flags().Uint64Var(&flags.chainID, "anvil-chain-id", 0, "Chain ID of the instance (default: the network's chain ID)")
	return cmd
}

// runAnvilCommand executes an anvil management command
func runAnvilCommand(cmd *cobra.Command, operation string, flags *anvilFlags) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	params := usecase.ManageAnvilParams{
		Operation: operation,
		Name:      flags.name,
		Port:      flags.port,
		ChainID:   flags.chainID,
		LogWriter: cmd.OutOrStdout(),
	}
	renderer := render.NewAnvilRenderer(cmd.OutOrStdout())

	if operation == "logs" {
		instance, err := app.ManageAnvil.Instance(cmd.Context(), params)
		if err != nil {
			return err
		}
		renderer.RenderLogsHeader(instance.Name, instance.LogFile)
		_, err = app.ManageAnvil.Execute(cmd.Context(), params)
		return err
	}

	result, err := app.ManageAnvil.Execute(cmd.Context(), params)
	if err != nil {
		return err
	}
	return renderResult(cmd, app, result, renderer)
}
