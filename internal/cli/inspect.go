package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/vesting-cli/internal/cli/render"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	var at uint64

	cmd := &cobra.Command{
		Use:   "inspect [address|id]",
		Short: "Show the vesting state of a wallet",
		Long: `Read owner, start, duration, released and vestedAmount from a wallet and
compute the releasable amount at a timestamp (default: the latest block time).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.InspectVestingParams{At: at}
			if len(args) > 0 {
				params.Ref = args[0]
			}

			result, err := app.InspectVesting.Run(cmd.Context(), params)
			if err != nil {
				return err
			}
			return renderResult(cmd, app, result, render.NewInspectRenderer(cmd.OutOrStdout()))
		},
	}

	cmd.Flags().Uint64Var(&at, "at", 0, "Unix timestamp to evaluate vestedAmount at")

	return cmd
}
