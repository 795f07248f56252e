package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/vesting-cli/internal/cli/render"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// NewReleaseCmd creates the release command
func NewReleaseCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "release [address|id]",
		Short: "Release vested tokens to the beneficiary",
		Long: `Send release() to a wallet from the configured signer. The transaction
reverts with "No releasable amount" when nothing has vested since the last release.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ReleaseVestingParams{Yes: yes}
			if len(args) > 0 {
				params.Ref = args[0]
			}

			result, err := app.ReleaseVesting.Run(cmd.Context(), params)
			if err != nil {
				return err
			}
			return renderResult(cmd, app, result, render.NewReleaseRenderer(cmd.OutOrStdout()))
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
