package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/vesting-cli/internal/cli/render"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	var (
		overrides     domain.RawParams
		tolerance     uint64
		allowReleased bool
	)

	cmd := &cobra.Command{
		Use:   "check [address|id]",
		Short: "Verify a deployed VestingWallet",
		Long: `Check the on-chain state of a VestingWallet against its deployment parameters:

  owner() == beneficiary
  start() == start (within --tolerance seconds)
  duration() == duration
  released() == 0
  vestedAmount(start - 100) == 0
  vestedAmount(start + duration + 100) == initial supply
  release() reverts with "No releasable amount" while nothing is releasable

Expected values come from the registry record when the wallet was deployed by vest,
otherwise from the defaults and flags. Exits 1 when any check fails.`,
		Example: `  # Check the most recent deployment on the current network
  vest check

  # Check a wallet deployed elsewhere
  vest check 0x5FbDB2315678afecb367f032d93F642f64180aa3 --start 1760000000 --beneficiary 0xf39F...`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.CheckVestingParams{
				Overrides:      overrides,
				StartTolerance: tolerance,
				AllowReleased:  allowReleased,
			}
			if len(args) > 0 {
				params.Ref = args[0]
			}

			report, err := app.CheckVesting.Run(cmd.Context(), params)
			renderer := render.NewCheckRenderer(cmd.OutOrStdout())
			if err != nil {
				return renderThenFail(cmd, app, report, renderer, err)
			}
			return renderResult(cmd, app, report, renderer)
		},
	}

	addParamFlags(cmd, &overrides)
	cmd.Flags().Uint64Var(&tolerance, "tolerance", usecase.DefaultStartTolerance, "Allowed drift of start() in seconds")
	cmd.Flags().BoolVar(&allowReleased, "allow-released", false, "Skip the released() == 0 check")

	return cmd
}
