package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/vesting-cli/internal/cli/render"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var params usecase.ListDeploymentsParams

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recorded deployments",
		Long: `List VestingWallets recorded in .vesting/deployments.json.

By default only deployments on the current network are shown.`,
		Example: `  # Deployments on the current network
  vest list

  # Every recorded deployment
  vest list --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListDeployments.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.NewJSONRenderer[*usecase.DeploymentListResult](cmd.OutOrStdout()).Render(result)
			}
			return render.NewDeploymentsRenderer(cmd.OutOrStdout()).RenderDeploymentList(result)
		},
	}

	cmd.Flags().BoolVarP(&params.All, "all", "a", false, "Show deployments on every chain")
	cmd.Flags().Uint64Var(&params.ChainID, "chain", 0, "Only show deployments on this chain ID")

	return cmd
}

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [address|id]",
		Short: "Show a recorded deployment",
		Long: `Show the constructor arguments and transaction of a recorded deployment.
Without an argument, pick one of the deployments on the current network.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var params usecase.ShowDeploymentParams
			if len(args) > 0 {
				params.Ref = args[0]
			}

			deployment, err := app.ShowDeployment.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.NewJSONRenderer[any](cmd.OutOrStdout()).Render(deployment)
			}
			return render.NewDeploymentRenderer(cmd.OutOrStdout()).RenderDeployment(deployment)
		},
	}

	return cmd
}
