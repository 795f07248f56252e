package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/vesting-cli/internal/cli/render"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// addParamFlags adds one flag per constructor argument
func addParamFlags(cmd *cobra.Command, p *domain.RawParams) {
	cmd.Flags().StringVar(&p.Beneficiary, "beneficiary", "", "Beneficiary and owner of the wallet (default: the deployer)")
	cmd.Flags().StringVar(&p.Start, "start", "", "Vesting start as a unix timestamp (default: now)")
	cmd.Flags().StringVar(&p.Duration, "duration", "", "Vesting duration in seconds (default: 31556926)")
	cmd.Flags().StringVar(&p.TokenName, "token-name", "", "Name of the token minted to the wallet (default: MyToken)")
	cmd.Flags().StringVar(&p.TokenSymbol, "token-symbol", "", "Symbol of the token minted to the wallet (default: MTK)")
	cmd.Flags().StringVar(&p.InitialSupply, "initial-supply", "", "Tokens minted to the wallet (default: 1000000)")
}

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var (
		overrides    domain.RawParams
		paramsFile   string
		artifactPath string
		dryRun       bool
		check        bool
		yes          bool
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy a VestingWallet",
		Long: `Deploy a VestingWallet from the configured signer.

Parameters are layered: built-in defaults, then [deploy] in vesting.toml, then
--params-file, then flags. The beneficiary defaults to the deployer and the
start to the current time. The deployment is recorded in .vesting/deployments.json.`,
		Example: `  # Deploy with defaults to the local anvil node
  vest deploy

  # Deploy to sepolia and verify the result
  vest deploy --network sepolia --check

  # Show the parameters and predicted address without sending anything
  vest deploy --dry-run --duration 86400`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.DeployVesting.Run(cmd.Context(), usecase.DeployVestingParams{
				Overrides:    overrides,
				ParamsFile:   paramsFile,
				ArtifactPath: artifactPath,
				DryRun:       dryRun,
				Check:        check,
				Yes:          yes,
			})
			renderer := render.NewDeployRenderer(cmd.OutOrStdout())
			if err != nil {
				return renderThenFail(cmd, app, result, renderer, err)
			}
			return renderResult(cmd, app, result, renderer)
		},
	}

	addParamFlags(cmd, &overrides)
	cmd.Flags().StringVar(&overrides.Value, "value", "", "Ether attached to the deployment, e.g. 0.1ether, 1gwei, 42 (default: 0.1ether)")
	cmd.Flags().StringVarP(&paramsFile, "params-file", "f", "", "YAML file with deployment parameters")
	cmd.Flags().StringVar(&artifactPath, "artifact", "", "Compiled VestingWallet artifact (Foundry or Hardhat JSON)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve parameters and predict the address without deploying")
	cmd.Flags().BoolVar(&check, "check", false, "Run vest check against the new wallet")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
