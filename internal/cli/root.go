package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/vesting-cli/internal/adapters/progress"
	"github.com/trebuchet-org/vesting-cli/internal/app"
	"github.com/trebuchet-org/vesting-cli/internal/config"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vest",
		Short: "Deploy and verify VestingWallet contracts",
		Long: `vest deploys a VestingWallet from a configured signer, records it in a
local registry, and checks its on-chain state against the deployment parameters.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsApp(cmd) {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			// --json keeps stdout machine readable
			var sink usecase.ProgressSink = progress.NewNopSink()
			var spinner *progress.SpinnerSink
			if !v.GetBool("json") {
				spinner = progress.NewSpinnerSink()
				sink = spinner
			}

			appInstance, cleanup, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			cancel := context.CancelFunc(func() {})
			if appInstance.Config.Timeout > 0 {
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
			}
			cmd.SetContext(ctx)

			releaseOnExit(cmd, func() {
				if spinner != nil {
					spinner.Stop()
				}
				cancel()
				cleanup()
			})
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g. anvil, sepolia, mainnet, a chain ID)")
	rootCmd.PersistentFlags().String("rpc-url", "", "RPC endpoint, overrides the network's URL")
	rootCmd.PersistentFlags().Uint64("chain-id", 0, "Expected chain ID, overrides the network's chain ID")
	rootCmd.PersistentFlags().String("signer", "", "Signer source: private_key, keystore or anvil")
	rootCmd.PersistentFlags().String("keystore", "", "Path to an encrypted keystore file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().Duration("timeout", 5*time.Minute, "Timeout for the whole command")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	for _, c := range []*cobra.Command{
		NewDeployCmd(),
		NewCheckCmd(),
		NewInspectCmd(),
		NewReleaseCmd(),
		NewListCmd(),
		NewShowCmd(),
	} {
		c.GroupID = "main"
		rootCmd.AddCommand(c)
	}

	for _, c := range []*cobra.Command{
		NewNetworksCmd(),
		NewConfigCmd(),
		NewInitCmd(),
		NewDevCmd(),
	} {
		c.GroupID = "management"
		rootCmd.AddCommand(c)
	}

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// needsApp reports whether cmd runs a use case. Help, completion, version and
// bare group commands do not.
func needsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	return cmd.Runnable()
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// releaseOnExit runs release once cmd's RunE returns, whether or not it failed.
// Cobra skips post-run hooks after an error.
func releaseOnExit(cmd *cobra.Command, release func()) {
	var once sync.Once
	done := func() { once.Do(release) }

	run := cmd.RunE
	if run == nil {
		cmd.PostRun = func(*cobra.Command, []string) { done() }
		return
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		defer done()
		return run(cmd, args)
	}
}
