package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/vesting-cli/internal/cli/render"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize vest in the current directory",
		Long: `Create vesting.toml with the default networks, signer and deploy
parameters, the .vesting/ registry directory and a .env.example.
Existing files are left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.InitProject.Execute(cmd.Context())
			if err != nil {
				return err
			}

			return renderResult(cmd, app, result, render.NewInitRenderer(cmd.OutOrStdout()))
		},
	}
}
