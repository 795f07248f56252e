package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/vesting-cli/internal/app"
	"github.com/trebuchet-org/vesting-cli/internal/cli/render"
)

// renderResult writes result as JSON under --json and through text otherwise
func renderResult[T any](cmd *cobra.Command, a *app.App, result T, text render.Renderer[T]) error {
	if a.Config.JSON {
		return render.NewJSONRenderer[T](cmd.OutOrStdout()).Render(result)
	}
	return text.Render(result)
}

// renderThenFail renders a partial result that came back together with an error
// (failed checks, an unrecorded deployment) and then returns the error.
func renderThenFail[T comparable](cmd *cobra.Command, a *app.App, result T, text render.Renderer[T], err error) error {
	var zero T
	if result == zero {
		return err
	}
	if renderErr := renderResult(cmd, a, result, text); renderErr != nil {
		return renderErr
	}
	return err
}
