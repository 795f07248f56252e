package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// InitRenderer renders init command results
type InitRenderer struct {
	out io.Writer
}

// NewInitRenderer creates a new init renderer
func NewInitRenderer(out io.Writer) *InitRenderer {
	return &InitRenderer{out: out}
}

// Render renders the init project result
func (r *InitRenderer) Render(result *usecase.InitProjectResult) error {
	ok := true
	for _, step := range result.Steps {
		if step.Success {
			msg := step.Message
			if msg == "" {
				msg = step.Name
			}
			fmt.Fprintln(r.out, FormatSuccess(msg))
			continue
		}
		ok = false
		color.New(color.FgRed).Fprintf(r.out, "❌ %s\n", step.Name)
		if step.Message != "" {
			fmt.Fprintf(r.out, "   %s\n", step.Message)
		}
		if step.Error != nil {
			fmt.Fprintf(r.out, "   %s\n", step.Error.Error())
		}
	}

	if ok {
		r.printNextSteps(result)
	}
	return nil
}

func (r *InitRenderer) printNextSteps(result *usecase.InitProjectResult) {
	fmt.Fprintln(r.out)
	if result.AlreadyInitialized {
		color.New(color.FgYellow).Fprintln(r.out, "⚠️  vest was already initialized in this project")
	} else {
		color.New(color.FgGreen, color.Bold).Fprintln(r.out, "🎉 vest initialized successfully!")
	}

	hint := color.New(color.FgHiBlack)
	fmt.Fprintln(r.out)
	color.New(color.FgCyan, color.Bold).Fprintln(r.out, "📋 Next steps:")

	fmt.Fprintln(r.out, "1. Copy .env.example to .env and set DEPLOYER_PRIVATE_KEY and RPC URLs")
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "2. Compile the VestingWallet contract (forge build) or point [deploy] artifact at its JSON")
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "3. Start a local node and deploy:")
	hint.Fprintln(r.out, "   vest dev anvil start")
	hint.Fprintln(r.out, "   vest deploy --check")
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "4. Inspect and verify deployments:")
	hint.Fprintln(r.out, "   vest list")
	hint.Fprintln(r.out, "   vest check <address>")
}
