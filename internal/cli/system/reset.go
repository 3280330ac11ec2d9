package system

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/riteshkr04/fittrack/internal/cli"
)

type ResetCmd struct {
	Yes bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		confirmed := false
		prompt := huh.NewConfirm().
			Title("Reset all dashboard data?").
			Description("This action cannot be undone.").
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Reset cancelled")
			return nil
		}
	}

	if err := ctx.Dash.ResetAll(); err != nil {
		return err
	}

	fmt.Println("Dashboard reset to defaults")
	return nil
}
