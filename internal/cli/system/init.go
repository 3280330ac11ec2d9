package system

import (
	"fmt"

	"github.com/riteshkr04/fittrack/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Discard any existing data before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := ctx.Store.Clear(); err != nil {
			return fmt.Errorf("failed to clear existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	fmt.Printf("Initialized fittrack storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
