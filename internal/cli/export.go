package cli

import (
	"fmt"

	"github.com/riteshkr04/fittrack/internal/export"
)

type ExportCmd struct {
	Out string `short:"o" help:"Output directory for the summary file." default:"." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	writer := export.NewWriter(c.Out)
	path, err := writer.Write(ctx.Dash.Summary())
	if err != nil {
		return err
	}

	fmt.Printf("Summary written to: %s\n", path)
	return nil
}
