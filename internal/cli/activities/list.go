package activities

import (
	"fmt"

	"github.com/riteshkr04/fittrack/internal/cli"
	"github.com/riteshkr04/fittrack/internal/render"
)

type ListCmd struct {
	Filter string `short:"f" help:"Filter by time of day." enum:"all,morning,afternoon,evening" default:"all"`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	filtered := render.FilterActivities(ctx.Dash.Document().Activities, c.Filter)

	if len(filtered) == 0 {
		fmt.Println("No activities found")
		return nil
	}

	for _, a := range filtered {
		fmt.Printf("%s  (added %s)\n", cli.FormatActivity(a), cli.FormatTimestamp(a.Timestamp))
	}
	return nil
}
