package activities

import (
	"fmt"

	"github.com/riteshkr04/fittrack/internal/cli"
	"github.com/riteshkr04/fittrack/internal/dashboard"
	"github.com/riteshkr04/fittrack/internal/models"
)

type AddCmd struct {
	Name     string `arg:"" help:"Activity name."`
	Duration int    `short:"d" help:"Duration in minutes." required:""`
	Calories int    `short:"c" help:"Calories burned." required:""`
	Time     string `short:"t" help:"Time of day (morning|afternoon|evening)." enum:"morning,afternoon,evening" default:"morning"`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	activity, err := ctx.Dash.AddActivity(dashboard.AddActivityInput{
		Name:     c.Name,
		Duration: c.Duration,
		Calories: c.Calories,
		Time:     models.TimeOfDay(c.Time),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added activity: %s (ID: %d)\n", activity.Name, activity.ID)
	return nil
}
