package meals

import (
	"fmt"

	"github.com/riteshkr04/fittrack/internal/cli"
	"github.com/riteshkr04/fittrack/internal/models"
)

type RemoveCmd struct {
	Slot string `arg:"" help:"Meal slot (breakfast|lunch|dinner)." enum:"breakfast,lunch,dinner"`
	ID   int    `arg:"" help:"Meal id."`
}

func (c *RemoveCmd) Run(ctx *cli.Context) error {
	if err := ctx.Dash.RemoveMeal(models.MealSlot(c.Slot), c.ID); err != nil {
		return err
	}

	fmt.Printf("Removed meal %d from %s\n", c.ID, c.Slot)
	fmt.Printf("Total calories: %d\n", ctx.Dash.TotalMealCalories())
	return nil
}
