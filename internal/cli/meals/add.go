package meals

import (
	"fmt"

	"github.com/riteshkr04/fittrack/internal/cli"
	"github.com/riteshkr04/fittrack/internal/dashboard"
	"github.com/riteshkr04/fittrack/internal/models"
)

type AddCmd struct {
	Name     string `arg:"" help:"Meal name."`
	Calories int    `short:"c" help:"Calories." required:""`
	Slot     string `short:"s" help:"Meal slot (breakfast|lunch|dinner)." enum:"breakfast,lunch,dinner" default:"breakfast"`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	meal, err := ctx.Dash.AddMeal(dashboard.AddMealInput{
		Slot:     models.MealSlot(c.Slot),
		Name:     c.Name,
		Calories: c.Calories,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added %s to %s (ID: %d)\n", meal.Name, c.Slot, meal.ID)
	fmt.Printf("Total calories: %d\n", ctx.Dash.TotalMealCalories())
	return nil
}
