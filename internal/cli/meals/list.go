package meals

import (
	"fmt"

	"github.com/riteshkr04/fittrack/internal/cli"
	"github.com/riteshkr04/fittrack/internal/models"
	"github.com/riteshkr04/fittrack/internal/render"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	doc := ctx.Dash.Document()

	for _, slot := range models.MealSlots() {
		projection := render.MealList(doc, slot)
		fmt.Printf("%s:\n", slot)
		if len(projection.Entries) == 0 {
			fmt.Println("  No meals added")
			continue
		}
		for _, m := range projection.Entries {
			fmt.Printf("  %s\n", cli.FormatMeal(m))
		}
	}

	fmt.Printf("Total calories: %d\n", render.GrandTotalCalories(doc))
	return nil
}
