package system

import (
	"fmt"
	"os"

	"github.com/riteshkr04/fittrack/internal/cli"
	"github.com/riteshkr04/fittrack/internal/models"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage file present
	if _, err := os.Stat(ctx.Store.GetConfigPath()); err != nil {
		fmt.Printf("⚠ Storage present: not yet initialized (%s)\n", ctx.Store.GetConfigPath())
	} else {
		fmt.Printf("✓ Storage present: OK\n")
	}

	// Check 2: persisted document loads (absent is fine: defaults apply)
	stored, err := ctx.Store.Load()
	if err != nil {
		fmt.Printf("❌ Document readable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else if stored == nil {
		fmt.Printf("✓ Document readable: OK (using built-in defaults)\n")
	} else {
		fmt.Printf("✓ Document readable: OK\n")
	}

	// Check 3: merged document integrity
	doc := ctx.Dash.Document()
	if err := checkDocument(doc); err != nil {
		fmt.Printf("❌ Document integrity: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Document integrity: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed")
	return nil
}

func checkDocument(doc *models.Document) error {
	seenActivity := make(map[int]bool)
	for _, a := range doc.Activities {
		if a.ID <= 0 {
			return fmt.Errorf("activity %q has non-positive id %d", a.Name, a.ID)
		}
		if seenActivity[a.ID] {
			return fmt.Errorf("duplicate activity id %d", a.ID)
		}
		seenActivity[a.ID] = true
		if !a.Time.Valid() {
			return fmt.Errorf("activity %q has unknown time of day %q", a.Name, a.Time)
		}
	}

	seenMeal := make(map[int]bool)
	for _, slot := range models.MealSlots() {
		if doc.Meals[slot] == nil {
			return fmt.Errorf("meal slot %q is missing", slot)
		}
		for _, m := range doc.Meals[slot] {
			if m.ID <= 0 {
				return fmt.Errorf("meal %q has non-positive id %d", m.Name, m.ID)
			}
			if seenMeal[m.ID] {
				return fmt.Errorf("duplicate meal id %d", m.ID)
			}
			seenMeal[m.ID] = true
		}
	}

	for _, day := range models.DayLabels() {
		if doc.WeeklyActivity[day] < 0 || doc.WeeklyCalories[day] < 0 {
			return fmt.Errorf("negative weekly sample for %s", day)
		}
	}

	return nil
}
