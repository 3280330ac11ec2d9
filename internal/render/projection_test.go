package render

import (
	"testing"

	"github.com/riteshkr04/fittrack/internal/models"
)

func TestFilterActivities(t *testing.T) {
	activities := models.DefaultDocument().Activities

	all := FilterActivities(activities, FilterAll)
	if len(all) != len(activities) {
		t.Errorf("filter %q returned %d activities, want %d", FilterAll, len(all), len(activities))
	}
	for i := range all {
		if all[i].ID != activities[i].ID {
			t.Errorf("filter %q reordered the list at index %d", FilterAll, i)
		}
	}

	afternoon := FilterActivities(activities, "afternoon")
	if len(afternoon) != 1 {
		t.Fatalf("filter afternoon returned %d activities, want 1", len(afternoon))
	}
	if afternoon[0].Name != "Cycling" {
		t.Errorf("filter afternoon returned %q, want Cycling", afternoon[0].Name)
	}

	// No matches is an empty state, not an error
	none := FilterActivities(nil, "evening")
	if len(none) != 0 {
		t.Errorf("filter over nil list returned %d activities", len(none))
	}
}

func TestMealListGrandTotal(t *testing.T) {
	doc := models.DefaultDocument()

	// 320+150+450+380+520+210
	want := 2030
	for _, slot := range models.MealSlots() {
		p := MealList(doc, slot)
		if p.GrandTotal != want {
			t.Errorf("%s projection total = %d, want grand total %d across all slots", slot, p.GrandTotal, want)
		}
	}

	breakfast := MealList(doc, models.SlotBreakfast)
	if len(breakfast.Entries) != 2 {
		t.Errorf("breakfast has %d entries, want 2", len(breakfast.Entries))
	}
}

func TestActivityFilters(t *testing.T) {
	want := []string{"all", "morning", "afternoon", "evening"}
	got := ActivityFilters()
	if len(got) != len(want) {
		t.Fatalf("got %d filters, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("filter %d = %q, want %q", i, got[i], want[i])
		}
	}
}
