package dashboard

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/riteshkr04/fittrack/internal/models"
	"github.com/riteshkr04/fittrack/internal/storage"
)

// clearTimestamps zeroes activity creation stamps so documents built at
// different instants compare equal.
func clearTimestamps(doc *models.Document) {
	for i := range doc.Activities {
		doc.Activities[i].Timestamp = 0
	}
}

func newTestDashboard(t *testing.T) *Dashboard {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "fittrack.json"))
	d, err := New(store)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return d
}

func TestNewSeedsDefaults(t *testing.T) {
	d := newTestDashboard(t)

	got, want := d.Document(), models.DefaultDocument()
	clearTimestamps(got)
	clearTimestamps(want)
	if !reflect.DeepEqual(got, want) {
		t.Error("fresh dashboard does not carry the default document")
	}
	if d.nextActivityID != 5 {
		t.Errorf("nextActivityID = %d, want 5 (max sample id + 1)", d.nextActivityID)
	}
	if d.nextMealID != 7 {
		t.Errorf("nextMealID = %d, want 7 (max sample id + 1)", d.nextMealID)
	}
}

func TestAddActivity(t *testing.T) {
	d := newTestDashboard(t)

	a, err := d.AddActivity(AddActivityInput{
		Name: "  Rowing  ", Duration: 25, Calories: 210, Time: models.TimeEvening,
	})
	if err != nil {
		t.Fatalf("AddActivity failed: %v", err)
	}
	if a.ID != 5 {
		t.Errorf("first added activity got id %d, want 5", a.ID)
	}
	if a.Name != "Rowing" {
		t.Errorf("name not trimmed: %q", a.Name)
	}
	if a.Timestamp == 0 {
		t.Error("activity timestamp not set")
	}
	if d.Document().Activities[0].ID != a.ID {
		t.Error("new activity was not prepended")
	}

	b, err := d.AddActivity(AddActivityInput{
		Name: "Hiking", Duration: 90, Calories: 400, Time: models.TimeMorning,
	})
	if err != nil {
		t.Fatal(err)
	}
	if b.ID != a.ID+1 {
		t.Errorf("ids not strictly increasing: %d then %d", a.ID, b.ID)
	}
}

func TestAddActivityRejectsInvalidInput(t *testing.T) {
	d := newTestDashboard(t)
	before := len(d.Document().Activities)

	cases := []AddActivityInput{
		{Name: "   ", Duration: 30, Calories: 200, Time: models.TimeMorning},
		{Name: "Run", Duration: 0, Calories: 200, Time: models.TimeMorning},
		{Name: "Run", Duration: 30, Calories: -5, Time: models.TimeMorning},
		{Name: "Run", Duration: 30, Calories: 200, Time: "midnight"},
	}
	for _, in := range cases {
		_, err := d.AddActivity(in)
		if err == nil {
			t.Errorf("AddActivity(%+v) succeeded, want validation error", in)
			continue
		}
		if !IsValidation(err) {
			t.Errorf("AddActivity(%+v) error is not a ValidationError: %v", in, err)
		}
	}

	if len(d.Document().Activities) != before {
		t.Error("rejected input changed the activity list")
	}
	if d.nextActivityID != 5 {
		t.Errorf("rejected input consumed an id, counter = %d", d.nextActivityID)
	}
}

func TestMealCounterSharedAcrossSlots(t *testing.T) {
	d := newTestDashboard(t)

	m1, err := d.AddMeal(AddMealInput{Slot: models.SlotBreakfast, Name: "Toast", Calories: 180})
	if err != nil {
		t.Fatal(err)
	}
	m2, err := d.AddMeal(AddMealInput{Slot: models.SlotDinner, Name: "Stew", Calories: 450})
	if err != nil {
		t.Fatal(err)
	}
	if m1.ID != 7 || m2.ID != 8 {
		t.Errorf("meal ids = %d, %d, want 7, 8 across slots", m1.ID, m2.ID)
	}

	want := 2030 + 180 + 450
	if got := d.TotalMealCalories(); got != want {
		t.Errorf("TotalMealCalories = %d, want %d", got, want)
	}
}

func TestRemoveMeal(t *testing.T) {
	d := newTestDashboard(t)

	if err := d.RemoveMeal(models.SlotBreakfast, 1); err != nil {
		t.Fatalf("RemoveMeal failed: %v", err)
	}
	for _, m := range d.Document().Meals[models.SlotBreakfast] {
		if m.ID == 1 {
			t.Error("meal 1 still present after removal")
		}
	}
	if got := d.TotalMealCalories(); got != 2030-320 {
		t.Errorf("grand total after removal = %d, want %d", got, 2030-320)
	}

	// Absent id is a no-op
	before := len(d.Document().Meals[models.SlotLunch])
	if err := d.RemoveMeal(models.SlotLunch, 999); err != nil {
		t.Fatalf("RemoveMeal of absent id failed: %v", err)
	}
	if len(d.Document().Meals[models.SlotLunch]) != before {
		t.Error("removing an absent id changed the slot")
	}

	if err := d.RemoveMeal("brunch", 1); err == nil || !IsValidation(err) {
		t.Errorf("RemoveMeal with invalid slot: err = %v, want validation error", err)
	}
}

func TestIDsNeverReused(t *testing.T) {
	d := newTestDashboard(t)

	m, err := d.AddMeal(AddMealInput{Slot: models.SlotLunch, Name: "Salad", Calories: 200})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.RemoveMeal(models.SlotLunch, m.ID); err != nil {
		t.Fatal(err)
	}
	next, err := d.AddMeal(AddMealInput{Slot: models.SlotLunch, Name: "Wrap", Calories: 300})
	if err != nil {
		t.Fatal(err)
	}
	if next.ID <= m.ID {
		t.Errorf("id %d reused after removal of %d", next.ID, m.ID)
	}
}

func TestCountersDerivedFromPersistedState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fittrack.json")
	store := storage.NewJSONStore(path)

	first, err := New(store)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := first.AddActivity(AddActivityInput{
		Name: "Hiking", Duration: 90, Calories: 400, Time: models.TimeMorning,
	}); err != nil {
		t.Fatal(err)
	}

	second, err := New(storage.NewJSONStore(path))
	if err != nil {
		t.Fatal(err)
	}
	if second.nextActivityID != 6 {
		t.Errorf("reloaded nextActivityID = %d, want 6", second.nextActivityID)
	}
}

func TestOverlayPreservesMissingSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fittrack.json")
	partial := `{"activities": [{"id": 9, "name": "Skating", "duration": 40, "calories": 260, "time": "evening", "timestamp": 1700000000000}]}`
	if err := os.WriteFile(path, []byte(partial), 0600); err != nil {
		t.Fatal(err)
	}

	d, err := New(storage.NewJSONStore(path))
	if err != nil {
		t.Fatal(err)
	}

	doc := d.Document()
	if len(doc.Activities) != 1 || doc.Activities[0].Name != "Skating" {
		t.Errorf("stored activities not applied: %+v", doc.Activities)
	}
	defaults := models.DefaultDocument()
	if doc.Wellness != defaults.Wellness {
		t.Error("missing wellness section did not keep defaults")
	}
	if !reflect.DeepEqual(doc.Meals, defaults.Meals) {
		t.Error("missing meals section did not keep defaults")
	}
	if !reflect.DeepEqual(doc.WeeklyActivity, defaults.WeeklyActivity) {
		t.Error("missing weekly activity did not keep defaults")
	}
	if d.nextActivityID != 10 {
		t.Errorf("nextActivityID = %d, want 10", d.nextActivityID)
	}
}

func TestResetAll(t *testing.T) {
	d := newTestDashboard(t)

	if _, err := d.AddMeal(AddMealInput{Slot: models.SlotBreakfast, Name: "Toast", Calories: 180}); err != nil {
		t.Fatal(err)
	}
	if err := d.ResetAll(); err != nil {
		t.Fatalf("ResetAll failed: %v", err)
	}

	got, want := d.Document(), models.DefaultDocument()
	clearTimestamps(got)
	clearTimestamps(want)
	if !reflect.DeepEqual(got, want) {
		t.Error("ResetAll did not restore the default document")
	}
	if d.nextMealID != 7 {
		t.Errorf("nextMealID after reset = %d, want 7", d.nextMealID)
	}
}

func TestSummary(t *testing.T) {
	d := newTestDashboard(t)

	s := d.Summary()
	if s.ReportID == "" {
		t.Error("summary has no report id")
	}
	if s.Date == "" {
		t.Error("summary has no date")
	}
	if s.TotalActivities != 4 {
		t.Errorf("TotalActivities = %d, want 4", s.TotalActivities)
	}
	if s.TotalMeals != 6 {
		t.Errorf("TotalMeals = %d, want 6", s.TotalMeals)
	}
	if s.WeeklyStats.Activity["Sat"] != 90 {
		t.Errorf("WeeklyStats.Activity[Sat] = %d, want 90", s.WeeklyStats.Activity["Sat"])
	}
}
