package storage

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/riteshkr04/fittrack/internal/models"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "fittrack.db"))
	defer store.Close()

	doc := models.DefaultDocument()
	doc.Wellness.Water = 7
	doc.Meals[models.SlotDinner] = append(doc.Meals[models.SlotDinner], models.Meal{
		ID: 7, Name: "Soup", Calories: 240,
	})
	doc.WeeklyActivity["Wed"] = 95

	if err := store.Save(doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got == nil {
		t.Fatal("Load returned nil for a saved document")
	}
	if !reflect.DeepEqual(got, doc) {
		t.Errorf("loaded document does not match saved document:\ngot:  %+v\nwant: %+v", got, doc)
	}
}

func TestSQLiteStoreLoadAbsent(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	defer store.Close()

	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load of absent database returned error: %v", err)
	}
	if doc != nil {
		t.Errorf("Load of absent database returned a document: %+v", doc)
	}
}

func TestSQLiteStoreInitSeedsDefaults(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "fittrack.db"))
	defer store.Close()

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	doc, err := store.Load()
	if err != nil || doc == nil {
		t.Fatalf("Load after Init: doc=%v err=%v", doc, err)
	}
	want := models.DefaultDocument()
	clearTimestamps(doc)
	clearTimestamps(want)
	if !reflect.DeepEqual(doc, want) {
		t.Error("Init did not seed the default document")
	}
}

func TestSQLiteStoreClear(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "fittrack.db"))
	defer store.Close()

	if err := store.Save(models.DefaultDocument()); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if doc, err := store.Load(); err != nil || doc != nil {
		t.Errorf("Load after Clear: doc=%v err=%v, want nil, nil", doc, err)
	}
}
