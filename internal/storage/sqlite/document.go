package sqlite

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/riteshkr04/fittrack/internal/models"
)

const (
	seriesActivity = "activity"
	seriesCalories = "calories"
)

// Load reassembles the document from the relational tables. A missing
// database file or an empty database is reported as absent (nil, nil).
func (s *Store) Load() (*models.Document, error) {
	if s.db == nil {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			return nil, nil
		}
		if err := s.open(); err != nil {
			return nil, err
		}
		if err := s.createSchema(); err != nil {
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	doc := &models.Document{
		Meals:          make(map[models.MealSlot][]models.Meal),
		WeeklyActivity: models.WeeklySeries{},
		WeeklyCalories: models.WeeklySeries{},
	}

	row := s.db.QueryRow(`
		SELECT steps, steps_goal, calories, calories_goal, water, water_goal
		FROM wellness WHERE id = 1`)
	err := row.Scan(
		&doc.Wellness.Steps, &doc.Wellness.StepsGoal,
		&doc.Wellness.Calories, &doc.Wellness.CaloriesGoal,
		&doc.Wellness.Water, &doc.Wellness.WaterGoal,
	)
	if err == sql.ErrNoRows {
		// Never saved: nothing to overlay
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wellness: %w", err)
	}

	if err := s.loadActivities(doc); err != nil {
		return nil, err
	}
	if err := s.loadMeals(doc); err != nil {
		return nil, err
	}
	if err := s.loadWeeklySamples(doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func (s *Store) loadActivities(doc *models.Document) error {
	rows, err := s.db.Query(`
		SELECT id, name, duration, calories, time_of_day, timestamp
		FROM activities ORDER BY position`)
	if err != nil {
		return fmt.Errorf("failed to load activities: %w", err)
	}
	defer rows.Close()

	doc.Activities = []models.Activity{}
	for rows.Next() {
		var a models.Activity
		var timeOfDay string
		if err := rows.Scan(&a.ID, &a.Name, &a.Duration, &a.Calories, &timeOfDay, &a.Timestamp); err != nil {
			return fmt.Errorf("failed to scan activity: %w", err)
		}
		a.Time = models.TimeOfDay(timeOfDay)
		doc.Activities = append(doc.Activities, a)
	}
	return rows.Err()
}

func (s *Store) loadMeals(doc *models.Document) error {
	rows, err := s.db.Query(`
		SELECT id, slot, name, calories
		FROM meals ORDER BY position`)
	if err != nil {
		return fmt.Errorf("failed to load meals: %w", err)
	}
	defer rows.Close()

	for _, slot := range models.MealSlots() {
		doc.Meals[slot] = []models.Meal{}
	}
	for rows.Next() {
		var m models.Meal
		var slot string
		if err := rows.Scan(&m.ID, &slot, &m.Name, &m.Calories); err != nil {
			return fmt.Errorf("failed to scan meal: %w", err)
		}
		doc.Meals[models.MealSlot(slot)] = append(doc.Meals[models.MealSlot(slot)], m)
	}
	return rows.Err()
}

func (s *Store) loadWeeklySamples(doc *models.Document) error {
	rows, err := s.db.Query(`SELECT series, day, value FROM weekly_samples`)
	if err != nil {
		return fmt.Errorf("failed to load weekly samples: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var series, day string
		var value int
		if err := rows.Scan(&series, &day, &value); err != nil {
			return fmt.Errorf("failed to scan weekly sample: %w", err)
		}
		switch series {
		case seriesActivity:
			doc.WeeklyActivity[day] = value
		case seriesCalories:
			doc.WeeklyCalories[day] = value
		}
	}
	return rows.Err()
}

// Save replaces the stored document wholesale inside one transaction,
// mirroring the JSON store's full-blob write.
func (s *Store) Save(doc *models.Document) error {
	if err := s.open(); err != nil {
		return err
	}
	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"wellness", "activities", "meals", "weekly_samples"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	_, err = tx.Exec(`
		INSERT INTO wellness (id, steps, steps_goal, calories, calories_goal, water, water_goal)
		VALUES (1, ?, ?, ?, ?, ?, ?)`,
		doc.Wellness.Steps, doc.Wellness.StepsGoal,
		doc.Wellness.Calories, doc.Wellness.CaloriesGoal,
		doc.Wellness.Water, doc.Wellness.WaterGoal,
	)
	if err != nil {
		return fmt.Errorf("failed to save wellness: %w", err)
	}

	for i, a := range doc.Activities {
		_, err := tx.Exec(`
			INSERT INTO activities (id, name, duration, calories, time_of_day, timestamp, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			a.ID, a.Name, a.Duration, a.Calories, string(a.Time), a.Timestamp, i,
		)
		if err != nil {
			return fmt.Errorf("failed to save activity: %w", err)
		}
	}

	for _, slot := range models.MealSlots() {
		for i, m := range doc.Meals[slot] {
			_, err := tx.Exec(`
				INSERT INTO meals (id, slot, name, calories, position)
				VALUES (?, ?, ?, ?, ?)`,
				m.ID, string(slot), m.Name, m.Calories, i,
			)
			if err != nil {
				return fmt.Errorf("failed to save meal: %w", err)
			}
		}
	}

	for series, samples := range map[string]models.WeeklySeries{
		seriesActivity: doc.WeeklyActivity,
		seriesCalories: doc.WeeklyCalories,
	} {
		for _, day := range models.DayLabels() {
			if value, ok := samples[day]; ok {
				_, err := tx.Exec(`
					INSERT INTO weekly_samples (series, day, value)
					VALUES (?, ?, ?)`, series, day, value)
				if err != nil {
					return fmt.Errorf("failed to save weekly sample: %w", err)
				}
			}
		}
	}

	return tx.Commit()
}

// Clear wipes every table so the next Load reports absent.
func (s *Store) Clear() error {
	if s.db == nil {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			return nil
		}
		if err := s.open(); err != nil {
			return err
		}
	}
	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	for _, table := range []string{"wellness", "activities", "meals", "weekly_samples"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}
