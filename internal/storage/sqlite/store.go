package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/riteshkr04/fittrack/internal/models"
)

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed with the built-in sample document when the database is empty
	doc, err := s.Load()
	if err != nil {
		return err
	}
	if doc == nil {
		if err := s.Save(models.DefaultDocument()); err != nil {
			return fmt.Errorf("failed to seed default document: %w", err)
		}
	}

	return nil
}

func (s *Store) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS wellness (
			id            INTEGER PRIMARY KEY CHECK (id = 1),
			steps         INTEGER NOT NULL,
			steps_goal    INTEGER NOT NULL,
			calories      INTEGER NOT NULL,
			calories_goal INTEGER NOT NULL,
			water         INTEGER NOT NULL,
			water_goal    INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS activities (
			id          INTEGER PRIMARY KEY,
			name        TEXT NOT NULL,
			duration    INTEGER NOT NULL,
			calories    INTEGER NOT NULL,
			time_of_day TEXT NOT NULL,
			timestamp   INTEGER NOT NULL,
			position    INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meals (
			id       INTEGER PRIMARY KEY,
			slot     TEXT NOT NULL,
			name     TEXT NOT NULL,
			calories INTEGER NOT NULL,
			position INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS weekly_samples (
			series TEXT NOT NULL,
			day    TEXT NOT NULL,
			value  INTEGER NOT NULL,
			PRIMARY KEY (series, day)
		);
	`)
	return err
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) GetConfigPath() string {
	return s.path
}

func (s *Store) GetDB() *sql.DB {
	return s.db
}
