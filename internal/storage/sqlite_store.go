package storage

import (
	"database/sql"

	"github.com/riteshkr04/fittrack/internal/models"
	"github.com/riteshkr04/fittrack/internal/storage/sqlite"
)

// SQLiteStore wraps sqlite.Store behind the Provider interface
type SQLiteStore struct {
	store *sqlite.Store
}

// NewSQLiteStore creates a new SQLite store
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		store: sqlite.NewStore(path),
	}
}

func (s *SQLiteStore) Init() error                     { return s.store.Init() }
func (s *SQLiteStore) Load() (*models.Document, error) { return s.store.Load() }
func (s *SQLiteStore) Save(doc *models.Document) error { return s.store.Save(doc) }
func (s *SQLiteStore) Clear() error                    { return s.store.Clear() }
func (s *SQLiteStore) Close() error                    { return s.store.Close() }
func (s *SQLiteStore) GetConfigPath() string           { return s.store.GetConfigPath() }

// GetDB is exported for test access
func (s *SQLiteStore) GetDB() *sql.DB { return s.store.GetDB() }
