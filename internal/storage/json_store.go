package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/riteshkr04/fittrack/internal/logger"
	"github.com/riteshkr04/fittrack/internal/models"
)

// JSONStore keeps the whole document in one JSON file, the direct
// counterpart of a single browser-storage entry. Every mutation rewrites
// the full blob; last write wins.
type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(models.DefaultDocument())
}

// Load returns the persisted document, or (nil, nil) when nothing usable
// is stored. Parse failures are deliberately swallowed: the caller keeps
// its defaults and the corrupt blob is overwritten on the next save.
func (s *JSONStore) Load() (*models.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &models.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		logger.Warn("Stored document is not valid JSON, falling back to defaults", "path", s.path, "error", err)
		return nil, nil
	}

	return doc, nil
}

func (s *JSONStore) Save(doc *models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
