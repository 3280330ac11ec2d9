package storage

import "github.com/riteshkr04/fittrack/internal/models"

// Provider persists the dashboard document as a single unit. Load is
// fail-soft: a missing or unreadable document is reported as absent
// (nil, nil) so the caller falls back to built-in defaults.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Document
	Load() (*models.Document, error)
	Save(*models.Document) error
	Clear() error

	// Utils
	GetConfigPath() string
}
