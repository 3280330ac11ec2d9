package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/riteshkr04/fittrack/internal/constants"
	"github.com/riteshkr04/fittrack/internal/models"
)

// Summary is the derived read-only artifact produced on demand. It is a
// digest of the document, not the full document.
type Summary struct {
	ReportID        string          `json:"reportId"`
	Date            string          `json:"date"`
	Wellness        models.Wellness `json:"wellness"`
	TotalActivities int             `json:"totalActivities"`
	TotalMeals      int             `json:"totalMeals"`
	WeeklyStats     WeeklyStats     `json:"weeklyStats"`
}

type WeeklyStats struct {
	Activity models.WeeklySeries `json:"activity"`
	Calories models.WeeklySeries `json:"calories"`
}

// Writer drops summary files into an output directory.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write serializes the summary as fittrack-summary-<unixMillis>.json and
// returns the written path. Name collisions get a numeric suffix.
func (w *Writer) Write(summary Summary) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	stamp := time.Now().UnixMilli()
	name := fmt.Sprintf("%s%d%s", constants.ExportFilePrefix, stamp, constants.ExportFileSuffix)
	path := filepath.Join(w.dir, name)

	counter := 1
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		name = fmt.Sprintf("%s%d-%d%s", constants.ExportFilePrefix, stamp, counter, constants.ExportFileSuffix)
		path = filepath.Join(w.dir, name)
		counter++
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique export filename")
		}
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize summary: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write summary: %w", err)
	}

	return path, nil
}
