package output

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/plateiq/menuscope/internal/models"
)

type JSONWriter struct {
	basePath string
	folder   string
}

func NewJSONWriter(basePath, folder string) *JSONWriter {
	return &JSONWriter{basePath: basePath, folder: folder}
}

// WriteResult writes the full ScoringResult as one result.json per run.
func (j *JSONWriter) WriteResult(runID string, result models.ScoringResult) error {
	fullPath := filepath.Join(j.basePath, j.folder, runID)
	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	file, err := os.Create(filepath.Join(fullPath, "result.json"))
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func (j *JSONWriter) Close() error {
	return nil
}
