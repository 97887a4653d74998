package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

func Marshal(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	if err := ValidateDocument(data); err != nil {
		return nil, err
	}
	return data, nil
}

// WriteJSON validates the document and writes it to path, creating the
// parent directory if needed.
func WriteJSON(doc *Document, path string) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func ReadJSON(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	if err := ValidateDocument(data); err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &doc, nil
}
