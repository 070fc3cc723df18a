// Package backup bundles the configuration and the template store into a
// single JSON file for export and import.
package backup

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kanri-dev/kanri/internal/config"
	"github.com/kanri-dev/kanri/internal/template"
)

// Bundle is the on-disk backup format.
type Bundle struct {
	Config    *config.Config  `json:"config"`
	Templates *template.Store `json:"templates"`
}

// Save writes the bundle as indented JSON to path.
func Save(path string, b Bundle) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot format backup to JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write backup file: %w", err)
	}
	return nil
}

// Load reads a bundle from the JSON file at path.
func Load(path string) (Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bundle{}, fmt.Errorf("cannot find backup file: %w", err)
	}

	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return Bundle{}, fmt.Errorf("cannot parse backup file: %w", err)
	}
	return b, nil
}
