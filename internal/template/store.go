// Package template persists named, ordered command lists used to scaffold
// new projects. The store is a JSON file kept alongside the configuration.
package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/kanri-dev/kanri/internal/errors"
)

// Store is the collection of templates. Command order within a template
// is significant and preserved verbatim.
type Store struct {
	Templates map[string][]string `json:"templates"`
}

// New returns an empty store.
func New() *Store {
	return &Store{Templates: make(map[string][]string)}
}

// Load reads a store from the JSON file at path.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read templates file: %w", err)
	}

	store := New()
	if err := json.Unmarshal(data, store); err != nil {
		return nil, fmt.Errorf("cannot parse templates file: %w", err)
	}
	if store.Templates == nil {
		store.Templates = make(map[string][]string)
	}
	return store, nil
}

// Save writes the store as JSON to path, creating parent directories as
// needed.
func (s *Store) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("cannot create templates directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot format templates to JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write templates file: %w", err)
	}
	return nil
}

// Get returns the command list of a template.
func (s *Store) Get(name string) ([]string, bool) {
	commands, ok := s.Templates[name]
	return commands, ok
}

// Add registers a new template. Adding over an existing name fails with
// ErrTemplateExists.
func (s *Store) Add(name string, commands []string) error {
	if _, ok := s.Templates[name]; ok {
		return errors.ErrTemplateExists
	}
	s.Templates[name] = commands
	return nil
}

// Remove deletes a template by name.
func (s *Store) Remove(name string) error {
	if _, ok := s.Templates[name]; !ok {
		return errors.ErrTemplateNotFound
	}
	delete(s.Templates, name)
	return nil
}

// Clear removes all templates.
func (s *Store) Clear() {
	s.Templates = make(map[string][]string)
}

// Names returns all template names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.Templates))
	for name := range s.Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsEmpty reports whether the store has no templates.
func (s *Store) IsEmpty() bool {
	return len(s.Templates) == 0
}
