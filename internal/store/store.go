// Package store persists portfolio data as flat JSON files under a data
// directory: a read-only projects list and an append-only contact log.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/leonardomurakami/portfolio/internal/schemas"
	"github.com/leonardomurakami/portfolio/internal/types"
)

// File names inside the data directory.
const (
	ProjectsFile = "projects.json"
	ContactsFile = "contacts.json"
)

// Store reads and writes the flat-file data for the site.
type Store struct {
	dir string

	// mu serializes contact log appends within the process. The append is a
	// whole-file rewrite, so concurrent appends would lose entries.
	mu sync.Mutex
}

// New creates a store rooted at dir. The directory is created lazily on the
// first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// LoadProjects reads the local projects file. A missing file yields an empty
// list; a file that fails schema validation is an error.
func (s *Store) LoadProjects() ([]types.Project, error) {
	path := filepath.Join(s.dir, ProjectsFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := schemas.Validate(schemas.ProjectsSchema, data); err != nil {
		return nil, fmt.Errorf("invalid projects file %s: %w", path, err)
	}

	var projects []types.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for i := range projects {
		if projects[i].Source == "" {
			projects[i].Source = types.SourceLocal
		}
	}
	return projects, nil
}

// SaveProjects writes the projects file, replacing any existing content.
// Used by the seed command.
func (s *Store) SaveProjects(projects []types.Project) error {
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal projects: %w", err)
	}
	return s.writeFile(ProjectsFile, data)
}

// AppendContact appends one submission to the contact log. The log is a JSON
// array; the whole file is read, extended, and rewritten.
func (s *Store) AppendContact(sub types.ContactSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, err := s.loadContactsLocked()
	if err != nil {
		return err
	}

	contacts = append(contacts, sub)
	data, err := json.MarshalIndent(contacts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal contacts: %w", err)
	}
	return s.writeFile(ContactsFile, data)
}

// LoadContacts reads the full contact log. A missing file yields an empty
// list.
func (s *Store) LoadContacts() ([]types.ContactSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadContactsLocked()
}

func (s *Store) loadContactsLocked() ([]types.ContactSubmission, error) {
	path := filepath.Join(s.dir, ContactsFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := schemas.Validate(schemas.ContactsSchema, data); err != nil {
		return nil, fmt.Errorf("invalid contact log %s: %w", path, err)
	}

	var contacts []types.ContactSubmission
	if err := json.Unmarshal(data, &contacts); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return contacts, nil
}

func (s *Store) writeFile(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir %s: %w", s.dir, err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
