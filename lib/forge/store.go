// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

package forge

import (
	"fmt"
	"strings"
)

// Project is a forge project. Its path ("namespace/name") doubles as
// the foreign-project token in references.
type Project struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// ProjectID returns the project's stable identity key.
func (p *Project) ProjectID() string { return p.ID }

// PathWithNamespace returns the project path, e.g. "gitlab-org/gitlab".
func (p *Project) PathWithNamespace() string { return p.Path }

// Record is one referencable object: an issue, merge request, or
// snippet (ID is the decimal IID) or a commit (ID is the full SHA).
type Record struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	// projectPath is the owning project, set when the record is
	// added to a store. Display text uses it to qualify
	// cross-project references.
	projectPath string
}

// ObjectID returns the record's identity within its kind and project.
func (r *Record) ObjectID() string { return r.ID }

// ObjectTitle returns the record's title.
func (r *Record) ObjectTitle() string { return r.Title }

// Store holds the projects and objects of one forge instance.
type Store struct {
	baseURL  string
	projects map[string]*Project // by path token

	// kind name → project path → object id → record
	objects map[string]map[string]map[string]*Record
}

// NewStore returns an empty store rooted at baseURL (scheme and host,
// no trailing slash — one is stripped if present).
func NewStore(baseURL string) *Store {
	return &Store{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		projects: make(map[string]*Project),
		objects:  make(map[string]map[string]map[string]*Record),
	}
}

// BaseURL returns the forge root URL.
func (s *Store) BaseURL() string { return s.baseURL }

// AddProject registers a project. The path must be unique within the
// store.
func (s *Store) AddProject(project *Project) error {
	if project.ID == "" || project.Path == "" {
		return fmt.Errorf("project needs both id and path: %+v", project)
	}
	if _, exists := s.projects[project.Path]; exists {
		return fmt.Errorf("duplicate project path %q", project.Path)
	}
	s.projects[project.Path] = project
	return nil
}

// AddObject registers an object of the given kind under a project
// that must already exist.
func (s *Store) AddObject(kind, projectPath string, record *Record) error {
	if record.ID == "" {
		return fmt.Errorf("object in %s/%s has no id", projectPath, kind)
	}
	if _, exists := s.projects[projectPath]; !exists {
		return fmt.Errorf("object %s references unknown project %q", record.ID, projectPath)
	}
	if s.objects[kind] == nil {
		s.objects[kind] = make(map[string]map[string]*Record)
	}
	if s.objects[kind][projectPath] == nil {
		s.objects[kind][projectPath] = make(map[string]*Record)
	}
	record.projectPath = projectPath
	s.objects[kind][projectPath][record.ID] = record
	return nil
}

// lookupProject resolves a project path token. Unknown tokens return
// nil — a normal outcome for the reference engine.
func (s *Store) lookupProject(token string) *Project {
	return s.projects[token]
}

// lookupObject resolves an object id of a kind within a project. For
// commits the id may be any unambiguous prefix of the full SHA, seven
// or more characters; other kinds require an exact id.
func (s *Store) lookupObject(kind, projectPath, id string) *Record {
	byID := s.objects[kind][projectPath]
	if byID == nil {
		return nil
	}
	if record, ok := byID[id]; ok {
		return record
	}
	if kind != KindCommit {
		return nil
	}
	var found *Record
	for sha, record := range byID {
		if strings.HasPrefix(sha, id) {
			if found != nil {
				return nil // ambiguous prefix
			}
			found = record
		}
	}
	return found
}
