// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

package forge

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// storeFile is the on-disk shape of a forge fixture.
type storeFile struct {
	BaseURL  string        `json:"base_url"`
	Projects []projectFile `json:"projects"`
}

type projectFile struct {
	ID            string    `json:"id"`
	Path          string    `json:"path"`
	Issues        []*Record `json:"issues"`
	MergeRequests []*Record `json:"merge_requests"`
	Snippets      []*Record `json:"snippets"`
	Commits       []*Record `json:"commits"`
}

// Parse strips JSONC comments and trailing commas from data, then
// unmarshals and validates the result into a populated Store.
func Parse(data []byte) (*Store, error) {
	stripped := jsonc.ToJSON(data)

	var file storeFile
	if err := json.Unmarshal(stripped, &file); err != nil {
		return nil, fmt.Errorf("parsing forge fixture: %w", err)
	}
	if file.BaseURL == "" {
		return nil, fmt.Errorf("forge fixture has no base_url")
	}

	store := NewStore(file.BaseURL)
	for _, project := range file.Projects {
		if err := store.AddProject(&Project{ID: project.ID, Path: project.Path}); err != nil {
			return nil, err
		}
		for kind, records := range map[string][]*Record{
			KindIssue:        project.Issues,
			KindMergeRequest: project.MergeRequests,
			KindSnippet:      project.Snippets,
			KindCommit:       project.Commits,
		} {
			for _, record := range records {
				if err := store.AddObject(kind, project.Path, record); err != nil {
					return nil, err
				}
			}
		}
	}
	return store, nil
}

// ReadFile reads a JSONC forge fixture from disk and parses it.
func ReadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	store, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return store, nil
}
