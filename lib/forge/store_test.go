// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

package forge

import "testing"

// testStore builds a small two-project store used across the
// package tests.
func testStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore("https://forge.example.com")

	for _, project := range []*Project{
		{ID: "1", Path: "ns/proj"},
		{ID: "2", Path: "other/repo"},
	} {
		if err := store.AddProject(project); err != nil {
			t.Fatalf("AddProject(%s): %v", project.Path, err)
		}
	}

	add := func(kind, path string, record *Record) {
		t.Helper()
		if err := store.AddObject(kind, path, record); err != nil {
			t.Fatalf("AddObject(%s, %s, %s): %v", kind, path, record.ID, err)
		}
	}
	add(KindIssue, "ns/proj", &Record{ID: "45", Title: "Fix the frobnicator"})
	add(KindIssue, "ns/proj", &Record{ID: "10", Title: "Anchored issue"})
	add(KindIssue, "other/repo", &Record{ID: "7", Title: "Foreign issue"})
	add(KindMergeRequest, "ns/proj", &Record{ID: "42", Title: "Add frobnication"})
	add(KindSnippet, "ns/proj", &Record{ID: "3", Title: "Useful snippet"})
	add(KindCommit, "ns/proj", &Record{ID: "f00dfeed99aa0011223344556677889900aabbcc", Title: "Initial commit"})
	add(KindCommit, "ns/proj", &Record{ID: "f00d1111223344556677889900aabbccddeeff00", Title: "Second commit"})
	return store
}

func TestAddProjectDuplicatePath(t *testing.T) {
	store := testStore(t)
	if err := store.AddProject(&Project{ID: "9", Path: "ns/proj"}); err == nil {
		t.Error("expected error for duplicate project path")
	}
}

func TestAddObjectUnknownProject(t *testing.T) {
	store := testStore(t)
	if err := store.AddObject(KindIssue, "no/such", &Record{ID: "1", Title: "x"}); err == nil {
		t.Error("expected error for object under unknown project")
	}
}

func TestLookupObjectExact(t *testing.T) {
	store := testStore(t)
	record := store.lookupObject(KindIssue, "ns/proj", "45")
	if record == nil {
		t.Fatal("expected issue 45 to resolve")
	}
	if record.Title != "Fix the frobnicator" {
		t.Errorf("Title = %q", record.Title)
	}
	if store.lookupObject(KindIssue, "ns/proj", "999") != nil {
		t.Error("unknown id must return nil")
	}
	if store.lookupObject(KindIssue, "other/repo", "45") != nil {
		t.Error("id from another project must not leak")
	}
}

func TestLookupCommitByPrefix(t *testing.T) {
	store := testStore(t)

	record := store.lookupObject(KindCommit, "ns/proj", "f00dfeed")
	if record == nil {
		t.Fatal("expected unambiguous prefix to resolve")
	}
	if record.Title != "Initial commit" {
		t.Errorf("Title = %q", record.Title)
	}

	// "f00d" prefixes both commits: ambiguous, no resolution.
	if store.lookupObject(KindCommit, "ns/proj", "f00d") != nil {
		t.Error("ambiguous prefix must not resolve")
	}
}

func TestLookupProject(t *testing.T) {
	store := testStore(t)
	if store.lookupProject("other/repo") == nil {
		t.Error("expected known token to resolve")
	}
	if store.lookupProject("no/such") != nil {
		t.Error("unknown token must return nil")
	}
}
