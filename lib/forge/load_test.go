// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

package forge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixtureJSONC = `{
	// The forge this document set belongs to.
	"base_url": "https://forge.example.com/",
	"projects": [
		{
			"id": "1",
			"path": "ns/proj",
			"issues": [
				{"id": "45", "title": "Fix the frobnicator"},
			],
			"merge_requests": [{"id": "42", "title": "Add frobnication"}],
			"commits": [
				{"id": "f00dfeed99aa0011223344556677889900aabbcc", "title": "Initial commit"},
			],
		},
	],
}`

func TestParseFixture(t *testing.T) {
	store, err := Parse([]byte(fixtureJSONC))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if store.BaseURL() != "https://forge.example.com" {
		t.Errorf("BaseURL = %q, want trailing slash stripped", store.BaseURL())
	}
	if store.lookupProject("ns/proj") == nil {
		t.Error("project ns/proj missing after parse")
	}
	if store.lookupObject(KindIssue, "ns/proj", "45") == nil {
		t.Error("issue 45 missing after parse")
	}
	if store.lookupObject(KindMergeRequest, "ns/proj", "42") == nil {
		t.Error("merge request 42 missing after parse")
	}
	if store.lookupObject(KindCommit, "ns/proj", "f00dfeed") == nil {
		t.Error("commit prefix lookup failed after parse")
	}
}

func TestParseRejectsMissingBaseURL(t *testing.T) {
	_, err := Parse([]byte(`{"projects": []}`))
	if err == nil || !strings.Contains(err.Error(), "base_url") {
		t.Errorf("expected base_url error, got %v", err)
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"base_url": `)); err == nil {
		t.Error("expected error for malformed input")
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forge.jsonc")
	if err := os.WriteFile(path, []byte(fixtureJSONC), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	store, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if store.lookupProject("ns/proj") == nil {
		t.Error("project missing after ReadFile")
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "absent.jsonc")); err == nil {
		t.Error("expected error for missing file")
	}
}
