// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

package forge

import (
	"regexp"

	"github.com/forgelink/forgelink/lib/reference"
)

// Kind names as they appear in cache keys, marker classes, and
// fixture files.
const (
	KindIssue        = "issue"
	KindMergeRequest = "merge_request"
	KindSnippet      = "snippet"
	KindCommit       = "commit"
)

// shortCommitLength is how many characters of a commit SHA the
// display text shows.
const shortCommitLength = 8

// projectToken matches a foreign-project qualifier: at least two
// path segments joined by "/", each starting with a word character.
const projectToken = `[\w][\w.-]*(?:/[\w][\w.-]*)+`

// noteAnchor matches a trailing note-fragment suffix on a reference.
const noteAnchor = `(?P<anchor>#note_\d+)?`

// kindSpec is the static per-kind metadata the grammars and the
// display/URL builders derive from. Order here is match order in the
// rewriter.
type kindSpec struct {
	name    string
	display string
	symbol  string // short-form sigil: "#45", "!123", "$7", "ns/p@sha"
	urlPart string // path segment under "<project>/-/"
}

var (
	_ reference.Project = (*Project)(nil)
	_ reference.Object  = (*Record)(nil)
)

var kindSpecs = []kindSpec{
	{name: KindIssue, display: "Issue", symbol: "#", urlPart: "issues"},
	{name: KindMergeRequest, display: "Merge request", symbol: "!", urlPart: "merge_requests"},
	{name: KindSnippet, display: "Snippet", symbol: "$", urlPart: "snippets"},
	{name: KindCommit, display: "Commit", symbol: "@", urlPart: "commit"},
}

// Kinds returns the reference grammar bundles for this store, in
// match order, with the collaborator functions bound to the store.
// Link patterns embed the store's base URL, so references to other
// forges never match.
func (s *Store) Kinds() []*reference.Kind {
	kinds := make([]*reference.Kind, 0, len(kindSpecs))
	for _, spec := range kindSpecs {
		kinds = append(kinds, s.kind(spec))
	}
	return kinds
}

func (s *Store) kind(spec kindSpec) *reference.Kind {
	return &reference.Kind{
		Name:         spec.name,
		DisplayName:  spec.display,
		ShortPattern: shortPattern(spec),
		LinkPattern:  linkPattern(s.baseURL, spec),

		LookupObject: func(project reference.Project, id string) (reference.Object, error) {
			record := s.lookupObject(spec.name, project.PathWithNamespace(), id)
			if record == nil {
				return nil, nil
			}
			return record, nil
		},
		LookupProjectByToken: func(token string) (reference.Project, error) {
			project := s.lookupProject(token)
			if project == nil {
				return nil, nil
			}
			return project, nil
		},
		URLFor: func(object reference.Object, project reference.Project) string {
			return s.baseURL + "/" + project.PathWithNamespace() + "/-/" + spec.urlPart + "/" + object.ObjectID()
		},
		DisplayText: func(object reference.Object, ambient reference.Project) string {
			return displayText(spec, object, ambient)
		},
	}
}

// shortPattern builds the in-text grammar for a kind: an optional
// project qualifier, the kind's sigil, the id, and an optional note
// anchor. Commits put the sigil between qualifier and SHA
// ("ns/proj@f00dfeed") and match bare SHAs on word boundaries; the
// store lookup weeds out SHA-shaped words that are not commits.
func shortPattern(spec kindSpec) *regexp.Regexp {
	if spec.name == KindCommit {
		return regexp.MustCompile(
			`(?:(?P<project>` + projectToken + `)@)?\b(?P<id>[0-9a-f]{7,40})\b` + noteAnchor)
	}
	return regexp.MustCompile(
		`(?P<project>` + projectToken + `)?` + regexp.QuoteMeta(spec.symbol) + `(?P<id>\d+)` + noteAnchor)
}

// linkPattern builds the URL grammar for a kind against the store's
// base URL. The whole match is captured as "url" so an embedded
// fragment survives into the rendered href verbatim.
func linkPattern(baseURL string, spec kindSpec) *regexp.Regexp {
	id := `\d+`
	if spec.name == KindCommit {
		id = `[0-9a-f]{7,40}`
	}
	return regexp.MustCompile(
		`(?P<url>` + regexp.QuoteMeta(baseURL) +
			`/(?P<project>` + projectToken + `)/-/` + spec.urlPart +
			`/(?P<id>` + id + `)` + noteAnchor + `)`)
}

// displayText renders the canonical reference text for an object as
// seen from the ambient project: "#45" inside its own project,
// "ns/proj#45" from anywhere else. Commits display a truncated SHA,
// bare when same-project ("f00dfeed") and @-qualified otherwise
// ("ns/proj@f00dfeed"); the record keeps the full SHA.
func displayText(spec kindSpec, object reference.Object, ambient reference.Project) string {
	record, ok := object.(*Record)
	id := object.ObjectID()
	if spec.name == KindCommit && len(id) > shortCommitLength {
		id = id[:shortCommitLength]
	}
	crossProject := ok && (ambient == nil || ambient.PathWithNamespace() != record.projectPath)
	if crossProject {
		return record.projectPath + spec.symbol + id
	}
	if spec.name == KindCommit {
		return id
	}
	return spec.symbol + id
}
