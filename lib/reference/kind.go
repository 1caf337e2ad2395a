// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

package reference

import "regexp"

// Project is the minimal view of a forge project that the reference
// engine needs. Concrete project types live in the store layer.
type Project interface {
	// ProjectID returns the stable identity key of the project.
	// Cache entries are scoped by this value.
	ProjectID() string

	// PathWithNamespace returns the human-readable project path
	// (e.g. "gitlab-org/gitlab"), used in cross-project display text.
	PathWithNamespace() string
}

// Object is a referencable domain object (issue, merge request,
// snippet, commit). Concrete object types live in the store layer.
type Object interface {
	// ObjectID returns the object's identity key within its
	// (kind, project) scope: the issue IID, the commit SHA, etc.
	ObjectID() string

	// ObjectTitle returns the object's title, used in the rendered
	// link's title attribute.
	ObjectTitle() string
}

// Kind is the static configuration bundle for one referencable object
// type. A Kind is built once at startup and never mutated; the
// rewriter treats it as read-only.
//
// Either pattern may be nil, disabling the corresponding matching
// path: a Kind with no ShortPattern is never matched in running text,
// a Kind with no LinkPattern never claims pasted URLs.
type Kind struct {
	// Name identifies the kind in cache keys, CSS classes
	// ("gfm-merge_request"), and data attribute names. Lowercase,
	// words joined with underscores.
	Name string

	// DisplayName is the human-readable type name used in link
	// titles ("Merge request: Fix the frobnicator").
	DisplayName string

	// ShortPattern matches bare references in running text and in
	// link hrefs ("#45", "ns/proj!123", "#10#note_7").
	ShortPattern *regexp.Regexp

	// LinkPattern matches a fully-qualified URL denoting an object
	// of this kind. It must define an "url" group covering the whole
	// matched URL so the renderer can preserve embedded fragments.
	LinkPattern *regexp.Regexp

	// LookupObject resolves an object id within a project. A nil
	// Object with a nil error means "not found", which is a normal
	// outcome, not an error. Errors are store failures and propagate
	// out of the rewrite untouched.
	LookupObject func(project Project, id string) (Object, error)

	// LookupProjectByToken resolves a foreign-project token. The
	// caller handles the absent token itself (ambient project); this
	// function is only invoked for explicit tokens. Nil with nil
	// error means "no such project".
	LookupProjectByToken func(token string) (Project, error)

	// URLFor builds the canonical URL for an object in the given
	// contextual project.
	URLFor func(object Object, project Project) string

	// DisplayText builds the canonical link text for an object as
	// seen from the ambient project ("#45" same-project,
	// "ns/proj#45" cross-project).
	DisplayText func(object Object, ambient Project) string
}
