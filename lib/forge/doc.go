// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

// Package forge provides an in-memory forge model: projects and their
// referencable objects (issues, merge requests, snippets, commits),
// plus the default reference grammars for each object kind. It is the
// concrete implementation of the collaborator functions a
// [reference.Kind] carries — the store behind the rewriter.
//
// Stores are built programmatically ([NewStore], [Store.AddProject],
// [Store.AddObject]) or loaded from a JSONC fixture file ([ReadFile],
// [Parse]): JSON extended with // line comments, /* block comments */,
// and trailing commas.
//
// A fixture file looks like:
//
//	{
//	  "base_url": "https://forge.example.com",
//	  "projects": [
//	    {
//	      "id": "1",
//	      "path": "gitlab-org/gitlab",
//	      "issues": [{"id": "45", "title": "Fix the frobnicator"}],
//	      "merge_requests": [{"id": "123", "title": "Add frobnication"}],
//	      "snippets": [],
//	      "commits": [{"id": "f00dfeed99aa0011223344556677889900aabbcc", "title": "Initial commit"}],
//	    },
//	  ],
//	}
//
// The store is a pure data structure: no network, no persistence, no
// concurrency control. Populate it fully before handing its kinds to
// the rewriter; the rewriter only reads.
package forge
