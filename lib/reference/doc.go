// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

// Package reference defines the reference grammar model and the pattern
// matcher that scans text for short-form references ("#45", "!123",
// "ns/proj$7") and link-form references (fully-qualified forge URLs).
//
// The package knows nothing about any concrete forge: each referencable
// object type is described by a [Kind], a static configuration bundle
// holding the compiled grammars and the collaborator functions that
// look up projects and objects and build URLs. Kinds are built by the
// store layer (lib/forge in this repo, or any other implementation of
// the collaborator functions) and consumed by the rewriter
// (lib/autolink).
//
// # Grammar conventions
//
// Patterns are ordinary compiled *regexp.Regexp values with named
// capture groups. The matcher recognizes these group names:
//
//   - id: the object identifier (required in every pattern)
//   - project: an optional foreign-project token; absent means the
//     reference targets the ambient project
//   - anchor: an optional fragment suffix such as "#note_7"
//   - url: the full matched URL of a link-form reference, used
//     verbatim as the rendered href when present
//
// Any pattern may omit the optional groups. The matcher extracts
// whatever the pattern defines and leaves semantics to the caller.
//
// # Concurrency
//
// Kinds and patterns are immutable after construction. [FindMatches]
// holds no state across calls; it is safe to call concurrently with
// the same pattern.
package reference
