// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

// Package autolink rewrites references in a parsed HTML document into
// rendered hyperlinks. It walks the document tree exactly once per
// [Rewrite] call, substituting short-form references ("#45", "!123")
// found in text nodes and re-rendering anchor elements whose href or
// visible text denotes a forge object.
//
// The package is the composition point of the reference engine: it
// takes the grammar bundles from lib/reference, memoizes lookups
// through lib/refcache, and leaves the store behind the collaborator
// functions each [reference.Kind] carries.
//
// # Failure model
//
// A reference that does not resolve — unknown project token, unknown
// object id — is left as plain text, byte for byte. This is a normal
// outcome, not an error. The only errors Rewrite returns are store
// failures surfaced by the collaborator functions; those abort the
// rewrite and propagate to the caller, which owns retry policy.
//
// # Idempotence
//
// Rendered links carry the "gfm" marker class and sit inside <a>
// elements; the rewriter never scans text under <a>, <code>, or
// <pre>, and never reprocesses an anchor carrying the marker class.
// Running Rewrite on its own output therefore changes nothing.
package autolink
