// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

// Package markdown is the document pipeline: it renders GFM markdown
// to HTML with goldmark, parses the result into an HTML tree, runs
// the reference rewriter (lib/autolink) over it with a fresh
// request-scoped cache, highlights fenced code blocks with chroma,
// and serializes the tree back to HTML bytes.
//
// Each [Pipeline.Render] or [Pipeline.RewriteHTML] call is one
// request: it gets its own resolution cache, created at the start of
// the call and discarded with it. Concurrent calls on the same
// Pipeline are safe as long as the underlying store is not mutated
// while documents render.
package markdown
