// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

package autolink

import (
	"io"
	"log/slog"

	"github.com/forgelink/forgelink/lib/refcache"
	"github.com/forgelink/forgelink/lib/reference"
)

// Context carries the per-request state for one document rewrite.
// Construct a fresh Context (and a fresh Cache) per document;
// Contexts are never shared across concurrent rewrites.
type Context struct {
	// Project is the ambient project: the project context of the
	// document being rendered. References without a foreign-project
	// token resolve against it. A nil Project makes the whole
	// rewrite a no-op.
	Project reference.Project

	// Cache memoizes project, object, and URL lookups for this
	// request. Nil is valid and disables memoization — every lookup
	// then hits the collaborator directly.
	Cache *refcache.Cache

	// Kinds are the object types to recognize, tried in order.
	Kinds []*reference.Kind

	// Logger receives debug-level notes about unresolved references.
	// Nil discards them.
	Logger *slog.Logger
}

func (c *Context) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}
