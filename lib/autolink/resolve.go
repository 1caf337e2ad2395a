// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

package autolink

import (
	"github.com/forgelink/forgelink/lib/reference"
)

// resolve turns a match into a concrete object and the project it was
// resolved in. A (nil, nil, nil) return means the reference did not
// resolve — unknown project token or unknown object id — and the
// caller must leave the matched text unmodified. Only store failures
// produce an error.
func resolve(kind *reference.Kind, m reference.Match, rctx *Context) (reference.Object, reference.Project, error) {
	project := rctx.Project
	if m.ProjectToken != "" {
		resolved, err := rctx.Cache.ProjectFor(kind.Name, m.ProjectToken, kind.LookupProjectByToken)
		if err != nil {
			return nil, nil, err
		}
		project = resolved
	}
	if project == nil {
		rctx.logger().Debug("project token did not resolve",
			"kind", kind.Name, "token", m.ProjectToken)
		return nil, nil, nil
	}

	object, err := rctx.Cache.ObjectFor(kind.Name, project.ProjectID(), m.ID, func() (reference.Object, error) {
		return kind.LookupObject(project, m.ID)
	})
	if err != nil {
		return nil, nil, err
	}
	if object == nil {
		rctx.logger().Debug("reference did not resolve",
			"kind", kind.Name, "project", project.ProjectID(), "id", m.ID)
		return nil, nil, nil
	}
	return object, project, nil
}
