// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

package refcache

import (
	"github.com/forgelink/forgelink/lib/reference"
)

// projectEntry memoizes one LookupProjectByToken outcome. A stored
// entry with a nil Project records "not found".
type projectEntry struct {
	project reference.Project
}

// objectEntry memoizes one LookupObject outcome. A stored entry with
// a nil Object records "not found".
type objectEntry struct {
	object reference.Object
}

// Cache memoizes the three lookups a document rewrite performs:
// project-from-token, object-from-id, and url-from-object. See the
// package comment for lifetime and concurrency rules.
type Cache struct {
	// kind name → token → entry
	projects map[string]map[string]projectEntry

	// kind name → project id → object id → entry
	objects map[string]map[string]map[string]objectEntry

	// kind name → project id → object id → url
	urls map[string]map[string]map[string]string
}

// New returns an empty cache for one document-rewriting request.
func New() *Cache {
	return &Cache{}
}

// ProjectFor returns the project for a foreign-project token,
// invoking lookup at most once per (kind, token) for the cache's
// lifetime. A lookup error is propagated and not cached, so a
// transient store failure does not poison the rest of the request.
//
// The absent-token case (ambient project) is the caller's job: it
// never reaches the cache or the collaborator.
func (c *Cache) ProjectFor(kind, token string, lookup func(string) (reference.Project, error)) (reference.Project, error) {
	if c == nil {
		return lookup(token)
	}
	if byToken, ok := c.projects[kind]; ok {
		if entry, ok := byToken[token]; ok {
			return entry.project, nil
		}
	}
	project, err := lookup(token)
	if err != nil {
		return nil, err
	}
	if c.projects == nil {
		c.projects = make(map[string]map[string]projectEntry)
	}
	if c.projects[kind] == nil {
		c.projects[kind] = make(map[string]projectEntry)
	}
	c.projects[kind][token] = projectEntry{project: project}
	return project, nil
}

// ObjectFor returns the object with the given id in the given
// project, invoking lookup at most once per (kind, projectID, id)
// for the cache's lifetime. "Not found" (nil, nil) is memoized like
// any other outcome; errors are propagated and not cached.
func (c *Cache) ObjectFor(kind, projectID, id string, lookup func() (reference.Object, error)) (reference.Object, error) {
	if c == nil {
		return lookup()
	}
	if byProject, ok := c.objects[kind]; ok {
		if byID, ok := byProject[projectID]; ok {
			if entry, ok := byID[id]; ok {
				return entry.object, nil
			}
		}
	}
	object, err := lookup()
	if err != nil {
		return nil, err
	}
	if c.objects == nil {
		c.objects = make(map[string]map[string]map[string]objectEntry)
	}
	if c.objects[kind] == nil {
		c.objects[kind] = make(map[string]map[string]objectEntry)
	}
	if c.objects[kind][projectID] == nil {
		c.objects[kind][projectID] = make(map[string]objectEntry)
	}
	c.objects[kind][projectID][id] = objectEntry{object: object}
	return object, nil
}

// URLFor returns the canonical URL for an object in a contextual
// project, invoking build at most once per (kind, projectID,
// objectID) for the cache's lifetime. URL construction cannot fail,
// so there is no error path.
func (c *Cache) URLFor(kind, projectID, objectID string, build func() string) string {
	if c == nil {
		return build()
	}
	if byProject, ok := c.urls[kind]; ok {
		if byObject, ok := byProject[projectID]; ok {
			if url, ok := byObject[objectID]; ok {
				return url
			}
		}
	}
	url := build()
	if c.urls == nil {
		c.urls = make(map[string]map[string]map[string]string)
	}
	if c.urls[kind] == nil {
		c.urls[kind] = make(map[string]map[string]string)
	}
	if c.urls[kind][projectID] == nil {
		c.urls[kind][projectID] = make(map[string]string)
	}
	c.urls[kind][projectID][objectID] = url
	return url
}
