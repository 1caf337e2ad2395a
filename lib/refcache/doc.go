// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

// Package refcache provides the request-scoped resolution cache that
// deduplicates project, object, and URL lookups across repeated
// references to the same target within one document.
//
// A [Cache] is created per document-rewriting request and discarded
// afterward; it is never shared across concurrent requests. Entries
// never expire within a request: the first lookup for a key freezes
// the result — including a "not found" result — so mutations of the
// underlying store mid-request are invisible to the document being
// processed, and repeated failed lookups never re-invoke the store.
//
// A nil *Cache is valid and means "no memoization": every call
// invokes the collaborator directly. Callers outside any request
// scope use this transparently instead of constructing a throwaway
// cache.
//
// Tables are built lazily per kind and, within a kind, per project,
// so memory is bounded by the objects a document actually touches.
// All access is expected from the single rewriting goroutine; the
// cache performs no internal locking.
package refcache
