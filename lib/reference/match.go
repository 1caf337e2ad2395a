// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

package reference

import "regexp"

// Match is the result of one successful pattern application. Matches
// are ephemeral: produced by [FindMatches], consumed by the resolver
// and renderer within the same substitution, never stored.
type Match struct {
	// Text is the full matched text, exactly as it appeared in the
	// scanned string. A failed resolution puts this back verbatim.
	Text string

	// ID is the captured object identifier from the "id" group:
	// decimal digits for issues, merge requests, and snippets, a hex
	// prefix for commits. Empty only if the pattern defines no "id"
	// group, in which case the match is unusable and skipped.
	ID string

	// ProjectToken is the foreign-project token from the "project"
	// group. Empty means the reference targets the ambient project.
	ProjectToken string

	// Anchor is the fragment suffix from the "anchor" group,
	// including the leading "#" (e.g. "#note_7"). Empty if the
	// pattern defines no anchor or it did not participate.
	Anchor string

	// URL is the full matched URL from the "url" group of a
	// link-form pattern. When present the renderer uses it verbatim
	// as the href, preserving any embedded fragment.
	URL string

	// Start and End are the byte offsets of the match within the
	// scanned string, [Start, End).
	Start int
	End   int
}

// FindMatches scans text left to right with the given compiled
// pattern and returns one Match per non-overlapping occurrence, in
// order. Returns nil when the pattern is nil or nothing matches.
//
// Group extraction follows the conventions documented in the package
// comment: "id", "project", "anchor", and "url" groups populate the
// corresponding Match fields; a group that did not participate in the
// match leaves its field empty.
func FindMatches(text string, pattern *regexp.Regexp) []Match {
	if pattern == nil {
		return nil
	}
	indexes := pattern.FindAllStringSubmatchIndex(text, -1)
	if indexes == nil {
		return nil
	}

	names := pattern.SubexpNames()
	matches := make([]Match, 0, len(indexes))
	for _, loc := range indexes {
		m := Match{
			Text:  text[loc[0]:loc[1]],
			Start: loc[0],
			End:   loc[1],
		}
		for group, name := range names {
			if name == "" {
				continue
			}
			start, end := loc[2*group], loc[2*group+1]
			if start < 0 {
				continue // group did not participate
			}
			value := text[start:end]
			switch name {
			case "id":
				m.ID = value
			case "project":
				m.ProjectToken = value
			case "anchor":
				m.Anchor = value
			case "url":
				m.URL = value
			}
		}
		if m.ID == "" {
			continue
		}
		matches = append(matches, m)
	}
	if len(matches) == 0 {
		return nil
	}
	return matches
}

// MatchesFully reports whether pattern matches text end to end, with
// no leading or trailing remainder. Used by the rewriter's href
// branches, which require exact matches.
func MatchesFully(text string, pattern *regexp.Regexp) bool {
	if pattern == nil {
		return false
	}
	loc := pattern.FindStringIndex(text)
	return loc != nil && loc[0] == 0 && loc[1] == len(text)
}

// MatchesPrefix returns the match anchored at the start of text, or
// nil if the pattern is nil or does not match at position zero. The
// match may cover less than the whole text.
func MatchesPrefix(text string, pattern *regexp.Regexp) *Match {
	matches := FindMatches(text, pattern)
	if len(matches) == 0 || matches[0].Start != 0 {
		return nil
	}
	return &matches[0]
}
