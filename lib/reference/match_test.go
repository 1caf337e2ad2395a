// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

package reference

import (
	"regexp"
	"testing"
)

// issuePattern mirrors the short-form issue grammar the forge store
// builds: optional project qualifier, "#", decimal id, optional
// note anchor.
var issuePattern = regexp.MustCompile(
	`(?P<project>[\w][\w.-]*(?:/[\w][\w.-]*)+)?#(?P<id>\d+)(?P<anchor>#note_\d+)?`)

var linkPattern = regexp.MustCompile(
	`(?P<url>https://forge\.example\.com/(?P<project>[\w][\w.-]*(?:/[\w][\w.-]*)+)/-/issues/(?P<id>\d+)(?P<anchor>#note_\d+)?)`)

func TestFindMatchesNone(t *testing.T) {
	if got := FindMatches("no references here", issuePattern); got != nil {
		t.Errorf("expected nil for text without references, got %v", got)
	}
	if got := FindMatches("see #45", nil); got != nil {
		t.Errorf("expected nil for nil pattern, got %v", got)
	}
}

func TestFindMatchesSingle(t *testing.T) {
	matches := FindMatches("see #45 for details", issuePattern)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	m := matches[0]
	if m.Text != "#45" {
		t.Errorf("Text = %q, want %q", m.Text, "#45")
	}
	if m.ID != "45" {
		t.Errorf("ID = %q, want %q", m.ID, "45")
	}
	if m.ProjectToken != "" {
		t.Errorf("ProjectToken = %q, want empty", m.ProjectToken)
	}
	if m.Start != 4 || m.End != 7 {
		t.Errorf("span = [%d,%d), want [4,7)", m.Start, m.End)
	}
}

func TestFindMatchesMultipleInOrder(t *testing.T) {
	matches := FindMatches("#1 then #2 then #3", issuePattern)
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	for i, want := range []string{"1", "2", "3"} {
		if matches[i].ID != want {
			t.Errorf("match %d: ID = %q, want %q", i, matches[i].ID, want)
		}
	}
	// Left-to-right, non-overlapping spans.
	for i := 1; i < len(matches); i++ {
		if matches[i].Start < matches[i-1].End {
			t.Errorf("match %d overlaps match %d", i, i-1)
		}
	}
}

func TestFindMatchesProjectQualifier(t *testing.T) {
	matches := FindMatches("fixed in gitlab-org/gitlab#7", issuePattern)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].ProjectToken != "gitlab-org/gitlab" {
		t.Errorf("ProjectToken = %q, want %q", matches[0].ProjectToken, "gitlab-org/gitlab")
	}
	if matches[0].Text != "gitlab-org/gitlab#7" {
		t.Errorf("Text = %q, want full qualified reference", matches[0].Text)
	}
}

func TestFindMatchesAnchor(t *testing.T) {
	matches := FindMatches("#10#note_7", issuePattern)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].ID != "10" {
		t.Errorf("ID = %q, want %q", matches[0].ID, "10")
	}
	if matches[0].Anchor != "#note_7" {
		t.Errorf("Anchor = %q, want %q", matches[0].Anchor, "#note_7")
	}
}

func TestFindMatchesURLCapture(t *testing.T) {
	text := "https://forge.example.com/ns/proj/-/issues/5#note_3"
	matches := FindMatches(text, linkPattern)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	m := matches[0]
	if m.URL != text {
		t.Errorf("URL = %q, want full match %q", m.URL, text)
	}
	if m.ID != "5" || m.ProjectToken != "ns/proj" || m.Anchor != "#note_3" {
		t.Errorf("unexpected captures: %+v", m)
	}
}

func TestMatchesFully(t *testing.T) {
	if !MatchesFully("#45", issuePattern) {
		t.Error("expected exact short reference to match fully")
	}
	if MatchesFully("see #45", issuePattern) {
		t.Error("leading text must not match fully")
	}
	if MatchesFully("#45 trailing", issuePattern) {
		t.Error("trailing text must not match fully")
	}
	if MatchesFully("#45", nil) {
		t.Error("nil pattern must never match")
	}
}

func TestMatchesPrefix(t *testing.T) {
	m := MatchesPrefix("https://forge.example.com/ns/proj/-/issues/5 and more", linkPattern)
	if m == nil {
		t.Fatal("expected prefix match")
	}
	if m.ID != "5" {
		t.Errorf("ID = %q, want %q", m.ID, "5")
	}
	if MatchesPrefix("prefix https://forge.example.com/ns/proj/-/issues/5", linkPattern) != nil {
		t.Error("match not at position zero must not count as prefix")
	}
}
