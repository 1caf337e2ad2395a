// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

package autolink

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/forgelink/forgelink/lib/reference"
)

// noteFragmentPattern recognizes anchor captures that point at a
// discussion note ("#note_7"). Such references get a "(comment N)"
// suffix on their visible text.
var noteFragmentPattern = regexp.MustCompile(`^#note_(\d+)$`)

// RenderedLink is the final markup for one substituted reference. The
// data attributes record enough state for a later pass to re-identify
// the reference: the original text, the resolved project, and the
// object id under a kind-specific attribute name.
type RenderedLink struct {
	Href    string
	Text    string
	Title   string
	Classes []string

	// Data holds the data-* attributes in emission order.
	Data []DataAttribute
}

// DataAttribute is one data-* attribute of a rendered link.
type DataAttribute struct {
	Name  string // full attribute name, e.g. "data-merge-request"
	Value string
}

// render builds the replacement markup for a resolved reference.
// overrideText, when non-empty, is the visible text of a pre-existing
// link being rewritten; it wins over the canonical display text and
// suppresses the note-anchor suffix (user-authored text is preserved
// as-is).
func render(kind *reference.Kind, object reference.Object, project reference.Project, m reference.Match, overrideText string, rctx *Context) RenderedLink {
	href := m.URL
	if href == "" {
		href = rctx.Cache.URLFor(kind.Name, project.ProjectID(), object.ObjectID(), func() string {
			return kind.URLFor(object, project)
		})
	}

	text := overrideText
	original := overrideText
	if text == "" {
		text = kind.DisplayText(object, rctx.Project)
		if note := noteFragmentPattern.FindStringSubmatch(m.Anchor); note != nil {
			text += " (comment " + note[1] + ")"
		}
		original = m.Text
	}

	return RenderedLink{
		Href:    href,
		Text:    text,
		Title:   kind.DisplayName + ": " + object.ObjectTitle(),
		Classes: []string{"gfm", "gfm-" + kind.Name},
		Data: []DataAttribute{
			{Name: "data-original", Value: original},
			{Name: "data-project", Value: project.ProjectID()},
			{Name: "data-" + strings.ReplaceAll(kind.Name, "_", "-"), Value: object.ObjectID()},
		},
	}
}

// Node materializes the rendered link as an <a> element. Text and
// attribute values are plain strings here; html.Render escapes them
// at serialization, so no field needs pre-escaping.
func (l RenderedLink) Node() *html.Node {
	a := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.A,
		Data:     "a",
		Attr: []html.Attribute{
			{Key: "href", Val: l.Href},
			{Key: "title", Val: l.Title},
			{Key: "class", Val: strings.Join(l.Classes, " ")},
		},
	}
	for _, attr := range l.Data {
		a.Attr = append(a.Attr, html.Attribute{Key: attr.Name, Val: attr.Value})
	}
	a.AppendChild(&html.Node{Type: html.TextNode, Data: l.Text})
	return a
}
