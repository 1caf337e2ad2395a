// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

package autolink

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/forgelink/forgelink/lib/reference"
)

// Rewrite walks the document tree once, in document order, and
// substitutes recognized references. Text nodes get their matched
// spans replaced by rendered links; eligible anchor elements are
// re-rendered according to the href/text priority ladder (see
// rewriteLink). The tree is mutated in place.
//
// With no ambient project in the context, Rewrite returns immediately
// and the document is untouched.
func Rewrite(doc *html.Node, rctx *Context) error {
	if rctx.Project == nil {
		return nil
	}

	// Collect first, then mutate: nodes produced by a substitution
	// must not be scanned again within this pass.
	var texts, links []*html.Node
	collect(doc, false, &texts, &links)

	for _, node := range texts {
		if err := rewriteText(node, rctx); err != nil {
			return err
		}
	}
	for _, node := range links {
		if err := rewriteLink(node, rctx); err != nil {
			return err
		}
	}
	return nil
}

// collect gathers, in document order, the text nodes eligible for
// short-form scanning and the anchor elements eligible for link
// rewriting. Text under <a>, <code>, <pre>, <script>, and <style> is
// never scanned; that exclusion is what keeps the pass idempotent,
// since rendered reference text always lives inside an <a>.
func collect(n *html.Node, ignoreText bool, texts, links *[]*html.Node) {
	switch n.Type {
	case html.TextNode:
		if !ignoreText {
			*texts = append(*texts, n)
		}
	case html.ElementNode:
		switch n.DataAtom {
		case atom.A:
			if eligibleLink(n) {
				*links = append(*links, n)
			}
			ignoreText = true
		case atom.Code, atom.Pre, atom.Script, atom.Style:
			ignoreText = true
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collect(child, ignoreText, texts, links)
	}
}

// eligibleLink reports whether an anchor element is a candidate for
// reference rewriting: it has an href, it is not an already-rendered
// reference (marker class), and it does not wrap an image.
func eligibleLink(n *html.Node) bool {
	if _, ok := attrValue(n, "href"); !ok {
		return false
	}
	if hasMarkerClass(n) {
		return false
	}
	return !containsImage(n)
}

// rewriteText substitutes every resolvable short-form match in one
// text node. Unmatched spans — and matched spans that fail to resolve
// — are preserved byte for byte. Kinds are applied in order; spans
// already claimed by an earlier kind's rendered link are not
// rescanned.
func rewriteText(node *html.Node, rctx *Context) error {
	// A segment is either raw text (node == nil) or a rendered link.
	type segment struct {
		text string
		node *html.Node
	}
	segments := []segment{{text: node.Data}}
	substituted := false

	for _, kind := range rctx.Kinds {
		if kind.ShortPattern == nil {
			continue
		}
		next := make([]segment, 0, len(segments))
		for _, seg := range segments {
			if seg.node != nil {
				next = append(next, seg)
				continue
			}
			matches := reference.FindMatches(seg.text, kind.ShortPattern)
			pos := 0
			for _, m := range matches {
				object, project, err := resolve(kind, m, rctx)
				if err != nil {
					return err
				}
				if object == nil {
					continue // unresolvable: leave the span as text
				}
				if m.Start > pos {
					next = append(next, segment{text: seg.text[pos:m.Start]})
				}
				link := render(kind, object, project, m, "", rctx)
				next = append(next, segment{node: link.Node()})
				pos = m.End
				substituted = true
			}
			if pos < len(seg.text) {
				next = append(next, segment{text: seg.text[pos:]})
			}
		}
		segments = next
	}

	if !substituted {
		return nil
	}

	parent := node.Parent
	for _, seg := range segments {
		replacement := seg.node
		if replacement == nil {
			if seg.text == "" {
				continue
			}
			replacement = &html.Node{Type: html.TextNode, Data: seg.text}
		}
		parent.InsertBefore(replacement, node)
	}
	parent.RemoveChild(node)
	return nil
}

// rewriteLink applies the href/text priority ladder to one anchor
// element. Per kind, in order, first applicable branch wins:
//
//  1. href is exactly a short-form reference: re-render, keeping the
//     element's visible text (a user-authored shortcut destination).
//  2. the kind has no link-form pattern: nothing else can apply.
//  3. visible text equals href and the text starts with a link-form
//     reference: a raw pasted URL — re-render entirely, text included,
//     so the display becomes the friendly reference text.
//  4. href is exactly a link-form reference: re-render, keeping the
//     visible text (never clobber user-authored link text).
//  5. otherwise leave the element alone and try the next kind.
//
// The order is deliberate: an exact short-form href is an unambiguous
// shortcut and beats the URL grammar; the "text equals href" check
// must run before the href-only branch or pasted URLs would keep
// their ugly URL text.
func rewriteLink(node *html.Node, rctx *Context) error {
	href, _ := attrValue(node, "href")
	text := innerText(node)

	for _, kind := range rctx.Kinds {
		if reference.MatchesFully(href, kind.ShortPattern) {
			if matches := reference.FindMatches(href, kind.ShortPattern); len(matches) > 0 {
				return replaceLink(node, kind, matches[0], text, rctx)
			}
		}
		if kind.LinkPattern == nil {
			continue
		}
		if href == text {
			if m := reference.MatchesPrefix(text, kind.LinkPattern); m != nil {
				return replaceLink(node, kind, *m, "", rctx)
			}
		}
		if reference.MatchesFully(href, kind.LinkPattern) {
			if matches := reference.FindMatches(href, kind.LinkPattern); len(matches) > 0 {
				return replaceLink(node, kind, matches[0], text, rctx)
			}
		}
	}
	return nil
}

// replaceLink resolves a link-ladder match and swaps the anchor for
// the rendered element. An unresolvable reference leaves the original
// anchor untouched.
func replaceLink(node *html.Node, kind *reference.Kind, m reference.Match, overrideText string, rctx *Context) error {
	object, project, err := resolve(kind, m, rctx)
	if err != nil {
		return err
	}
	if object == nil {
		return nil
	}
	link := render(kind, object, project, m, overrideText, rctx)
	rendered := link.Node()
	node.Parent.InsertBefore(rendered, node)
	node.Parent.RemoveChild(node)
	return nil
}

// attrValue returns the value of the named attribute.
func attrValue(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// hasMarkerClass reports whether the element carries the "gfm"
// rendered-reference marker class.
func hasMarkerClass(n *html.Node) bool {
	class, ok := attrValue(n, "class")
	if !ok {
		return false
	}
	for _, name := range strings.Fields(class) {
		if name == "gfm" {
			return true
		}
	}
	return false
}

// containsImage reports whether any descendant is an <img> element.
func containsImage(n *html.Node) bool {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.DataAtom == atom.Img {
			return true
		}
		if containsImage(child) {
			return true
		}
	}
	return false
}

// innerText concatenates all descendant text nodes in document order.
func innerText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}
