// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

package markdown

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// defaultHighlightStyle is the chroma style used when the pipeline
// does not name one.
const defaultHighlightStyle = "github"

// highlightCodeBlocks replaces <pre><code class="language-X"> blocks
// with chroma-highlighted markup. Blocks without a language class are
// left alone, as is any block that fails to highlight — plain code is
// better than a dropped block.
func (p *Pipeline) highlightCodeBlocks(root *html.Node) {
	var blocks []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Pre {
			if code := fencedCode(n); code != nil {
				blocks = append(blocks, n)
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	for _, pre := range blocks {
		p.highlightBlock(pre)
	}
}

// fencedCode returns the <code class="language-X"> child of a <pre>,
// or nil if the block carries no language.
func fencedCode(pre *html.Node) *html.Node {
	for child := pre.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode || child.DataAtom != atom.Code {
			continue
		}
		for _, attr := range child.Attr {
			if attr.Key == "class" && strings.HasPrefix(attr.Val, "language-") {
				return child
			}
		}
	}
	return nil
}

func (p *Pipeline) highlightBlock(pre *html.Node) {
	code := fencedCode(pre)
	lang := ""
	for _, attr := range code.Attr {
		if attr.Key == "class" {
			lang = strings.TrimPrefix(attr.Val, "language-")
		}
	}

	var source strings.Builder
	var collectText func(*html.Node)
	collectText = func(n *html.Node) {
		if n.Type == html.TextNode {
			source.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			collectText(child)
		}
	}
	collectText(code)

	style := p.HighlightStyle
	if style == "" {
		style = defaultHighlightStyle
	}

	var highlighted bytes.Buffer
	if err := quick.Highlight(&highlighted, source.String(), lang, "html", style); err != nil {
		p.logger().Debug("highlighting failed", "language", lang, "error", err)
		return
	}

	container := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(bytes.NewReader(highlighted.Bytes()), container)
	if err != nil {
		p.logger().Debug("parsing highlighted block failed", "language", lang, "error", err)
		return
	}

	parent := pre.Parent
	for _, node := range nodes {
		parent.InsertBefore(node, pre)
	}
	parent.RemoveChild(pre)
}
