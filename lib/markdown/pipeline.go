// Copyright 2026 The Forgelink Authors
// SPDX-License-Identifier: Apache-2.0

package markdown

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/forgelink/forgelink/lib/autolink"
	"github.com/forgelink/forgelink/lib/refcache"
	"github.com/forgelink/forgelink/lib/reference"
)

// markdownInstance is initialized once and reused. The goldmark
// configuration never changes and the Markdown value is safe to
// share — parsing creates per-call state internally.
var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func getMarkdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.DefinitionList,
			),
		)
	})
	return markdownInstance
}

// Pipeline renders documents for one project context. Build one per
// ambient project; the per-request state (the resolution cache) is
// created inside each call, never stored on the Pipeline.
type Pipeline struct {
	// Project is the ambient project documents are rendered in. Nil
	// disables reference rewriting entirely (the autolink pass is a
	// no-op without an ambient project).
	Project reference.Project

	// Kinds are the reference grammars to recognize.
	Kinds []*reference.Kind

	// HighlightStyle is the chroma style name for fenced code
	// blocks. Empty means "github". An unknown name falls back to
	// chroma's default style.
	HighlightStyle string

	// Logger receives debug notes. Nil discards them.
	Logger *slog.Logger
}

// Render converts GFM markdown to HTML and rewrites references in
// the result.
func (p *Pipeline) Render(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := getMarkdown().Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return p.RewriteHTML(buf.Bytes())
}

// RewriteHTML runs the reference rewriter and the code highlighter
// over an already-rendered HTML fragment.
func (p *Pipeline) RewriteHTML(source []byte) ([]byte, error) {
	container := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(bytes.NewReader(source), container)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	for _, node := range nodes {
		container.AppendChild(node)
	}

	rctx := &autolink.Context{
		Project: p.Project,
		Cache:   refcache.New(),
		Kinds:   p.Kinds,
		Logger:  p.Logger,
	}
	if err := autolink.Rewrite(container, rctx); err != nil {
		return nil, err
	}

	p.highlightCodeBlocks(container)

	var out strings.Builder
	for child := container.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&out, child); err != nil {
			return nil, fmt.Errorf("serializing html: %w", err)
		}
	}
	return []byte(out.String()), nil
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p.Logger
}
