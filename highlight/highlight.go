// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package highlight provides syntax highlighting hooks for
// [markdown.Options], backed by chroma.
//
// The output is a sequence of <span> elements whose classes
// are chroma's short token class names (such as "kd" or "s").
// [Highlighter.WriteCSS] writes a matching style sheet.
package highlight

import (
	"context"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	markdown "rsc.io/marked"
)

// A Highlighter highlights code blocks.
type Highlighter struct {
	// Style names the chroma style used by WriteCSS.
	// The empty string means "github".
	Style string

	// Guess enables guessing the language of code blocks
	// that do not name one.
	Guess bool
}

// lexer returns the lexer for lang, or nil.
func (h *Highlighter) lexer(code, lang string) chroma.Lexer {
	var l chroma.Lexer
	if lang != "" {
		l = lexers.Get(lang)
	} else if h.Guess {
		l = lexers.Analyse(code)
	}
	if l == nil {
		return nil
	}
	return chroma.Coalesce(l)
}

// Highlight returns code highlighted as HTML,
// or the empty string if lang is unknown or highlighting fails.
// It has the signature of [markdown.Options.Highlight].
func (h *Highlighter) Highlight(code, lang string) string {
	out, err := h.HighlightContext(context.Background(), code, lang)
	if err != nil {
		return ""
	}
	return out
}

// HighlightContext is like Highlight but reports errors
// and gives up when ctx is done.
// It has the type [markdown.HighlightFunc].
func (h *Highlighter) HighlightContext(ctx context.Context, code, lang string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	l := h.lexer(code, lang)
	if l == nil {
		return "", nil
	}
	it, err := l.Tokenise(nil, code)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for t := it(); t != chroma.EOF; t = it() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		class := chroma.StandardTypes[t.Type]
		if class == "" {
			b.WriteString(markdown.Escape(t.Value, true))
			continue
		}
		b.WriteString(`<span class="`)
		b.WriteString(class)
		b.WriteString(`">`)
		b.WriteString(markdown.Escape(t.Value, true))
		b.WriteString("</span>")
	}
	return b.String(), nil
}

// WriteCSS writes the style sheet for the classes
// used by Highlight to w.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	name := h.Style
	if name == "" {
		name = "github"
	}
	return html.New(html.WithClasses(true)).WriteCSS(w, styles.Get(name))
}

// Options returns a copy of opts, or of the default options if opts is nil,
// with h installed as both the synchronous and the asynchronous highlight hook.
func (h *Highlighter) Options(opts *markdown.Options) *markdown.Options {
	if opts == nil {
		opts = markdown.DefaultOptions()
	}
	o := *opts
	o.Highlight = h.Highlight
	o.AsyncHighlight = h.HighlightContext
	return &o
}
