// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"context"
	"log/slog"
)

// A HighlightFunc highlights a code block asynchronously.
// It returns the highlighted HTML, or the empty string to leave code unchanged.
// Calls for different code blocks of one document run concurrently.
type HighlightFunc func(ctx context.Context, code, lang string) (string, error)

// Options configures lexing, parsing, and rendering.
// The zero Options uses the Normal dialect with every extension off;
// DefaultOptions returns the usual configuration.
type Options struct {
	Dialect Dialect // grammar to use; "" means Normal

	HeaderIDs    bool   // emit id attributes on headings
	HeaderPrefix string // prefix for heading ids
	LangPrefix   string // class prefix for fenced code languages
	XHTML        bool   // self-close void tags (<br/>, <hr/>, <img/>)
	SmartLists   bool   // a change of bullet character starts a new list
	Smartypants  bool   // typographic quotes, dashes, and ellipses
	BaseURL      string // base for resolving relative link targets

	// Sanitize escapes raw HTML, or passes it through Sanitizer when set.
	// It also refuses javascript:, vbscript:, and data: link targets.
	Sanitize  bool
	Sanitizer func(html string) string

	// Silent turns internal errors into a diagnostic HTML fragment
	// and makes the parser skip unknown tokens.
	Silent bool

	// Highlight is called synchronously by the HTML renderer for each code block.
	// It returns the highlighted HTML, or "" to leave the code unchanged.
	Highlight func(code, lang string) string

	// AsyncHighlight is fanned out over all code blocks by ConvertContext.
	AsyncHighlight HighlightFunc

	// Renderer renders the document. If nil, an HTMLRenderer is used.
	Renderer Renderer

	// MaxNesting bounds the nesting of blockquotes and lists.
	// Zero means DefaultMaxNesting.
	MaxNesting int

	Logger *slog.Logger
}

// DefaultMaxNesting is the nesting limit used when Options.MaxNesting is zero.
const DefaultMaxNesting = 64

// DefaultOptions returns the default configuration:
// GitHub-flavored Markdown with heading ids and "language-" code classes.
func DefaultOptions() *Options {
	return &Options{
		Dialect:    GFM,
		HeaderIDs:  true,
		LangPrefix: "language-",
	}
}

// snapshot returns a copy of opts with defaults filled in.
// A nil opts means DefaultOptions.
func snapshot(opts *Options) Options {
	if opts == nil {
		opts = DefaultOptions()
	}
	o := *opts
	if o.Dialect == "" {
		o.Dialect = Normal
	}
	if o.MaxNesting <= 0 {
		o.MaxNesting = DefaultMaxNesting
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}
