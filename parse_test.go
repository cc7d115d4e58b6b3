// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietOptions() *Options {
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return opts
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		toks []Token
		err  error
	}{
		{"unknown", []Token{{Kind: TokenKind(99)}}, ErrUnknownToken},
		{"stray-end", []Token{{Kind: BlockquoteEndToken}}, ErrUnbalanced},
		{"missing-end", []Token{{Kind: BlockquoteStartToken}, {Kind: ParagraphToken, Text: "a"}}, ErrUnbalanced},
		{"missing-item-end", []Token{{Kind: ListStartToken}, {Kind: ListItemStartToken}, {Kind: ListEndToken}}, ErrUnbalanced},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(&Document{Tokens: tt.toks}, nil)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParseSilentSkipsUnknown(t *testing.T) {
	opts := quietOptions()
	opts.Silent = true
	doc := &Document{Tokens: []Token{
		{Kind: ParagraphToken, Text: "a"},
		{Kind: TokenKind(99)},
		{Kind: ParagraphToken, Text: "b"},
	}}
	out, err := Parse(doc, opts)
	require.NoError(t, err)
	assert.Equal(t, "<p>a</p>\n<p>b</p>\n", out)
}

func TestParseNesting(t *testing.T) {
	doc := &Document{Tokens: []Token{
		{Kind: BlockquoteStartToken},
		{Kind: BlockquoteStartToken},
		{Kind: BlockquoteStartToken},
		{Kind: ParagraphToken, Text: "a"},
		{Kind: BlockquoteEndToken},
		{Kind: BlockquoteEndToken},
		{Kind: BlockquoteEndToken},
	}}
	_, err := Parse(doc, &Options{MaxNesting: 2})
	assert.ErrorIs(t, err, ErrNestingTooDeep)

	out, err := Parse(doc, &Options{MaxNesting: 3})
	require.NoError(t, err)
	assert.Equal(t, "<blockquote>\n<blockquote>\n<blockquote>\n<p>a</p>\n</blockquote>\n</blockquote>\n</blockquote>\n", out)
}

func TestParseTextRun(t *testing.T) {
	doc := &Document{Tokens: []Token{
		{Kind: TextToken, Text: "a"},
		{Kind: TextToken, Text: "b"},
		{Kind: HRToken},
	}}
	out, err := Parse(doc, nil)
	require.NoError(t, err)
	assert.Equal(t, "<p>a\nb</p>\n<hr>\n", out)
}

func TestParseDoesNotModify(t *testing.T) {
	const src = "- [x] a\n\n- b\n"
	const want = "<ul>\n" +
		`<li><p><input checked="" disabled="" type="checkbox"> a</p>` + "\n</li>\n" +
		"<li><p>b</p>\n</li>\n" +
		"</ul>\n"

	doc, err := Lex(src, nil)
	require.NoError(t, err)
	before := doc.Dump()
	for i := 0; i < 2; i++ {
		out, err := Parse(doc, nil)
		require.NoError(t, err)
		assert.Equal(t, want, out)
		assert.Equal(t, before, doc.Dump())
	}
}

func TestTaskItemSpacing(t *testing.T) {
	tight, err := Convert("- [x] a\n- b\n", nil)
	require.NoError(t, err)
	assert.Contains(t, tight, `<li><input checked="" disabled="" type="checkbox"> a</li>`)

	loose, err := Convert("- [x] a\n\n- b\n", nil)
	require.NoError(t, err)
	assert.Contains(t, loose, `<li><p><input checked="" disabled="" type="checkbox"> a</p>`)
	assert.NotContains(t, loose, `type="checkbox">  a`)
}

func TestHeadingIDs(t *testing.T) {
	for in, want := range map[string]string{
		"# Hello *World*": `<h1 id="hello-world">Hello <em>World</em></h1>` + "\n",
		"# A &amp; B":     `<h1 id="a--b">A &amp; B</h1>` + "\n",
		"## `x` [y](/z)":  `<h2 id="x-y"><code>x</code> <a href="/z">y</a></h2>` + "\n",
	} {
		out, err := Convert(in, nil)
		require.NoError(t, err)
		assert.Equal(t, want, out, "Convert(%q)", in)
	}
}

// bracketHeadings renders headings as [level id text]
// and everything else as HTML.
type bracketHeadings struct {
	*HTMLRenderer
}

func (bracketHeadings) Heading(text string, level int, id string) string {
	return fmt.Sprintf("[%d %s %s]\n", level, id, text)
}

func TestCustomRenderer(t *testing.T) {
	opts := DefaultOptions()
	opts.Renderer = bracketHeadings{NewHTMLRenderer(nil)}
	out, err := Convert("# hi *there*\n\npara", opts)
	require.NoError(t, err)
	assert.Equal(t, "[1 hi-there hi <em>there</em>]\n<p>para</p>\n", out)
}

func TestTextRenderer(t *testing.T) {
	opts := DefaultOptions()
	opts.Renderer = TextRenderer{}
	out, err := Convert("# title\n\npara", opts)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}
