// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kinds returns the kinds of toks.
func kinds(toks []Token) []TokenKind {
	var out []TokenKind
	for _, t := range toks {
		out = append(out, t.Kind)
	}
	return out
}

func lexTokens(t *testing.T, src string, opts *Options) []Token {
	t.Helper()
	doc, err := Lex(src, opts)
	require.NoError(t, err)
	return doc.Tokens
}

func TestLexNormalizesSource(t *testing.T) {
	toks := lexTokens(t, "a\r\nb\r\n", nil)
	require.Len(t, toks, 1)
	assert.Equal(t, Token{Kind: ParagraphToken, Text: "a\nb"}, toks[0])

	toks = lexTokens(t, "\tcode", nil)
	require.Len(t, toks, 1)
	assert.Equal(t, Token{Kind: CodeToken, Text: "code"}, toks[0])

	toks = lexTokens(t, "a\x00b", nil)
	require.Len(t, toks, 1)
	assert.Equal(t, "a�b", toks[0].Text)
}

func TestLexInvalidUTF8(t *testing.T) {
	for in, want := range map[string]string{
		"\xff":      "<p>\uFFFD</p>\n",
		"a\xffb":    "<p>a\uFFFDb</p>\n",
		"*a\xff*":   "<p><em>a\uFFFD</em></p>\n",
		"> a\xff\n": "<blockquote>\n<p>a\uFFFD</p>\n</blockquote>\n",
	} {
		out, err := Convert(in, nil)
		require.NoError(t, err, "Convert(%q)", in)
		assert.Equal(t, want, out, "Convert(%q)", in)
	}

	// Documents built by hand skip source normalization.
	doc := &Document{Tokens: []Token{{Kind: ParagraphToken, Text: "*a\xff*"}}}
	out, err := Parse(doc, nil)
	require.NoError(t, err)
	assert.Equal(t, "<p><em>a\uFFFD</em></p>\n", out)
}

func TestOrderedListDigits(t *testing.T) {
	opts := DefaultOptions()
	opts.Dialect = Normal

	// Only ASCII digits number a list item.
	out, err := Convert("\u0661. foo\n", opts)
	require.NoError(t, err)
	assert.Equal(t, "<p>\u0661. foo</p>\n", out)

	out, err = Convert("07. foo\n", opts)
	require.NoError(t, err)
	assert.Equal(t, "<ol start=\"7\">\n<li>foo</li>\n</ol>\n", out)
}

func TestReplaceTabs(t *testing.T) {
	assert.Equal(t, "    x", replaceTabs("\tx"))
	assert.Equal(t, "ab  x", replaceTabs("ab\tx"))
	assert.Equal(t, "a\n    b", replaceTabs("a\n\tb"))
}

func TestDefFirstWins(t *testing.T) {
	doc, err := Lex("[a]: /one\n[A]: /two\n", nil)
	require.NoError(t, err)
	assert.Empty(t, doc.Tokens)
	assert.Equal(t, map[string]Link{"a": {Href: "/one"}}, doc.Links)
}

func TestUnclosedFence(t *testing.T) {
	toks := lexTokens(t, "```\ncode\n", nil)
	require.Len(t, toks, 1)
	assert.Equal(t, Token{Kind: ParagraphToken, Text: "```\ncode"}, toks[0])
}

func TestSetextInterrupt(t *testing.T) {
	const src = "a\nb\n===\n"
	toks := lexTokens(t, src, &Options{Dialect: Normal})
	assert.Equal(t, []Token{
		{Kind: ParagraphToken, Text: "a"},
		{Kind: HeadingToken, Depth: 1, Text: "b"},
	}, toks)

	toks = lexTokens(t, src, &Options{Dialect: Pedantic})
	assert.Equal(t, []Token{{Kind: ParagraphToken, Text: "a\nb\n==="}}, toks)
}

func TestLazyBlockquote(t *testing.T) {
	toks := lexTokens(t, "> a\nb\n", nil)
	assert.Equal(t, []Token{
		{Kind: BlockquoteStartToken},
		{Kind: ParagraphToken, Text: "a\nb"},
		{Kind: BlockquoteEndToken},
	}, toks)
}

func TestListEndsAtDef(t *testing.T) {
	doc, err := Lex("- a\n[x]: /u\n", nil)
	require.NoError(t, err)
	assert.Equal(t, []TokenKind{
		ListStartToken,
		ListItemStartToken,
		TextToken,
		ListItemEndToken,
		ListEndToken,
	}, kinds(doc.Tokens))
	assert.Equal(t, Link{Href: "/u"}, doc.Links["x"])
}

func TestIndentedContinuation(t *testing.T) {
	toks := lexTokens(t, "a\n    b", nil)
	assert.Equal(t, []Token{{Kind: ParagraphToken, Text: "a\n    b"}}, toks)

	toks = lexTokens(t, "a\n\n    b", nil)
	assert.Equal(t, []Token{
		{Kind: ParagraphToken, Text: "a"},
		{Kind: SpaceToken},
		{Kind: CodeToken, Text: "b"},
	}, toks)
}

func TestHTMLBlock(t *testing.T) {
	toks := lexTokens(t, "<pre>\nx\n</pre>\n", nil)
	assert.Equal(t, []Token{{Kind: HTMLToken, Text: "<pre>\nx\n</pre>\n", Pre: true}}, toks)

	opts := DefaultOptions()
	opts.Sanitize = true
	toks = lexTokens(t, "<div>\nhi\n</div>\n", opts)
	assert.Equal(t, []Token{{Kind: ParagraphToken, Text: "<div>\nhi\n</div>"}}, toks)
}

func TestBalancedContainers(t *testing.T) {
	for _, src := range []string{
		"> a\n> > b\n> c\n",
		"- a\n  > b\n- c\n",
		"> - a\n>   - b\n",
		"1. x\n\n   > y\n",
	} {
		depth := 0
		for _, tok := range lexTokens(t, src, nil) {
			switch tok.Kind {
			case BlockquoteStartToken, ListStartToken, ListItemStartToken:
				depth++
			case BlockquoteEndToken, ListEndToken, ListItemEndToken:
				depth--
			}
			require.GreaterOrEqual(t, depth, 0, "Lex(%q): end before start", src)
		}
		assert.Equal(t, 0, depth, "Lex(%q): unbalanced", src)
	}
}

func TestLooseList(t *testing.T) {
	toks := lexTokens(t, "- a\n- b\n\n- c\n", nil)
	require.Equal(t, ListStartToken, toks[0].Kind)
	assert.True(t, toks[0].Loose)
	n := 0
	for _, tok := range toks {
		if tok.Kind == ListItemStartToken {
			n++
			assert.True(t, tok.Loose)
		}
	}
	assert.Equal(t, 3, n)
}

func TestTaskListDialect(t *testing.T) {
	toks := lexTokens(t, "- [x] a\n", &Options{Dialect: Normal})
	require.Equal(t, ListItemStartToken, toks[1].Kind)
	assert.False(t, toks[1].Task)
	assert.Equal(t, "[x] a", toks[2].Text)
}
