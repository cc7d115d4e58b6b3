// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"fmt"
	"strings"
)

// A blockLexer splits Markdown source into block tokens.
// The container rules (blockquote, list) call back into the lexer
// for their content, so tokens of nested blocks are bracketed
// by start and end tokens in one flat stream.
type blockLexer struct {
	g      *Grammar
	opts   *Options
	tokens []Token
	links  map[string]Link
	top    bool // lexing the document or blockquote content, not a list item
	depth  int
}

// Lex splits Markdown source into block tokens
// and collects its link reference definitions.
// A nil opts means DefaultOptions.
func Lex(src string, opts *Options) (*Document, error) {
	o := snapshot(opts)
	return lex(src, &o)
}

func lex(src string, opts *Options) (*Document, error) {
	g, err := GrammarFor(opts.Dialect)
	if err != nil {
		return nil, err
	}
	l := &blockLexer{
		g:     g,
		opts:  opts,
		links: make(map[string]Link),
		top:   true,
	}
	if err := l.lex(normalizeSource(src)); err != nil {
		return nil, err
	}
	return &Document{Tokens: l.tokens, Links: l.links}, nil
}

func (l *blockLexer) emit(t Token) {
	l.tokens = append(l.tokens, t)
}

// lex consumes src, trying the block rules in order at each position.
func (l *blockLexer) lex(src string) error {
	src = clearBlankLines(src)
Loop:
	for src != "" {
		for _, r := range l.g.block {
			m, err := exec(r.re, src)
			if err != nil {
				return err
			}
			if m == nil || m[0] == "" {
				continue
			}
			rest, ok, err := r.lex(l, m, src[len(m[0]):])
			if err != nil {
				return err
			}
			if ok {
				src = rest
				continue Loop
			}
		}
		return noMatchError("block", src)
	}
	return nil
}

// nest lexes src as the content of a container block.
// top reports whether definitions and paragraphs are allowed in src.
func (l *blockLexer) nest(src string, top bool) error {
	if l.depth >= l.opts.MaxNesting {
		return fmt.Errorf("%w: more than %d levels", ErrNestingTooDeep, l.opts.MaxNesting)
	}
	oldTop := l.top
	l.top = top
	l.depth++
	err := l.lex(src)
	l.depth--
	l.top = oldTop
	return err
}

// last returns the most recently emitted token, or nil.
func (l *blockLexer) last() *Token {
	if len(l.tokens) == 0 {
		return nil
	}
	return &l.tokens[len(l.tokens)-1]
}

func lexNewline(l *blockLexer, m match, rest string) (string, bool, error) {
	if len(m[0]) > 1 {
		l.emit(Token{Kind: SpaceToken})
	}
	return rest, true, nil
}

func lexDef(l *blockLexer, m match, rest string) (string, bool, error) {
	if !l.top {
		return "", false, nil
	}
	title := m[3]
	if len(title) >= 2 {
		title = title[1 : len(title)-1]
	}
	label := normalizeLabel(m[1])
	if _, ok := l.links[label]; !ok {
		l.links[label] = Link{Href: m[2], Title: title}
	}
	return rest, true, nil
}

func lexHTML(l *blockLexer, m match, rest string) (string, bool, error) {
	if l.opts.Sanitize {
		l.emit(Token{Kind: ParagraphToken, Text: strings.TrimRight(m[0], "\n")})
		return rest, true, nil
	}
	tag := strings.ToLower(m[1])
	l.emit(Token{
		Kind: HTMLToken,
		Text: m[0],
		Pre:  tag == "pre" || tag == "script" || tag == "style",
	})
	return rest, true, nil
}
