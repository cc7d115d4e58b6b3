// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"strings"
	"unicode/utf8"
)

// An inlineLexer renders the span-level markup of one text run.
// Each recognized span is handed to the renderer r as soon as it is matched,
// so the lexer produces output directly rather than tokens.
type inlineLexer struct {
	g     *Grammar
	opts  *Options
	links map[string]Link
	r     Renderer

	inLink     bool // inside link text or an <a> tag; bare URLs are not linked
	inRawBlock bool // inside <pre>, <code>, <kbd>, or <script>; text is not processed
}

func newInlineLexer(g *Grammar, opts *Options, links map[string]Link, r Renderer) *inlineLexer {
	return &inlineLexer{g: g, opts: opts, links: links, r: r}
}

// output renders src, trying the inline rules in order at each position.
// Every successful rule consumes at least one byte.
func (l *inlineLexer) output(src string) (string, error) {
	// Rules advance by the byte length of their matches, which requires valid UTF-8.
	if !utf8.ValidString(src) {
		src = strings.ToValidUTF8(src, "\uFFFD")
	}
	var b strings.Builder
Loop:
	for src != "" {
		for _, r := range l.g.inline {
			m, err := exec(r.re, src)
			if err != nil {
				return "", err
			}
			if m == nil || m[0] == "" {
				continue
			}
			out, rest, ok, err := r.lex(l, m, src[len(m[0]):])
			if err != nil {
				return "", err
			}
			if ok && len(rest) < len(src) {
				b.WriteString(out)
				src = rest
				continue Loop
			}
		}
		return "", noMatchError("inline", src)
	}
	return b.String(), nil
}

// lexEscape renders a backslash-escaped punctuation character literally.
func lexEscape(l *inlineLexer, m match, rest string) (string, string, bool, error) {
	return Escape(m[1], false), rest, true, nil
}

var (
	rawOpenRE  = reFold(`^<(pre|code|kbd|script)(\s|>)`)
	rawCloseRE = reFold(`^</(pre|code|kbd|script)(\s|>)`)
)

// lexTag passes an inline HTML tag through,
// or sanitizes it when Options.Sanitize is set.
// It also tracks whether the text that follows is inside a link
// or a raw element.
func lexTag(l *inlineLexer, m match, rest string) (string, string, bool, error) {
	tag := m[0]
	if !l.inLink && hasPrefixFold(tag, "<a ") {
		l.inLink = true
	} else if l.inLink && hasPrefixFold(tag, "</a>") {
		l.inLink = false
	}
	if !l.inRawBlock {
		if ok, err := rawOpenRE.MatchString(tag); err != nil {
			return "", "", false, err
		} else if ok {
			l.inRawBlock = true
		}
	} else {
		if ok, err := rawCloseRE.MatchString(tag); err != nil {
			return "", "", false, err
		} else if ok {
			l.inRawBlock = false
		}
	}
	return l.sanitize(tag), rest, true, nil
}

// sanitize returns raw HTML as it should appear in the output.
func (l *inlineLexer) sanitize(raw string) string {
	if !l.opts.Sanitize {
		return raw
	}
	if l.opts.Sanitizer != nil {
		return l.opts.Sanitizer(raw)
	}
	return Escape(raw, false)
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// firstGroup returns the first non-empty group of m.
// The emphasis rules are alternations with one group per alternative.
func firstGroup(m match) string {
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}

// lexStrong renders strong emphasis: **text** or __text__.
func lexStrong(l *inlineLexer, m match, rest string) (string, string, bool, error) {
	text, err := l.output(firstGroup(m))
	if err != nil {
		return "", "", false, err
	}
	return l.r.Strong(text), rest, true, nil
}

// lexEm renders emphasis: *text* or _text_.
func lexEm(l *inlineLexer, m match, rest string) (string, string, bool, error) {
	text, err := l.output(firstGroup(m))
	if err != nil {
		return "", "", false, err
	}
	return l.r.Em(text), rest, true, nil
}

// lexDel renders strikethrough: ~~text~~ (GFM).
func lexDel(l *inlineLexer, m match, rest string) (string, string, bool, error) {
	text, err := l.output(m[1])
	if err != nil {
		return "", "", false, err
	}
	return l.r.Del(text), rest, true, nil
}

// lexInlineText renders a run of plain text.
func lexInlineText(l *inlineLexer, m match, rest string) (string, string, bool, error) {
	if l.inRawBlock {
		return l.r.Text(l.sanitize(m[0])), rest, true, nil
	}
	text := m[0]
	if l.opts.Smartypants {
		text = smartypants(text)
	}
	return l.r.Text(Escape(text, false)), rest, true, nil
}
