// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// lexIndentedCode emits a code block indented by four spaces.
// An indented block cannot interrupt a paragraph,
// so directly after one it becomes paragraph continuation text.
func lexIndentedCode(l *blockLexer, m match, rest string) (string, bool, error) {
	if t := l.last(); t != nil && t.Kind == ParagraphToken {
		t.Text += "\n" + strings.TrimRight(m[0], "\n")
		return rest, true, nil
	}
	code := outdent(m[0], 4)
	if !l.g.pedantic() {
		code = strings.TrimRight(code, "\n")
	}
	l.emit(Token{Kind: CodeToken, Text: code})
	return rest, true, nil
}

// lexFences emits a fenced code block.
// The grammar only matches fences that are closed;
// an unclosed fence is left to the paragraph rules.
func lexFences(l *blockLexer, m match, rest string) (string, bool, error) {
	l.emit(Token{
		Kind: CodeToken,
		Lang: strings.TrimSpace(m[2]),
		Text: m[3],
	})
	return rest, true, nil
}

// lexCodespan renders an inline code span.
func lexCodespan(l *inlineLexer, m match, rest string) (string, string, bool, error) {
	return l.r.Codespan(Escape(strings.TrimSpace(m[2]), true)), rest, true, nil
}
