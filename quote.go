// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// lexBlockquote emits a blockquote.
// Its content, with one level of > markers removed,
// is lexed recursively between the start and end tokens.
func lexBlockquote(l *blockLexer, m match, rest string) (string, bool, error) {
	l.emit(Token{Kind: BlockquoteStartToken})
	if err := l.nest(stripQuote(m[0]), l.top); err != nil {
		return "", false, err
	}
	l.emit(Token{Kind: BlockquoteEndToken})
	return rest, true, nil
}
