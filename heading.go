// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// lexHeading emits an ATX heading (# Title).
func lexHeading(l *blockLexer, m match, rest string) (string, bool, error) {
	l.emit(Token{Kind: HeadingToken, Depth: len(m[1]), Text: m[2]})
	return rest, true, nil
}

// lexLHeading emits a setext heading:
// a line of text underlined with = (level 1) or - (level 2).
func lexLHeading(l *blockLexer, m match, rest string) (string, bool, error) {
	depth := 2
	if m[2][0] == '=' {
		depth = 1
	}
	l.emit(Token{Kind: HeadingToken, Depth: depth, Text: m[1]})
	return rest, true, nil
}
