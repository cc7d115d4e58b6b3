// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// lexParagraph emits a paragraph.
// Paragraphs only appear at top level;
// inside list items the same lines are lexed as text.
func lexParagraph(l *blockLexer, m match, rest string) (string, bool, error) {
	if !l.top {
		return "", false, nil
	}
	l.emit(Token{Kind: ParagraphToken, Text: trimNewline(m[1])})
	return rest, true, nil
}

// lexText emits a single line of text.
func lexText(l *blockLexer, m match, rest string) (string, bool, error) {
	l.emit(Token{Kind: TextToken, Text: m[0]})
	return rest, true, nil
}
