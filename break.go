// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// lexHR emits a thematic break.
func lexHR(l *blockLexer, m match, rest string) (string, bool, error) {
	l.emit(Token{Kind: HRToken})
	return rest, true, nil
}

// lexBr renders a hard line break: two or more spaces,
// or a backslash, before a newline that is not at the end of the text.
// In the Breaks dialect any newline qualifies.
func lexBr(l *inlineLexer, m match, rest string) (string, string, bool, error) {
	return l.r.Br(), rest, true, nil
}
