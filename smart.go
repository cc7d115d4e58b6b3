// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"strings"
	"unicode"
)

// smartypants replaces ASCII punctuation in text with typographic forms:
// --- and -- become em and en dashes, straight quotes become curly quotes,
// and ... becomes an ellipsis.
//
// A quote opens when it starts the text or follows space,
// a dash, a slash, or an opening bracket; otherwise it closes.
func smartypants(text string) string {
	if !strings.ContainsAny(text, `-'".`) {
		return text
	}
	text = strings.ReplaceAll(text, "---", "—")
	text = strings.ReplaceAll(text, "--", "–")

	var b strings.Builder
	prev, prevOut := rune(-1), rune(-1)
	for _, r := range text {
		out := r
		switch r {
		case '\'':
			out = '’'
			if prev < 0 || opensQuote(prev) || prev == '"' {
				out = '‘'
			}
		case '"':
			out = '”'
			if prev < 0 || opensQuote(prev) || prevOut == '‘' {
				out = '“'
			}
		}
		b.WriteRune(out)
		prev, prevOut = r, out
	}
	return strings.ReplaceAll(b.String(), "...", "…")
}

func opensQuote(r rune) bool {
	return strings.ContainsRune("-—/([{", r) || unicode.IsSpace(r)
}
