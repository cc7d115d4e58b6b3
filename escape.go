// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

var htmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&#39;",
)

// Escape returns s with the HTML special characters & < > " ' escaped.
// If encode is false, an & that already starts an entity
// or character reference (such as &amp; or &#42;) is left alone,
// so that text which is already escaped is not escaped twice.
func Escape(s string, encode bool) string {
	if !strings.ContainsAny(s, `&<>"'`) {
		return s
	}
	if encode || !strings.Contains(s, "&") {
		return htmlEscaper.Replace(s)
	}
	var b strings.Builder
	start := 0
	for i := 0; i < len(s); i++ {
		var esc string
		switch s[i] {
		default:
			continue
		case '&':
			if isEntityRef(s[i+1:]) {
				continue
			}
			esc = "&amp;"
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		case '"':
			esc = "&quot;"
		case '\'':
			esc = "&#39;"
		}
		b.WriteString(s[start:i])
		b.WriteString(esc)
		start = i + 1
	}
	b.WriteString(s[start:])
	return b.String()
}

// isEntityRef reports whether s begins with the remainder
// of an entity or character reference: name; or #digits; or #xhex;.
func isEntityRef(s string) bool {
	i := 0
	if i < len(s) && s[i] == '#' {
		i++
	}
	j := i
	for j < len(s) && (isLetterDigit(s[j]) || s[j] == '_') {
		j++
	}
	return j > i && j < len(s) && s[j] == ';'
}
