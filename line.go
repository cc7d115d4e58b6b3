// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"strings"
	"unicode/utf8"
)

// normalizeSource prepares Markdown source for lexing.
// It converts \r\n and \r line endings to \n,
// replaces NUL and invalid UTF-8 with U+FFFD,
// and expands tabs to 4-space tab stops.
func normalizeSource(src string) string {
	if !utf8.ValidString(src) {
		src = strings.ToValidUTF8(src, "\uFFFD")
	}
	if strings.Contains(src, "\r") {
		src = strings.ReplaceAll(src, "\r\n", "\n")
		src = strings.ReplaceAll(src, "\r", "\n")
	}
	if strings.Contains(src, "\x00") {
		src = strings.ReplaceAll(src, "\x00", "\uFFFD")
	}
	if strings.Contains(src, "\t") {
		src = replaceTabs(src)
	}
	return src
}

// replaceTabs replaces all tabs in text with spaces up to a 4-space tab stop.
//
// This function does not handle multi-codepoint Unicode sequences correctly.
func replaceTabs(text string) string {
	var b strings.Builder
	col := 0
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		text = text[size:]

		switch r {
		case '\n':
			b.WriteByte('\n')
			col = 0

		case '\t':
			b.WriteByte(' ')
			col++
			for col%4 != 0 {
				b.WriteByte(' ')
				col++
			}

		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// clearBlankLines empties every line of s that holds only spaces.
func clearBlankLines(s string) string {
	if !strings.Contains(s, " \n") && !strings.HasSuffix(s, " ") {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.Trim(line, " ") == "" {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}

// mapLines returns s with f applied to each line.
func mapLines(s string, f func(string) string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = f(line)
	}
	return strings.Join(lines, "\n")
}

// outdent removes up to n leading spaces from each line of s.
func outdent(s string, n int) string {
	return mapLines(s, func(line string) string {
		i := 0
		for i < n && i < len(line) && line[i] == ' ' {
			i++
		}
		return line[i:]
	})
}

// stripQuote removes one level of blockquote marker
// (spaces, >, and one optional space) from each line of s.
// Lines without a marker are lazy continuation lines and are left alone.
func stripQuote(s string) string {
	return mapLines(s, func(line string) string {
		i := 0
		for i < len(line) && line[i] == ' ' {
			i++
		}
		if i >= len(line) || line[i] != '>' {
			return line
		}
		i++
		if i < len(line) && line[i] == ' ' {
			i++
		}
		return line[i:]
	})
}

// trimNewline removes a single trailing newline from s.
func trimNewline(s string) string {
	return strings.TrimSuffix(s, "\n")
}
