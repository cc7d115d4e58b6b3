// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// lexTable emits a GFM table whose rows begin with a pipe.
func lexTable(l *blockLexer, m match, rest string) (string, bool, error) {
	t, ok := parseTable(m[1], m[2], m[3], true)
	if !ok {
		return "", false, nil
	}
	l.emit(t)
	return rest, true, nil
}

// lexNPTable emits a GFM table written without outer pipes.
func lexNPTable(l *blockLexer, m match, rest string) (string, bool, error) {
	t, ok := parseTable(m[1], m[2], m[3], false)
	if !ok {
		return "", false, nil
	}
	l.emit(t)
	return rest, true, nil
}

// parseTable builds a table token from the header row, the delimiter row,
// and the body lines. It reports false if the delimiter row
// does not have one alignment marker per header cell.
func parseTable(hdr, delim, body string, piped bool) (Token, bool) {
	header := splitCells(trimRowEnd(strings.TrimLeft(hdr, " ")), -1)
	align := parseAlign(delim)
	if len(header) != len(align) {
		return Token{}, false
	}
	t := Token{Kind: TableToken, Header: header, Align: align}
	if body == "" {
		return t, true
	}
	for _, row := range strings.Split(trimNewline(body), "\n") {
		if piped {
			row = tableTrimOuter(row)
		}
		t.Cells = append(t.Cells, splitCells(row, len(header)))
	}
	return t, true
}

func isTableSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\v' || c == '\f'
}

func tableTrimSpace(s string) string {
	i := 0
	for i < len(s) && isTableSpace(s[i]) {
		i++
	}
	j := len(s)
	for j > i && isTableSpace(s[j-1]) {
		j--
	}
	return s[i:j]
}

// tableTrimOuter removes surrounding space and the outer pipes from row.
func tableTrimOuter(row string) string {
	row = tableTrimSpace(row)
	if len(row) > 0 && row[0] == '|' {
		row = row[1:]
	}
	return trimRowEnd(row)
}

// trimRowEnd removes trailing space and one unescaped trailing pipe from row.
func trimRowEnd(row string) string {
	row = tableTrimSpace(row)
	if strings.HasSuffix(row, "|") && !escapedAt(row, len(row)-1) {
		row = tableTrimSpace(row[:len(row)-1])
	}
	return row
}

// escapedAt reports whether s[i] is preceded by an odd number of backslashes.
func escapedAt(s string, i int) bool {
	n := 0
	for i--; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// tableCount returns the number of cells in row.
func tableCount(row string) int {
	col := 1
	for i := 0; i < len(row); i++ {
		c := row[i]
		if c == '\\' {
			i++
			continue
		}
		if c == '|' {
			col++
		}
	}
	return col
}

// splitCells splits row at its unescaped pipes.
// If width >= 0, extra cells are discarded
// and missing cells are considered empty.
func splitCells(row string, width int) []string {
	out := make([]string, 0, tableCount(row))
	start := 0
	unesc := nop
	for i := 0; i < len(row); i++ {
		c := row[i]
		if c == '\\' {
			i++
			if i < len(row) && row[i] == '|' {
				// Need to rewrite escaped pipe to pipe in cell.
				unesc = tableUnescape
			}
			continue
		}
		if c == '|' {
			out = append(out, unesc(strings.TrimSpace(row[start:i])))
			start = i + 1
			unesc = nop
		}
	}
	out = append(out, unesc(strings.TrimSpace(row[start:])))
	if width < 0 {
		return out
	}
	if len(out) > width {
		out = out[:width]
	}
	for len(out) < width {
		out = append(out, "")
	}
	return out
}

func nop(text string) string {
	return text
}

func tableUnescape(text string) string {
	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\\' && i+1 < len(text) && text[i+1] == '|' {
			i++
			c = '|'
		}
		out = append(out, c)
	}
	return string(out)
}

// parseAlign returns the column alignments given by a delimiter row.
func parseAlign(delim string) []Align {
	delim = strings.TrimLeft(delim, " ")
	if strings.HasSuffix(strings.TrimRight(delim, " "), "|") {
		delim = strings.TrimRight(delim, " ")
		delim = delim[:len(delim)-1]
	}
	var align []Align
	for _, cell := range strings.Split(delim, "|") {
		align = append(align, tableAlign(cell))
	}
	return align
}

// tableAlign returns the alignment of one delimiter cell:
// :--- is left, :---: is center, ---: is right.
func tableAlign(cell string) Align {
	cell = strings.Trim(cell, " ")
	l := strings.HasPrefix(cell, ":")
	r := len(cell) > 1 && strings.HasSuffix(cell, ":")
	dashes := strings.TrimSuffix(strings.TrimPrefix(cell, ":"), ":")
	if dashes == "" || strings.Trim(dashes, "-") != "" {
		return AlignNone
	}
	switch {
	case l && r:
		return AlignCenter
	case l:
		return AlignLeft
	case r:
		return AlignRight
	}
	return AlignNone
}
