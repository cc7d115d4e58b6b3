// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// A Renderer turns parsed Markdown into output.
// The parser calls one method per block or span,
// passing the already rendered content of its children.
//
// Block methods (Code through TableCell) are called by the parser.
// Span methods (Strong through Text) are called by the inline lexer.
type Renderer interface {
	Code(code, lang string, escaped bool) string
	Blockquote(quote string) string
	HTML(html string) string
	Heading(text string, level int, id string) string // id "" means none
	HR() string
	List(body string, ordered bool, start int) string
	ListItem(text string, task, checked bool) string
	Checkbox(checked bool) string
	Paragraph(text string) string
	Table(header, body string) string
	TableRow(content string) string
	TableCell(content string, flags CellFlags) string

	Strong(text string) string
	Em(text string) string
	Codespan(code string) string
	Br() string
	Del(text string) string
	Link(href, title, text string) string
	Image(href, title, text string) string
	Text(text string) string
}

// CellFlags describes a table cell.
type CellFlags struct {
	Header bool
	Align  Align
}
