// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// A TextRenderer renders only the text of spans, dropping all markup.
// The parser uses it to compute the plain text of headings.
// Its block methods return the empty string.
type TextRenderer struct{}

func (TextRenderer) Code(code, lang string, escaped bool) string { return "" }
func (TextRenderer) Blockquote(quote string) string { return "" }
func (TextRenderer) HTML(html string) string { return "" }
func (TextRenderer) Heading(text string, level int, id string) string { return "" }
func (TextRenderer) HR() string { return "" }
func (TextRenderer) List(body string, ordered bool, start int) string { return "" }
func (TextRenderer) ListItem(text string, task, checked bool) string { return "" }
func (TextRenderer) Checkbox(checked bool) string { return "" }
func (TextRenderer) Paragraph(text string) string { return "" }
func (TextRenderer) Table(header, body string) string { return "" }
func (TextRenderer) TableRow(content string) string { return "" }
func (TextRenderer) TableCell(content string, flags CellFlags) string { return "" }

func (TextRenderer) Strong(text string) string { return text }
func (TextRenderer) Em(text string) string { return text }
func (TextRenderer) Codespan(code string) string { return code }
func (TextRenderer) Br() string { return "" }
func (TextRenderer) Del(text string) string { return text }
func (TextRenderer) Link(href, title, text string) string { return text }
func (TextRenderer) Image(href, title, text string) string { return text }
func (TextRenderer) Text(text string) string { return text }
