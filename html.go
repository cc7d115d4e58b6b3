// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"strconv"
	"strings"
)

// blockTags lists the names of the HTML elements that start an HTML block.
// Each entry is a pattern; h[1-6] covers the six heading elements.
var blockTags = []string{
	"address", "article", "aside", "base", "basefont", "blockquote", "body",
	"caption", "center", "col", "colgroup", "dd", "details", "dialog", "dir",
	"div", "dl", "dt", "fieldset", "figcaption", "figure", "footer", "form",
	"frame", "frameset", "h[1-6]", "head", "header", "hr", "html", "iframe",
	"legend", "li", "link", "main", "menu", "menuitem", "meta", "nav",
	"noframes", "ol", "optgroup", "option", "p", "param", "section", "source",
	"summary", "table", "tbody", "td", "tfoot", "th", "thead", "title", "tr",
	"track", "ul",
}

// An HTMLRenderer renders Markdown as HTML.
type HTMLRenderer struct {
	opts Options
}

// NewHTMLRenderer returns an HTMLRenderer configured by opts.
// A nil opts means DefaultOptions.
// Later changes to *opts do not affect the renderer.
func NewHTMLRenderer(opts *Options) *HTMLRenderer {
	return &HTMLRenderer{opts: snapshot(opts)}
}

// Code renders a code block. Only the first word of lang is used.
// If Options.Highlight is set and changes the code,
// its result is used as already escaped HTML.
func (h *HTMLRenderer) Code(code, lang string, escaped bool) string {
	if f := strings.Fields(lang); len(f) > 0 {
		lang = f[0]
	} else {
		lang = ""
	}
	if h.opts.Highlight != nil {
		if out := h.opts.Highlight(code, lang); out != "" && out != code {
			code, escaped = out, true
		}
	}
	if !escaped {
		code = Escape(code, true)
	}
	if lang == "" {
		return "<pre><code>" + code + "</code></pre>\n"
	}
	return `<pre><code class="` + h.opts.LangPrefix + Escape(lang, true) + `">` + code + "</code></pre>\n"
}

func (h *HTMLRenderer) Blockquote(quote string) string {
	return "<blockquote>\n" + quote + "</blockquote>\n"
}

func (h *HTMLRenderer) HTML(html string) string {
	return html
}

func (h *HTMLRenderer) Heading(text string, level int, id string) string {
	n := strconv.Itoa(level)
	if id == "" {
		return "<h" + n + ">" + text + "</h" + n + ">\n"
	}
	return "<h" + n + ` id="` + h.opts.HeaderPrefix + id + `">` + text + "</h" + n + ">\n"
}

func (h *HTMLRenderer) HR() string {
	if h.opts.XHTML {
		return "<hr/>\n"
	}
	return "<hr>\n"
}

func (h *HTMLRenderer) List(body string, ordered bool, start int) string {
	if !ordered {
		return "<ul>\n" + body + "</ul>\n"
	}
	if start != 1 {
		return `<ol start="` + strconv.Itoa(start) + `">` + "\n" + body + "</ol>\n"
	}
	return "<ol>\n" + body + "</ol>\n"
}

func (h *HTMLRenderer) ListItem(text string, task, checked bool) string {
	return "<li>" + text + "</li>\n"
}

func (h *HTMLRenderer) Checkbox(checked bool) string {
	var b strings.Builder
	b.WriteString("<input ")
	if checked {
		b.WriteString(`checked="" `)
	}
	b.WriteString(`disabled="" type="checkbox"`)
	if h.opts.XHTML {
		b.WriteString(" /")
	}
	b.WriteString("> ")
	return b.String()
}

func (h *HTMLRenderer) Paragraph(text string) string {
	return "<p>" + text + "</p>\n"
}

func (h *HTMLRenderer) Table(header, body string) string {
	if body != "" {
		body = "<tbody>\n" + body + "</tbody>\n"
	}
	return "<table>\n<thead>\n" + header + "</thead>\n" + body + "</table>\n"
}

func (h *HTMLRenderer) TableRow(content string) string {
	return "<tr>\n" + content + "</tr>\n"
}

func (h *HTMLRenderer) TableCell(content string, flags CellFlags) string {
	tag := "td"
	if flags.Header {
		tag = "th"
	}
	if flags.Align == "" || flags.Align == AlignNone {
		return "<" + tag + ">" + content + "</" + tag + ">\n"
	}
	return "<" + tag + ` align="` + string(flags.Align) + `">` + content + "</" + tag + ">\n"
}

func (h *HTMLRenderer) Strong(text string) string {
	return "<strong>" + text + "</strong>"
}

func (h *HTMLRenderer) Em(text string) string {
	return "<em>" + text + "</em>"
}

func (h *HTMLRenderer) Codespan(code string) string {
	return "<code>" + code + "</code>"
}

func (h *HTMLRenderer) Br() string {
	if h.opts.XHTML {
		return "<br/>"
	}
	return "<br>"
}

func (h *HTMLRenderer) Del(text string) string {
	return "<del>" + text + "</del>"
}

// Link renders a link.
// If the target is refused by Options.Sanitize, only the text is rendered.
func (h *HTMLRenderer) Link(href, title, text string) string {
	href, ok := cleanURL(h.opts.Sanitize, h.opts.BaseURL, href)
	if !ok {
		return text
	}
	var b strings.Builder
	b.WriteString(`<a href="`)
	b.WriteString(Escape(href, false))
	b.WriteString(`"`)
	if title != "" {
		b.WriteString(` title="`)
		b.WriteString(title)
		b.WriteString(`"`)
	}
	b.WriteString(">")
	b.WriteString(text)
	b.WriteString("</a>")
	return b.String()
}

func (h *HTMLRenderer) Image(href, title, text string) string {
	href, ok := cleanURL(h.opts.Sanitize, h.opts.BaseURL, href)
	if !ok {
		return text
	}
	var b strings.Builder
	b.WriteString(`<img src="`)
	b.WriteString(Escape(href, false))
	b.WriteString(`" alt="`)
	b.WriteString(text)
	b.WriteString(`"`)
	if title != "" {
		b.WriteString(` title="`)
		b.WriteString(title)
		b.WriteString(`"`)
	}
	if h.opts.XHTML {
		b.WriteString("/>")
	} else {
		b.WriteString(">")
	}
	return b.String()
}

func (h *HTMLRenderer) Text(text string) string {
	return text
}
