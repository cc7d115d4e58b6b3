// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"bytes"
	"fmt"
	"sort"
)

// Dump returns a listing of the tokens of d, one per line,
// indented to show the nesting of blockquotes and lists,
// followed by the link definitions in label order.
// The format is meant for debugging and tests.
func (d *Document) Dump() string {
	var p printer
	for _, t := range d.Tokens {
		p.token(t)
	}
	labels := make([]string, 0, len(d.Links))
	for label := range d.Links {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		link := d.Links[label]
		fmt.Fprintf(&p.buf, "link %q %q", label, link.Href)
		if link.Title != "" {
			fmt.Fprintf(&p.buf, " %q", link.Title)
		}
		p.buf.WriteByte('\n')
	}
	return p.buf.String()
}

type printer struct {
	buf    bytes.Buffer
	prefix []byte
}

func (p *printer) push(s string) {
	p.prefix = append(p.prefix, s...)
}

func (p *printer) pop(n int) {
	if n >= 0 && n <= len(p.prefix) {
		p.prefix = p.prefix[:n]
	}
}

func (p *printer) token(t Token) {
	switch t.Kind {
	case BlockquoteEndToken, ListEndToken, ListItemEndToken:
		p.pop(len(p.prefix) - 1)
	}
	p.buf.Write(p.prefix)
	p.buf.WriteString(t.Kind.String())
	if t.Depth != 0 {
		fmt.Fprintf(&p.buf, " depth=%d", t.Depth)
	}
	if t.Lang != "" {
		fmt.Fprintf(&p.buf, " lang=%q", t.Lang)
	}
	p.flag(t.Escaped, "escaped")
	p.flag(t.Ordered, "ordered")
	if t.Ordered {
		fmt.Fprintf(&p.buf, " start=%d", t.Start)
	}
	p.flag(t.Loose, "loose")
	p.flag(t.Task, "task")
	p.flag(t.Checked, "checked")
	p.flag(t.Pre, "pre")
	if t.Kind == TableToken {
		fmt.Fprintf(&p.buf, " header=%q align=%v", t.Header, t.Align)
	}
	if t.Text != "" {
		fmt.Fprintf(&p.buf, " %q", t.Text)
	}
	p.buf.WriteByte('\n')
	for _, row := range t.Cells {
		fmt.Fprintf(&p.buf, "%s\trow=%q\n", p.prefix, row)
	}

	switch t.Kind {
	case BlockquoteStartToken, ListStartToken, ListItemStartToken:
		p.push("\t")
	}
}

func (p *printer) flag(on bool, name string) {
	if on {
		p.buf.WriteString(" ")
		p.buf.WriteString(name)
	}
}
