// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Parse renders a lexed document using opts.Renderer,
// or an HTMLRenderer if opts.Renderer is nil.
// A nil opts means DefaultOptions.
// Parse does not modify doc.
func Parse(doc *Document, opts *Options) (string, error) {
	o := snapshot(opts)
	return parse(doc, &o)
}

// A cursor reads a token stream front to back.
// Tokens can be pushed back to be read again;
// pushed tokens are read before the rest of the stream.
type cursor struct {
	toks []Token
	pos  int
	back []Token
}

func (c *cursor) next() (Token, bool) {
	if n := len(c.back); n > 0 {
		t := c.back[n-1]
		c.back = c.back[:n-1]
		return t, true
	}
	if c.pos >= len(c.toks) {
		return Token{}, false
	}
	c.pos++
	return c.toks[c.pos-1], true
}

func (c *cursor) peek() (Token, bool) {
	if n := len(c.back); n > 0 {
		return c.back[n-1], true
	}
	if c.pos >= len(c.toks) {
		return Token{}, false
	}
	return c.toks[c.pos], true
}

func (c *cursor) push(t Token) {
	c.back = append(c.back, t)
}

// A parser walks a token stream, rendering each token.
type parser struct {
	cursor
	opts    *Options
	r       Renderer
	inline  *inlineLexer // renders span markup with r
	plain   *inlineLexer // renders span text only, for heading ids
	slugger *Slugger
	depth   int
}

func parse(doc *Document, opts *Options) (string, error) {
	g, err := GrammarFor(opts.Dialect)
	if err != nil {
		return "", err
	}
	r := opts.Renderer
	if r == nil {
		r = &HTMLRenderer{opts: *opts}
	}
	p := &parser{
		cursor:  cursor{toks: doc.Tokens},
		opts:    opts,
		r:       r,
		inline:  newInlineLexer(g, opts, doc.Links, r),
		plain:   newInlineLexer(g, opts, doc.Links, TextRenderer{}),
		slugger: NewSlugger(),
	}
	var b strings.Builder
	for {
		t, ok := p.next()
		if !ok {
			break
		}
		out, err := p.tok(t)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

// tok renders t, reading the rest of its container from the stream
// when t is a start token.
func (p *parser) tok(t Token) (string, error) {
	switch t.Kind {
	case SpaceToken:
		return "", nil

	case HRToken:
		return p.r.HR(), nil

	case HeadingToken:
		return p.heading(t)

	case CodeToken:
		return p.r.Code(t.Text, t.Lang, t.Escaped), nil

	case TableToken:
		return p.table(t)

	case BlockquoteStartToken:
		body, err := p.nest(BlockquoteEndToken)
		if err != nil {
			return "", err
		}
		return p.r.Blockquote(body), nil

	case ListStartToken:
		body, err := p.nest(ListEndToken)
		if err != nil {
			return "", err
		}
		return p.r.List(body, t.Ordered, t.Start), nil

	case ListItemStartToken:
		return p.listItem(t)

	case HTMLToken:
		return p.r.HTML(t.Text), nil

	case ParagraphToken:
		text, err := p.inline.output(t.Text)
		if err != nil {
			return "", err
		}
		return p.r.Paragraph(text), nil

	case TextToken:
		text, err := p.inline.output(p.text(t))
		if err != nil {
			return "", err
		}
		return p.r.Paragraph(text), nil

	case BlockquoteEndToken, ListEndToken, ListItemEndToken:
		return "", fmt.Errorf("%w: unexpected %v", ErrUnbalanced, t.Kind)
	}

	if p.opts.Silent {
		p.opts.Logger.Warn("markdown: skipping unknown token", "kind", t.Kind)
		return "", nil
	}
	return "", fmt.Errorf("%w: %v", ErrUnknownToken, t.Kind)
}

// nest renders the content of a blockquote or list up to its end token.
func (p *parser) nest(end TokenKind) (string, error) {
	if p.depth >= p.opts.MaxNesting {
		return "", fmt.Errorf("%w: more than %d levels", ErrNestingTooDeep, p.opts.MaxNesting)
	}
	p.depth++
	defer func() { p.depth-- }()
	return p.until(end, p.tok)
}

// until renders tokens with f up to the end token of the current container.
func (p *parser) until(end TokenKind, f func(Token) (string, error)) (string, error) {
	var b strings.Builder
	for {
		t, ok := p.next()
		if !ok {
			return "", fmt.Errorf("%w: missing %v", ErrUnbalanced, end)
		}
		if t.Kind == end {
			return b.String(), nil
		}
		out, err := f(t)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
}

// text returns the source of t joined with that of the text tokens after it.
func (p *parser) text(t Token) string {
	text := t.Text
	for {
		next, ok := p.peek()
		if !ok || next.Kind != TextToken {
			return text
		}
		p.next()
		text += "\n" + next.Text
	}
}

func (p *parser) heading(t Token) (string, error) {
	text, err := p.inline.output(t.Text)
	if err != nil {
		return "", err
	}
	id := ""
	if p.opts.HeaderIDs {
		plain, err := p.plain.output(t.Text)
		if err != nil {
			return "", err
		}
		id = p.slugger.Slug(html.UnescapeString(plain))
	}
	return p.r.Heading(text, t.Depth, id), nil
}

// listItem renders a list item.
// The checkbox of a task item goes in front of the item's first line of text.
// Text in a tight item is rendered without paragraph markup.
func (p *parser) listItem(item Token) (string, error) {
	var b strings.Builder
	if item.Task {
		box := p.r.Checkbox(item.Checked)
		if !item.Loose {
			b.WriteString(box)
		} else if next, ok := p.peek(); ok && next.Kind == TextToken {
			p.next()
			next.Text = box + next.Text
			p.push(next)
		} else {
			p.push(Token{Kind: TextToken, Text: box})
		}
	}
	body, err := p.until(ListItemEndToken, func(t Token) (string, error) {
		if !item.Loose && t.Kind == TextToken {
			return p.inline.output(p.text(t))
		}
		return p.tok(t)
	})
	if err != nil {
		return "", err
	}
	b.WriteString(body)
	return p.r.ListItem(b.String(), item.Task, item.Checked), nil
}

func (p *parser) table(t Token) (string, error) {
	align := func(i int) Align {
		if i < len(t.Align) {
			return t.Align[i]
		}
		return AlignNone
	}

	var cells strings.Builder
	for i, h := range t.Header {
		text, err := p.inline.output(h)
		if err != nil {
			return "", err
		}
		cells.WriteString(p.r.TableCell(text, CellFlags{Header: true, Align: align(i)}))
	}
	header := p.r.TableRow(cells.String())

	var body strings.Builder
	for _, row := range t.Cells {
		cells.Reset()
		for i, c := range row {
			text, err := p.inline.output(c)
			if err != nil {
				return "", err
			}
			cells.WriteString(p.r.TableCell(text, CellFlags{Align: align(i)}))
		}
		body.WriteString(p.r.TableRow(cells.String()))
	}
	return p.r.Table(header, body.String()), nil
}
