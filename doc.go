// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "fmt"

// A Document is the result of lexing Markdown source:
// a flat stream of block tokens and the link reference definitions.
type Document struct {
	Tokens []Token
	Links  map[string]Link // keyed by normalized label
}

// A TokenKind identifies the kind of a [Token].
type TokenKind int

const (
	SpaceToken TokenKind = 1 + iota
	HeadingToken
	CodeToken
	HRToken
	TableToken
	BlockquoteStartToken
	BlockquoteEndToken
	ListStartToken
	ListEndToken
	ListItemStartToken
	ListItemEndToken
	HTMLToken
	ParagraphToken
	TextToken
)

var kindNames = [...]string{
	SpaceToken:           "space",
	HeadingToken:         "heading",
	CodeToken:            "code",
	HRToken:              "hr",
	TableToken:           "table",
	BlockquoteStartToken: "blockquote_start",
	BlockquoteEndToken:   "blockquote_end",
	ListStartToken:       "list_start",
	ListEndToken:         "list_end",
	ListItemStartToken:   "list_item_start",
	ListItemEndToken:     "list_item_end",
	HTMLToken:            "html",
	ParagraphToken:       "paragraph",
	TextToken:            "text",
}

func (k TokenKind) String() string {
	if 0 < k && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// MarshalYAML encodes k by name.
func (k TokenKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// An Align is the alignment of a table column.
type Align string

const (
	AlignNone   Align = "none"
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// A Token is one block-level element, or one bracket of a container.
// Which fields are meaningful depends on Kind:
//
//	HeadingToken          Text, Depth
//	CodeToken             Text, Lang, Escaped
//	TableToken            Header, Align, Cells
//	ListStartToken        Ordered, Start, Loose
//	ListItemStartToken    Loose, Task, Checked
//	HTMLToken             Text, Pre
//	ParagraphToken        Text
//	TextToken             Text
//
// Text holds Markdown source; inline markup is processed by the parser.
type Token struct {
	Kind    TokenKind  `yaml:"kind"`
	Text    string     `yaml:"text,omitempty"`
	Depth   int        `yaml:"depth,omitempty"`
	Lang    string     `yaml:"lang,omitempty"`
	Escaped bool       `yaml:"escaped,omitempty"`
	Header  []string   `yaml:"header,omitempty"`
	Align   []Align    `yaml:"align,omitempty"`
	Cells   [][]string `yaml:"cells,omitempty"`
	Ordered bool       `yaml:"ordered,omitempty"`
	Start   int        `yaml:"start,omitempty"`
	Loose   bool       `yaml:"loose,omitempty"`
	Task    bool       `yaml:"task,omitempty"`
	Checked bool       `yaml:"checked,omitempty"`
	Pre     bool       `yaml:"pre,omitempty"`
}
