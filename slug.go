// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Slugger generates heading identifiers.
// It remembers every identifier it has returned,
// so that no two headings of one document share an identifier.
// The zero Slugger is ready to use.
// A Slugger must not be shared between documents.
type Slugger struct {
	seen map[string]int // identifier -> collision count
}

// NewSlugger returns a new Slugger.
func NewSlugger() *Slugger {
	return &Slugger{seen: make(map[string]int)}
}

// Slug returns a unique identifier for a heading with the given plain text.
// The text is lower-cased, stripped of HTML tags and punctuation,
// and its runs of white space become hyphens.
// If the result was returned before, Slug appends -1, -2, and so on,
// counting separately for each base identifier.
func (s *Slugger) Slug(text string) string {
	if s.seen == nil {
		s.seen = make(map[string]int)
	}
	slug := slugify(text)
	if _, ok := s.seen[slug]; ok {
		base := slug
		for {
			s.seen[base]++
			slug = base + "-" + strconv.Itoa(s.seen[base])
			if _, ok := s.seen[slug]; !ok {
				break
			}
		}
	}
	s.seen[slug] = 0
	return slug
}

func slugify(text string) string {
	text = strings.TrimSpace(strings.ToLower(text))
	var b strings.Builder
	space := false
	for i := 0; i < len(text); {
		if n := tagLen(text[i:]); n > 0 {
			i += n
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		switch {
		case unicode.IsSpace(r):
			if !space {
				b.WriteByte('-')
			}
			space = true
			continue
		case 0x2000 <= r && r <= 0x206F, 0x2E00 <= r && r <= 0x2E7F:
			// General and supplemental punctuation.
		case r < 0x80 && isPunct(byte(r)) && r != '-' && r != '_':
		default:
			b.WriteRune(r)
		}
		space = false
	}
	return b.String()
}

// tagLen returns the length of the HTML tag at the start of s, or 0.
// A tag is < followed by !, /, or a letter, up to the next >.
func tagLen(s string) int {
	if len(s) < 2 || s[0] != '<' || !(s[1] == '!' || s[1] == '/' || isLetter(s[1])) {
		return 0
	}
	end := strings.IndexAny(s, ">\n")
	if end < 0 || s[end] != '>' {
		return 0
	}
	return end + 1
}
