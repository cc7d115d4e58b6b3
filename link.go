// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
)

// A Link is the target of a link reference definition.
type Link struct {
	Href  string `yaml:"href"`
	Title string `yaml:"title,omitempty"`
}

// normalizeLabel returns the normalized label for s, for uniquely identifying that label.
func normalizeLabel(s string) string {
	// Strip leading and trailing whitespace, collapse internal runs
	// to a single space, and fold case.
	s = strings.TrimSpace(s)
	var b strings.Builder
	space := false
	hi := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ' ', '\t', '\n':
			space = true
			continue
		default:
			if space {
				b.WriteByte(' ')
				space = false
			}
			if 'A' <= c && c <= 'Z' {
				c += 'a' - 'A'
			}
			if c >= 0x80 {
				hi = true
			}
			b.WriteByte(c)
		}
	}
	s = b.String()
	if hi {
		s = cases.Fold().String(s)
	}
	return s
}

// lexLink renders an inline link or image: [text](href "title").
func lexLink(l *inlineLexer, m match, rest string) (string, string, bool, error) {
	all, href, title := m[0], m[2], m.group(3)

	// The destination may swallow the closing paren of an enclosing span,
	// as in [a](b)c). Cut it at the first unbalanced paren.
	if end := findClosingBracket(href, '(', ')'); end >= 0 {
		// The destination follows "[text](" and any spaces.
		start := len("[](") + len(m[1])
		if all[0] == '!' {
			start++
		}
		start += strings.Index(all[start:], href)
		cut := all[:start+end+1]
		rest = all[len(cut):] + rest
		all = cut
		href = href[:end]
		title = ""
	}

	if l.g.pedantic() {
		if href0, title0, ok := splitPedanticHref(href); ok {
			href, title = href0, title0
		} else {
			title = ""
		}
	} else if len(title) >= 2 {
		title = title[1 : len(title)-1]
	}
	href = strings.TrimSpace(href)
	if len(href) >= 2 && href[0] == '<' && href[len(href)-1] == '>' {
		href = href[1 : len(href)-1]
	}

	out, err := l.outputLink(all, m[1], Link{Href: unescapeMarkdown(href), Title: unescapeMarkdown(title)})
	return out, rest, err == nil, err
}

// splitPedanticHref splits a pedantic link destination
// into the URL and a quoted title.
func splitPedanticHref(s string) (href, title string, ok bool) {
	i := strings.IndexAny(s, `'"`)
	if i < 0 {
		return "", "", false
	}
	// The URL is everything before the first quote, less trailing space.
	href = strings.TrimRight(s[:i], " \t\n")
	if href == "" || href == s[:i] {
		return "", "", false
	}
	// The title runs to the last matching quote.
	q := s[i]
	j := strings.LastIndexByte(s, q)
	if j <= i {
		return "", "", false
	}
	return href, s[i+1 : j], true
}

// lexRefLink renders a reference link or image, [text][label] or [label].
// An undefined label leaves the opening bracket as literal text
// and lexing resumes just after it.
func lexRefLink(l *inlineLexer, m match, rest string) (string, string, bool, error) {
	label := m.group(2)
	if label == "" {
		label = m[1]
	}
	link, ok := l.links[normalizeLabel(label)]
	if !ok || link.Href == "" {
		return m[0][:1], m[0][1:] + rest, true, nil
	}
	out, err := l.outputLink(m[0], m[1], link)
	return out, rest, err == nil, err
}

// outputLink renders a link, or an image if all starts with !.
func (l *inlineLexer) outputLink(all, text string, link Link) (string, error) {
	title := ""
	if link.Title != "" {
		title = Escape(link.Title, false)
	}
	if all[0] == '!' {
		return l.r.Image(link.Href, title, Escape(text, false)), nil
	}
	l.inLink = true
	inner, err := l.output(text)
	l.inLink = false
	if err != nil {
		return "", err
	}
	return l.r.Link(link.Href, title, inner), nil
}

// findClosingBracket returns the index of the first close bracket in s
// that has no matching open bracket, or -1.
func findClosingBracket(s string, open, close byte) int {
	if strings.IndexByte(s, close) < 0 {
		return -1
	}
	level := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case open:
			level++
		case close:
			level--
			if level < 0 {
				return i
			}
		}
	}
	return -1
}

// unescapeMarkdown removes backslashes that escape punctuation.
func unescapeMarkdown(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && isPunct(s[i+1]) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// lexAutolink renders an autolink: <scheme:...> or <user@host>.
func lexAutolink(l *inlineLexer, m match, rest string) (string, string, bool, error) {
	text := Escape(m[1], false)
	href := text
	if m[2] == "@" {
		href = "mailto:" + text
	}
	return l.r.Link(href, "", text), rest, true, nil
}

// lexURL renders a bare URL or email address (GFM).
// URLs are not recognized inside link text.
func lexURL(l *inlineLexer, m match, rest string) (string, string, bool, error) {
	if l.inLink {
		return "", "", false, nil
	}
	if m[2] == "@" {
		text := Escape(m[0], false)
		return l.r.Link("mailto:"+text, "", text), rest, true, nil
	}
	u, err := backpedal(m[0])
	if err != nil {
		return "", "", false, err
	}
	rest = m[0][len(u):] + rest
	text := Escape(u, false)
	href := text
	if strings.EqualFold(m[1], "www.") {
		href = "http://" + text
	}
	return l.r.Link(href, "", text), rest, true, nil
}

// backpedalRE matches the part of a bare URL that belongs to it:
// trailing punctuation, an unclosed paren, and a trailing entity
// reference are left out.
var backpedalRE = re(`^(?:[^?!.,:;*_~()&]+|\([^)]*\)|&(?![a-zA-Z0-9]+;$)|[?!.,:;*_~)]+(?!$))+`)

// backpedal trims characters from the end of a bare URL
// that are more likely punctuation of the surrounding text.
// Trimming repeats until nothing more is removed.
func backpedal(s string) (string, error) {
	for {
		m, err := exec(backpedalRE, s)
		if err != nil {
			return "", err
		}
		if m == nil || m[0] == s {
			return s, nil
		}
		s = m[0]
	}
}

// cleanURL prepares a link target for an href or src attribute.
// If sanitize is set, it refuses script and data URLs.
// If base is set, relative targets are resolved against it.
func cleanURL(sanitize bool, base, href string) (string, bool) {
	if sanitize {
		dec, err := url.PathUnescape(html.UnescapeString(href))
		if err != nil {
			return "", false
		}
		prot := strings.ToLower(strings.Map(func(r rune) rune {
			if r == ':' || r == '_' || r < 0x80 && isLetterDigit(byte(r)) {
				return r
			}
			return -1
		}, dec))
		for _, bad := range []string{"javascript:", "vbscript:", "data:"} {
			if strings.HasPrefix(prot, bad) {
				return "", false
			}
		}
	}
	if base != "" && !isOriginIndependent(href) {
		href = resolveURL(base, href)
	}
	return encodeURI(href), true
}

// isOriginIndependent reports whether href is empty, has a scheme,
// or is only a query or fragment.
func isOriginIndependent(href string) bool {
	if href == "" || href[0] == '?' || href[0] == '#' {
		return true
	}
	if !isLetter(href[0]) {
		return false
	}
	for i := 1; i < len(href); i++ {
		c := href[i]
		if c == ':' {
			return true
		}
		if !isLetterDigit(c) && c != '+' && c != '.' && c != '-' {
			return false
		}
	}
	return false
}

// resolveURL resolves href relative to base.
// A base without a path is treated as a directory;
// otherwise the last path element of base is replaced.
func resolveURL(base, href string) string {
	scheme, after, hasScheme := strings.Cut(base, ":")
	origin := ""
	if hasScheme {
		host := strings.TrimLeft(after, "/")
		slashes := len(after) - len(host)
		if i := strings.IndexByte(host, '/'); i >= 0 {
			origin = scheme + ":" + after[:slashes+i]
		} else {
			origin = base
			base += "/"
		}
	}
	if !strings.HasSuffix(base, "/") {
		base = base[:strings.LastIndexByte(base, '/')+1]
	}

	switch {
	case strings.HasPrefix(href, "//"):
		if hasScheme {
			return scheme + ":" + href
		}
		return href
	case strings.HasPrefix(href, "/"):
		return origin + href
	}
	return base + href
}

// encodeURI percent-encodes the bytes of s that may not appear in a URI.
// Existing percent escapes are preserved.
func encodeURI(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x80 && (isLetterDigit(c) || strings.IndexByte(";,/?:@&=+$-_.!~*'()#%", c) >= 0) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&15])
	}
	return b.String()
}
