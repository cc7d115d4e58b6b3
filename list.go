// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// listItemRE matches one list item: a bullet line
// and the following lines up to the next bullet at the same indentation.
var listItemRE = compile(`^( *)(`+pBullet+`) ?[^\n]*(?:\n(?!\1`+pBullet+` ?)[^\n]*)*`, regexp2.Multiline)

// lexList emits a list.
// Each item's content, outdented past its bullet, is lexed recursively
// between list item start and end tokens.
func lexList(l *blockLexer, m match, rest string) (string, bool, error) {
	bull := m[2]
	ordered := len(bull) > 1
	start := 0
	if ordered {
		n, err := strconv.Atoi(strings.TrimSuffix(bull, "."))
		if err != nil {
			return "", false, fmt.Errorf("markdown: list start %q: %w", bull, err)
		}
		start = n
	}
	first := len(l.tokens)
	l.emit(Token{Kind: ListStartToken, Ordered: ordered, Start: start})

	items, err := listItems(m[0])
	if err != nil {
		return "", false, err
	}
	loose, next := false, false
	for i := 0; i < len(items); i++ {
		item := items[i]

		// Outdent continuation lines by the width of the bullet.
		space := len(item)
		item = trimBullet(item)
		if strings.Contains(item, "\n ") {
			space -= len(item)
			if l.g.pedantic() {
				space = 4
			}
			item = outdent(item, space)
		}

		// A change of bullet type ends the list.
		// The remaining items are lexed again as a new list.
		if i != len(items)-1 {
			b := bullet(items[i+1])
			if ordered && len(b) == 1 || !ordered && (len(b) > 1 || l.opts.SmartLists && b != bull) {
				rest = strings.Join(items[i+1:], "\n") + rest
				items = items[:i+1]
			}
		}

		itemLoose := next || hasInnerBlank(item)
		if i != len(items)-1 {
			next = strings.HasSuffix(item, "\n")
			itemLoose = itemLoose || next
		}
		loose = loose || itemLoose

		task, checked := false, false
		if l.g.gfm() {
			task, checked, item = trimTask(item)
		}

		l.emit(Token{Kind: ListItemStartToken, Loose: itemLoose, Task: task, Checked: checked})
		if err := l.nest(item, false); err != nil {
			return "", false, err
		}
		l.emit(Token{Kind: ListItemEndToken})
	}

	// One loose item makes the whole list loose.
	if loose {
		l.tokens[first].Loose = true
		depth := 0
		for i := first + 1; i < len(l.tokens); i++ {
			switch l.tokens[i].Kind {
			case ListStartToken:
				depth++
			case ListEndToken:
				depth--
			case ListItemStartToken:
				if depth == 0 {
					l.tokens[i].Loose = true
				}
			}
		}
	}
	l.emit(Token{Kind: ListEndToken})
	return rest, true, nil
}

// listItems splits the text of a list into its items.
func listItems(s string) ([]string, error) {
	var items []string
	m, err := listItemRE.FindStringMatch(s)
	for m != nil && err == nil {
		items = append(items, m.String())
		m, err = listItemRE.FindNextMatch(m)
	}
	return items, err
}

// bullet returns the bullet that starts item, after any indentation.
func bullet(item string) string {
	i := 0
	for i < len(item) && item[i] == ' ' {
		i++
	}
	j := i
	for j < len(item) && isDigit(item[j]) {
		j++
	}
	if j > i && j < len(item) && item[j] == '.' {
		return item[i : j+1]
	}
	if i < len(item) {
		return item[i : i+1]
	}
	return ""
}

// trimBullet removes the indentation, bullet, and following spaces
// from the start of item.
func trimBullet(item string) string {
	i := 0
	for i < len(item) && item[i] == ' ' {
		i++
	}
	i += len(bullet(item[i:]))
	for i < len(item) && item[i] == ' ' {
		i++
	}
	return item[i:]
}

// hasInnerBlank reports whether item contains a blank line
// followed by more content.
func hasInnerBlank(item string) bool {
	i := strings.Index(item, "\n\n")
	return i >= 0 && strings.TrimSpace(item[i+2:]) != ""
}

// trimTask removes a task list marker ([ ] or [x]) from the start of item.
func trimTask(item string) (task, checked bool, rest string) {
	if len(item) < 4 || item[0] != '[' || item[2] != ']' || item[3] != ' ' {
		return false, false, item
	}
	switch item[1] {
	case ' ':
	case 'x', 'X':
		checked = true
	default:
		return false, false, item
	}
	return true, checked, strings.TrimLeft(item[3:], " ")
}
