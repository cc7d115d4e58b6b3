// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugifyTests = []struct {
	in  string
	out string
}{
	{"Hello World", "hello-world"},
	{"Hello, World!", "hello-world"},
	{"  Trim Me  ", "trim-me"},
	{"a <em>b</em>", "a-b"},
	{"Über “quotes”", "über-quotes"},
	{"snake_case-name", "snake_case-name"},
	{"a \t\n b", "a-b"},
	{"A & B", "a--b"},
	{"", ""},
}

func TestSlugify(t *testing.T) {
	for _, tt := range slugifyTests {
		assert.Equal(t, tt.out, slugify(tt.in), "slugify(%q)", tt.in)
	}
}

func TestSlugCollisions(t *testing.T) {
	s := NewSlugger()
	var got []string
	for _, text := range []string{"a", "a", "a-1", "a", "a-2", "A"} {
		got = append(got, s.Slug(text))
	}
	assert.Equal(t, []string{"a", "a-1", "a-1-1", "a-2", "a-2-1", "a-3"}, got)

	seen := make(map[string]bool)
	for _, id := range got {
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestSlugZero(t *testing.T) {
	var s Slugger
	assert.Equal(t, "x", s.Slug("x"))
	assert.Equal(t, "x-1", s.Slug("x"))
}
