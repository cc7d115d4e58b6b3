// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

func Fuzz(f *testing.F) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		f.Fatal(err)
	}
	for _, file := range files {
		a, err := txtar.ParseFile(file)
		if err != nil {
			f.Fatal(err)
		}
		for i := 0; i+2 <= len(a.Files); i += 2 {
			f.Add(decode(string(a.Files[i].Data)))
		}
	}
	for _, s := range []string{"\xff", "a\xffb", "*a\xff*", "- \xc0\n", "\u0661. foo\n", "[a](b)c )"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		if len(s) > 1000 {
			return
		}
		for _, d := range []Dialect{Normal, GFM, Pedantic, Breaks} {
			opts := &Options{Dialect: d}
			doc, err := Lex(s, opts)
			if err != nil {
				// Nesting limits and regexp errors are reported, not bugs.
				continue
			}
			depth := 0
			for _, tok := range doc.Tokens {
				switch tok.Kind {
				case BlockquoteStartToken, ListStartToken, ListItemStartToken:
					depth++
				case BlockquoteEndToken, ListEndToken, ListItemEndToken:
					depth--
				}
				if depth < 0 {
					t.Fatalf("%s: Lex(%q): end token before start:\n%s", d, s, doc.Dump())
				}
			}
			if depth != 0 {
				t.Fatalf("%s: Lex(%q): unbalanced:\n%s", d, s, doc.Dump())
			}

			out1, err := Parse(doc, opts)
			if err != nil {
				continue
			}
			out2, err := Convert(s, opts)
			if err != nil {
				t.Fatalf("%s: Parse succeeded but Convert(%q) failed: %v", d, s, err)
			}
			if out1 != out2 {
				t.Fatalf("%s: Convert(%q) not deterministic:\nhave %q\nwant %q", d, s, out2, out1)
			}
			if n, m := strings.Count(out1, "<blockquote>"), strings.Count(out1, "</blockquote>"); n != m && !strings.Contains(s, "<") {
				t.Fatalf("%s: Convert(%q): %d <blockquote> but %d </blockquote>", d, s, n, m)
			}
		}
	})
}
