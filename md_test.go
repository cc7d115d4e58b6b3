// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"bytes"
	"flag"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gparser "github.com/yuin/goldmark/parser"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/tools/txtar"
)

var goldmarkFlag = flag.Bool("goldmark", false, "cross-check marked cases against goldmark")

// Test runs the golden tests in testdata/*.txt.
// Each archive holds pairs of files: name.md followed by
// name.html (the converted output) or name.tokens (the Dump of the lexed document).
// The archive comment sets options, one "key: value" per line.
func Test(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no testdata")
	}
	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txt"), func(t *testing.T) {
			a, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}

			opts := DefaultOptions()
			compare, err := setOptions(opts, a.Comment)
			if err != nil {
				t.Fatal(err)
			}

			var ncase, npass int
			for i := 0; i+2 <= len(a.Files); i += 2 {
				ncase++
				md := a.Files[i]
				want := a.Files[i+1]
				name := strings.TrimSuffix(md.Name, ".md")
				ext := filepath.Ext(want.Name)
				if name != strings.TrimSuffix(want.Name, ext) {
					t.Fatalf("mismatched file pair: %s and %s", md.Name, want.Name)
				}
				src := decode(string(md.Data))

				t.Run(name, func(t *testing.T) {
					var have string
					switch ext {
					case ".html":
						out, err := Convert(src, opts)
						if err != nil {
							t.Fatal(err)
						}
						have = out
					case ".tokens":
						doc, err := Lex(src, opts)
						if err != nil {
							t.Fatal(err)
						}
						have = doc.Dump()
					default:
						t.Fatalf("unknown golden file type %s", want.Name)
					}
					if h := encode(have); h != string(want.Data) {
						doc, _ := Lex(src, opts)
						t.Fatalf("input %q\nlex:\n%s\nhave %q\nwant %q", md.Data, doc.Dump(), h, want.Data)
					}
					npass++
				})

				if !*goldmarkFlag || !compare || ext != ".html" {
					continue
				}
				t.Run("goldmark/"+name, func(t *testing.T) {
					gm := newGoldmark(opts)
					var buf bytes.Buffer
					if err := gm.Convert([]byte(src), &buf); err != nil {
						t.Fatal(err)
					}
					if buf.Len() > 0 && buf.Bytes()[buf.Len()-1] != '\n' {
						buf.WriteByte('\n')
					}
					out := strings.ReplaceAll(encode(buf.String()), " />", ">")
					golden := strings.ReplaceAll(string(want.Data), " />", ">")
					if out != golden {
						t.Fatalf("\n    - input: ``%q``\n    - output: ``%q``\n    - golden: ``%q``", md.Data, out, golden)
					}
				})
			}
			t.Logf("%d/%d pass", npass, ncase)
		})
	}
}

// newGoldmark returns a goldmark converter approximating opts.
func newGoldmark(opts *Options) goldmark.Markdown {
	gopts := []goldmark.Option{goldmark.WithRendererOptions(ghtml.WithUnsafe())}
	if opts.Dialect == GFM || opts.Dialect == Breaks {
		gopts = append(gopts, goldmark.WithExtensions(extension.GFM))
	}
	if opts.Dialect == Breaks {
		gopts = append(gopts, goldmark.WithRendererOptions(ghtml.WithHardWraps()))
	}
	if opts.HeaderIDs {
		gopts = append(gopts, goldmark.WithParserOptions(gparser.WithAutoHeadingID()))
	}
	if opts.XHTML {
		gopts = append(gopts, goldmark.WithRendererOptions(ghtml.WithXHTML()))
	}
	return goldmark.New(gopts...)
}

func decode(s string) string {
	s = strings.ReplaceAll(s, "^J\n", "\n")
	s = strings.ReplaceAll(s, "^M", "\r")
	s = strings.ReplaceAll(s, "^D\n", "")
	s = strings.ReplaceAll(s, "^@", "\x00")
	return s
}

func encode(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "^M\n")
	s = strings.ReplaceAll(s, "\r", "^M^D\n")
	s = strings.ReplaceAll(s, " \n", " ^J\n")
	s = strings.ReplaceAll(s, "\t\n", "\t^J\n")
	s = strings.ReplaceAll(s, "\x00", "^@")
	if s != "" && !strings.HasSuffix(s, "\n") {
		s += "^D\n"
	}
	return s
}

// setOptions extracts lines of the form
//
//	key: value
//
// from data and sets the corresponding options.
// The key "goldmark" with value "compare" marks the archive
// for cross-checking, which it reports.
func setOptions(opts *Options, data []byte) (compare bool, err error) {
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "//") {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		var b *bool
		switch key {
		case "goldmark":
			compare = value == "compare"
			continue
		case "dialect":
			d, err := ParseDialect(value)
			if err != nil {
				return false, err
			}
			opts.Dialect = d
			continue
		case "headerPrefix":
			opts.HeaderPrefix = value
			continue
		case "langPrefix":
			opts.LangPrefix = value
			continue
		case "baseUrl":
			opts.BaseURL = value
			continue
		case "headerIds":
			b = &opts.HeaderIDs
		case "xhtml":
			b = &opts.XHTML
		case "smartLists":
			b = &opts.SmartLists
		case "smartypants":
			b = &opts.Smartypants
		case "sanitize":
			b = &opts.Sanitize
		default:
			return false, fmt.Errorf("unknown option: %q", key)
		}
		v, err := strconv.ParseBool(value)
		if err != nil {
			return false, err
		}
		*b = v
	}
	return compare, nil
}
