// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mdlex prints the block tokens of Markdown documents.
//
// Usage:
//
//	mdlex [-d dialect] [-f format] [file...]
//
// Mdlex reads the named files, or else standard input, as Markdown documents
// and prints their token streams and link definitions to standard output.
//
// The -d flag selects the dialect: normal, gfm (the default), pedantic, or breaks.
// The -f flag selects the output format: yaml (the default)
// or dump, an indented listing with one token per line.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	markdown "rsc.io/marked"
)

var (
	dialect = pflag.StringP("dialect", "d", "gfm", "markdown `dialect`")
	format  = pflag.StringP("format", "f", "yaml", "output `format`: yaml or dump")
	exit    = 0
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: mdlex [-d dialect] [-f format] [file...]\n")
	pflag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("mdlex: ")
	log.SetFlags(0)
	pflag.Usage = usage
	pflag.Parse()

	d, err := markdown.ParseDialect(*dialect)
	if err != nil {
		log.Fatal(err)
	}
	if *format != "yaml" && *format != "dump" {
		log.Fatalf("unknown format %q", *format)
	}
	opts := markdown.DefaultOptions()
	opts.Dialect = d

	if pflag.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		if err := lex(os.Stdout, data, opts, *format); err != nil {
			log.Fatal(err)
		}
	} else {
		for _, file := range pflag.Args() {
			data, err := os.ReadFile(file)
			if err != nil {
				log.Print(err)
				exit = 1
				continue
			}
			if err := lex(os.Stdout, data, opts, *format); err != nil {
				log.Printf("%s: %v", file, err)
				exit = 1
			}
		}
	}
	os.Exit(exit)
}

// A listing is the YAML form of a lexed document.
type listing struct {
	Tokens []markdown.Token          `yaml:"tokens"`
	Links  map[string]markdown.Link `yaml:"links,omitempty"`
}

// lex lexes data and writes its tokens to w in the given format.
func lex(w io.Writer, data []byte, opts *markdown.Options, format string) error {
	doc, err := markdown.Lex(string(data), opts)
	if err != nil {
		return err
	}
	if format == "dump" {
		_, err := io.WriteString(w, doc.Dump())
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(listing{Tokens: doc.Tokens, Links: doc.Links}); err != nil {
		return err
	}
	return enc.Close()
}
