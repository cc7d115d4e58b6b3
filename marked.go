// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "context"

// Convert converts Markdown source to HTML,
// or to the output of opts.Renderer if set.
// A nil opts means DefaultOptions.
// Convert does not call opts.AsyncHighlight; see [ConvertContext].
//
// If opts.Silent is set, Convert does not return errors.
// Instead the output is a short HTML fragment describing the error.
func Convert(src string, opts *Options) (string, error) {
	o := snapshot(opts)
	out, err := convert(src, &o)
	return report(&o, out, err)
}

// ConvertContext is like [Convert] but also runs opts.AsyncHighlight,
// if set, on every code block.
// The highlight calls run concurrently.
// The document is rendered once all of them have returned;
// the output does not depend on the order in which they finish.
//
// The first highlight error ends the conversion with a [*HighlightError].
// Calls already started are not waited for, and their results are discarded.
// ConvertContext also stops waiting when ctx is done.
func ConvertContext(ctx context.Context, src string, opts *Options) (string, error) {
	o := snapshot(opts)
	out, err := convertContext(ctx, src, &o)
	return report(&o, out, err)
}

// ConvertAsync runs [ConvertContext] in a new goroutine
// and calls done with its result.
// opts is copied before ConvertAsync returns.
func ConvertAsync(ctx context.Context, src string, opts *Options, done func(string, error)) {
	o := snapshot(opts)
	go func() {
		out, err := convertContext(ctx, src, &o)
		done(report(&o, out, err))
	}()
}

func convert(src string, opts *Options) (string, error) {
	doc, err := lex(src, opts)
	if err != nil {
		return "", err
	}
	return parse(doc, opts)
}

func convertContext(ctx context.Context, src string, opts *Options) (string, error) {
	if opts.AsyncHighlight == nil {
		return convert(src, opts)
	}
	doc, err := lex(src, opts)
	if err != nil {
		return "", err
	}
	if err := highlightAll(ctx, doc, opts); err != nil {
		return "", err
	}

	// The code has been highlighted already.
	o := *opts
	o.Highlight = nil
	return parse(doc, &o)
}

// highlightAll calls opts.AsyncHighlight concurrently for each code token of doc
// and stores the results in the tokens.
// Each result is written only to its own token,
// and only by this goroutine.
func highlightAll(ctx context.Context, doc *Document, opts *Options) error {
	var code []int
	for i, t := range doc.Tokens {
		if t.Kind == CodeToken {
			code = append(code, i)
		}
	}
	if len(code) == 0 {
		return nil
	}
	opts.Logger.Debug("markdown: highlighting code blocks", "count", len(code))

	type result struct {
		index int
		out   string
		err   error
	}
	// Buffered so that calls finishing after an early return do not block.
	results := make(chan result, len(code))
	for _, i := range code {
		i := i // per-iteration copy (pre-Go 1.22 loop semantics)
		t := doc.Tokens[i]
		go func() {
			out, err := opts.AsyncHighlight(ctx, t.Text, t.Lang)
			results <- result{i, out, err}
		}()
	}

	for range code {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case r := <-results:
			t := &doc.Tokens[r.index]
			if r.err != nil {
				return &HighlightError{Index: r.index, Lang: t.Lang, Err: r.err}
			}
			if r.out != "" && r.out != t.Text {
				t.Text = r.out
				t.Escaped = true
			}
		}
	}
	return nil
}

// report returns the result of a conversion.
// In silent mode an error is logged and rendered as a diagnostic fragment.
func report(opts *Options, out string, err error) (string, error) {
	if err == nil || !opts.Silent {
		return out, err
	}
	opts.Logger.Warn("markdown: conversion failed", "err", err)
	return "<p>An error occurred:</p><pre>" + Escape(err.Error(), true) + "</pre>", nil
}
