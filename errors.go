// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDialect is returned for a dialect name
	// that is not one of Normal, GFM, Pedantic, or Breaks.
	ErrUnknownDialect = errors.New("markdown: unknown dialect")

	// ErrNoRuleMatched reports that no grammar rule consumed any input.
	// The fallback rules always match, so this indicates a broken grammar.
	ErrNoRuleMatched = errors.New("markdown: no rule matched")

	// ErrUnknownToken is returned by Parse for a token kind it does not know.
	ErrUnknownToken = errors.New("markdown: unknown token")

	// ErrUnbalanced is returned by Parse when a start token has no matching end.
	ErrUnbalanced = errors.New("markdown: unbalanced token stream")

	// ErrNestingTooDeep is returned when blockquotes and lists
	// nest deeper than Options.MaxNesting.
	ErrNestingTooDeep = errors.New("markdown: nesting too deep")
)

// A HighlightError records the failure of an asynchronous highlight hook.
type HighlightError struct {
	Index int    // index of the code token in the document
	Lang  string // language of the code block
	Err   error
}

func (e *HighlightError) Error() string {
	if e.Lang == "" {
		return fmt.Sprintf("markdown: highlight code block %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("markdown: highlight %s code block %d: %v", e.Lang, e.Index, e.Err)
}

func (e *HighlightError) Unwrap() error { return e.Err }

// noMatchError reports the input that no rule could consume.
func noMatchError(where, src string) error {
	const max = 20
	if len(src) > max {
		src = src[:max] + "..."
	}
	return fmt.Errorf("%w: %s at %q", ErrNoRuleMatched, where, src)
}
