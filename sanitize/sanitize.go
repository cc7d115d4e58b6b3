// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sanitize provides an HTML sanitizer for
// [markdown.Options.Sanitizer], backed by bluemonday.
package sanitize

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// langClass matches the class names written on code blocks
// and by the highlight package.
var langClass = regexp.MustCompile(`^[\w-]+$`)

// Policy returns the policy used by [New]:
// bluemonday's user generated content policy,
// extended to keep class attributes on code and span elements.
func Policy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(langClass).OnElements("code", "span")
	return p
}

// New returns a sanitizer function using [Policy].
// The function is safe for concurrent use.
func New() func(html string) string {
	return Policy().Sanitize
}
