// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var escapeTests = []struct {
	in     string
	encode bool
	out    string
}{
	{"plain", true, "plain"},
	{"plain", false, "plain"},
	{`<a href="x">'&'</a>`, true, "&lt;a href=&quot;x&quot;&gt;&#39;&amp;&#39;&lt;/a&gt;"},
	{`<a href="x">'&'</a>`, false, "&lt;a href=&quot;x&quot;&gt;&#39;&amp;&#39;&lt;/a&gt;"},
	{"&amp; & &#42; &x", false, "&amp; &amp; &#42; &amp;x"},
	{"&amp; & &#42; &x", true, "&amp;amp; &amp; &amp;#42; &amp;x"},
	{"&;", false, "&amp;;"},
	{"a&", false, "a&amp;"},
}

func TestEscape(t *testing.T) {
	for _, tt := range escapeTests {
		assert.Equal(t, tt.out, Escape(tt.in, tt.encode), "Escape(%q, %v)", tt.in, tt.encode)
	}
}
