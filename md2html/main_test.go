// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStdin(t *testing.T) {
	out, err := execute(t, "# Hi\n\n~~x~~\n")
	require.NoError(t, err)
	assert.Equal(t, "<h1 id=\"hi\">Hi</h1>\n<p><del>x</del></p>\n", out)
}

func TestFlags(t *testing.T) {
	out, err := execute(t, "# Hi\n\n~~x~~\n", "--dialect=normal", "--header-ids=false")
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hi</h1>\n<p>~~x~~</p>\n", out)

	_, err = execute(t, "x", "--dialect=nope")
	assert.Error(t, err)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.md")
	b := filepath.Join(dir, "b.md")
	require.NoError(t, os.WriteFile(a, []byte("a\n"), 0666))
	require.NoError(t, os.WriteFile(b, []byte("b\n"), 0666))

	out, err := execute(t, "", a, b)
	require.NoError(t, err)
	assert.Equal(t, "<p>a</p>\n<p>b</p>\n", out)

	_, err = execute(t, "", filepath.Join(dir, "missing.md"))
	assert.Error(t, err)
}

func TestRelativeFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("*x*\n"), 0666))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	out, err := execute(t, "", "notes.md")
	require.NoError(t, err)
	assert.Equal(t, "<p><em>x</em></p>\n", out)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "md2html.yaml")
	require.NoError(t, os.WriteFile(file, []byte("xhtml: true\nheader-prefix: doc-\n"), 0666))

	out, err := execute(t, "# T\n\n---\n", "--config", file)
	require.NoError(t, err)
	assert.Equal(t, "<h1 id=\"doc-t\">T</h1>\n<hr/>\n", out)

	// Flags override the file.
	out, err = execute(t, "***\n", "--config", file, "--xhtml=false")
	require.NoError(t, err)
	assert.Equal(t, "<hr>\n", out)
}

func TestEnv(t *testing.T) {
	t.Setenv("MD2HTML_LANG_PREFIX", "lang-")
	out, err := execute(t, "```go\nx\n```\n")
	require.NoError(t, err)
	assert.Equal(t, "<pre><code class=\"lang-go\">x</code></pre>\n", out)
}

func TestHighlight(t *testing.T) {
	out, err := execute(t, "```go\npackage main\n```\n", "--highlight")
	require.NoError(t, err)
	assert.Contains(t, out, `<span class="kn">package</span>`)
}

func TestCSS(t *testing.T) {
	out, err := execute(t, "", "css", "--style=monokai")
	require.NoError(t, err)
	assert.Contains(t, out, ".kn")
}
