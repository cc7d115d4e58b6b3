// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Md2html converts Markdown to HTML.
//
// Usage:
//
//	md2html [flags] [file...]
//	md2html css [--style name]
//
// Md2html reads the named files, or else standard input, as Markdown documents
// and then prints the corresponding HTML to standard output.
// The css command prints the style sheet for highlighted code blocks.
//
// Settings are read from md2html.yaml in the current directory
// or in $HOME/.config/md2html, from MD2HTML_* environment variables
// (MD2HTML_DIALECT, MD2HTML_HEADER_IDS, and so on), and from flags,
// with flags taking precedence.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	markdown "rsc.io/marked"
	"rsc.io/marked/highlight"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "md2html [file...]",
		Short: "Convert Markdown to HTML",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd, cfg, args)
		},
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	addFlags(root.PersistentFlags())

	root.AddCommand(&cobra.Command{
		Use:   "css",
		Short: "Print the style sheet for highlighted code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			h := &highlight.Highlighter{Style: cfg.Style}
			return h.WriteCSS(cmd.OutOrStdout())
		},
	})
	return root
}

func run(cmd *cobra.Command, cfg *config, args []string) error {
	logger := cfg.logger(cmd.ErrOrStderr())
	opts, err := cfg.options(logger)
	if err != nil {
		return err
	}
	if cfg.Highlight {
		h := &highlight.Highlighter{Style: cfg.Style}
		opts.AsyncHighlight = h.HighlightContext
	}

	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		return convert(cmd, opts, "<stdin>", data)
	}
	for _, file := range args {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		if err := convert(cmd, opts, file, data); err != nil {
			return err
		}
	}
	return nil
}

func convert(cmd *cobra.Command, opts *markdown.Options, file string, data []byte) error {
	opts.Logger.Debug("md2html: converting", "file", file, "bytes", len(data))
	out, err := markdown.ConvertContext(cmd.Context(), string(data), opts)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}
