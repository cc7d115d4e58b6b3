// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	markdown "rsc.io/marked"
	"rsc.io/marked/sanitize"
)

// A config holds the settings of one md2html run.
// Flags override MD2HTML_* environment variables,
// which override the config file.
type config struct {
	Dialect      string `mapstructure:"dialect"`
	HeaderIDs    bool   `mapstructure:"header-ids"`
	HeaderPrefix string `mapstructure:"header-prefix"`
	LangPrefix   string `mapstructure:"lang-prefix"`
	BaseURL      string `mapstructure:"base-url"`
	XHTML        bool   `mapstructure:"xhtml"`
	SmartLists   bool   `mapstructure:"smart-lists"`
	Smartypants  bool   `mapstructure:"smartypants"`
	Sanitize     bool   `mapstructure:"sanitize"`
	Silent       bool   `mapstructure:"silent"`
	Highlight    bool   `mapstructure:"highlight"`
	Style        string `mapstructure:"style"`
	MaxNesting   int    `mapstructure:"max-nesting"`
	Verbose      bool   `mapstructure:"verbose"`
}

func addFlags(fs *pflag.FlagSet) {
	def := markdown.DefaultOptions()
	fs.String("config", "", "config file (default md2html.yaml in . or $HOME/.config/md2html)")
	fs.String("dialect", string(def.Dialect), "markdown dialect: normal, gfm, pedantic, or breaks")
	fs.Bool("header-ids", def.HeaderIDs, "emit id attributes on headings")
	fs.String("header-prefix", def.HeaderPrefix, "prefix for heading ids")
	fs.String("lang-prefix", def.LangPrefix, "class prefix for code block languages")
	fs.String("base-url", "", "base URL for relative links")
	fs.Bool("xhtml", false, "self-close void elements")
	fs.Bool("smart-lists", false, "start a new list when the bullet changes")
	fs.Bool("smartypants", false, "use typographic quotes and dashes")
	fs.Bool("sanitize", false, "sanitize raw HTML")
	fs.Bool("silent", false, "render errors into the output instead of failing")
	fs.Bool("highlight", false, "highlight code blocks")
	fs.String("style", "github", "highlight style for the css command")
	fs.Int("max-nesting", markdown.DefaultMaxNesting, "maximum nesting of blockquotes and lists")
	fs.BoolP("verbose", "v", false, "log debug output")
}

// loadConfig reads the configuration for a command with flags fs.
func loadConfig(fs *pflag.FlagSet) (*config, error) {
	v := viper.New()
	if file, _ := fs.GetString("config"); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("md2html")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "md2html"))
		}
	}
	v.SetEnvPrefix("MD2HTML")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// options returns the conversion options for cfg.
func (cfg *config) options(logger *slog.Logger) (*markdown.Options, error) {
	d, err := markdown.ParseDialect(cfg.Dialect)
	if err != nil {
		return nil, err
	}
	opts := &markdown.Options{
		Dialect:      d,
		HeaderIDs:    cfg.HeaderIDs,
		HeaderPrefix: cfg.HeaderPrefix,
		LangPrefix:   cfg.LangPrefix,
		BaseURL:      cfg.BaseURL,
		XHTML:        cfg.XHTML,
		SmartLists:   cfg.SmartLists,
		Smartypants:  cfg.Smartypants,
		Sanitize:     cfg.Sanitize,
		Silent:       cfg.Silent,
		MaxNesting:   cfg.MaxNesting,
		Logger:       logger,
	}
	if cfg.Sanitize {
		opts.Sanitizer = sanitize.New()
	}
	return opts, nil
}

func (cfg *config) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
