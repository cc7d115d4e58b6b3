// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dlclark/regexp2"
)

// A Dialect names a Markdown grammar.
type Dialect string

const (
	Normal   Dialect = "normal"   // original Markdown with CommonMark-style details
	GFM      Dialect = "gfm"      // GitHub-flavored: tables, strikethrough, bare URLs
	Pedantic Dialect = "pedantic" // close to the original markdown.pl
	Breaks   Dialect = "breaks"   // GFM where every newline is a hard break
)

// ParseDialect returns the dialect named by s.
// The empty string means Normal.
func ParseDialect(s string) (Dialect, error) {
	d := Dialect(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case "":
		return Normal, nil
	case Normal, GFM, Pedantic, Breaks:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDialect, s)
}

// A match holds the text of a rule match followed by its groups.
// Groups that did not participate in the match are empty.
type match []string

// exec matches re against the start of s.
// It returns a nil match if re does not match.
func exec(re *regexp2.Regexp, s string) (match, error) {
	m, err := re.FindStringMatch(s)
	if err != nil {
		return nil, fmt.Errorf("markdown: %w", err)
	}
	if m == nil {
		return nil, nil
	}
	c := make(match, m.GroupCount())
	for i := range c {
		if g := m.GroupByNumber(i); g != nil {
			c[i] = g.String()
		}
	}
	return c, nil
}

// group returns the i'th group of m, or "" if m has fewer groups.
func (m match) group(i int) string {
	if i < len(m) {
		return m[i]
	}
	return ""
}

// A blockRule matches one block construct at the start of the input.
// Its lex function emits tokens for the match and returns the input left over.
// It returns ok == false to decline the match,
// in which case the next rule is tried.
type blockRule struct {
	name string
	re   *regexp2.Regexp
	lex  func(l *blockLexer, m match, src string) (rest string, ok bool, err error)
}

// An inlineRule matches one span at the start of a text run.
// Its lex function returns the rendered span and the text left over.
type inlineRule struct {
	name string
	re   *regexp2.Regexp
	lex  func(l *inlineLexer, m match, src string) (out, rest string, ok bool, err error)
}

func (r blockRule) ruleName() string  { return r.name }
func (r inlineRule) ruleName() string { return r.name }

type namedRule interface {
	blockRule | inlineRule
	ruleName() string
}

// replaceRule returns a copy of list with the rule named r.name replaced by r.
func replaceRule[R namedRule](list []R, r R) []R {
	i := ruleIndex(list, r.ruleName())
	list = slices.Clone(list)
	list[i] = r
	return list
}

// insertRule returns a copy of list with r inserted before the rule named before.
func insertRule[R namedRule](list []R, before string, r R) []R {
	return slices.Insert(slices.Clone(list), ruleIndex(list, before), r)
}

// removeRule returns a copy of list without the rule named name.
func removeRule[R namedRule](list []R, name string) []R {
	i := ruleIndex(list, name)
	return slices.Delete(slices.Clone(list), i, i+1)
}

func ruleIndex[R namedRule](list []R, name string) int {
	for i, r := range list {
		if r.ruleName() == name {
			return i
		}
	}
	panic("markdown: no rule " + name)
}

// A Grammar is the ordered block and inline rules of one dialect.
// Earlier rules take precedence over later ones.
// A Grammar is immutable and safe for concurrent use.
type Grammar struct {
	dialect Dialect
	block   []blockRule
	inline  []inlineRule
}

// Dialect returns the dialect g implements.
func (g *Grammar) Dialect() Dialect { return g.dialect }

// BlockRules returns the names of the block rules in precedence order.
func (g *Grammar) BlockRules() []string {
	var names []string
	for _, r := range g.block {
		names = append(names, r.name)
	}
	return names
}

// InlineRules returns the names of the inline rules in precedence order.
func (g *Grammar) InlineRules() []string {
	var names []string
	for _, r := range g.inline {
		names = append(names, r.name)
	}
	return names
}

func (g *Grammar) pedantic() bool { return g.dialect == Pedantic }
func (g *Grammar) gfm() bool      { return g.dialect == GFM || g.dialect == Breaks }

var grammars = struct {
	once [4]sync.Once
	g    [4]*Grammar
}{}

// GrammarFor returns the grammar for dialect d.
// Grammars are built once and shared.
func GrammarFor(d Dialect) (*Grammar, error) {
	var i int
	var build func() *Grammar
	switch d {
	case Normal, "":
		i, build = 0, normalGrammar
	case GFM:
		i, build = 1, gfmGrammar
	case Pedantic:
		i, build = 2, pedanticGrammar
	case Breaks:
		i, build = 3, breaksGrammar
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, string(d))
	}
	grammars.once[i].Do(func() { grammars.g[i] = build() })
	return grammars.g[i], nil
}

// matchTimeout bounds a single rule match.
const matchTimeout = 5 * time.Second

// compile compiles a rule pattern.
// The rules use JavaScript semantics: \d, \w and \b are ASCII-only,
// and a backreference to a group that did not participate matches empty.
func compile(expr string, opt regexp2.RegexOptions) *regexp2.Regexp {
	r := regexp2.MustCompile(expr, opt|regexp2.ECMAScript)
	r.MatchTimeout = matchTimeout
	return r
}

func re(expr string) *regexp2.Regexp {
	return compile(expr, regexp2.None)
}

func reFold(expr string) *regexp2.Regexp {
	return compile(expr, regexp2.IgnoreCase)
}

// Shared sub-patterns.
// Backquotes are written \x60 so that patterns can be raw strings.
const (
	pBullet    = `(?:[*+-]|[0-9]{1,9}\.)`
	pHR        = ` {0,3}((?:- *){3,}|(?:_ *){3,}|(?:\* *){3,})(?:\n+|\z)`
	pComment   = `<!--(?!-?>)[\s\S]*?-->`
	pDefLabel  = `(?!\s*\])(?:\\[\[\]]|[^\[\]])+`
	pDefTitle  = `(?:"(?:\\"?|[^"\\])*"|'[^'\n]*(?:\n[^'\n]+)*\n?'|\([^()]*\))`
	pDef       = ` {0,3}\[(` + pDefLabel + `)\]: *\n? *<?([^\s>]+)>?(?:(?: +\n? *| *\n *)(` + pDefTitle + `))? *(?:\n+|\z)`
	pLHeading  = `([^\n]+)\n {0,3}(=+|-+) *(?:\n+|\z)`
	pBlockAttr = ` +[a-zA-Z:_][\w.:-]*(?: *= *"[^"\n]*"| *= *'[^'\n]*'| *= *[^\s"'=<>\x60]+)?`

	pScheme    = `[a-zA-Z][a-zA-Z0-9+.-]{1,31}`
	pEmail     = `[a-zA-Z0-9.!#$%&'*+/=?^_\x60{|}~-]+(@)[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+(?![-_])`
	pExtEmail  = `[A-Za-z0-9._+-]+(@)[a-zA-Z0-9_-]+(?:\.[a-zA-Z0-9_-]*[a-zA-Z0-9])+(?![-_])`
	pAttribute = `\s+[a-zA-Z:_][\w.:-]*(?:\s*=\s*"[^"]*"|\s*=\s*'[^']*'|\s*=\s*[^\s"'=<>\x60]+)?`
	pLabel     = `(?:\[[^\[\]]*\]|\\.|\x60[^\x60]*\x60|[^\[\]\\\x60])*?`
	pHref      = `<(?:\\[<>]?|[^\s<>\\])*>|[^\s\x00-\x1f]*`
	pTitle     = `"(?:\\"?|[^"\\])*"|'(?:\\'?|[^'\\])*'|\((?:\\\)?|[^)\\])*\)`

	// Markdown punctuation without \x60 and ], which delimit code spans and links.
	pPunct = `!"#$%&'()*+,\-./:;<=>?@\[^_{|}~`

	// Characters that may start the user part of a bare email address.
	pEmailChar = `[a-zA-Z0-9.!#$%&'*+/=?_\x60{|}~-]`
)

// pBlockTags is the alternation of tag names that start an HTML block.
var pBlockTags = strings.Join(blockTags, "|")

// paragraphBody returns the pattern for a run of lines,
// each not starting one of the interrupting constructs.
func paragraphBody(interrupts ...string) string {
	return `[^\n]+(?:\n(?!` + strings.Join(interrupts, "|") + `)[^\n]+)*`
}

func normalInterrupts() []string {
	return []string{
		pHR,
		` {0,3}#{1,6} +`,
		pLHeading,
		` {0,3}>`,
		` {0,3}(?:\x60{3,}|~{3,})[^\x60\n]*\n`,
		` {0,3}(?:[*+-]|1[.)]) `,
		`</?(?:` + pBlockTags + `)(?: +|\n|/?>)|<(?:script|pre|style|!--)`,
	}
}

func blockquoteRule(para string) blockRule {
	return blockRule{"blockquote", re(`^( {0,3}> ?(` + para + `|[^\n]*)(?:\n|\z))+`), lexBlockquote}
}

func paragraphRule(para string) blockRule {
	return blockRule{"paragraph", re(`^(` + para + `)`), lexParagraph}
}

func normalBlock() []blockRule {
	para := paragraphBody(normalInterrupts()...)
	return []blockRule{
		{"newline", re(`^\n+`), lexNewline},
		{"code", re(`^( {4}[^\n]+\n*)+`), lexIndentedCode},
		{"fences", re(`^ {0,3}(\x60{3,}|~{3,})([^\x60~\n]*)\n(?:|([\s\S]*?)\n)(?: {0,3}\1[~\x60]* *(?:\n+|\z))`), lexFences},
		{"heading", re(`^ {0,3}(#{1,6}) +([^\n]*?)(?: +#+)? *(?:\n+|\z)`), lexHeading},
		{"hr", re(`^` + pHR), lexHR},
		blockquoteRule(para),
		{"list", re(`^( {0,3})(` + pBullet + `) [\s\S]+?(?:` +
			`\n+(?=\1?(?:(?:- *){3,}|(?:_ *){3,}|(?:\* *){3,})(?:\n+|\z))` +
			`|\n+(?=` + pDef + `)` +
			`|\n{2,}(?! )(?!\1` + pBullet + ` )\n*` +
			`|\s*\z)`), lexList},
		{"html", reFold(`^ {0,3}(?:` +
			`<(script|pre|style)[\s>][\s\S]*?(?:</\1>[^\n]*\n+|\z)` +
			`|` + pComment + `[^\n]*(\n+|\z)` +
			`|<\?[\s\S]*?\?>\n*` +
			`|<![A-Z][\s\S]*?>\n*` +
			`|<!\[CDATA\[[\s\S]*?\]\]>\n*` +
			`|</?(` + pBlockTags + `)(?: +|\n|/?>)[\s\S]*?(?:\n{2,}|\z)` +
			`|<(?!script|pre|style)([a-z][\w-]*)(?:` + pBlockAttr + `)*? */?>(?=[ \t]*(?:\n|\z))[\s\S]*?(?:\n{2,}|\z)` +
			`|</(?!script|pre|style)[a-z][\w-]*\s*>(?=[ \t]*(?:\n|\z))[\s\S]*?(?:\n{2,}|\z)` +
			`)`), lexHTML},
		{"def", re(`^` + pDef), lexDef},
		{"lheading", re(`^` + pLHeading), lexLHeading},
		paragraphRule(para),
		{"text", re(`^[^\n]+`), lexText},
	}
}

func normalInline() []inlineRule {
	return []inlineRule{
		{"escape", re(`^\\([!"#$%&'()*+,\-./:;<=>?@\[\]\\^_\x60{|}~])`), lexEscape},
		{"autolink", re(`^<(` + pScheme + `:[^\s\x00-\x1f<>]*|` + pEmail + `)>`), lexAutolink},
		{"tag", re(`^(?:` + pComment +
			`|</[a-zA-Z][\w:-]*\s*>` +
			`|<[a-zA-Z][\w-]*(?:` + pAttribute + `)*?\s*/?>` +
			`|<\?[\s\S]*?\?>` +
			`|<![a-zA-Z]+\s[\s\S]*?>` +
			`|<!\[CDATA\[[\s\S]*?\]\]>)`), lexTag},
		{"link", re(`^!?\[(` + pLabel + `)\]\(\s*(` + pHref + `)(?:\s+(` + pTitle + `))?\s*\)`), lexLink},
		{"reflink", re(`^!?\[(` + pLabel + `)\]\[(?!\s*\])((?:\\[\[\]]?|[^\[\]\\])+)\]`), lexRefLink},
		{"nolink", re(`^!?\[(?!\s*\])((?:\[[^\[\]]*\]|\\[\[\]]|[^\[\]])*)\](?:\[\])?`), lexRefLink},
		{"strong", re(`^(?:__([^\s_])__(?!_)` +
			`|\*\*([^\s*])\*\*(?!\*)` +
			`|__([^\s][\s\S]*?[^\s])__(?!_)` +
			`|\*\*([^\s][\s\S]*?[^\s])\*\*(?!\*))`), lexStrong},
		{"em", re(`^(?:_([^\s_])_(?!_)` +
			`|\*([^\s*<\[])\*(?!\*)` +
			`|_([^\s<][\s\S]*?[^\s_])_(?!_|[^\s` + pPunct + `])` +
			`|_([^\s_<][\s\S]*?[^\s])_(?!_|[^\s` + pPunct + `])` +
			`|\*([^\s<"][\s\S]*?[^\s\*])\*(?!\*|[^\s` + pPunct + `])` +
			`|\*([^\s*"<\[][\s\S]*?[^\s])\*(?!\*))`), lexEm},
		{"code", re(`^(\x60+)([^\x60]|[^\x60][\s\S]*?[^\x60])\1(?!\x60)`), lexCodespan},
		{"br", re(`^( {2,}|\\)\n(?!\s*\z)`), lexBr},
		{"text", re(`^(\x60+|[^\x60])(?:[\s\S]*?(?:(?=[\\<!\[\x60*]|\b_|\z)|[^ ](?= {2,}\n))|(?= {2,}\n))`), lexInlineText},
	}
}

func normalGrammar() *Grammar {
	return &Grammar{dialect: Normal, block: normalBlock(), inline: normalInline()}
}

// gfmTextRule returns the GFM text rule.
// It also stops before a bare URL or email address.
// Breaks relaxes the hard break lookahead, passed as br.
func gfmTextRule(br string) inlineRule {
	stop := `\b_|https?://|ftp://|www\.|\z`
	if br == " *" {
		stop = `\b_| *\n|https?://|ftp://|www\.|\z`
	}
	return inlineRule{"text", re(`^(\x60+|[^\x60])(?:[\s\S]*?(?:(?=[\\<!\[\x60*~]|` + stop + `)` +
		`|[^ ](?=` + br + `\n)` +
		`|[^a-zA-Z0-9.!#$%&'*+/=?_\x60{|}~-](?=` + pEmailChar + `+@))` +
		`|(?=` + br + `\n|` + pEmailChar + `+@))`), lexInlineText}
}

func gfmGrammar() *Grammar {
	g := normalGrammar()
	g.dialect = GFM
	g.block = insertRule(g.block, "hr", blockRule{"nptable",
		re(`^ *([^|\n ].*\|.*)\n *([-:]+ *\|[-| :]*)(?:\n((?:.*[^>\n ].*(?:\n|\z))*)\n*|\z)`), lexNPTable})
	g.block = insertRule(g.block, "lheading", blockRule{"table",
		re(`^ *\|(.+)\n *\|?( *[-:]+[-| :]*)(?:\n((?: *[^>\n ].*(?:\n|\z))*)\n*|\z)`), lexTable})

	g.inline = insertRule(g.inline, "link", inlineRule{"url",
		reFold(`^(?:((?:ftp|https?)://|www\.)(?:[a-zA-Z0-9\-]+\.?)+[^\s<]*|` + pExtEmail + `)`), lexURL})
	g.inline = insertRule(g.inline, "text", inlineRule{"del", re(`^~+(?=\S)([\s\S]*?\S)~+`), lexDel})
	g.inline = replaceRule(g.inline, gfmTextRule(` {2,}`))
	return g
}

func breaksGrammar() *Grammar {
	g := gfmGrammar()
	g.dialect = Breaks
	g.inline = replaceRule(g.inline, inlineRule{"br", re(`^( *|\\)\n(?!\s*\z)`), lexBr})
	g.inline = replaceRule(g.inline, gfmTextRule(` *`))
	return g
}

// pPedanticTag matches a tag name that starts a pedantic HTML block:
// any name except the common inline elements.
const pPedanticTag = `(?!(?:a|em|strong|small|s|cite|q|dfn|abbr|data|time|code|var|samp|kbd|sub|sup|i|b|u|mark|ruby|rt|rp|bdi|bdo|span|br|wbr|ins|del|img)\b)\w+(?!:|[^\w\s@]*@)\b`

func pedanticGrammar() *Grammar {
	g := normalGrammar()
	g.dialect = Pedantic

	para := paragraphBody(pHR, ` *#{1,6} *[^\n]`, ` {0,3}>`)
	g.block = removeRule(g.block, "fences")
	g.block = replaceRule(g.block, blockRule{"heading", re(`^ *(#{1,6}) *([^\n]+?) *(?:#+ *)?(?:\n+|\z)`), lexHeading})
	g.block = replaceRule(g.block, blockquoteRule(para))
	g.block = replaceRule(g.block, blockRule{"html", re(`^ *(?:` + pComment + ` *(?:\n|\s*\z)` +
		`|<(` + pPedanticTag + `)[\s\S]+?</\1> *(?:\n{2,}|\s*\z)` +
		`|<` + pPedanticTag + `(?:"[^"]*"|'[^']*'|\s[^'"/>\s]*)*?/?> *(?:\n{2,}|\s*\z))`), lexHTML})
	g.block = replaceRule(g.block, blockRule{"def", re(`^ *\[([^\]]+)\]: *<?([^\s>]+)>?(?: +(["(][^\n]+[")]))? *(?:\n+|\z)`), lexDef})
	g.block = replaceRule(g.block, paragraphRule(para))

	g.inline = replaceRule(g.inline, inlineRule{"link", re(`^!?\[(` + pLabel + `)\]\((.*?)\)`), lexLink})
	g.inline = replaceRule(g.inline, inlineRule{"reflink", re(`^!?\[(` + pLabel + `)\]\s*\[([^\]]*)\]`), lexRefLink})
	g.inline = replaceRule(g.inline, inlineRule{"strong", re(`^(?:__(?=\S)([\s\S]*?\S)__(?!_)|\*\*(?=\S)([\s\S]*?\S)\*\*(?!\*))`), lexStrong})
	g.inline = replaceRule(g.inline, inlineRule{"em", re(`^(?:_(?=\S)([\s\S]*?\S)_(?!_)|\*(?=\S)([\s\S]*?\S)\*(?!\*))`), lexEm})
	return g
}
