package lexer

import "github.com/cwbudde/go-srcfind/internal/options"

// multiCharOperators is the fixed list from spec.md §4.1, ordered so that
// longer spellings are tried before their prefixes (checked via
// matchOperator below, which always prefers the longest match).
var multiCharOperators = []string{
	"<<=", ">>=", "<=>",
	"::", "...", "->*", "->", ".*", "==", "!=", "<=", ">=",
	"++", "--", "<<", ">>",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"&&", "||",
}

// matchOperator finds the longest multi-character operator starting at
// runes[i], returning it and its rune length, or ("", 0) if none matches.
func matchOperator(runes []rune, i int) (string, int) {
	best := ""
	for _, op := range multiCharOperators {
		opRunes := []rune(op)
		if len(opRunes) <= len(best) {
			continue
		}
		if i+len(opRunes) > len(runes) {
			continue
		}
		match := true
		for k, r := range opRunes {
			if runes[i+k] != r {
				match = false
				break
			}
		}
		if match {
			best = op
		}
	}
	return best, len([]rune(best))
}

// digraphs maps a C digraph spelling to the punctuator it stands for.
var digraphs = map[string]string{
	"<%": "{", "%>": "}", "<:": "[", ":>": "]", "%:": "#",
}

// trigraphs maps a C trigraph spelling to the punctuator it stands for.
var trigraphs = map[string]string{
	"??<": "{", "??>": "}", "??(": "[", "??)": "]", "??=": "#",
	"??/": "\\", "??'": "^", "??!": "|", "??-": "~",
}

// iso646Alternatives maps an ISO-646 alternative spelling identifier to its
// symbolic code token.
var iso646Alternatives = map[string]string{
	"and": "&&", "and_eq": "&=", "bitand": "&",
	"or": "||", "or_eq": "|=", "bitor": "|",
	"xor": "^", "xor_eq": "^=", "compl": "~",
	"not": "!", "not_eq": "!=",
}

// elisionSet names a single-character punctuator that an ignore_all_* (or
// ignore_trailing_*) option may elide without emitting a token.
type elisionSet struct {
	ch      rune
	enabled func(o *options.Options) bool
}

// elidable lists the punctuators spec.md §4.1 allows ignore_all_* to elide
// unconditionally (parentheses, brackets, braces, commas, semicolons).
var elidable = []elisionSet{
	{'(', func(o *options.Options) bool { return o.IgnoreAllSyntacticTokens || o.IgnoreAllParentheses }},
	{')', func(o *options.Options) bool { return o.IgnoreAllSyntacticTokens || o.IgnoreAllParentheses }},
	{'[', func(o *options.Options) bool { return o.IgnoreAllSyntacticTokens || o.IgnoreAllBrackets }},
	{']', func(o *options.Options) bool { return o.IgnoreAllSyntacticTokens || o.IgnoreAllBrackets }},
	{'{', func(o *options.Options) bool { return o.IgnoreAllSyntacticTokens || o.IgnoreAllBraces }},
	{'}', func(o *options.Options) bool { return o.IgnoreAllSyntacticTokens || o.IgnoreAllBraces }},
	{',', func(o *options.Options) bool { return o.IgnoreAllSyntacticTokens || o.IgnoreAllCommas }},
	{';', func(o *options.Options) bool { return o.IgnoreAllSyntacticTokens || o.IgnoreAllSemicolons }},
}

// isElided reports whether ch should be elided (column advanced, no token
// emitted) under the current options. atLineEnd additionally allows the
// ignore_trailing_{semicolons,commas} flags, which only apply to a trailing
// ',' or ';' — i.e. one that is the last character of the line, or one
// immediately followed by a character that an ignore_all_* option elides.
func isElided(ch rune, o *options.Options, atLineEnd bool) bool {
	for _, e := range elidable {
		if e.ch == ch && e.enabled(o) {
			return true
		}
	}
	if atLineEnd {
		if ch == ';' && o.IgnoreTrailingSemicolons {
			return true
		}
		if ch == ',' && o.IgnoreTrailingCommas {
			return true
		}
	}
	return false
}
