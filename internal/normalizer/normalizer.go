// Package normalizer implements spec.md §4.2: token-level rewrites applied
// after lexing and before matching. It tags ternary-conditional ':' tokens
// as else-equivalent, and computes a camelCase Alternative spelling for
// snake_case identifiers, so the comparator can treat either style-choice
// pair as equal without the matcher needing to know about coding style at
// all.
package normalizer

import (
	"strings"
	"unicode"

	"github.com/cwbudde/go-srcfind/internal/options"
	"github.com/cwbudde/go-srcfind/pkg/token"
)

// Normalize returns a copy of tokens with the normalizer's rewrites
// applied according to opts. The input slice is never mutated.
func Normalize(tokens []token.Token, opts *options.Options) []token.Token {
	out := make([]token.Token, len(tokens))
	copy(out, tokens)

	if opts.MatchIfsAndConditional {
		tagConditionalColons(out)
	}
	if opts.IgnoreAcceleratorHintsInStrings {
		for i := range out {
			if out[i].Kind == token.String {
				out[i].Value = stripAcceleratorHints(out[i].Value)
			}
		}
	}
	if opts.MatchSnakeAndCamelCasing {
		for i := range out {
			switch out[i].Kind {
			case token.Identifier, token.String, token.Comment:
				if alt, ok := snakeToCamel(out[i].Value); ok {
					out[i].Alternative = alt
				}
			}
		}
	}
	return out
}

// stripAcceleratorHints removes GUI accelerator markers from string literal
// contents: "&&" is un-escaped to a literal "&", and any remaining lone "&"
// (the accelerator marker itself) is dropped.
func stripAcceleratorHints(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '&' {
			if i+1 < len(runes) && runes[i+1] == '&' {
				b.WriteRune('&')
				i++
				continue
			}
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// tagConditionalColons walks a token stream tracking unmatched '?'
// punctuators and sets OptAltSpellingAllowed on every ':' that closes one,
// i.e. every ':' that is the alternative-clause separator of a ternary
// expression rather than a label, bit-field width, or scope operator.
func tagConditionalColons(tokens []token.Token) {
	depth := 0
	for i := range tokens {
		if tokens[i].Kind != token.Code {
			continue
		}
		switch tokens[i].Value {
		case "?":
			depth++
		case ":":
			if depth > 0 {
				depth--
				tokens[i].OptAltSpellingAllowed = true
			}
		}
	}
}

// snakeToCamel computes the camelCase spelling of a snake_case identifier,
// keeping any leading and trailing underscores as they are.
// ok is false when name contains no underscore between word characters,
// i.e. when there is no useful alternative to offer.
func snakeToCamel(name string) (alt string, ok bool) {
	core := strings.Trim(name, "_")
	if !strings.Contains(core, "_") {
		return "", false
	}
	lead := name[:len(name)-len(strings.TrimLeft(name, "_"))]
	trail := name[len(strings.TrimRight(name, "_")):]
	parts := strings.Split(core, "_")
	var b strings.Builder
	b.WriteString(lead)
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 {
			b.WriteString(part)
			continue
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	b.WriteString(trail)
	alt = b.String()
	if alt == name {
		return "", false
	}
	return alt, true
}
