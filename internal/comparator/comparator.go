// Package comparator implements spec.md §4.3: the token-equivalence
// algorithm the matcher uses to decide whether one haystack token and one
// needle token denote "the same thing", independent of coding style.
package comparator

import (
	"github.com/cwbudde/go-srcfind/internal/fold"
	"github.com/cwbudde/go-srcfind/internal/options"
	"github.com/cwbudde/go-srcfind/pkg/token"
)

// Alternative-spelling sets, each gated by its option: if both tokens'
// values fall in the same set, they are equal. The keyword sets apply to
// two Identifier tokens (keywordTableEqual); ifQuestion applies to a Code
// token paired with an Identifier token (alternativeSpellingEqual).
var (
	classStructTypename = map[string]bool{"class": true, "struct": true, "typename": true}
	floatDouble         = map[string]bool{"float": true, "double": true}
	usingTypedef        = map[string]bool{"using": true, "typedef": true}
	ifQuestion          = map[string]bool{"if": true, "?": true}
)

// Equal reports whether a (haystack) and b (needle) denote equivalent
// tokens under opts, per the rule order in spec.md §4.3. It is what the
// matcher uses at every interior position of a candidate match, where no
// partial/offset information is needed.
func Equal(a, b token.Token, opts *options.Options) bool {
	eq, _, _, _ := compare(a, b, opts, false, false)
	return eq
}

// CompareBoundary is Equal plus optional partial-match offset/length
// reporting as byte positions into a.Value, used by the matcher for the first and
// last token of a candidate match. wantOffset/wantLength mirror the
// `first`/`last` out-params of spec.md §4.3: pass wantOffset for the
// first needle token, wantLength for the last.
func CompareBoundary(a, b token.Token, opts *options.Options, wantOffset, wantLength bool) (equal bool, offset, length int) {
	eq, off, length2, ok := compare(a, b, opts, wantOffset, wantLength)
	if !ok {
		return eq, 0, 0
	}
	return eq, off, length2
}

// compare implements the full §4.3 rule order. hasOffsets reports whether
// a partial-match offset/length was computed (only for comparisons that go
// through valueEqual — Identifier, String, Comment, and the Numeric
// literal-text fallback — in non-whole_words mode).
func compare(a, b token.Token, opts *options.Options, wantOffset, wantLength bool) (equal bool, offset, length int, hasOffsets bool) {
	// 1. Numeric equality, gated on the `numbers` option itself. Per
	// agsearch.cpp's compare_tokens (the `numbers`-gated arithmetic check
	// is nested inside the outer function, not an early return), failing
	// or skipping the arithmetic check falls through to a plain value
	// comparison of the literal text instead of failing outright — so
	// `numbers=false` still lets two textually identical numeric literals
	// ("42" vs "42") match.
	if a.Kind == token.Numeric && b.Kind == token.Numeric {
		if opts.Numbers && numericEqual(a, b, opts) {
			return true, 0, 0, false
		}
		eq, off, ln, has := valueEqual(a, b, opts, opts.CaseInsensitiveNumbers, false, wantOffset, wantLength)
		return eq, off, ln, has
	}

	// 2. Code fast path, with the rule-7 always-active/optional
	// alternative-spelling tables as the sole exception for a token pair
	// where exactly one side is Code.
	if a.Kind == token.Code && b.Kind == token.Code {
		return a.Value == b.Value, 0, 0, false
	}
	if a.Kind == token.Code || b.Kind == token.Code {
		return alternativeSpellingEqual(a, b, opts), 0, 0, false
	}

	// 3. Kind gating for the remaining (non-Code) combinations.
	if a.Kind != b.Kind {
		if !crossKindAllowed(a, b, opts) {
			return false, 0, 0, false
		}
		f := fold.Flags{CaseInsensitive: opts.CaseInsensitiveIdentifiers, FoldDiacritics: opts.FoldDiacriticsIdentifiers}
		return fold.WholeEqual(a.Value, b.Value, f), 0, 0, false
	}

	switch a.Kind {
	case token.Identifier:
		eq, off, ln, has := valueEqual(a, b, opts, opts.CaseInsensitiveIdentifiers, opts.FoldDiacriticsIdentifiers, wantOffset, wantLength)
		if !eq {
			eq = keywordTableEqual(a, b, opts)
		}
		return eq, off, ln, has
	case token.String:
		return valueEqual(a, b, opts, opts.CaseInsensitiveStrings, opts.FoldDiacriticsStrings, wantOffset, wantLength)
	case token.Comment:
		return valueEqual(a, b, opts, opts.CaseInsensitiveComments, opts.FoldDiacriticsComments, wantOffset, wantLength)
	default:
		return false, 0, 0, false
	}
}

// numericEqual compares two Numeric tokens. When MatchFloatsAndInts is
// set, an integer literal and a float literal with the same arithmetic
// value are equal (5 == 5.0); otherwise IsDecimal must also match.
func numericEqual(a, b token.Token, opts *options.Options) bool {
	if a.IsDecimal != b.IsDecimal && !opts.MatchFloatsAndInts {
		return false
	}
	av := float64(a.Integer) + a.Decimal
	bv := float64(b.Integer) + b.Decimal
	return av == bv
}

// alternativeSpellingEqual handles the one family of cross-kind matches
// spec.md allows between a Code token and a non-Code token: the
// always-active {"if","?"} pair, and the {"else",":"} pair, the latter
// gated on the ':' having been tagged OptAltSpellingAllowed by the
// normalizer (i.e. it closed a ternary, not a label or bit-field width).
func alternativeSpellingEqual(a, b token.Token, opts *options.Options) bool {
	if !opts.MatchIfsAndConditional {
		return false
	}
	code, other := a, b
	if code.Kind != token.Code {
		code, other = b, a
	}
	if other.Kind != token.Identifier {
		return false
	}
	if ifQuestion[code.Value] && ifQuestion[other.Value] {
		return true
	}
	if code.Value == ":" && other.Value == "else" && code.OptAltSpellingAllowed {
		return true
	}
	return false
}

// crossKindAllowed implements step 3's kind-gating rule for the
// combinations not already resolved by the numeric or code fast paths.
func crossKindAllowed(a, b token.Token, opts *options.Options) bool {
	if opts.Orthogonal {
		// Numeric and Identifier are interchangeable; everything else
		// cross-category fails.
		return isNumericOrIdentifier(a.Kind) && isNumericOrIdentifier(b.Kind)
	}
	// Non-orthogonal: a needle token explicitly of kind String or Comment
	// must be matched by the same haystack kind. Anything else (the
	// needle is Identifier or Numeric) is an unrestricted "plain query",
	// free to match a haystack token of any remaining kind.
	if b.Kind == token.String || b.Kind == token.Comment {
		return false
	}
	return true
}

func isNumericOrIdentifier(k token.Kind) bool {
	return k == token.Numeric || k == token.Identifier
}

// valueEqual implements §4.3 steps 5-6 uniformly for whichever kind a/b
// share: compare a.Value against b.Value under whole_words /
// individual_partial_words / default-substring semantics (step 5), then,
// if that fails, MatchSnakeAndCamelCasing is set, and either side carries
// a non-empty Alternative (the
// normalizer's camelCase spelling of a snake_case value — set on
// identifier, string, and comment tokens alike), retry across every
// non-empty (value, alternative) pairing in order, first match wins
// (step 6).
func valueEqual(a, b token.Token, opts *options.Options, caseInsensitive, foldDiacritics bool, wantOffset, wantLength bool) (equal bool, offset, length int, hasOffsets bool) {
	f := fold.Flags{CaseInsensitive: caseInsensitive, FoldDiacritics: foldDiacritics}

	try := func(av, bv string) (bool, int, int, bool) {
		if opts.WholeWords {
			return fold.WholeEqual(av, bv, f), 0, 0, false
		}
		off, ln, ok := fold.Find(av, bv, f)
		if !ok {
			return false, 0, 0, false
		}
		if opts.IndividualPartialWords || wantOffset || wantLength {
			return true, off, ln, true
		}
		return true, 0, 0, false
	}

	if eq, off, ln, has := try(a.Value, b.Value); eq {
		return eq, off, ln, has
	}
	if !opts.MatchSnakeAndCamelCasing {
		return false, 0, 0, false
	}
	if a.Alternative != "" {
		if eq, off, ln, has := try(a.Alternative, b.Value); eq {
			return eq, off, ln, has
		}
	}
	if b.Alternative != "" {
		if eq, off, ln, has := try(a.Value, b.Alternative); eq {
			return eq, off, ln, has
		}
	}
	if a.Alternative != "" && b.Alternative != "" {
		if eq, off, ln, has := try(a.Alternative, b.Alternative); eq {
			return eq, off, ln, has
		}
	}
	return false, 0, 0, false
}

// keywordTableEqual applies the always-active identifier-only
// alternative-spelling tables (class/struct/typename, float/double,
// using/typedef) when the plain value/alternative comparison in
// valueEqual did not already settle the match.
func keywordTableEqual(a, b token.Token, opts *options.Options) bool {
	if opts.MatchClassStructTypename && classStructTypename[a.Value] && classStructTypename[b.Value] {
		return true
	}
	if opts.MatchFloatAndDoubleDecl && floatDouble[a.Value] && floatDouble[b.Value] {
		return true
	}
	if opts.MatchUsingAndTypedef && usingTypedef[a.Value] && usingTypedef[b.Value] {
		return true
	}
	return false
}
