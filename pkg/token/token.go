// Package token defines the classified token produced by the lexer and
// consumed by the normalizer, comparator, and matcher.
package token

import "github.com/cwbudde/go-srcfind/pkg/location"

// Kind is the tagged variant of a token's lexical category.
type Kind int

const (
	// Code is an operator or punctuation token: a single character or a
	// multi-character spelling such as "::", "->*", "<<=".
	Code Kind = iota
	// String is the (further tokenized) contents inside "..." or '...'.
	String
	// Comment is the (further tokenized) contents inside /*...*/ or // to
	// end of line.
	Comment
	// Identifier is an alphanumeric/underscore run starting with a letter
	// or underscore.
	Identifier
	// Numeric is an integer or floating-point literal.
	Numeric
)

func (k Kind) String() string {
	switch k {
	case Code:
		return "code"
	case String:
		return "string"
	case Comment:
		return "comment"
	case Identifier:
		return "identifier"
	case Numeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// Token is one classified run of source text.
type Token struct {
	// Location is the token's starting position in the original source.
	Location location.Location
	// Length is the token's original span, in code units, in the source.
	Length uint32

	Kind Kind

	// Value is the token's normalized text (possibly case/diacritic
	// folded by the lexer).
	Value string
	// Alternative is an optional normalized alternative spelling — e.g.
	// the camelCase form of a snake_case identifier. Empty when absent.
	Alternative string

	// StringType is the prefix letter of an adjacent string/char literal
	// (0, 'L', 'u', 'U', '8', or 'R'), consumed off a preceding one-letter
	// identifier token. Non-zero only when Kind == String.
	StringType rune

	// Integer, Decimal, and IsDecimal hold the parsed value of a Numeric
	// token. IsDecimal is true when the literal carried a fractional or
	// exponent part.
	Integer   uint64
	Decimal   float64
	IsDecimal bool

	// OptAltSpellingAllowed is set by the normalizer on ':' tokens that
	// may equate to "else" under match_ifs_and_conditional.
	OptAltSpellingAllowed bool
}

// New constructs a Token with the given kind, value, and location. Length
// defaults to the rune count of value; callers that know the original
// source span should set Length explicitly afterward.
func New(kind Kind, value string, loc location.Location) Token {
	return Token{
		Location: loc,
		Length:   uint32(len([]rune(value))),
		Kind:     kind,
		Value:    value,
	}
}

// End returns the location one past the last code unit of the token, i.e.
// Location with Column advanced by Length.
func (t Token) End() location.Location {
	return location.New(t.Location.Row, t.Location.Column+t.Length)
}

// HasAlternative reports whether the token carries a non-empty alternative
// spelling.
func (t Token) HasAlternative() bool {
	return t.Alternative != ""
}
