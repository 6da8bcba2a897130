package comparator

import (
	"testing"

	"github.com/cwbudde/go-srcfind/internal/options"
	"github.com/cwbudde/go-srcfind/pkg/location"
	"github.com/cwbudde/go-srcfind/pkg/token"
)

func ident(v string) token.Token { return token.New(token.Identifier, v, location.New(0, 0)) }
func code(v string) token.Token  { return token.New(token.Code, v, location.New(0, 0)) }

func TestIdentifierCaseFold(t *testing.T) {
	if !Equal(ident("Foo"), ident("foo"), options.Default()) {
		t.Fatal("expected case-insensitive identifier match")
	}
}

func TestSnakeCamelAlternative(t *testing.T) {
	a := ident("my_value")
	a.Alternative = "myValue"
	b := ident("myValue")
	if !Equal(a, b, options.Default()) {
		t.Fatal("expected snake/camel alternative to match")
	}
}

func TestFloatDoubleEquivalence(t *testing.T) {
	if !Equal(ident("float"), ident("double"), options.Default()) {
		t.Fatal("expected float/double to be equivalent")
	}
}

func TestClassStructTypenameEquivalence(t *testing.T) {
	if !Equal(ident("class"), ident("struct"), options.Default()) {
		t.Fatal("expected class/struct to be equivalent")
	}
}

func TestNumericIntFloatEquivalence(t *testing.T) {
	intTok := token.Token{Kind: token.Numeric, Integer: 5}
	floatTok := token.Token{Kind: token.Numeric, Integer: 5, Decimal: 0, IsDecimal: true}
	if !Equal(intTok, floatTok, options.Default()) {
		t.Fatal("expected 5 == 5.0 under MatchFloatsAndInts")
	}
	opts := options.Default()
	opts.MatchFloatsAndInts = false
	if Equal(intTok, floatTok, opts) {
		t.Fatal("expected mismatch when MatchFloatsAndInts is off")
	}
}

// TestNumericEqualityFallsThroughWhenNumbersOff reproduces agsearch.cpp's
// compare_tokens control flow: the `numbers` option only gates the
// arithmetic equality check, so two numeric tokens whose literal text
// matches still compare equal by falling through to a value comparison,
// rather than short-circuiting to false outright.
func TestNumericEqualityFallsThroughWhenNumbersOff(t *testing.T) {
	opts := options.Default()
	opts.Numbers = false

	a := token.Token{Kind: token.Numeric, Value: "42", Integer: 42}
	b := token.Token{Kind: token.Numeric, Value: "42", Integer: 42}
	if !Equal(a, b, opts) {
		t.Fatal("expected textually identical numeric literals to match even with numbers off")
	}

	c := token.Token{Kind: token.Numeric, Value: "7", Integer: 7}
	if Equal(a, c, opts) {
		t.Fatal("expected distinct numeric literals not to match with numbers off")
	}
}

func TestConditionalColonMatchesElse(t *testing.T) {
	colon := code(":")
	colon.OptAltSpellingAllowed = true
	elseTok := ident("else")
	if !Equal(colon, elseTok, options.Default()) {
		t.Fatal("expected tagged ':' to equal 'else' under MatchIfsAndConditional")
	}
}

func TestUntaggedColonDoesNotMatchElse(t *testing.T) {
	colon := code(":")
	elseTok := ident("else")
	if Equal(colon, elseTok, options.Default()) {
		t.Fatal("expected untagged ':' to never equal 'else'")
	}
}

func TestCodeExactMatch(t *testing.T) {
	if !Equal(code("&&"), code("&&"), options.Default()) {
		t.Fatal("expected identical code tokens to match")
	}
	if Equal(code("&&"), code("||"), options.Default()) {
		t.Fatal("expected distinct operators not to match")
	}
}

func TestCompareBoundaryReportsOriginalOffsets(t *testing.T) {
	h := token.New(token.String, `"hello world"`, location.New(0, 0))
	n := token.New(token.String, `world"`, location.New(0, 0))
	equal, offset, length := CompareBoundary(h, n, options.Default(), true, true)
	if !equal {
		t.Fatal("expected substring match")
	}
	if h.Value[offset:offset+length] != `world"` {
		t.Errorf("got slice %q", h.Value[offset:offset+length])
	}
}

func TestIdentifierNeedleMatchesAnywhereUnderNonOrthogonal(t *testing.T) {
	num := token.Token{Kind: token.Numeric, Value: "5", Integer: 5}
	id := ident("5")
	if !Equal(num, id, options.Default()) {
		t.Fatal("expected non-orthogonal plain identifier needle to match a numeric haystack token by folded value")
	}
}

func TestStringNeedleRequiresStringHaystackKind(t *testing.T) {
	codeTok := code("foo")
	strNeedle := token.New(token.String, `"foo"`, location.New(0, 0))
	if Equal(codeTok, strNeedle, options.Default()) {
		t.Fatal("expected a String needle to never match a non-String haystack token")
	}
}
