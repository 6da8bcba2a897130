package lexer

import (
	"testing"

	"github.com/cwbudde/go-srcfind/internal/options"
	"github.com/cwbudde/go-srcfind/pkg/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func values(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Value
	}
	return out
}

func TestTokenizeIdentifiersAndOperators(t *testing.T) {
	l := New(options.Default())
	toks := l.Append(`x += 1;`)
	got := values(toks)
	want := []string{"x", "+=", "1", ";"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestIgnoreAllSemicolonsElidesTrailingSemicolon(t *testing.T) {
	opts := options.Default().Apply()
	opts.IgnoreAllSyntacticTokens = false
	opts.IgnoreAllSemicolons = true
	l := New(opts)
	toks := l.Append(`x;`)
	for _, tok := range toks {
		if tok.Value == ";" {
			t.Fatalf("expected ';' to be elided, got tokens %v", values(toks))
		}
	}
}

func TestStringLiteralWithPrefixPopsStringType(t *testing.T) {
	l := New(options.Default())
	toks := l.Append(`L"hello"`)
	if len(toks) != 1 {
		t.Fatalf("expected a single string token, got %v", toks)
	}
	if toks[0].Kind != token.String {
		t.Fatalf("expected String kind, got %v", toks[0].Kind)
	}
	if toks[0].StringType != 'L' {
		t.Fatalf("expected StringType 'L', got %q", toks[0].StringType)
	}
}

func TestBlockCommentSpansAppendCalls(t *testing.T) {
	l := New(options.Default())
	first := l.Append(`/* start`)
	if len(first) != 1 || first[0].Kind != token.Comment {
		t.Fatalf("expected one open comment token, got %v", first)
	}
	if l.State().Mode != ModeComment {
		t.Fatalf("expected lexer to remain in comment mode")
	}
	second := l.Append(`still going */ x`)
	gotKinds := kinds(second)
	if len(gotKinds) != 2 || gotKinds[0] != token.Comment || gotKinds[1] != token.Identifier {
		t.Fatalf("unexpected continuation tokens: %v", values(second))
	}
	if l.State().Mode != ModeCode {
		t.Fatalf("expected lexer to return to code mode after comment closes")
	}
}

func TestNullptrIsZeroProducesNumericAlternative(t *testing.T) {
	l := New(options.Default())
	toks := l.Append(`nullptr`)
	if len(toks) != 1 || toks[0].Kind != token.Numeric {
		t.Fatalf("expected a single numeric token, got %v", toks)
	}
	if toks[0].Alternative != "0" {
		t.Errorf("expected alternative \"0\", got %q", toks[0].Alternative)
	}
}

func TestNULLMacroAlsoTreatedAsZero(t *testing.T) {
	l := New(options.Default())
	toks := l.Append(`NULL`)
	if len(toks) != 1 || toks[0].Kind != token.Numeric || toks[0].Integer != 0 {
		t.Fatalf("expected NULL to lex as numeric 0, got %v", toks)
	}
}

func TestBooleanIsIntegerAlternative(t *testing.T) {
	l := New(options.Default())
	toks := l.Append(`true false`)
	if len(toks) != 2 {
		t.Fatalf("expected two tokens, got %v", toks)
	}
	if toks[0].Integer != 1 || toks[0].Alternative != "1" {
		t.Errorf("expected true -> 1, got integer=%d alt=%q", toks[0].Integer, toks[0].Alternative)
	}
	if toks[1].Integer != 0 || toks[1].Alternative != "0" {
		t.Errorf("expected false -> 0, got integer=%d alt=%q", toks[1].Integer, toks[1].Alternative)
	}
}

func TestUndecorateCommentStripsDelimiters(t *testing.T) {
	l := New(options.Default())
	toks := l.Append(`// hello`)
	if len(toks) != 1 || toks[0].Value != "hello" {
		t.Fatalf("expected undecorated comment body, got %v", toks)
	}
}

func TestISO646AlternativeSpelling(t *testing.T) {
	l := New(options.Default())
	toks := l.Append(`a and b`)
	found := false
	for _, tok := range toks {
		if tok.Value == "&&" && tok.Alternative == "and" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 'and' to lex as '&&' with alternative 'and', got %v", toks)
	}
}

func TestNumericLiteralHexWithSuffix(t *testing.T) {
	l := New(options.Default())
	toks := l.Append(`0xFFu`)
	if len(toks) != 1 || toks[0].Kind != token.Numeric {
		t.Fatalf("expected one numeric token, got %v", toks)
	}
	if toks[0].Integer != 255 {
		t.Errorf("expected integer 255, got %d", toks[0].Integer)
	}
}

func TestNumericLiteralFloatWithExponent(t *testing.T) {
	l := New(options.Default())
	toks := l.Append(`1.5e2`)
	if len(toks) != 1 || !toks[0].IsDecimal {
		t.Fatalf("expected a decimal numeric token, got %v", toks)
	}
	if toks[0].Integer != 150 {
		t.Errorf("expected integer part 150, got %d", toks[0].Integer)
	}
}
