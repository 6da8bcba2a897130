// Package lexer implements the first pipeline stage from spec.md §4.1: a
// line-by-line tokenizer that classifies source text into Code, String,
// Comment, Identifier, and Numeric tokens while carrying enough state
// across calls to handle block comments and other cross-line constructs.
package lexer

import (
	"strings"

	"github.com/cwbudde/go-srcfind/internal/fold"
	"github.com/cwbudde/go-srcfind/internal/options"
	"github.com/cwbudde/go-srcfind/pkg/location"
	"github.com/cwbudde/go-srcfind/pkg/token"
)

// Lexer tokenizes source text line by line, the way Replace/Append on an
// editor buffer deliver one changed line at a time. State crosses calls so
// a block comment or literal opened on one line is recognized as still
// open when the next line arrives.
type Lexer struct {
	opts  *options.Options
	state State
}

// New returns a Lexer configured by opts. A nil opts uses options.Default().
func New(opts *options.Options) *Lexer {
	if opts == nil {
		opts = options.Default()
	}
	return &Lexer{opts: opts, state: initialState()}
}

// Reset clears cross-line state, as if the lexer had just been constructed.
func (l *Lexer) Reset() {
	l.state = initialState()
}

// State returns the lexer's current cross-line state.
func (l *Lexer) State() State {
	return l.state
}

// SetState overrides the lexer's cross-line state.
func (l *Lexer) SetState(s State) {
	l.state = s
}

// Append tokenizes text, which may contain one or more '\n'-separated
// lines, advancing Row for each line in turn.
func (l *Lexer) Append(text string) []token.Token {
	lines := strings.Split(text, "\n")
	var out []token.Token
	for i, raw := range lines {
		toks := l.tokenizeLine(raw)
		out = append(out, toks...)
		if i < len(lines)-1 {
			l.state.Row++
		}
	}
	return out
}

// AppendLine tokenizes exactly one line and advances Row afterward,
// matching the one-row-per-call shape an editor buffer delivers (used by
// pkg/srcsearch.Session when replaying whole buffers line by line).
func (l *Lexer) AppendLine(line string) []token.Token {
	toks := l.tokenizeLine(line)
	l.state.Row++
	return toks
}

// tokenizeLine tokenizes a single line using and updating l.state, except
// for Row, which the caller (Append) advances.
func (l *Lexer) tokenizeLine(raw string) []token.Token {
	line := trimTrailing(raw)
	runes := []rune(line)
	n := len(runes)

	var tokens []token.Token
	var col uint32
	i := 0

	emit := func(kind token.Kind, value string, start, length int) token.Token {
		tok := token.New(kind, value, location.New(l.state.Row, uint32(start)))
		tok.Length = uint32(length)
		return tok
	}

	// A block comment or literal left open by a previous line continues
	// here before the normal dispatch loop runs.
	if l.state.Mode == ModeComment && l.state.SingleLineComment == 0 {
		start := i
		closed := false
		for i < n {
			if runes[i] == '*' && i+1 < n && runes[i+1] == '/' {
				i += 2
				closed = true
				break
			}
			i++
		}
		tok := emit(token.Comment, l.foldComment(string(runes[start:i])), start, i-start)
		tokens = append(tokens, tok)
		col = uint32(i)
		if closed {
			l.state.Mode = ModeCode
		}
	} else if l.state.Mode == ModeString {
		start := i
		quote := '"'
		closed := false
		for i < n {
			if runes[i] == '\\' && i+1 < n {
				i += 2
				continue
			}
			if runes[i] == quote {
				i++
				closed = true
				break
			}
			i++
		}
		tok := emit(token.String, l.foldString(string(runes[start:i])), start, i-start)
		tok.StringType = l.state.StringType
		tokens = append(tokens, tok)
		col = uint32(i)
		if closed {
			l.state.Mode = ModeCode
			l.state.StringType = 0
		}
	}

	if l.state.SingleLineComment == 2 {
		// Previous line ended with a backslash-continued "//" comment; this
		// whole line (or its continuation) still belongs to it.
		start := i
		for i < n {
			i++
		}
		tok := emit(token.Comment, l.foldComment(string(runes[start:i])), start, i-start)
		tokens = append(tokens, tok)
		col = uint32(i)
		if n > 0 && runes[n-1] == '\\' {
			l.state.SingleLineComment = 2
		} else {
			l.state.SingleLineComment = 0
		}
		return tokens
	}
	l.state.SingleLineComment = 0

	for i < n {
		r := runes[i]

		if isSpace(r) {
			i++
			col++
			continue
		}

		// Block comment open.
		if r == '/' && i+1 < n && runes[i+1] == '*' {
			start := i
			i += 2
			closed := false
			for i < n {
				if runes[i] == '*' && i+1 < n && runes[i+1] == '/' {
					i += 2
					closed = true
					break
				}
				i++
			}
			tokens = append(tokens, emit(token.Comment, l.foldComment(string(runes[start:i])), start, i-start))
			col = uint32(i)
			if !closed {
				l.state.Mode = ModeComment
			}
			continue
		}

		// Line comment.
		if r == '/' && i+1 < n && runes[i+1] == '/' {
			start := i
			i = n
			tokens = append(tokens, emit(token.Comment, l.foldComment(string(runes[start:i])), start, i-start))
			col = uint32(i)
			if n > 0 && runes[n-1] == '\\' {
				l.state.SingleLineComment = 2
			}
			continue
		}

		// String/char literal open, possibly with a one-letter prefix
		// (L"...", u"...", U"...", u8"...", R"...") popped off the
		// immediately preceding identifier token.
		if r == '"' || r == '\'' {
			start := i
			quote := r
			i++
			closed := false
			for i < n {
				if runes[i] == '\\' && i+1 < n {
					i += 2
					continue
				}
				if runes[i] == quote {
					i++
					closed = true
					break
				}
				i++
			}
			var stringType rune
			if len(tokens) > 0 {
				prev := tokens[len(tokens)-1]
				if prev.Kind == token.Identifier {
					// prev.Value may be case-folded; check the source spelling.
					orig := runes[prev.Location.Column : prev.Location.Column+prev.Length]
					if isStringPrefix(string(orig)) {
						stringType = orig[len(orig)-1]
						tokens = tokens[:len(tokens)-1]
					}
				}
			}
			tok := emit(token.String, l.foldString(string(runes[start:i])), start, i-start)
			tok.StringType = stringType
			tokens = append(tokens, tok)
			col = uint32(i)
			if !closed {
				l.state.Mode = ModeString
				l.state.StringType = stringType
			}
			continue
		}

		// Numeric literal.
		if digitValue(r, 10) >= 0 || (r == '.' && i+1 < n && digitValue(runes[i+1], 10) >= 0) {
			start := i
			res := readNumber(runes, i)
			i = start + res.consumed
			tok := emit(token.Numeric, res.text, start, i-start)
			tok.Integer = res.integer
			tok.Decimal = res.decimal
			tok.IsDecimal = res.isDecimal
			tokens = append(tokens, tok)
			col = uint32(i)
			continue
		}

		// Identifier, possibly an ISO-646/nullptr/boolean alternative.
		if isIdentStart(r) {
			start := i
			text, consumed := readIdentifier(runes, i, false)
			i += consumed
			tokens = append(tokens, l.identifierToken(text, start, consumed))
			col = uint32(i)
			continue
		}

		// Digraph/trigraph alternative punctuator spellings.
		if l.opts.Trigraphs && i+2 < n {
			if canon, ok := trigraphs[string(runes[i:i+3])]; ok {
				tokens = append(tokens, emit(token.Code, canon, i, 3))
				i += 3
				col = uint32(i)
				continue
			}
		}
		if l.opts.Digraphs && i+1 < n {
			if canon, ok := digraphs[string(runes[i:i+2])]; ok {
				tokens = append(tokens, emit(token.Code, canon, i, 2))
				i += 2
				col = uint32(i)
				continue
			}
		}

		// Elidable punctuation.
		if isElided(r, l.opts, i == n-1 || (i+1 < n && isElided(runes[i+1], l.opts, false))) {
			i++
			col++
			continue
		}

		// Multi-character operator.
		if op, length := matchOperator(runes, i); length > 0 {
			tokens = append(tokens, emit(token.Code, op, i, length))
			i += length
			col = uint32(i)
			continue
		}

		// Single-character code token.
		tokens = append(tokens, emit(token.Code, string(r), i, 1))
		i++
		col++
	}

	return tokens
}

// identifierToken builds the token for an identifier run, substituting an
// ISO-646 alternative spelling, nullptr, or boolean-as-integer numeric
// token when the corresponding option is enabled.
func (l *Lexer) identifierToken(text string, start, length int) token.Token {
	loc := location.New(l.state.Row, uint32(start))

	if l.opts.ISO646 {
		if canon, ok := iso646Alternatives[text]; ok {
			tok := token.New(token.Code, canon, loc)
			tok.Length = uint32(length)
			tok.Alternative = text
			return tok
		}
	}

	if l.opts.NullptrIsZero && (text == "nullptr" || text == "NULL") {
		tok := token.New(token.Numeric, text, loc)
		tok.Length = uint32(length)
		tok.Integer = 0
		tok.Alternative = "0"
		return tok
	}

	if l.opts.BooleanIsInteger && (text == "true" || text == "false") {
		tok := token.New(token.Numeric, text, loc)
		tok.Length = uint32(length)
		if text == "true" {
			tok.Integer = 1
			tok.Alternative = "1"
		} else {
			tok.Integer = 0
			tok.Alternative = "0"
		}
		return tok
	}

	value := text
	if l.opts.CaseInsensitiveIdentifiers || l.opts.FoldDiacriticsIdentifiers {
		value = fold.Apply(text, fold.Flags{
			CaseInsensitive: l.opts.CaseInsensitiveIdentifiers,
			FoldDiacritics:  l.opts.FoldDiacriticsIdentifiers,
		})
	}
	tok := token.New(token.Identifier, value, loc)
	tok.Length = uint32(length)
	return tok
}

// isStringPrefix reports whether text is a recognized string/char literal
// prefix letter eligible to be popped and attached as a token's StringType.
func isStringPrefix(text string) bool {
	switch text {
	case "L", "u", "U", "R", "u8":
		return true
	default:
		return false
	}
}

func (l *Lexer) foldComment(s string) string {
	if l.opts.UndecorateComments {
		s = undecorateComment(s)
	}
	if !l.opts.CaseInsensitiveComments && !l.opts.FoldDiacriticsComments {
		return s
	}
	return fold.Apply(s, fold.Flags{
		CaseInsensitive: l.opts.CaseInsensitiveComments,
		FoldDiacritics:  l.opts.FoldDiacriticsComments,
	})
}

// undecorateComment strips the delimiters and conventional continuation
// border from a comment token's value so that "/* text */", "// text",
// and a block comment's " * text" continuation lines all compare as
// "text". This never changes token boundaries or Length, only Value.
func undecorateComment(s string) string {
	s = strings.TrimPrefix(s, "/*")
	s = strings.TrimSuffix(s, "*/")
	s = strings.TrimPrefix(s, "//")
	trimmed := strings.TrimLeft(s, " \t")
	stars := len(trimmed) - len(strings.TrimLeft(trimmed, "*"))
	if stars > 0 {
		s = strings.TrimLeft(trimmed, "*")
	}
	return strings.TrimSpace(s)
}

// foldString applies only case/diacritic folding at lex time. Accelerator
// hint stripping (ignore_accelerator_hints_in_strings) is a Normalizer-stage
// concern — see internal/normalizer — since it rewrites already-classified
// String token values rather than participating in tokenization itself.
func (l *Lexer) foldString(s string) string {
	if !l.opts.CaseInsensitiveStrings && !l.opts.FoldDiacriticsStrings {
		return s
	}
	return fold.Apply(s, fold.Flags{
		CaseInsensitive: l.opts.CaseInsensitiveStrings,
		FoldDiacritics:  l.opts.FoldDiacriticsStrings,
	})
}
