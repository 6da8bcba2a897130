// Package srcsearch is the public facade over the lexer, normalizer, and
// matcher stages: a Session holds a buffer of source lines and answers
// Find queries against it the way an editor's "find in file" box would,
// independent of the buffer's or the query's coding style.
package srcsearch

import (
	"github.com/cwbudde/go-srcfind/internal/lexer"
	"github.com/cwbudde/go-srcfind/internal/matcher"
	"github.com/cwbudde/go-srcfind/internal/normalizer"
	"github.com/cwbudde/go-srcfind/internal/options"
	"github.com/cwbudde/go-srcfind/pkg/location"
	"github.com/cwbudde/go-srcfind/pkg/token"
)

// Match is a located occurrence reported by Find, re-exported from the
// matcher package so callers never need to import internal/matcher.
type Match = matcher.Match

// Session holds one source buffer's lines and its tokenized, normalized
// form, ready to be searched repeatedly with different needles.
type Session struct {
	opts   *options.Options
	lines  []string
	tokens []token.Token
}

// New creates an empty Session configured by opts (defaults to
// options.Default() when no Option is given).
func New(opts ...options.Option) *Session {
	return &Session{opts: options.Default().Apply(opts...)}
}

// Options returns the Session's current configuration.
func (s *Session) Options() *options.Options {
	return s.opts
}

// SetOptions replaces the Session's configuration and re-tokenizes the
// current buffer under it.
func (s *Session) SetOptions(opts *options.Options) {
	s.opts = opts
	s.retokenize()
}

// Clear empties the buffer.
func (s *Session) Clear() {
	s.lines = nil
	s.tokens = nil
}

// Append adds text (one or more '\n'-separated lines) to the end of the
// buffer and re-tokenizes it. Re-tokenizing the whole buffer (rather than
// resuming mid-stream) keeps normalizer-stage state, such as the
// ternary-conditional '?'/':' depth counter, correct across the entire
// buffer instead of just the newly appended lines.
func (s *Session) Append(text string) {
	s.lines = append(s.lines, splitLines(text)...)
	s.retokenize()
}

// Replace overwrites the line at row (0-based, extending the buffer with
// empty lines if needed) and re-tokenizes the whole buffer, since a
// changed line can open or close a block comment that reshapes every
// line after it.
func (s *Session) Replace(row uint32, line string) {
	for uint32(len(s.lines)) <= row {
		s.lines = append(s.lines, "")
	}
	s.lines[row] = line
	s.retokenize()
}

// Load replaces the entire buffer with lines and tokenizes it from
// scratch.
func (s *Session) Load(lines []string) {
	s.lines = append([]string(nil), lines...)
	s.retokenize()
}

// Find tokenizes and normalizes needle under the Session's current
// Options, then reports every contiguous occurrence in the buffer to
// found, returning the number of matches. Returning false from found
// stops the search after the match that triggered it.
func (s *Session) Find(needle string, found func(Match) bool) int {
	needleTokens := s.tokenizeNeedle(needle)
	if len(needleTokens) == 0 {
		return 0
	}
	return matcher.Find(s.tokens, needleTokens, s.opts, found)
}

// Tokens returns the buffer's current normalized token sequence, mainly
// for diagnostics and tests.
func (s *Session) Tokens() []token.Token {
	return s.tokens
}

func (s *Session) tokenizeNeedle(needle string) []token.Token {
	l := lexer.New(s.opts)
	var toks []token.Token
	for _, line := range splitLines(needle) {
		toks = append(toks, l.AppendLine(line)...)
	}
	return normalizer.Normalize(toks, s.opts)
}

func (s *Session) retokenize() {
	l := lexer.New(s.opts)
	var toks []token.Token
	for _, line := range s.lines {
		toks = append(toks, l.AppendLine(line)...)
	}
	s.tokens = normalizer.Normalize(toks, s.opts)
}

func splitLines(text string) []string {
	var lines []string
	start := 0
	for i, r := range text {
		if r == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	lines = append(lines, text[start:])
	return lines
}

// Location re-exports pkg/location.Location for callers that only import
// srcsearch.
type Location = location.Location
