// Package options holds the flat parameter record that configures every
// stage of the search pipeline (lexer, normalizer, comparator, matcher).
package options

// Options is the parameter set described in spec.md §6: a flat record of
// booleans. Defaults (see Default) favor permissive, style-agnostic
// matching.
type Options struct {
	// Matching shape.
	WholeWords              bool
	IndividualPartialWords  bool
	Orthogonal              bool

	// Case/diacritic folding, per token kind.
	CaseInsensitiveNumbers     bool
	CaseInsensitiveStrings     bool
	CaseInsensitiveComments    bool
	CaseInsensitiveIdentifiers bool
	FoldDiacriticsStrings      bool
	FoldDiacriticsComments     bool
	FoldDiacriticsIdentifiers  bool

	// Alternative lexical forms.
	Digraphs             bool
	Trigraphs            bool
	ISO646               bool
	NullptrIsZero        bool
	BooleanIsInteger     bool
	Numbers              bool
	MatchFloatsAndInts   bool

	// Structural elision.
	IgnoreAllSyntacticTokens bool
	IgnoreAllParentheses     bool
	IgnoreAllBrackets        bool
	IgnoreAllBraces          bool
	IgnoreAllSemicolons      bool
	IgnoreAllCommas          bool
	IgnoreTrailingSemicolons bool
	IgnoreTrailingCommas     bool

	// Text hygiene.
	Unescape                        bool
	IgnoreAcceleratorHintsInStrings bool
	UndecorateComments              bool

	// Token equivalences.
	MatchSnakeAndCamelCasing  bool
	MatchIfsAndConditional    bool
	MatchClassStructTypename  bool
	MatchAnyInheritanceType   bool
	MatchAnyIntegerDeclStyle  bool
	MatchFloatAndDoubleDecl   bool
	MatchUsingAndTypedef      bool
}

// Default returns the permissive default configuration from spec.md §6.
func Default() *Options {
	return &Options{
		CaseInsensitiveNumbers:     true,
		CaseInsensitiveStrings:     true,
		CaseInsensitiveComments:    true,
		CaseInsensitiveIdentifiers: true,
		FoldDiacriticsStrings:      true,
		FoldDiacriticsComments:     true,
		FoldDiacriticsIdentifiers:  true,

		Digraphs:           true,
		Trigraphs:          true,
		ISO646:             true,
		NullptrIsZero:      true,
		BooleanIsInteger:   true,
		Numbers:            true,
		MatchFloatsAndInts: true,

		Unescape:                        true,
		IgnoreAcceleratorHintsInStrings: true,
		UndecorateComments:              true,

		MatchSnakeAndCamelCasing: true,
		MatchIfsAndConditional:   true,
		MatchClassStructTypename: true,
		MatchAnyInheritanceType:  true,
		MatchAnyIntegerDeclStyle: true,
		MatchFloatAndDoubleDecl:  true,
		MatchUsingAndTypedef:     false,
	}
}

// Option mutates an Options value. It mirrors the teacher's LexerOption
// pattern (internal/lexer.LexerOption) so the CLI can build an Options from
// a sequence of flag-derived mutations without exposing field names to
// callers that only want sensible knobs.
type Option func(*Options)

// WithWholeWords sets the WholeWords matching shape.
func WithWholeWords(v bool) Option { return func(o *Options) { o.WholeWords = v } }

// WithIndividualPartialWords sets IndividualPartialWords.
func WithIndividualPartialWords(v bool) Option {
	return func(o *Options) { o.IndividualPartialWords = v }
}

// WithOrthogonal sets Orthogonal matching mode.
func WithOrthogonal(v bool) Option { return func(o *Options) { o.Orthogonal = v } }

// WithCaseInsensitive toggles case-insensitivity for strings, comments, and
// identifiers together — the common case for an interactive search box.
func WithCaseInsensitive(v bool) Option {
	return func(o *Options) {
		o.CaseInsensitiveStrings = v
		o.CaseInsensitiveComments = v
		o.CaseInsensitiveIdentifiers = v
	}
}

// Apply runs each Option against a copy of the receiver and returns the
// result, leaving the receiver untouched.
func (o *Options) Apply(opts ...Option) *Options {
	clone := *o
	for _, opt := range opts {
		opt(&clone)
	}
	return &clone
}
