package lexer

// Mode is the lexer's current enclosing construct.
type Mode int

const (
	// ModeCode is the default mode: operators, identifiers, numerics.
	ModeCode Mode = iota
	// ModeString is inside a "..." or '...' literal.
	ModeString
	// ModeComment is inside a /*...*/ block comment. A // line comment does
	// not use this mode; it is tracked via SingleLineComment instead.
	ModeComment
)

// State is the complete cross-line state of a Lexer: the data that must
// survive from one Append/Replace call to the next so that a multi-line
// comment or a backslash-continued line comment tokenizes correctly.
type State struct {
	Mode Mode

	Row    uint32
	Column uint32

	// StringType is the prefix letter ('L', 'u', 'U', '8', 'R', or 0)
	// popped off a preceding one-letter identifier when a string or char
	// literal opens.
	StringType rune

	// SingleLineComment is 0, or 2 when a // line comment's line ends with
	// '\', in which case the whole next line is lexed as a continuation of
	// that comment. It is reset to 0 after a line that does not end with
	// '\'. Mode is not changed by line comments.
	SingleLineComment int
}

// initialState is the state of a freshly cleared lexer.
func initialState() State {
	return State{Mode: ModeCode}
}
