package lexer

import "unicode"

// trailingWhitespace is the set of code points trimmed from the end of
// every line before lexing, per spec.md §4.1: the ASCII whitespace set
// plus a handful of Unicode space/format characters that editors and
// pasted source commonly leave trailing.
var trailingWhitespace = map[rune]bool{
	'\t': true, '\v': true, '\f': true, '\r': true, ' ': true,
	0x0000: true, // NUL
	0x1680: true, // OGHAM SPACE MARK
	0x180E: true, // MONGOLIAN VOWEL SEPARATOR
	0x2000: true, 0x2001: true, 0x2002: true, 0x2003: true, 0x2004: true,
	0x2005: true, 0x2006: true, 0x2007: true, 0x2008: true, 0x2009: true,
	0x200A: true, 0x200B: true, // EN QUAD .. ZERO WIDTH SPACE
	0x202F: true, // NARROW NO-BREAK SPACE
	0x205F: true, // MEDIUM MATHEMATICAL SPACE
	0x2060: true, // WORD JOINER
	0x3000: true, // IDEOGRAPHIC SPACE
	0xFEFF: true, // ZERO WIDTH NO-BREAK SPACE / BOM
	0xFFFD: true, // REPLACEMENT CHARACTER
}

// trimTrailing removes trailing whitespace (the set above) from a line.
func trimTrailing(line string) string {
	runes := []rune(line)
	end := len(runes)
	for end > 0 && trailingWhitespace[runes[end-1]] {
		end--
	}
	return string(runes[:end])
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\v' || r == '\f' || r == '\r' || unicode.IsSpace(r)
}
