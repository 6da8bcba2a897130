// Package fold implements the Unicode-aware comparison backend design note
// 9 calls for: locale-invariant case folding, diacritic stripping, and a
// substring search that reports back an (offset, length) pair in terms of
// the original string so callers can populate Token.first/Token.last.
//
// Diacritic stripping is grounded directly on the teacher's
// stripAccentsLocal helper (internal/interp/builtins/strings_compare.go):
// decompose (here with NFKD), then drop combining marks. Case folding and whole-
// string comparison use golang.org/x/text with language.Und so results
// never depend on the process locale, matching the teacher's
// builtinSameText/builtinCompareText which import x/text/collate and
// x/text/language together for the same reason.
package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var invariantCaser = cases.Fold()

// collator performs locale-invariant, case-insensitive whole-string
// comparison for CollateEqual.
var collator = collate.New(language.Und, collate.IgnoreCase)

// Flags selects which fold transforms apply to a comparison. Each flag
// corresponds to one of the per-kind options in options.Options.
type Flags struct {
	CaseInsensitive bool
	FoldDiacritics  bool
}

// Apply runs the configured folds over s: diacritic stripping first (NFKD
// decomposition, then removal of combining marks), then case folding
// (which can change rune identity but not ordering).
func Apply(s string, f Flags) string {
	if f.FoldDiacritics {
		s = stripDiacritics(s)
	}
	if f.CaseInsensitive {
		s = invariantCaser.String(s)
	}
	return s
}

// stripDiacritics expands ligatures/compatibility forms (NFKD — this also
// covers CJK compatibility and digit-form folding, the "COMPOSITE |
// EXPAND_LIGATURES | FOLDCZONE | FOLDDIGITS" semantics spec.md §4.1
// describes) and then removes combining marks, exactly as the teacher's
// stripAccentsLocal does with NFD for the plain-accent case.
func stripDiacritics(s string) string {
	decomposed := norm.NFKD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if isCombiningMark(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isCombiningMark reports whether r is a Unicode combining mark (general
// category Mn), mirroring the teacher's unicode.Is(unicode.Mn, r) check.
func isCombiningMark(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// CollateEqual performs a locale-invariant, optionally case-insensitive
// whole-string comparison, an alternative to a plain folded ==. The
// comparator does not call it; its whole_words branch uses WholeEqual.
func CollateEqual(a, b string, caseInsensitive bool) bool {
	if caseInsensitive {
		return collator.CompareString(a, b) == 0
	}
	return a == b
}

// Find locates the first occurrence of needle inside haystack after both
// have had f applied, and maps the match back to a byte offset and byte
// length within the ORIGINAL haystack string. Folding can change length
// (case folding of ß, diacritic stripping of é→e), so Find tracks, for
// every rune of the folded haystack, the original byte offset it came
// from, and reports span boundaries at rune granularity of the original.
//
// Returns ok=false if needle does not occur (or needle is empty).
func Find(haystack, needle string, f Flags) (offset, length int, ok bool) {
	if needle == "" {
		return 0, 0, false
	}

	foldedHaystack, origOffsets := foldWithOffsets(haystack, f)
	foldedNeedle := Apply(needle, f)

	idx := strings.Index(foldedHaystack, foldedNeedle)
	if idx < 0 {
		return 0, 0, false
	}

	// idx/len(foldedNeedle) are byte offsets into foldedHaystack; convert
	// to a rune index by counting runes up to idx.
	runeStart := runeIndexOf(foldedHaystack, idx)
	runeEnd := runeIndexOf(foldedHaystack, idx+len(foldedNeedle))

	start := origOffsets[runeStart]
	var end int
	if runeEnd < len(origOffsets) {
		end = origOffsets[runeEnd]
	} else {
		end = len(haystack)
	}
	return start, end - start, true
}

// WholeEqual reports whether a and b are equal after folding — used by the
// comparator's whole_words branch.
func WholeEqual(a, b string, f Flags) bool {
	return Apply(a, f) == Apply(b, f)
}

// foldWithOffsets applies f to s rune-by-rune (never merging or splitting
// input runes across the fold step for the offset table), decomposing each
// rune with NFKD before dropping its combining marks — exactly what
// stripDiacritics does for the whole string — so a precomposed diacritic
// (e.g. U+00E9 "é", category Ll, not Mn) is stripped here the same way it
// is on the needle side via Apply. Per-rune NFKD decomposition is exact for
// this purpose: canonical/compatibility decomposition is defined per
// code point, so decomposing one rune at a time and tagging every output
// rune with that rune's original byte offset doesn't lose anything a
// whole-string decomposition would have covered. The rare multi-rune case
// fold, e.g. "ß"→"ss", attributes both output runes to the same original
// offset, which is sufficient for reporting a caret position inside the
// matched span.
func foldWithOffsets(s string, f Flags) (string, []int) {
	var b strings.Builder
	offsets := make([]int, 0, len(s))

	for byteOffset, r := range s {
		text := string(r)
		if f.FoldDiacritics {
			text = norm.NFKD.String(text)
		}
		var kept strings.Builder
		for _, dr := range text {
			if f.FoldDiacritics && isCombiningMark(dr) {
				continue
			}
			kept.WriteRune(dr)
		}
		folded := kept.String()
		if f.CaseInsensitive {
			folded = invariantCaser.String(folded)
		}
		for range folded {
			offsets = append(offsets, byteOffset)
		}
		b.WriteString(folded)
	}
	// Sentinel for an end-of-string match boundary.
	offsets = append(offsets, len(s))
	return b.String(), offsets
}

func runeIndexOf(s string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if i >= byteOffset {
			return n
		}
		n++
	}
	return n
}
