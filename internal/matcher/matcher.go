// Package matcher implements spec.md §4.4: contiguous sub-sequence search
// of a needle token sequence inside a haystack token sequence, using
// internal/comparator for per-token equivalence and the ignored-pattern
// tables in ignored.go to let whole groups of style-specific tokens (C++
// inheritance access specifiers, integer declaration styles) stand in for
// one another.
package matcher

import (
	"unicode/utf8"

	"github.com/cwbudde/go-srcfind/internal/comparator"
	"github.com/cwbudde/go-srcfind/internal/options"
	"github.com/cwbudde/go-srcfind/pkg/location"
	"github.com/cwbudde/go-srcfind/pkg/token"
)

// Match describes one located occurrence of the needle inside the
// haystack, in original source locations. When the match begins or ends
// inside a partially-consumed Identifier, String, or Comment token (fx/lx
// in spec.md §4.4), Begin/End already reflect that partial offset.
type Match struct {
	Begin, End location.Location
}

// Found is called once per match. Returning false stops the search after
// this match has been counted — the aborting match itself is still
// reported and counted.
type Found func(m Match) bool

// Find searches haystack for every non-overlapping contiguous occurrence
// of needle: on a match, the next attempt starts right after it (i0
// advances by len(needle), per spec.md §4.4); otherwise i0 advances by 1.
func Find(haystack, needle []token.Token, opts *options.Options, found Found) int {
	if len(haystack) == 0 || len(needle) == 0 {
		return 0
	}

	count := 0
	for i0 := 0; i0 < len(haystack); i0++ {
		m, matched, exhausted := matchAt(haystack, needle, i0, opts)
		if exhausted {
			// Running out of haystack tokens mid-attempt means no later,
			// shorter-remaining i0 can complete the needle either.
			break
		}
		if !matched {
			continue
		}
		count++
		if !found(m) {
			break
		}
		i0 += len(needle) - 1
	}
	return count
}

// matchAt attempts to match needle against haystack starting exactly at
// haystack[i0], advancing through both sequences in lockstep per
// spec.md §4.4. exhausted reports that hi ran past the end of haystack
// mid-attempt, meaning the whole search (not just this i0) should stop.
func matchAt(haystack, needle []token.Token, i0 int, opts *options.Options) (m Match, matched, exhausted bool) {
	hi := i0
	ni := 0
	fx := 0 // start offset into haystack[i0]'s value, for a partial first-token match
	lx := 0 // trailing length trimmed from the last consumed haystack token's value

	// ignore tracks the §4.5 ignored-pattern optional-skip set armed by the
	// current needle token, if any, carried across iterations exactly like
	// agsearch.cpp's `ignore`/`ignore_skip_prefix` locals: arming a pattern
	// doesn't by itself skip anything — the armed needle token must still
	// compare normally against the haystack token sitting under it — it only
	// starts letting later haystack tokens in the optional set be skipped.
	var ignore map[string]bool
	ignoreSkipPrefix := false

	for ni < len(needle) {
		if hi >= len(haystack) {
			return Match{}, false, true
		}

		if arm := armIgnoredPattern(needle[ni], opts); arm != nil {
			ignore = arm
			ignoreSkipPrefix = true
		}

		skip := false
		if ignore != nil {
			if ignoreSkipPrefix {
				ignoreSkipPrefix = false
			} else if ignore[haystack[hi].Value] {
				skip = true
			} else {
				ignore = nil
			}
		}

		wantFirst := ni == 0
		wantLast := ni == len(needle)-1
		equal, offset, length := comparator.CompareBoundary(haystack[hi], needle[ni], opts, wantFirst, wantLast)
		if equal {
			if wantFirst && length > 0 {
				fx = runeOffset(haystack[hi].Value, offset)
			}
			if wantLast && length > 0 {
				matchedRunes := runeOffset(haystack[hi].Value, offset+length) - runeOffset(haystack[hi].Value, offset)
				startRunes := runeOffset(haystack[hi].Value, offset)
				lx = int(haystack[hi].Length) - startRunes - matchedRunes
			}
			hi++
			ni++
			continue
		}
		if skip {
			hi++
			continue
		}
		return Match{}, false, false
	}

	e := hi - 1
	begin := location.New(haystack[i0].Location.Row, haystack[i0].Location.Column+uint32(fx))
	end := location.New(haystack[e].Location.Row, haystack[e].Location.Column+haystack[e].Length-uint32(lx))
	return Match{Begin: begin, End: end}, true, false
}

// runeOffset converts a byte offset into s to the corresponding rune
// (code-unit) offset, matching the granularity Token.Length and
// Location.Column use.
func runeOffset(s string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	return utf8.RuneCountInString(s[:byteOffset])
}
