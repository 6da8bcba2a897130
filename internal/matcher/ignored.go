package matcher

import (
	"github.com/cwbudde/go-srcfind/internal/options"
	"github.com/cwbudde/go-srcfind/pkg/token"
)

// ignoredPattern is one row of the ground-truth table from
// original_source/agsearch.cpp's `ignored_patterns`: when the needle
// reaches a token whose value equals prefix, the matcher arms optional —
// a set of haystack token values that may subsequently be skipped (haystack
// advances, needle does not) without the needle ever having to spell them
// out.
type ignoredPattern struct {
	enabled  func(*options.Options) bool
	prefix   string
	optional map[string]bool
}

var ignoredPatterns = []ignoredPattern{
	{
		enabled:  func(o *options.Options) bool { return o.MatchAnyInheritanceType },
		prefix:   ":",
		optional: map[string]bool{"virtual": true, "public": true, "protected": true, "private": true},
	},
	{
		enabled:  func(o *options.Options) bool { return o.MatchAnyIntegerDeclStyle },
		prefix:   "long",
		optional: map[string]bool{"int": true, "unsigned": true, "long": true},
	},
	{
		enabled:  func(o *options.Options) bool { return o.MatchAnyIntegerDeclStyle },
		prefix:   "short",
		optional: map[string]bool{"int": true, "unsigned": true},
	},
	{
		enabled:  func(o *options.Options) bool { return o.MatchAnyIntegerDeclStyle },
		prefix:   "signed",
		optional: map[string]bool{"char": true, "short": true, "int": true, "long": true},
	},
	{
		enabled:  func(o *options.Options) bool { return o.MatchAnyIntegerDeclStyle },
		prefix:   "unsigned",
		optional: map[string]bool{"char": true, "short": true, "int": true, "long": true},
	},
}

// armIgnoredPattern returns the optional-skip set a needle token s arms,
// i.e. the first ignoredPatterns row whose option is enabled and whose
// prefix equals s.Value, or nil if none does. Mirrors agsearch.cpp's
// unconditional per-iteration scan of `ignored_patterns`; like the
// original, there is no token-kind restriction on the prefix match (the
// original carries that restriction only as a commented-out TODO).
func armIgnoredPattern(s token.Token, opts *options.Options) map[string]bool {
	for _, ip := range ignoredPatterns {
		if ip.enabled(opts) && s.Value == ip.prefix {
			return ip.optional
		}
	}
	return nil
}
