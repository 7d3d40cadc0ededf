// Package filter implements regex-based line filters that match and
// rewrite spans of text within a line. A line that matches none of a
// filter's patterns is reported as unmatched so callers can drop it.
package filter

import (
	"fmt"
	"sync"

	"github.com/dlclark/regexp2"
)

// Filter matches a pattern in a line and rewrites the matched spans.
type Filter interface {
	// Apply scans line for matches. It returns the rewritten line and
	// true when at least one span matched, or the original line and
	// false when nothing matched. Callers filtering a stream treat an
	// unmatched line as dropped, not passed through.
	Apply(line string) (string, bool, error)
}

// PatternError reports a regular expression that failed to compile.
// Compilation is lazy, so the error surfaces on the first Apply call
// and every call after it; the filter instance is unusable.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid filter pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Replacer converts matched text into its replacement. It receives only
// the matched substring, never the surrounding line.
type Replacer func(string) string

// RegexFilter rewrites every occurrence of a single pattern using a
// supplied Replacer. The pattern is compiled on first use and the
// compiled matcher is cached for the lifetime of the filter.
type RegexFilter struct {
	pattern string
	replace Replacer

	compileOnce sync.Once
	re          *regexp2.Regexp
	err         error
}

// New creates a filter that replaces text matched by pattern with the
// result of replace. The pattern is not validated here; an invalid
// pattern fails with a *PatternError on first use.
//
// Patterns may use lookaround assertions, so matches can be bounded
// without consuming separator characters.
func New(replace Replacer, pattern string) *RegexFilter {
	return &RegexFilter{pattern: pattern, replace: replace}
}

// Pattern returns the filter's regular expression source.
func (f *RegexFilter) Pattern() string {
	return f.pattern
}

// Apply replaces all non-overlapping occurrences of the pattern in line.
func (f *RegexFilter) Apply(line string) (string, bool, error) {
	if err := f.compile(); err != nil {
		return line, false, err
	}
	return rewrite(f.re, f.pattern, line, func(m regexp2.Match) string {
		return f.replace(m.String())
	})
}

func (f *RegexFilter) compile() error {
	f.compileOnce.Do(func() {
		re, err := regexp2.Compile(f.pattern, regexp2.None)
		if err != nil {
			f.err = &PatternError{Pattern: f.pattern, Err: err}
			return
		}
		f.re = re
	})
	return f.err
}

// rewrite runs evaluate over every match of re in line. It returns the
// original line and false when nothing matched.
func rewrite(re *regexp2.Regexp, pattern, line string, evaluate regexp2.MatchEvaluator) (string, bool, error) {
	count := 0
	out, err := re.ReplaceFunc(line, func(m regexp2.Match) string {
		count++
		return evaluate(m)
	}, -1, -1)
	if err != nil {
		return line, false, &PatternError{Pattern: pattern, Err: err}
	}
	if count == 0 {
		return line, false, nil
	}
	return out, true, nil
}
