package filter

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dlclark/regexp2"
)

// Composite combines several RegexFilters into one single-pass filter.
//
// The sub-filter patterns are OR-ed into a single combined pattern, each
// wrapped in a named capturing group, so a line is scanned exactly once
// no matter how many sub-filters are active. Per match the group that
// captured identifies the owning sub-filter, whose Replacer rewrites the
// matched text. A line is unmatched only if no sub-filter matched it.
type Composite struct {
	pattern string
	keys    []string
	subs    map[string]*RegexFilter

	compileOnce sync.Once
	re          *regexp2.Regexp
	err         error
}

// NewComposite builds a single-pass composite from the given filters,
// preserving their order: at any position the earliest filter whose
// pattern matches wins, per leftmost-first alternation semantics.
// A composite with no sub-filters matches nothing, so every line is
// reported unmatched.
//
// Group keys are assigned from each filter's position at construction
// time. They are internal wiring and never appear in output.
func NewComposite(filters ...*RegexFilter) *Composite {
	c := &Composite{
		keys: make([]string, 0, len(filters)),
		subs: make(map[string]*RegexFilter, len(filters)),
	}

	parts := make([]string, 0, len(filters))
	for i, f := range filters {
		key := fmt.Sprintf("f%d", i)
		c.keys = append(c.keys, key)
		c.subs[key] = f
		parts = append(parts, "(?<"+key+">"+f.Pattern()+")")
	}
	c.pattern = strings.Join(parts, "|")

	return c
}

// Pattern returns the combined regular expression source.
func (c *Composite) Pattern() string {
	return c.pattern
}

// Apply scans line once with the combined pattern and dispatches each
// match to the sub-filter whose group captured it. A match that cannot
// be attributed to any sub-filter is left unchanged rather than failing
// the line.
func (c *Composite) Apply(line string) (string, bool, error) {
	if len(c.keys) == 0 {
		return line, false, nil
	}
	if err := c.compile(); err != nil {
		return line, false, err
	}
	return rewrite(c.re, c.pattern, line, func(m regexp2.Match) string {
		matched := m.String()
		if f := c.resolve(m); f != nil {
			return f.replace(matched)
		}
		return matched
	})
}

// resolve finds the sub-filter whose named group captured the match.
// Alternation groups are mutually exclusive per match, so at most one
// group has content.
func (c *Composite) resolve(m regexp2.Match) *RegexFilter {
	for _, key := range c.keys {
		g := m.GroupByName(key)
		if g != nil && len(g.Captures) > 0 {
			return c.subs[key]
		}
	}
	return nil
}

func (c *Composite) compile() error {
	c.compileOnce.Do(func() {
		re, err := regexp2.Compile(c.pattern, regexp2.None)
		if err != nil {
			c.err = &PatternError{Pattern: c.pattern, Err: err}
			return
		}
		c.re = re
	})
	return c.err
}
