package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposite(t *testing.T) {
	upper := New(strings.ToUpper, `cat`)
	number := New(func(s string) string { return "#" + s }, `[0-9]+`)

	t.Run("dispatches each match to its own sub-filter", func(t *testing.T) {
		c := NewComposite(upper, number)

		out, matched, err := c.Apply("cat ran 42 meters")
		require.NoError(t, err)
		assert.True(t, matched)
		assert.Equal(t, "CAT ran #42 meters", out)
	})

	t.Run("empty composite matches nothing", func(t *testing.T) {
		c := NewComposite()

		out, matched, err := c.Apply("any line at all")
		require.NoError(t, err)
		assert.False(t, matched)
		assert.Equal(t, "any line at all", out)
	})

	t.Run("no sub-filter match drops the line", func(t *testing.T) {
		c := NewComposite(upper, number)

		out, matched, err := c.Apply("dog slept")
		require.NoError(t, err)
		assert.False(t, matched)
		assert.Equal(t, "dog slept", out)
	})

	t.Run("single sub-filter behaves like the filter itself", func(t *testing.T) {
		c := NewComposite(New(strings.ToUpper, `cat`))
		direct := New(strings.ToUpper, `cat`)

		fromComposite, cm, err := c.Apply("a cat sat")
		require.NoError(t, err)
		fromDirect, dm, err := direct.Apply("a cat sat")
		require.NoError(t, err)

		assert.Equal(t, dm, cm)
		assert.Equal(t, fromDirect, fromComposite)
	})

	t.Run("single pass equals independent application", func(t *testing.T) {
		// Non-overlapping patterns: the composite must produce the same
		// replacements as applying each filter on its own
		line := "cat chased 7 mice and 1 cat fled"

		c := NewComposite(New(strings.ToUpper, `cat`), New(func(s string) string { return "#" + s }, `[0-9]+`))
		got, matched, err := c.Apply(line)
		require.NoError(t, err)
		assert.True(t, matched)

		step1, _, err := New(strings.ToUpper, `cat`).Apply(line)
		require.NoError(t, err)
		step2, _, err := New(func(s string) string { return "#" + s }, `[0-9]+`).Apply(step1)
		require.NoError(t, err)

		assert.Equal(t, step2, got)
	})

	t.Run("earlier sub-filter wins at the same position", func(t *testing.T) {
		short := New(func(s string) string { return "<" + s + ">" }, `ab`)
		long := New(func(s string) string { return "{" + s + "}" }, `abc`)
		c := NewComposite(short, long)

		out, matched, err := c.Apply("abc")
		require.NoError(t, err)
		assert.True(t, matched)
		assert.Equal(t, "<ab>c", out)
	})

	t.Run("group keys never leak into output", func(t *testing.T) {
		c := NewComposite(upper, number)

		out, _, err := c.Apply("cat 1 cat 2")
		require.NoError(t, err)
		assert.NotContains(t, out, "f0")
		assert.NotContains(t, out, "f1")
	})

	t.Run("invalid sub-pattern surfaces as PatternError", func(t *testing.T) {
		c := NewComposite(New(strings.ToUpper, `(`))

		out, matched, err := c.Apply("anything")
		require.Error(t, err)
		assert.False(t, matched)
		assert.Equal(t, "anything", out)
	})
}

func TestCompositePattern(t *testing.T) {
	c := NewComposite(New(strings.ToUpper, `cat`), New(strings.ToUpper, `dog`))

	assert.Equal(t, `(?<f0>cat)|(?<f1>dog)`, c.Pattern())
}
