package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logsift/logsift/internal/colorgen"
)

func TestTimestampFilter(t *testing.T) {
	bold := func(s string) string { return Styles.Timestamp.Render(s) }

	tests := []struct {
		name    string
		line    string
		want    string
		matched bool
	}{
		{"whole line is a timestamp", "12:34:56", bold("12:34:56"), true},
		{"timestamp inside a line", "Event at 12:34:56 occurred", "Event at " + bold("12:34:56") + " occurred", true},
		{"letters are valid boundaries", "a12:34:56b", "a" + bold("12:34:56") + "b", true},
		{"digit-adjacent run is rejected", "112:34:567", "112:34:567", false},
		{"leading digit is rejected", "112:34:56", "112:34:56", false},
		{"trailing digit is rejected", "12:34:567", "12:34:567", false},
		{"two groups are not a timestamp", "12:34", "12:34", false},
		{"single-digit groups are rejected", "1:2:3", "1:2:3", false},
		{"no digits at all", "no time here", "no time here", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, matched, err := Timestamp().Apply(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.matched, matched)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestIPv4Filter(t *testing.T) {
	styled := func(addr string, octets ...int) string {
		return AddressStyle(colorgen.Index8(octets)).Render(addr)
	}

	t.Run("bare address", func(t *testing.T) {
		out, matched, err := IPv4().Apply("192.168.1.5")
		require.NoError(t, err)
		assert.True(t, matched)
		assert.Equal(t, styled("192.168.1.5", 192, 168, 1, 5), out)
	})

	t.Run("address inside a line", func(t *testing.T) {
		out, matched, err := IPv4().Apply("An IPv4: 192.168.1.5")
		require.NoError(t, err)
		assert.True(t, matched)
		assert.Equal(t, "An IPv4: "+styled("192.168.1.5", 192, 168, 1, 5), out)
	})

	t.Run("equal addresses highlight identically", func(t *testing.T) {
		first, _, err := IPv4().Apply("src 10.0.0.1")
		require.NoError(t, err)
		second, _, err := IPv4().Apply("src 10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("rejections", func(t *testing.T) {
		for _, line := range []string{
			"256.1.1.1",   // octet out of range
			"999.1.1.1",   // octet out of range
			"1.2.3",       // too few octets
			"no address",  // nothing numeric
			"12345.1.1.1", // digit run before the quad
		} {
			out, matched, err := IPv4().Apply(line)
			require.NoError(t, err)
			assert.False(t, matched, "line %q must not match", line)
			assert.Equal(t, line, out)
		}
	})

	t.Run("boundary octets are accepted", func(t *testing.T) {
		_, matched, err := IPv4().Apply("edge 255.0.255.0 case")
		require.NoError(t, err)
		assert.True(t, matched)
	})
}

func TestIPv6Filter(t *testing.T) {
	styled := func(addr string, segments ...int) string {
		return AddressStyle(colorgen.Index8(segments)).Render(addr)
	}

	t.Run("full form", func(t *testing.T) {
		out, matched, err := IPv6().Apply("1:2:3:4:5:6:7:8")
		require.NoError(t, err)
		assert.True(t, matched)
		assert.Equal(t, styled("1:2:3:4:5:6:7:8", 1, 2, 3, 4, 5, 6, 7, 8), out)
	})

	t.Run("zero compression expands to eight segments", func(t *testing.T) {
		out, matched, err := IPv6().Apply("peer 2860:1FF::3:4 up")
		require.NoError(t, err)
		assert.True(t, matched)
		assert.Equal(t, "peer "+styled("2860:1FF::3:4", 0x2860, 0x1FF, 0, 0, 0, 0, 3, 4)+" up", out)
	})

	t.Run("loopback shorthand", func(t *testing.T) {
		out, matched, err := IPv6().Apply("listen on ::1 only")
		require.NoError(t, err)
		assert.True(t, matched)
		assert.Equal(t, "listen on "+styled("::1", 0, 0, 0, 0, 0, 0, 0, 1)+" only", out)
	})

	t.Run("bare double colon never matches", func(t *testing.T) {
		for _, line := range []string{"::", "addr :: here"} {
			out, matched, err := IPv6().Apply(line)
			require.NoError(t, err)
			assert.False(t, matched, "line %q must not match", line)
			assert.Equal(t, line, out)
		}
	})

	t.Run("rejections", func(t *testing.T) {
		for _, line := range []string{
			"1:2:3",       // too few groups, no compression
			"hello world", // nothing hex-ish
		} {
			_, matched, err := IPv6().Apply(line)
			require.NoError(t, err)
			assert.False(t, matched, "line %q must not match", line)
		}
	})

	t.Run("hex digit boundary is respected", func(t *testing.T) {
		// 'g' is not a hex digit, so it bounds the match
		out, matched, err := IPv6().Apply("g1:2:3:4:5:6:7:8g")
		require.NoError(t, err)
		assert.True(t, matched)
		assert.Equal(t, "g"+styled("1:2:3:4:5:6:7:8", 1, 2, 3, 4, 5, 6, 7, 8)+"g", out)
	})
}

func TestAddressStyleDeterminism(t *testing.T) {
	color := colorgen.Index8([]int{192, 168, 1, 1})
	assert.Equal(t, AddressStyle(color).Render("x"), AddressStyle(color).Render("x"))
}
