// Package highlight provides the built-in line filters: timestamps,
// IPv4 addresses and IPv6 addresses. Matched spans are restyled; the
// address filters derive a deterministic color from the address itself,
// so equal addresses always highlight in the same color.
package highlight

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/logsift/logsift/internal/colorgen"
	"github.com/logsift/logsift/internal/filter"
)

// The patterns bound their matches with zero-width lookarounds instead
// of consuming separator characters, so adjacent punctuation stays
// untouched and matches inside longer digit runs are rejected.

const timestampPattern = `(?:(?<=[^0-9])|^)` +
	// 99:99:99
	`(?:[0-9]{2}:){2}[0-9]{2}` +
	`(?=[^0-9]|$)`

const ipv4Pattern = `(?:(?<=[^0-9])|^)` +
	// 250-255|200-249|100-199|10-99|0-9. (x3)
	`(?:(?:25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9][0-9]|[0-9])\.){3}` +
	// 250-255|200-249|100-199|10-99|0-9
	`(?:25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9][0-9]|[0-9])` +
	`(?=[^0-9]|$)`

const ipv6Pattern = `(?:(?<=[^0-9a-fA-F])|^)` +
	`(?:` +

	// 1111:2222:3333:4444:5555:6666:7777:8888
	`(?:[0-9a-fA-F]{1,4}:){7,7}[0-9a-fA-F]{1,4}|` +

	// 1111:2222:3333:4444:5555:6666:7777::
	`(?:[0-9a-fA-F]{1,4}:){6,6}[1-9a-fA-F][0-9a-fA-F]{0,3}::|` +

	// 1111:2222:3333:4444:5555:6666:: - 1111:2222:3333:4444:5555:6666::8888
	`(?:[0-9a-fA-F]{1,4}:){5,5}[1-9a-fA-F][0-9a-fA-F]{0,3}::` +
	`(?::[1-9a-fA-F][0-9a-fA-F]{0,3})?|` +

	// 1111:2222:3333:4444:5555:: - 1111:2222:3333:4444:5555::7777:8888
	`(?:[0-9a-fA-F]{1,4}:){4,4}[1-9a-fA-F][0-9a-fA-F]{0,3}::` +
	`(?:[1-9a-fA-F][0-9a-fA-F]{0,3}(?::[0-9a-fA-F]{0,4}){0,1})?|` +

	// 1111:2222:3333:4444:: - 1111:2222:3333:4444::6666:7777:8888
	`(?:[0-9a-fA-F]{1,4}:){3,3}[1-9a-fA-F][0-9a-fA-F]{0,3}::` +
	`(?:[1-9a-fA-F][0-9a-fA-F]{0,3}(?::[0-9a-fA-F]{0,4}){0,2})?|` +

	// 1111:2222:3333:: - 1111:2222:3333::5555:6666:7777:8888
	`(?:[0-9a-fA-F]{1,4}:){2,2}[1-9a-fA-F][0-9a-fA-F]{0,3}::` +
	`(?:[1-9a-fA-F][0-9a-fA-F]{0,3}(?::[0-9a-fA-F]{0,4}){0,3})?|` +

	// 1111:2222:: - 1111:2222::4444:5555:6666:7777:8888
	`(?:[0-9a-fA-F]{1,4}:){1,1}[1-9a-fA-F][0-9a-fA-F]{0,3}::` +
	`(?:[1-9a-fA-F][0-9a-fA-F]{0,3}(?::[0-9a-fA-F]{0,4}){0,4})?|` +

	// 1111:: - 1111::3333:4444:5555:6666:7777:8888
	`[1-9a-fA-F][0-9a-fA-F]{0,3}::` +
	`(?:[1-9a-fA-F][0-9a-fA-F]{0,3}(?::[0-9a-fA-F]{0,4}){0,5})?|` +

	// ::2222 - ::2222:3333:4444:5555:6666:7777:8888
	`::[1-9a-fA-F][0-9a-fA-F]{0,3}(?::[0-9a-fA-F]{0,4}){0,6}` +

	// NOTE: the address "::" alone is excluded as exceptionally ambiguous
	`)` +
	`(?=[^0-9a-fA-F]|$)`

// Timestamp returns a filter matching HH:MM:SS tokens, e.g. 12:43:00.
// Matched tokens are restyled with bold emphasis.
func Timestamp() *filter.RegexFilter {
	return filter.New(styleTimestamp, timestampPattern)
}

// IPv4 returns a filter matching dotted-quad addresses, e.g.
// 172.16.32.128, with every octet constrained to 0-255. Matched
// addresses are underlined in a color derived from the address.
func IPv4() *filter.RegexFilter {
	return filter.New(styleIPv4, ipv4Pattern)
}

// IPv6 returns a filter matching canonical and zero-compressed IPv6
// addresses, e.g. 2860:1FF::3:4. Matched addresses are underlined in a
// color derived from the address.
func IPv6() *filter.RegexFilter {
	return filter.New(styleIPv6, ipv6Pattern)
}

func styleTimestamp(ts string) string {
	return Styles.Timestamp.Render(ts)
}

func styleIPv4(addr string) string {
	parts := strings.Split(addr, ".")
	octets := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			// The pattern guarantees decimal octets; reaching this
			// is a contract violation, not an input problem.
			panic(fmt.Sprintf("highlight: octet %q in matched address %q: %v", part, addr, err))
		}
		octets[i] = n
	}
	return AddressStyle(colorgen.Index8(octets)).Render(addr)
}

func styleIPv6(addr string) string {
	sections := strings.SplitN(addr, "::", 2)

	segments := hextets(addr, sections[0])

	// A "::" compresses one or more zero hextets; expand them so the
	// sequence always has exactly 8 segments.
	if len(sections) > 1 {
		tail := hextets(addr, sections[1])
		implied := 8 - (len(segments) + len(tail))
		for i := 0; i < implied; i++ {
			segments = append(segments, 0)
		}
		segments = append(segments, tail...)
	}

	return AddressStyle(colorgen.Index8(segments)).Render(addr)
}

// hextets parses a colon-separated run of hex segments; empty segments
// count as zero.
func hextets(addr, section string) []int {
	parts := strings.Split(section, ":")
	out := make([]int, len(parts))
	for i, part := range parts {
		if part == "" {
			continue
		}
		n, err := strconv.ParseUint(part, 16, 32)
		if err != nil {
			panic(fmt.Sprintf("highlight: hextet %q in matched address %q: %v", part, addr, err))
		}
		out[i] = int(n)
	}
	return out
}
