// Package colorgen maps sequences of integers to deterministic colors.
// It is used to pick stable highlight colors for matched addresses, so
// the same address always renders in the same color.
package colorgen

const (
	min24 = 70
	max24 = 255

	// Usable span per RGB channel. Folded channel values land in
	// [0, range24) before the min24 offset is applied.
	range24 = max24 - min24
)

// palette holds the 8-bit terminal colors with the grayscale entries
// removed (0, 7, 15 and the 231-255 block). Built once, never mutated.
var palette = buildPalette()

func buildPalette() []int {
	out := make([]int, 0, 228)
	for v := 0; v < 256; v++ {
		if v == 0 || v == 7 || v == 15 || v >= 231 {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Palette returns a copy of the reduced 8-bit color table.
func Palette() []int {
	out := make([]int, len(palette))
	copy(out, palette)
	return out
}

// Index8 folds vals into an index of the reduced palette and returns the
// 8-bit terminal color at that index. The fold is order-sensitive and
// deterministic: equal sequences always produce equal colors.
func Index8(vals []int) int {
	idx := 0
	for _, v := range vals {
		idx = (idx + v) % len(palette)
	}
	return palette[idx]
}

// RGB24 folds vals into a 24-bit color. Elements are assigned to the
// R/G/B channels in rotation over the 3-aligned prefix of the sequence;
// any 1-2 leftover elements are folded with a different rule and added to
// all three channels. Every channel is offset by 70 afterwards; for
// 3-aligned input every channel lands in [70, 255).
//
// The domain filters only use Index8; this variant is kept for callers
// that want true-color output.
func RGB24(vals []int) (r, g, b int) {
	var rgb [3]int

	extra := len(vals) % 3
	even := len(vals) - extra

	for i := 0; i < even; i++ {
		rgb[i%3] = (rgb[i%3] + vals[i] + salt(i)) % range24
	}

	for i := 0; i < extra; i++ {
		amount := ((vals[even+i] + salt(even+i)) / 3) % range24
		rgb[0] += amount
		rgb[1] += amount
		rgb[2] += amount
	}

	return rgb[0] + min24, rgb[1] + min24, rgb[2] + min24
}

// salt decorrelates visually similar inputs by mixing each element's
// position into the fold. It must be stable across calls within a run.
func salt(i int) int {
	return i
}
