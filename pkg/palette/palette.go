// Package palette derives a stable hue for each cluster index.
//
// Hues come from a fixed table of small primes:
//
//	hue = primes[index mod len(primes)] * 13 mod 360
//
// The result depends only on the index, so recomputing a layout never
// changes a cluster's color. Hues repeat once the index passes the table
// length and may collide earlier through the modulus; callers that need
// distinct colors for many clusters must handle that themselves.
package palette

import "github.com/lucasb-eyer/go-colorful"

// primes is the hue seed table.
var primes = [...]int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41,
	43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
}

// Size is the number of distinct seeds before hues repeat.
const Size = len(primes)

// Display saturation and lightness used by [Hex].
const (
	Saturation = 0.55
	Lightness  = 0.60
)

// Hue returns the hue in degrees [0, 360) for a cluster index.
// Negative indices are folded into the table like positive ones.
func Hue(index int) int {
	i := index % Size
	if i < 0 {
		i += Size
	}
	return primes[i] * 13 % 360
}

// Hues returns the hue of every index in [0, n).
func Hues(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = Hue(i)
	}
	return out
}

// Hex returns an sRGB hex color ("#rrggbb") for a cluster index at the
// package's fixed saturation and lightness.
func Hex(index int) string {
	return colorful.Hsl(float64(Hue(index)), Saturation, Lightness).Clamped().Hex()
}
