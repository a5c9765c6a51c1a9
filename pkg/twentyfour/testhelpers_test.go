package twentyfour

import "os"

// shouldRunHeavy returns true when the exhaustive sweeps should run even in
// short mode. Set TWENTYFOUR_FORCE_HEAVY=1 (or "true") to override.
func shouldRunHeavy() bool {
	v := os.Getenv("TWENTYFOUR_FORCE_HEAVY")
	return v == "1" || v == "true" || v == "TRUE" || v == "True"
}

// allHands calls fn for every multiset of four values in 1..maxDigit.
func allHands(maxDigit int, fn func(Hand)) {
	for a := 1; a <= maxDigit; a++ {
		for b := a; b <= maxDigit; b++ {
			for c := b; c <= maxDigit; c++ {
				for d := c; d <= maxDigit; d++ {
					fn(Hand{a, b, c, d})
				}
			}
		}
	}
}
