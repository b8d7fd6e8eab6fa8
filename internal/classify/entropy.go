package classify

import "math"

// Entropy computes the Shannon entropy over the byte value histogram of
// the data. All identical bytes yield 0.0, a uniform distribution over
// all 256 values yields 8.0.
func Entropy(data []byte) float64 {
	if len(data) == 0 {
		return 0.0
	}

	var counts [256]int
	for _, b := range data {
		counts[b]++
	}

	total := float64(len(data))
	entropy := 0.0
	for _, count := range counts {
		if count == 0 {
			continue
		}
		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}
