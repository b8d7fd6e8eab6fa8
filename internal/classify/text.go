package classify

import (
	"unicode"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

const (
	textMaxScore          = 0.9
	shiftJISMinKanaRatio  = 0.6
	shiftJISMinRuneLength = 4
)

// textClassifier detects script data, either plain ASCII strings or
// Shift-JIS encoded Japanese script.
type textClassifier struct {
	minRun     int
	terminator byte
	encoding   string
}

func newTextClassifier(minRun int, terminator byte, encoding string) *textClassifier {
	return &textClassifier{
		minRun:     minRun,
		terminator: terminator,
		encoding:   encoding,
	}
}

func (c *textClassifier) Name() string {
	return "text"
}

func (c *textClassifier) Classify(window []byte, offset int) (Tag, float64) {
	if c.encoding == "shiftjis" {
		if score := scoreShiftJIS(window); score > 0 {
			return TagText, score
		}
	}

	score := c.scoreASCII(window)
	if score == 0 {
		return TagUnknown, 0
	}
	return TagText, score
}

// scoreASCII searches for the longest run of printable characters that
// is terminated by the configured string terminator byte.
func (c *textClassifier) scoreASCII(window []byte) float64 {
	longest := 0
	run := 0
	for _, b := range window {
		if printableASCII(b) {
			run++
			continue
		}
		if b == c.terminator && run > longest {
			longest = run
		}
		run = 0
	}

	if longest < c.minRun {
		return 0
	}
	return textMaxScore * float64(longest) / float64(len(window))
}

func printableASCII(b byte) bool {
	return b >= 0x20 && b <= 0x7E
}

// scoreShiftJIS decodes the window as Shift-JIS and rates it by the
// ratio of Japanese script runes in the result.
func scoreShiftJIS(window []byte) float64 {
	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), window)
	if err != nil {
		return 0
	}

	total := 0
	japaneseRunes := 0
	for _, r := range string(decoded) {
		if r == unicode.ReplacementChar {
			continue
		}
		total++
		if unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han) {
			japaneseRunes++
		}
	}

	if total < shiftJISMinRuneLength {
		return 0
	}
	ratio := float64(japaneseRunes) / float64(total)
	if ratio < shiftJISMinKanaRatio {
		return 0
	}
	return textMaxScore * ratio
}
