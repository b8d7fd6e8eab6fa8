package classify

// BRRBlockSize is the byte size of one compressed sample block, a
// header byte followed by 8 bytes with two 4 bit samples each.
const BRRBlockSize = 9

const (
	brrMaxShift        = 12
	brrHeaderEndFlag   = 0x01
	brrHeaderLoopFlag  = 0x02
	audioMinBlocks     = 4
	audioMinRunRatio   = 0.5
	audioMinHeaderKind = 2
	audioMaxScore      = 0.9
)

// ValidBRRHeader reports whether the byte is a plausible sample block
// header. The shift range only covers 0 to 12, higher values do not
// occur in encoded streams.
func ValidBRRHeader(header byte) bool {
	return header>>4 <= brrMaxShift
}

// BRREndBlock reports whether the block header marks the final block of
// a sample.
func BRREndBlock(header byte) bool {
	return header&brrHeaderEndFlag != 0
}

// BRRLoopBlock reports whether the block header carries the loop flag.
func BRRLoopBlock(header byte) bool {
	return header&brrHeaderLoopFlag != 0
}

// audioClassifier detects compressed sample streams by checking block
// headers at every possible phase within the window.
type audioClassifier struct{}

func newAudioClassifier() *audioClassifier {
	return &audioClassifier{}
}

func (c *audioClassifier) Name() string {
	return "audio"
}

func (c *audioClassifier) Classify(window []byte, offset int) (Tag, float64) {
	if len(window) < BRRBlockSize {
		return TagUnknown, 0
	}

	bestScore := 0.0

	for phase := 0; phase < BRRBlockSize; phase++ {
		score := scoreBRRPhase(window[phase:])
		if score > bestScore {
			bestScore = score
		}
	}

	if bestScore == 0 {
		return TagUnknown, 0
	}
	return TagAudio, bestScore
}

// scoreBRRPhase rates the data as a block stream starting at offset 0.
// The score is the longest consecutive run of valid block headers
// relative to the total block count, streams whose headers never vary
// are rejected as false positives.
func scoreBRRPhase(data []byte) float64 {
	blocks := len(data) / BRRBlockSize
	if blocks < audioMinBlocks {
		return 0
	}

	headers := map[byte]struct{}{}
	longestRun := 0
	run := 0
	for block := 0; block < blocks; block++ {
		header := data[block*BRRBlockSize]
		if !ValidBRRHeader(header) {
			run = 0
			continue
		}
		headers[header] = struct{}{}
		run++
		if run > longestRun {
			longestRun = run
		}
	}

	if len(headers) < audioMinHeaderKind {
		return 0
	}

	ratio := float64(longestRun) / float64(blocks)
	if ratio < audioMinRunRatio {
		return 0
	}
	return ratio * audioMaxScore
}
