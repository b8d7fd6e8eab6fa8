package classify

import "github.com/retroenv/snesgoanalyzer/internal/snes"

const (
	dataTableMaxEntropy = 6.0
	dataTableMinStride  = 2
	dataTableMaxStride  = 16
	dataTableMaxScore   = 0.85
	pointerTableScore   = 0.95
)

// dataTableClassifier detects structured records, either fixed stride
// tables whose entries repeat bytes at the same position or tables of
// pointers into mapped ROM.
type dataTableClassifier struct {
	translator      *snes.Translator
	threshold       float64
	pointerMinCount int
	pointerMinShare float64
}

func newDataTableClassifier(translator *snes.Translator, threshold float64,
	pointerMinCount int, pointerMinShare float64,
) *dataTableClassifier {
	return &dataTableClassifier{
		translator:      translator,
		threshold:       threshold,
		pointerMinCount: pointerMinCount,
		pointerMinShare: pointerMinShare,
	}
}

func (c *dataTableClassifier) Name() string {
	return "datatable"
}

func (c *dataTableClassifier) Classify(window []byte, offset int) (Tag, float64) {
	if score := c.scorePointerRun(window, offset); score > 0 {
		return TagDataTable, score
	}

	if Entropy(window) > dataTableMaxEntropy {
		return TagUnknown, 0
	}

	best := 0.0
	for stride := dataTableMinStride; stride <= dataTableMaxStride; stride++ {
		ratio := stridePeriodicity(window, stride)
		if ratio > best {
			best = ratio
		}
	}

	if best < c.threshold {
		return TagUnknown, 0
	}
	return TagDataTable, best * dataTableMaxScore
}

// stridePeriodicity measures how often a byte equals the byte one
// stride earlier, fixed record tables repeat most positions.
func stridePeriodicity(window []byte, stride int) float64 {
	if len(window) < stride*2 {
		return 0
	}

	matches := 0
	total := 0
	for i := stride; i < len(window); i++ {
		total++
		if window[i] == window[i-stride] {
			matches++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(matches) / float64(total)
}

// scorePointerRun checks the window for a run of 2 or 3 byte little
// endian addresses that resolve inside mapped ROM. Two byte entries
// use the bank the window itself resides in.
func (c *dataTableClassifier) scorePointerRun(window []byte, offset int) float64 {
	bank, _, err := c.translator.FromFileOffset(snes.FileOffset(offset))
	if err != nil {
		return 0
	}

	best := 0.0
	for _, entrySize := range []int{3, 2} {
		entries := len(window) / entrySize
		if entries < c.pointerMinCount {
			continue
		}

		valid := 0
		for entry := 0; entry < entries; entry++ {
			data := window[entry*entrySize : (entry+1)*entrySize]
			if fillEntry(data) {
				continue
			}
			address := pointerEntry(data, entrySize, bank)
			if c.translator.Contains(address) {
				valid++
			}
		}

		share := float64(valid) / float64(entries)
		if share >= c.pointerMinShare && share > best {
			best = share
		}
	}

	if best == 0 {
		return 0
	}
	return best * pointerTableScore
}

// fillEntry reports whether the entry consists only of erased flash or
// zero padding bytes.
func fillEntry(entry []byte) bool {
	for _, b := range entry {
		if b != 0x00 && b != 0xFF {
			return false
		}
	}
	return true
}

func pointerEntry(data []byte, entrySize int, bank byte) uint32 {
	address := uint32(data[0]) | uint32(data[1])<<8
	if entrySize == 3 {
		return address | uint32(data[2])<<16
	}
	return address | uint32(bank)<<16
}
