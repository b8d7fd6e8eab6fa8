package classify

import (
	"github.com/retroenv/snesgoanalyzer/internal/arch/w65816"
	"github.com/retroenv/snesgoanalyzer/internal/options"
	"github.com/retroenv/snesgoanalyzer/internal/snes"
)

const (
	entropySource       = "entropy"
	uniformSource       = "uniform"
	lowConfidenceSource = "low-confidence"
	minWindowConfidence = 0.25
	uniformConfidence   = 0.1
)

// Engine runs all content classifiers over fixed size windows and
// assigns every window exactly one region tag.
type Engine struct {
	classifiers []Classifier

	windowSize        int
	compressedEntropy float64
}

// NewEngine creates a classification engine for a ROM using the given
// address translator and instruction decoder.
func NewEngine(translator *snes.Translator, decoder *w65816.Decoder,
	opts options.Analysis,
) *Engine {
	return &Engine{
		classifiers: []Classifier{
			newCodeClassifier(decoder, translator),
			newDataTableClassifier(translator, opts.DataTableThreshold,
				opts.PointerTableMinEntries, opts.PointerTableDensity),
			newGraphicsClassifier(),
			newAudioClassifier(),
			newTextClassifier(opts.TextMinRun, opts.TextTerminator, opts.TextEncoding),
		},
		windowSize:        opts.Window,
		compressedEntropy: opts.CompressedEntropyThreshold,
	}
}

// WindowSize returns the configured classification window size in bytes.
func (e *Engine) WindowSize() int {
	return e.windowSize
}

// ClassifyWindow assigns a tag to a single window at the given file
// offset. All classifier verdicts are kept as evidence, the verdict
// with the highest score wins and region priority breaks score ties.
func (e *Engine) ClassifyWindow(window []byte, offset int) WindowClass {
	result := WindowClass{
		Offset: offset,
		Length: len(window),
		Tag:    TagUnknown,
	}
	if len(window) == 0 {
		return result
	}

	if uniformWindow(window) {
		result.Confidence = uniformConfidence
		result.Evidence = append(result.Evidence, Evidence{
			Tag:    TagUnknown,
			Score:  uniformConfidence,
			Source: uniformSource,
		})
		return result
	}

	for _, classifier := range e.classifiers {
		tag, score := classifier.Classify(window, offset)
		if tag == TagUnknown || score == 0 {
			continue
		}
		result.Evidence = append(result.Evidence, Evidence{
			Tag:    tag,
			Score:  score,
			Source: classifier.Name(),
		})
	}

	entropy := Entropy(window)
	if entropy >= e.compressedEntropy {
		score := 0.5 + 0.5*(entropy-e.compressedEntropy)/(8.0-e.compressedEntropy)
		result.Evidence = append(result.Evidence, Evidence{
			Tag:    TagCompressed,
			Score:  score,
			Source: entropySource,
		})
	}

	for _, evidence := range result.Evidence {
		better := evidence.Score > result.Confidence ||
			(evidence.Score == result.Confidence &&
				evidence.Tag.Priority() > result.Tag.Priority())
		if better {
			result.Tag = evidence.Tag
			result.Confidence = evidence.Score
		}
	}

	if result.Tag != TagUnknown && result.Confidence < minWindowConfidence {
		result.Override(TagUnknown, 0, lowConfidenceSource)
	}
	return result
}

// ClassifyBank classifies all windows of a bank. The offset is the file
// offset of the first bank byte.
func (e *Engine) ClassifyBank(data []byte, offset int) []WindowClass {
	var windows []WindowClass
	for start := 0; start < len(data); start += e.windowSize {
		end := min(start+e.windowSize, len(data))
		windows = append(windows, e.ClassifyWindow(data[start:end], offset+start))
	}
	return windows
}

// MergeWindows coalesces adjacent windows that carry the same tag into
// regions. The region confidence is the length weighted mean of the
// merged window confidences.
func MergeWindows(windows []WindowClass) []Region {
	var regions []Region

	for _, window := range windows {
		if len(regions) > 0 {
			last := &regions[len(regions)-1]
			if last.Tag == window.Tag && last.Start+last.Length == window.Offset {
				total := float64(last.Length + window.Length)
				last.Confidence = (last.Confidence*float64(last.Length) +
					window.Confidence*float64(window.Length)) / total
				last.Length += window.Length
				last.Evidence = append(last.Evidence, window.Evidence...)
				continue
			}
		}

		regions = append(regions, Region{
			Start:      window.Offset,
			Length:     window.Length,
			Tag:        window.Tag,
			Confidence: window.Confidence,
			Evidence:   window.Evidence,
		})
	}
	return regions
}

func uniformWindow(window []byte) bool {
	for _, b := range window[1:] {
		if b != window[0] {
			return false
		}
	}
	return true
}
