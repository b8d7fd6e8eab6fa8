// Package classify implements entropy and pattern based classification of
// ROM byte ranges.
package classify

// Tag defines the content classification of a byte range.
type Tag uint8

const (
	TagUnknown Tag = iota
	TagCode
	TagGraphics
	TagAudio
	TagText
	TagDataTable
	TagCompressed
)

// String implements the fmt.Stringer interface.
func (t Tag) String() string {
	switch t {
	case TagCode:
		return "code"
	case TagGraphics:
		return "graphics"
	case TagAudio:
		return "audio"
	case TagText:
		return "text"
	case TagDataTable:
		return "datatable"
	case TagCompressed:
		return "compressed"
	default:
		return "unknown"
	}
}

// Priority returns the tie-break priority of the tag, higher wins when
// classification scores are equal.
func (t Tag) Priority() int {
	switch t {
	case TagCode:
		return 6
	case TagDataTable:
		return 5
	case TagGraphics:
		return 4
	case TagAudio:
		return 3
	case TagText:
		return 2
	case TagCompressed:
		return 1
	default:
		return 0
	}
}

// Classifier rates how strongly a byte window matches one content type.
type Classifier interface {
	// Name returns the classifier name for evidence records.
	Name() string
	// Classify returns the tag of the classifier and a confidence score
	// in [0,1] for the window starting at the given file offset.
	Classify(window []byte, offset int) (Tag, float64)
}

// Evidence records one candidate classification of a byte range,
// overridden candidates are retained for debuggability.
type Evidence struct {
	Tag        Tag
	Score      float64
	Source     string
	Overridden bool
}

// WindowClass is the classification result of one window.
type WindowClass struct {
	Offset     int
	Length     int
	Tag        Tag
	Confidence float64
	Evidence   []Evidence
}

// Override replaces the tag of a window classification, the previous
// winner is kept as overridden evidence instead of being dropped.
func (w *WindowClass) Override(tag Tag, score float64, source string) {
	w.Evidence = append(w.Evidence, Evidence{
		Tag:        w.Tag,
		Score:      w.Confidence,
		Source:     "overridden",
		Overridden: true,
	})
	w.Tag = tag
	w.Confidence = score
	w.Evidence = append(w.Evidence, Evidence{Tag: tag, Score: score, Source: source})
}

// Region is a contiguous classified byte range of the ROM.
type Region struct {
	Start      int
	Length     int
	Tag        Tag
	Confidence float64
	Evidence   []Evidence
}

// End returns the exclusive end offset of the region.
func (r Region) End() int {
	return r.Start + r.Length
}
