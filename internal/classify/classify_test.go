package classify

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/retroenv/snesgoanalyzer/internal/arch/w65816"
	"github.com/retroenv/snesgoanalyzer/internal/options"
	"github.com/retroenv/snesgoanalyzer/internal/snes"
)

const testROMSize = 0x40000

func testTranslator() *snes.Translator {
	return snes.NewTranslator(snes.LoROM, testROMSize)
}

// codeWindow returns a window of plausible reset code, immediate loads
// and subroutine calls whose targets stay inside the first bank.
func codeWindow() []byte {
	block := []byte{
		0xA9, 0x12, // lda #$12
		0x20, 0x10, 0x80, // jsr $8010
		0xEA, // nop
		0x60, // rts
	}
	var window []byte
	for i := 0; i < 8; i++ {
		window = append(window, block...)
	}
	return window
}

// pointerWindow returns 16 long pointer entries into bank $00 ROM space.
func pointerWindow() []byte {
	var window []byte
	for i := 0; i < 16; i++ {
		low := byte(i * 37)
		window = append(window, low, 0x80, 0x00)
	}
	return window
}

// tileWindow returns 4bpp tiles whose plane rows change gradually
// between neighbouring rows.
func tileWindow() []byte {
	plane0 := []byte{0x3C, 0x3C, 0x7E, 0x7E, 0x7E, 0x7E, 0x3C, 0x3C}
	plane1 := []byte{0x18, 0x18, 0x3C, 0x3C, 0x3C, 0x3C, 0x18, 0x18}

	var window []byte
	for tile := 0; tile < 4; tile++ {
		for row := 0; row < 8; row++ {
			window = append(window, plane0[row]^byte(tile), plane1[row])
		}
		for i := 0; i < 8; i++ {
			window = append(window, 0x00, 0x00)
		}
	}
	return window
}

// sampleWindow returns sample blocks with varying but valid headers.
func sampleWindow() []byte {
	var window []byte
	headers := []byte{0x90, 0xA0, 0x94, 0xA4, 0x93}
	for _, header := range headers {
		window = append(window, header)
		window = append(window, bytes.Repeat([]byte{0x11}, 8)...)
	}
	return window
}

func TestCodeClassifier(t *testing.T) {
	t.Parallel()

	classifier := newCodeClassifier(w65816.NewDecoder(), testTranslator())

	tag, score := classifier.Classify(codeWindow(), 0)
	assert.Equal(t, TagCode, tag)
	assert.True(t, score > 0.8)

	tag, score = classifier.Classify(bytes.Repeat([]byte{0x42}, 64), 0)
	assert.Equal(t, TagCode, tag)
	assert.True(t, score < 0.3)
}

func TestCodeClassifierTruncated(t *testing.T) {
	t.Parallel()

	classifier := newCodeClassifier(w65816.NewDecoder(), testTranslator())

	_, fullScore := classifier.Classify(bytes.Repeat([]byte{0xEA}, 8), 0)

	// a long jump clipped by the window end lowers the score
	window := append(bytes.Repeat([]byte{0xEA}, 7), 0x5C)
	_, truncScore := classifier.Classify(window, 0)
	assert.True(t, truncScore < fullScore)
}

func TestAudioClassifierShortWindow(t *testing.T) {
	t.Parallel()

	classifier := newAudioClassifier()

	tag, score := classifier.Classify([]byte{1, 2, 3, 4, 5}, 0)
	assert.Equal(t, TagUnknown, tag)
	assert.Equal(t, 0.0, score)
}

func TestGraphicsClassifier(t *testing.T) {
	t.Parallel()

	classifier := newGraphicsClassifier()

	tag, score := classifier.Classify(tileWindow(), 0)
	assert.Equal(t, TagGraphics, tag)
	assert.True(t, score > 0.5)

	depth, ratio := DetectBitDepth(tileWindow())
	assert.Equal(t, 4, depth)
	assert.Equal(t, 1.0, ratio)

	tag, _ = classifier.Classify(codeWindow(), 0)
	assert.Equal(t, TagUnknown, tag)
}

func TestAudioClassifier(t *testing.T) {
	t.Parallel()

	classifier := newAudioClassifier()

	tag, score := classifier.Classify(sampleWindow(), 0)
	assert.Equal(t, TagAudio, tag)
	assert.True(t, score > 0.8)

	// headers never vary, streams like this are silence fills
	tag, _ = classifier.Classify(bytes.Repeat([]byte{0x90, 0, 0, 0, 0, 0, 0, 0, 0}, 8), 0)
	assert.Equal(t, TagUnknown, tag)
}

func TestTextClassifier(t *testing.T) {
	t.Parallel()

	classifier := newTextClassifier(8, 0x00, "ascii")

	window := append([]byte("The quick brown fox jumps over the lazy dog"), 0x00)
	window = append(window, bytes.Repeat([]byte{0xFF}, 19)...)

	tag, score := classifier.Classify(window, 0)
	assert.Equal(t, TagText, tag)
	assert.True(t, score > 0.5)

	tag, _ = classifier.Classify(bytes.Repeat([]byte{0xFF}, 64), 0)
	assert.Equal(t, TagUnknown, tag)
}

func TestTextClassifierShiftJIS(t *testing.T) {
	t.Parallel()

	classifier := newTextClassifier(8, 0x00, "shiftjis")

	// "こんにちは" in Shift-JIS
	window := []byte{0x82, 0xB1, 0x82, 0xF1, 0x82, 0xC9, 0x82, 0xBF, 0x82, 0xCD}

	tag, score := classifier.Classify(window, 0)
	assert.Equal(t, TagText, tag)
	assert.True(t, score > 0.5)
}

func TestDataTableClassifier(t *testing.T) {
	t.Parallel()

	classifier := newDataTableClassifier(testTranslator(), 0.5, 8, 0.75)

	tag, score := classifier.Classify(pointerWindow(), 0)
	assert.Equal(t, TagDataTable, tag)
	assert.Equal(t, 0.95, score)

	var records []byte
	for i := 0; i < 32; i++ {
		records = append(records, byte(i), 0x01, 0x02, 0x03)
	}
	tag, score = classifier.Classify(records, 0)
	assert.Equal(t, TagDataTable, tag)
	assert.True(t, score > 0.5)
}

func TestEngineClassifyWindow(t *testing.T) {
	t.Parallel()

	engine := NewEngine(testTranslator(), w65816.NewDecoder(), options.NewAnalysis())

	permutation := make([]byte, 256)
	for i := range permutation {
		permutation[i] = byte((i*167 + 13) & 0xFF)
	}

	tests := []struct {
		name     string
		window   []byte
		expected Tag
	}{
		{"uniform", bytes.Repeat([]byte{0x00}, 256), TagUnknown},
		{"code", codeWindow(), TagCode},
		{"pointer table", pointerWindow(), TagDataTable},
		{"compressed", permutation, TagCompressed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.ClassifyWindow(tt.window, 0)
			assert.Equal(t, tt.expected, result.Tag)
			assert.Equal(t, len(tt.window), result.Length)
		})
	}
}

func TestEngineClassifyWindowLowConfidence(t *testing.T) {
	t.Parallel()

	engine := NewEngine(testTranslator(), w65816.NewDecoder(), options.NewAnalysis())

	// a weak instruction stream, a third of the opcodes is undefined and
	// none of the byte strides repeats
	window := []byte{
		0x42, 0xE8, 0xC8, 0x42, 0xE8, 0xE8, 0x42, 0xC8,
		0xC8, 0xE8, 0x42, 0xC8, 0xE8, 0xC8, 0x42,
	}

	result := engine.ClassifyWindow(window, 0)
	assert.Equal(t, TagUnknown, result.Tag)
	assert.Equal(t, 0.0, result.Confidence)

	// the demoted verdict stays visible as overridden evidence
	overridden := false
	for _, evidence := range result.Evidence {
		if evidence.Overridden && evidence.Tag == TagCode {
			overridden = true
		}
	}
	assert.True(t, overridden)
	assert.Equal(t, lowConfidenceSource, result.Evidence[len(result.Evidence)-1].Source)
}

func TestEngineClassifyShortTail(t *testing.T) {
	t.Parallel()

	engine := NewEngine(testTranslator(), w65816.NewDecoder(), options.NewAnalysis())

	// a clipped last bank leaves a window shorter than a sample block
	bank := make([]byte, engine.WindowSize()+5)
	copy(bank[engine.WindowSize():], []byte{1, 2, 3, 4, 5})

	windows := engine.ClassifyBank(bank, 0)
	assert.Equal(t, 2, len(windows))
	assert.Equal(t, 5, windows[1].Length)
	assert.Equal(t, engine.WindowSize(), windows[1].Offset)
}

func TestEngineClassifyBank(t *testing.T) {
	t.Parallel()

	engine := NewEngine(testTranslator(), w65816.NewDecoder(), options.NewAnalysis())

	bank := make([]byte, 0x8000)
	windows := engine.ClassifyBank(bank, 0)
	assert.Equal(t, 0x8000/engine.WindowSize(), len(windows))

	offset := 0
	for _, window := range windows {
		assert.Equal(t, offset, window.Offset)
		offset += window.Length
	}
	assert.Equal(t, 0x8000, offset)
}

func TestMergeWindows(t *testing.T) {
	t.Parallel()

	windows := []WindowClass{
		{Offset: 0, Length: 256, Tag: TagCode, Confidence: 0.9},
		{Offset: 256, Length: 256, Tag: TagCode, Confidence: 0.7},
		{Offset: 512, Length: 256, Tag: TagGraphics, Confidence: 0.8},
		{Offset: 768, Length: 256, Tag: TagCode, Confidence: 0.6},
	}

	regions := MergeWindows(windows)
	assert.Equal(t, 3, len(regions))

	assert.Equal(t, TagCode, regions[0].Tag)
	assert.Equal(t, 512, regions[0].Length)
	assert.Equal(t, 0.8, regions[0].Confidence)
	assert.Equal(t, 512, regions[0].End())

	assert.Equal(t, TagGraphics, regions[1].Tag)
	assert.Equal(t, TagCode, regions[2].Tag)
	assert.Equal(t, 768, regions[2].Start)
}

func TestTagPriority(t *testing.T) {
	t.Parallel()

	ordered := []Tag{
		TagUnknown, TagCompressed, TagText, TagAudio,
		TagGraphics, TagDataTable, TagCode,
	}
	for i := 1; i < len(ordered); i++ {
		assert.True(t, ordered[i].Priority() > ordered[i-1].Priority())
	}
}
