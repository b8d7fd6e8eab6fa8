package analyzer

import (
	"bytes"
	"context"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"

	"github.com/retroenv/snesgoanalyzer/internal/classify"
	"github.com/retroenv/snesgoanalyzer/internal/options"
	"github.com/retroenv/snesgoanalyzer/internal/rom"
	"github.com/retroenv/snesgoanalyzer/internal/xref"
)

// testImage builds a small LoROM image with one known region of each
// content type in the first bank:
//
//	$0000 code, $0100 pointer table, $0200 tiles, $0300 samples
func testImage(t *testing.T) *rom.Image {
	t.Helper()

	data := make([]byte, 0x10000)

	code := []byte{
		0xA9, 0x12, // lda #$12
		0x20, 0x10, 0x80, // jsr $8010
		0xEA, // nop
		0x60, // rts
	}
	for i := 0; i < 36; i++ {
		copy(data[i*len(code):], code)
	}
	for i := 252; i < 256; i++ {
		data[i] = 0xEA
	}

	for i := 0; i < 85; i++ {
		data[0x100+i*3] = byte(i * 3)
		data[0x100+i*3+1] = 0x80
		data[0x100+i*3+2] = 0x00
	}

	plane0 := []byte{0x3C, 0x3C, 0x7E, 0x7E, 0x7E, 0x7E, 0x3C, 0x3C}
	plane1 := []byte{0x18, 0x18, 0x3C, 0x3C, 0x3C, 0x3C, 0x18, 0x18}
	for tile := 0; tile < 8; tile++ {
		base := 0x200 + tile*32
		for row := 0; row < 8; row++ {
			data[base+row*2] = plane0[row] ^ byte(tile)
			data[base+row*2+1] = plane1[row]
		}
	}

	for block := 0; block < 28; block++ {
		header := byte(0x90)
		if block%2 == 1 {
			header = 0xA0
		}
		if block%7 == 6 {
			header |= 0x01
			if block == 6 {
				header |= 0x02
			}
		}
		base := 0x300 + block*9
		data[base] = header
		for i := 1; i < 9; i++ {
			data[base+i] = 0x23
		}
	}

	// erased flash fill up to the internal header
	for i := 0x400; i < 0x7FC0; i++ {
		data[i] = 0xFF
	}

	// internal header
	copy(data[0x7FC0:], "TEST ROM             ")
	data[0x7FC0+0x15] = 0x20
	data[0x7FC0+0x17] = 0x0A
	data[0x7FC0+0x1C] = 0xFF
	data[0x7FC0+0x1D] = 0xAB
	data[0x7FC0+0x1E] = 0x00
	data[0x7FC0+0x1F] = 0x54

	image, err := rom.Load(bytes.NewReader(data))
	assert.NoError(t, err)
	return image
}

func testAnalyzer(t *testing.T) *Analyzer {
	t.Helper()

	return New(log.NewTestLogger(t), testImage(t), options.NewAnalysis())
}

func regionAt(t *testing.T, result *Result, offset int) classify.Region {
	t.Helper()

	region, found := result.RegionAt(offset)
	assert.True(t, found)
	return region
}

func TestAnalyzerRun(t *testing.T) {
	t.Parallel()

	result, err := testAnalyzer(t).Run(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, classify.TagCode, regionAt(t, result, 0x000).Tag)
	assert.Equal(t, classify.TagDataTable, regionAt(t, result, 0x100).Tag)
	assert.Equal(t, classify.TagGraphics, regionAt(t, result, 0x200).Tag)
	assert.Equal(t, classify.TagAudio, regionAt(t, result, 0x300).Tag)
	assert.Equal(t, classify.TagUnknown, regionAt(t, result, 0x4000).Tag)

	// regions cover the whole image without gaps
	offset := 0
	for _, region := range result.Regions() {
		assert.Equal(t, offset, region.Start)
		offset += region.Length
	}
	assert.Equal(t, 0x10000, offset)
}

func TestAnalyzerReferences(t *testing.T) {
	t.Parallel()

	result, err := testAnalyzer(t).Run(context.Background())
	assert.NoError(t, err)

	// every jsr in the code region targets $00:8010
	callers := result.References().CallersOf(0x008010)
	assert.Equal(t, 36, len(callers))
	assert.Equal(t, xref.KindCall, callers[0].Kind)

	stats := result.References().Stats()
	assert.Equal(t, 36, stats[xref.KindCall])
	assert.True(t, stats[xref.KindPointer] >= 85)
}

func TestAnalyzerPointerTables(t *testing.T) {
	t.Parallel()

	result, err := testAnalyzer(t).Run(context.Background())
	assert.NoError(t, err)

	tables := result.PointerTables()
	assert.True(t, len(tables) >= 1)
	assert.Equal(t, 0x100, tables[0].Offset)
	assert.Equal(t, 3, tables[0].EntrySize)
	assert.True(t, len(tables[0].Targets) >= 85)
	assert.Equal(t, uint32(0x008000), tables[0].Targets[0])
}

func TestAnalyzerInstructions(t *testing.T) {
	t.Parallel()

	result, err := testAnalyzer(t).Run(context.Background())
	assert.NoError(t, err)

	// 36 code blocks of 4 instructions each plus 4 trailing nops
	instructions := result.Instructions()
	assert.Equal(t, 148, len(instructions))
	assert.Equal(t, uint32(0x008000), instructions[0].Address)
	assert.Equal(t, "LDA", instructions[0].Mnemonic)
	assert.Equal(t, "NOP", instructions[147].Mnemonic)
}

func TestAnalyzerBankStats(t *testing.T) {
	t.Parallel()

	result, err := testAnalyzer(t).Run(context.Background())
	assert.NoError(t, err)

	stats := result.BankStats()
	assert.Equal(t, 2, len(stats))

	assert.Equal(t, 0, stats[0].Bank)
	assert.Equal(t, 148, stats[0].Instructions)
	assert.True(t, stats[0].References >= 121)
	assert.Equal(t, 256, stats[0].TagBytes[classify.TagCode])

	// the second bank holds only zero fill
	assert.Equal(t, 1, stats[1].Bank)
	assert.Equal(t, 0, stats[1].Instructions)
	assert.Equal(t, 0x8000, stats[1].TagBytes[classify.TagUnknown])
}

func TestAnalyzerAssets(t *testing.T) {
	t.Parallel()

	result, err := testAnalyzer(t).Run(context.Background())
	assert.NoError(t, err)

	foundTiles := false
	for _, chunk := range result.Graphics() {
		if chunk.Offset == 0x200 {
			foundTiles = true
			assert.Equal(t, 4, chunk.BitDepth)
			assert.Equal(t, 8, chunk.Tiles)
		}
	}
	assert.True(t, foundTiles)

	samples := result.Samples()
	assert.Equal(t, 4, len(samples))
	assert.Equal(t, 0x300, samples[0].Offset)
	assert.Equal(t, 7, samples[0].Blocks)
	assert.True(t, samples[0].Looped)
	assert.False(t, samples[1].Looped)
}

func TestAnalyzerCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := testAnalyzer(t).Run(ctx)
	assert.NoError(t, err)

	for _, region := range result.Regions() {
		assert.Equal(t, classify.TagUnknown, region.Tag)
		assert.Equal(t, 0.0, region.Confidence)
	}
	assert.Equal(t, 0, result.References().Len())
	assert.Equal(t, 0, len(result.Instructions()))

	for _, stats := range result.BankStats() {
		assert.Equal(t, 0, stats.Instructions)
	}
}
