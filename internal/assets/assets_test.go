package assets

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/retroenv/snesgoanalyzer/internal/classify"
)

func tileData(tiles int) []byte {
	plane0 := []byte{0x3C, 0x3C, 0x7E, 0x7E, 0x7E, 0x7E, 0x3C, 0x3C}
	plane1 := []byte{0x18, 0x18, 0x3C, 0x3C, 0x3C, 0x3C, 0x18, 0x18}

	var data []byte
	for tile := 0; tile < tiles; tile++ {
		for row := 0; row < 8; row++ {
			data = append(data, plane0[row]^byte(tile), plane1[row])
		}
		for i := 0; i < 8; i++ {
			data = append(data, 0x00, 0x00)
		}
	}
	return data
}

// sampleData encodes one sample stream, the last block carries the end
// flag and optionally the loop flag.
func sampleData(blocks int, looped bool) []byte {
	var data []byte
	for block := 0; block < blocks; block++ {
		header := byte(0x90)
		if block%2 == 1 {
			header = 0xA0
		}
		if block == blocks-1 {
			header |= 0x01
			if looped {
				header |= 0x02
			}
		}
		data = append(data, header)
		data = append(data, bytes.Repeat([]byte{0x23}, 8)...)
	}
	return data
}

func TestDetectGraphics(t *testing.T) {
	t.Parallel()

	chunks := DetectGraphics(tileData(8), 0x1000)
	assert.Equal(t, 1, len(chunks))

	chunk := chunks[0]
	assert.Equal(t, 0x1000, chunk.Offset)
	assert.Equal(t, 4, chunk.BitDepth)
	assert.Equal(t, 8, chunk.Tiles)
	assert.Equal(t, 8*classify.BytesPerTile(4), chunk.Length)

	assert.Equal(t, 0, len(DetectGraphics(bytes.Repeat([]byte{0x00}, 256), 0)))
}

func TestDetectAudio(t *testing.T) {
	t.Parallel()

	data := sampleData(6, true)
	data = append(data, sampleData(5, false)...)

	samples := DetectAudio(data, 0x2000)
	assert.Equal(t, 2, len(samples))

	assert.Equal(t, 0x2000, samples[0].Offset)
	assert.Equal(t, 6, samples[0].Blocks)
	assert.Equal(t, 6*classify.BRRBlockSize, samples[0].Length)
	assert.True(t, samples[0].Looped)

	assert.Equal(t, 0x2000+6*classify.BRRBlockSize, samples[1].Offset)
	assert.Equal(t, 5, samples[1].Blocks)
	assert.False(t, samples[1].Looped)
}

func TestDetectAudioRejectsShort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, len(DetectAudio(sampleData(2, false), 0)))
}
