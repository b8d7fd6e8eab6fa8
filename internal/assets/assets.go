// Package assets detects extractable asset chunks inside classified
// ROM regions, planar graphics tiles and compressed audio samples.
package assets

import "github.com/retroenv/snesgoanalyzer/internal/classify"

// GraphicsChunk is a run of planar tiles sharing one bit depth.
type GraphicsChunk struct {
	Offset   int // file offset of the first tile byte
	Length   int
	BitDepth int
	Tiles    int
}

// AudioSample is a compressed sample stream of consecutive blocks that
// ends with a block carrying the end flag.
type AudioSample struct {
	Offset int // file offset of the first block header
	Length int
	Blocks int
	Looped bool
}

const (
	minSampleBlocks = 4
	minChunkTiles   = 2
)

// DetectGraphics checks a region for planar tile data and collects the
// runs of tiles into chunks. Blank filler tiles do not break a run but
// chunks are trimmed to their first and last drawn tile. The offset is
// the file offset of the region.
func DetectGraphics(data []byte, offset int) []GraphicsChunk {
	depth, _ := classify.DetectBitDepth(data)
	if depth == 0 {
		return nil
	}

	tileSize := classify.BytesPerTile(depth)
	tiles := len(data) / tileSize

	var chunks []GraphicsChunk
	firstActive := -1
	lastActive := -1
	active := 0

	flush := func() {
		if active >= minChunkTiles {
			chunks = append(chunks, GraphicsChunk{
				Offset:   offset + firstActive*tileSize,
				Length:   (lastActive - firstActive + 1) * tileSize,
				BitDepth: depth,
				Tiles:    lastActive - firstActive + 1,
			})
		}
		firstActive = -1
		active = 0
	}

	for tile := 0; tile < tiles; tile++ {
		chunk := data[tile*tileSize : (tile+1)*tileSize]
		if classify.BlankTile(chunk) {
			continue
		}
		if !classify.CoherentTile(chunk, depth) {
			flush()
			continue
		}

		if firstActive < 0 {
			firstActive = tile
		}
		lastActive = tile
		active++
	}
	flush()
	return chunks
}

// DetectAudio walks a region block by block and collects all sample
// streams that terminate with an end flag block. The loop flag of the
// terminating block marks the sample as looped.
func DetectAudio(data []byte, offset int) []AudioSample {
	var samples []AudioSample

	pos := 0
	for pos+classify.BRRBlockSize <= len(data) {
		sample, consumed := scanSample(data[pos:])
		if sample == nil {
			pos += classify.BRRBlockSize
			continue
		}

		sample.Offset = offset + pos
		samples = append(samples, *sample)
		pos += consumed
	}
	return samples
}

// scanSample reads blocks until one carries the end flag. Streams that
// are too short or run into an invalid header are rejected.
func scanSample(data []byte) (*AudioSample, int) {
	blocks := 0
	pos := 0
	for pos+classify.BRRBlockSize <= len(data) {
		header := data[pos]
		if !classify.ValidBRRHeader(header) {
			return nil, 0
		}

		blocks++
		pos += classify.BRRBlockSize

		if classify.BRREndBlock(header) {
			if blocks < minSampleBlocks {
				return nil, 0
			}
			return &AudioSample{
				Length: blocks * classify.BRRBlockSize,
				Blocks: blocks,
				Looped: classify.BRRLoopBlock(header),
			}, pos
		}
	}
	return nil, 0
}
