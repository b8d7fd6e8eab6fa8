package classify

import "math/bits"

const (
	tileRows              = 8
	maxCoherentBitFlips   = 2
	graphicsMinTileRatio  = 0.6
	graphicsMaxScore      = 0.9
	graphicsMinTilesFound = 2
)

// BitDepths lists the supported planar tile formats, from the most to
// the least common on the platform.
var BitDepths = []int{4, 2, 8, 1}

// BytesPerTile returns the byte size of one 8x8 planar tile at the
// given bit depth.
func BytesPerTile(bitDepth int) int {
	return tileRows * bitDepth
}

// graphicsClassifier detects planar bitplane tile data. Tile rows of
// real graphics change gradually between neighbouring rows, random data
// and code do not.
type graphicsClassifier struct{}

func newGraphicsClassifier() *graphicsClassifier {
	return &graphicsClassifier{}
}

func (c *graphicsClassifier) Name() string {
	return "graphics"
}

func (c *graphicsClassifier) Classify(window []byte, offset int) (Tag, float64) {
	depth, ratio := DetectBitDepth(window)
	if depth == 0 {
		return TagUnknown, 0
	}

	score := ratio * graphicsMaxScore
	return TagGraphics, score
}

// DetectBitDepth checks the data against each supported tile format and
// returns the depth with the highest ratio of coherent tiles, together
// with that ratio. A depth of 0 means no format matched.
func DetectBitDepth(data []byte) (int, float64) {
	bestDepth := 0
	bestRatio := 0.0

	for _, depth := range BitDepths {
		tileSize := BytesPerTile(depth)
		tiles := len(data) / tileSize
		if tiles < graphicsMinTilesFound {
			continue
		}

		coherent := 0
		active := 0
		for tile := 0; tile < tiles; tile++ {
			chunk := data[tile*tileSize : (tile+1)*tileSize]
			if BlankTile(chunk) {
				continue
			}
			active++
			if CoherentTile(chunk, depth) {
				coherent++
			}
		}

		if active < graphicsMinTilesFound {
			continue
		}
		ratio := float64(coherent) / float64(active)
		if ratio >= graphicsMinTileRatio && ratio > bestRatio {
			bestDepth = depth
			bestRatio = ratio
		}
	}

	return bestDepth, bestRatio
}

// BlankTile reports whether all bytes of the tile are identical,
// blank tiles carry no plane structure to judge.
func BlankTile(tile []byte) bool {
	for _, b := range tile[1:] {
		if b != tile[0] {
			return false
		}
	}
	return true
}

// CoherentTile checks that the rows of each bitplane change by only a
// few pixels between adjacent rows. Plane rows are interleaved in pairs
// for 2, 4 and 8 bpp tiles and stored sequentially for 1 bpp tiles.
func CoherentTile(tile []byte, bitDepth int) bool {
	rows := planeRows(tile, bitDepth)

	pairs := 0
	coherent := 0
	for _, plane := range rows {
		for row := 1; row < len(plane); row++ {
			pairs++
			if bits.OnesCount8(plane[row]^plane[row-1]) <= maxCoherentBitFlips {
				coherent++
			}
		}
	}
	if pairs == 0 {
		return false
	}
	return float64(coherent)/float64(pairs) >= graphicsMinTileRatio
}

// planeRows splits a tile into its bitplanes, each holding 8 row bytes.
func planeRows(tile []byte, bitDepth int) [][]byte {
	planes := make([][]byte, bitDepth)
	for plane := range planes {
		planes[plane] = make([]byte, tileRows)
	}

	if bitDepth == 1 {
		copy(planes[0], tile)
		return planes
	}

	// planes are stored in interleaved pairs of row bytes
	groups := bitDepth / 2
	for group := 0; group < groups; group++ {
		for row := 0; row < tileRows; row++ {
			planes[group*2][row] = tile[group*16+row*2]
			planes[group*2+1][row] = tile[group*16+row*2+1]
		}
	}
	return planes
}
