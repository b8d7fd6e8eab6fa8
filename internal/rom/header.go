package rom

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/retroenv/snesgoanalyzer/internal/snes"
)

// ErrInvalidHeader is returned when no internal header candidate allows
// determining the mapping mode. This aborts the whole analysis run.
var ErrInvalidHeader = errors.New("no valid SNES header found")

const (
	headerSize  = 0x20
	titleLength = 21

	// relative offsets inside the internal header block
	mapModeOffset    = 0x15
	cartTypeOffset   = 0x16
	romSizeOffset    = 0x17
	ramSizeOffset    = 0x18
	complementOffset = 0x1C
	checksumOffset   = 0x1E

	// bit 0 of the map mode byte selects HiROM
	mapModeHiROM = 0x01

	// minimum score for a header candidate to be accepted
	headerScoreThreshold = 0.5
)

// Header contains the parsed internal SNES header fields.
type Header struct {
	Title        string
	MapMode      byte
	CartType     byte
	ROMSizeLog2  byte // ROM size as log2 of kilobytes
	RAMSizeLog2  byte
	Complement   uint16
	Checksum     uint16
	ChecksumOK   bool
	DeclaredSize int // ROM size in bytes as declared by the header
}

// detectHeader locates the internal header by scoring both candidate
// locations and returns the mapping mode together with the parsed header.
func detectHeader(data []byte) (snes.MappingMode, Header, error) {
	bestScore := 0.0
	bestMode := snes.LoROM
	found := false

	for _, mode := range []snes.MappingMode{snes.LoROM, snes.HiROM} {
		score, ok := scoreHeader(data, mode)
		if !ok {
			continue
		}
		if score > bestScore {
			bestScore = score
			bestMode = mode
			found = true
		}
	}

	if !found || bestScore < headerScoreThreshold {
		return 0, Header{}, fmt.Errorf("best candidate score %.2f: %w", bestScore, ErrInvalidHeader)
	}

	header := parseHeader(data[bestMode.HeaderOffset():])
	return bestMode, header, nil
}

// scoreHeader rates the plausibility of an internal header at the location
// the given mapping mode prescribes. Scoring combines the printable ratio
// of the title bytes, the checksum/complement pair and the map mode byte.
func scoreHeader(data []byte, mode snes.MappingMode) (float64, bool) {
	offset := mode.HeaderOffset()
	if offset+headerSize > len(data) {
		return 0, false
	}
	block := data[offset : offset+headerSize]

	printable := 0
	for _, b := range block[:titleLength] {
		if b >= 0x20 && b <= 0x7E {
			printable++
		}
	}
	score := float64(printable) / titleLength * 0.8

	complement := binary.LittleEndian.Uint16(block[complementOffset:])
	checksum := binary.LittleEndian.Uint16(block[checksumOffset:])
	if checksum != 0 && checksum^complement == 0xFFFF {
		score += 0.2
	}

	mapMode := block[mapModeOffset]
	hiROMBit := mapMode&mapModeHiROM != 0
	if hiROMBit == (mode == snes.HiROM) {
		score += 0.1
	}

	return score, true
}

func parseHeader(block []byte) Header {
	title := make([]byte, titleLength)
	for i, b := range block[:titleLength] {
		if b >= 0x20 && b <= 0x7E {
			title[i] = b
		} else {
			title[i] = ' '
		}
	}

	header := Header{
		Title:       trimRight(string(title)),
		MapMode:     block[mapModeOffset],
		CartType:    block[cartTypeOffset],
		ROMSizeLog2: block[romSizeOffset],
		RAMSizeLog2: block[ramSizeOffset],
		Complement:  binary.LittleEndian.Uint16(block[complementOffset:]),
		Checksum:    binary.LittleEndian.Uint16(block[checksumOffset:]),
	}
	header.ChecksumOK = header.Checksum^header.Complement == 0xFFFF
	if header.ROMSizeLog2 < 16 {
		header.DeclaredSize = (1 << header.ROMSizeLog2) * 1024
	}
	return header
}

func trimRight(s string) string {
	end := len(s)
	for end > 0 && (s[end-1] == ' ' || s[end-1] == 0) {
		end--
	}
	return s[:end]
}
