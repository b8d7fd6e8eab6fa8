package rom

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/snesgoanalyzer/internal/snes"
)

// testImage builds a synthetic ROM image with a valid internal header for
// the given mapping mode.
func testImage(mode snes.MappingMode, size int) []byte {
	data := make([]byte, size)
	offset := mode.HeaderOffset()

	copy(data[offset:], "TEST ROM             ")
	mapMode := byte(0x20)
	if mode == snes.HiROM {
		mapMode |= mapModeHiROM
	}
	data[offset+mapModeOffset] = mapMode
	data[offset+romSizeOffset] = 0x0A // 1MB declared

	// valid checksum/complement pair
	data[offset+complementOffset] = 0xFF
	data[offset+complementOffset+1] = 0xAB
	data[offset+checksumOffset] = 0x00
	data[offset+checksumOffset+1] = 0x54
	return data
}

func TestLoadLoROM(t *testing.T) {
	data := testImage(snes.LoROM, 0x10000)

	image, err := Load(bytes.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, snes.LoROM, image.Mapping())
	assert.Equal(t, "TEST ROM", image.Header().Title)
	assert.Equal(t, 0x10000, image.Size())
	assert.False(t, image.HadCopierHeader())
	assert.True(t, image.Header().ChecksumOK)
	assert.Equal(t, 1024*1024, image.Header().DeclaredSize)
}

func TestLoadHiROM(t *testing.T) {
	data := testImage(snes.HiROM, 0x20000)

	image, err := Load(bytes.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, snes.HiROM, image.Mapping())
	assert.Equal(t, 2, image.Banks())
}

func TestLoadCopierHeader(t *testing.T) {
	data := testImage(snes.LoROM, 0x10000)
	prefixed := append(make([]byte, copierHeaderSize), data...)

	image, err := Load(bytes.NewReader(prefixed))
	assert.NoError(t, err)
	assert.True(t, image.HadCopierHeader())
	assert.Equal(t, 0x10000, image.Size())
	assert.Equal(t, snes.LoROM, image.Mapping())
}

func TestLoadModeForced(t *testing.T) {
	// image with a HiROM header but loaded with a forced LoROM mapping
	data := testImage(snes.HiROM, 0x20000)

	image, err := LoadMode(bytes.NewReader(data), snes.LoROM)
	assert.NoError(t, err)
	assert.Equal(t, snes.LoROM, image.Mapping())
	assert.Equal(t, 4, image.Banks())
}

func TestLoadInvalidHeader(t *testing.T) {
	data := make([]byte, 0x10000)
	for i := range data {
		data[i] = 0xFF
	}

	_, err := Load(bytes.NewReader(data))
	assert.True(t, errors.Is(err, ErrInvalidHeader))
}

func TestLoadTooSmall(t *testing.T) {
	_, err := Load(bytes.NewReader(make([]byte, 0x1000)))
	assert.True(t, errors.Is(err, ErrInvalidHeader))
}

func TestBankClipping(t *testing.T) {
	data := testImage(snes.LoROM, 0x10000)
	data = append(data, make([]byte, 0x1000)...)
	// keep the size modulo check from treating the tail as a copier header
	assert.Equal(t, 0x1000, len(data)%0x8000)

	image, err := Load(bytes.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, 3, image.Banks())
	assert.Equal(t, 0x8000, len(image.Bank(0)))
	assert.Equal(t, 0x1000, len(image.Bank(2)))
	assert.True(t, image.Bank(3) == nil)
}
