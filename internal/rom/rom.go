// Package rom handles SNES ROM image loading and header parsing.
package rom

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/snesgoanalyzer/internal/snes"
)

// copierHeaderSize is the size of the optional header prepended by old
// ROM copier devices. It is detected by a file size modulo check and
// logically stripped before any address math.
const copierHeaderSize = 0x200

// Image represents a loaded ROM image. It is immutable after loading,
// all components of an analysis run share the same instance.
type Image struct {
	data    []byte
	header  Header
	mapping snes.MappingMode

	hadCopierHeader bool
}

// LoadFile loads a ROM image from the given file. A mapping of nil
// auto detects the mapping mode from the internal header.
func LoadFile(name string, mapping *snes.MappingMode) (*Image, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", name, err)
	}
	defer func() { _ = file.Close() }()

	if mapping != nil {
		return LoadMode(file, *mapping)
	}
	return Load(file)
}

// Load loads a ROM image from the reader, strips a copier header if one
// is present and parses the internal SNES header. A header that does not
// allow determining the mapping mode is a fatal error.
func Load(reader io.Reader) (*Image, error) {
	image, err := readImage(reader)
	if err != nil {
		return nil, err
	}

	mapping, header, err := detectHeader(image.data)
	if err != nil {
		return nil, fmt.Errorf("parsing ROM header: %w", err)
	}
	image.mapping = mapping
	image.header = header

	return image, nil
}

// LoadMode loads a ROM image with a forced mapping mode, skipping the
// header location scoring. The header at the location the mode
// prescribes is still parsed for its title and checksum fields.
func LoadMode(reader io.Reader, mapping snes.MappingMode) (*Image, error) {
	image, err := readImage(reader)
	if err != nil {
		return nil, err
	}

	offset := mapping.HeaderOffset()
	if offset+headerSize > len(image.data) {
		return nil, fmt.Errorf("image too small for %s header: %w",
			mapping, ErrInvalidHeader)
	}
	image.mapping = mapping
	image.header = parseHeader(image.data[offset:])

	return image, nil
}

func readImage(reader io.Reader) (*Image, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading ROM data: %w", err)
	}

	image := &Image{data: data}
	if len(data)%0x8000 == copierHeaderSize {
		image.data = data[copierHeaderSize:]
		image.hadCopierHeader = true
	}
	return image, nil
}

// Data returns the ROM bytes with any copier header stripped.
// The returned slice must not be modified.
func (i *Image) Data() []byte {
	return i.data
}

// Size returns the ROM size in bytes, excluding any copier header.
func (i *Image) Size() int {
	return len(i.data)
}

// Header returns the parsed internal SNES header.
func (i *Image) Header() Header {
	return i.header
}

// Mapping returns the mapping mode detected from the internal header.
func (i *Image) Mapping() snes.MappingMode {
	return i.mapping
}

// HadCopierHeader returns whether a copier header was stripped at load time.
func (i *Image) HadCopierHeader() bool {
	return i.hadCopierHeader
}

// Banks returns the number of mappable banks of the image.
func (i *Image) Banks() int {
	windowSize := i.mapping.BankWindowSize()
	banks := len(i.data) / windowSize
	if len(i.data)%windowSize != 0 {
		banks++
	}
	return banks
}

// Bank returns the ROM bytes of the given bank index. The last bank of an
// image that is not a multiple of the bank window size is clipped.
func (i *Image) Bank(index int) []byte {
	windowSize := i.mapping.BankWindowSize()
	start := index * windowSize
	if start >= len(i.data) {
		return nil
	}
	end := start + windowSize
	if end > len(i.data) {
		end = len(i.data)
	}
	return i.data[start:end]
}
