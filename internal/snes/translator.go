package snes

import (
	"errors"
	"fmt"
)

// FileOffset is a flat offset into the ROM file, after any copier header
// has been stripped.
type FileOffset uint32

var (
	// ErrNotRomSpace is returned for bus addresses that map to I/O, WRAM or
	// other non-ROM areas under the active mapping mode.
	ErrNotRomSpace = errors.New("address is not in ROM space")
	// ErrOutOfRange is returned for addresses that map into ROM space but
	// beyond the end of the loaded ROM image.
	ErrOutOfRange = errors.New("address is out of range")
)

const (
	wramBankStart = 0x7E
	loROMLastBank = 0x7D
	hiROMBankBase = 0xC0
)

// Translator converts between SNES bus addresses and flat ROM file offsets.
// The mapping mode is fixed at creation time and shared by all components
// of an analysis run, it is the single source of truth for address math.
type Translator struct {
	mode    MappingMode
	romSize uint32
}

// NewTranslator creates a translator for the given mapping mode and ROM size.
func NewTranslator(mode MappingMode, romSize int) *Translator {
	return &Translator{
		mode:    mode,
		romSize: uint32(romSize),
	}
}

// Mode returns the active mapping mode.
func (t *Translator) Mode() MappingMode {
	return t.mode
}

// Translate converts a (bank, offset) bus address to a flat file offset.
// It is total and deterministic, invalid input returns an error instead
// of panicking or fabricating an offset.
func (t *Translator) Translate(bank byte, offset uint16) (FileOffset, error) {
	switch t.mode {
	case HiROM:
		return t.translateHiROM(bank, offset)
	default:
		return t.translateLoROM(bank, offset)
	}
}

// TranslateLong converts a 24-bit bus address to a flat file offset.
func (t *Translator) TranslateLong(address uint32) (FileOffset, error) {
	return t.Translate(byte(address>>16), uint16(address))
}

// Contains returns whether a 24-bit bus address resolves to a byte of the
// loaded ROM image under the active mapping mode.
func (t *Translator) Contains(address uint32) bool {
	_, err := t.TranslateLong(address)
	return err == nil
}

// FromFileOffset converts a flat file offset back to the canonical
// (non-mirror) bus address.
func (t *Translator) FromFileOffset(offset FileOffset) (byte, uint16, error) {
	if uint32(offset) >= t.romSize {
		return 0, 0, fmt.Errorf("file offset %06x: %w", uint32(offset), ErrOutOfRange)
	}

	if t.mode == HiROM {
		bank := uint32(offset) / 0x10000
		if bank > 0xFF-hiROMBankBase {
			return 0, 0, fmt.Errorf("file offset %06x: %w", uint32(offset), ErrOutOfRange)
		}
		return byte(hiROMBankBase + bank), uint16(uint32(offset) % 0x10000), nil
	}

	bank := uint32(offset) / 0x8000
	if bank > loROMLastBank {
		return 0, 0, fmt.Errorf("file offset %06x: %w", uint32(offset), ErrOutOfRange)
	}
	return byte(bank), uint16(0x8000 + uint32(offset)%0x8000), nil
}

func (t *Translator) translateLoROM(bank byte, offset uint16) (FileOffset, error) {
	// banks $80-$FF mirror $00-$7F
	bank &= 0x7F

	if bank >= wramBankStart {
		return 0, fmt.Errorf("bank %02x: %w", bank, ErrNotRomSpace)
	}
	if offset < 0x8000 {
		return 0, fmt.Errorf("bank %02x offset %04x: %w", bank, offset, ErrNotRomSpace)
	}

	fileOffset := uint32(bank)*0x8000 + uint32(offset-0x8000)
	if fileOffset >= t.romSize {
		return 0, fmt.Errorf("bank %02x offset %04x: %w", bank, offset, ErrOutOfRange)
	}
	return FileOffset(fileOffset), nil
}

func (t *Translator) translateHiROM(bank byte, offset uint16) (FileOffset, error) {
	switch {
	case bank >= hiROMBankBase:
		// canonical ROM banks

	case bank >= 0x40 && bank <= loROMLastBank:
		// banks $40-$7D mirror $C0-$FD
		bank += 0x80

	default:
		// system area and WRAM banks, the upper halves of banks $00-$3F
		// are reachable on hardware but are not part of the documented
		// ROM window this analyzer implements
		return 0, fmt.Errorf("bank %02x: %w", bank, ErrNotRomSpace)
	}

	fileOffset := uint32(bank-hiROMBankBase)*0x10000 + uint32(offset)
	if fileOffset >= t.romSize {
		return 0, fmt.Errorf("bank %02x offset %04x: %w", bank, offset, ErrOutOfRange)
	}
	return FileOffset(fileOffset), nil
}
