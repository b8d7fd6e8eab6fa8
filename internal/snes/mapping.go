// Package snes contains the SNES memory model and address translation logic.
package snes

// MappingMode defines how ROM banks are mapped into the SNES bus address space.
type MappingMode uint8

const (
	// LoROM maps a 32KB window at $8000-$FFFF of every bank to the ROM file.
	LoROM MappingMode = iota
	// HiROM maps the full 64KB of banks $C0-$FF to the ROM file.
	HiROM
)

// String implements the fmt.Stringer interface.
func (m MappingMode) String() string {
	switch m {
	case LoROM:
		return "lorom"
	case HiROM:
		return "hirom"
	default:
		return "unknown"
	}
}

// BankWindowSize returns the number of ROM bytes addressable per bank.
func (m MappingMode) BankWindowSize() int {
	if m == HiROM {
		return 0x10000
	}
	return 0x8000
}

// HeaderOffset returns the file offset of the internal ROM header for this mapping.
func (m MappingMode) HeaderOffset() int {
	if m == HiROM {
		return 0xFFC0
	}
	return 0x7FC0
}
