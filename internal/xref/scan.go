package xref

import (
	"github.com/retroenv/snesgoanalyzer/internal/arch/w65816"
	"github.com/retroenv/snesgoanalyzer/internal/snes"
)

// Table describes a detected pointer table in ROM.
type Table struct {
	Offset    int      // file offset of the first entry
	EntrySize int      // 2 or 3 bytes per entry
	Length    int      // byte length including unresolved entries
	Targets   []uint32 // resolved bus addresses
}

// tableMaxGap is the number of consecutive unresolved entries that ends
// a table candidate run.
const tableMaxGap = 2

// span marks a byte range already claimed by a detected table.
type span struct {
	start int
	end   int
}

// Scanner extracts references from classified ROM regions.
type Scanner struct {
	decoder    *w65816.Decoder
	translator *snes.Translator

	minEntries int
	minDensity float64
}

// NewScanner creates a reference scanner for a ROM.
func NewScanner(decoder *w65816.Decoder, translator *snes.Translator,
	minEntries int, minDensity float64,
) *Scanner {
	return &Scanner{
		decoder:    decoder,
		translator: translator,
		minEntries: minEntries,
		minDensity: minDensity,
	}
}

// ScanCode decodes the data as an instruction stream, records all
// control flow transfers with a statically known in-ROM target and
// returns the decoded instructions. The offset is the file offset of
// the first byte.
func (s *Scanner) ScanCode(data []byte, offset int, index *Index) []w65816.Instruction {
	bank, bankOffset, err := s.translator.FromFileOffset(snes.FileOffset(offset))
	if err != nil {
		return nil
	}
	address := uint32(bank)<<16 | uint32(bankOffset)

	var instructions []w65816.Instruction
	flags := w65816.NewStatusFlags()
	pos := 0
	for pos < len(data) {
		ins, nextFlags := s.decoder.Decode(data, pos, address+uint32(pos), flags)
		flags = nextFlags
		pos += int(ins.Size)
		instructions = append(instructions, ins)

		if !ins.HasTarget || !s.translator.Contains(ins.Target) {
			continue
		}

		index.Record(Reference{
			From: ins.Address,
			To:   ins.Target,
			Kind: referenceKind(ins),
		})
	}
	return instructions
}

// referenceKind maps a control flow transfer to its reference kind.
// Relative transfers are branches, all other non call transfers jumps.
func referenceKind(ins w65816.Instruction) Kind {
	if ins.Flow == w65816.FlowCall {
		return KindCall
	}
	switch ins.Addressing {
	case w65816.RelativeAddressing, w65816.RelativeLongAddressing:
		return KindBranch
	default:
		return KindJump
	}
}

// ScanPointerTables searches the data for runs of 2 or 3 byte little
// endian addresses that resolve inside mapped ROM. Detected entries are
// recorded as pointer references.
func (s *Scanner) ScanPointerTables(data []byte, offset int, index *Index) []Table {
	bank, bankOffset, err := s.translator.FromFileOffset(snes.FileOffset(offset))
	if err != nil {
		return nil
	}
	base := uint32(bank)<<16 | uint32(bankOffset)

	var tables []Table
	var claimed []span
	for _, entrySize := range []int{3, 2} {
		pos := 0
		for pos+entrySize*s.minEntries <= len(data) {
			if end, ok := claimEnd(claimed, pos); ok {
				pos = end
				continue
			}

			limit := claimLimit(claimed, pos, len(data))
			table, entryOffsets := s.scanTableAt(data[pos:limit], entrySize, bank)
			if table == nil {
				// tables can start at any alignment
				pos++
				continue
			}

			table.Offset = offset + pos
			for entry, target := range table.Targets {
				index.Record(Reference{
					From: base + uint32(pos+entryOffsets[entry]),
					To:   target,
					Kind: KindPointer,
				})
			}
			tables = append(tables, *table)
			claimed = append(claimed, span{start: pos, end: pos + table.Length})
			pos += table.Length
		}
	}
	return tables
}

// claimEnd returns the end of the claimed range covering the position.
func claimEnd(claimed []span, pos int) (int, bool) {
	for _, c := range claimed {
		if pos >= c.start && pos < c.end {
			return c.end, true
		}
	}
	return 0, false
}

// claimLimit returns the start of the next claimed range at or after the
// position, capped to the data length.
func claimLimit(claimed []span, pos int, max int) int {
	limit := max
	for _, c := range claimed {
		if c.start >= pos && c.start < limit {
			limit = c.start
		}
	}
	return limit
}

// scanTableAt reads consecutive entries, tolerating short gaps of
// unresolved entries inside the run. A run is a table if enough entries
// resolve and the resolved share stays above the density threshold.
// The second return value lists the byte offset of each resolved entry
// relative to the table start.
func (s *Scanner) scanTableAt(data []byte, entrySize int, bank byte) (*Table, []int) {
	var targets []uint32
	var entryOffsets []int
	pos := 0
	gap := 0
	length := 0
	for pos+entrySize <= len(data) {
		entry := data[pos : pos+entrySize]
		valid := !fillEntry(entry)
		if valid {
			target := readEntry(entry, entrySize, bank)
			valid = s.translator.Contains(target)
			if valid {
				targets = append(targets, target)
				entryOffsets = append(entryOffsets, pos)
			}
		}

		if valid {
			gap = 0
			length = pos + entrySize
		} else {
			gap++
			if gap >= tableMaxGap {
				break
			}
		}
		pos += entrySize
	}

	if len(targets) < s.minEntries {
		return nil, nil
	}

	// trailing gap entries are not part of the table
	entries := length / entrySize
	density := float64(len(targets)) / float64(entries)
	if density < s.minDensity {
		return nil, nil
	}
	return &Table{EntrySize: entrySize, Length: length, Targets: targets}, entryOffsets
}

// fillEntry reports whether the entry consists only of erased flash or
// zero padding bytes, such entries do not count as pointers.
func fillEntry(entry []byte) bool {
	for _, b := range entry {
		if b != 0x00 && b != 0xFF {
			return false
		}
	}
	return true
}

func readEntry(data []byte, entrySize int, bank byte) uint32 {
	address := uint32(data[0]) | uint32(data[1])<<8
	if entrySize == 3 {
		return address | uint32(data[2])<<16
	}
	return address | uint32(bank)<<16
}
