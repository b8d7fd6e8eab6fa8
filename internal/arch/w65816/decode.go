package w65816

// UndefinedMnemonic is used for opcode bytes that the decoder is
// configured not to decode. Emitting a 1 byte instruction instead of an
// error lets a decode pass over non-code bytes resync one byte at a time.
const UndefinedMnemonic = "undefined"

// MaxInstructionSize is the largest encoding of a 65C816 instruction.
const MaxInstructionSize = 4

const (
	statusFlagIndex8       = 0x10 // X flag
	statusFlagAccumulator8 = 0x20 // M flag
)

// StatusFlags tracks the register width state that immediate operand
// sizes depend on. The caller threads it through sequential decode calls
// of one code region, the decoder itself holds no mutable state.
type StatusFlags struct {
	Accumulator8 bool // M flag, 8 bit accumulator when set
	Index8       bool // X flag, 8 bit index registers when set
}

// NewStatusFlags returns the register width state after reset,
// the CPU starts in emulation mode with 8 bit registers.
func NewStatusFlags() StatusFlags {
	return StatusFlags{
		Accumulator8: true,
		Index8:       true,
	}
}

// Instruction is a decoded 65C816 instruction. It is immutable once
// produced.
type Instruction struct {
	Address    uint32 // 24 bit bus address of the opcode byte
	Opcode     byte
	Mnemonic   string
	Addressing AddressingMode
	Size       uint8
	Timing     uint8

	Operand   uint32 // raw little-endian operand value
	Target    uint32 // resolved control flow target bus address
	HasTarget bool
	Flow      ControlFlow

	// Truncated is set when the operand would read past the end of the
	// buffer and the instruction was clipped to the available bytes.
	Truncated bool
}

// IsUndefined returns whether the instruction is an undefined opcode
// placeholder.
func (ins Instruction) IsUndefined() bool {
	return ins.Mnemonic == UndefinedMnemonic
}

// Decoder decodes 65C816 instructions from a byte stream.
type Decoder struct {
	undefined [256]bool
}

// NewDecoder creates a decoder. WDM, the reserved opcode, is treated as
// undefined by default since no shipped ROM executes it.
func NewDecoder() *Decoder {
	dec := &Decoder{}
	dec.undefined[0x42] = true
	return dec
}

// SetUndefined marks additional opcode bytes to decode as undefined
// 1 byte instructions.
func (d *Decoder) SetUndefined(opcodes ...byte) {
	for _, op := range opcodes {
		d.undefined[op] = true
	}
}

// Decode decodes the instruction at pos in buf. address is the 24 bit bus
// address of the opcode byte, used to resolve branch and same-bank call
// targets. It returns the instruction and the register width state after
// executing it, which the caller passes to the next Decode call.
func (d *Decoder) Decode(buf []byte, pos int, address uint32, flags StatusFlags) (Instruction, StatusFlags) {
	opcodeByte := buf[pos]
	if d.undefined[opcodeByte] {
		return Instruction{
			Address:  address,
			Opcode:   opcodeByte,
			Mnemonic: UndefinedMnemonic,
			Size:     1,
		}, flags
	}

	opcode := Opcodes[opcodeByte]
	operandSize := opcode.operandSize(flags)

	ins := Instruction{
		Address:    address,
		Opcode:     opcodeByte,
		Mnemonic:   opcode.Name,
		Addressing: opcode.Addressing,
		Size:       uint8(1 + operandSize),
		Timing:     opcode.Timing,
		Flow:       controlFlow(opcodeByte),
	}

	available := len(buf) - pos - 1
	if operandSize > available {
		ins.Size = uint8(1 + available)
		ins.Truncated = true
		return ins, flags
	}

	for i := 0; i < operandSize; i++ {
		ins.Operand |= uint32(buf[pos+1+i]) << (8 * i)
	}

	flags = updateStatusFlags(opcodeByte, ins.Operand, flags)
	resolveTarget(&ins)
	return ins, flags
}

// updateStatusFlags applies the register width effect of REP and SEP.
// XCE is intentionally ignored, the carry flag is not tracked so the
// emulation mode switch cannot be decided statically.
func updateStatusFlags(opcode byte, operand uint32, flags StatusFlags) StatusFlags {
	switch opcode {
	case 0xC2: // REP
		if operand&statusFlagAccumulator8 != 0 {
			flags.Accumulator8 = false
		}
		if operand&statusFlagIndex8 != 0 {
			flags.Index8 = false
		}
	case 0xE2: // SEP
		if operand&statusFlagAccumulator8 != 0 {
			flags.Accumulator8 = true
		}
		if operand&statusFlagIndex8 != 0 {
			flags.Index8 = true
		}
	}
	return flags
}

// resolveTarget computes the static control flow target of an
// instruction: same-bank for short jump and call forms, explicit 24 bit
// for long forms and instruction-relative for branches. Indirect forms
// have no static target.
func resolveTarget(ins *Instruction) {
	bank := ins.Address & 0xFF0000
	transfers := ins.Flow == FlowBranch || ins.Flow == FlowCall

	switch ins.Addressing {
	case AbsoluteAddressing:
		if transfers {
			ins.Target = bank | ins.Operand&0xFFFF
			ins.HasTarget = true
		}

	case AbsoluteLongAddressing:
		if transfers {
			ins.Target = ins.Operand & 0xFFFFFF
			ins.HasTarget = true
		}

	case RelativeAddressing:
		displacement := int32(int8(ins.Operand))
		next := int32(ins.Address&0xFFFF) + int32(ins.Size) + displacement
		// target is resolved also for PER which pushes an address
		// without transferring control
		ins.Target = bank | uint32(uint16(next))
		ins.HasTarget = transfers

	case RelativeLongAddressing:
		displacement := int32(int16(ins.Operand))
		next := int32(ins.Address&0xFFFF) + int32(ins.Size) + displacement
		ins.Target = bank | uint32(uint16(next))
		ins.HasTarget = transfers
	}
}
