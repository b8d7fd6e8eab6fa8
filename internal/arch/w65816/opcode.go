// Package w65816 provides the 65C816 instruction set table and a stateful
// byte stream decoder for it.
package w65816

// AddressingMode defines an address mode of the 65C816.
type AddressingMode uint8

const (
	ImpliedAddressing AddressingMode = iota
	AccumulatorAddressing
	// ImmediateMAddressing is an immediate whose operand size depends on
	// the accumulator width flag.
	ImmediateMAddressing
	// ImmediateXAddressing is an immediate whose operand size depends on
	// the index register width flag.
	ImmediateXAddressing
	// Immediate8Addressing is an immediate that is always one byte,
	// independent of any width flag (REP, SEP, COP).
	Immediate8Addressing
	AbsoluteAddressing
	AbsoluteXAddressing
	AbsoluteYAddressing
	AbsoluteLongAddressing
	AbsoluteLongXAddressing
	AbsoluteIndirectAddressing
	AbsoluteIndexedIndirectAddressing
	AbsoluteIndirectLongAddressing
	DirectPageAddressing
	DirectPageXAddressing
	DirectPageYAddressing
	DirectPageIndirectAddressing
	DirectPageIndirectLongAddressing
	DirectPageIndexedIndirectAddressing
	DirectPageIndirectIndexedAddressing
	DirectPageIndirectLongIndexedAddressing
	StackRelativeAddressing
	StackRelativeIndirectIndexedAddressing
	RelativeAddressing
	RelativeLongAddressing
	BlockMoveAddressing
)

// ControlFlow defines the control flow effect of an instruction.
type ControlFlow uint8

const (
	FlowNone ControlFlow = iota
	FlowBranch
	FlowCall
	FlowReturn
	FlowInterrupt
)

// Opcode describes one entry of the 256 entry opcode matrix.
// Size is the total instruction size in bytes including the opcode byte,
// using the 8 bit operand size for width dependent immediates.
type Opcode struct {
	Name       string
	Addressing AddressingMode
	Size       uint8
	Timing     uint8
}

// operandSize returns the operand byte count of the opcode under the
// given register width state.
func (o Opcode) operandSize(flags StatusFlags) int {
	size := int(o.Size) - 1
	switch o.Addressing {
	case ImmediateMAddressing:
		if !flags.Accumulator8 {
			size = 2
		}
	case ImmediateXAddressing:
		if !flags.Index8 {
			size = 2
		}
	}
	return size
}

// controlFlow returns the control flow effect of the given opcode byte.
func controlFlow(opcode byte) ControlFlow {
	switch opcode {
	case 0x10, 0x30, 0x50, 0x70, 0x90, 0xB0, 0xD0, 0xF0, // conditional branches
		0x80, 0x82, // BRA, BRL
		0x4C, 0x5C, 0x6C, 0x7C, 0xDC: // JMP, JML
		return FlowBranch
	case 0x20, 0x22, 0xFC: // JSR, JSL
		return FlowCall
	case 0x40, 0x60, 0x6B: // RTI, RTS, RTL
		return FlowReturn
	case 0x00, 0x02: // BRK, COP
		return FlowInterrupt
	default:
		return FlowNone
	}
}
