package w65816

import "fmt"

// String returns the instruction in assembly notation.
func (ins Instruction) String() string {
	if ins.IsUndefined() {
		return fmt.Sprintf(".db $%02X", ins.Opcode)
	}
	if ins.Truncated {
		return fmt.Sprintf(".db $%02X ; truncated %s", ins.Opcode, ins.Mnemonic)
	}

	param := ins.paramString()
	if param == "" {
		return ins.Mnemonic
	}
	return ins.Mnemonic + " " + param
}

// nolint: cyclop
func (ins Instruction) paramString() string {
	operand := ins.Operand

	switch ins.Addressing {
	case ImpliedAddressing:
		return ""
	case AccumulatorAddressing:
		return "A"
	case ImmediateMAddressing, ImmediateXAddressing:
		if ins.Size == 3 {
			return fmt.Sprintf("#$%04X", operand)
		}
		return fmt.Sprintf("#$%02X", operand)
	case Immediate8Addressing:
		return fmt.Sprintf("#$%02X", operand)
	case AbsoluteAddressing:
		return fmt.Sprintf("$%04X", operand)
	case AbsoluteXAddressing:
		return fmt.Sprintf("$%04X,X", operand)
	case AbsoluteYAddressing:
		return fmt.Sprintf("$%04X,Y", operand)
	case AbsoluteLongAddressing:
		return fmt.Sprintf("$%06X", operand)
	case AbsoluteLongXAddressing:
		return fmt.Sprintf("$%06X,X", operand)
	case AbsoluteIndirectAddressing:
		return fmt.Sprintf("($%04X)", operand)
	case AbsoluteIndexedIndirectAddressing:
		return fmt.Sprintf("($%04X,X)", operand)
	case AbsoluteIndirectLongAddressing:
		return fmt.Sprintf("[$%04X]", operand)
	case DirectPageAddressing:
		return fmt.Sprintf("$%02X", operand)
	case DirectPageXAddressing:
		return fmt.Sprintf("$%02X,X", operand)
	case DirectPageYAddressing:
		return fmt.Sprintf("$%02X,Y", operand)
	case DirectPageIndirectAddressing:
		return fmt.Sprintf("($%02X)", operand)
	case DirectPageIndirectLongAddressing:
		return fmt.Sprintf("[$%02X]", operand)
	case DirectPageIndexedIndirectAddressing:
		return fmt.Sprintf("($%02X,X)", operand)
	case DirectPageIndirectIndexedAddressing:
		return fmt.Sprintf("($%02X),Y", operand)
	case DirectPageIndirectLongIndexedAddressing:
		return fmt.Sprintf("[$%02X],Y", operand)
	case StackRelativeAddressing:
		return fmt.Sprintf("$%02X,S", operand)
	case StackRelativeIndirectIndexedAddressing:
		return fmt.Sprintf("($%02X,S),Y", operand)
	case RelativeAddressing, RelativeLongAddressing:
		return fmt.Sprintf("$%04X", ins.Target&0xFFFF)
	case BlockMoveAddressing:
		// assembler operand order is source bank, destination bank
		return fmt.Sprintf("$%02X,$%02X", operand>>8, operand&0xFF)
	default:
		return fmt.Sprintf("$%X", operand)
	}
}
