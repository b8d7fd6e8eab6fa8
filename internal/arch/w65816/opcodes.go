package w65816

// Opcodes maps all 256 opcode values to their instruction info.
var Opcodes = [256]Opcode{
	0x00: {Name: "BRK", Addressing: ImpliedAddressing, Size: 1, Timing: 7},
	0x01: {Name: "ORA", Addressing: DirectPageIndexedIndirectAddressing, Size: 2, Timing: 6},
	0x02: {Name: "COP", Addressing: Immediate8Addressing, Size: 2, Timing: 7},
	0x03: {Name: "ORA", Addressing: StackRelativeAddressing, Size: 2, Timing: 4},
	0x04: {Name: "TSB", Addressing: DirectPageAddressing, Size: 2, Timing: 5},
	0x05: {Name: "ORA", Addressing: DirectPageAddressing, Size: 2, Timing: 3},
	0x06: {Name: "ASL", Addressing: DirectPageAddressing, Size: 2, Timing: 5},
	0x07: {Name: "ORA", Addressing: DirectPageIndirectLongAddressing, Size: 2, Timing: 6},
	0x08: {Name: "PHP", Addressing: ImpliedAddressing, Size: 1, Timing: 3},
	0x09: {Name: "ORA", Addressing: ImmediateMAddressing, Size: 2, Timing: 2},
	0x0A: {Name: "ASL", Addressing: AccumulatorAddressing, Size: 1, Timing: 2},
	0x0B: {Name: "PHD", Addressing: ImpliedAddressing, Size: 1, Timing: 4},
	0x0C: {Name: "TSB", Addressing: AbsoluteAddressing, Size: 3, Timing: 6},
	0x0D: {Name: "ORA", Addressing: AbsoluteAddressing, Size: 3, Timing: 4},
	0x0E: {Name: "ASL", Addressing: AbsoluteAddressing, Size: 3, Timing: 6},
	0x0F: {Name: "ORA", Addressing: AbsoluteLongAddressing, Size: 4, Timing: 5},

	0x10: {Name: "BPL", Addressing: RelativeAddressing, Size: 2, Timing: 2},
	0x11: {Name: "ORA", Addressing: DirectPageIndirectIndexedAddressing, Size: 2, Timing: 5},
	0x12: {Name: "ORA", Addressing: DirectPageIndirectAddressing, Size: 2, Timing: 5},
	0x13: {Name: "ORA", Addressing: StackRelativeIndirectIndexedAddressing, Size: 2, Timing: 7},
	0x14: {Name: "TRB", Addressing: DirectPageAddressing, Size: 2, Timing: 5},
	0x15: {Name: "ORA", Addressing: DirectPageXAddressing, Size: 2, Timing: 4},
	0x16: {Name: "ASL", Addressing: DirectPageXAddressing, Size: 2, Timing: 6},
	0x17: {Name: "ORA", Addressing: DirectPageIndirectLongIndexedAddressing, Size: 2, Timing: 6},
	0x18: {Name: "CLC", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0x19: {Name: "ORA", Addressing: AbsoluteYAddressing, Size: 3, Timing: 4},
	0x1A: {Name: "INC", Addressing: AccumulatorAddressing, Size: 1, Timing: 2},
	0x1B: {Name: "TCS", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0x1C: {Name: "TRB", Addressing: AbsoluteAddressing, Size: 3, Timing: 6},
	0x1D: {Name: "ORA", Addressing: AbsoluteXAddressing, Size: 3, Timing: 4},
	0x1E: {Name: "ASL", Addressing: AbsoluteXAddressing, Size: 3, Timing: 7},
	0x1F: {Name: "ORA", Addressing: AbsoluteLongXAddressing, Size: 4, Timing: 5},

	0x20: {Name: "JSR", Addressing: AbsoluteAddressing, Size: 3, Timing: 6},
	0x21: {Name: "AND", Addressing: DirectPageIndexedIndirectAddressing, Size: 2, Timing: 6},
	0x22: {Name: "JSL", Addressing: AbsoluteLongAddressing, Size: 4, Timing: 8},
	0x23: {Name: "AND", Addressing: StackRelativeAddressing, Size: 2, Timing: 4},
	0x24: {Name: "BIT", Addressing: DirectPageAddressing, Size: 2, Timing: 3},
	0x25: {Name: "AND", Addressing: DirectPageAddressing, Size: 2, Timing: 3},
	0x26: {Name: "ROL", Addressing: DirectPageAddressing, Size: 2, Timing: 5},
	0x27: {Name: "AND", Addressing: DirectPageIndirectLongAddressing, Size: 2, Timing: 6},
	0x28: {Name: "PLP", Addressing: ImpliedAddressing, Size: 1, Timing: 4},
	0x29: {Name: "AND", Addressing: ImmediateMAddressing, Size: 2, Timing: 2},
	0x2A: {Name: "ROL", Addressing: AccumulatorAddressing, Size: 1, Timing: 2},
	0x2B: {Name: "PLD", Addressing: ImpliedAddressing, Size: 1, Timing: 5},
	0x2C: {Name: "BIT", Addressing: AbsoluteAddressing, Size: 3, Timing: 4},
	0x2D: {Name: "AND", Addressing: AbsoluteAddressing, Size: 3, Timing: 4},
	0x2E: {Name: "ROL", Addressing: AbsoluteAddressing, Size: 3, Timing: 6},
	0x2F: {Name: "AND", Addressing: AbsoluteLongAddressing, Size: 4, Timing: 5},

	0x30: {Name: "BMI", Addressing: RelativeAddressing, Size: 2, Timing: 2},
	0x31: {Name: "AND", Addressing: DirectPageIndirectIndexedAddressing, Size: 2, Timing: 5},
	0x32: {Name: "AND", Addressing: DirectPageIndirectAddressing, Size: 2, Timing: 5},
	0x33: {Name: "AND", Addressing: StackRelativeIndirectIndexedAddressing, Size: 2, Timing: 7},
	0x34: {Name: "BIT", Addressing: DirectPageXAddressing, Size: 2, Timing: 4},
	0x35: {Name: "AND", Addressing: DirectPageXAddressing, Size: 2, Timing: 4},
	0x36: {Name: "ROL", Addressing: DirectPageXAddressing, Size: 2, Timing: 6},
	0x37: {Name: "AND", Addressing: DirectPageIndirectLongIndexedAddressing, Size: 2, Timing: 6},
	0x38: {Name: "SEC", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0x39: {Name: "AND", Addressing: AbsoluteYAddressing, Size: 3, Timing: 4},
	0x3A: {Name: "DEC", Addressing: AccumulatorAddressing, Size: 1, Timing: 2},
	0x3B: {Name: "TSC", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0x3C: {Name: "BIT", Addressing: AbsoluteXAddressing, Size: 3, Timing: 4},
	0x3D: {Name: "AND", Addressing: AbsoluteXAddressing, Size: 3, Timing: 4},
	0x3E: {Name: "ROL", Addressing: AbsoluteXAddressing, Size: 3, Timing: 7},
	0x3F: {Name: "AND", Addressing: AbsoluteLongXAddressing, Size: 4, Timing: 5},

	0x40: {Name: "RTI", Addressing: ImpliedAddressing, Size: 1, Timing: 6},
	0x41: {Name: "EOR", Addressing: DirectPageIndexedIndirectAddressing, Size: 2, Timing: 6},
	0x42: {Name: "WDM", Addressing: Immediate8Addressing, Size: 2, Timing: 2},
	0x43: {Name: "EOR", Addressing: StackRelativeAddressing, Size: 2, Timing: 4},
	0x44: {Name: "MVP", Addressing: BlockMoveAddressing, Size: 3, Timing: 7},
	0x45: {Name: "EOR", Addressing: DirectPageAddressing, Size: 2, Timing: 3},
	0x46: {Name: "LSR", Addressing: DirectPageAddressing, Size: 2, Timing: 5},
	0x47: {Name: "EOR", Addressing: DirectPageIndirectLongAddressing, Size: 2, Timing: 6},
	0x48: {Name: "PHA", Addressing: ImpliedAddressing, Size: 1, Timing: 3},
	0x49: {Name: "EOR", Addressing: ImmediateMAddressing, Size: 2, Timing: 2},
	0x4A: {Name: "LSR", Addressing: AccumulatorAddressing, Size: 1, Timing: 2},
	0x4B: {Name: "PHK", Addressing: ImpliedAddressing, Size: 1, Timing: 3},
	0x4C: {Name: "JMP", Addressing: AbsoluteAddressing, Size: 3, Timing: 3},
	0x4D: {Name: "EOR", Addressing: AbsoluteAddressing, Size: 3, Timing: 4},
	0x4E: {Name: "LSR", Addressing: AbsoluteAddressing, Size: 3, Timing: 6},
	0x4F: {Name: "EOR", Addressing: AbsoluteLongAddressing, Size: 4, Timing: 5},

	0x50: {Name: "BVC", Addressing: RelativeAddressing, Size: 2, Timing: 2},
	0x51: {Name: "EOR", Addressing: DirectPageIndirectIndexedAddressing, Size: 2, Timing: 5},
	0x52: {Name: "EOR", Addressing: DirectPageIndirectAddressing, Size: 2, Timing: 5},
	0x53: {Name: "EOR", Addressing: StackRelativeIndirectIndexedAddressing, Size: 2, Timing: 7},
	0x54: {Name: "MVN", Addressing: BlockMoveAddressing, Size: 3, Timing: 7},
	0x55: {Name: "EOR", Addressing: DirectPageXAddressing, Size: 2, Timing: 4},
	0x56: {Name: "LSR", Addressing: DirectPageXAddressing, Size: 2, Timing: 6},
	0x57: {Name: "EOR", Addressing: DirectPageIndirectLongIndexedAddressing, Size: 2, Timing: 6},
	0x58: {Name: "CLI", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0x59: {Name: "EOR", Addressing: AbsoluteYAddressing, Size: 3, Timing: 4},
	0x5A: {Name: "PHY", Addressing: ImpliedAddressing, Size: 1, Timing: 3},
	0x5B: {Name: "TCD", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0x5C: {Name: "JML", Addressing: AbsoluteLongAddressing, Size: 4, Timing: 4},
	0x5D: {Name: "EOR", Addressing: AbsoluteXAddressing, Size: 3, Timing: 4},
	0x5E: {Name: "LSR", Addressing: AbsoluteXAddressing, Size: 3, Timing: 7},
	0x5F: {Name: "EOR", Addressing: AbsoluteLongXAddressing, Size: 4, Timing: 5},

	0x60: {Name: "RTS", Addressing: ImpliedAddressing, Size: 1, Timing: 6},
	0x61: {Name: "ADC", Addressing: DirectPageIndexedIndirectAddressing, Size: 2, Timing: 6},
	0x62: {Name: "PER", Addressing: RelativeLongAddressing, Size: 3, Timing: 6},
	0x63: {Name: "ADC", Addressing: StackRelativeAddressing, Size: 2, Timing: 4},
	0x64: {Name: "STZ", Addressing: DirectPageAddressing, Size: 2, Timing: 3},
	0x65: {Name: "ADC", Addressing: DirectPageAddressing, Size: 2, Timing: 3},
	0x66: {Name: "ROR", Addressing: DirectPageAddressing, Size: 2, Timing: 5},
	0x67: {Name: "ADC", Addressing: DirectPageIndirectLongAddressing, Size: 2, Timing: 6},
	0x68: {Name: "PLA", Addressing: ImpliedAddressing, Size: 1, Timing: 4},
	0x69: {Name: "ADC", Addressing: ImmediateMAddressing, Size: 2, Timing: 2},
	0x6A: {Name: "ROR", Addressing: AccumulatorAddressing, Size: 1, Timing: 2},
	0x6B: {Name: "RTL", Addressing: ImpliedAddressing, Size: 1, Timing: 6},
	0x6C: {Name: "JMP", Addressing: AbsoluteIndirectAddressing, Size: 3, Timing: 5},
	0x6D: {Name: "ADC", Addressing: AbsoluteAddressing, Size: 3, Timing: 4},
	0x6E: {Name: "ROR", Addressing: AbsoluteAddressing, Size: 3, Timing: 6},
	0x6F: {Name: "ADC", Addressing: AbsoluteLongAddressing, Size: 4, Timing: 5},

	0x70: {Name: "BVS", Addressing: RelativeAddressing, Size: 2, Timing: 2},
	0x71: {Name: "ADC", Addressing: DirectPageIndirectIndexedAddressing, Size: 2, Timing: 5},
	0x72: {Name: "ADC", Addressing: DirectPageIndirectAddressing, Size: 2, Timing: 5},
	0x73: {Name: "ADC", Addressing: StackRelativeIndirectIndexedAddressing, Size: 2, Timing: 7},
	0x74: {Name: "STZ", Addressing: DirectPageXAddressing, Size: 2, Timing: 4},
	0x75: {Name: "ADC", Addressing: DirectPageXAddressing, Size: 2, Timing: 4},
	0x76: {Name: "ROR", Addressing: DirectPageXAddressing, Size: 2, Timing: 6},
	0x77: {Name: "ADC", Addressing: DirectPageIndirectLongIndexedAddressing, Size: 2, Timing: 6},
	0x78: {Name: "SEI", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0x79: {Name: "ADC", Addressing: AbsoluteYAddressing, Size: 3, Timing: 4},
	0x7A: {Name: "PLY", Addressing: ImpliedAddressing, Size: 1, Timing: 4},
	0x7B: {Name: "TDC", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0x7C: {Name: "JMP", Addressing: AbsoluteIndexedIndirectAddressing, Size: 3, Timing: 6},
	0x7D: {Name: "ADC", Addressing: AbsoluteXAddressing, Size: 3, Timing: 4},
	0x7E: {Name: "ROR", Addressing: AbsoluteXAddressing, Size: 3, Timing: 7},
	0x7F: {Name: "ADC", Addressing: AbsoluteLongXAddressing, Size: 4, Timing: 5},

	0x80: {Name: "BRA", Addressing: RelativeAddressing, Size: 2, Timing: 3},
	0x81: {Name: "STA", Addressing: DirectPageIndexedIndirectAddressing, Size: 2, Timing: 6},
	0x82: {Name: "BRL", Addressing: RelativeLongAddressing, Size: 3, Timing: 4},
	0x83: {Name: "STA", Addressing: StackRelativeAddressing, Size: 2, Timing: 4},
	0x84: {Name: "STY", Addressing: DirectPageAddressing, Size: 2, Timing: 3},
	0x85: {Name: "STA", Addressing: DirectPageAddressing, Size: 2, Timing: 3},
	0x86: {Name: "STX", Addressing: DirectPageAddressing, Size: 2, Timing: 3},
	0x87: {Name: "STA", Addressing: DirectPageIndirectLongAddressing, Size: 2, Timing: 6},
	0x88: {Name: "DEY", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0x89: {Name: "BIT", Addressing: ImmediateMAddressing, Size: 2, Timing: 2},
	0x8A: {Name: "TXA", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0x8B: {Name: "PHB", Addressing: ImpliedAddressing, Size: 1, Timing: 3},
	0x8C: {Name: "STY", Addressing: AbsoluteAddressing, Size: 3, Timing: 4},
	0x8D: {Name: "STA", Addressing: AbsoluteAddressing, Size: 3, Timing: 4},
	0x8E: {Name: "STX", Addressing: AbsoluteAddressing, Size: 3, Timing: 4},
	0x8F: {Name: "STA", Addressing: AbsoluteLongAddressing, Size: 4, Timing: 5},

	0x90: {Name: "BCC", Addressing: RelativeAddressing, Size: 2, Timing: 2},
	0x91: {Name: "STA", Addressing: DirectPageIndirectIndexedAddressing, Size: 2, Timing: 6},
	0x92: {Name: "STA", Addressing: DirectPageIndirectAddressing, Size: 2, Timing: 5},
	0x93: {Name: "STA", Addressing: StackRelativeIndirectIndexedAddressing, Size: 2, Timing: 7},
	0x94: {Name: "STY", Addressing: DirectPageXAddressing, Size: 2, Timing: 4},
	0x95: {Name: "STA", Addressing: DirectPageXAddressing, Size: 2, Timing: 4},
	0x96: {Name: "STX", Addressing: DirectPageYAddressing, Size: 2, Timing: 4},
	0x97: {Name: "STA", Addressing: DirectPageIndirectLongIndexedAddressing, Size: 2, Timing: 6},
	0x98: {Name: "TYA", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0x99: {Name: "STA", Addressing: AbsoluteYAddressing, Size: 3, Timing: 5},
	0x9A: {Name: "TXS", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0x9B: {Name: "TXY", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0x9C: {Name: "STZ", Addressing: AbsoluteAddressing, Size: 3, Timing: 4},
	0x9D: {Name: "STA", Addressing: AbsoluteXAddressing, Size: 3, Timing: 5},
	0x9E: {Name: "STZ", Addressing: AbsoluteXAddressing, Size: 3, Timing: 5},
	0x9F: {Name: "STA", Addressing: AbsoluteLongXAddressing, Size: 4, Timing: 5},

	0xA0: {Name: "LDY", Addressing: ImmediateXAddressing, Size: 2, Timing: 2},
	0xA1: {Name: "LDA", Addressing: DirectPageIndexedIndirectAddressing, Size: 2, Timing: 6},
	0xA2: {Name: "LDX", Addressing: ImmediateXAddressing, Size: 2, Timing: 2},
	0xA3: {Name: "LDA", Addressing: StackRelativeAddressing, Size: 2, Timing: 4},
	0xA4: {Name: "LDY", Addressing: DirectPageAddressing, Size: 2, Timing: 3},
	0xA5: {Name: "LDA", Addressing: DirectPageAddressing, Size: 2, Timing: 3},
	0xA6: {Name: "LDX", Addressing: DirectPageAddressing, Size: 2, Timing: 3},
	0xA7: {Name: "LDA", Addressing: DirectPageIndirectLongAddressing, Size: 2, Timing: 6},
	0xA8: {Name: "TAY", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0xA9: {Name: "LDA", Addressing: ImmediateMAddressing, Size: 2, Timing: 2},
	0xAA: {Name: "TAX", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0xAB: {Name: "PLB", Addressing: ImpliedAddressing, Size: 1, Timing: 4},
	0xAC: {Name: "LDY", Addressing: AbsoluteAddressing, Size: 3, Timing: 4},
	0xAD: {Name: "LDA", Addressing: AbsoluteAddressing, Size: 3, Timing: 4},
	0xAE: {Name: "LDX", Addressing: AbsoluteAddressing, Size: 3, Timing: 4},
	0xAF: {Name: "LDA", Addressing: AbsoluteLongAddressing, Size: 4, Timing: 5},

	0xB0: {Name: "BCS", Addressing: RelativeAddressing, Size: 2, Timing: 2},
	0xB1: {Name: "LDA", Addressing: DirectPageIndirectIndexedAddressing, Size: 2, Timing: 5},
	0xB2: {Name: "LDA", Addressing: DirectPageIndirectAddressing, Size: 2, Timing: 5},
	0xB3: {Name: "LDA", Addressing: StackRelativeIndirectIndexedAddressing, Size: 2, Timing: 7},
	0xB4: {Name: "LDY", Addressing: DirectPageXAddressing, Size: 2, Timing: 4},
	0xB5: {Name: "LDA", Addressing: DirectPageXAddressing, Size: 2, Timing: 4},
	0xB6: {Name: "LDX", Addressing: DirectPageYAddressing, Size: 2, Timing: 4},
	0xB7: {Name: "LDA", Addressing: DirectPageIndirectLongIndexedAddressing, Size: 2, Timing: 6},
	0xB8: {Name: "CLV", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0xB9: {Name: "LDA", Addressing: AbsoluteYAddressing, Size: 3, Timing: 4},
	0xBA: {Name: "TSX", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0xBB: {Name: "TYX", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0xBC: {Name: "LDY", Addressing: AbsoluteXAddressing, Size: 3, Timing: 4},
	0xBD: {Name: "LDA", Addressing: AbsoluteXAddressing, Size: 3, Timing: 4},
	0xBE: {Name: "LDX", Addressing: AbsoluteYAddressing, Size: 3, Timing: 4},
	0xBF: {Name: "LDA", Addressing: AbsoluteLongXAddressing, Size: 4, Timing: 5},

	0xC0: {Name: "CPY", Addressing: ImmediateXAddressing, Size: 2, Timing: 2},
	0xC1: {Name: "CMP", Addressing: DirectPageIndexedIndirectAddressing, Size: 2, Timing: 6},
	0xC2: {Name: "REP", Addressing: Immediate8Addressing, Size: 2, Timing: 3},
	0xC3: {Name: "CMP", Addressing: StackRelativeAddressing, Size: 2, Timing: 4},
	0xC4: {Name: "CPY", Addressing: DirectPageAddressing, Size: 2, Timing: 3},
	0xC5: {Name: "CMP", Addressing: DirectPageAddressing, Size: 2, Timing: 3},
	0xC6: {Name: "DEC", Addressing: DirectPageAddressing, Size: 2, Timing: 5},
	0xC7: {Name: "CMP", Addressing: DirectPageIndirectLongAddressing, Size: 2, Timing: 6},
	0xC8: {Name: "INY", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0xC9: {Name: "CMP", Addressing: ImmediateMAddressing, Size: 2, Timing: 2},
	0xCA: {Name: "DEX", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0xCB: {Name: "WAI", Addressing: ImpliedAddressing, Size: 1, Timing: 3},
	0xCC: {Name: "CPY", Addressing: AbsoluteAddressing, Size: 3, Timing: 4},
	0xCD: {Name: "CMP", Addressing: AbsoluteAddressing, Size: 3, Timing: 4},
	0xCE: {Name: "DEC", Addressing: AbsoluteAddressing, Size: 3, Timing: 6},
	0xCF: {Name: "CMP", Addressing: AbsoluteLongAddressing, Size: 4, Timing: 5},

	0xD0: {Name: "BNE", Addressing: RelativeAddressing, Size: 2, Timing: 2},
	0xD1: {Name: "CMP", Addressing: DirectPageIndirectIndexedAddressing, Size: 2, Timing: 5},
	0xD2: {Name: "CMP", Addressing: DirectPageIndirectAddressing, Size: 2, Timing: 5},
	0xD3: {Name: "CMP", Addressing: StackRelativeIndirectIndexedAddressing, Size: 2, Timing: 7},
	0xD4: {Name: "PEI", Addressing: DirectPageIndirectAddressing, Size: 2, Timing: 6},
	0xD5: {Name: "CMP", Addressing: DirectPageXAddressing, Size: 2, Timing: 4},
	0xD6: {Name: "DEC", Addressing: DirectPageXAddressing, Size: 2, Timing: 6},
	0xD7: {Name: "CMP", Addressing: DirectPageIndirectLongIndexedAddressing, Size: 2, Timing: 6},
	0xD8: {Name: "CLD", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0xD9: {Name: "CMP", Addressing: AbsoluteYAddressing, Size: 3, Timing: 4},
	0xDA: {Name: "PHX", Addressing: ImpliedAddressing, Size: 1, Timing: 3},
	0xDB: {Name: "STP", Addressing: ImpliedAddressing, Size: 1, Timing: 3},
	0xDC: {Name: "JML", Addressing: AbsoluteIndirectLongAddressing, Size: 3, Timing: 6},
	0xDD: {Name: "CMP", Addressing: AbsoluteXAddressing, Size: 3, Timing: 4},
	0xDE: {Name: "DEC", Addressing: AbsoluteXAddressing, Size: 3, Timing: 7},
	0xDF: {Name: "CMP", Addressing: AbsoluteLongXAddressing, Size: 4, Timing: 5},

	0xE0: {Name: "CPX", Addressing: ImmediateXAddressing, Size: 2, Timing: 2},
	0xE1: {Name: "SBC", Addressing: DirectPageIndexedIndirectAddressing, Size: 2, Timing: 6},
	0xE2: {Name: "SEP", Addressing: Immediate8Addressing, Size: 2, Timing: 3},
	0xE3: {Name: "SBC", Addressing: StackRelativeAddressing, Size: 2, Timing: 4},
	0xE4: {Name: "CPX", Addressing: DirectPageAddressing, Size: 2, Timing: 3},
	0xE5: {Name: "SBC", Addressing: DirectPageAddressing, Size: 2, Timing: 3},
	0xE6: {Name: "INC", Addressing: DirectPageAddressing, Size: 2, Timing: 5},
	0xE7: {Name: "SBC", Addressing: DirectPageIndirectLongAddressing, Size: 2, Timing: 6},
	0xE8: {Name: "INX", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0xE9: {Name: "SBC", Addressing: ImmediateMAddressing, Size: 2, Timing: 2},
	0xEA: {Name: "NOP", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0xEB: {Name: "XBA", Addressing: ImpliedAddressing, Size: 1, Timing: 3},
	0xEC: {Name: "CPX", Addressing: AbsoluteAddressing, Size: 3, Timing: 4},
	0xED: {Name: "SBC", Addressing: AbsoluteAddressing, Size: 3, Timing: 4},
	0xEE: {Name: "INC", Addressing: AbsoluteAddressing, Size: 3, Timing: 6},
	0xEF: {Name: "SBC", Addressing: AbsoluteLongAddressing, Size: 4, Timing: 5},

	0xF0: {Name: "BEQ", Addressing: RelativeAddressing, Size: 2, Timing: 2},
	0xF1: {Name: "SBC", Addressing: DirectPageIndirectIndexedAddressing, Size: 2, Timing: 5},
	0xF2: {Name: "SBC", Addressing: DirectPageIndirectAddressing, Size: 2, Timing: 5},
	0xF3: {Name: "SBC", Addressing: StackRelativeIndirectIndexedAddressing, Size: 2, Timing: 7},
	0xF4: {Name: "PEA", Addressing: AbsoluteAddressing, Size: 3, Timing: 5},
	0xF5: {Name: "SBC", Addressing: DirectPageXAddressing, Size: 2, Timing: 4},
	0xF6: {Name: "INC", Addressing: DirectPageXAddressing, Size: 2, Timing: 6},
	0xF7: {Name: "SBC", Addressing: DirectPageIndirectLongIndexedAddressing, Size: 2, Timing: 6},
	0xF8: {Name: "SED", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0xF9: {Name: "SBC", Addressing: AbsoluteYAddressing, Size: 3, Timing: 4},
	0xFA: {Name: "PLX", Addressing: ImpliedAddressing, Size: 1, Timing: 4},
	0xFB: {Name: "XCE", Addressing: ImpliedAddressing, Size: 1, Timing: 2},
	0xFC: {Name: "JSR", Addressing: AbsoluteIndexedIndirectAddressing, Size: 3, Timing: 8},
	0xFD: {Name: "SBC", Addressing: AbsoluteXAddressing, Size: 3, Timing: 4},
	0xFE: {Name: "INC", Addressing: AbsoluteXAddressing, Size: 3, Timing: 7},
	0xFF: {Name: "SBC", Addressing: AbsoluteLongXAddressing, Size: 4, Timing: 5},
}
