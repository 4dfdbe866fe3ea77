package cpu

// mnemonic identifies an opcode's operation family. Addressing is carried
// separately in opInfo.mode so the same mnemonic (e.g. ADC) is shared
// across all of its addressing-mode encodings, matching how the 6502's
// opcode matrix is organized.
type mnemonic int

const (
	mnUnknown mnemonic = iota

	// Documented load/store/transfer.
	mnLDA
	mnLDX
	mnLDY
	mnSTA
	mnSTX
	mnSTY
	mnTAX
	mnTAY
	mnTXA
	mnTYA
	mnTSX
	mnTXS

	// Documented stack.
	mnPHA
	mnPHP
	mnPLA
	mnPLP

	// Documented ALU/logic.
	mnADC
	mnSBC
	mnAND
	mnORA
	mnEOR
	mnBIT
	mnCMP
	mnCPX
	mnCPY
	mnINC
	mnINX
	mnINY
	mnDEC
	mnDEX
	mnDEY
	mnASL
	mnLSR
	mnROL
	mnROR

	// Documented control flow.
	mnJMP
	mnJSR
	mnRTS
	mnRTI
	mnBRK
	mnBCC
	mnBCS
	mnBEQ
	mnBMI
	mnBNE
	mnBPL
	mnBVC
	mnBVS

	// Documented flag ops.
	mnCLC
	mnCLD
	mnCLI
	mnCLV
	mnSEC
	mnSED
	mnSEI

	mnNOP

	// Implemented illegal/undocumented opcodes (deterministic
	// combinations of documented operations — see SPEC_FULL.md §4.3).
	mnSLO
	mnRLA
	mnSRE
	mnRRA
	mnSAX
	mnLAX
	mnDCP
	mnISC
	mnANC
	mnALR
	mnARR
	mnAXS
)

// opInfo is one entry of the 256-entry opcode metadata table: the natural
// representation called out in spec.md §9 for opcode dispatch.
type opInfo struct {
	mnemonic     mnemonic
	mode         addrMode
	cycles       uint8
	pageCrossAdd bool // +1 cycle when the addressing unit reports a page cross
}

// unrecognized marks opcodes this core does not implement: the 12 JAM/KIL
// opcodes that lock real NMOS hardware, and the unstable illegal opcodes
// whose real behavior depends on analog bus-capacitance effects (XAA/ANE,
// the unstable LAX-immediate/ATX, LAS, TAS/SHS, SHX, SHY, AHX/SHA). Per
// spec.md §9's open question, these surface through Result.Recognized.
var unrecognized = map[uint8]bool{
	0x02: true, 0x12: true, 0x22: true, 0x32: true,
	0x42: true, 0x52: true, 0x62: true, 0x72: true,
	0x92: true, 0xB2: true, 0xD2: true, 0xF2: true,
	0x8B: true, 0xAB: true, 0xBB: true,
	0x93: true, 0x9B: true, 0x9C: true, 0x9E: true, 0x9F: true,
}

// lookupOpcode returns the metadata for op and whether it is implemented.
func lookupOpcode(op uint8) (opInfo, bool) {
	if unrecognized[op] {
		return opInfo{}, false
	}
	info := opcodeTable[op]
	if info.mnemonic == mnUnknown {
		return opInfo{}, false
	}
	return info, true
}

// opcodeTable is indexed by opcode byte. Mnemonics, addressing modes, and
// base cycle counts are grounded on the teacher's disassemble.go mode
// table and cpu.go dispatch switch, cross-checked against the standard
// published NMOS 6502 cycle-count tables the teacher's own comments cite
// (obelisk.me.uk/6502, nesdev's 6502_cpu.txt).
var opcodeTable = [256]opInfo{
	0x00: {mnBRK, modeImplicit, 7, false},
	0x01: {mnORA, modeIndirectX, 6, false},
	0x03: {mnSLO, modeIndirectX, 8, false},
	0x04: {mnNOP, modeZeroPage, 3, false},
	0x05: {mnORA, modeZeroPage, 3, false},
	0x06: {mnASL, modeZeroPage, 5, false},
	0x07: {mnSLO, modeZeroPage, 5, false},
	0x08: {mnPHP, modeImplicit, 3, false},
	0x09: {mnORA, modeImmediate, 2, false},
	0x0A: {mnASL, modeAccumulator, 2, false},
	0x0B: {mnANC, modeImmediate, 2, false},
	0x0C: {mnNOP, modeAbsolute, 4, false},
	0x0D: {mnORA, modeAbsolute, 4, false},
	0x0E: {mnASL, modeAbsolute, 6, false},
	0x0F: {mnSLO, modeAbsolute, 6, false},

	0x10: {mnBPL, modeRelative, 2, false},
	0x11: {mnORA, modeIndirectY, 5, true},
	0x13: {mnSLO, modeIndirectY, 8, false},
	0x14: {mnNOP, modeZeroPageX, 4, false},
	0x15: {mnORA, modeZeroPageX, 4, false},
	0x16: {mnASL, modeZeroPageX, 6, false},
	0x17: {mnSLO, modeZeroPageX, 6, false},
	0x18: {mnCLC, modeImplicit, 2, false},
	0x19: {mnORA, modeAbsoluteY, 4, true},
	0x1A: {mnNOP, modeImplicit, 2, false},
	0x1B: {mnSLO, modeAbsoluteY, 7, false},
	0x1C: {mnNOP, modeAbsoluteX, 4, true},
	0x1D: {mnORA, modeAbsoluteX, 4, true},
	0x1E: {mnASL, modeAbsoluteX, 7, false},
	0x1F: {mnSLO, modeAbsoluteX, 7, false},

	0x20: {mnJSR, modeAbsolute, 6, false},
	0x21: {mnAND, modeIndirectX, 6, false},
	0x23: {mnRLA, modeIndirectX, 8, false},
	0x24: {mnBIT, modeZeroPage, 3, false},
	0x25: {mnAND, modeZeroPage, 3, false},
	0x26: {mnROL, modeZeroPage, 5, false},
	0x27: {mnRLA, modeZeroPage, 5, false},
	0x28: {mnPLP, modeImplicit, 4, false},
	0x29: {mnAND, modeImmediate, 2, false},
	0x2A: {mnROL, modeAccumulator, 2, false},
	0x2B: {mnANC, modeImmediate, 2, false},
	0x2C: {mnBIT, modeAbsolute, 4, false},
	0x2D: {mnAND, modeAbsolute, 4, false},
	0x2E: {mnROL, modeAbsolute, 6, false},
	0x2F: {mnRLA, modeAbsolute, 6, false},

	0x30: {mnBMI, modeRelative, 2, false},
	0x31: {mnAND, modeIndirectY, 5, true},
	0x33: {mnRLA, modeIndirectY, 8, false},
	0x34: {mnNOP, modeZeroPageX, 4, false},
	0x35: {mnAND, modeZeroPageX, 4, false},
	0x36: {mnROL, modeZeroPageX, 6, false},
	0x37: {mnRLA, modeZeroPageX, 6, false},
	0x38: {mnSEC, modeImplicit, 2, false},
	0x39: {mnAND, modeAbsoluteY, 4, true},
	0x3A: {mnNOP, modeImplicit, 2, false},
	0x3B: {mnRLA, modeAbsoluteY, 7, false},
	0x3C: {mnNOP, modeAbsoluteX, 4, true},
	0x3D: {mnAND, modeAbsoluteX, 4, true},
	0x3E: {mnROL, modeAbsoluteX, 7, false},
	0x3F: {mnRLA, modeAbsoluteX, 7, false},

	0x40: {mnRTI, modeImplicit, 6, false},
	0x41: {mnEOR, modeIndirectX, 6, false},
	0x43: {mnSRE, modeIndirectX, 8, false},
	0x44: {mnNOP, modeZeroPage, 3, false},
	0x45: {mnEOR, modeZeroPage, 3, false},
	0x46: {mnLSR, modeZeroPage, 5, false},
	0x47: {mnSRE, modeZeroPage, 5, false},
	0x48: {mnPHA, modeImplicit, 3, false},
	0x49: {mnEOR, modeImmediate, 2, false},
	0x4A: {mnLSR, modeAccumulator, 2, false},
	0x4B: {mnALR, modeImmediate, 2, false},
	0x4C: {mnJMP, modeAbsolute, 3, false},
	0x4D: {mnEOR, modeAbsolute, 4, false},
	0x4E: {mnLSR, modeAbsolute, 6, false},
	0x4F: {mnSRE, modeAbsolute, 6, false},

	0x50: {mnBVC, modeRelative, 2, false},
	0x51: {mnEOR, modeIndirectY, 5, true},
	0x53: {mnSRE, modeIndirectY, 8, false},
	0x54: {mnNOP, modeZeroPageX, 4, false},
	0x55: {mnEOR, modeZeroPageX, 4, false},
	0x56: {mnLSR, modeZeroPageX, 6, false},
	0x57: {mnSRE, modeZeroPageX, 6, false},
	0x58: {mnCLI, modeImplicit, 2, false},
	0x59: {mnEOR, modeAbsoluteY, 4, true},
	0x5A: {mnNOP, modeImplicit, 2, false},
	0x5B: {mnSRE, modeAbsoluteY, 7, false},
	0x5C: {mnNOP, modeAbsoluteX, 4, true},
	0x5D: {mnEOR, modeAbsoluteX, 4, true},
	0x5E: {mnLSR, modeAbsoluteX, 7, false},
	0x5F: {mnSRE, modeAbsoluteX, 7, false},

	0x60: {mnRTS, modeImplicit, 6, false},
	0x61: {mnADC, modeIndirectX, 6, false},
	0x63: {mnRRA, modeIndirectX, 8, false},
	0x64: {mnNOP, modeZeroPage, 3, false},
	0x65: {mnADC, modeZeroPage, 3, false},
	0x66: {mnROR, modeZeroPage, 5, false},
	0x67: {mnRRA, modeZeroPage, 5, false},
	0x68: {mnPLA, modeImplicit, 4, false},
	0x69: {mnADC, modeImmediate, 2, false},
	0x6A: {mnROR, modeAccumulator, 2, false},
	0x6B: {mnARR, modeImmediate, 2, false},
	0x6C: {mnJMP, modeIndirect, 5, false},
	0x6D: {mnADC, modeAbsolute, 4, false},
	0x6E: {mnROR, modeAbsolute, 6, false},
	0x6F: {mnRRA, modeAbsolute, 6, false},

	0x70: {mnBVS, modeRelative, 2, false},
	0x71: {mnADC, modeIndirectY, 5, true},
	0x73: {mnRRA, modeIndirectY, 8, false},
	0x74: {mnNOP, modeZeroPageX, 4, false},
	0x75: {mnADC, modeZeroPageX, 4, false},
	0x76: {mnROR, modeZeroPageX, 6, false},
	0x77: {mnRRA, modeZeroPageX, 6, false},
	0x78: {mnSEI, modeImplicit, 2, false},
	0x79: {mnADC, modeAbsoluteY, 4, true},
	0x7A: {mnNOP, modeImplicit, 2, false},
	0x7B: {mnRRA, modeAbsoluteY, 7, false},
	0x7C: {mnNOP, modeAbsoluteX, 4, true},
	0x7D: {mnADC, modeAbsoluteX, 4, true},
	0x7E: {mnROR, modeAbsoluteX, 7, false},
	0x7F: {mnRRA, modeAbsoluteX, 7, false},

	0x80: {mnNOP, modeImmediate, 2, false},
	0x81: {mnSTA, modeIndirectX, 6, false},
	0x82: {mnNOP, modeImmediate, 2, false},
	0x83: {mnSAX, modeIndirectX, 6, false},
	0x84: {mnSTY, modeZeroPage, 3, false},
	0x85: {mnSTA, modeZeroPage, 3, false},
	0x86: {mnSTX, modeZeroPage, 3, false},
	0x87: {mnSAX, modeZeroPage, 3, false},
	0x88: {mnDEY, modeImplicit, 2, false},
	0x89: {mnNOP, modeImmediate, 2, false},
	0x8A: {mnTXA, modeImplicit, 2, false},
	0x8C: {mnSTY, modeAbsolute, 4, false},
	0x8D: {mnSTA, modeAbsolute, 4, false},
	0x8E: {mnSTX, modeAbsolute, 4, false},
	0x8F: {mnSAX, modeAbsolute, 4, false},

	0x90: {mnBCC, modeRelative, 2, false},
	0x91: {mnSTA, modeIndirectY, 6, false},
	0x94: {mnSTY, modeZeroPageX, 4, false},
	0x95: {mnSTA, modeZeroPageX, 4, false},
	0x96: {mnSTX, modeZeroPageY, 4, false},
	0x97: {mnSAX, modeZeroPageY, 4, false},
	0x98: {mnTYA, modeImplicit, 2, false},
	0x99: {mnSTA, modeAbsoluteY, 5, false},
	0x9A: {mnTXS, modeImplicit, 2, false},
	0x9D: {mnSTA, modeAbsoluteX, 5, false},

	0xA0: {mnLDY, modeImmediate, 2, false},
	0xA1: {mnLDA, modeIndirectX, 6, false},
	0xA2: {mnLDX, modeImmediate, 2, false},
	0xA3: {mnLAX, modeIndirectX, 6, false},
	0xA4: {mnLDY, modeZeroPage, 3, false},
	0xA5: {mnLDA, modeZeroPage, 3, false},
	0xA6: {mnLDX, modeZeroPage, 3, false},
	0xA7: {mnLAX, modeZeroPage, 3, false},
	0xA8: {mnTAY, modeImplicit, 2, false},
	0xA9: {mnLDA, modeImmediate, 2, false},
	0xAA: {mnTAX, modeImplicit, 2, false},
	0xAC: {mnLDY, modeAbsolute, 4, false},
	0xAD: {mnLDA, modeAbsolute, 4, false},
	0xAE: {mnLDX, modeAbsolute, 4, false},
	0xAF: {mnLAX, modeAbsolute, 4, false},

	0xB0: {mnBCS, modeRelative, 2, false},
	0xB1: {mnLDA, modeIndirectY, 5, true},
	0xB3: {mnLAX, modeIndirectY, 5, true},
	0xB4: {mnLDY, modeZeroPageX, 4, false},
	0xB5: {mnLDA, modeZeroPageX, 4, false},
	0xB6: {mnLDX, modeZeroPageY, 4, false},
	0xB7: {mnLAX, modeZeroPageY, 4, false},
	0xB8: {mnCLV, modeImplicit, 2, false},
	0xB9: {mnLDA, modeAbsoluteY, 4, true},
	0xBA: {mnTSX, modeImplicit, 2, false},
	0xBC: {mnLDY, modeAbsoluteX, 4, true},
	0xBD: {mnLDA, modeAbsoluteX, 4, true},
	0xBE: {mnLDX, modeAbsoluteY, 4, true},
	0xBF: {mnLAX, modeAbsoluteY, 4, true},

	0xC0: {mnCPY, modeImmediate, 2, false},
	0xC1: {mnCMP, modeIndirectX, 6, false},
	0xC2: {mnNOP, modeImmediate, 2, false},
	0xC3: {mnDCP, modeIndirectX, 8, false},
	0xC4: {mnCPY, modeZeroPage, 3, false},
	0xC5: {mnCMP, modeZeroPage, 3, false},
	0xC6: {mnDEC, modeZeroPage, 5, false},
	0xC7: {mnDCP, modeZeroPage, 5, false},
	0xC8: {mnINY, modeImplicit, 2, false},
	0xC9: {mnCMP, modeImmediate, 2, false},
	0xCA: {mnDEX, modeImplicit, 2, false},
	0xCB: {mnAXS, modeImmediate, 2, false},
	0xCC: {mnCPY, modeAbsolute, 4, false},
	0xCD: {mnCMP, modeAbsolute, 4, false},
	0xCE: {mnDEC, modeAbsolute, 6, false},
	0xCF: {mnDCP, modeAbsolute, 6, false},

	0xD0: {mnBNE, modeRelative, 2, false},
	0xD1: {mnCMP, modeIndirectY, 5, true},
	0xD3: {mnDCP, modeIndirectY, 8, false},
	0xD4: {mnNOP, modeZeroPageX, 4, false},
	0xD5: {mnCMP, modeZeroPageX, 4, false},
	0xD6: {mnDEC, modeZeroPageX, 6, false},
	0xD7: {mnDCP, modeZeroPageX, 6, false},
	0xD8: {mnCLD, modeImplicit, 2, false},
	0xD9: {mnCMP, modeAbsoluteY, 4, true},
	0xDA: {mnNOP, modeImplicit, 2, false},
	0xDB: {mnDCP, modeAbsoluteY, 7, false},
	0xDC: {mnNOP, modeAbsoluteX, 4, true},
	0xDD: {mnCMP, modeAbsoluteX, 4, true},
	0xDE: {mnDEC, modeAbsoluteX, 7, false},
	0xDF: {mnDCP, modeAbsoluteX, 7, false},

	0xE0: {mnCPX, modeImmediate, 2, false},
	0xE1: {mnSBC, modeIndirectX, 6, false},
	0xE2: {mnNOP, modeImmediate, 2, false},
	0xE3: {mnISC, modeIndirectX, 8, false},
	0xE4: {mnCPX, modeZeroPage, 3, false},
	0xE5: {mnSBC, modeZeroPage, 3, false},
	0xE6: {mnINC, modeZeroPage, 5, false},
	0xE7: {mnISC, modeZeroPage, 5, false},
	0xE8: {mnINX, modeImplicit, 2, false},
	0xE9: {mnSBC, modeImmediate, 2, false},
	0xEA: {mnNOP, modeImplicit, 2, false},
	0xEB: {mnSBC, modeImmediate, 2, false},
	0xEC: {mnCPX, modeAbsolute, 4, false},
	0xED: {mnSBC, modeAbsolute, 4, false},
	0xEE: {mnINC, modeAbsolute, 6, false},
	0xEF: {mnISC, modeAbsolute, 6, false},

	0xF0: {mnBEQ, modeRelative, 2, false},
	0xF1: {mnSBC, modeIndirectY, 5, true},
	0xF3: {mnISC, modeIndirectY, 8, false},
	0xF4: {mnNOP, modeZeroPageX, 4, false},
	0xF5: {mnSBC, modeZeroPageX, 4, false},
	0xF6: {mnINC, modeZeroPageX, 6, false},
	0xF7: {mnISC, modeZeroPageX, 6, false},
	0xF8: {mnSED, modeImplicit, 2, false},
	0xF9: {mnSBC, modeAbsoluteY, 4, true},
	0xFA: {mnNOP, modeImplicit, 2, false},
	0xFB: {mnISC, modeAbsoluteY, 7, false},
	0xFC: {mnNOP, modeAbsoluteX, 4, true},
	0xFD: {mnSBC, modeAbsoluteX, 4, true},
	0xFE: {mnINC, modeAbsoluteX, 7, false},
	0xFF: {mnISC, modeAbsoluteX, 7, false},
}
