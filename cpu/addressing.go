package cpu

import "github.com/m6502/core/bus"

// addrKind tags what shape an addrResult carries, per spec.md §4.2: every
// addressing mode resolves to exactly one of implicit, an immediate value,
// an effective 16-bit address, or a relative branch offset.
type addrKind int

const (
	kindImplicit addrKind = iota
	kindImmediate
	kindAddress
	kindRelative
)

// addrResult is what the addressing unit hands back to the instruction
// engine: the resolved operand (in whichever field addrKind indicates is
// meaningful) plus whether resolving it crossed a page boundary.
type addrResult struct {
	kind        addrKind
	value       uint8  // immediate value, or the byte for relative's raw offset
	effective   uint16 // resolved address (kindAddress)
	pageCrossed bool
}

// addrMode names one of the 13 addressing modes. Declared here (rather
// than inferred from the opcode's semantics) so the opcode metadata table
// in opcodes.go can name it directly.
type addrMode int

const (
	modeImplicit addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect // JMP only
	modeIndirectX
	modeIndirectY
	modeRelative
)

// resolveAddr advances PC over any operand bytes and returns the
// addressing unit's resolution, per the table in spec.md §4.2. opVal is
// the byte immediately following the opcode (already fetched by the
// caller); PC at entry points at that byte. burstHi/haveBurstHi carry the
// second operand byte when Tick already obtained it via a BurstReader
// burst (per spec.md §4.1); when haveBurstHi is false, the two-byte modes
// read their high byte from the bus themselves, exactly as a host without
// BurstReader would see from three sequential Reads.
func (c *Chip) resolveAddr(b bus.Bus, mode addrMode, opVal uint8, burstHi uint8, haveBurstHi bool) addrResult {
	switch mode {
	case modeImplicit, modeAccumulator:
		return addrResult{kind: kindImplicit}

	case modeImmediate:
		c.PC++
		return addrResult{kind: kindImmediate, value: opVal}

	case modeZeroPage:
		c.PC++
		return addrResult{kind: kindAddress, effective: uint16(opVal)}

	case modeZeroPageX:
		c.PC++
		return addrResult{kind: kindAddress, effective: uint16(opVal + c.X)}

	case modeZeroPageY:
		c.PC++
		return addrResult{kind: kindAddress, effective: uint16(opVal + c.Y)}

	case modeAbsolute:
		hi := burstHi
		if !haveBurstHi {
			hi = b.Read(c.PC + 1)
		}
		c.PC += 2
		return addrResult{kind: kindAddress, effective: uint16(hi)<<8 | uint16(opVal)}

	case modeAbsoluteX:
		return c.resolveAbsoluteIndexed(b, opVal, c.X, burstHi, haveBurstHi)

	case modeAbsoluteY:
		return c.resolveAbsoluteIndexed(b, opVal, c.Y, burstHi, haveBurstHi)

	case modeIndirect:
		hi := burstHi
		if !haveBurstHi {
			hi = b.Read(c.PC + 1)
		}
		c.PC += 2
		ptr := uint16(hi)<<8 | uint16(opVal)
		lo := b.Read(ptr)
		// Page-wrap bug: the high byte is fetched from ptr with its low
		// byte wrapped to 0 instead of from ptr+1 when that would cross
		// a page boundary.
		hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
		hi2 := b.Read(hiAddr)
		return addrResult{kind: kindAddress, effective: uint16(hi2)<<8 | uint16(lo)}

	case modeIndirectX:
		c.PC++
		p := uint16(opVal + c.X)
		lo := b.Read(p & 0xFF)
		hi := b.Read((p + 1) & 0xFF)
		return addrResult{kind: kindAddress, effective: uint16(hi)<<8 | uint16(lo)}

	case modeIndirectY:
		c.PC++
		lo := b.Read(uint16(opVal))
		hi := b.Read(uint16(opVal+1) & 0xFF)
		base := uint16(hi)<<8 | uint16(lo)
		eff := base + uint16(c.Y)
		return addrResult{
			kind:        kindAddress,
			effective:   eff,
			pageCrossed: (base & 0xFF00) != (eff & 0xFF00),
		}

	case modeRelative:
		c.PC++
		return addrResult{kind: kindRelative, value: opVal}
	}
	return addrResult{kind: kindImplicit}
}

// resolveAbsoluteIndexed implements Absolute,X and Absolute,Y: base + reg,
// with a page-cross flag when the add carries into a new page. hi comes
// from the caller's burst fetch when haveBurstHi is set, else is read live.
func (c *Chip) resolveAbsoluteIndexed(b bus.Bus, lo uint8, reg uint8, burstHi uint8, haveBurstHi bool) addrResult {
	hi := burstHi
	if !haveBurstHi {
		hi = b.Read(c.PC + 1)
	}
	c.PC += 2
	base := uint16(hi)<<8 | uint16(lo)
	eff := base + uint16(reg)
	return addrResult{
		kind:        kindAddress,
		effective:   eff,
		pageCrossed: (base & 0xFF00) != (eff & 0xFF00),
	}
}

// operandBytes reports how many bytes follow the opcode byte for mode,
// used to size illegal-NOP and unrecognized-opcode PC advances.
func operandBytes(mode addrMode) uint16 {
	switch mode {
	case modeImplicit, modeAccumulator:
		return 0
	case modeAbsolute, modeAbsoluteX, modeAbsoluteY, modeIndirect:
		return 2
	default:
		return 1
	}
}
