package cpu

import "github.com/m6502/core/bus"

// operandByte returns the 8-bit operand a load-style instruction should
// see: the immediate byte itself, or the byte at the resolved address.
func (c *Chip) operandByte(b bus.Bus, res addrResult) uint8 {
	if res.kind == kindImmediate {
		return res.value
	}
	return b.Read(res.effective)
}

// execute runs the operation named by mn against the already-resolved
// addressing result, updating registers/flags/memory as needed, and
// returns any extra cycles beyond opInfo.cycles (nonzero only for taken
// branches). BRK/JSR/RTS/RTI/PHA/PHP/PLA/PLP are handled in Tick before
// execute is ever called, since their operand timing is not expressible
// through the generic addressing-unit pipeline.
func (c *Chip) execute(b bus.Bus, mn mnemonic, res addrResult) int {
	switch mn {
	case mnLDA:
		c.loadRegister(&c.A, c.operandByte(b, res))
	case mnLDX:
		c.loadRegister(&c.X, c.operandByte(b, res))
	case mnLDY:
		c.loadRegister(&c.Y, c.operandByte(b, res))
	case mnSTA:
		b.Write(res.effective, c.A)
	case mnSTX:
		b.Write(res.effective, c.X)
	case mnSTY:
		b.Write(res.effective, c.Y)
	case mnTAX:
		c.loadRegister(&c.X, c.A)
	case mnTAY:
		c.loadRegister(&c.Y, c.A)
	case mnTXA:
		c.loadRegister(&c.A, c.X)
	case mnTYA:
		c.loadRegister(&c.A, c.Y)
	case mnTSX:
		c.loadRegister(&c.X, c.SP)
	case mnTXS:
		c.SP = c.X // TXS does not touch N/Z.

	case mnADC:
		c.adc(c.operandByte(b, res))
	case mnSBC:
		c.sbc(c.operandByte(b, res))
	case mnAND:
		c.loadRegister(&c.A, c.A&c.operandByte(b, res))
	case mnORA:
		c.loadRegister(&c.A, c.A|c.operandByte(b, res))
	case mnEOR:
		c.loadRegister(&c.A, c.A^c.operandByte(b, res))
	case mnBIT:
		v := c.operandByte(b, res)
		c.zeroCheck(c.A & v)
		c.negativeCheck(v)
		c.P &^= flagOverflow
		if v&flagOverflow != 0 {
			c.P |= flagOverflow
		}

	case mnCMP:
		c.compare(c.A, c.operandByte(b, res))
	case mnCPX:
		c.compare(c.X, c.operandByte(b, res))
	case mnCPY:
		c.compare(c.Y, c.operandByte(b, res))

	case mnINC:
		c.rmw(b, res, func(v uint8) uint8 { return v + 1 })
	case mnDEC:
		c.rmw(b, res, func(v uint8) uint8 { return v - 1 })
	case mnINX:
		c.loadRegister(&c.X, c.X+1)
	case mnINY:
		c.loadRegister(&c.Y, c.Y+1)
	case mnDEX:
		c.loadRegister(&c.X, c.X-1)
	case mnDEY:
		c.loadRegister(&c.Y, c.Y-1)

	case mnASL:
		c.shift(b, res, func(v uint8) (uint8, uint16) { return v << 1, uint16(v) << 1 })
	case mnLSR:
		c.shift(b, res, func(v uint8) (uint8, uint16) { return v >> 1, uint16(v&0x01) << 8 })
	case mnROL:
		carry := c.P & flagCarry
		c.shift(b, res, func(v uint8) (uint8, uint16) { return (v << 1) | carry, uint16(v) << 1 })
	case mnROR:
		carry := (c.P & flagCarry) << 7
		c.shift(b, res, func(v uint8) (uint8, uint16) { return (v >> 1) | carry, (uint16(v) << 8) & 0x0100 })

	case mnJMP:
		c.PC = res.effective

	case mnBCC:
		return c.branch(res, c.P&flagCarry == 0)
	case mnBCS:
		return c.branch(res, c.P&flagCarry != 0)
	case mnBEQ:
		return c.branch(res, c.P&flagZero != 0)
	case mnBNE:
		return c.branch(res, c.P&flagZero == 0)
	case mnBMI:
		return c.branch(res, c.P&flagNegative != 0)
	case mnBPL:
		return c.branch(res, c.P&flagNegative == 0)
	case mnBVC:
		return c.branch(res, c.P&flagOverflow == 0)
	case mnBVS:
		return c.branch(res, c.P&flagOverflow != 0)

	case mnCLC:
		c.P &^= flagCarry
	case mnSEC:
		c.P |= flagCarry
	case mnCLI:
		c.P &^= flagInterrupt
	case mnSEI:
		c.P |= flagInterrupt
	case mnCLV:
		c.P &^= flagOverflow
	case mnCLD:
		c.P &^= flagDecimal
	case mnSED:
		c.P |= flagDecimal

	case mnNOP:
		// Consumes whatever bytes the addressing mode read; no other effect.

	// Illegal combinational opcodes.
	case mnSLO:
		c.rmw(b, res, func(v uint8) uint8 {
			c.carryCheck(uint16(v) << 1)
			nv := v << 1
			c.loadRegister(&c.A, c.A|nv)
			return nv
		})
	case mnRLA:
		carry := c.P & flagCarry
		c.rmw(b, res, func(v uint8) uint8 {
			c.carryCheck(uint16(v) << 1)
			nv := (v << 1) | carry
			c.loadRegister(&c.A, c.A&nv)
			return nv
		})
	case mnSRE:
		c.rmw(b, res, func(v uint8) uint8 {
			c.carryCheck(uint16(v&0x01) << 8)
			nv := v >> 1
			c.loadRegister(&c.A, c.A^nv)
			return nv
		})
	case mnRRA:
		carry := (c.P & flagCarry) << 7
		c.rmw(b, res, func(v uint8) uint8 {
			c.carryCheck((uint16(v) << 8) & 0x0100)
			nv := (v >> 1) | carry
			c.adc(nv)
			return nv
		})
	case mnSAX:
		b.Write(res.effective, c.A&c.X)
	case mnLAX:
		v := c.operandByte(b, res)
		c.loadRegister(&c.A, v)
		c.loadRegister(&c.X, v)
	case mnDCP:
		c.rmw(b, res, func(v uint8) uint8 {
			nv := v - 1
			c.compare(c.A, nv)
			return nv
		})
	case mnISC:
		c.rmw(b, res, func(v uint8) uint8 {
			nv := v + 1
			c.sbc(nv)
			return nv
		})
	case mnANC:
		c.loadRegister(&c.A, c.A&c.operandByte(b, res))
		c.carryCheck(uint16(c.A) << 1)
	case mnALR:
		c.loadRegister(&c.A, c.A&c.operandByte(b, res))
		c.carryCheck(uint16(c.A&0x01) << 8)
		c.loadRegister(&c.A, c.A>>1)
	case mnARR:
		c.arr(c.operandByte(b, res))
	case mnAXS:
		c.axs(c.operandByte(b, res))
	}
	return 0
}

// shift is the common path for ASL/LSR/ROL/ROR: f computes the new value
// and the pre-shift bit (already positioned for carryCheck) from the old
// one; shift writes it back (to A for accumulator mode, to memory
// otherwise) and sets N/Z/C.
func (c *Chip) shift(b bus.Bus, res addrResult, f func(uint8) (uint8, uint16)) {
	c.rmw(b, res, func(v uint8) uint8 {
		nv, carryBits := f(v)
		c.carryCheck(carryBits)
		c.zeroCheck(nv)
		c.negativeCheck(nv)
		return nv
	})
}

// rmw applies f to the operand (accumulator or the byte at res.effective)
// and writes the result back to wherever it came from.
func (c *Chip) rmw(b bus.Bus, res addrResult, f func(uint8) uint8) uint8 {
	if res.kind == kindImplicit {
		c.A = f(c.A)
		return c.A
	}
	nv := f(b.Read(res.effective))
	b.Write(res.effective, nv)
	return nv
}

// branch applies the relative-offset jump when taken, reporting the extra
// cycles per spec.md §4.3: +1 if taken, +1 more if the branch lands on a
// different page than the instruction following the branch.
func (c *Chip) branch(res addrResult, taken bool) int {
	if !taken {
		return 0
	}
	old := c.PC
	newPC := uint16(int32(old) + int32(int8(res.value)))
	c.PC = newPC
	extra := 1
	if old&0xFF00 != newPC&0xFF00 {
		extra++
	}
	return extra
}

// compare implements CMP/CPX/CPY: subtract without storing, C set if
// reg >= val (computed as two's-complement addition so wraparound falls
// out of the same carryCheck helper used everywhere else).
func (c *Chip) compare(reg, val uint8) {
	diff := reg - val
	c.zeroCheck(diff)
	c.negativeCheck(diff)
	c.carryCheck(uint16(reg) + uint16(^val) + 1)
}

// adc implements ADC, including NMOS decimal-mode quirks: Z is set from
// the plain binary sum, and N/V from the intermediate taken after the
// low-nibble correction but before the high-nibble correction is applied
// to the stored accumulator value.
func (c *Chip) adc(val uint8) {
	carry := c.P & flagCarry
	if c.P&flagDecimal == 0 {
		sum := c.A + val + carry
		c.overflowCheck(c.A, val, sum)
		c.carryCheck(uint16(c.A) + uint16(val) + uint16(carry))
		c.loadRegister(&c.A, sum)
		return
	}

	lo := (c.A & 0x0F) + (val & 0x0F) + carry
	if lo >= 0x0A {
		lo = ((lo + 0x06) & 0x0F) + 0x10
	}
	sum := uint16(c.A&0xF0) + uint16(val&0xF0) + uint16(lo)
	if sum >= 0xA0 {
		sum += 0x60
	}
	result := uint8(sum & 0xFF)
	preCorrection := (c.A & 0xF0) + (val & 0xF0) + lo
	binSum := c.A + val + carry

	c.overflowCheck(c.A, val, preCorrection)
	c.carryCheck(sum)
	c.negativeCheck(preCorrection)
	c.zeroCheck(binSum)
	c.A = result
}

// sbc implements SBC. Binary mode is ADC against the ones-complemented
// operand; decimal mode applies the analogous BCD subtract-and-correct,
// with N/V/Z still taken from the binary intermediate per NMOS behavior.
func (c *Chip) sbc(val uint8) {
	if c.P&flagDecimal == 0 {
		c.adc(^val)
		return
	}

	carry := c.P & flagCarry
	lo := int8(c.A&0x0F) - int8(val&0x0F) + int8(carry) - 1
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0F) - 0x10
	}
	sum := int16(c.A&0xF0) - int16(val&0xF0) + int16(lo)
	if sum < 0 {
		sum -= 0x60
	}
	result := uint8(sum & 0xFF)

	bin := c.A + ^val + carry
	c.overflowCheck(c.A, ^val, bin)
	c.negativeCheck(bin)
	c.carryCheck(uint16(c.A) + uint16(^val) + uint16(carry))
	c.zeroCheck(bin)
	c.A = result
}

// arr implements the illegal ARR opcode: AND #i then ROR, with the
// documented flag quirk. In binary mode C is bit 6 and V is bit 6 XOR
// bit 5 of the rotated result; in decimal mode V and the BCD fixups are
// computed from the ANDed value.
func (c *Chip) arr(val uint8) {
	t := c.A & val
	carryIn := (c.P & flagCarry) << 7
	c.loadRegister(&c.A, (t>>1)|carryIn)

	if c.P&flagDecimal != 0 {
		if (t^c.A)&0x40 != 0 {
			c.P |= flagOverflow
		} else {
			c.P &^= flagOverflow
		}
		lo := t & 0x0F
		if lo+(lo&0x01) > 5 {
			c.A = (c.A & 0xF0) | ((c.A + 6) & 0x0F)
		}
		hi := t >> 4
		if hi+(hi&0x01) > 5 {
			c.P |= flagCarry
			c.A += 0x60
		} else {
			c.P &^= flagCarry
		}
		return
	}
	c.carryCheck((uint16(c.A) << 2) & 0x0100)
	if ((c.A&0x40)>>6)^((c.A&0x20)>>5) != 0 {
		c.P |= flagOverflow
	} else {
		c.P &^= flagOverflow
	}
}

// axs implements the illegal AXS/SBX opcode: X = (A & X) - val, unsigned,
// with carry set when no borrow occurred. Decimal mode is never consulted.
func (c *Chip) axs(val uint8) {
	t := c.A & c.X
	c.loadRegister(&c.X, t-val)
	if t >= val {
		c.P |= flagCarry
	} else {
		c.P &^= flagCarry
	}
}
