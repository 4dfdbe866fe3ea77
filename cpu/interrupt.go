package cpu

import "github.com/m6502/core/bus"

// serviceReset runs the RESET sequence: three dummy stack "pops" (the real
// hardware drives three read cycles against the stack while SP decrements,
// but nothing is pushed), I set, PC loaded from resetVector. A pending
// NMI is discarded; the IRQ line level set through IRQSet is kept, and is
// masked by the I flag this sequence sets.
func (c *Chip) serviceReset(b bus.Bus) int {
	c.resetPending = false
	c.nmiPending = false

	c.SP -= 3
	c.P |= flagInterrupt
	c.P &^= flagDecimal
	c.PC = bus.ReadWord(b, resetVector)
	c.started = true
	return 7
}

// serviceInterrupt runs the shared NMI/IRQ/BRK push-and-vector sequence.
// brk is true only when the opcode fetched was BRK; it controls the B flag
// in the pushed copy of P. For BRK, execBRK has already advanced PC past
// the signature byte before calling this.
func (c *Chip) serviceInterrupt(b bus.Bus, vector uint16, brk bool) int {
	c.pushStack(b, uint8(c.PC>>8))
	c.pushStack(b, uint8(c.PC))

	pushed := c.P | flagUnused
	if brk {
		pushed |= flagBreak
	} else {
		pushed &^= flagBreak
	}
	c.pushStack(b, pushed)

	c.P |= flagInterrupt
	c.PC = bus.ReadWord(b, vector)
	return 7
}

// execBRK implements the BRK opcode: PC has already been advanced past the
// opcode byte by the caller; BRK additionally skips a padding signature
// byte before pushing, per the documented (if pointless) two-byte
// instruction length.
func (c *Chip) execBRK(b bus.Bus) int {
	c.PC++
	vector := irqVector
	// A pending NMI that arrives during BRK's sequence steals the vector
	// fetch on real hardware; model that as routing to the NMI vector
	// and clearing the latch, since BRK and NMI share the same push shape.
	if c.nmiPending {
		c.nmiPending = false
		vector = nmiVector
	}
	return c.serviceInterrupt(b, vector, true)
}

// execJSR implements JSR's nonstandard push ordering: the low byte of the
// target is read first and PC is advanced to point at the instruction's
// final byte (the high-byte position) before anything is pushed; only
// after the high/low return address push does the high byte get read and
// the two halves assembled into the jump target. A self-modifying program
// that rewrites its own high-byte operand between the two reads observes
// the rewritten value, since the read genuinely happens after the pushes.
func (c *Chip) execJSR(b bus.Bus, lo uint8) {
	c.PC++
	c.pushStack(b, uint8(c.PC>>8))
	c.pushStack(b, uint8(c.PC))
	hi := b.Read(c.PC)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// execRTS implements RTS: pop the return address and advance past the JSR.
func (c *Chip) execRTS(b bus.Bus) {
	lo := c.pullStack(b)
	hi := c.pullStack(b)
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.PC++
}

// execRTI implements RTI: pop P (B and the unused bit are not restored
// into the live flag set beyond what flagUnused already forces, and the
// popped B bit is simply discarded) then the return address, with no +1 —
// unlike RTS, RTI's popped PC is the actual next instruction.
func (c *Chip) execRTI(b bus.Bus) {
	p := c.pullStack(b)
	c.P = (p | flagUnused) &^ flagBreak
	lo := c.pullStack(b)
	hi := c.pullStack(b)
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// execPHP pushes P with B set, matching the documented PHP/BRK behavior
// (as opposed to a hardware-driven interrupt, which pushes B clear).
func (c *Chip) execPHP(b bus.Bus) {
	c.pushStack(b, c.P|flagUnused|flagBreak)
}

// execPLP pulls P, forcing the unused bit on and discarding the popped B
// bit (it never reflects live CPU state).
func (c *Chip) execPLP(b bus.Bus) {
	c.P = (c.pullStack(b) | flagUnused) &^ flagBreak
}
