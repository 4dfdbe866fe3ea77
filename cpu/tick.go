package cpu

import "github.com/m6502/core/bus"

// fetchInstruction reads the opcode byte at addr, plus the two bytes that
// would follow it, in a single BurstReader.Read3 call when b implements
// bus.BurstReader — this is the "optionally as a 3-byte burst" fetch from
// spec.md §4.1/§4.4. A host without BurstReader gets op from one Read call
// and nothing else; callers that need operand bytes fall back to reading
// exactly as many of them as the instruction actually consumes, so the
// no-burst path never touches more of the bus than before. b1/b2 are
// meaningless (and must not be used) when bursted is false.
func fetchInstruction(b bus.Bus, addr uint16) (op, b1, b2 uint8, bursted bool) {
	if br, ok := b.(bus.BurstReader); ok {
		op, b1, b2 = br.Read3(addr)
		return op, b1, b2, true
	}
	return b.Read(addr), 0, 0, false
}

// Tick executes exactly one step: a pending RESET, else a pending NMI,
// else an asserted-and-unmasked IRQ, else one instruction fetched from PC.
// Per spec.md §4.4 this ordering is fixed and re-evaluated on every call,
// so a RESET requested mid-instruction-stream always preempts everything
// else on the very next Tick.
func (c *Chip) Tick(b bus.Bus) (Result, error) {
	if c.resetPending {
		return Result{Cycles: c.serviceReset(b)}, nil
	}
	if !c.started {
		return Result{}, InvalidCPUState{Reason: "Tick called before the first Reset"}
	}
	if c.nmiPending {
		c.nmiPending = false
		return Result{Cycles: c.serviceInterrupt(b, nmiVector, false)}, nil
	}
	if c.irqAsserted && c.P&flagInterrupt == 0 {
		return Result{Cycles: c.serviceInterrupt(b, irqVector, false)}, nil
	}

	op, b1, b2, bursted := fetchInstruction(b, c.PC)
	info, ok := lookupOpcode(op)
	if !ok {
		if c.cfg.AdvancePastUnknown {
			c.PC++
			return Result{Cycles: 2, Opcode: op, Recognized: false}, nil
		}
		return Result{Cycles: 0, Opcode: op, Recognized: false}, nil
	}

	c.PC++
	cycles := int(info.cycles)

	switch info.mnemonic {
	case mnBRK:
		cycles = c.execBRK(b)
	case mnJSR:
		// The low byte may come from the burst; the high byte must still
		// be a live Read made after the return-address push (execJSR), so
		// self-modifying code between the two reads is observed correctly.
		lo := b1
		if !bursted {
			lo = b.Read(c.PC)
		}
		c.execJSR(b, lo)
	case mnRTS:
		c.execRTS(b)
	case mnRTI:
		c.execRTI(b)
	case mnPHA:
		c.pushStack(b, c.A)
	case mnPHP:
		c.execPHP(b)
	case mnPLA:
		c.loadRegister(&c.A, c.pullStack(b))
	case mnPLP:
		c.execPLP(b)
	default:
		n := operandBytes(info.mode)
		var opVal uint8
		if n > 0 {
			if bursted {
				opVal = b1
			} else {
				opVal = b.Read(c.PC)
			}
		}
		var burstHi uint8
		haveBurstHi := bursted && n == 2
		if haveBurstHi {
			burstHi = b2
		}
		res := c.resolveAddr(b, info.mode, opVal, burstHi, haveBurstHi)
		extra := c.execute(b, info.mnemonic, res)
		cycles += extra
		if info.pageCrossAdd && res.pageCrossed {
			cycles++
		}
	}

	return Result{Cycles: cycles, Opcode: op, Recognized: true}, nil
}
