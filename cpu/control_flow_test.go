package cpu

import "testing"

func TestJSRRTSRoundTrip(t *testing.T) {
	c, ram := startedChip(t)
	c.SetState(State{PC: 0x8000, SP: 0xFD, P: flagUnused})

	ram.LoadAt(0x8000, []uint8{0x20, 0x00, 0x90}) // JSR $9000
	ram.Write(0x9000, 0x60)                       // RTS

	res, err := c.Tick(ram)
	if err != nil {
		t.Fatalf("Tick (JSR): %v", err)
	}
	if res.Cycles != 6 {
		t.Errorf("JSR cycles = %d, want 6", res.Cycles)
	}
	if c.PC != 0x9000 {
		t.Fatalf("PC after JSR = %#04x, want 0x9000", c.PC)
	}
	if c.SP != 0xFB {
		t.Fatalf("SP after JSR = %#02x, want 0xFB", c.SP)
	}

	res, err = c.Tick(ram)
	if err != nil {
		t.Fatalf("Tick (RTS): %v", err)
	}
	if res.Cycles != 6 {
		t.Errorf("RTS cycles = %d, want 6", res.Cycles)
	}
	if c.PC != 0x8003 {
		t.Fatalf("PC after RTS = %#04x, want 0x8003 (instruction after JSR)", c.PC)
	}
	if c.SP != 0xFD {
		t.Fatalf("SP after RTS = %#02x, want 0xFD (restored)", c.SP)
	}
}

// TestJSRSelfModifiedTarget is a seed scenario: JSR reads the operand's
// high byte only after pushing the return address, so when the JSR sits
// in the stack page and the push overwrites its own high-byte operand,
// the jump target uses the rewritten value.
func TestJSRSelfModifiedTarget(t *testing.T) {
	c, ram := startedChip(t)
	c.SetState(State{PC: 0x01FC, SP: 0xFE, P: flagUnused})

	ram.LoadAt(0x01FC, []uint8{0x20, 0x00, 0x10}) // JSR $1000 (as originally encoded)

	// The return-address high byte (0x01) is pushed to 0x01FE, overwriting
	// the high-byte operand 0x10 before JSR reads it.

	res, err := c.Tick(ram)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if res.Cycles != 6 {
		t.Errorf("cycles = %d, want 6", res.Cycles)
	}
	if c.PC != 0x0100 {
		t.Fatalf("PC = %#04x, want 0x0100 (JSR observes the rewritten high byte)", c.PC)
	}

	retLo := ram.Read(0x01FD)
	retHi := ram.Read(0x01FE)
	pushedReturn := uint16(retHi)<<8 | uint16(retLo)
	if pushedReturn != 0x01FE {
		t.Errorf("pushed return address = %#04x, want 0x01FE (last byte of the JSR instruction)", pushedReturn)
	}
}

func TestPHAPLARoundTrip(t *testing.T) {
	c, ram := startedChip(t)
	c.SetState(State{PC: 0x8000, SP: 0xFD, P: flagUnused, A: 0x42})

	ram.LoadAt(0x8000, []uint8{0x48, 0xA9, 0x00, 0x68}) // PHA; LDA #0; PLA

	if _, err := c.Tick(ram); err != nil { // PHA
		t.Fatalf("Tick (PHA): %v", err)
	}
	if c.SP != 0xFC {
		t.Fatalf("SP after PHA = %#02x, want 0xFC", c.SP)
	}
	if _, err := c.Tick(ram); err != nil { // LDA #0
		t.Fatalf("Tick (LDA): %v", err)
	}
	if c.A != 0 {
		t.Fatalf("A after LDA #0 = %#02x, want 0", c.A)
	}
	if _, err := c.Tick(ram); err != nil { // PLA
		t.Fatalf("Tick (PLA): %v", err)
	}
	if c.A != 0x42 {
		t.Fatalf("A after PLA = %#02x, want 0x42", c.A)
	}
	if c.SP != 0xFD {
		t.Fatalf("SP after PLA = %#02x, want 0xFD", c.SP)
	}
}

// TestPHPPLPRoundTrip exercises spec.md §8's "PHP; PLP round-trips the
// status byte modulo bits 4 and 5" property: whatever was live in P before
// PHP comes back after PLP, except the break bit (always clear on pull)
// and the unused bit (always set), regardless of what was pushed.
func TestPHPPLPRoundTrip(t *testing.T) {
	c, ram := startedChip(t)
	original := flagCarry | flagOverflow | flagNegative
	c.SetState(State{PC: 0x8000, SP: 0xFD, P: original})

	ram.LoadAt(0x8000, []uint8{0x08, 0xA9, 0x00, 0x28}) // PHP; LDA #$00; PLP

	if _, err := c.Tick(ram); err != nil { // PHP
		t.Fatalf("Tick (PHP): %v", err)
	}
	if c.SP != 0xFC {
		t.Fatalf("SP after PHP = %#02x, want 0xFC", c.SP)
	}
	if pushed := ram.Read(0x01FD); pushed != original|flagUnused|flagBreak {
		t.Errorf("pushed P = %#02x, want %#02x (unused and break forced set)", pushed, original|flagUnused|flagBreak)
	}

	if _, err := c.Tick(ram); err != nil { // LDA #$00 clobbers Z/N so PLP can't coast on them
		t.Fatalf("Tick (LDA): %v", err)
	}

	if _, err := c.Tick(ram); err != nil { // PLP
		t.Fatalf("Tick (PLP): %v", err)
	}
	want := (original | flagUnused) &^ flagBreak
	if c.P != want {
		t.Errorf("P after PLP = %#02x, want %#02x (restored modulo break/unused)", c.P, want)
	}
	if c.SP != 0xFD {
		t.Fatalf("SP after PLP = %#02x, want 0xFD", c.SP)
	}
}

func TestRTIRestoresFlagsAndPC(t *testing.T) {
	c, ram := startedChip(t)
	c.SetState(State{PC: 0x8000, SP: 0xFA, P: flagUnused})

	// Simulate an interrupt frame already on the stack: P, PCL, PCH in
	// pull order at 0x01FB..0x01FD, with SP=0xFA.
	ram.Write(0x01FB, 0x00 | flagUnused | flagCarry) // pulled P
	ram.Write(0x01FC, 0x34)                          // PCL
	ram.Write(0x01FD, 0x12)                          // PCH
	c.SP = 0xFA

	ram.Write(0x8000, 0x40) // RTI

	res, err := c.Tick(ram)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if res.Cycles != 6 {
		t.Errorf("cycles = %d, want 6", res.Cycles)
	}
	if c.PC != 0x1234 {
		t.Fatalf("PC after RTI = %#04x, want 0x1234", c.PC)
	}
	if c.P&flagCarry == 0 {
		t.Errorf("C should be restored from the pulled P")
	}
	if c.SP != 0xFD {
		t.Fatalf("SP after RTI = %#02x, want 0xFD", c.SP)
	}
}
