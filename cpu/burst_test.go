package cpu

import (
	"testing"

	"github.com/m6502/core/bus"
)

// countingBurstBus wraps a *bus.RAM to additionally implement
// bus.BurstReader, letting tests confirm Tick actually prefers Read3 over
// three separate Read calls when the host offers it.
type countingBurstBus struct {
	*bus.RAM
	burstCalls int
	readCalls  int
}

func (r *countingBurstBus) Read(addr uint16) uint8 {
	r.readCalls++
	return r.RAM.Read(addr)
}

func (r *countingBurstBus) Read3(addr uint16) (uint8, uint8, uint8) {
	r.burstCalls++
	return r.RAM.Read(addr), r.RAM.Read(addr + 1), r.RAM.Read(addr + 2)
}

func TestTickFetchesAbsoluteOperandViaBurstReader(t *testing.T) {
	ram := newTestRAM(t)
	bb := &countingBurstBus{RAM: ram}

	c := New(DefaultConfig())
	bb.LoadAt(resetVector, []uint8{0x00, 0x80})
	c.Reset()
	if _, err := c.Tick(bb); err != nil { // consumes the RESET's own fetches
		t.Fatalf("Tick (reset): %v", err)
	}
	bb.burstCalls, bb.readCalls = 0, 0

	bb.LoadAt(0x8000, []uint8{0xAD, 0x00, 0x90}) // LDA $9000
	bb.Write(0x9000, 0x7E)

	res, err := c.Tick(bb)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if c.A != 0x7E {
		t.Fatalf("A = %#02x, want 0x7E", c.A)
	}
	if res.Cycles != 4 {
		t.Errorf("cycles = %d, want 4", res.Cycles)
	}
	if bb.burstCalls != 1 {
		t.Errorf("burstCalls = %d, want 1 (opcode+operand fetch should use a single Read3)", bb.burstCalls)
	}
	if bb.readCalls != 1 {
		t.Errorf("readCalls = %d, want 1 (only the effective-address load itself, not the instruction fetch)", bb.readCalls)
	}
}

func TestTickFallsBackToSequentialReadsWithoutBurstReader(t *testing.T) {
	c, ram := startedChip(t)

	ram.LoadAt(0x8000, []uint8{0xAD, 0x00, 0x90}) // LDA $9000
	ram.Write(0x9000, 0x7E)

	res, err := c.Tick(ram)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if c.A != 0x7E {
		t.Fatalf("A = %#02x, want 0x7E", c.A)
	}
	if res.Cycles != 4 {
		t.Errorf("cycles = %d, want 4", res.Cycles)
	}
}
