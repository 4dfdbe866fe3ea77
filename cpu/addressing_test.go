package cpu

import "testing"

func TestResolveAddrModes(t *testing.T) {
	ram := newTestRAM(t)
	c := New(DefaultConfig())

	tests := []struct {
		name    string
		mode    addrMode
		setup   func()
		opVal   uint8
		wantEff uint16
		wantVal uint8
		wantPC  uint16
	}{
		{
			name:   "immediate",
			mode:   modeImmediate,
			opVal:  0x42,
			wantVal: 0x42,
			wantPC: 1,
		},
		{
			name:    "zero page",
			mode:    modeZeroPage,
			opVal:   0x10,
			wantEff: 0x0010,
			wantPC:  1,
		},
		{
			name: "zero page,X wraps within page zero",
			mode: modeZeroPageX,
			setup: func() {
				c.X = 0xFF
			},
			opVal:   0x02,
			wantEff: 0x0001,
			wantPC:  1,
		},
		{
			name: "zero page,Y wraps within page zero",
			mode: modeZeroPageY,
			setup: func() {
				c.Y = 0x01
			},
			opVal:   0xFF,
			wantEff: 0x0000,
			wantPC:  1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c.PC = 0
			c.X, c.Y = 0, 0
			if tc.setup != nil {
				tc.setup()
			}
			res := c.resolveAddr(ram, tc.mode, tc.opVal, 0, false)
			if res.effective != tc.wantEff {
				t.Errorf("effective = %#04x, want %#04x", res.effective, tc.wantEff)
			}
			if res.value != tc.wantVal {
				t.Errorf("value = %#02x, want %#02x", res.value, tc.wantVal)
			}
			if c.PC != tc.wantPC {
				t.Errorf("PC = %#04x, want %#04x", c.PC, tc.wantPC)
			}
		})
	}
}

func TestResolveAbsoluteIndexedPageCross(t *testing.T) {
	ram := newTestRAM(t)
	c := New(DefaultConfig())

	c.PC = 0x0200
	ram.Write(0x0201, 0x02) // high byte of base, read at PC+1 -> base 0x02FF
	c.X = 0x01

	res := c.resolveAddr(ram, modeAbsoluteX, 0xFF, 0, false) // 0xFF is the already-fetched low byte
	if res.effective != 0x0300 {
		t.Fatalf("effective = %#04x, want 0x0300", res.effective)
	}
	if !res.pageCrossed {
		t.Errorf("expected page-cross flag set")
	}
}

func TestResolveIndirectYPageCross(t *testing.T) {
	ram := newTestRAM(t)
	c := New(DefaultConfig())

	c.PC = 0x0200
	ram.Write(0x0010, 0xFF)
	ram.Write(0x0011, 0x02)
	c.Y = 0x01

	res := c.resolveAddr(ram, modeIndirectY, 0x10, 0, false)
	if res.effective != 0x0300 {
		t.Fatalf("effective = %#04x, want 0x0300", res.effective)
	}
	if !res.pageCrossed {
		t.Errorf("expected page-cross flag set")
	}
}

// TestJMPIndirectPageWrapBug is one of the seed scenarios: JMP ($xxFF) must
// fetch its high byte from $xx00, not from the following page, reproducing
// the documented NMOS hardware bug.
func TestJMPIndirectPageWrapBug(t *testing.T) {
	ram := newTestRAM(t)
	c := New(DefaultConfig())
	c.Reset()
	ram.LoadAt(resetVector, []uint8{0x00, 0x80})
	if _, err := c.Tick(ram); err != nil {
		t.Fatalf("Tick (reset): %v", err)
	}

	c.SetState(State{PC: 0x8000, SP: 0xFD, P: flagUnused})
	ram.Write(0x8000, 0x6C) // JMP (indirect)
	ram.Write(0x8001, 0xFF) // pointer low = $02FF
	ram.Write(0x8002, 0x02) // pointer high
	ram.Write(0x02FF, 0x34) // target low, from the wrapped-low-byte pointer
	ram.Write(0x0200, 0x12) // target high, wrapped back to $0200 not $0300
	ram.Write(0x0300, 0x99) // if the bug were absent this would be read instead

	res, err := c.Tick(ram)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if !res.Recognized {
		t.Fatalf("JMP indirect not recognized")
	}
	if c.PC != 0x1234 {
		t.Errorf("PC after JMP (indirect) = %#04x, want 0x1234 (page-wrap bug)", c.PC)
	}
}
