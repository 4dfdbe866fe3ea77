// Package testutil provides a harness for running this module's cpu.Chip
// against external conformance fixtures: Klaus Dormann's 6502 functional
// test binary and the ProcessorTests/SingleStepTests per-opcode JSON
// vectors. Neither fixture ships with this repository (they are tens of
// megabytes of binary/JSON); RunFunctionalTest and RunSingleStepVectors
// skip gracefully when their fixture is absent from disk, mirroring the
// teacher's own ROM-driven TestROMs, which reads its fixtures from a
// sibling testdata directory rather than embedding them.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/m6502/core/bus"
	"github.com/m6502/core/cpu"
)

// FunctionalTestFixture is the default location Dormann's
// 6502_functional_test.bin is expected at, relative to a package's test
// directory, if a caller drops one in for local use.
const FunctionalTestFixture = "testdata/6502_functional_test.bin"

// RunFunctionalTest loads Dormann's functional test binary at loadAddr,
// starts execution at startPC, and runs until the CPU loops on its own PC
// (the binary's convention for "test suite finished or trapped"),
// reporting success only if the terminal PC matches successPC.
func RunFunctionalTest(t *testing.T, fixturePath string, loadAddr, startPC, successPC uint16) {
	t.Helper()

	rom, err := os.ReadFile(fixturePath)
	if os.IsNotExist(err) {
		t.Skipf("conformance fixture %s not present, skipping", fixturePath)
		return
	}
	if err != nil {
		t.Fatalf("reading fixture %s: %v", fixturePath, err)
	}

	ram, err := bus.NewRAM(1 << 16)
	if err != nil {
		t.Fatalf("bus.NewRAM: %v", err)
	}
	ram.LoadAt(loadAddr, rom)

	c := cpu.New(cpu.DefaultConfig())
	c.Reset()
	if _, err := c.Tick(ram); err != nil {
		t.Fatalf("reset: %v", err)
	}
	c.SetState(cpu.State{PC: startPC, SP: 0xFD})

	const maxSteps = 200_000_000
	var pc uint16
	var totalCycles uint64
	for i := 0; i < maxSteps; i++ {
		pc = c.State().PC
		res, err := c.Tick(ram)
		if err != nil {
			t.Fatalf("cpu error at PC=%#04x: %v", pc, err)
		}
		if !res.Recognized {
			t.Fatalf("unrecognized opcode %#02x at PC=%#04x", res.Opcode, pc)
		}
		totalCycles += uint64(res.Cycles)
		if c.State().PC == pc {
			break
		}
	}

	if got := c.State().PC; got != successPC {
		t.Errorf("functional test trapped at PC=%#04x (%d cycles), want success PC %#04x", got, totalCycles, successPC)
	} else {
		t.Logf("functional test passed after %d cycles", totalCycles)
	}
}

// singleStepVector is one ProcessorTests/SingleStepTests case: an initial
// CPU+bus state, the expected final state, and the bus cycle log. Only
// the register/flag fields this core tracks are consulted.
type singleStepVector struct {
	Name  string `json:"name"`
	Initial struct {
		PC  uint16            `json:"pc"`
		S   uint8             `json:"s"`
		A   uint8             `json:"a"`
		X   uint8             `json:"x"`
		Y   uint8             `json:"y"`
		P   uint8             `json:"p"`
		RAM [][2]int          `json:"ram"`
	} `json:"initial"`
	Final struct {
		PC  uint16   `json:"pc"`
		S   uint8    `json:"s"`
		A   uint8    `json:"a"`
		X   uint8    `json:"x"`
		Y   uint8    `json:"y"`
		P   uint8    `json:"p"`
		RAM [][2]int `json:"ram"`
	} `json:"final"`
	Cycles []json.RawMessage `json:"cycles"`
}

// RunSingleStepVectors loads a per-opcode JSON vector file from
// ProcessorTests/SingleStepTests (one file per opcode byte, each a list of
// ~10000 cases) and replays every case against a fresh Chip, comparing
// final register and touched-RAM state. Skips gracefully when dir is
// absent so this harness is inert until a caller supplies the fixtures.
func RunSingleStepVectors(t *testing.T, dir string, opcode uint8) {
	t.Helper()

	path := filepath.Join(dir, fmt.Sprintf("%02x.json", opcode))
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		t.Skipf("conformance fixture %s not present, skipping", path)
		return
	}
	if err != nil {
		t.Fatalf("reading fixture %s: %v", path, err)
	}

	var vectors []singleStepVector
	if err := json.Unmarshal(data, &vectors); err != nil {
		t.Fatalf("parsing fixture %s: %v", path, err)
	}

	for _, v := range vectors {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			ram, err := bus.NewRAM(1 << 16)
			if err != nil {
				t.Fatalf("bus.NewRAM: %v", err)
			}
			for _, cell := range v.Initial.RAM {
				ram.Write(uint16(cell[0]), uint8(cell[1]))
			}

			c := cpu.New(cpu.DefaultConfig())
			c.Reset()
			if _, err := c.Tick(ram); err != nil {
				t.Fatalf("reset: %v", err)
			}
			c.SetState(cpu.State{
				PC: v.Initial.PC,
				SP: v.Initial.S,
				A:  v.Initial.A,
				X:  v.Initial.X,
				Y:  v.Initial.Y,
				P:  v.Initial.P,
			})

			res, err := c.Tick(ram)
			if err != nil {
				t.Fatalf("Tick: %v", err)
			}

			got := c.State()
			if got.PC != v.Final.PC || got.SP != v.Final.S || got.A != v.Final.A ||
				got.X != v.Final.X || got.Y != v.Final.Y || got.P != v.Final.P {
				t.Errorf("register mismatch: got %+v, want PC=%#04x SP=%#02x A=%#02x X=%#02x Y=%#02x P=%#02x",
					got, v.Final.PC, v.Final.S, v.Final.A, v.Final.X, v.Final.Y, v.Final.P)
			}
			for _, cell := range v.Final.RAM {
				addr, want := uint16(cell[0]), uint8(cell[1])
				if got := ram.Read(addr); got != want {
					t.Errorf("RAM[%#04x] = %#02x, want %#02x", addr, got, want)
				}
			}
			if res.Cycles != len(v.Cycles) {
				t.Errorf("cycles = %d, want %d", res.Cycles, len(v.Cycles))
			}
		})
	}
}
