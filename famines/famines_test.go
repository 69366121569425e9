package famines

import (
	"bytes"
	"testing"
)

// buildTestROM assembles an in-memory iNES image. setup may patch the
// PRG/CHR contents before the reset vector is stamped in.
func buildTestROM(numPRG, numCHR, mapperID byte, setup func(prg, chr []byte)) []byte {
	header := make([]byte, 16)
	copy(header, "NES\x1A")
	header[4] = numPRG
	header[5] = numCHR
	header[6] = (mapperID & 0x0F) << 4
	header[7] = mapperID & 0xF0

	prg := make([]byte, int(numPRG)*PRG_BLOCK_SIZE)
	chr := make([]byte, int(numCHR)*CHR_BLOCK_SIZE)
	if setup != nil {
		setup(prg, chr)
	}

	// reset vector -> $8000 unless the setup already picked one
	if prg[len(prg)-4] == 0 && prg[len(prg)-3] == 0 {
		prg[len(prg)-4] = 0x00
		prg[len(prg)-3] = 0x80
	}

	rom := append([]byte{}, header...)
	rom = append(rom, prg...)
	rom = append(rom, chr...)
	return rom
}

func newTestConsole(t *testing.T, rom []byte) *Console {
	t.Helper()
	console, err := NewConsoleFromReader(bytes.NewReader(rom))
	if err != nil {
		t.Fatalf("NewConsoleFromReader: %v", err)
	}
	return console
}

// newCPUConsole builds an NROM console whose PRG starts with the given
// program at $8000.
func newCPUConsole(t *testing.T, program []byte) *Console {
	t.Helper()
	rom := buildTestROM(1, 1, 0, func(prg, chr []byte) {
		copy(prg, program)
	})
	return newTestConsole(t, rom)
}

func TestMasterClockRatios(t *testing.T) {
	console := newCPUConsole(t, []byte{0xEA, 0x4C, 0x01, 0x80}) // NOP; JMP $8001

	startCPU := console.CPU.Cycles
	for i := 0; i < 3000; i++ {
		console.Clock()
	}
	// 3000 master ticks = 1000 CPU cycles exactly. Cycles is charged a
	// whole instruction when it starts, so the cycles the JMP in flight
	// still owes (skip) have not elapsed yet.
	if got := console.CPU.Cycles - uint64(console.CPU.skip) - startCPU; got != 1000 {
		t.Fatalf("CPU cycles = %d, want 1000", got)
	}
	if console.APU.cycle != 1000 {
		t.Fatalf("APU cycles = %d, want 1000", console.APU.cycle)
	}
}

func TestResetTwiceIsIdempotent(t *testing.T) {
	console := newCPUConsole(t, []byte{0xEA, 0x4C, 0x01, 0x80})

	console.Reset()
	var first bytes.Buffer
	if err := console.SaveState(&first); err != nil {
		t.Fatal(err)
	}

	console.Reset()
	console.Reset()
	var second bytes.Buffer
	if err := console.SaveState(&second); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatal("reset twice differs from reset once")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() *bytes.Buffer {
		console := newCPUConsole(t, []byte{
			0xA9, 0x18, // LDA #$18
			0x8D, 0x01, 0x20, // STA $2001 (enable rendering)
			0xE8,             // INX
			0x4C, 0x05, 0x80, // JMP $8005
		})
		console.SetButtons1([8]bool{true, false, true})
		for i := 0; i < 4; i++ {
			console.StepFrame()
		}
		var state bytes.Buffer
		if err := console.SaveState(&state); err != nil {
			t.Fatal(err)
		}
		return &state
	}

	if !bytes.Equal(run().Bytes(), run().Bytes()) {
		t.Fatal("two identical runs diverged")
	}
}
