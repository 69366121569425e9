package famines

import (
	"testing"
)

func TestRAMMirroring(t *testing.T) {
	console := newCPUConsole(t, []byte{0xEA})
	bus := console.Bus

	bus.WriteMemory(0x0000, 0xAB)
	for _, addr := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
		if got := bus.ReadMemory(addr); got != 0xAB {
			t.Errorf("RAM mirror at %#04x = %#02x, want 0xAB", addr, got)
		}
	}
}

func TestPPURegisterMirroring(t *testing.T) {
	console := newCPUConsole(t, []byte{0xEA})
	bus := console.Bus

	// $2006 is mirrored every 8 bytes across $2000-$3FFF
	bus.WriteMemory(0x3FFE, 0x21)
	bus.WriteMemory(0x3FFE, 0x55)
	if got := uint16(console.PPU.v); got != 0x2155 {
		t.Fatalf("v = %#04x, want 0x2155", got)
	}
}

func TestOAMDMA(t *testing.T) {
	console := newCPUConsole(t, []byte{0xEA})
	bus := console.Bus

	for i := 0; i < 256; i++ {
		bus.RAM[0x0200+i] = byte(i ^ 0x5A)
	}

	// force an even CPU cycle so the transfer is exactly 513 cycles
	console.CPU.Cycles = 100
	before := console.CPU.Cycles
	bus.WriteMemory(0x4014, 0x02)
	if !bus.DMAActive() {
		t.Fatal("DMA not active after $4014 write")
	}

	steps := 0
	for bus.DMAActive() {
		bus.StepDMA()
		steps++
	}
	if steps != 513 {
		t.Fatalf("DMA took %d cycles, want 513", steps)
	}
	if console.CPU.Cycles-before != 513 {
		t.Fatalf("CPU charged %d cycles, want 513", console.CPU.Cycles-before)
	}

	for i := 0; i < 256; i++ {
		if console.PPU.oam[i] != byte(i^0x5A) {
			t.Fatalf("OAM[%d] = %#02x, want %#02x", i, console.PPU.oam[i], byte(i^0x5A))
		}
	}
}

func TestOAMDMAOddCycleAlignment(t *testing.T) {
	console := newCPUConsole(t, []byte{0xEA})
	bus := console.Bus

	console.CPU.Cycles = 101
	bus.WriteMemory(0x4014, 0x02)
	steps := 0
	for bus.DMAActive() {
		bus.StepDMA()
		steps++
	}
	if steps != 514 {
		t.Fatalf("DMA from odd cycle took %d cycles, want 514", steps)
	}
}

func TestControllerStrobeAndShift(t *testing.T) {
	console := newCPUConsole(t, []byte{0xEA})
	bus := console.Bus

	// A, Select and Right held
	console.SetButtons1([8]bool{true, false, true, false, false, false, false, true})

	bus.WriteMemory(0x4016, 1)
	bus.WriteMemory(0x4016, 0)

	want := []byte{1, 0, 1, 0, 0, 0, 0, 1}
	for i, bit := range want {
		got := bus.ReadMemory(0x4016)
		if got != 0x40|bit {
			t.Fatalf("read %d = %#02x, want %#02x", i, got, 0x40|bit)
		}
	}
	// after eight shifts the line reads 1
	if got := bus.ReadMemory(0x4016); got != 0x41 {
		t.Fatalf("ninth read = %#02x, want 0x41", got)
	}
}

func TestControllerStrobeHighKeepsReloading(t *testing.T) {
	console := newCPUConsole(t, []byte{0xEA})
	bus := console.Bus

	console.SetButtons1([8]bool{true})
	bus.WriteMemory(0x4016, 1)
	for i := 0; i < 4; i++ {
		if got := bus.ReadMemory(0x4016); got != 0x41 {
			t.Fatalf("strobed read %d = %#02x, want 0x41 (button A)", i, got)
		}
	}
}

func TestControllerPressReleaseSameCycle(t *testing.T) {
	console := newCPUConsole(t, []byte{0xEA})
	bus := console.Bus

	console.SetButtons1([8]bool{true})
	console.SetButtons1([8]bool{false})
	bus.WriteMemory(0x4016, 1)
	bus.WriteMemory(0x4016, 0)
	if got := bus.ReadMemory(0x4016); got != 0x40 {
		t.Fatalf("read = %#02x, want 0x40 (no press)", got)
	}
}

func TestDisabledRegionReadsOpenBus(t *testing.T) {
	console := newCPUConsole(t, []byte{0xEA})
	bus := console.Bus

	bus.ReadMemory(0x0000) // drive a known value onto the bus
	bus.RAM[0] = 0x77
	bus.ReadMemory(0x0000)
	if got := bus.ReadMemory(0x4018); got != 0x77 {
		t.Fatalf("disabled region = %#02x, want open bus 0x77", got)
	}
}

func TestCartridgeOpenBus(t *testing.T) {
	console := newCPUConsole(t, []byte{0xEA})
	// $5000 is unmapped on NROM; reads return the address high byte
	if got := console.Bus.ReadMemory(0x5012); got != 0x50 {
		t.Fatalf("unmapped cartridge read = %#02x, want 0x50", got)
	}
}

func TestWRAMReadWrite(t *testing.T) {
	console := newCPUConsole(t, []byte{0xEA})
	bus := console.Bus
	bus.WriteMemory(0x6000, 0x99)
	if got := bus.ReadMemory(0x6000); got != 0x99 {
		t.Fatalf("WRAM = %#02x, want 0x99", got)
	}
}
