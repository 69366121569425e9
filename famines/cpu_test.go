package famines

import (
	"testing"
)

// stepOne executes a single instruction and returns its cycle cost.
func stepOne(console *Console) int {
	return console.CPU.Step(console.Bus)
}

func TestADCFlags(t *testing.T) {
	tests := []struct {
		a, m, carry byte
		wantA       byte
		wantC       byte
		wantV       byte
		wantZ       byte
		wantN       byte
	}{
		{0x01, 0x01, 0, 0x02, 0, 0, 0, 0},
		{0xFF, 0x01, 0, 0x00, 1, 0, 1, 0},
		{0x7F, 0x01, 0, 0x80, 0, 1, 0, 1},
		{0x80, 0x80, 0, 0x00, 1, 1, 1, 0},
		{0x50, 0x50, 1, 0xA1, 0, 1, 0, 1},
	}

	for _, tt := range tests {
		console := newCPUConsole(t, []byte{0x69, tt.m}) // ADC #imm
		cpu := console.CPU
		cpu.A = tt.a
		cpu.C = tt.carry
		stepOne(console)

		if cpu.A != tt.wantA || cpu.C != tt.wantC || cpu.V != tt.wantV ||
			cpu.Z != tt.wantZ || cpu.N != tt.wantN {
			t.Errorf("ADC %#02x+%#02x+%d: A=%#02x C=%d V=%d Z=%d N=%d, want A=%#02x C=%d V=%d Z=%d N=%d",
				tt.a, tt.m, tt.carry, cpu.A, cpu.C, cpu.V, cpu.Z, cpu.N,
				tt.wantA, tt.wantC, tt.wantV, tt.wantZ, tt.wantN)
		}
	}
}

func TestSBCBorrow(t *testing.T) {
	console := newCPUConsole(t, []byte{0xE9, 0x01}) // SBC #$01
	cpu := console.CPU
	cpu.A = 0x03
	cpu.C = 1
	stepOne(console)
	if cpu.A != 0x02 || cpu.C != 1 {
		t.Fatalf("SBC: A=%#02x C=%d, want A=0x02 C=1", cpu.A, cpu.C)
	}
}

func TestCompareSetsCarry(t *testing.T) {
	console := newCPUConsole(t, []byte{0xC9, 0x10}) // CMP #$10
	cpu := console.CPU
	cpu.A = 0x10
	stepOne(console)
	if cpu.C != 1 || cpu.Z != 1 {
		t.Fatalf("CMP equal: C=%d Z=%d, want C=1 Z=1", cpu.C, cpu.Z)
	}
}

func TestBITFlags(t *testing.T) {
	console := newCPUConsole(t, []byte{0x24, 0x10}) // BIT $10
	console.Bus.RAM[0x10] = 0xC0
	cpu := console.CPU
	cpu.A = 0x01
	stepOne(console)
	if cpu.Z != 1 || cpu.N != 1 || cpu.V != 1 {
		t.Fatalf("BIT: Z=%d N=%d V=%d, want all 1", cpu.Z, cpu.N, cpu.V)
	}
}

func TestJMPIndirectPageBoundaryBug(t *testing.T) {
	// JMP ($02FF): low byte from $02FF, high byte from $0200
	console := newCPUConsole(t, []byte{0x6C, 0xFF, 0x02})
	console.Bus.RAM[0x02FF] = 0x34
	console.Bus.RAM[0x0200] = 0x12
	console.Bus.RAM[0x0300] = 0x99 // would be used without the bug
	stepOne(console)
	if console.CPU.PC != 0x1234 {
		t.Fatalf("PC = %#04x, want 0x1234", console.CPU.PC)
	}
}

func TestIndirectIndexedPageCross(t *testing.T) {
	// LDA ($80),Y with Y=1 and ($80) = $00FF: reads $0100, 6 cycles
	console := newCPUConsole(t, []byte{0xB1, 0x80})
	console.Bus.RAM[0x80] = 0xFF
	console.Bus.RAM[0x81] = 0x00
	console.Bus.RAM[0x0100] = 0x42
	console.CPU.Y = 0x01

	cycles := stepOne(console)
	if cycles != 6 {
		t.Fatalf("cycles = %d, want 6 (5 base + 1 crossing)", cycles)
	}
	if console.CPU.A != 0x42 {
		t.Fatalf("A = %#02x, want 0x42", console.CPU.A)
	}
}

func TestAbsoluteXPageCrossReadOnly(t *testing.T) {
	// LDA $00F0,X crosses a page with X >= 0x10
	console := newCPUConsole(t, []byte{0xBD, 0xF0, 0x00}) // LDA $00F0,X
	console.Bus.RAM[0x0110] = 0x55
	console.CPU.X = 0x20
	if cycles := stepOne(console); cycles != 5 {
		t.Fatalf("read cycles = %d, want 5", cycles)
	}

	// STA always pays the extra cycle
	console = newCPUConsole(t, []byte{0x9D, 0xF0, 0x00}) // STA $00F0,X
	console.CPU.X = 0x01
	if cycles := stepOne(console); cycles != 5 {
		t.Fatalf("write cycles = %d, want 5", cycles)
	}
}

func TestBranchCycleCosts(t *testing.T) {
	// BEQ not taken: 2 cycles
	console := newCPUConsole(t, []byte{0xF0, 0x10})
	console.CPU.Z = 0
	if cycles := stepOne(console); cycles != 2 {
		t.Fatalf("not taken = %d cycles, want 2", cycles)
	}

	// taken, same page: 3 cycles
	console = newCPUConsole(t, []byte{0xF0, 0x10})
	console.CPU.Z = 1
	if cycles := stepOne(console); cycles != 3 {
		t.Fatalf("taken = %d cycles, want 3", cycles)
	}

	// taken, crossing a page: 4 cycles (back from $8002 to $7F82)
	console = newCPUConsole(t, []byte{0xF0, 0x80})
	console.CPU.Z = 1
	if cycles := stepOne(console); cycles != 4 {
		t.Fatalf("taken cross = %d cycles, want 4", cycles)
	}
}

func TestStackWraps(t *testing.T) {
	console := newCPUConsole(t, []byte{0x48}) // PHA
	cpu := console.CPU
	cpu.SP = 0x00
	cpu.A = 0x7E
	stepOne(console)
	if console.Bus.RAM[0x0100] != 0x7E {
		t.Fatalf("push at SP=0 wrote %#02x at $0100", console.Bus.RAM[0x0100])
	}
	if cpu.SP != 0xFF {
		t.Fatalf("SP = %#02x, want 0xFF", cpu.SP)
	}
}

func TestPHPPushesBreakAndUnused(t *testing.T) {
	console := newCPUConsole(t, []byte{0x08}) // PHP
	cpu := console.CPU
	stepOne(console)
	pushed := console.Bus.RAM[0x0100|uint16(cpu.SP)+1]
	if pushed&0x30 != 0x30 {
		t.Fatalf("PHP pushed %#02x, want B and U set", pushed)
	}
}

func TestBRKInterruptSequence(t *testing.T) {
	console := newCPUConsole(t, []byte{0x00}) // BRK
	// IRQ/BRK vector -> $9000
	rom := console.Cartridge
	rom.PRG[0x3FFE] = 0x00
	rom.PRG[0x3FFF] = 0x90
	cycles := stepOne(console)
	if cycles != 7 {
		t.Fatalf("BRK cycles = %d, want 7", cycles)
	}
	if console.CPU.PC != 0x9000 {
		t.Fatalf("PC = %#04x, want 0x9000", console.CPU.PC)
	}
	if console.CPU.I != 1 {
		t.Fatal("BRK did not set I")
	}
	// status on the stack carries B=1
	pushed := console.Bus.RAM[0x0100|uint16(console.CPU.SP)+1]
	if pushed&0x10 == 0 {
		t.Fatalf("BRK pushed %#02x without B", pushed)
	}
}

func TestNMITakesPriorityOverIRQ(t *testing.T) {
	console := newCPUConsole(t, []byte{0xEA}) // NOP
	rom := console.Cartridge
	rom.PRG[0x3FFA] = 0x00 // NMI vector -> $A000
	rom.PRG[0x3FFB] = 0xA0
	rom.PRG[0x3FFE] = 0x00 // IRQ vector -> $B000
	rom.PRG[0x3FFF] = 0xB0
	rom.PRG[0x2000] = 0xEA // NOP at the NMI handler ($A000 mirrors PRG+0x2000)

	cpu := console.CPU
	cpu.I = 0
	cpu.TriggerNMI()
	cpu.IRQLineFor(IRQ_EXTERNAL).Raise()

	cycles := stepOne(console)
	if console.CPU.PC < 0xA000 || console.CPU.PC >= 0xB000 {
		t.Fatalf("PC = %#04x, want NMI handler at $A000", console.CPU.PC)
	}
	// 7 interrupt cycles + 2 for the NOP executed after vectoring
	if cycles != 9 {
		t.Fatalf("cycles = %d, want 9", cycles)
	}
}

func TestIRQMaskedByIFlag(t *testing.T) {
	console := newCPUConsole(t, []byte{0xEA, 0xEA})
	cpu := console.CPU
	cpu.I = 1
	cpu.IRQLineFor(IRQ_EXTERNAL).Raise()
	stepOne(console)
	if cpu.PC != 0x8001 {
		t.Fatalf("IRQ taken with I=1, PC = %#04x", cpu.PC)
	}
}

func TestIRQLineHandles(t *testing.T) {
	cpu := NewCPU()
	frame := cpu.IRQLineFor(IRQ_FRAME_COUNTER)
	dmc := cpu.IRQLineFor(IRQ_DMC)

	frame.Raise()
	dmc.Raise()
	if cpu.irqFlag != uint32(IRQ_FRAME_COUNTER|IRQ_DMC) {
		t.Fatalf("irqFlag = %#x", cpu.irqFlag)
	}
	frame.Clear()
	if frame.Pending() || !dmc.Pending() {
		t.Fatal("clearing one line disturbed the other")
	}
}

func TestUndocumentedLAXAndSAX(t *testing.T) {
	console := newCPUConsole(t, []byte{0xA7, 0x10, 0x87, 0x11}) // LAX $10; SAX $11
	console.Bus.RAM[0x10] = 0xC3
	stepOne(console)
	cpu := console.CPU
	if cpu.A != 0xC3 || cpu.X != 0xC3 {
		t.Fatalf("LAX: A=%#02x X=%#02x", cpu.A, cpu.X)
	}
	cpu.A = 0xF0
	stepOne(console)
	if console.Bus.RAM[0x11] != 0xF0&0xC3 {
		t.Fatalf("SAX stored %#02x", console.Bus.RAM[0x11])
	}
}

func TestUndocumentedDCPAndISC(t *testing.T) {
	console := newCPUConsole(t, []byte{0xC7, 0x10}) // DCP $10
	console.Bus.RAM[0x10] = 0x11
	console.CPU.A = 0x10
	stepOne(console)
	if console.Bus.RAM[0x10] != 0x10 {
		t.Fatalf("DCP left %#02x", console.Bus.RAM[0x10])
	}
	if console.CPU.Z != 1 || console.CPU.C != 1 {
		t.Fatalf("DCP flags Z=%d C=%d", console.CPU.Z, console.CPU.C)
	}

	console = newCPUConsole(t, []byte{0xE7, 0x10}) // ISC $10
	console.Bus.RAM[0x10] = 0x0F
	console.CPU.A = 0x20
	console.CPU.C = 1
	stepOne(console)
	if console.Bus.RAM[0x10] != 0x10 {
		t.Fatalf("ISC left %#02x", console.Bus.RAM[0x10])
	}
	if console.CPU.A != 0x10 {
		t.Fatalf("ISC A=%#02x, want 0x10", console.CPU.A)
	}
}

func TestUndocumentedSLO(t *testing.T) {
	console := newCPUConsole(t, []byte{0x07, 0x10}) // SLO $10
	console.Bus.RAM[0x10] = 0x81
	console.CPU.A = 0x01
	stepOne(console)
	if console.Bus.RAM[0x10] != 0x02 {
		t.Fatalf("SLO left %#02x", console.Bus.RAM[0x10])
	}
	if console.CPU.A != 0x03 || console.CPU.C != 1 {
		t.Fatalf("SLO A=%#02x C=%d", console.CPU.A, console.CPU.C)
	}
}

func TestJamOpcodeActsAsNOP(t *testing.T) {
	console := newCPUConsole(t, []byte{0x02, 0xEA}) // KIL; NOP
	cycles := stepOne(console)
	if cycles != 2 {
		t.Fatalf("jam opcode cycles = %d, want 2", cycles)
	}
	if console.CPU.PC != 0x8001 {
		t.Fatalf("PC = %#04x, want 0x8001", console.CPU.PC)
	}
}

func TestResetState(t *testing.T) {
	console := newCPUConsole(t, []byte{0xEA})
	cpu := console.CPU
	if cpu.PC != 0x8000 {
		t.Fatalf("PC = %#04x, want reset vector target 0x8000", cpu.PC)
	}
	if cpu.SP != 0xFD {
		t.Fatalf("SP = %#02x, want 0xFD", cpu.SP)
	}
	if cpu.I != 1 {
		t.Fatal("I not set after reset")
	}
	if cpu.Cycles != 7 {
		t.Fatalf("Cycles = %d, want 7", cpu.Cycles)
	}
	if cpu.skip != 0 {
		t.Fatalf("skip = %d, want 0 between instructions", cpu.skip)
	}
}
