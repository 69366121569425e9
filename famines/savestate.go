package famines

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Save states serialize every mutable register of the CPU, PPU, APU,
// bus and mapper as a little-endian blob. The layout is versioned;
// loading a mismatched version fails before any state is touched.

var saveStateMagic = [4]byte{'F', 'M', 'N', 'S'}

const saveStateVersion uint16 = 1

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

type saveStateHeader struct {
	Magic    [4]byte
	Version  uint16
	MapperID byte
	_        byte
}

type cpuState struct {
	Cycles     uint64
	PC         uint16
	SP         byte
	A          byte
	X          byte
	Y          byte
	Flags      byte
	PendingNMI byte
	Skip       int32
	Stall      int32
	IRQFlag    uint32
}

type ppuState struct {
	Cycle         int32
	ScanLine      int32
	Frame         uint64
	FrameComplete byte

	Ctrl           byte
	Mask           byte
	OAMAddr        byte
	SpriteOverflow byte
	SpriteZeroHit  byte
	VblankFlag     byte

	V          uint16
	T          uint16
	X          byte
	W          byte
	ReadBuffer byte
	GenLatch   byte

	PaletteRAM   [32]byte
	OAM          [256]byte
	SecondaryOAM [32]byte

	NTByte      byte
	ATByte      byte
	TileLo      byte
	TileHi      byte
	BGPatternLo uint16
	BGPatternHi uint16
	BGAttribLo  uint16
	BGAttribHi  uint16

	SpriteCount          int32
	SpritePatternLo      [8]byte
	SpritePatternHi      [8]byte
	SpriteX              [8]byte
	SpriteAttr           [8]byte
	SpriteZeroOnLine     byte
	SpriteZeroOnNextLine byte
}

type pulseState struct {
	Enabled        byte
	Duty           byte
	DutyPos        byte
	Period         uint16
	Timer          uint16
	Length         byte
	LengthHalt     byte
	ConstantVolume byte
	Volume         byte
	EnvStart       byte
	EnvDivider     byte
	EnvDecay       byte
	SweepEnabled   byte
	SweepPeriod    byte
	SweepNegate    byte
	SweepShift     byte
	SweepReload    byte
	SweepDivider   byte
}

type triangleState struct {
	Enabled       byte
	Period        uint16
	Timer         uint16
	Length        byte
	LengthHalt    byte
	LinearCounter byte
	LinearReload  byte
	LinearFlag    byte
	SeqPos        byte
}

type noiseState struct {
	Enabled        byte
	Mode           byte
	ShiftRegister  uint16
	Period         uint16
	Timer          uint16
	Length         byte
	LengthHalt     byte
	ConstantVolume byte
	Volume         byte
	EnvStart       byte
	EnvDivider     byte
	EnvDecay       byte
}

type dmcState struct {
	IRQEnabled     byte
	Loop           byte
	RatePeriod     uint16
	Timer          uint16
	Level          byte
	SampleAddr     uint16
	SampleLength   uint16
	CurrentAddr    uint16
	BytesRemaining uint16
	SampleBuffer   byte
	BufferEmpty    byte
	ShiftRegister  byte
	BitsRemaining  byte
	Silence        byte
}

type apuState struct {
	Cycle    uint64
	Pulse1   pulseState
	Pulse2   pulseState
	Triangle triangleState
	Noise    noiseState
	DMC      dmcState

	FCMode       byte
	FCInhibitIRQ byte
	FCCycle      uint32
	FCPending    int16
	FCWriteDelay int8
	_            byte
}

type busState struct {
	RAM     [2048]byte
	OpenBus byte

	DMAActive    byte
	DMAPage      byte
	DMAOffset    uint16
	DMAValue     byte
	DMADummy     byte
	DMAAlign     byte
	DMAReadPhase byte

	Pad1Buttons [8]byte
	Pad1Index   byte
	Pad1Strobe  byte
	Pad2Buttons [8]byte
	Pad2Index   byte
	Pad2Strobe  byte

	MasterTicks uint64
	PrevNMILine byte
}

func (cpu *CPU) captureState() cpuState {
	return cpuState{
		Cycles:     cpu.Cycles,
		PC:         cpu.PC,
		SP:         cpu.SP,
		A:          cpu.A,
		X:          cpu.X,
		Y:          cpu.Y,
		Flags:      cpu.Flags(),
		PendingNMI: boolByte(cpu.pendingNMI),
		Skip:       int32(cpu.skip),
		Stall:      int32(cpu.stall),
		IRQFlag:    cpu.irqFlag,
	}
}

func (cpu *CPU) restoreState(s cpuState) {
	cpu.Cycles = s.Cycles
	cpu.PC = s.PC
	cpu.SP = s.SP
	cpu.A = s.A
	cpu.X = s.X
	cpu.Y = s.Y
	cpu.SetFlags(s.Flags)
	cpu.pendingNMI = s.PendingNMI != 0
	cpu.skip = int(s.Skip)
	cpu.stall = int(s.Stall)
	cpu.irqFlag = s.IRQFlag
}

func (ppu *PPU) captureState() ppuState {
	return ppuState{
		Cycle:                int32(ppu.Cycle),
		ScanLine:             int32(ppu.ScanLine),
		Frame:                ppu.Frame,
		FrameComplete:        boolByte(ppu.frameComplete),
		Ctrl:                 ppu.ctrl,
		Mask:                 ppu.mask,
		OAMAddr:              ppu.oamAddr,
		SpriteOverflow:       boolByte(ppu.spriteOverflow),
		SpriteZeroHit:        boolByte(ppu.spriteZeroHit),
		VblankFlag:           boolByte(ppu.vblankFlag),
		V:                    uint16(ppu.v),
		T:                    uint16(ppu.t),
		X:                    ppu.x,
		W:                    boolByte(ppu.w),
		ReadBuffer:           ppu.readBuffer,
		GenLatch:             ppu.genLatch,
		PaletteRAM:           ppu.paletteRAM,
		OAM:                  ppu.oam,
		SecondaryOAM:         ppu.secondaryOAM,
		NTByte:               ppu.ntByte,
		ATByte:               ppu.atByte,
		TileLo:               ppu.tileLo,
		TileHi:               ppu.tileHi,
		BGPatternLo:          ppu.bgPatternLo,
		BGPatternHi:          ppu.bgPatternHi,
		BGAttribLo:           ppu.bgAttribLo,
		BGAttribHi:           ppu.bgAttribHi,
		SpriteCount:          int32(ppu.spriteCount),
		SpritePatternLo:      ppu.spritePatternLo,
		SpritePatternHi:      ppu.spritePatternHi,
		SpriteX:              ppu.spriteX,
		SpriteAttr:           ppu.spriteAttr,
		SpriteZeroOnLine:     boolByte(ppu.spriteZeroOnLine),
		SpriteZeroOnNextLine: boolByte(ppu.spriteZeroOnNextLine),
	}
}

func (ppu *PPU) restoreState(s ppuState) {
	ppu.Cycle = int(s.Cycle)
	ppu.ScanLine = int(s.ScanLine)
	ppu.Frame = s.Frame
	ppu.frameComplete = s.FrameComplete != 0
	ppu.ctrl = s.Ctrl
	ppu.mask = s.Mask
	ppu.oamAddr = s.OAMAddr
	ppu.spriteOverflow = s.SpriteOverflow != 0
	ppu.spriteZeroHit = s.SpriteZeroHit != 0
	ppu.vblankFlag = s.VblankFlag != 0
	ppu.v = loopyReg(s.V)
	ppu.t = loopyReg(s.T)
	ppu.x = s.X
	ppu.w = s.W != 0
	ppu.readBuffer = s.ReadBuffer
	ppu.genLatch = s.GenLatch
	ppu.paletteRAM = s.PaletteRAM
	ppu.oam = s.OAM
	ppu.secondaryOAM = s.SecondaryOAM
	ppu.ntByte = s.NTByte
	ppu.atByte = s.ATByte
	ppu.tileLo = s.TileLo
	ppu.tileHi = s.TileHi
	ppu.bgPatternLo = s.BGPatternLo
	ppu.bgPatternHi = s.BGPatternHi
	ppu.bgAttribLo = s.BGAttribLo
	ppu.bgAttribHi = s.BGAttribHi
	ppu.spriteCount = int(s.SpriteCount)
	ppu.spritePatternLo = s.SpritePatternLo
	ppu.spritePatternHi = s.SpritePatternHi
	ppu.spriteX = s.SpriteX
	ppu.spriteAttr = s.SpriteAttr
	ppu.spriteZeroOnLine = s.SpriteZeroOnLine != 0
	ppu.spriteZeroOnNextLine = s.SpriteZeroOnNextLine != 0
}

func (p *PulseChannel) captureState() pulseState {
	return pulseState{
		Enabled:        boolByte(p.enabled),
		Duty:           p.duty,
		DutyPos:        p.dutyPos,
		Period:         p.period,
		Timer:          p.timer,
		Length:         p.length,
		LengthHalt:     boolByte(p.lengthHalt),
		ConstantVolume: boolByte(p.constantVolume),
		Volume:         p.volume,
		EnvStart:       boolByte(p.envStart),
		EnvDivider:     p.envDivider,
		EnvDecay:       p.envDecay,
		SweepEnabled:   boolByte(p.sweepEnabled),
		SweepPeriod:    p.sweepPeriod,
		SweepNegate:    boolByte(p.sweepNegate),
		SweepShift:     p.sweepShift,
		SweepReload:    boolByte(p.sweepReload),
		SweepDivider:   p.sweepDivider,
	}
}

func (p *PulseChannel) restoreState(s pulseState) {
	p.enabled = s.Enabled != 0
	p.duty = s.Duty
	p.dutyPos = s.DutyPos
	p.period = s.Period
	p.timer = s.Timer
	p.length = s.Length
	p.lengthHalt = s.LengthHalt != 0
	p.constantVolume = s.ConstantVolume != 0
	p.volume = s.Volume
	p.envStart = s.EnvStart != 0
	p.envDivider = s.EnvDivider
	p.envDecay = s.EnvDecay
	p.sweepEnabled = s.SweepEnabled != 0
	p.sweepPeriod = s.SweepPeriod
	p.sweepNegate = s.SweepNegate != 0
	p.sweepShift = s.SweepShift
	p.sweepReload = s.SweepReload != 0
	p.sweepDivider = s.SweepDivider
}

func (apu *APU) captureState() apuState {
	t := &apu.triangle
	n := &apu.noise
	d := &apu.dmc
	fc := &apu.frameCounter
	return apuState{
		Cycle:  apu.cycle,
		Pulse1: apu.pulse1.captureState(),
		Pulse2: apu.pulse2.captureState(),
		Triangle: triangleState{
			Enabled:       boolByte(t.enabled),
			Period:        t.period,
			Timer:         t.timer,
			Length:        t.length,
			LengthHalt:    boolByte(t.lengthHalt),
			LinearCounter: t.linearCounter,
			LinearReload:  t.linearReload,
			LinearFlag:    boolByte(t.linearFlag),
			SeqPos:        t.seqPos,
		},
		Noise: noiseState{
			Enabled:        boolByte(n.enabled),
			Mode:           boolByte(n.mode),
			ShiftRegister:  n.shiftRegister,
			Period:         n.period,
			Timer:          n.timer,
			Length:         n.length,
			LengthHalt:     boolByte(n.lengthHalt),
			ConstantVolume: boolByte(n.constantVolume),
			Volume:         n.volume,
			EnvStart:       boolByte(n.envStart),
			EnvDivider:     n.envDivider,
			EnvDecay:       n.envDecay,
		},
		DMC: dmcState{
			IRQEnabled:     boolByte(d.irqEnabled),
			Loop:           boolByte(d.loop),
			RatePeriod:     d.ratePeriod,
			Timer:          d.timer,
			Level:          d.level,
			SampleAddr:     d.sampleAddr,
			SampleLength:   d.sampleLength,
			CurrentAddr:    d.currentAddr,
			BytesRemaining: d.bytesRemaining,
			SampleBuffer:   d.sampleBuffer,
			BufferEmpty:    boolByte(d.bufferEmpty),
			ShiftRegister:  d.shiftRegister,
			BitsRemaining:  d.bitsRemaining,
			Silence:        boolByte(d.silence),
		},
		FCMode:       fc.mode,
		FCInhibitIRQ: boolByte(fc.inhibitIRQ),
		FCCycle:      fc.cycle,
		FCPending:    fc.pending,
		FCWriteDelay: fc.writeDelay,
	}
}

func (apu *APU) restoreState(s apuState) {
	apu.cycle = s.Cycle
	apu.pulse1.restoreState(s.Pulse1)
	apu.pulse2.restoreState(s.Pulse2)

	t := &apu.triangle
	t.enabled = s.Triangle.Enabled != 0
	t.period = s.Triangle.Period
	t.timer = s.Triangle.Timer
	t.length = s.Triangle.Length
	t.lengthHalt = s.Triangle.LengthHalt != 0
	t.linearCounter = s.Triangle.LinearCounter
	t.linearReload = s.Triangle.LinearReload
	t.linearFlag = s.Triangle.LinearFlag != 0
	t.seqPos = s.Triangle.SeqPos

	n := &apu.noise
	n.enabled = s.Noise.Enabled != 0
	n.mode = s.Noise.Mode != 0
	n.shiftRegister = s.Noise.ShiftRegister
	n.period = s.Noise.Period
	n.timer = s.Noise.Timer
	n.length = s.Noise.Length
	n.lengthHalt = s.Noise.LengthHalt != 0
	n.constantVolume = s.Noise.ConstantVolume != 0
	n.volume = s.Noise.Volume
	n.envStart = s.Noise.EnvStart != 0
	n.envDivider = s.Noise.EnvDivider
	n.envDecay = s.Noise.EnvDecay

	d := &apu.dmc
	d.irqEnabled = s.DMC.IRQEnabled != 0
	d.loop = s.DMC.Loop != 0
	d.ratePeriod = s.DMC.RatePeriod
	d.timer = s.DMC.Timer
	d.level = s.DMC.Level
	d.sampleAddr = s.DMC.SampleAddr
	d.sampleLength = s.DMC.SampleLength
	d.currentAddr = s.DMC.CurrentAddr
	d.bytesRemaining = s.DMC.BytesRemaining
	d.sampleBuffer = s.DMC.SampleBuffer
	d.bufferEmpty = s.DMC.BufferEmpty != 0
	d.shiftRegister = s.DMC.ShiftRegister
	d.bitsRemaining = s.DMC.BitsRemaining
	d.silence = s.DMC.Silence != 0

	fc := &apu.frameCounter
	fc.mode = s.FCMode
	fc.inhibitIRQ = s.FCInhibitIRQ != 0
	fc.cycle = s.FCCycle
	fc.pending = s.FCPending
	fc.writeDelay = s.FCWriteDelay
}

func (console *Console) captureBusState() busState {
	b := console.Bus
	return busState{
		RAM:          b.RAM,
		OpenBus:      b.openBus,
		DMAActive:    boolByte(b.dma.active),
		DMAPage:      b.dma.page,
		DMAOffset:    b.dma.offset,
		DMAValue:     b.dma.value,
		DMADummy:     boolByte(b.dma.dummy),
		DMAAlign:     boolByte(b.dma.align),
		DMAReadPhase: boolByte(b.dma.readPhase),
		Pad1Buttons:  packButtons(b.Controller1.buttons),
		Pad1Index:    b.Controller1.index,
		Pad1Strobe:   b.Controller1.strobe,
		Pad2Buttons:  packButtons(b.Controller2.buttons),
		Pad2Index:    b.Controller2.index,
		Pad2Strobe:   b.Controller2.strobe,
		MasterTicks:  console.masterTicks,
		PrevNMILine:  boolByte(console.prevNMILine),
	}
}

func (console *Console) restoreBusState(s busState) {
	b := console.Bus
	b.RAM = s.RAM
	b.openBus = s.OpenBus
	b.dma.active = s.DMAActive != 0
	b.dma.page = s.DMAPage
	b.dma.offset = s.DMAOffset
	b.dma.value = s.DMAValue
	b.dma.dummy = s.DMADummy != 0
	b.dma.align = s.DMAAlign != 0
	b.dma.readPhase = s.DMAReadPhase != 0
	b.Controller1.buttons = unpackButtons(s.Pad1Buttons)
	b.Controller1.index = s.Pad1Index
	b.Controller1.strobe = s.Pad1Strobe
	b.Controller2.buttons = unpackButtons(s.Pad2Buttons)
	b.Controller2.index = s.Pad2Index
	b.Controller2.strobe = s.Pad2Strobe
	console.masterTicks = s.MasterTicks
	console.prevNMILine = s.PrevNMILine != 0
}

func packButtons(buttons [8]bool) [8]byte {
	var out [8]byte
	for i, b := range buttons {
		out[i] = boolByte(b)
	}
	return out
}

func unpackButtons(packed [8]byte) [8]bool {
	var out [8]bool
	for i, b := range packed {
		out[i] = b != 0
	}
	return out
}

// SaveState writes the full mutable state of the console.
func (console *Console) SaveState(w io.Writer) error {
	header := saveStateHeader{
		Magic:    saveStateMagic,
		Version:  saveStateVersion,
		MapperID: console.Cartridge.MapperID,
	}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, console.CPU.captureState()); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, console.PPU.captureState()); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, console.APU.captureState()); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, console.captureBusState()); err != nil {
		return err
	}
	return console.Cartridge.Mapper.SaveState(w)
}

// LoadState restores a blob written by SaveState. A bad magic, version
// or mapper mismatch fails before any state is modified.
func (console *Console) LoadState(r io.Reader) error {
	var header saveStateHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return err
	}
	if header.Magic != saveStateMagic {
		return fmt.Errorf("not a save state")
	}
	if header.Version != saveStateVersion {
		return fmt.Errorf("save state version mismatch: got %d, want %d", header.Version, saveStateVersion)
	}
	if header.MapperID != console.Cartridge.MapperID {
		return fmt.Errorf("save state is for mapper %d, cartridge uses %d", header.MapperID, console.Cartridge.MapperID)
	}

	var cpu cpuState
	var ppu ppuState
	var apu apuState
	var bus busState
	if err := binary.Read(r, binary.LittleEndian, &cpu); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &ppu); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &apu); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &bus); err != nil {
		return err
	}

	console.CPU.restoreState(cpu)
	console.PPU.restoreState(ppu)
	console.APU.restoreState(apu)
	console.restoreBusState(bus)
	return console.Cartridge.Mapper.LoadState(r)
}
