package famines

// Bus decodes the CPU address space and owns the parts of the system
// shared between the processors: internal RAM, the controllers and the
// sprite DMA unit. The CPU and APU receive it as an argument on every
// access instead of keeping a stored reference; the PPU receives the
// cartridge the same way.
type Bus struct {
	CPU         *CPU
	PPU         *PPU
	APU         *APU
	Controller1 *Controller
	Controller2 *Controller
	Cartridge   *Cartridge
	RAM         [2048]byte // 2 KiB, mirrored across $0000-$1FFF
	openBus     byte

	dma dmaState
}

// dmaState tracks the sprite OAM DMA transfer triggered by a $4014
// write: one dummy cycle, one alignment cycle when started on an odd
// CPU cycle, then 256 read/write pairs.
type dmaState struct {
	active    bool
	page      byte
	offset    uint16
	value     byte
	dummy     bool
	align     bool
	readPhase bool
}

func NewBus(cpu *CPU, ppu *PPU, apu *APU, controller1, controller2 *Controller, cartridge *Cartridge) *Bus {
	return &Bus{
		CPU:         cpu,
		PPU:         ppu,
		APU:         apu,
		Controller1: controller1,
		Controller2: controller2,
		Cartridge:   cartridge,
	}
}

func (b *Bus) ReadMemory(address uint16) byte {
	var value byte

	switch {
	case address < 0x2000:
		// $0000-$1FFF
		value = b.RAM[address&0x07FF]
	case address < 0x4000:
		// $2000-$3FFF, mirrored every 8 bytes
		value = b.PPU.ReadRegister(b.Cartridge, 0x2000|(address&0x07))
	case address < 0x4015:
		// $4000-$4014: write-only channel registers and the DMA port
		value = b.openBus
	case address == 0x4015:
		value = b.APU.ReadStatus()
	case address == 0x4016:
		value = 0x40 | b.Controller1.Read()
	case address == 0x4017:
		value = 0x40 | b.Controller2.Read()
	case address < 0x4020:
		// $4018-$401F disabled
		value = b.openBus
	default:
		// $4020-$FFFF
		value = b.Cartridge.Mapper.ReadMemory(address)
	}

	b.openBus = value
	return value
}

func (b *Bus) WriteMemory(address uint16, value byte) {
	b.openBus = value

	switch {
	case address < 0x2000:
		b.RAM[address&0x07FF] = value
	case address < 0x4000:
		b.PPU.WriteRegister(b.Cartridge, 0x2000|(address&0x07), value)
	case address < 0x4014:
		b.APU.WriteRegister(address, value)
	case address == 0x4014:
		b.triggerDMA(value)
	case address == 0x4015:
		b.APU.WriteRegister(address, value)
	case address == 0x4016:
		b.Controller1.Write(value)
		b.Controller2.Write(value)
	case address == 0x4017:
		b.APU.WriteFrameCounter(value, b.CPU.Cycles)
	case address < 0x4020:
		// $4018-$401F disabled
	default:
		b.Cartridge.Mapper.WriteMemory(address, value)
	}
}

func (b *Bus) ReadMemory16(address uint16) uint16 {
	lo := uint16(b.ReadMemory(address))
	hi := uint16(b.ReadMemory(address + 1))
	return hi<<8 | lo
}

func (b *Bus) triggerDMA(page byte) {
	b.dma = dmaState{
		active:    true,
		page:      page,
		dummy:     true,
		align:     b.CPU.Cycles&1 == 1,
		readPhase: true,
	}
}

// DMAActive reports whether a sprite DMA transfer is suspending the CPU.
func (b *Bus) DMAActive() bool {
	return b.dma.active
}

// StepDMA runs one sprite DMA sub-step in place of a CPU cycle. The
// stolen cycles are charged to the CPU so its cycle counter stays the
// authoritative clock.
func (b *Bus) StepDMA() {
	b.CPU.Cycles++
	d := &b.dma
	switch {
	case d.dummy:
		d.dummy = false
	case d.align:
		d.align = false
	case d.readPhase:
		d.value = b.ReadMemory(uint16(d.page)<<8 | d.offset)
		d.readPhase = false
	default:
		b.PPU.WriteRegister(b.Cartridge, 0x2004, d.value)
		d.readPhase = true
		d.offset++
		if d.offset == 256 {
			d.active = false
		}
	}
}
