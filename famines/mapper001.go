// refs: github.com/libretro/Mesen
package famines

import (
	"encoding/binary"
	"io"
)

// Mapper001 (MMC1): a five-bit serial shift register commits to one of
// four internal registers selected by bits 13-14 of the written
// address. Control selects PRG mode (32K, fix-first, fix-last), CHR
// mode (8K or 4K+4K) and mirroring; $6000-$7FFF holds 8 KiB of
// (optionally battery-backed) WRAM.
type Mapper001 struct {
	*MapperBase

	writeBuffer byte
	shiftCount  byte

	reg8000 byte
	regA000 byte
	regC000 byte
	regE000 byte

	// MMC1 ignores writes on consecutive CPU cycles
	cycleCount     uint64
	lastWriteCycle uint64
}

func NewMapper001(cartridge *Cartridge) Mapper {
	mapperBase := NewMapperBase(cartridge)
	mapperBase.prgPageSize = 0x4000
	mapperBase.chrPageSize = 0x1000

	m := &Mapper001{MapperBase: mapperBase}
	m.Reset()
	return m
}

func (m *Mapper001) Reset() {
	m.writeBuffer = 0
	m.shiftCount = 0
	m.reg8000 = 0x0C // fix-last PRG mode at powerup
	m.regA000 = 0
	m.regC000 = 0
	m.regE000 = 0
	m.updateState()
}

func (m *Mapper001) Step() {
	m.cycleCount++
}

func (m *Mapper001) updateState() {
	switch m.reg8000 & 0x03 {
	case 0:
		m.SetMirroringType(MIRROR_SINGLE_SCREEN_A)
	case 1:
		m.SetMirroringType(MIRROR_SINGLE_SCREEN_B)
	case 2:
		m.SetMirroringType(MIRROR_VERTICAL)
	case 3:
		m.SetMirroringType(MIRROR_HORIZONTAL)
	}

	wramDisable := m.regE000&0x10 != 0
	if wramDisable {
		m.mapWRAM(MEMORY_ACCESS_NO_ACCESS)
	} else {
		m.mapWRAM(MEMORY_ACCESS_READ_WRITE)
	}

	prgReg := int(m.regE000 & 0x0F)
	switch {
	case m.reg8000&0x08 == 0:
		// 32 KiB mode
		m.SelectPRGPage2x(0, prgReg&0xFE)
	case m.reg8000&0x04 != 0:
		// fix-last: switchable bank at $8000
		m.SelectPRGPage(0, prgReg)
		m.SelectPRGPage(1, -1)
	default:
		// fix-first: switchable bank at $C000
		m.SelectPRGPage(0, 0)
		m.SelectPRGPage(1, prgReg)
	}

	if m.reg8000&0x10 != 0 {
		// 4K + 4K CHR
		m.SelectCHRPage(0, int(m.regA000&0x1F))
		m.SelectCHRPage(1, int(m.regC000&0x1F))
	} else {
		// 8K CHR
		m.SelectCHRPage(0, int(m.regA000&0x1E))
		m.SelectCHRPage(1, int(m.regA000&0x1E)+1)
	}
}

func (m *Mapper001) WriteMemory(address uint16, value byte) {
	if address < 0x8000 {
		m.MapperBase.WriteMemory(address, value)
		return
	}
	if m.cycleCount-m.lastWriteCycle < 2 {
		m.lastWriteCycle = m.cycleCount
		return
	}
	m.lastWriteCycle = m.cycleCount
	m.writeRegister(address, value)
}

func (m *Mapper001) writeRegister(address uint16, value byte) {
	if value&0x80 != 0 {
		// reset strobe: clear the shift register and force fix-last
		m.writeBuffer = 0
		m.shiftCount = 0
		m.reg8000 |= 0x0C
		m.updateState()
		return
	}

	m.writeBuffer >>= 1
	m.writeBuffer |= (value << 4) & 0x10
	m.shiftCount++
	if m.shiftCount < 5 {
		return
	}

	switch (address >> 13) & 0x03 {
	case 0:
		m.reg8000 = m.writeBuffer
	case 1:
		m.regA000 = m.writeBuffer
	case 2:
		m.regC000 = m.writeBuffer
	case 3:
		m.regE000 = m.writeBuffer
	}
	m.updateState()

	m.writeBuffer = 0
	m.shiftCount = 0
}

type mapper001State struct {
	WriteBuffer byte
	ShiftCount  byte
	Reg8000     byte
	RegA000     byte
	RegC000     byte
	RegE000     byte
}

func (m *Mapper001) SaveState(w io.Writer) error {
	state := mapper001State{
		WriteBuffer: m.writeBuffer,
		ShiftCount:  m.shiftCount,
		Reg8000:     m.reg8000,
		RegA000:     m.regA000,
		RegC000:     m.regC000,
		RegE000:     m.regE000,
	}
	if err := binary.Write(w, binary.LittleEndian, state); err != nil {
		return err
	}
	return m.saveBase(w)
}

func (m *Mapper001) LoadState(r io.Reader) error {
	var state mapper001State
	if err := binary.Read(r, binary.LittleEndian, &state); err != nil {
		return err
	}
	m.writeBuffer = state.WriteBuffer
	m.shiftCount = state.ShiftCount
	m.reg8000 = state.Reg8000
	m.regA000 = state.RegA000
	m.regC000 = state.RegC000
	m.regE000 = state.RegE000
	if err := m.loadBase(r); err != nil {
		return err
	}
	m.updateState()
	return nil
}
