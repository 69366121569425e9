// refs: github.com/libretro/Mesen
package famines

import (
	"encoding/binary"
	"io"
)

// Mapper002 (UxROM): writes anywhere in $8000-$FFFF select the 16 KiB
// bank at $8000-$BFFF; $C000-$FFFF is fixed to the last bank. CHR is
// 8 KiB RAM.
type Mapper002 struct {
	*MapperBase

	prgReg byte
}

func NewMapper002(cartridge *Cartridge) Mapper {
	mapperBase := NewMapperBase(cartridge)
	mapperBase.prgPageSize = 0x4000
	mapperBase.chrPageSize = 0x2000

	m := &Mapper002{MapperBase: mapperBase}
	m.Reset()
	return m
}

func (m *Mapper002) Reset() {
	m.prgReg = 0
	m.updateState()
	m.SelectCHRPage(0, 0)
	m.mapWRAM(MEMORY_ACCESS_READ_WRITE)
	m.SetMirroringType(m.cartridge.Mirror)
}

func (m *Mapper002) updateState() {
	m.SelectPRGPage(0, int(m.prgReg))
	m.SelectPRGPage(1, -1)
}

func (m *Mapper002) WriteMemory(address uint16, value byte) {
	if address >= 0x8000 {
		m.prgReg = value
		m.updateState()
		return
	}
	m.MapperBase.WriteMemory(address, value)
}

func (m *Mapper002) SaveState(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, m.prgReg); err != nil {
		return err
	}
	return m.saveBase(w)
}

func (m *Mapper002) LoadState(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &m.prgReg); err != nil {
		return err
	}
	if err := m.loadBase(r); err != nil {
		return err
	}
	m.updateState()
	return nil
}
