// refs: github.com/libretro/Mesen
package famines

import "io"

// Mapper000 (NROM): 16 or 32 KiB of fixed PRG, fixed CHR, no banking.
type Mapper000 struct {
	*MapperBase
}

func NewMapper000(cartridge *Cartridge) Mapper {
	mapperBase := NewMapperBase(cartridge)
	mapperBase.prgPageSize = 0x4000
	mapperBase.chrPageSize = 0x2000

	m := &Mapper000{MapperBase: mapperBase}
	m.Reset()
	return m
}

func (m *Mapper000) Reset() {
	m.SelectPRGPage(0, 0)
	m.SelectPRGPage(1, 1)
	m.SelectCHRPage(0, 0)
	m.mapWRAM(MEMORY_ACCESS_READ_WRITE)
	m.SetMirroringType(m.cartridge.Mirror)
}

func (m *Mapper000) SaveState(w io.Writer) error {
	return m.saveBase(w)
}

func (m *Mapper000) LoadState(r io.Reader) error {
	return m.loadBase(r)
}
