// refs: github.com/libretro/Mesen
package famines

import (
	"encoding/binary"
	"io"
)

type MemoryAccessType byte

const (
	MEMORY_ACCESS_NO_ACCESS  MemoryAccessType = 0x00
	MEMORY_ACCESS_READ       MemoryAccessType = 0x01
	MEMORY_ACCESS_WRITE      MemoryAccessType = 0x02
	MEMORY_ACCESS_READ_WRITE MemoryAccessType = 0x03
)

type MirroringType byte

const (
	MIRROR_HORIZONTAL MirroringType = iota
	MIRROR_VERTICAL
	MIRROR_SINGLE_SCREEN_A
	MIRROR_SINGLE_SCREEN_B
	MIRROR_FOUR_SCREEN
)

type prgBank struct {
	ptr        []byte
	accessType MemoryAccessType
}

type chrBank struct {
	ptr        []byte
	accessType MemoryAccessType
}

// MapperBase implements bank translation over tables of 256-byte
// slots: one per CPU page for PRG/WRAM, one per PPU page for
// CHR and nametable memory. Concrete mappers select pages into the
// slots and MapperBase resolves every access.
type MapperBase struct {
	cartridge *Cartridge

	prgBanks [0x100]prgBank // CPU $0000-$FFFF in 256-byte slots
	chrBanks [0x40]chrBank  // PPU $0000-$3FFF in 256-byte slots

	nameTables [4 * 0x400]byte
	chrRAM     [0x2000]byte
	workRAM    []byte

	hasCHRRAM     bool
	mirroringType MirroringType

	prgPageSize uint32
	chrPageSize uint32
}

func NewMapperBase(cartridge *Cartridge) *MapperBase {
	m := &MapperBase{
		cartridge: cartridge,
		hasCHRRAM: !cartridge.HasChrRom(),
	}

	if cartridge.battery != nil {
		m.workRAM = cartridge.battery.Data()
	} else {
		m.workRAM = make([]byte, 0x2000)
	}

	return m
}

// mapPRG points the CPU slots covering [startAddr, endAddr] at source.
func (m *MapperBase) mapPRG(startAddr, endAddr uint16, source []byte, accessType MemoryAccessType) {
	first := int(startAddr >> 8)
	count := int(endAddr-startAddr+1) >> 8
	for i := 0; i < count; i++ {
		m.prgBanks[first+i].ptr = source[i*0x100 : (i+1)*0x100]
		m.prgBanks[first+i].accessType = accessType
	}
}

// mapCHR points the PPU slots covering [startAddr, endAddr] at source.
func (m *MapperBase) mapCHR(startAddr, endAddr uint16, source []byte, accessType MemoryAccessType) {
	first := int(startAddr >> 8)
	count := int(endAddr-startAddr+1) >> 8
	for i := 0; i < count; i++ {
		m.chrBanks[first+i].ptr = source[i*0x100 : (i+1)*0x100]
		m.chrBanks[first+i].accessType = accessType
	}
}

// SelectPRGPage maps one PRG-ROM page into slot (counting from $8000).
// Negative pages count back from the end of the ROM.
func (m *MapperBase) SelectPRGPage(slot, page int) {
	pageCount := len(m.cartridge.PRG) / int(m.prgPageSize)
	if pageCount == 0 {
		return
	}
	page = ((page % pageCount) + pageCount) % pageCount

	if len(m.cartridge.PRG) < 0x8000 && m.prgPageSize > uint32(len(m.cartridge.PRG)) {
		return
	}

	startAddr := 0x8000 + slot*int(m.prgPageSize)
	if len(m.cartridge.PRG) < 0x8000 {
		// 16 KiB ROMs mirror into both halves
		startAddr = 0x8000 + slot*len(m.cartridge.PRG)
	}
	endAddr := startAddr + int(m.prgPageSize) - 1
	if endAddr > 0xFFFF {
		return
	}
	offset := page * int(m.prgPageSize)
	m.mapPRG(uint16(startAddr), uint16(endAddr), m.cartridge.PRG[offset:], MEMORY_ACCESS_READ)
}

func (m *MapperBase) SelectPRGPage2x(slot, page int) {
	m.SelectPRGPage(slot*2, page)
	m.SelectPRGPage(slot*2+1, page+1)
}

// SelectCHRPage maps one CHR page into slot, backed by CHR-ROM or
// CHR-RAM as the cartridge dictates.
func (m *MapperBase) SelectCHRPage(slot, page int) {
	var source []byte
	var accessType MemoryAccessType
	if m.hasCHRRAM {
		source = m.chrRAM[:]
		accessType = MEMORY_ACCESS_READ_WRITE
	} else {
		source = m.cartridge.CHR
		accessType = MEMORY_ACCESS_READ
	}

	pageCount := len(source) / int(m.chrPageSize)
	if pageCount == 0 {
		return
	}
	page = ((page % pageCount) + pageCount) % pageCount

	startAddr := slot * int(m.chrPageSize)
	endAddr := startAddr + int(m.chrPageSize) - 1
	offset := page * int(m.chrPageSize)
	m.mapCHR(uint16(startAddr), uint16(endAddr), source[offset:], accessType)
}

// mapWRAM places the 8 KiB work/save RAM at $6000-$7FFF.
func (m *MapperBase) mapWRAM(accessType MemoryAccessType) {
	m.mapPRG(0x6000, 0x7FFF, m.workRAM, accessType)
}

// SetNameTable maps the 1 KiB nametable ntIndex into quadrant index of
// $2000-$2FFF (and its $3000-$3EFF mirror).
func (m *MapperBase) SetNameTable(index, ntIndex byte) {
	source := m.nameTables[int(ntIndex)*0x400:]
	start := 0x2000 + uint16(index)*0x400
	m.mapCHR(start, start+0x3FF, source, MEMORY_ACCESS_READ_WRITE)
	if index < 3 {
		// $3000-$3EFF mirrors the nametables underneath the palette
		start = 0x3000 + uint16(index)*0x400
		m.mapCHR(start, start+0x3FF, source, MEMORY_ACCESS_READ_WRITE)
	} else {
		m.mapCHR(0x3C00, 0x3EFF, source, MEMORY_ACCESS_READ_WRITE)
	}
}

func (m *MapperBase) SetNameTables(a, b, c, d byte) {
	m.SetNameTable(0, a)
	m.SetNameTable(1, b)
	m.SetNameTable(2, c)
	m.SetNameTable(3, d)
}

func (m *MapperBase) MirroringType() MirroringType {
	return m.mirroringType
}

func (m *MapperBase) SetMirroringType(mirrorType MirroringType) {
	m.mirroringType = mirrorType
	switch mirrorType {
	case MIRROR_VERTICAL:
		m.SetNameTables(0, 1, 0, 1)
	case MIRROR_HORIZONTAL:
		m.SetNameTables(0, 0, 1, 1)
	case MIRROR_FOUR_SCREEN:
		m.SetNameTables(0, 1, 2, 3)
	case MIRROR_SINGLE_SCREEN_A:
		m.SetNameTables(0, 0, 0, 0)
	case MIRROR_SINGLE_SCREEN_B:
		m.SetNameTables(1, 1, 1, 1)
	}
}

func (m *MapperBase) ReadMemory(address uint16) byte {
	bank := &m.prgBanks[address>>8]
	if bank.ptr != nil && bank.accessType&MEMORY_ACCESS_READ != 0 {
		return bank.ptr[byte(address)]
	}
	// simulate open bus
	return byte(address >> 8)
}

func (m *MapperBase) WriteMemory(address uint16, value byte) {
	bank := &m.prgBanks[address>>8]
	if bank.ptr != nil && bank.accessType&MEMORY_ACCESS_WRITE != 0 {
		bank.ptr[byte(address)] = value
	}
}

func (m *MapperBase) ReadVRAM(address uint16) byte {
	bank := &m.chrBanks[(address>>8)&0x3F]
	if bank.ptr != nil && bank.accessType&MEMORY_ACCESS_READ != 0 {
		return bank.ptr[byte(address)]
	}
	return byte(address >> 8)
}

func (m *MapperBase) WriteVRAM(address uint16, value byte) {
	bank := &m.chrBanks[(address>>8)&0x3F]
	if bank.ptr != nil && bank.accessType&MEMORY_ACCESS_WRITE != 0 {
		bank.ptr[byte(address)] = value
	}
}

func (m *MapperBase) Step() {
}

// saveBase serializes the mutable memories shared by every mapper.
func (m *MapperBase) saveBase(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, m.nameTables); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, m.chrRAM); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, m.workRAM)
}

func (m *MapperBase) loadBase(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &m.nameTables); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &m.chrRAM); err != nil {
		return err
	}
	return binary.Read(r, binary.LittleEndian, m.workRAM)
}
