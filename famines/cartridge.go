// refs: github.com/fogleman/nes
package famines

import "log"

// Cartridge owns the ROM images and the mapper instance translating
// CPU and PPU addresses into them.
type Cartridge struct {
	PRG      []byte // PRG-ROM, 16 KiB units
	CHR      []byte // CHR-ROM, 8 KiB units; empty means 8 KiB CHR-RAM
	MapperID byte
	Mapper   Mapper
	Mirror   MirroringType
	Battery  bool

	ROMFilePath string
	NumPRG      byte
	NumCHR      byte

	battery *BatteryRAM
}

func NewCartridge(prg, chr []byte, mapperID byte, mirror MirroringType, battery bool, romFilePath string, numPRG, numCHR byte) *Cartridge {
	log.Printf("PRG banks: %d", numPRG)
	log.Printf("CHR banks: %d", numCHR)
	log.Printf("Mapper ID: %d", mapperID)
	log.Printf("Mirroring: %d", mirror)
	log.Printf("Has battery: %v", battery)

	return &Cartridge{
		PRG:         prg,
		CHR:         chr,
		MapperID:    mapperID,
		Mirror:      mirror,
		Battery:     battery,
		ROMFilePath: romFilePath,
		NumPRG:      numPRG,
		NumCHR:      numCHR,
	}
}

func (c *Cartridge) HasChrRom() bool {
	return c.NumCHR > 0
}

// Close flushes battery-backed WRAM back to its .sav file.
func (c *Cartridge) Close() {
	if c.battery != nil {
		c.battery.Close()
		c.battery = nil
	}
}
