// refs: github.com/OneLoneCoder/olcNES, github.com/fogleman/nes
package famines

import (
	"image"
)

const (
	ScreenWidth  = 256
	ScreenHeight = 240
)

// PPU is a dot-accurate 2C02: one Clock call processes one dot of the
// 341x262 NTSC timing grid and emits one framebuffer pixel per visible
// dot. Scanline -1 is the pre-render line; 241..260 are vertical blank.
type PPU struct {
	Cycle    int    // dot position, 0..340
	ScanLine int    // -1..260
	Frame    uint64 // frame counter

	frameComplete bool

	// CPU-visible register shadows
	ctrl    byte
	mask    byte
	oamAddr byte

	spriteOverflow bool
	spriteZeroHit  bool
	vblankFlag     bool

	// loopy registers and data port state
	v          loopyReg
	t          loopyReg
	x          byte // fine X scroll
	w          bool // write latch
	readBuffer byte
	genLatch   byte // last value driven onto the register bus

	paletteRAM   [32]byte
	oam          [256]byte
	secondaryOAM [32]byte

	// background pipeline
	ntByte      byte
	atByte      byte
	tileLo      byte
	tileHi      byte
	bgPatternLo uint16
	bgPatternHi uint16
	bgAttribLo  uint16
	bgAttribHi  uint16

	// sprite pipeline for the scanline being drawn
	spriteCount          int
	spritePatternLo      [8]byte
	spritePatternHi      [8]byte
	spriteX              [8]byte
	spriteAttr           [8]byte
	spriteZeroOnLine     bool
	spriteZeroOnNextLine bool

	front *image.RGBA
	back  *image.RGBA
}

func NewPPU() *PPU {
	ppu := &PPU{}
	ppu.front = image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	ppu.back = image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	return ppu
}

func (ppu *PPU) Reset() {
	ppu.Cycle = 0
	ppu.ScanLine = -1
	ppu.Frame = 0
	ppu.frameComplete = false
	ppu.ctrl = 0
	ppu.mask = 0
	ppu.oamAddr = 0
	ppu.spriteOverflow = false
	ppu.spriteZeroHit = false
	ppu.vblankFlag = false
	ppu.v = 0
	ppu.t = 0
	ppu.x = 0
	ppu.w = false
	ppu.readBuffer = 0
	ppu.bgPatternLo = 0
	ppu.bgPatternHi = 0
	ppu.bgAttribLo = 0
	ppu.bgAttribHi = 0
	ppu.spriteCount = 0
}

// Buffer returns the last completed frame.
func (ppu *PPU) Buffer() *image.RGBA {
	return ppu.front
}

// FrameComplete reports whether a frame finished since the last Ack.
func (ppu *PPU) FrameComplete() bool {
	return ppu.frameComplete
}

// AckFrame clears the frame-complete flag; called by the host once it
// has consumed the framebuffer.
func (ppu *PPU) AckFrame() {
	ppu.frameComplete = false
}

// NMILine is high while vblank is set and NMI output is enabled. The
// console watches this for the false-to-true edge.
func (ppu *PPU) NMILine() bool {
	return ppu.ctrlNMIEnabled() && ppu.vblankFlag
}

// ReadRegister handles CPU reads of $2000-$2007.
func (ppu *PPU) ReadRegister(cart *Cartridge, address uint16) byte {
	switch address & 0x2007 {
	case 0x2002:
		// low 5 bits are the stale register bus
		value := ppu.Status() | (ppu.genLatch & 0x1F)
		ppu.vblankFlag = false
		ppu.w = false
		return value
	case 0x2004:
		return ppu.oam[ppu.oamAddr]
	case 0x2007:
		addr := uint16(ppu.v) & 0x3FFF
		var value byte
		if addr >= 0x3F00 {
			// palette reads bypass the buffer; the buffer still picks up
			// the nametable byte underneath
			value = ppu.readPalette(addr)
			ppu.readBuffer = cart.Mapper.ReadVRAM(addr - 0x1000)
		} else {
			value = ppu.readBuffer
			ppu.readBuffer = cart.Mapper.ReadVRAM(addr)
		}
		ppu.v = (ppu.v + loopyReg(ppu.ctrlVRAMIncrement())) & 0x7FFF
		return value
	}
	return ppu.genLatch
}

// WriteRegister handles CPU writes of $2000-$2007.
func (ppu *PPU) WriteRegister(cart *Cartridge, address uint16, value byte) {
	ppu.genLatch = value
	switch address & 0x2007 {
	case 0x2000:
		ppu.ctrl = value
		ppu.t.setNametable(value & 0x03)
	case 0x2001:
		ppu.mask = value
	case 0x2003:
		ppu.oamAddr = value
	case 0x2004:
		ppu.oam[ppu.oamAddr] = value
		ppu.oamAddr++
	case 0x2005:
		if !ppu.w {
			ppu.x = value & 0x07
			ppu.t.setCoarseX(value >> 3)
		} else {
			ppu.t.setFineY(value & 0x07)
			ppu.t.setCoarseY(value >> 3)
		}
		ppu.w = !ppu.w
	case 0x2006:
		if !ppu.w {
			ppu.t = (ppu.t &^ 0x7F00) | loopyReg(value&0x3F)<<8
		} else {
			ppu.t = (ppu.t &^ 0x00FF) | loopyReg(value)
			ppu.v = ppu.t
		}
		ppu.w = !ppu.w
	case 0x2007:
		addr := uint16(ppu.v) & 0x3FFF
		if addr >= 0x3F00 {
			ppu.writePalette(addr, value)
		} else {
			cart.Mapper.WriteVRAM(addr, value)
		}
		ppu.v = (ppu.v + loopyReg(ppu.ctrlVRAMIncrement())) & 0x7FFF
	}
}

// readPalette resolves the $3F00-$3FFF mirrors; $3F10/$3F14/$3F18/$3F1C
// mirror their background counterparts.
func (ppu *PPU) readPalette(address uint16) byte {
	addr := address & 0x1F
	if addr >= 0x10 && addr&0x03 == 0 {
		addr &= 0x0F
	}
	return ppu.paletteRAM[addr]
}

func (ppu *PPU) writePalette(address uint16, value byte) {
	addr := address & 0x1F
	if addr >= 0x10 && addr&0x03 == 0 {
		addr &= 0x0F
	}
	ppu.paletteRAM[addr] = value & 0x3F
}

// Taken from http://wiki.nesdev.com/w/index.php/The_skinny_on_NES_scrolling#Wrapping_around
func (ppu *PPU) incrementScrollX() {
	if ppu.v.coarseX() == 31 {
		// wrap into the adjacent nametable
		ppu.v.setCoarseX(0)
		ppu.v ^= 0x0400
	} else {
		ppu.v++
	}
}

// Taken from http://wiki.nesdev.com/w/index.php/The_skinny_on_NES_scrolling#Wrapping_around
func (ppu *PPU) incrementScrollY() {
	if ppu.v.fineY() < 7 {
		ppu.v += 0x1000
	} else {
		ppu.v.setFineY(0)
		y := ppu.v.coarseY()
		if y == 29 {
			// rows 30 and 31 hold attribute data, so 29 wraps and
			// flips the vertical nametable
			y = 0
			ppu.v ^= 0x0800
		} else if y == 31 {
			y = 0
		} else {
			y++
		}
		ppu.v.setCoarseY(byte(y))
	}
}

func (ppu *PPU) transferAddressX() {
	ppu.v = (ppu.v &^ 0x041F) | (ppu.t & 0x041F)
}

func (ppu *PPU) transferAddressY() {
	ppu.v = (ppu.v &^ 0x7BE0) | (ppu.t & 0x7BE0)
}

func (ppu *PPU) loadBackgroundShifters() {
	ppu.bgPatternLo = (ppu.bgPatternLo & 0xFF00) | uint16(ppu.tileLo)
	ppu.bgPatternHi = (ppu.bgPatternHi & 0xFF00) | uint16(ppu.tileHi)
	var loBits, hiBits uint16
	if ppu.atByte&0x01 != 0 {
		loBits = 0x00FF
	}
	if ppu.atByte&0x02 != 0 {
		hiBits = 0x00FF
	}
	ppu.bgAttribLo = (ppu.bgAttribLo & 0xFF00) | loBits
	ppu.bgAttribHi = (ppu.bgAttribHi & 0xFF00) | hiBits
}

func (ppu *PPU) updateShifters() {
	if ppu.maskShowBackground() {
		ppu.bgPatternLo <<= 1
		ppu.bgPatternHi <<= 1
		ppu.bgAttribLo <<= 1
		ppu.bgAttribHi <<= 1
	}
}

// fetchBackground runs one step of the eight-dot tile fetch schedule.
func (ppu *PPU) fetchBackground(cart *Cartridge) {
	switch (ppu.Cycle - 1) % 8 {
	case 0:
		ppu.loadBackgroundShifters()
		ppu.ntByte = cart.Mapper.ReadVRAM(0x2000 | (uint16(ppu.v) & 0x0FFF))
	case 2:
		attrAddr := 0x23C0 | (uint16(ppu.v) & 0x0C00) |
			((ppu.v.coarseY() >> 2) << 3) | (ppu.v.coarseX() >> 2)
		attr := cart.Mapper.ReadVRAM(attrAddr)
		// select the 2-bit palette for the current 2x2 tile quadrant
		if ppu.v.coarseY()&0x02 != 0 {
			attr >>= 4
		}
		if ppu.v.coarseX()&0x02 != 0 {
			attr >>= 2
		}
		ppu.atByte = attr & 0x03
	case 4:
		addr := ppu.ctrlBackgroundPatternAddr() | uint16(ppu.ntByte)<<4 | ppu.v.fineY()
		ppu.tileLo = cart.Mapper.ReadVRAM(addr)
	case 6:
		addr := ppu.ctrlBackgroundPatternAddr() | uint16(ppu.ntByte)<<4 | ppu.v.fineY()
		ppu.tileHi = cart.Mapper.ReadVRAM(addr + 8)
	case 7:
		ppu.incrementScrollX()
	}
}

// evaluateSprites scans the 64 OAM entries at dot 257 and fills
// secondary OAM with the (up to eight) sprites that land on the next
// scanline. The hardware's diagonal overflow search is approximated by
// a straight scan.
func (ppu *PPU) evaluateSprites() {
	for i := range ppu.secondaryOAM {
		ppu.secondaryOAM[i] = 0xFF
	}
	ppu.spriteZeroOnNextLine = false

	line := ppu.ScanLine + 1
	height := ppu.ctrlSpriteHeight()
	count := 0
	for i := 0; i < 64; i++ {
		y := int(ppu.oam[i*4])
		if line < y || line >= y+height {
			continue
		}
		if count == 8 {
			ppu.spriteOverflow = true
			break
		}
		copy(ppu.secondaryOAM[count*4:], ppu.oam[i*4:i*4+4])
		if i == 0 {
			ppu.spriteZeroOnNextLine = true
		}
		count++
	}
	ppu.spriteCount = count
}

func reverseByte(b byte) byte {
	b = (b&0xF0)>>4 | (b&0x0F)<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}

// fetchSprites fills the per-sprite pattern shifters at dot 340 for the
// sprites selected into secondary OAM.
func (ppu *PPU) fetchSprites(cart *Cartridge) {
	line := ppu.ScanLine + 1
	height := ppu.ctrlSpriteHeight()

	for i := 0; i < ppu.spriteCount; i++ {
		y := int(ppu.secondaryOAM[i*4+0])
		tile := ppu.secondaryOAM[i*4+1]
		attr := ppu.secondaryOAM[i*4+2]
		ppu.spriteAttr[i] = attr
		ppu.spriteX[i] = ppu.secondaryOAM[i*4+3]

		row := line - y
		if attr&0x80 != 0 {
			row = height - 1 - row
		}

		var addr uint16
		if height == 16 {
			// in 8x16 mode the tile LSB selects the pattern table and
			// bit 3 of the row selects the upper or lower half
			table := uint16(tile&0x01) << 12
			tileID := uint16(tile & 0xFE)
			if row >= 8 {
				tileID++
				row -= 8
			}
			addr = table | tileID<<4 | uint16(row)
		} else {
			addr = ppu.ctrlSpritePatternAddr() | uint16(tile)<<4 | uint16(row)
		}

		lo := cart.Mapper.ReadVRAM(addr)
		hi := cart.Mapper.ReadVRAM(addr + 8)
		if attr&0x40 != 0 {
			lo = reverseByte(lo)
			hi = reverseByte(hi)
		}
		ppu.spritePatternLo[i] = lo
		ppu.spritePatternHi[i] = hi
	}
	ppu.spriteZeroOnLine = ppu.spriteZeroOnNextLine
}

// backgroundPixel selects the 2-bit pattern and palette for the current
// dot out of the shifters, honoring the left-column mask.
func (ppu *PPU) backgroundPixel() (byte, byte) {
	if !ppu.maskShowBackground() {
		return 0, 0
	}
	x := ppu.Cycle - 1
	if x < 8 && !ppu.maskShowBackgroundLeft() {
		return 0, 0
	}
	bitMux := uint16(0x8000) >> ppu.x
	var pixel, palette byte
	if ppu.bgPatternLo&bitMux != 0 {
		pixel |= 0x01
	}
	if ppu.bgPatternHi&bitMux != 0 {
		pixel |= 0x02
	}
	if pixel != 0 {
		if ppu.bgAttribLo&bitMux != 0 {
			palette |= 0x01
		}
		if ppu.bgAttribHi&bitMux != 0 {
			palette |= 0x02
		}
	}
	return pixel, palette
}

// spritePixel returns the first opaque sprite pixel at the current dot
// along with its palette, priority and whether it belongs to sprite 0.
func (ppu *PPU) spritePixel() (pixel, palette byte, behind, isZero bool) {
	if !ppu.maskShowSprites() {
		return 0, 0, false, false
	}
	x := ppu.Cycle - 1
	if x < 8 && !ppu.maskShowSpritesLeft() {
		return 0, 0, false, false
	}
	for i := 0; i < ppu.spriteCount; i++ {
		offset := x - int(ppu.spriteX[i])
		if offset < 0 || offset > 7 {
			continue
		}
		var p byte
		if ppu.spritePatternLo[i]&(0x80>>offset) != 0 {
			p |= 0x01
		}
		if ppu.spritePatternHi[i]&(0x80>>offset) != 0 {
			p |= 0x02
		}
		if p == 0 {
			continue
		}
		attr := ppu.spriteAttr[i]
		return p, (attr & 0x03) + 4, attr&0x20 != 0, i == 0 && ppu.spriteZeroOnLine
	}
	return 0, 0, false, false
}

// drawPixel composites background and sprite for the current dot and
// writes one RGBA pixel to the back buffer.
func (ppu *PPU) drawPixel() {
	x := ppu.Cycle - 1
	y := ppu.ScanLine

	if !ppu.renderingEnabled() {
		// during forced blank the palette entry pointed to by v leaks
		// through as the backdrop
		index := ppu.paletteRAM[0]
		if uint16(ppu.v)&0x3F00 == 0x3F00 {
			index = ppu.readPalette(uint16(ppu.v))
		}
		ppu.back.SetRGBA(x, y, ppu.colorAt(index))
		return
	}

	bgPixel, bgPalette := ppu.backgroundPixel()
	spPixel, spPalette, spBehind, spZero := ppu.spritePixel()

	var pixel, palette byte
	switch {
	case bgPixel == 0 && spPixel == 0:
		pixel, palette = 0, 0
	case bgPixel == 0:
		pixel, palette = spPixel, spPalette
	case spPixel == 0:
		pixel, palette = bgPixel, bgPalette
	default:
		if spZero && ppu.Cycle < 255 {
			ppu.spriteZeroHit = true
		}
		if spBehind {
			pixel, palette = bgPixel, bgPalette
		} else {
			pixel, palette = spPixel, spPalette
		}
	}

	var index byte
	if pixel == 0 {
		index = ppu.paletteRAM[0]
	} else {
		index = ppu.readPalette(uint16(palette)<<2 | uint16(pixel) | 0x3F00)
	}
	ppu.back.SetRGBA(x, y, ppu.colorAt(index))
}

// Clock advances the PPU by one dot.
func (ppu *PPU) Clock(cart *Cartridge) {
	renderLine := ppu.ScanLine < 240 // includes pre-render

	if renderLine && ppu.renderingEnabled() {
		fetchRange := (ppu.Cycle >= 1 && ppu.Cycle <= 256) || (ppu.Cycle >= 321 && ppu.Cycle <= 336)
		if fetchRange {
			ppu.updateShifters()
			ppu.fetchBackground(cart)
		}
		if ppu.Cycle == 256 {
			ppu.incrementScrollY()
		}
		if ppu.Cycle == 257 {
			ppu.loadBackgroundShifters()
			ppu.transferAddressX()
		}
		if ppu.ScanLine == -1 && ppu.Cycle >= 280 && ppu.Cycle <= 304 {
			ppu.transferAddressY()
		}
		if ppu.Cycle == 337 || ppu.Cycle == 339 {
			// dummy nametable fetches; some mapper IRQ counters watch these
			cart.Mapper.ReadVRAM(0x2000 | (uint16(ppu.v) & 0x0FFF))
		}
		if ppu.ScanLine >= 0 && ppu.ScanLine <= 239 {
			if ppu.Cycle == 257 {
				ppu.evaluateSprites()
			}
			if ppu.Cycle == 340 {
				ppu.fetchSprites(cart)
			}
		}
	}

	if ppu.ScanLine == -1 && ppu.Cycle == 1 {
		ppu.vblankFlag = false
		ppu.spriteZeroHit = false
		ppu.spriteOverflow = false
	}

	if ppu.ScanLine >= 0 && ppu.ScanLine <= 239 && ppu.Cycle >= 1 && ppu.Cycle <= 256 {
		ppu.drawPixel()
	}

	if ppu.ScanLine == 241 && ppu.Cycle == 1 {
		ppu.vblankFlag = true
	}

	ppu.Cycle++
	if ppu.Cycle > 340 {
		ppu.Cycle = 0
		ppu.ScanLine++
		if ppu.ScanLine == 0 && ppu.Frame&1 == 1 && ppu.maskShowBackground() {
			// odd frames drop dot 0 of scanline 0
			ppu.Cycle = 1
		}
		if ppu.ScanLine > 260 {
			ppu.ScanLine = -1
			ppu.Frame++
			ppu.frameComplete = true
			ppu.front, ppu.back = ppu.back, ppu.front
		}
	}
}
