// refs: github.com/fogleman/nes
package famines

type CPUInstruction struct {
	opcode byte
	// name indicates the assembler mnemonic of the instruction
	name string
	// addressing mode
	mode AddressingMode
	// size indicates the size of the instruction in bytes
	size byte
	// cycles indicates the number of cycles used by the instruction, not including conditional cycles
	cycles byte
	// pageCycles indicates the number of cycles used when a page is crossed
	pageCycles byte
	// instruction function
	fn func(bus *Bus, info *stepInfo)
}

// createTable builds a function table for each instruction
func (c *CPU) createTable() {
	c.table = [256]CPUInstruction{
		{opcode: 0x00, name: "BRK", mode: modeImplied, size: 1, cycles: 7, pageCycles: 0, fn: c.brk},
		{opcode: 0x01, name: "ORA", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.ora},
		{opcode: 0x02, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x03, name: "SLO", mode: modeIndirectX, size: 2, cycles: 8, pageCycles: 0, fn: c.slo},
		{opcode: 0x04, name: "NOP", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.nop},
		{opcode: 0x05, name: "ORA", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.ora},
		{opcode: 0x06, name: "ASL", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.asl},
		{opcode: 0x07, name: "SLO", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.slo},
		{opcode: 0x08, name: "PHP", mode: modeImplied, size: 1, cycles: 3, pageCycles: 0, fn: c.php},
		{opcode: 0x09, name: "ORA", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.ora},
		{opcode: 0x0A, name: "ASL", mode: modeAccumulator, size: 1, cycles: 2, pageCycles: 0, fn: c.asl},
		{opcode: 0x0B, name: "ANC", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.anc},
		{opcode: 0x0C, name: "NOP", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.nop},
		{opcode: 0x0D, name: "ORA", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.ora},
		{opcode: 0x0E, name: "ASL", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.asl},
		{opcode: 0x0F, name: "SLO", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.slo},
		{opcode: 0x10, name: "BPL", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.bpl},
		{opcode: 0x11, name: "ORA", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.ora},
		{opcode: 0x12, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x13, name: "SLO", mode: modeIndirectY, size: 2, cycles: 8, pageCycles: 0, fn: c.slo},
		{opcode: 0x14, name: "NOP", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.nop},
		{opcode: 0x15, name: "ORA", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.ora},
		{opcode: 0x16, name: "ASL", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.asl},
		{opcode: 0x17, name: "SLO", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.slo},
		{opcode: 0x18, name: "CLC", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.clc},
		{opcode: 0x19, name: "ORA", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.ora},
		{opcode: 0x1A, name: "NOP", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0x1B, name: "SLO", mode: modeAbsoluteY, size: 3, cycles: 7, pageCycles: 0, fn: c.slo},
		{opcode: 0x1C, name: "NOP", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.nop},
		{opcode: 0x1D, name: "ORA", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.ora},
		{opcode: 0x1E, name: "ASL", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.asl},
		{opcode: 0x1F, name: "SLO", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.slo},
		{opcode: 0x20, name: "JSR", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.jsr},
		{opcode: 0x21, name: "AND", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.and},
		{opcode: 0x22, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x23, name: "RLA", mode: modeIndirectX, size: 2, cycles: 8, pageCycles: 0, fn: c.rla},
		{opcode: 0x24, name: "BIT", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.bit},
		{opcode: 0x25, name: "AND", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.and},
		{opcode: 0x26, name: "ROL", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.rol},
		{opcode: 0x27, name: "RLA", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.rla},
		{opcode: 0x28, name: "PLP", mode: modeImplied, size: 1, cycles: 4, pageCycles: 0, fn: c.plp},
		{opcode: 0x29, name: "AND", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.and},
		{opcode: 0x2A, name: "ROL", mode: modeAccumulator, size: 1, cycles: 2, pageCycles: 0, fn: c.rol},
		{opcode: 0x2B, name: "ANC", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.anc},
		{opcode: 0x2C, name: "BIT", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.bit},
		{opcode: 0x2D, name: "AND", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.and},
		{opcode: 0x2E, name: "ROL", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.rol},
		{opcode: 0x2F, name: "RLA", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.rla},
		{opcode: 0x30, name: "BMI", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.bmi},
		{opcode: 0x31, name: "AND", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.and},
		{opcode: 0x32, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x33, name: "RLA", mode: modeIndirectY, size: 2, cycles: 8, pageCycles: 0, fn: c.rla},
		{opcode: 0x34, name: "NOP", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.nop},
		{opcode: 0x35, name: "AND", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.and},
		{opcode: 0x36, name: "ROL", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.rol},
		{opcode: 0x37, name: "RLA", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.rla},
		{opcode: 0x38, name: "SEC", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.sec},
		{opcode: 0x39, name: "AND", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.and},
		{opcode: 0x3A, name: "NOP", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0x3B, name: "RLA", mode: modeAbsoluteY, size: 3, cycles: 7, pageCycles: 0, fn: c.rla},
		{opcode: 0x3C, name: "NOP", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.nop},
		{opcode: 0x3D, name: "AND", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.and},
		{opcode: 0x3E, name: "ROL", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.rol},
		{opcode: 0x3F, name: "RLA", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.rla},
		{opcode: 0x40, name: "RTI", mode: modeImplied, size: 1, cycles: 6, pageCycles: 0, fn: c.rti},
		{opcode: 0x41, name: "EOR", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.eor},
		{opcode: 0x42, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x43, name: "SRE", mode: modeIndirectX, size: 2, cycles: 8, pageCycles: 0, fn: c.sre},
		{opcode: 0x44, name: "NOP", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.nop},
		{opcode: 0x45, name: "EOR", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.eor},
		{opcode: 0x46, name: "LSR", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.lsr},
		{opcode: 0x47, name: "SRE", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.sre},
		{opcode: 0x48, name: "PHA", mode: modeImplied, size: 1, cycles: 3, pageCycles: 0, fn: c.pha},
		{opcode: 0x49, name: "EOR", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.eor},
		{opcode: 0x4A, name: "LSR", mode: modeAccumulator, size: 1, cycles: 2, pageCycles: 0, fn: c.lsr},
		{opcode: 0x4B, name: "ALR", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.alr},
		{opcode: 0x4C, name: "JMP", mode: modeAbsolute, size: 3, cycles: 3, pageCycles: 0, fn: c.jmp},
		{opcode: 0x4D, name: "EOR", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.eor},
		{opcode: 0x4E, name: "LSR", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.lsr},
		{opcode: 0x4F, name: "SRE", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.sre},
		{opcode: 0x50, name: "BVC", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.bvc},
		{opcode: 0x51, name: "EOR", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.eor},
		{opcode: 0x52, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x53, name: "SRE", mode: modeIndirectY, size: 2, cycles: 8, pageCycles: 0, fn: c.sre},
		{opcode: 0x54, name: "NOP", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.nop},
		{opcode: 0x55, name: "EOR", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.eor},
		{opcode: 0x56, name: "LSR", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.lsr},
		{opcode: 0x57, name: "SRE", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.sre},
		{opcode: 0x58, name: "CLI", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.cli},
		{opcode: 0x59, name: "EOR", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.eor},
		{opcode: 0x5A, name: "NOP", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0x5B, name: "SRE", mode: modeAbsoluteY, size: 3, cycles: 7, pageCycles: 0, fn: c.sre},
		{opcode: 0x5C, name: "NOP", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.nop},
		{opcode: 0x5D, name: "EOR", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.eor},
		{opcode: 0x5E, name: "LSR", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.lsr},
		{opcode: 0x5F, name: "SRE", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.sre},
		{opcode: 0x60, name: "RTS", mode: modeImplied, size: 1, cycles: 6, pageCycles: 0, fn: c.rts},
		{opcode: 0x61, name: "ADC", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.adc},
		{opcode: 0x62, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x63, name: "RRA", mode: modeIndirectX, size: 2, cycles: 8, pageCycles: 0, fn: c.rra},
		{opcode: 0x64, name: "NOP", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.nop},
		{opcode: 0x65, name: "ADC", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.adc},
		{opcode: 0x66, name: "ROR", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.ror},
		{opcode: 0x67, name: "RRA", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.rra},
		{opcode: 0x68, name: "PLA", mode: modeImplied, size: 1, cycles: 4, pageCycles: 0, fn: c.pla},
		{opcode: 0x69, name: "ADC", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.adc},
		{opcode: 0x6A, name: "ROR", mode: modeAccumulator, size: 1, cycles: 2, pageCycles: 0, fn: c.ror},
		{opcode: 0x6B, name: "ARR", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.arr},
		{opcode: 0x6C, name: "JMP", mode: modeIndirect, size: 3, cycles: 5, pageCycles: 0, fn: c.jmp},
		{opcode: 0x6D, name: "ADC", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.adc},
		{opcode: 0x6E, name: "ROR", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.ror},
		{opcode: 0x6F, name: "RRA", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.rra},
		{opcode: 0x70, name: "BVS", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.bvs},
		{opcode: 0x71, name: "ADC", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.adc},
		{opcode: 0x72, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x73, name: "RRA", mode: modeIndirectY, size: 2, cycles: 8, pageCycles: 0, fn: c.rra},
		{opcode: 0x74, name: "NOP", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.nop},
		{opcode: 0x75, name: "ADC", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.adc},
		{opcode: 0x76, name: "ROR", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.ror},
		{opcode: 0x77, name: "RRA", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.rra},
		{opcode: 0x78, name: "SEI", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.sei},
		{opcode: 0x79, name: "ADC", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.adc},
		{opcode: 0x7A, name: "NOP", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0x7B, name: "RRA", mode: modeAbsoluteY, size: 3, cycles: 7, pageCycles: 0, fn: c.rra},
		{opcode: 0x7C, name: "NOP", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.nop},
		{opcode: 0x7D, name: "ADC", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.adc},
		{opcode: 0x7E, name: "ROR", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.ror},
		{opcode: 0x7F, name: "RRA", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.rra},
		{opcode: 0x80, name: "NOP", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0x81, name: "STA", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.sta},
		{opcode: 0x82, name: "NOP", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0x83, name: "SAX", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.sax},
		{opcode: 0x84, name: "STY", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.sty},
		{opcode: 0x85, name: "STA", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.sta},
		{opcode: 0x86, name: "STX", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.stx},
		{opcode: 0x87, name: "SAX", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.sax},
		{opcode: 0x88, name: "DEY", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.dey},
		{opcode: 0x89, name: "NOP", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0x8A, name: "TXA", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.txa},
		{opcode: 0x8B, name: "XAA", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.xaa},
		{opcode: 0x8C, name: "STY", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.sty},
		{opcode: 0x8D, name: "STA", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.sta},
		{opcode: 0x8E, name: "STX", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.stx},
		{opcode: 0x8F, name: "SAX", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.sax},
		{opcode: 0x90, name: "BCC", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.bcc},
		{opcode: 0x91, name: "STA", mode: modeIndirectY, size: 2, cycles: 6, pageCycles: 0, fn: c.sta},
		{opcode: 0x92, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0x93, name: "AHX", mode: modeIndirectY, size: 2, cycles: 6, pageCycles: 0, fn: c.ahx},
		{opcode: 0x94, name: "STY", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.sty},
		{opcode: 0x95, name: "STA", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.sta},
		{opcode: 0x96, name: "STX", mode: modeZeroPageY, size: 2, cycles: 4, pageCycles: 0, fn: c.stx},
		{opcode: 0x97, name: "SAX", mode: modeZeroPageY, size: 2, cycles: 4, pageCycles: 0, fn: c.sax},
		{opcode: 0x98, name: "TYA", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.tya},
		{opcode: 0x99, name: "STA", mode: modeAbsoluteY, size: 3, cycles: 5, pageCycles: 0, fn: c.sta},
		{opcode: 0x9A, name: "TXS", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.txs},
		{opcode: 0x9B, name: "TAS", mode: modeAbsoluteY, size: 3, cycles: 5, pageCycles: 0, fn: c.tas},
		{opcode: 0x9C, name: "SHY", mode: modeAbsoluteX, size: 3, cycles: 5, pageCycles: 0, fn: c.shy},
		{opcode: 0x9D, name: "STA", mode: modeAbsoluteX, size: 3, cycles: 5, pageCycles: 0, fn: c.sta},
		{opcode: 0x9E, name: "SHX", mode: modeAbsoluteY, size: 3, cycles: 5, pageCycles: 0, fn: c.shx},
		{opcode: 0x9F, name: "AHX", mode: modeAbsoluteY, size: 3, cycles: 5, pageCycles: 0, fn: c.ahx},
		{opcode: 0xA0, name: "LDY", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.ldy},
		{opcode: 0xA1, name: "LDA", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.lda},
		{opcode: 0xA2, name: "LDX", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.ldx},
		{opcode: 0xA3, name: "LAX", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.lax},
		{opcode: 0xA4, name: "LDY", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.ldy},
		{opcode: 0xA5, name: "LDA", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.lda},
		{opcode: 0xA6, name: "LDX", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.ldx},
		{opcode: 0xA7, name: "LAX", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.lax},
		{opcode: 0xA8, name: "TAY", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.tay},
		{opcode: 0xA9, name: "LDA", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.lda},
		{opcode: 0xAA, name: "TAX", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.tax},
		{opcode: 0xAB, name: "LAX", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.lax},
		{opcode: 0xAC, name: "LDY", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.ldy},
		{opcode: 0xAD, name: "LDA", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.lda},
		{opcode: 0xAE, name: "LDX", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.ldx},
		{opcode: 0xAF, name: "LAX", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.lax},
		{opcode: 0xB0, name: "BCS", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.bcs},
		{opcode: 0xB1, name: "LDA", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.lda},
		{opcode: 0xB2, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0xB3, name: "LAX", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.lax},
		{opcode: 0xB4, name: "LDY", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.ldy},
		{opcode: 0xB5, name: "LDA", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.lda},
		{opcode: 0xB6, name: "LDX", mode: modeZeroPageY, size: 2, cycles: 4, pageCycles: 0, fn: c.ldx},
		{opcode: 0xB7, name: "LAX", mode: modeZeroPageY, size: 2, cycles: 4, pageCycles: 0, fn: c.lax},
		{opcode: 0xB8, name: "CLV", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.clv},
		{opcode: 0xB9, name: "LDA", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.lda},
		{opcode: 0xBA, name: "TSX", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.tsx},
		{opcode: 0xBB, name: "LAS", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.las},
		{opcode: 0xBC, name: "LDY", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.ldy},
		{opcode: 0xBD, name: "LDA", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.lda},
		{opcode: 0xBE, name: "LDX", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.ldx},
		{opcode: 0xBF, name: "LAX", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.lax},
		{opcode: 0xC0, name: "CPY", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.cpy},
		{opcode: 0xC1, name: "CMP", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.cmp},
		{opcode: 0xC2, name: "NOP", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0xC3, name: "DCP", mode: modeIndirectX, size: 2, cycles: 8, pageCycles: 0, fn: c.dcp},
		{opcode: 0xC4, name: "CPY", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.cpy},
		{opcode: 0xC5, name: "CMP", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.cmp},
		{opcode: 0xC6, name: "DEC", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.dec},
		{opcode: 0xC7, name: "DCP", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.dcp},
		{opcode: 0xC8, name: "INY", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.iny},
		{opcode: 0xC9, name: "CMP", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.cmp},
		{opcode: 0xCA, name: "DEX", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.dex},
		{opcode: 0xCB, name: "AXS", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.axs},
		{opcode: 0xCC, name: "CPY", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.cpy},
		{opcode: 0xCD, name: "CMP", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.cmp},
		{opcode: 0xCE, name: "DEC", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.dec},
		{opcode: 0xCF, name: "DCP", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.dcp},
		{opcode: 0xD0, name: "BNE", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.bne},
		{opcode: 0xD1, name: "CMP", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.cmp},
		{opcode: 0xD2, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0xD3, name: "DCP", mode: modeIndirectY, size: 2, cycles: 8, pageCycles: 0, fn: c.dcp},
		{opcode: 0xD4, name: "NOP", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.nop},
		{opcode: 0xD5, name: "CMP", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.cmp},
		{opcode: 0xD6, name: "DEC", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.dec},
		{opcode: 0xD7, name: "DCP", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.dcp},
		{opcode: 0xD8, name: "CLD", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.cld},
		{opcode: 0xD9, name: "CMP", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.cmp},
		{opcode: 0xDA, name: "NOP", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0xDB, name: "DCP", mode: modeAbsoluteY, size: 3, cycles: 7, pageCycles: 0, fn: c.dcp},
		{opcode: 0xDC, name: "NOP", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.nop},
		{opcode: 0xDD, name: "CMP", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.cmp},
		{opcode: 0xDE, name: "DEC", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.dec},
		{opcode: 0xDF, name: "DCP", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.dcp},
		{opcode: 0xE0, name: "CPX", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.cpx},
		{opcode: 0xE1, name: "SBC", mode: modeIndirectX, size: 2, cycles: 6, pageCycles: 0, fn: c.sbc},
		{opcode: 0xE2, name: "NOP", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0xE3, name: "ISC", mode: modeIndirectX, size: 2, cycles: 8, pageCycles: 0, fn: c.isc},
		{opcode: 0xE4, name: "CPX", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.cpx},
		{opcode: 0xE5, name: "SBC", mode: modeZeroPage, size: 2, cycles: 3, pageCycles: 0, fn: c.sbc},
		{opcode: 0xE6, name: "INC", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.inc},
		{opcode: 0xE7, name: "ISC", mode: modeZeroPage, size: 2, cycles: 5, pageCycles: 0, fn: c.isc},
		{opcode: 0xE8, name: "INX", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.inx},
		{opcode: 0xE9, name: "SBC", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.sbc},
		{opcode: 0xEA, name: "NOP", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0xEB, name: "SBC", mode: modeImmediate, size: 2, cycles: 2, pageCycles: 0, fn: c.sbc},
		{opcode: 0xEC, name: "CPX", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.cpx},
		{opcode: 0xED, name: "SBC", mode: modeAbsolute, size: 3, cycles: 4, pageCycles: 0, fn: c.sbc},
		{opcode: 0xEE, name: "INC", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.inc},
		{opcode: 0xEF, name: "ISC", mode: modeAbsolute, size: 3, cycles: 6, pageCycles: 0, fn: c.isc},
		{opcode: 0xF0, name: "BEQ", mode: modeRelative, size: 2, cycles: 2, pageCycles: 1, fn: c.beq},
		{opcode: 0xF1, name: "SBC", mode: modeIndirectY, size: 2, cycles: 5, pageCycles: 1, fn: c.sbc},
		{opcode: 0xF2, name: "KIL", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.kil},
		{opcode: 0xF3, name: "ISC", mode: modeIndirectY, size: 2, cycles: 8, pageCycles: 0, fn: c.isc},
		{opcode: 0xF4, name: "NOP", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.nop},
		{opcode: 0xF5, name: "SBC", mode: modeZeroPageX, size: 2, cycles: 4, pageCycles: 0, fn: c.sbc},
		{opcode: 0xF6, name: "INC", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.inc},
		{opcode: 0xF7, name: "ISC", mode: modeZeroPageX, size: 2, cycles: 6, pageCycles: 0, fn: c.isc},
		{opcode: 0xF8, name: "SED", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.sed},
		{opcode: 0xF9, name: "SBC", mode: modeAbsoluteY, size: 3, cycles: 4, pageCycles: 1, fn: c.sbc},
		{opcode: 0xFA, name: "NOP", mode: modeImplied, size: 1, cycles: 2, pageCycles: 0, fn: c.nop},
		{opcode: 0xFB, name: "ISC", mode: modeAbsoluteY, size: 3, cycles: 7, pageCycles: 0, fn: c.isc},
		{opcode: 0xFC, name: "NOP", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.nop},
		{opcode: 0xFD, name: "SBC", mode: modeAbsoluteX, size: 3, cycles: 4, pageCycles: 1, fn: c.sbc},
		{opcode: 0xFE, name: "INC", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.inc},
		{opcode: 0xFF, name: "ISC", mode: modeAbsoluteX, size: 3, cycles: 7, pageCycles: 0, fn: c.isc},
	}
}

// ADC - Add with Carry
func (cpu *CPU) adc(bus *Bus, info *stepInfo) {
	cpu.addToA(bus.ReadMemory(info.address))
}

func (cpu *CPU) addToA(m byte) {
	a := cpu.A
	c := cpu.C
	cpu.A = a + m + c
	cpu.setZN(cpu.A)
	if int(a)+int(m)+int(c) > 0xFF {
		cpu.C = 1
	} else {
		cpu.C = 0
	}
	if (a^m)&0x80 == 0 && (a^cpu.A)&0x80 != 0 {
		cpu.V = 1
	} else {
		cpu.V = 0
	}
}

// AND - Logical AND
func (cpu *CPU) and(bus *Bus, info *stepInfo) {
	cpu.A = cpu.A & bus.ReadMemory(info.address)
	cpu.setZN(cpu.A)
}

// ASL - Arithmetic Shift Left
func (cpu *CPU) asl(bus *Bus, info *stepInfo) {
	if info.mode == modeAccumulator {
		cpu.C = (cpu.A >> 7) & 1
		cpu.A <<= 1
		cpu.setZN(cpu.A)
	} else {
		value := bus.ReadMemory(info.address)
		cpu.C = (value >> 7) & 1
		value <<= 1
		bus.WriteMemory(info.address, value)
		cpu.setZN(value)
	}
}

// BCC - Branch if Carry Clear
func (cpu *CPU) bcc(bus *Bus, info *stepInfo) {
	if cpu.C == 0 {
		cpu.PC = info.address
		cpu.addBranchCycles(info)
	}
}

// BCS - Branch if Carry Set
func (cpu *CPU) bcs(bus *Bus, info *stepInfo) {
	if cpu.C != 0 {
		cpu.PC = info.address
		cpu.addBranchCycles(info)
	}
}

// BEQ - Branch if Equal
func (cpu *CPU) beq(bus *Bus, info *stepInfo) {
	if cpu.Z != 0 {
		cpu.PC = info.address
		cpu.addBranchCycles(info)
	}
}

// BIT - Bit Test
func (cpu *CPU) bit(bus *Bus, info *stepInfo) {
	value := bus.ReadMemory(info.address)
	cpu.V = (value >> 6) & 1
	cpu.setZ(value & cpu.A)
	cpu.setN(value)
}

// BMI - Branch if Minus
func (cpu *CPU) bmi(bus *Bus, info *stepInfo) {
	if cpu.N != 0 {
		cpu.PC = info.address
		cpu.addBranchCycles(info)
	}
}

// BNE - Branch if Not Equal
func (cpu *CPU) bne(bus *Bus, info *stepInfo) {
	if cpu.Z == 0 {
		cpu.PC = info.address
		cpu.addBranchCycles(info)
	}
}

// BPL - Branch if Positive
func (cpu *CPU) bpl(bus *Bus, info *stepInfo) {
	if cpu.N == 0 {
		cpu.PC = info.address
		cpu.addBranchCycles(info)
	}
}

// BRK - Force Interrupt. Pushes PC+1 past the signature byte with B=1.
func (cpu *CPU) brk(bus *Bus, info *stepInfo) {
	cpu.push16(bus, cpu.PC+1)
	cpu.push(bus, cpu.Flags()|0x30)
	cpu.I = 1
	cpu.PC = bus.ReadMemory16(IRQVector)
}

// BVC - Branch if Overflow Clear
func (cpu *CPU) bvc(bus *Bus, info *stepInfo) {
	if cpu.V == 0 {
		cpu.PC = info.address
		cpu.addBranchCycles(info)
	}
}

// BVS - Branch if Overflow Set
func (cpu *CPU) bvs(bus *Bus, info *stepInfo) {
	if cpu.V != 0 {
		cpu.PC = info.address
		cpu.addBranchCycles(info)
	}
}

// CLC - Clear Carry Flag
func (cpu *CPU) clc(bus *Bus, info *stepInfo) {
	cpu.C = 0
}

// CLD - Clear Decimal Mode
func (cpu *CPU) cld(bus *Bus, info *stepInfo) {
	cpu.D = 0
}

// CLI - Clear Interrupt Disable
func (cpu *CPU) cli(bus *Bus, info *stepInfo) {
	cpu.I = 0
}

// CLV - Clear Overflow Flag
func (cpu *CPU) clv(bus *Bus, info *stepInfo) {
	cpu.V = 0
}

// CMP - Compare
func (cpu *CPU) cmp(bus *Bus, info *stepInfo) {
	cpu.compare(cpu.A, bus.ReadMemory(info.address))
}

// CPX - Compare X Register
func (cpu *CPU) cpx(bus *Bus, info *stepInfo) {
	cpu.compare(cpu.X, bus.ReadMemory(info.address))
}

// CPY - Compare Y Register
func (cpu *CPU) cpy(bus *Bus, info *stepInfo) {
	cpu.compare(cpu.Y, bus.ReadMemory(info.address))
}

// DEC - Decrement Memory
func (cpu *CPU) dec(bus *Bus, info *stepInfo) {
	value := bus.ReadMemory(info.address) - 1
	bus.WriteMemory(info.address, value)
	cpu.setZN(value)
}

// DEX - Decrement X Register
func (cpu *CPU) dex(bus *Bus, info *stepInfo) {
	cpu.X--
	cpu.setZN(cpu.X)
}

// DEY - Decrement Y Register
func (cpu *CPU) dey(bus *Bus, info *stepInfo) {
	cpu.Y--
	cpu.setZN(cpu.Y)
}

// EOR - Exclusive OR
func (cpu *CPU) eor(bus *Bus, info *stepInfo) {
	cpu.A = cpu.A ^ bus.ReadMemory(info.address)
	cpu.setZN(cpu.A)
}

// INC - Increment Memory
func (cpu *CPU) inc(bus *Bus, info *stepInfo) {
	value := bus.ReadMemory(info.address) + 1
	bus.WriteMemory(info.address, value)
	cpu.setZN(value)
}

// INX - Increment X Register
func (cpu *CPU) inx(bus *Bus, info *stepInfo) {
	cpu.X++
	cpu.setZN(cpu.X)
}

// INY - Increment Y Register
func (cpu *CPU) iny(bus *Bus, info *stepInfo) {
	cpu.Y++
	cpu.setZN(cpu.Y)
}

// JMP - Jump
func (cpu *CPU) jmp(bus *Bus, info *stepInfo) {
	cpu.PC = info.address
}

// JSR - Jump to Subroutine
func (cpu *CPU) jsr(bus *Bus, info *stepInfo) {
	cpu.push16(bus, cpu.PC-1)
	cpu.PC = info.address
}

// LDA - Load Accumulator
func (cpu *CPU) lda(bus *Bus, info *stepInfo) {
	cpu.A = bus.ReadMemory(info.address)
	cpu.setZN(cpu.A)
}

// LDX - Load X Register
func (cpu *CPU) ldx(bus *Bus, info *stepInfo) {
	cpu.X = bus.ReadMemory(info.address)
	cpu.setZN(cpu.X)
}

// LDY - Load Y Register
func (cpu *CPU) ldy(bus *Bus, info *stepInfo) {
	cpu.Y = bus.ReadMemory(info.address)
	cpu.setZN(cpu.Y)
}

// LSR - Logical Shift Right
func (cpu *CPU) lsr(bus *Bus, info *stepInfo) {
	if info.mode == modeAccumulator {
		cpu.C = cpu.A & 1
		cpu.A >>= 1
		cpu.setZN(cpu.A)
	} else {
		value := bus.ReadMemory(info.address)
		cpu.C = value & 1
		value >>= 1
		bus.WriteMemory(info.address, value)
		cpu.setZN(value)
	}
}

// NOP - No Operation
func (cpu *CPU) nop(bus *Bus, info *stepInfo) {
}

// ORA - Logical Inclusive OR
func (cpu *CPU) ora(bus *Bus, info *stepInfo) {
	cpu.A = cpu.A | bus.ReadMemory(info.address)
	cpu.setZN(cpu.A)
}

// PHA - Push Accumulator
func (cpu *CPU) pha(bus *Bus, info *stepInfo) {
	cpu.push(bus, cpu.A)
}

// PHP - Push Processor Status. Pushed with B=1, U=1.
func (cpu *CPU) php(bus *Bus, info *stepInfo) {
	cpu.push(bus, cpu.Flags()|0x30)
}

// PLA - Pull Accumulator
func (cpu *CPU) pla(bus *Bus, info *stepInfo) {
	cpu.A = cpu.pull(bus)
	cpu.setZN(cpu.A)
}

// PLP - Pull Processor Status. U is forced on, B forced off.
func (cpu *CPU) plp(bus *Bus, info *stepInfo) {
	cpu.SetFlags(cpu.pull(bus)&0xEF | 0x20)
}

// ROL - Rotate Left
func (cpu *CPU) rol(bus *Bus, info *stepInfo) {
	if info.mode == modeAccumulator {
		c := cpu.C
		cpu.C = (cpu.A >> 7) & 1
		cpu.A = (cpu.A << 1) | c
		cpu.setZN(cpu.A)
	} else {
		c := cpu.C
		value := bus.ReadMemory(info.address)
		cpu.C = (value >> 7) & 1
		value = (value << 1) | c
		bus.WriteMemory(info.address, value)
		cpu.setZN(value)
	}
}

// ROR - Rotate Right
func (cpu *CPU) ror(bus *Bus, info *stepInfo) {
	if info.mode == modeAccumulator {
		c := cpu.C
		cpu.C = cpu.A & 1
		cpu.A = (cpu.A >> 1) | (c << 7)
		cpu.setZN(cpu.A)
	} else {
		c := cpu.C
		value := bus.ReadMemory(info.address)
		cpu.C = value & 1
		value = (value >> 1) | (c << 7)
		bus.WriteMemory(info.address, value)
		cpu.setZN(value)
	}
}

// RTI - Return from Interrupt
func (cpu *CPU) rti(bus *Bus, info *stepInfo) {
	cpu.SetFlags(cpu.pull(bus)&0xEF | 0x20)
	cpu.PC = cpu.pull16(bus)
}

// RTS - Return from Subroutine
func (cpu *CPU) rts(bus *Bus, info *stepInfo) {
	cpu.PC = cpu.pull16(bus) + 1
}

// SBC - Subtract with Carry
func (cpu *CPU) sbc(bus *Bus, info *stepInfo) {
	cpu.addToA(bus.ReadMemory(info.address) ^ 0xFF)
}

// SEC - Set Carry Flag
func (cpu *CPU) sec(bus *Bus, info *stepInfo) {
	cpu.C = 1
}

// SED - Set Decimal Flag
func (cpu *CPU) sed(bus *Bus, info *stepInfo) {
	cpu.D = 1
}

// SEI - Set Interrupt Disable
func (cpu *CPU) sei(bus *Bus, info *stepInfo) {
	cpu.I = 1
}

// STA - Store Accumulator
func (cpu *CPU) sta(bus *Bus, info *stepInfo) {
	bus.WriteMemory(info.address, cpu.A)
}

// STX - Store X Register
func (cpu *CPU) stx(bus *Bus, info *stepInfo) {
	bus.WriteMemory(info.address, cpu.X)
}

// STY - Store Y Register
func (cpu *CPU) sty(bus *Bus, info *stepInfo) {
	bus.WriteMemory(info.address, cpu.Y)
}

// TAX - Transfer Accumulator to X
func (cpu *CPU) tax(bus *Bus, info *stepInfo) {
	cpu.X = cpu.A
	cpu.setZN(cpu.X)
}

// TAY - Transfer Accumulator to Y
func (cpu *CPU) tay(bus *Bus, info *stepInfo) {
	cpu.Y = cpu.A
	cpu.setZN(cpu.Y)
}

// TSX - Transfer Stack Pointer to X
func (cpu *CPU) tsx(bus *Bus, info *stepInfo) {
	cpu.X = cpu.SP
	cpu.setZN(cpu.X)
}

// TXA - Transfer X to Accumulator
func (cpu *CPU) txa(bus *Bus, info *stepInfo) {
	cpu.A = cpu.X
	cpu.setZN(cpu.A)
}

// TXS - Transfer X to Stack Pointer
func (cpu *CPU) txs(bus *Bus, info *stepInfo) {
	cpu.SP = cpu.X
}

// TYA - Transfer Y to Accumulator
func (cpu *CPU) tya(bus *Bus, info *stepInfo) {
	cpu.A = cpu.Y
	cpu.setZN(cpu.A)
}

// undocumented opcodes below

// SLO - shift left then OR with accumulator
func (cpu *CPU) slo(bus *Bus, info *stepInfo) {
	value := bus.ReadMemory(info.address)
	cpu.C = (value >> 7) & 1
	value <<= 1
	bus.WriteMemory(info.address, value)
	cpu.A |= value
	cpu.setZN(cpu.A)
}

// RLA - rotate left then AND with accumulator
func (cpu *CPU) rla(bus *Bus, info *stepInfo) {
	c := cpu.C
	value := bus.ReadMemory(info.address)
	cpu.C = (value >> 7) & 1
	value = (value << 1) | c
	bus.WriteMemory(info.address, value)
	cpu.A &= value
	cpu.setZN(cpu.A)
}

// SRE - shift right then EOR with accumulator
func (cpu *CPU) sre(bus *Bus, info *stepInfo) {
	value := bus.ReadMemory(info.address)
	cpu.C = value & 1
	value >>= 1
	bus.WriteMemory(info.address, value)
	cpu.A ^= value
	cpu.setZN(cpu.A)
}

// RRA - rotate right then add with carry
func (cpu *CPU) rra(bus *Bus, info *stepInfo) {
	c := cpu.C
	value := bus.ReadMemory(info.address)
	cpu.C = value & 1
	value = (value >> 1) | (c << 7)
	bus.WriteMemory(info.address, value)
	cpu.addToA(value)
}

// DCP - decrement then compare
func (cpu *CPU) dcp(bus *Bus, info *stepInfo) {
	value := bus.ReadMemory(info.address) - 1
	bus.WriteMemory(info.address, value)
	cpu.compare(cpu.A, value)
}

// ISC - increment then subtract with carry
func (cpu *CPU) isc(bus *Bus, info *stepInfo) {
	value := bus.ReadMemory(info.address) + 1
	bus.WriteMemory(info.address, value)
	cpu.addToA(value ^ 0xFF)
}

// LAX - load accumulator and X
func (cpu *CPU) lax(bus *Bus, info *stepInfo) {
	value := bus.ReadMemory(info.address)
	cpu.A = value
	cpu.X = value
	cpu.setZN(value)
}

// SAX - store accumulator AND X
func (cpu *CPU) sax(bus *Bus, info *stepInfo) {
	bus.WriteMemory(info.address, cpu.A&cpu.X)
}

// ANC - AND immediate, carry from bit 7
func (cpu *CPU) anc(bus *Bus, info *stepInfo) {
	cpu.A &= bus.ReadMemory(info.address)
	cpu.setZN(cpu.A)
	cpu.C = (cpu.A >> 7) & 1
}

// ALR - AND immediate then shift right
func (cpu *CPU) alr(bus *Bus, info *stepInfo) {
	cpu.A &= bus.ReadMemory(info.address)
	cpu.C = cpu.A & 1
	cpu.A >>= 1
	cpu.setZN(cpu.A)
}

// ARR - AND immediate then rotate right; C and V come from bits 6 and 5
func (cpu *CPU) arr(bus *Bus, info *stepInfo) {
	cpu.A &= bus.ReadMemory(info.address)
	cpu.A = (cpu.A >> 1) | (cpu.C << 7)
	cpu.setZN(cpu.A)
	cpu.C = (cpu.A >> 6) & 1
	cpu.V = ((cpu.A >> 6) ^ (cpu.A >> 5)) & 1
}

// AXS - (A AND X) minus immediate into X
func (cpu *CPU) axs(bus *Bus, info *stepInfo) {
	value := bus.ReadMemory(info.address)
	ax := cpu.A & cpu.X
	cpu.X = ax - value
	if ax >= value {
		cpu.C = 1
	} else {
		cpu.C = 0
	}
	cpu.setZN(cpu.X)
}

// LAS - memory AND SP into A, X and SP
func (cpu *CPU) las(bus *Bus, info *stepInfo) {
	value := bus.ReadMemory(info.address) & cpu.SP
	cpu.A = value
	cpu.X = value
	cpu.SP = value
	cpu.setZN(value)
}

// XAA - highly unstable; approximated as X AND immediate into A
func (cpu *CPU) xaa(bus *Bus, info *stepInfo) {
	cpu.A = cpu.X & bus.ReadMemory(info.address)
	cpu.setZN(cpu.A)
}

// AHX - store A AND X AND (high byte of address + 1)
func (cpu *CPU) ahx(bus *Bus, info *stepInfo) {
	value := cpu.A & cpu.X & (byte(info.address>>8) + 1)
	bus.WriteMemory(info.address, value)
}

// SHX - store X AND (high byte of address + 1)
func (cpu *CPU) shx(bus *Bus, info *stepInfo) {
	value := cpu.X & (byte(info.address>>8) + 1)
	bus.WriteMemory(info.address, value)
}

// SHY - store Y AND (high byte of address + 1)
func (cpu *CPU) shy(bus *Bus, info *stepInfo) {
	value := cpu.Y & (byte(info.address>>8) + 1)
	bus.WriteMemory(info.address, value)
}

// TAS - SP from A AND X, then store like AHX
func (cpu *CPU) tas(bus *Bus, info *stepInfo) {
	cpu.SP = cpu.A & cpu.X
	value := cpu.SP & (byte(info.address>>8) + 1)
	bus.WriteMemory(info.address, value)
}

// KIL - jam opcode; the real CPU halts. Logged and treated as a NOP
// unless strict mode is enabled.
func (cpu *CPU) kil(bus *Bus, info *stepInfo) {
	cpu.jamOpcode(bus.ReadMemory(info.pc-1), info.pc-1)
}
