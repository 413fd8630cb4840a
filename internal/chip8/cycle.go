package chip8

import "github.com/retroenv/retrogolib/log"

// handler executes a single instruction on the machine.
type handler func(c *Chip8)

// table dispatches on the first nibble of the instruction word.
var table = [16]handler{
	0x0: (*Chip8).dispatch0,
	0x1: (*Chip8).opJP,
	0x2: (*Chip8).opCALL,
	0x3: (*Chip8).opSEByte,
	0x4: (*Chip8).opSNEByte,
	0x5: (*Chip8).opSERegister,
	0x6: (*Chip8).opLDByte,
	0x7: (*Chip8).opADDByte,
	0x8: (*Chip8).dispatch8,
	0x9: (*Chip8).opSNERegister,
	0xA: (*Chip8).opLDI,
	0xB: (*Chip8).opJPV0,
	0xC: (*Chip8).opRND,
	0xD: (*Chip8).opDRW,
	0xE: (*Chip8).dispatchE,
	0xF: (*Chip8).dispatchF,
}

// table0 dispatches 0xxx instructions on the last nibble.
var table0 = [16]handler{
	0x0: (*Chip8).opCLS,
	0xE: (*Chip8).opRET,
}

// table8 dispatches 8xyn instructions on the last nibble.
var table8 = [16]handler{
	0x0: (*Chip8).opLDRegister,
	0x1: (*Chip8).opOR,
	0x2: (*Chip8).opAND,
	0x3: (*Chip8).opXOR,
	0x4: (*Chip8).opADDRegister,
	0x5: (*Chip8).opSUB,
	0x6: (*Chip8).opSHR,
	0x7: (*Chip8).opSUBN,
	0xE: (*Chip8).opSHL,
}

// tableE dispatches Exkk instructions on the last nibble.
var tableE = [16]handler{
	0x1: (*Chip8).opSKNP,
	0xE: (*Chip8).opSKP,
}

// tableF dispatches Fxkk instructions on the last byte.
var tableF = [0x65 + 1]handler{
	0x07: (*Chip8).opLDVxDT,
	0x0A: (*Chip8).opLDVxK,
	0x15: (*Chip8).opLDDTVx,
	0x18: (*Chip8).opLDSTVx,
	0x1E: (*Chip8).opADDI,
	0x29: (*Chip8).opLDF,
	0x33: (*Chip8).opLDB,
	0x55: (*Chip8).opStore,
	0x65: (*Chip8).opLoad,
}

// Cycle executes a single instruction: fetch the word at PC, advance PC by
// two and run the handler selected by the decode tables. Instruction words
// without a handler are skipped. A halted machine does nothing.
func (c *Chip8) Cycle() {
	if c.trap != nil {
		return
	}

	c.address = c.PC
	high := c.read(c.PC)
	low := c.read(c.PC + 1)
	c.opcode = uint16(high)<<8 | uint16(low)
	c.PC += 2

	if c.trace {
		c.logger.Debug("Executing instruction",
			log.Hex("pc", c.address),
			log.Hex("opcode", c.opcode),
			log.String("instruction", Mnemonic(c.opcode)))
	}

	table[c.opcode>>12](c)
}

func (c *Chip8) dispatch0() {
	run(c, table0[c.opcode&0x000F])
}

func (c *Chip8) dispatch8() {
	run(c, table8[c.opcode&0x000F])
}

func (c *Chip8) dispatchE() {
	run(c, tableE[c.opcode&0x000F])
}

func (c *Chip8) dispatchF() {
	index := c.opcode & 0x00FF
	if int(index) >= len(tableF) {
		return
	}
	run(c, tableF[index])
}

func run(c *Chip8, h handler) {
	if h != nil {
		h(c)
	}
}
