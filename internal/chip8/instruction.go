package chip8

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// UnknownMnemonic is returned for instruction words that match no opcode.
const UnknownMnemonic = "unknown"

// Mnemonic returns the instruction name of an instruction word as defined by
// the retrogolib CHIP-8 opcode tables. It is used for execution traces.
func Mnemonic(opcode uint16) string {
	ins := lookupInstruction(opcode)
	if ins == nil {
		return UnknownMnemonic
	}
	return ins.Name
}

// lookupInstruction finds the instruction definition of an instruction word
// by matching the opcode masks of its first nibble group.
func lookupInstruction(opcode uint16) *chip8.Instruction {
	firstNibble := (opcode & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&opcode == op.Info.Value {
			return op.Instruction
		}
	}
	return nil
}
