package chip8

import "fmt"

// TrapKind identifies the kind of access that violated the machine bounds.
type TrapKind int

// Trap kinds reported with Options.BoundsCheck.
const (
	TrapMemory TrapKind = iota + 1
	TrapStackOverflow
	TrapStackUnderflow
	TrapKeypad
	TrapVideo
)

func (k TrapKind) String() string {
	switch k {
	case TrapMemory:
		return "memory access out of range"
	case TrapStackOverflow:
		return "stack overflow"
	case TrapStackUnderflow:
		return "stack underflow"
	case TrapKeypad:
		return "key out of range"
	case TrapVideo:
		return "framebuffer access out of range"
	default:
		return fmt.Sprintf("trap %d", int(k))
	}
}

// TrapError describes the bounds violation that halted the machine.
type TrapError struct {
	Kind    TrapKind
	PC      uint16 // address of the faulting instruction
	Opcode  uint16
	Address uint16 // offending memory address, stack pointer, key or framebuffer cell
}

func (e *TrapError) Error() string {
	return fmt.Sprintf("%s at $%03X (opcode $%04X, operand $%04X)", e.Kind, e.PC, e.Opcode, e.Address)
}

// fault records a bounds violation. It returns true when bounds checking is
// enabled, in which case the caller has to skip the access. Only the first
// violation of a cycle is kept.
func (c *Chip8) fault(kind TrapKind, address uint16) bool {
	if !c.opts.BoundsCheck {
		return false
	}
	if c.trap == nil {
		c.trap = &TrapError{
			Kind:    kind,
			PC:      c.address,
			Opcode:  c.opcode,
			Address: address,
		}
	}
	return true
}

func (c *Chip8) read(address uint16) byte {
	if address > addressMask && c.fault(TrapMemory, address) {
		return 0
	}
	return c.Memory[address&addressMask]
}

func (c *Chip8) write(address uint16, value byte) {
	if address > addressMask && c.fault(TrapMemory, address) {
		return
	}
	c.Memory[address&addressMask] = value
}

func (c *Chip8) push(address uint16) {
	if c.SP >= StackSize && c.fault(TrapStackOverflow, uint16(c.SP)) {
		return
	}
	c.Stack[c.SP&stackMask] = address
	c.SP++
}

func (c *Chip8) pop() (uint16, bool) {
	if c.SP == 0 && c.fault(TrapStackUnderflow, 0) {
		return 0, false
	}
	c.SP--
	return c.Stack[c.SP&stackMask], true
}

func (c *Chip8) keyPressed(key byte) bool {
	if key > keyMask && c.fault(TrapKeypad, uint16(key)) {
		return false
	}
	return c.Keypad[key&keyMask]
}
