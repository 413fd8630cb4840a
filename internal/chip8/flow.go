package chip8

// skip advances PC past the next instruction. PC already points to the
// instruction following the current one when a handler runs.
func (c *Chip8) skip(condition bool) {
	if condition {
		c.PC += 2
	}
}

// opRET returns from a subroutine.
// Format: 00EE
func (c *Chip8) opRET() {
	if address, ok := c.pop(); ok {
		c.PC = address
	}
}

// opJP jumps to address nnn.
// Format: 1nnn
func (c *Chip8) opJP() {
	c.PC = c.nnn()
}

// opCALL pushes the return address and jumps to address nnn.
// Format: 2nnn
func (c *Chip8) opCALL() {
	c.push(c.PC)
	c.PC = c.nnn()
}

// opSEByte skips the next instruction if Vx equals kk.
// Format: 3xkk
func (c *Chip8) opSEByte() {
	c.skip(c.V[c.x()] == c.kk())
}

// opSNEByte skips the next instruction if Vx does not equal kk.
// Format: 4xkk
func (c *Chip8) opSNEByte() {
	c.skip(c.V[c.x()] != c.kk())
}

// opSERegister skips the next instruction if Vx equals Vy.
// Format: 5xy0
func (c *Chip8) opSERegister() {
	c.skip(c.V[c.x()] == c.V[c.y()])
}

// opSNERegister skips the next instruction if Vx does not equal Vy.
// Format: 9xy0
func (c *Chip8) opSNERegister() {
	c.skip(c.V[c.x()] != c.V[c.y()])
}

// opJPV0 jumps to address nnn plus V0.
// Format: Bnnn
func (c *Chip8) opJPV0() {
	c.PC = c.nnn() + uint16(c.V[0])
}
