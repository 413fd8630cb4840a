package chip8

// opADDI adds Vx to I. No flag is set and I is not limited to 12 bits.
// Format: Fx1E
func (c *Chip8) opADDI() {
	c.I += uint16(c.V[c.x()])
}

// opLDF points I at the font sprite of the digit in Vx.
// Format: Fx29
func (c *Chip8) opLDF() {
	c.I = FontAddress(c.V[c.x()])
}

// opLDB stores the decimal digits of Vx at I, I+1 and I+2,
// hundreds first.
// Format: Fx33
func (c *Chip8) opLDB() {
	value := c.V[c.x()]
	c.write(c.I, value/100)
	c.write(c.I+1, value/10%10)
	c.write(c.I+2, value%10)
}

// opStore stores the registers V0 through Vx in memory starting at I.
// I is not modified.
// Format: Fx55
func (c *Chip8) opStore() {
	last := uint16(c.x())
	for i := uint16(0); i <= last; i++ {
		c.write(c.I+i, c.V[i])
	}
}

// opLoad reads the registers V0 through Vx from memory starting at I.
// I is not modified.
// Format: Fx65
func (c *Chip8) opLoad() {
	last := uint16(c.x())
	for i := uint16(0); i <= last; i++ {
		c.V[i] = c.read(c.I + i)
	}
}
