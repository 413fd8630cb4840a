package chip8

// The flag register is written before the result. When Vx is VF the
// register therefore ends up holding the result, not the flag.

// opADDByte adds kk to Vx without touching the carry flag.
// Format: 7xkk
func (c *Chip8) opADDByte() {
	c.V[c.x()] += c.kk()
}

// opOR sets Vx to Vx OR Vy.
// Format: 8xy1
func (c *Chip8) opOR() {
	c.V[c.x()] |= c.V[c.y()]
}

// opAND sets Vx to Vx AND Vy.
// Format: 8xy2
func (c *Chip8) opAND() {
	c.V[c.x()] &= c.V[c.y()]
}

// opXOR sets Vx to Vx XOR Vy.
// Format: 8xy3
func (c *Chip8) opXOR() {
	c.V[c.x()] ^= c.V[c.y()]
}

// opADDRegister adds Vy to Vx, VF is set to 1 on carry.
// Format: 8xy4
func (c *Chip8) opADDRegister() {
	x, y := c.x(), c.y()
	sum := uint16(c.V[x]) + uint16(c.V[y])
	c.V[flagReg] = boolToFlag(sum > 0xFF)
	c.V[x] = byte(sum)
}

// opSUB subtracts Vy from Vx, VF is set to 1 if Vx is greater than Vy.
// Format: 8xy5
func (c *Chip8) opSUB() {
	x, y := c.x(), c.y()
	c.V[flagReg] = boolToFlag(c.V[x] > c.V[y])
	c.V[x] -= c.V[y]
}

// opSHR shifts Vx right by one, VF receives the shifted out bit.
// Format: 8xy6
func (c *Chip8) opSHR() {
	x := c.x()
	c.V[flagReg] = c.V[x] & 0x01
	c.V[x] >>= 1
}

// opSUBN sets Vx to Vy minus Vx, VF is set to 1 if Vy is greater than Vx.
// Format: 8xy7
func (c *Chip8) opSUBN() {
	x, y := c.x(), c.y()
	c.V[flagReg] = boolToFlag(c.V[y] > c.V[x])
	c.V[x] = c.V[y] - c.V[x]
}

// opSHL shifts Vx left by one, VF receives the shifted out bit.
// Format: 8xyE
func (c *Chip8) opSHL() {
	x := c.x()
	c.V[flagReg] = (c.V[x] & 0x80) >> 7
	c.V[x] <<= 1
}

func boolToFlag(b bool) byte {
	if b {
		return 1
	}
	return 0
}
