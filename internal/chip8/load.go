package chip8

// opLDByte sets Vx to kk.
// Format: 6xkk
func (c *Chip8) opLDByte() {
	c.V[c.x()] = c.kk()
}

// opLDRegister sets Vx to Vy.
// Format: 8xy0
func (c *Chip8) opLDRegister() {
	c.V[c.x()] = c.V[c.y()]
}

// opLDI sets I to address nnn.
// Format: Annn
func (c *Chip8) opLDI() {
	c.I = c.nnn()
}

// opRND sets Vx to a random byte masked with kk.
// Format: Cxkk
func (c *Chip8) opRND() {
	c.V[c.x()] = byte(c.rng.UintN(256)) & c.kk()
}

// opLDVxDT sets Vx to the delay timer.
// Format: Fx07
func (c *Chip8) opLDVxDT() {
	c.V[c.x()] = c.DelayTimer
}

// opLDDTVx sets the delay timer to Vx.
// Format: Fx15
func (c *Chip8) opLDDTVx() {
	c.DelayTimer = c.V[c.x()]
}

// opLDSTVx sets the sound timer to Vx.
// Format: Fx18
func (c *Chip8) opLDSTVx() {
	c.SoundTimer = c.V[c.x()]
}
