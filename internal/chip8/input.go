package chip8

// waitKeyCount is the number of keys Fx0A scans, key F is never reported.
const waitKeyCount = 0xF

// opSKP skips the next instruction if the key in Vx is pressed.
// Format: Ex9E
func (c *Chip8) opSKP() {
	c.skip(c.keyPressed(c.V[c.x()]))
}

// opSKNP skips the next instruction if the key in Vx is not pressed.
// Format: ExA1
func (c *Chip8) opSKNP() {
	key := c.V[c.x()]
	pressed := c.keyPressed(key)
	if c.trap != nil {
		return
	}
	c.skip(!pressed)
}

// opLDVxK waits for a key press and stores the key in Vx. While no key is
// pressed PC is moved back to this instruction, so the host keeps
// executing it on every cycle.
// Format: Fx0A
func (c *Chip8) opLDVxK() {
	for key := range byte(waitKeyCount) {
		if c.Keypad[key] {
			c.V[c.x()] = key
			return
		}
	}
	c.PC -= 2
}
