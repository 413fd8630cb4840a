package chip8

const spriteWidth = 8

// opCLS clears the framebuffer.
// Format: 00E0
func (c *Chip8) opCLS() {
	c.Video = Framebuffer{}
}

// opDRW XORs an n byte sprite from memory at I onto the framebuffer at
// position Vx, Vy. VF is set to 1 if any lit pixel was turned off.
//
// Only the start position wraps around the screen. The pixels of a sprite
// crossing the right edge continue in the storage of the next row, pixels
// beyond the last row are dropped.
// Format: Dxyn
func (c *Chip8) opDRW() {
	xPos := uint16(c.V[c.x()]) % ScreenWidth
	yPos := uint16(c.V[c.y()]) % ScreenHeight
	height := uint16(c.n())

	c.V[flagReg] = 0

	for row := range height {
		sprite := c.read(c.I + row)

		for col := range uint16(spriteWidth) {
			if sprite&(0x80>>col) == 0 {
				continue
			}

			cell := (yPos+row)*ScreenWidth + xPos + col
			if int(cell) >= len(c.Video) {
				if c.fault(TrapVideo, cell) {
					return
				}
				continue
			}

			if c.Video[cell] == PixelOn {
				c.V[flagReg] = 1
			}
			c.Video[cell] ^= PixelOn
		}
	}
}
