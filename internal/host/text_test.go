package host

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestRender(t *testing.T) {
	var frame chip8.Framebuffer
	frame[0] = chip8.PixelOn
	frame[chip8.ScreenWidth+2] = chip8.PixelOn

	lines := strings.Split(Render(&frame, '#', '.'), "\n")

	assert.Len(t, lines, chip8.ScreenHeight+1)
	assert.Equal(t, "#"+strings.Repeat(".", chip8.ScreenWidth-1), lines[0])
	assert.Equal(t, "..#"+strings.Repeat(".", chip8.ScreenWidth-3), lines[1])
	assert.Equal(t, strings.Repeat(".", chip8.ScreenWidth), lines[chip8.ScreenHeight-1])
	assert.Equal(t, "", lines[chip8.ScreenHeight])
}

func TestTextDisplay(t *testing.T) {
	var buf bytes.Buffer
	display := NewTextDisplay(&buf, '#', ' ')

	var frame chip8.Framebuffer
	frame[5] = chip8.PixelOn
	assert.NoError(t, display.Draw(&frame))

	// later changes of the source frame do not affect the stored copy
	frame[6] = chip8.PixelOn

	assert.Equal(t, 1, display.Frames())
	assert.Empty(t, buf.String())

	assert.NoError(t, display.Close())
	first := strings.SplitN(buf.String(), "\n", 2)[0]
	assert.Equal(t, "     #"+strings.Repeat(" ", chip8.ScreenWidth-6), first)
}
