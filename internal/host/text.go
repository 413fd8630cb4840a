package host

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// TextDisplay keeps the last drawn frame and writes it as text on Close.
// It is used when running without a terminal UI.
type TextDisplay struct {
	writer io.Writer
	on     rune
	off    rune
	frame  chip8.Framebuffer
	frames int
}

// NewTextDisplay returns a display that renders lit pixels with the on
// glyph and unlit pixels with the off glyph.
func NewTextDisplay(writer io.Writer, on, off rune) *TextDisplay {
	return &TextDisplay{
		writer: writer,
		on:     on,
		off:    off,
	}
}

// Draw stores the frame.
func (d *TextDisplay) Draw(frame *chip8.Framebuffer) error {
	d.frame = *frame
	d.frames++
	return nil
}

// Frames returns the number of drawn frames.
func (d *TextDisplay) Frames() int {
	return d.frames
}

// Close writes the last drawn frame.
func (d *TextDisplay) Close() error {
	if _, err := io.WriteString(d.writer, Render(&d.frame, d.on, d.off)); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Render returns the frame as text with one line per pixel row.
func Render(frame *chip8.Framebuffer, on, off rune) string {
	var sb strings.Builder
	sb.Grow(chip8.ScreenHeight * (chip8.ScreenWidth + 1) * 3)

	for y := range chip8.ScreenHeight {
		for x := range chip8.ScreenWidth {
			if frame.Lit(x, y) {
				sb.WriteRune(on)
			} else {
				sb.WriteRune(off)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
