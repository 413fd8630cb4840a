package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestJP(t *testing.T) {
	c := newTestMachine(t)
	execute(c, 0x1ABC)
	assert.Equal(t, uint16(0xABC), c.PC)
}

func TestJPV0(t *testing.T) {
	c := newTestMachine(t)
	c.V[0] = 0x10
	execute(c, 0xB300)
	assert.Equal(t, uint16(0x310), c.PC)
}

func TestCALLAndRET(t *testing.T) {
	c := newTestMachine(t)
	c.PC = 0x234

	execute(c, 0x2400)
	assert.Equal(t, uint16(0x400), c.PC)
	assert.Equal(t, uint8(1), c.SP)
	assert.Equal(t, uint16(0x236), c.Stack[0])

	execute(c, 0x00EE)
	assert.Equal(t, uint16(0x236), c.PC)
	assert.Equal(t, uint8(0), c.SP)
}

func TestCALL_Nested(t *testing.T) {
	c := newTestMachine(t)

	for depth := range StackSize {
		execute(c, 0x2300+uint16(depth)*4)
	}
	assert.Equal(t, uint8(StackSize), c.SP)

	for depth := StackSize - 1; depth >= 0; depth-- {
		execute(c, 0x00EE)
		assert.Equal(t, c.Stack[depth], c.PC)
	}
	assert.Equal(t, uint8(0), c.SP)
	assert.Equal(t, uint16(ProgramStart+2), c.PC)
}

func TestSkipInstructions(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		v1, v2 byte
		skip   bool
	}{
		{"SE byte equal", 0x3142, 0x42, 0, true},
		{"SE byte not equal", 0x3142, 0x41, 0, false},
		{"SNE byte equal", 0x4142, 0x42, 0, false},
		{"SNE byte not equal", 0x4142, 0x41, 0, true},
		{"SE register equal", 0x5120, 7, 7, true},
		{"SE register not equal", 0x5120, 7, 8, false},
		{"SNE register equal", 0x9120, 7, 7, false},
		{"SNE register not equal", 0x9120, 7, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestMachine(t)
			c.V[1] = tt.v1
			c.V[2] = tt.v2

			execute(c, tt.opcode)

			want := uint16(ProgramStart + 2)
			if tt.skip {
				want += 2
			}
			assert.Equal(t, want, c.PC)
		})
	}
}
