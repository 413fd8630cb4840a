package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// executeRegisters runs an 8xyn instruction with V1=vx and V2=vy.
func executeRegisters(c *Chip8, opcode uint16, vx, vy byte) {
	c.PC = ProgramStart
	c.V[1] = vx
	c.V[2] = vy
	c.V[flagReg] = 0xAA
	execute(c, opcode)
}

func TestADDRegister_AllOperands(t *testing.T) {
	c := newTestMachine(t)

	for vx := range 256 {
		for vy := range 256 {
			executeRegisters(c, 0x8124, byte(vx), byte(vy))

			wantFlag := byte(0)
			if vx+vy > 255 {
				wantFlag = 1
			}
			if c.V[flagReg] != wantFlag || c.V[1] != byte(vx+vy) {
				t.Fatalf("ADD %d+%d: got V1=%d VF=%d", vx, vy, c.V[1], c.V[flagReg])
			}
		}
	}
}

func TestSUB_AllOperands(t *testing.T) {
	c := newTestMachine(t)

	for vx := range 256 {
		for vy := range 256 {
			executeRegisters(c, 0x8125, byte(vx), byte(vy))

			wantFlag := byte(0)
			if vx > vy {
				wantFlag = 1
			}
			if c.V[flagReg] != wantFlag || c.V[1] != byte(vx-vy) {
				t.Fatalf("SUB %d-%d: got V1=%d VF=%d", vx, vy, c.V[1], c.V[flagReg])
			}
		}
	}
}

func TestSUBN_AllOperands(t *testing.T) {
	c := newTestMachine(t)

	for vx := range 256 {
		for vy := range 256 {
			executeRegisters(c, 0x8127, byte(vx), byte(vy))

			wantFlag := byte(0)
			if vy > vx {
				wantFlag = 1
			}
			if c.V[flagReg] != wantFlag || c.V[1] != byte(vy-vx) {
				t.Fatalf("SUBN %d-%d: got V1=%d VF=%d", vy, vx, c.V[1], c.V[flagReg])
			}
		}
	}
}

func TestShifts_AllOperands(t *testing.T) {
	c := newTestMachine(t)

	for vx := range 256 {
		executeRegisters(c, 0x8126, byte(vx), 0)
		if c.V[flagReg] != byte(vx)&1 || c.V[1] != byte(vx)>>1 {
			t.Fatalf("SHR %d: got V1=%d VF=%d", vx, c.V[1], c.V[flagReg])
		}

		executeRegisters(c, 0x812E, byte(vx), 0)
		if c.V[flagReg] != byte(vx)>>7 || c.V[1] != byte(vx)<<1 {
			t.Fatalf("SHL %d: got V1=%d VF=%d", vx, c.V[1], c.V[flagReg])
		}
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		opcode   uint16
		vx, vy   byte
		wantVx   byte
		wantFlag byte // 0xAA means untouched
	}{
		{"ADD byte", 0x71FF, 0x02, 0, 0x01, 0xAA},
		{"ADD byte no overflow", 0x7110, 0x20, 0, 0x30, 0xAA},
		{"LD register", 0x8120, 0x11, 0x22, 0x22, 0xAA},
		{"OR", 0x8121, 0xF0, 0x0F, 0xFF, 0xAA},
		{"AND", 0x8122, 0xF3, 0x3F, 0x33, 0xAA},
		{"XOR", 0x8123, 0xFF, 0x0F, 0xF0, 0xAA},
		{"ADD carry", 0x8124, 0xFF, 0x01, 0x00, 1},
		{"ADD exact 255", 0x8124, 0xFE, 0x01, 0xFF, 0},
		{"SUB equal operands", 0x8125, 0x10, 0x10, 0x00, 0},
		{"SUB borrow", 0x8125, 0x01, 0x02, 0xFF, 0},
		{"SHR odd", 0x8126, 0x03, 0, 0x01, 1},
		{"SUBN equal operands", 0x8127, 0x10, 0x10, 0x00, 0},
		{"SHL high bit", 0x812E, 0x81, 0, 0x02, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestMachine(t)
			executeRegisters(c, tt.opcode, tt.vx, tt.vy)

			assert.Equal(t, tt.wantVx, c.V[1])
			assert.Equal(t, tt.wantFlag, c.V[flagReg])
			assert.Equal(t, uint16(ProgramStart+2), c.PC)
		})
	}
}

func TestArithmetic_FlagRegisterAsOperand(t *testing.T) {
	// VF is written before the result, so the result wins.
	c := newTestMachine(t)
	c.V[flagReg] = 0x10
	c.V[1] = 0x02

	execute(c, 0x8F14)

	assert.Equal(t, byte(0x12), c.V[flagReg])
}

func TestRND(t *testing.T) {
	c := newTestMachine(t)

	for range 64 {
		c.PC = ProgramStart
		execute(c, 0xC30F)
		assert.Equal(t, byte(0), c.V[3]&0xF0)
	}

	c.PC = ProgramStart
	execute(c, 0xC300)
	assert.Equal(t, byte(0), c.V[3])
}

func TestRND_Seeded(t *testing.T) {
	a := New(nil, Options{Seed: 42})
	b := New(nil, Options{Seed: 42})

	for range 16 {
		execute(a, 0xC0FF)
		execute(b, 0xC0FF)
		assert.Equal(t, a.V[0], b.V[0])
	}
}
