package chip8

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// CHIP-8 machine dimensions.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096

	// ProgramStart is the memory address where programs are loaded and
	// where execution begins.
	ProgramStart = 0x200

	// MaxROMSize is the largest program that fits into memory.
	MaxROMSize = MemorySize - ProgramStart

	RegisterCount = 16
	StackSize     = 16
	KeyCount      = 16

	ScreenWidth  = 64
	ScreenHeight = 32
)

// Framebuffer cell values.
const (
	PixelOff uint32 = 0x00000000
	PixelOn  uint32 = 0xFFFFFFFF
)

const (
	addressMask = MemorySize - 1
	stackMask   = StackSize - 1
	keyMask     = KeyCount - 1
	flagReg     = 0xF
)

// ErrROMTooLarge is returned when a program does not fit into the program area.
var ErrROMTooLarge = errors.New("rom does not fit into program memory")

// Framebuffer is the 64x32 display in row-major order. Every cell is either
// PixelOn or PixelOff.
type Framebuffer [ScreenWidth * ScreenHeight]uint32

// Lit returns whether the pixel at the given screen coordinate is on.
// Coordinates outside of the screen are never lit.
func (f *Framebuffer) Lit(x, y int) bool {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return false
	}
	return f[y*ScreenWidth+x] == PixelOn
}

// Options controls optional interpreter behavior.
type Options struct {
	// BoundsCheck halts the machine on the first out of range memory,
	// stack, keypad or framebuffer access instead of wrapping silently.
	BoundsCheck bool
	// Trace logs every executed instruction at debug level.
	Trace bool
	// Seed initializes the random number generator used by RND.
	// A zero seed uses the current time.
	Seed uint64
}

// Chip8 is the complete state of a CHIP-8 virtual machine.
// The exported fields may be read and modified by the host between cycles.
type Chip8 struct {
	// Memory is the 4KB address space including the font sprites.
	Memory [MemorySize]byte
	// V contains the general purpose registers V0-VF. VF is the flag register.
	V [RegisterCount]byte
	// I is the index register used by memory and sprite instructions.
	I uint16
	// PC is the address of the next instruction to fetch.
	PC uint16
	// Stack holds the return addresses of subroutine calls.
	Stack [StackSize]uint16
	// SP is the index of the next free stack slot.
	SP uint8

	DelayTimer byte
	SoundTimer byte

	// Keypad is the pressed state of the keys 0x0-0xF.
	Keypad [KeyCount]bool
	// Video is the display written by CLS and DRW.
	Video Framebuffer

	opcode  uint16 // instruction word of the current cycle
	address uint16 // address the current instruction was fetched from

	logger *log.Logger
	opts   Options
	trace  bool
	rng    *rand.Rand
	trap   *TrapError
}

// New returns an initialized machine with the font loaded and the program
// counter at ProgramStart. The logger is only used for instruction traces
// and may be nil when tracing is disabled.
func New(logger *log.Logger, opts Options) *Chip8 {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	c := &Chip8{
		logger: logger,
		opts:   opts,
		trace:  opts.Trace && logger != nil,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
	c.Reset()
	return c
}

// Reset restores the power-on state. The loaded program is cleared.
func (c *Chip8) Reset() {
	c.Memory = [MemorySize]byte{}
	copy(c.Memory[FontsetStart:], fontset[:])

	c.V = [RegisterCount]byte{}
	c.I = 0
	c.PC = ProgramStart
	c.Stack = [StackSize]uint16{}
	c.SP = 0
	c.DelayTimer = 0
	c.SoundTimer = 0
	c.Keypad = [KeyCount]bool{}
	c.Video = Framebuffer{}
	c.opcode = 0
	c.address = 0
	c.trap = nil
}

// LoadROM copies a program into memory starting at ProgramStart.
// Programs larger than MaxROMSize are rejected and leave memory untouched.
func (c *Chip8) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrROMTooLarge, len(rom), MaxROMSize)
	}
	copy(c.Memory[ProgramStart:], rom)
	return nil
}

// TickTimers decrements the delay and sound timers towards zero.
// The host calls it at 60Hz independent of the instruction rate.
func (c *Chip8) TickTimers() {
	if c.DelayTimer > 0 {
		c.DelayTimer--
	}
	if c.SoundTimer > 0 {
		c.SoundTimer--
	}
}

// SoundActive returns whether the host should currently play a tone.
func (c *Chip8) SoundActive() bool {
	return c.SoundTimer > 0
}

// setKey sets the pressed state of a single key.
func (c *Chip8) setKey(key byte, pressed bool) {
	c.Keypad[key&keyMask] = pressed
}

// SetKeys replaces the complete keypad state.
func (c *Chip8) SetKeys(keys [KeyCount]bool) {
	c.Keypad = keys
}

// pixel returns whether the pixel at the given screen coordinate is lit.
func (c *Chip8) pixel(x, y int) bool {
	return c.Video.Lit(x, y)
}

// Halted returns whether a bounds check violation stopped the machine.
func (c *Chip8) Halted() bool {
	return c.trap != nil
}

// Err returns the trap that halted the machine or nil.
func (c *Chip8) Err() error {
	if c.trap == nil {
		return nil
	}
	return c.trap
}

// x returns the register index encoded in bits 11-8 of the instruction.
func (c *Chip8) x() byte {
	return byte((c.opcode & 0x0F00) >> 8)
}

// y returns the register index encoded in bits 7-4 of the instruction.
func (c *Chip8) y() byte {
	return byte((c.opcode & 0x00F0) >> 4)
}

// kk returns the immediate byte encoded in bits 7-0 of the instruction.
func (c *Chip8) kk() byte {
	return byte(c.opcode & 0x00FF)
}

// nnn returns the address encoded in bits 11-0 of the instruction.
func (c *Chip8) nnn() uint16 {
	return c.opcode & 0x0FFF
}

// n returns the nibble encoded in bits 3-0 of the instruction.
func (c *Chip8) n() byte {
	return byte(c.opcode & 0x000F)
}
