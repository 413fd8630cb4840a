// Package chip8 implements the CHIP-8 interpreter core.
//
// # Machine Overview
//
// CHIP-8 is an interpreted programming language from the 1970s. The virtual
// machine has 4KB of memory, 16 general-purpose 8-bit registers (V0-VF),
// a 16-bit index register, a 16 entry call stack, two 60Hz timers, a 16 key
// hexadecimal keypad and a 64x32 monochrome display.
//
// # Memory Layout
//
//	0x000-0x04F: unused
//	FontsetStart-0x09F: built-in hexadecimal digit sprites (16 glyphs x 5 bytes)
//	0x0A0-0x1FF: unused
//	ProgramStart-0xFFF: program and data area
//
// # Execution Model
//
// The host loads a program with LoadROM and then calls Cycle repeatedly.
// Every Cycle fetches the big-endian instruction word at PC, advances PC by
// two and dispatches the word to one of the 35 instruction handlers. Jumps
// assign PC directly, skips add another two.
//
// Timers are not touched by Cycle. The host calls TickTimers at 60Hz, sets
// the keypad state before each Cycle and reads Video and SoundTimer to
// render and play sound.
//
// # Error Behavior
//
// Programs cannot cause runtime errors: unknown instruction words are no-ops,
// memory addresses wrap inside the 4KB address space, the stack pointer
// wraps inside the 16 stack slots and sprite pixels outside the framebuffer
// are dropped. With Options.BoundsCheck enabled the first such access halts
// the machine instead and Err returns a *TrapError describing it.
package chip8
