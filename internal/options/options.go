// Package options contains the program options.
package options

// DefaultSpeed is the default number of instructions executed per second.
const DefaultSpeed = 700

// Names of the machine flags that the configuration file can also set.
const (
	SpeedFlag = "speed"
	SeedFlag  = "seed"
	TrapFlag  = "trap"
)

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	Config string `flag:"c" usage:"TOML configuration file"`
}

// Flags contains behavior options.
type Flags struct {
	System   string `flag:"s" usage:"target system: chip8 (default: auto-detect)"`
	Headless bool   `flag:"headless" usage:"run without terminal UI and print the screen on exit"`
	Sound    bool   `flag:"sound" usage:"play a tone while the sound timer is active"`
	Debug    bool   `flag:"debug" usage:"enable debug logging and instruction traces"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// MachineFlags contains options of the emulated machine.
type MachineFlags struct {
	Speed  int    `flag:"speed" usage:"instructions per second" default:"700"`
	Cycles uint64 `flag:"cycles" usage:"stop after the given number of instructions, 0 runs forever"`
	Seed   uint64 `flag:"seed" usage:"random number generator seed, 0 uses the current time"`
	Trap   bool   `flag:"trap" usage:"halt on out of range memory, stack and framebuffer access"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	MachineFlags

	// Explicit contains the machine flags passed on the command line.
	Explicit map[string]bool
}

// SetExplicit marks a flag as passed on the command line.
func (p *Program) SetExplicit(name string) {
	if p.Explicit == nil {
		p.Explicit = map[string]bool{}
	}
	p.Explicit[name] = true
}

// New returns program options with all defaults set.
func New() Program {
	return Program{
		MachineFlags: MachineFlags{
			Speed: DefaultSpeed,
		},
	}
}
