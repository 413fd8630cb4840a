// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	return parse(os.Args)
}

func parse(arguments []string) (options.Program, error) {
	flags := flag.NewFlagSet(arguments[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	opts := options.New()
	readOptionFlags(flags, &opts)

	err := flags.Parse(arguments[1:])
	args := flags.Args()
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case options.SpeedFlag, options.SeedFlag, options.TrapFlag:
			opts.SetExplicit(f.Name)
		}
	})

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	if e.msg == "" {
		return "invalid usage"
	}
	return e.msg
}

// ShowUsage prints the error message if set and the flag defaults.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: retrochip8 [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Speed <= 0 {
		return fmt.Errorf("invalid speed %d: must be a positive number of instructions per second", opts.Speed)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Config, "c", "", "name of the TOML configuration file")
	flags.StringVar(&opts.System, "s", "", "system to emulate (chip8) - if not auto-detected from file extension")
	flags.IntVar(&opts.Speed, options.SpeedFlag, options.DefaultSpeed, "number of instructions executed per second")
	flags.Uint64Var(&opts.Cycles, "cycles", 0, "stop after the given number of instructions, 0 runs until interrupted")
	flags.Uint64Var(&opts.Seed, options.SeedFlag, 0, "seed of the random number generator, 0 uses the current time")
	flags.BoolVar(&opts.Trap, options.TrapFlag, false, "halt on out of range memory, stack, keypad and framebuffer access")
	flags.BoolVar(&opts.Headless, "headless", false, "run without terminal UI and print the screen on exit")
	flags.BoolVar(&opts.Sound, "sound", false, "play a tone while the sound timer is active")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging and instruction traces")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
