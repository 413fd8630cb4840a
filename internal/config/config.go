// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Merge applies the machine settings of the configuration file to all
// options whose flag was not passed on the command line.
func Merge(opts *options.Program, f *File) {
	if !opts.Explicit[options.SpeedFlag] && f.CPU.Speed > 0 {
		opts.Speed = f.CPU.Speed
	}
	if !opts.Explicit[options.SeedFlag] && f.CPU.Seed != 0 {
		opts.Seed = f.CPU.Seed
	}
	if !opts.Explicit[options.TrapFlag] && f.CPU.Trap {
		opts.Trap = true
	}
}

// MachineOptions returns the interpreter options for the program options.
func MachineOptions(opts options.Program) chip8.Options {
	return chip8.Options{
		BoundsCheck: opts.Trap,
		Trace:       opts.Debug,
		Seed:        opts.Seed,
	}
}

// HostConfig returns the scheduler settings for the program options.
func HostConfig(opts options.Program) host.Config {
	return host.Config{
		Speed:  opts.Speed,
		Cycles: opts.Cycles,
	}
}
