// Package pipeline orchestrates the emulation workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/terminal"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete emulation workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
	output   io.Writer // receives the screen in headless mode
}

// New creates a new emulation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
		output:   os.Stdout,
	}
}

// Execute runs the complete emulation pipeline: it reads the configuration
// file, detects the system, loads the ROM and runs the machine until the
// context is cancelled, the cycle limit is reached or the machine halts.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	config.Merge(&opts, cfg)

	system, err := p.detector.Detect(opts)
	if err != nil {
		return fmt.Errorf("detecting system: %w", err)
	}

	rom, err := p.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading rom: %w", err)
	}

	vm := chip8.New(p.logger, config.MachineOptions(opts))
	if err := vm.LoadROM(rom); err != nil {
		return fmt.Errorf("loading rom into memory: %w", err)
	}

	p.printInfo(opts, system, len(rom))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	devices, closers, err := p.createDevices(opts, cfg, cancel)
	if err != nil {
		return fmt.Errorf("creating devices: %w", err)
	}

	h := host.New(p.logger, vm, config.HostConfig(opts), devices)
	runErr := h.Run(ctx)

	// the terminal has to be restored before anything is logged
	if err := closeAll(closers); err != nil {
		p.logger.Warn("Closing devices failed", log.Err(err))
	}

	if !opts.Quiet {
		p.logger.Info("Machine stopped", log.Uint64("executed", h.Executed()))
	}
	if runErr != nil {
		return fmt.Errorf("running machine: %w", runErr)
	}
	return nil
}

// createDevices creates the display, keypad and speaker for the options.
// The returned closers release the devices in reverse order.
func (p *Pipeline) createDevices(opts options.Program, cfg *config.File,
	cancel context.CancelFunc) (host.Devices, []io.Closer, error) {

	var devices host.Devices
	var closers []io.Closer
	on, off := cfg.Glyphs()

	if opts.Headless {
		display := host.NewTextDisplay(p.output, on, off)
		devices.Display = display
		closers = append(closers, display)
	} else {
		keys, err := cfg.KeyMap()
		if err != nil {
			return devices, nil, fmt.Errorf("creating key map: %w", err)
		}

		term, err := terminal.New(p.logger, terminal.Config{
			On:   on,
			Off:  off,
			Keys: keys,
		}, cancel)
		if err != nil {
			return devices, nil, fmt.Errorf("creating terminal: %w", err)
		}
		devices.Display = term
		devices.Keypad = term
		closers = append(closers, term)
	}

	if opts.Sound {
		speaker, err := audio.New(audio.Config{
			Frequency: cfg.Sound.Frequency,
			Volume:    cfg.Sound.Volume,
		})
		if err != nil {
			p.logger.Warn("Sound output disabled", log.Err(err))
		} else {
			devices.Speaker = speaker
			closers = append(closers, speaker)
		}
	}

	return devices, closers, nil
}

// printInfo prints information about the ROM being run.
func (p *Pipeline) printInfo(opts options.Program, system arch.System, size int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Running Chip-8 ROM",
		log.String("file", opts.Input),
		log.Stringer("system", system),
		log.Int("size", size),
		log.Int("speed", opts.Speed),
	)
	if opts.Trap {
		p.logger.Info("Bounds checking enabled")
	}
}

func closeAll(closers []io.Closer) error {
	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
