// Package host runs a CHIP-8 machine in real time. It executes instructions
// at the configured rate, ticks the timers at 60Hz and connects the machine
// to a display, a keypad and a speaker.
package host

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// TimerFrequency is the rate in Hz of the delay and sound timers. The host
// also polls the keypad and refreshes the display at this rate.
const TimerFrequency = 60

// Display shows the framebuffer of the machine.
type Display interface {
	Draw(frame *chip8.Framebuffer) error
}

// Keypad reports the pressed state of the 16 CHIP-8 keys.
type Keypad interface {
	Keys() [chip8.KeyCount]bool
}

// Speaker plays a tone while the sound timer of the machine is active.
type Speaker interface {
	StartSound()
	StopSound()
}

// Devices contains the optional peripherals of the host. Nil devices are
// skipped.
type Devices struct {
	Display Display
	Keypad  Keypad
	Speaker Speaker
}

// Config contains the scheduler settings.
type Config struct {
	Speed  int    // instructions per second
	Cycles uint64 // stop after this many instructions, 0 runs until cancelled
}

// Host schedules the execution of a machine.
type Host struct {
	logger  *log.Logger
	vm      *chip8.Chip8
	cfg     Config
	devices Devices

	executed uint64
	credit   int // instructions per second accumulated below one instruction per frame
	sounding bool
	drawn    bool
	frame    chip8.Framebuffer
}

// New returns a host for the given machine.
func New(logger *log.Logger, vm *chip8.Chip8, cfg Config, devices Devices) *Host {
	return &Host{
		logger:  logger,
		vm:      vm,
		cfg:     cfg,
		devices: devices,
	}
}

// Executed returns the number of instructions executed so far.
func (h *Host) Executed() uint64 {
	return h.executed
}

// Run emulates frames at 60Hz until the context is cancelled, the cycle
// limit is reached or the machine halts. A halted machine is returned as
// error wrapping the *chip8.TrapError.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / TimerFrequency)
	defer ticker.Stop()
	defer h.silence()

	h.logger.Debug("Starting machine",
		log.Int("speed", h.cfg.Speed),
		log.Uint64("cycles", h.cfg.Cycles))

	for {
		done, err := h.Frame()
		if err != nil {
			return err
		}
		if done {
			h.logger.Info("Cycle limit reached", log.Uint64("executed", h.executed))
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Frame emulates a single 60Hz frame: it reads the keypad, executes the
// instructions of the frame, ticks the timers, switches the speaker and
// draws the framebuffer if it changed. It returns true once the cycle limit
// is reached.
func (h *Host) Frame() (bool, error) {
	if h.devices.Keypad != nil {
		h.vm.SetKeys(h.devices.Keypad.Keys())
	}

	h.credit += h.cfg.Speed
	count := h.credit / TimerFrequency
	h.credit %= TimerFrequency

	var done bool
	var err error
	for range count {
		done, err = h.Step()
		if done {
			break
		}
	}

	if !done {
		h.vm.TickTimers()
		h.updateSound()
	}

	if drawErr := h.draw(); drawErr != nil && err == nil {
		err = drawErr
	}
	return done, err
}

// Step executes a single instruction. It returns true once the cycle limit
// is reached or the machine halted.
func (h *Host) Step() (bool, error) {
	if h.limitReached() {
		return true, nil
	}

	h.vm.Cycle()
	h.executed++

	if h.vm.Halted() {
		return true, fmt.Errorf("machine halted: %w", h.vm.Err())
	}
	return h.limitReached(), nil
}

func (h *Host) limitReached() bool {
	return h.cfg.Cycles > 0 && h.executed >= h.cfg.Cycles
}

func (h *Host) updateSound() {
	active := h.vm.SoundActive()
	if active == h.sounding {
		return
	}
	h.sounding = active

	if h.devices.Speaker == nil {
		return
	}
	if active {
		h.devices.Speaker.StartSound()
	} else {
		h.devices.Speaker.StopSound()
	}
}

func (h *Host) silence() {
	if !h.sounding {
		return
	}
	h.sounding = false
	if h.devices.Speaker != nil {
		h.devices.Speaker.StopSound()
	}
}

func (h *Host) draw() error {
	if h.devices.Display == nil {
		return nil
	}
	if h.drawn && h.frame == h.vm.Video {
		return nil
	}

	h.frame = h.vm.Video
	h.drawn = true
	if err := h.devices.Display.Draw(&h.frame); err != nil {
		return fmt.Errorf("drawing frame: %w", err)
	}
	return nil
}
