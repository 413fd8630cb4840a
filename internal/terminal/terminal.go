// Package terminal implements the display and keypad of the host using
// termbox-go.
package terminal

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unicode"

	"github.com/nsf/termbox-go"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// DefaultRelease is the time a key is reported as pressed after its last
// key event. Terminals do not report key releases.
const DefaultRelease = 150 * time.Millisecond

// cellsPerPixel is the number of terminal columns used for a pixel, which
// keeps pixels roughly square.
const cellsPerPixel = 2

// Config contains the terminal settings.
type Config struct {
	On      rune          // glyph of a lit pixel
	Off     rune          // glyph of an unlit pixel
	Keys    map[rune]byte // host character to CHIP-8 key
	Release time.Duration
}

// Terminal renders the framebuffer into the terminal and translates key
// events into keypad state. Esc and Ctrl+C call the cancel function.
type Terminal struct {
	logger *log.Logger
	cfg    Config
	cancel context.CancelFunc
	now    func() time.Time

	mu      sync.Mutex
	pressed [chip8.KeyCount]time.Time // time of the last event per key

	done chan struct{}
}

// New initializes termbox and starts polling key events.
func New(logger *log.Logger, cfg Config, cancel context.CancelFunc) (*Terminal, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)

	t := newTerminal(logger, cfg, cancel)
	go t.pollEvents()
	return t, nil
}

func newTerminal(logger *log.Logger, cfg Config, cancel context.CancelFunc) *Terminal {
	if cfg.Release <= 0 {
		cfg.Release = DefaultRelease
	}
	return &Terminal{
		logger: logger,
		cfg:    cfg,
		cancel: cancel,
		now:    time.Now,
		done:   make(chan struct{}),
	}
}

// Draw renders the frame.
func (t *Terminal) Draw(frame *chip8.Framebuffer) error {
	for y := range chip8.ScreenHeight {
		for x := range chip8.ScreenWidth {
			glyph := t.cfg.Off
			if frame.Lit(x, y) {
				glyph = t.cfg.On
			}
			for i := range cellsPerPixel {
				termbox.SetCell(x*cellsPerPixel+i, y, glyph, termbox.ColorDefault, termbox.ColorDefault)
			}
		}
	}
	if err := termbox.Flush(); err != nil {
		return fmt.Errorf("flushing terminal: %w", err)
	}
	return nil
}

// Keys returns the keys that received a key event within the release time.
func (t *Terminal) Keys() [chip8.KeyCount]bool {
	now := t.now()
	var keys [chip8.KeyCount]bool

	t.mu.Lock()
	defer t.mu.Unlock()

	for key, pressed := range t.pressed {
		keys[key] = !pressed.IsZero() && now.Sub(pressed) < t.cfg.Release
	}
	return keys
}

// Close stops the event polling and restores the terminal.
func (t *Terminal) Close() error {
	termbox.Interrupt()
	<-t.done
	termbox.Close()
	return nil
}

func (t *Terminal) pollEvents() {
	defer close(t.done)

	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventKey:
			t.handleKey(ev.Key, ev.Ch)
		case termbox.EventError:
			t.logger.Error("Reading terminal event failed", log.Err(ev.Err))
			t.cancel()
			return
		case termbox.EventInterrupt:
			return
		}
	}
}

func (t *Terminal) handleKey(key termbox.Key, ch rune) {
	if key == termbox.KeyEsc || key == termbox.KeyCtrlC {
		t.logger.Debug("Quit requested")
		t.cancel()
		return
	}

	value, ok := t.cfg.Keys[unicode.ToLower(ch)]
	if !ok {
		return
	}

	t.mu.Lock()
	t.pressed[value&(chip8.KeyCount-1)] = t.now()
	t.mu.Unlock()
}
