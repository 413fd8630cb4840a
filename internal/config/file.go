package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/retroenv/retrochip8/internal/chip8"
)

// Default values used for settings missing in the configuration file.
const (
	DefaultPixelOn   = "█"
	DefaultPixelOff  = " "
	DefaultFrequency = 440.0
	DefaultVolume    = 0.2
)

// ErrInvalidConfig is returned for configuration values that can not be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// File represents the optional TOML configuration file.
type File struct {
	CPU     CPU               `toml:"cpu"`
	Display Display           `toml:"display"`
	Keypad  map[string]string `toml:"keypad"`
	Sound   Sound             `toml:"sound"`
}

// CPU contains machine settings. Command line flags take precedence.
type CPU struct {
	Speed int    `toml:"speed"`
	Seed  uint64 `toml:"seed"`
	Trap  bool   `toml:"trap"`
}

// Display contains the glyphs used to render pixels in the terminal.
type Display struct {
	On  string `toml:"on"`
	Off string `toml:"off"`
}

// Sound contains the tone settings of the speaker.
type Sound struct {
	Frequency float64 `toml:"frequency"`
	Volume    float64 `toml:"volume"`
}

// defaultKeypad maps the left side of a QWERTY keyboard to the hex keypad:
//
//	1 2 3 4      1 2 3 C
//	q w e r  ->  4 5 6 D
//	a s d f      7 8 9 E
//	z x c v      A 0 B F
var defaultKeypad = map[string]string{
	"1": "1", "2": "2", "3": "3", "4": "C",
	"q": "4", "w": "5", "e": "6", "r": "D",
	"a": "7", "s": "8", "d": "9", "f": "E",
	"z": "A", "x": "0", "c": "B", "v": "F",
}

// Default returns the configuration used when no file is given.
func Default() *File {
	f := &File{}
	f.applyDefaults()
	return f
}

// Load parses the configuration file at the given path. An empty path
// returns the default configuration.
func Load(path string) (*File, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile parses a TOML configuration file and fills in defaults for all
// settings that it does not contain.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	f.applyDefaults()

	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return &f, nil
}

func (f *File) applyDefaults() {
	if f.Display.On == "" {
		f.Display.On = DefaultPixelOn
	}
	if f.Display.Off == "" {
		f.Display.Off = DefaultPixelOff
	}
	if len(f.Keypad) == 0 {
		f.Keypad = make(map[string]string, len(defaultKeypad))
		for host, key := range defaultKeypad {
			f.Keypad[host] = key
		}
	}
	if f.Sound.Frequency == 0 {
		f.Sound.Frequency = DefaultFrequency
	}
	if f.Sound.Volume == 0 {
		f.Sound.Volume = DefaultVolume
	}
}

func (f *File) validate() error {
	if f.CPU.Speed < 0 {
		return fmt.Errorf("%w: cpu speed %d is negative", ErrInvalidConfig, f.CPU.Speed)
	}
	if utf8.RuneCountInString(f.Display.On) != 1 || utf8.RuneCountInString(f.Display.Off) != 1 {
		return fmt.Errorf("%w: display glyphs must be single characters", ErrInvalidConfig)
	}
	if f.Sound.Frequency < 0 {
		return fmt.Errorf("%w: sound frequency %g is negative", ErrInvalidConfig, f.Sound.Frequency)
	}
	if f.Sound.Volume < 0 || f.Sound.Volume > 1 {
		return fmt.Errorf("%w: sound volume %g is outside of 0..1", ErrInvalidConfig, f.Sound.Volume)
	}
	if _, err := f.KeyMap(); err != nil {
		return err
	}
	return nil
}

// Glyphs returns the runes used to render lit and unlit pixels.
func (f *File) Glyphs() (on, off rune) {
	on, _ = utf8.DecodeRuneInString(f.Display.On)
	off, _ = utf8.DecodeRuneInString(f.Display.Off)
	return on, off
}

// KeyMap converts the keypad section into a lookup of host characters to
// CHIP-8 keys.
func (f *File) KeyMap() (map[rune]byte, error) {
	keys := make(map[rune]byte, len(f.Keypad))
	for host, key := range f.Keypad {
		if utf8.RuneCountInString(host) != 1 {
			return nil, fmt.Errorf("%w: keypad host key '%s' must be a single character", ErrInvalidConfig, host)
		}
		value, err := strconv.ParseUint(key, 16, 8)
		if err != nil || value >= chip8.KeyCount {
			return nil, fmt.Errorf("%w: keypad key '%s' for '%s' is not a hex digit", ErrInvalidConfig, key, host)
		}
		r, _ := utf8.DecodeRuneInString(host)
		keys[r] = byte(value)
	}
	return keys, nil
}
