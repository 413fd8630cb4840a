package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chip8.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	return path
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestDefault(t *testing.T) {
	f := Default()

	on, off := f.Glyphs()
	assert.Equal(t, '█', on)
	assert.Equal(t, ' ', off)
	assert.Equal(t, DefaultFrequency, f.Sound.Frequency)
	assert.Equal(t, DefaultVolume, f.Sound.Volume)

	keys, err := f.KeyMap()
	assert.NoError(t, err)
	assert.Len(t, keys, chip8.KeyCount)
	assert.Equal(t, byte(0xC), keys['4'])
	assert.Equal(t, byte(0x0), keys['x'])
	assert.Equal(t, byte(0xF), keys['v'])
}

func TestLoad_EmptyPath(t *testing.T) {
	f, err := Load("")
	assert.NoError(t, err)
	assert.Equal(t, *Default(), *f)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[cpu]
speed = 1000
seed = 42
trap = true

[display]
on = "#"
off = "."

[keypad]
"j" = "a"
"k" = "F"

[sound]
frequency = 880.0
volume = 0.5
`)

	f, err := LoadFile(path)
	assert.NoError(t, err)

	assert.Equal(t, CPU{Speed: 1000, Seed: 42, Trap: true}, f.CPU)
	on, off := f.Glyphs()
	assert.Equal(t, '#', on)
	assert.Equal(t, '.', off)
	assert.Equal(t, Sound{Frequency: 880, Volume: 0.5}, f.Sound)

	keys, err := f.KeyMap()
	assert.NoError(t, err)
	assert.Equal(t, map[rune]byte{'j': 0xA, 'k': 0xF}, keys)
}

func TestLoadFile_Defaults(t *testing.T) {
	f, err := LoadFile(writeConfig(t, "[cpu]\nspeed = 500\n"))
	assert.NoError(t, err)

	assert.Equal(t, 500, f.CPU.Speed)
	assert.Equal(t, DefaultPixelOn, f.Display.On)
	assert.Equal(t, DefaultPixelOff, f.Display.Off)
	assert.Len(t, f.Keypad, chip8.KeyCount)
	assert.Equal(t, DefaultFrequency, f.Sound.Frequency)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile("/nonexistent/chip8.toml")
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "[cpu\nspeed = 1"))
		assert.ErrorContains(t, err, "parsing config file")
	})

	tests := []struct {
		name    string
		content string
	}{
		{"negative speed", "[cpu]\nspeed = -1\n"},
		{"long glyph", "[display]\non = \"##\"\n"},
		{"volume too high", "[sound]\nvolume = 2.0\n"},
		{"negative frequency", "[sound]\nfrequency = -440.0\n"},
		{"key is not a hex digit", "[keypad]\n\"q\" = \"g\"\n"},
		{"key out of range", "[keypad]\n\"q\" = \"10\"\n"},
		{"host key too long", "[keypad]\n\"up\" = \"2\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.content))
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestMerge(t *testing.T) {
	f := &File{CPU: CPU{Speed: 1000, Seed: 42, Trap: true}}

	t.Run("file values replace defaults", func(t *testing.T) {
		opts := options.New()
		Merge(&opts, f)

		assert.Equal(t, 1000, opts.Speed)
		assert.Equal(t, uint64(42), opts.Seed)
		assert.True(t, opts.Trap)
	})

	t.Run("flags take precedence", func(t *testing.T) {
		opts := options.New()
		opts.Speed = 300
		opts.SetExplicit(options.SpeedFlag)
		opts.Seed = 7
		opts.SetExplicit(options.SeedFlag)
		Merge(&opts, f)

		assert.Equal(t, 300, opts.Speed)
		assert.Equal(t, uint64(7), opts.Seed)
		assert.True(t, opts.Trap)
	})

	t.Run("flags passed with default values", func(t *testing.T) {
		opts := options.New()
		opts.SetExplicit(options.SpeedFlag)
		opts.SetExplicit(options.TrapFlag)
		Merge(&opts, f)

		assert.Equal(t, options.DefaultSpeed, opts.Speed)
		assert.False(t, opts.Trap)
		assert.Equal(t, uint64(42), opts.Seed)
	})

	t.Run("unset file values keep defaults", func(t *testing.T) {
		opts := options.New()
		Merge(&opts, Default())

		assert.Equal(t, options.DefaultSpeed, opts.Speed)
		assert.Equal(t, uint64(0), opts.Seed)
		assert.False(t, opts.Trap)
	})
}

func TestMachineOptions(t *testing.T) {
	opts := options.New()
	opts.Trap = true
	opts.Debug = true
	opts.Seed = 9
	opts.Cycles = 100

	assert.Equal(t, chip8.Options{BoundsCheck: true, Trace: true, Seed: 9}, MachineOptions(opts))
	assert.Equal(t, host.Config{Speed: options.DefaultSpeed, Cycles: 100}, HostConfig(opts))
}
