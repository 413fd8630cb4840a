// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/arch/system/nes/cartridge"
)

// ErrEmptyROM is returned for ROM files without content.
var ErrEmptyROM = errors.New("rom file is empty")

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a raw CHIP-8 program. Missing files keep fs.ErrNotExist in the
// error chain, files larger than the program memory return
// chip8.ErrROMTooLarge.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("reading file info %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("reading file %s: not a regular file", path)
	}

	size := info.Size()
	switch {
	case size == 0:
		return nil, fmt.Errorf("reading file %s: %w", path, ErrEmptyROM)
	case size > chip8.MaxROMSize:
		return nil, fmt.Errorf("reading file %s: %w: %d bytes, maximum is %d",
			path, chip8.ErrROMTooLarge, size, chip8.MaxROMSize)
	}

	cart, err := cartridge.LoadBuffer(file)
	if err != nil {
		return nil, fmt.Errorf("loading rom: %w", err)
	}

	// LoadBuffer pads the PRG data to a full bank
	rom := cart.PRG
	if int64(len(rom)) > size {
		rom = rom[:size]
	}
	return rom, nil
}
