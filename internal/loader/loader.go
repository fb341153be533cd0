// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/chip8emu/internal/chip8"
)

// Load reads a CHIP-8 ROM file from disk. The file content is used verbatim
// as the program image, there is no header or container format. Empty files
// and files that do not fit into the program area are rejected.
func Load(filename string) ([]byte, error) {
	rom, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", filename, err)
	}

	if len(rom) == 0 {
		return nil, fmt.Errorf("file %s: %w", filename, ErrEmptyROM)
	}
	if len(rom) > chip8.MaxProgramSize {
		return nil, fmt.Errorf("file %s holds %d bytes, at most %d fit: %w",
			filename, len(rom), chip8.MaxProgramSize, chip8.ErrProgramTooLarge)
	}

	return rom, nil
}

// ErrEmptyROM is returned for ROM files without content.
var ErrEmptyROM = errors.New("ROM file is empty")
