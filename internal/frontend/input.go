package frontend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// speedStep is the instructions-per-tick change per speed key press.
const speedStep = 5

// keyMap maps the left hand block of a QWERTY keyboard to the 16 CHIP-8
// keys:
//
//	1 2 3 4
//	Q W E R
//	A S D F
//	Z X C V
var keyMap = [chip8.KeyCount]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyR,
	ebiten.KeyA, ebiten.KeyS, ebiten.KeyD, ebiten.KeyF,
	ebiten.KeyZ, ebiten.KeyX, ebiten.KeyC, ebiten.KeyV,
}

// handleInput delivers keypad transitions to the machine and handles the
// host-level controls: space toggles pause, plus and minus adjust the
// emulation speed.
func (f *Frontend) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		paused := f.machine.Mode() != chip8.ModePaused
		f.machine.SetPaused(paused)
		f.logger.Debug("pause toggled", log.Stringer("mode", f.machine.Mode()))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		f.runner.SetInstructionsPerTick(f.runner.InstructionsPerTick() + speedStep)
		f.logger.Debug("speed changed", log.Int("instructions_per_tick", f.runner.InstructionsPerTick()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		f.runner.SetInstructionsPerTick(f.runner.InstructionsPerTick() - speedStep)
		f.logger.Debug("speed changed", log.Int("instructions_per_tick", f.runner.InstructionsPerTick()))
	}

	for index, key := range keyMap {
		switch {
		case inpututil.IsKeyJustPressed(key):
			f.machine.KeyDown(f.keypad, byte(index))
		case inpututil.IsKeyJustReleased(key):
			f.machine.KeyUp(f.keypad, byte(index))
		}
	}
}
