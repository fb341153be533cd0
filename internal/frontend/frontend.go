// Package frontend presents the emulator in a desktop window: it renders
// the display surface, translates keyboard events into keypad transitions
// and plays the sound timer beep. The emulation core is driven once per
// frame from the render loop.
package frontend

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrogolib/log"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/options"
)

// Compile-time check to ensure Frontend implements ebiten.Game.
var _ ebiten.Game = (*Frontend)(nil)

// Frontend is the ebiten game driving the emulation. It owns the machine,
// display and keypad and passes them into the runner every frame.
type Frontend struct {
	logger *log.Logger

	machine *chip8.Machine
	display *chip8.Display
	keypad  *chip8.Keypad
	runner  *chip8.Runner
	beeper  *Beeper // nil when muted

	ctx   context.Context
	scale int

	frame      *ebiten.Image
	frameBuf   []byte
	lastUpdate time.Time
}

// New creates a frontend for the given machine. A nil beeper disables audio.
func New(ctx context.Context, logger *log.Logger, opts options.Program,
	machine *chip8.Machine, runner *chip8.Runner, beeper *Beeper) *Frontend {

	return &Frontend{
		logger:   logger,
		machine:  machine,
		display:  chip8.NewDisplay(),
		keypad:   chip8.NewKeypad(),
		runner:   runner,
		beeper:   beeper,
		ctx:      ctx,
		scale:    opts.Scale,
		frame:    ebiten.NewImage(chip8.DisplayWidth, chip8.DisplayHeight),
		frameBuf: make([]byte, chip8.DisplayWidth*chip8.DisplayHeight*4),
	}
}

// Run opens the window and blocks until the window is closed, the context
// is canceled or the machine hits a fatal execution error.
func (f *Frontend) Run() error {
	ebiten.SetWindowSize(chip8.DisplayWidth*f.scale, chip8.DisplayHeight*f.scale)
	ebiten.SetWindowTitle("chip8emu")

	if err := ebiten.RunGame(f); err != nil {
		return fmt.Errorf("running emulator window: %w", err)
	}
	return nil
}

// Update delivers pending input events and advances the emulation by the
// wall-clock time elapsed since the previous frame. Implements ebiten.Game.
func (f *Frontend) Update() error {
	if f.ctx.Err() != nil {
		return ebiten.Termination
	}

	f.handleInput()

	now := time.Now()
	if f.lastUpdate.IsZero() {
		f.lastUpdate = now
	}
	elapsed := now.Sub(f.lastUpdate)
	f.lastUpdate = now

	if err := f.runner.Advance(elapsed, f.machine, f.display, f.keypad); err != nil {
		return fmt.Errorf("advancing emulation: %w", err)
	}

	if f.beeper != nil {
		f.beeper.SetBeeping(f.machine.SoundTimer > 0)
	}
	return nil
}

// Layout implements ebiten.Game.
func (f *Frontend) Layout(_, _ int) (int, int) {
	return chip8.DisplayWidth * f.scale, chip8.DisplayHeight * f.scale
}
