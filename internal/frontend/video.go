package frontend

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/retroenv/chip8emu/internal/chip8"
)

// Draw renders the display surface: every lit cell becomes a white square
// scaled by the window scale factor. Implements ebiten.Game.
func (f *Frontend) Draw(screen *ebiten.Image) {
	f.blitDisplay()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(f.scale), float64(f.scale))
	screen.DrawImage(f.frame, op)

	if f.machine.Mode() == chip8.ModePaused {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("paused - speed %d", f.runner.InstructionsPerTick()))
	}
}

// blitDisplay copies the boolean pixel grid into the RGBA frame image.
func (f *Frontend) blitDisplay() {
	i := 0
	for y := byte(0); y < chip8.DisplayHeight; y++ {
		for x := byte(0); x < chip8.DisplayWidth; x++ {
			var value byte
			if f.display.Pixel(x, y) {
				value = 0xFF
			}
			f.frameBuf[i] = value
			f.frameBuf[i+1] = value
			f.frameBuf[i+2] = value
			f.frameBuf[i+3] = 0xFF
			i += 4
		}
	}
	f.frame.WritePixels(f.frameBuf)
}
