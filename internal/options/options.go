// Package options contains the program options.
package options

// Default option values.
const (
	DefaultScale = 10
	DefaultSpeed = 15
)

// Program options of the emulator.
type Program struct {
	Input string // ROM file to run

	Scale int // window scale factor per CHIP-8 pixel
	Speed int // instructions executed per 60 Hz tick

	FreezeTimers bool // suspend timers while waiting for a key press
	Mute         bool // disable the sound timer beep

	Debug bool // enable debug logging and execution tracing
	Quiet bool // only log errors
}

// NewProgram returns program options with default values.
func NewProgram() Program {
	return Program{
		Scale: DefaultScale,
		Speed: DefaultSpeed,
	}
}
