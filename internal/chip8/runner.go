package chip8

import (
	"time"
)

// Scheduler defaults.
const (
	// DefaultTickPeriod is the timer tick period, 60 Hz.
	DefaultTickPeriod = time.Second / 60

	// DefaultInstructionsPerTick is the default instruction budget per tick.
	DefaultInstructionsPerTick = 15

	// MinInstructionsPerTick and MaxInstructionsPerTick bound the emulation
	// speed knob.
	MinInstructionsPerTick = 1
	MaxInstructionsPerTick = 1000
)

// Runner is the frame scheduler: it converts elapsed wall-clock time into a
// whole number of fixed-size simulation steps. Each consumed tick decrements
// the timers once and executes up to the configured instruction budget.
// This decouples the presentation rate from the simulation rate; after a
// stall the accumulated lag is caught up in a burst.
type Runner struct {
	interpreter *Interpreter

	lag                 time.Duration
	tickPeriod          time.Duration
	instructionsPerTick int

	// TimersWhileWaiting keeps the delay and sound timers ticking while the
	// machine is suspended in a key wait. Real-world interpreters differ
	// here; the original COSMAC semantics keep timers running.
	TimersWhileWaiting bool
}

// NewRunner returns a runner with the default tick period and instruction
// budget.
func NewRunner(interpreter *Interpreter) *Runner {
	return &Runner{
		interpreter:         interpreter,
		tickPeriod:          DefaultTickPeriod,
		instructionsPerTick: DefaultInstructionsPerTick,
		TimersWhileWaiting:  true,
	}
}

// InstructionsPerTick returns the current instruction budget per tick.
func (r *Runner) InstructionsPerTick() int {
	return r.instructionsPerTick
}

// SetInstructionsPerTick adjusts the emulation speed knob, clamped to the
// supported range.
func (r *Runner) SetInstructionsPerTick(count int) {
	if count < MinInstructionsPerTick {
		count = MinInstructionsPerTick
	}
	if count > MaxInstructionsPerTick {
		count = MaxInstructionsPerTick
	}
	r.instructionsPerTick = count
}

// Advance adds the elapsed wall-clock time since the previous call to the
// lag accumulator and simulates one tick per full tick period accumulated:
// decrement the timers once, then execute up to the instruction budget.
// Execution stops early when the machine leaves the running mode.
// A fatal execution error is returned to the host immediately with the
// remaining lag discarded.
func (r *Runner) Advance(elapsed time.Duration, m *Machine, display *Display, keypad *Keypad) error {
	if m.mode == ModePaused {
		// user requested halt, drop the elapsed time instead of catching
		// up after unpausing
		r.lag = 0
		return nil
	}

	r.lag += elapsed
	for r.lag >= r.tickPeriod {
		r.lag -= r.tickPeriod

		if m.mode == ModeRunning || r.TimersWhileWaiting {
			m.TickTimers()
		}

		for i := 0; i < r.instructionsPerTick && m.mode == ModeRunning; i++ {
			if err := r.interpreter.Step(m, display, keypad); err != nil {
				r.lag = 0
				return err
			}
		}
	}
	return nil
}
