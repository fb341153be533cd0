package chip8

// Memory layout constants.
const (
	// MemorySize is the total size of the CHIP-8 address space.
	MemorySize = 4096

	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	ProgramStart = 0x200

	// MaxProgramSize is the largest ROM that fits into the program area.
	MaxProgramSize = MemorySize - ProgramStart

	// StackDepth is the fixed capacity of the call stack.
	StackDepth = 16
)

// Mode is the execution mode of the machine.
type Mode int

// Execution modes.
const (
	// ModeRunning executes instructions and ticks timers.
	ModeRunning Mode = iota
	// ModePaused is a user requested halt, instructions and timers both
	// suspend but the host may still redraw.
	ModePaused
	// ModeAwaitingKey suspends instruction execution until a key-down
	// transition arrives. Whether timers keep ticking is a Runner setting.
	ModeAwaitingKey
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "running"
	case ModePaused:
		return "paused"
	case ModeAwaitingKey:
		return "awaiting key"
	default:
		return "unknown"
	}
}

// Machine is the complete mutable state of a CHIP-8 virtual machine:
// memory, registers, program counter, call stack and timers. It is mutated
// through Load, TickTimers, the key event methods and the Interpreter.
type Machine struct {
	Memory [MemorySize]byte

	V     [16]byte // general purpose registers, VF doubles as flags output
	I     uint16   // address register
	PC    uint16
	SP    byte
	Stack [StackDepth]uint16

	DelayTimer byte
	SoundTimer byte

	mode    Mode
	waitReg byte // capture register while mode is ModeAwaitingKey
}

// NewMachine returns a machine with the given ROM loaded.
func NewMachine(rom []byte) (*Machine, error) {
	m := &Machine{}
	if err := m.Load(rom); err != nil {
		return nil, err
	}
	return m, nil
}

// Load resets the machine and loads the ROM image: the built-in digit
// sprites are copied to address 0x000 and the ROM bytes to 0x200 onward.
// Registers, stack, timers and the program counter return to their initial
// values. Returns ErrProgramTooLarge if the ROM does not fit.
func (m *Machine) Load(rom []byte) error {
	if len(rom) > MaxProgramSize {
		return ErrProgramTooLarge
	}

	*m = Machine{PC: ProgramStart}
	copy(m.Memory[:], fontData[:])
	copy(m.Memory[ProgramStart:], rom)
	return nil
}

// TickTimers decrements the delay and sound timers by one if they are
// nonzero. Called once per 60 Hz tick by the frame scheduler.
func (m *Machine) TickTimers() {
	if m.DelayTimer > 0 {
		m.DelayTimer--
	}
	if m.SoundTimer > 0 {
		m.SoundTimer--
	}
}

// Mode returns the current execution mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// WaitRegister returns the register index a pending key wait captures into.
// Only meaningful while Mode is ModeAwaitingKey.
func (m *Machine) WaitRegister() byte {
	return m.waitReg
}

// SetPaused toggles between ModePaused and ModeRunning. Pausing while a key
// wait is pending is ignored, the wait gate already suspends execution.
func (m *Machine) SetPaused(paused bool) {
	switch {
	case paused && m.mode == ModeRunning:
		m.mode = ModePaused
	case !paused && m.mode == ModePaused:
		m.mode = ModeRunning
	}
}

// KeyDown delivers a key-down transition: the key is marked held on the
// keypad and a pending key wait is resolved by storing the key index in the
// captured register, advancing the program counter past the wait instruction
// and resuming execution.
func (m *Machine) KeyDown(keypad *Keypad, key byte) {
	keypad.Press(key)

	if m.mode == ModeAwaitingKey && key < KeyCount {
		m.V[m.waitReg] = key
		m.PC += opcodeSize
		m.mode = ModeRunning
	}
}

// KeyUp delivers a key-up transition to the keypad.
func (m *Machine) KeyUp(keypad *Keypad, key byte) {
	keypad.Release(key)
}

// awaitKey suspends execution until the next key-down transition, capturing
// the key index into register x. The program counter stays on the wait
// instruction until the wait is resolved.
func (m *Machine) awaitKey(x byte) {
	m.mode = ModeAwaitingKey
	m.waitReg = x
}
