package chip8

import (
	"math/rand/v2"

	"github.com/retroenv/retrogolib/log"
)

// Interpreter decodes and executes instructions against a machine, display
// and keypad. It holds no machine state of its own, only the random byte
// source for the Cxkk instruction and optional execution tracing.
type Interpreter struct {
	logger   *log.Logger
	randByte func() byte

	// TraceExecution logs every executed instruction at debug level.
	TraceExecution bool
}

// NewInterpreter returns a new interpreter using the default random source.
func NewInterpreter(logger *log.Logger) *Interpreter {
	return &Interpreter{
		logger:   logger,
		randByte: func() byte { return byte(rand.IntN(256)) },
	}
}

// Step executes a single instruction: fetch the word at the program counter,
// decode and execute it. The program counter advances by one instruction
// unless the instruction sets it explicitly or suspends execution.
// Step is a no-op while the machine is paused or awaiting a key press.
//
// Fatal errors (illegal opcode, stack overflow or underflow, out of range
// memory access) leave the machine state untouched beyond the failing
// instruction and must stop execution.
func (in *Interpreter) Step(m *Machine, display *Display, keypad *Keypad) error {
	if m.mode != ModeRunning {
		return nil
	}

	if int(m.PC)+1 >= MemorySize {
		return AddressError{Address: m.PC, PC: m.PC}
	}
	word := uint16(m.Memory[m.PC])<<8 | uint16(m.Memory[m.PC+1])

	op := Decode(word)
	if op.Kind == OpInvalid {
		return OpcodeError{Opcode: word, PC: m.PC}
	}

	if in.TraceExecution {
		in.logger.Debug("executing instruction",
			log.String("instruction", op.Name()),
			log.Uint16("opcode", word),
			log.Uint16("pc", m.PC),
		)
	}

	advance, err := in.execute(op, m, display, keypad)
	if err != nil {
		return err
	}
	if advance {
		m.PC += opcodeSize
	}
	return nil
}

// execute applies a decoded operation. It returns whether the uniform
// program counter increment applies; jumps, calls, returns and a pending
// key wait set or hold the program counter themselves.
func (in *Interpreter) execute(op Op, m *Machine, display *Display, keypad *Keypad) (bool, error) {
	switch op.Kind {
	case OpSys: // legacy machine code call, ignored

	case OpCls:
		display.Clear()

	case OpRet:
		if m.SP == 0 {
			return false, StackError{Opcode: op.Word, PC: m.PC}
		}
		m.SP--
		m.PC = m.Stack[m.SP]

	case OpJp:
		m.PC = op.NNN
		return false, nil

	case OpCall:
		if m.SP >= StackDepth {
			return false, StackError{Opcode: op.Word, PC: m.PC, Overflow: true}
		}
		m.Stack[m.SP] = m.PC
		m.SP++
		m.PC = op.NNN
		return false, nil

	case OpSeVB:
		if m.V[op.X] == op.KK {
			m.PC += opcodeSize
		}

	case OpSneVB:
		if m.V[op.X] != op.KK {
			m.PC += opcodeSize
		}

	case OpSeVV:
		if m.V[op.X] == m.V[op.Y] {
			m.PC += opcodeSize
		}

	case OpLdVB:
		m.V[op.X] = op.KK

	case OpAddVB:
		m.V[op.X] += op.KK

	case OpLdVV:
		m.V[op.X] = m.V[op.Y]

	case OpOr:
		m.V[op.X] |= m.V[op.Y]

	case OpAnd:
		m.V[op.X] &= m.V[op.Y]

	case OpXor:
		m.V[op.X] ^= m.V[op.Y]

	case OpAddVV:
		sum := uint16(m.V[op.X]) + uint16(m.V[op.Y])
		m.V[op.X] = byte(sum)
		m.V[0xF] = flag(sum > 0xFF)

	case OpSubVV:
		notBorrow := flag(m.V[op.X] >= m.V[op.Y])
		m.V[op.X] -= m.V[op.Y]
		m.V[0xF] = notBorrow

	case OpShr:
		shiftedOut := m.V[op.X] & 0x01
		m.V[op.X] >>= 1
		m.V[0xF] = shiftedOut

	case OpSubn:
		notBorrow := flag(m.V[op.Y] >= m.V[op.X])
		m.V[op.X] = m.V[op.Y] - m.V[op.X]
		m.V[0xF] = notBorrow

	case OpShl:
		shiftedOut := m.V[op.X] >> 7
		m.V[op.X] <<= 1
		m.V[0xF] = shiftedOut

	case OpSneVV:
		if m.V[op.X] != m.V[op.Y] {
			m.PC += opcodeSize
		}

	case OpLdI:
		m.I = op.NNN

	case OpJpV0:
		m.PC = op.NNN + uint16(m.V[0])
		return false, nil

	case OpRnd:
		m.V[op.X] = in.randByte() & op.KK

	case OpDrw:
		return true, in.drawSprite(op, m, display)

	case OpSkp:
		if keypad.Pressed(m.V[op.X]) {
			m.PC += opcodeSize
		}

	case OpSknp:
		if !keypad.Pressed(m.V[op.X]) {
			m.PC += opcodeSize
		}

	case OpLdVDt:
		m.V[op.X] = m.DelayTimer

	case OpLdVK:
		// The program counter stays on the wait instruction; KeyDown
		// advances it once the wait is resolved.
		m.awaitKey(op.X)
		return false, nil

	case OpLdDtV:
		m.DelayTimer = m.V[op.X]

	case OpLdStV:
		m.SoundTimer = m.V[op.X]

	case OpAddI:
		m.I += uint16(m.V[op.X])

	case OpLdF:
		m.I = uint16(m.V[op.X]) * FontSpriteSize

	case OpLdB:
		if int(m.I)+2 >= MemorySize {
			return false, AddressError{Address: m.I, Opcode: op.Word, PC: m.PC}
		}
		value := m.V[op.X]
		m.Memory[m.I] = value / 100
		m.Memory[m.I+1] = value / 10 % 10
		m.Memory[m.I+2] = value % 10

	case OpLdIV:
		if int(m.I)+int(op.X) >= MemorySize {
			return false, AddressError{Address: m.I, Opcode: op.Word, PC: m.PC}
		}
		copy(m.Memory[m.I:], m.V[:op.X+1])

	case OpLdVI:
		if int(m.I)+int(op.X) >= MemorySize {
			return false, AddressError{Address: m.I, Opcode: op.Word, PC: m.PC}
		}
		copy(m.V[:op.X+1], m.Memory[m.I:])

	default:
		return false, OpcodeError{Opcode: op.Word, PC: m.PC}
	}

	return true, nil
}

// drawSprite XOR draws the n byte sprite at address I to the display at
// (Vx, Vy). VF is set to 1 if any toggle turned a lit pixel off, computed
// across the whole sprite. Coordinates wrap around the display edges.
func (in *Interpreter) drawSprite(op Op, m *Machine, display *Display) error {
	m.V[0xF] = 0
	for row := byte(0); row < op.N; row++ {
		address := m.I + uint16(row)
		if address >= MemorySize {
			return AddressError{Address: address, Opcode: op.Word, PC: m.PC}
		}
		sprite := m.Memory[address]
		for col := byte(0); col < 8; col++ {
			if sprite&0x80 != 0 {
				if display.Toggle(m.V[op.X]+col, m.V[op.Y]+row) {
					m.V[0xF] = 1
				}
			}
			sprite <<= 1
		}
	}
	return nil
}

func flag(set bool) byte {
	if set {
		return 1
	}
	return 0
}
