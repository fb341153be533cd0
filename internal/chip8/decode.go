package chip8

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// OpKind identifies a decoded CHIP-8 operation.
type OpKind int

// Decoded operation kinds.
const (
	OpInvalid OpKind = iota

	OpSys   // 0nnn legacy machine code call, ignored
	OpCls   // 00E0 clear display
	OpRet   // 00EE return from subroutine
	OpJp    // 1nnn jump
	OpCall  // 2nnn call subroutine
	OpSeVB  // 3xkk skip if Vx == kk
	OpSneVB // 4xkk skip if Vx != kk
	OpSeVV  // 5xy0 skip if Vx == Vy
	OpLdVB  // 6xkk Vx = kk
	OpAddVB // 7xkk Vx += kk, no flag
	OpLdVV  // 8xy0 Vx = Vy
	OpOr    // 8xy1 Vx |= Vy
	OpAnd   // 8xy2 Vx &= Vy
	OpXor   // 8xy3 Vx ^= Vy
	OpAddVV // 8xy4 Vx += Vy, VF = carry
	OpSubVV // 8xy5 Vx -= Vy, VF = not borrow
	OpShr   // 8xy6 Vx >>= 1, VF = shifted out bit
	OpSubn  // 8xy7 Vx = Vy - Vx, VF = not borrow
	OpShl   // 8xyE Vx <<= 1, VF = shifted out bit
	OpSneVV // 9xy0 skip if Vx != Vy
	OpLdI   // Annn I = nnn
	OpJpV0  // Bnnn jump to nnn + V0
	OpRnd   // Cxkk Vx = random byte & kk
	OpDrw   // Dxyn draw n byte sprite from I at (Vx, Vy), VF = collision
	OpSkp   // Ex9E skip if key Vx held
	OpSknp  // ExA1 skip if key Vx not held
	OpLdVDt // Fx07 Vx = delay timer
	OpLdVK  // Fx0A wait for key press, Vx = key
	OpLdDtV // Fx15 delay timer = Vx
	OpLdStV // Fx18 sound timer = Vx
	OpAddI  // Fx1E I += Vx
	OpLdF   // Fx29 I = address of digit sprite for Vx
	OpLdB   // Fx33 store BCD of Vx at I, I+1, I+2
	OpLdIV  // Fx55 store V0..Vx at I onward
	OpLdVI  // Fx65 load V0..Vx from I onward
)

// Op is a decoded CHIP-8 instruction: the operation kind plus the operand
// fields extracted from the 16-bit instruction word. Fields that an
// operation does not use are zero.
type Op struct {
	Kind OpKind

	Word uint16 // the raw instruction word
	NNN  uint16 // low 12 bits, address operand
	N    byte   // low 4 bits, nibble operand
	X    byte   // second nibble, register index
	Y    byte   // third nibble, register index
	KK   byte   // low byte, immediate operand
}

// Name returns the canonical mnemonic of the operation, looked up from the
// retrogolib CHIP-8 instruction tables. Returns an empty string for words
// that match no instruction.
func (op Op) Name() string {
	firstNibble := (op.Word & 0xF000) >> 12
	for _, candidate := range chip8.Opcodes[int(firstNibble)] {
		if candidate.Instruction != nil && candidate.Info.Mask&op.Word == candidate.Info.Value {
			return candidate.Instruction.Name
		}
	}
	return ""
}

// Decode decodes a 16-bit instruction word into an operation. Words that
// match no CHIP-8 instruction decode to a zero Op with Kind OpInvalid; the
// executor turns those into an OpcodeError with the offending address.
func Decode(word uint16) Op {
	op := Op{
		Word: word,
		NNN:  word & 0x0FFF,
		N:    byte(word & 0x000F),
		X:    byte((word & 0x0F00) >> 8),
		Y:    byte((word & 0x00F0) >> 4),
		KK:   byte(word & 0x00FF),
	}
	op.Kind = decodeKind(word)
	return op
}

func decodeKind(word uint16) OpKind {
	switch word & 0xF000 {
	case 0x0000:
		switch word {
		case 0x00E0:
			return OpCls
		case 0x00EE:
			return OpRet
		default:
			// 0nnn legacy machine code call, a no-op on interpreters
			return OpSys
		}

	case 0x1000:
		return OpJp
	case 0x2000:
		return OpCall
	case 0x3000:
		return OpSeVB
	case 0x4000:
		return OpSneVB

	case 0x5000:
		if word&0x000F == 0 {
			return OpSeVV
		}

	case 0x6000:
		return OpLdVB
	case 0x7000:
		return OpAddVB

	case 0x8000:
		switch word & 0x000F {
		case 0x0:
			return OpLdVV
		case 0x1:
			return OpOr
		case 0x2:
			return OpAnd
		case 0x3:
			return OpXor
		case 0x4:
			return OpAddVV
		case 0x5:
			return OpSubVV
		case 0x6:
			return OpShr
		case 0x7:
			return OpSubn
		case 0xE:
			return OpShl
		}

	case 0x9000:
		if word&0x000F == 0 {
			return OpSneVV
		}

	case 0xA000:
		return OpLdI
	case 0xB000:
		return OpJpV0
	case 0xC000:
		return OpRnd
	case 0xD000:
		return OpDrw

	case 0xE000:
		switch word & 0x00FF {
		case 0x9E:
			return OpSkp
		case 0xA1:
			return OpSknp
		}

	case 0xF000:
		switch word & 0x00FF {
		case 0x07:
			return OpLdVDt
		case 0x0A:
			return OpLdVK
		case 0x15:
			return OpLdDtV
		case 0x18:
			return OpLdStV
		case 0x1E:
			return OpAddI
		case 0x29:
			return OpLdF
		case 0x33:
			return OpLdB
		case 0x55:
			return OpLdIV
		case 0x65:
			return OpLdVI
		}
	}

	return OpInvalid
}
