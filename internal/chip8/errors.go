package chip8

import (
	"errors"
	"fmt"
)

// ErrProgramTooLarge is returned by Load when the ROM does not fit into the
// program area of the 4KB address space.
var ErrProgramTooLarge = errors.New("program exceeds available memory")

// OpcodeError is a fatal execution error caused by an instruction word that
// does not match any CHIP-8 instruction. The original hardware has no defined
// behavior for such words, execution stops instead.
type OpcodeError struct {
	Opcode uint16
	PC     uint16
}

func (e OpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode %04X at address %04X", e.Opcode, e.PC)
}

// StackError is a fatal execution error caused by the call stack exceeding
// its fixed capacity or a return with an empty stack.
type StackError struct {
	Opcode   uint16
	PC       uint16
	Overflow bool
}

func (e StackError) Error() string {
	kind := "underflow"
	if e.Overflow {
		kind = "overflow"
	}
	return fmt.Sprintf("stack %s executing opcode %04X at address %04X", kind, e.Opcode, e.PC)
}

// AddressError is a fatal execution error caused by an instruction accessing
// memory outside of the 4KB address space.
type AddressError struct {
	Address uint16
	Opcode  uint16
	PC      uint16
}

func (e AddressError) Error() string {
	return fmt.Sprintf("memory access at %04X out of range executing opcode %04X at address %04X",
		e.Address, e.Opcode, e.PC)
}
