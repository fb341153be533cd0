// Package chip8 implements the CHIP-8 virtual machine core.
//
// The package contains the complete execution engine: machine state
// (memory, registers, stack, timers), the display surface and keypad state,
// the instruction decoder and executor, and the frame scheduler that couples
// instruction throughput to the fixed 60 Hz timer tick.
//
// # Memory Layout
//
// CHIP-8 systems have 4KB of memory (0x000-0xFFF):
//   - 0x000-0x1FF: interpreter area, holds the built-in digit sprites
//   - 0x200-0xFFF: user program and data area
//
// # Ownership
//
// The host owns the Machine, Display and Keypad and passes them explicitly
// into Interpreter.Step and Runner.Advance. All mutation happens on a single
// logical thread: the host delivers key events, then advances the runner,
// then reads the display for presentation. No locking is required.
//
// # Error Model
//
// Arithmetic wraparound is part of the instruction set contract and never an
// error. Illegal opcodes, call stack overflow or underflow and out of range
// memory accesses are fatal: Step returns an error identifying the offending
// program counter and opcode, and the host is expected to halt the machine.
package chip8
