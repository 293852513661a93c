// Package vm implements a minimal byte-code virtual machine.
//
// The machine has 256 bytes of memory, eight 8-bit registers (r0-r6 are
// addressable, r7 is reserved) and an 8-bit instruction pointer (IP). Every
// instruction is five bytes wide:
//
//	opcode, mode1, operand1, mode2, operand2
//
// Operand 1 is the source and operand 2 the destination. Each (mode, operand)
// pair is resolved through one of four addressing modes: constant, register,
// memory, or memory through a register. All arithmetic wraps modulo 256.
//
// The IP is advanced past the instruction before it executes, so jump
// targets are absolute addresses of instruction starts. There is no halt
// instruction; execution stops when Step returns an error, normally
// ErrExplicitCrash from the crash opcode.
package vm
