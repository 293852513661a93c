package vm

import (
	"fmt"
)

const (
	INSTRUCTION_SIZE = 5 // Bytes per instruction.
)

// Opcode is the first byte of an instruction.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_CRASH = Opcode(0)  // crash
	OP_PRINT = Opcode(1)  // print
	OP_ADD   = Opcode(2)  // add
	OP_SUB   = Opcode(3)  // sub
	OP_MUL   = Opcode(4)  // mul
	OP_DIV   = Opcode(5)  // div
	OP_MOD   = Opcode(6)  // mod
	OP_JMP   = Opcode(7)  // jmp
	OP_CMP   = Opcode(8)  // cmp
	OP_AND   = Opcode(9)  // and
	OP_OR    = Opcode(10) // or
	OP_IF    = Opcode(11) // if
	OP_CALL  = Opcode(12) // call
	OP_MOVE  = Opcode(13) // move
)

var _opcode_defines = map[string]string{
	"CRASH": fmt.Sprintf("%d", OP_CRASH),
	"PRINT": fmt.Sprintf("%d", OP_PRINT),
	"ADD":   fmt.Sprintf("%d", OP_ADD),
	"SUB":   fmt.Sprintf("%d", OP_SUB),
	"MUL":   fmt.Sprintf("%d", OP_MUL),
	"DIV":   fmt.Sprintf("%d", OP_DIV),
	"MOD":   fmt.Sprintf("%d", OP_MOD),
	"JMP":   fmt.Sprintf("%d", OP_JMP),
	"CMP":   fmt.Sprintf("%d", OP_CMP),
	"AND":   fmt.Sprintf("%d", OP_AND),
	"OR":    fmt.Sprintf("%d", OP_OR),
	"IF":    fmt.Sprintf("%d", OP_IF),
	"CALL":  fmt.Sprintf("%d", OP_CALL),
	"MOVE":  fmt.Sprintf("%d", OP_MOVE),
}

// Instruction is the five byte window fetched at the instruction pointer.
type Instruction [INSTRUCTION_SIZE]uint8

// MakeInstruction encodes an instruction. The first operand is the source,
// the second the destination.
func MakeInstruction(op Opcode, src_mode Mode, src uint8, dst_mode Mode, dst uint8) Instruction {
	return Instruction{uint8(op), uint8(src_mode), src, uint8(dst_mode), dst}
}

// Image concatenates instructions into a loadable program image.
func Image(program ...Instruction) (image []byte) {
	image = make([]byte, 0, len(program)*INSTRUCTION_SIZE)
	for _, ins := range program {
		image = append(image, ins[:]...)
	}

	return
}

// Opcode returns the operation of the instruction.
func (ins Instruction) Opcode() Opcode {
	return Opcode(ins[0])
}

// Source returns the addressing mode and operand byte of the first operand.
func (ins Instruction) Source() (mode Mode, operand uint8) {
	return Mode(ins[1]), ins[2]
}

// Target returns the addressing mode and operand byte of the second operand.
func (ins Instruction) Target() (mode Mode, operand uint8) {
	return Mode(ins[3]), ins[4]
}

// String returns the instruction as 'op mode.operand mode.operand'.
func (ins Instruction) String() string {
	src_mode, src := ins.Source()
	dst_mode, dst := ins.Target()
	return fmt.Sprintf("%v %v.%d %v.%d", ins.Opcode(), src_mode, src, dst_mode, dst)
}
