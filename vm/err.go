package vm

import (
	"errors"

	"github.com/ezrec/bytevm/translate"
)

var f = translate.From

var (
	// Machine faults
	ErrExplicitCrash     = errors.New(f("explicit crash"))
	ErrOutOfInstructions = errors.New(f("out of instructions"))
	ErrHitZero           = errors.New(f("hit zero"))

	// Operand resolution faults
	ErrUnknownMode      = errors.New(f("unknown addressing mode"))
	ErrAssignToConstant = errors.New(f("assign to constant"))
)

// ErrBadRegister is the index of a register operand outside r0-r6.
type ErrBadRegister uint8

func (er ErrBadRegister) Error() string {
	return f("bad register %d", uint8(er))
}

// Is matches any ErrBadRegister, regardless of index.
func (er ErrBadRegister) Is(err error) (ok bool) {
	_, ok = err.(ErrBadRegister)
	return
}

// ErrUnknownInstruction is an undefined opcode, with the address of the
// instruction that holds it.
type ErrUnknownInstruction struct {
	Opcode  Opcode
	Address uint8
}

func (err ErrUnknownInstruction) Error() string {
	return f("unknown instruction 0x%02x at 0x%02x", uint8(err.Opcode), err.Address)
}
