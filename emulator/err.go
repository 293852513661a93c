package emulator

import (
	"errors"

	"github.com/ezrec/bytevm/translate"
	"github.com/ezrec/bytevm/vm"
)

var f = translate.From

var (
	ErrImageEmpty     = errors.New(f("image empty"))
	ErrWatchTriggered = errors.New(f("watch triggered"))
	ErrWatchResult    = errors.New(f("watch result not a boolean"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Address     uint8
	Instruction vm.Instruction
	Err         error
}

func (err *ErrRuntime) Error() string {
	return f("0x%02x '%v' %v", err.Address, err.Instruction, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrWatch is a watch expression that failed to compile or evaluate.
type ErrWatch struct {
	Expr string
	Err  error
}

func (err *ErrWatch) Error() string {
	return f("watch '%v' %v", err.Expr, err.Err)
}

func (err *ErrWatch) Unwrap() error {
	return err.Err
}
