// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/bytevm/internal"
	"github.com/ezrec/bytevm/vm"
)

var _emulator_defines = map[string]string{
	"MEMORY_SIZE":      fmt.Sprintf("%v", vm.MEMORY_SIZE),
	"REGISTER_LIMIT":   fmt.Sprintf("%v", vm.REGISTER_LIMIT),
	"INSTRUCTION_SIZE": fmt.Sprintf("%v", vm.INSTRUCTION_SIZE),
}

// Emulator drives a machine through a program image.
type Emulator struct {
	Verbose     bool // If set, enables verbose logging.
	*vm.Machine      // Reference to the machine simulation.

	Image  []byte // Program image loaded by Reset.
	Budget int    // Maximum steps since Reset, or 0 for no limit.
	Watch  *Watch // If set, stops the run when it evaluates true.

	// Halt is the reason the last run stopped cleanly; vm.ErrExplicitCrash
	// or ErrWatchTriggered.
	Halt error

	steps int
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Machine: vm.NewMachine(),
	}

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines), emu.Machine.Defines())
}

// Reset clears the machine and loads the program image. An empty image is
// refused with ErrImageEmpty.
func (emu *Emulator) Reset() (err error) {
	if len(emu.Image) == 0 {
		err = ErrImageEmpty
		return
	}

	emu.Machine.Verbose = false

	emu.Machine.Reset()
	n := emu.Machine.Load(emu.Image)
	if n < len(emu.Image) && emu.Verbose {
		log.Printf("emulator: image truncated from %d to %d bytes", len(emu.Image), n)
	}

	emu.steps = 0
	emu.Halt = nil

	emu.Machine.Verbose = emu.Verbose

	return
}

// Steps returns the number of steps executed since a reset.
func (emu *Emulator) Steps() int {
	return emu.steps
}

// Tick performs a single step of the machine.
//
// A crash instruction or a triggered watch stops the run cleanly, returning
// done with no error and recording the reason in Halt. Any other fault is
// returned as an *ErrRuntime.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Machine.Verbose = emu.Verbose

	at := emu.Machine.Ip
	ins := emu.Machine.Fetch()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Address: at, Instruction: ins, Err: err}
		}
	}()

	if emu.Budget > 0 && emu.steps >= emu.Budget {
		err = vm.ErrOutOfInstructions
		return
	}

	err = emu.Machine.Step()
	emu.steps++
	if errors.Is(err, vm.ErrExplicitCrash) {
		if emu.Verbose {
			log.Printf("emulator: crash at 0x%02x after %d steps", at, emu.steps)
		}
		emu.Halt = err
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	if emu.Watch != nil {
		var hit bool
		hit, err = emu.Watch.Eval(emu.Machine)
		if err != nil {
			return
		}
		if hit {
			if emu.Verbose {
				log.Printf("emulator: watch '%v' at 0x%02x", emu.Watch.Expr, emu.Machine.Ip)
			}
			emu.Halt = ErrWatchTriggered
			done = true
		}
	}

	return
}

// Run ticks the emulator until it halts or faults.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
