package vm

import (
	"fmt"
)

// Mode is an operand addressing mode.
type Mode uint8

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_CONST = Mode(0) // const
	MODE_REG   = Mode(1) // reg
	MODE_MEM_C = Mode(2) // memc
	MODE_MEM_R = Mode(3) // memr
)

var _mode_defines = map[string]string{
	"CONST": fmt.Sprintf("%d", MODE_CONST),
	"REG":   fmt.Sprintf("%d", MODE_REG),
	"MEM_C": fmt.Sprintf("%d", MODE_MEM_C),
	"MEM_R": fmt.Sprintf("%d", MODE_MEM_R),
}

// Writable returns true if the Mode can be the destination of a write.
func (mode Mode) Writable() bool {
	return mode > MODE_CONST && mode <= MODE_MEM_R
}

// register validates a register operand.
func (m *Machine) register(operand uint8) (index int, err error) {
	if operand >= REGISTER_LIMIT {
		err = ErrBadRegister(operand)
		return
	}

	index = int(operand)
	return
}

// Read resolves an operand to its value.
func (m *Machine) Read(mode Mode, operand uint8) (value uint8, err error) {
	var reg int

	switch mode {
	case MODE_CONST:
		value = operand
	case MODE_REG:
		reg, err = m.register(operand)
		if err != nil {
			return
		}
		value = m.Register[reg]
	case MODE_MEM_C:
		value = m.Memory[operand]
	case MODE_MEM_R:
		reg, err = m.register(operand)
		if err != nil {
			return
		}
		value = m.Memory[m.Register[reg]]
	default:
		err = ErrUnknownMode
	}

	return
}

// Write stores value at the location an operand resolves to.
// On error, no state is modified.
func (m *Machine) Write(mode Mode, operand uint8, value uint8) (err error) {
	var reg int

	switch mode {
	case MODE_CONST:
		err = ErrAssignToConstant
	case MODE_REG:
		reg, err = m.register(operand)
		if err != nil {
			return
		}
		m.Register[reg] = value
	case MODE_MEM_C:
		m.Memory[operand] = value
	case MODE_MEM_R:
		reg, err = m.register(operand)
		if err != nil {
			return
		}
		m.Memory[m.Register[reg]] = value
	default:
		err = ErrUnknownMode
	}

	return
}
