package vm

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"os"

	"github.com/ezrec/bytevm/internal"
)

const (
	MEMORY_SIZE    = 256 // Bytes of memory.
	REGISTER_COUNT = 8   // Registers in the bank.
	REGISTER_LIMIT = 7   // Registers addressable by an operand; r7 is reserved.
)

// Machine is the complete state of the virtual machine.
type Machine struct {
	Verbose bool      // Set to enable verbose logging.
	Output  io.Writer // Destination of the print opcode.

	Memory   [MEMORY_SIZE]uint8    // Memory, also holds the program.
	Register [REGISTER_COUNT]uint8 // Register bank.
	Ip       uint8                 // Address of the next instruction.
}

// NewMachine creates a zeroed machine that prints to standard output.
func NewMachine() (m *Machine) {
	m = &Machine{
		Output: os.Stdout,
	}

	return
}

// Defines returns the opcode and addressing mode names with their values.
func (m *Machine) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_opcode_defines), maps.All(_mode_defines))
}

// Reset clears memory, registers and the instruction pointer.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("vm: reset")
	}

	clear(m.Memory[:])
	clear(m.Register[:])
	m.Ip = 0
}

// Load copies a program image to the start of memory. Images longer than
// memory are truncated. Returns the number of bytes copied.
func (m *Machine) Load(program []byte) (n int) {
	n = copy(m.Memory[:], program)

	if m.Verbose {
		log.Printf("vm: loaded %d of %d bytes", n, len(program))
	}

	return
}

// String returns the current register state as a string.
func (m *Machine) String() (text string) {
	text = fmt.Sprintf("% 4s: %02X\n", "ip", m.Ip)
	for n, val := range m.Register {
		text += fmt.Sprintf("% 4s: %02X\n", fmt.Sprintf("r%d", n), val)
	}

	return
}

// Fetch returns the instruction at the instruction pointer. Addresses past
// the end of memory wrap to the start.
func (m *Machine) Fetch() (ins Instruction) {
	for n := range ins {
		ins[n] = m.Memory[m.Ip+uint8(n)]
	}

	return
}

// Step executes a single instruction.
//
// The instruction pointer is advanced before the instruction executes, and
// is not restored when an error is returned.
func (m *Machine) Step() (err error) {
	at := m.Ip
	ins := m.Fetch()
	m.Ip += INSTRUCTION_SIZE

	if m.Verbose {
		log.Printf("vm: %02x: %v", at, ins)
	}

	src_mode, src := ins.Source()

	switch op := ins.Opcode(); op {
	case OP_CRASH:
		err = ErrExplicitCrash
	case OP_PRINT:
		var value uint8
		value, err = m.Read(src_mode, src)
		if err != nil {
			return
		}
		err = m.print(value)
	case OP_ADD:
		err = m.binop(ins, func(s, d uint8) (uint8, error) { return d + s, nil })
	case OP_SUB:
		err = m.binop(ins, func(s, d uint8) (uint8, error) { return d - s, nil })
	case OP_MUL:
		err = m.binop(ins, func(s, d uint8) (uint8, error) { return d * s, nil })
	case OP_DIV:
		err = m.binop(ins, func(s, d uint8) (uint8, error) {
			if s == 0 {
				return 0, ErrHitZero
			}
			return d / s, nil
		})
	case OP_MOD:
		err = m.binop(ins, func(s, d uint8) (uint8, error) {
			if s == 0 {
				return 0, ErrHitZero
			}
			return d % s, nil
		})
	case OP_JMP:
		var target uint8
		target, err = m.Read(src_mode, src)
		if err != nil {
			return
		}
		m.Ip = target
	case OP_CMP:
		err = m.binop(ins, func(s, d uint8) (uint8, error) {
			switch cmp.Compare(d, s) {
			case 1:
				return 255, nil
			case -1:
				return 1, nil
			}
			return 0, nil
		})
	case OP_AND:
		err = m.binop(ins, func(s, d uint8) (uint8, error) { return d & s, nil })
	case OP_OR:
		err = m.binop(ins, func(s, d uint8) (uint8, error) { return d | s, nil })
	case OP_IF, OP_CALL:
		// Reserved. No effect.
	case OP_MOVE:
		var value uint8
		value, err = m.Read(src_mode, src)
		if err != nil {
			return
		}
		dst_mode, dst := ins.Target()
		err = m.Write(dst_mode, dst, value)
	default:
		err = ErrUnknownInstruction{Opcode: op, Address: at}
	}

	return
}

// binop reads both operands, combines them with fn(source, destination),
// and writes the result to the destination operand. A constant destination
// is rejected before fn runs.
func (m *Machine) binop(ins Instruction, fn func(s, d uint8) (uint8, error)) (err error) {
	src_mode, src := ins.Source()
	dst_mode, dst := ins.Target()

	s, err := m.Read(src_mode, src)
	if err != nil {
		return
	}

	d, err := m.Read(dst_mode, dst)
	if err != nil {
		return
	}

	if !dst_mode.Writable() {
		err = ErrAssignToConstant
		return
	}

	result, err := fn(s, d)
	if err != nil {
		return
	}

	err = m.Write(dst_mode, dst, result)
	return
}

// print writes value as a character on its own line.
func (m *Machine) print(value uint8) (err error) {
	out := m.Output
	if out == nil {
		out = os.Stdout
	}

	_, err = fmt.Fprintf(out, "%c\n", rune(value))
	return
}
