// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/pievm/isa"
)

// REGISTER_COUNT is the size of the register file.
const REGISTER_COUNT = 32

// HEAP_LIMIT is the default heap limit of a Machine made by New.
const HEAP_LIMIT = 16 << 20

var _vm_defines = map[string]string{
	"REGISTER_COUNT":    fmt.Sprintf("%d", REGISTER_COUNT),
	"INSTRUCTION_WIDTH": fmt.Sprintf("%d", isa.WIDTH),
	"HEADER_LENGTH":     fmt.Sprintf("%d", HEADER_LENGTH),
}

// Status is the run state of a Machine.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_RUNNING   = Status(0) // running
	STATUS_HALTED    = Status(1) // halted
	STATUS_EXHAUSTED = Status(2) // exhausted
	STATUS_FAULTED   = Status(3) // faulted
)

// JumpMode selects the direction of the jmpb relative jump.
type JumpMode int

//go:generate go tool stringer -linecomment -type=JumpMode
const (
	JUMP_ADDITIVE    = JumpMode(0) // additive
	JUMP_SUBTRACTIVE = JumpMode(1) // subtractive
)

// Machine is the register machine state.
type Machine struct {
	Verbose  bool     // Set to log every executed instruction.
	JumpMode JumpMode // Behaviour of jmpb.

	Register  [REGISTER_COUNT]int32 // Register file.
	Pc        int                   // Byte offset of the next instruction.
	Remainder uint32                // Remainder of the last div.
	Equal     bool                  // Result of the last comparison.
	Heap      Heap                  // Allocated memory.
	Program   []byte                // Loaded program.
	Status    Status                // Run state.

	Ticks int // Instructions executed.
}

// Option configures a Machine made by New.
type Option func(vm *Machine)

// WithBackwardJump selects how jmpb applies its offset.
func WithBackwardJump(mode JumpMode) Option {
	return func(vm *Machine) {
		vm.JumpMode = mode
	}
}

// WithHeapLimit limits the heap to limit bytes. A limit of 0 removes the
// limit.
func WithHeapLimit(limit int) Option {
	return func(vm *Machine) {
		vm.Heap.Limit = limit
	}
}

// WithVerbose enables logging of every executed instruction.
func WithVerbose(verbose bool) Option {
	return func(vm *Machine) {
		vm.Verbose = verbose
	}
}

// New creates a machine with an empty program.
func New(opts ...Option) (vm *Machine) {
	vm = &Machine{}
	vm.Heap.Limit = HEAP_LIMIT

	for _, opt := range opts {
		opt(vm)
	}

	return
}

// Defines for the machine.
func (vm *Machine) Defines() iter.Seq2[string, string] {
	return maps.All(_vm_defines)
}

// Load appends program bytes to the loaded program.
func (vm *Machine) Load(program []byte) {
	vm.Program = append(vm.Program, program...)
	if vm.Status == STATUS_EXHAUSTED {
		vm.Status = STATUS_RUNNING
	}
}

// Clear removes the loaded program and rewinds the program counter.
func (vm *Machine) Clear() {
	if vm.Verbose {
		log.Printf("vm: clear")
	}

	vm.Program = nil
	vm.Pc = 0
	vm.Status = STATUS_RUNNING
}

// Reset the machine state.
// - Clears the registers, remainder and equality flag.
// - Releases the heap.
// - Rewinds the program counter.
// The loaded program is kept.
func (vm *Machine) Reset() {
	if vm.Verbose {
		log.Printf("vm: reset")
	}

	clear(vm.Register[:])
	vm.Pc = 0
	vm.Remainder = 0
	vm.Equal = false
	vm.Heap.Reset()
	vm.Status = STATUS_RUNNING
	vm.Ticks = 0
}

// Run steps the machine until it halts, exhausts the program, or faults.
func (vm *Machine) Run() (err error) {
	for {
		var done bool
		done, err = vm.Step()
		if done {
			return
		}
	}
}

// register returns the register selected by an operand byte.
func (vm *Machine) register(operand byte) (reg *int32, err error) {
	if int(operand) >= len(vm.Register) {
		err = ErrRegisterRange
		return
	}

	reg = &vm.Register[operand]
	return
}

// registers returns the value of each register selected by the operand bytes.
func (vm *Machine) registers(operands ...byte) (values []int32, err error) {
	values = make([]int32, len(operands))
	for n, operand := range operands {
		var reg *int32
		reg, err = vm.register(operand)
		if err != nil {
			return
		}
		values[n] = *reg
	}
	return
}

// jump checks a jump target.
func jump(target int64) (pc int, err error) {
	if target < 0 || target%isa.WIDTH != 0 || target > int64(^uint32(0)) {
		err = ErrJumpRange
		return
	}

	pc = int(target)
	return
}

// Step executes a single instruction. done is set when the machine
// stops, either normally or by a fault.
func (vm *Machine) Step() (done bool, err error) {
	if vm.Pc >= len(vm.Program) {
		vm.Status = STATUS_EXHAUSTED
		done = true
		return
	}

	start := vm.Pc

	var word isa.Word
	op := isa.OP_IGL

	defer func() {
		if err != nil {
			vm.Status = STATUS_FAULTED
			vm.Pc = start
			done = true
			err = &ErrFault{Pc: start, Opcode: op, Err: err}
		}
	}()

	switch {
	case len(vm.Program)%isa.WIDTH != 0:
		err = ErrProgramAlignment
		return
	case start < 0 || start+isa.WIDTH > len(vm.Program):
		err = ErrProgramTruncated
		return
	}

	copy(word[:], vm.Program[start:start+isa.WIDTH])
	op = word.Opcode()

	if vm.Verbose {
		log.Printf("vm: 0x%04x: %v", start, word)
	}

	vm.Status = STATUS_RUNNING
	vm.Ticks++

	next := start + isa.WIDTH

	switch op {
	case isa.OP_HLT:
		vm.Status = STATUS_HALTED
		done = true
	case isa.OP_LOAD:
		var reg *int32
		reg, err = vm.register(word[1])
		if err != nil {
			return
		}
		*reg = int32(uint16(word[2])<<8 | uint16(word[3]))
	case isa.OP_ADD, isa.OP_SUB, isa.OP_MUL, isa.OP_DIV:
		var values []int32
		values, err = vm.registers(word[1], word[2])
		if err != nil {
			return
		}
		var dst *int32
		dst, err = vm.register(word[3])
		if err != nil {
			return
		}
		a, b := values[0], values[1]
		switch op {
		case isa.OP_ADD:
			*dst = a + b
		case isa.OP_SUB:
			*dst = a - b
		case isa.OP_MUL:
			*dst = a * b
		case isa.OP_DIV:
			if b == 0 {
				err = ErrDivideByZero
				return
			}
			*dst = a / b
			vm.Remainder = uint32(a % b)
		}
	case isa.OP_JMP, isa.OP_JEQ:
		var values []int32
		values, err = vm.registers(word[1])
		if err != nil {
			return
		}
		if op == isa.OP_JEQ && !vm.Equal {
			break
		}
		next, err = jump(int64(values[0]))
		if err != nil {
			return
		}
	case isa.OP_JMPF, isa.OP_JMPB:
		var values []int32
		values, err = vm.registers(word[1])
		if err != nil {
			return
		}
		offset := int64(values[0])
		if op == isa.OP_JMPB && vm.JumpMode == JUMP_SUBTRACTIVE {
			offset = -offset
		}
		next, err = jump(int64(next) + offset)
		if err != nil {
			return
		}
	case isa.OP_EQ, isa.OP_NEQ, isa.OP_GT, isa.OP_LT, isa.OP_GTQ, isa.OP_LTQ:
		var values []int32
		values, err = vm.registers(word[1], word[2])
		if err != nil {
			return
		}
		a, b := values[0], values[1]
		switch op {
		case isa.OP_EQ:
			vm.Equal = a == b
		case isa.OP_NEQ:
			vm.Equal = a != b
		case isa.OP_GT:
			vm.Equal = a > b
		case isa.OP_LT:
			vm.Equal = a < b
		case isa.OP_GTQ:
			vm.Equal = a >= b
		case isa.OP_LTQ:
			vm.Equal = a <= b
		}
	case isa.OP_NOP:
		// pass
	case isa.OP_ALOC:
		var values []int32
		values, err = vm.registers(word[1])
		if err != nil {
			return
		}
		err = vm.Heap.Grow(values[0])
		if err != nil {
			return
		}
	case isa.OP_INC, isa.OP_DEC:
		var reg *int32
		reg, err = vm.register(word[1])
		if err != nil {
			return
		}
		if op == isa.OP_INC {
			*reg++
		} else {
			*reg--
		}
	default:
		err = ErrInstructionIllegal
		return
	}

	vm.Pc = next

	return
}

// String returns the machine state as a table.
func (vm *Machine) String() string {
	regs := table.NewWriter()
	regs.SetTitle(f("Registers"))

	header := table.Row{""}
	for col := range 8 {
		header = append(header, fmt.Sprintf("+%d", col))
	}
	regs.AppendHeader(header)

	for row := 0; row < REGISTER_COUNT; row += 8 {
		line := table.Row{fmt.Sprintf("$%d", row)}
		for col := range 8 {
			line = append(line, vm.Register[row+col])
		}
		regs.AppendRow(line)
	}

	state := table.NewWriter()
	state.AppendHeader(table.Row{"pc", "remainder", "equal", "heap", "status"})
	state.AppendRow(table.Row{fmt.Sprintf("0x%04x", vm.Pc), vm.Remainder, vm.Equal, vm.Heap.Len(), vm.Status})

	return strings.Join([]string{regs.Render(), state.Render()}, "\n")
}
