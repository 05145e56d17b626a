package vm

import (
	"errors"

	"github.com/ezrec/pievm/isa"
	"github.com/ezrec/pievm/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrInstructionIllegal = errors.New(f("instruction illegal"))
	ErrRegisterRange      = errors.New(f("register out of range"))
	ErrJumpRange          = errors.New(f("jump target out of range"))
	ErrHeapRange          = errors.New(f("heap allocation out of range"))
	ErrProgramTruncated   = errors.New(f("program truncated"))
	ErrProgramAlignment   = errors.New(f("program length not a multiple of the instruction width"))
	ErrDivideByZero       = errors.New(f("divide by zero"))

	// Image errors
	ErrHeaderInvalid = errors.New(f("program header invalid"))
)

// ErrFault is an execution error, located at the faulting instruction.
type ErrFault struct {
	Pc     int
	Opcode isa.Opcode
	Err    error
}

func (err ErrFault) Error() string {
	return f("fault at 0x%04x (%v) %v", err.Pc, err.Opcode, err.Err)
}

func (err ErrFault) Unwrap() error {
	return err.Err
}
