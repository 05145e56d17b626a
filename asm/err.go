package asm

import (
	"errors"

	"github.com/ezrec/pievm/translate"
)

var f = translate.From

var (
	// Instruction builder errors
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrOperandExtra       = errors.New(f("excessive operands"))
	ErrOperandOpcode      = errors.New(f("opcode in operand position"))

	// Assembler errors
	ErrLabelDuplicate = errors.New(f("label duplicated"))
	ErrOffsetRange    = errors.New(f("label offset out of range"))
	ErrImmediateRange = errors.New(f("immediate out of range"))
)

// ErrLabelMissing is the name of a label that is used but never declared.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrSyntax locates an assembly error in the source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseLabel string

func (err ErrParseLabel) Error() string {
	return f("'%v' is not a label name", string(err))
}

type ErrParseToken string

func (err ErrParseToken) Error() string {
	return f("'%v' is not an opcode, operand, label or directive", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
