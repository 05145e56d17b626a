// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"
	"io"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/pievm/isa"
)

// Phase is the pass the assembler is running.
type Phase int

//go:generate go tool stringer -linecomment -type=Phase
const (
	PHASE_IDLE   = Phase(0) // idle
	PHASE_FIRST  = Phase(1) // first
	PHASE_SECOND = Phase(2) // second
)

// MAX_OFFSET is the largest label offset an immediate operand can hold.
const MAX_OFFSET = 0xffff

// Integer immediates are 16 bits, read either as signed or as unsigned.
const (
	MIN_IMMEDIATE = -0x8000
	MAX_IMMEDIATE = 0xffff
)

// nopSlot fills the slot of directives and label-only lines.
var nopSlot = isa.Word{isa.OP_NOP.Byte()}

// Assembler is a two pass assembler. The first pass lays out the program
// and collects the labels, the second pass encodes every statement.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Phase   Phase  // Current pass.
	Origin  uint32 // Program offset of the first statement, added to every label.

	predefine map[string]string // Names visible to $(...) expressions.
	symbols   *SymbolTable      // Symbols of the last successful assembly.
}

// Predefine defines a new name for $(...) expressions, or redefines one.
func (asm *Assembler) Predefine(name string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// Defines iterates over the predefined names.
func (asm *Assembler) Defines() iter.Seq2[string, string] {
	return maps.All(asm.predefine)
}

// Symbols returns the symbol table of the last successful assembly.
func (asm *Assembler) Symbols() *SymbolTable {
	if asm.symbols == nil {
		return &SymbolTable{}
	}
	return asm.symbols
}

// Parse reads assembly source into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	parser := &Parser{
		Verbose: asm.Verbose,
		Lexer:   Lexer{Equate: maps.Clone(asm.predefine)},
	}

	prog, err = parser.Parse(input)

	return
}

// Assemble converts assembly source text into a program image.
func (asm *Assembler) Assemble(source string) (code []byte, err error) {
	prog, err := asm.Parse(strings.NewReader(source))
	if err != nil {
		return
	}

	code, err = asm.AssembleProgram(prog)

	return
}

// AssembleProgram encodes a parsed Program. On any error no code is
// returned.
func (asm *Assembler) AssembleProgram(prog *Program) (code []byte, err error) {
	defer func() {
		asm.Phase = PHASE_IDLE
	}()

	symbols, err := asm.firstPhase(prog)
	if err != nil {
		return
	}

	code, err = asm.secondPhase(prog, symbols)
	if err != nil {
		code = nil
		return
	}

	asm.symbols = symbols

	return
}

// firstPhase assigns every statement its offset and collects the labels.
func (asm *Assembler) firstPhase(prog *Program) (symbols *SymbolTable, err error) {
	asm.Phase = PHASE_FIRST

	symbols = &SymbolTable{}

	for offset, ins := range prog.Offsets() {
		name, ok := ins.LabelName()
		if !ok {
			continue
		}

		if asm.Verbose {
			log.Printf("asm: %v: label %v at 0x%04x", asm.Phase, name, asm.Origin+offset)
		}

		err = symbols.Insert(Symbol{Name: name, Offset: asm.Origin + offset, Kind: SYMBOL_LABEL, LineNo: ins.LineNo})
		if err != nil {
			err = &ErrSyntax{LineNo: ins.LineNo, Line: ins.String(), Err: err}
			return
		}
	}

	return
}

// secondPhase encodes every statement, resolving label operands.
func (asm *Assembler) secondPhase(prog *Program, symbols *SymbolTable) (code []byte, err error) {
	asm.Phase = PHASE_SECOND

	code = make([]byte, 0, prog.Len())

	for offset, ins := range prog.Offsets() {
		var word isa.Word
		word, err = ins.Encode(symbols)
		if err != nil {
			err = &ErrSyntax{LineNo: ins.LineNo, Line: ins.String(), Err: err}
			return
		}

		if asm.Verbose {
			log.Printf("asm: %v: 0x%04x % x %v", asm.Phase, offset, word.Bytes(), word)
		}

		code = append(code, word.Bytes()...)
	}

	return
}

// Encode converts the statement into its instruction word. Directives and
// label-only statements encode as a no-op slot.
func (ins *Instruction) Encode(symbols *SymbolTable) (word isa.Word, err error) {
	if ins.Opcode == nil {
		word = nopSlot
		return
	}

	if ins.Opcode.Kind != TOKEN_OPCODE {
		err = ErrInstructionInvalid
		return
	}

	var operands []byte
	for _, tok := range ins.Operands {
		switch tok.Kind {
		case TOKEN_REGISTER:
			operands = append(operands, isa.MakeRegister(tok.Register)...)
		case TOKEN_INTEGER:
			if tok.Value < MIN_IMMEDIATE || tok.Value > MAX_IMMEDIATE {
				err = ErrImmediateRange
				return
			}
			operands = append(operands, isa.MakeImmediate(tok.Value)...)
		case TOKEN_LABEL_USAGE:
			offset, ok := symbols.Offset(tok.Name)
			if !ok {
				err = ErrLabelMissing(tok.Name)
				return
			}
			if offset > MAX_OFFSET {
				err = ErrOffsetRange
				return
			}
			operands = append(operands, isa.MakeImmediate(int32(offset))...)
		case TOKEN_OPCODE:
			err = ErrOperandOpcode
			return
		default:
			err = ErrInstructionInvalid
			return
		}
	}

	word, err = isa.Encode(ins.Opcode.Opcode, operands...)
	if err != nil {
		err = errors.Join(ErrOperandExtra, err)
		return
	}

	return
}
