package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/pievm/isa"
)

func tokenPtr(tok Token) *Token {
	return &tok
}

func TestParseLine(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}

	table := [](struct {
		line string
		ins  *Instruction
	}){
		{"load $0 #100", &Instruction{
			LineNo:   1,
			Opcode:   tokenPtr(MakeOpcode(isa.OP_LOAD)),
			Operands: []Token{MakeRegister(0), MakeInteger(100)},
		}},
		{"hlt", &Instruction{
			LineNo: 1,
			Opcode: tokenPtr(MakeOpcode(isa.OP_HLT)),
		}},
		{"add $0 $1 $2", &Instruction{
			LineNo:   1,
			Opcode:   tokenPtr(MakeOpcode(isa.OP_ADD)),
			Operands: []Token{MakeRegister(0), MakeRegister(1), MakeRegister(2)},
		}},
		{"test: inc $0", &Instruction{
			LineNo:   1,
			Label:    tokenPtr(MakeLabelDeclaration("test")),
			Opcode:   tokenPtr(MakeOpcode(isa.OP_INC)),
			Operands: []Token{MakeRegister(0)},
		}},
		{"jmp @test", &Instruction{
			LineNo:   1,
			Opcode:   tokenPtr(MakeOpcode(isa.OP_JMP)),
			Operands: []Token{MakeLabelUsage("test")},
		}},
		{".data", &Instruction{
			LineNo:    1,
			Directive: tokenPtr(MakeDirective("data")),
		}},
		{"hello: .asciiz #1", &Instruction{
			LineNo:    1,
			Label:     tokenPtr(MakeLabelDeclaration("hello")),
			Directive: tokenPtr(MakeDirective("asciiz")),
			Operands:  []Token{MakeInteger(1)},
		}},
		{"alone:", &Instruction{
			LineNo: 1,
			Label:  tokenPtr(MakeLabelDeclaration("alone")),
		}},
		{"", nil},
		{"; nothing", nil},
	}

	for _, entry := range table {
		ins, err := p.ParseLine(entry.line, 1)
		assert.NoError(err, entry.line)
		assert.Equal(entry.ins, ins, entry.line)
	}
}

func TestParseLineErrors(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}

	table := [](struct {
		line string
		err  error
	}){
		{"$0 $1", ErrInstructionInvalid},
		{"#10", ErrInstructionInvalid},
		{"a: b: hlt", ErrInstructionInvalid},
		{"load $0 load", ErrOperandOpcode},
		{"add $0 $1 $2 $3", ErrOperandExtra},
		{"load $0 .data", ErrInstructionInvalid},
		{"load $0 here:", ErrInstructionInvalid},
		{"load $0 #", ErrParseNumber("#")},
	}

	for _, entry := range table {
		ins, err := p.ParseLine(entry.line, 1)
		assert.Nil(ins, entry.line)
		assert.Equal(entry.err, err, entry.line)
	}
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{}

	prog, err := p.Parse(strings.NewReader("load $0 #100\n\n; comment\nload $1 #50\nadd $0 $1 $2\nhlt\n"))
	assert.NoError(err)
	assert.Equal(4, len(prog.Instructions))
	assert.Equal([]int{1, 4, 5, 6}, []int{
		prog.Instructions[0].LineNo,
		prog.Instructions[1].LineNo,
		prog.Instructions[2].LineNo,
		prog.Instructions[3].LineNo,
	})

	prog, err = p.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Empty(prog.Instructions)

	prog, err = p.Parse(strings.NewReader("hlt\nload $0 $1 $2 $3\n"))
	assert.Nil(prog)
	var syntax *ErrSyntax
	assert.True(errors.As(err, &syntax))
	assert.Equal(2, syntax.LineNo)
	assert.Equal("load $0 $1 $2 $3", syntax.Line)
	assert.ErrorIs(err, ErrOperandExtra)
}
