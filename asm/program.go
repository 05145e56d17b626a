package asm

import (
	"iter"
	"strings"

	"github.com/ezrec/pievm/isa"
)

// Instruction is one parsed statement of the source.
type Instruction struct {
	LineNo    int    // Source line of the statement.
	Label     *Token // Optional leading label declaration.
	Opcode    *Token // Opcode, if not a directive.
	Directive *Token // Directive, if not an opcode.
	Operands  []Token
}

// IsLabel is true when the statement declares a label.
func (ins *Instruction) IsLabel() bool {
	return ins.Label != nil
}

// LabelName returns the declared label, if any.
func (ins *Instruction) LabelName() (name string, ok bool) {
	if ins.Label == nil || ins.Label.Kind != TOKEN_LABEL_DECLARATION {
		return
	}
	return ins.Label.Name, true
}

// String returns the statement in assembly syntax.
func (ins *Instruction) String() string {
	var words []string
	if ins.Label != nil {
		words = append(words, ins.Label.String())
	}
	if ins.Opcode != nil {
		words = append(words, ins.Opcode.String())
	}
	if ins.Directive != nil {
		words = append(words, ins.Directive.String())
	}
	for _, tok := range ins.Operands {
		words = append(words, tok.String())
	}
	return strings.Join(words, " ")
}

// Program is the ordered list of parsed statements. Every statement
// occupies one isa.WIDTH slot of the assembled image.
type Program struct {
	Instructions []Instruction
}

// Len returns the size in bytes of the assembled program.
func (prog *Program) Len() int {
	return len(prog.Instructions) * isa.WIDTH
}

// Offsets iterates over the statements with their byte offsets.
func (prog *Program) Offsets() iter.Seq2[uint32, *Instruction] {
	return func(yield func(offset uint32, ins *Instruction) bool) {
		for n := range prog.Instructions {
			if !yield(uint32(n*isa.WIDTH), &prog.Instructions[n]) {
				return
			}
		}
	}
}

// Debug returns the statement that assembled to the byte at offset, or nil.
func (prog *Program) Debug(offset int) (ins *Instruction) {
	if offset < 0 || offset >= prog.Len() {
		return
	}

	ins = &prog.Instructions[offset/isa.WIDTH]
	return
}
