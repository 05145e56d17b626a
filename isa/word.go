package isa

import (
	"encoding/binary"
	"fmt"
	"iter"
	"strings"
)

// WIDTH is the size in bytes of every encoded instruction.
const WIDTH = 4

// Word is one encoded instruction: the opcode byte followed by three operand
// bytes, zero padded.
type Word [WIDTH]byte

// Encode packs an opcode and its encoded operand bytes into a Word.
func Encode(op Opcode, operands ...byte) (word Word, err error) {
	if len(operands) > WIDTH-1 {
		err = ErrOperandOverflow
		return
	}

	word[0] = op.Byte()
	copy(word[1:], operands)

	return
}

// MakeRegister encodes a register operand.
func MakeRegister(reg uint8) []byte {
	return []byte{reg}
}

// MakeImmediate encodes the low 16 bits of value, high byte first.
func MakeImmediate(value int32) []byte {
	return binary.BigEndian.AppendUint16(nil, uint16(value))
}

// Opcode returns the decoded opcode of the word.
func (word Word) Opcode() Opcode {
	return Decode(word[0])
}

// Bytes returns the word as a byte slice.
func (word Word) Bytes() []byte {
	return word[:]
}

// String disassembles the word using the operand layout of its opcode.
func (word Word) String() string {
	op := word.Opcode()

	text := []string{op.String()}
	pos := 1
	for _, kind := range op.Layout() {
		switch kind {
		case OPERAND_REGISTER:
			text = append(text, fmt.Sprintf("$%d", word[pos]))
		case OPERAND_IMMEDIATE:
			text = append(text, fmt.Sprintf("#%d", binary.BigEndian.Uint16(word[pos:pos+2])))
		}
		pos += kind.Width()
	}

	return strings.Join(text, " ")
}

// Disassemble iterates over the whole words of a program image, yielding
// the byte offset of each word. Trailing partial words are not visited.
func Disassemble(program []byte) iter.Seq2[int, Word] {
	return func(yield func(offset int, word Word) bool) {
		for offset := 0; offset+WIDTH <= len(program); offset += WIDTH {
			var word Word
			copy(word[:], program[offset:offset+WIDTH])
			if !yield(offset, word) {
				return
			}
		}
	}
}
